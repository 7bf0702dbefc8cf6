package usecase

import (
	"fmt"

	"mtasks-backend/internal/apperror"
	authdomain "mtasks-backend/internal/auth/domain"
	authdto "mtasks-backend/internal/auth/dto"
	"mtasks-backend/internal/auth/repository"
	"mtasks-backend/internal/auth/token"
	"mtasks-backend/pkg/config"
)

// authUsecase implements AuthUsecase
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
	config   *config.Config
}

func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service, cfg *config.Config) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
		config:   cfg,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	if err := u.checkPasswordPolicy(req.Password); err != nil {
		return nil, err
	}

	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.ErrEmailTaken
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}

	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	return u.issueFor(user)
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}

	// Same failure for unknown email and wrong password.
	if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, fmt.Errorf("invalid email or password: %w", apperror.ErrUnauthenticated)
	}

	return u.issueFor(user)
}

func (u *authUsecase) ValidateToken(raw string) (*authdomain.User, error) {
	userID, err := u.tokens.Verify(raw)
	if err != nil {
		return nil, apperror.ErrUnauthenticated
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// Subject was deleted after the token was issued.
		return nil, apperror.ErrUnauthenticated
	}

	return user, nil
}

func (u *authUsecase) GetProfile(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}
	return user, nil
}

func (u *authUsecase) UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.ErrNotFound
	}

	if req.Name != nil {
		if *req.Name == "" {
			return nil, apperror.NewValidation("name", "must not be empty")
		}
		user.Name = *req.Name
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := u.userRepo.FindByEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.ErrEmailTaken
		}
		user.Email = *req.Email
	}

	if req.Password != nil {
		if err := u.checkPasswordPolicy(*req.Password); err != nil {
			return nil, err
		}
		hashed, err := repository.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}

	return user, nil
}

func (u *authUsecase) DeleteAccount(userID string) error {
	deleted, err := u.userRepo.Delete(userID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.ErrNotFound
	}
	return nil
}

func (u *authUsecase) issueFor(user *authdomain.User) (*authdto.TokenResponse, error) {
	t, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}
	return &authdto.TokenResponse{Token: t, User: user}, nil
}

func (u *authUsecase) checkPasswordPolicy(password string) error {
	if len(password) < u.config.PasswordMinLength {
		return apperror.NewValidation("password",
			fmt.Sprintf("must be at least %d characters", u.config.PasswordMinLength))
	}
	return nil
}
