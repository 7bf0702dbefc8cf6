package usecase

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"mtasks-backend/internal/apperror"
	authdomain "mtasks-backend/internal/auth/domain"
	authdto "mtasks-backend/internal/auth/dto"
	"mtasks-backend/internal/auth/repository"
	"mtasks-backend/internal/auth/token"
	"mtasks-backend/pkg/config"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestUsecase(t *testing.T) (AuthUsecase, *token.Service) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&authdomain.User{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := &config.Config{JWTSecret: "test-secret", JWTExpiry: time.Hour, PasswordMinLength: 6}
	tokens := token.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	return NewAuthUsecase(repository.NewUserRepository(db), tokens, cfg), tokens
}

func TestRegister(t *testing.T) {
	uc, tokens := newTestUsecase(t)

	resp, err := uc.Register(&authdto.RegisterRequest{
		Name: "T", Email: "t@x.com", Password: "password123",
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.User.ID == "" {
		t.Error("Expected user id to be assigned")
	}
	if resp.User.Password == "password123" {
		t.Error("Password stored in plain text")
	}

	subject, err := tokens.Verify(resp.Token)
	if err != nil {
		t.Fatalf("Issued token failed verification: %v", err)
	}
	if subject != resp.User.ID {
		t.Errorf("Token subject %s does not match user id %s", subject, resp.User.ID)
	}
}

func TestRegister_DuplicateEmail(t *testing.T) {
	uc, _ := newTestUsecase(t)

	req := &authdto.RegisterRequest{Name: "T", Email: "t@x.com", Password: "password123"}
	if _, err := uc.Register(req); err != nil {
		t.Fatalf("First register failed: %v", err)
	}

	_, err := uc.Register(&authdto.RegisterRequest{Name: "U", Email: "t@x.com", Password: "otherpass"})
	if !errors.Is(err, apperror.ErrEmailTaken) {
		t.Errorf("Expected ErrEmailTaken, got %v", err)
	}
}

func TestRegister_PasswordPolicy(t *testing.T) {
	uc, _ := newTestUsecase(t)

	_, err := uc.Register(&authdto.RegisterRequest{Name: "T", Email: "t@x.com", Password: "short"})
	var verr *apperror.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Expected ValidationError, got %v", err)
	}
	if verr.Fields[0].Field != "password" {
		t.Errorf("Expected password field error, got %s", verr.Fields[0].Field)
	}
}

func TestLogin(t *testing.T) {
	uc, _ := newTestUsecase(t)

	reg, err := uc.Register(&authdto.RegisterRequest{Name: "T", Email: "t@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := uc.Login(&authdto.LoginRequest{Email: "t@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.User.ID != reg.User.ID {
		t.Errorf("Login returned user %s, registered %s", resp.User.ID, reg.User.ID)
	}
}

func TestLogin_BadCredentials(t *testing.T) {
	uc, _ := newTestUsecase(t)

	if _, err := uc.Register(&authdto.RegisterRequest{Name: "T", Email: "t@x.com", Password: "password123"}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	// Wrong password and unknown email must be indistinguishable.
	_, wrongPass := uc.Login(&authdto.LoginRequest{Email: "t@x.com", Password: "wrongpass"})
	_, unknown := uc.Login(&authdto.LoginRequest{Email: "nobody@x.com", Password: "password123"})

	if !errors.Is(wrongPass, apperror.ErrUnauthenticated) {
		t.Errorf("Expected ErrUnauthenticated for wrong password, got %v", wrongPass)
	}
	if !errors.Is(unknown, apperror.ErrUnauthenticated) {
		t.Errorf("Expected ErrUnauthenticated for unknown email, got %v", unknown)
	}
	if wrongPass.Error() != unknown.Error() {
		t.Errorf("Failure messages differ: %q vs %q", wrongPass, unknown)
	}
}

func TestValidateToken_DeletedUser(t *testing.T) {
	uc, _ := newTestUsecase(t)

	reg, err := uc.Register(&authdto.RegisterRequest{Name: "T", Email: "t@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if _, err := uc.ValidateToken(reg.Token); err != nil {
		t.Fatalf("ValidateToken failed for live user: %v", err)
	}

	if err := uc.DeleteAccount(reg.User.ID); err != nil {
		t.Fatalf("DeleteAccount failed: %v", err)
	}

	if _, err := uc.ValidateToken(reg.Token); !errors.Is(err, apperror.ErrUnauthenticated) {
		t.Errorf("Expected ErrUnauthenticated after account deletion, got %v", err)
	}
}

func TestValidateToken_Expired(t *testing.T) {
	uc, _ := newTestUsecase(t)

	reg, err := uc.Register(&authdto.RegisterRequest{Name: "T", Email: "t@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	expired := token.NewService("test-secret", -time.Minute)
	raw, err := expired.Issue(reg.User.ID)
	if err != nil {
		t.Fatalf("Issue failed: %v", err)
	}

	if _, err := uc.ValidateToken(raw); !errors.Is(err, apperror.ErrUnauthenticated) {
		t.Errorf("Expected ErrUnauthenticated for expired token, got %v", err)
	}
}

func TestUpdateProfile(t *testing.T) {
	uc, _ := newTestUsecase(t)

	reg, err := uc.Register(&authdto.RegisterRequest{Name: "T", Email: "t@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	name := "Renamed"
	user, err := uc.UpdateProfile(reg.User.ID, &authdto.UpdateProfileRequest{Name: &name})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if user.Name != "Renamed" {
		t.Errorf("Expected name Renamed, got %s", user.Name)
	}
	if user.Email != "t@x.com" {
		t.Errorf("Email changed unexpectedly: %s", user.Email)
	}
}

func TestUpdateProfile_EmailConflict(t *testing.T) {
	uc, _ := newTestUsecase(t)

	if _, err := uc.Register(&authdto.RegisterRequest{Name: "A", Email: "a@x.com", Password: "password123"}); err != nil {
		t.Fatalf("Register A failed: %v", err)
	}
	regB, err := uc.Register(&authdto.RegisterRequest{Name: "B", Email: "b@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Register B failed: %v", err)
	}

	taken := "a@x.com"
	if _, err := uc.UpdateProfile(regB.User.ID, &authdto.UpdateProfileRequest{Email: &taken}); !errors.Is(err, apperror.ErrEmailTaken) {
		t.Errorf("Expected ErrEmailTaken, got %v", err)
	}
}

func TestUpdateProfile_PasswordChange(t *testing.T) {
	uc, _ := newTestUsecase(t)

	reg, err := uc.Register(&authdto.RegisterRequest{Name: "T", Email: "t@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	newPass := "newpassword"
	if _, err := uc.UpdateProfile(reg.User.ID, &authdto.UpdateProfileRequest{Password: &newPass}); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	if _, err := uc.Login(&authdto.LoginRequest{Email: "t@x.com", Password: "password123"}); err == nil {
		t.Error("Old password still accepted after change")
	}
	if _, err := uc.Login(&authdto.LoginRequest{Email: "t@x.com", Password: "newpassword"}); err != nil {
		t.Errorf("New password rejected: %v", err)
	}
}

func TestDeleteAccount_Repeated(t *testing.T) {
	uc, _ := newTestUsecase(t)

	reg, err := uc.Register(&authdto.RegisterRequest{Name: "T", Email: "t@x.com", Password: "password123"})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	if err := uc.DeleteAccount(reg.User.ID); err != nil {
		t.Fatalf("First delete failed: %v", err)
	}
	if err := uc.DeleteAccount(reg.User.ID); !errors.Is(err, apperror.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on repeated delete, got %v", err)
	}
}
