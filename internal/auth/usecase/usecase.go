package usecase

import (
	authdomain "mtasks-backend/internal/auth/domain"
	authdto "mtasks-backend/internal/auth/dto"
)

// AuthUsecase defines the business logic for accounts and sessions.
type AuthUsecase interface {
	// Register creates a new account and issues a token for it.
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)

	// Login checks credentials and issues a token.
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// ValidateToken resolves a raw token into a live user record.
	ValidateToken(raw string) (*authdomain.User, error)

	// GetProfile returns the account for the given user id.
	GetProfile(userID string) (*authdomain.User, error)

	// UpdateProfile applies an allow-listed patch to the account.
	UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error)

	// DeleteAccount removes the account. Owned lists and tasks are not
	// removed inline; the janitor reclaims them.
	DeleteAccount(userID string) error
}
