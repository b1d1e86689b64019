package user

import (
	"context"
	"net/http"
)

// AuthService defines authentication and account operations
type AuthService interface {
	// Login verifies credentials and issues an access/refresh token pair
	Login(ctx context.Context, req LoginRequest) (LoginResponse, *http.Cookie, error)

	// Register creates a staff or admin account (admin only)
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)

	// Refresh exchanges a valid refresh token for a new token pair
	Refresh(ctx context.Context, refreshToken string) (LoginResponse, *http.Cookie, error)

	// Logout revokes the refresh token
	Logout(ctx context.Context, refreshToken string) error

	// RequestPasswordReset mails a reset link when the account exists;
	// always succeeds from the caller's point of view
	RequestPasswordReset(ctx context.Context, email string) error

	// GetMe returns the authenticated user's profile
	GetMe(ctx context.Context) (UserResponse, error)
}
