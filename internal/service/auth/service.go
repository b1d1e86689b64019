package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/domain/user"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/database"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/email"
	"github.com/techvaseegrah/thameem-mobile-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.Repository
	jwtService   jwt.Service
	emailService email.Service
	appBaseURL   string
}

func NewAuthService(
	db *database.DB,
	userRepo user.Repository,
	jwtService jwt.Service,
	emailService email.Service,
	appBaseURL string,
) user.AuthService {
	return &AuthServiceImpl{
		db:           db,
		Repository:   userRepo,
		jwtService:   jwtService,
		emailService: emailService,
		appBaseURL:   appBaseURL,
	}
}

// Login implements user.AuthService.
func (s *AuthServiceImpl) Login(ctx context.Context, req user.LoginRequest) (user.LoginResponse, *http.Cookie, error) {
	if err := req.Validate(); err != nil {
		return user.LoginResponse{}, nil, err
	}

	u, err := s.Repository.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.LoginResponse{}, nil, user.ErrInvalidCredentials
		}
		return user.LoginResponse{}, nil, err
	}

	if !u.IsActive {
		return user.LoginResponse{}, nil, user.ErrUserInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(req.Password)); err != nil {
		return user.LoginResponse{}, nil, user.ErrInvalidCredentials
	}

	return s.issueTokens(u)
}

// Register implements user.AuthService.
func (s *AuthServiceImpl) Register(ctx context.Context, req user.RegisterRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	if _, err := s.Repository.GetByEmail(ctx, req.Email); err == nil {
		return user.UserResponse{}, user.ErrEmailExists
	} else if !errors.Is(err, user.ErrUserNotFound) {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.Role(req.Role)
	if role == "" {
		role = user.RoleStaff
	}

	created, err := s.Repository.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	return user.ToUserResponse(created), nil
}

// Refresh implements user.AuthService.
func (s *AuthServiceImpl) Refresh(ctx context.Context, refreshToken string) (user.LoginResponse, *http.Cookie, error) {
	if refreshToken == "" {
		return user.LoginResponse{}, nil, user.ErrInvalidToken
	}
	if s.jwtService.IsTokenRevoked(refreshToken) {
		return user.LoginResponse{}, nil, user.ErrInvalidToken
	}

	token, err := s.jwtService.JWTAuth().Decode(refreshToken)
	if err != nil {
		return user.LoginResponse{}, nil, user.ErrInvalidToken
	}

	claims, err := token.AsMap(ctx)
	if err != nil {
		return user.LoginResponse{}, nil, user.ErrInvalidToken
	}

	if tokenType, _ := claims["type"].(string); tokenType != "refresh" {
		return user.LoginResponse{}, nil, user.ErrInvalidToken
	}

	userID, _ := claims["user_id"].(string)
	u, err := s.Repository.GetByID(ctx, userID)
	if err != nil {
		return user.LoginResponse{}, nil, user.ErrInvalidToken
	}
	if !u.IsActive {
		return user.LoginResponse{}, nil, user.ErrUserInactive
	}

	// Rotate: the presented refresh token is single use.
	s.jwtService.RevokeToken(refreshToken)

	return s.issueTokens(u)
}

// Logout implements user.AuthService.
func (s *AuthServiceImpl) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return user.ErrInvalidToken
	}
	s.jwtService.RevokeToken(refreshToken)
	return nil
}

// RequestPasswordReset implements user.AuthService. It never reveals
// whether the account exists.
func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	u, err := s.Repository.GetByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil
		}
		return err
	}

	resetToken, expiresAt, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return fmt.Errorf("failed to generate reset token: %w", err)
	}

	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.appBaseURL, resetToken)
	expiry := time.Unix(expiresAt, 0).Format("2006-01-02 15:04:05")

	if err := s.emailService.SendPasswordReset(u.Email, resetLink, expiry); err != nil {
		// Mail transport problems must not leak account existence either.
		slog.Error("failed to send password reset email", "error", err)
	}
	return nil
}

// GetMe implements user.AuthService.
func (s *AuthServiceImpl) GetMe(ctx context.Context) (user.UserResponse, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.UserResponse{}, user.ErrInvalidToken
	}

	u, err := s.Repository.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToUserResponse(u), nil
}

func (s *AuthServiceImpl) issueTokens(u user.User) (user.LoginResponse, *http.Cookie, error) {
	accessToken, accessExp, err := s.jwtService.GenerateAccessToken(u.ID, u.Email, u.Role)
	if err != nil {
		return user.LoginResponse{}, nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExp, err := s.jwtService.GenerateRefreshToken(u.ID)
	if err != nil {
		return user.LoginResponse{}, nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	resp := user.LoginResponse{
		AccessToken: accessToken,
		ExpiresAt:   accessExp,
		User:        user.ToUserResponse(u),
	}
	return resp, s.jwtService.RefreshTokenCookie(refreshToken, refreshExp), nil
}
