package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/leavedesk/leave-approval-backend/internal/domain/auth"
	"github.com/leavedesk/leave-approval-backend/internal/domain/user"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	user.UserRepository
	jwt.Service
	roles auth.RoleResolver
}

func NewAuthService(userRepository user.UserRepository, jwtService jwt.Service, roles auth.RoleResolver) auth.AuthService {
	return &AuthServiceImpl{
		UserRepository: userRepository,
		Service:        jwtService,
		roles:          roles,
	}
}

// SignInWithGoogle implements auth.AuthService. The Google account id is the
// user id; a name or photo already on the profile is kept.
func (a *AuthServiceImpl) SignInWithGoogle(ctx context.Context, identity auth.GoogleIdentity) (auth.TokenResponse, error) {
	if err := identity.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}
	if !identity.VerifiedEmail {
		return auth.TokenResponse{}, auth.ErrEmailNotVerified
	}

	role, err := a.roles.Resolve(identity.Email)
	if err != nil {
		slog.Warn("Sign-in refused", "email", identity.Email)
		return auth.TokenResponse{}, err
	}

	existing, err := a.UserRepository.GetByID(ctx, identity.GoogleID)
	if err != nil && !errors.Is(err, user.ErrUserNotFound) {
		return auth.TokenResponse{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	profile := user.Profile{
		ID:    identity.GoogleID,
		Email: identity.Email,
		Role:  role,
	}
	if existing.FullName == "" {
		profile.FullName = identity.Name
	}
	if existing.PhotoURL == "" {
		profile.PhotoURL = identity.Picture
	}
	if err := a.UserRepository.Upsert(ctx, profile); err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to save user profile: %w", err)
	}

	token, expiresAt, err := a.Service.GenerateAccessToken(profile.ID, profile.Email, role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	slog.Info("User signed in", "user_id", profile.ID, "role", role)
	return auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		Role:                 role,
	}, nil
}

// Logout implements auth.AuthService.
func (a *AuthServiceImpl) Logout(ctx context.Context, token string, expiresAt int64) error {
	if token == "" {
		return auth.ErrInvalidToken
	}
	if !a.Service.IsTokenRevoked(token) {
		a.Service.RevokeToken(token, expiresAt)
	}
	return nil
}

// IssueSSEToken implements auth.AuthService.
func (a *AuthServiceImpl) IssueSSEToken(ctx context.Context, actor user.Actor) (auth.SSETokenResponse, error) {
	if !actor.IsAuthenticated() {
		return auth.SSETokenResponse{}, auth.ErrInvalidToken
	}
	token, expiresIn, err := a.Service.GenerateSSEToken(actor.UserID)
	if err != nil {
		return auth.SSETokenResponse{}, fmt.Errorf("failed to create sse token: %w", err)
	}
	return auth.SSETokenResponse{Token: token, ExpiresIn: expiresIn}, nil
}
