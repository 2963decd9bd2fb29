package auth

import (
	"context"

	"github.com/leavedesk/leave-approval-backend/internal/domain/user"
)

type AuthService interface {
	SignInWithGoogle(ctx context.Context, identity GoogleIdentity) (TokenResponse, error)
	Logout(ctx context.Context, token string, expiresAt int64) error
	IssueSSEToken(ctx context.Context, actor user.Actor) (SSETokenResponse, error)
}
