package auth

import (
	"github.com/leavedesk/leave-approval-backend/internal/domain/user"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/validator"
)

// GoogleIdentity is what the identity provider tells us about the caller.
type GoogleIdentity struct {
	GoogleID      string
	Email         string
	VerifiedEmail bool
	Name          string
	Picture       string
}

func (g *GoogleIdentity) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(g.GoogleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "google id is required",
		})
	}
	if !validator.IsValidEmail(g.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "invalid email format",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TokenResponse struct {
	AccessToken          string    `json:"access_token"`
	AccessTokenExpiresIn int64     `json:"access_token_expires_in"`
	Role                 user.Role `json:"role"`
}

type SSETokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int    `json:"expires_in"`
}
