package auth

import "errors"

var (
	ErrInvalidToken             = errors.New("invalid or expired token")
	ErrEmailNotVerified         = errors.New("email not verified")
	ErrUnauthorizedEmail        = errors.New("access denied: unauthorized email domain")
	ErrStateCookieEmpty         = errors.New("state cookie is empty")
	ErrStateParamEmpty          = errors.New("state parameter is empty")
	ErrStateMismatch            = errors.New("state mismatch")
	ErrCodeValueEmpty           = errors.New("code value is empty")
	ErrGoogleAccessDeniedByUser = errors.New("google access denied by user")
)
