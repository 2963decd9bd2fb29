package user

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidEmailFormat      = errors.New("invalid email format")
	ErrInsufficientPermissions = errors.New("insufficient permissions")
	ErrUnknownRole             = errors.New("unknown role")
)
