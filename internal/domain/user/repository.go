package user

import (
	"context"
)

// UserRepository - interface for users/{uid} documents
type UserRepository interface {
	GetByID(ctx context.Context, id string) (Profile, error)
	Upsert(ctx context.Context, profile Profile) error
	UpdateProfile(ctx context.Context, id string, update UpdateProfileRequest) error
}
