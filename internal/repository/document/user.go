package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/leavedesk/leave-approval-backend/internal/domain/user"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/docstore"
)

const (
	fieldUID      = "uid"
	fieldFullName = "fullName"
	fieldName     = "name"
	fieldEmail    = "email"
	fieldRole     = "role"
	fieldPhoto    = "photo"
	fieldPhotoURL = "photoUrl"
)

type userRepositoryImpl struct {
	store docstore.Store
}

func NewUserRepository(store docstore.Store) user.UserRepository {
	return &userRepositoryImpl{store: store}
}

// GetByID implements user.UserRepository.
func (r *userRepositoryImpl) GetByID(ctx context.Context, id string) (user.Profile, error) {
	doc, err := r.store.Get(ctx, docstore.UserPath(id))
	if err != nil {
		return user.Profile{}, mapUserErr(err)
	}

	f := doc.Fields
	p := user.Profile{ID: doc.ID}
	p.FullName, _ = f.FirstString(fieldFullName, fieldName)
	p.Email, _ = f.String(fieldEmail)
	p.PhotoURL, _ = f.FirstString(fieldPhoto, fieldPhotoURL)
	if role, ok := f.String(fieldRole); ok {
		p.Role = user.ParseRole(role)
	}
	return p, nil
}

// Upsert implements user.UserRepository. Empty profile fields leave the
// stored values untouched.
func (r *userRepositoryImpl) Upsert(ctx context.Context, profile user.Profile) error {
	fields := docstore.Fields{fieldUID: profile.ID}
	if profile.FullName != "" {
		fields[fieldFullName] = profile.FullName
	}
	if profile.Email != "" {
		fields[fieldEmail] = profile.Email
	}
	if profile.Role != "" {
		fields[fieldRole] = string(profile.Role)
	}
	if profile.PhotoURL != "" {
		fields[fieldPhoto] = profile.PhotoURL
	}

	path := docstore.UserPath(profile.ID)
	err := r.store.Update(ctx, path, fields)
	if errors.Is(err, docstore.ErrNotFound) {
		err = r.store.Set(ctx, path, fields)
	}
	if err != nil {
		return mapUserErr(err)
	}
	return nil
}

// UpdateProfile implements user.UserRepository.
func (r *userRepositoryImpl) UpdateProfile(ctx context.Context, id string, update user.UpdateProfileRequest) error {
	fields := docstore.Fields{}
	if update.FullName != nil {
		fields[fieldFullName] = *update.FullName
	}
	if update.PhotoURL != nil {
		fields[fieldPhoto] = *update.PhotoURL
	}
	if err := r.store.Update(ctx, docstore.UserPath(id), fields); err != nil {
		return mapUserErr(err)
	}
	return nil
}

func mapUserErr(err error) error {
	if errors.Is(err, docstore.ErrNotFound) || errors.Is(err, docstore.ErrInvalidPath) {
		return user.ErrUserNotFound
	}
	return fmt.Errorf("user store: %w", err)
}
