package user

import (
	"strings"

	"github.com/leavedesk/leave-approval-backend/internal/pkg/validator"
)

type UpdateProfileRequest struct {
	FullName *string `json:"full_name,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FullName == nil && r.PhotoURL == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "full_name",
			Message: "full_name or photo_url is required",
		})
	}

	// Full name
	if r.FullName != nil {
		if validator.IsEmpty(*r.FullName) {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not be empty",
			})
		}
		if len(*r.FullName) > 255 {
			errs = append(errs, validator.ValidationError{
				Field:   "full_name",
				Message: "full_name must not exceed 255 characters",
			})
		}
	}

	// Photo URL
	if r.PhotoURL != nil && *r.PhotoURL != "" {
		if !strings.HasPrefix(*r.PhotoURL, "https://") && !strings.HasPrefix(*r.PhotoURL, "http://") {
			errs = append(errs, validator.ValidationError{
				Field:   "photo_url",
				Message: "photo_url must be an http(s) URL",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ProfileResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	PhotoURL string `json:"photo_url,omitempty"`
}

func NewProfileResponse(p Profile) ProfileResponse {
	return ProfileResponse{
		ID:       p.ID,
		FullName: p.FullName,
		Email:    p.Email,
		Role:     p.Role,
		PhotoURL: p.PhotoURL,
	}
}
