package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/leavedesk/leave-approval-backend/internal/domain/user"
	"github.com/leavedesk/leave-approval-backend/internal/handler/http/middleware"
	"github.com/leavedesk/leave-approval-backend/internal/handler/http/response"
)

type ProfileHandler interface {
	GetProfile(w http.ResponseWriter, r *http.Request)
	UpdateProfile(w http.ResponseWriter, r *http.Request)
	GetViews(w http.ResponseWriter, r *http.Request)
}

type ProfileHandlerImpl struct {
	users user.UserRepository
}

// GetProfile implements ProfileHandler.
func (h *ProfileHandlerImpl) GetProfile(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())

	profile, err := h.users.GetByID(r.Context(), actor.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, user.NewProfileResponse(profile))
}

// UpdateProfile implements ProfileHandler. Role and email are not editable.
func (h *ProfileHandlerImpl) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateProfileRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateProfile decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	actor := middleware.ActorFromContext(r.Context())
	if err := h.users.UpdateProfile(r.Context(), actor.UserID, req); err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := h.users.GetByID(r.Context(), actor.UserID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Profile updated", "user_id", actor.UserID)
	response.SuccessWithMessage(w, "Profile updated successfully", user.NewProfileResponse(profile))
}

// GetViews implements ProfileHandler.
func (h *ProfileHandlerImpl) GetViews(w http.ResponseWriter, r *http.Request) {
	actor := middleware.ActorFromContext(r.Context())
	response.Success(w, user.ViewsFor(actor.Role))
}

func NewProfileHandler(users user.UserRepository) ProfileHandler {
	return &ProfileHandlerImpl{users: users}
}
