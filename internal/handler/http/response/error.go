package response

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/leavedesk/leave-approval-backend/internal/domain/auth"
	"github.com/leavedesk/leave-approval-backend/internal/domain/leave"
	"github.com/leavedesk/leave-approval-backend/internal/domain/user"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/docstore"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	var limitErr *leave.LimitExceededError
	if errors.As(err, &limitErr) {
		BadRequest(w, limitErr.Error(), map[string]string{
			"leave_type":     string(limitErr.LeaveType),
			"max_days":       strconv.Itoa(limitErr.MaxDays),
			"requested_days": strconv.Itoa(limitErr.RequestedDays),
		})
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrEmailNotVerified):
		Forbidden(w, "Email not verified")
	case errors.Is(err, auth.ErrUnauthorizedEmail):
		Forbidden(w, err.Error())

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Leave domain errors
	case errors.Is(err, leave.ErrInvalidDate):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, leave.ErrEndBeforeStart):
		BadRequest(w, "End date cannot be before start date", nil)
	case errors.Is(err, leave.ErrInvalidDecision):
		BadRequest(w, "Decision must be approved or rejected", nil)
	case errors.Is(err, leave.ErrUnauthenticated):
		Unauthorized(w, "Sign in required")
	case errors.Is(err, leave.ErrForbidden):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrAlreadyFinalized):
		Conflict(w, "Leave request already finalized")

	// Store errors
	case errors.Is(err, leave.ErrStoreUnavailable), errors.Is(err, docstore.ErrUnavailable):
		slog.Error("Document store unavailable", "error", err)
		ServiceUnavailable(w, "Storage is temporarily unavailable, try again")

	// Default
	default:
		slog.Error("Unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
