package response

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/leavedesk/leave-approval-backend/internal/domain/auth"
	"github.com/leavedesk/leave-approval-backend/internal/domain/leave"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/docstore"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleError_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"validation", validator.ValidationErrors{{Field: "reason", Message: "too long"}}, http.StatusUnprocessableEntity, CodeValidation},
		{"invalid date", fmt.Errorf("%w: start_date %q", leave.ErrInvalidDate, "x"), http.StatusBadRequest, CodeBadRequest},
		{"end before start", leave.ErrEndBeforeStart, http.StatusBadRequest, CodeBadRequest},
		{"unauthenticated", leave.ErrUnauthenticated, http.StatusUnauthorized, CodeUnauthorized},
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized, CodeUnauthorized},
		{"forbidden", leave.ErrForbidden, http.StatusForbidden, CodeForbidden},
		{"unauthorized email", auth.ErrUnauthorizedEmail, http.StatusForbidden, CodeForbidden},
		{"not found", leave.ErrLeaveRequestNotFound, http.StatusNotFound, CodeNotFound},
		{"finalized", leave.ErrAlreadyFinalized, http.StatusConflict, CodeConflict},
		{"store unavailable", fmt.Errorf("%w: %w", leave.ErrStoreUnavailable, docstore.ErrUnavailable), http.StatusServiceUnavailable, CodeServiceUnavailable},
		{"raw store error", fmt.Errorf("user store: %w", docstore.ErrUnavailable), http.StatusServiceUnavailable, CodeServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError, CodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			HandleError(rec, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body Response
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.False(t, body.Success)
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestHandleError_LimitExceededDetails(t *testing.T) {
	rec := httptest.NewRecorder()
	HandleError(rec, &leave.LimitExceededError{LeaveType: leave.LeaveTypeAnnual, MaxDays: 30, RequestedDays: 31})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, map[string]string{
		"leave_type":     "Annual Leave",
		"max_days":       "30",
		"requested_days": "31",
	}, body.Error.Details)
}

func TestServiceUnavailable_SetsRetryAfter(t *testing.T) {
	rec := httptest.NewRecorder()
	ServiceUnavailable(rec, "try again")
	assert.Equal(t, "5", rec.Header().Get("Retry-After"))
}
