package leave

import (
	"time"

	"github.com/leavedesk/leave-approval-backend/internal/pkg/validator"
)

type SubmitLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Reason    string `json:"reason"`

	// Taken from the signed-in user, never from the body.
	OwnerID    string `json:"-"`
	OwnerEmail string `json:"-"`
}

func (r *SubmitLeaveRequest) Validate() error {
	var errs validator.ValidationErrors

	// Leave type
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "leave_type is required",
		})
	}

	// Dates
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "start_date",
			Message: "start_date is required",
		})
	}
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "end_date",
			Message: "end_date is required",
		})
	}

	if len(r.Reason) > 1000 {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason must not exceed 1000 characters",
		})
	}

	// Owner
	if validator.IsEmpty(r.OwnerEmail) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.OwnerEmail) {
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

type PreviewLeaveRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type PreviewResponse struct {
	LeaveType   LeaveType `json:"leave_type"`
	TotalDays   int       `json:"total_days"`
	Label       string    `json:"label"`
	MaxDays     int       `json:"max_days"`
	WithinLimit bool      `json:"within_limit"`
}

type DecisionRequest struct {
	OwnerID   string `json:"-"`
	RequestID string `json:"-"`
	Decision  string `json:"decision"`
}

func (r *DecisionRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.OwnerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "owner_id",
			Message: "owner_id is required",
		})
	}
	if validator.IsEmpty(r.RequestID) {
		errs = append(errs, validator.ValidationError{
			Field:   "request_id",
			Message: "request_id is required",
		})
	}
	if _, err := ParseDecision(r.Decision); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "decision",
			Message: "decision must be one of: approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r DecisionRequest) Ref() Ref {
	return Ref{OwnerID: r.OwnerID, RequestID: r.RequestID}
}

// ReviewFilter narrows the reviewer queue. Empty fields match everything.
type ReviewFilter struct {
	TeacherStatus string `json:"teacher_status,omitempty"`
	FinalStatus   string `json:"final_status,omitempty"`
}

func (f *ReviewFilter) Validate() error {
	var errs validator.ValidationErrors

	allowed := []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}
	if f.TeacherStatus != "" && !validator.IsInSlice(f.TeacherStatus, allowed) {
		errs = append(errs, validator.ValidationError{
			Field:   "teacher_status",
			Message: "teacher_status must be one of: pending, approved, rejected",
		})
	}
	if f.FinalStatus != "" && !validator.IsInSlice(f.FinalStatus, allowed) {
		errs = append(errs, validator.ValidationError{
			Field:   "final_status",
			Message: "final_status must be one of: pending, approved, rejected",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type LeaveRequestResponse struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	OwnerEmail      string    `json:"owner_email"`
	LeaveType       LeaveType `json:"leave_type"`
	StartDate       string    `json:"start_date"`
	EndDate         string    `json:"end_date"`
	TotalDays       int       `json:"total_days"`
	TotalDaysLabel  string    `json:"total_days_label"`
	Reason          string    `json:"reason,omitempty"`
	TeacherStatus   Status    `json:"teacher_status"`
	FinalStatus     Status    `json:"final_status"`
	DisplayStatus   Status    `json:"display_status"`
	StageLabel      string    `json:"stage_label"`
	RequestedAt     time.Time `json:"requested_at"`
	RequestDate     string    `json:"request_date"`
	RequestDateTime string    `json:"request_date_time"`
}

func NewLeaveRequestResponse(r LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		ID:              r.ID,
		OwnerID:         r.OwnerID,
		OwnerEmail:      r.OwnerEmail,
		LeaveType:       r.LeaveType,
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		TotalDays:       r.TotalDays,
		TotalDaysLabel:  r.TotalDaysLabel,
		Reason:          r.Reason,
		TeacherStatus:   r.TeacherStatus,
		FinalStatus:     r.FinalStatus,
		DisplayStatus:   r.DisplayStatus(),
		StageLabel:      r.StageLabel(),
		RequestedAt:     r.RequestedAt,
		RequestDate:     r.RequestDate,
		RequestDateTime: r.RequestDateTime,
	}
}

func NewLeaveRequestResponses(requests []LeaveRequest) []LeaveRequestResponse {
	out := make([]LeaveRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, NewLeaveRequestResponse(r))
	}
	return out
}

type DashboardResponse struct {
	Counts Counts                 `json:"counts"`
	Recent []LeaveRequestResponse `json:"recent"`
}

// ReviewItem is a request joined with its owner's display name.
type ReviewItem struct {
	LeaveRequestResponse
	OwnerName string `json:"owner_name"`
}

type ReviewQueueResponse struct {
	Counts Counts       `json:"counts"`
	Items  []ReviewItem `json:"items"`
}
