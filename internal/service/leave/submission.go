package leave

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/leavedesk/leave-approval-backend/internal/domain/leave"
	"github.com/leavedesk/leave-approval-backend/internal/domain/user"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/validator"
)

// Submit implements leave.LeaveService. Nothing is written unless every
// check passes.
func (s *LeaveServiceImpl) Submit(ctx context.Context, actor user.Actor, req leave.SubmitLeaveRequest) (leave.LeaveRequest, error) {
	if !actor.IsAuthenticated() {
		return leave.LeaveRequest{}, leave.ErrUnauthenticated
	}
	if !actor.Can(user.PermissionLeaveCreate) {
		return leave.LeaveRequest{}, leave.ErrForbidden
	}

	req.OwnerID = actor.UserID
	req.StartDate = strings.TrimSpace(req.StartDate)
	req.EndDate = strings.TrimSpace(req.EndDate)
	if req.OwnerEmail == "" {
		req.OwnerEmail = actor.Email
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	leaveType := leave.ParseLeaveType(req.LeaveType)
	start, end, days, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if err := s.config.Limits.Check(leaveType, days); err != nil {
		return leave.LeaveRequest{}, err
	}

	request := leave.LeaveRequest{
		OwnerID:        req.OwnerID,
		OwnerEmail:     req.OwnerEmail,
		LeaveType:      leaveType,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Start:          start,
		End:            end,
		TotalDays:      days,
		TotalDaysLabel: leave.FormatTotalDays(days),
		Reason:         req.Reason,
		TeacherStatus:  leave.StatusPending,
		FinalStatus:    leave.StatusPending,
		RequestedAt:    s.now(),
	}

	created, err := s.requests.Create(ctx, request)
	if err != nil {
		slog.Error("Failed to create leave request", "owner_id", request.OwnerID, "error", err)
		return leave.LeaveRequest{}, err
	}

	slog.Info("Leave request submitted",
		"request_id", created.ID,
		"owner_id", created.OwnerID,
		"leave_type", created.LeaveType,
		"total_days", created.TotalDays,
	)
	s.publish(created.OwnerID, leave.EventSubmitted, created)

	return created, nil
}

// Preview implements leave.LeaveService.
func (s *LeaveServiceImpl) Preview(ctx context.Context, req leave.PreviewLeaveRequest) (leave.PreviewResponse, error) {
	leaveType := leave.ParseLeaveType(req.LeaveType)
	_, _, days, err := parseRange(req.StartDate, req.EndDate)
	if err != nil {
		return leave.PreviewResponse{}, err
	}

	maxDays := s.config.Limits.MaxDays(leaveType)
	return leave.PreviewResponse{
		LeaveType:   leaveType,
		TotalDays:   days,
		Label:       leave.FormatTotalDays(days),
		MaxDays:     maxDays,
		WithinLimit: days <= maxDays,
	}, nil
}

// parseRange reads both d/M/yyyy dates and returns the inclusive day count.
func parseRange(startStr, endStr string) (time.Time, time.Time, int, error) {
	start, err := validator.ParseDayMonthYear(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("%w: start_date %q", leave.ErrInvalidDate, startStr)
	}
	end, err := validator.ParseDayMonthYear(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("%w: end_date %q", leave.ErrInvalidDate, endStr)
	}

	days := leave.SpanDays(start, end)
	if days <= 0 {
		return time.Time{}, time.Time{}, 0, leave.ErrEndBeforeStart
	}
	return start, end, days, nil
}
