package leave

import (
	"context"
	"log/slog"

	"github.com/leavedesk/leave-approval-backend/internal/domain/leave"
	"github.com/leavedesk/leave-approval-backend/internal/domain/user"
)

// TeacherDecide implements leave.LeaveService.
func (s *LeaveServiceImpl) TeacherDecide(ctx context.Context, actor user.Actor, req leave.DecisionRequest) (leave.LeaveRequest, error) {
	return s.decide(ctx, actor, req, leave.StageTeacher, user.PermissionLeaveTeacherDecide, leave.EventTeacherDecided)
}

// HODDecide implements leave.LeaveService.
func (s *LeaveServiceImpl) HODDecide(ctx context.Context, actor user.Actor, req leave.DecisionRequest) (leave.LeaveRequest, error) {
	return s.decide(ctx, actor, req, leave.StageFinal, user.PermissionLeaveFinalDecide, leave.EventFinalDecided)
}

func (s *LeaveServiceImpl) decide(ctx context.Context, actor user.Actor, req leave.DecisionRequest, stage leave.Stage, permission user.Permission, event string) (leave.LeaveRequest, error) {
	if !actor.IsAuthenticated() {
		return leave.LeaveRequest{}, leave.ErrUnauthenticated
	}
	if !actor.Can(permission) {
		return leave.LeaveRequest{}, leave.ErrForbidden
	}
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}
	decision, _ := leave.ParseDecision(req.Decision)
	ref := req.Ref()

	request, err := s.requests.GetByID(ctx, ref)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	reopen := s.config.ReopenOnTeacherDecision
	next, err := leave.Transition(leave.State{
		TeacherStatus: request.TeacherStatus,
		FinalStatus:   request.FinalStatus,
	}, stage, decision, reopen)
	if err != nil {
		return leave.LeaveRequest{}, err
	}

	if err := s.writer.WriteStatus(ctx, ref, leave.StatusUpdate(stage, decision, reopen)); err != nil {
		slog.Error("Failed to write leave decision", "request_id", ref.RequestID, "owner_id", ref.OwnerID, "stage", stage, "error", err)
		return leave.LeaveRequest{}, err
	}

	if stage == leave.StageTeacher && reopen && request.IsClosed() {
		slog.Warn("Teacher decision reopened closed leave request",
			"request_id", ref.RequestID,
			"previous_final_status", request.FinalStatus,
		)
	}

	request.TeacherStatus = next.TeacherStatus
	request.FinalStatus = next.FinalStatus

	slog.Info("Leave request decided",
		"request_id", ref.RequestID,
		"owner_id", ref.OwnerID,
		"actor_id", actor.UserID,
		"stage", stage,
		"decision", decision,
		"teacher_status", request.TeacherStatus,
		"final_status", request.FinalStatus,
	)
	s.publish(request.OwnerID, event, request)

	return request, nil
}
