package leave

import (
	"context"

	"github.com/leavedesk/leave-approval-backend/internal/domain/user"
)

type LeaveService interface {
	// Submission
	Submit(ctx context.Context, actor user.Actor, req SubmitLeaveRequest) (LeaveRequest, error)
	Preview(ctx context.Context, req PreviewLeaveRequest) (PreviewResponse, error)
	// Workflow
	TeacherDecide(ctx context.Context, actor user.Actor, req DecisionRequest) (LeaveRequest, error)
	HODDecide(ctx context.Context, actor user.Actor, req DecisionRequest) (LeaveRequest, error)
	// Reporting
	MyDashboard(ctx context.Context, actor user.Actor) (DashboardResponse, error)
	MyRecent(ctx context.Context, actor user.Actor, limit int) ([]LeaveRequest, error)
	MyHistory(ctx context.Context, actor user.Actor) ([]LeaveRequest, error)
	MyApproved(ctx context.Context, actor user.Actor) ([]LeaveRequest, error)
	GetRequest(ctx context.Context, actor user.Actor, ref Ref) (LeaveRequest, error)
	ReviewQueue(ctx context.Context, actor user.Actor, filter ReviewFilter) (ReviewQueueResponse, error)
}
