package leave

import (
	"context"
)

// LeaveRequestRepository - interface for users/{uid}/leaveRequests documents
type LeaveRequestRepository interface {
	Create(ctx context.Context, request LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, ref Ref) (LeaveRequest, error)
	// ListByOwner returns requests in insertion order.
	ListByOwner(ctx context.Context, ownerID string) ([]LeaveRequest, error)
	ListByOwnerAndFinalStatus(ctx context.Context, ownerID string, status Status) ([]LeaveRequest, error)
	// ListAll scans every user's requests, unfiltered.
	ListAll(ctx context.Context) ([]LeaveRequest, error)
}

// StatusWriter applies decision writes. Kept apart from the read side so a
// conditional writer can replace it.
type StatusWriter interface {
	WriteStatus(ctx context.Context, ref Ref, update map[string]any) error
}
