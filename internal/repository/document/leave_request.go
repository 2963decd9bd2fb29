package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/leavedesk/leave-approval-backend/internal/domain/leave"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/docstore"
)

type leaveRequestRepositoryImpl struct {
	store docstore.Store
}

func NewLeaveRequestRepository(store docstore.Store) leave.LeaveRequestRepository {
	return &leaveRequestRepositoryImpl{store: store}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) Create(ctx context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	doc, err := r.store.Add(ctx, docstore.LeaveRequestsPath(request.OwnerID), leave.EncodeLeaveRequest(request))
	if err != nil {
		return leave.LeaveRequest{}, mapLeaveErr(err)
	}
	return leave.DecodeLeaveRequest(doc), nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) GetByID(ctx context.Context, ref leave.Ref) (leave.LeaveRequest, error) {
	doc, err := r.store.Get(ctx, docstore.LeaveRequestPath(ref.OwnerID, ref.RequestID))
	if err != nil {
		return leave.LeaveRequest{}, mapLeaveErr(err)
	}
	return leave.DecodeLeaveRequest(doc), nil
}

// ListByOwner implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByOwner(ctx context.Context, ownerID string) ([]leave.LeaveRequest, error) {
	return r.list(ctx, ownerID, docstore.Query{})
}

// ListByOwnerAndFinalStatus implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListByOwnerAndFinalStatus(ctx context.Context, ownerID string, status leave.Status) ([]leave.LeaveRequest, error) {
	return r.list(ctx, ownerID, docstore.Query{}.Where(leave.FieldFinalStatus, string(status)))
}

// ListAll implements leave.LeaveRequestRepository.
func (r *leaveRequestRepositoryImpl) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	docs, err := r.store.QueryGroup(ctx, docstore.LeaveRequestsCollection, docstore.Query{})
	if err != nil {
		return nil, mapLeaveErr(err)
	}
	return decodeAll(docs), nil
}

func (r *leaveRequestRepositoryImpl) list(ctx context.Context, ownerID string, q docstore.Query) ([]leave.LeaveRequest, error) {
	docs, err := r.store.Query(ctx, docstore.LeaveRequestsPath(ownerID), q)
	if err != nil {
		return nil, mapLeaveErr(err)
	}
	return decodeAll(docs), nil
}

type statusWriterImpl struct {
	store docstore.Store
}

// NewStatusWriter returns a writer applying decision updates as plain field
// merges, last write wins.
func NewStatusWriter(store docstore.Store) leave.StatusWriter {
	return &statusWriterImpl{store: store}
}

// WriteStatus implements leave.StatusWriter.
func (w *statusWriterImpl) WriteStatus(ctx context.Context, ref leave.Ref, update map[string]any) error {
	if err := w.store.Update(ctx, docstore.LeaveRequestPath(ref.OwnerID, ref.RequestID), docstore.Fields(update)); err != nil {
		return mapLeaveErr(err)
	}
	return nil
}

func decodeAll(docs []docstore.Document) []leave.LeaveRequest {
	out := make([]leave.LeaveRequest, 0, len(docs))
	for _, d := range docs {
		out = append(out, leave.DecodeLeaveRequest(d))
	}
	return out
}

func mapLeaveErr(err error) error {
	switch {
	case errors.Is(err, docstore.ErrNotFound), errors.Is(err, docstore.ErrInvalidPath):
		return leave.ErrLeaveRequestNotFound
	default:
		return fmt.Errorf("%w: %w", leave.ErrStoreUnavailable, err)
	}
}
