package leave

import (
	"context"
	"log/slog"

	"github.com/leavedesk/leave-approval-backend/internal/domain/leave"
	"github.com/leavedesk/leave-approval-backend/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

const maxRecentLimit = 50

// MyDashboard implements leave.LeaveService. Counts and the recent list come
// from one snapshot.
func (s *LeaveServiceImpl) MyDashboard(ctx context.Context, actor user.Actor) (leave.DashboardResponse, error) {
	requests, err := s.ownRequests(ctx, actor)
	if err != nil {
		return leave.DashboardResponse{}, err
	}

	return leave.DashboardResponse{
		Counts: leave.Count(requests),
		Recent: leave.NewLeaveRequestResponses(leave.Recent(requests, s.config.RecentLimit)),
	}, nil
}

// MyRecent implements leave.LeaveService.
func (s *LeaveServiceImpl) MyRecent(ctx context.Context, actor user.Actor, limit int) ([]leave.LeaveRequest, error) {
	if !actor.IsAuthenticated() {
		return nil, leave.ErrUnauthenticated
	}
	if limit <= 0 {
		limit = s.config.RecentLimit
	}
	if limit > maxRecentLimit {
		limit = maxRecentLimit
	}
	requests, err := s.requests.ListByOwner(ctx, actor.UserID)
	if err != nil {
		return nil, err
	}
	return leave.Recent(requests, limit), nil
}

// MyHistory implements leave.LeaveService.
func (s *LeaveServiceImpl) MyHistory(ctx context.Context, actor user.Actor) ([]leave.LeaveRequest, error) {
	return s.ownRequests(ctx, actor)
}

// MyApproved implements leave.LeaveService.
func (s *LeaveServiceImpl) MyApproved(ctx context.Context, actor user.Actor) ([]leave.LeaveRequest, error) {
	if !actor.IsAuthenticated() {
		return nil, leave.ErrUnauthenticated
	}
	return s.requests.ListByOwnerAndFinalStatus(ctx, actor.UserID, leave.StatusApproved)
}

// GetRequest implements leave.LeaveService. Owners see their own requests,
// reviewers see all.
func (s *LeaveServiceImpl) GetRequest(ctx context.Context, actor user.Actor, ref leave.Ref) (leave.LeaveRequest, error) {
	if !actor.IsAuthenticated() {
		return leave.LeaveRequest{}, leave.ErrUnauthenticated
	}
	if actor.UserID != ref.OwnerID && !actor.Can(user.PermissionLeaveViewAll) {
		return leave.LeaveRequest{}, leave.ErrForbidden
	}
	return s.requests.GetByID(ctx, ref)
}

// ReviewQueue implements leave.LeaveService. Counts cover every request;
// the filter narrows only the items. Status filters run on decoded requests
// so legacy documents match through their fallback fields.
func (s *LeaveServiceImpl) ReviewQueue(ctx context.Context, actor user.Actor, filter leave.ReviewFilter) (leave.ReviewQueueResponse, error) {
	if !actor.IsAuthenticated() {
		return leave.ReviewQueueResponse{}, leave.ErrUnauthenticated
	}
	if !actor.Can(user.PermissionLeaveViewAll) {
		return leave.ReviewQueueResponse{}, leave.ErrForbidden
	}
	if err := filter.Validate(); err != nil {
		return leave.ReviewQueueResponse{}, err
	}

	all, err := s.requests.ListAll(ctx)
	if err != nil {
		return leave.ReviewQueueResponse{}, err
	}

	requests := all
	if filter.TeacherStatus != "" {
		requests = leave.FilterByTeacherStatus(requests, leave.ParseStatus(filter.TeacherStatus))
	}
	if filter.FinalStatus != "" {
		requests = leave.FilterByFinalStatus(requests, leave.ParseStatus(filter.FinalStatus))
	}

	names := s.ownerNames(ctx, requests)
	items := make([]leave.ReviewItem, len(requests))
	for i, r := range requests {
		items[i] = leave.ReviewItem{
			LeaveRequestResponse: leave.NewLeaveRequestResponse(r),
			OwnerName:            names[r.OwnerID],
		}
	}

	return leave.ReviewQueueResponse{
		Counts: leave.Count(all),
		Items:  items,
	}, nil
}

func (s *LeaveServiceImpl) ownRequests(ctx context.Context, actor user.Actor) ([]leave.LeaveRequest, error) {
	if !actor.IsAuthenticated() {
		return nil, leave.ErrUnauthenticated
	}
	return s.requests.ListByOwner(ctx, actor.UserID)
}

// ownerNames resolves each distinct owner once. Lookups run concurrently and
// write into their own slot, so completion order does not matter; the map is
// built only after every lookup has returned.
func (s *LeaveServiceImpl) ownerNames(ctx context.Context, requests []leave.LeaveRequest) map[string]string {
	var owners []string
	seen := make(map[string]struct{}, len(requests))
	for _, r := range requests {
		if _, ok := seen[r.OwnerID]; ok {
			continue
		}
		seen[r.OwnerID] = struct{}{}
		owners = append(owners, r.OwnerID)
	}

	resolved := make([]string, len(owners))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.config.LookupConcurrency)
	for i, ownerID := range owners {
		g.Go(func() error {
			resolved[i] = s.displayName(gctx, ownerID)
			return nil
		})
	}
	_ = g.Wait()

	names := make(map[string]string, len(owners))
	for i, ownerID := range owners {
		names[ownerID] = resolved[i]
	}
	return names
}

func (s *LeaveServiceImpl) displayName(ctx context.Context, ownerID string) string {
	if ownerID == "" {
		return user.UnknownName
	}
	profile, err := s.users.GetByID(ctx, ownerID)
	if err != nil {
		slog.Warn("Owner lookup failed", "owner_id", ownerID, "error", err)
		return user.UnknownName
	}
	return profile.DisplayName()
}
