package leave

import (
	"time"

	"github.com/leavedesk/leave-approval-backend/internal/domain/leave"
	"github.com/leavedesk/leave-approval-backend/internal/domain/user"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/sse"
)

// Config holds leave workflow configuration
type Config struct {
	Limits                  leave.Limits
	RecentLimit             int // default: 3
	ReopenOnTeacherDecision bool
	LookupConcurrency       int // default: 8
}

// DefaultConfig keeps the reopen-on-teacher-decision behaviour on.
func DefaultConfig() Config {
	return Config{
		Limits:                  leave.DefaultLimits(),
		RecentLimit:             3,
		ReopenOnTeacherDecision: true,
		LookupConcurrency:       8,
	}
}

// Publisher delivers events to a user's open streams.
type Publisher interface {
	Publish(userID string, event sse.Event)
}

type LeaveServiceImpl struct {
	requests  leave.LeaveRequestRepository
	writer    leave.StatusWriter
	users     user.UserRepository
	publisher Publisher
	config    Config
	now       func() time.Time
}

func NewLeaveService(requests leave.LeaveRequestRepository, writer leave.StatusWriter, users user.UserRepository, publisher Publisher, cfg Config) *LeaveServiceImpl {
	if cfg.Limits.PerType == nil {
		cfg.Limits = leave.DefaultLimits()
	}
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = 3
	}
	if cfg.LookupConcurrency <= 0 {
		cfg.LookupConcurrency = 8
	}

	return &LeaveServiceImpl{
		requests:  requests,
		writer:    writer,
		users:     users,
		publisher: publisher,
		config:    cfg,
		now:       time.Now,
	}
}

func (s *LeaveServiceImpl) publish(userID, event string, request leave.LeaveRequest) {
	if s.publisher == nil || userID == "" {
		return
	}
	s.publisher.Publish(userID, sse.Event{
		UserID: userID,
		Event:  event,
		Data:   leave.NewLeaveRequestResponse(request),
	})
}

var _ leave.LeaveService = (*LeaveServiceImpl)(nil)
