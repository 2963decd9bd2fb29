package leave

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransition(t *testing.T) {
	cases := []struct {
		name     string
		current  State
		stage    Stage
		decision Status
		reopen   bool
		want     State
		wantErr  error
	}{
		{
			name:     "teacher approves open request",
			current:  State{StatusPending, StatusPending},
			stage:    StageTeacher,
			decision: StatusApproved,
			reopen:   true,
			want:     State{StatusApproved, StatusPending},
		},
		{
			name:     "teacher re-decision overwrites",
			current:  State{StatusApproved, StatusPending},
			stage:    StageTeacher,
			decision: StatusRejected,
			reopen:   true,
			want:     State{StatusRejected, StatusPending},
		},
		{
			name:     "teacher decision reopens closed request",
			current:  State{StatusApproved, StatusApproved},
			stage:    StageTeacher,
			decision: StatusRejected,
			reopen:   true,
			want:     State{StatusRejected, StatusPending},
		},
		{
			name:     "teacher decision on closed request refused without reopen",
			current:  State{StatusApproved, StatusApproved},
			stage:    StageTeacher,
			decision: StatusRejected,
			reopen:   false,
			want:     State{StatusApproved, StatusApproved},
			wantErr:  ErrAlreadyFinalized,
		},
		{
			name:     "hod decides regardless of teacher",
			current:  State{StatusRejected, StatusPending},
			stage:    StageFinal,
			decision: StatusApproved,
			want:     State{StatusRejected, StatusApproved},
		},
		{
			name:     "hod overwrites terminal state",
			current:  State{StatusApproved, StatusApproved},
			stage:    StageFinal,
			decision: StatusRejected,
			want:     State{StatusApproved, StatusRejected},
		},
		{
			name:     "pending is not a decision",
			current:  State{StatusPending, StatusPending},
			stage:    StageFinal,
			decision: StatusPending,
			want:     State{StatusPending, StatusPending},
			wantErr:  ErrInvalidDecision,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Transition(c.current, c.stage, c.decision, c.reopen)
			if c.wantErr != nil {
				assert.ErrorIs(t, err, c.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, c.want, got)
		})
	}
}

func TestStatusUpdate(t *testing.T) {
	assert.Equal(t, map[string]any{"finalStatus": "approved"}, StatusUpdate(StageFinal, StatusApproved, true))
	assert.Equal(t, map[string]any{
		"teacherStatus": "rejected",
		"status":        "rejected",
		"finalStatus":   "pending",
	}, StatusUpdate(StageTeacher, StatusRejected, true))
	assert.Equal(t, map[string]any{
		"teacherStatus": "approved",
		"status":        "approved",
	}, StatusUpdate(StageTeacher, StatusApproved, false))
}

func TestParseDecision(t *testing.T) {
	d, err := ParseDecision(" Approved ")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, d)

	_, err = ParseDecision("pending")
	assert.ErrorIs(t, err, ErrInvalidDecision)
}

func TestParseLeaveType(t *testing.T) {
	cases := map[string]LeaveType{
		"Annual Leave":   LeaveTypeAnnual,
		"annual_leave":   LeaveTypeAnnual,
		"SickLeave":      LeaveTypeSick,
		"sick":           LeaveTypeSick,
		"personal-leave": LeaveTypePersonal,
		" Study Leave ":  LeaveType("Study Leave"),
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLeaveType(in), in)
	}
}

func TestLimits(t *testing.T) {
	limits := DefaultLimits()

	assert.Equal(t, 30, limits.MaxDays(LeaveTypeAnnual))
	assert.Equal(t, 10, limits.MaxDays(LeaveTypeSick))
	assert.Equal(t, 15, limits.MaxDays(LeaveTypePersonal))
	assert.Equal(t, 30, limits.MaxDays(LeaveType("Study Leave")))

	assert.NoError(t, limits.Check(LeaveTypeSick, 10))

	err := limits.Check(LeaveTypeSick, 11)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrLimitExceeded)
	var limitErr *LimitExceededError
	require.True(t, errors.As(err, &limitErr))
	assert.Equal(t, 10, limitErr.MaxDays)
	assert.Equal(t, 11, limitErr.RequestedDays)
	assert.Equal(t, LeaveTypeSick, limitErr.LeaveType)
}

func TestSpanDays(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }

	assert.Equal(t, 1, SpanDays(day(2024, 1, 1), day(2024, 1, 1)))
	assert.Equal(t, 5, SpanDays(day(2024, 1, 1), day(2024, 1, 5)))
	assert.Equal(t, 2, SpanDays(day(2024, 2, 28), day(2024, 2, 29)))
	assert.Equal(t, 367, SpanDays(day(2023, 12, 31), day(2024, 12, 31)))
	assert.Equal(t, 0, SpanDays(day(2024, 1, 2), day(2024, 1, 1)))
}

func TestFormatTotalDays(t *testing.T) {
	assert.Equal(t, "1 days", FormatTotalDays(1))
	assert.Equal(t, "12 days", FormatTotalDays(12))
	assert.Equal(t, 12, leadingInt(FormatTotalDays(12)))
}

func TestStageLabel(t *testing.T) {
	assert.Equal(t, "PENDING", LeaveRequest{TeacherStatus: StatusPending, FinalStatus: StatusPending}.StageLabel())
	assert.Equal(t, "TEACHER APPROVED", LeaveRequest{TeacherStatus: StatusApproved, FinalStatus: StatusPending}.StageLabel())
	assert.Equal(t, "TEACHER REJECTED", LeaveRequest{TeacherStatus: StatusRejected, FinalStatus: StatusPending}.StageLabel())
	assert.Equal(t, "APPROVED", LeaveRequest{TeacherStatus: StatusRejected, FinalStatus: StatusApproved}.StageLabel())
	assert.Equal(t, "REJECTED", LeaveRequest{TeacherStatus: StatusApproved, FinalStatus: StatusRejected}.StageLabel())
}
