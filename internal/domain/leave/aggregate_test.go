package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func req(id string, teacher, final Status, at time.Time) LeaveRequest {
	return LeaveRequest{ID: id, TeacherStatus: teacher, FinalStatus: final, RequestedAt: at}
}

func TestCount_UsesDisplayStatus(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	requests := []LeaveRequest{
		req("a", StatusPending, StatusPending, base),
		req("b", StatusApproved, StatusPending, base),
		req("c", StatusRejected, StatusPending, base),
		req("d", StatusRejected, StatusApproved, base),
		req("e", StatusApproved, StatusRejected, base),
	}

	got := Count(requests)

	assert.Equal(t, Counts{Total: 5, Pending: 3, Approved: 1, Rejected: 1}, got)
	assert.Equal(t, got, Count(requests))
}

func TestCount_Empty(t *testing.T) {
	assert.Equal(t, Counts{}, Count(nil))
}

func TestRecent(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	requests := []LeaveRequest{
		req("1", StatusPending, StatusPending, base.Add(1*time.Hour)),
		req("2", StatusPending, StatusPending, base.Add(5*time.Hour)),
		req("3", StatusPending, StatusPending, base.Add(3*time.Hour)),
		req("4", StatusPending, StatusPending, base.Add(4*time.Hour)),
		req("5", StatusPending, StatusPending, base.Add(2*time.Hour)),
	}

	got := Recent(requests, 3)

	assert.Len(t, got, 3)
	assert.Equal(t, []string{"2", "4", "3"}, ids(got))
	assert.Equal(t, "1", requests[0].ID, "input must not be reordered")
}

func TestRecent_FewerThanK(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	requests := []LeaveRequest{
		req("1", StatusPending, StatusPending, base),
		req("2", StatusPending, StatusPending, base),
	}

	assert.Equal(t, []string{"1", "2"}, ids(Recent(requests, 3)))
	assert.Empty(t, Recent(requests, 0))
}

func TestFilters(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	requests := []LeaveRequest{
		req("a", StatusApproved, StatusPending, base),
		req("b", StatusApproved, StatusApproved, base),
		req("c", StatusPending, StatusApproved, base),
	}

	assert.Equal(t, []string{"b", "c"}, ids(FilterByFinalStatus(requests, StatusApproved)))
	assert.Equal(t, []string{"a", "b"}, ids(FilterByTeacherStatus(requests, StatusApproved)))
	assert.Empty(t, FilterByFinalStatus(requests, StatusRejected))
}

func ids(requests []LeaveRequest) []string {
	out := make([]string, 0, len(requests))
	for _, r := range requests {
		out = append(out, r.ID)
	}
	return out
}
