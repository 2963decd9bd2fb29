package leave

import "sort"

// Counts summarises requests by display status.
type Counts struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

func Count(requests []LeaveRequest) Counts {
	c := Counts{Total: len(requests)}
	for _, r := range requests {
		switch r.DisplayStatus() {
		case StatusApproved:
			c.Approved++
		case StatusRejected:
			c.Rejected++
		default:
			c.Pending++
		}
	}
	return c
}

// Recent returns up to k requests, newest first. Ties keep their input order.
func Recent(requests []LeaveRequest, k int) []LeaveRequest {
	if k <= 0 {
		return []LeaveRequest{}
	}
	sorted := make([]LeaveRequest, len(requests))
	copy(sorted, requests)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RequestedAt.After(sorted[j].RequestedAt)
	})
	if len(sorted) > k {
		sorted = sorted[:k]
	}
	return sorted
}

func FilterByFinalStatus(requests []LeaveRequest, status Status) []LeaveRequest {
	out := make([]LeaveRequest, 0, len(requests))
	for _, r := range requests {
		if r.FinalStatus == status {
			out = append(out, r)
		}
	}
	return out
}

func FilterByTeacherStatus(requests []LeaveRequest, status Status) []LeaveRequest {
	out := make([]LeaveRequest, 0, len(requests))
	for _, r := range requests {
		if r.TeacherStatus == status {
			out = append(out, r)
		}
	}
	return out
}
