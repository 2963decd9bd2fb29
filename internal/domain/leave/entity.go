package leave

import (
	"strconv"
	"strings"
	"time"
)

// LeaveType is stored as its display name.
type LeaveType string

const (
	LeaveTypeAnnual   LeaveType = "Annual Leave"
	LeaveTypeSick     LeaveType = "Sick Leave"
	LeaveTypePersonal LeaveType = "Personal Leave"
)

// ParseLeaveType maps display names and compact spellings onto the known
// types. Unknown names are kept verbatim and fall under the default limit.
func ParseLeaveType(s string) LeaveType {
	trimmed := strings.TrimSpace(s)
	key := strings.ToLower(trimmed)
	key = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(key)
	switch key {
	case "annualleave", "annual":
		return LeaveTypeAnnual
	case "sickleave", "sick":
		return LeaveTypeSick
	case "personalleave", "personal":
		return LeaveTypePersonal
	}
	return LeaveType(trimmed)
}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// ParseStatus reads a stored status case-insensitively. Anything other than
// approved or rejected is pending.
func ParseStatus(s string) Status {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusApproved:
		return StatusApproved
	case StatusRejected:
		return StatusRejected
	}
	return StatusPending
}

// ParseDecision accepts only the two decision values.
func ParseDecision(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusApproved:
		return StatusApproved, nil
	case StatusRejected:
		return StatusRejected, nil
	}
	return "", ErrInvalidDecision
}

// IsDecided reports whether s is approved or rejected.
func (s Status) IsDecided() bool {
	return s == StatusApproved || s == StatusRejected
}

// LeaveRequest entity, stored at users/{ownerID}/leaveRequests/{id}.
type LeaveRequest struct {
	ID         string
	OwnerID    string
	OwnerEmail string
	LeaveType  LeaveType

	// As written by the submitter.
	StartDate string
	EndDate   string
	// Parsed; zero when the stored string matches no known layout.
	Start time.Time
	End   time.Time

	TotalDays      int
	TotalDaysLabel string
	Reason         string

	TeacherStatus Status
	FinalStatus   Status

	RequestedAt     time.Time
	RequestDate     string
	RequestDateTime string
}

// DisplayStatus is the status used for counts and badges: the final
// decision once made, pending otherwise.
func (r LeaveRequest) DisplayStatus() Status {
	if r.FinalStatus.IsDecided() {
		return r.FinalStatus
	}
	return StatusPending
}

// IsClosed reports whether the HOD has decided the request.
func (r LeaveRequest) IsClosed() bool {
	return r.FinalStatus.IsDecided()
}

// StageLabel is the card badge shown to the owner.
func (r LeaveRequest) StageLabel() string {
	switch r.FinalStatus {
	case StatusApproved:
		return "APPROVED"
	case StatusRejected:
		return "REJECTED"
	}
	switch r.TeacherStatus {
	case StatusApproved:
		return "TEACHER APPROVED"
	case StatusRejected:
		return "TEACHER REJECTED"
	}
	return "PENDING"
}

// Ref addresses a request below its owner.
type Ref struct {
	OwnerID   string
	RequestID string
}

// SpanDays counts calendar days from start to end inclusive. It is zero or
// negative when end is before start.
func SpanDays(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours()/24) + 1
}

// FormatTotalDays renders the stored "N days" label.
func FormatTotalDays(days int) string {
	return strconv.Itoa(days) + " days"
}
