package leave

import (
	"strconv"
	"strings"
	"time"

	"github.com/leavedesk/leave-approval-backend/internal/pkg/docstore"
	"github.com/leavedesk/leave-approval-backend/internal/pkg/validator"
)

// Document field names. Older clients wrote the legacy names; readers fall
// back to them.
const (
	FieldUID             = "uid"
	FieldEmail           = "email"
	FieldLeaveType       = "leaveType"
	FieldStartDate       = "startDate"
	FieldEndDate         = "endDate"
	FieldTotalDays       = "totalDays"
	FieldTotalDaysCount  = "totalDaysCount"
	FieldTeacherStatus   = "teacherStatus"
	FieldFinalStatus     = "finalStatus"
	FieldStatus          = "status"
	FieldReason          = "reason"
	FieldRequestDate     = "requestDate"
	FieldRequestDateTime = "requestDateTime"
	FieldTimestamp       = "timestamp"

	legacyFromDate    = "fromDate"
	legacyDate        = "date"
	legacyToDate      = "toDate"
	legacyType        = "type"
	legacyDescription = "description"
	legacyPurpose     = "purpose"
	legacyAppliedDate = "appliedDate"
	legacyCreatedAt   = "createdAt"
)

const (
	RequestDateLayout     = "02/01/2006"
	RequestDateTimeLayout = "02/01/2006 15:04:05"
)

// ReadDateLayouts are tried in order when decoding stored dates.
var ReadDateLayouts = []string{
	"2006-01-02",
	"2/1/2006",
	"1/2/2006",
	"2-1-2006",
	"1-2-2006",
}

// EncodeLeaveRequest writes every field a new request document carries.
func EncodeLeaveRequest(r LeaveRequest) docstore.Fields {
	return docstore.Fields{
		FieldUID:             r.OwnerID,
		FieldEmail:           r.OwnerEmail,
		FieldLeaveType:       string(r.LeaveType),
		FieldStartDate:       r.StartDate,
		FieldEndDate:         r.EndDate,
		FieldTotalDays:       FormatTotalDays(r.TotalDays),
		FieldTotalDaysCount:  int64(r.TotalDays),
		FieldTeacherStatus:   string(r.TeacherStatus),
		FieldFinalStatus:     string(r.FinalStatus),
		FieldStatus:          string(r.TeacherStatus),
		FieldReason:          r.Reason,
		FieldRequestDate:     r.RequestedAt.Format(RequestDateLayout),
		FieldRequestDateTime: r.RequestedAt.Format(RequestDateTimeLayout),
		FieldTimestamp:       r.RequestedAt.UnixMilli(),
	}
}

// DecodeLeaveRequest is the only reader of stored request documents. Each
// field is taken from the first key present in its fallback chain.
func DecodeLeaveRequest(doc docstore.Document) LeaveRequest {
	f := doc.Fields
	r := LeaveRequest{ID: doc.ID}

	r.OwnerID, _ = f.String(FieldUID)
	if r.OwnerID == "" {
		r.OwnerID = docstore.OwnerFromPath(doc.Path)
	}
	r.OwnerEmail, _ = f.String(FieldEmail)

	if t, ok := f.FirstString(FieldLeaveType, legacyType); ok {
		r.LeaveType = ParseLeaveType(t)
	}
	r.Reason, _ = f.FirstString(FieldReason, legacyDescription, legacyPurpose)

	teacher, _ := f.FirstString(FieldTeacherStatus, FieldStatus)
	r.TeacherStatus = ParseStatus(teacher)
	final, _ := f.String(FieldFinalStatus)
	r.FinalStatus = ParseStatus(final)

	r.StartDate, _ = f.FirstString(FieldStartDate, legacyFromDate, legacyDate)
	r.EndDate, _ = f.FirstString(FieldEndDate, legacyToDate)
	r.Start, _ = validator.ParseAny(r.StartDate, ReadDateLayouts...)
	r.End, _ = validator.ParseAny(r.EndDate, ReadDateLayouts...)

	r.TotalDaysLabel, _ = f.String(FieldTotalDays)
	switch {
	case hasInt(f, FieldTotalDaysCount):
		n, _ := f.Int64(FieldTotalDaysCount)
		r.TotalDays = int(n)
	case !r.Start.IsZero() && !r.End.IsZero():
		r.TotalDays = SpanDays(r.Start, r.End)
	default:
		r.TotalDays = leadingInt(r.TotalDaysLabel)
	}
	if r.TotalDaysLabel == "" && r.TotalDays > 0 {
		r.TotalDaysLabel = FormatTotalDays(r.TotalDays)
	}

	r.RequestDate, _ = f.FirstString(FieldRequestDate, legacyAppliedDate, legacyCreatedAt)
	r.RequestDateTime, _ = f.String(FieldRequestDateTime)
	r.RequestedAt = decodeRequestedAt(f, r.RequestDateTime, r.RequestDate)

	return r
}

func decodeRequestedAt(f docstore.Fields, dateTime, date string) time.Time {
	if ms, ok := f.Int64(FieldTimestamp); ok && ms > 0 {
		return time.UnixMilli(ms).UTC()
	}
	if t, err := time.Parse(RequestDateTimeLayout, dateTime); err == nil {
		return t
	}
	if t, ok := validator.ParseAny(date, append([]string{time.RFC3339}, ReadDateLayouts...)...); ok {
		return t
	}
	return time.Time{}
}

func hasInt(f docstore.Fields, key string) bool {
	_, ok := f.Int64(key)
	return ok
}

// leadingInt reads "5 days" as 5.
func leadingInt(s string) int {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0
	}
	return n
}
