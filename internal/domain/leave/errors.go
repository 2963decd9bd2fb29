package leave

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDate          = errors.New("invalid date, expected day/month/year")
	ErrEndBeforeStart       = errors.New("end date must not be before start date")
	ErrLimitExceeded        = errors.New("leave limit exceeded")
	ErrInvalidDecision      = errors.New("decision must be approved or rejected")
	ErrLeaveRequestNotFound = errors.New("leave request not found")
	ErrStoreUnavailable     = errors.New("leave store unavailable")
	ErrUnauthenticated      = errors.New("no signed-in user")
	ErrForbidden            = errors.New("role not allowed to perform this action")
	ErrAlreadyFinalized     = errors.New("leave request already finalized")
)

// LimitExceededError carries the numbers behind ErrLimitExceeded.
type LimitExceededError struct {
	LeaveType     LeaveType
	MaxDays       int
	RequestedDays int
}

func (e *LimitExceededError) Error() string {
	return fmt.Sprintf("%s cannot exceed %d days, requested %d days", e.LeaveType, e.MaxDays, e.RequestedDays)
}

func (e *LimitExceededError) Is(target error) bool {
	return target == ErrLimitExceeded
}
