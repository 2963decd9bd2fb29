package leave

// Limits caps the length of a single request per leave type.
type Limits struct {
	PerType map[LeaveType]int
	Default int
}

// DefaultLimits: annual 30, sick 10, personal 15, anything else 30.
func DefaultLimits() Limits {
	return Limits{
		PerType: map[LeaveType]int{
			LeaveTypeAnnual:   30,
			LeaveTypeSick:     10,
			LeaveTypePersonal: 15,
		},
		Default: 30,
	}
}

// MaxDays returns the cap for t.
func (l Limits) MaxDays(t LeaveType) int {
	if days, ok := l.PerType[t]; ok {
		return days
	}
	return l.Default
}

// Check returns a *LimitExceededError when days is over the cap for t.
func (l Limits) Check(t LeaveType, days int) error {
	maxDays := l.MaxDays(t)
	if days > maxDays {
		return &LimitExceededError{LeaveType: t, MaxDays: maxDays, RequestedDays: days}
	}
	return nil
}
