package leave

// Stage identifies which reviewer is deciding.
type Stage string

const (
	StageTeacher Stage = "teacher"
	StageFinal   Stage = "final"
)

// State is the pair of status fields a decision can change.
type State struct {
	TeacherStatus Status
	FinalStatus   Status
}

// Transition returns the state after a decision at the given stage. A
// teacher decision sets the teacher status and, when reopen is set, puts the
// final status back to pending, reopening closed requests. With reopen unset
// a closed request is refused with ErrAlreadyFinalized. A final decision
// overwrites the final status in any state.
func Transition(current State, stage Stage, decision Status, reopen bool) (State, error) {
	if !decision.IsDecided() {
		return current, ErrInvalidDecision
	}
	next := current
	switch stage {
	case StageTeacher:
		if !reopen && current.FinalStatus.IsDecided() {
			return current, ErrAlreadyFinalized
		}
		next.TeacherStatus = decision
		if reopen {
			next.FinalStatus = StatusPending
		}
	case StageFinal:
		next.FinalStatus = decision
	default:
		return current, ErrInvalidDecision
	}
	return next, nil
}

// StatusUpdate is the partial write produced by a decision.
func StatusUpdate(stage Stage, decision Status, reopen bool) map[string]any {
	if stage == StageFinal {
		return map[string]any{FieldFinalStatus: string(decision)}
	}
	update := map[string]any{
		FieldTeacherStatus: string(decision),
		FieldStatus:        string(decision),
	}
	if reopen {
		update[FieldFinalStatus] = string(StatusPending)
	}
	return update
}
