package leave

// Events pushed to the owner's stream.
const (
	EventSubmitted      = "leave.submitted"
	EventTeacherDecided = "leave.teacher_decided"
	EventFinalDecided   = "leave.final_decided"
)
