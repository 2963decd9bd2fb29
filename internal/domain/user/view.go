package user

type View string

const (
	ViewStudentDashboard View = "student_dashboard"
	ViewStudentApprovals View = "student_approvals"
	ViewTeacherDashboard View = "teacher_dashboard"
	ViewTeacherApprovals View = "teacher_approvals"
	ViewHODDashboard     View = "hod_dashboard"
	ViewHODApprovals     View = "hod_approvals"
)

// RoleViews is the set of screens a role lands on.
type RoleViews struct {
	Role           Role `json:"role"`
	Dashboard      View `json:"dashboard"`
	Approvals      View `json:"approvals"`
	CanSubmit      bool `json:"can_submit"`
	CanViewHistory bool `json:"can_view_history"`
}

var roleViews = map[Role]RoleViews{
	RoleStudent: {Role: RoleStudent, Dashboard: ViewStudentDashboard, Approvals: ViewStudentApprovals, CanSubmit: true, CanViewHistory: true},
	RoleTeacher: {Role: RoleTeacher, Dashboard: ViewTeacherDashboard, Approvals: ViewTeacherApprovals},
	RoleClerk:   {Role: RoleClerk, Dashboard: ViewTeacherDashboard, Approvals: ViewTeacherApprovals},
	RoleHOD:     {Role: RoleHOD, Dashboard: ViewHODDashboard, Approvals: ViewHODApprovals},
}

// ViewsFor returns the fixed view set for role. Unknown roles get the
// student views.
func ViewsFor(role Role) RoleViews {
	if v, ok := roleViews[role]; ok {
		return v
	}
	v := roleViews[RoleStudent]
	v.Role = role
	return v
}
