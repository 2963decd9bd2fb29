package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewsFor(t *testing.T) {
	cases := []struct {
		role      Role
		dashboard View
		approvals View
		canSubmit bool
	}{
		{RoleStudent, ViewStudentDashboard, ViewStudentApprovals, true},
		{RoleTeacher, ViewTeacherDashboard, ViewTeacherApprovals, false},
		{RoleClerk, ViewTeacherDashboard, ViewTeacherApprovals, false},
		{RoleHOD, ViewHODDashboard, ViewHODApprovals, false},
		{Role(""), ViewStudentDashboard, ViewStudentApprovals, true},
	}
	for _, c := range cases {
		t.Run(string(c.role), func(t *testing.T) {
			got := ViewsFor(c.role)
			assert.Equal(t, c.dashboard, got.Dashboard)
			assert.Equal(t, c.approvals, got.Approvals)
			assert.Equal(t, c.canSubmit, got.CanSubmit)
			assert.Equal(t, c.role, got.Role)
		})
	}
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleClerk, ParseRole("Clerk"))
	assert.Equal(t, RoleHOD, ParseRole(" HOD "))
	assert.Equal(t, RoleStudent, ParseRole("student"))
	assert.Equal(t, Role(""), ParseRole("admin"))
}

func TestActor_Can(t *testing.T) {
	teacher := Actor{UserID: "t1", Role: RoleTeacher}
	clerk := Actor{UserID: "c1", Role: RoleClerk}
	hod := Actor{UserID: "h1", Role: RoleHOD}
	student := Actor{UserID: "s1", Role: RoleStudent}
	anonymous := Actor{Role: RoleHOD}

	assert.True(t, teacher.Can(PermissionLeaveTeacherDecide))
	assert.True(t, clerk.Can(PermissionLeaveTeacherDecide))
	assert.False(t, teacher.Can(PermissionLeaveFinalDecide))
	assert.True(t, hod.Can(PermissionLeaveFinalDecide))
	assert.False(t, hod.Can(PermissionLeaveTeacherDecide))
	assert.True(t, student.Can(PermissionLeaveCreate))
	assert.False(t, student.Can(PermissionLeaveViewAll))
	for _, reviewer := range []Actor{teacher, clerk, hod} {
		assert.True(t, reviewer.Can(PermissionLeaveViewAll), reviewer.Role)
	}
	assert.False(t, anonymous.Can(PermissionLeaveFinalDecide))
}

func TestProfile_DisplayName(t *testing.T) {
	assert.Equal(t, "Asha", Profile{FullName: "Asha", Email: "a@x.org"}.DisplayName())
	assert.Equal(t, "a@x.org", Profile{Email: "a@x.org"}.DisplayName())
	assert.Equal(t, UnknownName, Profile{}.DisplayName())
}
