package user

type Permission string

const (
	// Self Management
	PermissionViewOwnProfile Permission = "profile.view_own"
	PermissionEditOwnProfile Permission = "profile.edit_own"

	// Leave Management
	PermissionLeaveViewOwn       Permission = "leave.view_own"
	PermissionLeaveCreate        Permission = "leave.create"
	PermissionLeaveViewAll       Permission = "leave.view_all"
	PermissionLeaveTeacherDecide Permission = "leave.teacher_decide"
	PermissionLeaveFinalDecide   Permission = "leave.final_decide"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleStudent: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveViewOwn,
		PermissionLeaveCreate,
	},
	RoleTeacher: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveViewAll,
		PermissionLeaveTeacherDecide,
	},
	RoleClerk: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveViewAll,
		PermissionLeaveTeacherDecide,
	},
	RoleHOD: {
		PermissionViewOwnProfile,
		PermissionEditOwnProfile,
		PermissionLeaveViewAll,
		PermissionLeaveFinalDecide,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
