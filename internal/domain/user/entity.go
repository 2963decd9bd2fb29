package user

import "strings"

type Role string

const (
	RoleStudent Role = "student" // Submits leave requests
	RoleTeacher Role = "teacher" // First-stage approval
	RoleClerk   Role = "clerk"   // First-stage approval on behalf of teachers
	RoleHOD     Role = "hod"     // Final approval
)

// ParseRole normalises stored role names; profiles written by older clients
// use "Clerk" and "HOD".
func ParseRole(s string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleTeacher:
		return RoleTeacher
	case RoleClerk:
		return RoleClerk
	case RoleHOD:
		return RoleHOD
	case RoleStudent:
		return RoleStudent
	}
	return ""
}

// Profile is the users/{uid} document.
type Profile struct {
	ID       string
	FullName string
	Email    string
	Role     Role
	PhotoURL string
}

// DisplayName falls back to the e-mail when no name was recorded.
func (p Profile) DisplayName() string {
	if strings.TrimSpace(p.FullName) != "" {
		return p.FullName
	}
	if p.Email != "" {
		return p.Email
	}
	return UnknownName
}

// UnknownName is shown when an owner's profile cannot be resolved.
const UnknownName = "Unknown"

// Actor is the authenticated caller of an operation.
type Actor struct {
	UserID string
	Email  string
	Role   Role
}

// IsAuthenticated reports whether the actor carries an identity.
func (a Actor) IsAuthenticated() bool {
	return a.UserID != ""
}

// Can checks the actor's role against the permission table.
func (a Actor) Can(permission Permission) bool {
	return a.IsAuthenticated() && HasPermission(a.Role, permission)
}
