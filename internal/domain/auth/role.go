package auth

import (
	"strings"

	"github.com/leavedesk/leave-approval-backend/internal/domain/user"
)

// RoleResolver assigns a role from the sign-in e-mail address. StudentDomain
// is matched against the part after "@"; HODKeyword may appear anywhere in
// the address.
type RoleResolver struct {
	StudentDomain string
	ClerkEmails   []string
	HODEmails     []string
	HODKeyword    string
	TeacherEmails []string
}

// Resolve checks, in order: student domain, clerk list, HOD list or
// keyword, teacher list. Anything else is refused.
func (r RoleResolver) Resolve(email string) (user.Role, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		return "", ErrUnauthorizedEmail
	}
	domain := email[at+1:]

	switch {
	case r.StudentDomain != "" && domain == strings.ToLower(strings.TrimPrefix(r.StudentDomain, "@")):
		return user.RoleStudent, nil
	case containsFold(r.ClerkEmails, email):
		return user.RoleClerk, nil
	case containsFold(r.HODEmails, email),
		r.HODKeyword != "" && strings.Contains(email, strings.ToLower(r.HODKeyword)):
		return user.RoleHOD, nil
	case containsFold(r.TeacherEmails, email):
		return user.RoleTeacher, nil
	}
	return "", ErrUnauthorizedEmail
}

func containsFold(list []string, email string) bool {
	for _, e := range list {
		if strings.EqualFold(strings.TrimSpace(e), email) {
			return true
		}
	}
	return false
}
