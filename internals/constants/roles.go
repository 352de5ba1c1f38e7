package constants

import "fmt"

const (
	RoleNone       = "none"
	RoleInstructor = "instructor"
	RoleAdmin      = "admin"
)

// Template pesan error role
const (
	ErrOnlyInstructorsCanAccess = "Only instructors may access %s."
	ErrOnlyAdminsCanAccess      = "Only admins may access %s."
)

func RoleErrorInstructor(feature string) string {
	return fmt.Sprintf(ErrOnlyInstructorsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

// RoleError picks the message template matching a required role.
func RoleError(role, feature string) string {
	switch role {
	case RoleAdmin:
		return RoleErrorAdmin(feature)
	case RoleInstructor:
		return RoleErrorInstructor(feature)
	default:
		return fmt.Sprintf("Role %q is required for %s.", role, feature)
	}
}

var AllRoles = []string{
	RoleNone,
	RoleInstructor,
	RoleAdmin,
}

func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}
