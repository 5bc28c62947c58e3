package domain

import "strings"

type Role string

const (
	RoleOrganizer Role = "organizer"
	RoleAdmin     Role = "admin"
)

type User struct {
	ID    string
	Name  string
	Email string
	Role  Role
}

// CanManage reports whether u may edit or delete e.
// Admins manage every event; organizers only their own.
func CanManage(u *User, e Event) bool {
	if u == nil {
		return false
	}
	if u.Role == RoleAdmin {
		return true
	}
	return strings.TrimSpace(u.ID) != "" && u.ID == e.OrganizerID
}
