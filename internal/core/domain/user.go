package domain

import "fmt"

// Role is a named capability tier assigned to a user by the server.
// The set is closed: the client only ever reads roles, never invents them.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleOperator Role = "operator"
	RoleViewer   Role = "viewer"
)

// Roles lists every valid role, in privilege order.
var Roles = []Role{RoleAdmin, RoleManager, RoleOperator, RoleViewer}

// ParseRole validates a wire-level role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleManager, RoleOperator, RoleViewer:
		return Role(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRole, s)
}

// User models the authenticated actor as reported by the server.
// Profiles is the server-assigned role set; the client never mutates it.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	Profiles []Role `json:"profiles"`
	IsActive bool   `json:"is_active"`
}

// HasAnyProfile reports whether the user holds at least one of the given roles.
func (u *User) HasAnyProfile(roles []Role) bool {
	for _, have := range u.Profiles {
		for _, want := range roles {
			if have == want {
				return true
			}
		}
	}
	return false
}
