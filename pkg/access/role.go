// Package access defines the role model, the navigation and route tables,
// and the guard decision logic shared by the server and the client CLI.
// The tables here are the single auditable source of the application's
// authorization policy.
package access

import "fmt"

// Role is the sole authorization axis of the application.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleChild  Role = "child"
)

// Roles lists every valid role in a stable order.
var Roles = []Role{RoleAdmin, RoleMember, RoleChild}

// ParseRole validates a role string against the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleMember, RoleChild:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// Valid reports whether r is a member of the closed role set.
func (r Role) Valid() bool {
	_, err := ParseRole(string(r))
	return err == nil
}

// Principal is the authenticated identity driving authorization decisions.
type Principal struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
}
