package auth

import "strings"

// Role is the procurement role of the authenticated user.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleReviewer  Role = "reviewer"
	RoleRequester Role = "requester"
)

// Principal is the authorization context handed to every review command by its
// caller. Nothing in the workflow reads the role from ambient state.
type Principal struct {
	UserID string
	Role   Role
}

// ParseRole accepts the role names used by the session layer, including the Spanish
// ones stored by older clients.
func ParseRole(s string) (Role, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin", "administrador":
		return RoleAdmin, true
	case "reviewer", "revisor":
		return RoleReviewer, true
	case "requester", "solicitante":
		return RoleRequester, true
	}
	return "", false
}

func (p Principal) known() bool {
	switch p.Role {
	case RoleAdmin, RoleReviewer, RoleRequester:
		return strings.TrimSpace(p.UserID) != ""
	}
	return false
}

func (p Principal) CanView() bool {
	return p.known()
}

func (p Principal) CanReview() bool {
	return p.known() && (p.Role == RoleAdmin || p.Role == RoleReviewer)
}

func (p Principal) CanReopen() bool {
	return p.known() && (p.Role == RoleAdmin || p.Role == RoleReviewer)
}
