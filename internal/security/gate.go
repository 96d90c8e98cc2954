package security

import "bloodbank-backend/internal/domain"

// Identity is the authenticated principal a gate decision is made against.
type Identity struct {
	UserID int32
	Email  string
	Role   domain.Role
}

type DecisionKind string

const (
	DecisionAllow          DecisionKind = "allow"
	DecisionRedirectLogin  DecisionKind = "redirect_login"
	DecisionRedirectToHome DecisionKind = "redirect_role_home"
)

// Decision is the outcome of an authorization check. Location is the
// client-facing redirect target for the two redirect kinds.
type Decision struct {
	Kind     DecisionKind
	Location string
}

// RoleHomePath maps a role to its dashboard path.
func RoleHomePath(role domain.Role) string {
	switch role {
	case domain.RoleDonor:
		return "/donor/dashboard"
	case domain.RoleReceiver:
		return "/receiver/dashboard"
	case domain.RoleAdmin:
		return "/admin/dashboard"
	default:
		return "/login"
	}
}

// Authorize decides access to a view guarded by required. A nil identity is
// sent to login; a role mismatch is sent to the identity's own dashboard
// rather than an error page. Pure function, no side effects.
func Authorize(required domain.Role, identity *Identity) Decision {
	if identity == nil {
		return Decision{Kind: DecisionRedirectLogin, Location: "/login"}
	}
	if required != "" && required != identity.Role {
		return Decision{Kind: DecisionRedirectToHome, Location: RoleHomePath(identity.Role)}
	}
	return Decision{Kind: DecisionAllow}
}
