package helpers

// Role is the authorization level of a request.
type Role int

const (
	RoleAnonymous Role = iota
	RoleCustomer
	RoleAdministrator
)

func (r Role) String() string {
	switch r {
	case RoleAdministrator:
		return "administrator"
	case RoleCustomer:
		return "customer"
	default:
		return "anonymous"
	}
}

// AccessGuard maps an authenticated identity to a role. The single source
// of truth for the administrator is the configured user id; the role field
// mirrored on user profiles is never consulted.
type AccessGuard struct {
	adminUserID string
}

func NewAccessGuard(adminUserID string) *AccessGuard {
	return &AccessGuard{adminUserID: adminUserID}
}

// ResolveRole returns the role for a user id, RoleAnonymous for an empty one.
func (g *AccessGuard) ResolveRole(userID string) Role {
	if userID == "" {
		return RoleAnonymous
	}
	if g.adminUserID != "" && userID == g.adminUserID {
		return RoleAdministrator
	}
	return RoleCustomer
}

// Authorize reports whether a role meets a requirement. Customer pages
// accept any authenticated role, admin pages only the administrator.
func (g *AccessGuard) Authorize(role Role, required Role) bool {
	if required == RoleAdministrator {
		return role == RoleAdministrator
	}
	return role >= required
}
