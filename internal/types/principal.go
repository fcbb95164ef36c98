package types

import "github.com/google/uuid"

// Principal is the authenticated identity attached to a request by the auth
// middleware. Handlers read it back through middleware.CurrentPrincipal
// instead of re-parsing token claims.
type Principal struct {
	ChefID uuid.UUID
	Role   string
}

// IsAdmin reports whether the principal may act on any chef's resources.
func (p Principal) IsAdmin() bool {
	return p.Role == "admin"
}
