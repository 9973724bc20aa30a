package auth

import (
	"github.com/google/uuid"

	"github.com/pneuforte/recruitment-portal/internal/models"
)

// Identity is resolved once per request and passed explicitly into every
// core operation. It is never cached across requests.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   models.Role
	// Anonymous is true when the request carried no valid session token.
	Anonymous bool
}

func AnonymousIdentity() Identity {
	return Identity{Anonymous: true}
}

// IsHR reports whether the identity may use the HR back-office. Admins are
// a superset of HR everywhere in the product.
func (i Identity) IsHR() bool {
	return !i.Anonymous && (i.Role == models.RoleHR || i.Role == models.RoleAdmin)
}
