package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pneuforte/recruitment-portal/internal/models"
)

const identityKey = "identity"

// Identify resolves the caller's identity from the bearer token, looking
// the role up per request. Requests without a valid token continue as
// anonymous; route-level gates decide what anonymous may do.
func Identify(tokens *TokenProvider, db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(identityKey, resolveIdentity(c, tokens, db))
		c.Next()
	}
}

func resolveIdentity(c *gin.Context, tokens *TokenProvider, db *gorm.DB) Identity {
	header := c.GetHeader("Authorization")
	if header == "" {
		return AnonymousIdentity()
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return AnonymousIdentity()
	}
	claims, err := tokens.Parse(parts[1])
	if err != nil {
		return AnonymousIdentity()
	}
	userID, err := uuid.Parse(claims.Sub)
	if err != nil {
		return AnonymousIdentity()
	}

	// The role is looked up per request, never cached beyond it. A user
	// with several role rows gets the most privileged one.
	role := models.RoleApplicant
	var userRoles []models.UserRole
	if err := db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).Find(&userRoles).Error; err == nil {
		for _, r := range userRoles {
			switch r.Role {
			case models.RoleAdmin:
				role = models.RoleAdmin
			case models.RoleHR:
				if role != models.RoleAdmin {
					role = models.RoleHR
				}
			}
		}
	}

	return Identity{UserID: userID, Email: claims.Email, Role: role}
}

// FromContext returns the identity placed by Identify. Missing identity is
// treated as anonymous.
func FromContext(c *gin.Context) Identity {
	if v, ok := c.Get(identityKey); ok {
		if identity, ok := v.(Identity); ok {
			return identity
		}
	}
	return AnonymousIdentity()
}

// RequireAuth rejects anonymous callers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if FromContext(c).Anonymous {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Next()
	}
}

// RequireHR gates the back-office routes to HR and admin identities.
func RequireHR() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := FromContext(c)
		if identity.Anonymous {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		if !identity.IsHR() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "access denied"})
			return
		}
		c.Next()
	}
}
