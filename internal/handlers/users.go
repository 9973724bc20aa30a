package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pneuforte/recruitment-portal/internal/models"
)

type createUserRequest struct {
	Email string `json:"email" binding:"required"`
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required"`
}

// CreateUser lets HR register a back-office or applicant account. The
// credential itself lives with the identity provider; this only records
// the identity and its role.
func (h *Handler) CreateUser(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email, name and role are required"})
		return
	}
	if !emailPattern.MatchString(req.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid email"})
		return
	}

	role := models.Role(strings.ToLower(strings.TrimSpace(req.Role)))
	switch role {
	case models.RoleApplicant, models.RoleHR, models.RoleAdmin:
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "role must be applicant, hr or admin"})
		return
	}

	user := models.User{
		ID:    uuid.New(),
		Email: req.Email,
		Name:  req.Name,
	}
	userRole := models.UserRole{
		ID:     uuid.New(),
		UserID: user.ID,
		Role:   role,
	}
	err := h.DB.WithContext(c.Request.Context()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		return tx.Create(&userRole).Error
	})
	if err != nil {
		log.WithError(err).Error("user creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email, "role": role})
}
