package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pneuforte/recruitment-portal/internal/models"
)

// AddNote appends an internal note to a candidate. Notes are never edited
// or deleted afterwards.
func (h *Handler) AddNote(c *gin.Context) {
	candidateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid candidate id"})
		return
	}

	var req struct {
		Text string `json:"text" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "note text is required"})
		return
	}

	var count int64
	if err := h.DB.WithContext(c.Request.Context()).Model(&models.Candidate{}).
		Where("id = ?", candidateID).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check candidate"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "candidate not found"})
		return
	}

	note := models.InternalNote{
		ID:          uuid.New(),
		CandidateID: candidateID,
		Text:        req.Text,
	}
	if err := h.DB.WithContext(c.Request.Context()).Create(&note).Error; err != nil {
		log.WithError(err).Error("note insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save note"})
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (h *Handler) ListNotes(c *gin.Context) {
	candidateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid candidate id"})
		return
	}

	var notes []models.InternalNote
	err = h.DB.WithContext(c.Request.Context()).
		Where("candidate_id = ?", candidateID).
		Order("created_at DESC").
		Find(&notes).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load notes"})
		return
	}
	c.JSON(http.StatusOK, notes)
}
