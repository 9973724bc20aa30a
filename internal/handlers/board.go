package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pneuforte/recruitment-portal/internal/models"
	"github.com/pneuforte/recruitment-portal/internal/pipeline"
)

// PipelineBoard returns every candidate grouped by stage, in board order,
// for the drag-and-drop view.
func (h *Handler) PipelineBoard(c *gin.Context) {
	var candidates []models.Candidate
	err := h.DB.WithContext(c.Request.Context()).Preload("Vacancy").
		Order("submitted_at DESC").
		Find(&candidates).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load candidates"})
		return
	}

	board := make(map[string][]models.Candidate, len(pipeline.Stages))
	for _, stage := range pipeline.Stages {
		board[string(stage)] = []models.Candidate{}
	}
	for _, candidate := range candidates {
		board[candidate.Stage] = append(board[candidate.Stage], candidate)
	}
	c.JSON(http.StatusOK, board)
}

// TransitionStage moves a candidate through the pipeline. Dropping a card
// on its own column is a no-op handled by the engine.
func (h *Handler) TransitionStage(c *gin.Context) {
	candidateID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid candidate id"})
		return
	}

	var req struct {
		Stage string `json:"stage" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "stage is required"})
		return
	}

	stage, err := pipeline.ParseStage(req.Stage)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.Engine.Transition(c.Request.Context(), candidateID, stage)
	switch {
	case errors.Is(err, pipeline.ErrInvalidStage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, pipeline.ErrTerminalStage):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, pipeline.ErrCandidateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "candidate not found"})
	case err != nil:
		log.WithError(err).Error("stage transition failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to move candidate"})
	default:
		c.JSON(http.StatusOK, gin.H{"id": candidateID, "stage": stage})
	}
}
