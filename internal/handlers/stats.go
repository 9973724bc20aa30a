package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pneuforte/recruitment-portal/internal/models"
)

// SystemStats feeds the HR metrics dashboard: totals plus the per-stage
// distribution.
func (h *Handler) SystemStats(c *gin.Context) {
	ctx := c.Request.Context()

	var totalCandidates, totalVacancies, activeVacancies int64
	if err := h.DB.WithContext(ctx).Model(&models.Candidate{}).Count(&totalCandidates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	if err := h.DB.WithContext(ctx).Model(&models.Vacancy{}).Count(&totalVacancies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}
	if err := h.DB.WithContext(ctx).Model(&models.Vacancy{}).
		Where("status = ?", models.VacancyActive).Count(&activeVacancies).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}

	type stageCount struct {
		Stage string `json:"stage"`
		Count int64  `json:"count"`
	}
	var perStage []stageCount
	err := h.DB.WithContext(ctx).Model(&models.Candidate{}).
		Select("stage, count(*) as count").
		Group("stage").
		Scan(&perStage).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load statistics"})
		return
	}

	distribution := make(map[string]int64, len(perStage))
	for _, row := range perStage {
		distribution[row.Stage] = row.Count
	}

	c.JSON(http.StatusOK, gin.H{
		"total_candidates":   totalCandidates,
		"total_vacancies":    totalVacancies,
		"active_vacancies":   activeVacancies,
		"stage_distribution": distribution,
	})
}
