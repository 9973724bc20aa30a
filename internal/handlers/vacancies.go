package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pneuforte/recruitment-portal/internal/models"
)

type vacancyRequest struct {
	Title        string  `json:"title" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Requirements string  `json:"requirements" binding:"required"`
	Area         string  `json:"area" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	WorkModel    string  `json:"work_model" binding:"required"`
	ContractType string  `json:"contract_type" binding:"required"`
	Salary       *string `json:"salary"`
	Status       string  `json:"status"`
}

func parseVacancyStatus(s string) (models.VacancyStatus, bool) {
	status := models.VacancyStatus(strings.ToLower(strings.TrimSpace(s)))
	switch status {
	case models.VacancyActive, models.VacancyPaused, models.VacancyClosed:
		return status, true
	default:
		return "", false
	}
}

// ListActiveVacancies is the public listing; paused and closed vacancies
// never show up here.
func (h *Handler) ListActiveVacancies(c *gin.Context) {
	var vacancies []models.Vacancy
	err := h.DB.WithContext(c.Request.Context()).
		Where("status = ?", models.VacancyActive).
		Order("created_at DESC").
		Find(&vacancies).Error
	if err != nil {
		log.WithError(err).Error("listing active vacancies failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load vacancies"})
		return
	}
	c.JSON(http.StatusOK, vacancies)
}

func (h *Handler) GetVacancy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vacancy id"})
		return
	}

	var vacancy models.Vacancy
	err = h.DB.WithContext(c.Request.Context()).First(&vacancy, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "vacancy not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load vacancy"})
		return
	}
	c.JSON(http.StatusOK, vacancy)
}

func (h *Handler) ListAllVacancies(c *gin.Context) {
	var vacancies []models.Vacancy
	err := h.DB.WithContext(c.Request.Context()).
		Order("created_at DESC").
		Find(&vacancies).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load vacancies"})
		return
	}
	c.JSON(http.StatusOK, vacancies)
}

func (h *Handler) CreateVacancy(c *gin.Context) {
	var req vacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vacancy data: " + err.Error()})
		return
	}

	status := models.VacancyActive
	if req.Status != "" {
		parsed, ok := parseVacancyStatus(req.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active, paused or closed"})
			return
		}
		status = parsed
	}

	vacancy := models.Vacancy{
		ID:           uuid.New(),
		Title:        req.Title,
		Description:  req.Description,
		Requirements: req.Requirements,
		Area:         req.Area,
		Location:     req.Location,
		WorkModel:    req.WorkModel,
		ContractType: req.ContractType,
		Salary:       req.Salary,
		Status:       status,
	}
	if err := h.DB.WithContext(c.Request.Context()).Create(&vacancy).Error; err != nil {
		log.WithError(err).Error("vacancy creation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save vacancy"})
		return
	}
	c.JSON(http.StatusCreated, vacancy)
}

func (h *Handler) UpdateVacancy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vacancy id"})
		return
	}

	var vacancy models.Vacancy
	err = h.DB.WithContext(c.Request.Context()).First(&vacancy, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "vacancy not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load vacancy"})
		return
	}

	var req vacancyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vacancy data: " + err.Error()})
		return
	}

	vacancy.Title = req.Title
	vacancy.Description = req.Description
	vacancy.Requirements = req.Requirements
	vacancy.Area = req.Area
	vacancy.Location = req.Location
	vacancy.WorkModel = req.WorkModel
	vacancy.ContractType = req.ContractType
	vacancy.Salary = req.Salary
	if req.Status != "" {
		parsed, ok := parseVacancyStatus(req.Status)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active, paused or closed"})
			return
		}
		vacancy.Status = parsed
	}

	if err := h.DB.WithContext(c.Request.Context()).Save(&vacancy).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save vacancy"})
		return
	}
	c.JSON(http.StatusOK, vacancy)
}

func (h *Handler) UpdateVacancyStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vacancy id"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status is required"})
		return
	}
	status, ok := parseVacancyStatus(req.Status)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "status must be active, paused or closed"})
		return
	}

	result := h.DB.WithContext(c.Request.Context()).Model(&models.Vacancy{}).
		Where("id = ?", id).
		Update("status", status)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update status"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "vacancy not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": id, "status": status})
}

func (h *Handler) DeleteVacancy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vacancy id"})
		return
	}

	result := h.DB.WithContext(c.Request.Context()).Delete(&models.Vacancy{}, "id = ?", id)
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete vacancy"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "vacancy not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
