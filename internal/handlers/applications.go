package handlers

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/pneuforte/recruitment-portal/internal/assistant"
	"github.com/pneuforte/recruitment-portal/internal/auth"
	"github.com/pneuforte/recruitment-portal/internal/models"
	"github.com/pneuforte/recruitment-portal/internal/pipeline"
)

const maxResumeBytes = 10 << 20

var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

type applicationForm struct {
	Name  string
	Email string
	Phone string
	TaxID string
}

// validateApplicationForm checks every field before anything is written
// anywhere. The returned tax id is normalized to bare digits.
func validateApplicationForm(form applicationForm, filename string) (string, error) {
	if strings.TrimSpace(form.Name) == "" {
		return "", fmt.Errorf("name is required")
	}
	if !emailPattern.MatchString(form.Email) {
		return "", fmt.Errorf("invalid email")
	}
	if strings.TrimSpace(form.Phone) == "" {
		return "", fmt.Errorf("phone is required")
	}
	taxID, err := assistant.NormalizeTaxID(form.TaxID)
	if err != nil {
		return "", err
	}
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		return "", fmt.Errorf("only PDF resumes are accepted")
	}
	return taxID, nil
}

// SubmitApplication takes the public application form: multipart fields
// plus the resume file. The resume is validated as a real PDF before any
// network write happens; only then it goes to blob storage and the
// candidate row is inserted with the stage defaulted to submitted. The
// confirmation email and the AI summary both run after the response, best
// effort.
func (h *Handler) SubmitApplication(c *gin.Context) {
	vacancyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vacancy id"})
		return
	}

	var vacancy models.Vacancy
	if err := h.DB.WithContext(c.Request.Context()).First(&vacancy, "id = ?", vacancyID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "vacancy not found"})
		return
	}
	if vacancy.Status != models.VacancyActive {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vacancy is not open for applications"})
		return
	}

	form := applicationForm{
		Name:  c.PostForm("name"),
		Email: c.PostForm("email"),
		Phone: c.PostForm("phone"),
		TaxID: c.PostForm("tax_id"),
	}
	file, err := c.FormFile("resume")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume file is required"})
		return
	}
	taxID, err := validateApplicationForm(form, file.Filename)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if file.Size > maxResumeBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume file too large"})
		return
	}

	opened, err := file.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read resume"})
		return
	}
	defer opened.Close()
	resume, err := io.ReadAll(opened)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read resume"})
		return
	}
	if err := api.Validate(bytes.NewReader(resume), nil); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resume is not a valid PDF"})
		return
	}

	key := fmt.Sprintf("%d_%s", time.Now().Unix(), filepath.Base(file.Filename))
	if err := h.Storage.Upload(c.Request.Context(), key, resume, "application/pdf"); err != nil {
		log.WithError(err).Error("resume upload failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store resume"})
		return
	}

	candidate := models.Candidate{
		ID:        uuid.New(),
		VacancyID: vacancyID,
		Name:      strings.TrimSpace(form.Name),
		Email:     form.Email,
		Phone:     form.Phone,
		TaxID:     taxID,
		ResumeURL: h.Storage.PublicURL(key),
		Stage:     string(pipeline.StageSubmitted),
	}
	identity := auth.FromContext(c)
	if !identity.Anonymous {
		userID := identity.UserID
		candidate.UserID = &userID
	}
	if err := h.DB.WithContext(c.Request.Context()).Create(&candidate).Error; err != nil {
		log.WithError(err).Error("candidate insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save application"})
		return
	}

	// Confirmation mail and AI summary are fire-and-forget; the
	// application is accepted either way.
	go func(id uuid.UUID) {
		if err := h.Notifier.NotifyStageChange(context.Background(), id, pipeline.StageSubmitted); err != nil {
			log.WithError(err).WithField("candidate_id", id).Error("confirmation email failed")
		}
	}(candidate.ID)
	h.Summarizer.GenerateAsync(candidate.ID, resume)

	c.JSON(http.StatusCreated, gin.H{
		"application_id": candidate.ID,
		"stage":          candidate.Stage,
	})
}

// MyApplications lists the calling user's own applications. Anonymous
// submissions have no owner and are not visible here.
func (h *Handler) MyApplications(c *gin.Context) {
	identity := auth.FromContext(c)

	var candidates []models.Candidate
	err := h.DB.WithContext(c.Request.Context()).Preload("Vacancy").
		Where("user_id = ?", identity.UserID).
		Order("submitted_at DESC").
		Find(&candidates).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load applications"})
		return
	}
	c.JSON(http.StatusOK, candidates)
}
