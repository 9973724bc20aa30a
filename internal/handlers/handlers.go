package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pneuforte/recruitment-portal/internal/assistant"
	"github.com/pneuforte/recruitment-portal/internal/auth"
	"github.com/pneuforte/recruitment-portal/internal/middleware"
	"github.com/pneuforte/recruitment-portal/internal/notify"
	"github.com/pneuforte/recruitment-portal/internal/pipeline"
	"github.com/pneuforte/recruitment-portal/internal/storage"
	"github.com/pneuforte/recruitment-portal/internal/summary"
)

var log = logrus.New()

type Handler struct {
	DB           *gorm.DB
	Engine       *pipeline.Engine
	Orchestrator *assistant.Orchestrator
	Storage      *storage.Client
	Notifier     *notify.StageNotifier
	Summarizer   *summary.Summarizer
	Tokens       *auth.TokenProvider
	Limiter      middleware.Limiter
}

func SetupRoutes(r *gin.Engine, h *Handler) {
	r.Use(middleware.CORS())
	r.Use(auth.Identify(h.Tokens, h.DB))

	r.GET("/health", HealthCheck)

	// public surface
	r.GET("/api/v1/vacancies", h.ListActiveVacancies)
	r.GET("/api/v1/vacancies/:id", h.GetVacancy)
	r.POST("/api/v1/vacancies/:id/apply",
		middleware.RateLimit(h.Limiter, "apply", 5, time.Minute),
		h.SubmitApplication)
	r.POST("/api/v1/assistant/chat",
		middleware.RateLimit(h.Limiter, "chat", 20, time.Minute),
		h.AssistantChat)

	// authenticated applicants
	r.GET("/api/v1/me/applications", auth.RequireAuth(), h.MyApplications)

	// HR back-office
	hr := r.Group("/api/v1/hr", auth.RequireHR())
	{
		hr.GET("/vacancies", h.ListAllVacancies)
		hr.POST("/vacancies", h.CreateVacancy)
		hr.PATCH("/vacancies/:id", h.UpdateVacancy)
		hr.PATCH("/vacancies/:id/status", h.UpdateVacancyStatus)
		hr.DELETE("/vacancies/:id", h.DeleteVacancy)

		hr.GET("/pipeline", h.PipelineBoard)
		hr.PATCH("/candidates/:id/stage", h.TransitionStage)
		hr.GET("/candidates/:id/notes", h.ListNotes)
		hr.POST("/candidates/:id/notes", h.AddNote)

		hr.GET("/stats", h.SystemStats)
		hr.POST("/users", h.CreateUser)
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
