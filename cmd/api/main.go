package main

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/pneuforte/recruitment-portal/internal/assistant"
	"github.com/pneuforte/recruitment-portal/internal/auth"
	"github.com/pneuforte/recruitment-portal/internal/config"
	"github.com/pneuforte/recruitment-portal/internal/db"
	"github.com/pneuforte/recruitment-portal/internal/handlers"
	"github.com/pneuforte/recruitment-portal/internal/llm"
	"github.com/pneuforte/recruitment-portal/internal/mailer"
	"github.com/pneuforte/recruitment-portal/internal/middleware"
	"github.com/pneuforte/recruitment-portal/internal/notify"
	"github.com/pneuforte/recruitment-portal/internal/pipeline"
	"github.com/pneuforte/recruitment-portal/internal/storage"
	"github.com/pneuforte/recruitment-portal/internal/summary"
)

var log = logrus.New()

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	dbConn, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := db.Migrate(dbConn); err != nil {
		log.Fatal(err)
	}

	chatClient := llm.NewClient(cfg.AIGatewayURL, cfg.AIAPIKey, cfg.AIModel)
	mailClient := mailer.NewClient(cfg.ResendAPIKey, cfg.EmailFrom)
	blobClient := storage.NewClient(cfg.StorageURL, cfg.StorageKey, cfg.StorageBucket)

	notifier := notify.NewStageNotifier(dbConn, mailClient, cfg.CompanyName)
	engine := pipeline.NewEngine(pipeline.NewGormStore(dbConn), notifier)
	orchestrator := assistant.NewOrchestrator(chatClient, assistant.NewGormDirectory(dbConn), cfg.CompanyName)
	summarizer := summary.NewSummarizer(dbConn, chatClient)

	var limiter middleware.Limiter = middleware.NewMemoryLimiter()
	if cfg.RedisAddr != "" {
		limiter = middleware.NewRedisLimiter(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
		log.Info("using redis rate limiter at " + cfg.RedisAddr)
	}

	r := gin.Default()
	handlers.SetupRoutes(r, &handlers.Handler{
		DB:           dbConn,
		Engine:       engine,
		Orchestrator: orchestrator,
		Storage:      blobClient,
		Notifier:     notifier,
		Summarizer:   summarizer,
		Tokens:       auth.NewTokenProvider(cfg.JWTSecret),
		Limiter:      limiter,
	})

	log.Printf("recruitment portal API listening on %s", cfg.HTTPPort)
	if err := r.Run(cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
