package notify

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pneuforte/recruitment-portal/internal/mailer"
	"github.com/pneuforte/recruitment-portal/internal/models"
	"github.com/pneuforte/recruitment-portal/internal/pipeline"
)

// Sender is the part of the mail client the notifier needs.
type Sender interface {
	Send(ctx context.Context, to, subject, html string) error
}

// StageNotifier emails a candidate when their pipeline stage changes. It
// also covers the confirmation mail on submission, which is just a
// notification for the submitted stage.
type StageNotifier struct {
	db      *gorm.DB
	sender  Sender
	company string
}

func NewStageNotifier(db *gorm.DB, sender Sender, company string) *StageNotifier {
	return &StageNotifier{db: db, sender: sender, company: company}
}

func (n *StageNotifier) NotifyStageChange(ctx context.Context, candidateID uuid.UUID, stage pipeline.Stage) error {
	var candidate models.Candidate
	if err := n.db.WithContext(ctx).First(&candidate, "id = ?", candidateID).Error; err != nil {
		return fmt.Errorf("load candidate: %w", err)
	}

	var vacancy models.Vacancy
	vacancyTitle := "the position you applied for"
	if err := n.db.WithContext(ctx).First(&vacancy, "id = ?", candidate.VacancyID).Error; err == nil {
		vacancyTitle = vacancy.Title
	}

	subject, html := mailer.StageEmail(n.company, candidate.Name, vacancyTitle, stage)
	return n.sender.Send(ctx, candidate.Email, subject, html)
}
