package pipeline

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pneuforte/recruitment-portal/internal/models"
)

// GormStore persists candidate stages through the shared database handle.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) GetStage(ctx context.Context, candidateID uuid.UUID) (Stage, error) {
	var candidate models.Candidate
	err := s.db.WithContext(ctx).Select("stage").First(&candidate, "id = ?", candidateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrCandidateNotFound
	}
	if err != nil {
		return "", err
	}
	return Stage(candidate.Stage), nil
}

func (s *GormStore) SetStage(ctx context.Context, candidateID uuid.UUID, stage Stage) error {
	result := s.db.WithContext(ctx).Model(&models.Candidate{}).
		Where("id = ?", candidateID).
		Update("stage", string(stage))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCandidateNotFound
	}
	return nil
}
