package assistant

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pneuforte/recruitment-portal/internal/models"
)

// Directory is the data access the tool handlers need. Backed by the
// relational store in production, by fakes in tests.
type Directory interface {
	ActiveVacancies(ctx context.Context) ([]VacancySummary, error)
	ApplicationsByUser(ctx context.Context, userID uuid.UUID) ([]ApplicationStatus, error)
	ApplicationsByTaxID(ctx context.Context, taxID string) ([]ApplicationStatus, error)
	CandidatesByStage(ctx context.Context, stage string) ([]CandidateRecord, error)
	CandidatesByName(ctx context.Context, name string) ([]CandidateRecord, error)
	Statistics(ctx context.Context) (*Statistics, error)
}

type VacancySummary struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Area         string    `json:"area"`
	Location     string    `json:"location"`
	WorkModel    string    `json:"work_model"`
	ContractType string    `json:"contract_type"`
	Salary       *string   `json:"salary,omitempty"`
}

type ApplicationStatus struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	VacancyTitle string    `json:"vacancy_title"`
	Area         string    `json:"area"`
	Stage        string    `json:"stage"`
	SubmittedAt  time.Time `json:"submitted_at"`
	// MaskedTaxID is only set on the tax-id lookup path.
	MaskedTaxID string `json:"tax_id,omitempty"`
}

type CandidateRecord struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Stage        string    `json:"stage"`
	SubmittedAt  time.Time `json:"submitted_at"`
	VacancyTitle string    `json:"vacancy_title"`
}

type Statistics struct {
	TotalCandidates   int64            `json:"total_candidates"`
	TotalVacancies    int64            `json:"total_vacancies"`
	StageDistribution map[string]int64 `json:"stage_distribution"`
}

// GormDirectory answers the tool lookups from Postgres.
type GormDirectory struct {
	db *gorm.DB
}

func NewGormDirectory(db *gorm.DB) *GormDirectory {
	return &GormDirectory{db: db}
}

func (d *GormDirectory) ActiveVacancies(ctx context.Context) ([]VacancySummary, error) {
	var vacancies []models.Vacancy
	err := d.db.WithContext(ctx).
		Where("status = ?", models.VacancyActive).
		Order("created_at DESC").
		Find(&vacancies).Error
	if err != nil {
		return nil, err
	}
	out := make([]VacancySummary, 0, len(vacancies))
	for _, v := range vacancies {
		out = append(out, VacancySummary{
			ID:           v.ID,
			Title:        v.Title,
			Area:         v.Area,
			Location:     v.Location,
			WorkModel:    v.WorkModel,
			ContractType: v.ContractType,
			Salary:       v.Salary,
		})
	}
	return out, nil
}

func (d *GormDirectory) ApplicationsByUser(ctx context.Context, userID uuid.UUID) ([]ApplicationStatus, error) {
	var candidates []models.Candidate
	err := d.db.WithContext(ctx).Preload("Vacancy").
		Where("user_id = ?", userID).
		Order("submitted_at DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	return toApplicationStatuses(candidates), nil
}

func (d *GormDirectory) ApplicationsByTaxID(ctx context.Context, taxID string) ([]ApplicationStatus, error) {
	var candidates []models.Candidate
	err := d.db.WithContext(ctx).Preload("Vacancy").
		Where("tax_id = ?", taxID).
		Order("submitted_at DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	return toApplicationStatuses(candidates), nil
}

func (d *GormDirectory) CandidatesByStage(ctx context.Context, stage string) ([]CandidateRecord, error) {
	var candidates []models.Candidate
	err := d.db.WithContext(ctx).Preload("Vacancy").
		Where("stage = ?", stage).
		Order("submitted_at DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	return toCandidateRecords(candidates), nil
}

func (d *GormDirectory) CandidatesByName(ctx context.Context, name string) ([]CandidateRecord, error) {
	var candidates []models.Candidate
	err := d.db.WithContext(ctx).Preload("Vacancy").
		Where("name ILIKE ?", "%"+name+"%").
		Order("submitted_at DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, err
	}
	return toCandidateRecords(candidates), nil
}

func (d *GormDirectory) Statistics(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{StageDistribution: make(map[string]int64)}
	if err := d.db.WithContext(ctx).Model(&models.Candidate{}).Count(&stats.TotalCandidates).Error; err != nil {
		return nil, err
	}
	if err := d.db.WithContext(ctx).Model(&models.Vacancy{}).Count(&stats.TotalVacancies).Error; err != nil {
		return nil, err
	}

	type stageCount struct {
		Stage string
		Count int64
	}
	var rows []stageCount
	err := d.db.WithContext(ctx).Model(&models.Candidate{}).
		Select("stage, count(*) as count").
		Group("stage").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		stats.StageDistribution[row.Stage] = row.Count
	}
	return stats, nil
}

func toApplicationStatuses(candidates []models.Candidate) []ApplicationStatus {
	out := make([]ApplicationStatus, 0, len(candidates))
	for _, c := range candidates {
		status := ApplicationStatus{
			ID:          c.ID,
			Name:        c.Name,
			Stage:       c.Stage,
			SubmittedAt: c.SubmittedAt,
		}
		if c.Vacancy != nil {
			status.VacancyTitle = c.Vacancy.Title
			status.Area = c.Vacancy.Area
		} else {
			status.VacancyTitle = "vacancy not found"
		}
		out = append(out, status)
	}
	return out
}

func toCandidateRecords(candidates []models.Candidate) []CandidateRecord {
	out := make([]CandidateRecord, 0, len(candidates))
	for _, c := range candidates {
		record := CandidateRecord{
			ID:          c.ID,
			Name:        c.Name,
			Email:       c.Email,
			Phone:       c.Phone,
			Stage:       c.Stage,
			SubmittedAt: c.SubmittedAt,
		}
		if c.Vacancy != nil {
			record.VacancyTitle = c.Vacancy.Title
		} else {
			record.VacancyTitle = "vacancy not found"
		}
		out = append(out, record)
	}
	return out
}
