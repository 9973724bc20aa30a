package models

import (
	"time"

	"github.com/google/uuid"
)

type VacancyStatus string

const (
	VacancyActive VacancyStatus = "active"
	VacancyPaused VacancyStatus = "paused"
	VacancyClosed VacancyStatus = "closed"
)

type Vacancy struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey" json:"id"`
	Title        string        `gorm:"type:varchar(255);not null" json:"title"`
	Description  string        `gorm:"type:text;not null" json:"description"`
	Requirements string        `gorm:"type:text;not null" json:"requirements"`
	Area         string        `gorm:"type:varchar(100);not null" json:"area"`
	Location     string        `gorm:"type:varchar(100);not null" json:"location"`
	WorkModel    string        `gorm:"type:varchar(50);not null" json:"work_model"`
	ContractType string        `gorm:"type:varchar(50);not null" json:"contract_type"`
	Salary       *string       `gorm:"type:varchar(100)" json:"salary,omitempty"`
	Status       VacancyStatus `gorm:"type:varchar(20);not null;default:active" json:"status"`
	CreatedAt    time.Time     `json:"created_at"`
}

type Candidate struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	VacancyID   uuid.UUID  `gorm:"type:uuid;not null;index" json:"vacancy_id"`
	UserID      *uuid.UUID `gorm:"type:uuid;index" json:"user_id,omitempty"` // nil for anonymous applications
	Name        string     `gorm:"type:varchar(255);not null" json:"name"`
	Email       string     `gorm:"type:varchar(255);not null" json:"email"`
	Phone       string     `gorm:"type:varchar(50);not null" json:"phone"`
	TaxID       string     `gorm:"type:varchar(11);not null" json:"tax_id"`
	ResumeURL   string     `gorm:"type:text;not null" json:"resume_url"`
	Summary     *string    `gorm:"type:text" json:"summary,omitempty"` // filled asynchronously by the AI summarizer
	Stage       string     `gorm:"type:varchar(20);not null;default:submitted;index" json:"stage"`
	SubmittedAt time.Time  `gorm:"autoCreateTime" json:"submitted_at"`

	Vacancy *Vacancy `gorm:"foreignKey:VacancyID" json:"vacancy,omitempty"`
}

type InternalNote struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CandidateID uuid.UUID `gorm:"type:uuid;not null;index" json:"candidate_id"`
	Text        string    `gorm:"type:text;not null" json:"text"`
	CreatedAt   time.Time `json:"created_at"`
}

type Role string

const (
	RoleApplicant Role = "applicant"
	RoleHR        Role = "hr"
	RoleAdmin     Role = "admin"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"email"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type UserRole struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	Role   Role      `gorm:"type:varchar(20);not null" json:"role"`
}
