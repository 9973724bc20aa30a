package summary

import (
	"bytes"
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/ledongthuc/pdf"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/pneuforte/recruitment-portal/internal/llm"
	"github.com/pneuforte/recruitment-portal/internal/models"
)

var log = logrus.New()

// Only the head of the resume goes to the model, matching its context
// budget for this task.
const maxResumeChars = 4000

const summarizerPrompt = "You are an HR assistant specialized in resume analysis. " +
	"Analyze the resume and provide an objective summary in 2-4 sentences, highlighting: " +
	"relevant professional experience, main technical skills and the candidate's strengths."

// ChatClient is the slice of the model gateway the summarizer uses.
type ChatClient interface {
	Complete(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error)
}

// Summarizer extracts the text of an uploaded resume, asks the model for a
// short profile and stores it on the candidate. It runs fire-and-forget
// after submission; the application is already accepted whether or not the
// summary ever lands.
type Summarizer struct {
	db     *gorm.DB
	client ChatClient
}

func NewSummarizer(db *gorm.DB, client ChatClient) *Summarizer {
	return &Summarizer{db: db, client: client}
}

// GenerateAsync kicks off summary generation on its own goroutine. Failures
// are logged, never surfaced.
func (s *Summarizer) GenerateAsync(candidateID uuid.UUID, resume []byte) {
	go func() {
		if err := s.Generate(context.Background(), candidateID, resume); err != nil {
			log.WithError(err).WithField("candidate_id", candidateID).Error("resume summary generation failed")
		}
	}()
}

func (s *Summarizer) Generate(ctx context.Context, candidateID uuid.UUID, resume []byte) error {
	text, err := ExtractText(resume)
	if err != nil {
		return fmt.Errorf("extract resume text: %w", err)
	}
	text = truncate(text, maxResumeChars)

	resp, err := s.client.Complete(ctx, llm.ChatRequest{
		Messages: []llm.Message{
			{Role: "system", Content: summarizerPrompt},
			{Role: "user", Content: "Analyze this resume and provide a professional summary:\n\n" + text},
		},
	})
	if err != nil {
		return fmt.Errorf("summarize resume: %w", err)
	}

	if len(resp.Choices) == 0 {
		return fmt.Errorf("summarize resume: empty model response")
	}

	generated := resp.Choices[0].Message.Content
	return s.db.WithContext(ctx).Model(&models.Candidate{}).
		Where("id = ?", candidateID).
		Update("summary", generated).Error
}

// truncate cuts the text to at most max bytes without splitting a rune.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}

// ExtractText pulls the plain text out of a PDF resume.
func ExtractText(data []byte) (string, error) {
	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	plain, err := reader.GetPlainText()
	if err != nil {
		return "", err
	}
	buf := &bytes.Buffer{}
	if _, err := buf.ReadFrom(plain); err != nil {
		return "", err
	}
	return buf.String(), nil
}
