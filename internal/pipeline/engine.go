package pipeline

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

var (
	ErrInvalidStage      = fmt.Errorf("invalid stage")
	ErrTerminalStage     = fmt.Errorf("candidate is in a terminal stage")
	ErrCandidateNotFound = fmt.Errorf("candidate not found")
)

// CandidateStore is the slice of persistence the engine needs.
type CandidateStore interface {
	GetStage(ctx context.Context, candidateID uuid.UUID) (Stage, error)
	SetStage(ctx context.Context, candidateID uuid.UUID, stage Stage) error
}

// Notifier delivers the stage-change email. Best effort, at most once.
type Notifier interface {
	NotifyStageChange(ctx context.Context, candidateID uuid.UUID, stage Stage) error
}

// Engine enforces the candidate pipeline and drives side effects on
// transition.
type Engine struct {
	store    CandidateStore
	notifier Notifier
	// async controls whether notifications run on a separate goroutine.
	// Tests set it to false to observe the send synchronously.
	async bool
}

func NewEngine(store CandidateStore, notifier Notifier) *Engine {
	return &Engine{store: store, notifier: notifier, async: true}
}

// Transition moves a candidate to the target stage and fires the
// notification email. The stage write is not rolled back when the email
// fails; the failure is only logged. Dropping a candidate on the column it
// is already in is a no-op and sends nothing.
func (e *Engine) Transition(ctx context.Context, candidateID uuid.UUID, target Stage) error {
	normalized, err := ParseStage(string(target))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidStage, target)
	}
	target = normalized

	current, err := e.store.GetStage(ctx, candidateID)
	if err != nil {
		return err
	}
	if current == target {
		return nil
	}
	if !CanTransition(current, target) {
		return fmt.Errorf("%w: %s", ErrTerminalStage, current)
	}

	// Last write wins; concurrent transitions on the same candidate are
	// not coordinated.
	if err := e.store.SetStage(ctx, candidateID, target); err != nil {
		return err
	}

	if e.async {
		go e.notify(candidateID, target)
	} else {
		e.notify(candidateID, target)
	}
	return nil
}

func (e *Engine) notify(candidateID uuid.UUID, stage Stage) {
	if e.notifier == nil {
		return
	}
	if err := e.notifier.NotifyStageChange(context.Background(), candidateID, stage); err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"candidate_id": candidateID,
			"stage":        stage,
		}).Error("stage change notification failed")
	}
}
