package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pneuforte/recruitment-portal/internal/pipeline"
)

type stageStore struct {
	stages map[uuid.UUID]pipeline.Stage
}

func (s *stageStore) GetStage(ctx context.Context, id uuid.UUID) (pipeline.Stage, error) {
	stage, ok := s.stages[id]
	if !ok {
		return "", pipeline.ErrCandidateNotFound
	}
	return stage, nil
}

func (s *stageStore) SetStage(ctx context.Context, id uuid.UUID, stage pipeline.Stage) error {
	s.stages[id] = stage
	return nil
}

func transitionRequest(t *testing.T, h *Handler, candidateID, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: candidateID}}
	c.Request = httptest.NewRequest(http.MethodPatch, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	h.TransitionStage(c)
	return w
}

func TestTransitionStage_EchoesNormalizedStage(t *testing.T) {
	id := uuid.New()
	store := &stageStore{stages: map[uuid.UUID]pipeline.Stage{id: pipeline.StageSubmitted}}
	h := &Handler{Engine: pipeline.NewEngine(store, nil)}

	w := transitionRequest(t, h, id.String(), `{"stage":"Screening"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), `"screening"`) {
		t.Errorf("response %s must echo the lowercase stage", w.Body.String())
	}
	if store.stages[id] != pipeline.StageScreening {
		t.Errorf("persisted stage = %q, want %q", store.stages[id], pipeline.StageScreening)
	}
}

func TestTransitionStage_UnknownStageRejected(t *testing.T) {
	id := uuid.New()
	store := &stageStore{stages: map[uuid.UUID]pipeline.Stage{id: pipeline.StageSubmitted}}
	h := &Handler{Engine: pipeline.NewEngine(store, nil)}

	w := transitionRequest(t, h, id.String(), `{"stage":"hired"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
	if store.stages[id] != pipeline.StageSubmitted {
		t.Errorf("stage changed to %q on a rejected request", store.stages[id])
	}
}
