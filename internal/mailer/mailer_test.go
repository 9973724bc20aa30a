package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/pneuforte/recruitment-portal/internal/pipeline"
)

func TestSend(t *testing.T) {
	var got Email
	var auth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL, "re_key", "Pneu Forte RH <rh@pneufortenet.com.br>")
	err := client.Send(context.Background(), "candidate@example.com", "Subject", "<p>hi</p>")
	if err != nil {
		t.Fatalf("Send: %v", err)
	}

	if auth != "Bearer re_key" {
		t.Errorf("Authorization = %q", auth)
	}
	if got.From != "Pneu Forte RH <rh@pneufortenet.com.br>" {
		t.Errorf("from = %q", got.From)
	}
	if len(got.To) != 1 || got.To[0] != "candidate@example.com" {
		t.Errorf("to = %v", got.To)
	}
}

func TestSend_FailureSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusUnauthorized)
	}))
	defer server.Close()

	client := NewClientWithURL(server.URL, "bad", "from@example.com")
	if err := client.Send(context.Background(), "to@example.com", "s", "b"); err == nil {
		t.Fatal("expected error on 401")
	}
}

func TestStageEmail_Advancement(t *testing.T) {
	subject, html := StageEmail("Pneu Forte", "Maria", "Mechanic", pipeline.StageInterview)

	if !strings.Contains(subject, "Update on Your Application") {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(html, "Maria") || !strings.Contains(html, "Mechanic") {
		t.Errorf("body missing candidate or vacancy: %q", html)
	}
	if !strings.Contains(html, "Interview") {
		t.Errorf("body missing stage name: %q", html)
	}
}

func TestStageEmail_Rejection(t *testing.T) {
	subject, html := StageEmail("Pneu Forte", "Maria", "Mechanic", pipeline.StageRejected)

	if !strings.Contains(subject, "Thank You") {
		t.Errorf("subject = %q", subject)
	}
	if !strings.Contains(html, "move forward with other candidates") {
		t.Errorf("rejection body wrong: %q", html)
	}
	if strings.Contains(html, "advanced to the stage") {
		t.Error("rejection must not use the advancement body")
	}
}
