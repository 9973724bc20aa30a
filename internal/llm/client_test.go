package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestComplete_SendsModelMessagesAndBearer(t *testing.T) {
	var got ChatRequest
	var auth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(ChatResponse{
			Choices: []Choice{{Message: Message{Role: "assistant", Content: "hello"}}},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret-key", "google/gemini-2.5-flash")
	resp, err := client.Complete(context.Background(), ChatRequest{
		Messages:    []Message{{Role: "user", Content: "hi"}},
		Temperature: 0.7,
	})
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}

	if auth != "Bearer secret-key" {
		t.Errorf("Authorization = %q", auth)
	}
	if got.Model != "google/gemini-2.5-flash" {
		t.Errorf("model = %q, default model not applied", got.Model)
	}
	if got.Temperature != 0.7 {
		t.Errorf("temperature = %v", got.Temperature)
	}
	if resp.Choices[0].Message.Content != "hello" {
		t.Errorf("content = %q", resp.Choices[0].Message.Content)
	}
}

func TestComplete_UpstreamErrorSurfaces(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "model")
	if _, err := client.Complete(context.Background(), ChatRequest{}); err == nil {
		t.Fatal("expected error on non-200 response")
	}
}

func TestComplete_EmptyChoicesIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(ChatResponse{})
	}))
	defer server.Close()

	client := NewClient(server.URL, "key", "model")
	if _, err := client.Complete(context.Background(), ChatRequest{}); err == nil {
		t.Fatal("expected error on empty choices")
	}
}
