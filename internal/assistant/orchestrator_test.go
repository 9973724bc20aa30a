package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/pneuforte/recruitment-portal/internal/llm"
)

type fakeChatClient struct {
	responses []llm.ChatResponse
	requests  []llm.ChatRequest
	err       error
}

func (f *fakeChatClient) Complete(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	if len(f.responses) == 0 {
		return nil, errors.New("no scripted response left")
	}
	resp := f.responses[0]
	f.responses = f.responses[1:]
	return &resp, nil
}

type fakeDirectory struct {
	vacancies    []VacancySummary
	applications []ApplicationStatus
	candidates   []CandidateRecord
	stats        Statistics
	statsErr     error
}

func (f *fakeDirectory) ActiveVacancies(ctx context.Context) ([]VacancySummary, error) {
	return f.vacancies, nil
}

func (f *fakeDirectory) ApplicationsByUser(ctx context.Context, userID uuid.UUID) ([]ApplicationStatus, error) {
	return f.applications, nil
}

func (f *fakeDirectory) ApplicationsByTaxID(ctx context.Context, taxID string) ([]ApplicationStatus, error) {
	return f.applications, nil
}

func (f *fakeDirectory) CandidatesByStage(ctx context.Context, stage string) ([]CandidateRecord, error) {
	return f.candidates, nil
}

func (f *fakeDirectory) CandidatesByName(ctx context.Context, name string) ([]CandidateRecord, error) {
	return f.candidates, nil
}

func (f *fakeDirectory) Statistics(ctx context.Context) (*Statistics, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return &f.stats, nil
}

func assistantReply(content string) llm.ChatResponse {
	return llm.ChatResponse{Choices: []llm.Choice{{Message: llm.Message{Role: "assistant", Content: content}}}}
}

func toolCallReply(calls ...llm.ToolCall) llm.ChatResponse {
	return llm.ChatResponse{Choices: []llm.Choice{{Message: llm.Message{Role: "assistant", ToolCalls: calls}}}}
}

func TestChat_NoToolCallsReturnsDirectly(t *testing.T) {
	client := &fakeChatClient{responses: []llm.ChatResponse{assistantReply("hello there")}}
	o := NewOrchestrator(client, &fakeDirectory{}, "Pneu Forte")

	reply, err := o.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}}, anonymous())
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply.Content != "hello there" {
		t.Errorf("content = %q", reply.Content)
	}
	if len(client.requests) != 1 {
		t.Errorf("model calls = %d, want 1", len(client.requests))
	}
	if client.requests[0].Messages[0].Role != "system" {
		t.Error("first message must be the system prompt")
	}
	if len(client.requests[0].Tools) == 0 {
		t.Error("first call must carry the tool menu")
	}
}

func TestChat_SingleToolRoundTrip(t *testing.T) {
	client := &fakeChatClient{responses: []llm.ChatResponse{
		toolCallReply(llm.ToolCall{
			ID:       "call_1",
			Type:     "function",
			Function: llm.FunctionCall{Name: "list_active_vacancies", Arguments: "{}"},
		}),
		assistantReply("we have 1 open vacancy"),
	}}
	directory := &fakeDirectory{vacancies: []VacancySummary{{Title: "Mechanic"}}}
	o := NewOrchestrator(client, directory, "Pneu Forte")

	reply, err := o.Chat(context.Background(), []llm.Message{{Role: "user", Content: "open jobs?"}}, anonymous())
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if reply.Content != "we have 1 open vacancy" {
		t.Errorf("content = %q", reply.Content)
	}
	if len(client.requests) != 2 {
		t.Fatalf("model calls = %d, want exactly 2 (one tool round)", len(client.requests))
	}

	second := client.requests[1]
	if len(second.Tools) != 0 {
		t.Error("follow-up call must not offer tools again")
	}
	last := second.Messages[len(second.Messages)-1]
	if last.Role != "tool" || last.ToolCallID != "call_1" {
		t.Errorf("last message = %+v, want tool result for call_1", last)
	}
	if !strings.Contains(last.Content, "Mechanic") {
		t.Errorf("tool result %q missing vacancy data", last.Content)
	}
}

func TestChat_HardCapOneToolRound(t *testing.T) {
	// The model asks for tools again in the second round; the orchestrator
	// must return that message as-is instead of looping.
	client := &fakeChatClient{responses: []llm.ChatResponse{
		toolCallReply(llm.ToolCall{ID: "c1", Type: "function", Function: llm.FunctionCall{Name: "company_info"}}),
		toolCallReply(llm.ToolCall{ID: "c2", Type: "function", Function: llm.FunctionCall{Name: "company_info"}}),
	}}
	o := NewOrchestrator(client, &fakeDirectory{}, "Pneu Forte")

	_, err := o.Chat(context.Background(), nil, anonymous())
	if err != nil {
		t.Fatalf("Chat: %v", err)
	}
	if len(client.requests) != 2 {
		t.Errorf("model calls = %d, want 2", len(client.requests))
	}
}

func TestChat_HandlerReChecksRoleGate(t *testing.T) {
	// Menu construction would normally hide this tool from anonymous
	// callers, but the handler must still reject it on its own.
	client := &fakeChatClient{responses: []llm.ChatResponse{
		toolCallReply(llm.ToolCall{
			ID:       "c1",
			Type:     "function",
			Function: llm.FunctionCall{Name: "system_statistics", Arguments: "{}"},
		}),
		assistantReply("done"),
	}}
	o := NewOrchestrator(client, &fakeDirectory{stats: Statistics{TotalCandidates: 42}}, "Pneu Forte")

	if _, err := o.Chat(context.Background(), nil, anonymous()); err != nil {
		t.Fatalf("Chat: %v", err)
	}

	result := client.requests[1].Messages[len(client.requests[1].Messages)-1].Content
	var payload map[string]string
	if err := json.Unmarshal([]byte(result), &payload); err != nil {
		t.Fatalf("tool result not JSON: %q", result)
	}
	if payload["error"] != "access denied" {
		t.Errorf("tool result = %q, want access denied error", result)
	}
	if strings.Contains(result, "42") {
		t.Error("statistics leaked to a non-HR identity")
	}
}

func TestChat_ToolErrorDoesNotAbortSiblings(t *testing.T) {
	client := &fakeChatClient{responses: []llm.ChatResponse{
		toolCallReply(
			llm.ToolCall{ID: "c1", Type: "function", Function: llm.FunctionCall{Name: "lookup_application_by_tax_id", Arguments: `{"tax_id":"123"}`}},
			llm.ToolCall{ID: "c2", Type: "function", Function: llm.FunctionCall{Name: "company_info", Arguments: "{}"}},
		),
		assistantReply("partial answer"),
	}}
	o := NewOrchestrator(client, &fakeDirectory{}, "Pneu Forte")

	if _, err := o.Chat(context.Background(), nil, anonymous()); err != nil {
		t.Fatalf("Chat: %v", err)
	}

	messages := client.requests[1].Messages
	first := messages[len(messages)-2]
	second := messages[len(messages)-1]
	if !strings.Contains(first.Content, "error") {
		t.Errorf("failed tool slot = %q, want serialized error", first.Content)
	}
	if !strings.Contains(second.Content, "Pneu Forte") {
		t.Errorf("sibling tool result = %q, want company info", second.Content)
	}
}

func TestChat_TaxIDMaskedInToolResult(t *testing.T) {
	client := &fakeChatClient{responses: []llm.ChatResponse{
		toolCallReply(llm.ToolCall{
			ID:       "c1",
			Type:     "function",
			Function: llm.FunctionCall{Name: "lookup_application_by_tax_id", Arguments: `{"tax_id":"123.456.789-01"}`},
		}),
		assistantReply("found it"),
	}}
	directory := &fakeDirectory{applications: []ApplicationStatus{{Name: "Maria", Stage: "screening"}}}
	o := NewOrchestrator(client, directory, "Pneu Forte")

	if _, err := o.Chat(context.Background(), nil, anonymous()); err != nil {
		t.Fatalf("Chat: %v", err)
	}

	result := client.requests[1].Messages[len(client.requests[1].Messages)-1].Content
	if strings.Contains(result, "12345678901") {
		t.Error("raw tax id leaked into the transcript")
	}
	if !strings.Contains(result, "***.456.***-**") {
		t.Errorf("tool result %q missing masked tax id", result)
	}
}

func TestChat_EmptyChoicesSurfacesError(t *testing.T) {
	client := &fakeChatClient{responses: []llm.ChatResponse{{}}}
	o := NewOrchestrator(client, &fakeDirectory{}, "Pneu Forte")

	if _, err := o.Chat(context.Background(), nil, anonymous()); err == nil {
		t.Fatal("expected an error for a response without choices")
	}
}

func TestChat_UpstreamFailureAbortsRequest(t *testing.T) {
	client := &fakeChatClient{err: errors.New("gateway timeout")}
	o := NewOrchestrator(client, &fakeDirectory{}, "Pneu Forte")

	if _, err := o.Chat(context.Background(), nil, anonymous()); err == nil {
		t.Fatal("expected upstream error to abort the request")
	}
}

func TestSystemPrompt_PersonaPerRole(t *testing.T) {
	o := NewOrchestrator(&fakeChatClient{}, &fakeDirectory{}, "Pneu Forte")

	hrPrompt := o.systemPrompt(hr())
	if !strings.Contains(hrPrompt, "HR team") {
		t.Error("HR prompt missing back-office persona")
	}
	candidatePrompt := o.systemPrompt(anonymous())
	if !strings.Contains(candidatePrompt, "candidate") {
		t.Error("candidate prompt missing applicant persona")
	}
}
