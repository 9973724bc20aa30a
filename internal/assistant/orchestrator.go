package assistant

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/pneuforte/recruitment-portal/internal/auth"
	"github.com/pneuforte/recruitment-portal/internal/llm"
)

var log = logrus.New()

const chatTemperature = 0.7

// ChatClient is the slice of the model gateway the orchestrator uses. A nil
// error does not guarantee a non-empty Choices; callers check.
type ChatClient interface {
	Complete(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error)
}

// Orchestrator runs the two-round chat cycle: one model call with the
// role-scoped tool menu, then at most one more with the tool results.
type Orchestrator struct {
	client    ChatClient
	directory Directory
	company   string
}

func NewOrchestrator(client ChatClient, directory Directory, company string) *Orchestrator {
	return &Orchestrator{client: client, directory: directory, company: company}
}

// Chat sends the conversation to the model and returns the final assistant
// message. Tool calls requested by the model are executed sequentially, each
// gated by the caller's identity, and fed back for exactly one more round.
func (o *Orchestrator) Chat(ctx context.Context, history []llm.Message, identity auth.Identity) (*llm.Message, error) {
	menu := ToolsFor(identity)
	messages := make([]llm.Message, 0, len(history)+1)
	messages = append(messages, llm.Message{Role: "system", Content: o.systemPrompt(identity)})
	messages = append(messages, history...)

	resp, err := o.client.Complete(ctx, llm.ChatRequest{
		Messages:    messages,
		Tools:       Definitions(menu),
		Temperature: chatTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("assistant request failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("assistant returned no choices")
	}

	reply := resp.Choices[0].Message
	if len(reply.ToolCalls) == 0 {
		return &reply, nil
	}

	messages = append(messages, reply)
	for _, call := range reply.ToolCalls {
		log.WithFields(logrus.Fields{
			"tool": call.Function.Name,
			"role": identity.Role,
		}).Info("executing assistant tool call")
		content := o.execute(ctx, call.Function.Name, call.Function.Arguments, identity)
		messages = append(messages, llm.Message{
			Role:       "tool",
			Name:       call.Function.Name,
			ToolCallID: call.ID,
			Content:    content,
		})
	}

	// Single tool round: the follow-up call carries no tool menu.
	final, err := o.client.Complete(ctx, llm.ChatRequest{
		Messages:    messages,
		Temperature: chatTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("assistant follow-up failed: %w", err)
	}
	if len(final.Choices) == 0 {
		return nil, fmt.Errorf("assistant returned no choices")
	}
	return &final.Choices[0].Message, nil
}

func (o *Orchestrator) systemPrompt(identity auth.Identity) string {
	if identity.IsHR() {
		return fmt.Sprintf(`You are the virtual assistant of %s, a friendly and helpful mechanic. You are talking to a member of the HR team.

Your personality:
- Professional but relaxed, like an experienced mechanic
- Use mechanics/tire metaphors when appropriate
- Be direct and objective in your answers
- Help the HR team manage candidates and vacancies

You have access to candidate, vacancy and system statistics data. Use the available tools whenever you need fresh data.`, o.company)
	}
	return fmt.Sprintf(`You are the virtual assistant of %s, a friendly and helpful mechanic. You are talking to a candidate.

Your personality:
- Friendly and encouraging, like a trustworthy neighborhood mechanic
- Use mechanics/tire metaphors when appropriate (e.g. "let's get your resume tuned up", "accelerate your career")
- Be clear and transparent about the selection process
- Motivate the candidate and give useful guidance

You can help with:
- Application status
- Information about open vacancies
- Details about the company and its culture
- Tips for the selection process

Use the available tools whenever you need specific information.`, o.company)
}
