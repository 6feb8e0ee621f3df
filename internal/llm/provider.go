package llm

import (
	"context"
	"errors"
)

// ErrToolsUnsupported marks a provider rejection of the request because it
// carried a tool schema, as opposed to a rejection on business grounds. The
// orchestrator reacts by retrying the round once without tools.
var ErrToolsUnsupported = errors.New("provider rejected tool schema")

// Message is one entry in a chat-completion conversation. Ordering is
// significant and must be preserved verbatim when a conversation is
// resubmitted across rounds.
type Message struct {
	Role       string     `json:"role"`
	Content    string     `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Name       string     `json:"name,omitempty"`
}

// Message roles.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// ToolCall is a structured request from the model asking the caller to invoke
// a named external action and feed its result back into the conversation.
type ToolCall struct {
	ID       string       `json:"id"`
	Type     string       `json:"type"`
	Function FunctionCall `json:"function"`
}

// FunctionCall carries the requested function name and its JSON-encoded
// arguments.
type FunctionCall struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// Tool describes one callable capability offered to the model.
type Tool struct {
	Type     string   `json:"type"`
	Function Function `json:"function"`
}

// Function is the JSON-schema description of a tool function.
type Function struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// Request contains chat-completion parameters for one model round.
type Request struct {
	Model       string
	Messages    []Message
	Tools       []Tool
	ToolChoice  string
	Temperature float64
	MaxTokens   int
}

// Completion is the result of one model round: either plain content or a list
// of requested tool calls. Dispatch on RequestsTools, not on field presence.
type Completion struct {
	Content   string
	ToolCalls []ToolCall
}

// RequestsTools reports whether the model asked for tool invocations instead
// of producing a final answer.
func (c *Completion) RequestsTools() bool {
	return len(c.ToolCalls) > 0
}

// Provider defines the interface for chat-completion providers.
type Provider interface {
	// Name returns the provider identifier
	Name() string

	// DefaultModel returns the default model
	DefaultModel() string

	// IsConfigured checks if provider has valid credentials
	IsConfigured() bool

	// Complete runs a single chat-completion round
	Complete(ctx context.Context, req Request) (*Completion, error)
}
