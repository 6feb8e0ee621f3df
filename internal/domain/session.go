package domain

import "context"

// MessageRole identifies the sender of a chat turn.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// ChatMessage is one turn in a session transcript.
type ChatMessage struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content"`
}

// Session is the server-side continuity record for one client conversation.
// Snapshot is nil until a weather fetch has occurred.
type Session struct {
	ID       string           `json:"session_id"`
	Snapshot *WeatherSnapshot `json:"weather,omitempty"`
	History  []ChatMessage    `json:"chat_history"`
	Language string           `json:"language"`
}

// SessionStore defines the interface for session state. Sessions are created
// only by the weather-with-suggestions flow; every other operation fails with
// *SessionNotFoundError for an unknown id.
type SessionStore interface {
	// Create initializes a session with an empty transcript and nil snapshot,
	// generating an id when none is supplied. An existing session with the
	// same id is reset.
	Create(ctx context.Context, id, language string) *Session

	Get(ctx context.Context, id string) (*Session, error)

	// RecordExchange appends the user and assistant turns as a pair, so the
	// transcript always alternates user/assistant starting with user.
	RecordExchange(ctx context.Context, id, userText, assistantText string) error

	// UpdateSnapshot replaces the session snapshot wholesale.
	UpdateSnapshot(ctx context.Context, id string, snapshot *WeatherSnapshot) error

	// ClearChat resets the transcript; the snapshot is untouched.
	ClearChat(ctx context.Context, id string) error
}
