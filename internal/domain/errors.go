package domain

import (
	"errors"
	"fmt"
)

// WeatherFetchError is returned when the weather provider cannot deliver
// current conditions for a location.
type WeatherFetchError struct {
	Location string
	Err      error
}

func (e *WeatherFetchError) Error() string {
	return fmt.Sprintf("error fetching weather for %q: %v", e.Location, e.Err)
}

func (e *WeatherFetchError) Unwrap() error {
	return e.Err
}

// TranscriptionError is returned when the speech provider rejects a
// transcription request. An empty transcript on a successful response is not
// an error; see speech.Client.Transcribe.
type TranscriptionError struct {
	StatusCode int
	Message    string
}

func (e *TranscriptionError) Error() string {
	return fmt.Sprintf("transcription provider returned status %d: %s", e.StatusCode, e.Message)
}

// SessionNotFoundError is returned by the session store for unknown ids.
type SessionNotFoundError struct {
	ID string
}

func (e *SessionNotFoundError) Error() string {
	return fmt.Sprintf("session not found: %s", e.ID)
}

// UnsupportedLanguageError is returned for locale codes with no string table.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("language not supported: %s", e.Language)
}

// SuggestionError wraps a provider failure inside the orchestration loop.
// Callers of the orchestrator never see it; Advise maps it to a degraded
// content string at its outer edge.
type SuggestionError struct {
	Err error
}

func (e *SuggestionError) Error() string {
	return fmt.Sprintf("suggestion failed: %v", e.Err)
}

func (e *SuggestionError) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is a session lookup failure.
func IsNotFound(err error) bool {
	var nf *SessionNotFoundError
	return errors.As(err, &nf)
}
