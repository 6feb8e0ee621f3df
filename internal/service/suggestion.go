package service

import (
	"context"

	"github.com/Rrens/weather-advisor/internal/advisor"
	"github.com/Rrens/weather-advisor/internal/domain"
	"github.com/rs/zerolog/log"
)

// Transcriber is the speech gateway surface the service depends on.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, format, language string) (string, error)
}

// SuggestionService wires the gateways, the orchestrator and the session
// store behind the API surface.
type SuggestionService struct {
	weather      advisor.WeatherFetcher
	speech       Transcriber
	orchestrator *advisor.Orchestrator
	sessions     domain.SessionStore
}

// NewSuggestionService creates a new suggestion service
func NewSuggestionService(
	weather advisor.WeatherFetcher,
	speech Transcriber,
	orchestrator *advisor.Orchestrator,
	sessions domain.SessionStore,
) *SuggestionService {
	return &SuggestionService{
		weather:      weather,
		speech:       speech,
		orchestrator: orchestrator,
		sessions:     sessions,
	}
}

// FetchWeather returns a formatted snapshot for a location.
func (s *SuggestionService) FetchWeather(ctx context.Context, location string) (*domain.WeatherSnapshot, error) {
	return s.weather.Fetch(ctx, location)
}

// WeatherWithSuggestions is the result of the session-creating flow.
type WeatherWithSuggestions struct {
	SessionID  string                  `json:"session_id"`
	Weather    *domain.WeatherSnapshot `json:"weather"`
	Suggestion string                  `json:"suggestion"`
}

// StartSession fetches weather for a location, creates (or resets) the
// session around it and produces the initial suggestion. This is the only
// operation that creates sessions. The initial suggestion runs with tool
// calls disabled: the location is already resolved.
func (s *SuggestionService) StartSession(ctx context.Context, location, language, sessionID string) (*WeatherWithSuggestions, error) {
	snapshot, err := s.weather.Fetch(ctx, location)
	if err != nil {
		return nil, err
	}

	session := s.sessions.Create(ctx, sessionID, language)
	if err := s.sessions.UpdateSnapshot(ctx, session.ID, snapshot); err != nil {
		return nil, err
	}

	result := s.orchestrator.Advise(ctx, snapshot, "", language, false)

	log.Info().
		Str("session_id", session.ID).
		Str("location", snapshot.Location).
		Msg("session started")

	return &WeatherWithSuggestions{
		SessionID:  session.ID,
		Weather:    snapshot,
		Suggestion: result.Content,
	}, nil
}

// Suggestion is the result of one chat exchange.
type Suggestion struct {
	Suggestion     string                  `json:"suggestion"`
	ChatHistory    []domain.ChatMessage    `json:"chat_history"`
	Weather        *domain.WeatherSnapshot `json:"weather,omitempty"`
	WeatherUpdated bool                    `json:"weather_updated,omitempty"`
}

// Suggest runs the orchestrator against an existing session and records the
// exchange. When the conversation ended up on weather for another location,
// the session snapshot is replaced and the response flags the update.
func (s *SuggestionService) Suggest(ctx context.Context, sessionID, query, language string) (*Suggestion, error) {
	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	result := s.orchestrator.Advise(ctx, session.Snapshot, query, language, true)

	out := &Suggestion{Suggestion: result.Content}

	if result.Snapshot != nil && !result.Snapshot.SameConditions(session.Snapshot) {
		if err := s.sessions.UpdateSnapshot(ctx, sessionID, result.Snapshot); err != nil {
			return nil, err
		}
		out.Weather = result.Snapshot
		out.WeatherUpdated = true
	}

	if query != "" {
		if err := s.sessions.RecordExchange(ctx, sessionID, query, result.Content); err != nil {
			return nil, err
		}
	}

	updated, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	out.ChatHistory = updated.History

	return out, nil
}

// Transcribe forwards audio to the speech gateway. An empty transcript with a
// nil error means the provider detected no speech.
func (s *SuggestionService) Transcribe(ctx context.Context, audio []byte, format, language string) (string, error) {
	return s.speech.Transcribe(ctx, audio, format, language)
}

// Session returns the session contents.
func (s *SuggestionService) Session(ctx context.Context, id string) (*domain.Session, error) {
	return s.sessions.Get(ctx, id)
}

// ClearChat resets the session transcript.
func (s *SuggestionService) ClearChat(ctx context.Context, id string) error {
	return s.sessions.ClearChat(ctx, id)
}
