package api

import (
	"net/http"

	"github.com/Rrens/weather-advisor/internal/advisor"
	"github.com/Rrens/weather-advisor/internal/api/handler"
	customMiddleware "github.com/Rrens/weather-advisor/internal/api/middleware"
	"github.com/Rrens/weather-advisor/internal/api/response"
	"github.com/Rrens/weather-advisor/internal/config"
	"github.com/Rrens/weather-advisor/internal/domain"
	"github.com/Rrens/weather-advisor/internal/llm/groq"
	"github.com/Rrens/weather-advisor/internal/service"
	"github.com/Rrens/weather-advisor/internal/speech"
	"github.com/Rrens/weather-advisor/internal/weather"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, sessions domain.SessionStore) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(customMiddleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Server.MiddlewareTimeout))

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize gateways
	weatherClient := weather.NewClient(cfg.Weather)
	speechClient := speech.NewClient(cfg.Speech)

	// Initialize LLM provider
	provider := groq.NewProvider(cfg.LLM.Groq.APIKey, cfg.LLM.Groq.Model)
	if !provider.IsConfigured() {
		log.Warn().Msg("Groq API key is empty, suggestions will degrade to error messages")
	}

	// Initialize orchestrator and service
	orchestrator := advisor.NewOrchestrator(
		provider,
		weatherClient,
		cfg.LLM.Groq.Model,
		cfg.LLM.Groq.Temperature,
		cfg.LLM.Groq.MaxTokens,
	)
	suggestionService := service.NewSuggestionService(weatherClient, speechClient, orchestrator, sessions)

	// Initialize handlers
	weatherHandler := handler.NewWeatherHandler(suggestionService)
	suggestionHandler := handler.NewSuggestionHandler(suggestionService)
	transcribeHandler := handler.NewTranscribeHandler(suggestionService)
	sessionHandler := handler.NewSessionHandler(suggestionService)

	r.Get("/", handler.Root)

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handler.HealthCheck)

		r.Get("/translations/{language}", handler.Translations)
		r.Get("/examples/{language}", handler.Examples)

		r.Post("/weather", weatherHandler.Fetch)
		r.Post("/weather-with-suggestions", weatherHandler.StartSession)
		r.Post("/suggestions", suggestionHandler.Suggest)
		r.Post("/transcribe", transcribeHandler.Transcribe)

		r.Route("/session/{sessionID}", func(r chi.Router) {
			r.Get("/", sessionHandler.Get)
			r.Delete("/chat", sessionHandler.ClearChat)
		})
	})

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		response.NotFound(w, "route not found")
	})

	return r
}
