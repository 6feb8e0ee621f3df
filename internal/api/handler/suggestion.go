package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Rrens/weather-advisor/internal/api/response"
	"github.com/Rrens/weather-advisor/internal/domain"
	"github.com/Rrens/weather-advisor/internal/service"
)

// SuggestionHandler handles the chat suggestion endpoint
type SuggestionHandler struct {
	suggestionService *service.SuggestionService
}

// NewSuggestionHandler creates a new suggestion handler
func NewSuggestionHandler(suggestionService *service.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

type chatRequest struct {
	SessionID string `json:"session_id" validate:"required"`
	Query     string `json:"query"`
	Language  string `json:"language"`
}

// Suggest runs one chat exchange against an existing session. Sessions are
// never created here; an unknown id is a 404.
func (h *SuggestionHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}
	if req.Language == "" {
		req.Language = defaultLanguage
	}

	result, err := h.suggestionService.Suggest(r.Context(), req.SessionID, req.Query, req.Language)
	if err != nil {
		if domain.IsNotFound(err) {
			response.NotFound(w, "Session not found. Please fetch weather first.")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, result)
}
