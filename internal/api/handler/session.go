package handler

import (
	"net/http"

	"github.com/Rrens/weather-advisor/internal/api/response"
	"github.com/Rrens/weather-advisor/internal/domain"
	"github.com/Rrens/weather-advisor/internal/service"
	"github.com/go-chi/chi/v5"
)

// SessionHandler handles session endpoints
type SessionHandler struct {
	suggestionService *service.SuggestionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(suggestionService *service.SuggestionService) *SessionHandler {
	return &SessionHandler{suggestionService: suggestionService}
}

// Get returns the session contents
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	session, err := h.suggestionService.Session(r.Context(), sessionID)
	if err != nil {
		if domain.IsNotFound(err) {
			response.NotFound(w, "Session not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, session)
}

// ClearChat resets the session transcript
func (h *SessionHandler) ClearChat(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	if err := h.suggestionService.ClearChat(r.Context(), sessionID); err != nil {
		if domain.IsNotFound(err) {
			response.NotFound(w, "Session not found")
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	response.OK(w, map[string]string{"message": "Chat history cleared"})
}
