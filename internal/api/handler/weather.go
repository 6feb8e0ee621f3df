package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Rrens/weather-advisor/internal/api/response"
	"github.com/Rrens/weather-advisor/internal/service"
)

// WeatherHandler handles weather endpoints
type WeatherHandler struct {
	suggestionService *service.SuggestionService
}

// NewWeatherHandler creates a new weather handler
func NewWeatherHandler(suggestionService *service.SuggestionService) *WeatherHandler {
	return &WeatherHandler{suggestionService: suggestionService}
}

type weatherRequest struct {
	Location string `json:"location" validate:"required"`
}

// Fetch returns the formatted snapshot for a location
func (h *WeatherHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	var req weatherRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "invalid request body")
		return
	}
	if err := validate.Struct(req); err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	snapshot, err := h.suggestionService.FetchWeather(r.Context(), req.Location)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.OK(w, snapshot)
}

type startSessionRequest struct {
	Location  string `json:"location" validate:"required"`
	Language  string `json:"language"`
	SessionID string `json:"session_id"`
}

// StartSession fetches weather, creates the session and returns the initial
// suggestion
func (h *WeatherHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req startSessionRequest
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

	result, err := h.suggestionService.StartSession(r.Context(), req.Location, req.Language, req.SessionID)
	if err != nil {
		response.BadRequest(w, err.Error())
		return
	}

	response.OK(w, result)
}
