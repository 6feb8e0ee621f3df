package handler

import (
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/Rrens/weather-advisor/internal/api/response"
	"github.com/Rrens/weather-advisor/internal/domain"
	"github.com/Rrens/weather-advisor/internal/service"
)

// maxAudioUpload bounds the multipart form size for audio uploads.
const maxAudioUpload = 25 << 20

// TranscribeHandler handles the audio transcription endpoint
type TranscribeHandler struct {
	suggestionService *service.SuggestionService
}

// NewTranscribeHandler creates a new transcribe handler
func NewTranscribeHandler(suggestionService *service.SuggestionService) *TranscribeHandler {
	return &TranscribeHandler{suggestionService: suggestionService}
}

// Transcribe accepts an uploaded audio file and returns its transcript. A
// provider-confirmed silence is a structured no-speech result, not an error.
func (h *TranscribeHandler) Transcribe(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAudioUpload); err != nil {
		response.BadRequest(w, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "no file uploaded")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(file)
	if err != nil {
		response.InternalError(w, "failed to read file")
		return
	}

	// Audio format is inferred from the filename extension.
	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(header.Filename)), ".")

	language := r.FormValue("language")
	if language == "" {
		language = defaultLanguage
	}

	transcript, err := h.suggestionService.Transcribe(r.Context(), audio, format, language)
	if err != nil {
		var te *domain.TranscriptionError
		if errors.As(err, &te) {
			response.InternalError(w, te.Error())
			return
		}
		response.InternalError(w, err.Error())
		return
	}

	if transcript == "" {
		response.OK(w, map[string]any{
			"transcript": nil,
			"success":    false,
			"message":    "No speech detected",
		})
		return
	}

	response.OK(w, map[string]any{
		"transcript": transcript,
		"success":    true,
	})
}
