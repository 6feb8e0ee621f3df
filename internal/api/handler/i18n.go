package handler

import (
	"net/http"

	"github.com/Rrens/weather-advisor/internal/api/response"
	"github.com/Rrens/weather-advisor/internal/i18n"
	"github.com/go-chi/chi/v5"
)

// Translations returns the UI string table for a language
func Translations(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "language")

	table, err := i18n.Translations(language)
	if err != nil {
		response.BadRequest(w, "Language not supported")
		return
	}

	response.OK(w, table)
}

// Examples returns the example prompt list for a language
func Examples(w http.ResponseWriter, r *http.Request) {
	language := chi.URLParam(r, "language")

	examples, err := i18n.Examples(language)
	if err != nil {
		response.BadRequest(w, "Language not supported")
		return
	}

	response.OK(w, map[string][]string{"examples": examples})
}
