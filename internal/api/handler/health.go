package handler

import (
	"net/http"

	"github.com/Rrens/weather-advisor/internal/api/response"
)

// Root returns the service banner
func Root(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"message": "Weather Activity Advisor API",
		"status":  "running",
	})
}

// HealthCheck returns a simple health check response
func HealthCheck(w http.ResponseWriter, r *http.Request) {
	response.OK(w, map[string]string{
		"status": "ok",
	})
}
