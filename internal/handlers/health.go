package handlers

import (
	"net/http"
	"time"

	"gatorengineered/internal/config"
)

var startedAt = time.Now()

// HealthHandler serves GET /api/health.
func HealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":         "ok",
		"uptime_seconds": int(time.Since(startedAt).Seconds()),
		"channels": map[string]bool{
			"excel": config.Cfg.ExcelConfigured(),
			"email": config.Cfg.SMTPConfigured(),
		},
	})
}
