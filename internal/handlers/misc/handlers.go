package misc

import (
	"log"
	"net/http"

	"github.com/vlatan/video-transcripts/internal/utils"
)

// Simple health check
func (s *Service) HealthcheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Robots-Tag", "noindex")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		log.Printf("Failed to write response on '%s'; %v", r.URL.Path, err)
	}
}

// Transcript capability and server status
func (s *Service) HealthHandler(w http.ResponseWriter, r *http.Request) {

	data := map[string]any{
		"transcripts_available": s.transcripts.Available(),
		"languages":             s.config.Languages,
		"video_lookup":          s.config.YouTubeAPIKey != "",
		"server_status":         getServerStats(),
	}

	w.Header().Set("X-Robots-Tag", "noindex")
	utils.WriteJSON(w, r, http.StatusOK, data)
}
