package transcripts

import (
	"net/http"

	"github.com/vlatan/video-transcripts/internal/models"
	"github.com/vlatan/video-transcripts/internal/transcript"
	"github.com/vlatan/video-transcripts/internal/utils"
)

// Query parameter carrying the video ID
const videoIDParam = "videoId"

// Handle fetching a transcript as one joined text.
// Responds with 200 even on failure, unless failure statuses are enabled,
// the outcome is reported in the JSON body.
func (s *Service) TranscriptHandler(w http.ResponseWriter, r *http.Request) {

	videoID := r.URL.Query().Get(videoIDParam)
	resp := s.transcripts.Format(r.Context(), videoID, models.ShapeText)

	status := http.StatusOK
	if s.config.FailureStatus {
		status = transcript.Status(resp)
	}

	utils.WriteJSON(w, r, status, resp)
}
