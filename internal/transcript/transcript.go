package transcript

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vlatan/video-transcripts/internal/integrations/yt"
	"github.com/vlatan/video-transcripts/internal/models"
)

// Service fetches transcripts and shapes them into responses
type Service struct {
	fetcher   yt.Fetcher // nil if the capability is not available
	languages []string
}

// Create new transcript service.
// A nil fetcher means the capability is absent and every fetch fails.
func New(fetcher yt.Fetcher, languages []string) *Service {
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	return &Service{
		fetcher:   fetcher,
		languages: languages,
	}
}

// Available reports whether the transcript capability is present
func (s *Service) Available() bool {
	return s.fetcher != nil
}

// Fetch makes exactly one call to the capability
func (s *Service) Fetch(ctx context.Context, videoID string) models.Result {

	if s.fetcher == nil {
		err := errors.WithStack(yt.ErrUnavailable)
		log.Printf("Error fetching transcript: %v\n%s", err, Details(err))
		return models.Result{Err: err}
	}

	log.Printf("Attempting to fetch transcript for video ID: %s", videoID)
	segments, err := s.fetcher.Fetch(ctx, videoID, s.languages)
	if err != nil {
		log.Printf("Error fetching transcript: %v\n%s", err, Details(err))
		return models.Result{Err: err}
	}

	log.Println("Successfully fetched transcript")
	return models.Result{Segments: segments}
}

// Format fetches the transcript and shapes it into a response
func (s *Service) Format(ctx context.Context, videoID string, shape models.Shape) *models.Response {

	if videoID == "" {
		return &models.Response{Error: models.NoVideoIDMessage}
	}

	result := s.Fetch(ctx, videoID)
	if !result.Ok() {
		return Failure(result.Err)
	}

	segments := result.Segments
	if segments == nil {
		segments = models.Segments{}
	}

	switch shape {
	case models.ShapeText:
		return &models.Response{Success: true, Transcript: segments.Join()}
	default:
		return &models.Response{Success: true, Transcript: segments}
	}
}

// Failure creates a failure response from an error
func Failure(err error) *models.Response {
	msg := err.Error()
	if msg == "" {
		msg = "unknown error"
	}

	return &models.Response{
		Error:   msg,
		Details: Details(err),
		Err:     err,
	}
}

// Details renders the failure trace of an error.
// Errors with a stack render it, others render their chain.
func Details(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%+v", err)
}

// Status maps a response to an HTTP status code
func Status(resp *models.Response) int {

	if resp.Success {
		return http.StatusOK
	}

	switch {
	case resp.Err == nil:
		return http.StatusBadRequest
	case errors.Is(resp.Err, yt.ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(resp.Err, yt.ErrVideoNotFound), errors.Is(resp.Err, yt.ErrNoTranscript):
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
