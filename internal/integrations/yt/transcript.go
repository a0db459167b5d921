package yt

import (
	"context"
	"log"

	"github.com/horiagug/youtube-transcript-api-go/pkg/yt_transcript"
	"github.com/pkg/errors"
	"github.com/vlatan/video-transcripts/internal/models"
)

// getFunc retrieves the segments of the first transcript
// that matches one of the languages, in order of preference
type getFunc func(videoID string, languages []string) (models.Segments, error)

type transcripter struct {
	get getFunc
}

func newTranscripter() *transcripter {
	client := yt_transcript.NewClient()
	return &transcripter{
		get: func(videoID string, languages []string) (models.Segments, error) {
			transcripts, err := client.GetTranscripts(videoID, languages)
			if err != nil {
				return nil, err
			}

			if len(transcripts) == 0 {
				return nil, ErrNoTranscript
			}

			lines := transcripts[0].Lines
			segments := make(models.Segments, len(lines))
			for i, line := range lines {
				segments[i] = models.Segment{
					Text:     line.Text,
					Start:    line.Start,
					Duration: line.Duration,
				}
			}

			return segments, nil
		},
	}
}

// Fetch the transcript of a video.
// Returned errors carry a stack trace and are classified as FetchError.
func (s *Service) Fetch(ctx context.Context, videoID string, languages []string) (models.Segments, error) {

	if err := ctx.Err(); err != nil {
		return nil, errors.WithStack(&FetchError{Kind: ErrFetchFailed, Err: err})
	}

	segments, err := s.transcripter.get(videoID, languages)
	if err == nil {
		if segments == nil {
			segments = models.Segments{}
		}
		return segments, nil
	}

	return nil, errors.WithStack(&FetchError{Kind: s.classify(ctx, videoID, err), Err: err})
}

// classify tells apart a missing video from a video without transcript.
// Without a Data API client every failure is a generic fetch failure.
func (s *Service) classify(ctx context.Context, videoID string, err error) error {

	if errors.Is(err, ErrNoTranscript) {
		return ErrNoTranscript
	}

	if s.youtube == nil {
		return ErrFetchFailed
	}

	exists, lookupErr := s.VideoExists(ctx, videoID)
	if lookupErr != nil {
		log.Printf("unable to look up video %q on YouTube: %v", videoID, lookupErr)
		return ErrFetchFailed
	}

	if !exists {
		return ErrVideoNotFound
	}

	return ErrNoTranscript
}
