package yt

import (
	"context"
	"fmt"

	"github.com/vlatan/video-transcripts/internal/config"
	"github.com/vlatan/video-transcripts/internal/models"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Fetcher is the transcript-fetch capability
type Fetcher interface {
	Fetch(ctx context.Context, videoID string, languages []string) (models.Segments, error)
}

type Service struct {
	config       *config.Config
	transcripter *transcripter
	youtube      *youtube.Service // nil if no API key configured
}

// Create new YouTube service.
// The YouTube Data API client is created only if an API key is configured
// and is used solely to classify failed fetches.
func New(ctx context.Context, config *config.Config, opts ...option.ClientOption) (*Service, error) {

	s := &Service{
		config:       config,
		transcripter: newTranscripter(),
	}

	if config.YouTubeAPIKey == "" {
		return s, nil
	}

	opts = append([]option.ClientOption{option.WithAPIKey(config.YouTubeAPIKey)}, opts...)
	youtube, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("couldn't create YouTube Data API client; %w", err)
	}

	s.youtube = youtube
	return s, nil
}

// CanLookup reports whether failed fetches can be classified via the Data API
func (s *Service) CanLookup() bool {
	return s.youtube != nil
}
