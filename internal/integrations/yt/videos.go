package yt

import (
	"context"
	"errors"
)

// VideoExists checks with the YouTube Data API whether a video exists
func (s *Service) VideoExists(ctx context.Context, videoID string) (bool, error) {

	if s.youtube == nil {
		return false, errors.New("no YouTube Data API client configured")
	}

	part := []string{"id"}
	response, err := s.youtube.Videos.List(part).Id(videoID).Context(ctx).Do()
	if err != nil {
		return false, err
	}

	return len(response.Items) > 0, nil
}
