package transcripts

import (
	"github.com/vlatan/video-transcripts/internal/config"
	"github.com/vlatan/video-transcripts/internal/transcript"
)

type Service struct {
	config      *config.Config
	transcripts *transcript.Service
}

func New(config *config.Config, transcripts *transcript.Service) *Service {
	return &Service{
		config:      config,
		transcripts: transcripts,
	}
}
