package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/vlatan/video-transcripts/internal/config"
	"github.com/vlatan/video-transcripts/internal/handlers/misc"
	"github.com/vlatan/video-transcripts/internal/handlers/transcripts"
	"github.com/vlatan/video-transcripts/internal/integrations/yt"
	"github.com/vlatan/video-transcripts/internal/middlewares"
	"github.com/vlatan/video-transcripts/internal/transcript"
)

type App struct {
	transcripts *transcripts.Service
	misc        *misc.Service
	mw          *middlewares.Service

	available bool
	languages []string
	domain    string
	server    *http.Server
}

// New creates new app with an HTTP server
func New() *App {
	return NewWithConfig(context.Background(), config.New())
}

// NewWithConfig creates new app given a config
func NewWithConfig(ctx context.Context, cfg *config.Config) *App {
	return newApp(cfg, NewFetcher(ctx, cfg))
}

// newApp wires the app around a transcript capability, nil if absent
func newApp(cfg *config.Config, fetcher yt.Fetcher) *App {
	svc := transcript.New(fetcher, cfg.Languages)

	return &App{
		transcripts: transcripts.New(cfg, svc),
		misc:        misc.New(cfg, svc),
		mw:          middlewares.New(cfg),

		available: svc.Available(),
		languages: cfg.Languages,
		domain:    cfg.Domain,
		server: &http.Server{
			Addr:         cfg.Addr(),
			IdleTimeout:  time.Minute,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
	}
}

// NewFetcher initializes the transcript capability.
// Returns nil if it's not available, which is logged once here.
func NewFetcher(ctx context.Context, cfg *config.Config) yt.Fetcher {
	service, err := yt.New(ctx, cfg)
	if err != nil {
		log.Printf("YouTube Transcript API not available: %v", err)
		return nil
	}
	return service
}
