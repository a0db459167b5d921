package cli

import (
	"context"
	"log"
	"os"

	"github.com/vlatan/video-transcripts/internal/config"
	"github.com/vlatan/video-transcripts/internal/integrations/yt"
	"github.com/vlatan/video-transcripts/internal/transcript"
)

// FetcherFunc initializes the transcript capability, nil if absent
type FetcherFunc func(ctx context.Context, cfg *config.Config) yt.Fetcher

// Main runs the CLI against the process streams.
// Only the JSON response reaches stdout: anything else written to
// os.Stdout while it runs, including the transcript library output,
// is diverted to stderr.
func Main(ctx context.Context, args []string, newFetcher FetcherFunc) int {

	stdout := os.Stdout
	os.Stdout = os.Stderr
	defer func() { os.Stdout = stdout }()

	cfg := LoadConfig()
	svc := transcript.New(newFetcher(ctx, cfg), cfg.Languages)

	return Run(ctx, svc, args, stdout)
}

// LoadConfig parses the config from the environment.
// A broken environment falls back to the defaults,
// so the CLI still answers with JSON.
func LoadConfig() *config.Config {
	cfg, err := config.Parse()
	if err != nil {
		log.Printf("failed to parse the config, using defaults; %v", err)
		return config.Default()
	}
	return cfg
}
