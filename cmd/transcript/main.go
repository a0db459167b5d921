package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/vlatan/video-transcripts/internal/app"
	"github.com/vlatan/video-transcripts/internal/cli"
	"github.com/vlatan/video-transcripts/internal/config"
)

func main() {

	// Optional .env, the defaults are enough
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env file; %v", err)
	}

	// Listen for interruption signals
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	code := cli.Main(ctx, os.Args[1:], app.NewFetcher)
	stop()
	os.Exit(code)
}
