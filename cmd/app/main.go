package main

import (
	"log"

	"github.com/vlatan/video-transcripts/internal/app"
	"github.com/vlatan/video-transcripts/internal/config"
)

func main() {

	// Load the env vars from .env if present
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env file; %v", err)
	}

	// Create new app, register the routes and run
	if err := app.New().RegisterRoutes().Run(); err != nil {
		log.Fatalf("http server error: %v", err)
	}
}
