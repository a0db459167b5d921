package app

import (
	"net/http"
)

// Routes serving a transcript given the videoId query param.
// The first one is kept for the existing clients.
var transcriptRoutes = []string{
	"/api/python/get_transcript",
	"/api/transcript",
}

// RegisterRoutes registers routes and
// assigns custom handler to the HTTP server
func (a *App) RegisterRoutes() *App {
	a.server.Handler = a.Routes()
	return a
}

// Routes builds the handler with all the routes and middlewares
func (a *App) Routes() http.Handler {
	mux := http.NewServeMux()

	// Transcripts
	for _, route := range transcriptRoutes {
		mux.HandleFunc("GET "+route, a.transcripts.TranscriptHandler)
	}

	// The rest
	mux.HandleFunc("GET /health/{$}", a.misc.HealthHandler)
	mux.HandleFunc("GET /healthcheck", a.misc.HealthcheckHandler)

	// Chain middlewares that apply to all requests.
	// The order is important.
	return a.mw.ApplyToAll(
		a.mw.RecoverPanic,
		a.mw.Logging,
		a.mw.AddHeaders,
		a.mw.Compress,
	)(mux)
}
