package app

import (
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
)

// Run binds the HTTP server address, serves until a graceful
// shutdown is triggered by SIGINT or SIGTERM and waits for it.
func (a *App) Run() error {

	ln, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("couldn't listen on %s; %w", a.server.Addr, err)
	}

	done := make(chan struct{})
	go a.Shutdown(done)

	if err := a.serve(ln); err != nil {
		return err
	}

	<-done
	log.Println("Graceful shutdown complete.")
	return nil
}

// serve logs what the server offers and serves on the listener.
// Returns nil when the server was shut down.
func (a *App) serve(ln net.Listener) error {

	for _, line := range a.startupLines(ln.Addr().String()) {
		log.Println(line)
	}

	err := a.server.Serve(ln)
	if err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// startupLines describes the bound transcript routes and the capability state
func (a *App) startupLines(addr string) []string {

	base := "http://" + addr
	if a.domain != "" {
		base = "https://" + a.domain
	}

	lines := []string{fmt.Sprintf("Server listening on %s", addr)}
	for _, route := range transcriptRoutes {
		lines = append(lines, fmt.Sprintf("Transcripts served on %s%s?videoId=<id>", base, route))
	}

	if !a.available {
		lines = append(lines, "YouTube Transcript API not available, every transcript request will fail")
		return lines
	}

	lines = append(lines, fmt.Sprintf(
		"Transcript languages in order of preference: %s",
		strings.Join(a.languages, ", "),
	))
	return lines
}
