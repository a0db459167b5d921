package app

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"
)

// Shutdown listens for SIGINT and SIGTERM signals,
// gracefully shuts down the HTTP server,
// and informs the main goroutine when done.
func (a *App) Shutdown(done chan<- struct{}) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Blocks until an interruption signal is received
	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force...")

	// Stop watching for termination signals,
	// a second Ctrl+C kills the process immediately.
	stop()

	// Give the server 5 seconds to finish
	// the requests it is currently handling.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting...")

	// Notify the main goroutine that the shutdown is complete
	done <- struct{}{}
}
