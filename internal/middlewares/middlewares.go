package middlewares

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/klauspost/compress/gzhttp"
	"github.com/pkg/errors"
	"github.com/vlatan/video-transcripts/internal/config"
	"github.com/vlatan/video-transcripts/internal/transcript"
	"github.com/vlatan/video-transcripts/internal/utils"
)

const RequestIDHeader = "X-Request-ID"

type Service struct {
	config *config.Config
}

func New(config *config.Config) *Service {
	return &Service{config: config}
}

// Do not crash the app on panic, serve the JSON failure envelope instead.
// The response is buffered so a panic never leaves a partial body behind.
func (s *Service) RecoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		recorder := newResponseRecorder(w)
		defer recorder.flush()

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}

			// Log the panic with stack trace
			err := errors.WithStack(fmt.Errorf("panic: %v", rec))
			log.Printf("Panic in %s %s: %+v", r.Method, r.URL.Path, err)

			status := http.StatusOK
			if s.config.FailureStatus {
				status = http.StatusInternalServerError
			}

			recorder.reset()
			resp := transcript.Failure(err)
			if !s.config.Debug {
				resp.Details = ""
			}
			utils.WriteJSON(recorder, r, status, resp)
		}()

		next.ServeHTTP(recorder, r)
	})
}

// Log every request with a request ID
func (s *Service) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		requestID := r.Header.Get(RequestIDHeader)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, requestID)

		start := time.Now()
		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		log.Printf(
			"[%s] %s %s %d %s",
			requestID, r.Method, r.URL.RequestURI(), sw.status, time.Since(start),
		)
	})
}

// Add security headers to response
func (s *Service) AddHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		// Prevent MIME type sniffing
		w.Header().Set("X-Content-Type-Options", "nosniff")

		// Prevent clickjacking
		w.Header().Set("X-Frame-Options", "DENY")

		// Transcripts are fetched fresh on every request
		w.Header().Set("Cache-Control", "no-store")

		// HSTS (HTTPS only)
		if !s.config.Debug {
			w.Header().Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}

// Compress provides gzip compression to the responses
func (s *Service) Compress(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}

// Chain middlewares that apply to all handlers
func (s *Service) ApplyToAll(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(final http.Handler) http.Handler {
		// Apply middlewares in reverse order
		for i := len(middlewares) - 1; i >= 0; i-- {
			final = middlewares[i](final)
		}
		return final
	}
}
