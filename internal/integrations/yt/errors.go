package yt

import (
	"errors"
)

var (
	ErrUnavailable   = errors.New("YouTube Transcript API not available")
	ErrVideoNotFound = errors.New("video not found")
	ErrNoTranscript  = errors.New("no transcript available")
	ErrFetchFailed   = errors.New("transcript fetch failed")
)

// FetchError is a failed fetch classified by kind.
// The message is the one of the underlying error.
type FetchError struct {
	Kind error
	Err  error
}

// Implement error interface
func (e *FetchError) Error() string {
	return e.Err.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As
func (e *FetchError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}
