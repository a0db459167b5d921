package models

import (
	"strings"
)

// Client facing message when the request carries no video ID
const NoVideoIDMessage = "No video ID provided"

// One timed caption unit of a video transcript
type Segment struct {
	Text     string  `json:"text"`
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
}

type Segments []Segment

// Join concatenates the text of all segments with a single space
func (s Segments) Join() string {
	texts := make([]string, len(s))
	for i, segment := range s {
		texts[i] = segment.Text
	}
	return strings.Join(texts, " ")
}

// Shape selects how a successful transcript is represented in a response
type Shape int

const (
	// The untouched ordered list of segments
	ShapeSegments Shape = iota
	// The segments text joined into one string
	ShapeText
)

func (s Shape) String() string {
	switch s {
	case ShapeSegments:
		return "segments"
	case ShapeText:
		return "text"
	default:
		return "unknown"
	}
}

// Result of one transcript fetch.
// Exactly one of Segments or Err is meaningful.
type Result struct {
	Segments Segments
	Err      error
}

// Ok reports whether the fetch succeeded
func (r Result) Ok() bool {
	return r.Err == nil
}

// The JSON envelope written by both adapters
type Response struct {
	Success    bool   `json:"success"`
	Transcript any    `json:"transcript,omitempty"`
	Error      string `json:"error,omitempty"`
	Details    string `json:"details,omitempty"`

	// The failure behind the response, never serialized
	Err error `json:"-"`
}
