package cli

import (
	"context"
	"io"
	"log"

	"github.com/vlatan/video-transcripts/internal/models"
	"github.com/vlatan/video-transcripts/internal/transcript"
	"github.com/vlatan/video-transcripts/internal/utils"
)

// Run fetches the transcript of the video ID given as first positional
// argument and prints the JSON response to stdout.
// Diagnostics go to the standard logger. The exit code is always 0,
// failures are reported in the JSON document only.
func Run(ctx context.Context, svc *transcript.Service, args []string, stdout io.Writer) int {

	var videoID string
	if len(args) > 0 {
		videoID = args[0]
	}

	resp := svc.Format(ctx, videoID, models.ShapeSegments)
	if err := utils.EncodeJSON(stdout, resp); err != nil {
		log.Printf("Failed to write the response to stdout: %v", err)
	}

	return 0
}
