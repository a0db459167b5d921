package utils

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
)

// Fallback body if a response cannot be encoded
const encodeFailure = `{"success": false, "error": "failed to encode the response"}` + "\n"

// EncodeJSON writes data as one JSON document followed by a newline.
// The document is encoded to a buffer first so that
// a failed encoding never leaves malformed JSON behind.
func EncodeJSON(w io.Writer, data any) error {

	var buf bytes.Buffer
	encoder := json.NewEncoder(&buf)
	encoder.SetEscapeHTML(false)

	if err := encoder.Encode(data); err != nil {
		log.Printf("Failed to encode JSON: %v", err)
		_, werr := io.WriteString(w, encodeFailure)
		return werr
	}

	_, err := buf.WriteTo(w)
	return err
}

// WriteJSON writes data as JSON response with the given status
func WriteJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := EncodeJSON(w, data); err != nil {
		// Too late for recovery here, just log the error
		log.Printf("Failed to write JSON to response on URI '%s': %v", r.RequestURI, err)
	}
}
