package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxJSONBodySize caps the size of request bodies accepted by ReadJSON.
const maxJSONBodySize = 1 << 20

var (
	// ErrEmptyBody is returned by ReadJSON when the request has no body.
	ErrEmptyBody = errors.New("request body is empty")
	// ErrTrailingData is returned by ReadJSON when the body holds more than
	// one JSON value.
	ErrTrailingData = errors.New("request body must contain a single JSON value")
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Parameters:
//
//	w          - the HTTP response writer to write the response to
//	data       - any value to be serialized as JSON (struct, map, slice, nil, etc.)
//	statusCode - HTTP status code to set in the response (e.g. http.StatusOK)
//
// Returns:
//
//	int   - number of bytes written to the response body
//	error - non-nil if JSON marshaling fails
//
// Example usage:
//
//	WriteJSON(w, map[string]string{"status": "ok"}, http.StatusOK)
//	WriteJSON(w, map[string]string{"error": "not found"}, http.StatusNotFound)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// ReadJSON decodes the JSON request body into dst.
//
// The body is limited to 1 MiB. Fields unknown to dst and data after the
// first JSON value are rejected. An empty body yields ErrEmptyBody; any other
// decode failure is wrapped and returned.
func ReadJSON(r *http.Request, dst any) error {
	if r.Body == nil {
		return ErrEmptyBody
	}

	dec := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodySize))
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if errors.Is(err, io.EOF) {
		return ErrEmptyBody
	}
	if err != nil {
		return fmt.Errorf("error decoding JSON body: %w", err)
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}

	return nil
}
