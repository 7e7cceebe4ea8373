// Package utils holds small helpers shared by the HTTP layers: JSON
// response writing and the response envelope.
package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/gatherly/models"
)

// Now is the clock used for envelope timestamps.
var Now = time.Now

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Returns the number of bytes written to the response body and a non-nil
// error if JSON marshaling fails.
//
// Example usage:
//
//	WriteJSON(w, Success("ok", nil), http.StatusOK)
//	WriteJSON(w, Failure("Venue not found", nil), http.StatusNotFound)
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

// Success builds the envelope of a successful response.
func Success(message string, data any) models.Envelope {
	return models.Envelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: Timestamp(),
	}
}

// Failure builds the envelope of a failed response. errs carries per-field
// details and is omitted when nil.
func Failure(message string, errs any) models.Envelope {
	return models.Envelope{
		Success:   false,
		Message:   message,
		Errors:    errs,
		Timestamp: Timestamp(),
	}
}

// Timestamp returns the current time in RFC 3339 format.
func Timestamp() string {
	return Now().UTC().Format(time.RFC3339)
}
