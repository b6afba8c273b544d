package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// parseJSON decodes a request body into the given type, rejecting
// unknown fields.
func parseJSON[T any](r *http.Request) (T, error) {
	var v T
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&v); err != nil {
		return v, fmt.Errorf("failed to parse request body: %w", err)
	}
	return v, nil
}

// parseDate accepts the two date encodings the API takes: a bare
// calendar date or a full RFC 3339 timestamp.
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t.UTC(), nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q", value)
	}
	return t.UTC(), nil
}
