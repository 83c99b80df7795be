package api

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// envelope is the wrapped response shape some endpoints use:
// {success, data, error?}. Other endpoints return the collection bare;
// decodeCollection handles both so callers only ever see a normalized
// collection-or-error.
type envelope struct {
	Success *bool           `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

// failed reports whether the envelope carries an application-level failure:
// explicit success=false, or a present error message. An error alongside a
// payload still fails the load; there is no partial success.
func (e envelope) failed() bool {
	if e.Success != nil && !*e.Success {
		return true
	}
	return e.Error != ""
}

// message extracts the user-facing failure message, preferring `error` over
// `message`.
func (e envelope) message() string {
	if e.Error != "" {
		return e.Error
	}
	return e.Message
}

// decodeCollection normalizes a list response into a collection. Both
// supported shapes map envelope-level failure and malformed payloads to the
// same error path; there is no silent partial success.
func decodeCollection[T any](body []byte) ([]T, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []T
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
		return items, nil
	}

	var env envelope
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("failed to decode response envelope: %w", err)
	}
	if env.failed() {
		if msg := env.message(); msg != "" {
			return nil, fmt.Errorf("%s", msg)
		}
		return nil, fmt.Errorf("server reported failure")
	}

	var items []T
	if len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, &items); err != nil {
			return nil, fmt.Errorf("failed to decode response data: %w", err)
		}
	}
	return items, nil
}

// decodeRecord normalizes a single-record envelope response.
func decodeRecord[T any](body []byte) (T, error) {
	var zero T

	var env envelope
	if err := json.Unmarshal(bytes.TrimSpace(body), &env); err != nil {
		return zero, fmt.Errorf("failed to decode response envelope: %w", err)
	}
	// A JSON-null data field counts as no record, same as an absent one.
	if env.failed() || len(env.Data) == 0 || bytes.Equal(env.Data, []byte("null")) {
		if msg := env.message(); msg != "" {
			return zero, fmt.Errorf("%s", msg)
		}
		return zero, fmt.Errorf("server returned no record")
	}

	var record T
	if err := json.Unmarshal(env.Data, &record); err != nil {
		return zero, fmt.Errorf("failed to decode response data: %w", err)
	}
	return record, nil
}

// errorFromBody builds an error for a non-2xx response, extracting the
// server-provided message when present (error field first, then message).
func errorFromBody(status int, body []byte) error {
	var env envelope
	if err := json.Unmarshal(body, &env); err == nil {
		if msg := env.message(); msg != "" {
			return fmt.Errorf("%s", msg)
		}
	}
	return fmt.Errorf("request failed with status %d", status)
}
