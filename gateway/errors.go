package gateway

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode/utf8"
)

// The transport reports failures as exactly one of two kinds: the backend
// answered with a non-2xx status (HTTPError), or no usable HTTP response
// arrived at all (NetworkError). Nothing outside this package inspects
// transport-specific error shapes.

// HTTPError is a definite backend rejection: a response was received with a
// non-success status.
type HTTPError struct {
	StatusCode int
	Body       []byte
}

func (e *HTTPError) Error() string {
	body := strings.TrimSpace(string(e.Body))
	if len(body) > 200 {
		body = body[:200] + "..."
	}
	if body == "" {
		return fmt.Sprintf("backend returned %d", e.StatusCode)
	}
	return fmt.Sprintf("backend returned %d: %s", e.StatusCode, body)
}

// NetworkError means the request never produced an HTTP response: connection
// failure, timeout, or cancelled context. Stored credentials are never cleared
// on a NetworkError.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network failure: %v", e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}

// IsNetwork reports whether err is classified as a network/timeout failure.
func IsNetwork(err error) bool {
	var ne *NetworkError
	return errors.As(err, &ne)
}

// StatusCode returns the HTTP status carried by err, or 0 when err is not a
// backend rejection.
func StatusCode(err error) int {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode
	}
	return 0
}

// IsUnauthorized reports whether err is a 401 rejection.
func IsUnauthorized(err error) bool {
	return StatusCode(err) == http.StatusUnauthorized
}

// errEmptyRenewalPayload marks a renewal response that succeeded at the HTTP
// level but carried no recognizable access token.
var errEmptyRenewalPayload = errors.New("renewal response contained no access token")

// Message extracts a human-readable message from a backend rejection: the
// payload's "detail" field, then "message", then the raw body, then fallback.
func Message(err error, fallback string) string {
	var he *HTTPError
	if !errors.As(err, &he) {
		return fallback
	}
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if json.Unmarshal(he.Body, &payload) == nil {
		if payload.Detail != "" {
			return payload.Detail
		}
		if payload.Message != "" {
			return payload.Message
		}
	}
	var asString string
	if json.Unmarshal(he.Body, &asString) == nil && asString != "" {
		return asString
	}
	if raw := strings.TrimSpace(string(he.Body)); raw != "" && utf8.ValidString(raw) && !strings.HasPrefix(raw, "{") && !strings.HasPrefix(raw, "[") {
		return raw
	}
	return fallback
}
