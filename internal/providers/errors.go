package providers

import (
	"errors"
	"fmt"
	"strings"
)

// ErrProviderUnavailable is returned when a wrapper has no inner provider.
var ErrProviderUnavailable = errors.New("provider unavailable")

// ErrFixtureNotFound is returned when an upstream lookup yields no fixture.
var ErrFixtureNotFound = errors.New("fixture not found")

// UpstreamError captures a failed upstream API call: a non-2xx status or an
// API-reported error payload. It is never retried here; the calling poll
// loop decides whether the next tick retries.
type UpstreamError struct {
	Provider   string
	StatusCode int
	Messages   []string
}

func (e *UpstreamError) Error() string {
	msg := strings.Join(e.Messages, "; ")
	if msg == "" {
		msg = "upstream request failed"
	}
	if e.StatusCode > 0 {
		return fmt.Sprintf("%s: %s (status=%d)", e.Provider, msg, e.StatusCode)
	}
	return fmt.Sprintf("%s: %s", e.Provider, msg)
}

// AsUpstreamError attempts to unwrap an error into an UpstreamError.
func AsUpstreamError(err error) (*UpstreamError, bool) {
	var ue *UpstreamError
	if errors.As(err, &ue) {
		return ue, true
	}
	return nil, false
}
