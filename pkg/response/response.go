// Package response centralizes HTTP response shapes and helpers.
// Handlers rely on it to keep controllers thin and uniform.
package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"futbol-dashboard-service/internal/providers"
	"futbol-dashboard-service/internal/store"
)

// ErrorPayload is the canonical error envelope returned by the API.
type ErrorPayload struct {
	Error    string   `json:"error"`
	Message  string   `json:"message,omitempty"`
	Upstream []string `json:"upstream,omitempty"`
}

// MapError converts a domain / infrastructure error into an HTTP status and
// payload. Extend here as new error categories emerge.
func MapError(err error) (int, ErrorPayload) {
	if err == nil {
		return http.StatusOK, ErrorPayload{Error: "ok"}
	}

	if ue, ok := providers.AsUpstreamError(err); ok {
		return http.StatusBadGateway, ErrorPayload{
			Error:    "upstream_error",
			Message:  "football data provider request failed",
			Upstream: ue.Messages,
		}
	}

	switch {
	case errors.Is(err, store.ErrValidation):
		return http.StatusBadRequest, ErrorPayload{
			Error:   "invalid_input",
			Message: err.Error(),
		}
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, providers.ErrFixtureNotFound):
		return http.StatusNotFound, ErrorPayload{Error: "not_found"}
	case errors.Is(err, providers.ErrProviderUnavailable):
		return http.StatusServiceUnavailable, ErrorPayload{Error: "provider_unavailable"}
	default:
		if _, ok := store.AsStorageError(err); ok {
			return http.StatusInternalServerError, ErrorPayload{
				Error:   "storage_error",
				Message: "league data could not be persisted",
			}
		}
		return http.StatusInternalServerError, ErrorPayload{Error: "internal_error"}
	}
}

// WriteError writes an error response and aborts the context.
func WriteError(c *gin.Context, err error) {
	status, payload := MapError(err)
	c.AbortWithStatusJSON(status, payload)
}

// WriteData writes a successful JSON response.
func WriteData(c *gin.Context, status int, data any) {
	c.JSON(status, data)
}
