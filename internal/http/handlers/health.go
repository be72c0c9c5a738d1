package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"futbol-dashboard-service/internal/poller"
	"futbol-dashboard-service/internal/store"
)

// PollerStatus reports the fixture poll loop's recent health.
type PollerStatus interface {
	Status() poller.Status
}

// LeagueStatus reports blob store health.
type LeagueStatus interface {
	StorageStatus() store.Status
}

// HealthHandler serves liveness and readiness probes.
type HealthHandler struct {
	poller PollerStatus
	league LeagueStatus
}

func NewHealthHandler(p PollerStatus, l LeagueStatus) *HealthHandler {
	return &HealthHandler{poller: p, league: l}
}

// Liveness always reports ok while the process is serving.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Readiness reports whether fixture data is flowing. League blob resets are
// surfaced for operators but do not fail readiness: the service recovers by
// design and keeps serving.
func (h *HealthHandler) Readiness(c *gin.Context) {
	body := gin.H{"status": "ok"}
	status := http.StatusOK

	if h.poller != nil {
		ps := h.poller.Status()
		body["poller"] = gin.H{
			"ready":                ps.IsReady(),
			"consecutive_failures": ps.ConsecutiveFailures,
			"last_success":         ps.LastSuccess,
		}
		if !ps.IsReady() {
			body["status"] = "degraded"
			status = http.StatusServiceUnavailable
		}
	}

	if h.league != nil {
		ls := h.league.StorageStatus()
		body["league"] = gin.H{
			"blob_resets": ls.Resets,
			"last_error":  ls.LastError,
		}
	}

	c.JSON(status, body)
}
