// Package handlers wires the application services to gin routes.
package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	appmatches "futbol-dashboard-service/internal/app/matches"
	"futbol-dashboard-service/internal/store"
	"futbol-dashboard-service/pkg/response"
)

// MatchHandler serves the live-match viewer endpoints.
type MatchHandler struct {
	svc *appmatches.Service
}

func NewMatchHandler(svc *appmatches.Service) *MatchHandler {
	return &MatchHandler{svc: svc}
}

func (h *MatchHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/matches")
	{
		g.GET("", h.byDate)
		g.GET("/live", h.live)
		g.GET("/:id", h.byID)
		g.GET("/:id/events", h.events)
		g.GET("/:id/statistics", h.statistics)
	}
}

func (h *MatchHandler) live(c *gin.Context) {
	list := h.svc.Live(c.Request.Context())
	response.WriteData(c, http.StatusOK, gin.H{
		"matches":     list,
		"refreshedAt": h.svc.LastRefreshed(),
	})
}

func (h *MatchHandler) byDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		response.WriteError(c, fmt.Errorf("%w: date query parameter required", store.ErrValidation))
		return
	}
	day, err := h.svc.ByDate(c.Request.Context(), date)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, day)
}

func (h *MatchHandler) byID(c *gin.Context) {
	m, err := h.svc.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, m)
}

func (h *MatchHandler) events(c *gin.Context) {
	events, err := h.svc.Events(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"events": events})
}

func (h *MatchHandler) statistics(c *gin.Context) {
	possession, err := h.svc.Possession(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	// A null possession means upstream has not reported statistics yet.
	response.WriteData(c, http.StatusOK, gin.H{"possession": possession})
}
