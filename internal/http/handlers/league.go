package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	appleague "futbol-dashboard-service/internal/app/league"
	domain "futbol-dashboard-service/internal/domain/league"
	"futbol-dashboard-service/internal/store"
	"futbol-dashboard-service/pkg/response"
)

// LeagueHandler serves the friend-league endpoints. Reads are public; the
// roster and session mutations sit behind the admin middleware.
type LeagueHandler struct {
	svc *appleague.Service
}

func NewLeagueHandler(svc *appleague.Service) *LeagueHandler {
	return &LeagueHandler{svc: svc}
}

// Register mounts the public read routes.
func (h *LeagueHandler) Register(r *gin.RouterGroup) {
	g := r.Group("/league")
	{
		g.GET("/players", h.listPlayers)
		g.GET("/players/:id", h.getPlayer)
		g.GET("/players/:id/averages", h.playerAverages)
		g.GET("/sessions", h.listSessions)
		g.GET("/leaderboard", h.leaderboard)
	}
}

// RegisterAdmin mounts the mutation routes on an already-guarded group.
func (h *LeagueHandler) RegisterAdmin(r *gin.RouterGroup) {
	g := r.Group("/league")
	{
		g.POST("/players", h.createPlayer)
		g.PATCH("/players/:id", h.updatePlayer)
		g.DELETE("/players/:id", h.removePlayer)
		g.POST("/sessions", h.createSession)
	}
}

func (h *LeagueHandler) listPlayers(c *gin.Context) {
	players, err := h.svc.Players(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"players": players})
}

func (h *LeagueHandler) getPlayer(c *gin.Context) {
	player, err := h.svc.Player(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, player)
}

func (h *LeagueHandler) playerAverages(c *gin.Context) {
	averages, err := h.svc.Averages(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, averages)
}

func (h *LeagueHandler) listSessions(c *gin.Context) {
	sessions, err := h.svc.Sessions(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"sessions": sessions})
}

func (h *LeagueHandler) leaderboard(c *gin.Context) {
	board, err := h.svc.Leaderboard(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, board)
}

func (h *LeagueHandler) createPlayer(c *gin.Context) {
	var input domain.NewPlayerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.WriteError(c, fmt.Errorf("%w: %v", store.ErrValidation, err))
		return
	}
	player, err := h.svc.AddPlayer(c.Request.Context(), input)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, player)
}

func (h *LeagueHandler) updatePlayer(c *gin.Context) {
	var patch domain.PlayerPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.WriteError(c, fmt.Errorf("%w: %v", store.ErrValidation, err))
		return
	}
	player, err := h.svc.UpdatePlayer(c.Request.Context(), c.Param("id"), patch)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, player)
}

func (h *LeagueHandler) removePlayer(c *gin.Context) {
	if err := h.svc.RemovePlayer(c.Request.Context(), c.Param("id")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *LeagueHandler) createSession(c *gin.Context) {
	var input appleague.NewSessionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.WriteError(c, fmt.Errorf("%w: %v", store.ErrValidation, err))
		return
	}
	session, err := h.svc.AddSession(c.Request.Context(), input)
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusCreated, session)
}
