package handler

import (
	"net/http"

	"github.com/mikepoirier/word-game/internal/api/apierr"
	"github.com/mikepoirier/word-game/internal/api/response"
	"github.com/mikepoirier/word-game/internal/services/session"
)

// DebugHandler exposes read-only listings of all records
type DebugHandler struct {
	orchestrator *session.Orchestrator
}

// NewDebugHandler creates a new debug handler
func NewDebugHandler(orchestrator *session.Orchestrator) *DebugHandler {
	return &DebugHandler{orchestrator: orchestrator}
}

// Players handles GET /api/v1/debug/players
func (h *DebugHandler) Players(w http.ResponseWriter, r *http.Request) {
	players, err := h.orchestrator.ListPlayers(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := make([]response.Player, len(players))
	for i, p := range players {
		resp[i] = response.PlayerFromModel(p)
	}
	response.JSON(w, http.StatusOK, resp)
}

// Games handles GET /api/v1/debug/games
func (h *DebugHandler) Games(w http.ResponseWriter, r *http.Request) {
	games, err := h.orchestrator.ListGames(r.Context())
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	resp := make([]response.Game, len(games))
	for i, g := range games {
		resp[i] = response.GameFromModel(g)
	}
	response.JSON(w, http.StatusOK, resp)
}
