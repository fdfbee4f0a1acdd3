package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mikepoirier/word-game/internal/api/apierr"
	"github.com/mikepoirier/word-game/internal/api/request"
	"github.com/mikepoirier/word-game/internal/api/response"
	"github.com/mikepoirier/word-game/internal/model"
	"github.com/mikepoirier/word-game/internal/services/session"
)

// PlayerHandler handles player lifecycle endpoints
type PlayerHandler struct {
	orchestrator *session.Orchestrator
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(orchestrator *session.Orchestrator) *PlayerHandler {
	return &PlayerHandler{orchestrator: orchestrator}
}

// Create handles POST /api/v1/players
func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username is required"))
		return
	}

	player, err := h.orchestrator.GetOrCreatePlayer(r.Context(), model.Username(req.Username))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Get handles GET /api/v1/players/{username}
func (h *PlayerHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := model.Username(mux.Vars(r)["username"])

	exists, err := h.orchestrator.PlayerExists(r.Context(), username)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}
	if !exists {
		apierr.WriteError(w, model.ErrPlayerNotFound)
		return
	}

	player, err := h.orchestrator.GetOrCreatePlayer(r.Context(), username)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// StartIntroduction handles POST /api/v1/players/{username}/introducing
func (h *PlayerHandler) StartIntroduction(w http.ResponseWriter, r *http.Request) {
	username := model.Username(mux.Vars(r)["username"])

	player, err := h.orchestrator.ChangeToIntroducing(r.Context(), username)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Introduce handles POST /api/v1/players/{username}/introduce
func (h *PlayerHandler) Introduce(w http.ResponseWriter, r *http.Request) {
	username := model.Username(mux.Vars(r)["username"])

	var req request.IntroduceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.DisplayName == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("display_name is required"))
		return
	}

	player, err := h.orchestrator.IntroducePlayer(r.Context(), username, req.DisplayName)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// ReturnToLobby handles POST /api/v1/players/{username}/lobby
func (h *PlayerHandler) ReturnToLobby(w http.ResponseWriter, r *http.Request) {
	username := model.Username(mux.Vars(r)["username"])

	player, err := h.orchestrator.ReturnToLobby(r.Context(), username)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}
