package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/mikepoirier/word-game/internal/api/apierr"
	"github.com/mikepoirier/word-game/internal/api/request"
	"github.com/mikepoirier/word-game/internal/api/response"
	"github.com/mikepoirier/word-game/internal/model"
	"github.com/mikepoirier/word-game/internal/notify"
	"github.com/mikepoirier/word-game/internal/services/session"
)

// GameHandler handles game endpoints
type GameHandler struct {
	orchestrator *session.Orchestrator
	hub          *notify.Hub
}

// NewGameHandler creates a new game handler
func NewGameHandler(orchestrator *session.Orchestrator, hub *notify.Hub) *GameHandler {
	return &GameHandler{
		orchestrator: orchestrator,
		hub:          hub,
	}
}

// Create handles POST /api/v1/games
func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username is required"))
		return
	}

	code, err := h.orchestrator.CreateGame(r.Context(), model.Username(req.Username))
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.CreateGameResponse{Code: string(code)})
}

// Get handles GET /api/v1/games/{code}
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	code := model.GameCode(mux.Vars(r)["code"])

	game, err := h.orchestrator.GetGame(r.Context(), code)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.GameFromModel(game))
}

// Join handles POST /api/v1/games/{code}/join
func (h *GameHandler) Join(w http.ResponseWriter, r *http.Request) {
	code := model.GameCode(mux.Vars(r)["code"])

	var req request.JoinGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username is required"))
		return
	}

	slot, err := h.orchestrator.JoinGame(r.Context(), model.Username(req.Username), code)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.JoinGameResponse{Code: string(code), Slot: slot})
}

// Players handles GET /api/v1/games/{code}/players
func (h *GameHandler) Players(w http.ResponseWriter, r *http.Request) {
	code := model.GameCode(mux.Vars(r)["code"])

	players, err := h.orchestrator.PlayersInGame(r.Context(), code)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	names := make([]string, len(players))
	for i, u := range players {
		names[i] = string(u)
	}
	response.JSON(w, http.StatusOK, response.PlayersResponse{Players: names})
}

// Guess handles POST /api/v1/games/{code}/guesses
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	code := model.GameCode(mux.Vars(r)["code"])

	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" || req.Guess == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("username and guess are required"))
		return
	}

	result, err := h.orchestrator.SubmitGuess(r.Context(), model.Username(req.Username), code, req.Guess)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	// The orchestrator has released its lock by now; telling the other
	// player is safe
	h.hub.Publish(notify.Event{
		GameCode: code,
		Username: model.Username(req.Username),
		Outcome:  result.Outcome,
		Round:    result.Round,
	})

	response.JSON(w, http.StatusOK, response.GuessResponseFromResult(result))
}

// Events handles GET /api/v1/games/{code}/events as a server-sent
// event stream of guess outcomes
func (h *GameHandler) Events(w http.ResponseWriter, r *http.Request) {
	code := model.GameCode(mux.Vars(r)["code"])

	// Verify the game exists before holding the connection open
	if _, err := h.orchestrator.GetGame(r.Context(), code); err != nil {
		apierr.WriteError(w, err)
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		apierr.WriteError(w, apierr.NewInternalError())
		return
	}

	// Guesses arrive at human pace. Lift the server-wide write deadline
	// for this response so the stream is not severed between rounds.
	if err := http.NewResponseController(w).SetWriteDeadline(time.Time{}); err != nil && !errors.Is(err, http.ErrNotSupported) {
		apierr.WriteError(w, apierr.NewInternalError())
		return
	}

	events, cancel := h.hub.Subscribe(code)
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case event, open := <-events:
			if !open {
				return
			}
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "event: guess\ndata: %s\n\n", data)
			flusher.Flush()
		}
	}
}
