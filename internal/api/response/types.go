package response

import (
	"time"

	"github.com/mikepoirier/word-game/internal/model"
	"github.com/mikepoirier/word-game/internal/services/session"
)

// Player represents a player in API responses
type Player struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name,omitempty"`
	Status      string `json:"status"`
	GameCode    string `json:"game_code,omitempty"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	resp := Player{
		Username:    string(p.Username),
		DisplayName: p.DisplayName,
		Status:      string(p.Status.Kind()),
	}
	if code, ok := p.Status.GameCode(); ok {
		resp.GameCode = string(code)
	}
	return resp
}

// Round represents one round's guess pair; entries are null until the
// corresponding player has guessed
type Round struct {
	Guesses [model.MaxPlayers]*string `json:"guesses"`
}

// Game represents a game in API responses
type Game struct {
	Code      string    `json:"code"`
	StartTime time.Time `json:"start_time"`
	Players   []string  `json:"players"`
	Rounds    []Round   `json:"rounds"`
	Complete  bool      `json:"complete"`
}

// GameFromModel converts a model.Game to a response Game
func GameFromModel(g *model.Game) Game {
	players := make([]string, len(g.Players))
	for i, u := range g.Players {
		players[i] = string(u)
	}
	rounds := make([]Round, len(g.Rounds))
	for i, r := range g.Rounds {
		rounds[i] = Round{Guesses: r.Guesses}
	}
	return Game{
		Code:      string(g.Code),
		StartTime: g.StartTime,
		Players:   players,
		Rounds:    rounds,
		Complete:  g.Complete(),
	}
}

// CreateGameResponse is the response for POST /games
type CreateGameResponse struct {
	Code string `json:"code"`
}

// JoinGameResponse is the response for POST /games/{code}/join
type JoinGameResponse struct {
	Code string `json:"code"`
	Slot int    `json:"slot"`
}

// GuessResponse is the response for POST /games/{code}/guesses
type GuessResponse struct {
	Outcome string `json:"outcome"`
	Round   int    `json:"round"`
}

// GuessResponseFromResult converts a session.GuessResult
func GuessResponseFromResult(r session.GuessResult) GuessResponse {
	return GuessResponse{
		Outcome: string(r.Outcome),
		Round:   r.Round,
	}
}

// PlayersResponse is the response for GET /games/{code}/players
type PlayersResponse struct {
	Players []string `json:"players"`
}
