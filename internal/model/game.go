package model

import (
	"strings"
	"time"
)

// GameCode is the opaque identifier two players share to meet in a game
type GameCode string

// MaxPlayers is the number of players a game holds
const MaxPlayers = 2

// Outcome is the tri-state result of a guess submission
type Outcome string

const (
	// OutcomePending means the round is still waiting on the other player
	OutcomePending Outcome = "pending"
	// OutcomeContinue means the round completed without a match
	OutcomeContinue Outcome = "continue"
	// OutcomeWon means the round completed with matching guesses
	OutcomeWon Outcome = "won"
)

// Round holds one optional guess per player slot. Slot order follows
// the game's player order.
type Round struct {
	Guesses [MaxPlayers]*string
}

// Complete reports whether both players have guessed this round
func (r *Round) Complete() bool {
	return r.Guesses[0] != nil && r.Guesses[1] != nil
}

// IsMatch reports whether a complete round's guesses agree. Comparison
// ignores case and leading/trailing whitespace; interior whitespace and
// punctuation are significant.
func (r *Round) IsMatch() bool {
	if !r.Complete() {
		return false
	}
	return strings.EqualFold(
		strings.TrimSpace(*r.Guesses[0]),
		strings.TrimSpace(*r.Guesses[1]),
	)
}

// Game is a two-player guess-matching session. Players occupy fixed
// slots in join order; rounds are append-only and only the last round
// may be missing guesses.
type Game struct {
	Code      GameCode
	StartTime time.Time
	Players   []Username
	Rounds    []Round
}

// NewGame creates a game with the creator already in slot 0
func NewGame(code GameCode, creator Username, now time.Time) *Game {
	return &Game{
		Code:      code,
		StartTime: now,
		Players:   []Username{creator},
	}
}

// PlayerSlot returns the slot index for a username
func (g *Game) PlayerSlot(username Username) (int, bool) {
	for i, u := range g.Players {
		if u == username {
			return i, true
		}
	}
	return 0, false
}

// AddPlayer appends a player and returns the assigned slot index
func (g *Game) AddPlayer(username Username) (int, error) {
	if len(g.Players) >= MaxPlayers {
		return 0, ErrGameFull
	}
	g.Players = append(g.Players, username)
	return len(g.Players) - 1, nil
}

// Complete reports whether the game has been won. A game is complete
// once its last round matched; no further guesses are accepted.
func (g *Game) Complete() bool {
	if len(g.Rounds) == 0 {
		return false
	}
	return g.Rounds[len(g.Rounds)-1].IsMatch()
}

// AddGuess records a guess for the submitting player and reports the
// resulting round outcome. A new round opens automatically when the
// previous one is complete.
func (g *Game) AddGuess(username Username, guess string) (Outcome, error) {
	slot, ok := g.PlayerSlot(username)
	if !ok {
		return "", ErrPlayerNotInGame
	}
	if g.Complete() {
		return "", ErrGameComplete
	}

	if len(g.Rounds) == 0 || g.Rounds[len(g.Rounds)-1].Complete() {
		var round Round
		round.Guesses[slot] = &guess
		g.Rounds = append(g.Rounds, round)
	} else {
		last := &g.Rounds[len(g.Rounds)-1]
		if last.Guesses[slot] != nil {
			return "", ErrDuplicateGuess
		}
		last.Guesses[slot] = &guess
	}

	last := &g.Rounds[len(g.Rounds)-1]
	switch {
	case !last.Complete():
		return OutcomePending, nil
	case last.IsMatch():
		return OutcomeWon, nil
	default:
		return OutcomeContinue, nil
	}
}
