package session

import (
	"context"
	"log/slog"
	"sync"

	"github.com/mikepoirier/word-game/internal/dependencies/clock"
	"github.com/mikepoirier/word-game/internal/dependencies/random"
	"github.com/mikepoirier/word-game/internal/model"
	"github.com/mikepoirier/word-game/internal/services/player"
	"github.com/mikepoirier/word-game/internal/storage"
)

const (
	// GameCodeLength is the length of generated game codes
	GameCodeLength = 6
	// GameCodeAlphabet is the characters used in game codes (avoids confusing chars)
	GameCodeAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
)

// GuessResult reports the outcome of a guess submission along with
// enough context for a transport to notify the other player.
type GuessResult struct {
	Outcome model.Outcome
	Round   int // 1-based round number the guess landed in
	Players []model.Username
}

// Orchestrator is the single entry point used by any transport. Every
// public operation takes the orchestrator's lock for its whole load,
// mutate, persist cycle, so the engines and store never see concurrent
// access. Nothing that can suspend indefinitely happens under the lock;
// notifying players is the transport's job after a call returns.
type Orchestrator struct {
	mu sync.Mutex

	store   storage.Store
	players *player.Service
	clock   clock.Clock
	random  random.Random
	logger  *slog.Logger
}

// New creates a new session orchestrator
func New(
	store storage.Store,
	players *player.Service,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		store:   store,
		players: players,
		clock:   clk,
		random:  rnd,
		logger:  logger,
	}
}

// GetOrCreatePlayer returns the player record for a username, creating
// it on first contact
func (o *Orchestrator) GetOrCreatePlayer(ctx context.Context, username model.Username) (*model.Player, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.players.GetOrCreate(ctx, username)
}

// PlayerExists reports whether a username has been seen before
func (o *Orchestrator) PlayerExists(ctx context.Context, username model.Username) (bool, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.players.Exists(ctx, username)
}

// ChangeToIntroducing moves a player into the introduction step
func (o *Orchestrator) ChangeToIntroducing(ctx context.Context, username model.Username) (*model.Player, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.players.ChangeToIntroducing(ctx, username)
}

// IntroducePlayer records a display name and moves the player to the lobby
func (o *Orchestrator) IntroducePlayer(ctx context.Context, username model.Username, displayName string) (*model.Player, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.players.Introduce(ctx, username, displayName)
}

// ReturnToLobby moves a player back to the lobby
func (o *Orchestrator) ReturnToLobby(ctx context.Context, username model.Username) (*model.Player, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.players.ReturnToLobby(ctx, username)
}

// CreateGame creates a game with the player in slot 0 and returns its
// code. The creator is in the game immediately; their opponent joins
// with the code.
func (o *Orchestrator) CreateGame(ctx context.Context, username model.Username) (model.GameCode, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.store.GetPlayer(ctx, username)
	if err != nil {
		return "", err
	}

	code, err := o.newGameCode(ctx)
	if err != nil {
		return "", err
	}

	game := model.NewGame(code, username, o.clock.Now())
	if err := o.store.SaveGame(ctx, game); err != nil {
		return "", err
	}

	p.Status = model.InGameStatus(code)
	if err := o.store.SavePlayer(ctx, p); err != nil {
		return "", err
	}

	o.logger.Info("game created",
		slog.String("game_code", string(code)),
		slog.String("username", string(username)),
	)
	return code, nil
}

// JoinGame adds the player to an existing game and returns their slot
func (o *Orchestrator) JoinGame(ctx context.Context, username model.Username, code model.GameCode) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	p, err := o.store.GetPlayer(ctx, username)
	if err != nil {
		return 0, err
	}

	game, err := o.store.GetGame(ctx, code)
	if err != nil {
		return 0, err
	}

	slot, err := game.AddPlayer(username)
	if err != nil {
		return 0, err
	}

	if err := o.store.SaveGame(ctx, game); err != nil {
		return 0, err
	}

	p.Status = model.InGameStatus(code)
	if err := o.store.SavePlayer(ctx, p); err != nil {
		return 0, err
	}

	o.logger.Info("player joined game",
		slog.String("game_code", string(code)),
		slog.String("username", string(username)),
		slog.Int("slot", slot),
	)
	return slot, nil
}

// SubmitGuess records a guess and reports the round outcome. On a win,
// both players are returned to the lobby; the caller is responsible for
// telling them about it.
func (o *Orchestrator) SubmitGuess(ctx context.Context, username model.Username, code model.GameCode, guess string) (GuessResult, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	game, err := o.store.GetGame(ctx, code)
	if err != nil {
		return GuessResult{}, err
	}

	outcome, err := game.AddGuess(username, guess)
	if err != nil {
		return GuessResult{}, err
	}

	if err := o.store.SaveGame(ctx, game); err != nil {
		return GuessResult{}, err
	}

	if outcome == model.OutcomeWon {
		// Winners go back to the lobby for the next game
		for _, u := range game.Players {
			if _, err := o.players.ReturnToLobby(ctx, u); err != nil {
				return GuessResult{}, err
			}
		}
		o.logger.Info("game won",
			slog.String("game_code", string(code)),
			slog.Int("rounds", len(game.Rounds)),
		)
	}

	return GuessResult{
		Outcome: outcome,
		Round:   len(game.Rounds),
		Players: append([]model.Username(nil), game.Players...),
	}, nil
}

// PlayersInGame returns the ordered username list of a game
func (o *Orchestrator) PlayersInGame(ctx context.Context, code model.GameCode) ([]model.Username, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	game, err := o.store.GetGame(ctx, code)
	if err != nil {
		return nil, err
	}
	return append([]model.Username(nil), game.Players...), nil
}

// GetGame returns a checked-out copy of a game for status rendering
func (o *Orchestrator) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.store.GetGame(ctx, code)
}

// ListPlayers returns all known players (diagnostics)
func (o *Orchestrator) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.store.ListPlayers(ctx)
}

// ListGames returns all known games (diagnostics)
func (o *Orchestrator) ListGames(ctx context.Context) ([]*model.Game, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.store.ListGames(ctx)
}

// newGameCode generates a game code not already in use. Must be called
// with the lock held.
func (o *Orchestrator) newGameCode(ctx context.Context) (model.GameCode, error) {
	for {
		code := model.GameCode(o.random.String(GameCodeLength, GameCodeAlphabet))
		exists, err := o.store.GameExists(ctx, code)
		if err != nil {
			return "", err
		}
		if !exists {
			return code, nil
		}
	}
}
