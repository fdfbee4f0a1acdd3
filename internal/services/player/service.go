package player

import (
	"context"
	"errors"
	"log/slog"

	"github.com/mikepoirier/word-game/internal/dependencies/clock"
	"github.com/mikepoirier/word-game/internal/model"
	"github.com/mikepoirier/word-game/internal/storage"
)

// Service manages the player lifecycle state machine. It is not safe
// for concurrent use on its own; the session orchestrator serializes
// all calls.
type Service struct {
	store  storage.Store
	clock  clock.Clock
	logger *slog.Logger
}

// New creates a new player lifecycle service
func New(store storage.Store, clk clock.Clock, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		clock:  clk,
		logger: logger,
	}
}

// GetOrCreate returns the existing player record, creating one in the
// initial state on first reference
func (s *Service) GetOrCreate(ctx context.Context, username model.Username) (*model.Player, error) {
	player, err := s.store.GetPlayer(ctx, username)
	if err == nil {
		return player, nil
	}
	if !errors.Is(err, model.ErrPlayerNotFound) {
		return nil, err
	}

	player = model.NewPlayer(username, s.clock.Now())
	if err := s.store.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player created", slog.String("username", string(username)))
	return player, nil
}

// Exists reports whether a player record exists for the username
func (s *Service) Exists(ctx context.Context, username model.Username) (bool, error) {
	_, err := s.store.GetPlayer(ctx, username)
	if errors.Is(err, model.ErrPlayerNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ChangeToIntroducing moves the player into the introduction step.
// Calling it again before the introduction completes is a no-op.
func (s *Service) ChangeToIntroducing(ctx context.Context, username model.Username) (*model.Player, error) {
	player, err := s.store.GetPlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	player.Status = model.IntroducingStatus()
	if err := s.store.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

// Introduce records the player's display name and moves them to the lobby
func (s *Service) Introduce(ctx context.Context, username model.Username, displayName string) (*model.Player, error) {
	player, err := s.store.GetPlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	player.DisplayName = displayName
	player.Status = model.InLobbyStatus()
	if err := s.store.SavePlayer(ctx, player); err != nil {
		return nil, err
	}

	s.logger.Info("player introduced",
		slog.String("username", string(username)),
		slog.String("display_name", displayName),
	)
	return player, nil
}

// ReturnToLobby moves the player back to the lobby regardless of their
// current state. Used after game completion or abandonment.
func (s *Service) ReturnToLobby(ctx context.Context, username model.Username) (*model.Player, error) {
	player, err := s.store.GetPlayer(ctx, username)
	if err != nil {
		return nil, err
	}

	player.Status = model.InLobbyStatus()
	if err := s.store.SavePlayer(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}
