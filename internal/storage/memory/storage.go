package memory

import (
	"context"
	"sync"

	"github.com/mikepoirier/word-game/internal/model"
	"github.com/mikepoirier/word-game/internal/storage"
)

// Store is an in-memory implementation of the storage interface
type Store struct {
	mu sync.RWMutex

	players map[model.Username]*model.Player
	games   map[model.GameCode]*model.Game
}

// New creates a new in-memory store
func New() *Store {
	return &Store{
		players: make(map[model.Username]*model.Player),
		games:   make(map[model.GameCode]*model.Game),
	}
}

// Ensure Store implements the interface
var _ storage.Store = (*Store)(nil)

// Player operations

func (s *Store) SavePlayer(ctx context.Context, player *model.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *player
	s.players[player.Username] = &copied
	return nil
}

func (s *Store) GetPlayer(ctx context.Context, username model.Username) (*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[username]
	if !ok {
		return nil, model.ErrPlayerNotFound
	}
	copied := *player
	return &copied, nil
}

// Game operations

func (s *Store) SaveGame(ctx context.Context, game *model.Game) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.games[game.Code] = copyGame(game)
	return nil
}

func (s *Store) GetGame(ctx context.Context, code model.GameCode) (*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	game, ok := s.games[code]
	if !ok {
		return nil, model.ErrGameNotFound
	}
	return copyGame(game), nil
}

func (s *Store) GameExists(ctx context.Context, code model.GameCode) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.games[code]
	return ok, nil
}

// Diagnostics

func (s *Store) ListPlayers(ctx context.Context) ([]*model.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]*model.Player, 0, len(s.players))
	for _, p := range s.players {
		copied := *p
		players = append(players, &copied)
	}
	return players, nil
}

func (s *Store) ListGames(ctx context.Context) ([]*model.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	games := make([]*model.Game, 0, len(s.games))
	for _, g := range s.games {
		games = append(games, copyGame(g))
	}
	return games, nil
}

// copyGame deep-copies a game so callers cannot mutate stored state
// without going back through SaveGame
func copyGame(game *model.Game) *model.Game {
	copied := *game
	copied.Players = append([]model.Username(nil), game.Players...)
	copied.Rounds = make([]model.Round, len(game.Rounds))
	for i, round := range game.Rounds {
		for slot, guess := range round.Guesses {
			if guess != nil {
				g := *guess
				copied.Rounds[i].Guesses[slot] = &g
			}
		}
	}
	return &copied
}
