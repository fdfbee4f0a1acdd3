package storage

import (
	"context"

	"github.com/mikepoirier/word-game/internal/model"
)

// Store defines the interface for data persistence. Implementations are
// not required to be safe for concurrent use; the session orchestrator
// serializes all access.
type Store interface {
	// Player operations
	SavePlayer(ctx context.Context, player *model.Player) error
	GetPlayer(ctx context.Context, username model.Username) (*model.Player, error)

	// Game operations
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, code model.GameCode) (*model.Game, error)
	GameExists(ctx context.Context, code model.GameCode) (bool, error)

	// Diagnostics
	ListPlayers(ctx context.Context) ([]*model.Player, error)
	ListGames(ctx context.Context) ([]*model.Game, error)
}
