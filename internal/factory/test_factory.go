package factory

import (
	"io"
	"log/slog"

	"github.com/mikepoirier/word-game/internal/dependencies/clock"
	"github.com/mikepoirier/word-game/internal/dependencies/random"
	"github.com/mikepoirier/word-game/internal/storage/memory"
)

// NewForTesting creates an App with in-memory storage, the given mock
// dependencies, and a discarded logger
func NewForTesting(clk clock.Clock, rnd random.Random) *App {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return newWithDependencies(memory.New(), clk, rnd, logger)
}
