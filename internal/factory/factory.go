package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/mikepoirier/word-game/internal/dependencies/clock"
	"github.com/mikepoirier/word-game/internal/dependencies/random"
	"github.com/mikepoirier/word-game/internal/notify"
	"github.com/mikepoirier/word-game/internal/services/player"
	"github.com/mikepoirier/word-game/internal/services/session"
	"github.com/mikepoirier/word-game/internal/storage"
	"github.com/mikepoirier/word-game/internal/storage/memory"
	redisstorage "github.com/mikepoirier/word-game/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Store storage.Store

	Clock  clock.Clock
	Random random.Random

	PlayerService *player.Service
	Orchestrator  *session.Orchestrator
	Hub           *notify.Hub
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var store storage.Store
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(store, clock.New(), random.New(), logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Store, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	playerService := player.New(store, clk, logger)
	orchestrator := session.New(store, playerService, clk, rnd, logger)
	hub := notify.New(logger)

	return &App{
		Store:         store,
		Clock:         clk,
		Random:        rnd,
		PlayerService: playerService,
		Orchestrator:  orchestrator,
		Hub:           hub,
	}
}
