package redis

import "time"

// Config holds Redis connection and retention settings
type Config struct {
	// URL is the Redis connection URL (redis://...)
	URL string
	// PoolSize is the maximum number of connections
	PoolSize int
	// MinIdleConns is the minimum number of idle connections
	MinIdleConns int
	// PlayerTTL is the retention for player records (0 = keep forever)
	PlayerTTL time.Duration
	// GameTTL is the retention for game records (0 = keep forever)
	GameTTL time.Duration
}

// DefaultConfig returns sensible defaults. Players are kept forever;
// games expire after a week so abandoned sessions do not accumulate.
func DefaultConfig() Config {
	return Config{
		PoolSize:     10,
		MinIdleConns: 2,
		PlayerTTL:    0,
		GameTTL:      7 * 24 * time.Hour,
	}
}
