package redis

import "github.com/mikepoirier/word-game/internal/model"

// Key prefixes for the different record types
const (
	playerPrefix = "wordgame:player:"
	gamePrefix   = "wordgame:game:"
)

func playerKey(username model.Username) string {
	return playerPrefix + string(username)
}

func gameKey(code model.GameCode) string {
	return gamePrefix + string(code)
}
