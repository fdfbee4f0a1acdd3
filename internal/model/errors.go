package model

import "errors"

// Common errors used across the application
var (
	// Player errors
	ErrPlayerNotFound = errors.New("player not found")

	// Game errors
	ErrGameNotFound    = errors.New("game not found")
	ErrGameFull        = errors.New("game is full")
	ErrPlayerNotInGame = errors.New("player is not in this game")
	ErrDuplicateGuess  = errors.New("player has already guessed this round")
	ErrGameComplete    = errors.New("game is already complete")
)
