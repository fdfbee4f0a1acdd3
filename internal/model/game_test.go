package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	game := NewGame("GAME01", "alice", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	_, err := game.AddPlayer("bob")
	require.NoError(t, err)
	return game
}

func TestAddPlayerAssignsSlotsInOrder(t *testing.T) {
	game := NewGame("GAME01", "alice", time.Now())

	slot, err := game.AddPlayer("bob")
	require.NoError(t, err)
	assert.Equal(t, 1, slot)
	assert.Equal(t, []Username{"alice", "bob"}, game.Players)
}

func TestAddPlayerFailsWhenFull(t *testing.T) {
	game := newTestGame(t)

	_, err := game.AddPlayer("carol")
	assert.ErrorIs(t, err, ErrGameFull)
	assert.Len(t, game.Players, MaxPlayers)
}

func TestAddGuessFirstGuessIsPending(t *testing.T) {
	game := newTestGame(t)

	outcome, err := game.AddGuess("alice", "sun")
	require.NoError(t, err)
	assert.Equal(t, OutcomePending, outcome)
	assert.Len(t, game.Rounds, 1)
}

func TestAddGuessMismatchContinues(t *testing.T) {
	game := newTestGame(t)

	_, err := game.AddGuess("alice", "cat")
	require.NoError(t, err)
	outcome, err := game.AddGuess("bob", "dog")
	require.NoError(t, err)

	assert.Equal(t, OutcomeContinue, outcome)
	assert.False(t, game.Complete())
}

func TestAddGuessMatchWins(t *testing.T) {
	game := newTestGame(t)

	_, err := game.AddGuess("alice", "Cat")
	require.NoError(t, err)
	outcome, err := game.AddGuess("bob", "  cat ")
	require.NoError(t, err)

	assert.Equal(t, OutcomeWon, outcome)
	assert.True(t, game.Complete())
}

func TestAddGuessInteriorWhitespaceSignificant(t *testing.T) {
	game := newTestGame(t)

	_, err := game.AddGuess("alice", "ice cream")
	require.NoError(t, err)
	outcome, err := game.AddGuess("bob", "icecream")
	require.NoError(t, err)

	assert.Equal(t, OutcomeContinue, outcome)
}

func TestAddGuessOpensNewRoundAfterMismatch(t *testing.T) {
	game := newTestGame(t)

	_, _ = game.AddGuess("alice", "cat")
	_, _ = game.AddGuess("bob", "dog")

	outcome, err := game.AddGuess("bob", "star")
	require.NoError(t, err)
	assert.Equal(t, OutcomePending, outcome)
	assert.Len(t, game.Rounds, 2)

	// Earlier round is untouched
	assert.Equal(t, "cat", *game.Rounds[0].Guesses[0])
	assert.Equal(t, "dog", *game.Rounds[0].Guesses[1])
}

func TestAddGuessRejectsSecondGuessInOpenRound(t *testing.T) {
	game := newTestGame(t)

	_, err := game.AddGuess("alice", "cat")
	require.NoError(t, err)
	_, err = game.AddGuess("alice", "dog")
	assert.ErrorIs(t, err, ErrDuplicateGuess)

	// Original guess is preserved
	assert.Equal(t, "cat", *game.Rounds[0].Guesses[0])
}

func TestAddGuessRejectsNonMember(t *testing.T) {
	game := newTestGame(t)

	_, err := game.AddGuess("mallory", "cat")
	assert.ErrorIs(t, err, ErrPlayerNotInGame)
	assert.Empty(t, game.Rounds)
}

func TestAddGuessRejectedAfterWin(t *testing.T) {
	game := newTestGame(t)

	_, _ = game.AddGuess("alice", "star")
	_, _ = game.AddGuess("bob", "star")

	_, err := game.AddGuess("alice", "moon")
	assert.ErrorIs(t, err, ErrGameComplete)
	assert.Len(t, game.Rounds, 1)
}

func TestSecondPlayerCanOpenARound(t *testing.T) {
	game := newTestGame(t)

	outcome, err := game.AddGuess("bob", "moon")
	require.NoError(t, err)
	assert.Equal(t, OutcomePending, outcome)
	assert.Nil(t, game.Rounds[0].Guesses[0])
	assert.Equal(t, "moon", *game.Rounds[0].Guesses[1])
}

func TestOnlyLastRoundIncomplete(t *testing.T) {
	game := newTestGame(t)

	for i := 0; i < 3; i++ {
		_, _ = game.AddGuess("alice", "cat")
		_, _ = game.AddGuess("bob", "dog")
	}
	_, _ = game.AddGuess("alice", "sun")

	for _, round := range game.Rounds[:len(game.Rounds)-1] {
		assert.True(t, round.Complete())
		assert.False(t, round.IsMatch())
	}
}
