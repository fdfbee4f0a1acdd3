package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mikepoirier/word-game/internal/dependencies/mocks"
	"github.com/mikepoirier/word-game/internal/model"
	"github.com/mikepoirier/word-game/internal/services/player"
	"github.com/mikepoirier/word-game/internal/storage"
	"github.com/mikepoirier/word-game/internal/storage/memory"
)

type OrchestratorSuite struct {
	suite.Suite
	store        *memory.Store
	clock        *mocks.MockClock
	random       *mocks.MockRandom
	orchestrator *Orchestrator
	ctx          context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorSuite))
}

func (s *OrchestratorSuite) SetupTest() {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s.store = memory.New()
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	playerService := player.New(s.store, s.clock, logger)
	s.orchestrator = New(s.store, playerService, s.clock, s.random, logger)
	s.ctx = context.Background()
}

// lobbyPlayer walks a username through the lifecycle up to the lobby
func (s *OrchestratorSuite) lobbyPlayer(username model.Username, displayName string) {
	_, err := s.orchestrator.GetOrCreatePlayer(s.ctx, username)
	s.Require().NoError(err)
	_, err = s.orchestrator.ChangeToIntroducing(s.ctx, username)
	s.Require().NoError(err)
	_, err = s.orchestrator.IntroducePlayer(s.ctx, username, displayName)
	s.Require().NoError(err)
}

// startGame puts alice and bob into a fresh game and returns its code
func (s *OrchestratorSuite) startGame() model.GameCode {
	s.lobbyPlayer("alice", "Alice")
	s.lobbyPlayer("bob", "Bob")
	s.random.QueueString("GAME01")

	code, err := s.orchestrator.CreateGame(s.ctx, "alice")
	s.Require().NoError(err)
	_, err = s.orchestrator.JoinGame(s.ctx, "bob", code)
	s.Require().NoError(err)
	return code
}

func (s *OrchestratorSuite) TestCreateGameReturnsCodeAndSetsStatus() {
	s.lobbyPlayer("alice", "Alice")
	s.random.QueueString("GAME01")

	code, err := s.orchestrator.CreateGame(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.GameCode("GAME01"), code)

	p, err := s.orchestrator.GetOrCreatePlayer(s.ctx, "alice")
	s.Require().NoError(err)
	active, ok := p.Status.GameCode()
	s.Require().True(ok)
	s.Equal(code, active)
}

func (s *OrchestratorSuite) TestCreateGameUnknownPlayer() {
	_, err := s.orchestrator.CreateGame(s.ctx, "ghost")
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *OrchestratorSuite) TestCreateGameRetriesTakenCodes() {
	s.lobbyPlayer("alice", "Alice")
	s.lobbyPlayer("bob", "Bob")
	s.random.QueueString("GAME01")

	_, err := s.orchestrator.CreateGame(s.ctx, "alice")
	s.Require().NoError(err)

	// Collides with alice's game, then succeeds with a fresh code
	s.random.QueueString("GAME01", "GAME02")
	code, err := s.orchestrator.CreateGame(s.ctx, "bob")
	s.Require().NoError(err)
	s.Equal(model.GameCode("GAME02"), code)
}

func (s *OrchestratorSuite) TestJoinGameSetsStatusAndSlot() {
	s.lobbyPlayer("alice", "Alice")
	s.lobbyPlayer("bob", "Bob")
	s.random.QueueString("GAME01")
	code, err := s.orchestrator.CreateGame(s.ctx, "alice")
	s.Require().NoError(err)

	slot, err := s.orchestrator.JoinGame(s.ctx, "bob", code)
	s.Require().NoError(err)
	s.Equal(1, slot)

	p, err := s.orchestrator.GetOrCreatePlayer(s.ctx, "bob")
	s.Require().NoError(err)
	active, ok := p.Status.GameCode()
	s.Require().True(ok)
	s.Equal(code, active)
}

func (s *OrchestratorSuite) TestJoinGameUnknownGame() {
	s.lobbyPlayer("bob", "Bob")
	_, err := s.orchestrator.JoinGame(s.ctx, "bob", "NOPE")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *OrchestratorSuite) TestJoinGameUnknownPlayer() {
	code := s.startGame()
	_, err := s.orchestrator.JoinGame(s.ctx, "ghost", code)
	s.ErrorIs(err, model.ErrPlayerNotFound)
}

func (s *OrchestratorSuite) TestThirdJoinFailsGameFull() {
	code := s.startGame()
	s.lobbyPlayer("carol", "Carol")

	_, err := s.orchestrator.JoinGame(s.ctx, "carol", code)
	s.ErrorIs(err, model.ErrGameFull)

	// Carol stays in the lobby
	p, err := s.orchestrator.GetOrCreatePlayer(s.ctx, "carol")
	s.Require().NoError(err)
	s.Equal(model.StatusInLobby, p.Status.Kind())
}

func (s *OrchestratorSuite) TestSubmitGuessUnknownGame() {
	_, err := s.orchestrator.SubmitGuess(s.ctx, "alice", "NOPE", "cat")
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *OrchestratorSuite) TestSubmitGuessNonMember() {
	code := s.startGame()
	s.lobbyPlayer("carol", "Carol")

	_, err := s.orchestrator.SubmitGuess(s.ctx, "carol", code, "cat")
	s.ErrorIs(err, model.ErrPlayerNotInGame)
}

func (s *OrchestratorSuite) TestSubmitGuessDuplicate() {
	code := s.startGame()

	_, err := s.orchestrator.SubmitGuess(s.ctx, "alice", code, "cat")
	s.Require().NoError(err)
	_, err = s.orchestrator.SubmitGuess(s.ctx, "alice", code, "dog")
	s.ErrorIs(err, model.ErrDuplicateGuess)
}

func (s *OrchestratorSuite) TestWinReturnsPlayersToLobby() {
	code := s.startGame()

	_, err := s.orchestrator.SubmitGuess(s.ctx, "alice", code, "star")
	s.Require().NoError(err)
	result, err := s.orchestrator.SubmitGuess(s.ctx, "bob", code, "Star")
	s.Require().NoError(err)
	s.Equal(model.OutcomeWon, result.Outcome)

	for _, username := range []model.Username{"alice", "bob"} {
		p, err := s.orchestrator.GetOrCreatePlayer(s.ctx, username)
		s.Require().NoError(err)
		s.Equal(model.StatusInLobby, p.Status.Kind())
	}
}

func (s *OrchestratorSuite) TestGuessRejectedAfterWin() {
	code := s.startGame()

	_, _ = s.orchestrator.SubmitGuess(s.ctx, "alice", code, "star")
	_, _ = s.orchestrator.SubmitGuess(s.ctx, "bob", code, "star")

	_, err := s.orchestrator.SubmitGuess(s.ctx, "alice", code, "moon")
	s.ErrorIs(err, model.ErrGameComplete)
}

func (s *OrchestratorSuite) TestPlayersInGameUnknownGame() {
	_, err := s.orchestrator.PlayersInGame(s.ctx, "NOPE")
	s.ErrorIs(err, model.ErrGameNotFound)
}

// Mirrors a full two-player session from first contact to a win
func (s *OrchestratorSuite) TestEndToEndSession() {
	s.lobbyPlayer("alice", "Alice")

	code, err := s.orchestrator.CreateGame(s.ctx, "alice")
	s.Require().NoError(err)

	_, err = s.orchestrator.GetOrCreatePlayer(s.ctx, "bob")
	s.Require().NoError(err)
	_, err = s.orchestrator.JoinGame(s.ctx, "bob", code)
	s.Require().NoError(err)

	players, err := s.orchestrator.PlayersInGame(s.ctx, code)
	s.Require().NoError(err)
	s.Equal([]model.Username{"alice", "bob"}, players)

	result, err := s.orchestrator.SubmitGuess(s.ctx, "alice", code, "sun")
	s.Require().NoError(err)
	s.Equal(model.OutcomePending, result.Outcome)

	result, err = s.orchestrator.SubmitGuess(s.ctx, "bob", code, "moon")
	s.Require().NoError(err)
	s.Equal(model.OutcomeContinue, result.Outcome)
	s.Equal(1, result.Round)

	result, err = s.orchestrator.SubmitGuess(s.ctx, "alice", code, "star")
	s.Require().NoError(err)
	s.Equal(model.OutcomePending, result.Outcome)

	result, err = s.orchestrator.SubmitGuess(s.ctx, "bob", code, "Star")
	s.Require().NoError(err)
	s.Equal(model.OutcomeWon, result.Outcome)
	s.Equal(2, result.Round)

	game, err := s.orchestrator.GetGame(s.ctx, code)
	s.Require().NoError(err)
	s.True(game.Complete())
}

var errStoreDown = errors.New("store down")

// faultyStore passes through to a real store until a failure is armed
type faultyStore struct {
	storage.Store
	saveGameErr   error
	savePlayerErr error
}

func (f *faultyStore) SaveGame(ctx context.Context, game *model.Game) error {
	if f.saveGameErr != nil {
		return f.saveGameErr
	}
	return f.Store.SaveGame(ctx, game)
}

func (f *faultyStore) SavePlayer(ctx context.Context, p *model.Player) error {
	if f.savePlayerErr != nil {
		return f.savePlayerErr
	}
	return f.Store.SavePlayer(ctx, p)
}

// faultyOrchestrator wires an orchestrator over the suite's store with
// the given failures injected
func (s *OrchestratorSuite) faultyOrchestrator(fs *faultyStore) *Orchestrator {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	fs.Store = s.store
	return New(fs, player.New(fs, s.clock, logger), s.clock, s.random, logger)
}

func (s *OrchestratorSuite) TestCreateGameSurfacesStoreError() {
	s.lobbyPlayer("alice", "Alice")
	s.random.QueueString("GAME01")

	orch := s.faultyOrchestrator(&faultyStore{saveGameErr: errStoreDown})
	_, err := orch.CreateGame(s.ctx, "alice")
	s.ErrorIs(err, errStoreDown)

	// Alice is still in the lobby and can retry
	p, err := s.orchestrator.GetOrCreatePlayer(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(model.StatusInLobby, p.Status.Kind())
}

func (s *OrchestratorSuite) TestJoinGameSurfacesStoreError() {
	s.lobbyPlayer("alice", "Alice")
	s.lobbyPlayer("bob", "Bob")
	s.random.QueueString("GAME01")
	code, err := s.orchestrator.CreateGame(s.ctx, "alice")
	s.Require().NoError(err)

	orch := s.faultyOrchestrator(&faultyStore{saveGameErr: errStoreDown})
	_, err = orch.JoinGame(s.ctx, "bob", code)
	s.ErrorIs(err, errStoreDown)

	// The membership change was not persisted
	players, err := s.orchestrator.PlayersInGame(s.ctx, code)
	s.Require().NoError(err)
	s.Equal([]model.Username{"alice"}, players)
}

func (s *OrchestratorSuite) TestSubmitGuessSurfacesStoreError() {
	code := s.startGame()

	orch := s.faultyOrchestrator(&faultyStore{saveGameErr: errStoreDown})
	_, err := orch.SubmitGuess(s.ctx, "alice", code, "cat")
	s.ErrorIs(err, errStoreDown)

	game, err := s.orchestrator.GetGame(s.ctx, code)
	s.Require().NoError(err)
	s.Empty(game.Rounds)
}

// A player save failing after the winning round was persisted surfaces
// the error and leaves both players marked in-game against a completed
// game. ReturnToLobby recovers them once the store is healthy again.
func (s *OrchestratorSuite) TestWinPersistFailureIsRecoverable() {
	code := s.startGame()
	_, err := s.orchestrator.SubmitGuess(s.ctx, "alice", code, "star")
	s.Require().NoError(err)

	orch := s.faultyOrchestrator(&faultyStore{savePlayerErr: errStoreDown})
	_, err = orch.SubmitGuess(s.ctx, "bob", code, "star")
	s.ErrorIs(err, errStoreDown)

	// The winning round itself is durable
	game, err := s.orchestrator.GetGame(s.ctx, code)
	s.Require().NoError(err)
	s.True(game.Complete())

	for _, u := range []model.Username{"alice", "bob"} {
		p, err := s.orchestrator.GetOrCreatePlayer(s.ctx, u)
		s.Require().NoError(err)
		s.Equal(model.StatusInGame, p.Status.Kind())

		_, err = s.orchestrator.ReturnToLobby(s.ctx, u)
		s.Require().NoError(err)
	}
}

// Many concurrent joiners; the game must never exceed two players
func (s *OrchestratorSuite) TestConcurrentJoinsRespectPlayerLimit() {
	s.lobbyPlayer("alice", "Alice")
	s.random.QueueString("GAME01")
	code, err := s.orchestrator.CreateGame(s.ctx, "alice")
	s.Require().NoError(err)

	joiners := []model.Username{"bob", "carol", "dave", "erin", "frank"}
	for _, u := range joiners {
		s.lobbyPlayer(u, string(u))
	}

	var wg sync.WaitGroup
	results := make(chan error, len(joiners))
	for _, u := range joiners {
		wg.Add(1)
		go func(u model.Username) {
			defer wg.Done()
			_, err := s.orchestrator.JoinGame(s.ctx, u, code)
			results <- err
		}(u)
	}
	wg.Wait()
	close(results)

	var succeeded, full int
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		default:
			s.ErrorIs(err, model.ErrGameFull)
			full++
		}
	}
	s.Equal(1, succeeded)
	s.Equal(len(joiners)-1, full)

	players, err := s.orchestrator.PlayersInGame(s.ctx, code)
	s.Require().NoError(err)
	s.Len(players, model.MaxPlayers)
}

// Both players hammer guesses concurrently; every submission must be
// either accepted or rejected with a domain error, never lost
func (s *OrchestratorSuite) TestConcurrentGuessesStayConsistent() {
	code := s.startGame()

	var wg sync.WaitGroup
	for _, u := range []model.Username{"alice", "bob"} {
		wg.Add(1)
		go func(u model.Username) {
			defer wg.Done()
			for i := 0; i < 20; i++ {
				_, err := s.orchestrator.SubmitGuess(s.ctx, u, code, string(u))
				if err != nil {
					s.ErrorIs(err, model.ErrDuplicateGuess)
				}
			}
		}(u)
	}
	wg.Wait()

	game, err := s.orchestrator.GetGame(s.ctx, code)
	s.Require().NoError(err)

	// All rounds except possibly the last are complete
	for i, round := range game.Rounds {
		if i < len(game.Rounds)-1 {
			s.True(round.Complete())
		}
	}
}
