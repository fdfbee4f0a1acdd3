package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mikepoirier/word-game/internal/factory"
	"github.com/mikepoirier/word-game/internal/model"
)

// Fixed usernames for the two hot-seat players; display names are
// prompted for at startup
const (
	consolePlayer1 = "player1"
	consolePlayer2 = "player2"
)

func newConsoleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "console",
		Short: "Play a local hot-seat game without a server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := factory.New(factory.Config{})
			if err != nil {
				return err
			}
			return runConsole(cmd.Context(), app, bufio.NewScanner(os.Stdin))
		},
	}
}

func runConsole(ctx context.Context, app *factory.App, scanner *bufio.Scanner) error {
	fmt.Println("Welcome to the word game!")

	players := [2]model.Username{consolePlayer1, consolePlayer2}
	names := [2]string{}
	for i, username := range players {
		name, err := prompt(scanner, fmt.Sprintf("Enter player %d's name:", i+1))
		if err != nil {
			return err
		}
		names[i] = name

		if _, err := app.Orchestrator.GetOrCreatePlayer(ctx, username); err != nil {
			return err
		}
		if _, err := app.Orchestrator.ChangeToIntroducing(ctx, username); err != nil {
			return err
		}
		if _, err := app.Orchestrator.IntroducePlayer(ctx, username, name); err != nil {
			return err
		}
	}

	code, err := app.Orchestrator.CreateGame(ctx, players[0])
	if err != nil {
		return err
	}
	if _, err := app.Orchestrator.JoinGame(ctx, players[1], code); err != nil {
		return err
	}

	for {
		var outcome model.Outcome
		for i, username := range players {
			guess, err := prompt(scanner, fmt.Sprintf("%s, enter your guess:", names[i]))
			if err != nil {
				return err
			}
			result, err := app.Orchestrator.SubmitGuess(ctx, username, code, guess)
			if err != nil {
				return err
			}
			outcome = result.Outcome
		}

		if outcome == model.OutcomeWon {
			break
		}

		fmt.Println("Aww, shucks... Those didn't match.")
		game, err := app.Orchestrator.GetGame(ctx, code)
		if err != nil {
			return err
		}
		printRounds(game)
	}

	fmt.Printf("%s and %s, you won!!! Congrats!\n", names[0], names[1])
	game, err := app.Orchestrator.GetGame(ctx, code)
	if err != nil {
		return err
	}
	printRounds(game)
	return nil
}

func printRounds(game *model.Game) {
	for i, round := range game.Rounds {
		fmt.Printf("%d) %s\t%s\n", i+1, renderGuess(round.Guesses[0]), renderGuess(round.Guesses[1]))
	}
}

func prompt(scanner *bufio.Scanner, message string) (string, error) {
	fmt.Printf("%s ", message)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("input closed")
	}
	return strings.TrimSpace(scanner.Text()), nil
}
