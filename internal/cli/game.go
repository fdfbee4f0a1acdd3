package cli

import (
	"bufio"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cobra"
)

// gameInfo mirrors the API's game response
type gameInfo struct {
	Code     string      `json:"code"`
	Players  []string    `json:"players"`
	Rounds   []roundInfo `json:"rounds"`
	Complete bool        `json:"complete"`
}

type roundInfo struct {
	Guesses [2]*string `json:"guesses"`
}

func (g gameInfo) render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Game %s - players: %s\n", g.Code, strings.Join(g.Players, ", "))
	for i, round := range g.Rounds {
		fmt.Fprintf(&b, "  round %d: %s / %s\n", i+1, renderGuess(round.Guesses[0]), renderGuess(round.Guesses[1]))
	}
	if g.Complete {
		b.WriteString("  finished: the last round matched!\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func renderGuess(guess *string) string {
	if guess == nil {
		return "(waiting)"
	}
	return *guess
}

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game commands",
	}

	cmd.AddCommand(newGameCreateCmd())
	cmd.AddCommand(newGameJoinCmd())
	cmd.AddCommand(newGameGuessCmd())
	cmd.AddCommand(newGameShowCmd())
	cmd.AddCommand(newGamePlayersCmd())
	cmd.AddCommand(newGameWatchCmd())

	return cmd
}

func newGameCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Create a game and print its code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUsername(); err != nil {
				return err
			}

			var result struct {
				Code string `json:"code"`
			}
			if err := client.Post("/api/v1/games", map[string]string{"username": cfg.Username}, &result); err != nil {
				return err
			}

			fmt.Printf("Created game %s - share the code with your opponent\n", result.Code)
			return nil
		},
	}
}

func newGameJoinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "join <code>",
		Short: "Join a game by code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUsername(); err != nil {
				return err
			}

			var result struct {
				Slot int `json:"slot"`
			}
			body := map[string]string{"username": cfg.Username}
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/join", args[0]), body, &result); err != nil {
				return err
			}

			fmt.Printf("Joined game %s as player %d\n", args[0], result.Slot+1)
			return nil
		},
	}
}

func newGameGuessCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "guess <code> <word>",
		Short: "Submit a guess",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUsername(); err != nil {
				return err
			}

			var result struct {
				Outcome string `json:"outcome"`
				Round   int    `json:"round"`
			}
			body := map[string]string{"username": cfg.Username, "guess": args[1]}
			if err := client.Post(fmt.Sprintf("/api/v1/games/%s/guesses", args[0]), body, &result); err != nil {
				return err
			}

			switch result.Outcome {
			case "pending":
				fmt.Printf("Round %d: waiting for the other player...\n", result.Round)
			case "continue":
				fmt.Printf("Round %d: no match. Try again!\n", result.Round)
			case "won":
				fmt.Printf("Round %d: you matched! You both win!\n", result.Round)
			default:
				fmt.Printf("Round %d: %s\n", result.Round, result.Outcome)
			}
			return nil
		},
	}
}

func newGameShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <code>",
		Short: "Show a game's rounds",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result gameInfo
			if err := client.Get(fmt.Sprintf("/api/v1/games/%s", args[0]), &result); err != nil {
				return err
			}

			fmt.Println(result.render())
			return nil
		},
	}
}

func newGamePlayersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "players <code>",
		Short: "List the players in a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var result struct {
				Players []string `json:"players"`
			}
			if err := client.Get(fmt.Sprintf("/api/v1/games/%s/players", args[0]), &result); err != nil {
				return err
			}

			for i, username := range result.Players {
				fmt.Printf("%d: %s\n", i+1, username)
			}
			return nil
		},
	}
}

func newGameWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <code>",
		Short: "Stream guess events for a game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			url := fmt.Sprintf("%s/api/v1/games/%s/events", strings.TrimSuffix(cfg.ServerURL, "/"), args[0])

			req, err := http.NewRequestWithContext(cmd.Context(), http.MethodGet, url, nil)
			if err != nil {
				return err
			}

			// No timeout: the stream stays open until interrupted
			resp, err := http.DefaultClient.Do(req)
			if err != nil {
				return err
			}
			defer func() { _ = resp.Body.Close() }()

			if resp.StatusCode != http.StatusOK {
				return fmt.Errorf("unexpected status %d", resp.StatusCode)
			}

			fmt.Printf("Watching game %s...\n", args[0])
			scanner := bufio.NewScanner(resp.Body)
			for scanner.Scan() {
				line := scanner.Text()
				if data, ok := strings.CutPrefix(line, "data: "); ok {
					fmt.Println(data)
				}
			}
			return scanner.Err()
		},
	}
}
