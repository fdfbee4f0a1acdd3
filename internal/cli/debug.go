package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDebugCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "debug",
		Short: "Server diagnostics",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "players",
		Short: "List all known players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []playerInfo
			if err := client.Get("/api/v1/debug/players", &result); err != nil {
				return err
			}
			for _, p := range result {
				fmt.Println(p.render())
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "games",
		Short: "List all known games",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var result []gameInfo
			if err := client.Get("/api/v1/debug/games", &result); err != nil {
				return err
			}
			for _, g := range result {
				fmt.Println(g.render())
			}
			return nil
		},
	})

	return cmd
}
