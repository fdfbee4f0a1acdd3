package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// playerInfo mirrors the API's player response
type playerInfo struct {
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Status      string `json:"status"`
	GameCode    string `json:"game_code"`
}

func (p playerInfo) render() string {
	s := fmt.Sprintf("%s [%s]", p.Username, p.Status)
	if p.DisplayName != "" {
		s += " - " + p.DisplayName
	}
	if p.GameCode != "" {
		s += " playing " + p.GameCode
	}
	return s
}

func requireUsername() error {
	if cfg.Username == "" {
		return errors.New("username required: set --username or WORDGAME_USERNAME")
	}
	return nil
}

func newPlayerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "player",
		Short: "Player commands",
	}

	cmd.AddCommand(newPlayerCreateCmd())
	cmd.AddCommand(newPlayerIntroduceCmd())
	cmd.AddCommand(newPlayerStatusCmd())

	return cmd
}

func newPlayerCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create",
		Short: "Register yourself with the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUsername(); err != nil {
				return err
			}

			var result playerInfo
			if err := client.Post("/api/v1/players", map[string]string{"username": cfg.Username}, &result); err != nil {
				return err
			}

			fmt.Println(result.render())
			return nil
		},
	}
}

func newPlayerIntroduceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "introduce <display-name>",
		Short: "Set your display name and enter the lobby",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUsername(); err != nil {
				return err
			}

			if err := client.Post(fmt.Sprintf("/api/v1/players/%s/introducing", cfg.Username), nil, nil); err != nil {
				return err
			}

			var result playerInfo
			body := map[string]string{"display_name": args[0]}
			if err := client.Post(fmt.Sprintf("/api/v1/players/%s/introduce", cfg.Username), body, &result); err != nil {
				return err
			}

			fmt.Println(result.render())
			return nil
		},
	}
}

func newPlayerStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show your current status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireUsername(); err != nil {
				return err
			}

			var result playerInfo
			if err := client.Get(fmt.Sprintf("/api/v1/players/%s", cfg.Username), &result); err != nil {
				return err
			}

			fmt.Println(result.render())
			return nil
		},
	}
}
