package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAskCmd(app *App) *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   `ask "<question>"`,
		Short: "Ask a one-shot question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProfile(app, profileName)
			if err != nil {
				return err
			}
			answer, err := app.Coach.Ask(context.Background(), strings.Join(args, " "), p, nil)
			if err != nil {
				return err
			}
			fmt.Println(answer)
			return nil
		},
	}
	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "profile name")
	return cmd
}
