package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the JSON API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.ServeHTTP == nil {
				return fmt.Errorf("HTTP server is not configured")
			}
			return app.ServeHTTP()
		},
	}
}
