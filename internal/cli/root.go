// Package cli implements the fitcoach terminal front end: cobra commands,
// huh profile forms and the bubbletea chat REPL.
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/aldenmarsh/fitcoach/internal/assistant"
	"github.com/aldenmarsh/fitcoach/internal/service"
)

// App holds references to the services and assistant entrypoints used by
// CLI commands.
type App struct {
	Profiles service.ProfileService
	Notes    service.NoteService
	Coach    *assistant.Coach
	Macros   *assistant.MacroGenerator

	// ServeHTTP starts the JSON API and blocks. Wired in main.
	ServeHTTP func() error

	// IsInteractive reports whether stdin is a terminal. A bare "fitcoach"
	// invocation opens the chat REPL only when this returns true.
	IsInteractive func() bool

	Log *zap.SugaredLogger
}

// NewRootCmd creates the top-level "fitcoach" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "fitcoach",
		Short: "Personal fitness coach with profile-aware answers",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && app.IsInteractive() {
				return runChat(app, "")
			}
			return cmd.Help()
		},
	}

	root.AddCommand(
		newProfileCmd(app),
		newNotesCmd(app),
		newAskCmd(app),
		newChatCmd(app),
		newMacrosCmd(app),
		newServeCmd(app),
	)

	return root
}
