package cli

import (
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"
)

func newChatCmd(app *App) *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Open the interactive coaching chat",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChat(app, profileName)
		},
	}
	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "profile name")
	return cmd
}

func runChat(app *App, profileName string) error {
	p, err := resolveProfile(app, profileName)
	if err != nil {
		return err
	}

	model := newChatModel(app, p)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}
