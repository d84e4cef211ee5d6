package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newNotesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage fitness notes",
	}
	cmd.AddCommand(
		newNotesAddCmd(app),
		newNotesListCmd(app),
		newNotesRmCmd(app),
	)
	return cmd
}

func newNotesAddCmd(app *App) *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   `add "<text>"`,
		Short: "Record a note",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProfile(app, profileName)
			if err != nil {
				return err
			}
			n, err := app.Notes.Add(context.Background(), p.ID, strings.Join(args, " "))
			if err != nil {
				return err
			}
			fmt.Printf("Noted (%s).\n", n.ID)
			return nil
		},
	}
	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "profile name")
	return cmd
}

func newNotesListCmd(app *App) *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProfile(app, profileName)
			if err != nil {
				return err
			}
			notes, err := app.Notes.ListByUser(context.Background(), p.ID)
			if err != nil {
				return err
			}
			if len(notes) == 0 {
				fmt.Println(styleDim.Render("No notes yet."))
				return nil
			}
			for _, n := range notes {
				fmt.Printf("%s  %s\n  %s\n",
					styleDim.Render(n.IngestedAt.Format("2006-01-02 15:04")),
					styleDim.Render(n.ID),
					n.Text,
				)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "profile name")
	return cmd
}

func newNotesRmCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Notes.Delete(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Println("Deleted.")
			return nil
		},
	}
}
