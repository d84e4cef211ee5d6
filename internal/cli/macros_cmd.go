package cli

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/aldenmarsh/fitcoach/internal/domain"
)

func newMacrosCmd(app *App) *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "macros",
		Short: "Generate recommended macro targets",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			p, err := resolveProfile(app, profileName)
			if err != nil {
				return err
			}

			m, err := app.Macros.Generate(ctx, p.General, p.Goals)
			if err != nil {
				return err
			}

			fmt.Println(styleAccent.Render("Recommended daily targets"))
			fmt.Printf("  calories: %.0f kcal\n", m.Calories)
			fmt.Printf("  protein:  %.0f g\n", m.Protein)
			fmt.Printf("  fat:      %.0f g\n", m.Fat)
			fmt.Printf("  carbs:    %.0f g\n", m.Carbs)

			save := true
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewConfirm().
						Title("Save as your nutrition targets?").
						Value(&save),
				),
			).WithTheme(coachHuhTheme()).WithShowHelp(false)
			if err := form.Run(); err != nil {
				return err
			}
			if !save {
				return nil
			}

			targets := domain.NutritionTargets{
				Calories: &m.Calories,
				Protein:  &m.Protein,
				Fat:      &m.Fat,
				Carbs:    &m.Carbs,
			}
			if err := app.Profiles.SaveNutrition(ctx, p.ID, targets); err != nil {
				return err
			}
			fmt.Println(styleGreen.Render("Targets saved."))
			return nil
		},
	}
	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "profile name")
	return cmd
}
