package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/aldenmarsh/fitcoach/internal/assistant"
	"github.com/aldenmarsh/fitcoach/internal/domain"
)

func newProfileCmd(app *App) *cobra.Command {
	var profileName string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Create or edit a profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resolveProfile(app, profileName)
			if err != nil {
				return err
			}
			return runProfileForm(app, p)
		},
	}
	cmd.Flags().StringVarP(&profileName, "profile", "p", "", "profile name")

	cmd.AddCommand(
		newProfileListCmd(app),
		newProfileShowCmd(app),
		newProfileDeleteCmd(app),
	)
	return cmd
}

func newProfileListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profile names",
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := app.Profiles.ListNames(context.Background())
			if err != nil {
				return err
			}
			if len(names) == 0 {
				fmt.Println(styleDim.Render("No profiles yet. Run \"fitcoach profile\" to create one."))
				return nil
			}
			for _, n := range names {
				fmt.Println(n)
			}
			return nil
		},
	}
}

func newProfileShowCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Show a profile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := app.Profiles.GetByName(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(assistant.ProfileSummary(p))
			return nil
		},
	}
}

func newProfileDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a profile and all of its notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Profiles.DeleteByName(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("Deleted profile %q and its notes.\n", args[0])
			return nil
		},
	}
}

// runProfileForm walks the full three-section edit flow: general info, goals
// and nutrition targets. Every section is saved independently so a cancelled
// later section keeps earlier edits.
func runProfileForm(app *App, p *domain.Profile) error {
	ctx := context.Background()

	general, err := collectGeneral(p)
	if err != nil {
		return err
	}
	if err := app.Profiles.SaveGeneral(ctx, p.ID, general); err != nil {
		return err
	}

	goals, err := collectGoals(p)
	if err != nil {
		return err
	}
	if err := app.Profiles.SaveGoals(ctx, p.ID, goals); err != nil {
		return err
	}

	nutrition, err := collectNutrition(p)
	if err != nil {
		return err
	}
	if err := app.Profiles.SaveNutrition(ctx, p.ID, nutrition); err != nil {
		return err
	}

	fmt.Println(styleGreen.Render("Profile saved."))
	return nil
}

func collectGeneral(p *domain.Profile) (domain.GeneralInfo, error) {
	name := p.General.Name
	age := optIntField(p.General.Age)
	weight := optFloatField(p.General.Weight)
	height := optFloatField(p.General.Height)
	gender := p.General.Gender
	activity := p.General.ActivityLevel

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Placeholder("Alex").
				Value(&name).
				Validate(requireNonEmpty("name")),
			huh.NewInput().
				Title("Age (blank to skip)").
				Placeholder("30").
				Value(&age).
				Validate(validateOptionalInt),
			huh.NewInput().
				Title("Weight in kg (blank to skip)").
				Placeholder("75").
				Value(&weight).
				Validate(validateOptionalFloat),
			huh.NewInput().
				Title("Height in cm (blank to skip)").
				Placeholder("180").
				Value(&height).
				Validate(validateOptionalFloat),
			huh.NewSelect[string]().
				Title("Gender").
				Options(stringOptions(domain.Genders, true)...).
				Value(&gender),
			huh.NewSelect[string]().
				Title("Activity level").
				Options(stringOptions(domain.ActivityLevels, true)...).
				Value(&activity),
		),
	).WithTheme(coachHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return domain.GeneralInfo{}, err
	}

	return domain.GeneralInfo{
		Name:          strings.TrimSpace(name),
		Age:           parseOptInt(age),
		Weight:        parseOptFloat(weight),
		Height:        parseOptFloat(height),
		Gender:        gender,
		ActivityLevel: activity,
	}, nil
}

func collectGoals(p *domain.Profile) ([]string, error) {
	goals := append([]string(nil), p.Goals...)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Goals").
				Options(stringOptions(domain.GoalOptions, false)...).
				Value(&goals),
		),
	).WithTheme(coachHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return nil, err
	}
	return goals, nil
}

func collectNutrition(p *domain.Profile) (domain.NutritionTargets, error) {
	calories := optFloatField(p.Nutrition.Calories)
	protein := optFloatField(p.Nutrition.Protein)
	fat := optFloatField(p.Nutrition.Fat)
	carbs := optFloatField(p.Nutrition.Carbs)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Daily calories (blank to skip)").
				Placeholder("2500").
				Value(&calories).
				Validate(validateOptionalFloat),
			huh.NewInput().
				Title("Protein g (blank to skip)").
				Placeholder("150").
				Value(&protein).
				Validate(validateOptionalFloat),
			huh.NewInput().
				Title("Fat g (blank to skip)").
				Placeholder("70").
				Value(&fat).
				Validate(validateOptionalFloat),
			huh.NewInput().
				Title("Carbs g (blank to skip)").
				Placeholder("300").
				Value(&carbs).
				Validate(validateOptionalFloat),
		),
	).WithTheme(coachHuhTheme()).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return domain.NutritionTargets{}, err
	}

	return domain.NutritionTargets{
		Calories: parseOptFloat(calories),
		Protein:  parseOptFloat(protein),
		Fat:      parseOptFloat(fat),
		Carbs:    parseOptFloat(carbs),
	}, nil
}

func stringOptions(values []string, withBlank bool) []huh.Option[string] {
	options := make([]huh.Option[string], 0, len(values)+1)
	if withBlank {
		options = append(options, huh.NewOption("(not set)", ""))
	}
	for _, v := range values {
		options = append(options, huh.NewOption(v, v))
	}
	return options
}

func optIntField(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func optFloatField(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func parseOptInt(s string) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &v
}

func parseOptFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &v
}

func validateOptionalInt(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive whole number or leave blank")
	}
	return nil
}

func validateOptionalFloat(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number or leave blank")
	}
	return nil
}
