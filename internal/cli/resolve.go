package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/aldenmarsh/fitcoach/internal/domain"
)

// resolveProfile turns a --profile flag value into a profile, creating it on
// first use. With an empty flag it offers existing names in a picker, or a
// free-text prompt when the store is empty.
func resolveProfile(app *App, name string) (*domain.Profile, error) {
	ctx := context.Background()

	name = strings.TrimSpace(name)
	if name == "" {
		picked, err := pickProfileName(app)
		if err != nil {
			return nil, err
		}
		name = picked
	}

	return app.Profiles.GetOrCreateByName(ctx, name)
}

func pickProfileName(app *App) (string, error) {
	names, err := app.Profiles.ListNames(context.Background())
	if err != nil {
		return "", err
	}

	var name string
	var form *huh.Form
	if len(names) == 0 {
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Your name").
					Placeholder("Alex").
					Value(&name).
					Validate(requireNonEmpty("name")),
			),
		).WithTheme(coachHuhTheme()).WithShowHelp(false)
	} else {
		options := make([]huh.Option[string], 0, len(names)+1)
		for _, n := range names {
			options = append(options, huh.NewOption(n, n))
		}
		options = append(options, huh.NewOption("(new profile)", ""))
		form = huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Profile").
					Options(options...).
					Value(&name),
			),
		).WithTheme(coachHuhTheme()).WithShowHelp(false)
	}
	if err := form.Run(); err != nil {
		return "", err
	}

	if name == "" && len(names) > 0 {
		entry := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Your name").
					Placeholder("Alex").
					Value(&name).
					Validate(requireNonEmpty("name")),
			),
		).WithTheme(coachHuhTheme()).WithShowHelp(false)
		if err := entry.Run(); err != nil {
			return "", err
		}
	}
	return strings.TrimSpace(name), nil
}

func requireNonEmpty(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s must not be empty", field)
		}
		return nil
	}
}
