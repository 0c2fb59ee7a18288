// Package setup runs the interactive preferences form behind `tock -setup`.
package setup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/five82/tock/internal/clock"
	"github.com/five82/tock/internal/prefs"
	"github.com/five82/tock/internal/ui"
)

// Run loads the current preferences, lets the user edit them and saves the
// result. Aborting the form leaves the file untouched.
func Run(ctx context.Context, prefsPath string) error {
	p, _ := prefs.Load(prefsPath)

	sound := !p.Mute
	form := Form(&p, &sound)
	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return fmt.Errorf("setup form: %w", err)
	}

	p.Mute = !sound
	p.DefaultDuration = normalizeDuration(p.DefaultDuration)
	if err := prefs.Save(prefsPath, p); err != nil {
		return err
	}
	return nil
}

// Form builds the preferences form bound to p. sound is the inverse of p.Mute.
func Form(p *prefs.Prefs, sound *bool) *huh.Form {
	var themeOpts []huh.Option[string]
	for _, name := range ui.ThemeNames() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&p.Theme),
			huh.NewConfirm().
				Title("Play a chime when the countdown finishes?").
				Value(sound),
			huh.NewInput().
				Title("Default duration").
				Description("HH:MM:SS, MM:SS or SS. Leave empty to start at zero.").
				Value(&p.DefaultDuration).
				Validate(ValidateDuration),
			huh.NewSelect[string]().
				Title("Mode").
				Options(
					huh.NewOption("Countdown", clock.Countdown.String()),
					huh.NewOption("Stopwatch", clock.Stopwatch.String()),
				).
				Value(&p.Mode),
		),
	).WithTheme(huh.ThemeBase16())
}

// ValidateDuration accepts an empty string or anything clock.Parse accepts.
func ValidateDuration(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	if _, err := clock.Parse(s); err != nil {
		return err
	}
	return nil
}

// normalizeDuration rewrites a valid duration as HH:MM:SS.
func normalizeDuration(s string) string {
	if strings.TrimSpace(s) == "" {
		return ""
	}
	n, err := clock.Parse(s)
	if err != nil {
		return ""
	}
	return clock.Format(n)
}
