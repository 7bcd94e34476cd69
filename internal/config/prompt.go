package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/pterm/pterm/putils"
)

// PromptOptions holds the user's responses to the first-run prompts.
type PromptOptions struct {
	Source        string
	Notifications bool
}

// WithPromptConfig returns an Option that asks for the essential settings
// when no config file exists yet. It must run before WithViperConfig so the
// answers end up in the written file.
func WithPromptConfig(configPath string) Option {
	return func(c *Config) error {
		_, err := os.Stat(configPath)
		if err == nil || !errors.Is(err, os.ErrNotExist) {
			return err
		}

		opts, err := promptUser()
		if err != nil {
			return fmt.Errorf("user prompt failed: %w", err)
		}

		return writePromptOptions(configPath, opts)
	}
}

// promptUser handles the interactive configuration process.
func promptUser() (PromptOptions, error) {
	opts := PromptOptions{
		Source:        SourceTerminal,
		Notifications: true,
	}

	_ = putils.BulletListFromString(`Answer the prompts below to configure classfocus for the first time.
Press ENTER to accept the defaults.
Edit the config file with 'classfocus edit-config' to change any settings.`, " ").
		Render()

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("How should classfocus notice that you drifted away?").
				Options(
					huh.NewOption("Terminal focus (leave this window)", SourceTerminal).Selected(true),
					huh.NewOption("Desktop idle time (no keyboard or mouse input)", SourceIdle),
					huh.NewOption("Lines on standard input (scripts)", SourceStdin),
				).
				Value(&opts.Source),
			huh.NewConfirm().
				Title("Send a reminder when you get distracted in class?").
				Value(&opts.Notifications),
		),
	)

	err := form.Run()
	if err != nil {
		return opts, fmt.Errorf("form interaction failed: %w", err)
	}

	return opts, nil
}
