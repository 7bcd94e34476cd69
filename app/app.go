package app

import (
	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/classfocus/internal/config"
)

// disableStyling disables all styling provided by pterm.
func disableStyling() {
	pterm.DisableColor()
	pterm.DisableStyling()
	pterm.Debug.Prefix.Text = ""
	pterm.Info.Prefix.Text = ""
	pterm.Success.Prefix.Text = ""
	pterm.Warning.Prefix.Text = ""
	pterm.Error.Prefix.Text = ""
	pterm.Fatal.Prefix.Text = ""
}

// Get retrieves the classfocus app instance.
func Get() *cli.App {
	return &cli.App{
		Name: "classfocus",
		Authors: []*cli.Author{
			{
				Name:  "Ayooluwa Isaiah",
				Email: "ayo@freshman.tech",
			},
		},
		Usage: `
		classfocus keeps you honest during class. It follows your timetable,
		counts how long you stay focused or drift away while a class is in
		session, and reminds you to get back on task.`,
		UsageText:            "[COMMAND] [OPTIONS]",
		Version:              config.Version,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			{
				Name:   "track",
				Usage:  "Track focus during scheduled classes (default command)",
				Flags:  trackFlags,
				Action: trackAction,
			},
			{
				Name:  "schedule",
				Usage: "Manage the class timetable",
				Subcommands: []*cli.Command{
					{
						Name:    "list",
						Aliases: []string{"ls"},
						Usage:   "Print the timetable",
						Flags:   []cli.Flag{jsonFlag},
						Action:  scheduleListAction,
					},
					{
						Name:   "add",
						Usage:  "Add a class session (missing values are prompted for)",
						Flags:  sessionFlags,
						Action: scheduleAddAction,
					},
					{
						Name:      "edit",
						Usage:     "Change a class session by id or list position",
						ArgsUsage: "<id|#>",
						Flags:     sessionFlags,
						Action:    scheduleEditAction,
					},
					{
						Name:      "remove",
						Aliases:   []string{"rm"},
						Usage:     "Remove a class session by id or list position",
						ArgsUsage: "<id|#>",
						Flags:     []cli.Flag{yesFlag},
						Action:    scheduleRemoveAction,
					},
					{
						Name:   "active",
						Usage:  "Show the class in session now, or at --at",
						Flags:  []cli.Flag{atFlag},
						Action: scheduleActiveAction,
					},
				},
			},
			{
				Name:   "history",
				Usage:  "List finished class sessions. Defaults to the last 7 days",
				Flags:  []cli.Flag{periodFlag, jsonFlag},
				Action: historyAction,
			},
			{
				Name:   "edit-config",
				Usage:  "Edit the configuration file",
				Action: editConfigAction,
			},
		},
		Flags:  append([]cli.Flag{noColorFlag}, trackFlags...),
		Action: trackAction,
		Before: beforeAction,
		After:  afterAction,
	}
}
