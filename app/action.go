package app

import (
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"runtime"

	"github.com/pterm/pterm"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"

	"github.com/ayoisaiah/classfocus/internal/config"
	"github.com/ayoisaiah/classfocus/internal/osutil"
	"github.com/ayoisaiah/classfocus/internal/ui"
	"github.com/ayoisaiah/classfocus/store"
)

const (
	envNoColor           = "NO_COLOR"
	envClassfocusNoColor = "CLASSFOCUS_NO_COLOR"
)

// firstNonEmptyString returns its first non-empty argument, or "" if all
// arguments are empty.
func firstNonEmptyString(ss ...string) string {
	for _, s := range ss {
		if s != "" {
			return s
		}
	}

	return ""
}

func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) &&
		term.IsTerminal(int(os.Stdout.Fd()))
}

// loadConfig resolves the file locations and reads the config file and flags.
// The first-run prompt only appears when asked for and a terminal is attached.
func loadConfig(ctx *cli.Context, prompt bool) (*config.Config, error) {
	err := config.InitializePaths()
	if err != nil {
		return nil, err
	}

	var opts []config.Option

	if prompt && interactive() {
		opts = append(opts, config.WithPromptConfig(config.ConfigFilePath()))
	}

	opts = append(
		opts,
		config.WithViperConfig(config.ConfigFilePath()),
		config.WithCLIConfig(ctx),
	)

	cfg, err := config.New(opts...)
	if err != nil {
		return nil, err
	}

	ui.DarkTheme = cfg.Display.DarkTheme

	if cfg.CLI.NoColor {
		disableStyling()
	}

	return cfg, nil
}

// openStore loads the config and connects to the database.
func openStore(ctx *cli.Context) (*config.Config, *store.Client, error) {
	cfg, err := loadConfig(ctx, false)
	if err != nil {
		return nil, nil, err
	}

	client, err := store.NewClient(config.DBFilePath())
	if err != nil {
		return nil, nil, err
	}

	return cfg, client, nil
}

// editConfigAction handles the edit-config command which opens the config
// file in the user's default text editor.
func editConfigAction(ctx *cli.Context) error {
	defaultEditor := "nano"

	if runtime.GOOS == osutil.Windows {
		defaultEditor = "C:\\Windows\\system32\\notepad.exe"
	}

	editor := firstNonEmptyString(
		os.Getenv("VISUAL"),
		os.Getenv("EDITOR"),
		defaultEditor,
	)

	// writes the defaults if the file does not exist yet
	_, err := loadConfig(ctx, false)
	if err != nil {
		return err
	}

	cmd := exec.Command(editor, config.ConfigFilePath())

	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout

	return cmd.Run()
}

func beforeAction(ctx *cli.Context) error {
	// Override the default help template
	cli.AppHelpTemplate = helpText()

	// Override the default version printer
	oldVersionPrinter := cli.VersionPrinter
	cli.VersionPrinter = func(c *cli.Context) {
		oldVersionPrinter(c)
		fmt.Printf(
			"https://github.com/ayoisaiah/classfocus/releases/%s\n",
			c.App.Version,
		)
	}

	pterm.Error.MessageStyle = pterm.NewStyle(pterm.FgRed)
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "ERROR",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}

	// Disable colour output if NO_COLOR is set
	if _, exists := os.LookupEnv(envNoColor); exists {
		disableStyling()
	}

	// Disable colour output if CLASSFOCUS_NO_COLOR is set
	if _, exists := os.LookupEnv(envClassfocusNoColor); exists {
		disableStyling()
	}

	if ctx.Bool("no-color") {
		disableStyling()
	}

	return nil
}

func afterAction(ctx *cli.Context) error {
	slog.DebugContext(ctx.Context, "exiting classfocus")

	return nil
}
