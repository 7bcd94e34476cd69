// Package config loads classfocus settings from the config file and command
// line flags
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
)

type (
	// Config holds all configuration settings
	Config struct {
		Notifications NotificationConfig `mapstructure:"notifications"`
		Tracking      TrackingConfig     `mapstructure:"tracking"`
		Settings      SettingsConfig     `mapstructure:"settings"`
		Display       DisplayConfig      `mapstructure:"display"`
		CLI           CLIConfig          `mapstructure:"-"`
	}

	// NotificationConfig holds reminder settings
	NotificationConfig struct {
		Title   string `mapstructure:"title"`
		Body    string `mapstructure:"body"`
		Sound   string `mapstructure:"sound"`
		Enabled bool   `mapstructure:"enabled"`
	}

	// TrackingConfig holds focus tracking settings
	TrackingConfig struct {
		Source           string        `mapstructure:"source"`
		RescanInterval   time.Duration `mapstructure:"rescan_interval"`
		IdleThreshold    time.Duration `mapstructure:"idle_threshold"`
		IdlePollInterval time.Duration `mapstructure:"idle_poll_interval"`
		ScheduleCacheTTL time.Duration `mapstructure:"schedule_cache_ttl"`
		Enabled          bool          `mapstructure:"enabled"`
	}

	// SettingsConfig holds miscellaneous settings
	SettingsConfig struct {
		Cmd string `mapstructure:"cmd"`
	}

	// DisplayConfig holds display-related settings
	DisplayConfig struct {
		DarkTheme      bool `mapstructure:"dark_theme"`
		TwentyFourHour bool `mapstructure:"24hr_clock"`
	}

	// CLIConfig holds flags that only apply to the current invocation
	CLIConfig struct {
		Debug   bool
		NoColor bool
	}

	// Option is a function that modifies Config
	Option func(*Config) error
)

const Version = "v0.3.0"

// Tracking sources.
const (
	SourceTerminal = "terminal"
	SourceIdle     = "idle"
	SourceStdin    = "stdin"
)

var Sources = []string{SourceTerminal, SourceIdle, SourceStdin}

var (
	configDir      = "classfocus"
	configFileName = "config.yml"
	dbFileName     = "classfocus.db"
	logFileName    = "classfocus.log"
	dbFilePath     string
	configFilePath string
	logFilePath    string
)

var (
	Stdin  io.Reader = os.Stdin
	Stdout io.Writer = os.Stdout
	Stderr io.Writer = os.Stderr
)

func Dir() string {
	return configDir
}

func DBFilePath() string {
	return dbFilePath
}

func LogFilePath() string {
	return logFilePath
}

func ConfigFilePath() string {
	return configFilePath
}

// InitializePaths resolves the config, database and log locations. Setting
// CLASSFOCUS_ENV selects a separate set of files, e.g. for development.
func InitializePaths() error {
	env := strings.TrimSpace(os.Getenv("CLASSFOCUS_ENV"))
	if env != "" {
		configFileName = fmt.Sprintf("config_%s.yml", env)
		dbFileName = fmt.Sprintf("classfocus_%s.db", env)
		logFileName = fmt.Sprintf("classfocus_%s.log", env)
	}

	var err error

	relPath := filepath.Join(configDir, configFileName)

	configFilePath, err = xdg.ConfigFile(relPath)
	if err != nil {
		return err
	}

	dataDir, err := xdg.DataFile(configDir)
	if err != nil {
		return err
	}

	dbFilePath = filepath.Join(dataDir, dbFileName)

	logFilePath = filepath.Join(dataDir, "log", logFileName)

	return nil
}

// New creates a new Config and applies options in order
func New(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, errConfigOption.Wrap(err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, errConfigValidation.Wrap(err)
	}

	return cfg, nil
}
