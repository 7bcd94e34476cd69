package config

import (
	"errors"
	"os"

	"github.com/spf13/viper"
)

const (
	keyNotificationsEnabled = "notifications.enabled"
	keyNotificationsTitle   = "notifications.title"
	keyNotificationsBody    = "notifications.body"
	keyNotificationsSound   = "notifications.sound"
	keyTrackingEnabled      = "tracking.enabled"
	keyTrackingSource       = "tracking.source"
	keyRescanInterval       = "tracking.rescan_interval"
	keyIdleThreshold        = "tracking.idle_threshold"
	keyIdlePollInterval     = "tracking.idle_poll_interval"
	keyScheduleCacheTTL     = "tracking.schedule_cache_ttl"
	keySessionCmd           = "settings.cmd"
	keyDarkTheme            = "display.dark_theme"
	keyTwentyFourHour       = "display.24hr_clock"
)

const (
	DefaultReminderTitle = "📚 Stay Focused!"
	DefaultReminderBody  = "You're in class. Avoid distractions and focus on your studies!"
)

// WithViperConfig returns an Option that loads configuration from the YAML
// file at configPath. A missing file is created with the defaults.
func WithViperConfig(configPath string) Option {
	return func(c *Config) error {
		v := viper.New()

		v.SetConfigFile(configPath)
		v.SetConfigType("yaml")

		setDefaults(v)

		err := v.ReadInConfig()
		if err == nil {
			return v.Unmarshal(c)
		}

		if !errors.Is(err, os.ErrNotExist) {
			return errReadConfig.Wrap(err)
		}

		if err := v.WriteConfig(); err != nil {
			return errWriteConfig.Wrap(err)
		}

		return v.Unmarshal(c)
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(keyNotificationsEnabled, true)
	v.SetDefault(keyNotificationsTitle, DefaultReminderTitle)
	v.SetDefault(keyNotificationsBody, DefaultReminderBody)
	v.SetDefault(keyNotificationsSound, "")
	v.SetDefault(keyTrackingEnabled, true)
	v.SetDefault(keyTrackingSource, SourceTerminal)
	v.SetDefault(keyRescanInterval, "30s")
	v.SetDefault(keyIdleThreshold, "2m")
	v.SetDefault(keyIdlePollInterval, "5s")
	v.SetDefault(keyScheduleCacheTTL, "0s")
	v.SetDefault(keySessionCmd, "")
	v.SetDefault(keyDarkTheme, true)
	v.SetDefault(keyTwentyFourHour, true)
}

// writePromptOptions writes a fresh config file holding the defaults and the
// first-run answers.
func writePromptOptions(configPath string, opts PromptOptions) error {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	setDefaults(v)

	v.Set(keyTrackingSource, opts.Source)
	v.Set(keyNotificationsEnabled, opts.Notifications)

	if err := v.WriteConfig(); err != nil {
		return errWriteConfig.Wrap(err)
	}

	return nil
}
