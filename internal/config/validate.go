package config

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"
)

var (
	minRescanInterval = 1 * time.Second
	maxRescanInterval = 1 * time.Hour

	validSoundExts = []string{".mp3", ".ogg", ".flac", ".wav"}
)

// Validate performs validation checks on the Config struct and its fields.
func (c *Config) Validate() error {
	if err := c.validateNotifications(); err != nil {
		return err
	}

	return c.validateTracking()
}

func (c *Config) validateNotifications() error {
	if strings.TrimSpace(c.Notifications.Title) == "" {
		return errEmptyMsg.Fmt("notification title")
	}

	if c.Notifications.Sound == "" {
		return nil
	}

	ext := strings.ToLower(filepath.Ext(c.Notifications.Sound))
	if !slices.Contains(validSoundExts, ext) {
		return errInvalidSoundFormat.Fmt(c.Notifications.Sound)
	}

	_, err := os.Stat(c.Notifications.Sound)
	if errors.Is(err, os.ErrNotExist) {
		return errUnknownSound.Fmt(c.Notifications.Sound)
	}

	return nil
}

func (c *Config) validateTracking() error {
	t := c.Tracking

	if !slices.Contains(Sources, t.Source) {
		return errUnknownSource.Fmt(t.Source, strings.Join(Sources, ", "))
	}

	if t.RescanInterval < minRescanInterval ||
		t.RescanInterval > maxRescanInterval {
		return errInvalidDuration.Fmt(
			"rescan",
			minRescanInterval,
			maxRescanInterval,
		)
	}

	if t.IdleThreshold <= 0 {
		return errNonPositiveDuration.Fmt("idle threshold")
	}

	if t.IdlePollInterval <= 0 {
		return errNonPositiveDuration.Fmt("idle poll")
	}

	if t.ScheduleCacheTTL < 0 {
		return errNegativeDuration.Fmt("schedule cache")
	}

	return nil
}
