package ui

import (
	"github.com/pterm/pterm"

	"github.com/ayoisaiah/classfocus/internal/tracker"
)

var DarkTheme bool

func Green(a any) string {
	if DarkTheme {
		return pterm.LightGreen(a)
	}

	return pterm.Green(a)
}

func Yellow(a any) string {
	if DarkTheme {
		return pterm.LightYellow(a)
	}

	return pterm.Yellow(a)
}

func Red(a any) string {
	if DarkTheme {
		return pterm.LightRed(a)
	}

	return pterm.Red(a)
}

func Highlight(a any) string {
	if DarkTheme {
		return pterm.LightWhite(a)
	}

	return pterm.Black(a)
}

// Mode colours a tracking mode label.
func Mode(m tracker.Mode) string {
	switch m {
	case tracker.Focused:
		return Green(m)
	case tracker.Distracted:
		return Red(m)
	case tracker.Ended:
		return Yellow(m)
	}

	return Highlight(m)
}
