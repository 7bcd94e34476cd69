package app

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ayoisaiah/classfocus/internal/config"
	"github.com/ayoisaiah/classfocus/internal/timeutil"
)

var (
	noColorFlag = &cli.BoolFlag{
		Name:  "no-color",
		Usage: "Disable coloured output",
	}

	sourceFlag = &cli.StringFlag{
		Name:  "source",
		Usage: fmt.Sprintf("How distraction is detected: %s", strings.Join(config.Sources, ", ")),
	}

	disableNotificationFlag = &cli.BoolFlag{
		Name:    "disable-notification",
		Aliases: []string{"d"},
		Usage:   "Disable the reminder that appears when you get distracted in class",
	}

	soundFlag = &cli.StringFlag{
		Name:  "sound",
		Usage: "Sound file (mp3, ogg, flac or wav) played with each reminder. Disable sound by setting to 'off'",
	}

	rescanFlag = &cli.StringFlag{
		Name:  "rescan",
		Usage: "How often to check the timetable for a class while none is in session (e.g. 30s)",
	}

	sessionCmdFlag = &cli.StringFlag{
		Name:  "cmd",
		Usage: "Execute an arbitrary command after each class session",
	}

	debugFlag = &cli.BoolFlag{
		Name:    "debug",
		Usage:   "Write debug logs",
		EnvVars: []string{"CLASSFOCUS_DEBUG"},
	}

	trackFlags = []cli.Flag{
		sourceFlag,
		disableNotificationFlag,
		soundFlag,
		rescanFlag,
		sessionCmdFlag,
		debugFlag,
	}

	jsonFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "Print JSON instead of a table",
	}

	subjectFlag = &cli.StringFlag{
		Name:    "subject",
		Aliases: []string{"s"},
		Usage:   "Name of the class",
	}

	startFlag = &cli.StringFlag{
		Name:  "start",
		Usage: "Start time as HH:MM (24-hour)",
	}

	endFlag = &cli.StringFlag{
		Name:  "end",
		Usage: "End time as HH:MM (24-hour), later than the start on the same day",
	}

	sessionFlags = []cli.Flag{subjectFlag, startFlag, endFlag}

	yesFlag = &cli.BoolFlag{
		Name:    "yes",
		Aliases: []string{"y"},
		Usage:   "Do not ask for confirmation",
	}

	atFlag = &cli.StringFlag{
		Name:  "at",
		Usage: "Time to check instead of now (e.g. '8:05am', 'tomorrow 10:30')",
	}

	periodFlag = &cli.StringFlag{
		Name:    "period",
		Aliases: []string{"p"},
		Usage:   fmt.Sprintf("Reporting period: %s", periodNames()),
		Value:   string(timeutil.Period7Days),
	}
)

func periodNames() string {
	names := make([]string, len(timeutil.PeriodCollection))

	for i, p := range timeutil.PeriodCollection {
		names[i] = string(p)
	}

	return strings.Join(names, ", ")
}
