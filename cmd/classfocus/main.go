package main

import (
	"os"

	"github.com/ayoisaiah/classfocus/app"
	"github.com/ayoisaiah/classfocus/report"
)

func run(args []string) error {
	return app.Get().Run(args)
}

func main() {
	err := run(os.Args)
	if err != nil {
		report.Quit(err)
	}
}
