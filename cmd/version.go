package cmd

import (
	"fmt"

	"github.com/conneroisu/rtc/internal/config"
	"github.com/conneroisu/rtc/internal/targets"
	"github.com/conneroisu/rtc/internal/version"
)

func (r *Runner) printVersion() int {
	fmt.Fprintln(r.Stdout, version.Display())
	return 0
}

func (r *Runner) printHelp(text string) int {
	fmt.Fprint(r.Stdout, text)
	return 0
}

func (r *Runner) printTargets(format config.Format) int {
	if err := targets.Print(r.Stdout, format); err != nil {
		fmt.Fprintln(r.Stderr, err.Error())
		return 1
	}
	return 0
}
