// Package progress reports search progress to a terminal without
// coupling the solvers to any particular terminal library. It wraps
// github.com/briandowns/spinner with a verbose-gated start and a
// stop before any interleaved log line so the spinner never "tears".
package progress

import (
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"

	"github.com/hamao0820/daily-akari-solver/pkg/common"
)

// Sink receives progress reports from a solver. CFSwithPB reports one
// Report per enumerated Phase A placement before Phase B consumes it.
type Sink interface {
	Report(done, total int)
	Done(found bool)
}

// Terminal is a Sink backed by a spinner, intended for CLI use.
type Terminal struct {
	s *spinner.Spinner
}

// NewTerminal creates a spinner-backed progress sink with a default
// configuration.
func NewTerminal(msg string) *Terminal {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + msg
	_ = s.Color("cyan", "bold")
	t := &Terminal{s: s}
	if !common.VerboseEnabled {
		s.Start()
	}
	return t
}

// Report updates the spinner's message with the current enumeration
// progress.
func (t *Terminal) Report(done, total int) {
	t.s.Suffix = fmt.Sprintf(" evaluating placement %d/%d", done, total)
}

// Done stops the spinner and prints a final colored status line.
func (t *Terminal) Done(found bool) {
	t.s.Stop()
	if found {
		common.Info("%s", color.GreenString("solution found"))
	} else {
		common.Info("%s", color.RedString("no solution found"))
	}
}

// Noop discards every report; used by tests that still need a Sink to
// pass to CFSwithPB, and by CFSwithPB itself when no Sink is set.
type Noop struct{}

func (Noop) Report(done, total int) {}
func (Noop) Done(found bool)        {}
