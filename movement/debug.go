package movement

import (
	"fmt"
	"strings"

	"github.com/oomph-ac/hopsim/game"
	"github.com/oomph-ac/hopsim/oerror"
	"github.com/sirupsen/logrus"
)

// DebugMode selects a category of trace output of a Mover.
type DebugMode uint8

const (
	DebugModeBraking DebugMode = iota
	DebugModeArbitration
	DebugModeTransition
	DebugModeCollision
	DebugModeCrouch
	DebugModeTick
)

var debugModeNames = [...]string{
	DebugModeBraking:     "braking",
	DebugModeArbitration: "arbitration",
	DebugModeTransition:  "transition",
	DebugModeCollision:   "collision",
	DebugModeCrouch:      "crouch",
	DebugModeTick:        "tick",
}

func (m DebugMode) String() string {
	if int(m) < len(debugModeNames) {
		return debugModeNames[m]
	}
	return "unknown"
}

// ParseDebugMode returns the DebugMode with the given name.
func ParseDebugMode(name string) (DebugMode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range debugModeNames {
		if n == name {
			return DebugMode(m), nil
		}
	}
	return 0, oerror.New(game.ErrorUnknownDebugMode, name)
}

// Debugger writes trace output of a Mover for the enabled modes. A nil Debugger discards
// everything.
type Debugger struct {
	log   *logrus.Logger
	modes uint32
}

// NewDebugger returns a Debugger writing to log with the given modes enabled.
func NewDebugger(log *logrus.Logger, modes ...DebugMode) *Debugger {
	d := &Debugger{log: log}
	for _, m := range modes {
		d.Enable(m)
	}
	return d
}

// Enable turns on output for mode.
func (d *Debugger) Enable(mode DebugMode) {
	d.modes |= 1 << mode
}

// Disable turns off output for mode.
func (d *Debugger) Disable(mode DebugMode) {
	d.modes &^= 1 << mode
}

// Enabled returns true if output for mode is turned on.
func (d *Debugger) Enabled(mode DebugMode) bool {
	return d != nil && d.log != nil && d.modes&(1<<mode) != 0
}

// Notify logs the formatted message if cond is true and mode is enabled.
func (d *Debugger) Notify(mode DebugMode, cond bool, format string, args ...any) {
	if !cond || !d.Enabled(mode) {
		return
	}
	d.log.WithField("mode", mode.String()).Debug(fmt.Sprintf(format, args...))
}
