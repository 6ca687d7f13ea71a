package movement

import (
	"strings"

	"github.com/oomph-ac/hopsim/game"
	"github.com/oomph-ac/hopsim/oerror"
)

// Mode is the movement mode of a Mover. Changes between modes are events handled by
// SetMovementMode, never polled.
type Mode uint8

const (
	ModeNone Mode = iota
	ModeWalking
	ModeNavWalking
	ModeFalling
	ModeSwimming
	ModeFlying
	ModeCustom
)

var modeNames = [...]string{
	ModeNone:       "none",
	ModeWalking:    "walking",
	ModeNavWalking: "nav_walking",
	ModeFalling:    "falling",
	ModeSwimming:   "swimming",
	ModeFlying:     "flying",
	ModeCustom:     "custom",
}

func (m Mode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return "unknown"
}

func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

func (m *Mode) UnmarshalText(text []byte) error {
	mode, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = mode
	return nil
}

// ParseMode returns the Mode with the given name.
func ParseMode(name string) (Mode, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range modeNames {
		if n == name {
			return Mode(m), nil
		}
	}
	return ModeNone, oerror.New(game.ErrorUnknownMode, name)
}
