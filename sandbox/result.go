package sandbox

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/movement"
)

// Outcome describes what happened to the mover during a simulated tick.
type Outcome uint8

const (
	OutcomeMoved Outcome = iota
	OutcomeSkipped
	OutcomeBlocked
	OutcomeLanded
	OutcomeLeftGround
)

var outcomeNames = [...]string{
	OutcomeMoved:      "moved",
	OutcomeSkipped:    "skipped",
	OutcomeBlocked:    "blocked",
	OutcomeLanded:     "landed",
	OutcomeLeftGround: "left_ground",
}

func (o Outcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "unknown"
}

func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// Result captures the state of the mover after a single simulated tick.
type Result struct {
	Position mgl32.Vec3
	Velocity mgl32.Vec3
	Mode     movement.Mode
	Crouched bool

	// Winner is the velocity model whose result was kept.
	Winner movement.Winner
	// Blocked is true if the capsule hit an obstacle.
	Blocked bool

	Outcome Outcome
}
