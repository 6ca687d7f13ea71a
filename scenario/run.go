package scenario

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/movement"
	"github.com/oomph-ac/hopsim/omath"
	"github.com/oomph-ac/hopsim/sandbox"
	"github.com/sirupsen/logrus"
	"github.com/zeebo/xxh3"
)

// defaultRadius is the capsule radius of scenarios that do not set one.
const defaultRadius = float32(34)

// Frame is the state of the mover after a single tick of a scenario.
type Frame struct {
	Tick int `json:"tick"`
	Step int `json:"step"`

	Position mgl32.Vec3      `json:"position"`
	Velocity mgl32.Vec3      `json:"velocity"`
	Mode     movement.Mode   `json:"mode"`
	Crouched bool            `json:"crouched"`
	Winner   movement.Winner `json:"winner"`
	Outcome  sandbox.Outcome `json:"outcome"`
}

// Speed2D returns the planar speed of the mover.
func (f Frame) Speed2D() float32 {
	return omath.Size2D(f.Velocity)
}

// Trace is the result of running a scenario.
type Trace struct {
	Scenario string  `json:"scenario"`
	Frames   []Frame `json:"frames"`
	// Fingerprint is a hash of every frame. Runs of the same scenario with the same config
	// produce the same fingerprint.
	Fingerprint uint64 `json:"fingerprint"`
}

// Last returns the final frame of the trace.
func (t Trace) Last() Frame {
	if len(t.Frames) == 0 {
		return Frame{}
	}
	return t.Frames[len(t.Frames)-1]
}

// StepFrames returns the frames of the step at index i.
func (t Trace) StepFrames(i int) []Frame {
	var frames []Frame
	for _, f := range t.Frames {
		if f.Step == i {
			frames = append(frames, f)
		}
	}
	return frames
}

// Run runs the scenario with the overrides of s applied to cfg. The debugger passed may be nil.
func Run(s *Scenario, cfg movement.Config, log *logrus.Logger, dbg *movement.Debugger) (Trace, error) {
	cfg, err := s.MovementConfig(cfg)
	if err != nil {
		return Trace{}, err
	}
	mode, err := movement.ParseMode(s.Initial.Mode)
	if err != nil {
		return Trace{}, err
	}
	entry := log.WithField("scenario", s.Name)

	radius := s.Initial.Radius
	if radius == 0 {
		radius = defaultRadius
	}
	capsule := sandbox.NewCapsule(s.Initial.Feet.Add(mgl32.Vec3{0, 0, cfg.DefaultHalfHeight}), radius, cfg.DefaultHalfHeight)
	w := sandbox.NewWorld(cfg, capsule, s.World.Ramps, s.World.obstacles())
	if s.World.Friction != nil {
		w.Material = &sandbox.Material{Friction: *s.World.Friction}
	}

	m := sandbox.NewMover(cfg, w, dbg)
	m.SetMovementMode(mode, 0)
	m.SetVelocity(s.Initial.Velocity)
	if s.Initial.Crouched {
		m.Crouch()
	}

	sim := &sandbox.Simulator{World: w, Options: sandbox.Options{Debugf: entry.Debugf}}
	trace := Trace{Scenario: s.Name, Frames: make([]Frame, 0, s.TotalTicks())}
	dt := s.TickTime()

	var tick int
	for i, step := range s.Steps {
		if step.Mode != "" {
			next, err := movement.ParseMode(step.Mode)
			if err != nil {
				return Trace{}, err
			}
			m.SetMovementMode(next, step.CustomMode)
		}
		entry.WithField("step", i).Debugf("running %d ticks with %+v", step.Ticks, step)

		in := step.Input()
		for n := 0; n < step.Ticks; n++ {
			res := sim.Simulate(m, in, dt)
			trace.Frames = append(trace.Frames, Frame{
				Tick:     tick,
				Step:     i,
				Position: res.Position,
				Velocity: res.Velocity,
				Mode:     res.Mode,
				Crouched: res.Crouched,
				Winner:   res.Winner,
				Outcome:  res.Outcome,
			})
			tick++
		}
	}
	trace.Fingerprint = fingerprint(trace.Frames)

	last := trace.Last()
	entry.WithFields(logrus.Fields{
		"ticks":       tick,
		"mode":        last.Mode,
		"position":    last.Position,
		"fingerprint": trace.Fingerprint,
	}).Info("scenario finished")
	return trace, nil
}

// fingerprint hashes the bits of every frame.
func fingerprint(frames []Frame) uint64 {
	buf := make([]byte, 0, len(frames)*28)
	for _, f := range frames {
		for _, v := range [...]mgl32.Vec3{f.Position, f.Velocity} {
			for _, c := range v {
				buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(c))
			}
		}
		var crouched byte
		if f.Crouched {
			crouched = 1
		}
		buf = append(buf, byte(f.Mode), crouched, byte(f.Winner), byte(f.Outcome))
	}
	return xxh3.Hash(buf)
}
