package sandbox

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/game"
	"github.com/oomph-ac/hopsim/movement"
)

// Options define how the simulator moves the capsule.
type Options struct {
	// Debugf receives trace logs of the collision pass.
	Debugf func(format string, args ...any)
}

// Simulator moves the capsule of a Mover through a World. The Mover only integrates velocity; the
// simulator turns the velocity into movement, resolves collisions and decides when the mover
// lands or leaves the ground.
type Simulator struct {
	World   *World
	Options Options
}

// NewMover creates a mover that moves the capsule of the world passed.
func NewMover(cfg movement.Config, w *World, dbg *movement.Debugger) *movement.Mover {
	return movement.New(cfg, movement.Collaborators{World: w, Body: w.Capsule()}, dbg)
}

func (s *Simulator) debugf(format string, args ...any) {
	if s.Options.Debugf != nil {
		s.Options.Debugf(format, args...)
	}
}

// Simulate runs a single tick of dt seconds for m with the input passed.
func (s *Simulator) Simulate(m *movement.Mover, in movement.Input, dt float32) Result {
	capsule := s.World.Capsule()
	if dt < game.MinTickTime {
		return s.result(m, OutcomeSkipped, false)
	}
	s.World.bind(m)
	defer s.World.bind(nil)

	wasOnGround := m.IsMovingOnGround()
	m.Update(dt, in)
	delta := m.Velocity().Mul(dt)
	s.debugf("mode=%s vel=%v delta=%v", m.Mode(), m.Velocity(), delta)

	var blocked bool
	switch {
	case m.IsMovingOnGround():
		blocked = s.walk(m, delta)
	case m.IsFalling():
		blocked = s.fall(m, delta)
	case m.Mode() != movement.ModeNone:
		blocked = s.move(m, delta)
	}
	s.debugf("pos=%v mode=%s blocked=%t", capsule.Position(), m.Mode(), blocked)

	outcome := OutcomeMoved
	switch {
	case !wasOnGround && m.IsMovingOnGround():
		outcome = OutcomeLanded
	case wasOnGround && !m.IsMovingOnGround():
		outcome = OutcomeLeftGround
	case blocked:
		outcome = OutcomeBlocked
	}
	return s.result(m, outcome, blocked)
}

func (s *Simulator) result(m *movement.Mover, outcome Outcome, blocked bool) Result {
	return Result{
		Position: s.World.Capsule().Position(),
		Velocity: m.Velocity(),
		Mode:     m.Mode(),
		Crouched: m.Crouched(),
		Winner:   m.LastArbitration().Winner,
		Blocked:  blocked,
		Outcome:  outcome,
	}
}

// walk moves a walking mover along the ground. Ramp edges higher than a step are walls, steep slopes
// ahead are slid along like walls and make the mover catch air, and ground dropping away further
// than a step makes it fall.
func (s *Simulator) walk(m *movement.Mover, delta mgl32.Vec3) bool {
	w, capsule := s.World, s.World.Capsule()
	oldFloor := m.CurrentFloor()
	delta[2] = 0

	var blocked bool
	if t, n, ok := w.ledge(capsule.Position(), delta); ok {
		s.debugf("ledge %v after %.3f of %v", n, t, delta)
		s.move(m, delta.Mul(t))
		m.SlideAlongSurface(delta, 1-t, n, movement.Hit{Normal: n, ImpactNormal: n, Time: t, Blocking: true})
		s.stopInto(m, n)
		return s.settle(m, oldFloor, true)
	}

	ahead := w.FindFloor(capsule.Position().Add(delta))
	if ahead.Blocking && !ahead.Walkable && ahead.Distance < 0 {
		hit := movement.Hit{Normal: ahead.Normal, ImpactNormal: ahead.ImpactNormal, Blocking: true}
		m.SlideAlongSurface(delta, 1, ahead.Normal, hit)
		blocked = true
	} else {
		blocked = s.move(m, delta)
	}
	return s.settle(m, oldFloor, blocked)
}

// settle checks the floor under a walking mover after it moved, snapping it down onto the floor or
// making it fall.
func (s *Simulator) settle(m *movement.Mover, oldFloor movement.FloorContact, blocked bool) bool {
	w, capsule := s.World, s.World.Capsule()
	floor := w.FindFloor(capsule.Position())
	m.ConsumeForceNextFloorCheck()
	switch {
	case m.ShouldCatchAir(oldFloor, floor):
		s.debugf("catching air at %v", capsule.Position())
		m.SetMovementMode(movement.ModeFalling, 0)
	case !floor.Walkable:
		s.debugf("lost floor at %v (distance %.2f)", capsule.Position(), floor.Distance)
		m.SetMovementMode(movement.ModeFalling, 0)
	default:
		capsule.Move(mgl32.Vec3{0, 0, -floor.Distance})
		floor.Distance = 0
		m.SetCurrentFloor(floor)
	}
	return blocked
}

// fall moves a falling mover. Walkable ground reached while moving down lands the mover, any other
// ground pushes it out and takes away the velocity into the surface. Ground more than a step above
// the feet pushes the mover out sideways instead of up.
func (s *Simulator) fall(m *movement.Mover, delta mgl32.Vec3) bool {
	w, capsule := s.World, s.World.Capsule()
	var blocked bool
	if t, n, ok := w.ledge(capsule.Position().Add(mgl32.Vec3{0, 0, delta.Z()}), delta); ok {
		s.debugf("ledge %v after %.3f of %v", n, t, delta)
		delta[0] *= t
		s.stopInto(m, n)
		blocked = true
	}
	blocked = s.move(m, delta) || blocked

	floor := w.FindFloor(capsule.Position())
	if floor.Distance > 0 {
		return blocked
	}
	if -floor.Distance > w.stepHeight {
		n, ok := w.pushOut()
		if !ok {
			return blocked
		}
		s.debugf("pushed out of ground along %v to %v", n, capsule.Position())
		s.stopInto(m, n)
		if floor = w.FindFloor(capsule.Position()); floor.Distance > 0 {
			return true
		}
		blocked = true
	}
	capsule.Move(mgl32.Vec3{0, 0, -floor.Distance})

	vel := m.Velocity()
	if floor.Walkable && vel.Z() <= 0 {
		s.debugf("landing at %v", capsule.Position())
		m.SetMovementMode(movement.ModeWalking, 0)
		return blocked
	}
	if d := vel.Dot(floor.ImpactNormal); d < 0 {
		m.SetVelocity(vel.Sub(floor.ImpactNormal.Mul(d)))
	}
	return blocked
}

// move moves the capsule by delta, sliding along the first obstacle hit. The velocity into the
// obstacle is taken away.
func (s *Simulator) move(m *movement.Mover, delta mgl32.Vec3) bool {
	t, n, hit := s.World.move(delta)
	if !hit {
		return false
	}
	s.debugf("hit %v after %.3f of %v", n, t, delta)
	m.SlideAlongSurface(delta, 1-t, n, movement.Hit{Normal: n, ImpactNormal: n, Time: t, Blocking: true})

	s.stopInto(m, n)
	return true
}

// stopInto takes away the velocity of m into a surface with the normal passed.
func (s *Simulator) stopInto(m *movement.Mover, n mgl32.Vec3) {
	vel := m.Velocity()
	if d := vel.Dot(n); d < 0 {
		m.SetVelocity(vel.Sub(n.Mul(d)))
	}
}
