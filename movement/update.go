package movement

import (
	"github.com/chewxy/math32"
	"github.com/oomph-ac/hopsim/game"
)

// Update runs a full tick of dt seconds with the input passed. The velocity is updated according
// to the movement mode, splitting the tick into sub-steps no longer than
// Config.MaxSimulationTimeStep. Moving the body and resolving collisions is left to the caller.
// Ticks shorter than the minimum tick time are skipped entirely.
func (m *Mover) Update(dt float32, in Input) {
	if !m.valid() || dt < game.MinTickTime {
		return
	}
	m.BeginTick(in)
	defer m.EndTick()

	m.dbg.Notify(DebugModeTick, true, "BEGIN tick dt=%.4f mode=%s vel=%v", dt, m.mode, m.velocity)
	defer func() {
		m.dbg.Notify(DebugModeTick, true, "END tick mode=%s vel=%v", m.mode, m.velocity)
	}()

	if in.Crouch && !m.crouched {
		m.Crouch()
	} else if !in.Crouch && m.crouched {
		m.UnCrouch()
	}

	if m.pressedJump && (!m.jumpHeld || m.cfg.AutoBunnyhop) {
		if m.DoJump() {
			m.dbg.Notify(DebugModeTransition, true, "jumped vz=%.2f", m.velocity.Z())
		}
	}
	m.jumpHeld = m.pressedJump

	m.handlePendingLaunch()
	m.applyAccumulatedForces(dt)

	remaining, iterations := dt, 0
	for remaining >= game.MinTickTime && iterations < m.cfg.MaxSimulationIterations {
		iterations++
		step := remaining
		if remaining > m.cfg.MaxSimulationTimeStep && iterations < m.cfg.MaxSimulationIterations {
			step = math32.Min(m.cfg.MaxSimulationTimeStep, remaining*0.5)
		}
		remaining -= step
		m.phys(step)
	}
}

// BeginTick resets the per-tick state and takes over the input of the tick. Update calls it, hosts
// driving CalcVelocity themselves must call it once per tick, followed by EndTick.
func (m *Mover) BeginTick(in Input) {
	m.appliedFriction = false
	m.appliedAlternate = false

	m.acceleration = m.constrainInputAcceleration(in.Acceleration)
	m.analogInputModifier = m.analogModifier(in, m.acceleration)
	m.forceMaxAccel = in.ForceMaxAccel
	m.pressedJump = in.Jump
}

// EndTick finishes a tick. After a tick in which the source-style result was kept, ground friction
// is only tolerated if the mover ended up on the ground. A requested move only lasts for one tick.
func (m *Mover) EndTick() {
	if m.appliedAlternate {
		m.brakingFrameTolerated = m.IsMovingOnGround()
	}
	m.ClearRequestedMove()
}

// phys updates the velocity for a single sub-step according to the movement mode.
func (m *Mover) phys(dt float32) {
	switch m.mode {
	case ModeWalking, ModeNavWalking:
		m.physWalking(dt)
	case ModeFalling:
		m.physFalling(dt)
	case ModeSwimming:
		m.CalcVelocity(dt, m.cfg.FluidFriction*0.5, true, m.cfg.BrakingDecelerationSwimming)
	case ModeFlying:
		m.CalcVelocity(dt, m.cfg.FluidFriction*0.5, true, m.cfg.BrakingDecelerationFlying)
	}
}

func (m *Mover) physWalking(dt float32) {
	m.velocity[2] = 0
	m.acceleration[2] = 0
	m.CalcVelocity(dt, m.cfg.GroundFriction, false, m.cfg.BrakingDecelerationWalking)
	m.velocity[2] = 0
}

// physFalling integrates the planar velocity like any other mode while keeping the vertical
// velocity, then applies gravity up to the terminal velocity.
func (m *Mover) physFalling(dt float32) {
	vz := m.velocity.Z()
	m.velocity[2] = 0
	m.acceleration[2] = 0
	m.CalcVelocity(dt, m.cfg.FallingLateralFriction, false, m.cfg.BrakingDecelerationFalling)
	m.velocity[2] = vz

	m.velocity[2] += m.cfg.GravityZ * dt
	if m.cfg.TerminalVelocity > 0 && -m.velocity.Z() > m.cfg.TerminalVelocity {
		m.velocity[2] = -m.cfg.TerminalVelocity
	}
}
