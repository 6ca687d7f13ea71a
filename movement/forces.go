package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/game"
	"github.com/oomph-ac/hopsim/omath"
)

// RequestDirectMove asks the mover to move with the velocity passed during the next tick, as path
// following does. If forceMaxSpeed is true, the mover moves at its maximum speed in the direction
// of vel.
func (m *Mover) RequestDirectMove(vel mgl32.Vec3, forceMaxSpeed bool) {
	m.requestedVelocity = vel
	m.hasRequestedVelocity = true
	m.requestedMoveWithMaxSpeed = forceMaxSpeed
}

// ClearRequestedMove drops a velocity requested by RequestDirectMove.
func (m *Mover) ClearRequestedMove() {
	m.requestedVelocity = mgl32.Vec3{}
	m.hasRequestedVelocity = false
	m.requestedMoveWithMaxSpeed = false
}

// applyRequestedMove turns a requested velocity into an acceleration. The velocity is turned
// towards the requested direction the same way input acceleration turns it. If the mover is
// already faster than the requested speed, the velocity is set directly so that the mover does
// not overshoot.
func (m *Mover) applyRequestedMove(dt, maxSpeed, friction float32) (accel mgl32.Vec3, speed float32, ok bool) {
	if !m.hasRequestedVelocity {
		return mgl32.Vec3{}, 0, false
	}
	speedSqr := m.requestedVelocity.LenSqr()
	if speedSqr < game.KindaSmallNumber {
		return mgl32.Vec3{}, 0, false
	}

	speed = math32.Sqrt(speedSqr)
	dir := m.requestedVelocity.Mul(1 / speed)
	if m.requestedMoveWithMaxSpeed {
		speed = maxSpeed
	} else {
		speed = math32.Min(maxSpeed, speed)
	}
	moveVel := dir.Mul(speed)

	if m.velocity.LenSqr() < speed*speed*game.OverVelocityPercent*game.OverVelocityPercent {
		size := m.velocity.Len()
		m.velocity = m.velocity.Sub(m.velocity.Sub(dir.Mul(size)).Mul(math32.Min(dt*friction, 1)))
		accel = omath.ClampToMaxSize(moveVel.Sub(m.velocity).Mul(1/dt), m.cfg.MaxAcceleration)
	} else {
		m.velocity = moveVel
	}
	return accel, speed, true
}

// AddImpulse adds an impulse that is applied at the start of the next tick. If velocityChange is
// true, the impulse is applied as is, otherwise it is divided by Config.Mass.
func (m *Mover) AddImpulse(impulse mgl32.Vec3, velocityChange bool) {
	if omath.IsZero(impulse) {
		return
	}
	if !velocityChange {
		if m.cfg.Mass <= game.SmallNumber {
			return
		}
		impulse = impulse.Mul(1 / m.cfg.Mass)
	}
	m.pendingImpulse = m.pendingImpulse.Add(impulse)
}

// AddForce adds a force that is applied over the next tick.
func (m *Mover) AddForce(force mgl32.Vec3) {
	if omath.IsZero(force) || m.cfg.Mass <= game.SmallNumber {
		return
	}
	m.pendingForce = m.pendingForce.Add(force.Mul(1 / m.cfg.Mass))
}

// Launch replaces the velocity of the mover with vel at the start of the next tick and makes it
// fall.
func (m *Mover) Launch(vel mgl32.Vec3) {
	m.pendingLaunch = vel
	m.hasPendingLaunch = true
}

// ClearAccumulatedForces drops pending impulses, forces and launches.
func (m *Mover) ClearAccumulatedForces() {
	m.pendingImpulse = mgl32.Vec3{}
	m.pendingForce = mgl32.Vec3{}
	m.pendingLaunch = mgl32.Vec3{}
	m.hasPendingLaunch = false
}

// handlePendingLaunch applies a pending launch. It returns true if the mover was launched.
func (m *Mover) handlePendingLaunch() bool {
	if !m.hasPendingLaunch {
		return false
	}
	m.velocity = m.pendingLaunch
	m.pendingLaunch = mgl32.Vec3{}
	m.hasPendingLaunch = false
	m.SetMovementMode(ModeFalling, 0)
	return true
}

// applyAccumulatedForces applies pending impulses and forces. A mover on the ground that is pushed
// upwards harder than gravity pulls it down starts falling.
func (m *Mover) applyAccumulatedForces(dt float32) {
	if m.pendingImpulse.Z() != 0 || m.pendingForce.Z() != 0 {
		if m.IsMovingOnGround() && m.pendingImpulse.Z()+m.pendingForce.Z()*dt+m.cfg.GravityZ*dt > game.SmallNumber {
			m.SetMovementMode(ModeFalling, 0)
		}
	}
	m.velocity = m.velocity.Add(m.pendingImpulse).Add(m.pendingForce.Mul(dt))
	m.pendingImpulse = mgl32.Vec3{}
	m.pendingForce = mgl32.Vec3{}
}
