package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/game"
	"github.com/oomph-ac/hopsim/omath"
)

// ApplyVelocityBraking slows the velocity of the mover down over dt using friction and a
// constant deceleration. It never reverses the direction of the velocity.
func (m *Mover) ApplyVelocityBraking(dt, friction, decel float32) {
	m.velocity = m.brake(m.velocity, dt, friction, decel)
}

// brake is ApplyVelocityBraking on an arbitrary velocity.
func (m *Mover) brake(vel mgl32.Vec3, dt, friction, decel float32) mgl32.Vec3 {
	if !m.valid() || m.rootMotion || dt < game.MinTickTime || omath.IsZero(vel) {
		return vel
	}
	newVel := brakeVelocity(vel, dt, friction, decel, m.cfg.BrakingFrictionFactor, m.cfg.BrakingSubStepTime)
	m.dbg.Notify(DebugModeBraking, true, "brake dt=%.4f friction=%.3f decel=%.3f: %v -> %v", dt, friction, decel, vel, newVel)
	return newVel
}

// brakeVelocity integrates braking over dt in sub-steps no longer than subStep, which is
// clamped to [1/75, 1/20] seconds. The deceleration opposes the starting direction for the whole
// integration and the result is zeroed as soon as it would point against that direction.
func brakeVelocity(vel mgl32.Vec3, dt, friction, decel, frictionFactor, subStep float32) mgl32.Vec3 {
	friction = math32.Max(0, friction*math32.Max(0, frictionFactor))
	decel = math32.Max(0, decel)
	zeroFriction := friction == 0
	zeroBraking := decel == 0
	if zeroFriction && zeroBraking {
		return vel
	}

	oldVel := vel
	revAccel := mgl32.Vec3{}
	if !zeroBraking {
		revAccel = omath.SafeNormal(vel).Mul(-decel)
	}

	maxTimeStep := omath.ClampFloat(subStep, game.MinBrakingSubStep, game.MaxBrakingSubStep)
	remaining := dt
	for remaining >= game.MinTickTime {
		step := remaining
		if remaining > maxTimeStep && !zeroFriction {
			step = math32.Min(maxTimeStep, remaining*0.5)
		}
		remaining -= step

		vel = vel.Add(vel.Mul(-friction).Add(revAccel).Mul(step))
		if vel.Dot(oldVel) <= 0 {
			return mgl32.Vec3{}
		}
	}

	lenSqr := vel.LenSqr()
	if lenSqr <= game.KindaSmallNumber || (!zeroBraking && lenSqr <= game.BrakeToStopVelocity*game.BrakeToStopVelocity) {
		return mgl32.Vec3{}
	}
	return vel
}
