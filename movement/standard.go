package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/omath"
)

// model is one way of turning the start velocity of a tick into a new velocity.
type model interface {
	compute(t *tick, start mgl32.Vec3) mgl32.Vec3
}

// standardModel brakes when there is no input, turns the velocity towards the input direction
// through friction and accelerates up to the maximum input speed.
type standardModel struct{}

func (standardModel) compute(t *tick, start mgl32.Vec3) mgl32.Vec3 {
	m, vel := t.m, start

	if (t.zeroAccel && t.zeroRequested) || t.overMax {
		oldVel := vel
		friction, decel := t.brakingFriction(), t.decel
		if m.landingFrictionCounter > 0 || t.crouching {
			friction, decel = 0, 0
			if m.landingFrictionCounter > 0 {
				m.landingFrictionCounter--
			}
		}
		vel = m.brake(vel, t.dt, friction, decel)

		// Braking may not take the velocity below the maximum speed if it started above it and
		// the input still pushes forward.
		if t.overMax && vel.LenSqr() < t.maxSpeed*t.maxSpeed && t.accel.Dot(oldVel) > 0 {
			vel = omath.SafeNormal(oldVel).Mul(t.maxSpeed)
		}
	} else if !t.zeroAccel {
		dir := omath.SafeNormal(t.accel)
		size := vel.Len()
		vel = vel.Sub(vel.Sub(dir.Mul(size)).Mul(math32.Min(t.dt*t.friction, 1)))
	}

	if t.fluid {
		vel = vel.Mul(1 - math32.Min(t.friction*t.dt, 1))
	}

	if !t.zeroAccel {
		limit := t.maxInputSpeed
		if exceedsMaxSpeed(vel, limit) {
			limit = vel.Len()
		}
		vel = omath.ClampToMaxSize(vel.Add(t.accel.Mul(t.dt)), limit)
	}
	if !t.zeroRequested {
		limit := t.requestedSpeed
		if exceedsMaxSpeed(vel, limit) {
			limit = vel.Len()
		}
		vel = omath.ClampToMaxSize(vel.Add(t.requestedAccel.Mul(t.dt)), limit)
	}
	return vel
}
