package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/game"
	"github.com/oomph-ac/hopsim/omath"
)

// alternateModel is the source-style model. Acceleration along the input direction is capped by
// the wish speed on the ground and by Config.AirSpeedCap in the air, which leaves the velocity
// perpendicular to the input unbounded and allows strafe jumping.
type alternateModel struct{}

func (alternateModel) compute(t *tick, start mgl32.Vec3) mgl32.Vec3 {
	m, vel, cfg := t.m, start, t.m.cfg

	// Ground friction is only applied once per tick, no matter how often the tick is split.
	if t.groundMove && !m.appliedFriction {
		friction, decel := t.brakingFriction()*t.surfaceFriction, t.decel
		if t.crouching {
			friction *= game.CrouchFrictionScale
			decel *= game.CrouchFrictionScale
		}
		vel = m.brake(vel, t.dt, friction, decel)
		m.appliedFriction = true
	}
	if t.fluid {
		vel = vel.Mul(1 - math32.Min(t.friction*t.dt, 1))
	}

	if !t.zeroAccel {
		wish := omath.ClampToMaxSize2D(t.accel, t.maxSpeed)
		dir := omath.SafeNormal2D(wish)
		veer := vel.X()*dir.X() + vel.Y()*dir.Y()

		grounded := t.groundMove && !t.crouching
		limit, mult := wish, cfg.GroundAccelerationMultiplier
		if !grounded {
			limit, mult = omath.ClampToMaxSize2D(wish, cfg.AirSpeedCap), cfg.AirAccelerationMultiplier
		}
		if addSpeed := omath.Size2D(limit) - veer; addSpeed > 0 {
			wish = omath.ClampToMaxSize2D(wish.Mul(mult*t.surfaceFriction*t.dt), addSpeed)
			vel = vel.Add(wish)
		}
	}
	if !t.zeroRequested {
		vel = vel.Add(t.requestedAccel.Mul(t.dt))
	}
	vel = omath.ClampToMaxSize2D(vel, cfg.HardSpeedLimit)

	t.alternateGained = vel.Len() >= start.Len()
	return vel
}
