package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/game"
	"github.com/oomph-ac/hopsim/omath"
)

// Winner is the velocity model whose result was kept by a velocity calculation.
type Winner uint8

const (
	WinnerStandard Winner = iota
	WinnerAlternate
)

func (w Winner) String() string {
	if w == WinnerAlternate {
		return "alternate"
	}
	return "standard"
}

func (w Winner) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// Arbitration is the outcome of choosing between the standard and the source-style result.
type Arbitration struct {
	Velocity mgl32.Vec3
	Winner   Winner

	// AlternateTurn and StandardTurn are the angles, in degrees, each result turned away from the
	// start velocity.
	AlternateTurn float32
	StandardTurn  float32
	// AlternateToInput is the angle, in degrees, between the source-style result and the input
	// acceleration.
	AlternateToInput float32
	AlternateGained  bool
}

var (
	alternate model = alternateModel{}
	standard  model = standardModel{}
)

// arbitrate runs both models from the start velocity of the tick and keeps the source-style result
// only if it turned the velocity further than the standard result while the mover is airborne or
// crouching, and does not point away from the input by more than 112.5 degrees.
func arbitrate(t *tick, alt, std model) Arbitration {
	altVel := alt.compute(t, t.start)
	stdVel := std.compute(t, t.start)

	res := Arbitration{Velocity: stdVel, Winner: WinnerStandard, AlternateGained: t.alternateGained}
	if t.zeroAccel {
		return res
	}

	startDir := omath.SafeNormal(t.start)
	res.AlternateTurn = math32.Abs(omath.AngleBetweenDeg(omath.SafeNormal(altVel), startDir))
	res.StandardTurn = math32.Abs(omath.AngleBetweenDeg(omath.SafeNormal(stdVel), startDir))
	res.AlternateToInput = omath.AngleBetweenDeg(omath.SafeNormal(altVel), omath.SafeNormal(t.accel))

	if res.AlternateTurn > res.StandardTurn && (!t.groundMove || t.crouching) && res.AlternateToInput <= game.MaxAlternateInputAngle {
		res.Velocity = altVel
		res.Winner = WinnerAlternate
	}
	return res
}

// CalcVelocity computes the velocity of the mover after dt using the friction, fluid friction and
// braking deceleration passed. Both velocity models are run from the same start velocity and one
// of their results is kept. Source-style ground friction is applied at most once between
// BeginTick and EndTick.
func (m *Mover) CalcVelocity(dt, friction float32, fluid bool, decel float32) {
	if !m.valid() || m.rootMotion || dt < game.MinTickTime {
		return
	}

	t := newTick(m, dt)
	defer putTick(t)

	t.friction = math32.Max(0, friction)
	t.decel = decel
	t.fluid = fluid

	maxSpeed := m.MaxSpeed()
	if m.IsMovingOnGround() {
		slope := -omath.SafeNormal2D(m.velocity).Dot(m.currentFloor.ImpactNormal)
		maxSpeed = math32.Max(0, maxSpeed+m.cfg.SlopeSpeedScale*slope*m.cfg.GravityZ*dt)
	}

	t.zeroRequested = true
	if accel, speed, ok := m.applyRequestedMove(dt, maxSpeed, t.friction); ok {
		t.requestedAccel = omath.ClampToMaxSize(accel, m.cfg.MaxAcceleration)
		t.requestedSpeed = speed
		t.zeroRequested = false
	}

	if m.forceMaxAccel {
		switch {
		case m.acceleration.LenSqr() > game.SmallNumber:
			m.acceleration = omath.SafeNormal(m.acceleration).Mul(m.cfg.MaxAcceleration)
		case m.velocity.LenSqr() < game.SmallNumber:
			m.acceleration = omath.SafeNormal(m.c.Body.Forward()).Mul(m.cfg.MaxAcceleration)
		default:
			m.acceleration = omath.SafeNormal(m.velocity).Mul(m.cfg.MaxAcceleration)
		}
		m.analogInputModifier = 1
	}

	t.maxInputSpeed = math32.Max(maxSpeed*m.analogInputModifier, m.MinAnalogSpeed())
	t.maxSpeed = math32.Max(t.requestedSpeed, t.maxInputSpeed)

	t.start = m.velocity
	t.accel = m.acceleration
	t.zeroAccel = omath.IsZero(t.accel)
	t.overMax = exceedsMaxSpeed(t.start, t.maxSpeed)
	t.groundMove = m.IsMovingOnGround() && m.brakingFrameTolerated
	t.crouching = m.crouched
	t.surfaceFriction = m.currentFloor.SurfaceFriction()

	res := arbitrate(t, alternate, standard)
	m.velocity = res.Velocity
	m.appliedAlternate = res.Winner == WinnerAlternate
	m.lastArbitration = res
	m.dbg.Notify(
		DebugModeArbitration,
		!t.zeroAccel,
		"%s wins (altTurn=%.3f stdTurn=%.3f altToInput=%.3f ground=%t crouch=%t) vel=%v",
		res.Winner, res.AlternateTurn, res.StandardTurn, res.AlternateToInput, t.groundMove, t.crouching, res.Velocity,
	)

	if m.cfg.UseAvoidance && m.c.Avoider != nil {
		m.velocity = m.c.Avoider.AvoidanceVelocity(dt, m.velocity)
	}
}
