package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/assert"
	"github.com/oomph-ac/hopsim/game"
	"github.com/oomph-ac/hopsim/omath"
)

// Input is the movement input of a single tick.
type Input struct {
	// Acceleration is the requested acceleration. It is clamped to Config.MaxAcceleration, and
	// its Z component is dropped outside of swimming and flying.
	Acceleration mgl32.Vec3
	// AnalogInputModifier scales the maximum input speed. If zero, it is derived from the
	// magnitude of Acceleration relative to Config.MaxAcceleration.
	AnalogInputModifier float32
	// ForceMaxAccel makes the mover accelerate at full rate regardless of Acceleration.
	ForceMaxAccel bool
	// Jump is true while the jump input is held.
	Jump bool
	// Crouch is true while the crouch input is held.
	Crouch bool
}

// Mover holds the movement state of a single character and integrates its velocity every tick.
// A Mover must only be used from one goroutine at a time.
type Mover struct {
	cfg Config
	c   Collaborators
	dbg *Debugger

	velocity     mgl32.Vec3
	acceleration mgl32.Vec3

	mode       Mode
	customMode uint8
	groundMode Mode

	currentFloor FloorContact
	exitFloor    FloorContact

	// landingFrictionCounter suppresses braking friction of the standard model while positive.
	landingFrictionCounter int

	appliedFriction       bool
	appliedAlternate      bool
	brakingFrameTolerated bool
	shouldCatchAir        bool

	crouched                    bool
	crouchMaintainsBaseLocation bool
	forceNextFloorCheck         bool
	navWalkingPhysics           bool

	rootMotion bool

	pressedJump bool
	jumpHeld    bool

	forceMaxAccel       bool
	analogInputModifier float32

	pendingImpulse   mgl32.Vec3
	pendingForce     mgl32.Vec3
	pendingLaunch    mgl32.Vec3
	hasPendingLaunch bool

	requestedVelocity         mgl32.Vec3
	hasRequestedVelocity      bool
	requestedMoveWithMaxSpeed bool

	lastArbitration Arbitration
}

// New creates a Mover using the config and collaborators passed. The World and Body
// collaborators must be set. The Mover starts out in ModeNone.
func New(cfg Config, c Collaborators, dbg *Debugger) *Mover {
	assert.IsTrue(c.World != nil && c.Body != nil, game.ErrorMissingCollisions)
	return &Mover{
		cfg:                   cfg,
		c:                     c,
		dbg:                   dbg,
		groundMode:            ModeWalking,
		brakingFrameTolerated: true,
	}
}

// valid returns true if the mover has the collaborators it needs. A zero Mover is never valid.
func (m *Mover) valid() bool {
	return m != nil && m.c.World != nil && m.c.Body != nil
}

// Config returns the config of the mover.
func (m *Mover) Config() Config {
	return m.cfg
}

// SetConfig replaces the config of the mover.
func (m *Mover) SetConfig(cfg Config) {
	m.cfg = cfg
}

// Debugger returns the debugger of the mover, which may be nil.
func (m *Mover) Debugger() *Debugger {
	return m.dbg
}

// Velocity returns the current velocity.
func (m *Mover) Velocity() mgl32.Vec3 {
	return m.velocity
}

// SetVelocity sets the current velocity.
func (m *Mover) SetVelocity(vel mgl32.Vec3) {
	m.velocity = vel
}

// Acceleration returns the acceleration used by the last tick.
func (m *Mover) Acceleration() mgl32.Vec3 {
	return m.acceleration
}

// Mode returns the current movement mode.
func (m *Mover) Mode() Mode {
	return m.mode
}

// CustomMode returns the current custom movement mode. It is only meaningful in ModeCustom.
func (m *Mover) CustomMode() uint8 {
	return m.customMode
}

// GroundMode returns the ground mode the mover last walked in.
func (m *Mover) GroundMode() Mode {
	return m.groundMode
}

// CurrentFloor returns the floor the mover stands on. It is empty unless the mover is walking.
func (m *Mover) CurrentFloor() FloorContact {
	return m.currentFloor
}

// SetCurrentFloor replaces the floor the mover stands on. It is called by the collision pass.
func (m *Mover) SetCurrentFloor(floor FloorContact) {
	m.currentFloor = floor
}

// ExitFloor returns the floor the mover last left.
func (m *Mover) ExitFloor() FloorContact {
	return m.exitFloor
}

// LandingFrictionCounter returns the number of braking ticks left without braking friction.
func (m *Mover) LandingFrictionCounter() int {
	return m.landingFrictionCounter
}

// AppliedFriction returns true if source-style ground friction was applied during this tick.
func (m *Mover) AppliedFriction() bool {
	return m.appliedFriction
}

// AppliedAlternate returns true if the source-style result was kept by the last velocity
// calculation.
func (m *Mover) AppliedAlternate() bool {
	return m.appliedAlternate
}

// BrakingFrameTolerated returns true if ground friction may be applied by the source-style model.
func (m *Mover) BrakingFrameTolerated() bool {
	return m.brakingFrameTolerated
}

// CatchAirRequested returns true if a slide asked for the mover to leave the ground.
func (m *Mover) CatchAirRequested() bool {
	return m.shouldCatchAir
}

// Crouched returns true if the mover is crouching.
func (m *Mover) Crouched() bool {
	return m.crouched
}

// CrouchMaintainsBaseLocation returns true if crouching keeps the bottom of the capsule in place.
func (m *Mover) CrouchMaintainsBaseLocation() bool {
	return m.crouchMaintainsBaseLocation
}

// ForceNextFloorCheck returns true if the collision pass must query the floor on the next move.
func (m *Mover) ForceNextFloorCheck() bool {
	return m.forceNextFloorCheck
}

// ConsumeForceNextFloorCheck returns and clears the forced floor check request.
func (m *Mover) ConsumeForceNextFloorCheck() bool {
	f := m.forceNextFloorCheck
	m.forceNextFloorCheck = false
	return f
}

// NavWalkingPhysics returns true if navigation-mesh walking physics are active.
func (m *Mover) NavWalkingPhysics() bool {
	return m.navWalkingPhysics
}

// RootMotion returns true if an animation drives the velocity instead of the mover.
func (m *Mover) RootMotion() bool {
	return m.rootMotion
}

// SetRootMotion sets whether an animation drives the velocity instead of the mover.
func (m *Mover) SetRootMotion(rootMotion bool) {
	m.rootMotion = rootMotion
}

// PressedJump returns true if the jump input was held during the current tick.
func (m *Mover) PressedJump() bool {
	return m.pressedJump
}

// LastArbitration returns the outcome of the last velocity calculation.
func (m *Mover) LastArbitration() Arbitration {
	return m.lastArbitration
}

// IsMovingOnGround returns true if the mover is walking or nav-walking.
func (m *Mover) IsMovingOnGround() bool {
	return m.mode == ModeWalking || m.mode == ModeNavWalking
}

// IsFalling returns true if the mover is falling.
func (m *Mover) IsFalling() bool {
	return m.mode == ModeFalling
}

// IsCrouching returns true if the mover is crouching.
func (m *Mover) IsCrouching() bool {
	return m.crouched
}

// MaxSpeed returns the maximum speed of the current movement mode.
func (m *Mover) MaxSpeed() float32 {
	switch m.mode {
	case ModeWalking, ModeNavWalking:
		if m.crouched {
			return m.cfg.MaxWalkSpeedCrouched
		}
		return m.cfg.MaxWalkSpeed
	case ModeFalling:
		return m.cfg.MaxWalkSpeed
	case ModeSwimming:
		return m.cfg.MaxSwimSpeed
	case ModeFlying:
		return m.cfg.MaxFlySpeed
	case ModeCustom:
		return m.cfg.MaxCustomMovementSpeed
	}
	return 0
}

// MinAnalogSpeed returns the lowest maximum input speed of the current movement mode.
func (m *Mover) MinAnalogSpeed() float32 {
	switch m.mode {
	case ModeWalking, ModeNavWalking, ModeFalling:
		return m.cfg.MinAnalogWalkSpeed
	}
	return 0
}

// StopMovementImmediately zeroes the velocity.
func (m *Mover) StopMovementImmediately() {
	m.velocity = mgl32.Vec3{}
}

// exceedsMaxSpeed returns true if vel is faster than max, with a small tolerance.
func exceedsMaxSpeed(vel mgl32.Vec3, max float32) bool {
	max = math32.Max(0, max) * game.OverVelocityPercent
	return vel.LenSqr() > max*max
}

// constrainInputAcceleration clamps the input acceleration to the limits of the current mode.
func (m *Mover) constrainInputAcceleration(accel mgl32.Vec3) mgl32.Vec3 {
	if m.mode != ModeSwimming && m.mode != ModeFlying {
		accel[2] = 0
	}
	return omath.ClampToMaxSize(accel, m.cfg.MaxAcceleration)
}

// analogModifier returns the analog input modifier for the input passed.
func (m *Mover) analogModifier(in Input, accel mgl32.Vec3) float32 {
	if in.AnalogInputModifier > 0 {
		return omath.ClampFloat(in.AnalogInputModifier, 0, 1)
	}
	if m.cfg.MaxAcceleration <= game.SmallNumber || accel.LenSqr() <= game.SmallNumber {
		return 0
	}
	return omath.ClampFloat(accel.Len()/m.cfg.MaxAcceleration, 0, 1)
}
