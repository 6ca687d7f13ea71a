package game

import "github.com/go-gl/mathgl/mgl32"

const (
	// MinTickTime is the smallest elapsed time, in seconds, that is simulated at all.
	MinTickTime = float32(1e-6)
	// SmallNumber and KindaSmallNumber are the tolerances used for degenerate vectors.
	SmallNumber      = float32(1e-8)
	KindaSmallNumber = float32(1e-4)

	// BrakeToStopVelocity is the speed below which braking with deceleration snaps to zero.
	BrakeToStopVelocity = float32(10)
	// MinFloorDist is the distance to the floor under which a blocking floor is considered touched.
	MinFloorDist = float32(1.9)

	// MinBrakingSubStep and MaxBrakingSubStep bound the configured braking sub-step interval.
	MinBrakingSubStep = float32(1.0 / 75.0)
	MaxBrakingSubStep = float32(1.0 / 20.0)

	// OverVelocityPercent is the tolerance applied before velocity counts as exceeding a speed cap.
	OverVelocityPercent = float32(1.01)

	// DefaultHardSpeedLimit is the absolute planar speed ceiling of the source-style model.
	DefaultHardSpeedLimit = float32(13470.4)
	// MaxAlternateInputAngle is the largest angle, in degrees, between the source-style result and
	// the input direction for which the source-style result may be kept.
	MaxAlternateInputAngle = float32(112.5)
	// CatchAirMaxAngle is the surface angle, in degrees, from which a face counts as a wall.
	CatchAirMaxAngle = float32(89.9)

	// SurfaceFrictionScale converts a physical material friction into a surface friction factor.
	SurfaceFrictionScale = float32(1.25)
	// CrouchFrictionScale scales source-style ground friction while crouched.
	CrouchFrictionScale = float32(0.01)
)

// Up is the world up axis.
var Up = mgl32.Vec3{0, 0, 1}
