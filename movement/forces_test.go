package movement

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestImpulseLaunchesFromGround(t *testing.T) {
	f := walking(DefaultConfig())
	f.m.AddImpulse(mgl32.Vec3{0, 0, 500}, true)
	f.m.Update(1.0/60.0, Input{})
	require.Equal(t, ModeFalling, f.m.Mode())
	require.InDelta(t, 500-980.0/60.0, f.m.Velocity().Z(), 1e-3)
}

func TestWeakImpulseKeepsWalking(t *testing.T) {
	f := walking(DefaultConfig())
	f.m.AddImpulse(mgl32.Vec3{0, 0, 1000}, false)
	f.m.Update(1.0/60.0, Input{})
	require.Equal(t, ModeWalking, f.m.Mode(), "10 units per second do not beat gravity")
	require.Zero(t, f.m.Velocity().Z())
}

func TestForceIsScaledByMassAndTime(t *testing.T) {
	f := falling(DefaultConfig())
	f.m.AddForce(mgl32.Vec3{6000, 0, 0})
	f.m.Update(1.0/60.0, Input{})
	require.InDelta(t, 1, f.m.Velocity().X(), 1e-4)

	f.m.Update(1.0/60.0, Input{})
	require.InDelta(t, 1, f.m.Velocity().X(), 1e-4, "forces only last one tick")
}

func TestLaunch(t *testing.T) {
	f := walking(DefaultConfig())
	f.m.SetVelocity(mgl32.Vec3{300, 0, 0})
	f.m.Launch(mgl32.Vec3{100, 0, 300})
	f.m.Update(1.0/60.0, Input{})
	require.Equal(t, ModeFalling, f.m.Mode())
	require.Equal(t, float32(100), f.m.Velocity().X())
	require.InDelta(t, 300-980.0/60.0, f.m.Velocity().Z(), 1e-3)
}

func TestClearAccumulatedForces(t *testing.T) {
	f := falling(DefaultConfig())
	f.m.AddImpulse(mgl32.Vec3{100, 0, 0}, true)
	f.m.AddForce(mgl32.Vec3{6000, 0, 0})
	f.m.Launch(mgl32.Vec3{0, 0, 1000})
	f.m.ClearAccumulatedForces()
	f.m.Update(1.0/60.0, Input{})
	require.Zero(t, f.m.Velocity().X())
	require.Less(t, f.m.Velocity().Z(), float32(0))
}

func TestRequestedMove(t *testing.T) {
	f := walking(DefaultConfig())
	f.m.RequestDirectMove(mgl32.Vec3{300, 0, 0}, false)
	f.m.Update(1.0/60.0, Input{})
	require.InDelta(t, 2048.0/60.0, f.m.Velocity().X(), 1e-2)

	for i := 0; i < 60; i++ {
		f.m.RequestDirectMove(mgl32.Vec3{300, 0, 0}, false)
		f.m.Update(1.0/60.0, Input{})
	}
	require.InDelta(t, 300, f.m.Velocity().X(), 1e-2)

	f.m.RequestDirectMove(mgl32.Vec3{100, 0, 0}, false)
	f.m.Update(1.0/60.0, Input{})
	require.InDelta(t, 100, f.m.Velocity().X(), 1e-2, "a faster mover is set to the requested velocity")

	f.m.RequestDirectMove(mgl32.Vec3{1, 0, 0}, true)
	for i := 0; i < 60; i++ {
		f.m.RequestDirectMove(mgl32.Vec3{1, 0, 0}, true)
		f.m.Update(1.0/60.0, Input{})
	}
	require.InDelta(t, 600, f.m.Velocity().X(), 1e-2, "a forced requested move goes at full speed")
}

func TestRequestedMoveLastsOneTick(t *testing.T) {
	f := walking(DefaultConfig())
	f.m.RequestDirectMove(mgl32.Vec3{300, 0, 0}, false)
	f.m.Update(1.0/60.0, Input{})
	moving := f.m.Velocity().X()

	f.m.Update(1.0/60.0, Input{})
	require.Less(t, f.m.Velocity().X(), moving)
}

func TestStopMovementImmediately(t *testing.T) {
	f := walking(DefaultConfig())
	f.m.SetVelocity(mgl32.Vec3{300, 20, 0})
	f.m.StopMovementImmediately()
	require.Equal(t, mgl32.Vec3{}, f.m.Velocity())
}
