package movement

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/require"
)

func TestCrouchShrinksCapsule(t *testing.T) {
	f := walking(DefaultConfig())
	f.body.pos = mgl32.Vec3{0, 0, 88}

	f.m.Crouch()
	require.True(t, f.m.Crouched())
	require.True(t, f.m.ForceNextFloorCheck())
	_, hh := f.body.CapsuleSize()
	require.Equal(t, float32(40), hh)
	require.Equal(t, mgl32.Vec3{0, 0, 40}, f.body.pos, "the bottom of the capsule stays in place")
	require.Equal(t, [][2]float32{{48, 48}}, f.owner.crouches)
	require.Equal(t, float32(300), f.m.MaxSpeed())
}

func TestCrouchInAirKeepsCentre(t *testing.T) {
	f := falling(DefaultConfig())
	f.body.pos = mgl32.Vec3{0, 0, 200}

	f.m.Crouch()
	require.True(t, f.m.Crouched())
	require.Equal(t, mgl32.Vec3{0, 0, 200}, f.body.pos)
}

func TestCrouchAtCrouchedHeight(t *testing.T) {
	f := walking(DefaultConfig())
	f.body.halfHeight = 40

	f.m.Crouch()
	require.True(t, f.m.Crouched())
	require.False(t, f.m.ForceNextFloorCheck())
	require.Equal(t, [][2]float32{{0, 0}}, f.owner.crouches)
}

func TestCrouchEncroached(t *testing.T) {
	f := walking(DefaultConfig())
	f.body.halfHeight = 30
	f.world.encroach = true

	f.m.Crouch()
	require.False(t, f.m.Crouched())
	r, hh := f.body.CapsuleSize()
	require.Equal(t, float32(34), r)
	require.Equal(t, float32(30), hh)
	require.Empty(t, f.owner.crouches)

	f.world.encroach = false
	f.m.Crouch()
	require.True(t, f.m.Crouched())
	_, hh = f.body.CapsuleSize()
	require.Equal(t, float32(40), hh)
}

func TestCrouchNotAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.CanCrouch = false
	f := walking(cfg)
	f.m.Crouch()
	require.False(t, f.m.Crouched())

	f = newFixture(DefaultConfig())
	f.m.SetMovementMode(ModeSwimming, 0)
	f.m.Crouch()
	require.False(t, f.m.Crouched())
}

func TestUnCrouch(t *testing.T) {
	f := walking(DefaultConfig())
	f.body.pos = mgl32.Vec3{0, 0, 88}
	f.m.Crouch()

	f.world.encroach = true
	f.m.UnCrouch()
	require.True(t, f.m.Crouched(), "a blocked uncrouch stays crouched")
	_, hh := f.body.CapsuleSize()
	require.Equal(t, float32(40), hh)

	f.world.encroach = false
	f.m.UnCrouch()
	require.False(t, f.m.Crouched())
	_, hh = f.body.CapsuleSize()
	require.Equal(t, float32(88), hh)
	require.Equal(t, mgl32.Vec3{0, 0, 88}, f.body.pos)
}

func TestFastFall(t *testing.T) {
	f := falling(DefaultConfig())
	f.m.SetVelocity(mgl32.Vec3{100, 0, -100})
	require.True(t, f.m.AttemptFastFall())
	require.Equal(t, mgl32.Vec3{100, 0, -700}, f.m.Velocity())

	f.m.SetVelocity(mgl32.Vec3{0, 0, -900})
	require.True(t, f.m.AttemptFastFall())
	require.Equal(t, float32(-900), f.m.Velocity().Z(), "faster falls are kept")

	f.m.SetVelocity(mgl32.Vec3{0, 0, 50})
	require.False(t, f.m.AttemptFastFall())
	require.Equal(t, float32(50), f.m.Velocity().Z())

	w := walking(DefaultConfig())
	require.False(t, w.m.AttemptFastFall())
}

func TestCrouchFastFalls(t *testing.T) {
	f := falling(DefaultConfig())
	f.m.SetVelocity(mgl32.Vec3{0, 0, -10})
	f.m.Crouch()
	require.Equal(t, float32(-700), f.m.Velocity().Z())
}
