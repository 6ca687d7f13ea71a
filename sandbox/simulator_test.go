package sandbox

import (
	"testing"

	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/movement"
	"github.com/stretchr/testify/require"
)

const tickTime = float32(1.0 / 60.0)

func newSim(pos mgl32.Vec3, mode movement.Mode, ramps []Ramp, obstacles []cube.BBox) (*Simulator, *movement.Mover) {
	cfg := movement.DefaultConfig()
	w := NewWorld(cfg, NewCapsule(pos, 34, cfg.DefaultHalfHeight), ramps, obstacles)
	m := NewMover(cfg, w, nil)
	m.SetMovementMode(mode, 0)
	return &Simulator{World: w}, m
}

func TestSimulateWalksOnFlatGround(t *testing.T) {
	sim, m := newSim(mgl32.Vec3{0, 0, 88}, movement.ModeWalking, nil, nil)
	var res Result
	for i := 0; i < 60; i++ {
		res = sim.Simulate(m, movement.Input{Acceleration: mgl32.Vec3{2048, 0, 0}}, tickTime)
		require.Equal(t, OutcomeMoved, res.Outcome)
		require.Equal(t, float32(88), res.Position.Z())
	}
	require.Greater(t, res.Position.X(), float32(200))
	require.Equal(t, movement.ModeWalking, res.Mode)
}

func TestSimulateSkipsShortTicks(t *testing.T) {
	sim, m := newSim(mgl32.Vec3{0, 0, 88}, movement.ModeWalking, nil, nil)
	m.SetVelocity(mgl32.Vec3{300, 0, 0})
	res := sim.Simulate(m, movement.Input{}, 1e-7)
	require.Equal(t, OutcomeSkipped, res.Outcome)
	require.Equal(t, mgl32.Vec3{0, 0, 88}, res.Position)
	require.Equal(t, mgl32.Vec3{300, 0, 0}, res.Velocity)
}

func TestSimulateStopsAtWall(t *testing.T) {
	wall := cube.Box(100, -500, 0, 200, 500, 300)
	sim, m := newSim(mgl32.Vec3{0, 0, 88}, movement.ModeWalking, nil, []cube.BBox{wall})

	blocked := false
	for i := 0; i < 120; i++ {
		res := sim.Simulate(m, movement.Input{Acceleration: mgl32.Vec3{2048, 0, 0}}, tickTime)
		blocked = blocked || res.Outcome == OutcomeBlocked
		require.False(t, sim.World.Capsule().BoundingBox().IntersectsWith(wall), "tick %d", i)
	}
	require.True(t, blocked)
	require.InDelta(t, 66, sim.World.Capsule().Position().X(), 0.1)
	require.InDelta(t, 0, m.Velocity().X(), 1e-3)
}

func TestSimulateSlidesIntoCorner(t *testing.T) {
	walls := []cube.BBox{
		cube.Box(100, -500, 0, 200, 500, 300),
		cube.Box(-500, 100, 0, 500, 200, 300),
	}
	sim, m := newSim(mgl32.Vec3{0, 0, 88}, movement.ModeWalking, nil, walls)
	for i := 0; i < 120; i++ {
		sim.Simulate(m, movement.Input{Acceleration: mgl32.Vec3{2048, 2048, 0}}, tickTime)
		require.False(t, cube.AnyIntersections(walls, sim.World.Capsule().BoundingBox()), "tick %d", i)
	}
	pos := sim.World.Capsule().Position()
	require.InDelta(t, 66, pos.X(), 0.1)
	require.InDelta(t, 66, pos.Y(), 0.1)
}

func TestSimulateRampLaunch(t *testing.T) {
	ramp := Ramp{MinX: 0, MaxX: 400, Height: 0, Slope: 0.5}
	sim, m := newSim(mgl32.Vec3{-300, 0, 88}, movement.ModeWalking, []Ramp{ramp}, nil)

	for i := 0; i < 240; i++ {
		res := sim.Simulate(m, movement.Input{Acceleration: mgl32.Vec3{2048, 0, 0}}, tickTime)
		if res.Outcome == OutcomeLeftGround {
			require.Equal(t, movement.ModeFalling, res.Mode)
			require.GreaterOrEqual(t, res.Position.X(), float32(400))
			require.Greater(t, res.Velocity.Z(), float32(0), "leaving the top of a ramp launches upwards")
			return
		}
		if x := res.Position.X(); ramp.Contains(x) {
			require.InDelta(t, ramp.SurfaceZ(x)+88, res.Position.Z(), 1e-2, "walking follows the ramp")
		}
	}
	t.Fatal("mover never left the ramp")
}

func TestSimulateSteepSlopeCatchesAir(t *testing.T) {
	ramp := Ramp{MinX: 100, MaxX: 300, Height: 0, Slope: 2}
	sim, m := newSim(mgl32.Vec3{0, 0, 88}, movement.ModeWalking, []Ramp{ramp}, nil)

	for i := 0; i < 120; i++ {
		res := sim.Simulate(m, movement.Input{Acceleration: mgl32.Vec3{2048, 0, 0}}, tickTime)
		if res.Mode == movement.ModeFalling {
			require.Equal(t, OutcomeLeftGround, res.Outcome)
			require.False(t, m.CatchAirRequested(), "the request was consumed")
			return
		}
	}
	t.Fatal("mover never caught air on the steep slope")
}

func TestSimulateCliffBlocksWalking(t *testing.T) {
	cliff := Ramp{MinX: 100, MaxX: 1000, Height: 300}
	sim, m := newSim(mgl32.Vec3{0, 0, 88}, movement.ModeWalking, []Ramp{cliff}, nil)

	blocked := false
	for i := 0; i < 120; i++ {
		res := sim.Simulate(m, movement.Input{Acceleration: mgl32.Vec3{2048, 0, 0}}, tickTime)
		blocked = blocked || res.Outcome == OutcomeBlocked
		require.Equal(t, movement.ModeWalking, res.Mode, "tick %d", i)
		require.Equal(t, float32(88), res.Position.Z(), "tick %d", i)
		require.LessOrEqual(t, res.Position.X(), float32(66), "tick %d", i)
	}
	require.True(t, blocked)
	require.InDelta(t, 66, sim.World.Capsule().Position().X(), 0.1)
	require.InDelta(t, 0, m.Velocity().X(), 1e-3)
}

func TestSimulateCliffBlocksFalling(t *testing.T) {
	cliff := Ramp{MinX: 100, MaxX: 1000, Height: 300}
	sim, m := newSim(mgl32.Vec3{0, 0, 200}, movement.ModeFalling, []Ramp{cliff}, nil)
	m.SetVelocity(mgl32.Vec3{600, 0, 0})

	for i := 0; i < 120; i++ {
		res := sim.Simulate(m, movement.Input{}, tickTime)
		require.LessOrEqual(t, res.Position.X(), float32(66), "tick %d", i)
		if res.Outcome == OutcomeLanded {
			require.InDelta(t, 88, res.Position.Z(), 1e-3, "landed at the foot of the cliff")
			return
		}
	}
	t.Fatal("mover never landed")
}

func TestSimulateLandsOnPlatform(t *testing.T) {
	platform := Ramp{MinX: 100, MaxX: 1000, Height: 300}
	sim, m := newSim(mgl32.Vec3{0, 0, 500}, movement.ModeFalling, []Ramp{platform}, nil)
	m.SetVelocity(mgl32.Vec3{300, 0, 0})

	for i := 0; i < 120; i++ {
		res := sim.Simulate(m, movement.Input{}, tickTime)
		if res.Outcome == OutcomeLanded {
			require.Greater(t, res.Position.X(), float32(100))
			require.InDelta(t, 388, res.Position.Z(), 1e-3)
			return
		}
	}
	t.Fatal("mover never landed")
}

func TestPushOut(t *testing.T) {
	cliff := Ramp{MinX: 100, MaxX: 1000, Height: 300}
	sim, _ := newSim(mgl32.Vec3{150, 0, 88}, movement.ModeFalling, []Ramp{cliff}, nil)

	n, ok := sim.World.pushOut()
	require.True(t, ok)
	require.Equal(t, mgl32.Vec3{-1, 0, 0}, n)
	require.InDelta(t, 66, sim.World.Capsule().Position().X(), 0.1)
	require.Greater(t, sim.World.FindFloor(sim.World.Capsule().Position()).Distance, float32(-1e-3))

	sim, _ = newSim(mgl32.Vec3{150, 0, 88}, movement.ModeFalling, nil, nil)
	_, ok = sim.World.pushOut()
	require.False(t, ok, "flat ground has nothing to push out of")
}

func TestSimulateLands(t *testing.T) {
	sim, m := newSim(mgl32.Vec3{0, 0, 300}, movement.ModeFalling, nil, nil)
	m.SetVelocity(mgl32.Vec3{100, 0, 0})

	for i := 0; i < 120; i++ {
		res := sim.Simulate(m, movement.Input{}, tickTime)
		if res.Outcome == OutcomeLanded {
			require.Equal(t, movement.ModeWalking, res.Mode)
			require.InDelta(t, 88, res.Position.Z(), 1e-3)
			require.Zero(t, res.Velocity.Z())
			require.Equal(t, 1, m.LandingFrictionCounter())
			return
		}
	}
	t.Fatal("mover never landed")
}

func TestSimulateCrouchUnderCeiling(t *testing.T) {
	sim, m := newSim(mgl32.Vec3{0, 0, 88}, movement.ModeWalking, nil, nil)
	res := sim.Simulate(m, movement.Input{Crouch: true}, tickTime)
	require.True(t, res.Crouched)
	require.InDelta(t, 40, res.Position.Z(), 1e-3)

	sim.World.Obstacles = []cube.BBox{cube.Box(-100, -100, 100, 100, 100, 200)}
	res = sim.Simulate(m, movement.Input{}, tickTime)
	require.True(t, res.Crouched, "standing up is blocked by the ceiling")
	_, hh := sim.World.Capsule().CapsuleSize()
	require.Equal(t, float32(40), hh)

	sim.World.Obstacles = nil
	res = sim.Simulate(m, movement.Input{}, tickTime)
	require.False(t, res.Crouched)
	require.InDelta(t, 88, res.Position.Z(), 1e-3)
}

func TestFindFloor(t *testing.T) {
	cfg := movement.DefaultConfig()
	capsule := NewCapsule(mgl32.Vec3{0, 0, 88}, 34, 88)
	w := NewWorld(cfg, capsule, []Ramp{{MinX: 100, MaxX: 200, Height: 10, Slope: 2}}, nil)
	w.Material = &Material{Friction: 0.6}

	floor := w.FindFloor(mgl32.Vec3{0, 0, 88})
	require.True(t, floor.Walkable)
	require.Zero(t, floor.Distance)
	require.InDelta(t, 0.75, floor.SurfaceFriction(), 1e-6)

	floor = w.FindFloor(mgl32.Vec3{105, 0, 88})
	require.True(t, floor.Blocking)
	require.False(t, floor.Walkable, "a slope of 2 is too steep")
	require.InDelta(t, -20, floor.Distance, 1e-3)

	floor = w.FindFloor(mgl32.Vec3{150, 0, 88})
	require.False(t, floor.Blocking, "the ramp is higher than a step")

	floor = w.FindFloor(mgl32.Vec3{0, 0, 200})
	require.False(t, floor.Blocking)

	require.False(t, w.Encroached(mgl32.Vec3{0, 0, 88}, 34, 88))
	w.Obstacles = []cube.BBox{cube.Box(20, -10, 0, 60, 10, 50)}
	require.True(t, w.Encroached(mgl32.Vec3{0, 0, 88}, 34, 88))
}

func TestSweepBox(t *testing.T) {
	box := cube.Box(0, 0, 0, 1, 1, 1)
	wall := cube.Box(3, -5, -5, 4, 5, 5)

	tm, n, ok := sweepBox(box, mgl32.Vec3{4, 0, 0}, wall)
	require.True(t, ok)
	require.InDelta(t, 0.5, tm, 1e-6)
	require.Equal(t, mgl32.Vec3{-1, 0, 0}, n)

	_, _, ok = sweepBox(box, mgl32.Vec3{1, 0, 0}, wall)
	require.False(t, ok, "the move ends before the wall")

	_, _, ok = sweepBox(box, mgl32.Vec3{0, 4, 0}, wall)
	require.False(t, ok, "moving parallel to the wall")
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "left_ground", OutcomeLeftGround.String())
	require.Equal(t, "unknown", Outcome(99).String())
}
