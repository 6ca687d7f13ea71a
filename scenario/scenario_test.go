package scenario

import (
	"io"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/movement"
	"github.com/oomph-ac/hopsim/sandbox"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func quietLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func runBuiltin(t *testing.T, name string) Trace {
	t.Helper()
	r, err := Builtin()
	require.NoError(t, err)
	s, err := r.Get(name)
	require.NoError(t, err)

	trace, err := Run(s, movement.DefaultConfig(), quietLogger(), nil)
	require.NoError(t, err)
	require.Len(t, trace.Frames, s.TotalTicks())
	return trace
}

func TestBuiltinRegistry(t *testing.T) {
	r, err := Builtin()
	require.NoError(t, err)
	require.Equal(t, []string{
		"braking_stop",
		"air_strafe",
		"crouch_ceiling",
		"ramp_launch",
		"bunnyhop_chain",
		"swim_drift",
	}, r.Names())
	require.Len(t, r.All(), r.Len())

	_, err = r.Get("missing")
	require.Error(t, err)

	s, err := r.Get("braking_stop")
	require.NoError(t, err)
	require.Error(t, r.Register(s), "names are unique")
}

func TestBrakingStop(t *testing.T) {
	trace := runBuiltin(t, "braking_stop")
	prev := float32(500)
	for _, f := range trace.Frames {
		require.LessOrEqual(t, f.Velocity.X(), prev)
		require.GreaterOrEqual(t, f.Velocity.X(), float32(0), "braking never reverses")
		require.Zero(t, f.Velocity.Z())
		prev = f.Velocity.X()
	}
	require.Equal(t, mgl32.Vec3{}, trace.Last().Velocity)
}

func TestAirStrafe(t *testing.T) {
	trace := runBuiltin(t, "air_strafe")

	strafe := trace.StepFrames(0)[0]
	require.Equal(t, movement.WinnerAlternate, strafe.Winner)
	require.Greater(t, strafe.Speed2D(), float32(600))

	back := trace.StepFrames(1)[0]
	require.Equal(t, movement.WinnerStandard, back.Winner, "input 150 degrees behind the velocity is refused")
	for _, f := range trace.Frames {
		require.Equal(t, movement.ModeFalling, f.Mode)
	}
}

func TestCrouchCeiling(t *testing.T) {
	trace := runBuiltin(t, "crouch_ceiling")

	crouch := trace.StepFrames(0)
	require.True(t, crouch[len(crouch)-1].Crouched)
	require.InDelta(t, 40, crouch[len(crouch)-1].Position.Z(), 1e-3)

	under := trace.StepFrames(1)
	require.Greater(t, under[len(under)-1].Position.X(), float32(184), "the mover is below the ceiling")

	stuck := trace.StepFrames(2)
	for _, f := range stuck {
		require.True(t, f.Crouched, "standing up below the ceiling is blocked")
	}

	last := trace.Last()
	require.False(t, last.Crouched)
	require.Less(t, last.Position.X(), float32(116))
	require.InDelta(t, 88, last.Position.Z(), 1e-3)
}

func TestRampLaunch(t *testing.T) {
	trace := runBuiltin(t, "ramp_launch")
	for _, f := range trace.Frames {
		if f.Outcome != sandbox.OutcomeLeftGround {
			continue
		}
		require.Equal(t, movement.ModeFalling, f.Mode)
		require.Greater(t, f.Velocity.Z(), float32(0))
		return
	}
	t.Fatal("the mover never left the ramp")
}

func TestBunnyhopChain(t *testing.T) {
	trace := runBuiltin(t, "bunnyhop_chain")

	var jumps, landings int
	var top float32
	for _, f := range trace.Frames {
		switch f.Outcome {
		case sandbox.OutcomeLeftGround:
			jumps++
		case sandbox.OutcomeLanded:
			landings++
		}
		top = max(top, f.Speed2D())
	}
	require.GreaterOrEqual(t, jumps, 3)
	require.GreaterOrEqual(t, landings, 2)
	require.Greater(t, top, float32(600), "strafing gains speed past the walk speed")
}

func TestSwimDrift(t *testing.T) {
	trace := runBuiltin(t, "swim_drift")
	prev := mgl32.Vec3{300, 0, -100}.Len()
	for _, f := range trace.Frames {
		require.Equal(t, movement.ModeSwimming, f.Mode)
		require.LessOrEqual(t, f.Velocity.Len(), prev+1e-3)
		prev = f.Velocity.Len()
	}
	require.Less(t, prev, float32(1))
}

func TestRunIsDeterministic(t *testing.T) {
	r, err := Builtin()
	require.NoError(t, err)
	for _, s := range r.All() {
		a, err := Run(s, movement.DefaultConfig(), quietLogger(), nil)
		require.NoError(t, err)
		b, err := Run(s, movement.DefaultConfig(), quietLogger(), nil)
		require.NoError(t, err)
		require.Equal(t, a.Fingerprint, b.Fingerprint, s.Name)
	}

	s, err := r.Get("braking_stop")
	require.NoError(t, err)
	a, err := Run(s, movement.DefaultConfig(), quietLogger(), nil)
	require.NoError(t, err)

	cfg := movement.DefaultConfig()
	cfg.GroundFriction = 4
	b, err := Run(s, cfg, quietLogger(), nil)
	require.NoError(t, err)
	require.NotEqual(t, a.Fingerprint, b.Fingerprint)
}

func TestParse(t *testing.T) {
	s, err := Parse([]byte(`
name: custom
config:
  max_walk_speed: 300
initial:
  velocity: [100, 0, 0]
steps:
  - ticks: 2
    mode: custom
    custom_mode: 3
`))
	require.NoError(t, err)
	require.Equal(t, 60, s.TickRate)
	require.Equal(t, "walking", s.Initial.Mode)

	cfg, err := s.MovementConfig(movement.DefaultConfig())
	require.NoError(t, err)
	require.Equal(t, float32(300), cfg.MaxWalkSpeed)
	require.Equal(t, movement.DefaultConfig().GroundFriction, cfg.GroundFriction)

	trace, err := Run(s, movement.DefaultConfig(), quietLogger(), nil)
	require.NoError(t, err)
	require.Equal(t, movement.ModeCustom, trace.Last().Mode)
	require.Equal(t, mgl32.Vec3{100, 0, 0}, trace.Last().Velocity, "custom modes leave the velocity alone")
}

func TestParseErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown field":  "name: x\nbogus: 1\nsteps: [{ticks: 1}]",
		"missing name":   "steps: [{ticks: 1}]",
		"no steps":       "name: x",
		"empty step":     "name: x\nsteps: [{ticks: 0}]",
		"unknown mode":   "name: x\ninitial: {mode: running}\nsteps: [{ticks: 1}]",
		"bad step mode":  "name: x\nsteps: [{ticks: 1, mode: gliding}]",
		"negative rate":  "name: x\ntick_rate: -1\nsteps: [{ticks: 1}]",
		"negative width": "name: x\ninitial: {radius: -1}\nsteps: [{ticks: 1}]",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			require.Error(t, err)
		})
	}
}

func TestRunRejectsInvalidConfig(t *testing.T) {
	s, err := Parse([]byte("name: x\nconfig: {max_walk_speed: -1}\nsteps: [{ticks: 1}]"))
	require.NoError(t, err)
	_, err = Run(s, movement.DefaultConfig(), quietLogger(), nil)
	require.Error(t, err)
}
