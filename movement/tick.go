package movement

import (
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// tick holds the values derived once per velocity calculation and shared by both velocity
// models.
type tick struct {
	m *Mover

	dt       float32
	friction float32
	decel    float32
	fluid    bool

	start mgl32.Vec3

	maxSpeed       float32
	maxInputSpeed  float32
	requestedSpeed float32

	accel          mgl32.Vec3
	requestedAccel mgl32.Vec3

	zeroAccel     bool
	zeroRequested bool
	overMax       bool
	groundMove    bool
	crouching     bool

	surfaceFriction float32
	// alternateGained is set by the source-style model when its result is at least as fast as
	// the start velocity.
	alternateGained bool
}

var tickPool = sync.Pool{
	New: func() any {
		return &tick{}
	},
}

func newTick(m *Mover, dt float32) *tick {
	t := tickPool.Get().(*tick)
	t.m = m
	t.dt = dt
	t.surfaceFriction = 1
	return t
}

func putTick(t *tick) {
	t.reset()
	tickPool.Put(t)
}

func (t *tick) reset() {
	*t = tick{}
}

// brakingFriction returns the friction used when braking.
func (t *tick) brakingFriction() float32 {
	if t.m.cfg.UseSeparateBrakingFriction {
		return t.m.cfg.BrakingFriction
	}
	return t.friction
}
