package movement

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/game"
)

type mockWorld struct {
	floor     FloorContact
	encroach  bool
	slideCall int
	adjust    mgl32.Vec3
}

func (w *mockWorld) FindFloor(pos mgl32.Vec3) FloorContact {
	return w.floor
}

func (w *mockWorld) SlideAlongSurface(delta mgl32.Vec3, time float32, normal mgl32.Vec3, hit Hit) float32 {
	w.slideCall++
	return 1
}

func (w *mockWorld) TwoWallAdjust(delta mgl32.Vec3, hit Hit, oldHitNormal mgl32.Vec3) mgl32.Vec3 {
	return w.adjust
}

func (w *mockWorld) Encroached(pos mgl32.Vec3, radius, halfHeight float32) bool {
	return w.encroach
}

type mockBody struct {
	pos        mgl32.Vec3
	forward    mgl32.Vec3
	radius     float32
	halfHeight float32
}

func (b *mockBody) Position() mgl32.Vec3 { return b.pos }
func (b *mockBody) Forward() mgl32.Vec3  { return b.forward }
func (b *mockBody) Move(delta mgl32.Vec3) {
	b.pos = b.pos.Add(delta)
}
func (b *mockBody) CapsuleSize() (float32, float32) { return b.radius, b.halfHeight }
func (b *mockBody) SetCapsuleSize(radius, halfHeight float32) {
	b.radius, b.halfHeight = radius, halfHeight
}
func (b *mockBody) Scale() float32 { return 1 }

type mockOwner struct {
	imparted    mgl32.Vec3
	falling     int
	resets      int
	modeChanges []Mode
	crouches    [][2]float32
}

func (o *mockOwner) ImpartedBaseVelocity() mgl32.Vec3 { return o.imparted }
func (o *mockOwner) Falling()                         { o.falling++ }
func (o *mockOwner) ResetJumpState()                  { o.resets++ }
func (o *mockOwner) OnMovementModeChanged(prev Mode, prevCustom uint8) {
	o.modeChanges = append(o.modeChanges, prev)
}
func (o *mockOwner) OnStartCrouch(adjust, scaled float32) {
	o.crouches = append(o.crouches, [2]float32{adjust, scaled})
}
func (o *mockOwner) OnEndCrouch(adjust, scaled float32) {}

type mockNavWalker struct {
	allow bool
}

func (n mockNavWalker) TryLeaveNavWalking() bool { return n.allow }

type mockPathFollower struct {
	started int
}

func (p *mockPathFollower) OnStartedFalling() { p.started++ }

var flatFloor = FloorContact{
	ImpactNormal: game.Up,
	Normal:       game.Up,
	Blocking:     true,
	Walkable:     true,
}

type fixture struct {
	m     *Mover
	world *mockWorld
	body  *mockBody
	owner *mockOwner
}

func newFixture(cfg Config) fixture {
	f := fixture{
		world: &mockWorld{floor: flatFloor},
		body:  &mockBody{forward: mgl32.Vec3{1, 0, 0}, radius: 34, halfHeight: cfg.DefaultHalfHeight},
		owner: &mockOwner{},
	}
	f.m = New(cfg, Collaborators{World: f.world, Body: f.body, Owner: f.owner}, nil)
	return f
}

// walking returns a fixture in walking mode whose landing friction window was already used up.
func walking(cfg Config) fixture {
	f := newFixture(cfg)
	f.m.SetMovementMode(ModeWalking, 0)
	f.m.landingFrictionCounter = 0
	return f
}
