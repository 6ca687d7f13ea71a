package movement

import "github.com/go-gl/mathgl/mgl32"

// World bridges the collision system. The Mover never sweeps shapes itself.
type World interface {
	// FindFloor returns the floor under a capsule centred at pos.
	FindFloor(pos mgl32.Vec3) FloorContact
	// SlideAlongSurface is the default wall slide: it moves along the surface hit and returns
	// the fraction of delta that was applied.
	SlideAlongSurface(delta mgl32.Vec3, time float32, normal mgl32.Vec3, hit Hit) float32
	// TwoWallAdjust is the default resolution of a move that is blocked by two surfaces.
	TwoWallAdjust(delta mgl32.Vec3, hit Hit, oldHitNormal mgl32.Vec3) mgl32.Vec3
	// Encroached returns true if a capsule of the given size centred at pos overlaps blocking
	// geometry.
	Encroached(pos mgl32.Vec3, radius, halfHeight float32) bool
}

// Body is the collision capsule that is moved by the Mover.
type Body interface {
	Position() mgl32.Vec3
	// Forward is the facing direction, used when acceleration must be forced without any input
	// or velocity to take a direction from.
	Forward() mgl32.Vec3
	// Move moves the capsule without sweeping.
	Move(delta mgl32.Vec3)

	CapsuleSize() (radius, halfHeight float32)
	SetCapsuleSize(radius, halfHeight float32)
	// Scale is the scale of the capsule shape.
	Scale() float32
}

// Owner receives notifications from the Mover. It is optional.
type Owner interface {
	// ImpartedBaseVelocity returns the velocity imparted by the base the character stands on.
	ImpartedBaseVelocity() mgl32.Vec3
	Falling()
	ResetJumpState()
	OnMovementModeChanged(prev Mode, prevCustom uint8)
	OnStartCrouch(halfHeightAdjust, scaledHalfHeightAdjust float32)
	OnEndCrouch(halfHeightAdjust, scaledHalfHeightAdjust float32)
}

// PathFollower is notified when a path-following character starts falling. It is optional.
type PathFollower interface {
	OnStartedFalling()
}

// NavWalker attempts the hand-off from navigation-mesh walking to regular walking. It is
// optional, and the hand-off always succeeds without one.
type NavWalker interface {
	TryLeaveNavWalking() bool
}

// Avoider computes an avoidance-steered velocity. It is optional and only used if
// Config.UseAvoidance is set.
type Avoider interface {
	AvoidanceVelocity(dt float32, vel mgl32.Vec3) mgl32.Vec3
}

// Collaborators groups the external systems a Mover works with. World and Body are required.
type Collaborators struct {
	World World
	Body  Body

	Owner        Owner
	PathFollower PathFollower
	NavWalker    NavWalker
	Avoider      Avoider
}
