package sandbox

import (
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// Capsule is the collision shape moved by a Mover in the sandbox. Collisions treat it as the
// box enclosing the capsule.
type Capsule struct {
	pos        mgl32.Vec3
	forward    mgl32.Vec3
	radius     float32
	halfHeight float32
	scale      float32
}

// NewCapsule creates a capsule centred at pos.
func NewCapsule(pos mgl32.Vec3, radius, halfHeight float32) *Capsule {
	return &Capsule{
		pos:        pos,
		forward:    mgl32.Vec3{1, 0, 0},
		radius:     radius,
		halfHeight: halfHeight,
		scale:      1,
	}
}

func (c *Capsule) Position() mgl32.Vec3 {
	return c.pos
}

// SetPosition teleports the capsule to pos.
func (c *Capsule) SetPosition(pos mgl32.Vec3) {
	c.pos = pos
}

func (c *Capsule) Forward() mgl32.Vec3 {
	return c.forward
}

// SetForward sets the facing direction of the capsule.
func (c *Capsule) SetForward(forward mgl32.Vec3) {
	c.forward = forward
}

func (c *Capsule) Move(delta mgl32.Vec3) {
	c.pos = c.pos.Add(delta)
}

func (c *Capsule) CapsuleSize() (float32, float32) {
	return c.radius, c.halfHeight
}

func (c *Capsule) SetCapsuleSize(radius, halfHeight float32) {
	c.radius, c.halfHeight = radius, halfHeight
}

func (c *Capsule) Scale() float32 {
	return c.scale
}

// Feet returns the position of the bottom of the capsule.
func (c *Capsule) Feet() mgl32.Vec3 {
	return c.pos.Sub(mgl32.Vec3{0, 0, c.halfHeight * c.scale})
}

// BoundingBox returns the box enclosing the capsule.
func (c *Capsule) BoundingBox() cube.BBox {
	return capsuleBox(c.pos, c.radius*c.scale, c.halfHeight*c.scale)
}

func capsuleBox(pos mgl32.Vec3, radius, halfHeight float32) cube.BBox {
	return cube.Box(
		pos.X()-radius, pos.Y()-radius, pos.Z()-halfHeight,
		pos.X()+radius, pos.Y()+radius, pos.Z()+halfHeight,
	)
}
