package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/game"
)

// FloorContact is the result of a floor query made by the World.
type FloorContact struct {
	// ImpactNormal is the normal of the surface at the point of contact.
	ImpactNormal mgl32.Vec3
	// Normal is the normal of the swept shape at the point of contact.
	Normal mgl32.Vec3
	// Friction is the friction of the physical material of the floor. It is only meaningful
	// when HasMaterial is true.
	Friction    float32
	HasMaterial bool
	// Distance is the distance from the bottom of the capsule to the floor.
	Distance float32

	Blocking bool
	Walkable bool
}

// Clear resets the contact to "no floor".
func (f *FloorContact) Clear() {
	*f = FloorContact{}
}

// SurfaceFriction returns the friction factor the source-style model scales its friction and
// acceleration by. Floors without a material do not scale anything.
func (f FloorContact) SurfaceFriction() float32 {
	if !f.HasMaterial {
		return 1
	}
	return math32.Min(1, f.Friction*game.SurfaceFrictionScale)
}

// Hit describes a blocking impact found by the World while sweeping the capsule.
type Hit struct {
	Normal       mgl32.Vec3
	ImpactNormal mgl32.Vec3
	// Time is the fraction of the attempted move completed before the impact.
	Time     float32
	Blocking bool
}
