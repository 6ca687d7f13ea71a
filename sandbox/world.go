package sandbox

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/game"
	"github.com/oomph-ac/hopsim/movement"
	"github.com/oomph-ac/hopsim/omath"
)

// maxFloorDist is how far below the capsule a floor still counts as touched while walking, on top
// of the step height.
const maxFloorDist = float32(2.4)

// Ramp is a strip of ground spanning [MinX, MaxX) along X. Its surface starts at Height and rises
// by Slope for every unit along X.
type Ramp struct {
	MinX   float32 `yaml:"min_x"`
	MaxX   float32 `yaml:"max_x"`
	Height float32 `yaml:"height"`
	Slope  float32 `yaml:"slope"`
}

// Contains returns true if x is within the ramp.
func (r Ramp) Contains(x float32) bool {
	return x >= r.MinX && x < r.MaxX
}

// SurfaceZ returns the height of the ramp surface at x.
func (r Ramp) SurfaceZ(x float32) float32 {
	return r.Height + r.Slope*(x-r.MinX)
}

// Normal returns the surface normal of the ramp.
func (r Ramp) Normal() mgl32.Vec3 {
	return mgl32.Vec3{-r.Slope, 0, 1}.Normalize()
}

// Material is the physical material of the ground.
type Material struct {
	Friction float32 `yaml:"friction"`
}

// slideHandler is implemented by movement.Mover. The world calls back into it while sliding, the
// same way a mover would override the default slide.
type slideHandler interface {
	TwoWallAdjust(delta mgl32.Vec3, hit movement.Hit, oldHitNormal mgl32.Vec3) mgl32.Vec3
	HandleSlopeBoosting(slide, delta mgl32.Vec3, time float32, normal mgl32.Vec3, hit movement.Hit) mgl32.Vec3
}

// World is a flat ground at z = 0 with ramps laid on top of it and boxes standing on it. Ramps are
// floors, boxes are walls and ceilings. It implements movement.World for a single capsule.
type World struct {
	Ramps     []Ramp
	Obstacles []cube.BBox
	// Material is the material of the whole ground. Ground without a material does not scale
	// source-style friction.
	Material *Material

	capsule    *Capsule
	walkableZ  float32
	stepHeight float32
	handler    slideHandler
}

// NewWorld creates a world for the capsule passed. The walkable floor angle and step height are
// taken from cfg.
func NewWorld(cfg movement.Config, capsule *Capsule, ramps []Ramp, obstacles []cube.BBox) *World {
	return &World{
		Ramps:      ramps,
		Obstacles:  obstacles,
		capsule:    capsule,
		walkableZ:  math32.Cos(mgl32.DegToRad(cfg.WalkableFloorAngle)),
		stepHeight: cfg.MaxStepHeight,
	}
}

// Capsule returns the capsule moved in the world.
func (w *World) Capsule() *Capsule {
	return w.capsule
}

// bind makes slides call back into the mover passed.
func (w *World) bind(h slideHandler) {
	w.handler = h
}

// Ground returns the height and normal of the ground at x. Where ramps overlap, the highest one
// is the ground.
func (w *World) Ground(x float32) (float32, mgl32.Vec3) {
	z, n := float32(0), game.Up
	for _, r := range w.Ramps {
		if !r.Contains(x) {
			continue
		}
		if rz := r.SurfaceZ(x); rz > z {
			z, n = rz, r.Normal()
		}
	}
	return z, n
}

// FindFloor returns the ground under a capsule centred at pos.
func (w *World) FindFloor(pos mgl32.Vec3) movement.FloorContact {
	_, halfHeight := w.capsule.CapsuleSize()
	groundZ, n := w.Ground(pos.X())
	dist := pos.Z() - halfHeight*w.capsule.Scale() - groundZ

	floor := movement.FloorContact{
		ImpactNormal: n,
		Normal:       n,
		Distance:     dist,
	}
	if w.Material != nil {
		floor.Friction, floor.HasMaterial = w.Material.Friction, true
	}
	floor.Blocking = dist >= -w.stepHeight && dist <= w.stepHeight+maxFloorDist
	floor.Walkable = floor.Blocking && n.Z() >= w.walkableZ
	return floor
}

// SlideAlongSurface moves the capsule along the surface hit. If the slide runs into a second
// surface, the slide is adjusted for both and attempted once more. It returns the fraction of
// delta applied.
func (w *World) SlideAlongSurface(delta mgl32.Vec3, time float32, normal mgl32.Vec3, hit movement.Hit) float32 {
	slide := delta.Sub(normal.Mul(delta.Dot(normal))).Mul(time)
	if slide.Z() > 0 && w.handler != nil {
		slide = w.handler.HandleSlopeBoosting(slide, delta, time, normal, hit)
	}
	if slide.Dot(delta) <= 0 {
		return 0
	}

	first, n, blocked := w.move(slide)
	applied := first
	if blocked {
		second := movement.Hit{Normal: n, ImpactNormal: n, Time: first, Blocking: true}
		if w.handler != nil {
			slide = w.handler.TwoWallAdjust(slide, second, normal)
		} else {
			slide = w.TwoWallAdjust(slide, second, normal)
		}
		if slide.LenSqr() > 1e-6 && slide.Dot(delta) > 0 {
			t, _, _ := w.move(slide)
			applied += t * (1 - first)
		}
	}
	return omath.ClampFloat(applied, 0, 1)
}

// TwoWallAdjust computes a move along two surfaces hit one after the other.
func (w *World) TwoWallAdjust(delta mgl32.Vec3, hit movement.Hit, oldHitNormal mgl32.Vec3) mgl32.Vec3 {
	desired := delta
	if oldHitNormal.Dot(hit.Normal) <= 0 {
		// The surfaces form a corner of 90 degrees or less: move along the crease.
		dir := omath.SafeNormal(hit.Normal.Cross(oldHitNormal))
		delta = dir.Mul(delta.Dot(dir) * (1 - hit.Time))
		if desired.Dot(delta) < 0 {
			delta = delta.Mul(-1)
		}
		return delta
	}

	delta = delta.Sub(hit.Normal.Mul(delta.Dot(hit.Normal))).Mul(1 - hit.Time)
	if delta.Dot(desired) <= 0 {
		return mgl32.Vec3{}
	}
	if math32.Abs(hit.Normal.Dot(oldHitNormal)-1) < game.KindaSmallNumber {
		// Nudge away from a surface hit twice.
		delta = delta.Add(hit.Normal.Mul(0.01))
	}
	return delta
}

// Encroached returns true if a capsule of the given size centred at pos overlaps an obstacle.
func (w *World) Encroached(pos mgl32.Vec3, radius, halfHeight float32) bool {
	scale := w.capsule.Scale()
	return cube.AnyIntersections(w.Obstacles, capsuleBox(pos, radius*scale, halfHeight*scale))
}

// ledge sweeps a capsule centred at pos by the horizontal part of delta against ramp edges rising
// more than a step above its feet. It returns the fraction of delta that can be applied and the
// normal of the edge hit, if any.
func (w *World) ledge(pos, delta mgl32.Vec3) (float32, mgl32.Vec3, bool) {
	dx := delta.X()
	if dx == 0 {
		return 1, mgl32.Vec3{}, false
	}
	radius, feet := w.footprint(pos)
	dir := math32.Copysign(1, dx)
	lead := pos.X() + dir*radius

	best, hit := float32(1), false
	for _, r := range w.Ramps {
		for _, edge := range [2]float32{r.MinX, r.MaxX} {
			t := (edge - lead) / dx
			if t < 0 || t >= best {
				continue
			}
			// Ramps cover [MinX, MaxX), so the ground behind an edge passed going -X is just below it.
			beyond := edge
			if dir < 0 {
				beyond -= skinWidth
			}
			if z, _ := w.Ground(beyond); z-feet > w.stepHeight {
				best, hit = t, true
			}
		}
	}
	if !hit {
		return 1, mgl32.Vec3{}, false
	}
	return math32.Max(0, best-skinWidth/math32.Abs(dx)), mgl32.Vec3{-dir, 0, 0}, true
}

// pushOut moves the capsule out of ground rising more than a step above its feet, to the closest
// side where the ground is low enough. It returns the normal of the edge the capsule was pushed
// away from.
func (w *World) pushOut() (mgl32.Vec3, bool) {
	pos := w.capsule.Position()
	radius, feet := w.footprint(pos)

	best, target, found := math32.Inf(1), pos.X(), false
	for _, r := range w.Ramps {
		for _, edge := range [2]float32{r.MinX, r.MaxX} {
			for _, dir := range [2]float32{-1, 1} {
				x := edge + dir*(radius+skinWidth)
				if z, _ := w.Ground(x); z-feet > w.stepHeight {
					continue
				}
				if d := math32.Abs(x - pos.X()); d < best {
					best, target, found = d, x, true
				}
			}
		}
	}
	if !found {
		return mgl32.Vec3{}, false
	}
	w.capsule.SetPosition(mgl32.Vec3{target, pos.Y(), pos.Z()})
	return mgl32.Vec3{math32.Copysign(1, target-pos.X()), 0, 0}, true
}

// footprint returns the scaled radius of a capsule centred at pos and the height of its feet.
func (w *World) footprint(pos mgl32.Vec3) (float32, float32) {
	radius, halfHeight := w.capsule.CapsuleSize()
	scale := w.capsule.Scale()
	return radius * scale, pos.Z() - halfHeight*scale
}

// move sweeps the capsule by delta through the obstacles and moves it as far as possible. It
// returns the fraction of delta applied and the normal of the obstacle hit, if any.
func (w *World) move(delta mgl32.Vec3) (float32, mgl32.Vec3, bool) {
	t, n, hit := sweep(w.capsule.BoundingBox(), delta, w.Obstacles)
	w.capsule.Move(delta.Mul(t))
	return t, n, hit
}
