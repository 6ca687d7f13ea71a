package sandbox

import (
	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-gl/mathgl/mgl32"
)

// skinWidth is the gap kept between a moving box and whatever it hits.
const skinWidth = float32(0.01)

// sweepBox returns the fraction of delta box can move before it hits obstacle, and the normal of
// the face hit. Boxes that already overlap or only touch without moving into each other do not
// collide.
func sweepBox(box cube.BBox, delta mgl32.Vec3, obstacle cube.BBox) (float32, mgl32.Vec3, bool) {
	enter, exit := math32.Inf(-1), math32.Inf(1)
	var normal mgl32.Vec3
	bMin, bMax := box.Min(), box.Max()
	oMin, oMax := obstacle.Min(), obstacle.Max()

	for axis := 0; axis < 3; axis++ {
		if delta[axis] == 0 {
			if bMax[axis] <= oMin[axis] || bMin[axis] >= oMax[axis] {
				return 1, mgl32.Vec3{}, false
			}
			continue
		}
		inv := 1 / delta[axis]
		t0 := (oMin[axis] - bMax[axis]) * inv
		t1 := (oMax[axis] - bMin[axis]) * inv
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > enter {
			enter = t0
			normal = mgl32.Vec3{}
			normal[axis] = -math32.Copysign(1, delta[axis])
		}
		exit = math32.Min(exit, t1)
	}
	if enter > exit || enter < 0 || enter >= 1 {
		return 1, mgl32.Vec3{}, false
	}
	return enter, normal, true
}

// sweep moves box by delta through the obstacles passed and returns the fraction of delta that
// can be applied, keeping a small gap to the first obstacle hit, and the normal of that hit.
func sweep(box cube.BBox, delta mgl32.Vec3, obstacles []cube.BBox) (float32, mgl32.Vec3, bool) {
	if delta.LenSqr() == 0 {
		return 1, mgl32.Vec3{}, false
	}
	best, normal, hit := float32(1), mgl32.Vec3{}, false
	reach := box.Extend(delta)
	for _, o := range obstacles {
		if !reach.IntersectsWith(o) {
			continue
		}
		if t, n, ok := sweepBox(box, delta, o); ok && t < best {
			best, normal, hit = t, n, true
		}
	}
	if !hit {
		return 1, mgl32.Vec3{}, false
	}
	return math32.Max(0, best-skinWidth/delta.Len()), normal, true
}
