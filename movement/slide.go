package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/game"
	"github.com/oomph-ac/hopsim/omath"
)

// SlideAlongSurface slides the mover along a surface it hit. Surfaces too steep to walk on but not
// vertical make the mover catch air on the next floor check. It returns the fraction of delta that
// was applied.
func (m *Mover) SlideAlongSurface(delta mgl32.Vec3, time float32, normal mgl32.Vec3, hit Hit) float32 {
	if !m.valid() {
		return 0
	}
	angle := math32.Abs(omath.AngleBetweenDeg(game.Up, hit.ImpactNormal))
	if angle > m.cfg.WalkableFloorAngle && angle < game.CatchAirMaxAngle {
		m.shouldCatchAir = true
		m.dbg.Notify(DebugModeCollision, true, "slide on %.2f degree surface requests catch air", angle)
	}
	return m.c.World.SlideAlongSurface(delta, time, normal, hit)
}

// TwoWallAdjust adjusts a move that is blocked by two surfaces. On the ground, the upward part of
// the move is limited to what the walls allow and to Config.MaxStepHeight, and a move into a
// touched floor does not go downwards.
func (m *Mover) TwoWallAdjust(delta mgl32.Vec3, hit Hit, oldHitNormal mgl32.Vec3) mgl32.Vec3 {
	if !m.valid() {
		return delta
	}
	out := m.c.World.TwoWallAdjust(delta, hit, oldHitNormal)
	if !m.IsMovingOnGround() {
		return out
	}

	if out.Z() > 0 {
		if hit.Normal.Z() <= game.KindaSmallNumber {
			out[2] = 0
			return out
		}
		// Keep the planar move and only climb as much as the wall slope allows.
		scaled := omath.SafeNormal(out).Mul(delta.Len())
		out = mgl32.Vec3{delta.X(), delta.Y(), scaled.Z() / hit.Normal.Z()}.Mul(1 - hit.Time)
		if out.Z() > m.cfg.MaxStepHeight {
			out = out.Mul(m.cfg.MaxStepHeight / out.Z())
		}
	} else if out.Z() < 0 {
		if m.currentFloor.Distance < game.MinFloorDist && m.currentFloor.Blocking {
			out[2] = 0
		}
	}
	m.dbg.Notify(DebugModeCollision, true, "two wall adjust %v -> %v", delta, out)
	return out
}

// HandleSlopeBoosting limits the upward part of a slide off a slope. The mover does not limit it,
// so slopes can be used to gain height.
func (m *Mover) HandleSlopeBoosting(slide, delta mgl32.Vec3, time float32, normal mgl32.Vec3, hit Hit) mgl32.Vec3 {
	return slide
}
