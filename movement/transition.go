package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/hopsim/game"
	"github.com/oomph-ac/hopsim/omath"
)

// SetMovementMode changes the movement mode of the mover and reacts to the change. The custom mode
// is only used with ModeCustom. It returns false if the change was refused, in which case the
// previous mode is kept.
func (m *Mover) SetMovementMode(mode Mode, custom uint8) bool {
	if mode != ModeCustom {
		custom = 0
	}
	if !m.valid() || (m.mode == mode && m.customMode == custom) {
		return false
	}

	prev, prevCustom := m.mode, m.customMode
	m.mode, m.customMode = mode, custom
	if !m.onMovementModeChanged(prev, prevCustom) {
		m.mode, m.customMode = prev, prevCustom
		m.dbg.Notify(DebugModeTransition, true, "%s -> %s refused", prev, mode)
		return false
	}
	m.dbg.Notify(DebugModeTransition, true, "%s -> %s vel=%v", prev, mode, m.velocity)
	return true
}

func (m *Mover) onMovementModeChanged(prev Mode, prevCustom uint8) bool {
	if m.mode == ModeNavWalking {
		m.groundMode = m.mode
		m.velocity[2] = 0
		m.navWalkingPhysics = true
	} else if prev == ModeNavWalking {
		if m.mode == ModeWalking {
			if m.c.NavWalker != nil && !m.c.NavWalker.TryLeaveNavWalking() {
				return false
			}
		}
		m.navWalkingPhysics = false
	}

	if m.mode == ModeWalking {
		m.landingFrictionCounter = 1
		m.crouchMaintainsBaseLocation = true
		m.groundMode = m.mode
		m.currentFloor = m.c.World.FindFloor(m.c.Body.Position())

		if m.cfg.MaintainVerticalAirVelocity {
			// Vertical speed is converted into planar speed along the slope of the new floor.
			n := m.currentFloor.ImpactNormal
			force := m.velocity.Z() * (1 - n.Dot(game.Up))
			add := omath.SafeNormal2D(n).Mul(force)
			m.velocity[2] = 0
			if force < 0 {
				add = add.Mul(-1)
			}
			m.velocity = m.velocity.Add(add)
		} else {
			m.velocity[2] = 0
		}
	} else {
		if prev != ModeFalling {
			m.exitFloor = m.currentFloor
		}
		m.currentFloor.Clear()
		m.crouchMaintainsBaseLocation = false

		if m.mode == ModeFalling {
			if m.c.Owner != nil {
				m.velocity = m.velocity.Add(m.c.Owner.ImpartedBaseVelocity())
				m.c.Owner.Falling()
			}
		} else if m.mode == ModeNone {
			m.velocity = mgl32.Vec3{}
			m.acceleration = mgl32.Vec3{}
			if m.c.Owner != nil {
				m.c.Owner.ResetJumpState()
			}
			m.ClearAccumulatedForces()
		}
	}

	if m.mode == ModeFalling && prev != ModeFalling {
		if m.cfg.MaintainVerticalGroundVelocity {
			// Planar speed on a slope is converted into vertical speed, so running off the top of
			// a ramp launches the mover.
			slope := -m.exitFloor.ImpactNormal.Dot(omath.SafeNormal2D(m.velocity))
			m.velocity[2] += omath.Size2D(m.velocity) * slope

			if minJump := m.cfg.JumpZVelocity * m.cfg.MinJumpScale; m.cfg.EnforceMinJump && m.pressedJump && m.velocity.Z() < minJump {
				m.velocity[2] = minJump
			}
		}
		if m.c.PathFollower != nil {
			m.c.PathFollower.OnStartedFalling()
		}
	}

	if m.c.Owner != nil {
		m.c.Owner.OnMovementModeChanged(prev, prevCustom)
	}
	return true
}

// ShouldCatchAir returns true if the mover should start falling when moving from the old floor to
// the new one. A request made by SlideAlongSurface is consumed by this call.
func (m *Mover) ShouldCatchAir(old, new FloorContact) bool {
	if m.shouldCatchAir {
		m.shouldCatchAir = false
		m.dbg.Notify(DebugModeCollision, true, "catching air (old normal %v, new normal %v)", old.ImpactNormal, new.ImpactNormal)
		return true
	}
	return false
}

// CanAttemptJump returns true if the mover is allowed to start a jump.
func (m *Mover) CanAttemptJump() bool {
	return m.cfg.JumpAllowed && (m.IsMovingOnGround() || m.IsFalling())
}

// DoJump makes a mover on the ground jump. It returns true if the mover jumped.
func (m *Mover) DoJump() bool {
	if !m.valid() || !m.CanAttemptJump() || !m.IsMovingOnGround() {
		return false
	}
	m.velocity[2] = math32.Max(m.velocity.Z(), m.cfg.JumpZVelocity)
	m.SetMovementMode(ModeFalling, 0)
	return true
}
