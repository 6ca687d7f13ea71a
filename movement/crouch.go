package movement

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// CanCrouchInCurrentState returns true if the mover can crouch right now.
func (m *Mover) CanCrouchInCurrentState() bool {
	return m.cfg.CanCrouch && (m.IsFalling() || m.IsMovingOnGround())
}

// Crouch shrinks the capsule of the mover to the crouched half height. A capsule that grows to
// reach it is only resized if the new shape is not encroached. Crouching while falling downwards
// also fast-falls.
func (m *Mover) Crouch() {
	if !m.valid() || !m.CanCrouchInCurrentState() {
		return
	}
	m.AttemptFastFall()

	body := m.c.Body
	radius, halfHeight := body.CapsuleSize()
	if halfHeight == m.cfg.CrouchedHalfHeight {
		m.crouched = true
		m.dbg.Notify(DebugModeCrouch, true, "already at crouched half height %.2f", halfHeight)
		if m.c.Owner != nil {
			m.c.Owner.OnStartCrouch(0, 0)
		}
		return
	}

	clamped := math32.Max(0, math32.Max(radius, m.cfg.CrouchedHalfHeight))
	body.SetCapsuleSize(radius, clamped)
	adjust := halfHeight - clamped
	scaled := adjust * body.Scale()

	if clamped > halfHeight {
		if m.c.World.Encroached(body.Position().Sub(mgl32.Vec3{0, 0, scaled}), radius, clamped) {
			body.SetCapsuleSize(radius, halfHeight)
			m.dbg.Notify(DebugModeCrouch, true, "crouch encroached, keeping half height %.2f", halfHeight)
			return
		}
	}
	if m.crouchMaintainsBaseLocation {
		body.Move(mgl32.Vec3{0, 0, -scaled})
	}

	m.crouched = true
	m.forceNextFloorCheck = true
	m.dbg.Notify(DebugModeCrouch, true, "crouched %.2f -> %.2f", halfHeight, clamped)
	if m.c.Owner != nil {
		m.c.Owner.OnStartCrouch(m.cfg.DefaultHalfHeight-clamped, scaled)
	}
}

// UnCrouch grows the capsule of the mover back to the default half height. The mover stays
// crouched if the standing capsule would be encroached.
func (m *Mover) UnCrouch() {
	if !m.valid() || !m.crouched {
		return
	}
	body := m.c.Body
	radius, halfHeight := body.CapsuleSize()
	if halfHeight == m.cfg.DefaultHalfHeight {
		m.crouched = false
		if m.c.Owner != nil {
			m.c.Owner.OnEndCrouch(0, 0)
		}
		return
	}

	adjust := m.cfg.DefaultHalfHeight - halfHeight
	scaled := adjust * body.Scale()
	offset := mgl32.Vec3{}
	if m.crouchMaintainsBaseLocation {
		offset = mgl32.Vec3{0, 0, scaled}
	}
	if m.c.World.Encroached(body.Position().Add(offset), radius, m.cfg.DefaultHalfHeight) {
		m.dbg.Notify(DebugModeCrouch, true, "uncrouch encroached, staying crouched")
		return
	}

	body.SetCapsuleSize(radius, m.cfg.DefaultHalfHeight)
	body.Move(offset)
	m.crouched = false
	m.forceNextFloorCheck = true
	m.dbg.Notify(DebugModeCrouch, true, "uncrouched %.2f -> %.2f", halfHeight, m.cfg.DefaultHalfHeight)
	if m.c.Owner != nil {
		m.c.Owner.OnEndCrouch(adjust, scaled)
	}
}

// AttemptFastFall clamps the downward velocity of a falling mover to Config.FastFallZVelocity. It
// returns true if the mover was falling downwards.
func (m *Mover) AttemptFastFall() bool {
	if !m.IsFalling() || m.velocity.Z() > 0 {
		return false
	}
	m.velocity[2] = math32.Min(m.velocity.Z(), m.cfg.FastFallZVelocity)
	m.dbg.Notify(DebugModeCrouch, true, "fast fall vz=%.2f", m.velocity.Z())
	return true
}
