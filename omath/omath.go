package omath

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

const degenerateSqr = float32(1e-8)

// AngleBetween returns the angle between two vectors in radians. A (near) zero vector has no
// direction, so the angle against it is 0.
func AngleBetween(a, b mgl32.Vec3) float32 {
	lengthProduct := a.Len() * b.Len()
	if lengthProduct <= degenerateSqr {
		return 0
	}
	return math32.Acos(ClampFloat(a.Dot(b)/lengthProduct, -1, 1))
}

// AngleBetweenDeg is AngleBetween in degrees.
func AngleBetweenDeg(a, b mgl32.Vec3) float32 {
	return mgl32.RadToDeg(AngleBetween(a, b))
}

// SafeNormal returns the unit vector of v, or the zero vector if v is too small to normalize.
func SafeNormal(v mgl32.Vec3) mgl32.Vec3 {
	lenSqr := v.LenSqr()
	if lenSqr == 1 {
		return v
	} else if lenSqr < degenerateSqr {
		return mgl32.Vec3{}
	}
	return v.Mul(1 / math32.Sqrt(lenSqr))
}

// SafeNormal2D returns the unit vector of v on the XY plane, or the zero vector if the planar
// part of v is too small to normalize.
func SafeNormal2D(v mgl32.Vec3) mgl32.Vec3 {
	return SafeNormal(mgl32.Vec3{v.X(), v.Y(), 0})
}

// Size2D returns the planar length of v.
func Size2D(v mgl32.Vec3) float32 {
	return math32.Sqrt(SizeSquared2D(v))
}

// SizeSquared2D returns the squared planar length of v.
func SizeSquared2D(v mgl32.Vec3) float32 {
	return v.X()*v.X() + v.Y()*v.Y()
}

// ClampToMaxSize scales v down so that its length does not exceed max.
func ClampToMaxSize(v mgl32.Vec3, max float32) mgl32.Vec3 {
	if max < KindaSmall {
		return mgl32.Vec3{}
	}
	lenSqr := v.LenSqr()
	if lenSqr > max*max {
		return v.Mul(max / math32.Sqrt(lenSqr))
	}
	return v
}

// ClampToMaxSize2D scales the planar part of v down so that its planar length does not exceed
// max. The Z component is kept as is.
func ClampToMaxSize2D(v mgl32.Vec3, max float32) mgl32.Vec3 {
	if max < KindaSmall {
		return mgl32.Vec3{0, 0, v.Z()}
	}
	lenSqr := SizeSquared2D(v)
	if lenSqr > max*max {
		scale := max / math32.Sqrt(lenSqr)
		return mgl32.Vec3{v.X() * scale, v.Y() * scale, v.Z()}
	}
	return v
}

// KindaSmall mirrors the movement tolerance used for clamping sizes.
const KindaSmall = float32(1e-4)

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Float32ApproxEq determines whether two floating point numbers are close enough to each other
// by a threshold of 1e-5.
func Float32ApproxEq(a, b float32) bool {
	return math32.Abs(a-b) <= 1e-5
}

// IsZero returns true if every component of v is exactly zero.
func IsZero(v mgl32.Vec3) bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}
