package geom

import "math"

// Vec3 is a 3-component vector: a voxel-space or reference-space point,
// or a direction between two such points.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v+other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{v.X + other.X, v.Y + other.Y, v.Z + other.Z}
}

// Sub returns v-other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{v.X - other.X, v.Y - other.Y, v.Z - other.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and other.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Vec4 is a homogeneous 4-component vector, used as the operand and
// result of Apply4x4.
type Vec4 struct {
	X, Y, Z, W float64
}

// Vec4From3 lifts a Vec3 to a homogeneous point (w=1).
func Vec4From3(v Vec3) Vec4 {
	return Vec4{v.X, v.Y, v.Z, 1}
}

// Vec3 projects a homogeneous Vec4 back to 3 components, dividing by W.
// If W is zero the result is the unprojected X, Y, Z (a direction, not
// a point).
func (v Vec4) Vec3() Vec3 {
	if v.W == 0 {
		return Vec3{v.X, v.Y, v.Z}
	}
	invW := 1 / v.W
	return Vec3{v.X * invW, v.Y * invW, v.Z * invW}
}

// RoundHalfAwayFromZero rounds x to the nearest integer, ties away from
// zero — the rounding rule spec'd for output-volume index conversion,
// matching existing reference output rather than banker's rounding.
func RoundHalfAwayFromZero(x float64) int {
	if x >= 0 {
		return int(math.Floor(x + 0.5))
	}
	return -int(math.Floor(-x + 0.5))
}
