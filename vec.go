package rast

import "github.com/chewxy/math32"

// Vec2 represents a 2D vector, typically used for texture coordinates.
// Components are float32, matching the precision of the pipeline.
type Vec2 struct {
	X, Y float32
}

// V2 is a convenience function to create a Vec2.
func V2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns the sum of two vectors.
func (v Vec2) Add(w Vec2) Vec2 {
	return Vec2{X: v.X + w.X, Y: v.Y + w.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(w Vec2) Vec2 {
	return Vec2{X: v.X - w.X, Y: v.Y - w.Y}
}

// Mul returns the vector scaled by a scalar.
func (v Vec2) Mul(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product of two vectors.
func (v Vec2) Dot(w Vec2) float32 {
	return v.X*w.X + v.Y*w.Y
}

// Cross returns the 2D cross product (scalar).
// This is the z-component of the 3D cross product with z=0.
func (v Vec2) Cross(w Vec2) float32 {
	return v.X*w.Y - v.Y*w.X
}

// Length returns the length (magnitude) of the vector.
func (v Vec2) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Lerp performs linear interpolation between two vectors.
func (v Vec2) Lerp(w Vec2, t float32) Vec2 {
	return Vec2{X: v.X + (w.X-v.X)*t, Y: v.Y + (w.Y-v.Y)*t}
}

// Combine implements the Varying capability for Vec2.
func (v Vec2) Combine(b, c Vec2, w0, w1, w2 float32) Vec2 {
	return Vec2{
		X: v.X*w0 + b.X*w1 + c.X*w2,
		Y: v.Y*w0 + b.Y*w1 + c.Y*w2,
	}
}

// Vec3 represents a 3D vector, typically a position, normal or direction.
type Vec3 struct {
	X, Y, Z float32
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Sub returns the difference of two vectors.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z}
}

// Mul returns the vector scaled by a scalar.
func (v Vec3) Mul(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Neg returns the negation of the vector.
func (v Vec3) Neg() Vec3 {
	return Vec3{X: -v.X, Y: -v.Y, Z: -v.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product of two vectors.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{
		X: v.Y*w.Z - v.Z*w.Y,
		Y: v.Z*w.X - v.X*w.Z,
		Z: v.X*w.Y - v.Y*w.X,
	}
}

// Length returns the length (magnitude) of the vector.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Normalize returns a unit vector in the same direction.
// Returns zero vector if the original vector has zero length.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return Vec3{X: v.X / length, Y: v.Y / length, Z: v.Z / length}
}

// Lerp performs linear interpolation between two vectors.
func (v Vec3) Lerp(w Vec3, t float32) Vec3 {
	return Vec3{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
	}
}

// Combine implements the Varying capability for Vec3.
func (v Vec3) Combine(b, c Vec3, w0, w1, w2 float32) Vec3 {
	return Vec3{
		X: v.X*w0 + b.X*w1 + c.X*w2,
		Y: v.Y*w0 + b.Y*w1 + c.Y*w2,
		Z: v.Z*w0 + b.Z*w1 + c.Z*w2,
	}
}

// Vec4 represents a 4D homogeneous vector. The vertex stage returns
// positions as Vec4 in clip space, before the perspective divide.
type Vec4 struct {
	X, Y, Z, W float32
}

// V4 is a convenience function to create a Vec4.
func V4(x, y, z, w float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: w}
}

// Add returns the sum of two vectors.
func (v Vec4) Add(w Vec4) Vec4 {
	return Vec4{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z, W: v.W + w.W}
}

// Sub returns the difference of two vectors.
func (v Vec4) Sub(w Vec4) Vec4 {
	return Vec4{X: v.X - w.X, Y: v.Y - w.Y, Z: v.Z - w.Z, W: v.W - w.W}
}

// Mul returns the vector scaled by a scalar.
func (v Vec4) Mul(s float32) Vec4 {
	return Vec4{X: v.X * s, Y: v.Y * s, Z: v.Z * s, W: v.W * s}
}

// Dot returns the dot product of two vectors.
func (v Vec4) Dot(w Vec4) float32 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z + v.W*w.W
}

// Vec3 returns the x, y, z components, dropping w.
func (v Vec4) Vec3() Vec3 {
	return Vec3{X: v.X, Y: v.Y, Z: v.Z}
}

// Lerp performs linear interpolation between two vectors.
func (v Vec4) Lerp(w Vec4, t float32) Vec4 {
	return Vec4{
		X: v.X + (w.X-v.X)*t,
		Y: v.Y + (w.Y-v.Y)*t,
		Z: v.Z + (w.Z-v.Z)*t,
		W: v.W + (w.W-v.W)*t,
	}
}

// Combine implements the Varying capability for Vec4.
func (v Vec4) Combine(b, c Vec4, w0, w1, w2 float32) Vec4 {
	return Vec4{
		X: v.X*w0 + b.X*w1 + c.X*w2,
		Y: v.Y*w0 + b.Y*w1 + c.Y*w2,
		Z: v.Z*w0 + b.Z*w1 + c.Z*w2,
		W: v.W*w0 + b.W*w1 + c.W*w2,
	}
}

// Point3 creates a Vec4 position from 3D coordinates with w = 1.
func Point3(x, y, z float32) Vec4 {
	return Vec4{X: x, Y: y, Z: z, W: 1}
}

// Float32 is a scalar that implements the Varying capability,
// for programs whose only interpolated quantity is a single number
// (e.g. a light intensity).
type Float32 float32

// Combine implements the Varying capability for Float32.
func (f Float32) Combine(b, c Float32, w0, w1, w2 float32) Float32 {
	return Float32(float32(f)*w0 + float32(b)*w1 + float32(c)*w2)
}

// NoVarying is the empty varying, for programs whose fragment stage
// needs no interpolated data (e.g. a solid fill).
type NoVarying struct{}

// Combine implements the Varying capability for NoVarying.
func (NoVarying) Combine(_, _ NoVarying, _, _, _ float32) NoVarying {
	return NoVarying{}
}
