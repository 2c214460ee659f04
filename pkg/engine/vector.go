package engine

import "math"

// normalizeEpsilon is the squared length below which a vector is
// considered degenerate. Normalizing such a vector yields the zero
// vector instead of dividing by a vanishing magnitude.
const normalizeEpsilon = 1e-8

// Vector3 represents a 3D vector
type Vector3 struct {
	X, Y, Z float64
}

// Add adds two vectors
func (v Vector3) Add(other Vector3) Vector3 {
	return Vector3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

// Sub subtracts a vector from another
func (v Vector3) Sub(other Vector3) Vector3 {
	return Vector3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

// Mul multiplies a vector by a scalar
func (v Vector3) Mul(scalar float64) Vector3 {
	return Vector3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

// Dot calculates the dot product of two vectors
func (v Vector3) Dot(other Vector3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Cross calculates the cross product of two vectors
func (v Vector3) Cross(other Vector3) Vector3 {
	return Vector3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

// Length returns the length of the vector
func (v Vector3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns a normalized (unit) vector. Degenerate vectors
// collapse to the zero vector.
func (v Vector3) Normalize() Vector3 {
	lenSq := v.Dot(v)
	if lenSq <= normalizeEpsilon {
		return Vector3{}
	}
	return v.Mul(1.0 / math.Sqrt(lenSq))
}

// Clamp01 clamps each component to [0, 1], the valid color range
func (v Vector3) Clamp01() Vector3 {
	return Vector3{
		X: clamp01(v.X),
		Y: clamp01(v.Y),
		Z: clamp01(v.Z),
	}
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Ray represents a ray in 3D space. Callers normalize Direction before
// intersection testing.
type Ray struct {
	Origin    Vector3
	Direction Vector3
}

// At returns the point at distance t along the ray
func (r Ray) At(t float64) Vector3 {
	return r.Origin.Add(r.Direction.Mul(t))
}
