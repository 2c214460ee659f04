package engine

import "math"

const (
	// hitEpsilon is the minimum accepted hit distance; anything closer
	// counts as self-intersection and is rejected.
	hitEpsilon = 1e-4
	// parallelEpsilon rejects rays running parallel to a plane,
	// including rays lying in the plane itself.
	parallelEpsilon = 1e-6
	// boundsEpsilon is the per-axis tolerance of the room bounds test.
	boundsEpsilon = 1e-3
)

// HitRecord describes an intersection along a ray
type HitRecord struct {
	T            float64
	Point        Vector3
	Normal       Vector3
	Color        Vector3
	Reflectivity float64
}

// Primitive is a scene object a ray can be tested against
type Primitive interface {
	// Intersect reports the nearest hit beyond hitEpsilon, if any
	Intersect(ray Ray) (HitRecord, bool)
}

var (
	_ Primitive = Sphere{}
	_ Primitive = Plane{}
)

// Sphere is a solid sphere primitive
type Sphere struct {
	Center       Vector3
	Radius       float64
	Color        Vector3
	Reflectivity float64
}

// Intersect solves the ray/sphere quadratic. The near root is
// preferred; when it falls below hitEpsilon (grazing hit or origin
// inside the sphere) the far root is tried instead.
func (s Sphere) Intersect(ray Ray) (HitRecord, bool) {
	oc := ray.Origin.Sub(s.Center)
	a := ray.Direction.Dot(ray.Direction)
	b := 2.0 * oc.Dot(ray.Direction)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := b*b - 4*a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}

	sqrtDisc := math.Sqrt(discriminant)
	t := (-b - sqrtDisc) / (2.0 * a)
	if t < hitEpsilon {
		t = (-b + sqrtDisc) / (2.0 * a)
	}
	if t < hitEpsilon {
		return HitRecord{}, false
	}

	point := ray.At(t)
	return HitRecord{
		T:            t,
		Point:        point,
		Normal:       point.Sub(s.Center).Normalize(),
		Color:        s.Color,
		Reflectivity: s.Reflectivity,
	}, true
}

// Bounds is an axis-aligned box
type Bounds struct {
	Min, Max Vector3
}

// Contains reports whether p lies inside the box with tolerance eps on
// every axis
func (b Bounds) Contains(p Vector3, eps float64) bool {
	return p.X >= b.Min.X-eps && p.X <= b.Max.X+eps &&
		p.Y >= b.Min.Y-eps && p.Y <= b.Max.Y+eps &&
		p.Z >= b.Min.Z-eps && p.Z <= b.Max.Z+eps
}

// Plane is a wall, floor or ceiling: an infinite plane n·p + d = 0 cut
// down to the finite quad inside Bounds. Normal points toward the room
// interior.
type Plane struct {
	Normal       Vector3
	D            float64
	Color        Vector3
	Reflectivity float64
	Bounds       Bounds
}

// Intersect solves the plane equation for t and rejects parallel rays,
// hits behind the origin and hits outside Bounds.
func (p Plane) Intersect(ray Ray) (HitRecord, bool) {
	denom := p.Normal.Dot(ray.Direction)
	if math.Abs(denom) < parallelEpsilon {
		return HitRecord{}, false
	}

	t := -(p.Normal.Dot(ray.Origin) + p.D) / denom
	if t < hitEpsilon {
		return HitRecord{}, false
	}

	point := ray.At(t)
	if !p.Bounds.Contains(point, boundsEpsilon) {
		return HitRecord{}, false
	}

	return HitRecord{
		T:            t,
		Point:        point,
		Normal:       p.Normal,
		Color:        p.Color,
		Reflectivity: p.Reflectivity,
	}, true
}
