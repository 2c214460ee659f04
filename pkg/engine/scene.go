package engine

// Room extents in world units. The box spans [0, roomWidth] on x,
// [0, roomHeight] on y and [0, roomDepth] on z and is open on the +z
// side where the camera starts.
const (
	roomWidth  = 5.0
	roomHeight = 3.0
	roomDepth  = 5.0
)

// wallReflectivity is the mirror blend factor of the room planes. The
// spheres stay at zero and never spawn reflection rays; only walls,
// floor and ceiling pick up a faint reflected tint.
const wallReflectivity = 0.05

// Camera describes the eye position and the point it looks at
type Camera struct {
	Position Vector3
	LookAt   Vector3
	FOV      float64 // vertical field of view in degrees
}

// viewBasis is the orthonormal frame derived from a camera once per
// frame
type viewBasis struct {
	forward Vector3
	right   Vector3
	up      Vector3
}

// basis derives the camera frame from position and look-at. When
// forward lines up with the world up axis the cross product
// degenerates; an alternate up axis is substituted before recomputing.
func (c Camera) basis() viewBasis {
	forward := c.LookAt.Sub(c.Position).Normalize()
	worldUp := Vector3{X: 0, Y: 1, Z: 0}
	right := forward.Cross(worldUp).Normalize()
	if right.Dot(right) < 1e-6 {
		worldUp = Vector3{X: 0, Y: 0, Z: 1}
		right = forward.Cross(worldUp).Normalize()
	}
	up := right.Cross(forward).Normalize()

	return viewBasis{forward: forward, right: right, up: up}
}

// Light is a point light with implicit unit intensity
type Light struct {
	Position Vector3
}

// Scene is the immutable snapshot handed to the raytracer for one
// frame: the primitive list plus the camera and light state. Objects
// keeps every sphere ahead of every plane so that exact hit-distance
// ties resolve to the sphere.
type Scene struct {
	Objects []Primitive
	Camera  Camera
	Light   Light
}

// NewRoomScene builds the fixed demo scene: two spheres standing on the
// floor of the room, a point light near the ceiling and the camera
// outside the open side looking in along -z.
func NewRoomScene() *Scene {
	room := Bounds{
		Min: Vector3{X: 0, Y: 0, Z: 0},
		Max: Vector3{X: roomWidth, Y: roomHeight, Z: roomDepth},
	}

	const sphereRadius = 0.9
	white := Vector3{X: 1.0, Y: 1.0, Z: 1.0}

	objects := []Primitive{
		Sphere{
			Center: Vector3{X: 1.5, Y: sphereRadius, Z: 2.5},
			Radius: sphereRadius,
			Color:  Vector3{X: 1.0, Y: 0.1, Z: 0.1},
		},
		Sphere{
			Center: Vector3{X: 3.5, Y: sphereRadius, Z: 3.5},
			Radius: sphereRadius,
			Color:  Vector3{X: 0.1, Y: 0.1, Z: 1.0},
		},
		// Floor
		Plane{
			Normal:       Vector3{X: 0, Y: 1, Z: 0},
			D:            0,
			Color:        Vector3{X: 0.45, Y: 0.30, Z: 0.15},
			Reflectivity: wallReflectivity,
			Bounds:       room,
		},
		// Ceiling
		Plane{
			Normal:       Vector3{X: 0, Y: -1, Z: 0},
			D:            roomHeight,
			Color:        white,
			Reflectivity: wallReflectivity,
			Bounds:       room,
		},
		// Back wall
		Plane{
			Normal:       Vector3{X: 0, Y: 0, Z: 1},
			D:            0,
			Color:        white,
			Reflectivity: wallReflectivity,
			Bounds:       room,
		},
		// Right wall
		Plane{
			Normal:       Vector3{X: -1, Y: 0, Z: 0},
			D:            roomWidth,
			Color:        white,
			Reflectivity: wallReflectivity,
			Bounds:       room,
		},
		// Left wall
		Plane{
			Normal:       Vector3{X: 1, Y: 0, Z: 0},
			D:            0,
			Color:        white,
			Reflectivity: wallReflectivity,
			Bounds:       room,
		},
	}

	return &Scene{
		Objects: objects,
		Camera: Camera{
			Position: Vector3{X: 2.5, Y: 1.5, Z: 8.0},
			LookAt:   Vector3{X: 2.5, Y: 1.5, Z: 0.0},
			FOV:      45.0,
		},
		Light: Light{
			Position: Vector3{X: 2.5, Y: 3.0, Z: 6.0},
		},
	}
}
