package engine

import "testing"

func TestNewRoomSceneOrdering(t *testing.T) {
	scene := NewRoomScene()

	if len(scene.Objects) != 7 {
		t.Fatalf("object count = %d, want 7", len(scene.Objects))
	}

	// Spheres come first so equal-distance hits resolve to them
	for i := 0; i < 2; i++ {
		if _, ok := scene.Objects[i].(Sphere); !ok {
			t.Errorf("object %d = %T, want Sphere", i, scene.Objects[i])
		}
	}
	for i := 2; i < 7; i++ {
		if _, ok := scene.Objects[i].(Plane); !ok {
			t.Errorf("object %d = %T, want Plane", i, scene.Objects[i])
		}
	}
}

func TestNewRoomSceneDefaults(t *testing.T) {
	scene := NewRoomScene()

	if !vecAlmostEqual(scene.Camera.Position, Vector3{X: 2.5, Y: 1.5, Z: 8}) {
		t.Errorf("camera position = %v", scene.Camera.Position)
	}
	if !vecAlmostEqual(scene.Camera.LookAt, Vector3{X: 2.5, Y: 1.5, Z: 0}) {
		t.Errorf("camera look-at = %v", scene.Camera.LookAt)
	}
	if !almostEqual(scene.Camera.FOV, 45) {
		t.Errorf("fov = %v, want 45", scene.Camera.FOV)
	}
	if !vecAlmostEqual(scene.Light.Position, Vector3{X: 2.5, Y: 3, Z: 6}) {
		t.Errorf("light position = %v", scene.Light.Position)
	}
}

func TestOnlyPlanesReflect(t *testing.T) {
	scene := NewRoomScene()

	for i, obj := range scene.Objects {
		switch p := obj.(type) {
		case Sphere:
			if p.Reflectivity != 0 {
				t.Errorf("sphere %d reflectivity = %v, want 0", i, p.Reflectivity)
			}
		case Plane:
			if !almostEqual(p.Reflectivity, 0.05) {
				t.Errorf("plane %d reflectivity = %v, want 0.05", i, p.Reflectivity)
			}
		}
	}
}

func TestCameraBasis(t *testing.T) {
	cam := Camera{
		Position: Vector3{X: 2.5, Y: 1.5, Z: 8},
		LookAt:   Vector3{X: 2.5, Y: 1.5, Z: 0},
		FOV:      45,
	}
	b := cam.basis()

	if !vecAlmostEqual(b.forward, Vector3{Z: -1}) {
		t.Errorf("forward = %v, want -z", b.forward)
	}
	if !vecAlmostEqual(b.right, Vector3{X: 1}) {
		t.Errorf("right = %v, want +x", b.right)
	}
	if !vecAlmostEqual(b.up, Vector3{Y: 1}) {
		t.Errorf("up = %v, want +y", b.up)
	}
}

func TestCameraBasisLookingStraightUp(t *testing.T) {
	// The default up axis is parallel to the view direction here; the
	// fallback axis must still produce an orthonormal frame.
	cam := Camera{
		Position: Vector3{},
		LookAt:   Vector3{Y: 1},
		FOV:      45,
	}
	b := cam.basis()

	if !vecAlmostEqual(b.forward, Vector3{Y: 1}) {
		t.Errorf("forward = %v", b.forward)
	}
	if !vecAlmostEqual(b.right, Vector3{X: 1}) {
		t.Errorf("right = %v", b.right)
	}
	if !vecAlmostEqual(b.up, Vector3{Z: 1}) {
		t.Errorf("up = %v", b.up)
	}
	if !almostEqual(b.right.Dot(b.forward), 0) || !almostEqual(b.up.Dot(b.forward), 0) {
		t.Error("basis is not orthogonal")
	}
}
