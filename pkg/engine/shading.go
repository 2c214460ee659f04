package engine

import "math"

// Lighting model constants. Ambient applies regardless of shadowing so
// unlit surfaces never go fully black; diffuse and specular are cut
// entirely for occluded points (hard shadows, no penumbra).
const (
	ambientStrength  = 0.2
	diffuseStrength  = 0.8
	specularStrength = 0.3
	specularPower    = 32.0

	// shadowBias offsets secondary rays off the surface along the
	// normal to avoid immediate self-intersection.
	shadowBias = 1e-3
	// occlusionMargin keeps hits at the light's own distance from
	// counting as occluders.
	occlusionMargin = 1e-3
)

// backgroundColor is returned for rays that escape the scene
var backgroundColor = Vector3{X: 0.2, Y: 0.3, Z: 0.5}

// occluded reports whether any primitive blocks the segment from point
// toward the light. Objects are tested in scene order with an early
// out.
func occluded(scene *Scene, point, normal, lightDir Vector3, lightDist float64) bool {
	shadowRay := Ray{
		Origin:    point.Add(normal.Mul(shadowBias)),
		Direction: lightDir,
	}

	for _, obj := range scene.Objects {
		if rec, ok := obj.Intersect(shadowRay); ok && rec.T < lightDist-occlusionMargin {
			return true
		}
	}
	return false
}

// shade computes local illumination at a hit point: ambient plus
// Lambertian diffuse on the base color plus a white Blinn-Phong
// highlight, with a binary shadow test zeroing the directional terms.
// viewDir points from the hit back toward the ray origin.
func shade(scene *Scene, rec HitRecord, viewDir Vector3, shadows bool) Vector3 {
	toLight := scene.Light.Position.Sub(rec.Point)
	lightDist := toLight.Length()
	lightDir := toLight.Normalize()

	inShadow := shadows && occluded(scene, rec.Point, rec.Normal, lightDir, lightDist)

	diffuse := 0.0
	if !inShadow {
		diffuse = math.Max(0, rec.Normal.Dot(lightDir))
	}

	color := rec.Color.Mul(ambientStrength + diffuse*diffuseStrength)

	if !inShadow {
		half := lightDir.Add(viewDir).Normalize()
		spec := math.Pow(math.Max(0, rec.Normal.Dot(half)), specularPower)
		color = color.Add(Vector3{X: 1.0, Y: 1.0, Z: 1.0}.Mul(spec * specularStrength))
	}

	return color.Clamp01()
}
