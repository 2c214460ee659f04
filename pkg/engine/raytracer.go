package engine

import (
	"math"
	"runtime"
	"sync"

	"roomtrace/pkg/config"
)

// Raytracer renders scene snapshots into an owned framebuffer. The
// buffer is reused across frames and reallocated only on Resize.
type Raytracer struct {
	config config.RaytracerConfig
	frame  *Framebuffer
	mutex  sync.Mutex
}

// NewRaytracer creates a raytracer with a framebuffer of the given
// size. A non-positive thread count picks the CPU count.
func NewRaytracer(cfg config.RaytracerConfig, width, height int) *Raytracer {
	if cfg.NumThreads <= 0 {
		cfg.NumThreads = runtime.NumCPU()
	}
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = 0
	}

	return &Raytracer{
		config: cfg,
		frame:  NewFramebuffer(width, height),
	}
}

// Resize reallocates the output framebuffer. The next Render fills the
// buffer at the new size.
func (rt *Raytracer) Resize(width, height int) {
	rt.mutex.Lock()
	defer rt.mutex.Unlock()

	rt.frame.Resize(width, height)
}

// Size returns the current framebuffer dimensions
func (rt *Raytracer) Size() (width, height int) {
	rt.mutex.Lock()
	defer rt.mutex.Unlock()

	return rt.frame.Width, rt.frame.Height
}

// Render traces one complete frame of the scene snapshot and returns
// the framebuffer. The buffer is owned by the raytracer and stays valid
// until the next Render or Resize call. The snapshot is read-only for
// the duration of the call; rows are distributed over worker
// goroutines, each pixel depending only on its own camera ray.
func (rt *Raytracer) Render(scene *Scene) *Framebuffer {
	rt.mutex.Lock()
	defer rt.mutex.Unlock()

	basis := scene.Camera.basis()
	width, height := rt.frame.Width, rt.frame.Height
	aspect := float64(width) / float64(height)
	scale := math.Tan(scene.Camera.FOV * 0.5 * math.Pi / 180.0)

	var wg sync.WaitGroup
	numWorkers := rt.config.NumThreads
	rowsPerWorker := height / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if w == numWorkers-1 {
			endRow = height
		}

		wg.Add(1)
		go func(startRow, endRow int) {
			defer wg.Done()
			rt.renderRows(scene, basis, aspect, scale, startRow, endRow)
		}(startRow, endRow)
	}
	wg.Wait()

	return rt.frame
}

// renderRows traces the pixel rows [startRow, endRow). Row 0 is the
// bottom of the image.
func (rt *Raytracer) renderRows(scene *Scene, basis viewBasis, aspect, scale float64, startRow, endRow int) {
	width, height := rt.frame.Width, rt.frame.Height

	for y := startRow; y < endRow; y++ {
		v := (2.0*(float64(y)+0.5)/float64(height) - 1.0) * scale
		for x := 0; x < width; x++ {
			u := (2.0*(float64(x)+0.5)/float64(width) - 1.0) * aspect * scale

			dir := basis.forward.Add(basis.right.Mul(u)).Add(basis.up.Mul(v)).Normalize()
			ray := Ray{Origin: scene.Camera.Position, Direction: dir}

			color := rt.trace(scene, ray, 0).Clamp01()
			rt.frame.SetPixel(x, y, color)
		}
	}
}

// trace returns the color seen along ray. depth counts reflection
// bounces taken so far; once it reaches the configured maximum the
// local shading is returned as is, so recursion always terminates.
func (rt *Raytracer) trace(scene *Scene, ray Ray, depth int) Vector3 {
	var nearest HitRecord
	hit := false

	for _, obj := range scene.Objects {
		if rec, ok := obj.Intersect(ray); ok && (!hit || rec.T < nearest.T) {
			nearest = rec
			hit = true
		}
	}

	if !hit {
		return backgroundColor
	}

	viewDir := ray.Direction.Mul(-1).Normalize()
	color := shade(scene, nearest, viewDir, rt.config.ShadowsEnabled)

	if depth < rt.config.MaxDepth && nearest.Reflectivity > 0 {
		reflRay := Ray{
			Origin:    nearest.Point.Add(nearest.Normal.Mul(shadowBias)),
			Direction: reflect(ray.Direction, nearest.Normal),
		}
		reflColor := rt.trace(scene, reflRay, depth+1)
		color = color.Mul(1 - nearest.Reflectivity).Add(reflColor.Mul(nearest.Reflectivity))
	}

	return color.Clamp01()
}

// reflect mirrors direction d about normal n
func reflect(d, n Vector3) Vector3 {
	return d.Sub(n.Mul(2 * d.Dot(n))).Normalize()
}
