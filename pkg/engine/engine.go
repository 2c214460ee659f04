package engine

import (
	"fmt"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"roomtrace/internal/logger"
	"roomtrace/internal/util"
	"roomtrace/pkg/config"
)

// Engine drives the interactive viewer. It owns the window, the
// authoritative camera and light state, and a render-on-demand loop
// that only retraces the scene when something changed.
type Engine struct {
	window    *glfw.Window
	config    *config.Config
	logger    *logger.Logger
	raytracer *Raytracer
	display   *Display
	input     *InputHandler

	scene  *Scene
	camera Camera
	light  Light

	frame       *Framebuffer
	needsRender bool
	renderTimes *util.RollingAverage

	isRunning bool
	frameRate int
}

// NewEngine creates the window, the OpenGL display, the raytracer and
// the room scene
func NewEngine(cfg *config.Config, log *logger.Logger) (*Engine, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %v", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	width, height := cfg.Graphics.Width, cfg.Graphics.Height
	var monitor *glfw.Monitor
	if cfg.Graphics.Fullscreen {
		monitor = glfw.GetPrimaryMonitor()
		mode := monitor.GetVideoMode()
		width, height = mode.Width, mode.Height
	}

	window, err := glfw.CreateWindow(width, height, "Ray Traced Room", monitor, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %v", err)
	}

	window.MakeContextCurrent()
	if cfg.Graphics.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	// The framebuffer can be larger than the requested window size on
	// high-DPI displays
	fbWidth, fbHeight := window.GetFramebufferSize()

	display, err := NewDisplay(fbWidth, fbHeight)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize display: %v", err)
	}

	scene := NewRoomScene()

	engine := &Engine{
		window:      window,
		config:      cfg,
		logger:      log,
		raytracer:   NewRaytracer(cfg.Raytracer, fbWidth, fbHeight),
		display:     display,
		input:       NewInputHandler(window),
		scene:       scene,
		camera:      scene.Camera,
		light:       scene.Light,
		needsRender: true,
		renderTimes: util.NewRollingAverage(30),
		frameRate:   cfg.Graphics.FrameRate,
	}

	window.SetFramebufferSizeCallback(engine.onResize)

	log.Infof("OpenGL %s", display.Version())
	engine.logControls()

	return engine, nil
}

// logControls prints the key bindings
func (e *Engine) logControls() {
	e.logger.Info("W/S: camera forward/back, A/D: camera left/right, Q/E: camera up/down")
	e.logger.Info("I/K: light forward/back, J/L: light left/right, U/O: light up/down")
	e.logger.Info("P: save snapshot, ESC: quit")
}

// Run executes the main loop until ESC is pressed or the window closes
func (e *Engine) Run() {
	e.isRunning = true

	for e.isRunning && !e.window.ShouldClose() {
		frameStart := time.Now()

		e.processInput()

		if e.needsRender {
			e.render()
		}

		e.display.Draw()
		e.window.SwapBuffers()
		glfw.PollEvents()

		// Cap the frame rate when vsync does not pace us
		if !e.config.Graphics.VSync && e.frameRate > 0 {
			frameTime := time.Since(frameStart)
			targetFrameTime := time.Second / time.Duration(e.frameRate)
			if frameTime < targetFrameTime {
				time.Sleep(targetFrameTime - frameTime)
			}
		}
	}

	e.cleanup()
}

// render traces one frame from the current camera and light state and
// uploads it to the display
func (e *Engine) render() {
	snapshot := *e.scene
	snapshot.Camera = e.camera
	snapshot.Light = e.light

	start := time.Now()
	e.frame = e.raytracer.Render(&snapshot)
	elapsed := time.Since(start)

	e.renderTimes.Add(float64(elapsed.Milliseconds()))
	e.logger.Debugf("traced %dx%d in %v (avg %.1fms)",
		e.frame.Width, e.frame.Height, elapsed.Round(time.Millisecond), e.renderTimes.Average())

	e.display.Update(e.frame)
	e.needsRender = false
}

// processInput applies the keyboard bindings
func (e *Engine) processInput() {
	e.input.Update()

	if e.input.IsKeyPressed(glfw.KeyEscape) {
		e.isRunning = false
		return
	}

	camStep := e.config.Controls.CameraStep
	lightStep := e.config.Controls.LightStep

	moved := false
	if e.input.IsKeyPressed(glfw.KeyW) {
		e.moveCamera(0, 0, -camStep)
		moved = true
	}
	if e.input.IsKeyPressed(glfw.KeyS) {
		e.moveCamera(0, 0, camStep)
		moved = true
	}
	if e.input.IsKeyPressed(glfw.KeyA) {
		e.moveCamera(-camStep, 0, 0)
		moved = true
	}
	if e.input.IsKeyPressed(glfw.KeyD) {
		e.moveCamera(camStep, 0, 0)
		moved = true
	}
	if e.input.IsKeyPressed(glfw.KeyQ) {
		e.moveCamera(0, camStep, 0)
		moved = true
	}
	if e.input.IsKeyPressed(glfw.KeyE) {
		e.moveCamera(0, -camStep, 0)
		moved = true
	}

	if e.input.IsKeyPressed(glfw.KeyI) {
		e.moveLight(0, 0, -lightStep)
		moved = true
	}
	if e.input.IsKeyPressed(glfw.KeyK) {
		e.moveLight(0, 0, lightStep)
		moved = true
	}
	if e.input.IsKeyPressed(glfw.KeyJ) {
		e.moveLight(-lightStep, 0, 0)
		moved = true
	}
	if e.input.IsKeyPressed(glfw.KeyL) {
		e.moveLight(lightStep, 0, 0)
		moved = true
	}
	if e.input.IsKeyPressed(glfw.KeyU) {
		e.moveLight(0, lightStep, 0)
		moved = true
	}
	if e.input.IsKeyPressed(glfw.KeyO) {
		e.moveLight(0, -lightStep, 0)
		moved = true
	}

	if moved {
		e.needsRender = true
		e.logger.Infof("camera (%.2f, %.2f, %.2f)  light (%.2f, %.2f, %.2f)",
			e.camera.Position.X, e.camera.Position.Y, e.camera.Position.Z,
			e.light.Position.X, e.light.Position.Y, e.light.Position.Z)
	}

	if e.input.IsKeyPressed(glfw.KeyP) {
		e.saveSnapshot()
	}
}

// moveCamera translates the camera position and its look-at target
// together, so the view direction stays fixed
func (e *Engine) moveCamera(dx, dy, dz float64) {
	delta := Vector3{X: dx, Y: dy, Z: dz}
	e.camera.Position = e.camera.Position.Add(delta)
	e.camera.LookAt = e.camera.LookAt.Add(delta)
}

// moveLight translates the point light
func (e *Engine) moveLight(dx, dy, dz float64) {
	e.light.Position = e.light.Position.Add(Vector3{X: dx, Y: dy, Z: dz})
}

// saveSnapshot writes the current frame as a PNG into the configured
// snapshot directory
func (e *Engine) saveSnapshot() {
	if e.needsRender || e.frame == nil {
		e.render()
	}

	path, err := SaveSnapshot(e.config.Snapshot.Directory, e.frame, PNGWriter{}, "png")
	if err != nil {
		e.logger.Errorf("snapshot failed: %v", err)
		return
	}
	e.logger.Infof("saved snapshot %s", path)
}

// onResize tracks framebuffer size changes from window resizes and
// monitor DPI switches
func (e *Engine) onResize(_ *glfw.Window, width, height int) {
	if width <= 0 || height <= 0 {
		return
	}

	e.logger.Debugf("framebuffer resized to %dx%d", width, height)
	e.raytracer.Resize(width, height)
	e.display.Resize(width, height)
	e.needsRender = true
}

// cleanup releases window and OpenGL resources
func (e *Engine) cleanup() {
	e.logger.Info("shutting down viewer")
	e.display.Close()
	glfw.Terminate()
}
