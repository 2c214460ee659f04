package engine

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Display presents a traced framebuffer on screen. It owns a single
// texture and a fullscreen quad the frame is blitted onto.
type Display struct {
	program       uint32
	vertexArray   uint32
	vertexBuffer  uint32
	elementBuffer uint32
	texture       uint32

	samplerLocation int32

	width  int
	height int
}

// NewDisplay initializes OpenGL and builds the blit pipeline. A current
// GL context is required.
func NewDisplay(width, height int) (*Display, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("error initializing OpenGL: %v", err)
	}

	program, err := createShaderProgram(blitVertexShaderSource, blitFragmentShaderSource)
	if err != nil {
		return nil, fmt.Errorf("error creating blit shader: %v", err)
	}

	d := &Display{
		program: program,
		width:   width,
		height:  height,
	}
	d.samplerLocation = gl.GetUniformLocation(program, gl.Str("frameTexture\x00"))

	d.setupQuad()
	d.setupTexture()

	gl.Viewport(0, 0, int32(width), int32(height))
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)

	return d, nil
}

// setupQuad creates the fullscreen quad geometry
func (d *Display) setupQuad() {
	// Framebuffer rows start at the bottom, matching the GL texture
	// origin, so the coordinates need no vertical flip
	vertices := []float32{
		// positions   // texture coords
		-1.0, -1.0, 0.0, 0.0, 0.0, // bottom left
		1.0, -1.0, 0.0, 1.0, 0.0, // bottom right
		1.0, 1.0, 0.0, 1.0, 1.0, // top right
		-1.0, 1.0, 0.0, 0.0, 1.0, // top left
	}

	indices := []uint32{
		0, 1, 2,
		2, 3, 0,
	}

	gl.GenVertexArrays(1, &d.vertexArray)
	gl.GenBuffers(1, &d.vertexBuffer)
	gl.GenBuffers(1, &d.elementBuffer)

	gl.BindVertexArray(d.vertexArray)

	gl.BindBuffer(gl.ARRAY_BUFFER, d.vertexBuffer)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, d.elementBuffer)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	// Position attribute
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(0)

	// Texture coordinate attribute
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 5*4, gl.PtrOffset(3*4))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
}

// setupTexture creates the texture the traced frames are uploaded into
func (d *Display) setupTexture() {
	gl.GenTextures(1, &d.texture)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	// Rows of three-byte pixels are tightly packed
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(d.width), int32(d.height),
		0, gl.RGB, gl.UNSIGNED_BYTE, nil)

	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Version returns the OpenGL version string of the current context
func (d *Display) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// Update uploads a traced frame into the display texture
func (d *Display) Update(frame *Framebuffer) {
	gl.BindTexture(gl.TEXTURE_2D, d.texture)

	if frame.Width != d.width || frame.Height != d.height {
		d.width = frame.Width
		d.height = frame.Height
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(d.width), int32(d.height),
			0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(frame.Pix))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(d.width), int32(d.height),
			gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(frame.Pix))
	}

	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Draw renders the current texture onto the fullscreen quad
func (d *Display) Draw() {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(d.program)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)
	gl.Uniform1i(d.samplerLocation, 0)

	gl.BindVertexArray(d.vertexArray)
	gl.DrawElements(gl.TRIANGLES, 6, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)

	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Resize adjusts the viewport and reallocates the texture when the
// framebuffer dimensions changed
func (d *Display) Resize(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))

	if width == d.width && height == d.height {
		return
	}
	d.width = width
	d.height = height

	gl.BindTexture(gl.TEXTURE_2D, d.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, int32(width), int32(height),
		0, gl.RGB, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
}

// Close releases all OpenGL resources
func (d *Display) Close() {
	gl.DeleteVertexArrays(1, &d.vertexArray)
	gl.DeleteBuffers(1, &d.vertexBuffer)
	gl.DeleteBuffers(1, &d.elementBuffer)
	gl.DeleteTextures(1, &d.texture)
	gl.DeleteProgram(d.program)
}

// createShaderProgram compiles and links a shader program
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, fmt.Errorf("vertex shader compilation failed: %v", err)
	}

	fragmentShader, err := compileShader(fragmentSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, fmt.Errorf("fragment shader compilation failed: %v", err)
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(infoLog))

		return 0, fmt.Errorf("shader program linking failed: %v", infoLog)
	}

	gl.DetachShader(program, vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	return program, nil
}

// compileShader compiles a single shader stage
func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		infoLog := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(infoLog))

		return 0, fmt.Errorf("failed to compile shader: %v", infoLog)
	}

	return shader, nil
}
