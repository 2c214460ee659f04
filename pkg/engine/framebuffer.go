package engine

import "image"

// Framebuffer is a flat RGB buffer, three bytes per pixel, with row
// zero at the BOTTOM of the image. That matches the GL texture origin
// the display uploads it to; the PNG writer flips rows on the way out.
type Framebuffer struct {
	Width  int
	Height int
	Pix    []uint8
}

// NewFramebuffer allocates a buffer for width × height pixels
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pix:    make([]uint8, width*height*3),
	}
}

// Resize reallocates the pixel storage for the new dimensions. The
// contents are undefined until the next render fills them.
func (fb *Framebuffer) Resize(width, height int) {
	if width == fb.Width && height == fb.Height {
		return
	}
	fb.Width = width
	fb.Height = height
	fb.Pix = make([]uint8, width*height*3)
}

// SetPixel quantizes a [0,1] color into the 8-bit channels of pixel
// (x, y)
func (fb *Framebuffer) SetPixel(x, y int, color Vector3) {
	idx := (y*fb.Width + x) * 3
	fb.Pix[idx] = uint8(color.X * 255.0)
	fb.Pix[idx+1] = uint8(color.Y * 255.0)
	fb.Pix[idx+2] = uint8(color.Z * 255.0)
}

// At returns the stored 8-bit channels of pixel (x, y)
func (fb *Framebuffer) At(x, y int) (r, g, b uint8) {
	idx := (y*fb.Width + x) * 3
	return fb.Pix[idx], fb.Pix[idx+1], fb.Pix[idx+2]
}

// ToRGBA copies the buffer into an image.RGBA, flipping rows so that
// the top of the image comes first as image consumers expect
func (fb *Framebuffer) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		srcRow := fb.Height - 1 - y
		for x := 0; x < fb.Width; x++ {
			si := (srcRow*fb.Width + x) * 3
			di := img.PixOffset(x, y)
			img.Pix[di] = fb.Pix[si]
			img.Pix[di+1] = fb.Pix[si+1]
			img.Pix[di+2] = fb.Pix[si+2]
			img.Pix[di+3] = 255
		}
	}
	return img
}
