package engine

import "testing"

func TestFramebufferSetPixelQuantization(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.SetPixel(2, 1, Vector3{X: 1, Y: 0.5})

	r, g, b := fb.At(2, 1)
	if r != 255 || g != 127 || b != 0 {
		t.Errorf("pixel = (%d, %d, %d), want (255, 127, 0)", r, g, b)
	}
}

func TestFramebufferResize(t *testing.T) {
	fb := NewFramebuffer(4, 3)
	fb.Resize(8, 6)
	if fb.Width != 8 || fb.Height != 6 || len(fb.Pix) != 8*6*3 {
		t.Errorf("resize to 8x6 gave %dx%d with %d bytes", fb.Width, fb.Height, len(fb.Pix))
	}

	fb.SetPixel(0, 0, Vector3{X: 1, Y: 1, Z: 1})
	fb.Resize(8, 6)
	if r, _, _ := fb.At(0, 0); r != 255 {
		t.Error("resize to the same size should keep the buffer contents")
	}
}

func TestFramebufferToRGBAFlipsRows(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	// Row 0 is the bottom of the image
	fb.SetPixel(0, 0, Vector3{X: 1})
	fb.SetPixel(1, 1, Vector3{Z: 1})

	img := fb.ToRGBA()
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}

	// The bottom-left red pixel lands on the last image row
	r, _, _, a := img.At(0, 1).RGBA()
	if r>>8 != 255 || a>>8 != 255 {
		t.Errorf("bottom-left pixel = %v, want opaque red", img.At(0, 1))
	}

	// The top-right blue pixel lands on the first image row
	if _, _, b, _ := img.At(1, 0).RGBA(); b>>8 != 255 {
		t.Errorf("top-right pixel = %v, want blue", img.At(1, 0))
	}
}
