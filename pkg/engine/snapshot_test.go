package engine

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPNGWriterFlipsRows(t *testing.T) {
	fb := NewFramebuffer(1, 2)
	fb.SetPixel(0, 0, Vector3{X: 1}) // bottom row, red
	fb.SetPixel(0, 1, Vector3{Z: 1}) // top row, blue

	var buf bytes.Buffer
	if err := (PNGWriter{}).Write(&buf, fb); err != nil {
		t.Fatalf("Write: %v", err)
	}

	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 1 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}

	if _, _, b, _ := img.At(0, 0).RGBA(); b>>8 != 255 {
		t.Errorf("top pixel = %v, want blue", img.At(0, 0))
	}
	if r, _, _, _ := img.At(0, 1).RGBA(); r>>8 != 255 {
		t.Errorf("bottom pixel = %v, want red", img.At(0, 1))
	}
}

func TestASCIIWriterRamp(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			fb.SetPixel(x, y, Vector3{X: 0.5, Y: 0.5, Z: 0.5})
		}
	}

	var buf bytes.Buffer
	if err := (ASCIIWriter{Width: 4}).Write(&buf, fb); err != nil {
		t.Fatalf("Write: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	// Mid gray falls on the middle of the default ramp
	if lines[0] != "====" {
		t.Errorf("line = %q, want %q", lines[0], "====")
	}
}

func TestASCIIWriterTopRowsFirst(t *testing.T) {
	// Bright top half, dark bottom half; the text output must start
	// with the bright rows even though buffer row 0 is the bottom.
	fb := NewFramebuffer(4, 8)
	for y := 4; y < 8; y++ {
		for x := 0; x < 4; x++ {
			fb.SetPixel(x, y, Vector3{X: 0.5, Y: 0.5, Z: 0.5})
		}
	}

	var buf bytes.Buffer
	if err := (ASCIIWriter{Width: 4}).Write(&buf, fb); err != nil {
		t.Fatalf("Write: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4", len(lines))
	}
	if lines[0] != "====" {
		t.Errorf("first line = %q, want bright glyphs", lines[0])
	}
	if lines[3] != "    " {
		t.Errorf("last line = %q, want spaces", lines[3])
	}
}

func TestASCIIWriterCustomCharset(t *testing.T) {
	fb := NewFramebuffer(2, 2)

	var buf bytes.Buffer
	if err := (ASCIIWriter{CharSet: "XY", Width: 2}).Write(&buf, fb); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if got := strings.TrimRight(buf.String(), "\n"); got != "XX" {
		t.Errorf("output = %q, want %q for a black frame", got, "XX")
	}
}

func TestSaveSnapshotCreatesTimestampedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "shots")
	fb := NewFramebuffer(2, 2)

	path, err := SaveSnapshot(dir, fb, PNGWriter{}, "png")
	if err != nil {
		t.Fatalf("SaveSnapshot: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("path = %q, want it inside %q", path, dir)
	}
	base := filepath.Base(path)
	if !strings.HasPrefix(base, "render_") || !strings.HasSuffix(base, ".png") {
		t.Errorf("file name = %q", base)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("stat %q: %v", path, err)
	}
}
