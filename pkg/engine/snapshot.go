package engine

import (
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"time"

	"roomtrace/internal/util"
)

// defaultCharSet is the dark-to-light luminance ramp used when the
// configured charset is empty
const defaultCharSet = " .:-=+*#%@"

// SnapshotWriter serializes a framebuffer to a stream
type SnapshotWriter interface {
	Write(w io.Writer, fb *Framebuffer) error
}

var (
	_ SnapshotWriter = PNGWriter{}
	_ SnapshotWriter = ASCIIWriter{}
)

// PNGWriter encodes the framebuffer as a PNG image
type PNGWriter struct{}

// Write implements SnapshotWriter
func (PNGWriter) Write(w io.Writer, fb *Framebuffer) error {
	return png.Encode(w, fb.ToRGBA())
}

// ASCIIWriter renders the framebuffer as luminance-ramp text art,
// downsampled to Width columns. Two buffer rows collapse into one
// character row since terminal cells are roughly twice as tall as wide.
type ASCIIWriter struct {
	CharSet string
	Width   int
}

// Write implements SnapshotWriter
func (aw ASCIIWriter) Write(w io.Writer, fb *Framebuffer) error {
	charset := []rune(aw.CharSet)
	if len(charset) == 0 {
		charset = []rune(defaultCharSet)
	}

	cols := aw.Width
	if cols <= 0 || cols > fb.Width {
		cols = fb.Width
	}

	xStep := float64(fb.Width) / float64(cols)
	yStep := xStep * 2
	rows := int(float64(fb.Height) / yStep)
	if rows < 1 {
		rows = 1
	}

	line := make([]rune, cols)
	for row := 0; row < rows; row++ {
		// Buffer row 0 is the image bottom; emit top lines first.
		y := fb.Height - 1 - int((float64(row)+0.5)*yStep)
		if y < 0 {
			y = 0
		}
		for col := 0; col < cols; col++ {
			x := int((float64(col) + 0.5) * xStep)
			if x >= fb.Width {
				x = fb.Width - 1
			}

			r, g, b := fb.At(x, y)
			lum := (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 255.0
			idx := int(util.Clamp(lum, 0, 1) * float64(len(charset)-1))
			line[col] = charset[idx]
		}
		if _, err := fmt.Fprintln(w, string(line)); err != nil {
			return err
		}
	}
	return nil
}

// SaveSnapshot writes the framebuffer into dir under a timestamped
// name, creating the directory when needed, and returns the file path
func SaveSnapshot(dir string, fb *Framebuffer, writer SnapshotWriter, ext string) (string, error) {
	if err := util.CreateDirIfNotExist(dir); err != nil {
		return "", fmt.Errorf("error creating snapshot directory: %v", err)
	}

	name := fmt.Sprintf("render_%s.%s", time.Now().Format("2006-01-02_15-04-05"), ext)
	path := filepath.Join(dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("error creating snapshot file: %v", err)
	}
	defer f.Close()

	if err := writer.Write(f, fb); err != nil {
		return "", fmt.Errorf("error writing snapshot: %v", err)
	}

	return path, nil
}
