package util

import (
	"fmt"
	"os"
	"time"
)

// Clamp restricts a value to be between min and max
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// FileExists checks if a file exists and is not a directory
func FileExists(filename string) bool {
	info, err := os.Stat(filename)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// DirExists checks if a directory exists
func DirExists(dirname string) bool {
	info, err := os.Stat(dirname)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// CreateDirIfNotExist creates a directory if it doesn't exist
func CreateDirIfNotExist(dir string) error {
	if !DirExists(dir) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %v", err)
		}
	}
	return nil
}

// TimeTrack reports how long a piece of work took.
// Usage: defer TimeTrack(time.Now(), "render")
func TimeTrack(start time.Time, name string) {
	fmt.Printf("%s took %s\n", name, time.Since(start))
}

// RollingAverage keeps a running average over the last windowSize
// samples
type RollingAverage struct {
	window int
	values []float64
	sum    float64
}

// NewRollingAverage creates a rolling average with the given window.
// Windows smaller than one sample are bumped to one.
func NewRollingAverage(window int) *RollingAverage {
	if window < 1 {
		window = 1
	}
	return &RollingAverage{
		window: window,
		values: make([]float64, 0, window),
	}
}

// Add records a sample, dropping the oldest one once the window is full
func (ra *RollingAverage) Add(v float64) {
	if len(ra.values) == ra.window {
		ra.sum -= ra.values[0]
		ra.values = append(ra.values[:0], ra.values[1:]...)
	}
	ra.values = append(ra.values, v)
	ra.sum += v
}

// Average returns the mean of the recorded samples, zero when empty
func (ra *RollingAverage) Average() float64 {
	if len(ra.values) == 0 {
		return 0
	}
	return ra.sum / float64(len(ra.values))
}

// Count returns how many samples the window currently holds
func (ra *RollingAverage) Count() int {
	return len(ra.values)
}
