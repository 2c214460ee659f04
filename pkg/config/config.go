package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Config represents the main configuration
type Config struct {
	Graphics  GraphicsConfig  `yaml:"graphics"`
	Raytracer RaytracerConfig `yaml:"raytracer"`
	Controls  ControlsConfig  `yaml:"controls"`
	Snapshot  SnapshotConfig  `yaml:"snapshot"`
}

// GraphicsConfig contains window and presentation configuration
type GraphicsConfig struct {
	Width      int  `yaml:"width"`
	Height     int  `yaml:"height"`
	Fullscreen bool `yaml:"fullscreen"`
	VSync      bool `yaml:"vsync"`
	FrameRate  int  `yaml:"framerate"` // cap applied when vsync is off
}

// RaytracerConfig contains raytracer configuration
type RaytracerConfig struct {
	NumThreads     int  `yaml:"num_threads"` // 0 picks the CPU count
	MaxDepth       int  `yaml:"max_depth"`   // reflection recursion limit
	ShadowsEnabled bool `yaml:"shadows_enabled"`
}

// ControlsConfig contains movement step sizes for the keyboard bindings
type ControlsConfig struct {
	CameraStep float64 `yaml:"camera_step"`
	LightStep  float64 `yaml:"light_step"`
}

// SnapshotConfig contains snapshot output configuration
type SnapshotConfig struct {
	Directory string `yaml:"directory"`
	CharSet   string `yaml:"charset"` // dark-to-light ramp for ASCII output
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      800,
			Height:     600,
			Fullscreen: false,
			VSync:      true,
			FrameRate:  60,
		},
		Raytracer: RaytracerConfig{
			NumThreads:     0,
			MaxDepth:       2,
			ShadowsEnabled: true,
		},
		Controls: ControlsConfig{
			CameraStep: 0.3,
			LightStep:  0.3,
		},
		Snapshot: SnapshotConfig{
			Directory: "snapshots",
			CharSet:   " .:-=+*#%@",
		},
	}
}

// LoadConfig loads the configuration from a file, merging it over the
// defaults
func LoadConfig(filePath string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filePath)
	if err != nil {
		return config, fmt.Errorf("error reading config: %v", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return config, fmt.Errorf("error parsing config: %v", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to a file
func SaveConfig(config *Config, filePath string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("error serializing config: %v", err)
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("error writing config file: %v", err)
	}

	return nil
}
