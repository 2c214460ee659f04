package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Graphics.Width != 800 || cfg.Graphics.Height != 600 {
		t.Errorf("default size = %dx%d, want 800x600", cfg.Graphics.Width, cfg.Graphics.Height)
	}
	if !cfg.Graphics.VSync {
		t.Error("vsync should default to on")
	}
	if cfg.Raytracer.MaxDepth != 2 {
		t.Errorf("max depth = %d, want 2", cfg.Raytracer.MaxDepth)
	}
	if !cfg.Raytracer.ShadowsEnabled {
		t.Error("shadows should default to on")
	}
	if cfg.Controls.CameraStep != 0.3 || cfg.Controls.LightStep != 0.3 {
		t.Errorf("steps = %v/%v, want 0.3/0.3", cfg.Controls.CameraStep, cfg.Controls.LightStep)
	}
	if cfg.Snapshot.Directory != "snapshots" {
		t.Errorf("snapshot dir = %q, want %q", cfg.Snapshot.Directory, "snapshots")
	}
}

func TestLoadConfigMissingFileKeepsDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected an error for a missing file")
	}
	if cfg == nil || cfg.Graphics.Width != 800 {
		t.Errorf("missing file should still return the defaults, got %+v", cfg)
	}
}

func TestLoadConfigMergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	partial := []byte("raytracer:\n  max_depth: 4\ngraphics:\n  width: 320\n")
	if err := os.WriteFile(path, partial, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if cfg.Raytracer.MaxDepth != 4 {
		t.Errorf("max depth = %d, want 4", cfg.Raytracer.MaxDepth)
	}
	if cfg.Graphics.Width != 320 {
		t.Errorf("width = %d, want 320", cfg.Graphics.Width)
	}

	// Everything the file does not mention keeps its default
	if cfg.Graphics.Height != 600 {
		t.Errorf("height = %d, want the default 600", cfg.Graphics.Height)
	}
	if !cfg.Raytracer.ShadowsEnabled {
		t.Error("shadows should stay on when the file does not mention them")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := DefaultConfig()
	cfg.Graphics.Width = 1024
	cfg.Raytracer.NumThreads = 3
	cfg.Snapshot.Directory = "out"

	if err := SaveConfig(cfg, path); err != nil {
		t.Fatalf("SaveConfig: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}

	if loaded.Graphics.Width != 1024 || loaded.Raytracer.NumThreads != 3 || loaded.Snapshot.Directory != "out" {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}
