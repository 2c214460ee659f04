package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"roomtrace/internal/logger"
	"roomtrace/internal/util"
	"roomtrace/pkg/config"
	"roomtrace/pkg/engine"
)

func init() {
	// GLFW requires the program to be running on the main thread
	runtime.LockOSThread()
}

func main() {
	configPath := flag.String("config", "config.yaml", "Path to configuration file")
	logLevel := flag.String("log", "info", "Log level (debug, info, warn, error)")
	logFile := flag.String("log-file", "", "Also write logs to this file")
	snapshot := flag.Bool("snapshot", false, "Render one frame without a window and exit")
	format := flag.String("format", "png", "Snapshot format: png or ascii")
	flag.Parse()

	var lg *logger.Logger
	if *logFile != "" {
		var err error
		lg, err = logger.NewMultiLogger(*logLevel, *logFile)
		if err != nil {
			log.Fatalf("Failed to set up logging: %v", err)
		}
		defer lg.Close()
	} else {
		lg = logger.NewLogger(*logLevel)
	}

	cfg := config.DefaultConfig()
	if util.FileExists(*configPath) {
		var err error
		cfg, err = config.LoadConfig(*configPath)
		if err != nil {
			lg.Fatalf("Failed to load configuration: %v", err)
		}
		lg.Infof("loaded configuration from %s", *configPath)
	} else {
		lg.Infof("no configuration at %s, using defaults", *configPath)
	}

	if *snapshot {
		if err := renderSnapshot(cfg, lg, *format); err != nil {
			lg.Fatalf("Snapshot failed: %v", err)
		}
		return
	}

	lg.Info("Starting ray traced room viewer...")

	viewer, err := engine.NewEngine(cfg, lg)
	if err != nil {
		lg.Fatalf("Failed to initialize viewer: %v", err)
	}

	viewer.Run()
}

// renderSnapshot traces one frame at the configured resolution without
// opening a window and writes it in the requested format
func renderSnapshot(cfg *config.Config, lg *logger.Logger, format string) error {
	defer util.TimeTrack(time.Now(), "snapshot render")

	scene := engine.NewRoomScene()
	tracer := engine.NewRaytracer(cfg.Raytracer, cfg.Graphics.Width, cfg.Graphics.Height)
	frame := tracer.Render(scene)

	switch format {
	case "png":
		path, err := engine.SaveSnapshot(cfg.Snapshot.Directory, frame, engine.PNGWriter{}, "png")
		if err != nil {
			return err
		}
		lg.Infof("wrote %s", path)
		return nil
	case "ascii":
		writer := engine.ASCIIWriter{CharSet: cfg.Snapshot.CharSet, Width: 120}
		return writer.Write(os.Stdout, frame)
	default:
		return fmt.Errorf("unknown snapshot format %q", format)
	}
}
