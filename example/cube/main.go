// Cube spins a textured, colored cube in front of a movable camera.
//
//	go run ./example/cube/          # W/A/S/D move, Esc quits
//	go run ./example/cube/ -v       # log camera position every second
//	go run ./example/cube/ -config ./shaders
//
// Window size, shaders and camera start come from the "cube" entry of
// shaders/programs.yaml.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-theft-auto/learngl"
	"github.com/go-theft-auto/learngl/backend/opengl"
)

const programName = "cube"

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	configDir := flag.String("config", "", "directory holding programs.yaml and shaders (default: embedded)")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	var catalog *learngl.Catalog
	var err error
	if *configDir != "" {
		catalog, err = learngl.LoadCatalog(os.DirFS(*configDir), ".")
	} else {
		catalog, err = learngl.DefaultCatalog()
	}
	if err != nil {
		return err
	}

	cfg, err := catalog.Program(programName)
	if err != nil {
		return err
	}

	return opengl.Run(cfg, logger)
}
