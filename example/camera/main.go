// Camera moves a look-at camera around a spinning colored cube.
//
//	go run ./example/camera/          # W/A/S/D move, Esc quits
//	go run ./example/camera/ -v       # log camera position every second
//	go run ./example/camera/ -config ./shaders
//
// Window size, shaders and camera start come from the "camera" entry of
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

const programName = "camera"

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
