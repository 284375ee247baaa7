/*
Package learngl holds the GL-free half of two small OpenGL tutorial
programs: a look-at camera moving around a spinning colored cube, and a
spinning textured cube. Everything here can be tested without a GL context;
the window, shaders and buffers live in backend/opengl.

# Overview

Each program is described by an entry in shaders/programs.yaml (window size
and title, clear color, vertex layout, shader files, camera start, rotation
and projection). A Scene replaces the global camera and time state a
tutorial would normally keep: every frame it reads the InputState, moves
the camera, and returns the model, view and projection matrices.

# Quick Start

	catalog, _ := learngl.DefaultCatalog()
	cfg, _ := catalog.Program("camera")

	win, _ := opengl.OpenWindow(cfg.Window)
	defer win.Close()
	assets, _ := opengl.LoadAssets(cfg)
	defer assets.Delete()

	scene := cfg.NewScene()
	learngl.NewLoop(win, assets.Renderer, scene).Run()

# Controls

	W / Up      move the camera along -Z
	S / Down    move the camera along +Z
	A / Left    move the camera along -X
	D / Right   move the camera along +X
	Esc         close the window

Movement is Speed * dt units per frame and moves the camera target with
the position, so the view direction never changes. Nothing keeps the up
vector orthogonal to the view direction.

# Rotation

The model angle is RotationRate * elapsed degrees (45 deg/s by default). It
grows without bound; float32 precision degrades after many hours.
*/
package learngl
