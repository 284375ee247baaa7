// Package shaders embeds the GLSL sources and the program catalogue.
package shaders

import "embed"

// FS holds programs.yaml and the *.glsl files it references.
//
//go:embed programs.yaml *.glsl
var FS embed.FS
