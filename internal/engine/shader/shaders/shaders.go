// Package shaders embeds the GLSL sources used by the renderer.
package shaders

import _ "embed"

//go:embed phong.vert
var PhongVertex string

//go:embed phong.frag
var PhongFragment string
