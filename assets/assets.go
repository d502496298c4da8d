// Package assets embeds the GLSL sources so the binary runs from any directory.
package assets

import "embed"

//go:embed shaders
var Shaders embed.FS
