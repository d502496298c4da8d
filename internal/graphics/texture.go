package graphics

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// NewColorTexture allocates an empty RGBA8 texture with linear filtering
func NewColorTexture(width, height int) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// NewDataTexture uploads a single-channel float texture of size×size values.
// It repeats and uses nearest filtering, as a lookup table.
func NewDataTexture(values []float32, size int) uint32 {
	var texture uint32
	gl.GenTextures(1, &texture)
	gl.BindTexture(gl.TEXTURE_2D, texture)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R32F, int32(size), int32(size), 0, gl.RED, gl.FLOAT, gl.Ptr(values))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return texture
}

// DeleteTexture releases a texture and zeroes the handle
func DeleteTexture(texture *uint32) {
	if *texture != 0 {
		gl.DeleteTextures(1, texture)
		*texture = 0
	}
}
