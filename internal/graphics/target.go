package graphics

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// RenderTarget is an offscreen framebuffer with an RGBA colour texture and an
// optional depth-stencil renderbuffer.
type RenderTarget struct {
	FBO     uint32
	Texture uint32
	RBO     uint32
	Width   int
	Height  int

	depth bool
}

// NewRenderTarget creates a framebuffer of the given size
func NewRenderTarget(width, height int, depth bool) (*RenderTarget, error) {
	t := &RenderTarget{depth: depth}
	if err := t.allocate(width, height); err != nil {
		t.Dispose()
		return nil, err
	}
	return t, nil
}

func (t *RenderTarget) allocate(width, height int) error {
	width, height = max(width, 1), max(height, 1)
	t.Width, t.Height = width, height

	gl.GenFramebuffers(1, &t.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.FBO)

	t.Texture = NewColorTexture(width, height)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.Texture, 0)

	if t.depth {
		gl.GenRenderbuffers(1, &t.RBO)
		gl.BindRenderbuffer(gl.RENDERBUFFER, t.RBO)
		gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, int32(width), int32(height))
		gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, t.RBO)
		gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	}

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("framebuffer %dx%d incomplete: 0x%x", width, height, status)
	}
	return nil
}

// Resize reallocates the attachments when the size changes
func (t *RenderTarget) Resize(width, height int) error {
	if width == t.Width && height == t.Height {
		return nil
	}
	t.release()
	return t.allocate(width, height)
}

// Bind makes the target current and sets the viewport to cover it
func (t *RenderTarget) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.FBO)
	gl.Viewport(0, 0, int32(t.Width), int32(t.Height))
}

// ReadNRGBA reads the colour attachment back. Row 0 is the bottom row.
func (t *RenderTarget) ReadNRGBA() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, t.Width, t.Height))
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.FBO)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(t.Width), int32(t.Height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.PACK_ALIGNMENT, 4)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	return img
}

func (t *RenderTarget) release() {
	DeleteTexture(&t.Texture)
	if t.RBO != 0 {
		gl.DeleteRenderbuffers(1, &t.RBO)
		t.RBO = 0
	}
	if t.FBO != 0 {
		gl.DeleteFramebuffers(1, &t.FBO)
		t.FBO = 0
	}
}

// Dispose releases all GL objects
func (t *RenderTarget) Dispose() {
	t.release()
}

// BindScreen binds the default framebuffer with the given viewport
func BindScreen(width, height int) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(width), int32(height))
}
