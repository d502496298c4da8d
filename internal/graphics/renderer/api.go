package renderer

import (
	"synthwave/internal/graphics"
)

// RenderContext is what a pass sees for one frame
type RenderContext struct {
	Read     *graphics.RenderTarget // current image, input of the pass
	Write    *graphics.RenderTarget // free target for passes that swap
	Quad     *graphics.Quad
	ToScreen bool // the pass is last in a composer that presents
	Width    int
	Height   int
}

// Output returns the framebuffer a non-swapping pass draws into
func (ctx RenderContext) Output() *graphics.RenderTarget {
	return ctx.Read
}

// Bind binds the framebuffer a swapping pass writes to: the screen when
// presenting, otherwise the write target.
func (ctx RenderContext) Bind() {
	if ctx.ToScreen {
		graphics.BindScreen(ctx.Width, ctx.Height)
		return
	}
	ctx.Write.Bind()
}

// Pass interface defines the lifecycle of a post-processing step
type Pass interface {
	Init() error
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
	// NeedsSwap reports whether the pass wrote to Write, making it the new Read
	NeedsSwap() bool
}
