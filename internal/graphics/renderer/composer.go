package renderer

import (
	"fmt"

	"synthwave/internal/graphics"
	"synthwave/internal/logger"

	"go.uber.org/zap"
)

// Composer runs an ordered chain of passes over a pair of ping-pong targets
type Composer struct {
	name     string
	passes   []Pass
	read     *graphics.RenderTarget
	write    *graphics.RenderTarget
	quad     *graphics.Quad
	width    int
	height   int
	toScreen bool
}

// NewComposer allocates the ping-pong targets of an empty chain
func NewComposer(name string, width, height int, quad *graphics.Quad) (*Composer, error) {
	read, err := graphics.NewRenderTarget(width, height, true)
	if err != nil {
		return nil, fmt.Errorf("composer %s: %w", name, err)
	}
	write, err := graphics.NewRenderTarget(width, height, true)
	if err != nil {
		read.Dispose()
		return nil, fmt.Errorf("composer %s: %w", name, err)
	}

	logger.Log.Debug("composer ready",
		zap.String("composer", name),
		zap.Int("width", width),
		zap.Int("height", height))
	return &Composer{
		name:   name,
		read:   read,
		write:  write,
		quad:   quad,
		width:  width,
		height: height,
	}, nil
}

// AddPass initializes p, sizes it to the composer and appends it. A pass
// whose Init fails is disposed and not added.
func (c *Composer) AddPass(p Pass) error {
	if err := p.Init(); err != nil {
		p.Dispose()
		return fmt.Errorf("composer %s pass %d: %w", c.name, len(c.passes), err)
	}
	p.SetViewport(c.width, c.height)
	c.passes = append(c.passes, p)
	return nil
}

// SetRenderToScreen makes the last pass present to the default framebuffer
func (c *Composer) SetRenderToScreen(on bool) {
	c.toScreen = on
}

// Render executes the chain once
func (c *Composer) Render() {
	last := len(c.passes) - 1
	for i, p := range c.passes {
		p.Render(RenderContext{
			Read:     c.read,
			Write:    c.write,
			Quad:     c.quad,
			ToScreen: c.toScreen && i == last,
			Width:    c.width,
			Height:   c.height,
		})
		if p.NeedsSwap() {
			c.read, c.write = c.write, c.read
		}
	}
}

// Output is the target holding the latest image of the chain
func (c *Composer) Output() *graphics.RenderTarget {
	return c.read
}

// SetSize resizes the targets and every pass
func (c *Composer) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
	for _, t := range []*graphics.RenderTarget{c.read, c.write} {
		if err := t.Resize(width, height); err != nil {
			logger.Log.Error("resize target", zap.String("composer", c.name), zap.Error(err))
		}
	}
	for _, p := range c.passes {
		p.SetViewport(width, height)
	}
}

// Dispose cleans up all passes in reverse order, then the targets
func (c *Composer) Dispose() {
	for i := len(c.passes) - 1; i >= 0; i-- {
		c.passes[i].Dispose()
	}
	c.read.Dispose()
	c.write.Dispose()
}
