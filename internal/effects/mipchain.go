package effects

import (
	"fmt"

	"go.uber.org/multierr"
)

// Target is a resizable render target the bloom chain owns
type Target interface {
	Resize(width, height int) error
	Dispose()
}

// MipChain holds the bright-pass target and the horizontal and vertical blur
// targets of every mip level.
type MipChain[T Target] struct {
	Bright     T
	Horizontal [BloomMips]T
	Vertical   [BloomMips]T

	// allocation order, for disposal
	owned []T
}

// NewMipChain allocates every target with alloc. When an allocation fails
// the targets created so far are disposed before the error is returned.
func NewMipChain[T Target](alloc func() (T, error)) (*MipChain[T], error) {
	c := &MipChain[T]{}
	next := func(dst *T) error {
		t, err := alloc()
		if err != nil {
			return err
		}
		*dst = t
		c.owned = append(c.owned, t)
		return nil
	}

	if err := next(&c.Bright); err != nil {
		c.Dispose()
		return nil, fmt.Errorf("bright target: %w", err)
	}
	for i := 0; i < BloomMips; i++ {
		if err := next(&c.Horizontal[i]); err != nil {
			c.Dispose()
			return nil, fmt.Errorf("mip %d horizontal: %w", i, err)
		}
		if err := next(&c.Vertical[i]); err != nil {
			c.Dispose()
			return nil, fmt.Errorf("mip %d vertical: %w", i, err)
		}
	}
	return c, nil
}

// Resize sizes the chain for a full-resolution surface. Every target is
// attempted; failures are combined into one error.
func (c *MipChain[T]) Resize(width, height int) error {
	var err error
	w, h := MipSize(width, height, 0)
	if e := c.Bright.Resize(w, h); e != nil {
		err = multierr.Append(err, fmt.Errorf("bright %dx%d: %w", w, h, e))
	}
	for i := 0; i < BloomMips; i++ {
		w, h := MipSize(width, height, i)
		if e := c.Horizontal[i].Resize(w, h); e != nil {
			err = multierr.Append(err, fmt.Errorf("mip %d horizontal %dx%d: %w", i, w, h, e))
		}
		if e := c.Vertical[i].Resize(w, h); e != nil {
			err = multierr.Append(err, fmt.Errorf("mip %d vertical %dx%d: %w", i, w, h, e))
		}
	}
	return err
}

// Dispose releases every allocated target once
func (c *MipChain[T]) Dispose() {
	for i := len(c.owned) - 1; i >= 0; i-- {
		c.owned[i].Dispose()
	}
	c.owned = nil
}
