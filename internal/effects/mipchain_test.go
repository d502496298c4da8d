package effects

import (
	"errors"
	"testing"

	"go.uber.org/multierr"
)

type fakeTarget struct {
	w, h      int
	disposed  int
	failWidth int // Resize fails for this width
}

func (f *fakeTarget) Resize(w, h int) error {
	if w == f.failWidth {
		return errors.New("out of memory")
	}
	f.w, f.h = w, h
	return nil
}

func (f *fakeTarget) Dispose() { f.disposed++ }

func TestMipChainResize(t *testing.T) {
	c, err := NewMipChain(func() (*fakeTarget, error) { return &fakeTarget{}, nil })
	if err != nil {
		t.Fatalf("NewMipChain: %v", err)
	}
	if err := c.Resize(900, 600); err != nil {
		t.Fatalf("Resize: %v", err)
	}
	if c.Bright.w != 450 || c.Bright.h != 300 {
		t.Errorf("bright = %dx%d, want 450x300", c.Bright.w, c.Bright.h)
	}
	for i := 0; i < BloomMips; i++ {
		w, h := MipSize(900, 600, i)
		if c.Horizontal[i].w != w || c.Horizontal[i].h != h {
			t.Errorf("horizontal %d = %dx%d, want %dx%d", i, c.Horizontal[i].w, c.Horizontal[i].h, w, h)
		}
		if c.Vertical[i].w != w || c.Vertical[i].h != h {
			t.Errorf("vertical %d = %dx%d, want %dx%d", i, c.Vertical[i].w, c.Vertical[i].h, w, h)
		}
	}
}

func TestMipChainResizeReportsEveryFailure(t *testing.T) {
	// mip 2 of 900x600 is 113 wide; both of its targets fail
	c, _ := NewMipChain(func() (*fakeTarget, error) { return &fakeTarget{failWidth: 113}, nil })
	err := c.Resize(900, 600)
	if err == nil {
		t.Fatalf("expected resize error")
	}
	if n := len(multierr.Errors(err)); n != 2 {
		t.Errorf("got %d errors, want 2: %v", n, err)
	}
	// the other levels still resized
	if c.Horizontal[4].w != 29 {
		t.Errorf("mip 4 width = %d, want 29", c.Horizontal[4].w)
	}
}

func TestMipChainDisposesOnPartialAllocation(t *testing.T) {
	var made []*fakeTarget
	alloc := func() (*fakeTarget, error) {
		if len(made) == 4 {
			return nil, errors.New("incomplete framebuffer")
		}
		f := &fakeTarget{}
		made = append(made, f)
		return f, nil
	}

	if _, err := NewMipChain(alloc); err == nil {
		t.Fatalf("expected allocation error")
	}
	for i, f := range made {
		if f.disposed != 1 {
			t.Errorf("target %d disposed %d times, want 1", i, f.disposed)
		}
	}
}

func TestMipChainDisposeOnce(t *testing.T) {
	c, _ := NewMipChain(func() (*fakeTarget, error) { return &fakeTarget{}, nil })
	c.Dispose()
	c.Dispose()
	if c.Bright.disposed != 1 || c.Vertical[4].disposed != 1 {
		t.Errorf("disposed counts bright=%d vertical4=%d, want 1", c.Bright.disposed, c.Vertical[4].disposed)
	}
}
