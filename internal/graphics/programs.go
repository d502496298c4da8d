package graphics

import (
	"io/fs"
	"sync"
)

// ProgramSource names the files of one shader program
type ProgramSource struct {
	Vertex   string
	Fragment string
	Defines  map[string]string
}

// Programs caches compiled shaders by key so materials and passes that share
// a program compile it once.
type Programs struct {
	fsys  fs.FS
	mu    sync.RWMutex
	cache map[string]*Shader
}

// NewPrograms creates an empty cache reading sources from fsys
func NewPrograms(fsys fs.FS) *Programs {
	return &Programs{fsys: fsys, cache: make(map[string]*Shader)}
}

// Get returns the cached program for key, compiling src on first use
func (p *Programs) Get(key string, src ProgramSource) (*Shader, error) {
	p.mu.RLock()
	if s, ok := p.cache[key]; ok {
		p.mu.RUnlock()
		return s, nil
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()

	// Double check locking
	if s, ok := p.cache[key]; ok {
		return s, nil
	}

	s, err := NewShader(p.fsys, src.Vertex, src.Fragment, src.Defines)
	if err != nil {
		return nil, err
	}
	p.cache[key] = s
	return s, nil
}

// Dispose deletes every cached program
func (p *Programs) Dispose() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k, s := range p.cache {
		s.Delete()
		delete(p.cache, k)
	}
}
