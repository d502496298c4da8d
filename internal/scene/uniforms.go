package scene

import "github.com/go-gl/mathgl/mgl32"

// UniformKind is the GLSL type of a uniform value
type UniformKind int

const (
	UniformFloat UniformKind = iota
	UniformVec3
	UniformVec4
)

// Uniform is a single named shader input. Only the first N components of
// Value are meaningful, N depending on Kind.
type Uniform struct {
	Name  string
	Kind  UniformKind
	Value mgl32.Vec4
}

// Uniforms is an insertion-ordered uniform set
type Uniforms struct {
	list  []Uniform
	index map[string]int
}

func NewUniforms() *Uniforms {
	return &Uniforms{index: make(map[string]int)}
}

func (u *Uniforms) set(name string, kind UniformKind, v mgl32.Vec4) {
	if i, ok := u.index[name]; ok {
		u.list[i].Kind = kind
		u.list[i].Value = v
		return
	}
	u.index[name] = len(u.list)
	u.list = append(u.list, Uniform{Name: name, Kind: kind, Value: v})
}

// SetFloat sets a float uniform
func (u *Uniforms) SetFloat(name string, v float32) {
	u.set(name, UniformFloat, mgl32.Vec4{v})
}

// SetVec3 sets a vec3 uniform
func (u *Uniforms) SetVec3(name string, v mgl32.Vec3) {
	u.set(name, UniformVec3, v.Vec4(0))
}

// SetVec4 sets a vec4 uniform
func (u *Uniforms) SetVec4(name string, v mgl32.Vec4) {
	u.set(name, UniformVec4, v)
}

// Get returns the named uniform
func (u *Uniforms) Get(name string) (Uniform, bool) {
	i, ok := u.index[name]
	if !ok {
		return Uniform{}, false
	}
	return u.list[i], true
}

// Float returns the scalar value of a uniform, 0 when missing
func (u *Uniforms) Float(name string) float32 {
	v, _ := u.Get(name)
	return v.Value[0]
}

// Has reports whether the uniform exists
func (u *Uniforms) Has(name string) bool {
	_, ok := u.index[name]
	return ok
}

// Len returns the number of uniforms
func (u *Uniforms) Len() int {
	return len(u.list)
}

// Each calls fn for every uniform in insertion order
func (u *Uniforms) Each(fn func(Uniform)) {
	for _, v := range u.list {
		fn(v)
	}
}

// Clone returns an independent copy
func (u *Uniforms) Clone() *Uniforms {
	c := &Uniforms{
		list:  make([]Uniform, len(u.list)),
		index: make(map[string]int, len(u.index)),
	}
	copy(c.list, u.list)
	for k, v := range u.index {
		c.index[k] = v
	}
	return c
}
