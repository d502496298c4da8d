package graphics

import (
	"fmt"
	"io/fs"
	"strings"

	"synthwave/internal/graphics/glsl"
	"synthwave/internal/scene"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// Shader represents an OpenGL shader program
type Shader struct {
	ID       uint32
	name     string
	location map[string]int32
}

// NewShader creates a program from vertex and fragment sources in fsys.
// defines are injected into both stages.
func NewShader(fsys fs.FS, vertexPath, fragmentPath string, defines map[string]string) (*Shader, error) {
	vertexSource, err := glsl.Load(fsys, vertexPath, defines)
	if err != nil {
		return nil, fmt.Errorf("vertex shader: %w", err)
	}
	fragmentSource, err := glsl.Load(fsys, fragmentPath, defines)
	if err != nil {
		return nil, fmt.Errorf("fragment shader: %w", err)
	}

	program, err := compileProgram(vertexSource, fragmentSource)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fragmentPath, err)
	}

	return &Shader{ID: program, name: fragmentPath, location: make(map[string]int32)}, nil
}

// Use activates the shader program
func (s *Shader) Use() {
	gl.UseProgram(s.ID)
}

// Delete releases the program
func (s *Shader) Delete() {
	if s.ID != 0 {
		gl.DeleteProgram(s.ID)
		s.ID = 0
	}
}

func (s *Shader) loc(name string) int32 {
	if l, ok := s.location[name]; ok {
		return l
	}
	l := gl.GetUniformLocation(s.ID, gl.Str(name+"\x00"))
	s.location[name] = l
	return l
}

// SetBool sets a boolean uniform
func (s *Shader) SetBool(name string, value bool) {
	var intValue int32
	if value {
		intValue = 1
	}
	gl.Uniform1i(s.loc(name), intValue)
}

// SetFloat sets a float uniform
func (s *Shader) SetFloat(name string, value float32) {
	gl.Uniform1f(s.loc(name), value)
}

// SetFloats sets a float array uniform
func (s *Shader) SetFloats(name string, values []float32) {
	if len(values) == 0 {
		return
	}
	gl.Uniform1fv(s.loc(name), int32(len(values)), &values[0])
}

// SetVector2 sets a vec2 uniform
func (s *Shader) SetVector2(name string, x, y float32) {
	gl.Uniform2f(s.loc(name), x, y)
}

// SetVector3 sets a vec3 uniform
func (s *Shader) SetVector3(name string, x, y, z float32) {
	gl.Uniform3f(s.loc(name), x, y, z)
}

// SetVector3s sets a vec3 array uniform
func (s *Shader) SetVector3s(name string, values []mgl32.Vec3) {
	if len(values) == 0 {
		return
	}
	gl.Uniform3fv(s.loc(name), int32(len(values)), &values[0][0])
}

// SetVector4 sets a vec4 uniform
func (s *Shader) SetVector4(name string, v mgl32.Vec4) {
	gl.Uniform4f(s.loc(name), v[0], v[1], v[2], v[3])
}

// SetMatrix4 sets a 4x4 matrix uniform
func (s *Shader) SetMatrix4(name string, value *float32) {
	gl.UniformMatrix4fv(s.loc(name), 1, false, value)
}

// SetSampler binds texture to unit and points the sampler uniform at it
func (s *Shader) SetSampler(name string, unit uint32, texture uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	gl.BindTexture(gl.TEXTURE_2D, texture)
	gl.Uniform1i(s.loc(name), int32(unit))
}

// ApplyUniforms uploads a material's uniform set
func (s *Shader) ApplyUniforms(u *scene.Uniforms) {
	u.Each(func(v scene.Uniform) {
		switch v.Kind {
		case scene.UniformFloat:
			s.SetFloat(v.Name, v.Value[0])
		case scene.UniformVec3:
			s.SetVector3(v.Name, v.Value[0], v.Value[1], v.Value[2])
		case scene.UniformVec4:
			s.SetVector4(v.Name, v.Value)
		}
	})
}

// Helper functions
func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertexShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)

		return 0, fmt.Errorf("failed to link program: %v", log)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)

		return 0, fmt.Errorf("failed to compile shader: %v", log)
	}
	return shader, nil
}
