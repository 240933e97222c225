// Package shader provides OpenGL program compilation and the uniform sink
// the scene and view code publish through.
package shader

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/houseview/internal/engine/shader/shaders"
	"github.com/Faultbox/houseview/internal/logger"
)

// Program is a linked GL program that implements Sink. Uniform locations
// are looked up once and cached, including misses (-1).
type Program struct {
	id        uint32
	locations map[string]int32
}

// NewSceneProgram compiles the embedded scene shaders.
func NewSceneProgram() (*Program, error) {
	return NewProgram(shaders.SceneVertexShader, shaders.SceneFragmentShader)
}

// NewProgram compiles and links a program from GLSL sources.
func NewProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	id, err := CompileProgram(vertexSrc, fragmentSrc)
	if err != nil {
		return nil, err
	}
	logger.Debug("shader program linked", zap.Uint32("program", id))
	return &Program{id: id, locations: make(map[string]int32)}, nil
}

// ID returns the GL program name.
func (p *Program) ID() uint32 {
	return p.id
}

// Use makes the program current.
func (p *Program) Use() {
	gl.UseProgram(p.id)
}

// Delete releases the program.
func (p *Program) Delete() {
	if p.id != 0 {
		gl.DeleteProgram(p.id)
		p.id = 0
	}
}

func (p *Program) location(name string) int32 {
	if loc, ok := p.locations[name]; ok {
		return loc
	}
	loc := GetUniform(p.id, name)
	if loc < 0 {
		logger.Debug("uniform not active", zap.String("name", name))
	}
	p.locations[name] = loc
	return loc
}

func (p *Program) SetBool(name string, v bool) {
	var i int32
	if v {
		i = 1
	}
	p.SetInt(name, i)
}

func (p *Program) SetInt(name string, v int32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1i(loc, v)
	}
}

func (p *Program) SetFloat(name string, v float32) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform1f(loc, v)
	}
}

func (p *Program) SetVec2(name string, v mgl32.Vec2) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform2f(loc, v[0], v[1])
	}
}

func (p *Program) SetVec3(name string, v mgl32.Vec3) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform3f(loc, v[0], v[1], v[2])
	}
}

func (p *Program) SetVec4(name string, v mgl32.Vec4) {
	if loc := p.location(name); loc >= 0 {
		gl.Uniform4f(loc, v[0], v[1], v[2], v[3])
	}
}

func (p *Program) SetMat4(name string, v mgl32.Mat4) {
	if loc := p.location(name); loc >= 0 {
		gl.UniformMatrix4fv(loc, 1, false, &v[0])
	}
}

func (p *Program) SetSampler2D(name string, slot int32) {
	p.SetInt(name, slot)
}

// CompileProgram compiles vertex and fragment shaders and links them into a program.
func CompileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vertShader, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vertShader)

	fragShader, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fragShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertShader)
	gl.AttachShader(program, fragShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(program, logLen, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}

	return program, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, string(log))
	}

	return shader, nil
}

// GetUniform returns the uniform location for name, or -1 when inactive.
func GetUniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
