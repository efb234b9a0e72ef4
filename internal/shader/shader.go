package shader

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/matjam/slidepager/internal/gles"
)

// VertexSource converts pixel coordinates in a_position to clip space using
// u_resolution, with y growing downwards like a 2D canvas.
const VertexSource = `
    attribute vec2 a_position;
    attribute vec2 a_texCoord;
    uniform vec2 u_resolution;
    varying vec2 v_texCoord;

    void main() {
        vec2 zeroToOne = a_position / u_resolution;
        vec2 clipSpace = zeroToOne * 2.0 - 1.0;
        gl_Position = vec4(clipSpace * vec2(1.0, -1.0), 0.0, 1.0);
        v_texCoord = a_texCoord;
    }
`

const FragmentSource = `
    #ifdef GL_ES
    precision mediump float;
    #endif
    uniform sampler2D u_image;
    varying vec2 v_texCoord;

    void main() {
        gl_FragColor = texture2D(u_image, v_texCoord);
    }
`

type Kind uint32

const (
	Vertex   = Kind(gles.VertexShader)
	Fragment = Kind(gles.FragmentShader)
)

func (k Kind) String() string {
	switch k {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	}
	return fmt.Sprintf("shader(0x%x)", uint32(k))
}

// ShaderCompileError carries the driver's info log for a failed compile.
type ShaderCompileError struct {
	Kind Kind
	Log  string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%v shader compile error: %s", e.Kind, e.Log)
}

// ProgramLinkError carries the driver's info log for a failed link.
type ProgramLinkError struct {
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("program link error: %s", e.Log)
}

// Compile creates a shader object of the given kind and compiles source
// into it. On failure the shader object is deleted.
func Compile(gl gles.Context, source string, kind Kind) (uint32, error) {
	sh := gl.CreateShader(uint32(kind))
	if sh == 0 {
		return 0, fmt.Errorf("unable to create %v shader object", kind)
	}
	gl.ShaderSource(sh, source)
	gl.CompileShader(sh)

	if !gl.ShaderCompiled(sh) {
		msg := gl.ShaderInfoLog(sh)
		gl.DeleteShader(sh)
		return 0, &ShaderCompileError{Kind: kind, Log: msg}
	}
	return sh, nil
}

// Link attaches both shaders to a new program and links it.
func Link(gl gles.Context, vertex, fragment uint32) (uint32, error) {
	prog := gl.CreateProgram()
	if prog == 0 {
		return 0, fmt.Errorf("unable to create program object")
	}
	gl.AttachShader(prog, vertex)
	gl.AttachShader(prog, fragment)
	gl.LinkProgram(prog)

	if !gl.ProgramLinked(prog) {
		msg := gl.ProgramInfoLog(prog)
		gl.DeleteProgram(prog)
		return 0, &ProgramLinkError{Log: msg}
	}
	return prog, nil
}

// Build compiles and links a vertex/fragment pair. The shader objects are
// released once the program exists, or as soon as any step fails.
func Build(gl gles.Context, vertexSrc, fragmentSrc string) (uint32, error) {
	vs, err := Compile(gl, vertexSrc, Vertex)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vs)

	fs, err := Compile(gl, fragmentSrc, Fragment)
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(fs)

	prog, err := Link(gl, vs, fs)
	if err != nil {
		return 0, err
	}
	log.Debugf("linked shader program %d", prog)
	return prog, nil
}
