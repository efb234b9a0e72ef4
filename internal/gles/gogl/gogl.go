// Package gogl implements gles.Context on top of the go-gl OpenGL 2.1
// bindings. A GL context must be current on the calling OS thread before
// New is called.
package gogl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/matjam/slidepager/internal/gles"
)

type Context struct{}

var _ gles.Context = (*Context)(nil)

// New loads the GL function pointers for the current context.
func New() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("opengl init failed: %w", err)
	}
	return &Context{}, nil
}

// Version returns the driver's GL_VERSION string.
func (c *Context) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func (c *Context) CreateShader(kind uint32) uint32 {
	return gl.CreateShader(kind)
}

func (c *Context) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (c *Context) CompileShader(shader uint32) {
	gl.CompileShader(shader)
}

func (c *Context) ShaderCompiled(shader uint32) bool {
	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ShaderInfoLog(shader uint32) string {
	var logLength int32
	gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (c *Context) DeleteShader(shader uint32) {
	gl.DeleteShader(shader)
}

func (c *Context) CreateProgram() uint32 {
	return gl.CreateProgram()
}

func (c *Context) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
}

func (c *Context) LinkProgram(program uint32) {
	gl.LinkProgram(program)
}

func (c *Context) ProgramLinked(program uint32) bool {
	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (c *Context) ProgramInfoLog(program uint32) string {
	var logLength int32
	gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(program, logLength, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (c *Context) UseProgram(program uint32) {
	gl.UseProgram(program)
}

func (c *Context) DeleteProgram(program uint32) {
	gl.DeleteProgram(program)
}

func (c *Context) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}

func (c *Context) Uniform1i(location int32, v int32) {
	gl.Uniform1i(location, v)
}

func (c *Context) Uniform2f(location int32, x, y float32) {
	gl.Uniform2f(location, x, y)
}

func (c *Context) CreateBuffer() uint32 {
	var b uint32
	gl.GenBuffers(1, &b)
	return b
}

func (c *Context) BindBuffer(target, buffer uint32) {
	gl.BindBuffer(target, buffer)
}

func (c *Context) BufferData(target uint32, data []float32, usage uint32) {
	if len(data) == 0 {
		gl.BufferData(target, 0, nil, usage)
		return
	}
	gl.BufferData(target, len(data)*4, gl.Ptr(data), usage)
}

func (c *Context) DeleteBuffer(buffer uint32) {
	gl.DeleteBuffers(1, &buffer)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	gl.EnableVertexAttribArray(index)
}

func (c *Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
}

func (c *Context) CreateTexture() uint32 {
	var t uint32
	gl.GenTextures(1, &t)
	return t
}

func (c *Context) ActiveTexture(unit uint32) {
	gl.ActiveTexture(unit)
}

func (c *Context) BindTexture(target, texture uint32) {
	gl.BindTexture(target, texture)
}

func (c *Context) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (c *Context) PixelStorei(pname uint32, param int32) {
	gl.PixelStorei(pname, param)
}

func (c *Context) TexImage2D(target uint32, level int32, width, height int32, format, xtype uint32, pixels []byte) {
	if len(pixels) == 0 {
		gl.TexImage2D(target, level, int32(format), width, height, 0, format, xtype, nil)
		return
	}
	gl.TexImage2D(target, level, int32(format), width, height, 0, format, xtype, gl.Ptr(pixels))
}

func (c *Context) DeleteTexture(texture uint32) {
	gl.DeleteTextures(1, &texture)
}

func (c *Context) Viewport(x, y, width, height int32) {
	gl.Viewport(x, y, width, height)
}

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) Clear(mask uint32) {
	gl.Clear(mask)
}

func (c *Context) DrawArrays(mode uint32, first, count int32) {
	gl.DrawArrays(mode, first, count)
}
