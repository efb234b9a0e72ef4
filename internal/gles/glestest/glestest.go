// Package glestest provides a recording gles.Context for tests. It keeps
// just enough GL state (bindings, buffer contents, texture uploads) to let
// tests assert on what would have been drawn.
package glestest

import (
	"github.com/matjam/slidepager/internal/gles"
)

type AttribPointer struct {
	Buffer     uint32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     int
}

type Upload struct {
	Texture uint32
	Width   int32
	Height  int32
	Format  uint32
	Type    uint32
	Pixels  []byte
}

// Draw is a snapshot taken at every DrawArrays call.
type Draw struct {
	Mode    uint32
	First   int32
	Count   int32
	Program uint32
	Texture uint32
	// Attribs holds the vertex data bound to every enabled attribute.
	Attribs map[uint32][]float32
	// Image is the most recent upload into the bound texture.
	Image Upload
}

type shaderObj struct {
	kind     uint32
	source   string
	compiled bool
	log      string
}

// Context is a fake gles.Context. Set CompileErrors or LinkError before
// use to simulate driver failures.
type Context struct {
	// CompileErrors maps a shader kind to the info log the fake driver
	// reports when compiling a shader of that kind.
	CompileErrors map[uint32]string
	// LinkError, when set, makes every LinkProgram fail with this log.
	LinkError string

	Calls []string

	next       uint32
	shaders    map[uint32]*shaderObj
	programs   map[uint32]bool
	attribs    map[string]int32
	uniforms   map[string]int32
	Uniforms   map[int32][]float32
	Buffers    map[uint32][]float32
	Pointers   map[uint32]AttribPointer
	Enabled    map[uint32]bool
	Textures   map[uint32]bool
	TexParams  map[uint32]int32
	PixelStore map[uint32]int32
	Uploads    []Upload
	Draws      []Draw
	Deleted    []uint32

	ProgramsCreated int
	ShadersCreated  int
	BuffersCreated  int
	TexturesCreated int
	Clears          int

	ViewportRect [4]int32
	ClearRGBA    [4]float32

	program      uint32
	arrayBuffer  uint32
	texture      uint32
	activeUnit   uint32
	lastUploaded map[uint32]Upload
}

var _ gles.Context = (*Context)(nil)

func New() *Context {
	return &Context{
		CompileErrors: map[uint32]string{},
		shaders:       map[uint32]*shaderObj{},
		programs:      map[uint32]bool{},
		attribs:       map[string]int32{},
		uniforms:      map[string]int32{},
		Uniforms:      map[int32][]float32{},
		Buffers:       map[uint32][]float32{},
		Pointers:      map[uint32]AttribPointer{},
		Enabled:       map[uint32]bool{},
		Textures:      map[uint32]bool{},
		TexParams:     map[uint32]int32{},
		PixelStore:    map[uint32]int32{},
		lastUploaded:  map[uint32]Upload{},
	}
}

func (c *Context) id() uint32 {
	c.next++
	return c.next
}

func (c *Context) call(name string) {
	c.Calls = append(c.Calls, name)
}

// BoundTexture returns the texture bound to TEXTURE_2D.
func (c *Context) BoundTexture() uint32 { return c.texture }

// BoundArrayBuffer returns the buffer bound to ARRAY_BUFFER.
func (c *Context) BoundArrayBuffer() uint32 { return c.arrayBuffer }

// CurrentProgram returns the program passed to the last UseProgram.
func (c *Context) CurrentProgram() uint32 { return c.program }

// ShaderSourceOf returns the source given to a shader object.
func (c *Context) ShaderSourceOf(shader uint32) string {
	if s, ok := c.shaders[shader]; ok {
		return s.source
	}
	return ""
}

// Live reports whether a shader or program handle has not been deleted.
func (c *Context) Live(handle uint32) bool {
	if _, ok := c.shaders[handle]; ok {
		return true
	}
	return c.programs[handle]
}

func (c *Context) CreateShader(kind uint32) uint32 {
	c.call("CreateShader")
	c.ShadersCreated++
	id := c.id()
	c.shaders[id] = &shaderObj{kind: kind}
	return id
}

func (c *Context) ShaderSource(shader uint32, source string) {
	c.call("ShaderSource")
	if s, ok := c.shaders[shader]; ok {
		s.source = source
	}
}

func (c *Context) CompileShader(shader uint32) {
	c.call("CompileShader")
	s, ok := c.shaders[shader]
	if !ok {
		return
	}
	if msg, fail := c.CompileErrors[s.kind]; fail {
		s.compiled = false
		s.log = msg
		return
	}
	s.compiled = true
}

func (c *Context) ShaderCompiled(shader uint32) bool {
	s, ok := c.shaders[shader]
	return ok && s.compiled
}

func (c *Context) ShaderInfoLog(shader uint32) string {
	if s, ok := c.shaders[shader]; ok {
		return s.log
	}
	return ""
}

func (c *Context) DeleteShader(shader uint32) {
	c.call("DeleteShader")
	delete(c.shaders, shader)
	c.Deleted = append(c.Deleted, shader)
}

func (c *Context) CreateProgram() uint32 {
	c.call("CreateProgram")
	c.ProgramsCreated++
	id := c.id()
	c.programs[id] = true
	return id
}

func (c *Context) AttachShader(program, shader uint32) {
	c.call("AttachShader")
}

func (c *Context) LinkProgram(program uint32) {
	c.call("LinkProgram")
}

func (c *Context) ProgramLinked(program uint32) bool {
	return c.programs[program] && c.LinkError == ""
}

func (c *Context) ProgramInfoLog(program uint32) string {
	return c.LinkError
}

func (c *Context) UseProgram(program uint32) {
	c.call("UseProgram")
	c.program = program
}

func (c *Context) DeleteProgram(program uint32) {
	c.call("DeleteProgram")
	delete(c.programs, program)
	c.Deleted = append(c.Deleted, program)
}

func (c *Context) GetAttribLocation(program uint32, name string) int32 {
	if loc, ok := c.attribs[name]; ok {
		return loc
	}
	loc := int32(len(c.attribs))
	c.attribs[name] = loc
	return loc
}

func (c *Context) GetUniformLocation(program uint32, name string) int32 {
	if loc, ok := c.uniforms[name]; ok {
		return loc
	}
	loc := int32(len(c.uniforms))
	c.uniforms[name] = loc
	return loc
}

func (c *Context) Uniform1i(location int32, v int32) {
	c.call("Uniform1i")
	c.Uniforms[location] = []float32{float32(v)}
}

func (c *Context) Uniform2f(location int32, x, y float32) {
	c.call("Uniform2f")
	c.Uniforms[location] = []float32{x, y}
}

func (c *Context) CreateBuffer() uint32 {
	c.call("CreateBuffer")
	c.BuffersCreated++
	id := c.id()
	c.Buffers[id] = nil
	return id
}

func (c *Context) BindBuffer(target, buffer uint32) {
	c.call("BindBuffer")
	if target == gles.ArrayBuffer {
		c.arrayBuffer = buffer
	}
}

func (c *Context) BufferData(target uint32, data []float32, usage uint32) {
	c.call("BufferData")
	if target != gles.ArrayBuffer || c.arrayBuffer == 0 {
		return
	}
	c.Buffers[c.arrayBuffer] = append([]float32(nil), data...)
}

func (c *Context) DeleteBuffer(buffer uint32) {
	c.call("DeleteBuffer")
	delete(c.Buffers, buffer)
	c.Deleted = append(c.Deleted, buffer)
}

func (c *Context) EnableVertexAttribArray(index uint32) {
	c.call("EnableVertexAttribArray")
	c.Enabled[index] = true
}

func (c *Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	c.call("VertexAttribPointer")
	c.Pointers[index] = AttribPointer{
		Buffer:     c.arrayBuffer,
		Size:       size,
		Type:       xtype,
		Normalized: normalized,
		Stride:     stride,
		Offset:     offset,
	}
}

func (c *Context) CreateTexture() uint32 {
	c.call("CreateTexture")
	c.TexturesCreated++
	id := c.id()
	c.Textures[id] = true
	return id
}

func (c *Context) ActiveTexture(unit uint32) {
	c.call("ActiveTexture")
	c.activeUnit = unit
}

func (c *Context) BindTexture(target, texture uint32) {
	c.call("BindTexture")
	if target == gles.Texture2D {
		c.texture = texture
	}
}

func (c *Context) TexParameteri(target, pname uint32, param int32) {
	c.call("TexParameteri")
	c.TexParams[pname] = param
}

func (c *Context) PixelStorei(pname uint32, param int32) {
	c.call("PixelStorei")
	c.PixelStore[pname] = param
}

func (c *Context) TexImage2D(target uint32, level int32, width, height int32, format, xtype uint32, pixels []byte) {
	c.call("TexImage2D")
	u := Upload{
		Texture: c.texture,
		Width:   width,
		Height:  height,
		Format:  format,
		Type:    xtype,
		Pixels:  append([]byte(nil), pixels...),
	}
	c.Uploads = append(c.Uploads, u)
	c.lastUploaded[c.texture] = u
}

func (c *Context) DeleteTexture(texture uint32) {
	c.call("DeleteTexture")
	delete(c.Textures, texture)
	c.Deleted = append(c.Deleted, texture)
}

func (c *Context) Viewport(x, y, width, height int32) {
	c.call("Viewport")
	c.ViewportRect = [4]int32{x, y, width, height}
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.call("ClearColor")
	c.ClearRGBA = [4]float32{r, g, b, a}
}

func (c *Context) Clear(mask uint32) {
	c.call("Clear")
	c.Clears++
}

func (c *Context) DrawArrays(mode uint32, first, count int32) {
	c.call("DrawArrays")
	d := Draw{
		Mode:    mode,
		First:   first,
		Count:   count,
		Program: c.program,
		Texture: c.texture,
		Attribs: map[uint32][]float32{},
		Image:   c.lastUploaded[c.texture],
	}
	for index, enabled := range c.Enabled {
		if !enabled {
			continue
		}
		p, ok := c.Pointers[index]
		if !ok {
			continue
		}
		d.Attribs[index] = append([]float32(nil), c.Buffers[p.Buffer]...)
	}
	c.Draws = append(c.Draws, d)
}

// AttribLocation returns the location the fake handed out for name, or -1.
func (c *Context) AttribLocation(name string) int32 {
	if loc, ok := c.attribs[name]; ok {
		return loc
	}
	return -1
}

// UniformLocation returns the location the fake handed out for name, or -1.
func (c *Context) UniformLocation(name string) int32 {
	if loc, ok := c.uniforms[name]; ok {
		return loc
	}
	return -1
}
