// Package gles describes the small slice of the OpenGL (ES 2.0 / WebGL 1)
// API the slide renderer needs. Keeping it behind an interface lets the
// transition engine run against a real context (see gles/gogl) or a
// recording fake (see gles/glestest).
package gles

// Enum values, identical to the ones in the GL headers.
const (
	ArrayBuffer      uint32 = 0x8892
	StaticDraw       uint32 = 0x88E4
	Float            uint32 = 0x1406
	UnsignedByte     uint32 = 0x1401
	Triangles        uint32 = 0x0004
	Texture2D        uint32 = 0x0DE1
	Texture0         uint32 = 0x84C0
	RGBA             uint32 = 0x1908
	TextureMinFilter uint32 = 0x2801
	TextureMagFilter uint32 = 0x2800
	TextureWrapS     uint32 = 0x2802
	TextureWrapT     uint32 = 0x2803
	Nearest          uint32 = 0x2600
	ClampToEdge      uint32 = 0x812F
	UnpackAlignment  uint32 = 0x0CF5
	ColorBufferBit   uint32 = 0x4000
	VertexShader     uint32 = 0x8B31
	FragmentShader   uint32 = 0x8B30
)

// Context is a current GL context. All methods must be called from the
// thread that owns the context.
type Context interface {
	CreateShader(kind uint32) uint32
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	ShaderCompiled(shader uint32) bool
	ShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(program uint32)
	ProgramLinked(program uint32) bool
	ProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	GetAttribLocation(program uint32, name string) int32
	GetUniformLocation(program uint32, name string) int32
	Uniform1i(location int32, v int32)
	Uniform2f(location int32, x, y float32)

	CreateBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, data []float32, usage uint32)
	DeleteBuffer(buffer uint32)
	EnableVertexAttribArray(index uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)

	CreateTexture() uint32
	ActiveTexture(unit uint32)
	BindTexture(target, texture uint32)
	TexParameteri(target, pname uint32, param int32)
	PixelStorei(pname uint32, param int32)
	TexImage2D(target uint32, level int32, width, height int32, format, xtype uint32, pixels []byte)
	DeleteTexture(texture uint32)

	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	DrawArrays(mode uint32, first, count int32)
}
