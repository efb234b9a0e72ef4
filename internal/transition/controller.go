package transition

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/matjam/slidepager/internal/frame"
	"github.com/matjam/slidepager/internal/geometry"
	"github.com/matjam/slidepager/internal/gles"
	"github.com/matjam/slidepager/internal/shader"
	"github.com/matjam/slidepager/internal/status"
	"github.com/matjam/slidepager/internal/texture"
	"github.com/matjam/slidepager/internal/types"
)

var (
	ErrInitialization   = errors.New("initialization failed")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Surface is the canvas being drawn to.
type Surface interface {
	Size() (width, height int)
}

type Phase int

const (
	Uninitialized Phase = iota
	Ready
	Animating
)

func (p Phase) String() string {
	switch p {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case Animating:
		return "animating"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// RenderContext holds the GL objects created by Initialize.
type RenderContext struct {
	Width      int
	Height     int
	Program    uint32
	Texture    uint32
	Position   uint32 // a_position attribute location
	TexCoord   uint32 // a_texCoord attribute location
	Resolution int32  // u_resolution uniform location
}

type Option func(*Controller)

// WithStatus sets where progress is reported.
func WithStatus(sink status.Sink) Option {
	return func(c *Controller) {
		c.status = sink
	}
}

// Controller owns the render context and runs one slide at a time. All
// methods must be called from the thread that owns the GL context.
type Controller struct {
	gl       gles.Context
	surface  Surface
	sched    *frame.Scheduler
	status   status.Sink
	geometry *geometry.Buffer
	uploader *texture.Uploader

	rc     *RenderContext
	phase  Phase
	state  State
	before types.ImageBuffer
	after  types.ImageBuffer
	handle *frame.Handle
}

func NewController(gl gles.Context, surface Surface, sched *frame.Scheduler, opts ...Option) *Controller {
	c := &Controller{
		gl:       gl,
		surface:  surface,
		sched:    sched,
		geometry: geometry.NewBuffer(gl),
		uploader: texture.NewUploader(gl),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Initialize builds the shader program and texture and sizes the viewport
// to the surface. Once it has succeeded further calls do nothing.
func (c *Controller) Initialize() error {
	if c.rc != nil {
		return nil
	}
	if c.gl == nil || c.surface == nil {
		return fmt.Errorf("%w: no rendering surface", ErrInitialization)
	}
	width, height := c.surface.Size()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: surface is %dx%d", ErrInitialization, width, height)
	}

	prog, err := shader.Build(c.gl, shader.VertexSource, shader.FragmentSource)
	if err != nil {
		return fmt.Errorf("building shader program: %w", err)
	}
	c.gl.UseProgram(prog)

	pos := c.gl.GetAttribLocation(prog, "a_position")
	texCoord := c.gl.GetAttribLocation(prog, "a_texCoord")
	if pos < 0 || texCoord < 0 {
		c.gl.DeleteProgram(prog)
		return fmt.Errorf("%w: shader program is missing its vertex attributes", ErrInitialization)
	}

	tex, err := c.uploader.Setup()
	if err != nil {
		c.gl.DeleteProgram(prog)
		return fmt.Errorf("%w: %w", ErrInitialization, err)
	}

	resolution := c.gl.GetUniformLocation(prog, "u_resolution")
	c.gl.Uniform1i(c.gl.GetUniformLocation(prog, "u_image"), 0)
	c.gl.Uniform2f(resolution, float32(width), float32(height))
	c.gl.Viewport(0, 0, int32(width), int32(height))
	c.gl.ClearColor(0, 0, 0, 0)

	c.rc = &RenderContext{
		Width:      width,
		Height:     height,
		Program:    prog,
		Texture:    tex,
		Position:   uint32(pos),
		TexCoord:   uint32(texCoord),
		Resolution: resolution,
	}
	c.phase = Ready
	c.report(status.ElementState, c.phase.String())

	log.Infof("render context ready: %dx%d, program %d, texture %d", width, height, prog, tex)
	return nil
}

// Context returns the render context, or nil before Initialize.
func (c *Controller) Context() *RenderContext {
	return c.rc
}

func (c *Controller) Phase() Phase {
	if c.phase == Animating && c.handle != nil {
		// the handle may have been cancelled directly
		select {
		case <-c.handle.Done():
			c.phase = Ready
			c.handle = nil
		default:
		}
	}
	return c.phase
}

func (c *Controller) State() State {
	return c.state
}

// Transition starts sliding before out and after in. It returns once the
// first frame has been requested; a slide already running is abandoned.
func (c *Controller) Transition(dir types.Direction, steps int, before, after types.ImageBuffer) (*frame.Handle, error) {
	if c.rc == nil {
		return nil, fmt.Errorf("%w: controller not initialized", ErrInitialization)
	}
	state, err := NewState(dir, steps, c.rc.Width, c.rc.Height)
	if err != nil {
		return nil, err
	}
	if err := before.Validate(); err != nil {
		return nil, fmt.Errorf("%w: before image: %w", ErrInvalidParameter, err)
	}
	if err := after.Validate(); err != nil {
		return nil, fmt.Errorf("%w: after image: %w", ErrInvalidParameter, err)
	}

	if c.Phase() == Animating {
		log.Debugf("preempting %v slide at %.1f/%.0f", c.state.Direction, c.state.Progress, c.state.TotalExtent)
	}

	c.state = state
	c.before = before
	c.after = after
	c.phase = Animating
	c.report(status.ElementDirection, dir.String())
	c.report(status.ElementState, c.phase.String())

	log.Debugf("sliding %v over %d steps of %.2fpx", dir, steps, state.StepSize)
	c.handle = c.sched.Schedule(frame.TaskFunc(c.tick))
	return c.handle, nil
}

// Cancel stops the running slide, leaving its last frame on screen.
func (c *Controller) Cancel() {
	if c.handle == nil {
		return
	}
	c.handle.Cancel()
	c.handle = nil
	if c.rc != nil {
		c.phase = Ready
		c.report(status.ElementState, c.phase.String())
	}
}

// Close cancels any slide and deletes the GL objects.
func (c *Controller) Close() {
	c.Cancel()
	c.geometry.Release()
	c.uploader.Release()
	if c.rc != nil {
		c.gl.DeleteProgram(c.rc.Program)
		c.rc = nil
	}
	c.phase = Uninitialized
}

func (c *Controller) tick() bool {
	c.state.Advance()

	beforeOffset, afterOffset := Offsets(c.state.Direction, c.state.Progress, c.state.TotalExtent)
	c.gl.Clear(gles.ColorBufferBit)
	// the incoming image is drawn last so it covers the outgoing one
	c.draw(c.before, beforeOffset)
	c.draw(c.after, afterOffset)

	c.report(status.ElementProgress, fmt.Sprintf("%.0f/%.0f", c.state.Progress, c.state.TotalExtent))

	if c.state.Done() {
		c.phase = Ready
		c.handle = nil
		c.report(status.ElementState, c.phase.String())
		log.Debugf("%v slide finished after %d frames", c.state.Direction, c.state.Frame)
		return true
	}
	return false
}

func (c *Controller) draw(img types.ImageBuffer, at types.Offset) {
	if err := c.uploader.Upload(img); err != nil {
		log.Errorf("texture upload failed: %v", err)
		return
	}
	c.geometry.SetRectangle(float32(at.X), float32(at.Y), float32(c.rc.Width), float32(c.rc.Height), c.rc.Position)
	c.geometry.SetRectangle(0, 0, 1, 1, c.rc.TexCoord)
	c.gl.DrawArrays(gles.Triangles, 0, geometry.VertexCount)
}

// report updates a status element. Status displays are optional, so a
// failure is only logged.
func (c *Controller) report(id, text string) {
	if c.status == nil {
		return
	}
	if err := c.status.SetText(id, text); err != nil {
		log.Warnf("status update %q failed: %v", id, err)
	}
}
