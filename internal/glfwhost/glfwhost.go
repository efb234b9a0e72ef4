// Package glfwhost owns the native window and GL context the slides are
// drawn into. Every method must be called from the thread that created the
// window.
package glfwhost

import (
	"fmt"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/go-gl/glfw/v3.3/glfw"
)

type Config struct {
	Width   int
	Height  int
	Title   string
	Visible bool
}

// Window is a fixed size GLFW window with a current GL 2.1 context.
type Window struct {
	win *glfw.Window
}

func New(cfg Config) (*Window, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.Title == "" {
		cfg.Title = "slidepager"
	}

	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init failed: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 2)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.TransparentFramebuffer, glfw.True)
	if !cfg.Visible {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window failed: %w", err)
	}
	win.MakeContextCurrent()
	glfw.SwapInterval(1)

	fw, fh := win.GetFramebufferSize()
	log.Debugf("created %dx%d window (framebuffer %dx%d)", cfg.Width, cfg.Height, fw, fh)

	return &Window{win: win}, nil
}

// Size reports the drawable size in pixels.
func (w *Window) Size() (int, int) {
	return w.win.GetFramebufferSize()
}

// RequestFrame wakes a blocked Wait so the next frame is produced promptly.
// It is safe to call from any goroutine.
func (w *Window) RequestFrame() {
	glfw.PostEmptyEvent()
}

func (w *Window) Present() {
	w.win.SwapBuffers()
}

// Wait blocks until a window event or a frame request arrives.
func (w *Window) Wait() {
	glfw.WaitEvents()
}

func (w *Window) Poll() {
	glfw.PollEvents()
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) Close() {
	if w.win != nil {
		w.win.Destroy()
		w.win = nil
	}
	glfw.Terminate()
}
