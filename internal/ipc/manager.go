package ipc

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/matjam/slidepager/internal/deck"
	"github.com/matjam/slidepager/internal/frame"
	"github.com/matjam/slidepager/internal/status"
	"github.com/matjam/slidepager/internal/transition"
	"github.com/matjam/slidepager/internal/types"
)

var ErrStopped = errors.New("render loop is not running")

// Display is the window the render loop presents to.
type Display interface {
	frame.Host
	Present()
	Wait()
	Poll()
	ShouldClose() bool
}

// Slides starts and cancels slides from encoded images.
type Slides interface {
	Transition(dir types.Direction, steps int, before, after []byte) (*frame.Handle, error)
	Cancel()
}

// Progress reports the state of the slide engine.
type Progress interface {
	Phase() transition.Phase
	State() transition.State
}

// DefaultImages supplies the images used when a request carries none.
type DefaultImages interface {
	Load(ctx context.Context) (before, after []byte, err error)
}

type ManagerConfig struct {
	Slides    Slides
	Progress  Progress
	Scheduler *frame.Scheduler
	Display   Display
	Board     *status.Board
	Defaults  DefaultImages
	Deck      *deck.Deck
	Steps     int
}

// Manager runs the render loop and feeds it commands from the IPC server.
type Manager struct {
	sync.Mutex
	cfg      ManagerConfig
	cmds     chan Command
	done     chan struct{}
	snapshot Snapshot
}

func NewManager(cfg ManagerConfig) *Manager {
	if cfg.Steps <= 0 {
		cfg.Steps = 12
	}
	if cfg.Board == nil {
		cfg.Board = status.DefaultBoard()
	}
	if cfg.Deck == nil {
		cfg.Deck = deck.New(nil)
	}
	return &Manager{
		cfg:  cfg,
		cmds: make(chan Command, 1),
		done: make(chan struct{}),
	}
}

func (m *Manager) Status() Snapshot {
	m.Lock()
	defer m.Unlock()
	s := m.snapshot
	s.Elements = m.cfg.Board.Snapshot()
	return s
}

func (m *Manager) Deck() *deck.Deck {
	return m.cfg.Deck
}

func (m *Manager) DefaultSteps() int {
	return m.cfg.Steps
}

func (m *Manager) DefaultImages(ctx context.Context) ([]byte, []byte, error) {
	if m.cfg.Defaults == nil {
		return nil, nil, errors.New("no default images configured")
	}
	return m.cfg.Defaults.Load(ctx)
}

// Submit queues cmd for the render loop and waits until the loop has
// accepted or rejected it.
func (m *Manager) Submit(ctx context.Context, cmd Command) error {
	cmd.reply = make(chan error, 1)

	select {
	case m.cmds <- cmd:
	case <-m.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	m.cfg.Display.RequestFrame()

	select {
	case err := <-cmd.reply:
		return err
	case <-m.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run owns the render thread until a stop command arrives or the window is
// closed. Each pass handles at most one command and draws at most one
// frame.
func (m *Manager) Run() {
	log.Info("Starting render loop ...")
	defer close(m.done)

	m.publish()
	running := true
	for running {
		select {
		case cmd := <-m.cmds:
			err := m.handle(cmd)
			if cmd.Type == CommandStop {
				running = false
			}
			cmd.reply <- err
		default:
		}

		if m.cfg.Scheduler.Tick() {
			m.cfg.Display.Present()
		}
		m.publish()

		if !running {
			break
		}
		if m.cfg.Display.ShouldClose() {
			log.Info("Window closed")
			break
		}
		if m.cfg.Scheduler.Pending() || len(m.cmds) > 0 {
			m.cfg.Display.Poll()
		} else {
			m.cfg.Display.Wait()
		}
	}

	m.cfg.Slides.Cancel()
	m.publish()
	log.Info("Render loop stopped.")
}

func (m *Manager) handle(cmd Command) error {
	switch cmd.Type {
	case CommandStop:
		log.Info("Received stop command")
		return nil
	case CommandCancel:
		log.Info("Received cancel command")
		m.cfg.Slides.Cancel()
		return nil
	case CommandTransition:
		req := cmd.Transition
		if req == nil {
			return fmt.Errorf("%w: transition command without a request", transition.ErrInvalidParameter)
		}
		dir, err := types.ParseDirection(req.Direction)
		if err != nil {
			return fmt.Errorf("%w: %w", transition.ErrInvalidParameter, err)
		}
		steps := m.cfg.Steps
		if req.Steps != nil {
			steps = *req.Steps
		}
		log.Infof("Received transition command: %v over %d steps", dir, steps)
		_, err = m.cfg.Slides.Transition(dir, steps, req.Before, req.After)
		if err != nil {
			log.Errorf("Failed to start transition: %v", err)
		}
		return err
	}
	return fmt.Errorf("unknown command %q", cmd.Type)
}

func (m *Manager) publish() {
	phase := m.cfg.Progress.Phase()
	state := m.cfg.Progress.State()

	m.Lock()
	defer m.Unlock()
	m.snapshot.Phase = phase.String()
	m.snapshot.Slide = state
}
