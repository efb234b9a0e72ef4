package ipc

import (
	"context"

	"github.com/matjam/slidepager/internal/deck"
	"github.com/matjam/slidepager/internal/transition"
)

type CommandType string

const (
	CommandTransition CommandType = "transition"
	CommandCancel     CommandType = "cancel"
	CommandStop       CommandType = "stop"
)

// Command is handed from an IPC handler to the render loop. The handler
// waits for the loop to accept or reject it.
type Command struct {
	Type       CommandType        `json:"type"`
	Transition *TransitionRequest `json:"transition,omitempty"`

	reply chan error
}

// TransitionRequest asks for one slide. Empty images fall back to the
// configured defaults and a missing step count to the configured one; an
// explicit count must be positive. Images travel as base64 in JSON.
type TransitionRequest struct {
	Direction string `json:"direction"`
	Steps     *int   `json:"steps,omitempty"`
	Before    []byte `json:"before,omitempty"`
	After     []byte `json:"after,omitempty"`
}

// StepCount returns a request step count of n.
func StepCount(n int) *int {
	return &n
}

// Snapshot is what the render loop last published about itself.
type Snapshot struct {
	Phase    string            `json:"phase"`
	Slide    transition.State  `json:"slide"`
	Elements map[string]string `json:"elements"`
}

type ManagerInterface interface {
	Status() Snapshot
	DefaultSteps() int
	DefaultImages(ctx context.Context) (before, after []byte, err error)
	Submit(ctx context.Context, cmd Command) error
	Deck() *deck.Deck
}

type Response struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type StatusResponse struct {
	Status   string            `json:"status"`
	Message  string            `json:"message"`
	Version  string            `json:"version"`
	PID      int               `json:"pid"`
	Socket   string            `json:"socket"`
	Config   string            `json:"config"`
	Phase    string            `json:"phase"`
	Slide    transition.State  `json:"slide"`
	Elements map[string]string `json:"elements"`
	Page     string            `json:"page,omitempty"`
	Pages    int               `json:"pages"`
}
