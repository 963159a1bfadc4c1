// Package backend defines the presentation surface the core draws to. A
// backend owns rendering and input for one platform (terminal, SDL window,
// none at all) and feeds key events back through callbacks.
package backend

import (
	"github.com/valdr/dotmatrix/dmg/joypad"
	"github.com/valdr/dotmatrix/dmg/video"
)

// Backend is one presentation platform.
type Backend interface {
	// Init configures the backend. Required before the first Update.
	Init(config Config) error

	// Update renders one completed frame and processes platform events.
	Update(frame *video.FrameBuffer) error

	// Cleanup releases platform resources.
	Cleanup() error
}

// Config holds what every backend needs to start up.
type Config struct {
	Title     string
	Scale     int
	ShowDebug bool
	Callbacks Callbacks
}

// Callbacks let a backend talk back to the machine loop.
type Callbacks struct {
	// OnQuit signals that the backend wants to shut down (window closed,
	// quit key pressed).
	OnQuit func()

	// OnKey reports a joypad key transition.
	OnKey func(key joypad.Key, pressed bool)
}
