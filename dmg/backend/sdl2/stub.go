//go:build !sdl2

package sdl2

import (
	"errors"

	"github.com/valdr/dotmatrix/dmg/backend"
	"github.com/valdr/dotmatrix/dmg/video"
)

var errUnavailable = errors.New("SDL2 backend not available: build with -tags sdl2 and install the SDL2 development libraries")

// Backend is the stub used when the sdl2 build tag is off.
type Backend struct{}

func New() *Backend {
	return &Backend{}
}

func (s *Backend) Init(config backend.Config) error {
	return errUnavailable
}

func (s *Backend) Update(frame *video.FrameBuffer) error {
	return errUnavailable
}

func (s *Backend) Cleanup() error {
	return nil
}
