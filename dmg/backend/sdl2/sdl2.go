//go:build sdl2

// Package sdl2 renders the emulator into an SDL2 window. Building it needs
// the SDL2 development libraries and the sdl2 build tag; default builds get
// the stub instead.
package sdl2

import (
	"fmt"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/valdr/dotmatrix/dmg/backend"
	"github.com/valdr/dotmatrix/dmg/joypad"
	"github.com/valdr/dotmatrix/dmg/video"
)

// shadeColors maps the four DMG shades to RGBA8888, lightest first.
var shadeColors = [4]uint32{
	0xE0F8D0FF,
	0x88C070FF,
	0x346856FF,
	0x081820FF,
}

var keyMap = map[sdl.Keycode]joypad.Key{
	sdl.K_UP:        joypad.Up,
	sdl.K_DOWN:      joypad.Down,
	sdl.K_LEFT:      joypad.Left,
	sdl.K_RIGHT:     joypad.Right,
	sdl.K_z:         joypad.B,
	sdl.K_x:         joypad.A,
	sdl.K_RETURN:    joypad.Start,
	sdl.K_BACKSPACE: joypad.Select,
}

// Backend implements backend.Backend on an SDL2 window with a streaming
// texture the size of the DMG screen, scaled up by the renderer.
type Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	running   bool
	callbacks backend.Callbacks

	pixels [video.FramebufferWidth * video.FramebufferHeight]uint32
}

// New returns an uninitialized SDL2 backend.
func New() *Backend {
	return &Backend{}
}

func (s *Backend) Init(config backend.Config) error {
	s.callbacks = config.Callbacks

	scale := config.Scale
	if scale <= 0 {
		scale = 4
	}

	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return fmt.Errorf("initializing SDL2: %w", err)
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED,
		sdl.WINDOWPOS_CENTERED,
		int32(video.FramebufferWidth*scale),
		int32(video.FramebufferHeight*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		sdl.Quit()
		return fmt.Errorf("creating window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("creating renderer: %w", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA8888,
		sdl.TEXTUREACCESS_STREAMING,
		video.FramebufferWidth,
		video.FramebufferHeight,
	)
	if err != nil {
		renderer.Destroy()
		window.Destroy()
		sdl.Quit()
		return fmt.Errorf("creating texture: %w", err)
	}
	s.texture = texture

	s.running = true
	return nil
}

func (s *Backend) Update(frame *video.FrameBuffer) error {
	if !s.running {
		return nil
	}

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		s.handleEvent(event)
	}
	if !s.running {
		return nil
	}

	return s.renderFrame(frame)
}

func (s *Backend) Cleanup() error {
	if s.texture != nil {
		s.texture.Destroy()
	}
	if s.renderer != nil {
		s.renderer.Destroy()
	}
	if s.window != nil {
		s.window.Destroy()
	}
	sdl.Quit()
	return nil
}

func (s *Backend) handleEvent(event sdl.Event) {
	switch e := event.(type) {
	case *sdl.QuitEvent:
		s.quit()
	case *sdl.KeyboardEvent:
		if e.Keysym.Sym == sdl.K_ESCAPE && e.Type == sdl.KEYDOWN {
			s.quit()
			return
		}
		key, ok := keyMap[e.Keysym.Sym]
		if !ok || e.Repeat != 0 {
			return
		}
		if s.callbacks.OnKey != nil {
			s.callbacks.OnKey(key, e.Type == sdl.KEYDOWN)
		}
	}
}

func (s *Backend) quit() {
	s.running = false
	if s.callbacks.OnQuit != nil {
		s.callbacks.OnQuit()
	}
}

func (s *Backend) renderFrame(frame *video.FrameBuffer) error {
	for i, shade := range frame.Pixels() {
		s.pixels[i] = shadeColors[shade]
	}

	if err := s.texture.Update(nil, unsafe.Pointer(&s.pixels[0]), video.FramebufferWidth*4); err != nil {
		return fmt.Errorf("updating texture: %w", err)
	}
	if err := s.renderer.Clear(); err != nil {
		return fmt.Errorf("clearing renderer: %w", err)
	}
	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return fmt.Errorf("copying texture: %w", err)
	}
	s.renderer.Present()

	return nil
}
