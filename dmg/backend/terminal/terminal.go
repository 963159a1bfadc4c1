// Package terminal renders the emulator into a tcell screen. Each terminal
// cell shows two vertically stacked pixels via the upper-half-block glyph,
// so a 160x144 frame needs 160x72 cells.
package terminal

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/valdr/dotmatrix/dmg/backend"
	"github.com/valdr/dotmatrix/dmg/joypad"
	"github.com/valdr/dotmatrix/dmg/video"
)

const (
	width  = video.FramebufferWidth
	height = video.FramebufferHeight

	// Terminals report key presses but not releases; a key is considered
	// held until this long passes without a repeat event.
	keyTimeout = 100 * time.Millisecond
)

// shadeColors maps the four DMG shades to the classic green-tinted palette,
// lightest first.
var shadeColors = [4]tcell.Color{
	tcell.NewRGBColor(224, 248, 208),
	tcell.NewRGBColor(136, 192, 112),
	tcell.NewRGBColor(52, 104, 86),
	tcell.NewRGBColor(8, 24, 32),
}

// keyMap translates terminal keys to joypad keys. Arrows move, Z/X are the
// action buttons, Enter/Backspace are Start/Select.
var runeMap = map[rune]joypad.Key{
	'z': joypad.B,
	'x': joypad.A,
}

var keyMap = map[tcell.Key]joypad.Key{
	tcell.KeyUp:        joypad.Up,
	tcell.KeyDown:      joypad.Down,
	tcell.KeyLeft:      joypad.Left,
	tcell.KeyRight:     joypad.Right,
	tcell.KeyEnter:     joypad.Start,
	tcell.KeyBackspace: joypad.Select,
}

// Backend implements backend.Backend on a tcell screen.
type Backend struct {
	screen    tcell.Screen
	callbacks backend.Callbacks

	events chan tcell.Event

	// lastSeen tracks when each held key last produced an event, for
	// synthesizing releases.
	lastSeen map[joypad.Key]time.Time
}

// New returns an uninitialized terminal backend.
func New() *Backend {
	return &Backend{
		lastSeen: make(map[joypad.Key]time.Time),
	}
}

func (t *Backend) Init(config backend.Config) error {
	t.callbacks = config.Callbacks

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}

	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack))
	screen.Clear()

	t.screen = screen
	t.events = make(chan tcell.Event, 16)

	go func() {
		for {
			event := screen.PollEvent()
			if event == nil {
				return
			}
			t.events <- event
		}
	}()

	return nil
}

// Update drains pending terminal events, expires stale keys and redraws the
// frame.
func (t *Backend) Update(frame *video.FrameBuffer) error {
	for {
		select {
		case event := <-t.events:
			t.handleEvent(event)
		default:
			t.expireKeys()
			t.draw(frame)
			return nil
		}
	}
}

func (t *Backend) Cleanup() error {
	if t.screen != nil {
		t.screen.Fini()
	}
	return nil
}

func (t *Backend) handleEvent(event tcell.Event) {
	switch e := event.(type) {
	case *tcell.EventKey:
		if e.Key() == tcell.KeyEscape || e.Key() == tcell.KeyCtrlC {
			if t.callbacks.OnQuit != nil {
				t.callbacks.OnQuit()
			}
			return
		}
		if key, ok := t.lookupKey(e); ok {
			t.pressKey(key)
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

func (t *Backend) lookupKey(e *tcell.EventKey) (joypad.Key, bool) {
	if e.Key() == tcell.KeyRune {
		key, ok := runeMap[e.Rune()]
		return key, ok
	}
	key, ok := keyMap[e.Key()]
	return key, ok
}

// pressKey reports a press on the first event and refreshes the hold timer
// on repeats.
func (t *Backend) pressKey(key joypad.Key) {
	if _, held := t.lastSeen[key]; !held && t.callbacks.OnKey != nil {
		t.callbacks.OnKey(key, true)
	}
	t.lastSeen[key] = time.Now()
}

// expireKeys synthesizes releases for keys that stopped repeating.
func (t *Backend) expireKeys() {
	now := time.Now()
	for key, seen := range t.lastSeen {
		if now.Sub(seen) > keyTimeout {
			delete(t.lastSeen, key)
			if t.callbacks.OnKey != nil {
				t.callbacks.OnKey(key, false)
			}
		}
	}
}

// draw renders two pixel rows per cell row using the upper half block: the
// glyph's foreground is the upper pixel, its background the lower one.
func (t *Backend) draw(frame *video.FrameBuffer) {
	for y := 0; y < height; y += 2 {
		for x := 0; x < width; x++ {
			upper := shadeColors[frame.GetShade(x, y)]
			lower := shadeColors[frame.GetShade(x, y+1)]
			style := tcell.StyleDefault.Foreground(upper).Background(lower)
			t.screen.SetContent(x, y/2, '▀', nil, style)
		}
	}
	t.screen.Show()
}
