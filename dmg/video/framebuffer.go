package video

const (
	// FramebufferWidth is the visible horizontal resolution.
	FramebufferWidth = 160
	// FramebufferHeight is the visible vertical resolution.
	FramebufferHeight = 144
)

// Shade is a final 2-bit monochrome level after palette mapping:
// 0 is white, 3 is black. Presentation backends decide actual colors.
type Shade uint8

// FrameBuffer holds one shade per visible pixel. The PPU fills it scanline
// by scanline and hands it to the frame sink once per VBlank entry, always
// fully populated.
type FrameBuffer struct {
	buffer [FramebufferWidth * FramebufferHeight]Shade
}

func NewFrameBuffer() *FrameBuffer {
	return &FrameBuffer{}
}

// GetShade returns the shade at (x, y).
func (fb *FrameBuffer) GetShade(x, y int) Shade {
	return fb.buffer[y*FramebufferWidth+x]
}

// SetShade stores the shade at (x, y).
func (fb *FrameBuffer) SetShade(x, y int, s Shade) {
	fb.buffer[y*FramebufferWidth+x] = s
}

// Fill sets every pixel to the given shade. Used when the LCD is switched
// off, which blanks the panel.
func (fb *FrameBuffer) Fill(s Shade) {
	for i := range fb.buffer {
		fb.buffer[i] = s
	}
}

// Pixels returns the underlying buffer in row-major order. The slice aliases
// the framebuffer; callers that need a stable copy must take one.
func (fb *FrameBuffer) Pixels() []Shade {
	return fb.buffer[:]
}

// Bytes returns a copy of the buffer as raw bytes, one shade per byte.
// Handy for hashing and serialization.
func (fb *FrameBuffer) Bytes() []byte {
	out := make([]byte, len(fb.buffer))
	for i, s := range fb.buffer {
		out[i] = byte(s)
	}
	return out
}

// FrameSink receives every completed frame. Implementations must not hold
// on to the framebuffer past the call; the PPU reuses it.
type FrameSink interface {
	Frame(fb *FrameBuffer)
}

// FrameSinkFunc adapts a function to the FrameSink interface.
type FrameSinkFunc func(fb *FrameBuffer)

func (f FrameSinkFunc) Frame(fb *FrameBuffer) { f(fb) }
