package video

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valdr/dotmatrix/dmg/addr"
)

// identity palette: index i maps to shade i
const identityPalette = 0xE4

// putTile fills all eight rows of a tile with one solid color index.
func putTile(p *PPU, tileAddr uint16, index uint8) {
	var low, high uint8
	if index&1 != 0 {
		low = 0xFF
	}
	if index&2 != 0 {
		high = 0xFF
	}
	for row := uint16(0); row < 8; row++ {
		p.vram[tileAddr+row*2] = low
		p.vram[tileAddr+row*2+1] = high
	}
}

// renderLine scans OAM and renders the PPU's current line directly, without
// driving the dot machine.
func renderLine(p *PPU) {
	p.sprites = scanOAM(p.oam[:], int(p.ly), p.lcdc&(1<<lcdcOBJSize) != 0, &p.prio, p.spriteBuffer[:0])
	p.renderScanline()
}

func newRenderPPU() *PPU {
	p, _ := newTestPPU()
	p.Write(addr.BGP, identityPalette)
	p.Write(addr.OBP0, identityPalette)
	p.Write(addr.OBP1, identityPalette)
	return p
}

func TestRender_solidBackground(t *testing.T) {
	p := newRenderPPU()

	// tile map all zeros; tile 0 solid color 2 in unsigned addressing
	putTile(p, p.tileDataAddress(0), 2)

	renderLine(p)

	for x := 0; x < FramebufferWidth; x++ {
		assert.Equal(t, Shade(2), p.fb.GetShade(x, 0))
	}
}

func TestRender_bgDisabledIsWhite(t *testing.T) {
	p := newRenderPPU()
	putTile(p, p.tileDataAddress(0), 3)
	p.Write(addr.LCDC, 0x90) // BG off
	p.Write(addr.BGP, 0xFF)  // all-black palette must not apply to the blank

	renderLine(p)

	for x := 0; x < FramebufferWidth; x++ {
		assert.Equal(t, Shade(0), p.fb.GetShade(x, 0))
		assert.Equal(t, uint8(0), p.bgIndex[x])
	}
}

func TestRender_scrollWrapsAround(t *testing.T) {
	p := newRenderPPU()

	// tile column 1 of the map (pixels 8-15) uses tile 1, everything else 0
	p.vram[0x1800+1] = 1
	putTile(p, p.tileDataAddress(1), 3)

	// no scroll: tile 1 shows at pixels 8-15
	renderLine(p)
	assert.Equal(t, Shade(0), p.fb.GetShade(7, 0))
	assert.Equal(t, Shade(3), p.fb.GetShade(8, 0))
	assert.Equal(t, Shade(3), p.fb.GetShade(15, 0))
	assert.Equal(t, Shade(0), p.fb.GetShade(16, 0))

	// SCX 8 shifts it to pixels 0-7
	p.Write(addr.SCX, 8)
	renderLine(p)
	assert.Equal(t, Shade(3), p.fb.GetShade(0, 0))
	assert.Equal(t, Shade(0), p.fb.GetShade(8, 0))

	// SCX 248 wraps: map column 31 is tile 0, column 0 starts at pixel 8
	p.Write(addr.SCX, 248)
	renderLine(p)
	assert.Equal(t, Shade(0), p.fb.GetShade(0, 0))
	assert.Equal(t, Shade(3), p.fb.GetShade(16, 0))
}

func TestRender_signedTileAddressing(t *testing.T) {
	p := newRenderPPU()
	p.Write(addr.LCDC, 0x81) // LCD+BG on, signed tile data mode

	// tile index 0 in signed mode lives at 0x9000 (VRAM offset 0x1000)
	putTile(p, 0x1000, 1)
	renderLine(p)
	assert.Equal(t, Shade(1), p.fb.GetShade(0, 0))

	// index 0x80 (-128) lives at 0x8800 (VRAM offset 0x0800)
	p.vram[0x1800] = 0x80
	putTile(p, 0x0800, 2)
	renderLine(p)
	assert.Equal(t, Shade(2), p.fb.GetShade(0, 0))
}

func TestRender_windowOverridesBackground(t *testing.T) {
	p := newRenderPPU()
	p.Write(addr.LCDC, 0xB1) // LCD+BG+window, window map at 0x9800 too

	putTile(p, p.tileDataAddress(0), 1)
	p.Write(addr.WY, 0)
	p.Write(addr.WX, 7+80) // window starts at screen X 80

	// both layers draw tile 0; what matters is that fetching any window
	// pixel advances the internal line counter
	renderLine(p)
	assert.Equal(t, 1, p.windowLine)

	// below WY the window never shows
	p.windowLine = 0
	p.Write(addr.WY, 100)
	renderLine(p)
	assert.Equal(t, 0, p.windowLine)
}

func TestRender_windowUsesOwnLineCounter(t *testing.T) {
	p := newRenderPPU()
	p.Write(addr.LCDC, 0xF1) // window map at 0x9C00

	p.Write(addr.WY, 0)
	p.Write(addr.WX, 7) // window covers the full line

	// window map row 0 is tile 0 (color 1), row 1 tile 1 (color 3)
	p.vram[0x1C00+32] = 1
	putTile(p, p.tileDataAddress(0), 1)
	putTile(p, p.tileDataAddress(1), 3)

	// render the same screen line twice: the second pass reads window row 1
	// because the internal counter advanced, even though LY did not change
	renderLine(p)
	assert.Equal(t, Shade(1), p.fb.GetShade(0, 0))

	renderLine(p)
	assert.Equal(t, 2, p.windowLine)

	// with the counter at 8 the fetch reads window map row 1
	p.ly = 8
	p.windowLine = 8
	renderLine(p)
	assert.Equal(t, Shade(3), p.fb.GetShade(0, 8))
}

func TestRender_spriteOverBackground(t *testing.T) {
	p := newRenderPPU()
	p.Write(addr.LCDC, 0x93) // OBJ on

	putTile(p, 0, 1)                      // BG tile 0: color 1 everywhere
	putTile(p, 16, 2)                     // sprite tile 1: color 2
	putOAMEntry(p.oam[:], 0, 16, 8, 1, 0) // at screen (0,0)

	renderLine(p)

	assert.Equal(t, Shade(2), p.fb.GetShade(0, 0))
	assert.Equal(t, Shade(2), p.fb.GetShade(7, 0))
	assert.Equal(t, Shade(1), p.fb.GetShade(8, 0), "BG beyond the sprite")
}

func TestRender_spriteDisabledByLCDC(t *testing.T) {
	p := newRenderPPU()
	p.Write(addr.LCDC, 0x91&^uint8(1<<lcdcOBJEnable))

	putTile(p, 16, 2)
	putOAMEntry(p.oam[:], 0, 16, 8, 1, 0)

	renderLine(p)

	assert.Equal(t, Shade(0), p.fb.GetShade(0, 0))
}

func TestRender_spriteColorZeroIsTransparent(t *testing.T) {
	p := newRenderPPU()
	p.Write(addr.LCDC, 0x93) // OBJ on

	putTile(p, 0, 1) // BG color 1
	// sprite tile 1 left empty: all pixels color 0
	putOAMEntry(p.oam[:], 0, 16, 8, 1, 0)

	renderLine(p)

	assert.Equal(t, Shade(1), p.fb.GetShade(0, 0), "transparent sprite shows BG")
}

func TestRender_spriteBehindBG(t *testing.T) {
	p := newRenderPPU()
	p.Write(addr.LCDC, 0x93) // OBJ on

	// BG: tile 0 color 1 for map col 0, tile 1 color 0 for map col 1
	p.vram[0x1800+1] = 1
	putTile(p, 0, 1)
	// tile 1 stays empty: color 0
	putTile(p, 2*16, 2)                      // sprite tile 2: color 2
	putOAMEntry(p.oam[:], 0, 16, 12, 2, 0x80) // behind BG, spans cols 0 and 1

	renderLine(p)

	// over BG color 1 the sprite hides; over BG color 0 it shows
	assert.Equal(t, Shade(1), p.fb.GetShade(4, 0))
	assert.Equal(t, Shade(2), p.fb.GetShade(8, 0))
}

func TestRender_spriteUsesOBP1(t *testing.T) {
	p := newRenderPPU()
	p.Write(addr.LCDC, 0x93) // OBJ on
	p.Write(addr.OBP1, 0xFF) // everything black

	putTile(p, 16, 1)
	putOAMEntry(p.oam[:], 0, 16, 8, 1, 0x10) // OBP1 attribute

	renderLine(p)

	assert.Equal(t, Shade(3), p.fb.GetShade(0, 0))
}

func TestRender_spriteFlipX(t *testing.T) {
	p := newRenderPPU()
	p.Write(addr.LCDC, 0x93) // OBJ on

	// sprite tile 1 row 0: left half color 1, right half 0
	p.vram[16] = 0xF0
	putOAMEntry(p.oam[:], 0, 16, 8, 1, 0x20) // flip X

	renderLine(p)

	assert.Equal(t, Shade(0), p.fb.GetShade(0, 0))
	assert.Equal(t, Shade(1), p.fb.GetShade(7, 0))
}

func TestRender_spriteFlipY(t *testing.T) {
	p := newRenderPPU()
	p.Write(addr.LCDC, 0x93) // OBJ on

	// sprite tile 1: only row 7 is color 1
	p.vram[16+7*2] = 0xFF
	putOAMEntry(p.oam[:], 0, 16, 8, 1, 0x40) // flip Y

	renderLine(p) // line 0 flipped reads tile row 7

	assert.Equal(t, Shade(1), p.fb.GetShade(0, 0))
}

func TestRender_tallSpriteIgnoresTileIndexBit0(t *testing.T) {
	p := newRenderPPU()
	p.Write(addr.LCDC, 0x97) // 8x16 objects

	putTile(p, 2*16, 1) // tile 2: color 1
	putTile(p, 3*16, 2) // tile 3: color 2

	// index 3 in 8x16 mode reads tile 2 for the top half
	putOAMEntry(p.oam[:], 0, 16, 8, 3, 0)

	renderLine(p)
	assert.Equal(t, Shade(1), p.fb.GetShade(0, 0), "top half from the even tile")

	// bottom half comes from tile 3
	p.ly = 8
	renderLine(p)
	assert.Equal(t, Shade(2), p.fb.GetShade(0, 8))
}
