// Package video implements the pixel-processing unit: the per-dot mode
// machine, the LCD registers, VRAM/OAM ownership with mode-dependent bus
// locking, and the scanline renderer that fills the framebuffer.
package video

import (
	"github.com/valdr/dotmatrix/dmg/addr"
	"github.com/valdr/dotmatrix/dmg/bit"
	"github.com/valdr/dotmatrix/dmg/interrupt"
)

// Mode is the PPU mode as encoded in STAT bits 1-0.
type Mode uint8

const (
	ModeHBlank Mode = iota
	ModeVBlank
	ModeOAMScan
	ModeTransfer
)

const (
	// oamScanDots is the fixed length of the OAM-scan phase.
	oamScanDots = 80
	// transferBaseDots is the minimum length of the pixel-transfer phase;
	// fetch penalties extend it.
	transferBaseDots = 172
	// scanlineDots is the total dot budget of one scanline.
	scanlineDots = 456
	// frameLines is the number of scanlines per frame, visible plus VBlank.
	frameLines = 154
)

// LCDC bit positions.
const (
	lcdcBGEnable      uint8 = 0
	lcdcOBJEnable     uint8 = 1
	lcdcOBJSize       uint8 = 2
	lcdcBGTileMap     uint8 = 3
	lcdcTileData      uint8 = 4
	lcdcWindowEnable  uint8 = 5
	lcdcWindowTileMap uint8 = 6
	lcdcEnable        uint8 = 7
)

// STAT bit positions for the interrupt source selects.
const (
	statHBlankSelect      uint8 = 3
	statVBlankSelect      uint8 = 4
	statOAMSelect         uint8 = 5
	statCoincidenceSelect uint8 = 6
)

const (
	vramSize = 0x2000
	oamSize  = 0xA0
)

// PPU owns video RAM, OAM and the LCD registers. It advances by dots in
// lockstep with the CPU and composes one scanline at the end of each
// pixel-transfer phase.
type PPU struct {
	vram [vramSize]uint8
	oam  [oamSize]uint8

	lcdc, stat      uint8
	scy, scx        uint8
	ly, lyc         uint8
	bgp, obp0, obp1 uint8
	wy, wx          uint8

	mode         Mode
	dot          int
	transferDots int // length of the current line's pixel-transfer phase
	windowLine   int // internal window line counter, persists across lines
	statLine     bool

	sprites      []Sprite
	spriteBuffer [maxSpritesPerLine]Sprite
	prio         spritePriorityBuffer
	bgIndex      [FramebufferWidth]uint8 // pre-palette BG/window indices of the current line

	fb   *FrameBuffer
	sink FrameSink
	ic   *interrupt.Controller
}

// New returns a PPU wired to the interrupt controller, in the post-boot
// state with the LCD on.
func New(ic *interrupt.Controller) *PPU {
	p := &PPU{
		fb:   NewFrameBuffer(),
		ic:   ic,
		mode: ModeOAMScan,
		lcdc: 0x91,
		stat: 0x85,
		bgp:  0xFC,
		obp0: 0xFF,
		obp1: 0xFF,
	}
	p.transferDots = transferBaseDots
	return p
}

// SetFrameSink registers the presentation collaborator. It receives the
// framebuffer once per VBlank entry, fully populated.
func (p *PPU) SetFrameSink(sink FrameSink) {
	p.sink = sink
}

// FrameBuffer exposes the framebuffer for debug tooling; the frame sink is
// the supported delivery path.
func (p *PPU) FrameBuffer() *FrameBuffer {
	return p.fb
}

// Enabled reports whether the LCD is switched on.
func (p *PPU) Enabled() bool {
	return bit.IsSet(lcdcEnable, p.lcdc)
}

// Tick advances the PPU by the given number of dots (T-cycles). Mode
// transitions happen only at their fixed dot boundaries; a batch spanning
// several boundaries is consumed boundary by boundary.
func (p *PPU) Tick(cycles int) {
	if !p.Enabled() {
		return
	}

	p.dot += cycles

	for {
		switch p.mode {
		case ModeOAMScan:
			if p.dot < oamScanDots {
				return
			}
			p.dot -= oamScanDots
			p.sprites = scanOAM(p.oam[:], int(p.ly), bit.IsSet(lcdcOBJSize, p.lcdc), &p.prio, p.spriteBuffer[:0])
			// Fetch penalties stretch pixel transfer past its 172-dot floor:
			// the coarse scroll stall plus a fixed cost per selected object.
			// A per-fetcher dot model would be exact; this stays within the
			// documented 172-289 envelope.
			p.transferDots = transferBaseDots + int(p.scx%8) + 6*len(p.sprites)
			p.setMode(ModeTransfer)

		case ModeTransfer:
			if p.dot < p.transferDots {
				return
			}
			p.dot -= p.transferDots
			p.renderScanline()
			p.setMode(ModeHBlank)

		case ModeHBlank:
			hblankDots := scanlineDots - oamScanDots - p.transferDots
			if p.dot < hblankDots {
				return
			}
			p.dot -= hblankDots
			p.setLY(p.ly + 1)
			if int(p.ly) == FramebufferHeight {
				p.setMode(ModeVBlank)
				p.ic.Request(interrupt.VBlank)
				if p.sink != nil {
					p.sink.Frame(p.fb)
				}
			} else {
				p.setMode(ModeOAMScan)
			}

		case ModeVBlank:
			if p.dot < scanlineDots {
				return
			}
			p.dot -= scanlineDots
			if int(p.ly)+1 == frameLines {
				p.windowLine = 0
				p.setLY(0)
				p.setMode(ModeOAMScan)
			} else {
				p.setLY(p.ly + 1)
			}
		}
	}
}

func (p *PPU) setMode(mode Mode) {
	p.mode = mode
	p.updateStatLine()
}

func (p *PPU) setLY(value uint8) {
	p.ly = value
	p.updateStatLine()
}

// updateStatLine recomputes the single STAT interrupt line from the enabled
// sources. The request fires only on a rising edge of the combined line, so
// overlapping sources can mask each other exactly as on hardware.
func (p *PPU) updateStatLine() {
	line := false
	switch {
	case bit.IsSet(statHBlankSelect, p.stat) && p.mode == ModeHBlank:
		line = true
	case bit.IsSet(statVBlankSelect, p.stat) && p.mode == ModeVBlank:
		line = true
	case bit.IsSet(statOAMSelect, p.stat) && p.mode == ModeOAMScan:
		line = true
	case bit.IsSet(statCoincidenceSelect, p.stat) && p.ly == p.lyc:
		line = true
	}

	if line && !p.statLine {
		p.ic.Request(interrupt.STAT)
	}
	p.statLine = line
}

// vramAccessible reports whether the CPU may touch VRAM right now. The bus
// is held by the PPU during pixel transfer.
func (p *PPU) vramAccessible() bool {
	return !p.Enabled() || p.mode != ModeTransfer
}

// oamAccessible reports whether the CPU may touch OAM right now. The bus is
// held during both OAM scan and pixel transfer.
func (p *PPU) oamAccessible() bool {
	return !p.Enabled() || p.mode == ModeHBlank || p.mode == ModeVBlank
}

// ReadVRAM returns VRAM contents, or 0xFF while the PPU holds the bus.
func (p *PPU) ReadVRAM(address uint16) uint8 {
	if !p.vramAccessible() {
		return 0xFF
	}
	return p.vram[address-addr.VRAMStart]
}

// WriteVRAM stores into VRAM; writes are dropped while the PPU holds the bus.
func (p *PPU) WriteVRAM(address uint16, value uint8) {
	if !p.vramAccessible() {
		return
	}
	p.vram[address-addr.VRAMStart] = value
}

// ReadOAM returns OAM contents, or 0xFF while the PPU holds the bus.
func (p *PPU) ReadOAM(address uint16) uint8 {
	if !p.oamAccessible() {
		return 0xFF
	}
	return p.oam[address-addr.OAMStart]
}

// WriteOAM stores into OAM; writes are dropped while the PPU holds the bus.
func (p *PPU) WriteOAM(address uint16, value uint8) {
	if !p.oamAccessible() {
		return
	}
	p.oam[address-addr.OAMStart] = value
}

// WriteOAMDirect bypasses the bus lock. OAM DMA uses it: the DMA engine is
// not the CPU and is not blocked by mode 2/3.
func (p *PPU) WriteOAMDirect(offset int, value uint8) {
	p.oam[offset] = value
}

// ReadVRAMDirect bypasses the bus lock on the read side, for DMA sources
// in VRAM.
func (p *PPU) ReadVRAMDirect(address uint16) uint8 {
	return p.vram[address-addr.VRAMStart]
}

// Read returns one of the LCD registers.
func (p *PPU) Read(address uint16) uint8 {
	switch address {
	case addr.LCDC:
		return p.lcdc
	case addr.STAT:
		return p.composeSTAT()
	case addr.SCY:
		return p.scy
	case addr.SCX:
		return p.scx
	case addr.LY:
		return p.ly
	case addr.LYC:
		return p.lyc
	case addr.BGP:
		return p.bgp
	case addr.OBP0:
		return p.obp0
	case addr.OBP1:
		return p.obp1
	case addr.WY:
		return p.wy
	case addr.WX:
		return p.wx
	}
	return 0xFF
}

func (p *PPU) composeSTAT() uint8 {
	value := 0x80 | (p.stat & 0x78) | uint8(p.mode)
	if p.ly == p.lyc {
		value = bit.Set(2, value)
	}
	return value
}

// Write stores one of the LCD registers, applying side effects immediately.
func (p *PPU) Write(address uint16, value uint8) {
	switch address {
	case addr.LCDC:
		p.writeLCDC(value)
	case addr.STAT:
		// only the interrupt source selects are writable
		p.stat = value & 0x78
		p.updateStatLine()
	case addr.SCY:
		p.scy = value
	case addr.SCX:
		p.scx = value
	case addr.LY:
		// read-only
	case addr.LYC:
		p.lyc = value
		p.updateStatLine()
	case addr.BGP:
		p.bgp = value
	case addr.OBP0:
		p.obp0 = value
	case addr.OBP1:
		p.obp1 = value
	case addr.WY:
		p.wy = value
	case addr.WX:
		p.wx = value
	}
}

// writeLCDC applies an LCD control write. Turning the LCD off stops the
// mode machine immediately, resets the line state and blanks the panel;
// turning it on restarts from the top of the frame.
func (p *PPU) writeLCDC(value uint8) {
	wasEnabled := p.Enabled()
	p.lcdc = value
	nowEnabled := p.Enabled()

	if wasEnabled && !nowEnabled {
		p.ly = 0
		p.dot = 0
		p.mode = ModeHBlank
		p.windowLine = 0
		p.transferDots = transferBaseDots
		p.statLine = false
		p.fb.Fill(0)
	}
	if !wasEnabled && nowEnabled {
		p.dot = 0
		p.setMode(ModeOAMScan)
		p.updateStatLine()
	}
}

// State is the serializable snapshot of the PPU.
type State struct {
	VRAM [vramSize]uint8
	OAM  [oamSize]uint8

	LCDC, STAT      uint8
	SCY, SCX        uint8
	LY, LYC         uint8
	BGP, OBP0, OBP1 uint8
	WY, WX          uint8

	Mode         Mode
	Dot          int
	TransferDots int
	WindowLine   int
	StatLine     bool

	Frame [FramebufferWidth * FramebufferHeight]Shade
}

// Save captures the PPU state, including the partially drawn frame so a
// restored machine resumes mid-frame bit-identically.
func (p *PPU) Save() State {
	s := State{
		VRAM:         p.vram,
		OAM:          p.oam,
		LCDC:         p.lcdc,
		STAT:         p.stat,
		SCY:          p.scy,
		SCX:          p.scx,
		LY:           p.ly,
		LYC:          p.lyc,
		BGP:          p.bgp,
		OBP0:         p.obp0,
		OBP1:         p.obp1,
		WY:           p.wy,
		WX:           p.wx,
		Mode:         p.mode,
		Dot:          p.dot,
		TransferDots: p.transferDots,
		WindowLine:   p.windowLine,
		StatLine:     p.statLine,
	}
	copy(s.Frame[:], p.fb.Pixels())
	return s
}

// Restore replaces the PPU state.
func (p *PPU) Restore(s State) {
	p.vram = s.VRAM
	p.oam = s.OAM
	p.lcdc = s.LCDC
	p.stat = s.STAT
	p.scy = s.SCY
	p.scx = s.SCX
	p.ly = s.LY
	p.lyc = s.LYC
	p.bgp = s.BGP
	p.obp0 = s.OBP0
	p.obp1 = s.OBP1
	p.wy = s.WY
	p.wx = s.WX
	p.mode = s.Mode
	p.dot = s.Dot
	p.transferDots = s.TransferDots
	p.windowLine = s.WindowLine
	p.statLine = s.StatLine
	copy(p.fb.Pixels(), s.Frame[:])

	// The scanline sprite selection is derived state: OAM is locked during
	// modes 2 and 3, so rescanning reproduces it exactly.
	p.sprites = nil
	if p.mode == ModeTransfer {
		p.sprites = scanOAM(p.oam[:], int(p.ly), bit.IsSet(lcdcOBJSize, p.lcdc), &p.prio, p.spriteBuffer[:0])
	}
}
