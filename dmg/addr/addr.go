// Package addr names the memory-mapped hardware register addresses and
// fixed memory regions of the DMG address space.
package addr

// joypad
const (
	// P1 selects and reads the joypad matrix.
	P1 uint16 = 0xFF00
)

// serial I/O
const (
	// SB holds the byte being shifted out (and, after a transfer, the byte
	// shifted in from the peer; 0xFF with no peer connected).
	SB uint16 = 0xFF01
	// SC controls serial transfers. Bit 7 starts a transfer, bit 0 selects
	// the internal clock.
	SC uint16 = 0xFF02
)

// timer registers
const (
	// DIV is the free-running divider, the top byte of the internal
	// 16-bit counter. Any write resets the whole counter.
	DIV uint16 = 0xFF04
	// TIMA is the programmable timer counter.
	TIMA uint16 = 0xFF05
	// TMA is the value TIMA reloads from on overflow.
	TMA uint16 = 0xFF06
	// TAC selects the timer input clock and enables the timer.
	TAC uint16 = 0xFF07
)

// video registers
const (
	// LCDC is the LCD control register.
	LCDC uint16 = 0xFF40
	// STAT is the LCD status register.
	STAT uint16 = 0xFF41
	// SCY is the background vertical scroll.
	SCY uint16 = 0xFF42
	// SCX is the background horizontal scroll.
	SCX uint16 = 0xFF43
	// LY is the current scanline (read-only).
	LY uint16 = 0xFF44
	// LYC is the scanline compare register.
	LYC uint16 = 0xFF45
	// DMA starts an OAM DMA transfer.
	DMA uint16 = 0xFF46
	// BGP is the background palette.
	BGP uint16 = 0xFF47
	// OBP0 is object palette 0.
	OBP0 uint16 = 0xFF48
	// OBP1 is object palette 1.
	OBP1 uint16 = 0xFF49
	// WY is the window top coordinate.
	WY uint16 = 0xFF4A
	// WX is the window left coordinate plus 7.
	WX uint16 = 0xFF4B
)

// interrupts
const (
	// IF is the interrupt request register. Upper 3 bits read as 1.
	IF uint16 = 0xFF0F
	// IE is the interrupt enable register.
	IE uint16 = 0xFFFF
)

// memory regions
const (
	// ROMEnd is the last address routed to the cartridge ROM window.
	ROMEnd uint16 = 0x7FFF

	// VRAMStart and VRAMEnd delimit video RAM.
	VRAMStart uint16 = 0x8000
	VRAMEnd   uint16 = 0x9FFF

	// ExtRAMStart and ExtRAMEnd delimit cartridge (external) RAM.
	ExtRAMStart uint16 = 0xA000
	ExtRAMEnd   uint16 = 0xBFFF

	// WRAMStart and WRAMEnd delimit work RAM.
	WRAMStart uint16 = 0xC000
	WRAMEnd   uint16 = 0xDFFF

	// EchoStart and EchoEnd delimit the WRAM mirror.
	EchoStart uint16 = 0xE000
	EchoEnd   uint16 = 0xFDFF

	// OAMStart and OAMEnd delimit object attribute memory (40 entries, 4 bytes each).
	OAMStart uint16 = 0xFE00
	OAMEnd   uint16 = 0xFE9F

	// HRAMStart and HRAMEnd delimit high RAM.
	HRAMStart uint16 = 0xFF80
	HRAMEnd   uint16 = 0xFFFE
)

// tile data and tile maps
const (
	// TileData0 is the base of unsigned tile data addressing (LCDC bit 4 = 1).
	TileData0 uint16 = 0x8000
	// TileData1 is the base of signed tile data addressing (LCDC bit 4 = 0),
	// where tile index 0 lives at 0x9000.
	TileData1 uint16 = 0x9000

	// TileMap0 is background/window tile map 0.
	TileMap0 uint16 = 0x9800
	// TileMap1 is background/window tile map 1.
	TileMap1 uint16 = 0x9C00
)
