// Package memory implements the memory bus: the 64 KiB address-space router
// that hands each access to the component owning the range. RAM regions the
// bus owns directly; VRAM, OAM and the LCD registers belong to the PPU (and
// honor its mode-dependent bus locks); the timer, interrupt, joypad and
// serial registers belong to their components; ROM and external RAM go to
// the cartridge collaborator.
package memory

import (
	"fmt"
	"log/slog"

	"github.com/valdr/dotmatrix/dmg/addr"
	"github.com/valdr/dotmatrix/dmg/interrupt"
	"github.com/valdr/dotmatrix/dmg/joypad"
	"github.com/valdr/dotmatrix/dmg/serial"
	"github.com/valdr/dotmatrix/dmg/timer"
	"github.com/valdr/dotmatrix/dmg/video"
)

type region uint8

const (
	regionROM region = iota
	regionVRAM
	regionExtRAM
	regionWRAM
	regionEcho
	regionOAM
	regionIO
)

// regionMap routes each 256-byte page to its region. Page 0xFE covers OAM
// plus the unusable area, page 0xFF covers IO, HRAM and IE; both are split
// further inside Read/Write.
var regionMap = buildRegionMap()

func buildRegionMap() [256]region {
	var m [256]region
	for page := 0; page < 256; page++ {
		switch {
		case page <= 0x7F:
			m[page] = regionROM
		case page <= 0x9F:
			m[page] = regionVRAM
		case page <= 0xBF:
			m[page] = regionExtRAM
		case page <= 0xDF:
			m[page] = regionWRAM
		case page <= 0xFD:
			m[page] = regionEcho
		case page == 0xFE:
			m[page] = regionOAM
		default:
			m[page] = regionIO
		}
	}
	return m
}

const (
	wramSize = 0x2000
	hramSize = 0x7F
)

// Bus is the address-space router. It is the only component reachable from
// several others and, the design being single-threaded, call order is the
// only synchronization it needs.
type Bus struct {
	cart Cartridge
	ppu  *video.PPU
	tmr  *timer.Timer
	ic   *interrupt.Controller
	joy  *joypad.Joypad
	ser  *serial.Port

	wram [wramSize]uint8
	hram [hramSize]uint8
	dma  uint8
}

// New wires a bus to the components owning its mapped regions. cart may be
// nil (power-on with no cartridge); ROM reads then float high.
func New(cart Cartridge, ppu *video.PPU, tmr *timer.Timer, ic *interrupt.Controller, joy *joypad.Joypad, ser *serial.Port) *Bus {
	return &Bus{
		cart: cart,
		ppu:  ppu,
		tmr:  tmr,
		ic:   ic,
		joy:  joy,
		ser:  ser,
	}
}

// Read routes a read to the owning component.
func (b *Bus) Read(address uint16) uint8 {
	switch regionMap[address>>8] {
	case regionROM, regionExtRAM:
		if b.cart == nil {
			slog.Warn("read with no cartridge", "addr", fmt.Sprintf("0x%04X", address))
			return 0xFF
		}
		return b.cart.Read(address)
	case regionVRAM:
		return b.ppu.ReadVRAM(address)
	case regionWRAM:
		return b.wram[address-addr.WRAMStart]
	case regionEcho:
		return b.wram[address-addr.EchoStart]
	case regionOAM:
		if address <= addr.OAMEnd {
			return b.ppu.ReadOAM(address)
		}
		// unusable region 0xFEA0-0xFEFF
		return 0xFF
	default:
		return b.readIO(address)
	}
}

// Write routes a write to the owning component. Writes to mapped registers
// take effect immediately, which is why the bus dispatches instead of
// backing everything with a flat buffer.
func (b *Bus) Write(address uint16, value uint8) {
	switch regionMap[address>>8] {
	case regionROM, regionExtRAM:
		if b.cart == nil {
			slog.Warn("write with no cartridge", "addr", fmt.Sprintf("0x%04X", address), "value", fmt.Sprintf("0x%02X", value))
			return
		}
		b.cart.Write(address, value)
	case regionVRAM:
		b.ppu.WriteVRAM(address, value)
	case regionWRAM:
		b.wram[address-addr.WRAMStart] = value
	case regionEcho:
		b.wram[address-addr.EchoStart] = value
	case regionOAM:
		if address <= addr.OAMEnd {
			b.ppu.WriteOAM(address, value)
		}
	default:
		b.writeIO(address, value)
	}
}

func (b *Bus) readIO(address uint16) uint8 {
	switch {
	case address == addr.P1:
		return b.joy.Read()
	case address == addr.SB || address == addr.SC:
		return b.ser.Read(address)
	case address >= addr.DIV && address <= addr.TAC:
		return b.tmr.Read(address)
	case address == addr.IF:
		return b.ic.ReadRequest()
	case address == addr.DMA:
		return b.dma
	case address >= addr.LCDC && address <= addr.WX:
		return b.ppu.Read(address)
	case address >= addr.HRAMStart && address <= addr.HRAMEnd:
		return b.hram[address-addr.HRAMStart]
	case address == addr.IE:
		return b.ic.ReadEnable()
	}
	// unmapped IO (including the audio window, emulated elsewhere) floats high
	return 0xFF
}

func (b *Bus) writeIO(address uint16, value uint8) {
	switch {
	case address == addr.P1:
		b.joy.Write(value)
	case address == addr.SB || address == addr.SC:
		b.ser.Write(address, value)
	case address >= addr.DIV && address <= addr.TAC:
		b.tmr.Write(address, value)
	case address == addr.IF:
		b.ic.WriteRequest(value)
	case address == addr.DMA:
		b.startDMA(value)
	case address >= addr.LCDC && address <= addr.WX:
		b.ppu.Write(address, value)
	case address >= addr.HRAMStart && address <= addr.HRAMEnd:
		b.hram[address-addr.HRAMStart] = value
	case address == addr.IE:
		b.ic.WriteEnable(value)
	}
	// unmapped IO writes are dropped
}

// startDMA performs the OAM DMA transfer: 160 bytes from value<<8 into OAM.
// The DMA engine is not subject to the CPU-side OAM lock. The copy is done
// in one go; on hardware it takes 160 M-cycles during which the CPU can only
// run from HRAM, a restriction conformance ROMs respect by construction.
func (b *Bus) startDMA(value uint8) {
	b.dma = value
	source := uint16(value) << 8
	for i := 0; i < 0xA0; i++ {
		b.ppu.WriteOAMDirect(i, b.readDMASource(source+uint16(i)))
	}
}

// readDMASource fetches one DMA source byte. The DMA engine sidesteps the
// PPU bus locks on both ends, so VRAM sources read live memory even during
// pixel transfer.
func (b *Bus) readDMASource(address uint16) uint8 {
	if regionMap[address>>8] == regionVRAM {
		return b.ppu.ReadVRAMDirect(address)
	}
	return b.Read(address)
}

// State is the serializable snapshot of bus-owned memory.
type State struct {
	WRAM [wramSize]uint8
	HRAM [hramSize]uint8
	DMA  uint8
}

// Save captures the bus-owned state.
func (b *Bus) Save() State {
	return State{WRAM: b.wram, HRAM: b.hram, DMA: b.dma}
}

// Restore replaces the bus-owned state.
func (b *Bus) Restore(s State) {
	b.wram = s.WRAM
	b.hram = s.HRAM
	b.dma = s.DMA
}
