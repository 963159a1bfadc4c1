package memory

import "errors"

// Cartridge is the read/write capability the bus holds for the ROM and
// external RAM windows (0x0000-0x7FFF and 0xA000-0xBFFF). Bank-switching
// controllers and battery-backed RAM live behind this interface, outside
// the core; the bus never assumes a fixed mapping.
type Cartridge interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}

// ErrUnsupportedMapping is what a cartridge implementation returns when it
// recognizes a controller it does not support. It is the only failure the
// core surfaces from the cartridge boundary.
var ErrUnsupportedMapping = errors.New("memory: unsupported cartridge mapping")

// flatROMSize is the size of an unbanked ROM image: two fixed 16 KiB banks.
const flatROMSize = 0x8000

// FlatROM is the trivial cartridge: a ROM image of up to 32 KiB mapped
// as-is, no banking, no external RAM. It covers plain test and conformance
// ROMs; anything needing a bank controller comes from the external
// cartridge collaborator.
type FlatROM struct {
	rom [flatROMSize]uint8
}

// NewFlatROM wraps a ROM image. Images shorter than 32 KiB are padded with
// 0xFF, the value an unconnected bus floats to.
func NewFlatROM(data []byte) (*FlatROM, error) {
	if len(data) > flatROMSize {
		return nil, ErrUnsupportedMapping
	}
	f := &FlatROM{}
	for i := range f.rom {
		f.rom[i] = 0xFF
	}
	copy(f.rom[:], data)
	return f, nil
}

func (f *FlatROM) Read(address uint16) uint8 {
	if address < flatROMSize {
		return f.rom[address]
	}
	// external RAM window with no RAM fitted
	return 0xFF
}

func (f *FlatROM) Write(address uint16, value uint8) {
	// ROM is read-only and there is no bank controller to talk to
}
