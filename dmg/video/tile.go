package video

import "github.com/valdr/dotmatrix/dmg/bit"

// TileRow is one 8-pixel row of tile data in the 2-bit-per-pixel bit-plane
// format: the low byte carries bit 0 of each pixel's color index, the high
// byte bit 1. Bit 7 is the leftmost pixel.
//
// Example: bytes $3C and $7E decode as
//
//	Low  (0x3C): 0 0 1 1 1 1 0 0
//	High (0x7E): 0 1 1 1 1 1 1 0
//	            -----------------
//	Indices:     0 2 3 3 3 3 2 0
//
// The color index is then mapped through a palette register; index 0 is
// transparent for sprites.
type TileRow struct {
	Low  uint8
	High uint8
}

// ColorIndex extracts the 2-bit color index for a pixel. x is 0-7 with 0
// the leftmost pixel.
func (t TileRow) ColorIndex(x int) uint8 {
	bitIndex := uint8(7 - x)

	var index uint8
	if bit.IsSet(bitIndex, t.Low) {
		index |= 1
	}
	if bit.IsSet(bitIndex, t.High) {
		index |= 2
	}
	return index
}

// ColorIndexFlipped extracts the color index with the row mirrored
// horizontally, for sprites with the flip-X attribute.
func (t TileRow) ColorIndexFlipped(x int) uint8 {
	return t.ColorIndex(7 - x)
}

// mapPalette pushes a color index through a palette register: each index
// selects a 2-bit shade at bits (index*2+1, index*2).
func mapPalette(palette, index uint8) Shade {
	return Shade((palette >> (index * 2)) & 0x03)
}
