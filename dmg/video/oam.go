package video

import "github.com/valdr/dotmatrix/dmg/bit"

// Sprite is one object entry as read from OAM during the OAM-scan phase.
// Entries are rescanned every visible scanline and never persist across
// lines. X and Y are screen coordinates, already adjusted for the hardware
// +8/+16 offsets and therefore possibly negative (partially off-screen).
type Sprite struct {
	Y         int
	X         int
	TileIndex uint8
	Flags     uint8
	OAMIndex  int
	Height    int

	// decoded attribute flags
	PaletteOBP1 bool
	FlipX       bool
	FlipY       bool
	BehindBG    bool // if set, visible only where the BG/window index is 0

	// pixelMask marks which of the sprite's eight pixels it owns after
	// sprite-to-sprite priority resolution; bit 7 is the leftmost pixel.
	pixelMask uint8
}

func (s *Sprite) decodeFlags() {
	s.PaletteOBP1 = bit.IsSet(4, s.Flags)
	s.FlipX = bit.IsSet(5, s.Flags)
	s.FlipY = bit.IsSet(6, s.Flags)
	s.BehindBG = bit.IsSet(7, s.Flags)
}

// OwnsPixel reports whether the sprite won priority for its pixel at the
// given offset (0 = leftmost).
func (s *Sprite) OwnsPixel(offset int) bool {
	if offset < 0 || offset > 7 {
		return false
	}
	return s.pixelMask&(1<<(7-offset)) != 0
}

// maxSpritesPerLine is the hardware sprite budget for one scanline.
const maxSpritesPerLine = 10

// oamEntryCount is the number of entries in OAM.
const oamEntryCount = 40

// scanOAM selects the sprites covering the given scanline, in OAM order,
// capped at ten like hardware, and resolves per-pixel priority among them.
// raw is the 160-byte OAM table; tall selects 8x16 objects.
func scanOAM(raw []byte, scanline int, tall bool, prio *spritePriorityBuffer, out []Sprite) []Sprite {
	height := 8
	if tall {
		height = 16
	}

	out = out[:0]
	prio.clear()

	for i := 0; i < oamEntryCount; i++ {
		base := i * 4

		spriteY := int(raw[base]) - 16
		if scanline < spriteY || scanline >= spriteY+height {
			continue
		}

		sprite := Sprite{
			Y:         spriteY,
			X:         int(raw[base+1]) - 8,
			TileIndex: raw[base+2],
			Flags:     raw[base+3],
			OAMIndex:  i,
			Height:    height,
		}
		sprite.decodeFlags()
		out = append(out, sprite)

		for px := 0; px < 8; px++ {
			prio.claim(sprite.X+px, sprite.OAMIndex, sprite.X)
		}

		if len(out) >= maxSpritesPerLine {
			break
		}
	}

	for i := range out {
		var mask uint8
		for px := 0; px < 8; px++ {
			if prio.owner(out[i].X+px) == out[i].OAMIndex {
				mask |= 1 << (7 - px)
			}
		}
		out[i].pixelMask = mask
	}

	return out
}
