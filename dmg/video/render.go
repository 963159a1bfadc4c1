package video

import "github.com/valdr/dotmatrix/dmg/bit"

// renderScanline composes one visible line into the framebuffer: the
// background/window layer first, then the selected sprites over it.
func (p *PPU) renderScanline() {
	windowFetched := p.renderBackgroundLine()
	if bit.IsSet(lcdcOBJEnable, p.lcdc) {
		p.renderSpriteLine()
	}
	if windowFetched {
		p.windowLine++
	}
}

// renderBackgroundLine draws the background/window pixels of the current
// line and records their pre-palette color indices for sprite priority.
// Returns whether any pixel came from the window, which is what advances
// the internal window line counter.
func (p *PPU) renderBackgroundLine() bool {
	y := int(p.ly)

	if !bit.IsSet(lcdcBGEnable, p.lcdc) {
		// BG disabled: the line blanks to raw white, skipping BGP, and
		// sprites composite as if over color index 0.
		for x := 0; x < FramebufferWidth; x++ {
			p.bgIndex[x] = 0
			p.fb.SetShade(x, y, 0)
		}
		return false
	}

	windowEnabled := bit.IsSet(lcdcWindowEnable, p.lcdc) && y >= int(p.wy)
	windowLeft := int(p.wx) - 7
	windowFetched := false

	for x := 0; x < FramebufferWidth; x++ {
		var tileMap uint16
		var coarseX, coarseY, fineX, fineY int

		if windowEnabled && x >= windowLeft {
			// window pixels use the internal line counter, not LY
			wx := x - windowLeft
			tileMap = p.tileMapBase(lcdcWindowTileMap)
			coarseX, fineX = wx/8, wx%8
			coarseY, fineY = p.windowLine/8, p.windowLine%8
			windowFetched = true
		} else {
			bx := (x + int(p.scx)) & 0xFF
			by := (y + int(p.scy)) & 0xFF
			tileMap = p.tileMapBase(lcdcBGTileMap)
			coarseX, fineX = bx/8, bx%8
			coarseY, fineY = by/8, by%8
		}

		tileIndex := p.vram[tileMap+uint16(coarseY*32+coarseX)]
		row := p.fetchTileRow(p.tileDataAddress(tileIndex), fineY)

		index := row.ColorIndex(fineX)
		p.bgIndex[x] = index
		p.fb.SetShade(x, y, mapPalette(p.bgp, index))
	}

	return windowFetched
}

// renderSpriteLine composites the scanline's selected sprites. Priority
// between sprites was already resolved into per-pixel ownership during the
// OAM scan; here each sprite draws only the pixels it owns, skipping
// transparent pixels and honoring the BG-priority attribute.
func (p *PPU) renderSpriteLine() {
	y := int(p.ly)

	for i := range p.sprites {
		sprite := &p.sprites[i]

		line := y - sprite.Y
		if sprite.FlipY {
			line = sprite.Height - 1 - line
		}

		tileIndex := sprite.TileIndex
		if sprite.Height == 16 {
			// bit 0 of the tile index is ignored in 8x16 mode; the second
			// half of the object comes from the following tile
			tileIndex &= 0xFE
		}

		// 16 bytes per tile, 2 per row; for 8x16 objects line 8-15 lands in
		// the next tile naturally
		rowAddr := uint16(tileIndex)*16 + uint16(line)*2
		row := TileRow{Low: p.vram[rowAddr], High: p.vram[rowAddr+1]}

		for px := 0; px < 8; px++ {
			x := sprite.X + px
			if x < 0 || x >= FramebufferWidth {
				continue
			}
			if !sprite.OwnsPixel(px) {
				continue
			}

			var index uint8
			if sprite.FlipX {
				index = row.ColorIndexFlipped(px)
			} else {
				index = row.ColorIndex(px)
			}
			if index == 0 {
				// color index 0 is always transparent for objects
				continue
			}
			if sprite.BehindBG && p.bgIndex[x] != 0 {
				continue
			}

			palette := p.obp0
			if sprite.PaletteOBP1 {
				palette = p.obp1
			}
			p.fb.SetShade(x, y, mapPalette(palette, index))
		}
	}
}

// tileMapBase returns the VRAM offset of the selected 32x32 tile map.
func (p *PPU) tileMapBase(selectBit uint8) uint16 {
	if bit.IsSet(selectBit, p.lcdc) {
		return 0x1C00 // 0x9C00
	}
	return 0x1800 // 0x9800
}

// tileDataAddress returns the VRAM offset of a BG/window tile's first byte,
// honoring the signed addressing mode when LCDC bit 4 is clear.
func (p *PPU) tileDataAddress(tileIndex uint8) uint16 {
	if bit.IsSet(lcdcTileData, p.lcdc) {
		return uint16(tileIndex) * 16 // 0x8000 + index*16
	}
	return uint16(0x1000 + int(int8(tileIndex))*16) // 0x9000 + signed index*16
}

// fetchTileRow reads one 2-byte row of a tile.
func (p *PPU) fetchTileRow(base uint16, fineY int) TileRow {
	a := base + uint16(fineY)*2
	return TileRow{Low: p.vram[a], High: p.vram[a+1]}
}
