package video

// spritePriorityBuffer resolves sprite-to-sprite priority with a per-pixel
// ownership model instead of sorting: among sprites covering the same pixel
// the one with the lowest X coordinate wins, ties going to the lowest OAM
// index. Each selected sprite claims its eight pixels in OAM order; a claim
// succeeds only if it beats the current owner.
//
// The same-X tie-break is the documented OAM-index rule; reference hardware
// has been observed to disagree in corner cases, so conformance against it
// is tracked as a known gap rather than silently assumed exact.
type spritePriorityBuffer struct {
	// ownerIndex is the OAM index owning each pixel, -1 when unowned.
	ownerIndex [FramebufferWidth]int
	// ownerX is the owning sprite's X, kept for comparisons.
	ownerX [FramebufferWidth]int
}

// clear resets ownership for a new scanline.
func (s *spritePriorityBuffer) clear() {
	for i := range s.ownerIndex {
		s.ownerIndex[i] = -1
		s.ownerX[i] = 0x1FF // beyond any real X so the first claim always wins
	}
}

// claim attempts to take a pixel for a sprite and reports whether it won.
func (s *spritePriorityBuffer) claim(pixelX, oamIndex, spriteX int) bool {
	if pixelX < 0 || pixelX >= FramebufferWidth {
		return false
	}
	if owner := s.ownerIndex[pixelX]; owner != -1 {
		if spriteX > s.ownerX[pixelX] {
			return false
		}
		if spriteX == s.ownerX[pixelX] && oamIndex > owner {
			return false
		}
	}
	s.ownerIndex[pixelX] = oamIndex
	s.ownerX[pixelX] = spriteX
	return true
}

// owner returns the OAM index owning a pixel, or -1.
func (s *spritePriorityBuffer) owner(pixelX int) int {
	if pixelX < 0 || pixelX >= FramebufferWidth {
		return -1
	}
	return s.ownerIndex[pixelX]
}
