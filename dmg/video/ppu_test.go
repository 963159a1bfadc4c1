package video

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valdr/dotmatrix/dmg/addr"
	"github.com/valdr/dotmatrix/dmg/interrupt"
)

func newTestPPU() (*PPU, *interrupt.Controller) {
	ic := interrupt.New()
	ic.WriteEnable(0x1F)
	p := New(ic)
	// quiet post-boot defaults for timing tests
	p.Write(addr.STAT, 0x00)
	return p, ic
}

func TestPPU_modeProgression(t *testing.T) {
	p, _ := newTestPPU()

	assert.Equal(t, ModeOAMScan, p.mode)

	p.Tick(oamScanDots)
	assert.Equal(t, ModeTransfer, p.mode)

	// empty OAM, SCX 0: pixel transfer runs its 172-dot floor
	p.Tick(transferBaseDots)
	assert.Equal(t, ModeHBlank, p.mode)

	p.Tick(scanlineDots - oamScanDots - transferBaseDots)
	assert.Equal(t, ModeOAMScan, p.mode)
	assert.Equal(t, uint8(1), p.Read(addr.LY))
}

func TestPPU_transferStretchedBySCXAndSprites(t *testing.T) {
	p, _ := newTestPPU()
	p.Write(addr.SCX, 5)

	// two sprites on line 0
	putOAMEntry(p.oam[:], 0, 16, 8, 0, 0)
	putOAMEntry(p.oam[:], 1, 16, 40, 0, 0)

	p.Tick(oamScanDots)
	assert.Equal(t, ModeTransfer, p.mode)
	assert.Equal(t, transferBaseDots+5+12, p.transferDots)

	p.Tick(transferBaseDots + 16)
	assert.Equal(t, ModeTransfer, p.mode, "still transferring")
	p.Tick(1)
	assert.Equal(t, ModeHBlank, p.mode)
}

func TestPPU_vblankRaisesInterruptAndDeliversFrame(t *testing.T) {
	p, ic := newTestPPU()

	frames := 0
	p.SetFrameSink(FrameSinkFunc(func(fb *FrameBuffer) { frames++ }))

	p.Tick(scanlineDots * FramebufferHeight)

	assert.Equal(t, ModeVBlank, p.mode)
	assert.Equal(t, uint8(144), p.Read(addr.LY))
	assert.Equal(t, 1, frames)

	kind, ok := ic.HighestPending()
	assert.True(t, ok)
	assert.Equal(t, interrupt.VBlank, kind)
}

func TestPPU_frameWrapsAfter154Lines(t *testing.T) {
	p, _ := newTestPPU()
	p.windowLine = 42

	p.Tick(scanlineDots * frameLines)

	assert.Equal(t, ModeOAMScan, p.mode)
	assert.Equal(t, uint8(0), p.Read(addr.LY))
	assert.Equal(t, 0, p.windowLine, "window line counter resets per frame")
}

func TestPPU_lycCoincidence(t *testing.T) {
	p, ic := newTestPPU()
	p.Write(addr.STAT, 1<<statCoincidenceSelect)
	p.Write(addr.LYC, 2)
	ic.Acknowledge(interrupt.STAT) // drop any edge from the writes

	p.Tick(scanlineDots) // LY 1
	assert.False(t, hasSTAT(ic))

	p.Tick(scanlineDots) // LY 2
	assert.True(t, hasSTAT(ic))

	// coincidence bit tracks the comparison
	assert.Equal(t, uint8(0x04), p.Read(addr.STAT)&0x04)
	p.Tick(scanlineDots) // LY 3
	assert.Equal(t, uint8(0x00), p.Read(addr.STAT)&0x04)
}

func TestPPU_statRisingEdgeOnly(t *testing.T) {
	p, ic := newTestPPU()
	p.Write(addr.STAT, 1<<statHBlankSelect|1<<statCoincidenceSelect)
	p.Write(addr.LYC, 0)

	// LY==LYC already holds, so the line is high from the start; entering
	// HBlank must not fire again because the line never fell
	ic.Acknowledge(interrupt.STAT)
	p.Tick(oamScanDots + transferBaseDots)
	assert.Equal(t, ModeHBlank, p.mode)
	assert.False(t, hasSTAT(ic), "blocked by the already-high line")
}

func TestPPU_statModeInterrupts(t *testing.T) {
	p, ic := newTestPPU()
	p.Write(addr.STAT, 1<<statHBlankSelect)
	ic.Acknowledge(interrupt.STAT)

	p.Tick(oamScanDots + transferBaseDots)
	assert.Equal(t, ModeHBlank, p.mode)
	assert.True(t, hasSTAT(ic))
}

func TestPPU_statRegisterBits(t *testing.T) {
	p, _ := newTestPPU()

	// only the source selects are writable; bit 7 reads set, bits 1-0 are
	// the live mode
	p.Write(addr.STAT, 0xFF)
	got := p.Read(addr.STAT)
	assert.Equal(t, uint8(0x78), got&0x78)
	assert.Equal(t, uint8(0x80), got&0x80)
	assert.Equal(t, uint8(ModeOAMScan), got&0x03)
}

func TestPPU_lyIsReadOnly(t *testing.T) {
	p, _ := newTestPPU()

	p.Tick(scanlineDots * 3)
	p.Write(addr.LY, 0x99)

	assert.Equal(t, uint8(3), p.Read(addr.LY))
}

func TestPPU_busLocks(t *testing.T) {
	p, _ := newTestPPU()

	// mode 2: OAM locked, VRAM open
	assert.Equal(t, ModeOAMScan, p.mode)
	p.WriteVRAM(addr.VRAMStart, 0x12)
	assert.Equal(t, uint8(0x12), p.ReadVRAM(addr.VRAMStart))

	p.WriteOAM(addr.OAMStart, 0x34)
	assert.Equal(t, uint8(0xFF), p.ReadOAM(addr.OAMStart))
	assert.Equal(t, uint8(0x00), p.oam[0], "locked write dropped")

	// mode 3: both locked
	p.Tick(oamScanDots)
	p.WriteVRAM(addr.VRAMStart, 0x56)
	assert.Equal(t, uint8(0xFF), p.ReadVRAM(addr.VRAMStart))
	assert.Equal(t, uint8(0x12), p.vram[0], "locked write dropped")

	// mode 0: both open
	p.Tick(transferBaseDots)
	assert.Equal(t, ModeHBlank, p.mode)
	p.WriteOAM(addr.OAMStart, 0x34)
	assert.Equal(t, uint8(0x34), p.ReadOAM(addr.OAMStart))
}

func TestPPU_dmaBypassesLock(t *testing.T) {
	p, _ := newTestPPU()
	assert.Equal(t, ModeOAMScan, p.mode)

	p.WriteOAMDirect(0, 0x77)
	assert.Equal(t, uint8(0x77), p.oam[0])
}

func TestPPU_lcdDisable(t *testing.T) {
	p, _ := newTestPPU()
	p.fb.Fill(3)
	p.Tick(scanlineDots*2 + 100)

	p.Write(addr.LCDC, 0x11) // LCD off

	assert.Equal(t, uint8(0), p.Read(addr.LY))
	assert.Equal(t, ModeHBlank, p.mode)
	assert.Equal(t, Shade(0), p.fb.GetShade(0, 0), "panel blanks")

	// a stopped PPU ignores ticks
	p.Tick(scanlineDots * 10)
	assert.Equal(t, uint8(0), p.Read(addr.LY))

	// re-enable restarts from the top of the frame
	p.Write(addr.LCDC, 0x91)
	assert.Equal(t, ModeOAMScan, p.mode)
	p.Tick(scanlineDots)
	assert.Equal(t, uint8(1), p.Read(addr.LY))
}

func TestPPU_saveRestoreRoundTrip(t *testing.T) {
	p, _ := newTestPPU()
	p.WriteVRAM(addr.VRAMStart+0x100, 0xAB)
	p.Write(addr.SCX, 3)
	p.Write(addr.BGP, 0xE4)
	p.Tick(scanlineDots*5 + 130)

	state := p.Save()

	other, _ := newTestPPU()
	other.Restore(state)

	assert.Equal(t, state, other.Save())

	// both continue identically
	p.Tick(1000)
	other.Tick(1000)
	assert.Equal(t, p.Read(addr.LY), other.Read(addr.LY))
	assert.Equal(t, p.mode, other.mode)
}

func hasSTAT(ic *interrupt.Controller) bool {
	kind, ok := ic.HighestPending()
	return ok && kind == interrupt.STAT
}
