package timer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/valdr/dotmatrix/dmg/addr"
	"github.com/valdr/dotmatrix/dmg/interrupt"
)

// newTestTimer returns a timer with a zeroed counter, which makes cycle
// arithmetic in tests straightforward.
func newTestTimer() (*Timer, *interrupt.Controller) {
	ic := interrupt.New()
	t := New(ic)
	t.counter = 0
	t.lastSignal = false
	return t, ic
}

func TestTimer_divIsCounterTopByte(t *testing.T) {
	tmr, _ := newTestTimer()

	tmr.Tick(256)
	assert.Equal(t, uint8(1), tmr.Read(addr.DIV))

	tmr.Tick(256 * 3)
	assert.Equal(t, uint8(4), tmr.Read(addr.DIV))
}

func TestTimer_divWriteResetsCounter(t *testing.T) {
	tmr, _ := newTestTimer()

	tmr.Tick(1000)
	tmr.Write(addr.DIV, 0x55) // written value is irrelevant

	assert.Equal(t, uint8(0), tmr.Read(addr.DIV))
	assert.Equal(t, uint16(0), tmr.counter)
}

func TestTimer_disabledDoesNotCount(t *testing.T) {
	tmr, _ := newTestTimer()

	tmr.Write(addr.TAC, 0x00)
	tmr.Tick(4096)

	assert.Equal(t, uint8(0), tmr.Read(addr.TIMA))
}

func TestTimer_timaRates(t *testing.T) {
	testCases := []struct {
		desc   string
		tac    uint8
		period int // T-cycles per TIMA increment
	}{
		{desc: "4096 Hz", tac: 0x04, period: 1024},
		{desc: "262144 Hz", tac: 0x05, period: 16},
		{desc: "65536 Hz", tac: 0x06, period: 64},
		{desc: "16384 Hz", tac: 0x07, period: 256},
	}
	for _, tC := range testCases {
		t.Run(tC.desc, func(t *testing.T) {
			tmr, _ := newTestTimer()
			tmr.Write(addr.TAC, tC.tac)

			tmr.Tick(tC.period * 3)
			assert.Equal(t, uint8(3), tmr.Read(addr.TIMA))
		})
	}
}

func TestTimer_overflowReloadsAfterDelay(t *testing.T) {
	tmr, ic := newTestTimer()
	tmr.Write(addr.TAC, 0x05) // fastest rate: bit 3, period 16
	tmr.Write(addr.TMA, 0xAB)
	tmr.Write(addr.TIMA, 0xFF)

	tmr.Tick(16)

	// TIMA reads zero during the overflow window, no interrupt yet
	assert.Equal(t, uint8(0x00), tmr.Read(addr.TIMA))
	assert.False(t, ic.AnyPending())

	tmr.Tick(overflowDelay)

	assert.Equal(t, uint8(0xAB), tmr.Read(addr.TIMA))
	kind, ok := ic.HighestPending()
	assert.True(t, ok)
	assert.Equal(t, interrupt.Timer, kind)
}

func TestTimer_timaWriteCancelsPendingReload(t *testing.T) {
	tmr, ic := newTestTimer()
	tmr.Write(addr.TAC, 0x05)
	tmr.Write(addr.TMA, 0xAB)
	tmr.Write(addr.TIMA, 0xFF)

	tmr.Tick(16) // overflow, reload pending
	tmr.Write(addr.TIMA, 0x42)
	tmr.Tick(overflowDelay)

	assert.Equal(t, uint8(0x42), tmr.Read(addr.TIMA))
	assert.False(t, ic.AnyPending(), "cancelled reload must not fire")
}

func TestTimer_divWriteSpuriousIncrement(t *testing.T) {
	tmr, _ := newTestTimer()
	tmr.Write(addr.TAC, 0x05) // watching counter bit 3

	// park the counter with the watched bit high
	tmr.Tick(8)
	assert.Equal(t, uint8(0), tmr.Read(addr.TIMA))

	// resetting DIV pulls the watched bit low: falling edge, TIMA ticks
	tmr.Write(addr.DIV, 0x00)
	assert.Equal(t, uint8(1), tmr.Read(addr.TIMA))
}

func TestTimer_tacWriteSpuriousIncrement(t *testing.T) {
	tmr, _ := newTestTimer()
	tmr.Write(addr.TAC, 0x05)

	tmr.Tick(8) // watched bit 3 is now high

	// disabling the timer gates the signal low: falling edge, TIMA ticks
	tmr.Write(addr.TAC, 0x01)
	assert.Equal(t, uint8(1), tmr.Read(addr.TIMA))
}

func TestTimer_tacReadsWithUpperBitsSet(t *testing.T) {
	tmr, _ := newTestTimer()

	tmr.Write(addr.TAC, 0xFF)
	assert.Equal(t, uint8(0xFF), tmr.Read(addr.TAC))

	tmr.Write(addr.TAC, 0x05)
	assert.Equal(t, uint8(0xFD), tmr.Read(addr.TAC))
}

func TestTimer_frameSequencerHook(t *testing.T) {
	tmr, _ := newTestTimer()

	steps := 0
	tmr.SetFrameSequencer(func() { steps++ })

	// bit 12 falls once per 8192 cycles
	tmr.Tick(8192 * 2)
	assert.Equal(t, 2, steps)
}

func TestTimer_saveRestoreRoundTrip(t *testing.T) {
	tmr, _ := newTestTimer()
	tmr.Write(addr.TAC, 0x05)
	tmr.Write(addr.TMA, 0x10)
	tmr.Tick(100)

	state := tmr.Save()

	other, _ := newTestTimer()
	other.Restore(state)

	assert.Equal(t, state, other.Save())

	// both continue identically
	tmr.Tick(50)
	other.Tick(50)
	assert.Equal(t, tmr.Read(addr.TIMA), other.Read(addr.TIMA))
	assert.Equal(t, tmr.Read(addr.DIV), other.Read(addr.DIV))
}

func TestTimer_postBootCounterSeed(t *testing.T) {
	tmr := New(interrupt.New())
	assert.Equal(t, uint8(0xAB), tmr.Read(addr.DIV))
}
