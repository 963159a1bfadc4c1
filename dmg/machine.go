// Package dmg assembles the emulator core: CPU, interrupt controller, timer,
// PPU, serial port, joypad and the memory bus, stepped in lockstep by a
// CPU-driven scheduler. One Step executes one CPU instruction (or interrupt
// dispatch, or an idle halt cycle) and then advances every clocked component
// by the cycles it consumed.
package dmg

import (
	"log/slog"
	"os"

	"github.com/valdr/dotmatrix/dmg/cpu"
	"github.com/valdr/dotmatrix/dmg/interrupt"
	"github.com/valdr/dotmatrix/dmg/joypad"
	"github.com/valdr/dotmatrix/dmg/memory"
	"github.com/valdr/dotmatrix/dmg/serial"
	"github.com/valdr/dotmatrix/dmg/timer"
	"github.com/valdr/dotmatrix/dmg/video"
)

// CyclesPerFrame is how many T-cycles one full frame takes: 154 scanlines of
// 456 dots each.
const CyclesPerFrame = 70224

// Machine is the assembled core.
type Machine struct {
	ic  *interrupt.Controller
	tmr *timer.Timer
	joy *joypad.Joypad
	ser *serial.Port
	ppu *video.PPU
	bus *memory.Bus
	cpu *cpu.CPU

	frameReady bool
	sink       video.FrameSink
	onSerial   func(byte)
}

// New assembles a machine around a cartridge in the documented post-boot
// state. cart may be nil; the bus then reads the floating value.
func New(cart memory.Cartridge) *Machine {
	m := &Machine{}

	m.ic = interrupt.New()
	m.tmr = timer.New(m.ic)
	m.joy = joypad.New(m.ic)
	m.ser = serial.New(m.ic, func(b byte) {
		if m.onSerial != nil {
			m.onSerial(b)
		}
	})
	m.ppu = video.New(m.ic)
	m.bus = memory.New(cart, m.ppu, m.tmr, m.ic, m.joy, m.ser)
	m.cpu = cpu.New(m.bus, m.ic)

	// the boot ROM hands over with the VBlank request already raised
	m.ic.WriteRequest(0x01)

	m.ppu.SetFrameSink(video.FrameSinkFunc(func(fb *video.FrameBuffer) {
		m.frameReady = true
		if m.sink != nil {
			m.sink.Frame(fb)
		}
	}))

	return m
}

// NewWithFile assembles a machine around the ROM image at path, mapped as an
// unbanked cartridge.
func NewWithFile(path string) (*Machine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cart, err := memory.NewFlatROM(data)
	if err != nil {
		return nil, err
	}

	slog.Info("loaded ROM", "path", path, "bytes", len(data))

	return New(cart), nil
}

// SetFrameSink registers the presentation collaborator. It is called once
// per completed frame, at the HBlank-to-VBlank transition.
func (m *Machine) SetFrameSink(sink video.FrameSink) {
	m.sink = sink
}

// SetSerialByteFunc registers a callback for every byte the serial port
// shifts out. Conformance ROMs report results this way.
func (m *Machine) SetSerialByteFunc(fn func(byte)) {
	m.onSerial = fn
}

// Step runs one CPU step and brings the clocked components up to the same
// point in time. It returns the T-cycles consumed.
func (m *Machine) Step() int {
	cycles := m.cpu.Step()

	m.tmr.Tick(cycles)
	m.ppu.Tick(cycles)
	m.ser.Tick(cycles)

	return cycles
}

// RunCycles steps the machine until at least n T-cycles have elapsed and
// returns the exact count, which may overshoot by up to one instruction.
func (m *Machine) RunCycles(n int) int {
	total := 0
	for total < n {
		total += m.Step()
	}
	return total
}

// RunUntilFrame steps the machine until the PPU completes a frame. With the
// LCD disabled no frame ever completes, so it falls back to a full frame's
// worth of cycles to keep callers from spinning forever.
func (m *Machine) RunUntilFrame() {
	m.frameReady = false

	elapsed := 0
	for !m.frameReady {
		elapsed += m.Step()
		if !m.ppu.Enabled() && elapsed >= CyclesPerFrame {
			return
		}
	}
}

// Press forwards a key press to the joypad.
func (m *Machine) Press(key joypad.Key) {
	m.joy.Press(key)
}

// Release forwards a key release to the joypad.
func (m *Machine) Release(key joypad.Key) {
	m.joy.Release(key)
}

// FrameBuffer exposes the PPU's output buffer.
func (m *Machine) FrameBuffer() *video.FrameBuffer {
	return m.ppu.FrameBuffer()
}

// Component accessors for tests and debug tooling.
func (m *Machine) CPU() *cpu.CPU                  { return m.cpu }
func (m *Machine) PPU() *video.PPU                { return m.ppu }
func (m *Machine) Timer() *timer.Timer            { return m.tmr }
func (m *Machine) Bus() *memory.Bus               { return m.bus }
func (m *Machine) Joypad() *joypad.Joypad         { return m.joy }
func (m *Machine) Serial() *serial.Port           { return m.ser }
func (m *Machine) Interrupts() *interrupt.Controller { return m.ic }
