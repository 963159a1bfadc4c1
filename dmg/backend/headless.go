package backend

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash"

	"github.com/valdr/dotmatrix/dmg/video"
)

// Headless runs the machine with no display: it counts frames, logs a
// digest of each Nth framebuffer and optionally dumps frames as text art.
// Batch runs and CI use it.
type Headless struct {
	config    Config
	callbacks Callbacks

	frameCount int
	maxFrames  int
	snapshot   SnapshotConfig
}

// SnapshotConfig controls periodic frame dumps in headless runs.
type SnapshotConfig struct {
	Enabled   bool
	Interval  int    // dump every N frames
	Directory string
	ROMName   string // base name for dump files
}

// NewHeadless returns a headless backend that signals OnQuit after
// maxFrames frames.
func NewHeadless(maxFrames int, snapshot SnapshotConfig) *Headless {
	return &Headless{
		maxFrames: maxFrames,
		snapshot:  snapshot,
	}
}

func (h *Headless) Init(config Config) error {
	h.config = config
	h.callbacks = config.Callbacks

	slog.Info("running headless",
		"frames", h.maxFrames,
		"snapshot_interval", h.snapshot.Interval,
		"snapshot_dir", h.snapshot.Directory)

	return nil
}

// Update counts the frame, logs its digest and dumps it when the interval
// says so.
func (h *Headless) Update(frame *video.FrameBuffer) error {
	h.frameCount++

	if h.snapshot.Enabled && h.frameCount%h.snapshot.Interval == 0 {
		h.dumpFrame(frame)
	}

	if h.frameCount%60 == 0 {
		slog.Info("frame progress",
			"completed", h.frameCount,
			"total", h.maxFrames,
			"digest", fmt.Sprintf("%016x", xxhash.Sum64(frame.Bytes())))
	}

	if h.frameCount >= h.maxFrames {
		if h.snapshot.Enabled && h.frameCount%h.snapshot.Interval != 0 {
			h.dumpFrame(frame)
		}
		slog.Info("headless run completed",
			"frames", h.frameCount,
			"digest", fmt.Sprintf("%016x", xxhash.Sum64(frame.Bytes())))
		if h.callbacks.OnQuit != nil {
			h.callbacks.OnQuit()
		}
	}

	return nil
}

func (h *Headless) Cleanup() error {
	return nil
}

// NewSnapshotConfig builds a snapshot configuration from CLI parameters. An
// interval of zero disables dumping.
func NewSnapshotConfig(interval int, directory, romPath string) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:  interval > 0,
		Interval: interval,
	}

	if !config.Enabled {
		return config, nil
	}

	if directory == "" {
		tempDir, err := os.MkdirTemp("", "dotmatrix-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("creating snapshot directory: %w", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return config, fmt.Errorf("creating snapshot directory: %w", err)
		}
		config.Directory = directory
	}

	base := filepath.Base(romPath)
	config.ROMName = base[:len(base)-len(filepath.Ext(base))]

	return config, nil
}

// shadeChars maps the four DMG shades to block characters, lightest first.
var shadeChars = [4]rune{'░', '▒', '▓', '█'}

// dumpFrame writes the frame as text art under a digest header, one file
// per dump.
func (h *Headless) dumpFrame(frame *video.FrameBuffer) {
	name := fmt.Sprintf("%s_frame_%d.txt", h.snapshot.ROMName, h.frameCount)
	path := filepath.Join(h.snapshot.Directory, name)

	file, err := os.Create(path)
	if err != nil {
		slog.Error("failed to create frame dump", "path", path, "error", err)
		return
	}
	defer file.Close()

	fmt.Fprintf(file, "# frame %d\n", h.frameCount)
	fmt.Fprintf(file, "# digest %016x\n", xxhash.Sum64(frame.Bytes()))

	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			fmt.Fprintf(file, "%c", shadeChars[frame.GetShade(x, y)])
		}
		fmt.Fprintln(file)
	}

	slog.Info("saved frame dump", "frame", h.frameCount, "path", path)
}
