package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/valdr/dotmatrix/dmg"
	"github.com/valdr/dotmatrix/dmg/backend"
	"github.com/valdr/dotmatrix/dmg/backend/sdl2"
	"github.com/valdr/dotmatrix/dmg/backend/terminal"
	"github.com/valdr/dotmatrix/dmg/joypad"
)

func main() {
	app := cli.NewApp()
	app.Name = "dotmatrix"
	app.Description = "A cycle-accurate Game Boy (DMG) emulator"
	app.Usage = "dotmatrix [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.StringFlag{
			Name:  "backend",
			Usage: "Display backend: terminal or sdl2",
			Value: "terminal",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Window scale factor (sdl2 backend)",
			Value: 4,
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run without a display",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Dump the frame every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory for frame dumps (default: temp directory)",
		},
		cli.BoolFlag{
			Name:  "serial",
			Usage: "Print bytes written to the serial port on stdout",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Enable debug logging",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("emulator exited with error", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	level := slog.LevelInfo
	if c.Bool("debug") {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))

	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() == 0 {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
		romPath = c.Args().First()
	}

	machine, err := dmg.NewWithFile(romPath)
	if err != nil {
		return err
	}

	if c.Bool("serial") {
		machine.SetSerialByteFunc(func(b byte) {
			fmt.Printf("%c", b)
		})
	}

	b, err := pickBackend(c, romPath)
	if err != nil {
		return err
	}

	return runLoop(machine, b, c.Int("scale"))
}

func pickBackend(c *cli.Context, romPath string) (backend.Backend, error) {
	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return nil, errors.New("headless mode requires --frames with a positive value")
		}
		snapshot, err := backend.NewSnapshotConfig(c.Int("snapshot-interval"), c.String("snapshot-dir"), romPath)
		if err != nil {
			return nil, err
		}
		return backend.NewHeadless(frames, snapshot), nil
	}

	switch name := c.String("backend"); name {
	case "terminal":
		return terminal.New(), nil
	case "sdl2":
		return sdl2.New(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", name)
	}
}

func runLoop(machine *dmg.Machine, b backend.Backend, scale int) error {
	quit := make(chan struct{})

	config := backend.Config{
		Title: "dotmatrix",
		Scale: scale,
		Callbacks: backend.Callbacks{
			OnQuit: func() {
				select {
				case <-quit:
				default:
					close(quit)
				}
			},
			OnKey: func(key joypad.Key, pressed bool) {
				if pressed {
					machine.Press(key)
					return
				}
				machine.Release(key)
			},
		},
	}

	if err := b.Init(config); err != nil {
		return err
	}
	defer b.Cleanup()

	for {
		select {
		case <-quit:
			return nil
		default:
		}

		machine.RunUntilFrame()
		if err := b.Update(machine.FrameBuffer()); err != nil {
			return err
		}
	}
}
