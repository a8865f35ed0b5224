// Command splat runs the tethered swing game in the terminal.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/splat/audio"
	"github.com/lixenwraith/splat/config"
	"github.com/lixenwraith/splat/stage"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file (default $"+config.EnvPath+")")
	seedFlag   = flag.Int64("seed", 0, "Stage generator seed, 0 uses the config seed or the clock")
	debugFlag  = flag.Bool("debug", false, "Write debug log to logs/splat.log")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	opts := cfg.StageOptions(*seedFlag)
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}
	st := stage.Generate(opts)
	log.Printf("stage %dx%d seed %d", opts.Width, opts.Height, opts.Seed)

	cues := audio.NewCues(cfg.AudioOptions())
	if err := cues.Initialize(); err != nil {
		// Non-fatal, the game runs without sound
		log.Printf("audio initialization failed: %v", err)
	}
	defer cues.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	// Restore the terminal before printing a crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\nSPLAT CRASHED: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents | tcell.MouseMotionEvents)
	screen.HideCursor()
	screen.Clear()

	NewApp(cfg, screen, st, cues).Run()
}
