package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"go.uber.org/multierr"

	"sounddraw/synth"
)

var (
	baseDir  string
	debugLog bool

	presetsPath string
	midiPath    string
	tickMs      int
)

func main() {
	flag.BoolVar(&debugLog, "debug", false, "verbose/debug logging")
	flag.StringVar(&presetsPath, "presets", "", "instrument preset YAML file")
	flag.StringVar(&midiPath, "midi", "", "write every finished session to this MIDI file")
	flag.IntVar(&tickMs, "tick", 0, "playback tick interval in milliseconds")
	flag.Parse()

	baseDir = os.Getenv("PWD")
	if baseDir == "" {
		var err error
		if baseDir, err = os.Getwd(); err != nil {
			fmt.Fprintf(os.Stderr, "get working directory: %v\n", err)
			os.Exit(1)
		}
	}

	loadSettings()
	applyFlags()
	setupLogging(debugLog)
	defer func() {
		if r := recover(); r != nil {
			logError("panic: %v\n%s", r, debug.Stack())
		}
		if err := shutdown(); err != nil {
			fmt.Fprintf(os.Stderr, "shutdown: %v\n", err)
		}
	}()

	bank := synth.NewBank(loadPresets(), gs.SampleRate)
	initSoundContext(bank.SampleRate())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	ready := watchAudioReady(ctx, bank)
	if err := runGame(ctx, bank, ready); err != nil {
		logError("ebiten: %v", err)
	}
}

// applyFlags lets command line values override settings.json for this run.
func applyFlags() {
	if presetsPath != "" {
		gs.PresetsPath = presetsPath
	}
	if midiPath != "" {
		gs.MidiPath = midiPath
	}
	if tickMs > 0 {
		gs.TickMs = tickMs
	}
}

// loadPresets reads the configured preset file, falling back to the built-in
// instruments when it is missing or broken.
func loadPresets() []synth.Preset {
	if gs.PresetsPath == "" {
		return synth.DefaultPresets()
	}
	path := gs.PresetsPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	presets, err := synth.LoadPresets(path)
	if err != nil {
		logError("load presets %s: %v, using built-in instruments", path, err)
		return synth.DefaultPresets()
	}
	bank := synth.NewBank(presets, gs.SampleRate)
	for _, p := range synth.DefaultPresets() {
		if !bank.Has(p.Name) {
			logWarn("presets %s: no %q instrument, using built-in one", path, p.Name)
			presets = append(presets, p)
		}
	}
	logInfo("loaded %d presets from %s", len(presets), path)
	return presets
}

// shutdown releases audio and persists settings, returning every failure.
func shutdown() error {
	err := closeSounds()
	if settingsDirty {
		err = multierr.Append(err, saveSettings())
	}
	return multierr.Append(err, syncLogging())
}
