package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sounddraw/sketch"
)

const settingsFile = "settings.json"

type Settings struct {
	WindowWidth    int     `json:"windowWidth"`
	WindowHeight   int     `json:"windowHeight"`
	Theme          string  `json:"theme"` // auto, light or dark
	Volume         float64 `json:"volume"`
	TickMs         int     `json:"tickMs"`
	SampleRate     int     `json:"sampleRate"`
	AudioTimeoutMs int     `json:"audioTimeoutMs"`
	PresetsPath    string  `json:"presetsPath"`
	MidiPath       string  `json:"midiPath"`
}

var (
	gs = defaultSettings()

	// diskSettings is what saveSettings writes. It excludes command line
	// overrides applied to gs.
	diskSettings  = gs
	settingsDirty bool
)

func defaultSettings() Settings {
	return Settings{
		WindowWidth:    1280,
		WindowHeight:   800,
		Theme:          "auto",
		Volume:         1,
		TickMs:         20,
		SampleRate:     44100,
		AudioTimeoutMs: 5000,
	}
}

// sanitize replaces unusable values with defaults.
func (s *Settings) sanitize() {
	def := defaultSettings()
	if s.WindowWidth < sketch.ButtonWidth {
		s.WindowWidth = def.WindowWidth
	}
	if s.WindowHeight <= sketch.BarHeight {
		s.WindowHeight = def.WindowHeight
	}
	switch s.Theme {
	case "auto", "light", "dark":
	default:
		s.Theme = def.Theme
	}
	if s.Volume < 0 || s.Volume > 1 {
		s.Volume = def.Volume
	}
	if s.TickMs <= 0 {
		s.TickMs = def.TickMs
	}
	if s.SampleRate != 22050 && s.SampleRate != 44100 && s.SampleRate != 48000 {
		s.SampleRate = def.SampleRate
	}
	if s.AudioTimeoutMs <= 0 {
		s.AudioTimeoutMs = def.AudioTimeoutMs
	}
}

func (s Settings) tickInterval() time.Duration {
	return time.Duration(s.TickMs) * time.Millisecond
}

func (s Settings) audioTimeout() time.Duration {
	return time.Duration(s.AudioTimeoutMs) * time.Millisecond
}

// readSettings loads path over the defaults. Missing fields keep their
// default values.
func readSettings(path string) (Settings, error) {
	s := defaultSettings()
	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}
	if err := json.Unmarshal(data, &s); err != nil {
		return defaultSettings(), fmt.Errorf("parse %s: %w", path, err)
	}
	s.sanitize()
	return s, nil
}

func writeSettings(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func loadSettings() bool {
	s, err := readSettings(filepath.Join(baseDir, settingsFile))
	gs, diskSettings = s, s
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Printf("load settings: %v\n", err)
		}
		return false
	}
	return true
}

// setWindowSize records a new window size to be saved on exit.
func setWindowSize(w, h int) {
	gs.WindowWidth, gs.WindowHeight = w, h
	diskSettings.WindowWidth, diskSettings.WindowHeight = w, h
	settingsDirty = true
}

func saveSettings() error {
	if err := writeSettings(filepath.Join(baseDir, settingsFile), diskSettings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	settingsDirty = false
	return nil
}
