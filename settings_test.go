package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestReadSettingsMissingFile(t *testing.T) {
	s, err := readSettings(filepath.Join(t.TempDir(), settingsFile))
	if !os.IsNotExist(err) {
		t.Fatalf("err = %v", err)
	}
	if s != defaultSettings() {
		t.Fatalf("got %#v", s)
	}
}

func TestReadSettingsPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFile)
	if err := os.WriteFile(path, []byte(`{"theme":"dark","tickMs":40,"volume":7}`), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := readSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if s.Theme != "dark" || s.tickInterval() != 40*time.Millisecond {
		t.Fatalf("fields not read: %#v", s)
	}
	if s.Volume != 1 || s.WindowWidth != 1280 || s.audioTimeout() != 5*time.Second {
		t.Fatalf("defaults not kept: %#v", s)
	}
}

func TestReadSettingsBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), settingsFile)
	if err := os.WriteFile(path, []byte(`{`), 0644); err != nil {
		t.Fatal(err)
	}
	s, err := readSettings(path)
	if err == nil || s != defaultSettings() {
		t.Fatalf("got %#v, %v", s, err)
	}
}

func TestSaveSettingsSkipsFlags(t *testing.T) {
	oldBase, oldGS, oldDisk := baseDir, gs, diskSettings
	oldMidi, oldTick := midiPath, tickMs
	t.Cleanup(func() {
		baseDir, gs, diskSettings = oldBase, oldGS, oldDisk
		midiPath, tickMs = oldMidi, oldTick
	})

	baseDir = t.TempDir()
	loadSettings()
	midiPath, tickMs = "out.mid", 50
	applyFlags()
	if gs.MidiPath != "out.mid" || gs.TickMs != 50 {
		t.Fatalf("flags not applied: %#v", gs)
	}
	setWindowSize(640, 480)
	if err := saveSettings(); err != nil {
		t.Fatal(err)
	}
	s, err := readSettings(filepath.Join(baseDir, settingsFile))
	if err != nil {
		t.Fatal(err)
	}
	if s.WindowWidth != 640 || s.WindowHeight != 480 {
		t.Fatalf("window size not saved: %#v", s)
	}
	if s.MidiPath != "" || s.TickMs != 20 {
		t.Fatalf("flag values leaked into settings.json: %#v", s)
	}
}
