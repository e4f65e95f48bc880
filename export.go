package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sqweek/dialog"

	"sounddraw/playback"
	"sounddraw/record"
)

var exporting atomic.Bool

// exportSession asks where to save s and writes it as a MIDI file. The dialog
// runs off the game loop so drawing keeps going while it is open.
func exportSession(s record.Session) {
	if s.Len() == 0 {
		logInfo("export: %v", record.ErrEmpty)
		return
	}
	if !exporting.CompareAndSwap(false, true) {
		return
	}
	go func() {
		defer exporting.Store(false)
		defName := fmt.Sprintf("sounddraw_%s.mid", time.Now().Format("20060102_150405"))
		filename, err := dialog.File().Filter("MIDI files", "mid", "midi").
			SetStartDir(baseDir).SetStartFile(defName).Title("Export Session").Save()
		if err != nil {
			if !errors.Is(err, dialog.ErrCancelled) {
				logError("export save dialog: %v", err)
			}
			return
		}
		if filename == "" {
			return
		}
		writeSession(s, filename)
	}()
}

// saveSession writes s to path off the game loop. The returned channel is
// closed once the file is written or the write failed.
func saveSession(s record.Session, path string) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		writeSession(s, path)
	}()
	return done
}

func writeSession(s record.Session, path string) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	if err := s.WriteFile(path); err != nil {
		logError("write session: %v", err)
		return
	}
	logInfo("session written to %s (%s notes)", path, humanize.Comma(int64(s.Len())))
}

// sessionSummary is the log line for a finished session.
func sessionSummary(st playback.Stats) string {
	return fmt.Sprintf("played %d strokes, %s points, %s notes (%d harmonies) in %s",
		st.Strokes, humanize.Comma(int64(st.Points)), humanize.Comma(int64(st.Notes)),
		st.Harmonies, shortDuration(st.Elapsed))
}
