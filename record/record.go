// Package record captures the notes of a playback session and writes them
// as a Standard MIDI File.
package record

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"sounddraw/playback"
	"sounddraw/strokes"
)

// Resolution is the number of MIDI ticks per quarter note.
const Resolution = 960

// ErrEmpty is returned when writing a session without notes.
var ErrEmpty = errors.New("session has no notes")

// General MIDI programs for each instrument.
var programs = map[strokes.Mode]uint8{
	strokes.Piano:  0,  // acoustic grand
	strokes.Violin: 40, // violin
	strokes.Guitar: 24, // nylon guitar
}

// Event is a note and its offset from the start of the session.
type Event struct {
	At   time.Duration
	Note playback.Note
}

// Recorder collects notes as they are played. It is meant to sit next to the
// audio output and see the same notes.
type Recorder struct {
	start  time.Time
	events []Event
	now    func() time.Time
}

// New returns an idle recorder.
func New() *Recorder {
	return &Recorder{now: time.Now}
}

// Begin discards what was recorded and restarts the clock at now.
func (r *Recorder) Begin(now time.Time) {
	r.start = now
	r.events = nil
}

// Play records n at the current time.
func (r *Recorder) Play(n playback.Note) {
	r.Record(r.now().Sub(r.start), n)
}

// Record stores n at the given offset.
func (r *Recorder) Record(at time.Duration, n playback.Note) {
	if at < 0 {
		at = 0
	}
	r.events = append(r.events, Event{At: at, Note: n})
}

// Session returns a copy of what has been recorded so far.
func (r *Recorder) Session() Session {
	return Session{Events: append([]Event(nil), r.events...)}
}

// Session is a finished recording.
type Session struct {
	Events []Event
}

// Len returns the number of recorded notes.
func (s Session) Len() int { return len(s.Events) }

type timed struct {
	tick uint32
	off  bool
	msg  midi.Message
}

func ticks(d time.Duration) uint32 {
	return uint32(math.Round(d.Seconds() * playback.Tempo / 60 * Resolution))
}

// SMF builds a format 1 file: a tempo track followed by one track per
// instrument, each on its own channel.
func (s Session) SMF() (*smf.SMF, error) {
	if len(s.Events) == 0 {
		return nil, ErrEmpty
	}
	f := smf.New()
	f.TimeFormat = smf.MetricTicks(Resolution)

	var tempo smf.Track
	tempo.Add(0, smf.MetaMeter(4, 4))
	tempo.Add(0, smf.MetaTempo(playback.Tempo))
	tempo.Close(0)
	if err := f.Add(tempo); err != nil {
		return nil, fmt.Errorf("add tempo track: %w", err)
	}

	for _, m := range strokes.Modes() {
		ch := uint8(m)
		var evs []timed
		for _, e := range s.Events {
			if e.Note.Mode != m {
				continue
			}
			key := uint8(e.Note.Pitch.MIDI)
			vel := uint8(math.Max(1, math.Min(127, math.Round(e.Note.Velocity*127))))
			on := ticks(e.At)
			off := ticks(e.At + e.Note.Duration.Time(playback.Tempo))
			evs = append(evs,
				timed{tick: on, msg: midi.NoteOn(ch, key, vel)},
				timed{tick: off, off: true, msg: midi.NoteOff(ch, key)},
			)
		}
		if len(evs) == 0 {
			continue
		}
		// Note offs sort ahead of note ons on the same tick so a repeated
		// key is released before it sounds again.
		sort.SliceStable(evs, func(i, j int) bool {
			if evs[i].tick != evs[j].tick {
				return evs[i].tick < evs[j].tick
			}
			return evs[i].off && !evs[j].off
		})

		var tr smf.Track
		tr.Add(0, smf.MetaTrackSequenceName(m.String()))
		tr.Add(0, midi.ProgramChange(ch, programs[m]))
		var last uint32
		for _, e := range evs {
			tr.Add(e.tick-last, e.msg)
			last = e.tick
		}
		tr.Close(0)
		if err := f.Add(tr); err != nil {
			return nil, fmt.Errorf("add %s track: %w", m, err)
		}
	}
	return f, nil
}

// WriteTo writes the session as a MIDI file.
func (s Session) WriteTo(w io.Writer) (int64, error) {
	f, err := s.SMF()
	if err != nil {
		return 0, err
	}
	return f.WriteTo(w)
}

// WriteFile writes the session to path.
func (s Session) WriteFile(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if _, err := s.WriteTo(out); err != nil {
		out.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}
