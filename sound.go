package main

import (
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"sounddraw/notes"
	"sounddraw/playback"
	"sounddraw/sketch"
	"sounddraw/strokes"
	"sounddraw/synth"
)

const maxSounds = 64

var (
	soundMu      sync.Mutex
	audioContext *audio.Context
	soundPlayers = make(map[*audio.Player]struct{})
)

// initSoundContext creates the global audio context at the given rate.
func initSoundContext(sampleRate int) {
	audioContext = audio.NewContext(sampleRate)
}

// noteKey is the bank entry a note is rendered from.
func noteKey(n playback.Note) synth.Key {
	return synth.Key{
		Instrument: n.Mode.String(),
		Pitch:      n.Pitch,
		Gate:       n.Duration.Time(playback.Tempo),
	}
}

// bankKeys lists every note playback can ask for: each scale pitch on each
// instrument at that instrument's length. Harmony notes use the partner's
// own length, so they are covered too.
func bankKeys() []synth.Key {
	keys := make([]synth.Key, 0, len(strokes.Modes())*notes.Size)
	for _, m := range strokes.Modes() {
		for _, p := range notes.Scale {
			keys = append(keys, noteKey(playback.Note{Mode: m, Pitch: p, Duration: playback.NoteLength(m)}))
		}
	}
	return keys
}

// audioSink plays notes through the audio context.
type audioSink struct {
	bank   *synth.Bank
	volume float64
	log    *zap.Logger

	warn    *rate.Limiter
	dropped int
}

func newAudioSink(bank *synth.Bank, volume float64, log *zap.Logger) *audioSink {
	return &audioSink{
		bank:   bank,
		volume: volume,
		log:    log,
		warn:   rate.NewLimiter(rate.Every(time.Second), 1),
	}
}

func (s *audioSink) Play(n playback.Note) {
	if audioContext == nil {
		return
	}
	pcm, err := s.bank.PCM(noteKey(n))
	if err != nil {
		s.drop(n, err)
		return
	}

	p := audioContext.NewPlayerFromBytes(pcm)
	p.SetVolume(clampVolume(n.Velocity * s.volume))

	soundMu.Lock()
	for sp := range soundPlayers {
		if !sp.IsPlaying() {
			sp.Close()
			delete(soundPlayers, sp)
		}
	}
	if maxSounds > 0 && len(soundPlayers) >= maxSounds {
		soundMu.Unlock()
		p.Close()
		s.drop(n, nil)
		return
	}
	soundPlayers[p] = struct{}{}
	soundMu.Unlock()

	p.Play()
}

// drop counts a note that could not be played. Warnings are throttled since
// a dense drawing can overflow the player pool every tick.
func (s *audioSink) drop(n playback.Note, err error) {
	s.dropped++
	if !s.warn.Allow() {
		return
	}
	fields := []zap.Field{
		zap.Stringer("instrument", n.Mode),
		zap.Stringer("pitch", n.Pitch),
		zap.Int("dropped", s.dropped),
	}
	if err != nil {
		fields = append(fields, zap.Error(err))
	} else {
		fields = append(fields, zap.Int("players", maxSounds))
	}
	s.log.Warn("note dropped", fields...)
}

func clampVolume(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// closeSounds stops and releases every player.
func closeSounds() error {
	soundMu.Lock()
	defer soundMu.Unlock()
	var err error
	for p := range soundPlayers {
		err = multierr.Append(err, p.Close())
		delete(soundPlayers, p)
	}
	return err
}

// teeSink hands every note to each of its sinks in order.
type teeSink []sketch.Sink

func (t teeSink) Play(n playback.Note) {
	for _, s := range t {
		s.Play(n)
	}
}
