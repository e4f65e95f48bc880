package synth

import (
	"fmt"
	"sync"
	"time"

	"github.com/remeh/sizedwaitgroup"
	"go.uber.org/multierr"

	"sounddraw/notes"
)

// Key identifies one rendered note.
type Key struct {
	Instrument string
	Pitch      notes.Pitch
	Gate       time.Duration
}

// Bank renders notes on demand and keeps the PCM for reuse. It is safe for
// concurrent use.
type Bank struct {
	rate    int
	presets map[string]Preset

	mu    sync.Mutex
	cache map[Key][]byte
	bytes int
}

// NewBank returns an empty bank for the given presets and output sample rate.
func NewBank(presets []Preset, sampleRate int) *Bank {
	b := &Bank{
		rate:    sampleRate,
		presets: make(map[string]Preset, len(presets)),
		cache:   make(map[Key][]byte),
	}
	for _, p := range presets {
		b.presets[p.Name] = p
	}
	return b
}

// SampleRate returns the rate PCM is rendered at.
func (b *Bank) SampleRate() int { return b.rate }

// Has reports whether the bank knows the instrument.
func (b *Bank) Has(instrument string) bool {
	_, ok := b.presets[instrument]
	return ok
}

// PCM returns 16-bit stereo PCM for k, rendering and caching it on first use.
func (b *Bank) PCM(k Key) ([]byte, error) {
	b.mu.Lock()
	if pcm, ok := b.cache[k]; ok {
		b.mu.Unlock()
		return pcm, nil
	}
	b.mu.Unlock()

	p, ok := b.presets[k.Instrument]
	if !ok {
		return nil, fmt.Errorf("no preset for instrument %q", k.Instrument)
	}
	pcm := PCM16Stereo(Render(p, k.Pitch.Frequency(), k.Gate, b.rate))

	b.mu.Lock()
	defer b.mu.Unlock()
	if prev, ok := b.cache[k]; ok {
		return prev, nil
	}
	b.cache[k] = pcm
	b.bytes += len(pcm)
	return pcm, nil
}

// Prerender renders keys with at most workers renders running at once.
func (b *Bank) Prerender(keys []Key, workers int) error {
	if workers < 1 {
		workers = 1
	}
	swg := sizedwaitgroup.New(workers)
	var (
		errMu sync.Mutex
		err   error
	)
	for _, k := range keys {
		swg.Add()
		go func(k Key) {
			defer swg.Done()
			if _, e := b.PCM(k); e != nil {
				errMu.Lock()
				err = multierr.Append(err, e)
				errMu.Unlock()
			}
		}(k)
	}
	swg.Wait()
	return err
}

// Stats returns the number of cached notes and their total size in bytes.
func (b *Bank) Stats() (n, size int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.cache), b.bytes
}
