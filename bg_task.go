package main

import (
	"context"
	"runtime"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"

	"sounddraw/synth"
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

const readyPoll = 50 * time.Millisecond

func shortDuration(d time.Duration) string {
	return durafmt.Parse(d).LimitFirstN(2).Format(shortUnits)
}

// watchAudioReady renders the voice bank in the background. The returned
// channel is closed once every note is rendered and the audio context can
// play. It is never closed if ctx ends first.
func watchAudioReady(ctx context.Context, bank *synth.Bank) <-chan struct{} {
	ready := make(chan struct{})
	go func() {
		start := time.Now()
		if err := bank.Prerender(bankKeys(), runtime.NumCPU()); err != nil {
			logError("prerender voices: %v", err)
		}
		n, size := bank.Stats()
		logInfo("voice bank: %d notes, %s in %s",
			n, humanize.Bytes(uint64(size)), shortDuration(time.Since(start)))

		t := time.NewTicker(readyPoll)
		defer t.Stop()
		for audioContext != nil && !audioContext.IsReady() {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
		}
		logDebug("audio ready after %s", shortDuration(time.Since(start)))
		close(ready)
	}()
	return ready
}
