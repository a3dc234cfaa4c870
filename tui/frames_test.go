// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package tui

import (
	"testing"
	"time"
)

func TestTickerFramesFiresScheduledCallback(t *testing.T) {
	frames := NewTickerFrames(time.Millisecond)
	defer frames.Stop()

	fired := make(chan time.Time, 1)
	frames.Schedule(func(now time.Time) { fired <- now })

	select {
	case now := <-fired:
		if now.IsZero() {
			t.Fatalf("callback got zero timestamp")
		}
	case <-time.After(time.Second):
		t.Fatalf("scheduled callback never fired")
	}
}

func TestTickerFramesCallbacksAreOneShot(t *testing.T) {
	frames := NewTickerFrames(time.Millisecond)
	defer frames.Stop()

	fired := make(chan struct{}, 8)
	frames.Schedule(func(time.Time) { fired <- struct{}{} })

	<-fired
	select {
	case <-fired:
		t.Fatalf("one-shot callback fired twice")
	case <-time.After(20 * time.Millisecond):
	}
}

func TestTickerFramesCancelPreventsFire(t *testing.T) {
	// Interval long enough that Cancel always beats the first tick.
	frames := NewTickerFrames(100 * time.Millisecond)
	defer frames.Stop()

	fired := make(chan struct{}, 1)
	h := frames.Schedule(func(time.Time) { fired <- struct{}{} })
	frames.Cancel(h)

	select {
	case <-fired:
		t.Fatalf("cancelled callback fired")
	case <-time.After(250 * time.Millisecond):
	}
}

func TestTickerFramesRescheduleFromCallback(t *testing.T) {
	frames := NewTickerFrames(time.Millisecond)
	defer frames.Stop()

	done := make(chan struct{})
	count := 0
	var step func(time.Time)
	step = func(time.Time) {
		count++
		if count < 3 {
			frames.Schedule(step)
			return
		}
		close(done)
	}
	frames.Schedule(step)

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("rescheduling chain stalled at %d", count)
	}
}
