// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/frames.go
// Summary: Ticker-driven frame scheduler implementing scrollnav.FrameScheduler.
// Usage: One instance per view; Stop it on shutdown.

package tui

import (
	"sync"
	"time"

	"github.com/framegrace/scrollnav"
)

// TickerFrames delivers one-shot frame callbacks from a ~60fps ticker
// goroutine, timestamped with the tick time.
type TickerFrames struct {
	mu     sync.Mutex
	next   scrollnav.FrameHandle
	queue  map[scrollnav.FrameHandle]func(now time.Time)
	order  []scrollnav.FrameHandle
	ticker *time.Ticker
	stopCh chan struct{}
	once   sync.Once
}

// NewTickerFrames starts the frame loop. interval <= 0 defaults to 16ms.
func NewTickerFrames(interval time.Duration) *TickerFrames {
	if interval <= 0 {
		interval = 16 * time.Millisecond
	}
	f := &TickerFrames{
		queue:  make(map[scrollnav.FrameHandle]func(now time.Time)),
		ticker: time.NewTicker(interval),
		stopCh: make(chan struct{}),
	}
	go f.loop()
	return f
}

func (f *TickerFrames) loop() {
	for {
		select {
		case now := <-f.ticker.C:
			f.fire(now)
		case <-f.stopCh:
			return
		}
	}
}

// fire runs the callbacks scheduled before this tick. Callbacks run outside
// the lock so they can schedule the next frame.
func (f *TickerFrames) fire(now time.Time) {
	f.mu.Lock()
	due := f.order
	f.order = nil
	fns := make([]func(now time.Time), 0, len(due))
	for _, h := range due {
		if fn, ok := f.queue[h]; ok {
			delete(f.queue, h)
			fns = append(fns, fn)
		}
	}
	f.mu.Unlock()

	for _, fn := range fns {
		fn(now)
	}
}

// Schedule registers fn for the next tick.
func (f *TickerFrames) Schedule(fn func(now time.Time)) scrollnav.FrameHandle {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.next++
	h := f.next
	f.queue[h] = fn
	f.order = append(f.order, h)
	return h
}

// Cancel drops a scheduled callback. Unknown handles are ignored.
func (f *TickerFrames) Cancel(h scrollnav.FrameHandle) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.queue, h)
}

// Stop halts the frame loop. Pending callbacks never fire.
func (f *TickerFrames) Stop() {
	f.once.Do(func() {
		f.ticker.Stop()
		close(f.stopCh)
	})
}
