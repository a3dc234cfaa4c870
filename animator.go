// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: animator.go
// Summary: Time-stepped scroll animation between the current and target
// positions.
// Usage: Driven by the controller; one live session at a time, one scheduled
// frame at a time.

package scrollnav

import "time"

// animationSession is the state of one scroll-to operation. A session is
// created by start, stepped once per frame, and destroyed on completion or
// when superseded by a new session.
type animationSession struct {
	start         time.Time // zero until the first frame fires
	startY        float64
	targetY       float64
	distance      float64
	offset        float64
	duration      time.Duration
	easing        func(t float64) float64
	pausedTracker bool
}

// scrollAnimator interpolates scroll position toward a target. The pending
// frame handle is the serialization point: starting a new session cancels any
// previously scheduled frame first, so two loops can never race on scroll
// position. All methods run under the controller's lock.
type scrollAnimator struct {
	frames  FrameScheduler
	pending FrameHandle
	session *animationSession
}

func newScrollAnimator(frames FrameScheduler) *scrollAnimator {
	return &scrollAnimator{frames: frames}
}

// cancelPending drops any scheduled frame. Safe to call with none pending.
func (a *scrollAnimator) cancelPending() {
	if a.pending != 0 {
		a.frames.Cancel(a.pending)
		a.pending = 0
	}
}

// start replaces any live session with a new one and schedules its first
// frame. step must be the frame closure built for s, so advance can tell a
// frame that belongs to a superseded session apart from a live one.
func (a *scrollAnimator) start(s *animationSession, step func(now time.Time)) {
	a.cancelPending()
	a.session = s
	a.pending = a.frames.Schedule(step)
}

// advance computes the next scroll position for session s. The returned y is
// applied by the caller outside the lock, since writing scroll position may
// synchronously emit a scroll notification back into the controller. When the
// session still has time left the next frame is scheduled here; otherwise the
// session is destroyed and done is true.
//
// A frame callback can outlive its session: a ticker scheduler dequeues due
// callbacks before running them, so a Cancel issued in that window finds
// nothing to remove and the stale callback still fires. Such a frame must not
// touch the pending handle or reschedule, or it would orphan the live
// session's queued frame and leave two loops running.
func (a *scrollAnimator) advance(now time.Time, s *animationSession, step func(now time.Time)) (y float64, live, done bool) {
	if s == nil || s != a.session {
		return 0, false, false
	}
	a.pending = 0

	if s.start.IsZero() {
		s.start = now
	}
	elapsed := now.Sub(s.start)
	progress := 1.0
	if s.duration > 0 && elapsed < s.duration {
		progress = float64(elapsed) / float64(s.duration)
	}
	if progress < 0 {
		progress = 0
	}

	y = s.startY + s.easing(progress)*(s.distance-s.offset)

	if s.duration > 0 && elapsed < s.duration {
		a.pending = a.frames.Schedule(step)
		return y, true, false
	}

	a.session = nil
	return y, true, true
}

// stop destroys the live session, if any, and cancels its frame.
func (a *scrollAnimator) stop() {
	a.cancelPending()
	a.session = nil
}
