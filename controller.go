// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: controller.go
// Summary: Composition root wiring registry, tracker, and animator to a host.
// Usage: The host calls Initialize once after the first render, Refresh after
// every re-render and Teardown before disposal.

package scrollnav

import (
	"log"
	"sync"
	"time"

	"github.com/framegrace/scrollnav/internal/easing"
)

// scrollSettleGrace is the window after an animated scroll completes during
// which scroll notifications are ignored. Writing the final scroll position
// can itself emit a synthetic notification; the guard swallows it so the
// freshly re-attached listener does not reprocess the animator's own write.
const scrollSettleGrace = 50 * time.Millisecond

// Controller owns the navigation item registry, the active-section tracker
// and the scroll animator, and exposes the public lifecycle contract.
// Frame callbacks may arrive from the scheduler's goroutine, so all state is
// guarded by one mutex; event broadcasts and scroll writes happen after it is
// released.
type Controller struct {
	mu       sync.Mutex
	source   Source
	scroller Scroller
	scrolls  ScrollSource
	opts     Options

	registry *itemRegistry
	tracker  *sectionTracker
	anim     *scrollAnimator

	dispatcher  *EventDispatcher
	scrollStop  func() // nil while the scroll listener is detached
	easingFn    func(t float64) float64
	suppressEnd time.Time

	now func() time.Time
}

// New creates a controller over the given host capabilities. Options are
// normalized; unset fields pick up the Default* constants.
func New(source Source, scroller Scroller, scrolls ScrollSource, frames FrameScheduler, opts Options) *Controller {
	opts = opts.Normalize()
	return &Controller{
		source:     source,
		scroller:   scroller,
		scrolls:    scrolls,
		opts:       opts,
		registry:   newItemRegistry(source),
		tracker:    newSectionTracker(opts.TrackingPolicy, opts.offset()),
		anim:       newScrollAnimator(frames),
		dispatcher: NewEventDispatcher(),
		now:        time.Now,
	}
}

// Events exposes the dispatcher the embedding environment subscribes to for
// EventItemChanged notifications.
func (c *Controller) Events() *EventDispatcher { return c.dispatcher }

// Initialize discovers items, binds activation, runs one silent tracker check
// and attaches the scroll listener. A TargetNotFoundError aborts the whole
// call with no listener attached.
func (c *Controller) Initialize() error {
	c.mu.Lock()
	if err := c.rescanLocked(); err != nil {
		c.mu.Unlock()
		return err
	}
	if c.scrollStop == nil {
		c.scrollStop = c.scrolls.OnScroll(c.handleScroll)
	}
	c.mu.Unlock()
	return nil
}

// Refresh re-runs discovery and rebinds activation handlers. Call it whenever
// the set of navigable items may have changed; with an unchanged item set it
// is a no-op as far as bindings are concerned.
func (c *Controller) Refresh() error {
	c.mu.Lock()
	err := c.rescanLocked()
	c.mu.Unlock()
	return err
}

// rescanLocked is the shared discover+bind+silent-check path.
func (c *Controller) rescanLocked() error {
	items, err := c.registry.discover()
	if err != nil {
		return err
	}
	c.registry.rebind(items, c.opts.clickToScroll(), c.onItemActivated)
	c.tracker.reset(items)
	c.tracker.check(c.scroller.ScrollY())
	return nil
}

// Teardown detaches the scroll listener, cancels any pending animation frame
// and removes all activation handlers. The controller can be initialized
// again afterwards.
func (c *Controller) Teardown() {
	c.mu.Lock()
	c.detachScrollLocked()
	c.anim.stop()
	c.registry.unbindAll()
	c.mu.Unlock()
	log.Printf("Controller: Teardown complete")
}

// onItemActivated is installed as every item's activation handler.
func (c *Controller) onItemActivated(item ItemView) {
	if err := c.Activate(item.TargetID()); err != nil {
		log.Printf("Controller: Activation of %q failed: %v", item.TargetID(), err)
	}
}

// Activate is the programmatic equivalent of clicking a navigation item: it
// starts an animated scroll to the section identified by targetID.
func (c *Controller) Activate(targetID string) error {
	if targetID == "" {
		return &InvalidTargetError{Target: targetID, Reason: "empty identifier"}
	}

	c.mu.Lock()
	target := c.source.ResolveByID(targetID)
	if target == nil {
		c.mu.Unlock()
		return &InvalidTargetError{Target: targetID, Reason: "does not resolve to a live element"}
	}

	if c.easingFn == nil {
		fn, err := easing.Parse(c.opts.BezierEasingValue)
		if err != nil {
			c.mu.Unlock()
			return &ConfigurationError{Setting: "bezierEasingValue", Value: c.opts.BezierEasingValue, Err: err}
		}
		c.easingFn = fn
	}

	pause := !c.opts.AlwaysTrack
	if pause {
		c.detachScrollLocked()
	}

	startY := c.scroller.ScrollY()
	targetY := OffsetTop(target)
	session := &animationSession{
		startY:        startY,
		targetY:       targetY,
		distance:      targetY - startY,
		offset:        c.opts.offset(),
		duration:      c.opts.Duration,
		easing:        c.easingFn,
		pausedTracker: pause,
	}
	c.anim.start(session, c.frameStep(session))
	c.mu.Unlock()

	log.Printf("Controller: Scrolling to %q (distance=%.0f, duration=%v)", targetID, session.distance, session.duration)
	return nil
}

// frameStep builds the frame entry point for one animation session. The
// session is captured so the animator can drop a callback the scheduler had
// already dequeued when the session was superseded. The scroll write and any
// change broadcast happen after the lock is released: writing scroll position
// may synchronously notify handleScroll, and listeners must never run under
// the controller lock.
func (c *Controller) frameStep(session *animationSession) func(now time.Time) {
	return func(now time.Time) {
		c.mu.Lock()
		y, live, done := c.anim.advance(now, session, c.frameStep(session))
		c.mu.Unlock()
		if !live {
			return
		}

		c.scroller.SetScrollY(y)

		if done {
			c.finishAnimation(now, session)
		}
	}
}

// finishAnimation re-evaluates tracking at the final position and restores
// the scroll listener behind the settle-grace guard.
func (c *Controller) finishAnimation(now time.Time, session *animationSession) {
	if !session.pausedTracker {
		return
	}

	c.mu.Lock()
	current, previous, notify := c.tracker.check(c.scroller.ScrollY())
	c.suppressEnd = now.Add(scrollSettleGrace)
	if c.scrollStop == nil {
		c.scrollStop = c.scrolls.OnScroll(c.handleScroll)
	}
	c.mu.Unlock()

	if notify {
		c.dispatcher.Broadcast(Event{
			Type:    EventItemChanged,
			Payload: ItemChangedPayload{Current: current, Previous: previous, Cause: CauseAnimation},
		})
	}
}

// handleScroll processes one scroll notification from the host.
func (c *Controller) handleScroll() {
	c.mu.Lock()
	if c.now().Before(c.suppressEnd) {
		c.mu.Unlock()
		return
	}
	current, previous, notify := c.tracker.check(c.scroller.ScrollY())
	c.mu.Unlock()

	if notify {
		c.dispatcher.Broadcast(Event{
			Type:    EventItemChanged,
			Payload: ItemChangedPayload{Current: current, Previous: previous, Cause: CauseScroll},
		})
	}
}

// detachScrollLocked removes the scroll subscription if one is live.
func (c *Controller) detachScrollLocked() {
	if c.scrollStop != nil {
		c.scrollStop()
		c.scrollStop = nil
	}
}
