// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: fakes_test.go
// Summary: Fake host and frame scheduler used by the core tests.

package scrollnav

import "time"

// fakeElement implements Element with fixed geometry.
type fakeElement struct {
	top    float64
	height float64
	parent *fakeElement
}

func (e *fakeElement) OffsetTop() float64 { return e.top }

func (e *fakeElement) OffsetParent() Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

func (e *fakeElement) ClientHeight() float64 { return e.height }

// fakeItem implements ItemView and records binding churn.
type fakeItem struct {
	id       string
	active   bool
	activate func()
	binds    int
	unbinds  int
}

func (i *fakeItem) TargetID() string      { return i.id }
func (i *fakeItem) SetActive(active bool) { i.active = active }

func (i *fakeItem) OnActivate(fn func()) {
	if fn == nil {
		i.unbinds++
	} else {
		i.binds++
	}
	i.activate = fn
}

// click simulates the host delivering a click on the item.
func (i *fakeItem) click() {
	if i.activate != nil {
		i.activate()
	}
}

// fakeHost implements Source, Scroller and ScrollSource over fixed geometry.
// SetScrollY optionally emits a synthetic scroll notification, like a browser
// firing a scroll event for a programmatic scroll.
type fakeHost struct {
	items     []*fakeItem
	sections  map[string]*fakeElement
	scrollY   float64
	writes    []float64
	listeners map[int]func()
	nextID    int
	synthetic bool
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		sections:  make(map[string]*fakeElement),
		listeners: make(map[int]func()),
	}
}

// addSection registers a section and a nav item pointing at it.
func (h *fakeHost) addSection(id string, top, height float64) *fakeItem {
	h.sections[id] = &fakeElement{top: top, height: height}
	item := &fakeItem{id: id}
	h.items = append(h.items, item)
	return item
}

func (h *fakeHost) FindNavigableItems() []ItemView {
	views := make([]ItemView, len(h.items))
	for i, it := range h.items {
		views[i] = it
	}
	return views
}

func (h *fakeHost) ResolveByID(id string) Element {
	el, ok := h.sections[id]
	if !ok {
		return nil
	}
	return el
}

func (h *fakeHost) ScrollY() float64 { return h.scrollY }

func (h *fakeHost) SetScrollY(y float64) {
	h.scrollY = y
	h.writes = append(h.writes, y)
	if h.synthetic {
		h.notify()
	}
}

func (h *fakeHost) OnScroll(fn func()) func() {
	h.nextID++
	id := h.nextID
	h.listeners[id] = fn
	return func() { delete(h.listeners, id) }
}

// notify delivers a scroll notification to all live listeners.
func (h *fakeHost) notify() {
	for _, fn := range h.listeners {
		fn()
	}
}

// scrollTo moves the scroll position as a user would and notifies.
func (h *fakeHost) scrollTo(y float64) {
	h.scrollY = y
	h.notify()
}

func (h *fakeHost) activeItems() []*fakeItem {
	var out []*fakeItem
	for _, it := range h.items {
		if it.active {
			out = append(out, it)
		}
	}
	return out
}

// fakeFrames is a manually stepped FrameScheduler.
type fakeFrames struct {
	next  FrameHandle
	queue map[FrameHandle]func(now time.Time)
	order []FrameHandle
}

func newFakeFrames() *fakeFrames {
	return &fakeFrames{queue: make(map[FrameHandle]func(now time.Time))}
}

func (f *fakeFrames) Schedule(fn func(now time.Time)) FrameHandle {
	f.next++
	f.queue[f.next] = fn
	f.order = append(f.order, f.next)
	return f.next
}

func (f *fakeFrames) Cancel(h FrameHandle) {
	delete(f.queue, h)
}

// outstanding reports how many frame callbacks are currently scheduled.
func (f *fakeFrames) outstanding() int { return len(f.queue) }

// take dequeues the earliest scheduled callback without running it, the way a
// ticker scheduler dequeues due callbacks before invoking them. A Cancel
// issued after take finds nothing to remove.
func (f *fakeFrames) take() func(now time.Time) {
	for len(f.order) > 0 {
		h := f.order[0]
		f.order = f.order[1:]
		if fn, ok := f.queue[h]; ok {
			delete(f.queue, h)
			return fn
		}
	}
	return nil
}

// step runs every currently scheduled callback once with the given timestamp.
// Callbacks scheduled while stepping run on the next step, like successive
// animation frames.
func (f *fakeFrames) step(now time.Time) {
	due := f.order
	f.order = nil
	for _, h := range due {
		fn, ok := f.queue[h]
		if !ok {
			continue
		}
		delete(f.queue, h)
		fn(now)
	}
}

// recorder collects broadcast events.
type recorder struct {
	events []Event
}

func (r *recorder) OnEvent(event Event) { r.events = append(r.events, event) }

func (r *recorder) changes() []ItemChangedPayload {
	var out []ItemChangedPayload
	for _, ev := range r.events {
		if ev.Type == EventItemChanged {
			out = append(out, ev.Payload.(ItemChangedPayload))
		}
	}
	return out
}
