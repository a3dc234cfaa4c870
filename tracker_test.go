// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package scrollnav

import (
	"errors"
	"testing"
)

// threeSections builds the canonical fixture: sections at document offsets
// 0, 800 and 1600, each 800 tall, items in source order.
func threeSections() *fakeHost {
	h := newFakeHost()
	h.addSection("#intro", 0, 800)
	h.addSection("#pricing", 800, 800)
	h.addSection("#contact", 1600, 800)
	return h
}

func newTestController(h *fakeHost, opts Options) (*Controller, *fakeFrames, *recorder) {
	frames := newFakeFrames()
	c := New(h, h, h, frames, opts)
	rec := &recorder{}
	c.Events().Subscribe(rec)
	return c, frames, rec
}

func TestInitializeEmitsNoEvent(t *testing.T) {
	h := threeSections()
	h.scrollY = 810
	c, _, rec := newTestController(h, Options{})

	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if len(rec.events) != 0 {
		t.Fatalf("expected no events from Initialize, got %d", len(rec.events))
	}
	if !h.items[1].active {
		t.Fatalf("expected %q active after silent initial check", h.items[1].id)
	}
}

func TestBandPolicySelectsContainingSection(t *testing.T) {
	h := threeSections()
	h.scrollY = 100
	c, _, rec := newTestController(h, Options{TrackingPolicy: PolicyBand})
	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if !h.items[0].active {
		t.Fatalf("expected first item active at scroll 100")
	}

	// Section 2's band with offset 20 is [780, 1580).
	h.scrollTo(810)

	changes := rec.changes()
	if len(changes) != 1 {
		t.Fatalf("expected 1 change event, got %d", len(changes))
	}
	if changes[0].Current != ItemView(h.items[1]) || changes[0].Previous != ItemView(h.items[0]) {
		t.Fatalf("expected change from %q to %q, got %+v", h.items[0].id, h.items[1].id, changes[0])
	}
	if got := h.activeItems(); len(got) != 1 || got[0] != h.items[1] {
		t.Fatalf("expected exactly item 2 active, got %v", got)
	}
}

func TestBandPolicyClearsWhenNoBandMatches(t *testing.T) {
	h := newFakeHost()
	h.addSection("#a", 0, 100)
	h.addSection("#b", 500, 100)
	h.scrollY = 50
	c, _, rec := newTestController(h, Options{TrackingPolicy: PolicyBand})
	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	// The gap between the sections: no band contains it.
	h.scrollTo(300)

	changes := rec.changes()
	if len(changes) != 1 {
		t.Fatalf("expected 1 change event, got %d", len(changes))
	}
	if changes[0].Current != nil {
		t.Fatalf("expected nil current in the gap, got %v", changes[0].Current)
	}
	if got := h.activeItems(); len(got) != 0 {
		t.Fatalf("expected no active items in the gap, got %v", got)
	}
}

func TestLastMatchKeepsFinalSectionActive(t *testing.T) {
	h := threeSections()
	c, _, _ := newTestController(h, Options{TrackingPolicy: PolicyLastMatch})
	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	// Far past the last section's bottom; unbounded policy keeps it active.
	h.scrollTo(5000)

	if got := h.activeItems(); len(got) != 1 || got[0] != h.items[2] {
		t.Fatalf("expected last item active at scroll 5000, got %v", got)
	}
}

func TestLastMatchNothingAboveFirstThreshold(t *testing.T) {
	h := newFakeHost()
	h.addSection("#a", 300, 100)
	h.scrollY = 0
	c, _, _ := newTestController(h, Options{})
	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}
	if got := h.activeItems(); len(got) != 0 {
		t.Fatalf("expected no active item above first threshold, got %v", got)
	}
}

func TestRepeatedChecksNotifyOnlyOnTransition(t *testing.T) {
	h := threeSections()
	c, _, rec := newTestController(h, Options{})
	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	h.scrollTo(850)
	h.scrollTo(900)
	h.scrollTo(950)

	if got := len(rec.changes()); got != 1 {
		t.Fatalf("expected a single change for one transition, got %d", got)
	}
}

func TestDiscoveryFailsOnUnresolvedAnchor(t *testing.T) {
	h := threeSections()
	h.items = append(h.items, &fakeItem{id: "#missing"})
	c, _, _ := newTestController(h, Options{})

	err := c.Initialize()
	var notFound *TargetNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected TargetNotFoundError, got %v", err)
	}
	if notFound.Anchor != "#missing" {
		t.Fatalf("expected error to name #missing, got %q", notFound.Anchor)
	}
	if len(h.listeners) != 0 {
		t.Fatalf("failed Initialize must not leave a scroll listener attached")
	}
}

func TestOffsetShiftsQualificationThreshold(t *testing.T) {
	h := threeSections()
	off := 100.0
	c, _, _ := newTestController(h, Options{Offset: &off})
	if err := c.Initialize(); err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	// Section 2 top is 800; with offset 100 it qualifies from 700 on.
	h.scrollTo(750)
	if got := h.activeItems(); len(got) != 1 || got[0] != h.items[1] {
		t.Fatalf("expected item 2 active at 750 with offset 100, got %v", got)
	}
}

func TestOffsetTopSumsParentChain(t *testing.T) {
	body := &fakeElement{top: 40}
	section := &fakeElement{top: 800, height: 600, parent: body}
	if got := OffsetTop(section); got != 840 {
		t.Fatalf("OffsetTop = %v, want 840", got)
	}
	if got := OffsetTop(nil); got != 0 {
		t.Fatalf("OffsetTop(nil) = %v, want 0", got)
	}
}
