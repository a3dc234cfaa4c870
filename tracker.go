// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tracker.go
// Summary: Decides which registered item's section contains the viewport
// reference line and reports transitions.

package scrollnav

// sectionTracker is a state machine over one variable, lastActive. A check
// either keeps the current item, moves to another, or clears it (band policy
// only). The first check after reset records its result silently so
// initialization never emits a spurious change event.
type sectionTracker struct {
	items      []boundItem
	policy     Policy
	offset     float64
	lastActive ItemView
	checked    bool
}

func newSectionTracker(policy Policy, offset float64) *sectionTracker {
	return &sectionTracker{policy: policy, offset: offset}
}

// reset clears the tracked state. Run at every registry (re)initialization.
func (t *sectionTracker) reset(items []boundItem) {
	t.items = items
	t.lastActive = nil
	t.checked = false
}

// check evaluates the determination policy at referenceY, updates the active
// visual flags, and reports whether a change event should be raised.
//
// Scan order matters: flags are cleared for every item in source order first,
// and under the last-match policy later qualifying items override earlier
// ones as the scan proceeds.
func (t *sectionTracker) check(referenceY float64) (current, previous ItemView, notify bool) {
	for _, it := range t.items {
		it.view.SetActive(false)
	}

	for _, it := range t.items {
		itemTop := OffsetTop(it.target) - t.offset
		switch t.policy {
		case PolicyBand:
			itemBottom := itemTop + it.target.ClientHeight()
			if referenceY >= itemTop && referenceY < itemBottom {
				current = it.view
			}
		default: // PolicyLastMatch
			if referenceY >= itemTop {
				current = it.view
			}
		}
	}

	previous = t.lastActive
	changed := current != previous
	notify = changed && t.checked
	t.lastActive = current
	t.checked = true

	if current != nil {
		current.SetActive(true)
	}
	return current, previous, notify
}
