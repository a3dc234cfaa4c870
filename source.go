// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: source.go
// Summary: Capability interfaces the core needs from the embedding host.
// Usage: The tui package implements these over a tcell document view; tests
// inject fakes so the core runs without a real UI tree.

package scrollnav

import "time"

// Element is a positioned node in the host's UI tree. Offsets follow the
// browser convention: OffsetTop is relative to the offset parent, and the
// document-origin position is the sum over the parent chain.
type Element interface {
	OffsetTop() float64
	OffsetParent() Element
	ClientHeight() float64
}

// ItemView is a navigation entry in the host UI. Implementations must be
// comparable (pointer receivers are fine); the tracker compares items by
// identity.
//
// OnActivate installs the activation handler for the item, replacing any
// previous one; nil removes it. Replace-on-set is what makes rebinding
// idempotent across repeated Refresh calls.
type ItemView interface {
	TargetID() string
	SetActive(active bool)
	OnActivate(fn func())
}

// Source resolves the current set of navigable items and their targets.
// FindNavigableItems must re-resolve membership on every call so items added
// or removed between renders are picked up by Refresh.
// ResolveByID returns nil when the identifier does not resolve.
type Source interface {
	FindNavigableItems() []ItemView
	ResolveByID(id string) Element
}

// Scroller reads and writes the host's vertical scroll position.
// SetScrollY may emit a synthetic scroll notification, the way a browser
// fires a scroll event for programmatic scrolling; the controller's
// post-animation suppression window exists for exactly that notification.
type Scroller interface {
	ScrollY() float64
	SetScrollY(y float64)
}

// ScrollSource delivers scroll notifications. OnScroll registers fn and
// returns its cancel; after cancel returns, fn is never invoked again.
type ScrollSource interface {
	OnScroll(fn func()) (cancel func())
}

// FrameHandle identifies one scheduled frame callback. The zero handle means
// "none pending".
type FrameHandle uint64

// FrameScheduler runs one-shot frame callbacks, passing the current time so
// animations are driven by scheduler timestamps rather than wall-clock reads.
// The controller holds at most one outstanding handle at a time.
type FrameScheduler interface {
	Schedule(fn func(now time.Time)) FrameHandle
	Cancel(h FrameHandle)
}
