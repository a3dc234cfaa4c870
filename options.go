// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: options.go
// Summary: Runtime options for a scrollnav controller.

package scrollnav

import "time"

// Policy selects how the tracker decides which item is current.
type Policy string

const (
	// PolicyLastMatch: the last item in source order whose section top
	// (minus offset) is at or above the reference line wins. No upper bound,
	// so scrolling past the final section keeps it active.
	PolicyLastMatch Policy = "last-match"

	// PolicyBand: an item qualifies only while the reference line lies inside
	// its section's band [top-offset, top-offset+height). With gaps between
	// sections no item may be active at all.
	PolicyBand Policy = "band"
)

// Options configures a Controller. The zero value is usable; Normalize fills
// in defaults for unset fields.
type Options struct {
	// ActiveClass is the visual flag name handed to the host when styling the
	// current item.
	ActiveClass string

	// Offset is the clearance subtracted both from each section's
	// qualification threshold and from animated scroll distance, so content
	// clears a fixed header. Nil means the default; zero is a real value.
	Offset *float64

	// ClickToScroll enables activation-by-click binding on navigation items.
	ClickToScroll *bool

	// Duration is the animated scroll length.
	Duration time.Duration

	// AlwaysTrack keeps scroll tracking live during animated scrolls instead
	// of pausing it.
	AlwaysTrack bool

	// BezierEasingValue holds the 4 comma-separated cubic-bezier control
	// values for the animation easing. Parsed lazily on the first animated
	// scroll; a malformed string is a ConfigurationError at that point.
	BezierEasingValue string

	// TrackingPolicy selects the item-qualification algorithm.
	TrackingPolicy Policy
}

// Defaults mirrored by config.Load; keep both in sync.
const (
	DefaultActiveClass       = "is-active"
	DefaultOffset            = 20
	DefaultDuration          = 600 * time.Millisecond
	DefaultBezierEasingValue = ".5,0,.35,1"
)

// Normalize fills unset fields with their defaults and returns the result.
func (o Options) Normalize() Options {
	if o.ActiveClass == "" {
		o.ActiveClass = DefaultActiveClass
	}
	if o.Offset == nil {
		v := float64(DefaultOffset)
		o.Offset = &v
	}
	if o.ClickToScroll == nil {
		t := true
		o.ClickToScroll = &t
	}
	if o.Duration == 0 {
		o.Duration = DefaultDuration
	}
	if o.BezierEasingValue == "" {
		o.BezierEasingValue = DefaultBezierEasingValue
	}
	if o.TrackingPolicy == "" {
		o.TrackingPolicy = PolicyLastMatch
	}
	return o
}

func (o Options) clickToScroll() bool {
	return o.ClickToScroll == nil || *o.ClickToScroll
}

func (o Options) offset() float64 {
	if o.Offset == nil {
		return DefaultOffset
	}
	return *o.Offset
}
