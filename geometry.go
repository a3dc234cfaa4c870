// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: geometry.go
// Summary: Resolves element positions relative to the document origin.

package scrollnav

// OffsetTop returns el's vertical distance from the document origin, summing
// each element's own offset across the offset-parent chain. Pure; a nil
// element or an exhausted chain contributes nothing.
func OffsetTop(el Element) float64 {
	var top float64
	for el != nil {
		top += el.OffsetTop()
		el = el.OffsetParent()
	}
	return top
}
