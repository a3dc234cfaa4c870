// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: doc.go
// Summary: Package documentation for the scrollnav core.

// Package scrollnav tracks which section of a scrollable document is in view
// and reflects it on a navigation item, with animated programmatic scrolling
// when a navigation item is activated.
//
// The core is host-agnostic: it talks to the embedding UI only through the
// capability interfaces in source.go (Source, Scroller, ScrollSource,
// FrameScheduler). The tui package provides a tcell-backed host; tests inject
// fakes and drive frames with synthetic timestamps.
//
// Lifecycle expected from the host: Initialize once after the first render,
// Refresh after every re-render, Teardown before disposal. The only outputs
// are EventItemChanged broadcasts and the active flag set on the current item.
package scrollnav
