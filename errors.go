// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: errors.go
// Summary: Error taxonomy for the scrollnav core.

package scrollnav

import "fmt"

// ConfigurationError reports a malformed configuration value. It surfaces
// lazily, at the first operation that needs the value (the easing string is
// only parsed on the first animated scroll).
type ConfigurationError struct {
	Setting string
	Value   string
	Err     error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("scrollnav: bad configuration %s=%q: %v", e.Setting, e.Value, e.Err)
}

func (e *ConfigurationError) Unwrap() error { return e.Err }

// TargetNotFoundError reports a navigation item whose anchor does not resolve
// to a live element. Raised synchronously during discovery; it aborts the
// whole Initialize/Refresh call so a markup/config mismatch is visible
// immediately instead of surfacing as a dead link later.
type TargetNotFoundError struct {
	Anchor string
}

func (e *TargetNotFoundError) Error() string {
	return fmt.Sprintf("scrollnav: no element found for anchor %q", e.Anchor)
}

// InvalidTargetError reports a programmatic Activate call with an empty or
// unresolvable target identifier. It aborts only that scroll request; ongoing
// tracking is not disturbed.
type InvalidTargetError struct {
	Target string
	Reason string
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("scrollnav: invalid scroll target %q: %s", e.Target, e.Reason)
}
