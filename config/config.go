// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON configuration loading for scrollnav hosts.

package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/framegrace/scrollnav"
)

// File is the on-disk shape of a scrollnav configuration. Pointer fields
// distinguish "unset" from zero values; unset fields fall back to the
// library defaults.
type File struct {
	ActiveClass       string   `json:"active_class"`
	Offset            *float64 `json:"offset"`
	ClickToScroll     *bool    `json:"click_to_scroll"`
	DurationMs        int      `json:"duration_ms"`
	AlwaysTrack       bool     `json:"always_track"`
	BezierEasingValue string   `json:"bezier_easing_value"`
	TrackingPolicy    string   `json:"tracking_policy"`
}

// Default returns the library defaults as options.
func Default() scrollnav.Options {
	return scrollnav.Options{}.Normalize()
}

// Load reads a JSON config file into options. A missing file is not an
// error: defaults are returned, matching the lenient loading used elsewhere.
// Malformed JSON or an unknown tracking policy is an error.
func Load(path string) (scrollnav.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Config: %s not found, using defaults", path)
			return Default(), nil
		}
		return scrollnav.Options{}, fmt.Errorf("read config %s: %w", path, err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return scrollnav.Options{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return f.Options()
}

// Options converts the file shape to normalized library options.
func (f File) Options() (scrollnav.Options, error) {
	opts := scrollnav.Options{
		ActiveClass:       f.ActiveClass,
		Offset:            f.Offset,
		ClickToScroll:     f.ClickToScroll,
		AlwaysTrack:       f.AlwaysTrack,
		BezierEasingValue: f.BezierEasingValue,
	}
	if f.DurationMs > 0 {
		opts.Duration = time.Duration(f.DurationMs) * time.Millisecond
	}
	switch f.TrackingPolicy {
	case "":
		// default applied by Normalize
	case string(scrollnav.PolicyLastMatch):
		opts.TrackingPolicy = scrollnav.PolicyLastMatch
	case string(scrollnav.PolicyBand):
		opts.TrackingPolicy = scrollnav.PolicyBand
	default:
		return scrollnav.Options{}, fmt.Errorf("unknown tracking_policy %q", f.TrackingPolicy)
	}
	return opts.Normalize(), nil
}
