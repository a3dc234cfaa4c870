// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/easing/easing.go
// Summary: Cubic-bezier easing functions in the CSS timing-function
// convention, built on the curve package's CubicBez.

package easing

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"honnef.co/go/curve"
)

// Func maps normalized progress t in [0,1] to eased progress in [0,1].
type Func func(t float64) float64

// CubicBezier returns the easing defined by the two control points
// (p1x, p1y) and (p2x, p2y), with implicit endpoints (0,0) and (1,1) as in
// CSS cubic-bezier(). The curve is parametric, so evaluating eased progress
// for a given time fraction u means solving x(s) = u for the curve parameter
// s and reading y(s).
func CubicBezier(p1x, p1y, p2x, p2y float64) Func {
	bez := curve.CubicBez{
		P0: curve.Point{X: 0, Y: 0},
		P1: curve.Point{X: p1x, Y: p1y},
		P2: curve.Point{X: p2x, Y: p2y},
		P3: curve.Point{X: 1, Y: 1},
	}
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return bez.Eval(solveForX(bez, t)).Y
	}
}

// Parse builds an easing from 4 comma-separated control values, e.g.
// ".5,0,.35,1". Wrong count or non-numeric parts are reported as errors; the
// caller decides when to surface them (the controller parses lazily on the
// first animated scroll).
func Parse(s string) (Func, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return nil, fmt.Errorf("easing: want 4 comma-separated values, got %d in %q", len(parts), s)
	}
	var vals [4]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("easing: value %d of %q is not a number: %w", i+1, s, err)
		}
		vals[i] = v
	}
	return CubicBezier(vals[0], vals[1], vals[2], vals[3]), nil
}

// solveForX finds the curve parameter s where the bezier's x component equals
// u. Newton-Raphson from a linear guess, falling back to bisection when the
// derivative is too flat to trust (control x values outside [0,1] can make it
// so). x(s) is monotone for CSS-valid control points, so bisection always
// converges.
func solveForX(bez curve.CubicBez, u float64) float64 {
	const epsilon = 1e-7

	s := u
	for i := 0; i < 8; i++ {
		x := bez.Eval(s).X - u
		if math.Abs(x) < epsilon {
			return s
		}
		d := bezierXDeriv(bez, s)
		if math.Abs(d) < 1e-6 {
			break
		}
		s -= x / d
		if s < 0 || s > 1 {
			break
		}
	}

	lo, hi := 0.0, 1.0
	s = u
	for i := 0; i < 64 && hi-lo > epsilon; i++ {
		if bez.Eval(s).X < u {
			lo = s
		} else {
			hi = s
		}
		s = (lo + hi) / 2
	}
	return s
}

// bezierXDeriv is d/ds of the x component of a cubic bezier.
func bezierXDeriv(bez curve.CubicBez, s float64) float64 {
	inv := 1 - s
	return 3*inv*inv*(bez.P1.X-bez.P0.X) +
		6*inv*s*(bez.P2.X-bez.P1.X) +
		3*s*s*(bez.P3.X-bez.P2.X)
}
