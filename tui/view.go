// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/view.go
// Summary: tcell document view with a navigation rail, implementing the
// scrollnav host capabilities (Source, Scroller, ScrollSource).
// Usage: Create with NewDocView, route tcell events through HandleEvent and
// draw each frame with Draw.

package tui

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/framegrace/scrollnav"
)

// railGlyph marks the active nav row.
const railGlyph = "▸ "

// navItem is one rail entry. It implements scrollnav.ItemView; the handler
// installed by the controller fires when the row is clicked.
type navItem struct {
	view       *DocView
	id         string
	title      string
	active     bool
	onActivate func()
}

func (n *navItem) TargetID() string { return n.id }

func (n *navItem) SetActive(active bool) {
	n.view.mu.Lock()
	n.active = active
	n.view.mu.Unlock()
}

func (n *navItem) OnActivate(fn func()) {
	n.view.mu.Lock()
	n.onActivate = fn
	n.view.mu.Unlock()
}

// DocView renders a Document next to a navigation rail and feeds scroll and
// click input to the scrollnav core. Scroll state is mutex-guarded because
// the animator writes it from the frame goroutine while the event loop reads
// it for drawing; listeners and activation handlers are always invoked with
// the lock released.
type DocView struct {
	mu        sync.Mutex
	doc       *Document
	items     []*navItem
	scrollY   float64
	width     int
	height    int
	listeners map[int]func()
	nextID    int

	railStyle   tcell.Style
	activeStyle tcell.Style
}

// NewDocView builds the view and one nav item per document section.
func NewDocView(doc *Document) *DocView {
	v := &DocView{
		doc:         doc,
		listeners:   make(map[int]func()),
		railStyle:   tcell.StyleDefault.Foreground(tcell.ColorGray),
		activeStyle: tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true),
	}
	for _, sec := range doc.Sections() {
		v.items = append(v.items, &navItem{view: v, id: sec.ID, title: sec.Title})
	}
	return v
}

// SetActiveStyle sets the style of the rail row whose item carries the active
// flag. The host decides how the controller's active class renders.
func (v *DocView) SetActiveStyle(style tcell.Style) {
	v.mu.Lock()
	v.activeStyle = style
	v.mu.Unlock()
}

// ActiveStyleFor maps an active-class name to a rail style. Class names carry
// styling meaning in markup hosts; here a few well-known names select a
// terminal style, anything else gets the default.
func ActiveStyleFor(class string) tcell.Style {
	switch class {
	case "current":
		return tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	case "highlighted":
		return tcell.StyleDefault.Reverse(true)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	}
}

// SetSize updates the viewport dimensions.
func (v *DocView) SetSize(w, h int) {
	v.mu.Lock()
	v.width, v.height = w, h
	v.scrollY = clamp(v.scrollY, 0, v.maxScrollLocked())
	v.mu.Unlock()
}

// FindNavigableItems implements scrollnav.Source.
func (v *DocView) FindNavigableItems() []scrollnav.ItemView {
	v.mu.Lock()
	defer v.mu.Unlock()
	views := make([]scrollnav.ItemView, len(v.items))
	for i, it := range v.items {
		views[i] = it
	}
	return views
}

// ResolveByID implements scrollnav.Source.
func (v *DocView) ResolveByID(id string) scrollnav.Element {
	return v.doc.Resolve(id)
}

// ScrollY implements scrollnav.Scroller.
func (v *DocView) ScrollY() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.scrollY
}

// SetScrollY implements scrollnav.Scroller. Like a browser's programmatic
// scroll it emits a synthetic scroll notification.
func (v *DocView) SetScrollY(y float64) {
	v.mu.Lock()
	v.scrollY = clamp(y, 0, v.maxScrollLocked())
	fns := v.listenersLocked()
	v.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// OnScroll implements scrollnav.ScrollSource.
func (v *DocView) OnScroll(fn func()) func() {
	v.mu.Lock()
	v.nextID++
	id := v.nextID
	v.listeners[id] = fn
	v.mu.Unlock()
	return func() {
		v.mu.Lock()
		delete(v.listeners, id)
		v.mu.Unlock()
	}
}

// ScrollBy moves the viewport by delta rows, as user input does.
func (v *DocView) ScrollBy(delta float64) {
	v.SetScrollY(v.ScrollY() + delta)
}

// HandleEvent routes tcell input. Returns true when the event was consumed.
func (v *DocView) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		w, h := ev.Size()
		v.SetSize(w, h)
		return true
	case *tcell.EventMouse:
		return v.handleMouse(ev)
	case *tcell.EventKey:
		return v.handleKey(ev)
	}
	return false
}

func (v *DocView) handleMouse(ev *tcell.EventMouse) bool {
	switch {
	case ev.Buttons()&tcell.WheelUp != 0:
		v.ScrollBy(-3)
		return true
	case ev.Buttons()&tcell.WheelDown != 0:
		v.ScrollBy(3)
		return true
	case ev.Buttons()&tcell.Button1 != 0:
		x, y := ev.Position()
		v.mu.Lock()
		var fire func()
		if x < v.railWidthLocked() {
			row := y - railTopRow
			if row >= 0 && row < len(v.items) {
				fire = v.items[row].onActivate
			}
		}
		v.mu.Unlock()
		if fire != nil {
			fire()
			return true
		}
	}
	return false
}

func (v *DocView) handleKey(ev *tcell.EventKey) bool {
	switch {
	case ev.Key() == tcell.KeyUp || ev.Rune() == 'k':
		v.ScrollBy(-1)
	case ev.Key() == tcell.KeyDown || ev.Rune() == 'j':
		v.ScrollBy(1)
	case ev.Key() == tcell.KeyPgUp:
		v.ScrollBy(-float64(v.pageSize()))
	case ev.Key() == tcell.KeyPgDn:
		v.ScrollBy(float64(v.pageSize()))
	case ev.Key() == tcell.KeyHome:
		v.SetScrollY(0)
	case ev.Key() == tcell.KeyEnd:
		v.SetScrollY(float64(v.doc.RowCount()))
	default:
		return false
	}
	return true
}

// railTopRow is where the first nav row is drawn.
const railTopRow = 2

// Draw renders the rail and the visible document slice.
func (v *DocView) Draw(s tcell.Screen) {
	v.mu.Lock()
	width, height := v.width, v.height
	railW := v.railWidthLocked()
	top := int(v.scrollY)
	type railRow struct {
		title  string
		active bool
	}
	rows := make([]railRow, len(v.items))
	for i, it := range v.items {
		rows[i] = railRow{title: it.title, active: it.active}
	}
	railStyle, activeStyle := v.railStyle, v.activeStyle
	v.mu.Unlock()

	for i, row := range rows {
		style := railStyle
		text := "  " + row.title
		if row.active {
			style = activeStyle
			text = railGlyph + row.title
		}
		drawText(s, 0, railTopRow+i, railW-1, text, style)
	}
	for y := 0; y < height; y++ {
		s.SetContent(railW-1, y, '│', nil, railStyle)
	}

	docW := width - railW
	for y := 0; y < height; y++ {
		x := railW
		for _, sp := range v.doc.Row(top + y) {
			x = drawText(s, x, y, railW+docW, sp.text, sp.style)
		}
	}
}

// DrawStatusLine renders one full-width status row at y, padding the
// remainder with spaces. Text is drawn rune by rune so multi-byte titles
// survive intact.
func DrawStatusLine(s tcell.Screen, y, width int, text string, style tcell.Style) {
	x := drawText(s, 0, y, width, text, style)
	for ; x < width; x++ {
		s.SetContent(x, y, ' ', nil, style)
	}
}

// drawText draws a string with wide-rune awareness and returns the next x.
func drawText(s tcell.Screen, x, y, maxX int, text string, style tcell.Style) int {
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		if x+w > maxX {
			break
		}
		s.SetContent(x, y, r, nil, style)
		x += w
	}
	return x
}

// railWidthLocked sizes the rail to the widest title, capped at a third of
// the view.
func (v *DocView) railWidthLocked() int {
	maxTitle := 0
	for _, it := range v.items {
		if w := runewidth.StringWidth(it.title); w > maxTitle {
			maxTitle = w
		}
	}
	railW := maxTitle + 4
	if v.width > 0 && railW > v.width/3 {
		railW = v.width / 3
	}
	if railW < 8 {
		railW = 8
	}
	return railW
}

func (v *DocView) pageSize() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.height > 1 {
		return v.height - 1
	}
	return 10
}

func (v *DocView) maxScrollLocked() float64 {
	max := float64(v.doc.RowCount() - v.height)
	if max < 0 {
		return 0
	}
	return max
}

func (v *DocView) listenersLocked() []func() {
	fns := make([]func(), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	return fns
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
