// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/document.go
// Summary: Sectioned document model with row-based geometry for the tcell
// host.
// Usage: Build a Document from Sections; DocView renders it and exposes it to
// the scrollnav core through the capability interfaces.

package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/scrollnav"
)

// Section is one navigable unit of the document. Language selects syntax
// highlighting for the body: empty means plain prose, "auto" detects the
// language from content, anything else names a chroma lexer.
type Section struct {
	ID       string
	Title    string
	Language string
	Lines    []string
}

// span is a run of styled text within one rendered row.
type span struct {
	text  string
	style tcell.Style
}

// renderedSection holds a section's geometry in document rows.
type renderedSection struct {
	section Section
	body    *bodyElement
	top     float64 // title row, relative to the body
	height  float64 // rows including title and padding
}

func (s *renderedSection) OffsetTop() float64 { return s.top }

func (s *renderedSection) OffsetParent() scrollnav.Element {
	if s.body == nil {
		return nil
	}
	return s.body
}

func (s *renderedSection) ClientHeight() float64 { return s.height }

// bodyElement is the single offset parent of every section: the document body
// starts below the banner rows.
type bodyElement struct {
	top float64
}

func (b *bodyElement) OffsetTop() float64              { return b.top }
func (b *bodyElement) OffsetParent() scrollnav.Element { return nil }
func (b *bodyElement) ClientHeight() float64           { return 0 }

// Document is a flattened, styled line buffer with per-section geometry.
// Vertical positions are rows; the scrollnav core is unit-agnostic.
type Document struct {
	Title    string
	sections []*renderedSection
	rows     [][]span
}

// bannerRows is the height of the document header above the body.
const bannerRows = 2

// NewDocument flattens the sections into styled rows and records each
// section's offset geometry.
func NewDocument(title string, sections []Section) *Document {
	d := &Document{Title: title}
	body := &bodyElement{top: bannerRows}

	d.rows = append(d.rows, []span{{text: title, style: styleTitle}})
	d.rows = append(d.rows, nil)

	row := 0 // relative to body
	for _, sec := range sections {
		rs := &renderedSection{section: sec, body: body, top: float64(row)}

		d.rows = append(d.rows, []span{{text: "▌ " + sec.Title, style: styleHeading}})
		d.rows = append(d.rows, nil)
		row += 2

		for _, line := range highlightLines(sec.Lines, sec.Language) {
			d.rows = append(d.rows, line)
		}
		d.rows = append(d.rows, nil)
		row += len(sec.Lines) + 1

		rs.height = float64(row) - rs.top
		d.sections = append(d.sections, rs)
	}
	return d
}

// Sections returns the document's sections in source order.
func (d *Document) Sections() []Section {
	out := make([]Section, len(d.sections))
	for i, rs := range d.sections {
		out[i] = rs.section
	}
	return out
}

// Resolve returns the element for a section ID, or nil.
func (d *Document) Resolve(id string) scrollnav.Element {
	for _, rs := range d.sections {
		if rs.section.ID == id {
			return rs
		}
	}
	return nil
}

// RowCount is the total document height in rows.
func (d *Document) RowCount() int { return len(d.rows) }

// Row returns the styled spans of one row; out-of-range rows are empty.
func (d *Document) Row(i int) []span {
	if i < 0 || i >= len(d.rows) {
		return nil
	}
	return d.rows[i]
}
