// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: tui/highlight.go
// Summary: Chroma-based syntax highlighting of code sections, with go-enry
// language detection for "auto" sections.

package tui

import (
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"
)

const chromaStyleName = "catppuccin-mocha"

var (
	styleTitle   = tcell.StyleDefault.Bold(true).Underline(true)
	styleHeading = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorAqua)
	stylePlain   = tcell.StyleDefault
)

// highlightLines renders a section body to styled rows. Plain sections
// (empty language) pass through unstyled; everything else is tokenized as a
// single block so the lexer sees full context.
func highlightLines(lines []string, language string) [][]span {
	if language == "" {
		out := make([][]span, len(lines))
		for i, line := range lines {
			out[i] = []span{{text: line, style: stylePlain}}
		}
		return out
	}

	text := strings.Join(lines, "\n") + "\n"
	lexer := resolveLexer(language, text)
	lexer = chroma.Coalesce(lexer)
	style := styles.Get(chromaStyleName)

	tokens, err := chroma.Tokenise(lexer, nil, text)
	if err != nil {
		out := make([][]span, len(lines))
		for i, line := range lines {
			out[i] = []span{{text: line, style: stylePlain}}
		}
		return out
	}

	out := make([][]span, 1, len(lines))
	for _, tok := range tokens {
		if tok.Type == chroma.EOFType {
			break
		}
		st := tokenStyle(style, tok.Type)
		parts := strings.Split(tok.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				out = append(out, nil)
			}
			if part == "" {
				continue
			}
			row := len(out) - 1
			out[row] = append(out[row], span{text: part, style: st})
		}
	}
	// The trailing newline produced one empty row beyond the last line.
	if len(out) > len(lines) {
		out = out[:len(lines)]
	}
	return out
}

// resolveLexer picks a chroma lexer: by name, by enry content detection for
// "auto", then chroma's own analysis, then the fallback.
func resolveLexer(language, text string) chroma.Lexer {
	if language != "auto" {
		if l := lexers.Get(language); l != nil {
			return l
		}
	}
	if lang := enry.GetLanguage("", []byte(text)); lang != "" {
		if l := lexers.Get(lang); l != nil {
			return l
		}
	}
	if l := lexers.Analyse(text); l != nil {
		return l
	}
	return lexers.Fallback
}

// tokenStyle maps a chroma token style to a tcell style.
func tokenStyle(style *chroma.Style, tokType chroma.TokenType) tcell.Style {
	entry := style.Get(tokType)
	st := stylePlain
	if entry.Colour.IsSet() {
		st = st.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	if entry.Bold == chroma.Yes {
		st = st.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		st = st.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		st = st.Underline(true)
	}
	return st
}
