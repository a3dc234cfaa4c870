// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/scrollnav-demo/main.go
// Summary: Interactive demo: a sectioned document with a tracking navigation
// rail. Wheel/j/k scroll, click a rail entry (or press 1-9) to animate to a
// section, q quits.

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/scrollnav"
	"github.com/framegrace/scrollnav/config"
	"github.com/framegrace/scrollnav/tui"
)

func main() {
	configPath := flag.String("config", "scrollnav.json", "path to config file")
	flag.Parse()

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "scrollnav-demo must run on a terminal")
		os.Exit(1)
	}
	log.SetOutput(os.Stderr)

	opts, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Demo: Config load failed: %v", err)
	}

	if err := run(opts); err != nil {
		log.Fatalf("Demo: %v", err)
	}
}

func run(opts scrollnav.Options) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	doc := tui.NewDocument("scrollnav demo", sampleSections())
	view := tui.NewDocView(doc)
	view.SetActiveStyle(tui.ActiveStyleFor(opts.ActiveClass))
	w, h := screen.Size()
	view.SetSize(w, h-1)

	frames := tui.NewTickerFrames(16 * time.Millisecond)
	defer frames.Stop()

	controller := scrollnav.New(view, view, view, frames, opts)
	status := &statusBar{text: "scroll or click a section"}
	controller.Events().Subscribe(status)
	defer controller.Teardown()

	if err := controller.Initialize(); err != nil {
		return fmt.Errorf("initialize controller: %w", err)
	}

	// Scroll position changes on the frame goroutine during animations, so
	// rendering runs on its own cadence instead of only after input events.
	stopRender := make(chan struct{})
	go func() {
		ticker := time.NewTicker(33 * time.Millisecond)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				render(screen, view, status)
			case <-stopRender:
				return
			}
		}
	}()
	defer close(stopRender)

	sections := doc.Sections()
	for {
		ev := screen.PollEvent()
		switch tev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case tev.Key() == tcell.KeyEscape || tev.Rune() == 'q':
				return nil
			case tev.Rune() >= '1' && tev.Rune() <= '9':
				idx := int(tev.Rune() - '1')
				if idx < len(sections) {
					if err := controller.Activate(sections[idx].ID); err != nil {
						log.Printf("Demo: Activate failed: %v", err)
					}
				}
			default:
				view.HandleEvent(ev)
			}
		case *tcell.EventResize:
			w, h := tev.Size()
			view.SetSize(w, h-1)
			screen.Sync()
			if err := controller.Refresh(); err != nil {
				return err
			}
		default:
			view.HandleEvent(ev)
		}
	}
}

func render(screen tcell.Screen, view *tui.DocView, status *statusBar) {
	screen.Clear()
	view.Draw(screen)
	w, h := screen.Size()
	tui.DrawStatusLine(screen, h-1, w, status.get(), tcell.StyleDefault.Reverse(true))
	screen.Show()
}

// statusBar records the latest item transition for the footer.
type statusBar struct {
	mu   sync.Mutex
	text string
}

func (s *statusBar) OnEvent(ev scrollnav.Event) {
	if ev.Type != scrollnav.EventItemChanged {
		return
	}
	p := ev.Payload.(scrollnav.ItemChangedPayload)
	s.mu.Lock()
	s.text = fmt.Sprintf("section: %s (was %s)", itemLabel(p.Current), itemLabel(p.Previous))
	s.mu.Unlock()
}

func (s *statusBar) get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.text
}

func itemLabel(item scrollnav.ItemView) string {
	if item == nil {
		return "none"
	}
	return item.TargetID()
}

func sampleSections() []tui.Section {
	return []tui.Section{
		{
			ID:    "intro",
			Title: "Introduction",
			Lines: []string{
				"scrollnav keeps a navigation rail in sync with the section",
				"currently in view, and animates the viewport when a rail entry",
				"is activated.",
				"",
				"Scroll with the wheel or j/k; click a rail entry or press 1-9",
				"to jump to a section.",
			},
		},
		{
			ID:       "usage",
			Title:    "Usage",
			Language: "go",
			Lines: []string{
				"controller := scrollnav.New(view, view, view, frames, opts)",
				"if err := controller.Initialize(); err != nil {",
				"\tlog.Fatal(err)",
				"}",
				"defer controller.Teardown()",
			},
		},
		{
			ID:       "configuration",
			Title:    "Configuration",
			Language: "auto",
			Lines: []string{
				`{`,
				`  "active_class": "is-active",`,
				`  "offset": 20,`,
				`  "duration_ms": 600,`,
				`  "bezier_easing_value": ".5,0,.35,1",`,
				`  "tracking_policy": "last-match"`,
				`}`,
			},
		},
		{
			ID:    "policies",
			Title: "Tracking policies",
			Lines: []string{
				"last-match: the last section whose top has passed the reference",
				"line stays active, even past its bottom edge.",
				"",
				"band: a section is active only while the reference line is",
				"inside it; gaps clear the rail entirely.",
			},
		},
		{
			ID:    "animation",
			Title: "Animation",
			Lines: []string{
				"Animated scrolls interpolate with a cubic-bezier easing and",
				"pause tracking until the viewport settles, so the rail never",
				"flickers through intermediate sections.",
			},
		},
	}
}
