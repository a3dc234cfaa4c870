// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: events.go
// Summary: Event types and listener dispatch for controller notifications.

package scrollnav

import "sync"

// EventType defines the type of an event.
type EventType int

const (
	// EventItemChanged fires when the tracked current item changes. Payload
	// is ItemChangedPayload.
	EventItemChanged EventType = iota
)

func (e EventType) String() string {
	switch e {
	case EventItemChanged:
		return "ItemChanged"
	default:
		return "UnknownEvent"
	}
}

// Event is a message broadcast to subscribed listeners.
type Event struct {
	Type    EventType
	Payload interface{}
}

// Cause says what triggered an item change.
type Cause int

const (
	// CauseScroll: a scroll notification from the host.
	CauseScroll Cause = iota
	// CauseAnimation: the re-check run when an animated scroll completes.
	CauseAnimation
)

// ItemChangedPayload carries the item transition. Previous is nil when no
// item was active before.
type ItemChangedPayload struct {
	Current  ItemView
	Previous ItemView
	Cause    Cause
}

// Listener receives controller events. Implementations must be comparable;
// Unsubscribe matches by interface identity.
type Listener interface {
	OnEvent(event Event)
}

// EventDispatcher fans controller events out to subscribed listeners. The
// controller always broadcasts with its own lock released, so listeners may
// call back into it freely.
type EventDispatcher struct {
	mu        sync.RWMutex
	listeners []Listener
}

func NewEventDispatcher() *EventDispatcher {
	return &EventDispatcher{}
}

// Subscribe registers a listener. Subscribing the same listener twice
// delivers every event twice.
func (d *EventDispatcher) Subscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.listeners = append(d.listeners, listener)
}

// Unsubscribe removes the first subscription of listener, if any.
func (d *EventDispatcher) Unsubscribe(listener Listener) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, l := range d.listeners {
		if l == listener {
			d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
			return
		}
	}
}

// Broadcast delivers event to every listener, in subscription order.
func (d *EventDispatcher) Broadcast(event Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	for _, l := range d.listeners {
		l.OnEvent(event)
	}
}
