// Copyright © 2025 Scrollnav contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: registry.go
// Summary: Discovers navigation items, resolves their targets, and manages
// activation bindings.
// Usage: Owned by the Controller; Discover runs on every Initialize/Refresh.

package scrollnav

// boundItem pairs a navigation item with its resolved section target.
type boundItem struct {
	view   ItemView
	target Element
}

// itemRegistry holds the current ordered item set and the activation bindings
// attached to the host. Rebinding is diff-based: items that disappeared are
// unbound, new ones bound, surviving ones left alone.
type itemRegistry struct {
	source Source
	items  []boundItem
	bound  map[ItemView]struct{}
}

func newItemRegistry(source Source) *itemRegistry {
	return &itemRegistry{
		source: source,
		bound:  make(map[ItemView]struct{}),
	}
}

// discover re-resolves the full item set from the source. Every item's anchor
// must resolve to a live element; the first miss aborts with a
// TargetNotFoundError and leaves the previous item set untouched.
func (r *itemRegistry) discover() ([]boundItem, error) {
	views := r.source.FindNavigableItems()
	items := make([]boundItem, 0, len(views))
	for _, view := range views {
		target := r.source.ResolveByID(view.TargetID())
		if target == nil {
			return nil, &TargetNotFoundError{Anchor: view.TargetID()}
		}
		items = append(items, boundItem{view: view, target: target})
	}
	return items, nil
}

// rebind installs the freshly discovered item set and reconciles activation
// handlers. onActivate receives the clicked item; when enabled is false every
// binding is removed instead.
func (r *itemRegistry) rebind(items []boundItem, enabled bool, onActivate func(ItemView)) {
	next := make(map[ItemView]struct{}, len(items))
	if enabled {
		for _, it := range items {
			next[it.view] = struct{}{}
		}
	}

	// Unbind items that are gone (or everything when click binding is off).
	for view := range r.bound {
		if _, keep := next[view]; !keep {
			view.OnActivate(nil)
			delete(r.bound, view)
		}
	}

	if enabled {
		for _, it := range items {
			view := it.view
			if _, ok := r.bound[view]; ok {
				continue
			}
			view.OnActivate(func() { onActivate(view) })
			r.bound[view] = struct{}{}
		}
	}

	r.items = items
}

// unbindAll removes every activation handler. Used by Teardown so no stale
// handlers survive the controller.
func (r *itemRegistry) unbindAll() {
	for view := range r.bound {
		view.OnActivate(nil)
		delete(r.bound, view)
	}
}
