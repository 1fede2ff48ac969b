package core

import "reflect"

// Widget is an immutable description of part of the UI. Widgets are cheap
// configuration values; the framework instantiates an Element to give each
// one a location and lifecycle in the tree.
type Widget interface {
	// CreateElement returns a fresh, unconfigured element for this widget.
	// The framework injects the widget, build owner, and self reference
	// during inflation.
	CreateElement() Element

	// Key identifies this widget for reconciliation. Widgets of the same
	// type with equal keys update in place; otherwise the old element is
	// unmounted and a new one inflated. Nil means "no key".
	Key() any
}

// StatelessWidget builds a child widget from its own configuration.
type StatelessWidget interface {
	Widget
	Build(ctx BuildContext) Widget
}

// StatefulWidget creates mutable State that persists across rebuilds.
type StatefulWidget interface {
	Widget
	CreateState() State
}

// InheritedWidget propagates data down the tree. Descendants that call
// [BuildContext.DependOnInherited] are rebuilt when the data changes.
type InheritedWidget interface {
	Widget
	// ChildWidget returns the subtree below this widget.
	ChildWidget() Widget
	// UpdateShouldNotify reports whether dependents must rebuild after the
	// widget at this location was replaced by a new configuration.
	UpdateShouldNotify(oldWidget InheritedWidget) bool
}

// State is the mutable companion of a StatefulWidget.
type State interface {
	InitState()
	Build(ctx BuildContext) Widget
	DidUpdateWidget(oldWidget StatefulWidget)
	DidChangeDependencies()
	Dispose()
}

// BuildContext is the location-aware handle passed to Build methods.
// Elements implement it; widgets must not retain it past the current build
// except through framework-sanctioned paths (overlay entries, dismiss
// closures created during build).
type BuildContext interface {
	// Widget returns the widget configuration at this location.
	Widget() Widget

	// Depth returns the element depth (root = 0).
	Depth() int

	// MarkNeedsBuild schedules this location for rebuild.
	MarkNeedsBuild()

	// DependOnInherited walks up to the nearest InheritedWidget of the
	// given concrete type, registers this location as a dependent, and
	// returns the widget. Returns nil if no ancestor of that type exists.
	DependOnInherited(inheritedType reflect.Type) any

	// FindAncestor returns the nearest ancestor element satisfying the
	// predicate, or nil.
	FindAncestor(predicate func(Element) bool) Element
}

// Element is the instantiation of a Widget at a particular location in the
// tree. Elements manage lifecycle and identity; they implement BuildContext
// so Build methods can query their surroundings.
type Element interface {
	BuildContext

	// Mount attaches the element below parent. Slot is parent-specific
	// child bookkeeping (nil for single-child parents).
	Mount(parent Element, slot any)

	// Update replaces the widget configuration in place. Only called when
	// the framework has approved the swap (same type, equal keys).
	Update(newWidget Widget)

	// Unmount removes the element and its subtree from the tree.
	Unmount()

	// RebuildIfNeeded rebuilds the subtree if this element is dirty.
	RebuildIfNeeded()

	// VisitChildren calls visitor for each child until it returns false.
	VisitChildren(visitor func(Element) bool)
}

// WidgetBuilder produces a widget on demand. It is the library's deferred
// content type: the receiving component decides when (and whether) to invoke
// it, so content behind a hidden component is never built.
type WidgetBuilder func(ctx BuildContext) Widget
