// Package overlay provides the floating-surface layer: a stack of entries
// above regular content, plus the Modal templated container, its Backdrop
// and Panel chrome, and the ShowModal convenience entry point.
package overlay

import (
	"sync/atomic"

	"github.com/go-drift/compose/pkg/core"
)

// nextEntryID is an atomic counter for unique entry IDs.
var nextEntryID uint64

// NewOverlayEntry creates an OverlayEntry with a unique ID. Always use this
// constructor rather than literal struct creation to ensure stable keying.
func NewOverlayEntry(builder core.WidgetBuilder) *OverlayEntry {
	return &OverlayEntry{
		Builder: builder,
		id:      atomic.AddUint64(&nextEntryID, 1),
	}
}

// OverlayEntry represents a single item in the overlay stack. It is a
// mutable handle: modifying fields and calling MarkNeedsBuild triggers a
// rebuild of just this entry.
type OverlayEntry struct {
	// Builder creates the entry content. Called on each rebuild.
	Builder core.WidgetBuilder

	// internal - set by overlayState on Insert, cleared on Remove
	overlay    *overlayState      // concrete type (not interface) for removeEntry
	mounted    bool               // true when entry widget is in the tree
	entryState *overlayEntryState // for MarkNeedsBuild
	id         uint64             // unique ID for stable keying
}

// Remove removes this entry from its overlay.
// Safe to call if not inserted or already removed (no-op).
// Can be called before first build to cancel a pending entry.
func (e *OverlayEntry) Remove() {
	if e.overlay == nil {
		return // Not inserted or already removed
	}
	// Don't clear entry fields here; doRemoveEntry handles it, which keeps
	// queued removals working. The overlay field guards double-Remove.
	e.overlay.removeEntry(e)
}

// MarkNeedsBuild triggers a rebuild of this entry's widget.
// No-op if the entry is not currently mounted.
func (e *OverlayEntry) MarkNeedsBuild() {
	if !e.mounted || e.entryState == nil {
		return
	}
	e.entryState.markNeedsBuild()
}

// overlayEntryWidget is an internal widget that wraps each entry.
type overlayEntryWidget struct {
	entry *OverlayEntry
}

func (w overlayEntryWidget) CreateElement() core.Element {
	return core.NewStatefulElement()
}

func (w overlayEntryWidget) Key() any {
	// Stable key prevents state swapping when entries are reordered.
	return w.entry.id
}

func (w overlayEntryWidget) CreateState() core.State {
	return &overlayEntryState{}
}

type overlayEntryState struct {
	core.StateBase
	entry *OverlayEntry
}

func (s *overlayEntryState) InitState() {
	widget := s.Element().Widget().(overlayEntryWidget)
	s.entry = widget.entry
	// Link entry to state for MarkNeedsBuild
	s.entry.entryState = s
	s.entry.mounted = true
}

func (s *overlayEntryState) Build(ctx core.BuildContext) core.Widget {
	if s.entry.Builder == nil {
		return nil
	}
	return s.entry.Builder(ctx)
}

func (s *overlayEntryState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	// Stable keys should prevent an entry pointer swap, but handle it anyway.
	old := oldWidget.(overlayEntryWidget)
	if old.entry != s.entry {
		old.entry.entryState = nil
		old.entry.mounted = false
		widget := s.Element().Widget().(overlayEntryWidget)
		s.entry = widget.entry
		s.entry.entryState = s
		s.entry.mounted = true
	}
}

func (s *overlayEntryState) Dispose() {
	if s.entry != nil {
		s.entry.entryState = nil
		s.entry.mounted = false
	}
	s.StateBase.Dispose()
}

func (s *overlayEntryState) markNeedsBuild() {
	s.SetState(func() {})
}
