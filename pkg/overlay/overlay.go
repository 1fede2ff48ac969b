package overlay

import (
	"reflect"
	"sync/atomic"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/widgets"
)

// Overlay manages a stack of overlay entries above its child.
// Use OverlayOf(ctx) to access the nearest overlay's state.
type Overlay struct {
	core.StatefulBase

	Child          core.Widget
	InitialEntries []*OverlayEntry
}

func (o Overlay) CreateState() core.State {
	return &overlayState{}
}

// OverlayState provides methods to manipulate overlay entries.
// This is a sealed interface; only the overlay's own state implements it.
type OverlayState interface {
	// Insert adds entry to the overlay.
	// Positioning: at most one of below/above may be non-nil.
	//   - below non-nil: inserts just below that entry
	//   - above non-nil: inserts just above that entry
	//   - both nil: inserts at top
	// Panics if both below AND above are non-nil (ambiguous).
	// Panics if entry is already inserted into any overlay.
	// If called during build, insertion is queued until the build completes.
	Insert(entry *OverlayEntry, below *OverlayEntry, above *OverlayEntry)

	// InsertAll adds multiple entries. Same positioning logic as Insert.
	InsertAll(entries []*OverlayEntry, below *OverlayEntry, above *OverlayEntry)

	// Rearrange reorders entries. Entries not in newEntries are removed.
	Rearrange(newEntries []*OverlayEntry)

	// sealed prevents external implementations
	sealed()
}

type overlayState struct {
	core.StateBase
	overlay    Overlay
	entries    []*OverlayEntry
	isBuilding bool
	pendingOps []func() // queued insertions and removals during build
}

func (s *overlayState) sealed() {}

func (s *overlayState) InitState() {
	s.overlay = s.Element().Widget().(Overlay)
	for _, entry := range s.overlay.InitialEntries {
		entry.overlay = s
		// Assign an ID if missing (fallback for literal construction)
		if entry.id == 0 {
			entry.id = atomic.AddUint64(&nextEntryID, 1)
		}
	}
	s.entries = append(s.entries, s.overlay.InitialEntries...)
}

func (s *overlayState) DidUpdateWidget(oldWidget core.StatefulWidget) {
	s.overlay = s.Element().Widget().(Overlay)
}

func (s *overlayState) Build(ctx core.BuildContext) core.Widget {
	s.isBuilding = true

	// All entries are built; entries earlier in the slice paint lower.
	children := make([]core.Widget, 0, len(s.entries)+1)
	if s.overlay.Child != nil {
		children = append(children, s.overlay.Child)
	}
	for _, entry := range s.entries {
		children = append(children, overlayEntryWidget{entry: entry})
	}

	s.isBuilding = false

	// Process operations queued while building
	if len(s.pendingOps) > 0 {
		ops := s.pendingOps
		s.pendingOps = nil
		for _, op := range ops {
			op()
		}
		s.Element().MarkNeedsBuild()
	}

	return overlayInherited{
		state: s,
		child: widgets.Stack{ChildrenWidgets: children},
	}
}

// Insert adds entry to the overlay.
func (s *overlayState) Insert(entry *OverlayEntry, below, above *OverlayEntry) {
	// Validate before queuing
	if below != nil && above != nil {
		panic("overlay: both below and above specified")
	}
	if entry.overlay != nil {
		panic("overlay: entry already inserted")
	}

	// Claim the entry immediately so Remove during build works correctly
	entry.overlay = s

	if entry.id == 0 {
		entry.id = atomic.AddUint64(&nextEntryID, 1)
	}

	if s.isBuilding {
		s.pendingOps = append(s.pendingOps, func() {
			// Entry may have been removed while queued
			if entry.overlay != s {
				return
			}
			s.insertIntoEntries(entry, below, above)
			s.Element().MarkNeedsBuild()
		})
		return
	}
	s.insertIntoEntries(entry, below, above)
	s.Element().MarkNeedsBuild()
}

// InsertAll adds multiple entries.
func (s *overlayState) InsertAll(entries []*OverlayEntry, below, above *OverlayEntry) {
	for _, entry := range entries {
		s.Insert(entry, below, above)
		// Each subsequent entry goes above the previous one when below/above is nil
		if below == nil && above == nil && len(entries) > 1 {
			above = entry
		}
	}
}

// Rearrange reorders entries. Entries not in newEntries are removed.
func (s *overlayState) Rearrange(newEntries []*OverlayEntry) {
	newSet := make(map[*OverlayEntry]bool, len(newEntries))
	for _, entry := range newEntries {
		newSet[entry] = true
	}

	for _, entry := range s.entries {
		if !newSet[entry] {
			entry.overlay = nil
			entry.mounted = false
			entry.entryState = nil
		}
	}

	for _, entry := range newEntries {
		entry.overlay = s
		if entry.id == 0 {
			entry.id = atomic.AddUint64(&nextEntryID, 1)
		}
	}

	s.entries = newEntries
	s.Element().MarkNeedsBuild()
}

func (s *overlayState) insertIntoEntries(entry *OverlayEntry, below, above *OverlayEntry) {
	if below != nil {
		for i, e := range s.entries {
			if e == below {
				s.entries = append(s.entries[:i], append([]*OverlayEntry{entry}, s.entries[i:]...)...)
				return
			}
		}
		// below not found, insert at bottom
		s.entries = append([]*OverlayEntry{entry}, s.entries...)
	} else if above != nil {
		for i, e := range s.entries {
			if e == above {
				s.entries = append(s.entries[:i+1], append([]*OverlayEntry{entry}, s.entries[i+1:]...)...)
				return
			}
		}
		// above not found, insert at top
		s.entries = append(s.entries, entry)
	} else {
		s.entries = append(s.entries, entry)
	}
}

func (s *overlayState) removeEntry(entry *OverlayEntry) {
	if s.isBuilding {
		s.pendingOps = append(s.pendingOps, func() {
			s.doRemoveEntry(entry)
		})
		return
	}
	s.doRemoveEntry(entry)
}

func (s *overlayState) doRemoveEntry(entry *OverlayEntry) {
	// Skip if entry was already removed or re-inserted elsewhere
	if entry.overlay != s {
		return
	}

	// Clear entry references before touching the slice so a queued insert
	// observes the removal and skips itself.
	entry.overlay = nil
	entry.mounted = false
	entry.entryState = nil

	// May not be present if the insert was still queued
	for i, e := range s.entries {
		if e == entry {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.Element().MarkNeedsBuild()
			break
		}
	}
}

// overlayInherited provides OverlayState to descendants.
type overlayInherited struct {
	core.InheritedBase
	state *overlayState
	child core.Widget
}

func (o overlayInherited) ChildWidget() core.Widget { return o.child }

func (o overlayInherited) UpdateShouldNotify(oldWidget core.InheritedWidget) bool {
	if old, ok := oldWidget.(overlayInherited); ok {
		return o.state != old.state
	}
	return true
}

var overlayInheritedType = reflect.TypeOf(overlayInherited{})

// OverlayOf returns the nearest Overlay ancestor's state.
// Returns nil if no Overlay ancestor exists.
func OverlayOf(ctx core.BuildContext) OverlayState {
	inherited := ctx.DependOnInherited(overlayInheritedType)
	if inherited == nil {
		return nil
	}
	if overlay, ok := inherited.(overlayInherited); ok {
		return overlay.state
	}
	return nil
}
