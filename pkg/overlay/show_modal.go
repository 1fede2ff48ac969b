package overlay

import (
	"sync"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/widgets"
)

// ModalBuilder creates modal content given a [core.BuildContext] and a
// dismiss function. Call dismiss to close the modal programmatically.
//
// The BuildContext passed to the builder comes from the overlay entry, so
// theme lookups ([theme.ThemeOf]) work as expected.
type ModalBuilder func(ctx core.BuildContext, dismiss func()) core.Widget

// ModalOptions configures [ShowModal].
type ModalOptions struct {
	// Builder creates the modal content widget. Required.
	//
	// The dismiss function passed to the builder removes both the backdrop
	// and content entries from the overlay. Safe to call multiple times.
	Builder ModalBuilder

	// ScrimColor overrides the backdrop color behind the content. Zero
	// uses the theme's panel scrim.
	ScrimColor graphics.Color
}

// ShowModal displays modal content above the nearest [Overlay].
//
// It inserts two overlay entries: a [Backdrop] scrim and a centered content
// entry built by opts.Builder. The returned dismiss function removes both
// entries; it is idempotent, so calling it more than once is a safe no-op.
//
// ShowModal must be called with a [core.BuildContext] that has an [Overlay]
// ancestor. If no Overlay ancestor exists or Builder is nil, ShowModal
// returns a no-op dismiss without inserting anything.
//
// For an inline modal controlled by a visibility flag instead of imperative
// show/dismiss, use [Modal].
func ShowModal(ctx core.BuildContext, opts ModalOptions) (dismiss func()) {
	ov := OverlayOf(ctx)
	if ov == nil || opts.Builder == nil {
		return func() {}
	}

	var once sync.Once
	var backdropEntry, contentEntry *OverlayEntry

	// sync.Once guards against concurrent dismiss calls. OverlayEntry.Remove
	// is itself idempotent, so external removal does not cause issues.
	dismiss = func() {
		once.Do(func() {
			backdropEntry.Remove()
			contentEntry.Remove()
		})
	}

	backdropEntry = NewOverlayEntry(func(ctx core.BuildContext) core.Widget {
		return Backdrop{Color: opts.ScrimColor}
	})

	contentEntry = NewOverlayEntry(func(ctx core.BuildContext) core.Widget {
		return widgets.Center{
			Child: Panel{Child: opts.Builder(ctx, dismiss)},
		}
	})

	ov.InsertAll([]*OverlayEntry{backdropEntry, contentEntry}, nil, nil)

	return dismiss
}
