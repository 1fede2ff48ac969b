package overlay

import (
	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/widgets"
)

// Modal conditionally renders deferred content inside a scrim and a centered
// themed panel.
//
// Modal is a templated container: the caller supplies a visibility flag and
// a deferred content block, and Modal decides whether a frame is produced
// around it. When Visible is false, Modal builds nothing at all (not an
// empty frame) and Content is never invoked, so hidden content has no side
// effects. When Visible is true, Modal builds a [Backdrop] behind a centered
// [Panel] and invokes Content exactly once to splice its widget into the
// panel.
//
// Modal is stateless: each build is an independent projection of the two
// inputs, so building twice with the same inputs yields identical output.
// Modal never retains or inspects the content closure; the caller owns
// whatever it captures.
//
//	overlay.Modal{
//	    Visible: showDialog,
//	    Content: func(ctx core.BuildContext) core.Widget {
//	        return widgets.Text{Content: "Are you sure?"}
//	    },
//	}
//
// A visible Modal with a nil Content is a caller contract violation: Build
// panics, the element layer recovers and reports the error, and an error
// placeholder is rendered in place of the modal.
type Modal struct {
	core.StatelessBase

	// Visible controls whether anything is rendered. The zero value hides
	// the modal.
	Visible bool

	// Content produces the panel content. Invoked exactly once per build,
	// and only while Visible is true. Required when Visible is true.
	Content core.WidgetBuilder
}

func (m Modal) Build(ctx core.BuildContext) core.Widget {
	if !m.Visible {
		return nil
	}
	if m.Content == nil {
		panic("overlay: Modal is visible but Content is nil")
	}
	return widgets.Stack{
		ChildrenWidgets: []core.Widget{
			Backdrop{},
			widgets.Center{Child: Panel{Child: m.Content(ctx)}},
		},
	}
}
