package overlay

import (
	"testing"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/widgets"

	ctesting "github.com/go-drift/compose/pkg/testing"
)

// modalTrigger is mounted as the Overlay's child so its BuildContext sits
// below the overlay's inherited scope. onBuild fires once, on first build.
type modalTrigger struct {
	core.StatefulBase

	onBuild func(ctx core.BuildContext)
}

func (d modalTrigger) CreateState() core.State {
	return &modalTriggerState{}
}

type modalTriggerState struct {
	core.StateBase
	fired bool
}

func (s *modalTriggerState) Build(ctx core.BuildContext) core.Widget {
	if !s.fired {
		s.fired = true
		widget := s.Element().Widget().(modalTrigger)
		if widget.onBuild != nil {
			widget.onBuild(ctx)
		}
	}
	return widgets.SizedBox{Width: 400, Height: 400}
}

func pumpOverlay(tester *ctesting.ComponentTester, onBuild func(ctx core.BuildContext)) {
	tester.PumpWidget(Overlay{
		Child: modalTrigger{onBuild: onBuild},
	})
}

// TestShowModal_CreatesEntries verifies that ShowModal inserts a backdrop
// entry and a centered panel entry, and renders the builder's content.
func TestShowModal_CreatesEntries(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	var dismiss func()
	pumpOverlay(tester, func(ctx core.BuildContext) {
		dismiss = ShowModal(ctx, ModalOptions{
			Builder: func(ctx core.BuildContext, dismiss func()) core.Widget {
				return widgets.Text{Content: "modal content"}
			},
		})
	})

	if dismiss == nil {
		t.Fatal("expected dismiss to be set")
	}
	if !tester.Find(ctesting.ByType[Backdrop]()).Exists() {
		t.Error("expected a Backdrop entry")
	}
	if !tester.Find(ctesting.ByType[Panel]()).Exists() {
		t.Error("expected a Panel entry")
	}
	if !tester.Find(ctesting.ByText("modal content")).Exists() {
		t.Error("expected modal content to be rendered")
	}
}

// TestShowModal_DismissRemovesBothEntries verifies that dismiss removes the
// backdrop and the content entry.
func TestShowModal_DismissRemovesBothEntries(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	var dismiss func()
	pumpOverlay(tester, func(ctx core.BuildContext) {
		dismiss = ShowModal(ctx, ModalOptions{
			Builder: func(ctx core.BuildContext, dismiss func()) core.Widget {
				return widgets.Text{Content: "modal"}
			},
		})
	})

	if !tester.Find(ctesting.ByText("modal")).Exists() {
		t.Fatal("expected modal to be visible")
	}

	dismiss()
	tester.Pump()

	if tester.Find(ctesting.ByText("modal")).Exists() {
		t.Error("expected modal to be removed after dismiss")
	}
	if tester.Find(ctesting.ByType[Backdrop]()).Exists() {
		t.Error("expected backdrop to be removed after dismiss")
	}
}

// TestShowModal_DismissIsIdempotent verifies that multiple dismiss calls
// are safe.
func TestShowModal_DismissIsIdempotent(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	var dismiss func()
	pumpOverlay(tester, func(ctx core.BuildContext) {
		dismiss = ShowModal(ctx, ModalOptions{
			Builder: func(ctx core.BuildContext, dismiss func()) core.Widget {
				return widgets.Text{Content: "idempotent"}
			},
		})
	})

	dismiss()
	dismiss()
	dismiss()
	tester.Pump()

	if tester.Find(ctesting.ByText("idempotent")).Exists() {
		t.Error("expected modal to stay dismissed")
	}
}

// TestShowModal_NoOverlay verifies that ShowModal without an Overlay
// ancestor returns a no-op dismiss without inserting anything.
func TestShowModal_NoOverlay(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	var dismiss func()
	tester.PumpWidget(modalTrigger{onBuild: func(ctx core.BuildContext) {
		dismiss = ShowModal(ctx, ModalOptions{
			Builder: func(ctx core.BuildContext, dismiss func()) core.Widget {
				return widgets.Text{Content: "orphan"}
			},
		})
	}})

	if dismiss == nil {
		t.Fatal("expected dismiss to be set")
	}
	dismiss()

	if tester.Find(ctesting.ByText("orphan")).Exists() {
		t.Error("expected nothing to be inserted without an overlay")
	}
}

// TestShowModal_NilBuilder verifies that a nil Builder is a safe no-op.
func TestShowModal_NilBuilder(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	var dismiss func()
	pumpOverlay(tester, func(ctx core.BuildContext) {
		dismiss = ShowModal(ctx, ModalOptions{})
	})

	if dismiss == nil {
		t.Fatal("expected dismiss to be set")
	}
	dismiss()

	if tester.Find(ctesting.ByType[Panel]()).Exists() {
		t.Error("expected no panel for a nil builder")
	}
}

// TestShowModal_DismissFromBuilder verifies that the dismiss function passed
// into the builder closes the modal.
func TestShowModal_DismissFromBuilder(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	var fromBuilder func()
	pumpOverlay(tester, func(ctx core.BuildContext) {
		ShowModal(ctx, ModalOptions{
			Builder: func(ctx core.BuildContext, dismiss func()) core.Widget {
				fromBuilder = dismiss
				return widgets.Text{Content: "inner dismiss"}
			},
		})
	})

	if !tester.Find(ctesting.ByText("inner dismiss")).Exists() {
		t.Fatal("expected modal to be visible")
	}
	if fromBuilder == nil {
		t.Fatal("expected builder to receive a dismiss function")
	}

	fromBuilder()
	tester.Pump()

	if tester.Find(ctesting.ByText("inner dismiss")).Exists() {
		t.Error("expected modal to close via the builder's dismiss")
	}
}
