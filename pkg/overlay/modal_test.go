package overlay

import (
	"strings"
	"testing"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/errors"
	"github.com/go-drift/compose/pkg/widgets"

	ctesting "github.com/go-drift/compose/pkg/testing"
)

// modalHost flips Modal.Visible through SetState so toggle tests exercise
// the real rebuild path instead of remounting.
type modalHost struct {
	core.StatefulBase

	Visible bool
	Content core.WidgetBuilder
}

func (h modalHost) CreateState() core.State {
	return &modalHostState{}
}

type modalHostState struct {
	core.StateBase
	visible bool
	content core.WidgetBuilder
}

func (s *modalHostState) InitState() {
	widget := s.Element().Widget().(modalHost)
	s.visible = widget.Visible
	s.content = widget.Content
}

func (s *modalHostState) Build(ctx core.BuildContext) core.Widget {
	return Modal{Visible: s.visible, Content: s.content}
}

func (s *modalHostState) setVisible(visible bool) {
	s.SetState(func() { s.visible = visible })
}

func hostState(t *testing.T, tester *ctesting.ComponentTester) *modalHostState {
	t.Helper()
	element := tester.Find(ctesting.ByType[modalHost]()).First()
	stateful, ok := element.(*core.StatefulElement)
	if !ok {
		t.Fatalf("expected StatefulElement, got %T", element)
	}
	return stateful.State().(*modalHostState)
}

// TestModal_HiddenNeverInvokesContent verifies that a hidden modal builds
// nothing and the content builder is never called.
func TestModal_HiddenNeverInvokesContent(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	builds := 0
	tester.PumpWidget(Modal{
		Visible: false,
		Content: func(ctx core.BuildContext) core.Widget {
			builds++
			return widgets.Text{Content: "hidden"}
		},
	})

	if builds != 0 {
		t.Errorf("content built %d times, want 0", builds)
	}
	if tester.Find(ctesting.ByType[Backdrop]()).Exists() {
		t.Error("hidden modal should not build a backdrop")
	}
	if tester.Find(ctesting.ByType[Panel]()).Exists() {
		t.Error("hidden modal should not build a panel")
	}
	if ops := tester.Record(); ops.Len() != 0 {
		t.Errorf("hidden modal painted %d ops, want 0", ops.Len())
	}
}

// TestModal_VisibleInvokesContentOnce verifies that a visible modal builds
// the frame and invokes the content builder exactly once.
func TestModal_VisibleInvokesContentOnce(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	builds := 0
	tester.PumpWidget(Modal{
		Visible: true,
		Content: func(ctx core.BuildContext) core.Widget {
			builds++
			return widgets.Text{Content: "shown"}
		},
	})

	if builds != 1 {
		t.Errorf("content built %d times, want 1", builds)
	}
	if !tester.Find(ctesting.ByType[Backdrop]()).Exists() {
		t.Error("expected a backdrop")
	}
	if panels := tester.Find(ctesting.ByType[Panel]()); panels.Count() != 1 {
		t.Errorf("found %d panels, want 1", panels.Count())
	}
	if !tester.Find(ctesting.ByText("shown")).Exists() {
		t.Error("expected content inside the panel")
	}
}

// TestModal_ContentInsidePanel verifies that the content is spliced into the
// panel region, not rendered as a sibling.
func TestModal_ContentInsidePanel(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(Modal{
		Visible: true,
		Content: func(ctx core.BuildContext) core.Widget {
			return widgets.Text{Content: "body"}
		},
	})

	inPanel := ctesting.Descendant(ctesting.ByType[Panel](), ctesting.ByText("body"))
	if !tester.Find(inPanel).Exists() {
		t.Error("expected content to be a descendant of the panel")
	}
}

// TestModal_IdempotentAcrossBuilds verifies that building twice with the
// same inputs produces structurally identical output.
func TestModal_IdempotentAcrossBuilds(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	content := func(ctx core.BuildContext) core.Widget {
		return widgets.Text{Content: "stable"}
	}

	tester.PumpWidget(Modal{Visible: true, Content: content})
	first := tester.CaptureSnapshot()

	tester.PumpWidget(Modal{Visible: true, Content: content})
	second := tester.CaptureSnapshot()

	if diff := second.Diff(first); diff != "" {
		t.Errorf("renders differ:\n%s", diff)
	}
}

// TestModal_ToggleRemovesFrame verifies that flipping Visible from true to
// false removes the frame entirely, leaving no residual output.
func TestModal_ToggleRemovesFrame(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(modalHost{
		Visible: true,
		Content: func(ctx core.BuildContext) core.Widget {
			return widgets.Text{Content: "going"}
		},
	})

	if !tester.Find(ctesting.ByText("going")).Exists() {
		t.Fatal("expected modal content before toggle")
	}

	hostState(t, tester).setVisible(false)
	tester.Pump()

	if tester.Find(ctesting.ByType[Panel]()).Exists() {
		t.Error("expected panel to be removed after toggle")
	}
	if tester.Find(ctesting.ByType[Backdrop]()).Exists() {
		t.Error("expected backdrop to be removed after toggle")
	}
	if ops := tester.Record(); ops.Len() != 0 {
		t.Errorf("toggled-off modal painted %d ops, want 0", ops.Len())
	}
}

// TestModal_ToggleBackOnRebuildsContent verifies that content reappears
// (and is rebuilt) after toggling visibility back on.
func TestModal_ToggleBackOnRebuildsContent(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	builds := 0
	tester.PumpWidget(modalHost{
		Visible: false,
		Content: func(ctx core.BuildContext) core.Widget {
			builds++
			return widgets.Text{Content: "back"}
		},
	})

	if builds != 0 {
		t.Fatalf("content built %d times while hidden, want 0", builds)
	}

	state := hostState(t, tester)
	state.setVisible(true)
	tester.Pump()

	if builds != 1 {
		t.Errorf("content built %d times after showing, want 1", builds)
	}
	if !tester.Find(ctesting.ByText("back")).Exists() {
		t.Error("expected content after showing")
	}
}

// TestModal_HelloScenario verifies the literal-text case: a visible modal
// around textContent("Hello") paints a frame containing "Hello".
func TestModal_HelloScenario(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(Modal{
		Visible: true,
		Content: func(ctx core.BuildContext) core.Widget {
			return widgets.Text{Content: "Hello"}
		},
	})

	if !tester.Find(ctesting.ByText("Hello")).Exists() {
		t.Fatal("expected Hello in the tree")
	}

	painted := false
	for _, op := range tester.Record().Describe() {
		if strings.HasPrefix(op, `text "Hello"`) {
			painted = true
			break
		}
	}
	if !painted {
		t.Error("expected Hello to be painted")
	}
}

// TestModal_Nested verifies that a modal whose content is itself a visible
// modal produces a frame within a frame.
func TestModal_Nested(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(Modal{
		Visible: true,
		Content: func(ctx core.BuildContext) core.Widget {
			return Modal{
				Visible: true,
				Content: func(ctx core.BuildContext) core.Widget {
					return widgets.Text{Content: "Inner"}
				},
			}
		},
	})

	if panels := tester.Find(ctesting.ByType[Panel]()); panels.Count() != 2 {
		t.Errorf("found %d panels, want 2", panels.Count())
	}
	inner := ctesting.Descendant(ctesting.ByType[Panel](), ctesting.ByText("Inner"))
	if !tester.Find(inner).Exists() {
		t.Error("expected Inner inside the nested panel")
	}
}

// buildErrorCapture records build errors reported during a test.
type buildErrorCapture struct {
	buildErrors []*errors.BuildError
}

func (c *buildErrorCapture) HandleError(err *errors.ComposeError) {}
func (c *buildErrorCapture) HandlePanic(err *errors.PanicError)   {}
func (c *buildErrorCapture) HandleBuildError(err *errors.BuildError) {
	c.buildErrors = append(c.buildErrors, err)
}

// TestModal_VisibleWithoutContentReportsBuildError verifies that a visible
// modal with nil content panics in Build, and that the panic is recovered
// and reported instead of crashing the frame.
func TestModal_VisibleWithoutContentReportsBuildError(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	capture := &buildErrorCapture{}
	errors.SetHandler(capture)
	defer errors.SetHandler(nil)

	tester.PumpWidget(Modal{Visible: true})

	if len(capture.buildErrors) != 1 {
		t.Fatalf("reported %d build errors, want 1", len(capture.buildErrors))
	}
	reported := capture.buildErrors[0]
	if !strings.Contains(reported.Error(), "Content is nil") {
		t.Errorf("unexpected build error: %v", reported)
	}

	// The frame survives: the element stays mounted and renders nothing.
	if tester.Find(ctesting.ByType[Panel]()).Exists() {
		t.Error("expected no panel after a failed build")
	}
	if ops := tester.Record(); ops.Len() != 0 {
		t.Errorf("failed build painted %d ops, want 0", ops.Len())
	}
}
