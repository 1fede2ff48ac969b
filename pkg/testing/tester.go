package testing

import (
	"testing"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/layout"
	"github.com/go-drift/compose/pkg/theme"
)

const (
	// DefaultTestWidth is the default logical width for the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default logical height for the test surface.
	DefaultTestHeight = 600
)

// ComponentTester provides isolated component testing without real rendering.
// It drives the same build, layout, and paint phases as a host runtime but
// records paint output onto a display list.
type ComponentTester struct {
	buildOwner *core.BuildOwner
	root       core.Element
	size       graphics.Size
	theme      *theme.ThemeData
	recorder   graphics.PictureRecorder
}

// NewComponentTester creates a tester with the default test surface and
// light theme. The mounted tree is unmounted via t.Cleanup.
func NewComponentTester(t *testing.T) *ComponentTester {
	tester := &ComponentTester{
		buildOwner: core.NewBuildOwner(),
		size:       graphics.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
		theme:      theme.DefaultLightTheme(),
	}
	t.Cleanup(tester.cleanup)
	return tester
}

func (t *ComponentTester) cleanup() {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}
}

// SetSize sets the logical surface size. Must be called before PumpWidget.
func (t *ComponentTester) SetSize(size graphics.Size) {
	t.size = size
}

// SetTheme replaces the theme data. Must be called before PumpWidget.
func (t *ComponentTester) SetTheme(td *theme.ThemeData) {
	t.theme = td
}

// PumpWidget mounts (or remounts) a widget and runs one full frame.
func (t *ComponentTester) PumpWidget(widget core.Widget) {
	if t.root != nil {
		t.root.Unmount()
		t.root = nil
	}

	// Wrap in the test scaffold: Theme above the widget under test.
	wrapped := theme.Theme{
		Data:  t.theme,
		Child: widget,
	}

	t.root = core.MountRoot(wrapped, t.buildOwner)

	if render := t.RootRenderObject(); render != nil {
		pipeline := t.buildOwner.Pipeline()
		pipeline.ScheduleLayout(render)
		pipeline.SchedulePaint(render)
	}

	t.Pump()
}

// Pump runs a single frame cycle: build, layout, paint.
func (t *ComponentTester) Pump() {
	t.buildOwner.FlushBuild()

	// The render root can change across rebuilds, so resolve it after the
	// build phase.
	if render := t.RootRenderObject(); render != nil {
		pipeline := t.buildOwner.Pipeline()
		pipeline.FlushLayoutForRoot(render, layout.Tight(t.size))
		pipeline.FlushPaint()
	}
}

// NeedsWork reports whether the framework has pending builds.
func (t *ComponentTester) NeedsWork() bool {
	return t.buildOwner.NeedsWork()
}

// RootElement returns the root element of the mounted tree, or nil when
// nothing is mounted.
func (t *ComponentTester) RootElement() core.Element {
	return t.root
}

// RootRenderObject returns the root render object of the mounted tree, or
// nil when the tree renders nothing.
func (t *ComponentTester) RootRenderObject() layout.RenderObject {
	return extractRenderObject(t.root)
}

// Record paints the current tree onto a fresh display list.
// The tree renders nothing when the list is empty.
func (t *ComponentTester) Record() *graphics.DisplayList {
	canvas := t.recorder.BeginRecording(t.size)
	if render := t.RootRenderObject(); render != nil {
		ctx := &layout.PaintContext{Canvas: canvas}
		render.Paint(ctx)
	}
	return t.recorder.EndRecording()
}

// Find evaluates a finder against the current element tree.
func (t *ComponentTester) Find(finder Finder) FinderResult {
	if t.root == nil {
		return FinderResult{finder: finder}
	}
	return FinderResult{
		elements: finder.Evaluate(t.root),
		finder:   finder,
	}
}

// extractRenderObject walks from an element to its render object.
func extractRenderObject(e core.Element) layout.RenderObject {
	if e == nil {
		return nil
	}
	if ro, ok := e.(interface{ RenderObject() layout.RenderObject }); ok {
		return ro.RenderObject()
	}
	return nil
}
