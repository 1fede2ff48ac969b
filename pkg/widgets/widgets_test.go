package widgets_test

import (
	"strings"
	"testing"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/layout"
	"github.com/go-drift/compose/pkg/widgets"

	ctesting "github.com/go-drift/compose/pkg/testing"
)

func renderOf(t *testing.T, tester *ctesting.ComponentTester, finder ctesting.Finder) layout.RenderObject {
	t.Helper()
	ro := tester.Find(finder).RenderObject()
	if ro == nil {
		t.Fatalf("no render object for %s", finder.Description())
	}
	return ro
}

func offsetOf(ro layout.RenderObject) graphics.Offset {
	if data, ok := ro.ParentData().(*layout.BoxParentData); ok {
		return data.Offset
	}
	return graphics.Offset{}
}

func TestSizedBox_FixedSize(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(widgets.Center{Child: widgets.SizedBox{Width: 120, Height: 80}})

	size := renderOf(t, tester, ctesting.ByType[widgets.SizedBox]()).Size()
	if size.Width != 120 || size.Height != 80 {
		t.Errorf("size = %vx%v, want 120x80", size.Width, size.Height)
	}
}

func TestCenter_CentersChild(t *testing.T) {
	tester := ctesting.NewComponentTester(t)
	tester.SetSize(graphics.Size{Width: 400, Height: 300})

	tester.PumpWidget(widgets.Center{Child: widgets.SizedBox{Width: 100, Height: 50}})

	child := renderOf(t, tester, ctesting.ByType[widgets.SizedBox]())
	offset := offsetOf(child)
	if offset.X != 150 || offset.Y != 125 {
		t.Errorf("child offset = %v,%v, want 150,125", offset.X, offset.Y)
	}

	center := renderOf(t, tester, ctesting.ByType[widgets.Center]())
	if size := center.Size(); size.Width != 400 || size.Height != 300 {
		t.Errorf("center fills constraints, got %vx%v", size.Width, size.Height)
	}
}

func TestContainer_PadsChild(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(widgets.Center{Child: widgets.Container{
		Padding:     layout.EdgeInsetsAll(10),
		ChildWidget: widgets.SizedBox{Width: 40, Height: 20},
	}})

	container := renderOf(t, tester, ctesting.ByType[widgets.Container]())
	if size := container.Size(); size.Width != 60 || size.Height != 40 {
		t.Errorf("container size = %vx%v, want 60x40", size.Width, size.Height)
	}

	child := renderOf(t, tester, ctesting.ByType[widgets.SizedBox]())
	if offset := offsetOf(child); offset.X != 10 || offset.Y != 10 {
		t.Errorf("child offset = %v,%v, want 10,10", offset.X, offset.Y)
	}
}

func TestContainer_PaintsRoundedBackground(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(widgets.Center{Child: widgets.Container{
		Width:        50,
		Height:       30,
		Color:        graphics.ColorRed,
		BorderRadius: 8,
	}})

	var sawRRect bool
	for _, op := range tester.Record().Describe() {
		if strings.HasPrefix(op, "rrect") && strings.Contains(op, "r=8.0") {
			sawRRect = true
			break
		}
	}
	if !sawRRect {
		t.Error("expected a rounded rect paint op")
	}
}

func TestColumn_StacksChildrenVertically(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(widgets.Center{Child: widgets.Column{
		MainAxisSize: widgets.MainAxisSizeMin,
		ChildrenWidgets: []core.Widget{
			widgets.SizedBox{Width: 30, Height: 10},
			widgets.SizedBox{Width: 30, Height: 20},
		},
	}})

	column := renderOf(t, tester, ctesting.ByType[widgets.Column]())
	if size := column.Size(); size.Height != 30 {
		t.Errorf("column height = %v, want 30", size.Height)
	}

	boxes := tester.Find(ctesting.ByType[widgets.SizedBox]()).All()
	if len(boxes) != 2 {
		t.Fatalf("found %d boxes, want 2", len(boxes))
	}
	secondRO := boxes[1].(interface {
		RenderObject() layout.RenderObject
	}).RenderObject()
	if offset := offsetOf(secondRO); offset.Y != 10 {
		t.Errorf("second child Y = %v, want 10", offset.Y)
	}
}

func TestRow_AlignsEnd(t *testing.T) {
	tester := ctesting.NewComponentTester(t)
	tester.SetSize(graphics.Size{Width: 200, Height: 100})

	tester.PumpWidget(widgets.Row{
		MainAxisSize:  widgets.MainAxisSizeMax,
		MainAlignment: widgets.MainAxisAlignmentEnd,
		ChildrenWidgets: []core.Widget{
			widgets.SizedBox{Width: 40, Height: 10},
		},
	})

	child := renderOf(t, tester, ctesting.ByType[widgets.SizedBox]())
	if offset := offsetOf(child); offset.X != 160 {
		t.Errorf("end-aligned child X = %v, want 160", offset.X)
	}
}

func TestStack_LastChildPaintsOnTop(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(widgets.Stack{
		ChildrenWidgets: []core.Widget{
			widgets.Container{Width: 100, Height: 100, Color: graphics.ColorBlue},
			widgets.Container{Width: 50, Height: 50, Color: graphics.ColorRed},
		},
	})

	var blueIndex, redIndex = -1, -1
	for i, op := range tester.Record().Describe() {
		if strings.Contains(op, "FF0000FF") && blueIndex < 0 {
			blueIndex = i
		}
		if strings.Contains(op, "FFFF0000") && redIndex < 0 {
			redIndex = i
		}
	}
	if blueIndex < 0 || redIndex < 0 {
		t.Fatal("expected both containers to paint")
	}
	if redIndex < blueIndex {
		t.Error("expected the later child to paint on top")
	}
}

func TestText_MeasuresContent(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(widgets.Center{Child: widgets.Text{Content: "measure me"}})

	size := renderOf(t, tester, ctesting.ByType[widgets.Text]()).Size()
	if size.Width <= 0 || size.Height <= 0 {
		t.Errorf("text size = %vx%v, want positive", size.Width, size.Height)
	}

	tester.PumpWidget(widgets.Center{Child: widgets.Text{Content: "one\ntwo\nthree"}})
	multi := renderOf(t, tester, ctesting.ByType[widgets.Text]()).Size()
	if multi.Height <= size.Height {
		t.Errorf("three lines (%v) should be taller than one (%v)", multi.Height, size.Height)
	}
}

func TestPadding_InsetsChild(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(widgets.Center{Child: widgets.PaddingSym(12, 6, widgets.SizedBox{Width: 20, Height: 20})})

	child := renderOf(t, tester, ctesting.ByType[widgets.SizedBox]())
	if offset := offsetOf(child); offset.X != 12 || offset.Y != 6 {
		t.Errorf("child offset = %v,%v, want 12,6", offset.X, offset.Y)
	}
}
