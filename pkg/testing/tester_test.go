package testing

import (
	"testing"

	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/widgets"
)

func TestNewComponentTester_Defaults(t *testing.T) {
	tester := NewComponentTester(t)

	if tester.size.Width != DefaultTestWidth || tester.size.Height != DefaultTestHeight {
		t.Errorf("expected default size %dx%d, got %vx%v", DefaultTestWidth, DefaultTestHeight, tester.size.Width, tester.size.Height)
	}
	if tester.theme == nil {
		t.Fatal("expected default theme to be set")
	}
}

func TestPumpWidget_MountsTree(t *testing.T) {
	tester := NewComponentTester(t)

	tester.PumpWidget(widgets.Text{Content: "hello"})

	if tester.RootElement() == nil {
		t.Fatal("expected root element after PumpWidget")
	}
	if tester.RootRenderObject() == nil {
		t.Fatal("expected root render object after PumpWidget")
	}
}

func TestPumpWidget_Remount(t *testing.T) {
	tester := NewComponentTester(t)

	tester.PumpWidget(widgets.Text{Content: "first"})
	first := tester.RootElement()

	tester.PumpWidget(widgets.Text{Content: "second"})
	second := tester.RootElement()

	if first == second {
		t.Error("expected new root element after remount")
	}
}

func TestSetSize(t *testing.T) {
	tester := NewComponentTester(t)
	tester.SetSize(graphics.Size{Width: 375, Height: 667})

	tester.PumpWidget(widgets.SizedBox{Width: 375, Height: 667})

	ro := tester.RootRenderObject()
	if ro == nil {
		t.Fatal("no render object")
	}
	size := ro.Size()
	if size.Width != 375 || size.Height != 667 {
		t.Errorf("expected size 375x667, got %vx%v", size.Width, size.Height)
	}
}

func TestRecord_CapturesPaintOps(t *testing.T) {
	tester := NewComponentTester(t)

	tester.PumpWidget(widgets.Container{
		Width:  50,
		Height: 50,
		Color:  graphics.ColorRed,
	})

	dl := tester.Record()
	if dl.Len() == 0 {
		t.Fatal("expected paint operations for a colored container")
	}
}

func TestRecord_EmptyWithoutTree(t *testing.T) {
	tester := NewComponentTester(t)

	if dl := tester.Record(); dl.Len() != 0 {
		t.Errorf("expected empty display list before mounting, got %d ops", dl.Len())
	}
}
