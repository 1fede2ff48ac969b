package overlay

import (
	"strings"
	"testing"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/layout"
	"github.com/go-drift/compose/pkg/theme"
	"github.com/go-drift/compose/pkg/widgets"

	ctesting "github.com/go-drift/compose/pkg/testing"
)

func TestAlertPanel_Sections(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(AlertPanel{
		Title:   widgets.Text{Content: "Delete item?"},
		Content: widgets.Text{Content: "This cannot be undone."},
		Actions: []core.Widget{
			widgets.Text{Content: "Cancel"},
			widgets.Text{Content: "Delete"},
		},
	})

	for _, text := range []string{"Delete item?", "This cannot be undone.", "Cancel", "Delete"} {
		if !tester.Find(ctesting.ByText(text)).Exists() {
			t.Errorf("expected %q in the tree", text)
		}
	}
	if !tester.Find(ctesting.ByType[widgets.Row]()).Exists() {
		t.Error("expected actions in a row")
	}

	// Actions live inside the row, title and content outside it.
	inRow := ctesting.Descendant(ctesting.ByType[widgets.Row](), ctesting.ByText("Cancel"))
	if !tester.Find(inRow).Exists() {
		t.Error("expected Cancel inside the actions row")
	}
	titleInRow := ctesting.Descendant(ctesting.ByType[widgets.Row](), ctesting.ByText("Delete item?"))
	if tester.Find(titleInRow).Exists() {
		t.Error("title should not be in the actions row")
	}
}

func TestAlertPanel_DefaultWidth(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(widgets.Center{Child: AlertPanel{
		Title: widgets.Text{Content: "Notice"},
	}})

	container := tester.Find(ctesting.ByType[widgets.Container]()).Widget().(widgets.Container)
	want := theme.DefaultPanelTheme(theme.LightColorScheme()).PanelWidth
	if container.Width != want {
		t.Errorf("panel width = %v, want %v", container.Width, want)
	}
}

func TestAlertPanel_ExplicitWidth(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(widgets.Center{Child: AlertPanel{
		Width: 360,
		Title: widgets.Text{Content: "Wide"},
	}})

	container := tester.Find(ctesting.ByType[widgets.Container]()).Widget().(widgets.Container)
	if container.Width != 360 {
		t.Errorf("panel width = %v, want 360", container.Width)
	}
}

func TestAlertPanel_OmitsMissingSections(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(AlertPanel{
		Content: widgets.Text{Content: "body only"},
	})

	if tester.Find(ctesting.ByType[widgets.Row]()).Exists() {
		t.Error("expected no actions row without actions")
	}
	column := tester.Find(ctesting.ByType[widgets.Column]()).Widget().(widgets.Column)
	if len(column.ChildrenWidgets) != 1 {
		t.Errorf("column has %d children, want 1", len(column.ChildrenWidgets))
	}
}

func TestPanel_UsesThemeChrome(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	custom := theme.PanelThemeData{
		BackgroundColor: graphics.Color(0xFF123456),
		ScrimColor:      graphics.RGBA(0, 0, 0, 0x40),
		BorderRadius:    4,
		Padding:         layout.EdgeInsetsAll(8),
		PanelWidth:      200,
	}
	data := theme.DefaultLightTheme()
	data.PanelTheme = &custom
	tester.SetTheme(data)

	tester.PumpWidget(Panel{Child: widgets.Text{Content: "themed"}})

	container := tester.Find(ctesting.ByType[widgets.Container]()).Widget().(widgets.Container)
	if container.Color != custom.BackgroundColor {
		t.Errorf("panel color = %08X, want %08X", uint32(container.Color), uint32(custom.BackgroundColor))
	}
	if container.BorderRadius != 4 {
		t.Errorf("panel radius = %v, want 4", container.BorderRadius)
	}
	if container.Padding != custom.Padding {
		t.Errorf("panel padding = %+v, want %+v", container.Padding, custom.Padding)
	}
	if container.Width != 0 {
		t.Errorf("panel width = %v, want 0 (shrink to fit)", container.Width)
	}
}

func TestBackdrop_PaintsThemeScrim(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	tester.PumpWidget(Backdrop{})

	scrim := theme.LightColorScheme().Scrim
	found := false
	for _, op := range tester.Record().Describe() {
		if strings.Contains(op, "rect") && strings.Contains(op, graphicsHex(scrim)) {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected backdrop to paint the theme scrim color")
	}

	render := tester.RootRenderObject()
	size := render.Size()
	if size.Width != ctesting.DefaultTestWidth || size.Height != ctesting.DefaultTestHeight {
		t.Errorf("backdrop size = %+v, want full surface", size)
	}
}

func TestBackdrop_ExplicitColor(t *testing.T) {
	tester := ctesting.NewComponentTester(t)

	custom := graphics.RGBA(0x20, 0x00, 0x40, 0x60)
	tester.PumpWidget(Backdrop{Color: custom})

	found := false
	for _, op := range tester.Record().Describe() {
		if strings.Contains(op, graphicsHex(custom)) {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected backdrop to paint the explicit color")
	}
}

func graphicsHex(c graphics.Color) string {
	const digits = "0123456789ABCDEF"
	out := make([]byte, 8)
	v := uint32(c)
	for i := 7; i >= 0; i-- {
		out[i] = digits[v&0xF]
		v >>= 4
	}
	return string(out)
}
