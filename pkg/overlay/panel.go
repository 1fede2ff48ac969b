package overlay

import (
	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/theme"
	"github.com/go-drift/compose/pkg/widgets"
)

// Panel provides themed frame chrome for floating content.
//
// It reads styling from [theme.PanelThemeData] (via [theme.ThemeData.PanelThemeOf])
// and renders a [widgets.Container] with the panel surface color, border
// radius, and padding. The default theme uses the scheme's Surface color,
// a 12px radius, and 24px padding on all sides.
//
// Set Width to constrain the panel to an explicit width. When Width is zero
// the panel shrinks to fit its content. For the standard fixed-width
// title/content/actions layout, use [AlertPanel] instead.
type Panel struct {
	core.StatelessBase

	// Child is the panel content widget.
	Child core.Widget
	// Width constrains the panel to an explicit width in pixels.
	// Zero means the panel shrinks to fit its content.
	Width float64
}

func (p Panel) Build(ctx core.BuildContext) core.Widget {
	pt := theme.ThemeOf(ctx).PanelThemeOf()

	c := widgets.Container{
		ChildWidget:  p.Child,
		Color:        pt.BackgroundColor,
		BorderRadius: pt.BorderRadius,
		Padding:      pt.Padding,
	}
	if p.Width > 0 {
		c.Width = p.Width
	}
	return c
}
