package overlay

import (
	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/layout"
	"github.com/go-drift/compose/pkg/theme"
)

// Backdrop fills all available space with a scrim color, dimming whatever
// renders behind it. When Color is zero the theme's panel scrim is used;
// set an explicit color (including graphics.ColorTransparent) to override.
type Backdrop struct {
	core.StatelessBase

	Color graphics.Color
}

func (b Backdrop) Build(ctx core.BuildContext) core.Widget {
	color := b.Color
	if color == 0 {
		color = theme.ThemeOf(ctx).PanelThemeOf().ScrimColor
	}
	return backdropRender{color: color}
}

// backdropRender is the render widget behind Backdrop: a rectangle that
// expands to its constraints.
type backdropRender struct {
	core.RenderObjectBase

	color graphics.Color
}

func (b backdropRender) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	r := &renderBackdrop{color: b.color}
	r.SetSelf(r)
	return r
}

func (b backdropRender) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if r, ok := renderObject.(*renderBackdrop); ok && r.color != b.color {
		r.color = b.color
		r.MarkNeedsPaint()
	}
}

type renderBackdrop struct {
	layout.RenderBoxBase
	color graphics.Color
}

func (r *renderBackdrop) PerformLayout() {
	constraints := r.Constraints()
	r.SetSize(graphics.Size{
		Width:  constraints.MaxWidth,
		Height: constraints.MaxHeight,
	})
}

func (r *renderBackdrop) Paint(ctx *layout.PaintContext) {
	if r.color.IsTransparent() {
		return
	}
	size := r.Size()
	paint := graphics.DefaultPaint()
	paint.Color = r.color
	ctx.Canvas.DrawRect(graphics.RectFromLTWH(0, 0, size.Width, size.Height), paint)
}
