package widgets

import (
	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/layout"
)

// Text displays a string with a single style.
//
// Text measures itself against the bundled face and renders on the lines the
// content contains; wrapping at the constraint width is not modeled.
type Text struct {
	core.RenderObjectBase

	// Content is the text string to display.
	Content string
	// Style controls the font, size, color, and other text properties.
	Style graphics.TextStyle
}

// WithStyle returns a copy of the text with the specified style.
func (t Text) WithStyle(style graphics.TextStyle) Text {
	t.Style = style
	return t
}

func (t Text) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	text := &renderText{text: t.Content, style: t.Style}
	text.SetSelf(text)
	return text
}

func (t Text) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if text, ok := renderObject.(*renderText); ok {
		if text.text == t.Content && text.style == t.Style {
			return
		}
		text.text = t.Content
		text.style = t.Style
		text.MarkNeedsLayout()
		text.MarkNeedsPaint()
	}
}

type renderText struct {
	layout.RenderBoxBase
	text   string
	style  graphics.TextStyle
	layout *graphics.TextLayout
	cache  textLayoutCache
}

type textLayoutCache struct {
	text  string
	style graphics.TextStyle
}

func (r *renderText) PerformLayout() {
	constraints := r.Constraints()
	current := textLayoutCache{text: r.text, style: r.style}
	if r.layout == nil || r.cache != current {
		r.cache = current
		r.layout = graphics.LayoutText(r.text, r.style)
	}
	r.SetSize(constraints.Constrain(r.layout.Size))
}

func (r *renderText) Paint(ctx *layout.PaintContext) {
	if r.layout == nil {
		return
	}
	ctx.Canvas.DrawText(r.layout, graphics.Offset{})
}
