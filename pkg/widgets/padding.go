package widgets

import (
	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/layout"
)

// Padding insets its child by the given edge insets.
type Padding struct {
	core.RenderObjectBase

	Padding layout.EdgeInsets
	Child   core.Widget
}

func (p Padding) ChildWidget() core.Widget {
	return p.Child
}

func (p Padding) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderPadding{padding: p.Padding}
	box.SetSelf(box)
	return box
}

func (p Padding) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderPadding); ok {
		if box.padding == p.Padding {
			return
		}
		box.padding = p.Padding
		box.MarkNeedsLayout()
	}
}

type renderPadding struct {
	layout.RenderBoxBase
	child   layout.RenderBox
	padding layout.EdgeInsets
}

func (r *renderPadding) SetChild(child layout.RenderObject) {
	r.child = layout.AsRenderBox(child)
	r.MarkNeedsLayout()
}

func (r *renderPadding) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderPadding) PerformLayout() {
	constraints := r.Constraints()

	var childSize graphics.Size
	if r.child != nil {
		r.child.Layout(constraints.Deflate(r.padding), true)
		childSize = r.child.Size()
		r.child.SetParentData(&layout.BoxParentData{
			Offset: graphics.Offset{X: r.padding.Left, Y: r.padding.Top},
		})
	}

	r.SetSize(constraints.Constrain(graphics.Size{
		Width:  childSize.Width + r.padding.Horizontal(),
		Height: childSize.Height + r.padding.Vertical(),
	}))
}

func (r *renderPadding) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, childOffset(r.child))
	}
}
