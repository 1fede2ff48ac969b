package widgets

import (
	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/layout"
)

// Center expands to fill its constraints and centers its child within them.
type Center struct {
	core.RenderObjectBase

	Child core.Widget
}

func (c Center) ChildWidget() core.Widget {
	return c.Child
}

func (c Center) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderCenter{}
	box.SetSelf(box)
	return box
}

func (c Center) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderCenter struct {
	layout.RenderBoxBase
	child layout.RenderBox
}

func (r *renderCenter) SetChild(child layout.RenderObject) {
	r.child = layout.AsRenderBox(child)
	r.MarkNeedsLayout()
}

func (r *renderCenter) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderCenter) PerformLayout() {
	constraints := r.Constraints()

	var childSize graphics.Size
	if r.child != nil {
		r.child.Layout(layout.Loose(graphics.Size{
			Width:  constraints.MaxWidth,
			Height: constraints.MaxHeight,
		}), true)
		childSize = r.child.Size()
	}

	size := constraints.Constrain(graphics.Size{
		Width:  constraints.MaxWidth,
		Height: constraints.MaxHeight,
	})
	// Unbounded axes collapse to the child's size.
	if !constraints.HasBoundedWidth() {
		size.Width = childSize.Width
	}
	if !constraints.HasBoundedHeight() {
		size.Height = childSize.Height
	}
	r.SetSize(size)

	if r.child != nil {
		r.child.SetParentData(&layout.BoxParentData{
			Offset: graphics.Offset{
				X: (size.Width - childSize.Width) * 0.5,
				Y: (size.Height - childSize.Height) * 0.5,
			},
		})
	}
}

func (r *renderCenter) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, childOffset(r.child))
	}
}
