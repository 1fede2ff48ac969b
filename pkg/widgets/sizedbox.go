package widgets

import (
	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/layout"
)

// SizedBox is a box with a fixed width and/or height. A dimension of zero
// falls through to the child's size (or zero without a child). With no child
// it acts as a spacer.
type SizedBox struct {
	core.RenderObjectBase

	Width  float64
	Height float64
	Child  core.Widget
}

func (s SizedBox) ChildWidget() core.Widget {
	return s.Child
}

func (s SizedBox) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderSizedBox{width: s.Width, height: s.Height}
	box.SetSelf(box)
	return box
}

func (s SizedBox) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderSizedBox); ok {
		box.width = s.Width
		box.height = s.Height
		box.MarkNeedsLayout()
	}
}

type renderSizedBox struct {
	layout.RenderBoxBase
	child  layout.RenderBox
	width  float64
	height float64
}

func (r *renderSizedBox) SetChild(child layout.RenderObject) {
	r.child = layout.AsRenderBox(child)
	r.MarkNeedsLayout()
}

func (r *renderSizedBox) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderSizedBox) PerformLayout() {
	constraints := r.Constraints()

	childConstraints := constraints
	if r.width > 0 {
		w := constraints.Constrain(graphics.Size{Width: r.width}).Width
		childConstraints.MinWidth = w
		childConstraints.MaxWidth = w
	}
	if r.height > 0 {
		h := constraints.Constrain(graphics.Size{Height: r.height}).Height
		childConstraints.MinHeight = h
		childConstraints.MaxHeight = h
	}

	var childSize graphics.Size
	if r.child != nil {
		r.child.Layout(childConstraints, true)
		childSize = r.child.Size()
		r.child.SetParentData(&layout.BoxParentData{})
	}

	size := childSize
	if r.width > 0 {
		size.Width = r.width
	}
	if r.height > 0 {
		size.Height = r.height
	}
	r.SetSize(constraints.Constrain(size))
}

func (r *renderSizedBox) Paint(ctx *layout.PaintContext) {
	if r.child != nil {
		ctx.PaintChild(r.child, childOffset(r.child))
	}
}
