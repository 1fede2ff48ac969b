package widgets

import (
	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/layout"
)

// Stack layers its children on top of each other in declaration order; the
// last child paints on top. The stack fills its constraints when bounded and
// otherwise sizes to the largest child. Children receive loose constraints,
// so a child that wants to cover the stack expands itself.
type Stack struct {
	core.RenderObjectBase

	ChildrenWidgets []core.Widget
}

func (s Stack) Children() []core.Widget {
	return s.ChildrenWidgets
}

func (s Stack) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderStack{}
	box.SetSelf(box)
	return box
}

func (s Stack) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {}

type renderStack struct {
	layout.RenderBoxBase
	children []layout.RenderBox
}

func (r *renderStack) SetChildren(children []layout.RenderObject) {
	boxes := make([]layout.RenderBox, 0, len(children))
	for _, child := range children {
		if box := layout.AsRenderBox(child); box != nil {
			boxes = append(boxes, box)
		}
	}
	r.children = boxes
	r.MarkNeedsLayout()
}

func (r *renderStack) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

func (r *renderStack) PerformLayout() {
	constraints := r.Constraints()
	loose := layout.Loose(graphics.Size{
		Width:  constraints.MaxWidth,
		Height: constraints.MaxHeight,
	})

	var biggest graphics.Size
	for _, child := range r.children {
		child.Layout(loose, true)
		size := child.Size()
		if size.Width > biggest.Width {
			biggest.Width = size.Width
		}
		if size.Height > biggest.Height {
			biggest.Height = size.Height
		}
		child.SetParentData(&layout.BoxParentData{})
	}

	size := graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight}
	if !constraints.HasBoundedWidth() {
		size.Width = biggest.Width
	}
	if !constraints.HasBoundedHeight() {
		size.Height = biggest.Height
	}
	r.SetSize(constraints.Constrain(size))
}

func (r *renderStack) Paint(ctx *layout.PaintContext) {
	for _, child := range r.children {
		ctx.PaintChild(child, childOffset(child))
	}
}
