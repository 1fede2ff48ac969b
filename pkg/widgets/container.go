package widgets

import (
	"math"

	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/layout"
)

// Container combines common painting, positioning, and sizing operations
// into a single widget.
//
// Without explicit Width/Height, Container sizes to fit its child plus
// padding. With Width and/or Height set, Container uses those dimensions
// constrained by the parent. A non-zero BorderRadius rounds the background
// and clips the child to the rounded shape.
//
//	Container{
//	    Color:       graphics.ColorBlue,
//	    Padding:     layout.EdgeInsetsAll(16),
//	    ChildWidget: Text{Content: "Hello"},
//	}
type Container struct {
	core.RenderObjectBase

	ChildWidget  core.Widget
	Padding      layout.EdgeInsets
	Width        float64
	Height       float64
	Color        graphics.Color
	BorderRadius float64
}

// WithColor returns a copy of the container with the specified background color.
func (c Container) WithColor(color graphics.Color) Container {
	c.Color = color
	return c
}

// WithPadding returns a copy of the container with the specified padding.
func (c Container) WithPadding(padding layout.EdgeInsets) Container {
	c.Padding = padding
	return c
}

// WithSize returns a copy of the container with the specified width and height.
func (c Container) WithSize(width, height float64) Container {
	c.Width = width
	c.Height = height
	return c
}

func (c Container) Child() core.Widget {
	return c.ChildWidget
}

func (c Container) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderContainer{
		padding:      c.Padding,
		width:        c.Width,
		height:       c.Height,
		color:        c.Color,
		borderRadius: c.BorderRadius,
	}
	box.SetSelf(box)
	return box
}

func (c Container) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	if box, ok := renderObject.(*renderContainer); ok {
		box.padding = c.Padding
		box.width = c.Width
		box.height = c.Height
		box.color = c.Color
		box.borderRadius = c.BorderRadius
		box.MarkNeedsLayout()
		box.MarkNeedsPaint()
	}
}

type renderContainer struct {
	layout.RenderBoxBase
	child        layout.RenderBox
	padding      layout.EdgeInsets
	width        float64
	height       float64
	color        graphics.Color
	borderRadius float64
}

func (r *renderContainer) SetChild(child layout.RenderObject) {
	r.child = layout.AsRenderBox(child)
	r.MarkNeedsLayout()
}

func (r *renderContainer) VisitChildren(visitor func(layout.RenderObject)) {
	if r.child != nil {
		visitor(r.child)
	}
}

func (r *renderContainer) PerformLayout() {
	constraints := r.Constraints()
	childConstraints := constraints.Deflate(r.padding)
	hasWidth := r.width > 0
	hasHeight := r.height > 0
	if hasWidth {
		constrained := constraints.Constrain(graphics.Size{Width: r.width}).Width
		available := math.Max(constrained-r.padding.Horizontal(), 0)
		childConstraints.MinWidth = available
		childConstraints.MaxWidth = available
	}
	if hasHeight {
		constrained := constraints.Constrain(graphics.Size{Height: r.height}).Height
		available := math.Max(constrained-r.padding.Vertical(), 0)
		childConstraints.MinHeight = available
		childConstraints.MaxHeight = available
	}
	var childSize graphics.Size
	if r.child != nil {
		r.child.Layout(childConstraints, true) // true: we read child.Size()
		childSize = r.child.Size()
	}

	size := graphics.Size{
		Width:  childSize.Width + r.padding.Horizontal(),
		Height: childSize.Height + r.padding.Vertical(),
	}
	if hasWidth {
		size.Width = constraints.Constrain(graphics.Size{Width: r.width}).Width
	}
	if hasHeight {
		size.Height = constraints.Constrain(graphics.Size{Height: r.height}).Height
	}
	size = constraints.Constrain(size)
	r.SetSize(size)

	if r.child != nil {
		r.child.SetParentData(&layout.BoxParentData{
			Offset: graphics.Offset{X: r.padding.Left, Y: r.padding.Top},
		})
	}
}

func (r *renderContainer) Paint(ctx *layout.PaintContext) {
	rect := graphics.RectFromSize(r.Size())
	rounded := r.borderRadius > 0

	if r.color != graphics.ColorTransparent {
		paint := graphics.DefaultPaint()
		paint.Color = r.color
		if rounded {
			ctx.Canvas.DrawRRect(graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(r.borderRadius)), paint)
		} else {
			ctx.Canvas.DrawRect(rect, paint)
		}
	}
	if r.child != nil {
		if rounded {
			ctx.Canvas.Save()
			ctx.Canvas.ClipRRect(graphics.RRectFromRectAndRadius(rect, graphics.CircularRadius(r.borderRadius)))
			ctx.PaintChild(r.child, childOffset(r.child))
			ctx.Canvas.Restore()
		} else {
			ctx.PaintChild(r.child, childOffset(r.child))
		}
	}
}
