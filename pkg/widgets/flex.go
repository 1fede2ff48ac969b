package widgets

import (
	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/layout"
)

// Axis is the direction of a flex layout.
type Axis int

const (
	AxisVertical Axis = iota
	AxisHorizontal
)

// MainAxisSize controls how much main-axis space a flex takes.
type MainAxisSize int

const (
	// MainAxisSizeMax fills the incoming main-axis constraint.
	MainAxisSizeMax MainAxisSize = iota
	// MainAxisSizeMin shrinks to the children's combined size.
	MainAxisSizeMin
)

// MainAxisAlignment positions children along the main axis.
type MainAxisAlignment int

const (
	MainAxisAlignmentStart MainAxisAlignment = iota
	MainAxisAlignmentCenter
	MainAxisAlignmentEnd
)

// CrossAxisAlignment positions children along the cross axis.
type CrossAxisAlignment int

const (
	CrossAxisAlignmentStart CrossAxisAlignment = iota
	CrossAxisAlignmentCenter
	CrossAxisAlignmentEnd
	CrossAxisAlignmentStretch
)

// Column lays out its children vertically.
type Column struct {
	core.RenderObjectBase

	ChildrenWidgets []core.Widget
	MainAxisSize    MainAxisSize
	MainAlignment   MainAxisAlignment
	CrossAlignment  CrossAxisAlignment
}

func (c Column) Children() []core.Widget {
	return c.ChildrenWidgets
}

func (c Column) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderFlex{
		direction:      AxisVertical,
		mainSize:       c.MainAxisSize,
		mainAlignment:  c.MainAlignment,
		crossAlignment: c.CrossAlignment,
	}
	box.SetSelf(box)
	return box
}

func (c Column) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	updateRenderFlex(renderObject, AxisVertical, c.MainAxisSize, c.MainAlignment, c.CrossAlignment)
}

// Row lays out its children horizontally.
type Row struct {
	core.RenderObjectBase

	ChildrenWidgets []core.Widget
	MainAxisSize    MainAxisSize
	MainAlignment   MainAxisAlignment
	CrossAlignment  CrossAxisAlignment
}

func (r Row) Children() []core.Widget {
	return r.ChildrenWidgets
}

func (r Row) CreateRenderObject(ctx core.BuildContext) layout.RenderObject {
	box := &renderFlex{
		direction:      AxisHorizontal,
		mainSize:       r.MainAxisSize,
		mainAlignment:  r.MainAlignment,
		crossAlignment: r.CrossAlignment,
	}
	box.SetSelf(box)
	return box
}

func (r Row) UpdateRenderObject(ctx core.BuildContext, renderObject layout.RenderObject) {
	updateRenderFlex(renderObject, AxisHorizontal, r.MainAxisSize, r.MainAlignment, r.CrossAlignment)
}

func updateRenderFlex(renderObject layout.RenderObject, direction Axis, mainSize MainAxisSize, mainAlignment MainAxisAlignment, crossAlignment CrossAxisAlignment) {
	if flex, ok := renderObject.(*renderFlex); ok {
		flex.direction = direction
		flex.mainSize = mainSize
		flex.mainAlignment = mainAlignment
		flex.crossAlignment = crossAlignment
		flex.MarkNeedsLayout()
	}
}

type renderFlex struct {
	layout.RenderBoxBase
	children       []layout.RenderBox
	direction      Axis
	mainSize       MainAxisSize
	mainAlignment  MainAxisAlignment
	crossAlignment CrossAxisAlignment
}

func (r *renderFlex) SetChildren(children []layout.RenderObject) {
	boxes := make([]layout.RenderBox, 0, len(children))
	for _, child := range children {
		if box := layout.AsRenderBox(child); box != nil {
			boxes = append(boxes, box)
		}
	}
	r.children = boxes
	r.MarkNeedsLayout()
}

func (r *renderFlex) VisitChildren(visitor func(layout.RenderObject)) {
	for _, child := range r.children {
		visitor(child)
	}
}

func (r *renderFlex) mainAxis(size graphics.Size) float64 {
	if r.direction == AxisHorizontal {
		return size.Width
	}
	return size.Height
}

func (r *renderFlex) crossAxis(size graphics.Size) float64 {
	if r.direction == AxisHorizontal {
		return size.Height
	}
	return size.Width
}

func (r *renderFlex) childConstraints(constraints layout.Constraints) layout.Constraints {
	maxCross := r.crossAxis(graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight})
	minCross := 0.0
	if r.crossAlignment == CrossAxisAlignmentStretch {
		minCross = maxCross
	}
	if r.direction == AxisHorizontal {
		return layout.Constraints{
			MaxWidth:  constraints.MaxWidth,
			MinHeight: minCross,
			MaxHeight: maxCross,
		}
	}
	return layout.Constraints{
		MinWidth:  minCross,
		MaxWidth:  maxCross,
		MaxHeight: constraints.MaxHeight,
	}
}

func (r *renderFlex) PerformLayout() {
	constraints := r.Constraints()
	childConstraints := r.childConstraints(constraints)

	totalMain := 0.0
	maxCross := 0.0
	for _, child := range r.children {
		child.Layout(childConstraints, true)
		size := child.Size()
		totalMain += r.mainAxis(size)
		if cross := r.crossAxis(size); cross > maxCross {
			maxCross = cross
		}
	}

	mainLimit := r.mainAxis(graphics.Size{Width: constraints.MaxWidth, Height: constraints.MaxHeight})
	mainExtent := totalMain
	if r.mainSize == MainAxisSizeMax && mainLimit > mainExtent {
		mainExtent = mainLimit
	}

	var size graphics.Size
	if r.direction == AxisHorizontal {
		size = graphics.Size{Width: mainExtent, Height: maxCross}
	} else {
		size = graphics.Size{Width: maxCross, Height: mainExtent}
	}
	size = constraints.Constrain(size)
	r.SetSize(size)

	free := r.mainAxis(size) - totalMain
	cursor := 0.0
	switch r.mainAlignment {
	case MainAxisAlignmentCenter:
		cursor = free * 0.5
	case MainAxisAlignmentEnd:
		cursor = free
	}

	for _, child := range r.children {
		childSize := child.Size()
		crossOffset := 0.0
		if crossFree := r.crossAxis(size) - r.crossAxis(childSize); crossFree > 0 {
			switch r.crossAlignment {
			case CrossAxisAlignmentCenter:
				crossOffset = crossFree * 0.5
			case CrossAxisAlignmentEnd:
				crossOffset = crossFree
			}
		}

		var offset graphics.Offset
		if r.direction == AxisHorizontal {
			offset = graphics.Offset{X: cursor, Y: crossOffset}
		} else {
			offset = graphics.Offset{X: crossOffset, Y: cursor}
		}
		child.SetParentData(&layout.BoxParentData{Offset: offset})
		cursor += r.mainAxis(childSize)
	}
}

func (r *renderFlex) Paint(ctx *layout.PaintContext) {
	for _, child := range r.children {
		ctx.PaintChild(child, childOffset(child))
	}
}
