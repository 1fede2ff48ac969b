package core

import "github.com/go-drift/compose/pkg/layout"

// RenderObjectWidget describes a widget backed directly by a render object.
type RenderObjectWidget interface {
	Widget

	// CreateRenderObject builds the render object for this widget.
	CreateRenderObject(ctx BuildContext) layout.RenderObject

	// UpdateRenderObject copies the widget's configuration onto an existing
	// render object after the widget at this location was replaced.
	UpdateRenderObject(ctx BuildContext, renderObject layout.RenderObject)
}

// StatelessBase supplies CreateElement and a nil key for stateless widgets.
// Embed it and implement Build.
type StatelessBase struct{}

func (StatelessBase) CreateElement() Element {
	return NewStatelessElement()
}

func (StatelessBase) Key() any { return nil }

// StatefulBase supplies CreateElement and a nil key for stateful widgets.
// Embed it and implement CreateState.
type StatefulBase struct{}

func (StatefulBase) CreateElement() Element {
	return NewStatefulElement()
}

func (StatefulBase) Key() any { return nil }

// InheritedBase supplies CreateElement and a nil key for inherited widgets.
// Embed it and implement ChildWidget and UpdateShouldNotify.
type InheritedBase struct{}

func (InheritedBase) CreateElement() Element {
	return NewInheritedElement()
}

func (InheritedBase) Key() any { return nil }

// RenderObjectBase supplies CreateElement and a nil key for render object
// widgets. Embed it and implement CreateRenderObject and UpdateRenderObject.
type RenderObjectBase struct{}

func (RenderObjectBase) CreateElement() Element {
	return NewRenderObjectElement()
}

func (RenderObjectBase) Key() any { return nil }
