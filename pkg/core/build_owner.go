package core

import (
	"sort"

	"github.com/go-drift/compose/pkg/layout"
)

// BuildOwner tracks elements that need rebuilding and drives the build phase
// of a frame. It owns the PipelineOwner so that rebuilt render objects land
// in the same frame's layout and paint passes.
type BuildOwner struct {
	dirty    []Element
	inDirty  map[Element]struct{}
	pipeline *layout.PipelineOwner
	building bool

	// OnNeedsFrame, when set, is called the first time work is scheduled
	// after a flush. Embedders use it to request a new frame.
	OnNeedsFrame func()
}

// NewBuildOwner creates a build owner with a fresh pipeline.
func NewBuildOwner() *BuildOwner {
	return &BuildOwner{
		inDirty:  make(map[Element]struct{}),
		pipeline: layout.NewPipelineOwner(),
	}
}

// Pipeline returns the layout/paint pipeline associated with this owner.
func (o *BuildOwner) Pipeline() *layout.PipelineOwner {
	return o.pipeline
}

// ScheduleBuild registers an element for rebuilding during the next flush.
func (o *BuildOwner) ScheduleBuild(element Element) {
	if element == nil {
		return
	}
	if _, scheduled := o.inDirty[element]; scheduled {
		return
	}
	wasIdle := len(o.dirty) == 0
	o.inDirty[element] = struct{}{}
	o.dirty = append(o.dirty, element)
	if wasIdle && !o.building && o.OnNeedsFrame != nil {
		o.OnNeedsFrame()
	}
}

// NeedsWork reports whether any element is waiting to be rebuilt.
func (o *BuildOwner) NeedsWork() bool {
	return len(o.dirty) > 0
}

// FlushBuild rebuilds all dirty elements in depth order, shallowest first,
// so a parent rebuild that reconciles a child away never leaves the child
// rebuilding against a dead location. Elements dirtied during the flush are
// picked up in the same flush.
func (o *BuildOwner) FlushBuild() {
	o.building = true
	defer func() { o.building = false }()

	for len(o.dirty) > 0 {
		batch := o.dirty
		o.dirty = nil
		o.inDirty = make(map[Element]struct{})

		sort.SliceStable(batch, func(i, j int) bool {
			return batch[i].Depth() < batch[j].Depth()
		})
		for _, element := range batch {
			element.RebuildIfNeeded()
		}
	}
}
