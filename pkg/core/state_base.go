package core

// StateBase provides the plumbing shared by all State implementations.
// Embed it in a state struct and override the lifecycle methods you need;
// the zero value of every hook is a no-op.
type StateBase struct {
	element   *StatefulElement
	disposers []func()
	disposed  bool
}

func (s *StateBase) setElement(element *StatefulElement) {
	s.element = element
}

// Element returns the element hosting this state, or nil before mounting.
func (s *StateBase) Element() *StatefulElement {
	return s.element
}

// Context returns the BuildContext for this state's location.
func (s *StateBase) Context() BuildContext {
	if s.element == nil {
		return nil
	}
	return s.element.self
}

// SetState applies a mutation and schedules a rebuild. The mutation runs
// synchronously; the rebuild happens at the next flush.
func (s *StateBase) SetState(fn func()) {
	if fn != nil {
		fn()
	}
	if s.element != nil && !s.disposed {
		s.element.MarkNeedsBuild()
	}
}

// OnDispose registers a cleanup function to run when the state is disposed.
// Disposers run in reverse registration order.
func (s *StateBase) OnDispose(fn func()) {
	if fn != nil {
		s.disposers = append(s.disposers, fn)
	}
}

// RunDisposers runs and clears the registered cleanup functions. States that
// override Dispose must call this (or StateBase.Dispose) themselves.
func (s *StateBase) RunDisposers() {
	for i := len(s.disposers) - 1; i >= 0; i-- {
		s.disposers[i]()
	}
	s.disposers = nil
}

// IsDisposed reports whether Dispose has run.
func (s *StateBase) IsDisposed() bool {
	return s.disposed
}

func (s *StateBase) InitState()                       {}
func (s *StateBase) DidUpdateWidget(_ StatefulWidget) {}
func (s *StateBase) DidChangeDependencies()           {}

func (s *StateBase) Dispose() {
	if s.disposed {
		return
	}
	s.disposed = true
	s.RunDisposers()
}
