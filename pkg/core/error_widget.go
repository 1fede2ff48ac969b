package core

import "github.com/go-drift/compose/pkg/errors"

// ErrorWidgetBuilder produces the widget shown in place of a subtree whose
// build panicked. Returning nil falls back to an empty placeholder.
type ErrorWidgetBuilder func(err *errors.BuildError) Widget

var errorWidgetBuilder ErrorWidgetBuilder

// SetErrorWidgetBuilder installs a global builder for build-failure
// placeholders. Pass nil to restore the default (render nothing).
func SetErrorWidgetBuilder(builder ErrorWidgetBuilder) {
	errorWidgetBuilder = builder
}

// GetErrorWidgetBuilder returns the installed builder, or nil.
func GetErrorWidgetBuilder() ErrorWidgetBuilder {
	return errorWidgetBuilder
}

// errorPlaceholder occupies a failed subtree's location without rendering
// anything, keeping the rest of the tree alive.
type errorPlaceholder struct {
	StatelessBase
	err *errors.BuildError
}

func (errorPlaceholder) Build(_ BuildContext) Widget {
	return nil
}
