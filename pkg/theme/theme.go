package theme

import (
	"reflect"

	"github.com/go-drift/compose/pkg/core"
)

// Theme provides ThemeData to descendants via an inherited widget.
// Descendants read it with [ThemeOf] and rebuild when the data changes.
type Theme struct {
	core.InheritedBase

	Data  *ThemeData
	Child core.Widget
}

func (t Theme) ChildWidget() core.Widget {
	return t.Child
}

// UpdateShouldNotify returns true if the theme data has changed.
func (t Theme) UpdateShouldNotify(oldWidget core.InheritedWidget) bool {
	old, ok := oldWidget.(Theme)
	if !ok {
		return true
	}
	if t.Data == nil || old.Data == nil {
		return t.Data != old.Data
	}
	return *t.Data != *old.Data
}

var themeType = reflect.TypeOf(Theme{})

// Cached default to avoid repeated allocations when no Theme is found.
var defaultThemeData = DefaultLightTheme()

// ThemeOf returns the nearest ThemeData and registers the calling location
// as a dependent. Returns a cached light default when no Theme ancestor
// exists or its Data is nil.
func ThemeOf(ctx core.BuildContext) *ThemeData {
	inherited := ctx.DependOnInherited(themeType)
	if inherited == nil {
		return defaultThemeData
	}
	if t, ok := inherited.(Theme); ok && t.Data != nil {
		return t.Data
	}
	return defaultThemeData
}

// ThemeMaybeOf returns the nearest ThemeData, or nil if not found.
func ThemeMaybeOf(ctx core.BuildContext) *ThemeData {
	inherited := ctx.DependOnInherited(themeType)
	if inherited == nil {
		return nil
	}
	if t, ok := inherited.(Theme); ok && t.Data != nil {
		return t.Data
	}
	return nil
}
