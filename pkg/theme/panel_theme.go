package theme

import (
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/layout"
)

// PanelThemeData defines default styling for [overlay.Panel], [overlay.Modal]
// and [overlay.AlertPanel] widgets.
//
// Override individual fields by setting PanelTheme on [ThemeData]:
//
//	custom := theme.PanelThemeData{
//	    BackgroundColor: colors.Surface,
//	    BorderRadius:    16,
//	    Padding:         layout.EdgeInsetsAll(16),
//	}
//	themeData.PanelTheme = &custom
type PanelThemeData struct {
	// BackgroundColor is the panel surface color.
	// Default: ColorScheme.Surface.
	BackgroundColor graphics.Color
	// ScrimColor is the backdrop color drawn behind the panel.
	// Default: ColorScheme.Scrim.
	ScrimColor graphics.Color
	// BorderRadius is the corner radius in pixels. Default: 12.
	BorderRadius float64
	// Padding is the inner padding applied to the panel container.
	// Default: 24px on all sides.
	Padding layout.EdgeInsets
	// TitleContentSpacing is the vertical gap between title and content
	// in [overlay.AlertPanel]. Default: 16.
	TitleContentSpacing float64
	// ContentActionsSpacing is the vertical gap above the actions row
	// in [overlay.AlertPanel]. Default: 24.
	ContentActionsSpacing float64
	// ActionSpacing is the horizontal gap between action widgets
	// in [overlay.AlertPanel]. Default: 8.
	ActionSpacing float64
	// PanelWidth is the default width for panels whose Width is zero.
	// Default: 280.
	PanelWidth float64
}

// DefaultPanelTheme returns PanelThemeData derived from a [ColorScheme].
// Used when [ThemeData.PanelTheme] is nil.
func DefaultPanelTheme(colors ColorScheme) PanelThemeData {
	return PanelThemeData{
		BackgroundColor:       colors.Surface,
		ScrimColor:            colors.Scrim,
		BorderRadius:          12,
		Padding:               layout.EdgeInsetsAll(24),
		TitleContentSpacing:   16,
		ContentActionsSpacing: 24,
		ActionSpacing:         8,
		PanelWidth:            280,
	}
}
