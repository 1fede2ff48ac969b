package theme

import "github.com/go-drift/compose/pkg/graphics"

// Brightness indicates if a theme is light or dark.
type Brightness int

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// ColorScheme defines the color palette.
type ColorScheme struct {
	Primary      graphics.Color
	OnPrimary    graphics.Color
	Surface      graphics.Color
	OnSurface    graphics.Color
	Background   graphics.Color
	OnBackground graphics.Color
	// Scrim is the color drawn behind modal surfaces.
	Scrim graphics.Color
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:      graphics.Color(0xFF3B5BDB),
		OnPrimary:    graphics.ColorWhite,
		Surface:      graphics.ColorWhite,
		OnSurface:    graphics.Color(0xFF1A1A2E),
		Background:   graphics.Color(0xFFF4F4F6),
		OnBackground: graphics.Color(0xFF1A1A2E),
		Scrim:        graphics.RGBA(0, 0, 0, 0x80),
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:      graphics.Color(0xFF748FFC),
		OnPrimary:    graphics.Color(0xFF0B1023),
		Surface:      graphics.Color(0xFF23263A),
		OnSurface:    graphics.Color(0xFFE8E8F0),
		Background:   graphics.Color(0xFF15172A),
		OnBackground: graphics.Color(0xFFE8E8F0),
		Scrim:        graphics.RGBA(0, 0, 0, 0xA0),
	}
}

// TextTheme defines text styles.
type TextTheme struct {
	Title graphics.TextStyle
	Body  graphics.TextStyle
	Label graphics.TextStyle
}

// DefaultTextTheme returns text styles in the given foreground color.
func DefaultTextTheme(foreground graphics.Color) TextTheme {
	return TextTheme{
		Title: graphics.TextStyle{Color: foreground, FontSize: 18, FontWeight: graphics.FontWeightMedium},
		Body:  graphics.TextStyle{Color: foreground, FontSize: 14, FontWeight: graphics.FontWeightNormal},
		Label: graphics.TextStyle{Color: foreground, FontSize: 12, FontWeight: graphics.FontWeightMedium},
	}
}

// ThemeData contains all theme configuration for an application.
type ThemeData struct {
	// ColorScheme defines the color palette.
	ColorScheme ColorScheme

	// TextTheme defines text styles.
	TextTheme TextTheme

	// Brightness indicates if this is a light or dark theme.
	Brightness Brightness

	// PanelTheme is optional; derived from ColorScheme if nil.
	PanelTheme *PanelThemeData
}

// DefaultLightTheme returns the default light theme.
func DefaultLightTheme() *ThemeData {
	colors := LightColorScheme()
	return &ThemeData{
		ColorScheme: colors,
		TextTheme:   DefaultTextTheme(colors.OnBackground),
		Brightness:  BrightnessLight,
	}
}

// DefaultDarkTheme returns the default dark theme.
func DefaultDarkTheme() *ThemeData {
	colors := DarkColorScheme()
	return &ThemeData{
		ColorScheme: colors,
		TextTheme:   DefaultTextTheme(colors.OnBackground),
		Brightness:  BrightnessDark,
	}
}

// PanelThemeOf returns the panel theme, deriving from ColorScheme if not set.
func (t *ThemeData) PanelThemeOf() PanelThemeData {
	if t.PanelTheme != nil {
		return *t.PanelTheme
	}
	return DefaultPanelTheme(t.ColorScheme)
}
