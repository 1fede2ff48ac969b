package theme

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/compose/pkg/errors"
	"github.com/go-drift/compose/pkg/graphics"
	"github.com/go-drift/compose/pkg/layout"
)

// SchemaVersion is the theme file schema this build reads. Files declare
// their version and are accepted when their major version matches.
const SchemaVersion = "v1.0.0"

// File is the on-disk YAML representation of a theme.
//
//	version: v1.0.0
//	brightness: dark
//	colors:
//	  surface: "#23263A"
//	  scrim: "#A0000000"
//	panel:
//	  borderRadius: 16
//	  padding: 20
//	  width: 320
type File struct {
	Version    string      `yaml:"version"`
	Brightness string      `yaml:"brightness,omitempty"`
	Colors     ColorsFile  `yaml:"colors,omitempty"`
	Panel      *PanelFile  `yaml:"panel,omitempty"`
}

// ColorsFile holds palette overrides as hex strings ("#RRGGBB" or "#AARRGGBB").
type ColorsFile struct {
	Primary      string `yaml:"primary,omitempty"`
	OnPrimary    string `yaml:"onPrimary,omitempty"`
	Surface      string `yaml:"surface,omitempty"`
	OnSurface    string `yaml:"onSurface,omitempty"`
	Background   string `yaml:"background,omitempty"`
	OnBackground string `yaml:"onBackground,omitempty"`
	Scrim        string `yaml:"scrim,omitempty"`
}

// PanelFile holds panel styling overrides.
type PanelFile struct {
	Background   string  `yaml:"background,omitempty"`
	Scrim        string  `yaml:"scrim,omitempty"`
	BorderRadius float64 `yaml:"borderRadius,omitempty"`
	Padding      float64 `yaml:"padding,omitempty"`
	Width        float64 `yaml:"width,omitempty"`
}

// LoadFile reads a theme YAML file and resolves it over the built-in
// defaults for its declared brightness.
func LoadFile(path string) (*ThemeData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, themeError("theme.LoadFile", fmt.Errorf("failed to read %s: %w", path, err))
	}
	return Parse(data)
}

// Parse resolves theme YAML bytes over the built-in defaults.
func Parse(data []byte) (*ThemeData, error) {
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, themeError("theme.Parse", fmt.Errorf("failed to parse theme: %w", err))
	}

	if err := checkVersion(file.Version); err != nil {
		return nil, themeError("theme.Parse", err)
	}

	var result *ThemeData
	switch strings.ToLower(strings.TrimSpace(file.Brightness)) {
	case "", "light":
		result = DefaultLightTheme()
	case "dark":
		result = DefaultDarkTheme()
	default:
		return nil, themeError("theme.Parse", fmt.Errorf("unknown brightness %q", file.Brightness))
	}

	if err := applyColors(&result.ColorScheme, file.Colors); err != nil {
		return nil, themeError("theme.Parse", err)
	}
	result.TextTheme = DefaultTextTheme(result.ColorScheme.OnBackground)

	if file.Panel != nil {
		panel := DefaultPanelTheme(result.ColorScheme)
		if err := applyPanel(&panel, file.Panel); err != nil {
			return nil, themeError("theme.Parse", err)
		}
		result.PanelTheme = &panel
	}
	return result, nil
}

// checkVersion validates the declared schema version against SchemaVersion.
// A missing version is rejected; a newer major version is rejected.
func checkVersion(version string) error {
	version = strings.TrimSpace(version)
	if version == "" {
		return fmt.Errorf("theme file missing version (expected %s)", SchemaVersion)
	}
	if !strings.HasPrefix(version, "v") {
		version = "v" + version
	}
	if !semver.IsValid(version) {
		return fmt.Errorf("invalid theme version %q", version)
	}
	if semver.Major(version) != semver.Major(SchemaVersion) {
		return fmt.Errorf("unsupported theme version %s (this build reads %s)", version, semver.Major(SchemaVersion))
	}
	return nil
}

func applyColors(scheme *ColorScheme, colors ColorsFile) error {
	entries := []struct {
		value string
		dst   *graphics.Color
	}{
		{colors.Primary, &scheme.Primary},
		{colors.OnPrimary, &scheme.OnPrimary},
		{colors.Surface, &scheme.Surface},
		{colors.OnSurface, &scheme.OnSurface},
		{colors.Background, &scheme.Background},
		{colors.OnBackground, &scheme.OnBackground},
		{colors.Scrim, &scheme.Scrim},
	}
	for _, entry := range entries {
		if entry.value == "" {
			continue
		}
		parsed, err := ParseColor(entry.value)
		if err != nil {
			return err
		}
		*entry.dst = parsed
	}
	return nil
}

func applyPanel(panel *PanelThemeData, file *PanelFile) error {
	if file.Background != "" {
		color, err := ParseColor(file.Background)
		if err != nil {
			return err
		}
		panel.BackgroundColor = color
	}
	if file.Scrim != "" {
		color, err := ParseColor(file.Scrim)
		if err != nil {
			return err
		}
		panel.ScrimColor = color
	}
	if file.BorderRadius > 0 {
		panel.BorderRadius = file.BorderRadius
	}
	if file.Padding > 0 {
		panel.Padding = layout.EdgeInsetsAll(file.Padding)
	}
	if file.Width > 0 {
		panel.PanelWidth = file.Width
	}
	return nil
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB" hex notation. RGB colors are
// treated as opaque.
func ParseColor(value string) (graphics.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(value), "#")
	parsed, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid color %q: %w", value, err)
	}
	switch len(hex) {
	case 6:
		return graphics.Color(uint32(parsed) | 0xFF000000), nil
	case 8:
		return graphics.Color(uint32(parsed)), nil
	default:
		return 0, fmt.Errorf("invalid color %q: want #RRGGBB or #AARRGGBB", value)
	}
}

func themeError(op string, err error) error {
	return &errors.ComposeError{
		Op:   op,
		Kind: errors.KindTheme,
		Err:  err,
	}
}
