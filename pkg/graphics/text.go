package graphics

import (
	"fmt"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const (
	// defaultFontSize is used when no font size is specified.
	defaultFontSize = 14

	// baseFaceSize is the pixel height of the bundled bitmap face.
	baseFaceSize = 13
)

// FontWeight represents a numeric font weight.
type FontWeight int

const (
	FontWeightLight  FontWeight = 300
	FontWeightNormal FontWeight = 400
	FontWeightMedium FontWeight = 500
	FontWeightBold   FontWeight = 700
)

// String returns a human-readable representation of the font weight.
func (w FontWeight) String() string {
	switch w {
	case FontWeightLight:
		return "light"
	case FontWeightNormal:
		return "normal"
	case FontWeightMedium:
		return "medium"
	case FontWeightBold:
		return "bold"
	default:
		return fmt.Sprintf("FontWeight(%d)", int(w))
	}
}

// TextStyle describes how text should be rendered.
type TextStyle struct {
	Color      Color
	FontFamily string
	FontSize   float64
	FontWeight FontWeight
}

// WithColor returns a copy of the TextStyle with the specified color.
func (s TextStyle) WithColor(c Color) TextStyle {
	s.Color = c
	return s
}

// TextLine represents a single laid-out line of text.
type TextLine struct {
	Text  string
	Width float64
}

// TextLayout contains measured text metrics and a resolved font face.
type TextLayout struct {
	Text       string
	Style      TextStyle
	Size       Size
	Ascent     float64
	Descent    float64
	LineHeight float64
	Lines      []TextLine
	Face       font.Face
}

// LayoutText measures text against the bundled bitmap face, scaled to the
// style's font size. Lines split on newline; the layout width is the widest
// line. Shaping and wrapping are host-runtime concerns and are not modeled.
func LayoutText(text string, style TextStyle) *TextLayout {
	face := basicfont.Face7x13
	size := style.FontSize
	if size <= 0 {
		size = defaultFontSize
	}
	scale := size / baseFaceSize

	metrics := face.Metrics()
	ascent := float64(metrics.Ascent.Round()) * scale
	descent := float64(metrics.Descent.Round()) * scale
	lineHeight := float64(metrics.Height.Round()) * scale
	if lineHeight == 0 {
		lineHeight = ascent + descent
	}

	raw := strings.Split(text, "\n")
	lines := make([]TextLine, 0, len(raw))
	maxWidth := 0.0
	for _, line := range raw {
		advance := font.MeasureString(face, line)
		width := float64(advance.Round()) * scale
		if width > maxWidth {
			maxWidth = width
		}
		lines = append(lines, TextLine{Text: line, Width: width})
	}
	if len(lines) == 0 {
		lines = []TextLine{{}}
	}

	return &TextLayout{
		Text:       text,
		Style:      style,
		Size:       Size{Width: maxWidth, Height: lineHeight * float64(len(lines))},
		Ascent:     ascent,
		Descent:    descent,
		LineHeight: lineHeight,
		Lines:      lines,
		Face:       face,
	}
}
