package overlay

import (
	"github.com/go-drift/compose/pkg/core"
	"github.com/go-drift/compose/pkg/theme"
	"github.com/go-drift/compose/pkg/widgets"
)

// AlertPanel arranges a title, content, and action widgets inside a [Panel].
//
// All fields are optional. The sections present are laid out in a
// [widgets.Column] with [widgets.MainAxisSizeMin] and
// [widgets.CrossAxisAlignmentStart]:
//
//   - Title appears first
//   - Content appears below the title (spacing from
//     [theme.PanelThemeData.TitleContentSpacing])
//   - Actions appear in a right-aligned [widgets.Row] (spacing above from
//     [theme.PanelThemeData.ContentActionsSpacing], horizontal gaps from
//     [theme.PanelThemeData.ActionSpacing])
//
// Width defaults to [theme.PanelThemeData.PanelWidth] when zero. AlertPanel
// wraps its column in a [Panel], so it inherits the theme-driven chrome.
type AlertPanel struct {
	core.StatelessBase

	// Title is the heading widget, typically a [widgets.Text] in the
	// theme's Title style.
	Title core.Widget
	// Content is the body widget.
	Content core.Widget
	// Actions are placed in a right-aligned row below the content.
	Actions []core.Widget
	// Width is the panel width in pixels. Zero defaults to the theme's
	// PanelWidth (280).
	Width float64
}

func (a AlertPanel) Build(ctx core.BuildContext) core.Widget {
	pt := theme.ThemeOf(ctx).PanelThemeOf()

	width := a.Width
	if width == 0 {
		width = pt.PanelWidth
	}

	var children []core.Widget

	if a.Title != nil {
		children = append(children, a.Title)
	}

	if a.Content != nil {
		if len(children) > 0 {
			children = append(children, widgets.VSpace(pt.TitleContentSpacing))
		}
		children = append(children, a.Content)
	}

	if len(a.Actions) > 0 {
		if len(children) > 0 {
			children = append(children, widgets.VSpace(pt.ContentActionsSpacing))
		}
		var actionChildren []core.Widget
		for i, action := range a.Actions {
			if i > 0 {
				actionChildren = append(actionChildren, widgets.HSpace(pt.ActionSpacing))
			}
			actionChildren = append(actionChildren, action)
		}
		children = append(children, widgets.Row{
			MainAlignment:   widgets.MainAxisAlignmentEnd,
			MainAxisSize:    widgets.MainAxisSizeMax,
			ChildrenWidgets: actionChildren,
		})
	}

	return Panel{
		Width: width,
		Child: widgets.Column{
			MainAxisSize:    widgets.MainAxisSizeMin,
			CrossAlignment:  widgets.CrossAxisAlignmentStart,
			ChildrenWidgets: children,
		},
	}
}
