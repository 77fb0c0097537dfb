package dropdown

import "github.com/charmbracelet/x/ansi"

// Box is a measured outer box of the source control, in cells.
type Box struct {
	Width  int
	Height int
}

// Layout is the computed geometry of a replacement surface. Pure output of
// ComputeLayout; the widget recomputes it on Resize and when the shared
// viewport watcher reports a new viewport.
type Layout struct {
	OuterWidth    int
	OuterHeight   int
	IconWidth     int
	FaceTextWidth int // OuterWidth inner area minus the indicator icon
	ListMaxHeight int // full replacement only; half the viewport height
}

// facePadding is the horizontal padding inside the face, one cell per side.
const facePadding = 2

// ComputeLayout derives the replacement surface geometry from the control's
// measured box, an optional explicit height override, the indicator glyph
// width, and the viewport height. Pure geometry, no state.
func ComputeLayout(box Box, heightOverride, iconWidth, viewportHeight int) Layout {
	l := Layout{
		OuterWidth:  box.Width,
		OuterHeight: box.Height,
		IconWidth:   iconWidth,
	}
	if heightOverride > 0 {
		l.OuterHeight = heightOverride
	}
	if l.OuterHeight < 1 {
		l.OuterHeight = 1
	}
	l.FaceTextWidth = l.OuterWidth - facePadding - iconWidth
	if l.FaceTextWidth < 0 {
		l.FaceTextWidth = 0
	}
	l.ListMaxHeight = viewportHeight / 2
	if l.ListMaxHeight < 1 {
		l.ListMaxHeight = 1
	}
	return l
}

// IconWidth measures an indicator glyph in terminal cells.
func IconWidth(glyph string) int {
	return ansi.StringWidth(glyph)
}
