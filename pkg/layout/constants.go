package layout

// Text is measured on a fixed character grid. Every glyph occupies
// CharWidth by CharHeight pixels at medium size; larger font sizes scale
// both by an integer ratio.
const (
	CharWidth             = 8
	CharHeight            = 16
	CharHeightWithPadding = CharHeight + 4

	WindowWidth   = 600
	WindowHeight  = 400
	WindowPadding = 5

	// ContentAreaWidth is the horizontal space available to layout after
	// the window padding on both sides.
	ContentAreaWidth = WindowWidth - WindowPadding*2
)
