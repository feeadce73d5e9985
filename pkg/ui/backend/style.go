package backend

// Color is a terminal palette color. Values 0-255 index the palette.
type Color int32

const (
	ColorDefault Color = -1
	ColorBlack   Color = 0
	ColorRed     Color = 1
	ColorGreen   Color = 2
	ColorYellow  Color = 3
	ColorBlue    Color = 4
	ColorMagenta Color = 5
	ColorCyan    Color = 6
	ColorWhite   Color = 7
)

// AttrMask holds text attributes.
type AttrMask uint32

const (
	AttrBold AttrMask = 1 << iota
	AttrReverse
	AttrUnderline
	AttrDim
)

// Style combines colors and attributes.
type Style struct {
	fg    Color
	bg    Color
	attrs AttrMask
}

// DefaultStyle returns default colors with no attributes.
func DefaultStyle() Style {
	return Style{fg: ColorDefault, bg: ColorDefault}
}

// Foreground sets the foreground color.
func (s Style) Foreground(c Color) Style {
	s.fg = c
	return s
}

// Background sets the background color.
func (s Style) Background(c Color) Style {
	s.bg = c
	return s
}

// Bold toggles bold.
func (s Style) Bold(on bool) Style {
	return s.with(AttrBold, on)
}

// Reverse toggles reverse video.
func (s Style) Reverse(on bool) Style {
	return s.with(AttrReverse, on)
}

// Underline toggles underline.
func (s Style) Underline(on bool) Style {
	return s.with(AttrUnderline, on)
}

// Dim toggles dim.
func (s Style) Dim(on bool) Style {
	return s.with(AttrDim, on)
}

func (s Style) with(a AttrMask, on bool) Style {
	if on {
		s.attrs |= a
	} else {
		s.attrs &^= a
	}
	return s
}

// Decompose returns the foreground, background, and attributes.
func (s Style) Decompose() (fg, bg Color, attrs AttrMask) {
	return s.fg, s.bg, s.attrs
}

// Has reports whether all attributes in a are set.
func (s Style) Has(a AttrMask) bool {
	return s.attrs&a == a
}
