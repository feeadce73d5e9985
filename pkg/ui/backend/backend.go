// Package backend defines the terminal abstraction the runtime draws to and
// reads input from. The tcell backend drives real terminals; the sim
// backend drives tests.
package backend

import "github.com/odvcencio/tabstop/pkg/ui/terminal"

// Backend is the terminal abstraction layer.
type Backend interface {
	// Init enters raw mode and the alternate screen.
	Init() error

	// Fini restores the terminal.
	Fini()

	// Size returns the current terminal dimensions.
	Size() (width, height int)

	// SetContent sets the cell at (x, y).
	SetContent(x, y int, mainc rune, comb []rune, style Style)

	// Show flushes pending cell changes to the terminal.
	Show()

	// Clear blanks the screen buffer.
	Clear()

	// HideCursor hides the terminal cursor.
	HideCursor()

	// PollEvent blocks until an event is available. Returns nil once the
	// backend is finalized.
	PollEvent() terminal.Event

	// PostEvent injects an event into the queue.
	PostEvent(ev terminal.Event) error

	// Sync forces a full redraw on the next Show.
	Sync()
}

// RenderTarget is the drawing subset of Backend.
type RenderTarget interface {
	Size() (width, height int)
	SetContent(x, y int, mainc rune, comb []rune, style Style)
}

// SubTarget clips drawing to a rectangle of a parent target. Coordinates
// passed to SetContent are relative to the rectangle.
type SubTarget struct {
	parent  RenderTarget
	offsetX int
	offsetY int
	width   int
	height  int
}

// NewSubTarget creates a sub-region of parent.
func NewSubTarget(parent RenderTarget, x, y, w, h int) *SubTarget {
	return &SubTarget{
		parent:  parent,
		offsetX: x,
		offsetY: y,
		width:   max(w, 0),
		height:  max(h, 0),
	}
}

// Size returns the region dimensions.
func (s *SubTarget) Size() (width, height int) {
	return s.width, s.height
}

// SetContent draws at region-relative coordinates, dropping cells outside
// the region.
func (s *SubTarget) SetContent(x, y int, mainc rune, comb []rune, style Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.parent.SetContent(s.offsetX+x, s.offsetY+y, mainc, comb, style)
}

// Fill paints every cell of the region with r.
func (s *SubTarget) Fill(r rune, style Style) {
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.SetContent(x, y, r, nil, style)
		}
	}
}
