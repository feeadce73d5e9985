// Package tcell provides a Backend implementation using tcell.
package tcell

import (
	"github.com/gdamore/tcell/v2"

	"github.com/odvcencio/tabstop/pkg/errors"
	"github.com/odvcencio/tabstop/pkg/ui/backend"
	"github.com/odvcencio/tabstop/pkg/ui/terminal"
)

const realButtons = tcell.Button1 | tcell.Button2 | tcell.Button3

// Backend implements backend.Backend using tcell.
type Backend struct {
	screen tcell.Screen

	// Terminals report the held-button mask on every mouse event; presses
	// are the bits that were not held last time.
	lastButtons tcell.ButtonMask
}

// New creates a backend for the controlling terminal.
func New() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeBackendInit, "create terminal screen")
	}
	return &Backend{screen: screen}, nil
}

// NewWithScreen creates a backend over an existing screen.
func NewWithScreen(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Screen returns the underlying tcell screen.
func (b *Backend) Screen() tcell.Screen {
	return b.screen
}

// Init initializes the screen and enables mouse reporting.
func (b *Backend) Init() error {
	if err := b.screen.Init(); err != nil {
		return errors.Wrap(err, errors.ErrCodeBackendInit, "initialize terminal screen")
	}
	b.screen.EnableMouse()
	return nil
}

// Fini restores the terminal.
func (b *Backend) Fini() {
	b.screen.Fini()
}

// Size returns the terminal dimensions.
func (b *Backend) Size() (width, height int) {
	return b.screen.Size()
}

// SetContent sets a cell at position (x, y).
func (b *Backend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	b.screen.SetContent(x, y, mainc, comb, ConvertStyle(style))
}

// Show synchronizes the buffer to the terminal.
func (b *Backend) Show() {
	b.screen.Show()
}

// Clear clears the screen.
func (b *Backend) Clear() {
	b.screen.Clear()
}

// HideCursor hides the cursor.
func (b *Backend) HideCursor() {
	b.screen.HideCursor()
}

// PollEvent blocks until an input event the runtime understands arrives.
func (b *Backend) PollEvent() terminal.Event {
	for {
		ev := b.screen.PollEvent()
		if ev == nil {
			return nil
		}
		if converted := b.convertEvent(ev); converted != nil {
			return converted
		}
	}
}

// PostEvent injects a resize into the queue. Other events cannot be
// represented as tcell events.
func (b *Backend) PostEvent(ev terminal.Event) error {
	switch e := ev.(type) {
	case terminal.ResizeEvent:
		if err := b.screen.PostEvent(tcell.NewEventResize(e.Width, e.Height)); err != nil {
			return errors.Wrap(err, errors.ErrCodeInternal, "post resize event")
		}
		return nil
	default:
		return errors.Newf(errors.ErrCodeInternal, "cannot post %T to a tcell screen", ev)
	}
}

// Sync forces a full redraw.
func (b *Backend) Sync() {
	b.screen.Sync()
}

// ConvertStyle converts backend.Style to tcell.Style.
func ConvertStyle(s backend.Style) tcell.Style {
	fg, bg, attrs := s.Decompose()
	style := tcell.StyleDefault.
		Foreground(convertColor(fg)).
		Background(convertColor(bg))

	if attrs&backend.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&backend.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&backend.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&backend.AttrDim != 0 {
		style = style.Dim(true)
	}
	return style
}

func convertColor(c backend.Color) tcell.Color {
	if c == backend.ColorDefault {
		return tcell.ColorDefault
	}
	return tcell.PaletteColor(int(c))
}

func (b *Backend) convertEvent(ev tcell.Event) terminal.Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		return convertKeyEvent(e)
	case *tcell.EventResize:
		w, h := e.Size()
		return terminal.ResizeEvent{Width: w, Height: h}
	case *tcell.EventMouse:
		return b.convertMouse(e)
	default:
		return nil
	}
}

func convertKeyEvent(e *tcell.EventKey) terminal.Event {
	mods := e.Modifiers()
	ke := terminal.KeyEvent{
		Key:   convertKey(e.Key()),
		Rune:  e.Rune(),
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}
	if e.Key() == tcell.KeyBacktab {
		ke.Shift = true
	}
	if ke.Key != terminal.KeyRune {
		ke.Rune = 0
	}
	return ke
}

func convertKey(k tcell.Key) terminal.Key {
	switch k {
	case tcell.KeyRune:
		return terminal.KeyRune
	case tcell.KeyUp:
		return terminal.KeyUp
	case tcell.KeyDown:
		return terminal.KeyDown
	case tcell.KeyRight:
		return terminal.KeyRight
	case tcell.KeyLeft:
		return terminal.KeyLeft
	case tcell.KeyHome:
		return terminal.KeyHome
	case tcell.KeyEnd:
		return terminal.KeyEnd
	case tcell.KeyTab, tcell.KeyBacktab:
		return terminal.KeyTab
	case tcell.KeyEnter:
		return terminal.KeyEnter
	case tcell.KeyEscape:
		return terminal.KeyEscape
	case tcell.KeyCtrlC:
		return terminal.KeyCtrlC
	default:
		return terminal.KeyNone
	}
}

func (b *Backend) convertMouse(e *tcell.EventMouse) terminal.MouseEvent {
	x, y := e.Position()
	mods := e.Modifiers()
	me := terminal.MouseEvent{
		X:     x,
		Y:     y,
		Alt:   mods&tcell.ModAlt != 0,
		Ctrl:  mods&tcell.ModCtrl != 0,
		Shift: mods&tcell.ModShift != 0,
	}
	me.Button, me.Action = mouseTransition(b.lastButtons, e.Buttons())
	b.lastButtons = e.Buttons() & realButtons
	return me
}

// mouseTransition classifies a button mask against the previously held
// buttons.
func mouseTransition(held, now tcell.ButtonMask) (terminal.MouseButton, terminal.MouseAction) {
	switch {
	case now&tcell.WheelUp != 0:
		return terminal.MouseWheelUp, terminal.MousePress
	case now&tcell.WheelDown != 0:
		return terminal.MouseWheelDown, terminal.MousePress
	}

	if pressed := now &^ held & realButtons; pressed != 0 {
		return buttonOf(pressed), terminal.MousePress
	}
	if released := held &^ now & realButtons; released != 0 {
		return buttonOf(released), terminal.MouseRelease
	}
	return buttonOf(now & realButtons), terminal.MouseMove
}

// buttonOf follows tcell's numbering: Button2 is secondary (right) and
// Button3 is middle.
func buttonOf(mask tcell.ButtonMask) terminal.MouseButton {
	switch {
	case mask&tcell.Button1 != 0:
		return terminal.MouseLeft
	case mask&tcell.Button2 != 0:
		return terminal.MouseRight
	case mask&tcell.Button3 != 0:
		return terminal.MouseMiddle
	default:
		return terminal.MouseNone
	}
}

var _ backend.Backend = (*Backend)(nil)
