// Package sim provides a simulation backend for testing.
//
// Rendering goes to a tcell SimulationScreen so tests can read back cells.
// Input goes through an in-memory queue so tests can inject any terminal
// event, including ones tcell cannot synthesize.
package sim

import (
	"strings"
	"sync"

	tcellv2 "github.com/gdamore/tcell/v2"

	"github.com/odvcencio/tabstop/pkg/errors"
	"github.com/odvcencio/tabstop/pkg/ui/backend"
	"github.com/odvcencio/tabstop/pkg/ui/backend/tcell"
	"github.com/odvcencio/tabstop/pkg/ui/terminal"
)

const queueSize = 256

// Backend is a testable backend using tcell's simulation screen.
type Backend struct {
	*tcell.Backend
	screen tcellv2.SimulationScreen
	mu     sync.Mutex

	events   chan terminal.Event
	done     chan struct{}
	finiOnce sync.Once
}

// New creates a new simulation backend with the given dimensions.
func New(width, height int) *Backend {
	screen := tcellv2.NewSimulationScreen("")
	screen.SetSize(width, height)

	return &Backend{
		Backend: tcell.NewWithScreen(screen),
		screen:  screen,
		events:  make(chan terminal.Event, queueSize),
		done:    make(chan struct{}),
	}
}

// Init initializes the simulation screen at its configured size.
func (s *Backend) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, h := s.screen.Size()
	if err := s.Backend.Init(); err != nil {
		return err
	}
	s.screen.SetSize(w, h)
	return nil
}

// Fini releases the screen and unblocks PollEvent.
func (s *Backend) Fini() {
	s.finiOnce.Do(func() {
		close(s.done)
		s.mu.Lock()
		defer s.mu.Unlock()
		s.Backend.Fini()
	})
}

// Size returns the screen dimensions.
func (s *Backend) Size() (width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen.Size()
}

// SetContent sets a cell.
func (s *Backend) SetContent(x, y int, mainc rune, comb []rune, style backend.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Backend.SetContent(x, y, mainc, comb, style)
}

// Show flushes the screen.
func (s *Backend) Show() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Backend.Show()
}

// Clear blanks the screen.
func (s *Backend) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Backend.Clear()
}

// PollEvent returns the next injected event, or nil after Fini.
func (s *Backend) PollEvent() terminal.Event {
	select {
	case ev := <-s.events:
		return ev
	case <-s.done:
		return nil
	}
}

// PostEvent queues ev for PollEvent.
func (s *Backend) PostEvent(ev terminal.Event) error {
	if ev == nil {
		return nil
	}
	select {
	case <-s.done:
		return errors.New(errors.ErrCodeInternal, "simulation backend is finalized")
	default:
	}
	select {
	case s.events <- ev:
		return nil
	case <-s.done:
		return errors.New(errors.ErrCodeInternal, "simulation backend is finalized")
	default:
		return errors.New(errors.ErrCodeInternal, "simulation event queue is full")
	}
}

// Resize changes the simulation screen size without posting an event.
func (s *Backend) Resize(width, height int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.SetSize(width, height)
}

// InjectKey queues a key press.
func (s *Backend) InjectKey(key terminal.Key, r rune) {
	_ = s.PostEvent(terminal.KeyEvent{Key: key, Rune: r})
}

// InjectTab queues Tab, or Shift+Tab when shift is set.
func (s *Backend) InjectTab(shift bool) {
	_ = s.PostEvent(terminal.KeyEvent{Key: terminal.KeyTab, Shift: shift})
}

// InjectKeyString queues one rune key press per character.
func (s *Backend) InjectKeyString(str string) {
	for _, r := range str {
		s.InjectKey(terminal.KeyRune, r)
	}
}

// InjectClick queues a left-button press and release at (x, y).
func (s *Backend) InjectClick(x, y int) {
	_ = s.PostEvent(terminal.MouseEvent{X: x, Y: y, Button: terminal.MouseLeft, Action: terminal.MousePress})
	_ = s.PostEvent(terminal.MouseEvent{X: x, Y: y, Button: terminal.MouseLeft, Action: terminal.MouseRelease})
}

// InjectResize resizes the screen and queues the matching event.
func (s *Backend) InjectResize(width, height int) {
	s.Resize(width, height)
	_ = s.PostEvent(terminal.ResizeEvent{Width: width, Height: height})
}

// Capture returns the screen content, one line per row.
func (s *Backend) Capture() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	w, h := s.screen.Size()
	lines := make([]string, 0, h)
	for y := 0; y < h; y++ {
		var line strings.Builder
		for x := 0; x < w; x++ {
			mainc, comb, _, _ := s.screen.GetContent(x, y)
			if mainc == 0 {
				mainc = ' '
			}
			line.WriteRune(mainc)
			for _, c := range comb {
				line.WriteRune(c)
			}
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// CaptureCell returns the rune and style of one cell.
func (s *Backend) CaptureCell(x, y int) (rune, backend.Style) {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, _, style, _ := s.screen.GetContent(x, y)
	return m, convertTcellStyle(style)
}

// FindText returns the position of the first occurrence of text, or -1, -1.
func (s *Backend) FindText(text string) (x, y int) {
	for row, line := range strings.Split(s.Capture(), "\n") {
		if col := strings.Index(line, text); col >= 0 {
			return col, row
		}
	}
	return -1, -1
}

// ContainsText reports whether text appears anywhere on screen.
func (s *Backend) ContainsText(text string) bool {
	x, _ := s.FindText(text)
	return x >= 0
}

func convertTcellStyle(ts tcellv2.Style) backend.Style {
	fg, bg, attrs := ts.Decompose()
	style := backend.DefaultStyle().
		Foreground(convertTcellColor(fg)).
		Background(convertTcellColor(bg))

	if attrs&tcellv2.AttrBold != 0 {
		style = style.Bold(true)
	}
	if attrs&tcellv2.AttrReverse != 0 {
		style = style.Reverse(true)
	}
	if attrs&tcellv2.AttrUnderline != 0 {
		style = style.Underline(true)
	}
	if attrs&tcellv2.AttrDim != 0 {
		style = style.Dim(true)
	}
	return style
}

func convertTcellColor(tc tcellv2.Color) backend.Color {
	if tc == tcellv2.ColorDefault {
		return backend.ColorDefault
	}
	return backend.Color(tc & 0xFF)
}

var _ backend.Backend = (*Backend)(nil)
