package runtime

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/tabstop/pkg/errors"
	"github.com/odvcencio/tabstop/pkg/ui/backend"
	"github.com/odvcencio/tabstop/pkg/ui/backend/sim"
	"github.com/odvcencio/tabstop/pkg/ui/dom"
	"github.com/odvcencio/tabstop/pkg/ui/terminal"
)

type harness struct {
	t      *testing.T
	sim    *sim.Backend
	doc    *dom.Document
	app    *App
	cancel context.CancelFunc
	done   chan error
}

func newDocument(t *testing.T) *dom.Document {
	t.Helper()
	doc := dom.NewDocument()
	doc.Body().SetBounds(dom.NewRect(0, 0, 30, 6))
	for i, id := range []string{"save", "cancel"} {
		el := doc.CreateElement("button")
		el.SetID(id)
		el.SetLabel("[" + id + "]")
		el.SetBounds(dom.NewRect(2+i*12, 1, 10, 1))
		require.NoError(t, doc.Body().AppendChild(el))
	}
	return doc
}

func startApp(t *testing.T, statusLine bool) *harness {
	t.Helper()
	be := sim.New(30, 6)
	doc := newDocument(t)
	app, err := NewApp(AppConfig{Backend: be, Document: doc, StatusLine: statusLine})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	h := &harness{t: t, sim: be, doc: doc, app: app, cancel: cancel, done: make(chan error, 1)}
	go func() { h.done <- app.Run(ctx) }()

	select {
	case <-app.Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("app did not become ready")
	}
	t.Cleanup(func() {
		cancel()
		<-h.done
	})
	return h
}

func (h *harness) activeID() string {
	h.t.Helper()
	var id string
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(h.t, h.app.Call(ctx, func(doc *dom.Document) {
		id = doc.ActiveElement().ID()
	}))
	return id
}

func (h *harness) eventuallyActive(want string) {
	h.t.Helper()
	require.Eventually(h.t, func() bool { return h.activeID() == want },
		time.Second, 10*time.Millisecond, "active element never became %q", want)
}

func TestNewApp_RequiresBackendAndDocument(t *testing.T) {
	_, err := NewApp(AppConfig{Document: dom.NewDocument()})
	assert.True(t, errors.IsCode(err, errors.ErrCodeConfigInvalid))

	_, err = NewApp(AppConfig{Backend: sim.New(1, 1)})
	assert.True(t, errors.IsCode(err, errors.ErrCodeConfigInvalid))
}

func TestApp_RendersLabels(t *testing.T) {
	h := startApp(t, false)

	assert.True(t, h.sim.ContainsText("[save]"))
	assert.True(t, h.sim.ContainsText("[cancel]"))
}

func TestApp_TabMovesFocus(t *testing.T) {
	h := startApp(t, false)

	h.sim.InjectTab(false)
	h.eventuallyActive("save")

	h.sim.InjectTab(false)
	h.eventuallyActive("cancel")

	h.sim.InjectTab(true)
	h.eventuallyActive("save")
}

func TestApp_FocusedElementIsReversed(t *testing.T) {
	h := startApp(t, false)

	h.app.Post(terminal.KeyEvent{Key: terminal.KeyTab})
	require.Equal(t, "save", h.activeID())

	x, y := h.sim.FindText("[save]")
	require.GreaterOrEqual(t, x, 0)
	_, style := h.sim.CaptureCell(x, y)
	assert.True(t, style.Has(backend.AttrReverse))

	x, y = h.sim.FindText("[cancel]")
	_, style = h.sim.CaptureCell(x, y)
	assert.False(t, style.Has(backend.AttrReverse))
}

func TestApp_ClickFocusesHitElement(t *testing.T) {
	h := startApp(t, false)

	h.sim.InjectClick(15, 1)
	h.eventuallyActive("cancel")

	h.app.Post(terminal.MouseEvent{X: 3, Y: 1, Button: terminal.MouseWheelUp, Action: terminal.MousePress})
	assert.Equal(t, "cancel", h.activeID(), "wheel does not move focus")
}

func TestApp_StatusLine(t *testing.T) {
	h := startApp(t, true)

	h.app.Post(terminal.KeyEvent{Key: terminal.KeyTab})
	require.Equal(t, "save", h.activeID())

	_, y := h.sim.FindText("focus: button#save")
	assert.Equal(t, 5, y)
}

func TestApp_CtrlCQuits(t *testing.T) {
	h := startApp(t, false)

	h.sim.InjectKey(terminal.KeyCtrlC, 0)
	select {
	case err := <-h.done:
		assert.NoError(t, err)
		h.done <- nil
	case <-time.After(2 * time.Second):
		t.Fatal("app did not quit on Ctrl+C")
	}
}

func TestApp_ContextCancelStops(t *testing.T) {
	h := startApp(t, false)

	h.cancel()
	select {
	case err := <-h.done:
		assert.ErrorIs(t, err, context.Canceled)
		h.done <- err
	case <-time.After(2 * time.Second):
		t.Fatal("app did not stop on cancel")
	}
}

func TestApp_ResizeRebuildsHitGrid(t *testing.T) {
	h := startApp(t, false)

	h.sim.Resize(10, 3)
	h.app.Post(terminal.ResizeEvent{Width: 10, Height: 3})

	// cancel sits at x=14, now off screen.
	h.app.Post(terminal.MouseEvent{X: 14, Y: 1, Button: terminal.MouseLeft, Action: terminal.MousePress})
	assert.Equal(t, "", h.activeID())
}

type cells map[[2]int]rune

type fakeTarget struct {
	w     int
	cells cells
}

func (f *fakeTarget) Size() (int, int) { return f.w, 1 }

func (f *fakeTarget) SetContent(x, y int, r rune, _ []rune, _ backend.Style) {
	f.cells[[2]int{x, y}] = r
}

func TestDrawString_WideRunes(t *testing.T) {
	ft := &fakeTarget{w: 4, cells: cells{}}
	end := drawString(ft, 0, 0, "a世界", baseStyle)

	assert.Equal(t, 3, end, "the second wide rune would straddle the edge")
	assert.Equal(t, 'a', ft.cells[[2]int{0, 0}])
	assert.Equal(t, '世', ft.cells[[2]int{1, 0}])
	assert.NotContains(t, ft.cells, [2]int{3, 0})
}
