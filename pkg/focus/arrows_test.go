package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/tabstop/pkg/errors"
	"github.com/odvcencio/tabstop/pkg/ui/dom"
	"github.com/odvcencio/tabstop/pkg/ui/terminal"
)

func newToolbar(t *testing.T, opts ArrowOptions) (*tree, *ArrowNavigator, *ElementList) {
	t.Helper()
	tr := newTree(t)
	tr.button(nil, "before")
	bar := tr.div(nil, "toolbar")
	list := NewElementList(
		tr.button(bar, "bold"),
		tr.button(bar, "italic"),
		tr.button(bar, "underline"),
	)
	tr.button(nil, "after")

	nav, err := NewArrowNavigator(bar, list, opts)
	require.NoError(t, err)
	return tr, nav, list
}

func TestNewArrowNavigator_ConfigErrors(t *testing.T) {
	tr := newTree(t)
	_, err := NewArrowNavigator(nil, NewElementList(), ArrowOptions{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeConfigInvalid))

	_, err = NewArrowNavigator(tr.doc.Body(), nil, ArrowOptions{})
	assert.True(t, errors.IsCode(err, errors.ErrCodeConfigInvalid))
}

func TestArrowNavigator_Horizontal(t *testing.T) {
	tr, nav, _ := newToolbar(t, ArrowOptions{Horizontal: true})
	nav.Engage()
	require.Equal(t, "bold", tr.active())

	ev := tr.key(terminal.KeyRight)
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, "italic", tr.active())

	tr.key(terminal.KeyRight)
	tr.key(terminal.KeyRight)
	assert.Equal(t, "underline", tr.active(), "no wrap without loop")

	tr.key(terminal.KeyLeft)
	assert.Equal(t, "italic", tr.active())

	ev = tr.key(terminal.KeyDown)
	assert.False(t, ev.DefaultPrevented(), "vertical keys are not handled")
	assert.Equal(t, "italic", tr.active())
}

func TestArrowNavigator_VerticalLoop(t *testing.T) {
	tr, nav, _ := newToolbar(t, ArrowOptions{Vertical: true, Loop: true})
	nav.Engage()

	tr.key(terminal.KeyUp)
	assert.Equal(t, "underline", tr.active(), "up at the first wraps to the last")

	tr.key(terminal.KeyDown)
	assert.Equal(t, "bold", tr.active(), "down at the last wraps to the first")

	tr.key(terminal.KeyRight)
	assert.Equal(t, "bold", tr.active())
}

func TestArrowNavigator_HomeEnd(t *testing.T) {
	tr, nav, _ := newToolbar(t, ArrowOptions{Horizontal: true})
	nav.Engage()

	ev := tr.key(terminal.KeyEnd)
	assert.True(t, ev.DefaultPrevented())
	assert.Equal(t, "underline", tr.active())

	tr.key(terminal.KeyHome)
	assert.Equal(t, "bold", tr.active())
}

func TestArrowNavigator_TabLeavesGroup(t *testing.T) {
	tr, nav, _ := newToolbar(t, ArrowOptions{Horizontal: true})
	nav.Engage()
	tr.key(terminal.KeyRight)
	require.Equal(t, "italic", tr.active())

	tr.tab()
	assert.Equal(t, "after", tr.active(), "only the active member is a tab stop")

	tr.shiftTab()
	assert.Equal(t, "italic", tr.active(), "tab returns to the last active member")
}

func TestArrowNavigator_EngageDisengage(t *testing.T) {
	tr, nav, list := newToolbar(t, ArrowOptions{Horizontal: true})
	bar := tr.els["toolbar"]

	nav.Engage()
	nav.Engage()
	assert.True(t, nav.Engaged())
	assert.Equal(t, 1, bar.ListenerCount())

	tr.key(terminal.KeyRight)
	nav.Disengage()
	nav.Disengage()
	assert.False(t, nav.Engaged())
	assert.Equal(t, 0, bar.ListenerCount())
	assert.Equal(t, 0, nav.Rover().Index())
	for _, n := range list.Nodes() {
		_, has := n.(*dom.Element).TabIndex()
		assert.False(t, has)
	}

	ev := tr.key(terminal.KeyRight)
	assert.False(t, ev.DefaultPrevented())
}

func TestArrowNavigator_IgnoresModifiedKeys(t *testing.T) {
	tr, nav, _ := newToolbar(t, ArrowOptions{Horizontal: true})
	nav.Engage()

	tr.doc.DispatchKey(terminal.KeyEvent{Key: terminal.KeyRight, Ctrl: true})
	assert.Equal(t, "bold", tr.active())
}

func TestArrowNavigator_WithPortalObserver(t *testing.T) {
	// The navigator and an observer on the same document see the same keys.
	tr, nav, _ := newToolbar(t, ArrowOptions{Horizontal: true})
	obs, err := NewObserver(tr.doc.Body(), WithAutoEngage())
	require.NoError(t, err)
	rec := &recorder{}
	obs.Subscribe(rec.record)
	nav.Engage()
	rec.signals = nil

	tr.key(terminal.KeyRight)
	require.Len(t, rec.signals, 2)
	assert.True(t, rec.signals[0].Arrowing)
	assert.Same(t, tr.els["bold"], rec.signals[0].From)
	assert.Same(t, tr.els["italic"], rec.signals[1].To)
}
