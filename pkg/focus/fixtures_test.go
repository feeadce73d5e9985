package focus

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odvcencio/tabstop/pkg/ui/dom"
	"github.com/odvcencio/tabstop/pkg/ui/terminal"
)

// tree builds small documents for tests.
type tree struct {
	t   *testing.T
	doc *dom.Document
	els map[string]*dom.Element
}

func newTree(t *testing.T) *tree {
	t.Helper()
	return &tree{t: t, doc: dom.NewDocument(), els: map[string]*dom.Element{}}
}

func (tr *tree) add(parent *dom.Element, tag, id string) *dom.Element {
	tr.t.Helper()
	if parent == nil {
		parent = tr.doc.Body()
	}
	el := tr.doc.CreateElement(tag)
	el.SetID(id)
	require.NoError(tr.t, parent.AppendChild(el))
	tr.els[id] = el
	return el
}

func (tr *tree) button(parent *dom.Element, id string) *dom.Element {
	tr.t.Helper()
	return tr.add(parent, "button", id)
}

func (tr *tree) div(parent *dom.Element, id string) *dom.Element {
	tr.t.Helper()
	return tr.add(parent, "div", id)
}

func (tr *tree) tab() *dom.Event {
	return tr.doc.DispatchKey(terminal.KeyEvent{Key: terminal.KeyTab})
}

func (tr *tree) shiftTab() *dom.Event {
	return tr.doc.DispatchKey(terminal.KeyEvent{Key: terminal.KeyTab, Shift: true})
}

func (tr *tree) key(k terminal.Key) *dom.Event {
	return tr.doc.DispatchKey(terminal.KeyEvent{Key: k})
}

func (tr *tree) click(target dom.Node) *dom.Event {
	return tr.doc.DispatchMouseDown(target, terminal.MouseEvent{Button: terminal.MouseLeft, Action: terminal.MousePress})
}

func (tr *tree) active() string {
	return tr.doc.ActiveElement().ID()
}

// recorder collects signals.
type recorder struct {
	signals []Signal
}

func (r *recorder) record(s Signal) {
	r.signals = append(r.signals, s)
}

func (r *recorder) last() Signal {
	if len(r.signals) == 0 {
		return Signal{}
	}
	return r.signals[len(r.signals)-1]
}
