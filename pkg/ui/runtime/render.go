package runtime

import (
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/tabstop/pkg/ui/backend"
	"github.com/odvcencio/tabstop/pkg/ui/dom"
)

var (
	baseStyle     = backend.DefaultStyle()
	focusStyle    = backend.DefaultStyle().Reverse(true)
	disabledStyle = backend.DefaultStyle().Dim(true)
	statusStyle   = backend.DefaultStyle().Foreground(backend.ColorCyan)
)

// render redraws the whole document and rebuilds the hit grid from the
// bounds it drew.
func (a *App) render() {
	a.backend.Clear()
	w, h := a.backend.Size()
	body := a.doc.Body()
	active := a.doc.ActiveElement()

	a.grid.Resize(w, h)
	a.grid.Rebuild(body)

	body.Walk(func(n dom.Node) bool {
		switch node := n.(type) {
		case *dom.Element:
			if hiddenBranch(node) {
				return true
			}
			a.drawElement(node, node == active)
		case *dom.Text:
			if parent := node.Parent(); parent != nil && hiddenBranch(parent) {
				return true
			}
			r := node.Bounds()
			drawString(backend.NewSubTarget(a.backend, r.X, r.Y, r.Width, r.Height), 0, 0, node.Content(), baseStyle)
		}
		return true
	})

	if a.statusLine && h > 0 {
		status := backend.NewSubTarget(a.backend, 0, h-1, w, 1)
		status.Fill(' ', statusStyle)
		drawString(status, 0, 0, "focus: "+dom.NodeString(active), statusStyle)
	}

	a.backend.Show()
}

func (a *App) drawElement(el *dom.Element, focused bool) {
	label := el.Label()
	if label == "" {
		return
	}
	r := el.Bounds()
	target := backend.NewSubTarget(a.backend, r.X, r.Y, r.Width, r.Height)

	style := baseStyle
	switch {
	case focused:
		style = focusStyle
		target.Fill(' ', style)
	case el.Disabled():
		style = disabledStyle
	}
	drawString(target, 0, 0, label, style)
}

func hiddenBranch(el *dom.Element) bool {
	for ; el != nil; el = el.Parent() {
		if el.Hidden() {
			return true
		}
	}
	return false
}

// drawString writes s starting at (x, y), advancing by each rune's display
// width. Wide runes that would straddle the right edge are dropped.
func drawString(t backend.RenderTarget, x, y int, s string, style backend.Style) int {
	w, _ := t.Size()
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if x+rw > w {
			break
		}
		t.SetContent(x, y, r, nil, style)
		x += rw
	}
	return x
}
