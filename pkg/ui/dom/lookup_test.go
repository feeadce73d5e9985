package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInspector_IsFocusable(t *testing.T) {
	d := NewDocument()
	var in Inspector

	button := d.CreateElement("button")
	link := d.CreateElement("a")
	linkWithHref := d.CreateElement("a")
	linkWithHref.SetHref("https://example.com")
	div := d.CreateElement("div")
	divTab := d.CreateElement("div")
	divTab.SetTabIndex(0)
	divNeg := d.CreateElement("div")
	divNeg.SetTabIndex(-1)
	editable := d.CreateElement("div")
	editable.SetEditable(true)
	disabled := d.CreateElement("input")
	disabled.SetDisabled(true)

	hiddenParent := d.CreateElement("div")
	hiddenParent.SetHidden(true)
	hiddenChild := d.CreateElement("button")
	require.NoError(t, hiddenParent.AppendChild(hiddenChild))

	tests := []struct {
		name string
		node Node
		want bool
	}{
		{"button", button, true},
		{"anchor without href", link, false},
		{"anchor with href", linkWithHref, true},
		{"plain div", div, false},
		{"div tabindex 0", divTab, true},
		{"div tabindex -1", divNeg, true},
		{"editable", editable, true},
		{"disabled input", disabled, false},
		{"inside hidden ancestor", hiddenChild, false},
		{"text node", d.CreateText("x"), false},
		{"nil", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, in.IsFocusable(tt.node))
		})
	}
}

func TestInspector_IsInteractive(t *testing.T) {
	d := NewDocument()
	var in Inspector

	button := d.CreateElement("button")
	neg := d.CreateElement("button")
	neg.SetTabIndex(-1)
	pos := d.CreateElement("div")
	pos.SetTabIndex(3)

	assert.True(t, in.IsInteractive(button))
	assert.False(t, in.IsInteractive(neg))
	assert.True(t, in.IsInteractive(pos))
	assert.False(t, in.IsInteractive(d.CreateElement("div")))
}

func buildLookupTree(t *testing.T) (*Document, map[string]*Element) {
	t.Helper()
	d := NewDocument()
	els := map[string]*Element{}
	add := func(parent *Element, tag, id string) *Element {
		el := d.CreateElement(tag)
		el.SetID(id)
		require.NoError(t, parent.AppendChild(el))
		els[id] = el
		return el
	}

	add(d.Body(), "button", "before")
	portal := add(d.Body(), "div", "portal")
	add(portal, "div", "heading")
	neg := add(portal, "button", "p0")
	neg.SetTabIndex(-1)
	add(portal, "button", "p1")
	add(portal, "button", "p2")
	add(d.Body(), "button", "after")
	return d, els
}

func TestEnumerator_Children(t *testing.T) {
	_, els := buildLookupTree(t)
	var en Enumerator
	portal := els["portal"]

	assert.Equal(t, []string{"p0", "p1", "p2"}, ids(en.FocusableChildren(portal)))
	assert.Equal(t, []string{"p1", "p2"}, ids(en.InteractiveChildren(portal)))

	assert.Same(t, els["p0"], en.FirstFocusableChild(portal))
	assert.Same(t, els["p2"], en.LastFocusableChild(portal))
	assert.Same(t, els["p1"], en.FirstInteractiveChild(portal))
	assert.Same(t, els["p2"], en.LastInteractiveChild(portal))

	empty := els["heading"]
	assert.Nil(t, en.FirstInteractiveChild(empty))
	assert.Nil(t, en.LastFocusableChild(empty))
}

func TestEnumerator_NextPrevious(t *testing.T) {
	d, els := buildLookupTree(t)
	var en Enumerator
	body := d.Body()

	assert.Same(t, els["p1"], en.NextInteractiveElement(body, els["before"]))
	assert.Same(t, els["after"], en.NextInteractiveElement(body, els["p2"]))
	assert.Nil(t, en.NextInteractiveElement(body, els["after"]))

	assert.Same(t, els["p2"], en.PreviousInteractiveElement(body, els["after"]))
	assert.Same(t, els["before"], en.PreviousInteractiveElement(body, els["p1"]))
	assert.Nil(t, en.PreviousInteractiveElement(body, els["before"]))

	outside := d.CreateElement("button")
	assert.Nil(t, en.NextInteractiveElement(body, outside))
	assert.Nil(t, en.PreviousInteractiveElement(body, outside))
	assert.Nil(t, en.NextInteractiveElement(body, nil))
}

func TestHitGrid(t *testing.T) {
	d := NewDocument()
	d.Body().SetBounds(NewRect(0, 0, 10, 4))
	panel := d.CreateElement("div")
	panel.SetBounds(NewRect(0, 0, 10, 2))
	require.NoError(t, d.Body().AppendChild(panel))
	btn := d.CreateElement("button")
	btn.SetBounds(NewRect(2, 1, 4, 1))
	require.NoError(t, panel.AppendChild(btn))
	label := d.CreateText("ok")
	label.SetBounds(NewRect(0, 3, 2, 1))
	require.NoError(t, d.Body().AppendChild(label))
	hidden := d.CreateElement("button")
	hidden.SetHidden(true)
	hidden.SetBounds(NewRect(8, 3, 2, 1))
	require.NoError(t, d.Body().AppendChild(hidden))

	g := NewHitGrid(10, 4)
	g.Rebuild(d.Body())

	assert.Equal(t, Node(btn), g.NodeAt(3, 1))
	assert.Equal(t, Node(panel), g.NodeAt(0, 0))
	assert.Equal(t, Node(label), g.NodeAt(1, 3))
	assert.Equal(t, Node(d.Body()), g.NodeAt(9, 3), "hidden elements are not hit")
	assert.Nil(t, g.NodeAt(-1, 0))
	assert.Nil(t, g.NodeAt(10, 0))

	g.Resize(5, 5)
	assert.Nil(t, g.NodeAt(0, 0), "resize clears")
}

func TestRectIntersection(t *testing.T) {
	r := NewRect(0, 0, 5, 5)
	assert.Equal(t, NewRect(3, 3, 2, 2), r.Intersection(NewRect(3, 3, 10, 10)))
	assert.True(t, r.Intersection(NewRect(6, 6, 1, 1)).Empty())
	assert.True(t, r.Contains(4, 4))
	assert.False(t, r.Contains(5, 0))
}
