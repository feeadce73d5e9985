package dom

// nativeFocusable lists tags that take focus without a tab index.
// Anchors are handled separately because they need an href.
var nativeFocusable = map[string]bool{
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
	"iframe":   true,
}

// Inspector decides whether nodes can hold focus. The zero value is ready
// to use.
type Inspector struct{}

// IsFocusable reports whether n can take input focus at all: an enabled,
// visible element that is a native control, a link with a target, editable,
// or carries any tab index.
func (Inspector) IsFocusable(n Node) bool {
	el, ok := n.(*Element)
	if !ok || el == nil {
		return false
	}
	if el.disabled {
		return false
	}
	for p := el; p != nil; p = p.parent {
		if p.hidden {
			return false
		}
	}

	if _, has := el.TabIndex(); has {
		return true
	}
	if el.tag == "a" {
		return el.href != ""
	}
	if nativeFocusable[el.tag] {
		return true
	}
	return el.editable
}

// IsInteractive reports whether n is focusable and reachable by Tab, that
// is, not excluded by a negative tab index.
func (i Inspector) IsInteractive(n Node) bool {
	if !i.IsFocusable(n) {
		return false
	}
	idx, has := n.(*Element).TabIndex()
	return !has || idx >= 0
}
