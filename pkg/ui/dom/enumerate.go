package dom

// Enumerator finds focusable and interactive descendants in document order.
// The zero value uses the default Inspector.
type Enumerator struct {
	Inspector Inspector
}

// FocusableChildren returns every focusable descendant of c.
func (en Enumerator) FocusableChildren(c Searchable) []*Element {
	return en.collect(c, en.Inspector.IsFocusable)
}

// InteractiveChildren returns every Tab-reachable descendant of c.
func (en Enumerator) InteractiveChildren(c Searchable) []*Element {
	return en.collect(c, en.Inspector.IsInteractive)
}

// FirstFocusableChild returns the first focusable descendant, or nil.
func (en Enumerator) FirstFocusableChild(c Searchable) *Element {
	return first(en.FocusableChildren(c))
}

// LastFocusableChild returns the last focusable descendant, or nil.
func (en Enumerator) LastFocusableChild(c Searchable) *Element {
	return last(en.FocusableChildren(c))
}

// FirstInteractiveChild returns the first interactive descendant, or nil.
func (en Enumerator) FirstInteractiveChild(c Searchable) *Element {
	return first(en.InteractiveChildren(c))
}

// LastInteractiveChild returns the last interactive descendant, or nil.
func (en Enumerator) LastInteractiveChild(c Searchable) *Element {
	return last(en.InteractiveChildren(c))
}

// NextInteractiveElement returns the first interactive element after from
// in the document order of scope. Returns nil when from is not under scope
// or nothing follows it.
func (en Enumerator) NextInteractiveElement(scope Searchable, from Node) *Element {
	if scope == nil || from == nil {
		return nil
	}
	var (
		seen  bool
		found *Element
	)
	scope.Walk(func(n Node) bool {
		if !seen {
			seen = n == from
			return true
		}
		if en.Inspector.IsInteractive(n) {
			found = n.(*Element)
			return false
		}
		return true
	})
	return found
}

// PreviousInteractiveElement returns the last interactive element before
// from in the document order of scope, or nil.
func (en Enumerator) PreviousInteractiveElement(scope Searchable, from Node) *Element {
	if scope == nil || from == nil {
		return nil
	}
	var (
		found     *Element
		candidate *Element
		reached   bool
	)
	scope.Walk(func(n Node) bool {
		if n == from {
			reached = true
			return false
		}
		if en.Inspector.IsInteractive(n) {
			candidate = n.(*Element)
		}
		return true
	})
	if reached {
		found = candidate
	}
	return found
}

func (en Enumerator) collect(c Searchable, keep func(Node) bool) []*Element {
	if c == nil {
		return nil
	}
	var out []*Element
	c.Walk(func(n Node) bool {
		if keep(n) {
			out = append(out, n.(*Element))
		}
		return true
	})
	return out
}

func first(els []*Element) *Element {
	if len(els) == 0 {
		return nil
	}
	return els[0]
}

func last(els []*Element) *Element {
	if len(els) == 0 {
		return nil
	}
	return els[len(els)-1]
}
