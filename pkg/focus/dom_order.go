package focus

import (
	"github.com/odvcencio/tabstop/pkg/errors"
	"github.com/odvcencio/tabstop/pkg/ui/dom"
)

// DOMOrderList is an ElementList kept in the document order of a scope
// element. It does not watch the tree: order is recomputed when a node is
// added or when Reconcile is called.
type DOMOrderList struct {
	*ElementList
	scope dom.Searchable
}

// NewDOMOrderList creates a list ordered by the descendants of scope.
// Initial nodes that are not under scope are dropped.
func NewDOMOrderList(scope dom.Searchable, nodes ...dom.Node) (*DOMOrderList, error) {
	if scope == nil {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "dom order list requires a scope")
	}
	l := &DOMOrderList{ElementList: NewElementList(nodes...), scope: scope}
	l.Reconcile()
	return l, nil
}

// Scope returns the element order is computed against.
func (l *DOMOrderList) Scope() dom.Searchable {
	return l.scope
}

// Add appends n and reconciles. Returns l for chaining.
func (l *DOMOrderList) Add(n dom.Node) *DOMOrderList {
	l.ElementList.Add(n)
	return l.Reconcile()
}

// Reconcile rebuilds the order from a pre-order walk of the scope. Members
// no longer under the scope are forgotten.
func (l *DOMOrderList) Reconcile() *DOMOrderList {
	if l.Len() == 0 {
		return l
	}
	ordered := make([]dom.Node, 0, l.Len())
	l.scope.Walk(func(n dom.Node) bool {
		if l.Has(n) {
			ordered = append(ordered, n)
		}
		return true
	})
	l.replace(ordered)
	return l
}
