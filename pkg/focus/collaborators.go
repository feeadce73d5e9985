package focus

import "github.com/odvcencio/tabstop/pkg/ui/dom"

//go:generate mockgen -destination=mock_enumerator_test.go -package=focus github.com/odvcencio/tabstop/pkg/focus Enumerator

// Inspector decides whether a node can take focus and whether Tab reaches it.
type Inspector interface {
	IsFocusable(n dom.Node) bool
	IsInteractive(n dom.Node) bool
}

// Enumerator looks up focus targets below a container. Every method returns
// nil when nothing matches.
type Enumerator interface {
	FirstFocusableChild(c dom.Searchable) *dom.Element
	LastFocusableChild(c dom.Searchable) *dom.Element
	FirstInteractiveChild(c dom.Searchable) *dom.Element
	LastInteractiveChild(c dom.Searchable) *dom.Element
	NextInteractiveElement(scope dom.Searchable, from dom.Node) *dom.Element
	PreviousInteractiveElement(scope dom.Searchable, from dom.Node) *dom.Element
}

var (
	_ Inspector  = dom.Inspector{}
	_ Enumerator = dom.Enumerator{}
)
