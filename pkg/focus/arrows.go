package focus

import (
	"github.com/odvcencio/tabstop/pkg/errors"
	"github.com/odvcencio/tabstop/pkg/ui/dom"
	"github.com/odvcencio/tabstop/pkg/ui/terminal"
)

// ArrowOptions selects which arrow keys move the selection.
type ArrowOptions struct {
	// Horizontal enables Left and Right.
	Horizontal bool
	// Vertical enables Up and Down.
	Vertical bool
	// Loop wraps from the last member to the first and back.
	Loop bool
}

// ArrowNavigator moves a RovingSelection with arrow keys pressed inside a
// container. Home and End jump to the ends when either axis is enabled.
type ArrowNavigator struct {
	container *dom.Element
	rover     *RovingSelection
	opts      ArrowOptions

	engaged bool
	reg     *dom.Registration
}

// NewArrowNavigator creates a navigator over elements. The list is shared
// with the navigator's rover and stays owned by the caller.
func NewArrowNavigator(container *dom.Element, elements *ElementList, opts ArrowOptions, roving ...RovingOption) (*ArrowNavigator, error) {
	if container == nil {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "arrow navigator requires a container")
	}
	if elements == nil {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "arrow navigator requires an element list").
			WithContext("container", container.String())
	}
	return &ArrowNavigator{
		container: container,
		rover:     NewRovingSelection(elements, roving...),
		opts:      opts,
	}, nil
}

// Rover returns the selection the navigator drives.
func (a *ArrowNavigator) Rover() *RovingSelection {
	return a.rover
}

// Engaged reports whether the key listener is attached.
func (a *ArrowNavigator) Engaged() bool {
	return a.engaged
}

// Engage focuses the active member and starts listening for keys.
func (a *ArrowNavigator) Engage() {
	if a.engaged {
		return
	}
	a.engaged = true
	a.rover.Refocus()
	a.reg = a.container.AddEventListener(dom.EventKeyDown, false, a.handleKeyDown)
}

// Disengage clears the roving tab indexes and stops listening.
func (a *ArrowNavigator) Disengage() {
	if !a.engaged {
		return
	}
	a.engaged = false
	a.rover.Disengage()
	a.reg.Remove()
	a.reg = nil
}

func (a *ArrowNavigator) handleKeyDown(ev *dom.Event) {
	if !a.engaged || ev.Ctrl || ev.Alt {
		return
	}
	handled := true
	switch {
	case ev.Key == terminal.KeyRight && a.opts.Horizontal,
		ev.Key == terminal.KeyDown && a.opts.Vertical:
		a.next()
	case ev.Key == terminal.KeyLeft && a.opts.Horizontal,
		ev.Key == terminal.KeyUp && a.opts.Vertical:
		a.prev()
	case ev.Key == terminal.KeyHome && (a.opts.Horizontal || a.opts.Vertical):
		a.rover.First()
	case ev.Key == terminal.KeyEnd && (a.opts.Horizontal || a.opts.Vertical):
		a.rover.Last()
	default:
		handled = false
	}
	if handled {
		ev.PreventDefault()
	}
}

func (a *ArrowNavigator) next() {
	if a.opts.Loop && a.rover.Index() == a.rover.Elements().Len()-1 {
		a.rover.First()
		return
	}
	a.rover.Next()
}

func (a *ArrowNavigator) prev() {
	if a.opts.Loop && a.rover.Index() == 0 {
		a.rover.Last()
		return
	}
	a.rover.Prev()
}
