// Package scene assembles a dom.Document from configuration and wires the
// tab-stop portals and arrow-key groups it declares.
package scene

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/odvcencio/tabstop/pkg/config"
	"github.com/odvcencio/tabstop/pkg/errors"
	"github.com/odvcencio/tabstop/pkg/focus"
	"github.com/odvcencio/tabstop/pkg/logging"
	"github.com/odvcencio/tabstop/pkg/ui/dom"
)

// Scene is a built document together with the focus behaviors attached to
// it.
type Scene struct {
	Document *dom.Document
	Portals  []*focus.TabStopPortal
	Groups   []*focus.ArrowNavigator

	logger *logging.Logger
}

// Option configures Build.
type Option func(*options)

type options struct {
	logger *logging.Logger
	newID  func() string
}

// WithLogger sets the logger handed to portals and used for build logs.
func WithLogger(l *logging.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithIDGenerator replaces the generator used for elements declared
// without an id.
func WithIDGenerator(fn func() string) Option {
	return func(o *options) {
		o.newID = fn
	}
}

// Build creates the document described by cfg.Layout, engages the arrow
// groups, and creates the portals. Focus starts on the body.
func Build(cfg *config.Config, opts ...Option) (*Scene, error) {
	if cfg == nil {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "scene requires a config")
	}
	o := options{newID: func() string { return "el-" + uuid.NewString() }}
	for _, opt := range opts {
		opt(&o)
	}
	logger := logging.OrDiscard(o.logger)

	doc := dom.NewDocument()
	b := builder{doc: doc, newID: o.newID}
	b.apply(doc.Body(), cfg.Layout)
	for _, child := range cfg.Layout.Children {
		if err := b.build(doc.Body(), child); err != nil {
			return nil, err
		}
	}

	s := &Scene{Document: doc, logger: logger.WithComponent("scene")}

	for i, g := range cfg.Groups {
		nav, err := s.group(g)
		if err != nil {
			return nil, err.WithContext("group", i)
		}
		s.Groups = append(s.Groups, nav)
	}
	// Engaging a group focuses its active member.
	doc.Focus(doc.Body())

	for i, p := range cfg.Portals {
		portal, err := s.portal(p, logger)
		if err != nil {
			return nil, errors.Wrap(err, errors.GetCode(err), "build portal").WithContext("portal", i)
		}
		s.Portals = append(s.Portals, portal)
	}

	s.logger.Info("scene built",
		slog.Int("portals", len(s.Portals)),
		slog.Int("groups", len(s.Groups)),
	)
	return s, nil
}

// Close disengages every portal and group.
func (s *Scene) Close() {
	for _, p := range s.Portals {
		p.Disengage()
	}
	for _, g := range s.Groups {
		g.Disengage()
	}
}

func (s *Scene) lookup(id, role string) (*dom.Element, *errors.Error) {
	el := s.Document.ElementByID(id)
	if el == nil {
		return nil, errors.Newf(errors.ErrCodeConfigInvalid, "%s references unknown id %q", role, id)
	}
	return el, nil
}

func (s *Scene) group(g config.GroupConfig) (*focus.ArrowNavigator, *errors.Error) {
	container, err := s.lookup(g.Container, "group")
	if err != nil {
		return nil, err
	}

	members := make([]dom.Node, 0, len(g.Members))
	for _, id := range g.Members {
		el, err := s.lookup(id, "group")
		if err != nil {
			return nil, err
		}
		if !container.Contains(el) {
			return nil, errors.Newf(errors.ErrCodeConfigInvalid, "group member %q is outside its container", id).
				WithContext("container", g.Container)
		}
		members = append(members, el)
	}

	list, lerr := focus.NewDOMOrderList(container, members...)
	if lerr != nil {
		return nil, errors.Wrap(lerr, errors.ErrCodeConfigInvalid, "build group list")
	}
	nav, nerr := focus.NewArrowNavigator(container, list.ElementList, focus.ArrowOptions{
		Horizontal: g.Horizontal,
		Vertical:   g.Vertical,
		Loop:       g.Loop,
	}, focus.WithInspector(s.Document.Inspector()))
	if nerr != nil {
		return nil, errors.Wrap(nerr, errors.ErrCodeConfigInvalid, "build group navigator")
	}
	nav.Engage()
	return nav, nil
}

func (s *Scene) portal(p config.PortalConfig, logger *logging.Logger) (*focus.TabStopPortal, error) {
	container, err := s.lookup(p.Container, "portal")
	if err != nil {
		return nil, err
	}
	pc := focus.PortalConfig{
		Container:  container,
		AutoEngage: p.Engages(),
		Logger:     logger,
	}
	if p.After != "" {
		if pc.After, err = s.lookup(p.After, "portal"); err != nil {
			return nil, err
		}
	}
	if p.Before != "" {
		if pc.Before, err = s.lookup(p.Before, "portal"); err != nil {
			return nil, err
		}
	}
	return focus.NewTabStopPortal(pc)
}

type builder struct {
	doc   *dom.Document
	newID func() string
}

func (b builder) build(parent *dom.Element, n config.Node) error {
	if n.Tag == config.TextTag {
		t := b.doc.CreateText(n.Label)
		t.SetBounds(dom.NewRect(n.X, n.Y, n.Width, n.Height))
		return b.append(parent, t)
	}

	tag := n.Tag
	if tag == "" {
		tag = "div"
	}
	el := b.doc.CreateElement(tag)
	b.apply(el, n)
	if el.ID() == "" {
		el.SetID(b.newID())
	}
	if err := b.append(parent, el); err != nil {
		return err
	}
	for _, child := range n.Children {
		if err := b.build(el, child); err != nil {
			return err
		}
	}
	return nil
}

func (b builder) apply(el *dom.Element, n config.Node) {
	if n.ID != "" {
		el.SetID(n.ID)
	}
	el.SetLabel(n.Label)
	el.SetHref(n.Href)
	el.SetBounds(dom.NewRect(n.X, n.Y, n.Width, n.Height))
	el.SetDisabled(n.Disabled)
	el.SetHidden(n.Hidden)
	el.SetEditable(n.Editable)
	if n.TabIndex != nil {
		el.SetTabIndex(*n.TabIndex)
	}
}

func (b builder) append(parent *dom.Element, child dom.Node) error {
	if err := parent.AppendChild(child); err != nil {
		return errors.Wrap(err, errors.ErrCodeLayoutInvalid, "append layout node").
			WithContext("parent", parent.String())
	}
	return nil
}
