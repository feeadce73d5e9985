package config

import (
	"strconv"
	"strings"

	"github.com/odvcencio/tabstop/pkg/errors"
)

var validLevels = map[string]bool{
	"":        true,
	"debug":   true,
	"info":    true,
	"warn":    true,
	"warning": true,
	"error":   true,
}

// Validate checks the settings and that every id referenced by a portal or
// group names a layout element.
func (c *Config) Validate() error {
	if !validLevels[strings.ToLower(strings.TrimSpace(c.Logging.Level))] {
		return errors.Newf(errors.ErrCodeConfigInvalid, "invalid log level: %s (valid: debug, info, warn, error)", c.Logging.Level)
	}
	if c.Metrics.Enabled && strings.TrimSpace(c.Metrics.Addr) == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "metrics.addr is required when metrics are enabled")
	}

	ids, err := c.Layout.index()
	if err != nil {
		return err
	}

	for i, p := range c.Portals {
		if err := p.validate(ids); err != nil {
			return err.WithContext("portal", i)
		}
	}
	for i, g := range c.Groups {
		if err := g.validate(ids); err != nil {
			return err.WithContext("group", i)
		}
	}
	return nil
}

// index returns the ids in the layout tree with their tags, rejecting
// duplicates and negative geometry.
func (n Node) index() (map[string]string, error) {
	ids := make(map[string]string)
	var walk func(n Node, path string) error
	walk = func(n Node, path string) error {
		if n.Width < 0 || n.Height < 0 {
			return errors.New(errors.ErrCodeLayoutInvalid, "negative size").WithContext("node", path)
		}
		if n.Tag == TextTag && len(n.Children) > 0 {
			return errors.New(errors.ErrCodeLayoutInvalid, "text nodes cannot have children").WithContext("node", path)
		}
		if n.ID != "" {
			if _, dup := ids[n.ID]; dup {
				return errors.Newf(errors.ErrCodeLayoutInvalid, "duplicate id %q", n.ID).WithContext("node", path)
			}
			ids[n.ID] = n.Tag
		}
		for i, child := range n.Children {
			if err := walk(child, childPath(path, child, i)); err != nil {
				return err
			}
		}
		return nil
	}
	return ids, walk(n, "layout")
}

func childPath(parent string, child Node, i int) string {
	if child.ID != "" {
		return parent + "/" + child.ID
	}
	return parent + "/" + child.Tag + "[" + strconv.Itoa(i) + "]"
}

func (p PortalConfig) validate(ids map[string]string) *errors.Error {
	if p.Container == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "portal container is required")
	}
	if p.After == "" && p.Before == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "portal needs an after or before anchor").
			WithContext("container", p.Container)
	}
	for _, ref := range []string{p.Container, p.After, p.Before} {
		if ref == "" {
			continue
		}
		if _, ok := ids[ref]; !ok {
			return errors.Newf(errors.ErrCodeConfigInvalid, "portal references unknown id %q", ref)
		}
	}
	if ids[p.Container] == TextTag {
		return errors.New(errors.ErrCodeConfigInvalid, "portal container must be an element").
			WithContext("container", p.Container)
	}
	return nil
}

func (g GroupConfig) validate(ids map[string]string) *errors.Error {
	if g.Container == "" {
		return errors.New(errors.ErrCodeConfigInvalid, "group container is required")
	}
	if _, ok := ids[g.Container]; !ok {
		return errors.Newf(errors.ErrCodeConfigInvalid, "group references unknown id %q", g.Container)
	}
	if len(g.Members) == 0 {
		return errors.New(errors.ErrCodeConfigInvalid, "group needs at least one member").
			WithContext("container", g.Container)
	}
	if !g.Horizontal && !g.Vertical {
		return errors.New(errors.ErrCodeConfigInvalid, "group needs a horizontal or vertical axis").
			WithContext("container", g.Container)
	}
	for _, m := range g.Members {
		tag, ok := ids[m]
		if !ok {
			return errors.Newf(errors.ErrCodeConfigInvalid, "group references unknown id %q", m)
		}
		if tag == TextTag {
			return errors.Newf(errors.ErrCodeConfigInvalid, "group member %q is a text node", m)
		}
	}
	return nil
}
