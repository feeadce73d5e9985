// Package config loads the YAML file that describes a tabstop scene: the
// element layout, the tab-stop portals and arrow-key groups wired into it,
// and the logging and metrics settings of the process.
package config

import (
	"bytes"
	stderrors "errors"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/odvcencio/tabstop/pkg/errors"
)

// Config is the root configuration.
type Config struct {
	Logging LoggingConfig  `yaml:"logging"`
	Metrics MetricsConfig  `yaml:"metrics"`
	UI      UIConfig       `yaml:"ui"`
	Layout  Node           `yaml:"layout"`
	Portals []PortalConfig `yaml:"portals"`
	Groups  []GroupConfig  `yaml:"groups"`
}

// LoggingConfig controls the structured logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// File receives JSON log lines. Empty discards logs, since stderr
	// belongs to the terminal UI.
	File string `yaml:"file"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"`
}

// UIConfig controls the runtime.
type UIConfig struct {
	StatusLine bool `yaml:"status_line"`
}

// Node describes one element of the layout tree. A node with tag "text"
// becomes a text leaf whose content is Label.
type Node struct {
	ID       string `yaml:"id"`
	Tag      string `yaml:"tag"`
	Label    string `yaml:"label"`
	Href     string `yaml:"href"`
	X        int    `yaml:"x"`
	Y        int    `yaml:"y"`
	Width    int    `yaml:"width"`
	Height   int    `yaml:"height"`
	TabIndex *int   `yaml:"tabindex"`
	Disabled bool   `yaml:"disabled"`
	Hidden   bool   `yaml:"hidden"`
	Editable bool   `yaml:"editable"`
	Children []Node `yaml:"children"`
}

// TextTag marks a layout node as a text leaf.
const TextTag = "text"

// PortalConfig places a container's tab stops after or before an anchor.
// Values are element ids.
type PortalConfig struct {
	Container  string `yaml:"container"`
	After      string `yaml:"after"`
	Before     string `yaml:"before"`
	AutoEngage *bool  `yaml:"auto_engage"`
}

// Engages reports whether the portal starts engaged. Defaults to true.
func (p PortalConfig) Engages() bool {
	return p.AutoEngage == nil || *p.AutoEngage
}

// GroupConfig turns a set of elements into one tab stop navigated with
// arrow keys. Values are element ids.
type GroupConfig struct {
	Container  string   `yaml:"container"`
	Members    []string `yaml:"members"`
	Horizontal bool     `yaml:"horizontal"`
	Vertical   bool     `yaml:"vertical"`
	Loop       bool     `yaml:"loop"`
}

// Load reads the file at path over the defaults, applies environment
// overrides, and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigLoad, "read config file").
			WithContext("path", path)
	}

	cfg, err := decode(data)
	if err != nil {
		return nil, err
	}
	ApplyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes YAML over the defaults and validates the result. A
// document that declares a layout replaces the default one entirely.
func Parse(data []byte) (*Config, error) {
	cfg, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func decode(data []byte) (*Config, error) {
	cfg := Default()

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigParse, "parse config")
	}
	// Scene sections replace the defaults rather than merging into them.
	if _, ok := raw["layout"]; ok {
		cfg.Layout = Node{}
		cfg.Portals = nil
		cfg.Groups = nil
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, errors.ErrCodeConfigParse, "parse config")
	}
	return cfg, nil
}

// ApplyEnvOverrides applies TABSTOP_* environment variables to cfg.
func ApplyEnvOverrides(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("TABSTOP_LOG_LEVEL")); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv("TABSTOP_LOG_FILE")); v != "" {
		cfg.Logging.File = v
	}
	if v := strings.TrimSpace(os.Getenv("TABSTOP_METRICS_ADDR")); v != "" {
		cfg.Metrics.Addr = v
		cfg.Metrics.Enabled = true
	}
	if v, ok := envBool("TABSTOP_METRICS_ENABLED"); ok {
		cfg.Metrics.Enabled = v
	}
	if v, ok := envBool("TABSTOP_STATUS_LINE"); ok {
		cfg.UI.StatusLine = v
	}
}

func envBool(key string) (bool, bool) {
	val := os.Getenv(key)
	if val == "" {
		return false, false
	}
	switch strings.ToLower(val) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}
