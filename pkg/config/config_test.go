package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/odvcencio/tabstop/pkg/config"
	"github.com/odvcencio/tabstop/pkg/errors"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.Logging.Level)
	assert.False(t, cfg.Metrics.Enabled)
	require.Len(t, cfg.Portals, 1)
	assert.True(t, cfg.Portals[0].Engages())
	require.Len(t, cfg.Groups, 1)
	assert.Equal(t, []string{"bold", "italic", "underline"}, cfg.Groups[0].Members)
}

func TestLoad_File(t *testing.T) {
	cfg, err := config.Load(filepath.Join("testdata", "layout.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "127.0.0.1:9191", cfg.Metrics.Addr)
	assert.False(t, cfg.UI.StatusLine)

	assert.Equal(t, 60, cfg.Layout.Width)
	require.Len(t, cfg.Layout.Children, 2)
	list := cfg.Layout.Children[1]
	require.Len(t, list.Children, 3)
	assert.Equal(t, config.TextTag, list.Children[0].Tag)
	require.NotNil(t, list.Children[2].TabIndex)
	assert.Equal(t, 0, *list.Children[2].TabIndex)
	assert.Nil(t, list.Children[1].TabIndex)

	require.Len(t, cfg.Portals, 1)
	assert.Equal(t, config.PortalConfig{Container: "list", After: "trigger"}, cfg.Portals[0])
	require.Len(t, cfg.Groups, 1)
	assert.True(t, cfg.Groups[0].Vertical)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.True(t, errors.IsCode(err, errors.ErrCodeConfigLoad))
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("logging:\n  level: warn\n"), 0o644))

	t.Setenv("TABSTOP_LOG_LEVEL", "error")
	t.Setenv("TABSTOP_METRICS_ADDR", ":9999")
	t.Setenv("TABSTOP_STATUS_LINE", "off")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Logging.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, ":9999", cfg.Metrics.Addr)
	assert.False(t, cfg.UI.StatusLine)
}

func TestParse_KeepsDefaultSceneWithoutLayout(t *testing.T) {
	cfg, err := config.Parse([]byte("logging:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, config.Default().Layout, cfg.Layout)
	assert.Len(t, cfg.Portals, 1)
}

func TestParse_LayoutReplacesDefaultScene(t *testing.T) {
	cfg, err := config.Parse([]byte(`
layout:
  tag: body
  children:
    - id: only
      tag: button
`))
	require.NoError(t, err)
	require.Len(t, cfg.Layout.Children, 1)
	assert.Empty(t, cfg.Portals, "default portals point into the default layout")
	assert.Empty(t, cfg.Groups)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		code errors.ErrorCode
	}{
		{"malformed", "layout: [", errors.ErrCodeConfigParse},
		{"unknown field", "logging:\n  colour: blue\n", errors.ErrCodeConfigParse},
		{"bad level", "logging:\n  level: loud\n", errors.ErrCodeConfigInvalid},
		{"metrics without addr", "metrics:\n  enabled: true\n  addr: ''\n", errors.ErrCodeConfigInvalid},
		{"duplicate id", `
layout:
  children:
    - {id: a, tag: button}
    - {id: a, tag: button}
`, errors.ErrCodeLayoutInvalid},
		{"negative size", `
layout:
  children:
    - {id: a, tag: button, width: -1}
`, errors.ErrCodeLayoutInvalid},
		{"text with children", `
layout:
  children:
    - tag: text
      children:
        - {id: a, tag: button}
`, errors.ErrCodeLayoutInvalid},
		{"portal without anchor", `
layout:
  children:
    - {id: box, tag: div}
portals:
  - container: box
`, errors.ErrCodeConfigInvalid},
		{"portal unknown anchor", `
layout:
  children:
    - {id: box, tag: div}
portals:
  - {container: box, after: ghost}
`, errors.ErrCodeConfigInvalid},
		{"group unknown member", `
layout:
  children:
    - {id: bar, tag: div}
groups:
  - {container: bar, members: [ghost], horizontal: true}
`, errors.ErrCodeConfigInvalid},
		{"group without axis", `
layout:
  children:
    - id: bar
      tag: div
      children:
        - {id: b, tag: button}
groups:
  - {container: bar, members: [b]}
`, errors.ErrCodeConfigInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, tt.code), "got %v", err)
		})
	}
}

func TestPortalConfig_Engages(t *testing.T) {
	off := false
	assert.False(t, config.PortalConfig{AutoEngage: &off}.Engages())
	assert.True(t, config.PortalConfig{}.Engages())
}
