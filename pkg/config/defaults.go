package config

// Default returns the built-in configuration: info logging, metrics off,
// and a small demo scene with a menu portalled in after its trigger and an
// arrow-key toolbar.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Metrics: MetricsConfig{Addr: ":9090"},
		UI:      UIConfig{StatusLine: true},
		Layout:  demoLayout(),
		Portals: []PortalConfig{
			{Container: "menu", After: "menu-trigger"},
		},
		Groups: []GroupConfig{
			{Container: "toolbar", Members: []string{"bold", "italic", "underline"}, Horizontal: true, Loop: true},
		},
	}
}

func demoLayout() Node {
	return Node{
		Tag: "body", Width: 80, Height: 24,
		Children: []Node{
			{Tag: TextTag, Label: "tabstop: Tab/Shift+Tab to move, arrows in the toolbar, Ctrl+C to quit", X: 2, Y: 0, Width: 76, Height: 1},
			{ID: "new", Tag: "button", Label: "[ New ]", X: 2, Y: 2, Width: 9, Height: 1},
			{ID: "menu-trigger", Tag: "button", Label: "[ Menu ]", X: 13, Y: 2, Width: 10, Height: 1},
			{ID: "save", Tag: "button", Label: "[ Save ]", X: 25, Y: 2, Width: 10, Height: 1},
			{
				ID: "toolbar", Tag: "div", X: 2, Y: 4, Width: 40, Height: 1,
				Children: []Node{
					{ID: "bold", Tag: "button", Label: "[B]", X: 2, Y: 4, Width: 3, Height: 1},
					{ID: "italic", Tag: "button", Label: "[I]", X: 6, Y: 4, Width: 3, Height: 1},
					{ID: "underline", Tag: "button", Label: "[U]", X: 10, Y: 4, Width: 3, Height: 1},
				},
			},
			{ID: "search", Tag: "input", Label: "search: ________", X: 2, Y: 6, Width: 20, Height: 1},
			{
				ID: "menu", Tag: "div", X: 2, Y: 10, Width: 20, Height: 5,
				Children: []Node{
					{Tag: TextTag, Label: "Menu", X: 2, Y: 10, Width: 20, Height: 1},
					{ID: "open", Tag: "button", Label: "Open", X: 4, Y: 11, Width: 16, Height: 1},
					{ID: "export", Tag: "button", Label: "Export", X: 4, Y: 12, Width: 16, Height: 1},
					{ID: "close", Tag: "button", Label: "Close", X: 4, Y: 13, Width: 16, Height: 1},
				},
			},
		},
	}
}
