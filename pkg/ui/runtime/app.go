// Package runtime drives a dom.Document against a terminal backend.
//
// Input is read on its own goroutine and handed to a single loop goroutine,
// which is the only code that touches the document. Anything else that
// needs the document goes through Call.
package runtime

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/odvcencio/tabstop/pkg/errors"
	"github.com/odvcencio/tabstop/pkg/logging"
	"github.com/odvcencio/tabstop/pkg/ui/backend"
	"github.com/odvcencio/tabstop/pkg/ui/dom"
	"github.com/odvcencio/tabstop/pkg/ui/terminal"
)

// AppConfig configures a runtime App.
type AppConfig struct {
	Backend  backend.Backend
	Document *dom.Document
	Logger   *logging.Logger

	// StatusLine reserves the bottom row for the focused element's name.
	StatusLine bool

	// MessageBuffer sizes the inbox between the input goroutine and the
	// loop. Defaults to 128.
	MessageBuffer int
}

// App runs a document against a terminal backend.
type App struct {
	backend    backend.Backend
	doc        *dom.Document
	grid       *dom.HitGrid
	logger     *logging.Logger
	statusLine bool

	inbox chan any
	ready chan struct{}

	running bool
	dirty   bool
}

type call struct {
	fn   func(doc *dom.Document)
	done chan struct{}
}

// NewApp creates a new App from config.
func NewApp(cfg AppConfig) (*App, error) {
	if cfg.Backend == nil {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "backend is required")
	}
	if cfg.Document == nil {
		return nil, errors.New(errors.ErrCodeConfigInvalid, "document is required")
	}
	bufferSize := cfg.MessageBuffer
	if bufferSize <= 0 {
		bufferSize = 128
	}
	return &App{
		backend:    cfg.Backend,
		doc:        cfg.Document,
		grid:       dom.NewHitGrid(0, 0),
		logger:     logging.OrDiscard(cfg.Logger).WithComponent("runtime"),
		statusLine: cfg.StatusLine,
		inbox:      make(chan any, bufferSize),
		ready:      make(chan struct{}),
	}, nil
}

// Ready is closed once the backend is initialized and the first frame is
// drawn.
func (a *App) Ready() <-chan struct{} {
	return a.ready
}

// Post queues a terminal event for the loop. Events are dropped when the
// inbox is full.
func (a *App) Post(ev terminal.Event) {
	select {
	case a.inbox <- ev:
	default:
		a.logger.Warn("inbox full, dropping event", slog.String("event", eventName(ev)))
	}
}

// Call runs fn on the loop goroutine and waits for it to finish. The frame
// is redrawn before Call returns.
func (a *App) Call(ctx context.Context, fn func(doc *dom.Document)) error {
	c := call{fn: fn, done: make(chan struct{})}
	select {
	case a.inbox <- c:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run initializes the backend and processes input until Ctrl+C or context
// cancellation.
func (a *App) Run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if err := a.backend.Init(); err != nil {
		return err
	}
	a.backend.HideCursor()

	ctx, cancel := context.WithCancel(ctx)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer a.backend.Fini()
		defer cancel()
		return a.loop(gctx)
	})
	g.Go(func() error {
		a.pollEvents(gctx)
		return nil
	})
	return g.Wait()
}

func (a *App) loop(ctx context.Context) error {
	w, h := a.backend.Size()
	a.grid.Resize(w, h)
	a.render()
	close(a.ready)
	a.logger.Info("runtime started", slog.Int("width", w), slog.Int("height", h))

	a.running = true
	for a.running {
		select {
		case <-ctx.Done():
			a.logger.Info("runtime stopped", slog.String("reason", "context"))
			return ctx.Err()
		case msg := <-a.inbox:
			a.handle(msg)
		}

		if a.dirty {
			a.render()
			a.dirty = false
		}
	}
	a.logger.Info("runtime stopped", slog.String("reason", "quit"))
	return nil
}

func (a *App) pollEvents(ctx context.Context) {
	for {
		ev := a.backend.PollEvent()
		if ev == nil {
			return
		}
		select {
		case a.inbox <- ev:
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) handle(msg any) {
	switch m := msg.(type) {
	case call:
		if m.fn != nil {
			m.fn(a.doc)
		}
		a.render()
		a.dirty = false
		close(m.done)
	case terminal.KeyEvent:
		if isQuit(m) {
			a.running = false
			return
		}
		a.doc.DispatchKey(m)
		a.dirty = true
	case terminal.MouseEvent:
		if !m.IsPress() {
			return
		}
		a.doc.DispatchMouseDown(a.grid.NodeAt(m.X, m.Y), m)
		a.dirty = true
	case terminal.ResizeEvent:
		a.grid.Resize(m.Width, m.Height)
		a.backend.Sync()
		a.dirty = true
	}
}

func isQuit(ke terminal.KeyEvent) bool {
	return ke.Key == terminal.KeyCtrlC || (ke.Ctrl && (ke.Rune == 'c' || ke.Rune == 'C'))
}

func eventName(ev terminal.Event) string {
	switch ev.(type) {
	case terminal.KeyEvent:
		return "key"
	case terminal.MouseEvent:
		return "mouse"
	case terminal.ResizeEvent:
		return "resize"
	default:
		return "unknown"
	}
}
