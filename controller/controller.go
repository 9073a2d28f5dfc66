// Package controller drives the life cycle of a chart: it fetches the rows of
// a source once, builds the dataset and keeps a surface in sync with it.
package controller

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"

	"github.com/midbel/speedchart/animal"
	"github.com/midbel/speedchart/layout"
	"github.com/midbel/speedchart/render"
	"github.com/midbel/speedchart/source"
)

const (
	MsgLoading = "Loading chart data..."
	MsgFailed  = "Failed to load data"
	MsgEmpty   = "No valid data to display. Ensure the source has name, speed, and diet columns."
)

var (
	ErrMounted = errors.New("controller already mounted")
	ErrClosed  = errors.New("controller closed")
)

type Kind int

const (
	Loading Kind = iota
	Error
	Empty
	Ready
)

func (k Kind) String() string {
	switch k {
	case Loading:
		return "loading"
	case Error:
		return "error"
	case Empty:
		return "empty"
	case Ready:
		return "ready"
	default:
		return "unknown"
	}
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// State is a snapshot of the controller. Dataset is only set when Kind is
// Ready.
type State struct {
	Kind    Kind
	Message string
	Dataset animal.Dataset
}

func (s State) Terminal() bool {
	return s.Kind != Loading
}

type Option func(*Controller)

func WithRenderer(r render.Renderer) Option {
	return func(c *Controller) {
		if r != nil {
			c.renderer = r
		}
	}
}

func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

type result struct {
	rows []animal.RawRow
	err  error
}

type Controller struct {
	src      source.Source
	surface  render.Surface
	renderer render.Renderer
	log      *slog.Logger

	mu     sync.RWMutex
	state  State
	closed bool
	cancel context.CancelFunc

	resize   chan struct{}
	done     chan struct{}
	doneOnce sync.Once
	wg       sync.WaitGroup
}

func New(src source.Source, surface render.Surface, opts ...Option) *Controller {
	c := Controller{
		src:      src,
		surface:  surface,
		renderer: render.NewSVG(render.DefaultOptions()),
		log:      slog.New(slog.NewJSONHandler(io.Discard, nil)),
		state:    State{Kind: Loading, Message: MsgLoading},
		resize:   make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	for _, o := range opts {
		o(&c)
	}
	return &c
}

// Mount draws the loading placeholder and starts fetching the source. It
// returns immediately. The controller can only be mounted once.
func (c *Controller) Mount(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.cancel != nil {
		c.mu.Unlock()
		return ErrMounted
	}
	ctx, c.cancel = context.WithCancel(ctx)
	c.mu.Unlock()

	c.log.Info("controller.mount")
	c.redraw()

	results := make(chan result, 1)
	c.wg.Add(2)
	go func() {
		defer c.wg.Done()
		rows, err := c.src.Fetch(ctx)
		results <- result{
			rows: rows,
			err:  err,
		}
	}()
	go c.loop(ctx, results)
	return nil
}

// Resize asks the controller to measure its surface again and to redraw its
// current state. Requests made while one is pending are merged into it.
func (c *Controller) Resize() {
	select {
	case c.resize <- struct{}{}:
	default:
	}
}

func (c *Controller) State() State {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.state
}

// Done is closed once the controller leaves the Loading state. When the
// controller is closed, or its context cancelled, before the fetch completes,
// the state stays Loading and Done is never closed: wait on it together with
// the context.
func (c *Controller) Done() <-chan struct{} {
	return c.done
}

// Draw renders the current state into surface with the renderer of the
// controller.
func (c *Controller) Draw(surface render.Surface) error {
	return c.DrawWith(surface, c.renderer)
}

// DrawWith renders the current state into surface with rdr.
func (c *Controller) DrawWith(surface render.Surface, rdr render.Renderer) error {
	return draw(surface, rdr, c.State())
}

// Close stops the controller and waits for its goroutines to terminate. A
// fetch still running is cancelled and its result dropped.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	cancel := c.cancel
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	c.wg.Wait()
	c.log.Info("controller.close")
	return nil
}

func (c *Controller) loop(ctx context.Context, results <-chan result) {
	defer c.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case res := <-results:
			results = nil
			if ctx.Err() != nil {
				return
			}
			c.complete(res)
		case <-c.resize:
			c.log.Debug("controller.resize", "state", c.State().Kind.String())
			c.redraw()
		}
	}
}

func (c *Controller) complete(res result) {
	var st State
	if res.err != nil {
		st.Kind = Error
		st.Message = res.err.Error()
		if st.Message == "" {
			st.Message = MsgFailed
		}
		c.log.Error("controller.fetch.failed", "err", res.err)
	} else {
		ds := animal.Build(res.rows)
		c.log.Info("controller.fetch.done",
			"rows", len(res.rows),
			"valid", ds.Total(),
			"records", ds.Len(),
			"rejected", len(ds.Rejected()),
		)
		for _, rej := range ds.Rejected() {
			c.log.Debug("controller.row.rejected", "line", rej.Line, "field", rej.Field, "reason", rej.Err.Error())
		}
		if ds.Empty() {
			st.Kind = Empty
			st.Message = MsgEmpty
		} else {
			st.Kind = Ready
			st.Dataset = ds
		}
	}
	c.mu.Lock()
	c.state = st
	c.mu.Unlock()

	c.redraw()
	c.doneOnce.Do(func() {
		close(c.done)
	})
}

func (c *Controller) redraw() {
	st := c.State()
	if err := draw(c.surface, c.renderer, st); err != nil {
		c.log.Error("controller.render.failed", "state", st.Kind.String(), "err", err)
	}
}

func draw(surface render.Surface, rdr render.Renderer, st State) error {
	switch st.Kind {
	case Ready:
		lay := layout.Compute(st.Dataset, surface.Size())
		return rdr.Render(surface, st.Dataset, lay)
	case Loading:
		return rdr.Placeholder(surface, MsgLoading)
	case Error:
		msg := st.Message
		if msg == "" {
			msg = MsgFailed
		}
		return rdr.Placeholder(surface, msg)
	default:
		return rdr.Placeholder(surface, MsgEmpty)
	}
}
