package toggle

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/yllada/theme-toggle/common"
	"github.com/yllada/theme-toggle/theme"
)

// ThemeStore is the persisted light-theme flag.
type ThemeStore interface {
	ReadIsLight() bool
	WriteIsLight(isLight bool) error
}

// IconSetter displays the glyph depicting a mode.
type IconSetter interface {
	ShowGlyph(m theme.Mode) error
}

// Cycle describes one processed event.
type Cycle struct {
	ID       uuid.UUID
	Event    Event
	From     theme.Mode
	To       theme.Mode
	WriteErr error
}

// Worker consumes events from a Dispatcher and applies them.
type Worker struct {
	store          ThemeStore
	icon           IconSetter
	events         *Dispatcher
	logger         common.Logger
	broadcaster    theme.Broadcaster
	onWriteFailure func(error)
}

// Option configures a Worker.
type Option func(*Worker)

// WithLogger sets the worker's logger.
func WithLogger(logger common.Logger) Option {
	return func(w *Worker) {
		w.logger = logger
	}
}

// WithBroadcaster announces successful writes to other applications.
func WithBroadcaster(b theme.Broadcaster) Option {
	return func(w *Worker) {
		w.broadcaster = b
	}
}

// WithWriteFailureHandler is called with the error whenever persisting a
// toggle fails. The icon is still updated.
func WithWriteFailureHandler(fn func(error)) Option {
	return func(w *Worker) {
		w.onWriteFailure = fn
	}
}

// NewWorker creates a Worker.
func NewWorker(store ThemeStore, icon IconSetter, events *Dispatcher, opts ...Option) *Worker {
	w := &Worker{
		store:  store,
		icon:   icon,
		events: events,
		logger: common.NopLogger{},
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Run processes events until the dispatcher is closed, returning nil, or
// until the icon cannot be updated, returning an error wrapping
// common.ErrIconUpdate. Events are handled strictly in the order sent.
func (w *Worker) Run() error {
	w.logger.Debug("Toggle worker started")
	for {
		e, ok := w.events.Recv()
		if !ok {
			w.logger.Debug("Dispatcher closed, toggle worker stopping")
			return nil
		}

		var err error
		switch e {
		case EventToggle:
			_, err = w.Toggle()
		case EventRefresh:
			_, err = w.Refresh()
		default:
			w.logger.Warn("Ignoring unknown event %d", int(e))
		}
		if err != nil {
			return err
		}
	}
}

// Toggle runs one toggle cycle: read the stored theme, write its inverse to
// both flags and show the glyph for the mode the next click switches to.
// A failed write is reported but does not stop the icon from flipping.
func (w *Worker) Toggle() (Cycle, error) {
	c := Cycle{ID: uuid.New(), Event: EventToggle}

	current := w.store.ReadIsLight()
	next := !current
	c.From, c.To = theme.ModeOf(current), theme.ModeOf(next)

	if err := w.store.WriteIsLight(next); err != nil {
		c.WriteErr = err
		w.logger.Warn("Cycle %s: could not persist %s theme: %v", c.ID, c.To, err)
		if w.onWriteFailure != nil {
			w.onWriteFailure(err)
		}
	} else {
		w.logger.Info("Theme switched from %s to %s", c.From, c.To)
		w.broadcast(c.ID)
	}

	if err := w.show(next); err != nil {
		return c, fmt.Errorf("cycle %s: %w", c.ID, err)
	}
	return c, nil
}

// Refresh re-reads the stored theme and updates the icon without writing.
func (w *Worker) Refresh() (Cycle, error) {
	c := Cycle{ID: uuid.New(), Event: EventRefresh}

	current := w.store.ReadIsLight()
	c.From, c.To = theme.ModeOf(current), theme.ModeOf(current)
	w.logger.Debug("Cycle %s: refreshing icon for %s theme", c.ID, c.To)

	if err := w.show(current); err != nil {
		return c, fmt.Errorf("cycle %s: %w", c.ID, err)
	}
	return c, nil
}

func (w *Worker) show(isLight bool) error {
	if err := w.icon.ShowGlyph(theme.ActionMode(isLight)); err != nil {
		return fmt.Errorf("%w: %w", common.ErrIconUpdate, err)
	}
	return nil
}

func (w *Worker) broadcast(id uuid.UUID) {
	if w.broadcaster == nil {
		return
	}
	if err := w.broadcaster.Broadcast(); err != nil {
		w.logger.Warn("Cycle %s: settings broadcast failed: %v", id, err)
	}
}
