package binding

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ctchen222/BoardGameKit/internal/events"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("binding")

var (
	ErrDispatcherStopped = errors.New("dispatcher stopped")
	ErrUnknownEvent      = errors.New("unknown event kind")
)

// ExitCode is passed to the Terminator on an exit event.
const ExitCode = 0

type request struct {
	ctx   context.Context
	event events.Event
	done  chan error
}

// Dispatcher is the single place events enter the core. Run drains events on
// one goroutine so handlers never run concurrently.
type Dispatcher struct {
	menu       *Menu
	terminator Terminator
	requests   chan *request
	stopped    chan struct{}
	metrics    *bindingMetrics
}

func NewDispatcher(menu *Menu, terminator Terminator) *Dispatcher {
	return &Dispatcher{
		menu:       menu,
		terminator: terminator,
		requests:   make(chan *request),
		stopped:    make(chan struct{}),
		metrics:    defaultMetrics(),
	}
}

// Run handles events until ctx is cancelled.
func (d *Dispatcher) Run(ctx context.Context) {
	defer close(d.stopped)
	slog.InfoContext(ctx, "Dispatcher started")

	for {
		select {
		case <-ctx.Done():
			slog.InfoContext(ctx, "Dispatcher stopping")
			return
		case req := <-d.requests:
			req.done <- d.handle(req.ctx, req.event)
		}
	}
}

// Dispatch queues an event and waits for it to be handled.
func (d *Dispatcher) Dispatch(ctx context.Context, ev events.Event) error {
	req := &request{ctx: ctx, event: ev, done: make(chan error, 1)}

	select {
	case d.requests <- req:
	case <-d.stopped:
		return ErrDispatcherStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-req.done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Menu returns the menu controller the dispatcher routes to.
func (d *Dispatcher) Menu() *Menu {
	return d.menu
}

func (d *Dispatcher) handle(ctx context.Context, ev events.Event) error {
	ctx, span := tracer.Start(ctx, "dispatcher.handle", trace.WithAttributes(
		attribute.String("event.kind", string(ev.Kind)),
		attribute.Int("event.index", ev.Index),
		attribute.String("pane.name", d.menu.Active().Name()),
	))
	defer span.End()

	d.metrics.events.Add(ctx, 1, metric.WithAttributes(attribute.String("event.kind", string(ev.Kind))))

	var err error
	switch ev.Kind {
	case events.CellActivated:
		if g := d.menu.ActiveGame(); g != nil {
			err = g.OnCellActivated(ev.Index)
		} else {
			slog.DebugContext(ctx, "cell event with no game shown", "cell.index", ev.Index)
		}
	case events.NewGame:
		if g := d.menu.ActiveGame(); g != nil {
			g.OnNewGameRequested(ev.Starting)
		}
	case events.GameSelected:
		d.menu.OnGameSelected(ev.Index)
	case events.ReturnToMenu:
		d.menu.OnReturnToMenuRequested()
	case events.Exit:
		slog.InfoContext(ctx, "Exit requested")
		d.terminator.Terminate(ExitCode)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownEvent, ev.Kind)
	}

	if err != nil {
		slog.WarnContext(ctx, "event failed", "event.kind", ev.Kind, "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Event failed")
	}
	return err
}
