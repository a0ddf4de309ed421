package binding

import (
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

var (
	meter = otel.Meter("binding")

	metricsOnce sync.Once
	metrics     *bindingMetrics
)

type bindingMetrics struct {
	events   metric.Int64Counter
	moves    metric.Int64Counter
	finished metric.Int64Counter
}

func defaultMetrics() *bindingMetrics {
	metricsOnce.Do(func() {
		metrics = &bindingMetrics{
			events:   counter("bgk.events", "Interaction events handled by the dispatcher"),
			moves:    counter("bgk.moves", "Move attempts on a game board"),
			finished: counter("bgk.games.finished", "Games that reached a won or drawn state"),
		}
	})
	return metrics
}

func counter(name, description string) metric.Int64Counter {
	c, err := meter.Int64Counter(name, metric.WithDescription(description))
	if err != nil {
		slog.Warn("failed to create counter, using no-op", "metric.name", name, "error", err)
		return noop.Int64Counter{}
	}
	return c
}
