package metrics

import (
	"context"

	"github.com/mdhasanali39/taskQuest-server/internal/events"
)

// EventCounter is an events.EventHandler that counts task events by type.
type EventCounter struct {
	metrics *Metrics
}

var _ events.EventHandler = (*EventCounter)(nil)

// EventHandler returns a counter to register on the task event emitter.
func (m *Metrics) EventHandler() *EventCounter {
	return &EventCounter{metrics: m}
}

// HandleEvent implements events.EventHandler. It never fails.
func (h *EventCounter) HandleEvent(_ context.Context, event *events.TaskEvent) error {
	h.metrics.taskEvents.WithLabelValues(event.Type).Inc()
	return nil
}
