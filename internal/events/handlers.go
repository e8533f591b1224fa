package events

import (
	"context"
	"log/slog"
)

// LoggingHandler writes every task event to a structured log at info level.
type LoggingHandler struct {
	logger *slog.Logger
}

// NewLoggingHandler creates a LoggingHandler. A nil logger uses slog.Default().
func NewLoggingHandler(logger *slog.Logger) *LoggingHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingHandler{logger: logger.With("component", "task_event_log")}
}

// HandleEvent implements EventHandler. It never fails.
func (h *LoggingHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	attrs := []any{
		"event_id", event.ID,
		"event_type", event.Type,
		"task_id", event.TaskID,
	}
	if len(event.Payload) > 0 {
		attrs = append(attrs, "payload", string(event.Payload))
	}
	h.logger.InfoContext(ctx, "task event", attrs...)
	return nil
}
