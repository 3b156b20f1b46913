package events

import (
	"context"
	"log/slog"

	"github.com/phrazzld/tasks-api/internal/platform/logger"
)

// AuditHandler writes every task event to the log at info level.
type AuditHandler struct {
	logger *slog.Logger
}

// NewAuditHandler returns an AuditHandler logging through l.
func NewAuditHandler(l *slog.Logger) *AuditHandler {
	if l == nil {
		l = slog.Default()
	}
	return &AuditHandler{logger: l.With("component", "task_audit")}
}

// HandleEvent implements EventHandler.
func (h *AuditHandler) HandleEvent(ctx context.Context, event *TaskEvent) error {
	attrs := []slog.Attr{
		slog.String("event_id", event.ID.String()),
		slog.String("event_type", string(event.Type)),
		slog.Int("task_id", event.TaskID),
	}
	if event.Task != nil {
		attrs = append(attrs, slog.Bool("task_status", event.Task.Status))
	}

	logger.FromContextOrDefault(ctx, h.logger).LogAttrs(ctx, slog.LevelInfo, "task event", attrs...)
	return nil
}
