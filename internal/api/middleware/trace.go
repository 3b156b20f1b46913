package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/tasks-api/internal/api/shared"
	"github.com/phrazzld/tasks-api/internal/platform/logger"
	"go.opentelemetry.io/otel/trace"
)

// NewTraceMiddleware returns middleware that assigns every request a trace ID,
// exposes it in the X-Trace-Id response header, and stores a logger tagged with
// it in the request context.
//
// The ID of an active OpenTelemetry span is reused when present so logs and
// exported spans correlate; otherwise a random ID is generated.
func NewTraceMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var traceID string
			if sc := trace.SpanContextFromContext(r.Context()); sc.HasTraceID() {
				traceID = sc.TraceID().String()
			}

			ctx := shared.WithTraceID(r.Context(), traceID)
			traceID = shared.GetTraceID(ctx)

			reqLog := log.With(slog.String("trace_id", traceID))
			if reqID := chimiddleware.GetReqID(ctx); reqID != "" {
				reqLog = reqLog.With(slog.String("request_id", reqID))
			}
			ctx = logger.WithLogger(ctx, reqLog)

			w.Header().Set(shared.TraceIDHeader, traceID)

			reqLog.Debug("request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.String("remote_addr", r.RemoteAddr))

			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(ctx))

			reqLog.Info("request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", ww.Status()),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)))
		})
	}
}
