package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/tasks-api/internal/api"
	apiMiddleware "github.com/phrazzld/tasks-api/internal/api/middleware"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(apiMiddleware.Recover)

	// Set before any Route call so sub-routers inherit them.
	r.NotFound(api.NotFound)
	r.MethodNotAllowed(api.MethodNotAllowed)

	taskHandler := api.NewTaskHandler(app.taskService, app.logger)

	r.Route(app.config.Server.BasePath+"/v1", func(r chi.Router) {
		r.Get("/tasks", taskHandler.ListTasks)
		r.Post("/task", taskHandler.CreateTask)
		r.Put("/task/{id:[0-9]+}", taskHandler.UpdateTask)
		r.Delete("/task/{id:[0-9]+}", taskHandler.DeleteTask)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return otelhttp.NewHandler(r, app.config.Telemetry.ServiceName)
}
