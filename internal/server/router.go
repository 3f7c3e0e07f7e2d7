package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"cgpa-calculator/internal/calculator"
	"cgpa-calculator/internal/handlers"
	"cgpa-calculator/internal/observability"
)

// Deps are the collaborators the routes need.
type Deps struct {
	Calculator *calculator.Handler
	Store      handlers.Pinger
}

func NewRouter(deps Deps) http.Handler {

	r := chi.NewRouter()

	r.Use(observability.RequestIDMiddleware)
	r.Use(observability.TracingMiddleware)
	r.Use(observability.LoggingMiddleware)
	r.Use(middleware.Recoverer)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	r.Get("/health", handlers.Health)
	r.Get("/ready", handlers.Ready(deps.Store))

	r.Handle("/metrics", observability.PrometheusHandler())

	calculator.RegisterRoutes(r, deps.Calculator)

	return r
}
