package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/mdhasanali39/taskQuest-server/internal/api"
	apiMiddleware "github.com/mdhasanali39/taskQuest-server/internal/api/middleware"
	"github.com/mdhasanali39/taskQuest-server/internal/platform/metrics"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))
	r.Use(app.metrics.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   app.config.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	authHandler := api.NewAuthHandler(
		app.jwtService,
		api.CookieOptionsFromConfig(app.config.Server, app.config.Auth),
		app.logger,
	)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)
	taskHandler := api.NewTaskHandler(app.listingEngine, app.taskService, app.logger)
	healthHandler := api.NewHealthHandler(app.taskStore, app.logger)

	r.Route("/task-quest", func(r chi.Router) {
		// Identity endpoints (public)
		r.Post("/access-token", authHandler.IssueToken)
		r.Get("/delete-token", authHandler.ClearToken)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/get-all/{email}", taskHandler.ListTasks)
			r.Post("/create-task", taskHandler.CreateTask)
			r.Put("/update-task/{id}", taskHandler.UpdateTask)
			r.Patch("/update-task-status/{id}", taskHandler.UpdateTaskStatus)
			r.Delete("/delete-task/{id}", taskHandler.DeleteTask)
		})
	})

	r.Get("/", healthHandler.Root)
	r.Get("/health", healthHandler.Health)
	r.Handle("/metrics", metrics.Handler(app.registry))

	return r
}
