package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sinalize/sinalize-api/internal/api"
	apiMiddleware "github.com/sinalize/sinalize-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware. Paths on the auth allow-list pass through unauthenticated;
// everything else requires a bearer token.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	userHandler := api.NewUserHandler(app.userStore, app.jwtService)
	contentHandler := api.NewContentHandler(app.contentService)
	roadmapHandler := api.NewRoadmapHandler(app.roadmapService)
	chatHandler := api.NewChatHandler(app.chatService)
	introHandler := api.NewIntroductionHandler(app.introService)

	authMiddleware := apiMiddleware.NewAuthMiddleware(
		app.jwtService,
		app.config.Auth.AllowlistPaths,
	)
	r.Use(authMiddleware.Authenticate)

	// User endpoints (registration and the existence check are allow-listed)
	r.Post("/users/register", userHandler.Register)
	r.Get("/users/{id}", userHandler.Get)
	r.Put("/users/{id}/update-roadmap", userHandler.UpdateRoadmap)
	r.Post("/check/user", userHandler.CheckUser)

	// Content generation endpoints
	r.Post("/generate/content", contentHandler.GenerateContent)
	r.Post("/generate/image", contentHandler.GenerateImage)

	// Roadmap endpoints
	r.Route("/api", func(r chi.Router) {
		r.Post("/student-roadmap", roadmapHandler.StudentRoadmap)
		r.Post("/parent-roadmap", roadmapHandler.ParentRoadmap)
		r.Get("/roadmaps/{user_id}", roadmapHandler.ListTopics)
		r.Delete("/roadmaps/{user_id}", roadmapHandler.DeleteRoadmaps)
	})

	// Conversation endpoints
	r.Post("/chat", chatHandler.Chat)
	r.Post("/generate-introduction", introHandler.Generate)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
