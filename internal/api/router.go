package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/avscott/brainbox-be/internal/api/handlers"
	"github.com/avscott/brainbox-be/internal/auth"
	"github.com/avscott/brainbox-be/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(
	tokens *auth.TokenService,
	allowedOrigins []string,
	userService services.UserServiceProvider,
	contentService services.ContentServiceProvider,
	shareService services.ShareServiceProvider,
	eventService services.EventServiceProvider,
) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, tokens)
	contentHandler := handlers.NewContentHandler(contentService)
	shareHandler := handlers.NewShareHandler(shareService)
	activityHandler := handlers.NewActivityHandler(eventService)

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("API is Running"))
	})

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		// Public endpoints
		r.Post("/signup", userHandler.Signup)
		r.Post("/signin", userHandler.Signin)
		r.Get("/brain/{shareLink}", shareHandler.Resolve)

		// Everything else requires a valid bearer token
		r.Group(func(r chi.Router) {
			r.Use(tokens.Middleware())

			r.Route("/content", func(r chi.Router) {
				r.Post("/", contentHandler.Create)
				r.Get("/", contentHandler.List)
				r.Delete("/{id}", contentHandler.Delete)
			})

			r.Post("/brain/share", shareHandler.Toggle)
			r.Get("/activity", activityHandler.GetRecent)
		})
	})

	return r
}
