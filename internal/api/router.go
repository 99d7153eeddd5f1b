package api

import (
	"net/http"

	"github.com/dheerajjx/portfolio/internal/api/handlers"
	"github.com/dheerajjx/portfolio/internal/api/middleware"
	"github.com/dheerajjx/portfolio/internal/config"
	"github.com/dheerajjx/portfolio/internal/logging"
	"github.com/dheerajjx/portfolio/internal/media"
	"github.com/dheerajjx/portfolio/internal/service"
	"github.com/dheerajjx/portfolio/internal/websocket"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(services *service.Services, hub *websocket.Hub, cfg *config.Config, logger logging.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.RealIP(cfg.TrustedProxies))
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.CORS(cfg.CORSOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Locally stored uploads, used when the remote image host is unavailable
	uploads := http.StripPrefix(media.LocalPathPrefix, http.FileServer(http.Dir(cfg.UploadDir)))
	r.Handle(media.LocalPathPrefix+"*", uploads)

	// Initialize handlers
	forms := handlers.NewFormDecoder(cfg.UploadDir)
	authHandler := handlers.NewAuthHandler(services.Auth, logger)
	memoryHandler := handlers.NewMemoryHandler(services.Memory, forms, logger)
	thoughtHandler := handlers.NewThoughtHandler(services.Thought, forms, logger)
	galleryHandler := handlers.NewGalleryHandler(services.Gallery, forms, logger)
	heroBgHandler := handlers.NewHeroBgHandler(services.HeroBg, services.Rotation, forms, logger)
	storyHandler := handlers.NewStoryHandler(services.Story, logger)
	aboutHandler := handlers.NewAboutHandler(services.About, forms, logger)
	philosophyHandler := handlers.NewPhilosophyHandler(services.Rotation)
	wsHandler := handlers.NewWebSocketHandler(hub, logger)

	requireAdmin := middleware.Auth(services.Auth, logger)
	authLimiter := middleware.NewRateLimiter(cfg.AuthRatePerMinute, cfg.AuthRateBurst)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Group(func(r chi.Router) {
				r.Use(authLimiter.Handler)
				r.Post("/send-otp", authHandler.SendOTP)
				r.Post("/verify-otp", authHandler.VerifyOTP)
			})

			r.With(requireAdmin).Get("/me", authHandler.Me)
		})

		r.Route("/memories", func(r chi.Router) {
			r.Get("/", memoryHandler.List)
			r.Get("/{id}", memoryHandler.Get)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Post("/", memoryHandler.Create)
				r.Put("/{id}", memoryHandler.Update)
				r.Delete("/{id}", memoryHandler.Delete)
			})
		})

		r.Route("/thoughts", func(r chi.Router) {
			r.Get("/", thoughtHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Post("/", thoughtHandler.Create)
				r.Put("/{id}", thoughtHandler.Update)
				r.Delete("/{id}", thoughtHandler.Delete)
			})
		})

		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", galleryHandler.List)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Post("/", galleryHandler.Create)
				r.Put("/{id}", galleryHandler.Update)
				r.Delete("/{id}", galleryHandler.Delete)
			})
		})

		r.Route("/herobg", func(r chi.Router) {
			r.Get("/", heroBgHandler.List)
			r.Get("/current", heroBgHandler.Current)

			r.Group(func(r chi.Router) {
				r.Use(requireAdmin)
				r.Get("/all", heroBgHandler.ListAll)
				r.Post("/", heroBgHandler.Create)
				r.Put("/{id}", heroBgHandler.Update)
				r.Delete("/{id}", heroBgHandler.Delete)
			})
		})

		r.Route("/story", func(r chi.Router) {
			r.Get("/", storyHandler.Get)
			r.With(requireAdmin).Put("/", storyHandler.Replace)
		})

		r.Route("/about", func(r chi.Router) {
			r.Get("/", aboutHandler.Get)
			r.With(requireAdmin).Put("/", aboutHandler.Update)
		})

		r.Get("/philosophy/today", philosophyHandler.Today)

		// Change feed
		r.Get("/ws", wsHandler.Handle)
	})

	return r
}
