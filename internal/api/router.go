package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/baharkarakas/mini-linkedin/internal/api/handlers"
	"github.com/baharkarakas/mini-linkedin/internal/api/httpx"
	"github.com/baharkarakas/mini-linkedin/internal/auth"
	"github.com/baharkarakas/mini-linkedin/internal/config"
	"github.com/baharkarakas/mini-linkedin/internal/imagerelay"
	"github.com/baharkarakas/mini-linkedin/internal/metrics"
	"github.com/baharkarakas/mini-linkedin/internal/middleware"
	"github.com/baharkarakas/mini-linkedin/internal/services"
)

type RouterDeps struct {
	Cfg        config.Config
	Log        *slog.Logger
	Sessions   *auth.SessionManager
	AuthSvc    *services.AuthService
	FeedSvc    *services.FeedService
	ProfileSvc *services.ProfileService
	Relay      imagerelay.Relay
}

func NewRouter(d RouterDeps) http.Handler {
	if d.Log == nil {
		d.Log = slog.Default()
	}
	jar := auth.CookieJar{Name: d.Cfg.SessionCookie, Secure: d.Cfg.IsProd()}
	uploader := handlers.Uploader{Relay: d.Relay, MaxBytes: d.Cfg.UploadMaxBytes}

	authH := handlers.NewAuthHandler(d.AuthSvc, jar)
	postH := handlers.NewPostHandler(d.FeedSvc)
	userH := handlers.NewUserHandler(d.ProfileSvc, uploader)
	uploadH := handlers.NewUploadHandler(uploader)
	gate := middleware.NewAuthMiddleware(d.Sessions, jar).Auth

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.AccessLog(d.Log), middleware.HTTPMetrics, middleware.Recover)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteError(w, http.StatusNotFound, "not_found", "Route not found", nil)
	})

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", metrics.Handler())

	r.Route("/api", func(r chi.Router) {
		// ---------- auth ----------
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/logout", authH.Logout)
		r.With(gate).Get("/auth/me", authH.Me)

		// ---------- posts ----------
		r.Get("/posts", postH.List)
		r.Get("/posts/{id}", postH.ListByUser)
		r.With(gate).Post("/posts", postH.Create)
		r.With(gate).Delete("/posts/{id}", postH.Delete)

		// ---------- users ----------
		r.Get("/users/username/{username}", userH.GetByUsername)
		r.Get("/users/{id}", userH.Get)
		r.Get("/users/{id}/posts", postH.ListByUser)
		r.Group(func(r chi.Router) {
			r.Use(gate)
			r.Put("/users/me", userH.UpdateMe)
			r.Put("/users/me/profile-image", userH.UpdateProfileImage)
			r.Put("/users/me/background-image", userH.UpdateBackgroundImage)
		})

		// ---------- upload ----------
		r.With(gate).Post("/upload/image", uploadH.Image)
	})

	return r
}
