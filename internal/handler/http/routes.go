package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// compressionLevel is the gzip level used by middleware.Compress.
const compressionLevel = 5

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, h.withMetrics)
	router.Use(middleware.Compress(compressionLevel, "application/json", "text/plain"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// operational endpoints, no session lookup
	router.Get("/metrics", h.metrics.handler().ServeHTTP)
	router.Get("/healthz", h.healthz)
	router.Get("/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/", h.landing)

		r.Get("/register", showForm(registerForm))
		r.With(h.withAuthRateLimit).Post("/register", h.register)

		r.Get("/login", showForm(loginForm))
		r.With(h.withAuthRateLimit).Post("/login", h.login)

		r.Get("/logout", h.logout)

		r.Get("/forgot-password", showForm(forgotPasswordForm))
		r.With(h.withAuthRateLimit).Post("/forgot-password", h.forgotPassword)

		r.Get("/reset-password/{token}", h.showResetPassword)
		r.Post("/reset-password/{token}", h.resetPassword)

		// routes with session
		r.Group(func(r chi.Router) {
			r.Use(h.requireSession)

			r.Get("/dashboard", h.showDashboard)
			r.Post("/dashboard", h.updateDashboard)
			r.Get("/dashboard/avatar-upload", h.avatarUpload)
		})

		// catch-all public profile, registered after every fixed route
		r.Get("/{vanity}", h.publicProfile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
