package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/login-with-otp", h.loginWithOTP)
		r.Post("/api/auth/logout", h.logout)
		r.Post("/api/contact", h.contact)
	})

	// routes behind the session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/admin/send-otp", h.sendOTP)
		r.Post("/api/admin/change-password", h.changePassword)
		r.Get("/api/admin/messages", h.listMessages)
		r.Put("/api/admin/messages", h.updateMessages)
	})

	return router
}
