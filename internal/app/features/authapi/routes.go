// internal/app/features/authapi/routes.go
package authapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes returns a chi.Router with the auth endpoints mounted.
// Logout is registered without a sign-in guard: a stale or anonymous
// client still gets its cookie cleared and a 200.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)
	r.Post("/forgot-password", h.handleForgotPassword)
	r.Post("/reset-password", h.handleResetPassword)
	return r
}
