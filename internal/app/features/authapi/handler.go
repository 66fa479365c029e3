// internal/app/features/authapi/handler.go
package authapi

import (
	"errors"
	"net/http"

	"github.com/toolgate/toolgate/internal/app/system/auth"
	"github.com/toolgate/toolgate/internal/app/system/authutil"
	"github.com/toolgate/toolgate/internal/app/system/jsonutil"
	"github.com/toolgate/toolgate/internal/app/system/network"
	"go.uber.org/zap"
)

// Handler exposes the auth service as a JSON API under /auth.
type Handler struct {
	service    *Service
	sessionMgr *auth.SessionManager
	logger     *zap.Logger
}

func NewHandler(service *Service, sessionMgr *auth.SessionManager, logger *zap.Logger) *Handler {
	return &Handler{
		service:    service,
		sessionMgr: sessionMgr,
		logger:     logger,
	}
}

type registerRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type emailRequest struct {
	Email string `json:"email"`
}

type resetRequest struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.BadRequest(w, "bad_request", "Invalid JSON body.")
		return
	}
	if req.Email == "" || req.Password == "" {
		jsonutil.BadRequest(w, "bad_request", "Email and password are required.")
		return
	}

	_, err := h.service.Register(r.Context(), req.Email, req.FullName, req.Password)
	if err != nil {
		var weak *authutil.WeakPasswordError
		switch {
		case errors.As(err, &weak):
			jsonutil.BadRequest(w, "weak_password", weak.Reason)
		case errors.Is(err, ErrDuplicateEmail):
			jsonutil.BadRequest(w, "duplicate_email", "An account with this email already exists.")
		default:
			h.logger.Error("register failed", zap.Error(err))
			jsonutil.InternalError(w)
		}
		return
	}

	jsonutil.OK(w, map[string]string{"message": "Registration successful. Please log in."})
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.BadRequest(w, "bad_request", "Invalid JSON body.")
		return
	}

	account, activityID, err := h.service.Login(r.Context(), req.Email, req.Password, network.GetClientIP(r))
	if err != nil {
		switch {
		case errors.Is(err, ErrAccountNotFound):
			jsonutil.NotFound(w, "account_not_found", "No account with this email. Please register first.")
		case errors.Is(err, ErrInvalidCredentials):
			jsonutil.BadRequest(w, "invalid_credentials", "Incorrect password.")
		default:
			h.logger.Error("login failed", zap.Error(err))
			jsonutil.InternalError(w)
		}
		return
	}

	if err := h.sessionMgr.CreateSession(w, r, account.ID, activityID); err != nil {
		h.logger.Error("failed to create session", zap.Error(err))
		jsonutil.InternalError(w)
		return
	}

	jsonutil.OK(w, map[string]string{"message": "Login successful."})
}

// handleLogout closes the session's activity record and clears the
// cookie. It succeeds even for anonymous callers or stale sessions, so
// a client can always reach a logged-out state.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if sess, ok := auth.CurrentSession(r); ok {
		if err := h.service.Logout(r.Context(), sess.Activity()); err != nil {
			h.logger.Warn("failed to close activity record on logout",
				zap.String("activity_id", sess.ActivityID),
				zap.Error(err))
		}
	}

	h.sessionMgr.DestroySession(w, r)
	jsonutil.OK(w, map[string]string{"message": "Logged out."})
}

func (h *Handler) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req emailRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.BadRequest(w, "bad_request", "Invalid JSON body.")
		return
	}

	if err := h.service.ForgotPassword(r.Context(), req.Email); err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			jsonutil.NotFound(w, "account_not_found", "No account with this email.")
			return
		}
		h.logger.Error("forgot-password failed", zap.Error(err))
		jsonutil.InternalError(w)
		return
	}

	jsonutil.OK(w, map[string]string{"message": "Account found. You may reset your password."})
}

func (h *Handler) handleResetPassword(w http.ResponseWriter, r *http.Request) {
	var req resetRequest
	if err := jsonutil.Decode(r, &req); err != nil {
		jsonutil.BadRequest(w, "bad_request", "Invalid JSON body.")
		return
	}

	if err := h.service.ResetPassword(r.Context(), req.Email, req.NewPassword); err != nil {
		var weak *authutil.WeakPasswordError
		switch {
		case errors.Is(err, ErrAccountNotFound):
			jsonutil.NotFound(w, "account_not_found", "No account with this email.")
		case errors.As(err, &weak):
			jsonutil.BadRequest(w, "weak_password", weak.Reason)
		default:
			h.logger.Error("reset-password failed", zap.Error(err))
			jsonutil.InternalError(w)
		}
		return
	}

	jsonutil.OK(w, map[string]string{"message": "Password updated. Please log in."})
}
