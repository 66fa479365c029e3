// internal/app/features/audit/audit.go
package audit

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	activitystore "github.com/toolgate/toolgate/internal/app/store/activity"
	userstore "github.com/toolgate/toolgate/internal/app/store/users"
	"github.com/toolgate/toolgate/internal/app/system/jsonutil"
	"go.uber.org/zap"
)

// Handler serves the audit views: the activity log joined with account
// details, and the account roster.
type Handler struct {
	users    *userstore.Store
	activity *activitystore.Store
	logger   *zap.Logger
}

func NewHandler(users *userstore.Store, activity *activitystore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		users:    users,
		activity: activity,
		logger:   logger,
	}
}

// Register attaches the audit endpoints to an existing router, usually
// the shared /api router.
func Register(r chi.Router, h *Handler) {
	r.Get("/activity", h.handleActivity)
	r.Get("/accounts", h.handleAccounts)
}

// Routes returns a standalone router with the audit endpoints mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	Register(r, h)
	return r
}

// activityEntry is one row of the activity report. LogoutAt stays null
// for sessions that are still open.
type activityEntry struct {
	Email    string     `json:"email"`
	FullName string     `json:"full_name"`
	LoginAt  time.Time  `json:"login_at"`
	LogoutAt *time.Time `json:"logout_at"`
	IP       string     `json:"ip,omitempty"`
	Open     bool       `json:"open"`
}

// handleActivity returns every activity record ordered by login time,
// joined with the owning account. Records whose account has been removed
// are listed with empty account fields rather than dropped.
func (h *Handler) handleActivity(w http.ResponseWriter, r *http.Request) {
	records, err := h.activity.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list activity records", zap.Error(err))
		jsonutil.InternalError(w)
		return
	}

	accounts, err := h.users.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list accounts", zap.Error(err))
		jsonutil.InternalError(w)
		return
	}
	type acctInfo struct{ email, fullName string }
	byID := make(map[string]acctInfo, len(accounts))
	for _, a := range accounts {
		byID[a.ID.Hex()] = acctInfo{email: a.Email, fullName: a.FullName}
	}

	entries := make([]activityEntry, 0, len(records))
	for _, rec := range records {
		info := byID[rec.AccountID.Hex()]
		entries = append(entries, activityEntry{
			Email:    info.email,
			FullName: info.fullName,
			LoginAt:  rec.LoginAt,
			LogoutAt: rec.LogoutAt,
			IP:       rec.IP,
			Open:     rec.Open(),
		})
	}

	jsonutil.OK(w, map[string]any{"activity": entries})
}

type accountEntry struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"created_at"`
}

// handleAccounts returns the account roster sorted by name. Password
// hashes never leave the server.
func (h *Handler) handleAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.users.ListAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list accounts", zap.Error(err))
		jsonutil.InternalError(w)
		return
	}

	entries := make([]accountEntry, 0, len(accounts))
	for _, a := range accounts {
		entries = append(entries, accountEntry{
			ID:        a.ID.Hex(),
			Email:     a.Email,
			FullName:  a.FullName,
			CreatedAt: a.CreatedAt,
		})
	}

	jsonutil.OK(w, map[string]any{"accounts": entries})
}
