// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"github.com/toolgate/toolgate/internal/app/features/audit"
	"github.com/toolgate/toolgate/internal/app/features/authapi"
	"github.com/toolgate/toolgate/internal/app/features/catalog"
	"github.com/toolgate/toolgate/internal/app/features/health"
	activitystore "github.com/toolgate/toolgate/internal/app/store/activity"
	toolstore "github.com/toolgate/toolgate/internal/app/store/tools"
	userstore "github.com/toolgate/toolgate/internal/app/store/users"
	"github.com/toolgate/toolgate/internal/app/system/auth"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	sessionMgr, err := auth.NewSessionManager(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, appCfg.SessionMaxAge, secure, logger)
	if err != nil {
		logger.Error("session manager init failed", zap.Error(err))
		return nil, err
	}

	users := userstore.New(deps.MongoDatabase)
	activity := activitystore.New(deps.MongoDatabase)
	tools := toolstore.New(deps.MongoDatabase)

	authService := authapi.NewService(users, activity, logger)
	authHandler := authapi.NewHandler(authService, sessionMgr, logger)
	catalogHandler := catalog.NewHandler(tools, logger)
	auditHandler := audit.NewHandler(users, activity, logger)
	healthHandler := health.NewHandler(deps.MongoClient, logger)

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// Session middleware: loads the Session into context if logged in.
	r.Use(sessionMgr.LoadSession)

	// CSRF protection for browser form posts. The JSON endpoints under
	// /auth and /api are exempt: they are called from scripts that do not
	// carry the CSRF token, and the SameSite=Lax session cookie covers
	// cross-site POST.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("toolgate_csrf"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			http.Error(w, "CSRF token invalid or missing", http.StatusForbidden)
		})),
	}
	if !secure {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	if appCfg.SessionDomain != "" {
		csrfOpts = append(csrfOpts, csrf.Domain(appCfg.SessionDomain))
	}
	csrfProtect := csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...)

	csrfMiddleware := func(next http.Handler) http.Handler {
		csrfHandler := csrfProtect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			path := req.URL.Path
			if strings.HasPrefix(path, "/auth/") || strings.HasPrefix(path, "/api/") {
				next.ServeHTTP(w, req)
				return
			}
			csrfHandler.ServeHTTP(w, req)
		})
	}
	r.Use(csrfMiddleware)

	// ─────────────────────────────────────────────────────────────────────────────
	// Routes
	// ─────────────────────────────────────────────────────────────────────────────

	// Health check endpoints for load balancers and orchestrators
	r.Mount("/health", health.Routes(healthHandler))

	// Auth JSON API (register, login, logout, password recovery)
	r.Mount("/auth", authapi.Routes(authHandler))

	// Catalog and audit APIs require a session
	r.Route("/api", func(sr chi.Router) {
		sr.Use(sessionMgr.RequireSignedIn)
		catalog.Register(sr, catalogHandler)
		audit.Register(sr, auditHandler)
	})

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "static"))

	// Public pages
	r.Get("/", servePage("static/index.html"))
	r.Get("/login", servePage("static/login.html"))
	r.Get("/register", servePage("static/register.html"))
	r.Get("/forgot-password", servePage("static/forgot_password.html"))

	// Pages behind login. HTML clients without a session are redirected
	// to /login; API clients get a 401.
	r.Group(func(pr chi.Router) {
		pr.Use(sessionMgr.RequireSignedIn)
		pr.Get("/home", servePage("static/home.html"))
		pr.Get("/subcategories", servePage("static/subcategories.html"))
		pr.Get("/tools", servePage("static/tools.html"))
	})

	return r, nil
}

// servePage returns a handler that serves one static HTML file.
func servePage(path string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, path)
	}
}
