// internal/app/features/catalog/catalog.go
package catalog

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	toolstore "github.com/toolgate/toolgate/internal/app/store/tools"
	"github.com/toolgate/toolgate/internal/app/system/jsonutil"
	"github.com/toolgate/toolgate/internal/domain/models"
	"go.uber.org/zap"
)

// Handler serves the tool catalog API. All routes require a session; the
// catalog is the product being gated behind login.
type Handler struct {
	tools  *toolstore.Store
	logger *zap.Logger
}

func NewHandler(tools *toolstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		tools:  tools,
		logger: logger,
	}
}

// Register attaches the catalog endpoints to an existing router. The
// catalog shares the /api prefix with other APIs, so the caller owns
// the router and its middleware.
func Register(r chi.Router, h *Handler) {
	r.Get("/tools", h.handleTools)
	r.Get("/categories", h.handleCategories)
}

// Routes returns a standalone router with the catalog API mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	Register(r, h)
	return r
}

// handleTools lists tools, optionally filtered by ?type= and ?category=.
func (h *Handler) handleTools(w http.ResponseWriter, r *http.Request) {
	toolType := query.Get(r, "type")
	category := query.Get(r, "category")

	if toolType != "" && !models.IsValidToolType(toolType) {
		jsonutil.BadRequest(w, "bad_request", `type must be "paid" or "unpaid"`)
		return
	}

	tools, err := h.tools.List(r.Context(), toolType, category)
	if err != nil {
		h.logger.Error("failed to list tools", zap.Error(err))
		jsonutil.InternalError(w)
		return
	}
	if tools == nil {
		tools = []models.Tool{}
	}

	jsonutil.OK(w, map[string]any{"tools": tools})
}

// handleCategories lists the distinct categories for ?type=.
func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	toolType := query.Get(r, "type")

	if toolType != "" && !models.IsValidToolType(toolType) {
		jsonutil.BadRequest(w, "bad_request", `type must be "paid" or "unpaid"`)
		return
	}

	categories, err := h.tools.Categories(r.Context(), toolType)
	if err != nil {
		h.logger.Error("failed to list categories", zap.Error(err))
		jsonutil.InternalError(w)
		return
	}

	jsonutil.OK(w, map[string]any{"categories": categories})
}
