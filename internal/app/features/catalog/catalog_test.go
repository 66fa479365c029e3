package catalog

import (
	"encoding/json"
	"net/http"
	"testing"

	toolstore "github.com/toolgate/toolgate/internal/app/store/tools"
	"github.com/toolgate/toolgate/internal/domain/models"
	"github.com/toolgate/toolgate/internal/testutil"
	"go.uber.org/zap"
)

func newTestHandler(t *testing.T) (http.Handler, *toolstore.Store) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	store := toolstore.New(db)
	h := NewHandler(store, zap.NewNop())
	return Routes(h), store
}

func seedCatalog(t *testing.T, store *toolstore.Store) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := store.InsertMany(ctx, []models.Tool{
		{Name: "Figma", Category: "Design", Type: models.ToolTypePaid},
		{Name: "Canva", Category: "Design", Type: models.ToolTypeUnpaid},
		{Name: "Ahrefs", Category: "SEO", Type: models.ToolTypePaid},
	})
	if err != nil {
		t.Fatalf("InsertMany() error = %v", err)
	}
}

func TestHandler_Tools_FilterByTypeAndCategory(t *testing.T) {
	handler, store := newTestHandler(t)
	seedCatalog(t, store)

	rec := testutil.NewRecorder()
	handler.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/tools?type=paid&category=SEO"))
	rec.AssertStatus(t, http.StatusOK)

	var body struct {
		Tools []models.Tool `json:"tools"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(body.Tools) != 1 || body.Tools[0].Name != "Ahrefs" {
		t.Errorf("tools = %v, want only Ahrefs", body.Tools)
	}
}

func TestHandler_Tools_EmptyResultIsEmptyArray(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := testutil.NewRecorder()
	handler.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/tools"))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, `"tools":[]`)
}

func TestHandler_Tools_InvalidType(t *testing.T) {
	handler, _ := newTestHandler(t)

	rec := testutil.NewRecorder()
	handler.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/tools?type=freemium"))
	rec.AssertStatus(t, http.StatusBadRequest)
	rec.AssertContains(t, "bad_request")
}

func TestHandler_Categories(t *testing.T) {
	handler, store := newTestHandler(t)
	seedCatalog(t, store)

	rec := testutil.NewRecorder()
	handler.ServeHTTP(rec, testutil.NewRequest(http.MethodGet, "/categories?type=unpaid"))
	rec.AssertStatus(t, http.StatusOK)

	var body struct {
		Categories []string `json:"categories"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	if len(body.Categories) != 1 || body.Categories[0] != "Design" {
		t.Errorf("categories = %v, want [Design]", body.Categories)
	}
}
