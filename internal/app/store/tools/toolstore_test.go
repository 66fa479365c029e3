package toolstore

import (
	"reflect"
	"testing"

	"github.com/toolgate/toolgate/internal/domain/models"
	"github.com/toolgate/toolgate/internal/testutil"
)

func seedCatalog(t *testing.T, store *Store) {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()

	tools := []models.Tool{
		{Name: "Figma", Category: "Design", Type: models.ToolTypePaid, URL: "https://figma.com"},
		{Name: "Canva", Category: "Design", Type: models.ToolTypeUnpaid, URL: "https://canva.com"},
		{Name: "Ahrefs", Category: "SEO", Type: models.ToolTypePaid, URL: "https://ahrefs.com"},
		{Name: "GIMP", Category: "Image Editing", Type: models.ToolTypeUnpaid, URL: "https://gimp.org"},
	}
	if err := store.InsertMany(ctx, tools); err != nil {
		t.Fatalf("InsertMany() error = %v", err)
	}
}

func TestStore_List_Filters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	seedCatalog(t, store)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	all, err := store.List(ctx, "", "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 4 {
		t.Errorf("List(all) returned %d tools, want 4", len(all))
	}

	paid, err := store.List(ctx, models.ToolTypePaid, "")
	if err != nil {
		t.Fatalf("List(paid) error = %v", err)
	}
	if len(paid) != 2 {
		t.Errorf("List(paid) returned %d tools, want 2", len(paid))
	}
	for _, tool := range paid {
		if tool.Type != models.ToolTypePaid {
			t.Errorf("List(paid) returned %q with type %q", tool.Name, tool.Type)
		}
	}

	design, err := store.List(ctx, models.ToolTypeUnpaid, "Design")
	if err != nil {
		t.Fatalf("List(unpaid, Design) error = %v", err)
	}
	if len(design) != 1 || design[0].Name != "Canva" {
		t.Errorf("List(unpaid, Design) = %v, want only Canva", design)
	}
}

func TestStore_List_SortedByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	seedCatalog(t, store)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	tools, err := store.List(ctx, "", "")
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	for i := 1; i < len(tools); i++ {
		if tools[i].Name < tools[i-1].Name {
			t.Errorf("List() not sorted: %q before %q", tools[i-1].Name, tools[i].Name)
		}
	}
}

func TestStore_Categories(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	seedCatalog(t, store)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	paid, err := store.Categories(ctx, models.ToolTypePaid)
	if err != nil {
		t.Fatalf("Categories(paid) error = %v", err)
	}
	if want := []string{"Design", "SEO"}; !reflect.DeepEqual(paid, want) {
		t.Errorf("Categories(paid) = %v, want %v", paid, want)
	}

	all, err := store.Categories(ctx, "")
	if err != nil {
		t.Fatalf("Categories(all) error = %v", err)
	}
	if want := []string{"Design", "Image Editing", "SEO"}; !reflect.DeepEqual(all, want) {
		t.Errorf("Categories(all) = %v, want %v", all, want)
	}
}

func TestStore_Count(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	n, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 0 {
		t.Errorf("Count() on empty catalog = %d, want 0", n)
	}

	seedCatalog(t, store)
	n, err = store.Count(ctx)
	if err != nil {
		t.Fatalf("Count() error = %v", err)
	}
	if n != 4 {
		t.Errorf("Count() = %d, want 4", n)
	}
}
