package mysql

import (
	"context"
	"errors"
	"testing"
	"time"

	catalogDomain "compass-backend/internal/domain/catalog"

	"gorm.io/gorm"
)

func makeTool(name, origin string) *catalogDomain.Tool {
	return &catalogDomain.Tool{
		Name:        name,
		SubTitle:    name + " subtitle",
		Origin:      origin,
		URL:         "https://" + name + ".test",
		Description: "about " + name,
	}
}

// touch backdates updated_at without tripping gorm's auto-update.
func touch(t *testing.T, db *gorm.DB, toolID uint64, at time.Time) {
	t.Helper()
	err := db.Model(&catalogDomain.Tool{ID: toolID}).UpdateColumn("updated_at", at).Error
	if err != nil {
		t.Fatalf("touch: %v", err)
	}
}

func TestToolCreateAndFind(t *testing.T) {
	db := openTestDB(t)
	repo := NewToolRepository(db)
	ctx := context.Background()

	tool := makeTool("foo", "US")
	if err := repo.Create(ctx, tool); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if tool.ID == 0 {
		t.Fatal("Create did not set auto-increment ID")
	}

	byName, err := repo.FindByName(ctx, "foo")
	if err != nil {
		t.Fatalf("FindByName: %v", err)
	}
	if byName.ID != tool.ID {
		t.Errorf("FindByName wrong row: %+v", byName)
	}

	byURL, err := repo.FindByURL(ctx, "https://foo.test")
	if err != nil {
		t.Fatalf("FindByURL: %v", err)
	}
	if byURL.ID != tool.ID {
		t.Errorf("FindByURL wrong row: %+v", byURL)
	}

	if _, err := repo.FindByName(ctx, "nope"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("FindByName miss: %v", err)
	}
	if _, err := repo.FindByURL(ctx, "https://nope.test"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("FindByURL miss: %v", err)
	}

	exists, err := repo.ExistsByID(ctx, tool.ID)
	if err != nil || !exists {
		t.Fatalf("ExistsByID = (%v, %v), want (true, nil)", exists, err)
	}
	exists, err = repo.ExistsByID(ctx, 404)
	if err != nil || exists {
		t.Fatalf("ExistsByID = (%v, %v), want (false, nil)", exists, err)
	}
}

func TestToolAddCategory_SetSemantics(t *testing.T) {
	db := openTestDB(t)
	tools := NewToolRepository(db)
	cats := NewCategoryRepository(db)
	ctx := context.Background()

	tool := makeTool("foo", "US")
	if err := tools.Create(ctx, tool); err != nil {
		t.Fatal(err)
	}
	nlp, err := cats.GetOrCreate(ctx, "NLP")
	if err != nil {
		t.Fatal(err)
	}

	if err := tools.AddCategory(ctx, tool.ID, nlp.ID); err != nil {
		t.Fatalf("AddCategory: %v", err)
	}
	// repeat add is a no-op, not an error
	if err := tools.AddCategory(ctx, tool.ID, nlp.ID); err != nil {
		t.Fatalf("AddCategory repeat: %v", err)
	}

	got, err := tools.GetByID(ctx, tool.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Categories) != 1 || got.Categories[0].Name != "NLP" {
		t.Fatalf("categories = %+v, want exactly [NLP]", got.Categories)
	}
}

func TestToolSave_DoesNotTouchCategories(t *testing.T) {
	db := openTestDB(t)
	tools := NewToolRepository(db)
	cats := NewCategoryRepository(db)
	ctx := context.Background()

	tool := makeTool("foo", "US")
	if err := tools.Create(ctx, tool); err != nil {
		t.Fatal(err)
	}
	nlp, err := cats.GetOrCreate(ctx, "NLP")
	if err != nil {
		t.Fatal(err)
	}
	if err := tools.AddCategory(ctx, tool.ID, nlp.ID); err != nil {
		t.Fatal(err)
	}

	// Save a reloaded copy with no Categories slice; the link must survive
	reloaded, err := tools.FindByName(ctx, "foo")
	if err != nil {
		t.Fatal(err)
	}
	reloaded.SubTitle = "updated"
	if err := tools.Save(ctx, reloaded); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := tools.GetByID(ctx, tool.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.SubTitle != "updated" {
		t.Fatalf("SubTitle not updated: %+v", got)
	}
	if len(got.Categories) != 1 {
		t.Fatalf("Save dropped category links: %+v", got.Categories)
	}
}

func TestToolList_FiltersAndPagination(t *testing.T) {
	db := openTestDB(t)
	tools := NewToolRepository(db)
	cats := NewCategoryRepository(db)
	ctx := context.Background()

	nlp, err := cats.GetOrCreate(ctx, "NLP")
	if err != nil {
		t.Fatal(err)
	}

	now := time.Now().UTC()
	alpha := makeTool("alpha-writer", "US")
	beta := makeTool("beta-coder", "US")
	gamma := makeTool("gamma-painter", "EU")
	for i, tool := range []*catalogDomain.Tool{alpha, beta, gamma} {
		if err := tools.Create(ctx, tool); err != nil {
			t.Fatal(err)
		}
		touch(t, db, tool.ID, now.Add(time.Duration(i)*time.Minute))
	}
	if err := tools.AddCategory(ctx, alpha.ID, nlp.ID); err != nil {
		t.Fatal(err)
	}
	if err := tools.AddCategory(ctx, beta.ID, nlp.ID); err != nil {
		t.Fatal(err)
	}

	t.Run("no filter, recently-updated first", func(t *testing.T) {
		got, total, err := tools.List(ctx, catalogDomain.Filter{Page: 0, Size: 10})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if total != 3 || len(got) != 3 {
			t.Fatalf("total=%d len=%d, want 3/3", total, len(got))
		}
		if got[0].Name != "gamma-painter" || got[2].Name != "alpha-writer" {
			t.Fatalf("order wrong: %v, %v, %v", got[0].Name, got[1].Name, got[2].Name)
		}
	})

	t.Run("category filter", func(t *testing.T) {
		got, total, err := tools.List(ctx, catalogDomain.Filter{Category: "NLP", Page: 0, Size: 10})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if total != 2 || len(got) != 2 {
			t.Fatalf("total=%d len=%d, want 2/2", total, len(got))
		}
		for _, tool := range got {
			if tool.Name == "gamma-painter" {
				t.Fatalf("uncategorized tool leaked into filter: %+v", got)
			}
		}
	})

	t.Run("origin filter", func(t *testing.T) {
		got, total, err := tools.List(ctx, catalogDomain.Filter{Origin: "EU", Page: 0, Size: 10})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if total != 1 || len(got) != 1 || got[0].Name != "gamma-painter" {
			t.Fatalf("origin filter wrong: total=%d got=%+v", total, got)
		}
	})

	t.Run("text query matches name and description", func(t *testing.T) {
		got, total, err := tools.List(ctx, catalogDomain.Filter{Query: "coder", Page: 0, Size: 10})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if total != 1 || len(got) != 1 || got[0].Name != "beta-coder" {
			t.Fatalf("query filter wrong: total=%d got=%+v", total, got)
		}
	})

	t.Run("pagination window", func(t *testing.T) {
		got, total, err := tools.List(ctx, catalogDomain.Filter{Page: 1, Size: 2})
		if err != nil {
			t.Fatalf("List: %v", err)
		}
		if total != 3 {
			t.Fatalf("total = %d, want 3 regardless of page", total)
		}
		if len(got) != 1 || got[0].Name != "alpha-writer" {
			t.Fatalf("page 1 = %+v, want the single oldest row", got)
		}
	})
}

func TestToolListByIDs(t *testing.T) {
	db := openTestDB(t)
	tools := NewToolRepository(db)
	ctx := context.Background()

	a := makeTool("a", "US")
	b := makeTool("b", "US")
	for _, tool := range []*catalogDomain.Tool{a, b} {
		if err := tools.Create(ctx, tool); err != nil {
			t.Fatal(err)
		}
	}

	got, err := tools.ListByIDs(ctx, []uint64{b.ID, 404})
	if err != nil {
		t.Fatalf("ListByIDs: %v", err)
	}
	if len(got) != 1 || got[0].ID != b.ID {
		t.Fatalf("got = %+v, want only b", got)
	}

	got, err = tools.ListByIDs(ctx, nil)
	if err != nil || got != nil {
		t.Fatalf("ListByIDs(nil) = (%v, %v), want (nil, nil)", got, err)
	}
}

func TestToolUniqueName(t *testing.T) {
	db := openTestDB(t)
	repo := NewToolRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeTool("foo", "US")); err != nil {
		t.Fatal(err)
	}
	dup := makeTool("foo", "EU")
	dup.URL = "https://other.test"
	if err := repo.Create(ctx, dup); !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
}
