package mysql

import (
	"context"
	"errors"
	"testing"

	appDomain "compass-backend/internal/domain/application"
	"compass-backend/internal/domain/uow"

	"gorm.io/gorm"
)

func TestGormUoW_WithinTx_Commit(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	apps := NewApplicationRepository(db)

	var appID uint64
	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		app := makeApplication(7, "Foo")
		if err := r.Applications.Create(ctx, app); err != nil {
			return err
		}
		appID = app.ID

		c, err := r.Categories.GetOrCreate(ctx, "NLP")
		if err != nil {
			return err
		}
		return r.Applications.LinkCategory(ctx, app.ID, c.ID)
	})
	if err != nil {
		t.Fatalf("WithinTx commit: %v", err)
	}

	if _, err := apps.GetByID(ctx, appID); err != nil {
		t.Fatalf("application not visible after commit: %v", err)
	}
	ids, err := apps.CategoryIDsFor(ctx, appID)
	if err != nil || len(ids) != 1 {
		t.Fatalf("link not visible after commit: (%v, %v)", ids, err)
	}
}

func TestGormUoW_WithinTx_Rollback(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)
	apps := NewApplicationRepository(db)
	cats := NewCategoryRepository(db)

	sentinel := errors.New("boom")
	var appID uint64

	_ = guow.WithinTx(ctx, func(r uow.Repos) error {
		app := makeApplication(7, "Foo")
		if err := r.Applications.Create(ctx, app); err != nil {
			return err
		}
		appID = app.ID
		if _, err := r.Categories.GetOrCreate(ctx, "NLP"); err != nil {
			return err
		}
		return sentinel // force rollback
	})

	if _, err := apps.GetByID(ctx, appID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("application survived rollback: %v", err)
	}
	if _, err := cats.FindByName(ctx, "NLP"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("category survived rollback: %v", err)
	}
}

func TestGormUoW_ReposShareTx(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()

	guow := NewGormUoW(db)

	err := guow.WithinTx(ctx, func(r uow.Repos) error {
		app := makeApplication(7, "Foo")
		if err := r.Applications.Create(ctx, app); err != nil {
			return err
		}
		// uncommitted row must be visible to the sibling repo in the same tx
		got, err := r.Applications.GetByID(ctx, app.ID)
		if err != nil {
			return err
		}
		if got.Status != appDomain.StatusPending {
			t.Fatalf("unexpected row inside tx: %+v", got)
		}
		return errors.New("rollback")
	})
	if err == nil {
		t.Fatal("expected the forced rollback error")
	}
}
