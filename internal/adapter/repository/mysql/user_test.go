package mysql

import (
	"context"
	"errors"
	"testing"

	userDomain "compass-backend/internal/domain/user"

	"gorm.io/gorm"
)

func makeUser(email string) *userDomain.User {
	return &userDomain.User{
		Name:     "Alice",
		Email:    email,
		Password: "$2a$10$notarealhashnotarealhashnotarea",
		Role:     userDomain.RoleUser,
	}
}

func TestUserCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser("alice@test.local")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if u.ID == 0 {
		t.Fatal("Create did not set auto-increment ID")
	}

	byID, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if byID.Email != "alice@test.local" || byID.Role != userDomain.RoleUser {
		t.Errorf("unexpected user: %+v", byID)
	}

	byEmail, err := repo.GetByEmail(ctx, "alice@test.local")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if byEmail.ID != u.ID {
		t.Errorf("GetByEmail returned wrong row: %+v", byEmail)
	}
}

func TestUserSave(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	u := makeUser("alice@test.local")
	if err := repo.Create(ctx, u); err != nil {
		t.Fatal(err)
	}

	u.Role = userDomain.RoleAdmin
	if err := repo.Save(ctx, u); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := repo.GetByID(ctx, u.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.Role != userDomain.RoleAdmin {
		t.Fatalf("role not persisted: %+v", got)
	}
}

func TestUserGet_NotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, 404); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("GetByID: expected ErrRecordNotFound, got %v", err)
	}
	if _, err := repo.GetByEmail(ctx, "nobody@test.local"); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("GetByEmail: expected ErrRecordNotFound, got %v", err)
	}
}

func TestUserExistsByEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeUser("alice@test.local")); err != nil {
		t.Fatalf("Create: %v", err)
	}

	exists, err := repo.ExistsByEmail(ctx, "alice@test.local")
	if err != nil || !exists {
		t.Fatalf("ExistsByEmail = (%v, %v), want (true, nil)", exists, err)
	}
	exists, err = repo.ExistsByEmail(ctx, "bob@test.local")
	if err != nil || exists {
		t.Fatalf("ExistsByEmail = (%v, %v), want (false, nil)", exists, err)
	}
}

func TestUserUniqueEmail(t *testing.T) {
	db := openTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	if err := repo.Create(ctx, makeUser("alice@test.local")); err != nil {
		t.Fatalf("Create: %v", err)
	}
	err := repo.Create(ctx, makeUser("alice@test.local"))
	if !errors.Is(err, gorm.ErrDuplicatedKey) {
		t.Fatalf("expected ErrDuplicatedKey, got %v", err)
	}
}
