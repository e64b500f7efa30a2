package auth

import (
	"context"
	"errors"

	"compass-backend/internal/domain/user"

	"gorm.io/gorm"
)

type Usecase struct{ users user.Repository }

func NewUsecase(users user.Repository) *Usecase { return &Usecase{users: users} }

func (u *Usecase) Signup(ctx context.Context, in SignupInput) (*UserDTO, error) {
	email := user.NormalizeEmail(in.Email)

	taken, err := u.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, user.ErrEmailTaken
	}

	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	nu := &user.User{
		Name:     in.Name,
		Email:    email,
		Password: hash,
		Role:     user.RoleUser, // signup never grants ADMIN
	}
	if err := u.users.Create(ctx, nu); err != nil {
		// Concurrent signup with the same email: the unique index wins.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, user.ErrEmailTaken
		}
		return nil, err
	}
	return toDTO(nu), nil
}

func (u *Usecase) Login(ctx context.Context, email, password string) (*UserDTO, error) {
	found, err := u.users.GetByEmail(ctx, user.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrInvalidCredentials
		}
		return nil, err
	}
	if err := CheckPassword(found.Password, password); err != nil {
		return nil, user.ErrInvalidCredentials
	}
	return toDTO(found), nil
}

// EnsureAdmin seeds the default ADMIN account at startup; it is a no-op
// when the email is already registered.
func (u *Usecase) EnsureAdmin(ctx context.Context, name, email, password string) error {
	email = user.NormalizeEmail(email)
	exists, err := u.users.ExistsByEmail(ctx, email)
	if err != nil || exists {
		return err
	}
	hash, err := HashPassword(password)
	if err != nil {
		return err
	}
	return u.users.Create(ctx, &user.User{
		Name:     name,
		Email:    email,
		Password: hash,
		Role:     user.RoleAdmin,
	})
}

func toDTO(us *user.User) *UserDTO {
	return &UserDTO{ID: us.ID, Name: us.Name, Email: us.Email, Role: string(us.Role)}
}
