package user

import (
	"context"
	"errors"
	"time"
)

// ErrEmailAlreadyExists is returned by CreateUser and UpdateUser when the store
// rejects the email as already used by another live user.
var ErrEmailAlreadyExists = errors.New("email already exists")

// Repository returns (nil, nil) from the single-user lookups when no live row matches.
type Repository interface {
	FetchUserByID(ctx context.Context, uuid UUID) (*User, error)
	FetchUsers(ctx context.Context) (Users, error)
	FetchUsersByBirthDate(ctx context.Context, from, to time.Time) (Users, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, req User) (*User, error)
	DeleteUser(ctx context.Context, uuid UUID) (*User, error)
}
