package ports

import (
	"context"

	"user-registry-api/internal/domain/user"
)

type UserService interface {
	FindUserByID(ctx context.Context, uuid user.UUID) (*user.User, error)
	FindUsers(ctx context.Context) (user.Users, error)
	FindUsersByBirthDateRange(ctx context.Context, r *user.DateRange) (user.Users, error)
	CreateUser(ctx context.Context, u *user.User) (*user.User, error)
	UpdateUser(ctx context.Context, uuid user.UUID, u *user.User) (*user.User, error)
	PatchUser(ctx context.Context, uuid user.UUID, p *user.Patch) (*user.User, error)
	DeleteUser(ctx context.Context, uuid user.UUID) error
}
