package user

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"user-registry-api/internal/domain/user"
	"user-registry-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.UUID,
		&u.Email,
		&u.FirstName,
		&u.LastName,
		&u.BirthDate,
		&u.Address,
		&u.Phone,

		&u.CreatedAt,
		&u.UpdatedAt,

		&u.DeletedAt,
	)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) fetchMany(ctx context.Context, sql string, args ...any) (user.Users, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(us), nil
}

// fetchOne maps pgx.ErrNoRows to (nil, nil) and unique violations to ErrEmailAlreadyExists.
func (r *Repository) fetchOne(ctx context.Context, sql string, args ...any) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if postgres.IsPgUniqueViolation(err) {
			return nil, user.ErrEmailAlreadyExists
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(u), nil
}

func (r *Repository) FetchUsers(ctx context.Context) (user.Users, error) {
	return r.fetchMany(ctx, SelectUsers)
}

func (r *Repository) FetchUsersByBirthDate(ctx context.Context, from, to time.Time) (user.Users, error) {
	return r.fetchMany(ctx, SelectUsersByBirthDate, from, to)
}

func (r *Repository) FetchUserByID(ctx context.Context, uuid user.UUID) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByUUID, uuid.String())
}

func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, ExistsUserByEmail, email).Scan(&exists); err != nil {
		return false, err
	}

	return exists, nil
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	return r.fetchOne(ctx, InsertUser,
		req.Email, req.FirstName, req.LastName, req.BirthDate, req.Address, req.Phone,
	)
}

func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	return r.fetchOne(ctx, UpdateUserByUUID,
		req.Email, req.FirstName, req.LastName, req.BirthDate, req.Address, req.Phone, req.UUID.String(),
	)
}

func (r *Repository) DeleteUser(ctx context.Context, uuid user.UUID) (*user.User, error) {
	return r.fetchOne(ctx, SoftDeleteUserByUUID, uuid.String())
}
