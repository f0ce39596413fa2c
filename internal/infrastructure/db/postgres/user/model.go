package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID        int64
		UUID      uuid.UUID
		Email     string
		FirstName string
		LastName  string
		BirthDate time.Time
		Address   *string
		Phone     *string

		CreatedAt time.Time
		UpdatedAt time.Time

		DeletedAt *time.Time
	}
	Users []*User
)
