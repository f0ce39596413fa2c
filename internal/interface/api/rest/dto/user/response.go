package user

import (
	"github.com/google/uuid"
)

type (
	User struct {
		ID        uuid.UUID `json:"id"`
		Email     string    `json:"email"`
		FirstName string    `json:"firstName"`
		LastName  string    `json:"lastName"`
		BirthDate string    `json:"birthDate"`
		Address   *string   `json:"address"`
		Phone     *string   `json:"phone"`
	}
	Users []User
)
