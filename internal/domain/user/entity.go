package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	UUID = uuid.UUID
	User struct {
		UUID      UUID
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

	// Patch is a partial user; nil fields are left untouched.
	Patch struct {
		Email     *string
		FirstName *string
		LastName  *string
		BirthDate *time.Time
		Address   *string
		Phone     *string
	}

	// DateRange bounds a birth date search, both ends inclusive.
	DateRange struct {
		From *time.Time
		To   *time.Time
	}
)

// Apply copies every non-nil field of p onto u.
func (u *User) Apply(p Patch) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.FirstName != nil {
		u.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		u.LastName = *p.LastName
	}
	if p.BirthDate != nil {
		u.BirthDate = *p.BirthDate
	}
	if p.Address != nil {
		u.Address = p.Address
	}
	if p.Phone != nil {
		u.Phone = p.Phone
	}
}
