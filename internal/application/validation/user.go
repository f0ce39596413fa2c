package validation

import (
	"user-registry-api/internal/domain/errs"
	"user-registry-api/internal/domain/user"
)

// UserValidator checks whole users and patches. Fields are checked in the order
// email, first name, last name, birth date and the first failure is returned.
type UserValidator struct {
	birthDate *BirthDateValidator
}

func NewUserValidator(birthDate *BirthDateValidator) *UserValidator {
	return &UserValidator{birthDate: birthDate}
}

func (v *UserValidator) Full(u *user.User) error {
	if u == nil {
		return errs.InvalidData("User cannot be null")
	}

	if err := ValidateEmail(u.Email); err != nil {
		return err
	}
	if err := ValidateFirstName(u.FirstName); err != nil {
		return err
	}
	if err := ValidateLastName(u.LastName); err != nil {
		return err
	}

	return v.birthDate.Validate(u.BirthDate)
}

// Partial only checks the fields present in p.
func (v *UserValidator) Partial(p *user.Patch) error {
	if p == nil {
		return errs.InvalidData("User cannot be null")
	}

	if p.Email != nil {
		if err := ValidateEmail(*p.Email); err != nil {
			return err
		}
	}
	if p.FirstName != nil {
		if err := ValidateFirstName(*p.FirstName); err != nil {
			return err
		}
	}
	if p.LastName != nil {
		if err := ValidateLastName(*p.LastName); err != nil {
			return err
		}
	}
	if p.BirthDate != nil {
		if err := v.birthDate.Validate(*p.BirthDate); err != nil {
			return err
		}
	}

	return nil
}
