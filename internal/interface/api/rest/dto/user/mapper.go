package user

import (
	"time"

	"golang.org/x/text/unicode/norm"

	"user-registry-api/internal/domain/errs"
	"user-registry-api/internal/domain/user"
)

const DateLayout = "2006-01-02"

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:        uDomain.UUID,
		Email:     uDomain.Email,
		FirstName: uDomain.FirstName,
		LastName:  uDomain.LastName,
		BirthDate: uDomain.BirthDate.Format(DateLayout),
		Address:   uDomain.Address,
		Phone:     uDomain.Phone,
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

// ParseDate reads a YYYY-MM-DD calendar date as UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, errs.InvalidData("Invalid date " + s + ", want YYYY-MM-DD")
	}
	return d, nil
}

// ToDomainUser maps a full request. Missing mandatory fields become zero values
// and are rejected later by the full validator.
func ToDomainUser(uRequest Request) (user.User, error) {
	var u = user.User{
		Email:     deref(uRequest.Email),
		FirstName: normalizeName(deref(uRequest.FirstName)),
		LastName:  normalizeName(deref(uRequest.LastName)),
		Address:   uRequest.Address,
		Phone:     uRequest.Phone,
	}
	if uRequest.BirthDate != nil {
		d, err := ParseDate(*uRequest.BirthDate)
		if err != nil {
			return user.User{}, err
		}
		u.BirthDate = d
	}

	return u, nil
}

func ToDomainPatch(uRequest Request) (user.Patch, error) {
	var p = user.Patch{
		Email:   uRequest.Email,
		Address: uRequest.Address,
		Phone:   uRequest.Phone,
	}
	if uRequest.FirstName != nil {
		n := normalizeName(*uRequest.FirstName)
		p.FirstName = &n
	}
	if uRequest.LastName != nil {
		n := normalizeName(*uRequest.LastName)
		p.LastName = &n
	}
	if uRequest.BirthDate != nil {
		d, err := ParseDate(*uRequest.BirthDate)
		if err != nil {
			return user.Patch{}, err
		}
		p.BirthDate = &d
	}

	return p, nil
}

// names typed with combining marks are stored composed
func normalizeName(s string) string { return norm.NFC.String(s) }

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
