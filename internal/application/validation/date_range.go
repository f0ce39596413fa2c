package validation

import (
	"user-registry-api/internal/domain/errs"
	"user-registry-api/internal/domain/user"
)

func ValidateDateRange(r *user.DateRange) error {
	if r == nil {
		return errs.InvalidData("Date range cannot be null")
	}
	if r.From == nil || r.To == nil {
		return errs.InvalidData("Both from and to dates must be provided")
	}
	if r.From.After(*r.To) {
		return errs.InvalidData("From date cannot be after to date")
	}

	return nil
}
