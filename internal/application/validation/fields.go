package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"user-registry-api/internal/domain/errs"
)

const maxEmailLocalLen = 64

// local part: alphanumeric segments joined by single dots;
// domain: labels not starting with '-', ending in an alphabetic TLD of 2+ letters.
var emailRe = regexp.MustCompile(
	`^[A-Za-z0-9]+(\.[A-Za-z0-9]+)*@[A-Za-z0-9][A-Za-z0-9-]*(\.[A-Za-z0-9-]+)*\.[A-Za-z]{2,}$`,
)

func ValidateEmail(email string) error {
	if strings.TrimSpace(email) == "" {
		return errs.InvalidData("Email cannot be null or empty")
	}
	if at := strings.IndexByte(email, '@'); at < 1 || at > maxEmailLocalLen {
		return errs.InvalidData("Invalid email")
	}
	if !emailRe.MatchString(email) {
		return errs.InvalidData("Invalid email")
	}

	return nil
}

func ValidateFirstName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.InvalidData("First name cannot be null or empty")
	}
	return nil
}

func ValidateLastName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.InvalidData("Last name cannot be null or empty")
	}
	return nil
}

type BirthDateValidator struct {
	minAge int
	now    func() time.Time
}

func NewBirthDateValidator(minAge int) *BirthDateValidator {
	return &BirthDateValidator{minAge: minAge, now: time.Now}
}

// Validate rejects a zero date, a date after today and anyone younger than minAge.
// Age is the difference of calendar years only.
func (v *BirthDateValidator) Validate(birthDate time.Time) error {
	if birthDate.IsZero() {
		return errs.InvalidData("Birth date cannot be null")
	}

	now := v.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	day := time.Date(birthDate.Year(), birthDate.Month(), birthDate.Day(), 0, 0, 0, 0, time.UTC)
	if day.After(today) {
		return errs.InvalidData("Invalid birth date. Can't be in future")
	}
	if today.Year()-day.Year() < v.minAge {
		return errs.InvalidData(fmt.Sprintf("Invalid birth date. Not old enough (min age is %d y.)", v.minAge))
	}

	return nil
}
