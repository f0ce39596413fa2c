package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-registry-api/internal/domain/errs"
)

func TestValidateEmail(t *testing.T) {
	valid := []string{
		"username@domain.com",
		"user.name@domain.com",
		"user22name@domain.com",
		"12username12@domain.co.in",
		"a@b.com",
		"x@sub-domain.example.org",
	}
	invalid := []string{
		"",
		"   ",
		"username.@domain.com",
		".username@domain.com",
		"user..name@domain.com",
		"user-name12@domain.com",
		"user_name@domain.com",
		"username@.com",
		"username@-domain.com",
		"username@domain",
		"username@domain.c",
		"username@domain.c0m",
		"@domain.com",
		"username",
		"user name@domain.com",
	}

	for _, email := range valid {
		email := email
		t.Run("valid "+email, func(t *testing.T) {
			assert.NoError(t, ValidateEmail(email))
		})
	}
	for _, email := range invalid {
		email := email
		t.Run("invalid "+email, func(t *testing.T) {
			assert.ErrorIs(t, ValidateEmail(email), errs.ErrInvalidData)
		})
	}
}

func TestValidateEmail_LocalPartLength(t *testing.T) {
	local := make([]byte, maxEmailLocalLen)
	for i := range local {
		local[i] = 'a'
	}

	assert.NoError(t, ValidateEmail(string(local)+"@domain.com"))
	assert.ErrorIs(t, ValidateEmail(string(local)+"a@domain.com"), errs.ErrInvalidData)
}

func TestValidateNames(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"empty", "", true},
		{"spaces", "   ", true},
		{"tabs and newline", "\t\n", true},
		{"single letter", "J", false},
		{"regular", "John", false},
		{"padded", "  John ", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			first := ValidateFirstName(tt.value)
			last := ValidateLastName(tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, first, errs.ErrInvalidData)
				assert.EqualError(t, first, "First name cannot be null or empty")
				assert.ErrorIs(t, last, errs.ErrInvalidData)
				assert.EqualError(t, last, "Last name cannot be null or empty")
				return
			}
			assert.NoError(t, first)
			assert.NoError(t, last)
		})
	}
}

func fixedBirthDateValidator(minAge int, now time.Time) *BirthDateValidator {
	v := NewBirthDateValidator(minAge)
	v.now = func() time.Time { return now }
	return v
}

func TestBirthDateValidator_Validate(t *testing.T) {
	now := time.Date(2024, 4, 24, 15, 30, 0, 0, time.UTC)
	v := fixedBirthDateValidator(18, now)

	tests := []struct {
		name    string
		date    time.Time
		wantErr string
	}{
		{"zero", time.Time{}, "Birth date cannot be null"},
		{"tomorrow", time.Date(2024, 4, 25, 0, 0, 0, 0, time.UTC), "Invalid birth date. Can't be in future"},
		{"ten years ahead", time.Date(2034, 1, 1, 0, 0, 0, 0, time.UTC), "Invalid birth date. Can't be in future"},
		{"today", time.Date(2024, 4, 24, 0, 0, 0, 0, time.UTC), "Invalid birth date. Not old enough (min age is 18 y.)"},
		{"17 years and a month", time.Date(2007, 3, 24, 0, 0, 0, 0, time.UTC), "Invalid birth date. Not old enough (min age is 18 y.)"},
		// only calendar years count: born late in 2006 is already 18
		{"year difference reaches min age", time.Date(2006, 12, 31, 0, 0, 0, 0, time.UTC), ""},
		{"twenty years", time.Date(2004, 4, 24, 0, 0, 0, 0, time.UTC), ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.date)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, errs.ErrInvalidData)
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}

func TestBirthDateValidator_ZeroMinAge(t *testing.T) {
	now := time.Date(2024, 4, 24, 0, 0, 0, 0, time.UTC)
	v := fixedBirthDateValidator(0, now)

	assert.NoError(t, v.Validate(now))
	assert.ErrorIs(t, v.Validate(now.AddDate(0, 0, 1)), errs.ErrInvalidData)
}
