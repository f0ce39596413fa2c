package user

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-registry-api/internal/domain/errs"
	"user-registry-api/internal/domain/user"
)

func strPtr(s string) *string { return &s }

func TestToDomainUser(t *testing.T) {
	t.Run("full request", func(t *testing.T) {
		u, err := ToDomainUser(Request{
			Email:     strPtr("john.doe@example.com"),
			FirstName: strPtr("John"),
			LastName:  strPtr("Doe"),
			BirthDate: strPtr("1990-05-17"),
			Address:   strPtr("1 Main st"),
		})
		require.NoError(t, err)
		assert.Equal(t, "john.doe@example.com", u.Email)
		assert.Equal(t, "John", u.FirstName)
		assert.Equal(t, "Doe", u.LastName)
		assert.Equal(t, time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC), u.BirthDate)
		assert.Equal(t, "1 Main st", *u.Address)
		assert.Nil(t, u.Phone)
	})

	t.Run("missing fields become zero values", func(t *testing.T) {
		u, err := ToDomainUser(Request{})
		require.NoError(t, err)
		assert.Equal(t, user.User{}, u)
	})

	t.Run("bad birth date", func(t *testing.T) {
		_, err := ToDomainUser(Request{BirthDate: strPtr("17/05/1990")})
		assert.ErrorIs(t, err, errs.ErrInvalidData)
	})

	t.Run("names are composed", func(t *testing.T) {
		u, err := ToDomainUser(Request{FirstName: strPtr("Jose\u0301")})
		require.NoError(t, err)
		assert.Equal(t, "Jos\u00e9", u.FirstName)
	})
}

func TestToDomainPatch(t *testing.T) {
	t.Run("empty request", func(t *testing.T) {
		p, err := ToDomainPatch(Request{})
		require.NoError(t, err)
		assert.Equal(t, user.Patch{}, p)
	})

	t.Run("only supplied fields are set", func(t *testing.T) {
		p, err := ToDomainPatch(Request{LastName: strPtr("Roe"), BirthDate: strPtr("1985-01-02")})
		require.NoError(t, err)
		assert.Nil(t, p.Email)
		assert.Nil(t, p.FirstName)
		require.NotNil(t, p.LastName)
		assert.Equal(t, "Roe", *p.LastName)
		require.NotNil(t, p.BirthDate)
		assert.Equal(t, time.Date(1985, 1, 2, 0, 0, 0, 0, time.UTC), *p.BirthDate)
	})

	t.Run("names are composed", func(t *testing.T) {
		p, err := ToDomainPatch(Request{LastName: strPtr("Mu\u0308ller"), Email: strPtr("jose\u0301@b.com")})
		require.NoError(t, err)
		assert.Equal(t, "M\u00fcller", *p.LastName)
		assert.Equal(t, "jose\u0301@b.com", *p.Email, "only names are normalised")
	})

	t.Run("bad birth date", func(t *testing.T) {
		_, err := ToDomainPatch(Request{BirthDate: strPtr("yesterday")})
		assert.ErrorIs(t, err, errs.ErrInvalidData)
	})
}

func TestToResponseUsers(t *testing.T) {
	id := uuid.New()
	us := user.Users{{
		UUID:      id,
		Email:     "john.doe@example.com",
		FirstName: "John",
		LastName:  "Doe",
		BirthDate: time.Date(1990, 5, 17, 0, 0, 0, 0, time.UTC),
		Phone:     strPtr("+33612345678"),
	}}

	out := ToResponseUsers(us)
	require.Len(t, out, 1)
	assert.Equal(t, User{
		ID:        id,
		Email:     "john.doe@example.com",
		FirstName: "John",
		LastName:  "Doe",
		BirthDate: "1990-05-17",
		Phone:     strPtr("+33612345678"),
	}, out[0])

	assert.Empty(t, ToResponseUsers(nil))
}
