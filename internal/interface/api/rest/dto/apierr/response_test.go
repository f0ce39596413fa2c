package apierr

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusName(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{http.StatusBadRequest, "BAD_REQUEST"},
		{http.StatusUnauthorized, "UNAUTHORIZED"},
		{http.StatusNotFound, "NOT_FOUND"},
		{http.StatusConflict, "CONFLICT"},
		{http.StatusInternalServerError, "INTERNAL_SERVER_ERROR"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, StatusName(tt.code))
		})
	}
}

func TestNew(t *testing.T) {
	r := New(http.StatusConflict, "User with email a@b.com already exists")

	assert.Equal(t, "User with email a@b.com already exists", r.Message)
	assert.Equal(t, "CONFLICT", r.HTTPStatus)
	ts, err := time.Parse(time.RFC3339, r.Timestamp)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now(), ts, 5*time.Second)
}
