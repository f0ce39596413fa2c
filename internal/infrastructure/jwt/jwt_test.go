package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const issuer = "userregistry"

func sign(t *testing.T, method jwt.SigningMethod, secret string, claims Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return tok
}

func TestIssueAndValidate(t *testing.T) {
	s := New("super-secret", issuer)

	tok, err := s.IssueToken("backoffice", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := s.ValidateToken(tok)
	require.NoError(t, err)
	assert.Equal(t, "backoffice", claims.Subject)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, issuer, claims.Issuer)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, 5*time.Second)
}

func TestValidateToken_Table(t *testing.T) {
	exp := jwt.NewNumericDate(time.Now().Add(time.Hour))
	good := Claims{RegisteredClaims: jwt.RegisteredClaims{Issuer: issuer, Subject: "crm-sync", ExpiresAt: exp}}

	withIssuer := good
	withIssuer.Issuer = "someone-else"
	noExp := good
	noExp.ExpiresAt = nil
	noSubject := good
	noSubject.Subject = ""

	tests := []struct {
		name    string
		token   string
		wantErr error
	}{
		{name: "valid", token: sign(t, jwt.SigningMethodHS256, "k1", good)},
		{name: "signature mismatch", token: sign(t, jwt.SigningMethodHS256, "k2", good), wantErr: ErrInvalidToken},
		{name: "unexpected algorithm", token: sign(t, jwt.SigningMethodHS512, "k1", good), wantErr: ErrInvalidToken},
		{name: "foreign issuer", token: sign(t, jwt.SigningMethodHS256, "k1", withIssuer), wantErr: ErrInvalidToken},
		{name: "no expiry", token: sign(t, jwt.SigningMethodHS256, "k1", noExp), wantErr: ErrInvalidToken},
		{name: "no subject", token: sign(t, jwt.SigningMethodHS256, "k1", noSubject), wantErr: ErrInvalidClaims},
		{name: "malformed", token: "not-a-jwt", wantErr: ErrInvalidToken},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			claims, err := New("k1", issuer).ValidateToken(tt.token)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "crm-sync", claims.Subject)
		})
	}
}

func TestValidateToken_Expired(t *testing.T) {
	s := New("k1", issuer)
	tok, err := s.IssueToken("backoffice", "", -time.Minute)
	require.NoError(t, err)

	_, err = s.ValidateToken(tok)
	require.ErrorIs(t, err, ErrInvalidToken)
}
