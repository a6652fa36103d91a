package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, exp *time.Time) string {
	t.Helper()

	claims := &Claims{UserID: "user-1"}
	if exp != nil {
		claims.ExpiresAt = jwt.NewNumericDate(*exp)
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("whatever"))
	require.NoError(t, err)

	return token
}

func TestDecode_Valid(t *testing.T) {
	exp := time.Now().Add(time.Hour)
	token := signedToken(t, &exp)

	claims, err := Decode(token)

	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestDecode_Malformed(t *testing.T) {
	_, err := Decode("not-a-jwt")

	assert.ErrorIs(t, err, ErrMalformedToken)
}

func TestExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "future exp", token: signedToken(t, &future), want: false},
		{name: "past exp", token: signedToken(t, &past), want: true},
		{name: "no exp claim", token: signedToken(t, nil), want: false},
		{name: "garbage", token: "garbage", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Expired(tt.token, now))
		})
	}
}
