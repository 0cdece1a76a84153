package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/cesta-amigo/internal/domain/profile"
)

func TestIssueAndParse(t *testing.T) {
	iss := NewIssuer("secret", 0)
	id := uuid.New()

	raw, issued, err := iss.Issue(id, profile.RoleAdmin)
	require.NoError(t, err)
	assert.NotEmpty(t, issued.ID)
	assert.Equal(t, 24*time.Hour, issued.ExpiresAt.Sub(issued.IssuedAt.Time))

	claims, err := iss.Parse(raw)
	require.NoError(t, err)

	got, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, id, got)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, issued.ID, claims.ID)
}

func TestParse_Rejects(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	raw, _, err := iss.Issue(uuid.New(), profile.RoleVendedor)
	require.NoError(t, err)

	_, err = NewIssuer("other", time.Hour).Parse(raw)
	assert.Error(t, err, "wrong secret")

	expired := NewIssuer("secret", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	_, err = expired.Parse(raw)
	assert.Error(t, err, "expired")

	none, _ := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.MapClaims{"sub": uuid.NewString()}).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	_, err = iss.Parse(none)
	assert.Error(t, err, "alg none")

	_, err = iss.Parse("garbage")
	assert.Error(t, err)
}

func TestRemaining(t *testing.T) {
	now := time.Now()
	c := Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}}
	assert.InDelta(t, time.Hour.Seconds(), c.Remaining(now).Seconds(), 1)
	assert.Zero(t, Claims{}.Remaining(now))
}
