package helpers

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-0123456789"

func newTestTokenManager(t *testing.T, ttl time.Duration) *TokenManager {
	t.Helper()
	tm, err := NewTokenManager(testSecret, "HS256", ttl)
	require.NoError(t, err)
	return tm
}

func TestNewTokenManager_RejectsUnknownAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := NewTokenManager(testSecret, "none", 15*time.Minute)
	require.Error(t, err)

	_, err = NewTokenManager(testSecret, "RS256", 15*time.Minute)
	require.Error(t, err)
}

func TestTokenManager_RoundTrip(t *testing.T) {
	t.Parallel()

	tm := newTestTokenManager(t, 15*time.Minute)

	token, exp, err := tm.Generate("user-1", "alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), exp, 2*time.Second)

	claims, err := tm.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, exp, claims.ExpiresAt.Time, time.Second)
}

func TestTokenManager_Expired(t *testing.T) {
	t.Parallel()

	tm := newTestTokenManager(t, -1*time.Minute)

	token, _, err := tm.Generate("user-1", "alice")
	require.NoError(t, err)

	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_TamperedSignature(t *testing.T) {
	t.Parallel()

	tm := newTestTokenManager(t, 15*time.Minute)

	token, _, err := tm.Generate("user-1", "alice")
	require.NoError(t, err)

	i := strings.LastIndex(token, ".")
	require.Greater(t, i, 0)
	sig := []byte(token[i+1:])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := token[:i+1] + string(sig)

	_, err = tm.Parse(tampered)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_TamperedClaims(t *testing.T) {
	t.Parallel()

	tm := newTestTokenManager(t, 15*time.Minute)

	victim, _, err := tm.Generate("user-1", "alice")
	require.NoError(t, err)
	attacker, _, err := tm.Generate("user-2", "mallory")
	require.NoError(t, err)

	// Claims of one token stitched to the signature of another.
	vp := strings.Split(victim, ".")
	ap := strings.Split(attacker, ".")
	require.Len(t, vp, 3)
	require.Len(t, ap, 3)
	spliced := vp[0] + "." + vp[1] + "." + ap[2]

	_, err = tm.Parse(spliced)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_WrongKeyOrAlgorithm(t *testing.T) {
	t.Parallel()

	tm := newTestTokenManager(t, 15*time.Minute)

	otherKey, err := NewTokenManager("another-secret-key-987654321", "HS256", 15*time.Minute)
	require.NoError(t, err)
	token, _, err := otherKey.Generate("user-1", "alice")
	require.NoError(t, err)
	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)

	otherAlg, err := NewTokenManager(testSecret, "HS512", 15*time.Minute)
	require.NoError(t, err)
	token, _, err = otherAlg.Generate("user-1", "alice")
	require.NoError(t, err)
	_, err = tm.Parse(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokenManager_GarbageInput(t *testing.T) {
	t.Parallel()

	tm := newTestTokenManager(t, 15*time.Minute)

	for _, raw := range []string{"", "garbage", "a.b.c"} {
		_, err := tm.Parse(raw)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}
