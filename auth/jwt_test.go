package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignParseRoundtrip(t *testing.T) {
	j, err := New("test-secret", time.Hour)
	require.NoError(t, err)

	identity := Identity{UserID: 7, Email: "admin@example.com", Role: "admin"}
	token, err := j.Sign(identity)
	require.NoError(t, err)

	parsed, err := j.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, identity, *parsed)
}

func TestParseRejectsExpiredToken(t *testing.T) {
	j, err := New("test-secret", -time.Minute)
	require.NoError(t, err)

	token, err := j.Sign(Identity{UserID: 1, Email: "a@b.c", Role: "admin"})
	require.NoError(t, err)

	_, err = j.Parse(token)
	assert.Error(t, err)
}

func TestParseRejectsWrongKey(t *testing.T) {
	signer, err := New("one-secret", time.Hour)
	require.NoError(t, err)
	verifier, err := New("other-secret", time.Hour)
	require.NoError(t, err)

	token, err := signer.Sign(Identity{UserID: 1, Email: "a@b.c", Role: "admin"})
	require.NoError(t, err)

	_, err = verifier.Parse(token)
	assert.Error(t, err)
}

func TestNewRejectsEmptySecret(t *testing.T) {
	_, err := New("", time.Hour)
	assert.Error(t, err)
}
