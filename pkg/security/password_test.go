package security

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher_HashAndCompare(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hash, err := h.Hash("Abcdef1!")
	require.NoError(t, err)
	assert.NotEqual(t, "Abcdef1!", hash)

	ok, err := h.Compare(hash, "Abcdef1!")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = h.Compare(hash, "Abcdef1?")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPasswordHasher_UsesConfiguredCost(t *testing.T) {
	hash, err := NewPasswordHasher(5).Hash("Abcdef1!")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, 5, cost)

	assert.Equal(t, DefaultCost, NewPasswordHasher(0).cost)
}

func TestPasswordHasher_Errors(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", 73))
	assert.ErrorIs(t, err, ErrPasswordTooLong)

	_, err = h.Compare("not-a-bcrypt-hash", "Abcdef1!")
	assert.Error(t, err)
}
