package service

import (
	"testing"

	"storefront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reversingHasher struct {
	err error
}

func (h reversingHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	out := []rune(password)
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out), nil
}

func (h reversingHasher) Check(password, hash string) bool {
	got, _ := h.Hash(password)

	return got == hash
}

func TestSealPassword(t *testing.T) {
	t.Run("hashes and clears a plaintext password", func(t *testing.T) {
		user := &entity.User{Username: "alice_martin", Password: "password123"}

		require.NoError(t, SealPassword(reversingHasher{}, user))
		assert.Empty(t, user.Password)
		assert.Equal(t, "321drowssap", user.PasswordHash)
	})

	t.Run("keeps an existing hash", func(t *testing.T) {
		user := &entity.User{PasswordHash: "stored"}

		require.NoError(t, SealPassword(reversingHasher{err: assert.AnError}, user))
		assert.Equal(t, "stored", user.PasswordHash)
	})

	t.Run("ignores other kinds", func(t *testing.T) {
		require.NoError(t, SealPassword(reversingHasher{err: assert.AnError}, &entity.Category{Name: "Makeup"}))
	})

	t.Run("surfaces hashing errors", func(t *testing.T) {
		user := &entity.User{Password: "password123"}

		assert.ErrorIs(t, SealPassword(reversingHasher{err: assert.AnError}, user), assert.AnError)
		assert.Equal(t, "password123", user.Password)
	})
}
