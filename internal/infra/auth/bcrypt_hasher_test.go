package auth

import (
	"strings"
	"testing"

	"gatehouse/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newTestHasherConfig(cost int) *config.Config {
	return &config.Config{Auth: &config.AuthConfig{BcryptCost: cost}}
}

func TestBcryptHasher_Hash(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	password := "StrongPass123!"
	hash, err := hasher.Hash(password)
	require.NoError(t, err)
	assert.NotEmpty(t, hash)
	assert.NotEqual(t, password, hash)

	// Verify the hash can be checked
	assert.True(t, hasher.Check(password, hash))

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, cost)
}

func TestBcryptHasher_HashTooLong(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))

	_, err := hasher.Hash(strings.Repeat("a", 73))
	assert.Error(t, err)
}

func TestBcryptHasher_Check(t *testing.T) {
	hasher := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))
	password := "StrongPass123!"

	hash, err := hasher.Hash(password)
	require.NoError(t, err)

	assert.True(t, hasher.Check(password, hash))
	assert.False(t, hasher.Check("WrongPassword123!", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check(password, "not-a-bcrypt-hash"))
}

func TestBcryptHasher_NeedsRehash(t *testing.T) {
	low := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost))
	high := NewBcryptHasher(newTestHasherConfig(bcrypt.MinCost + 1))

	hash, err := low.Hash("StrongPass123!")
	require.NoError(t, err)

	assert.False(t, low.NeedsRehash(hash))
	assert.True(t, high.NeedsRehash(hash))
	assert.True(t, low.NeedsRehash("garbage"))
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "nil config", cfg: nil, want: bcrypt.DefaultCost},
		{name: "unset cost", cfg: newTestHasherConfig(0), want: bcrypt.DefaultCost},
		{name: "below minimum", cfg: newTestHasherConfig(1), want: bcrypt.MinCost},
		{name: "above maximum", cfg: newTestHasherConfig(99), want: bcrypt.MaxCost},
		{name: "configured", cfg: newTestHasherConfig(11), want: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hasher, ok := NewBcryptHasher(tt.cfg).(*bcryptHasher)
			require.True(t, ok)
			assert.Equal(t, tt.want, hasher.cost)
		})
	}
}
