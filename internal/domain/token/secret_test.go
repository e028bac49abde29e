package token

import (
	"encoding/json"
	"fmt"
	"hash/crc32"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSecret(t *testing.T) {
	secret, err := GenerateSecret(DefaultSecretSize)
	require.NoError(t, err)

	value, ok := secret.Release()
	require.True(t, ok)
	require.Greater(t, len(value), DefaultSecretSize)

	seed, checksum := value[:DefaultSecretSize], value[DefaultSecretSize:]
	assert.Equal(t, strconv.FormatUint(uint64(crc32.ChecksumIEEE([]byte(seed))), 10), checksum)
}

func TestGenerateSecret_Unique(t *testing.T) {
	seen := make(map[string]struct{})

	for range 50 {
		secret, err := GenerateSecret(0)
		require.NoError(t, err)

		value, _ := secret.Release()
		_, dup := seen[value]
		require.False(t, dup)
		seen[value] = struct{}{}
	}
}

func TestSecret_ReleaseOnce(t *testing.T) {
	secret := NewSecret("plaintext")

	value, ok := secret.Release()
	assert.True(t, ok)
	assert.Equal(t, "plaintext", value)
	assert.True(t, secret.Released())

	value, ok = secret.Release()
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSecret_Redacted(t *testing.T) {
	secret := NewSecret("plaintext")

	assert.Equal(t, "[redacted]", secret.String())
	assert.Equal(t, "[redacted]", fmt.Sprintf("%v", secret))
	assert.Equal(t, "[redacted]", fmt.Sprintf("%#v", secret))

	out, err := json.Marshal(map[string]any{"secret": secret})
	require.NoError(t, err)
	assert.JSONEq(t, `{"secret":"[redacted]"}`, string(out))
	assert.Equal(t, "[redacted]", secret.LogValue().String())

	value, ok := secret.Release()
	assert.True(t, ok)
	assert.Equal(t, "plaintext", value)
}

func TestVerify(t *testing.T) {
	pairs := [][2]string{
		{"secret", "other"},
		{"a", "b"},
		{"abc123", "abc124"},
		{"long-secret-value", "long-secret-valuf"},
	}

	for _, pair := range pairs {
		assert.True(t, Verify(pair[0], Hash(pair[0])))
		assert.False(t, Verify(pair[0], Hash(pair[1])))
	}

	assert.False(t, Verify("", Hash("")))
	assert.False(t, Verify("secret", ""))
}

func TestSecret_Matches(t *testing.T) {
	secret := NewSecret("plaintext")
	hash := Hash("plaintext")

	assert.Equal(t, hash, secret.Hash())
	assert.True(t, secret.Matches(hash))
	assert.False(t, secret.Matches(Hash("other")))

	_, _ = secret.Release()
	assert.False(t, secret.Matches(hash))

	var nilSecret *Secret
	assert.False(t, nilSecret.Matches(hash))
}

func TestSecret_NilReceiver(t *testing.T) {
	var secret *Secret

	assert.NotPanics(t, func() {
		assert.Empty(t, secret.Hash())
		assert.True(t, secret.Released())

		_, ok := secret.Release()
		assert.False(t, ok)
	})
}

func TestGenerateSeries(t *testing.T) {
	first, err := GenerateSeries()
	require.NoError(t, err)
	second, err := GenerateSeries()
	require.NoError(t, err)

	assert.Len(t, first, seriesSize)
	assert.NotEqual(t, first, second)
}
