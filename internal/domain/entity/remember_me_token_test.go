package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const twoYears = 2 * 365 * 24 * time.Hour

func TestNewRememberMeToken(t *testing.T) {
	userID := uuid.New()
	now := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

	rememberToken, err := NewRememberMeToken(userID, "web", twoYears, now)
	require.NoError(t, err)

	assert.NotEmpty(t, rememberToken.Series)
	assert.Equal(t, userID, rememberToken.UserID)
	assert.Equal(t, "web", rememberToken.Guard)
	assert.Equal(t, now, rememberToken.CreatedAt)
	assert.Equal(t, now, rememberToken.UpdatedAt)
	assert.Equal(t, now.Add(twoYears), rememberToken.ExpiresAt)

	value, ok := rememberToken.ReleaseValue()
	require.True(t, ok)

	series, secret, ok := DecodeRememberMeToken(value)
	require.True(t, ok)
	assert.Equal(t, rememberToken.Series, series)
	assert.True(t, rememberToken.Verify(secret))

	_, ok = rememberToken.ReleaseValue()
	assert.False(t, ok)
}

func TestDecodeRememberMeToken_Invalid(t *testing.T) {
	for _, value := range []string{"", "garbage", ".", "abc.", ".abc", "!!.??"} {
		series, secret, ok := DecodeRememberMeToken(value)
		assert.False(t, ok, value)
		assert.Empty(t, series)
		assert.Nil(t, secret)
	}
}

func TestRememberMeToken_IsExpired(t *testing.T) {
	now := time.Now()
	rememberToken, err := NewRememberMeToken(uuid.New(), "web", time.Hour, now)
	require.NoError(t, err)

	assert.False(t, rememberToken.IsExpired(now))
	assert.True(t, rememberToken.IsExpired(now.Add(time.Hour)))
	assert.True(t, rememberToken.IsExpired(now.Add(2*time.Hour)))
}

func TestRememberMeToken_Recycle_WithinBuffer(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rememberToken, err := NewRememberMeToken(uuid.New(), "web", twoYears, issuedAt)
	require.NoError(t, err)

	cookie, ok := rememberToken.ReleaseValue()
	require.True(t, ok)
	hashBefore := rememberToken.Hash

	next, rotated, err := rememberToken.Recycle(cookie, twoYears, issuedAt.Add(30*time.Second), DefaultRecycleBuffer)

	require.NoError(t, err)
	assert.False(t, rotated)
	assert.Equal(t, cookie, next)
	assert.Equal(t, hashBefore, rememberToken.Hash)
	assert.Equal(t, issuedAt, rememberToken.UpdatedAt)
}

func TestRememberMeToken_Recycle_PastBuffer(t *testing.T) {
	issuedAt := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rememberToken, err := NewRememberMeToken(uuid.New(), "web", twoYears, issuedAt)
	require.NoError(t, err)

	cookie, ok := rememberToken.ReleaseValue()
	require.True(t, ok)
	hashBefore := rememberToken.Hash
	recycledAt := issuedAt.Add(90 * time.Second)

	next, rotated, err := rememberToken.Recycle(cookie, twoYears, recycledAt, DefaultRecycleBuffer)

	require.NoError(t, err)
	assert.True(t, rotated)
	assert.NotEqual(t, cookie, next)
	assert.NotEqual(t, hashBefore, rememberToken.Hash)
	assert.Equal(t, recycledAt, rememberToken.UpdatedAt)
	assert.Equal(t, recycledAt.Add(twoYears), rememberToken.ExpiresAt)

	series, oldSecret, ok := DecodeRememberMeToken(cookie)
	require.True(t, ok)
	assert.Equal(t, rememberToken.Series, series)
	assert.False(t, rememberToken.Verify(oldSecret))

	_, newSecret, ok := DecodeRememberMeToken(next)
	require.True(t, ok)
	assert.True(t, rememberToken.Verify(newSecret))
}

func TestRememberMeToken_ShouldRecycle_Boundary(t *testing.T) {
	issuedAt := time.Now()
	rememberToken := &RememberMeToken{UpdatedAt: issuedAt}

	assert.False(t, rememberToken.ShouldRecycle(issuedAt.Add(DefaultRecycleBuffer), DefaultRecycleBuffer))
	assert.True(t, rememberToken.ShouldRecycle(issuedAt.Add(DefaultRecycleBuffer+time.Millisecond), DefaultRecycleBuffer))
	assert.True(t, rememberToken.ShouldRecycle(issuedAt.Add(time.Second), 0))
}

func TestRememberMeToken_ReleaseValue_LoadedFromStorage(t *testing.T) {
	rememberToken := &RememberMeToken{Series: "abc", Hash: "digest"}

	value, ok := rememberToken.ReleaseValue()

	assert.False(t, ok)
	assert.Empty(t, value)
}
