package token

import (
	"encoding/base64"
	"testing"

	"gatehouse/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodec_RoundTrip(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		delimiter  string
		identifier string
		secret     string
	}{
		{name: "access token prefix", prefix: "oat_", delimiter: ".", identifier: uuid.NewString(), secret: "abcDEF123"},
		{name: "empty prefix", prefix: "", delimiter: ".", identifier: "series-1", secret: "s3cr3t"},
		{name: "numeric identifier", prefix: "pat_", delimiter: ".", identifier: "42", secret: "x"},
		{name: "secret contains delimiter", prefix: "oat_", delimiter: ".", identifier: "7", secret: "a.b.c"},
		{name: "custom delimiter", prefix: "tok-", delimiter: "~", identifier: "abc", secret: "def"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec := NewCodec(tt.prefix, tt.delimiter)

			value, err := codec.Encode(tt.identifier, tt.secret)
			require.NoError(t, err)
			assert.Contains(t, value, tt.prefix)

			decoded, ok := codec.Decode(value)
			require.True(t, ok)
			assert.Equal(t, tt.identifier, decoded.Identifier)

			secret, released := decoded.Secret.Release()
			require.True(t, released)
			assert.Equal(t, tt.secret, secret)
		})
	}
}

func TestCodec_Decode_Malformed(t *testing.T) {
	codec := NewCodec("oat_", ".")
	encodedID := base64.RawURLEncoding.EncodeToString([]byte("1"))
	encodedSecret := base64.RawURLEncoding.EncodeToString([]byte("secret"))

	tests := []struct {
		name  string
		value string
	}{
		{name: "empty", value: ""},
		{name: "prefix only", value: "oat_"},
		{name: "wrong prefix", value: "pat_" + encodedID + "." + encodedSecret},
		{name: "missing delimiter", value: "oat_" + encodedID + encodedSecret},
		{name: "empty identifier", value: "oat_." + encodedSecret},
		{name: "empty secret", value: "oat_" + encodedID + "."},
		{name: "invalid identifier encoding", value: "oat_!!!." + encodedSecret},
		{name: "invalid secret encoding", value: "oat_" + encodedID + ".***"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				decoded, ok := codec.Decode(tt.value)
				assert.False(t, ok)
				assert.Nil(t, decoded.Secret)
			})
		})
	}
}

func TestCodec_Decode_IdentifierValidator(t *testing.T) {
	codec := NewCodec("oat_", ".").WithIdentifierValidator(func(id string) bool {
		return uuid.Validate(id) == nil
	})

	valid, err := codec.Encode(uuid.NewString(), "secret")
	require.NoError(t, err)
	invalid, err := codec.Encode("not-a-uuid", "secret")
	require.NoError(t, err)

	_, ok := codec.Decode(valid)
	assert.True(t, ok)

	_, ok = codec.Decode(invalid)
	assert.False(t, ok)
}

func TestCodec_Encode_RejectsBadInput(t *testing.T) {
	codec := NewCodec("oat_", ".")

	_, err := codec.Encode("", "secret")
	assert.True(t, errors.Is(err, ErrInvalidIdentifier))

	_, err = codec.Encode("1", "")
	assert.True(t, errors.Is(err, ErrEmptySecret))

	// "-" is part of the base64url alphabet, so the encoded identifier collides.
	dashCodec := NewCodec("", "-")
	_, err = dashCodec.Encode("\xfb\xff", "secret")
	assert.True(t, errors.Is(err, ErrInvalidIdentifier))
}

func TestNewCodec_DefaultDelimiter(t *testing.T) {
	codec := NewCodec("oat_", "")

	assert.Equal(t, DefaultDelimiter, codec.Delimiter)
}
