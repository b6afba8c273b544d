package secrets

import (
	"testing"

	"github.com/fernet/fernet-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncryptor_RoundTrip(t *testing.T) {
	var key fernet.Key
	require.NoError(t, key.Generate())

	enc, err := NewEncryptor(key.Encode())
	require.NoError(t, err)

	token, err := enc.Encrypt("evds-api-key-value")
	require.NoError(t, err)
	assert.NotEqual(t, "evds-api-key-value", token)

	plaintext, err := enc.Decrypt(token)
	require.NoError(t, err)
	assert.Equal(t, "evds-api-key-value", plaintext)
}

func TestEncryptor_WrongKeyFails(t *testing.T) {
	var key1, key2 fernet.Key
	require.NoError(t, key1.Generate())
	require.NoError(t, key2.Generate())

	enc1, err := NewEncryptor(key1.Encode())
	require.NoError(t, err)
	enc2, err := NewEncryptor(key2.Encode())
	require.NoError(t, err)

	token, err := enc1.Encrypt("secret")
	require.NoError(t, err)

	_, err = enc2.Decrypt(token)
	assert.ErrorIs(t, err, ErrDecryptFailed)
}

func TestNewEncryptor_InvalidKey(t *testing.T) {
	_, err := NewEncryptor("not-a-fernet-key")
	assert.Error(t, err)
}
