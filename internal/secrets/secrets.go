// Package secrets seals and opens small secret values (such as the EVDS
// API key) with a fernet key so they can sit in the settings table
// without being readable from a database dump.
package secrets

import (
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"
)

// ErrDecryptFailed indicates a stored value could not be decrypted,
// usually because the configured fernet key changed.
var ErrDecryptFailed = errors.New("failed to decrypt stored value")

// Encryptor encrypts and decrypts strings with a single fernet key.
type Encryptor struct {
	key *fernet.Key
}

// NewEncryptor parses a base64-encoded fernet key.
func NewEncryptor(encodedKey string) (*Encryptor, error) {
	key, err := fernet.DecodeKey(encodedKey)
	if err != nil {
		return nil, fmt.Errorf("invalid fernet key: %w", err)
	}
	return &Encryptor{key: key}, nil
}

// Encrypt seals a plaintext value into a fernet token.
func (e *Encryptor) Encrypt(plaintext string) (string, error) {
	token, err := fernet.EncryptAndSign([]byte(plaintext), e.key)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt value: %w", err)
	}
	return string(token), nil
}

// Decrypt opens a fernet token produced by Encrypt. Tokens never expire;
// the stored key has no TTL semantics.
func (e *Encryptor) Decrypt(token string) (string, error) {
	plaintext := fernet.VerifyAndDecrypt([]byte(token), 0, []*fernet.Key{e.key})
	if plaintext == nil {
		return "", ErrDecryptFailed
	}
	return string(plaintext), nil
}
