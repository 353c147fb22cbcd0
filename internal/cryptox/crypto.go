// Package cryptox seals small secrets (the auth token) for storage at rest.
package cryptox

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"

	"golang.org/x/crypto/argon2"

	"github.com/dmitrijs2005/tripjournal/internal/common"
)

const (
	KeySize  = 32
	SaltSize = 16
)

var ErrMalformed = errors.New("sealed data is malformed")

// DeriveKey stretches passphrase into an AES-256 key with Argon2id.
func DeriveKey(passphrase, salt []byte) []byte {
	return argon2.IDKey(passphrase, salt, 1, 64*1024, 4, KeySize)
}

// NewSalt returns a fresh random salt for DeriveKey.
func NewSalt() []byte {
	return common.GenerateRandByteArray(SaltSize)
}

// Seal encrypts plaintext with AES-GCM and returns nonce||ciphertext.
// A new random nonce is used for each call.
func Seal(key, plaintext []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := common.GenerateRandByteArray(aead.NonceSize())
	return aead.Seal(nonce, nonce, plaintext, nil), nil
}

// Open reverses Seal. It fails on a wrong key or any modification of sealed.
func Open(key, sealed []byte) ([]byte, error) {
	aead, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	n := aead.NonceSize()
	if len(sealed) < n+aead.Overhead() {
		return nil, ErrMalformed
	}
	return aead.Open(nil, sealed[:n], sealed[n:], nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
