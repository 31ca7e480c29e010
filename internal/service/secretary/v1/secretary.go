// Package secretary provides AES-GCM sealing of short tokens such as the widget CSRF cookie.
package secretary

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"

	"github.com/danilovkiri/dk_go_shortener_widget/internal/service/secretary"
)

// ErrShortMessage is returned when a message is too short to hold a nonce.
var ErrShortMessage = errors.New("sealed message is too short")

// Check interface implementation explicitly
var (
	_ secretary.Secretary = (*Secretary)(nil)
)

// Secretary defines object structure and its attributes.
type Secretary struct {
	aesgcm cipher.AEAD
}

const keyInfo = "shortener-widget csrf"

// NewSecretaryService initializes a secretary service with an AES-256 key derived from key by HKDF-SHA256.
func NewSecretaryService(key string) (*Secretary, error) {
	derived := make([]byte, 32)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(key), nil, []byte(keyInfo)), derived); err != nil {
		return nil, err
	}
	aesblock, err := aes.NewCipher(derived)
	if err != nil {
		return nil, err
	}
	aesgcm, err := cipher.NewGCM(aesblock)
	if err != nil {
		return nil, err
	}
	return &Secretary{aesgcm: aesgcm}, nil
}

// Encode seals data under a fresh random nonce and returns hex(nonce || ciphertext).
func (s *Secretary) Encode(data string) string {
	nonce := make([]byte, s.aesgcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		panic(err)
	}
	sealed := s.aesgcm.Seal(nonce, nonce, []byte(data), nil)
	return hex.EncodeToString(sealed)
}

// Decode opens a message produced by Encode.
func (s *Secretary) Decode(msg string) (string, error) {
	msgBytes, err := hex.DecodeString(msg)
	if err != nil {
		return "", err
	}
	size := s.aesgcm.NonceSize()
	if len(msgBytes) < size {
		return "", ErrShortMessage
	}
	decoded, err := s.aesgcm.Open(nil, msgBytes[:size], msgBytes[size:], nil)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
