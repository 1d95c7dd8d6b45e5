// Package crypto provides a domain.Slot that encrypts values at rest.
package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/amanKp27/toDoList/internal/domain"
)

const (
	// NonceSize is the size of the nonce for AES-GCM (12 bytes).
	NonceSize = 12
	// KeySize is the size of the AES-256 key (32 bytes).
	KeySize = 32
)

var (
	// ErrInvalidKey is returned when the encryption key is invalid.
	ErrInvalidKey = errors.New("invalid encryption key: must be 32 bytes (64 hex characters)")
	// ErrDecryptionFailed is returned when decryption fails.
	ErrDecryptionFailed = errors.New("decryption failed: invalid ciphertext or key")
	// ErrCiphertextTooShort is returned when the ciphertext is too short.
	ErrCiphertextTooShort = errors.New("ciphertext too short")
)

// Encryptor handles AES-256-GCM encryption.
// The last plaintext and its ciphertext are remembered so saving an
// unchanged list writes identical bytes.
type Encryptor struct {
	gcm       cipher.AEAD
	lastPlain []byte
	lastOut   []byte
	mu        sync.Mutex
}

// NewEncryptor creates a new Encryptor with the given hex-encoded key.
// The key must be 64 hex characters (32 bytes).
func NewEncryptor(hexKey string) (*Encryptor, error) {
	key, err := hex.DecodeString(hexKey)
	if err != nil || len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create GCM: %w", err)
	}

	return &Encryptor{gcm: gcm}, nil
}

// GenerateKey returns a fresh random key in hex form.
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return "", fmt.Errorf("generate key: %w", err)
	}
	return hex.EncodeToString(key), nil
}

// Encrypt encrypts plaintext using AES-256-GCM.
// Returns: nonce (12 bytes) + ciphertext + auth tag
func (e *Encryptor) Encrypt(plaintext []byte) ([]byte, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.lastOut != nil && bytes.Equal(e.lastPlain, plaintext) {
		return append([]byte(nil), e.lastOut...), nil
	}

	nonce := make([]byte, NonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}
	out := e.gcm.Seal(nonce, nonce, plaintext, nil)

	e.lastPlain = append(e.lastPlain[:0], plaintext...)
	e.lastOut = out
	return append([]byte(nil), out...), nil
}

// Decrypt decrypts ciphertext using AES-256-GCM.
// Expects: nonce (12 bytes) + ciphertext + auth tag
func (e *Encryptor) Decrypt(ciphertext []byte) ([]byte, error) {
	if len(ciphertext) < NonceSize {
		return nil, ErrCiphertextTooShort
	}

	nonce := ciphertext[:NonceSize]
	plaintext, err := e.gcm.Open(nil, nonce, ciphertext[NonceSize:], nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

var _ domain.Slot = (*Slot)(nil)

// Slot wraps another slot and encrypts everything written through it.
type Slot struct {
	inner domain.Slot
	enc   *Encryptor
}

// NewSlot wraps inner with encryption under hexKey.
func NewSlot(inner domain.Slot, hexKey string) (*Slot, error) {
	enc, err := NewEncryptor(hexKey)
	if err != nil {
		return nil, err
	}
	return &Slot{inner: inner, enc: enc}, nil
}

// Read decrypts the value stored under key.
// An empty inner slot stays empty.
func (s *Slot) Read(key string) ([]byte, error) {
	data, err := s.inner.Read(key)
	if err != nil {
		return nil, err
	}
	plain, err := s.enc.Decrypt(data)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return plain, nil
}

// Write encrypts data and stores it under key.
func (s *Slot) Write(key string, data []byte) error {
	sealed, err := s.enc.Encrypt(data)
	if err != nil {
		return err
	}
	return s.inner.Write(key, sealed)
}
