package crypto

import (
	"bytes"
	"encoding/hex"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amanKp27/toDoList/internal/domain"
	"github.com/amanKp27/toDoList/internal/infra/memstore"
)

func testKey() string {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	return hex.EncodeToString(key)
}

func TestEncryptor_EncryptDecrypt(t *testing.T) {
	enc, err := NewEncryptor(testKey())
	require.NoError(t, err)

	plaintext := []byte(`[{"id":1,"text":"Buy milk","date":"2024-01-03","completed":false}]`)

	ciphertext, err := enc.Encrypt(plaintext)
	require.NoError(t, err)
	assert.NotEqual(t, plaintext, ciphertext)
	assert.Greater(t, len(ciphertext), len(plaintext), "nonce and tag are added")

	decrypted, err := enc.Decrypt(ciphertext)
	require.NoError(t, err)
	assert.Equal(t, plaintext, decrypted)
}

func TestEncryptor_SamePlaintextSameOutput(t *testing.T) {
	enc, err := NewEncryptor(testKey())
	require.NoError(t, err)

	a, err := enc.Encrypt([]byte("same"))
	require.NoError(t, err)
	b, err := enc.Encrypt([]byte("same"))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := enc.Encrypt([]byte("different"))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)
}

func TestEncryptor_ReturnsCopies(t *testing.T) {
	enc, err := NewEncryptor(testKey())
	require.NoError(t, err)

	a, err := enc.Encrypt([]byte("x"))
	require.NoError(t, err)
	a[0] ^= 0xff

	b, err := enc.Encrypt([]byte("x"))
	require.NoError(t, err)
	plain, err := enc.Decrypt(b)
	require.NoError(t, err)
	assert.Equal(t, []byte("x"), plain)
}

func TestNewEncryptor_InvalidKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"not hex", "zz"},
		{"too short", hex.EncodeToString(make([]byte, 16))},
		{"too long", hex.EncodeToString(make([]byte, 33))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewEncryptor(tt.key)
			assert.ErrorIs(t, err, ErrInvalidKey)
		})
	}
}

func TestEncryptor_Decrypt_Errors(t *testing.T) {
	enc, err := NewEncryptor(testKey())
	require.NoError(t, err)

	_, err = enc.Decrypt([]byte("short"))
	assert.ErrorIs(t, err, ErrCiphertextTooShort)

	ciphertext, err := enc.Encrypt([]byte("payload"))
	require.NoError(t, err)
	ciphertext[len(ciphertext)-1] ^= 0x01
	_, err = enc.Decrypt(ciphertext)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestEncryptor_WrongKey(t *testing.T) {
	enc1, err := NewEncryptor(testKey())
	require.NoError(t, err)
	other, err := GenerateKey()
	require.NoError(t, err)
	enc2, err := NewEncryptor(other)
	require.NoError(t, err)

	ciphertext, err := enc1.Encrypt([]byte("secret"))
	require.NoError(t, err)

	_, err = enc2.Decrypt(ciphertext)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestGenerateKey(t *testing.T) {
	a, err := GenerateKey()
	require.NoError(t, err)
	b, err := GenerateKey()
	require.NoError(t, err)

	assert.Len(t, a, KeySize*2)
	assert.NotEqual(t, a, b)
	_, err = NewEncryptor(a)
	assert.NoError(t, err)
}

func TestSlot_RoundTrip(t *testing.T) {
	inner := memstore.New()
	slot, err := NewSlot(inner, testKey())
	require.NoError(t, err)

	data := []byte(`[{"id":7,"text":"hidden","date":"2024-01-03","completed":true}]`)
	require.NoError(t, slot.Write("todos", data))

	raw, err := inner.Read("todos")
	require.NoError(t, err)
	assert.False(t, bytes.Contains(raw, []byte("hidden")), "stored bytes are not plaintext")

	got, err := slot.Read("todos")
	require.NoError(t, err)
	assert.Equal(t, data, got)
}

func TestSlot_Empty(t *testing.T) {
	slot, err := NewSlot(memstore.New(), testKey())
	require.NoError(t, err)

	_, err = slot.Read("todos")
	assert.ErrorIs(t, err, domain.ErrSlotEmpty)
}

func TestSlot_PlaintextInnerFails(t *testing.T) {
	inner := memstore.New()
	require.NoError(t, inner.Write("todos", []byte(`[{"id":1,"text":"plain","date":"2024-01-03","completed":false}]`)))
	slot, err := NewSlot(inner, testKey())
	require.NoError(t, err)

	_, err = slot.Read("todos")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

type failingSlot struct{ err error }

func (f failingSlot) Read(string) ([]byte, error) { return nil, f.err }
func (f failingSlot) Write(string, []byte) error  { return f.err }

func TestSlot_InnerErrors(t *testing.T) {
	boom := errors.New("disk gone")
	slot, err := NewSlot(failingSlot{err: boom}, testKey())
	require.NoError(t, err)

	_, err = slot.Read("todos")
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, slot.Write("todos", []byte("[]")), boom)
}
