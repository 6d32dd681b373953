package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "6368616e676520746869732070617373776f726420746f206120736563726574"

func newTestCipher(t *testing.T) *FieldCipher {
	t.Helper()
	cipher, err := NewFieldCipher(testKeyHex)
	require.NoError(t, err)
	return cipher
}

func TestNewFieldCipher_InvalidKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
	}{
		{"empty", ""},
		{"not hex", "zz68616e676520746869732070617373776f726420746f206120736563726574"},
		{"too short", "6368616e6765"},
		{"too long", testKeyHex + "00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFieldCipher(tt.key)
			assert.ErrorIs(t, err, ErrMissingEncryptionKey)
		})
	}
}

func TestFieldCipher_RoundTrip(t *testing.T) {
	cipher := newTestCipher(t)

	tests := []struct {
		name      string
		plaintext string
	}{
		{"simple", "今天也要好好的"},
		{"empty", ""},
		{"with colons", "a:b:c:d"},
		{"unicode", "我爱你 ❤️ forever"},
		{"long", strings.Repeat("secret ", 500)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := cipher.Encrypt(tt.plaintext)
			require.NoError(t, err)

			parts := strings.Split(token, ":")
			require.Len(t, parts, 3)

			plaintext, err := cipher.Decrypt(token)
			require.NoError(t, err)
			assert.Equal(t, tt.plaintext, plaintext)
		})
	}
}

func TestFieldCipher_NonceUniqueness(t *testing.T) {
	cipher := newTestCipher(t)

	token1, err := cipher.Encrypt("same plaintext")
	require.NoError(t, err)
	token2, err := cipher.Encrypt("same plaintext")
	require.NoError(t, err)

	assert.NotEqual(t, token1, token2)
	// nonce段也必须不同
	assert.NotEqual(t, strings.Split(token1, ":")[0], strings.Split(token2, ":")[0])
}

func TestFieldCipher_FormatRejection(t *testing.T) {
	cipher := newTestCipher(t)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"one part", "deadbeef"},
		{"two parts", "deadbeef:deadbeef"},
		{"four parts", "aa:bb:cc:dd"},
		{"empty nonce", ":00000000000000000000000000000000:00"},
		{"not hex nonce", "zzzzzzzzzzzzzzzzzzzzzzzz:00000000000000000000000000000000:00"},
		{"short tag", "000000000000000000000000:0000:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := cipher.Decrypt(tt.token)
			assert.ErrorIs(t, err, ErrMalformedCipherToken)
		})
	}
}

func TestFieldCipher_TamperDetection(t *testing.T) {
	cipher := newTestCipher(t)

	token, err := cipher.Encrypt("the original content")
	require.NoError(t, err)

	flipHex := func(s string, i int) string {
		b := []byte(s)
		if b[i] == 'a' {
			b[i] = 'b'
		} else {
			b[i] = 'a'
		}
		return string(b)
	}

	parts := strings.Split(token, ":")

	t.Run("tampered ciphertext", func(t *testing.T) {
		tampered := parts[0] + ":" + parts[1] + ":" + flipHex(parts[2], 0)
		_, err := cipher.Decrypt(tampered)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("tampered tag", func(t *testing.T) {
		tampered := parts[0] + ":" + flipHex(parts[1], 0) + ":" + parts[2]
		_, err := cipher.Decrypt(tampered)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := NewFieldCipher("0000000000000000000000000000000000000000000000000000000000000000")
		require.NoError(t, err)
		_, err = other.Decrypt(token)
		assert.ErrorIs(t, err, ErrDecryptionFailed)
	})
}
