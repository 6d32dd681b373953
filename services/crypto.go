package services

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
)

const gcmTagSize = 16

// FieldCipher 对落库前的敏感文本字段做AES-256-GCM加解密。
// 密文以 hex(iv):hex(tag):hex(ciphertext) 的形式存储，
// 每次加密生成新的12字节随机nonce，同一密钥下不会重复。
type FieldCipher struct {
	aead cipher.AEAD
}

// NewFieldCipher 根据64位hex密钥（256位）创建FieldCipher。
// 密钥缺失或格式错误返回ErrMissingEncryptionKey，调用方应视为启动失败。
func NewFieldCipher(hexKey string) (*FieldCipher, error) {
	if hexKey == "" {
		return nil, ErrMissingEncryptionKey
	}

	key, err := hex.DecodeString(hexKey)
	if err != nil || len(key) != 32 {
		return nil, ErrMissingEncryptionKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, ErrMissingEncryptionKey
	}

	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, ErrMissingEncryptionKey
	}

	return &FieldCipher{aead: aead}, nil
}

// Encrypt 加密一段明文，返回可直接落库的密文串
func (f *FieldCipher) Encrypt(plaintext string) (string, error) {
	nonce := make([]byte, f.aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	// Seal 的输出为 ciphertext||tag，拆开分段存储
	sealed := f.aead.Seal(nil, nonce, []byte(plaintext), nil)
	ciphertext := sealed[:len(sealed)-gcmTagSize]
	tag := sealed[len(sealed)-gcmTagSize:]

	return fmt.Sprintf("%s:%s:%s",
		hex.EncodeToString(nonce),
		hex.EncodeToString(tag),
		hex.EncodeToString(ciphertext),
	), nil
}

// Decrypt 解密密文串。格式错误返回ErrMalformedCipherToken，
// 认证标签校验失败返回ErrDecryptionFailed，绝不静默返回空串，
// 调用方需要区分"解密失败"和"内容本来为空"。
func (f *FieldCipher) Decrypt(token string) (string, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 {
		return "", ErrMalformedCipherToken
	}

	nonce, err := hex.DecodeString(parts[0])
	if err != nil || len(nonce) != f.aead.NonceSize() {
		return "", ErrMalformedCipherToken
	}
	tag, err := hex.DecodeString(parts[1])
	if err != nil || len(tag) != gcmTagSize {
		return "", ErrMalformedCipherToken
	}
	ciphertext, err := hex.DecodeString(parts[2])
	if err != nil {
		return "", ErrMalformedCipherToken
	}

	plaintext, err := f.aead.Open(nil, nonce, append(ciphertext, tag...), nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}
