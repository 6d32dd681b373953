package services

import "errors"

var (
	// ErrMissingEncryptionKey 加密密钥未配置或格式错误，属于致命配置错误
	ErrMissingEncryptionKey = errors.New("服务端配置错误：缺少有效的加密密钥")

	// ErrMalformedCipherToken 密文格式错误（不是 iv:tag:ciphertext 三段hex）
	ErrMalformedCipherToken = errors.New("数据库中的密文格式错误")

	// ErrDecryptionFailed 认证标签校验失败（被篡改、密钥错误或数据损坏）
	ErrDecryptionFailed = errors.New("解密失败：数据校验未通过")

	// ErrNotPaired 当前用户尚未与伴侣绑定
	ErrNotPaired = errors.New("尚未与伴侣绑定")
)
