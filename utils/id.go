package utils

import (
	"crypto/rand"
	"encoding/hex"
	"sort"
	"strings"

	"github.com/google/uuid"
)

func GenerateID() string {
	return uuid.New().String()
}

// GeneratePairCode 生成6位配对码，格式 TF-XXXXXX
func GeneratePairCode() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand 不可用时进程已不可信，直接panic
		panic(err)
	}
	return "TF-" + strings.ToUpper(hex.EncodeToString(buf))
}

// ChatID 根据两个用户ID生成确定性的会话ID，与参数顺序无关
func ChatID(userA, userB string) string {
	ids := []string{userA, userB}
	sort.Strings(ids)
	return strings.Join(ids, "_")
}
