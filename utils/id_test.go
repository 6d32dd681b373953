package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChatID_OrderIndependent(t *testing.T) {
	assert.Equal(t, ChatID("user-a", "user-b"), ChatID("user-b", "user-a"))
	assert.Equal(t, "user-a_user-b", ChatID("user-b", "user-a"))
}

func TestGeneratePairCode_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^TF-[0-9A-F]{6}$`)
	for i := 0; i < 100; i++ {
		code := GeneratePairCode()
		assert.Regexp(t, pattern, code)
	}
}

func TestGenerateID_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		id := GenerateID()
		assert.False(t, seen[id], id)
		seen[id] = true
	}
}
