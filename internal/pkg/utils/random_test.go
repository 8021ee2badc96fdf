package utils

import (
	"strings"
	"testing"
)

func TestGenerateRandomString(t *testing.T) {
	for _, length := range []int{16, 32, 64} {
		s, err := GenerateRandomString(length)
		if err != nil {
			t.Fatalf("生成长度 %d 的随机串失败: %v", length, err)
		}
		if len(s) != length {
			t.Errorf("期望长度 %d, 实际 %d", length, len(s))
		}
		const urlSafe = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789-_="
		for _, r := range s {
			if !strings.ContainsRune(urlSafe, r) {
				t.Errorf("随机串包含非 URL 安全字符 %q: %s", r, s)
			}
		}
	}

	a, _ := GenerateRandomString(32)
	b, _ := GenerateRandomString(32)
	if a == b {
		t.Error("两次生成的随机串不应相同")
	}
}
