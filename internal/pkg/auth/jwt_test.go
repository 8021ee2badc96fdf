package auth

import (
	"testing"
)

func TestGenerateAndParseToken(t *testing.T) {
	secret := []byte("test-secret-key")

	token, err := GenerateToken("alice", "MODERATOR", secret)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	claims, err := ParseToken(token, secret)
	if err != nil {
		t.Fatalf("解析令牌失败: %v", err)
	}
	if claims.Username != "alice" {
		t.Errorf("username = %q, 期望 alice", claims.Username)
	}
	if claims.Role != "MODERATOR" {
		t.Errorf("role = %q, 期望 MODERATOR", claims.Role)
	}
	if claims.ID == "" {
		t.Error("令牌缺少 jti，登出黑名单依赖它")
	}
}

func TestGenerateToken_每个令牌的jti唯一(t *testing.T) {
	secret := []byte("test-secret-key")

	first, err := GenerateToken("alice", "USER", secret)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}
	second, err := GenerateToken("alice", "USER", secret)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	c1, _ := ParseToken(first, secret)
	c2, _ := ParseToken(second, secret)
	if c1.ID == c2.ID {
		t.Error("两次签发的 jti 不应相同")
	}
}

func TestParseToken_错误场景(t *testing.T) {
	secret := []byte("test-secret-key")
	token, err := GenerateToken("alice", "USER", secret)
	if err != nil {
		t.Fatalf("生成令牌失败: %v", err)
	}

	tests := []struct {
		name   string
		token  string
		secret []byte
	}{
		{name: "密钥不匹配", token: token, secret: []byte("another-secret")},
		{name: "令牌被篡改", token: token + "x", secret: secret},
		{name: "空令牌", token: "", secret: secret},
		{name: "空密钥", token: token, secret: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseToken(tt.token, tt.secret); err == nil {
				t.Error("期望解析失败，实际成功")
			}
		})
	}
}
