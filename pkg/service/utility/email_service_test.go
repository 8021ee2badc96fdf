package utility

import (
	"net/url"
	"testing"
)

func TestActivationLink_指向确认接口(t *testing.T) {
	link := activationLink("https://wall.example.com", "abc-123")

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("激活链接不是合法 URL: %v", err)
	}
	if u.Path != ActivationPath {
		t.Errorf("激活链接路径应为 %s, 实际 %s", ActivationPath, u.Path)
	}
	if got := u.Query().Get("token"); got != "abc-123" {
		t.Errorf("期望 token=abc-123, 实际 %q", got)
	}
}

func TestActivationLink_令牌转义(t *testing.T) {
	link := activationLink("http://localhost:8091", "a b/c&d")

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("激活链接不是合法 URL: %v", err)
	}
	if got := u.Query().Get("token"); got != "a b/c&d" {
		t.Errorf("令牌的特殊字符应被转义后原样还原, 实际 %q", got)
	}
}
