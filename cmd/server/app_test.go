package server

import (
	"testing"

	"github.com/anzhiyu-c/mediawall-app/pkg/config"
)

type fakeSecretConfig struct {
	values map[string]string
}

func (f *fakeSecretConfig) GetString(key string) string {
	return f.values[key]
}

func (f *fakeSecretConfig) Set(key, value string) {
	f.values[key] = value
}

func TestEnsureJWTSecret_为空时生成随机密钥(t *testing.T) {
	cfg := &fakeSecretConfig{values: map[string]string{}}

	if err := ensureJWTSecret(cfg); err != nil {
		t.Fatalf("生成随机密钥失败: %v", err)
	}
	secret := cfg.values[config.KeyJWTSecret]
	if len(secret) < 32 {
		t.Errorf("生成的密钥过短: %q", secret)
	}

	other := &fakeSecretConfig{values: map[string]string{}}
	if err := ensureJWTSecret(other); err != nil {
		t.Fatalf("生成随机密钥失败: %v", err)
	}
	if secret == other.values[config.KeyJWTSecret] {
		t.Error("两次启动生成的随机密钥不应相同")
	}
}

func TestEnsureJWTSecret_已配置时保持不变(t *testing.T) {
	cfg := &fakeSecretConfig{values: map[string]string{
		config.KeyJWTSecret: "configured-secret",
	}}

	if err := ensureJWTSecret(cfg); err != nil {
		t.Fatalf("意外错误: %v", err)
	}
	if cfg.values[config.KeyJWTSecret] != "configured-secret" {
		t.Errorf("已配置的密钥不应被覆盖, 实际 %q", cfg.values[config.KeyJWTSecret])
	}
}
