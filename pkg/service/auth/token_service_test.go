package auth

import (
	"context"
	"testing"
	"time"
)

// 进程内黑名单是 Redis 不可用时的降级路径，这里直接验证它的行为。

func TestTokenService_进程内黑名单(t *testing.T) {
	s := &tokenService{fallback: make(map[string]time.Time)}
	ctx := context.Background()

	blacklisted, err := s.isBlacklisted(ctx, "unknown-jti")
	if err != nil {
		t.Fatalf("查询黑名单失败: %v", err)
	}
	if blacklisted {
		t.Error("未拉黑的 jti 不应命中黑名单")
	}

	s.mu.Lock()
	s.fallback["revoked-jti"] = time.Now().Add(time.Hour)
	s.mu.Unlock()

	blacklisted, err = s.isBlacklisted(ctx, "revoked-jti")
	if err != nil {
		t.Fatalf("查询黑名单失败: %v", err)
	}
	if !blacklisted {
		t.Error("已拉黑且未过期的 jti 应命中黑名单")
	}
}

func TestTokenService_过期黑名单项被惰性清理(t *testing.T) {
	s := &tokenService{fallback: make(map[string]time.Time)}
	ctx := context.Background()

	s.mu.Lock()
	s.fallback["expired-jti"] = time.Now().Add(-time.Minute)
	s.mu.Unlock()

	blacklisted, err := s.isBlacklisted(ctx, "expired-jti")
	if err != nil {
		t.Fatalf("查询黑名单失败: %v", err)
	}
	if blacklisted {
		t.Error("令牌本身过期后黑名单项不应再生效")
	}

	s.mu.Lock()
	_, ok := s.fallback["expired-jti"]
	s.mu.Unlock()
	if ok {
		t.Error("过期项应在查询时被清理")
	}
}

func TestTokenService_sweepLocked(t *testing.T) {
	s := &tokenService{fallback: map[string]time.Time{
		"live":    time.Now().Add(time.Hour),
		"expired": time.Now().Add(-time.Hour),
	}}

	s.mu.Lock()
	s.sweepLocked()
	s.mu.Unlock()

	if _, ok := s.fallback["expired"]; ok {
		t.Error("过期项应被清扫")
	}
	if _, ok := s.fallback["live"]; !ok {
		t.Error("未过期项不应被清扫")
	}
}
