/*
 * @Description: 会话令牌服务，登出黑名单基于 Redis
 * @Author: 安知鱼
 * @Date: 2025-09-10 09:30:22
 * @LastEditTime: 2025-10-25 10:12:40
 * @LastEditors: 安知鱼
 */
package auth

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/anzhiyu-c/mediawall-app/internal/pkg/auth"
	"github.com/anzhiyu-c/mediawall-app/pkg/config"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
)

// TokenService 负责会话令牌的签发、校验与吊销。
type TokenService interface {
	// Generate 为用户签发一个新的会话令牌。
	Generate(user *model.User) (string, error)
	// Parse 校验令牌签名、有效期与黑名单，返回解析出的身份。
	Parse(ctx context.Context, tokenStr string) (*auth.CustomClaims, error)
	// Invalidate 吊销一个令牌，在剩余有效期内加入黑名单。
	Invalidate(ctx context.Context, tokenStr string) error
}

const blacklistKeyPrefix = "mediawall:token:blacklist:"

// tokenService 的黑名单优先走 Redis；Redis 不可用时退化为进程内存，
// 此时吊销只对当前进程生效。
type tokenService struct {
	cfg   *config.Config
	redis *redis.Client

	mu       sync.Mutex
	fallback map[string]time.Time
}

// NewTokenService 是 tokenService 的构造函数，rdb 可以为 nil。
func NewTokenService(cfg *config.Config, rdb *redis.Client) TokenService {
	return &tokenService{
		cfg:      cfg,
		redis:    rdb,
		fallback: make(map[string]time.Time),
	}
}

func (s *tokenService) secret() ([]byte, error) {
	secret := s.cfg.GetString(config.KeyJWTSecret)
	if secret == "" {
		return nil, fmt.Errorf("JWT Secret 未配置, 无法处理会话令牌")
	}
	return []byte(secret), nil
}

// Generate 为用户签发一个新的会话令牌。
func (s *tokenService) Generate(user *model.User) (string, error) {
	secret, err := s.secret()
	if err != nil {
		return "", err
	}
	return auth.GenerateToken(user.Username, user.Role, secret)
}

// Parse 校验令牌并检查黑名单。
func (s *tokenService) Parse(ctx context.Context, tokenStr string) (*auth.CustomClaims, error) {
	secret, err := s.secret()
	if err != nil {
		return nil, err
	}
	claims, err := auth.ParseToken(tokenStr, secret)
	if err != nil {
		return nil, constant.ErrInvalidToken
	}
	blacklisted, err := s.isBlacklisted(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if blacklisted {
		return nil, constant.ErrInvalidToken
	}
	return claims, nil
}

// Invalidate 把令牌的 jti 加入黑名单，过期时间与令牌剩余有效期一致。
func (s *tokenService) Invalidate(ctx context.Context, tokenStr string) error {
	secret, err := s.secret()
	if err != nil {
		return err
	}
	claims, err := auth.ParseToken(tokenStr, secret)
	if err != nil {
		// 已过期或无法解析的令牌无需吊销
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}

	if s.redis != nil {
		if err := s.redis.Set(ctx, blacklistKeyPrefix+claims.ID, "1", ttl).Err(); err != nil {
			log.Printf("[令牌服务] 写入 Redis 黑名单失败，退化为进程内存: %v", err)
		} else {
			return nil
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.fallback[claims.ID] = claims.ExpiresAt.Time
	s.sweepLocked()
	return nil
}

func (s *tokenService) isBlacklisted(ctx context.Context, jti string) (bool, error) {
	if s.redis != nil {
		n, err := s.redis.Exists(ctx, blacklistKeyPrefix+jti).Result()
		if err == nil {
			if n > 0 {
				return true, nil
			}
		} else {
			log.Printf("[令牌服务] 查询 Redis 黑名单失败，回退进程内存: %v", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	expiry, ok := s.fallback[jti]
	if !ok {
		return false, nil
	}
	if time.Now().After(expiry) {
		delete(s.fallback, jti)
		return false, nil
	}
	return true, nil
}

// sweepLocked 顺带清理已过期的黑名单项，调用方必须持有锁。
func (s *tokenService) sweepLocked() {
	now := time.Now()
	for jti, expiry := range s.fallback {
		if now.After(expiry) {
			delete(s.fallback, jti)
		}
	}
}
