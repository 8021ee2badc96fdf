/*
 * @Description: 注册/激活/登录/登出流程
 * @Author: 安知鱼
 * @Date: 2025-09-10 11:20:36
 * @LastEditTime: 2025-10-25 10:45:12
 * @LastEditors: 安知鱼
 */
package auth

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/anzhiyu-c/mediawall-app/internal/pkg/security"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/repository"
	"github.com/anzhiyu-c/mediawall-app/pkg/service/utility"
)

// Service 实现注册、激活、登录与登出。
type Service struct {
	users    repository.UserRepository
	tokenSvc TokenService
	emailSvc utility.EmailService
}

// NewService 是 Service 的构造函数。
func NewService(
	users repository.UserRepository,
	tokenSvc TokenService,
	emailSvc utility.EmailService,
) *Service {
	return &Service{users: users, tokenSvc: tokenSvc, emailSvc: emailSvc}
}

// Signup 注册新账户。
// 新账户一律 blocked=true / enabled=false，只有点击邮件里的激活链接
// 才会解锁。激活邮件同步发送：发送失败时回滚刚创建的账户，注册整体失败。
func (s *Service) Signup(ctx context.Context, email, username, password string) error {
	hash, err := security.HashPassword(password)
	if err != nil {
		return fmt.Errorf("密码加密失败: %w", err)
	}
	token := uuid.NewString()
	created, err := s.users.Create(ctx, &model.User{
		Email:             email,
		Username:          username,
		PasswordHash:      hash,
		Role:              constant.RoleUser,
		Blocked:           true,
		Enabled:           false,
		ConfirmationToken: token,
	})
	if err != nil {
		return err
	}

	if err := s.emailSvc.SendActivationEmail(ctx, email, username, token); err != nil {
		log.Printf("[认证服务] 激活邮件发送失败，回滚注册: email=%s, error=%v", email, err)
		if delErr := s.users.Delete(ctx, created.ID); delErr != nil {
			log.Printf("[认证服务] 回滚未激活账户失败: id=%d, error=%v", created.ID, delErr)
		}
		return constant.ErrMailSendFailed
	}
	return nil
}

// Confirm 使用激活令牌激活账户：enabled 置 true、解除封禁并清空令牌。
func (s *Service) Confirm(ctx context.Context, token string) error {
	if token == "" {
		return constant.ErrBadRequest
	}
	found, err := s.users.FindByConfirmationToken(ctx, token)
	if err != nil {
		return err
	}
	if found == nil {
		return constant.ErrNotFound
	}
	return s.users.Activate(ctx, found.ID)
}

// Login 校验凭证并签发会话令牌。
// 为避免枚举账户，用户不存在与密码错误返回同一个错误。
func (s *Service) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	found, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", nil, err
	}
	if found == nil || !security.CheckPasswordHash(password, found.PasswordHash) {
		return "", nil, constant.ErrUnauthorized
	}
	if !found.Enabled {
		return "", nil, constant.ErrAccountNotEnabled
	}
	if found.Blocked {
		return "", nil, constant.ErrAccountBlocked
	}
	token, err := s.tokenSvc.Generate(found)
	if err != nil {
		return "", nil, err
	}
	return token, found, nil
}

// Logout 吊销当前会话令牌。
func (s *Service) Logout(ctx context.Context, tokenStr string) error {
	return s.tokenSvc.Invalidate(ctx, tokenStr)
}
