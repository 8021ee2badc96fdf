/*
 * @Description: 用户资料、封禁、角色与统计
 * @Author: 安知鱼
 * @Date: 2025-09-11 09:08:53
 * @LastEditTime: 2025-10-25 14:30:26
 * @LastEditors: 安知鱼
 */
package user

import (
	"context"

	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/repository"
	"github.com/anzhiyu-c/mediawall-app/pkg/service/wall"
)

// validRoles 列出可以被管理员指派的角色。
var validRoles = map[string]bool{
	constant.RoleAdmin:     true,
	constant.RoleModerator: true,
	constant.RoleUser:      true,
}

// Service 提供用户资料读取与管理员侧的账户管理。
type Service struct {
	users     repository.UserRepository
	wallStats *wall.Registry
}

// NewService 是 Service 的构造函数。
func NewService(users repository.UserRepository, wallStats *wall.Registry) *Service {
	return &Service{users: users, wallStats: wallStats}
}

// GetByUsername 获取用户公开资料，不存在返回 404。
func (s *Service) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	found, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, constant.ErrNotFound
	}
	return found, nil
}

// SetBlocked 设置封禁状态，只有管理员可以执行，且不能封禁自己。
func (s *Service) SetBlocked(ctx context.Context, requester *model.Requester, username string, blocked bool) error {
	if !requester.IsAdmin() {
		return constant.ErrForbidden
	}
	if requester.Username == username {
		return constant.ErrBadRequest
	}
	return s.users.SetBlocked(ctx, username, blocked)
}

// SetRole 修改用户角色，只有管理员可以执行，且不能修改自己的角色。
func (s *Service) SetRole(ctx context.Context, requester *model.Requester, username, role string) error {
	if !requester.IsAdmin() {
		return constant.ErrForbidden
	}
	if requester.Username == username {
		return constant.ErrBadRequest
	}
	if !validRoles[role] {
		return constant.ErrBadRequest
	}
	return s.users.SetRole(ctx, username, role)
}

// AddContributionPoints 为贡献者累加点数，由作品审核流程调用。
func (s *Service) AddContributionPoints(ctx context.Context, username string, delta int) error {
	return s.users.AddContributionPoints(ctx, username, delta)
}

// Stats 聚合某用户的追踪墙统计。
// articleType 为具体媒体类型或 all；用户不存在返回 404。
func (s *Service) Stats(ctx context.Context, username string, articleType constant.ArticleType) (map[string]*model.WallStatusStats, error) {
	found, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, constant.ErrNotFound
	}
	return s.wallStats.UserStats(ctx, username, articleType)
}
