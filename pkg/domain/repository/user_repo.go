/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 15:24:50
 * @LastEditTime: 2025-10-09 19:29:08
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"
	"time"

	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
)

// UserRepository 定义了用户数据仓库的接口。
type UserRepository interface {
	// Create 创建用户。邮箱或用户名冲突分别返回
	// constant.ErrEmailConflict / constant.ErrUsernameConflict。
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// FindByUsername 根据用户名查找用户，未找到返回 nil, nil。
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// FindByEmail 根据邮箱查找用户，未找到返回 nil, nil。
	FindByEmail(ctx context.Context, email string) (*model.User, error)

	// FindByConfirmationToken 根据激活令牌查找用户，未找到返回 nil, nil。
	FindByConfirmationToken(ctx context.Context, token string) (*model.User, error)

	// Activate 将用户置为已激活（enabled=true, blocked=false）并清空令牌。
	Activate(ctx context.Context, id uint) error

	// SetBlocked 设置封禁状态。
	SetBlocked(ctx context.Context, username string, blocked bool) error

	// SetRole 修改用户角色。
	SetRole(ctx context.Context, username string, role string) error

	// AddContributionPoints 累加贡献点数。
	AddContributionPoints(ctx context.Context, username string, delta int) error

	// Delete 物理删除一个用户。目前只用于注册流程的补偿：
	// 激活邮件发送失败时回滚刚创建的账户。
	Delete(ctx context.Context, id uint) error

	// DeleteUnconfirmedBefore 删除在给定时间之前注册且从未激活的账户，
	// 返回删除的行数。由定时任务调用。
	DeleteUnconfirmedBefore(ctx context.Context, cutoff time.Time) (int, error)

	// ResyncContributionPoints 按已过审条目重算全部用户的贡献点，
	// perArticle 是单个条目的点数，返回被修正的用户数。由定时任务调用。
	ResyncContributionPoints(ctx context.Context, perArticle int) (int, error)
}
