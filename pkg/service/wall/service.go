/*
 * @Description: 追踪墙服务，泛型实现
 * @Author: 安知鱼
 * @Date: 2025-09-09 09:20:33
 * @LastEditTime: 2025-10-24 17:15:06
 * @LastEditors: 安知鱼
 */
package wall

import (
	"context"

	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/repository"
)

// ArticleResolver 把作品公共标识符解析为内部ID并校验作品存在。
// 由对应媒体类型的作品仓储实现。
type ArticleResolver interface {
	FindDBID(ctx context.Context, identifier string) (uint, error)
}

// Service 是单一媒体类型的追踪墙服务。
type Service[W model.Wall] struct {
	typeKey  constant.ArticleType
	walls    repository.WallRepository[W]
	articles ArticleResolver
}

// NewService 是 Service 的构造函数。
func NewService[W model.Wall](
	typeKey constant.ArticleType,
	walls repository.WallRepository[W],
	articles ArticleResolver,
) *Service[W] {
	return &Service[W]{typeKey: typeKey, walls: walls, articles: articles}
}

// TypeKey 返回该服务对应的媒体类型键。
func (s *Service[W]) TypeKey() constant.ArticleType {
	return s.typeKey
}

// Create 为请求者创建一条追踪记录。
// 作品不存在返回 404；重复追踪由唯一约束拦截并转译为冲突。
func (s *Service[W]) Create(ctx context.Context, requester *model.Requester, articleIdentifier string, params *model.CreateWallParams) (W, error) {
	var zero W
	if requester == nil {
		return zero, constant.ErrUnauthorized
	}
	dbID, err := s.articles.FindDBID(ctx, articleIdentifier)
	if err != nil {
		return zero, err
	}
	params.Username = requester.Username
	params.ArticleDBID = dbID
	return s.walls.Create(ctx, params)
}

// Get 获取单条追踪记录。追踪墙是公开的，任何人可读。
func (s *Service[W]) Get(ctx context.Context, publicID string) (W, error) {
	return s.walls.GetByID(ctx, publicID)
}

// ListByUser 列出某用户在该媒体类型下的全部追踪记录。
func (s *Service[W]) ListByUser(ctx context.Context, username string) ([]W, error) {
	return s.walls.ListByUser(ctx, username)
}

// Update 部分更新一条追踪记录，只有记录所有者本人可以修改。
func (s *Service[W]) Update(ctx context.Context, requester *model.Requester, publicID string, params *model.UpdateWallParams) (W, error) {
	var zero W
	record, err := s.walls.GetByID(ctx, publicID)
	if err != nil {
		return zero, err
	}
	if requester == nil || record.Core().Username != requester.Username {
		return zero, constant.ErrForbidden
	}
	return s.walls.Update(ctx, publicID, params)
}

// Delete 删除一条追踪记录，所有者本人或管理员可以执行。
func (s *Service[W]) Delete(ctx context.Context, requester *model.Requester, publicID string) error {
	record, err := s.walls.GetByID(ctx, publicID)
	if err != nil {
		return err
	}
	if requester == nil || (record.Core().Username != requester.Username && !requester.IsAdmin()) {
		return constant.ErrForbidden
	}
	return s.walls.Delete(ctx, publicID)
}

// StatsFor 统计某用户在该媒体类型下的追踪墙。
func (s *Service[W]) StatsFor(ctx context.Context, username string) (*model.WallStatusStats, error) {
	return s.walls.StatsByUser(ctx, username)
}
