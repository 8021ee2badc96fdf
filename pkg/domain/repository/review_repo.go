/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 15:20:18
 * @LastEditTime: 2025-10-09 19:27:34
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
)

// ReviewRepository 定义了评测仓库的泛型接口，R 是对应的领域模型指针。
type ReviewRepository[R model.Review] interface {
	// Create 创建一条评测。
	// 同一 (username, article) 的重复评测返回 constant.ErrReviewConflict。
	Create(ctx context.Context, params *model.CreateReviewParams) (R, error)

	// GetByID 根据评测的公共ID获取单条评测。
	GetByID(ctx context.Context, publicID string) (R, error)

	// ListByArticle 列出某作品的全部评测。
	ListByArticle(ctx context.Context, articleDBID uint) ([]R, error)

	// ListByUser 列出某用户发表的全部评测。
	ListByUser(ctx context.Context, username string) ([]R, error)

	// Update 部分更新一条评测。
	Update(ctx context.Context, publicID string, params *model.UpdateReviewParams) (R, error)

	// Delete 删除一条评测，不存在返回 constant.ErrNotFound。
	Delete(ctx context.Context, publicID string) error
}
