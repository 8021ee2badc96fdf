/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 15:16:30
 * @LastEditTime: 2025-10-09 19:26:02
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
)

// WallRepository 定义了追踪墙记录仓库的泛型接口，W 是对应的领域模型指针。
type WallRepository[W model.Wall] interface {
	// Create 创建一条追踪记录。
	// 同一 (username, article) 的重复创建返回 constant.ErrWallConflict。
	Create(ctx context.Context, params *model.CreateWallParams) (W, error)

	// GetByID 根据记录的公共ID获取单条记录。
	GetByID(ctx context.Context, publicID string) (W, error)

	// ListByUser 列出某用户的全部追踪记录。
	ListByUser(ctx context.Context, username string) ([]W, error)

	// FindStatus 返回某用户对某作品的追踪状态，无记录时返回空字符串。
	FindStatus(ctx context.Context, username string, articleDBID uint) (string, error)

	// Update 部分更新一条记录。
	Update(ctx context.Context, publicID string, params *model.UpdateWallParams) (W, error)

	// Delete 删除一条记录，不存在返回 constant.ErrNotFound。
	Delete(ctx context.Context, publicID string) error

	// StatsByUser 统计某用户在该媒体类型下按状态分组的数量和平均分。
	StatsByUser(ctx context.Context, username string) (*model.WallStatusStats, error)
}
