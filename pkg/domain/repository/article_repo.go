/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 15:10:42
 * @LastEditTime: 2025-10-09 19:24:15
 * @LastEditors: 安知鱼
 */
package repository

import (
	"context"

	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
)

// ArticleRepository 定义了作品数据仓库的泛型接口。
// 四种媒体类型各有一个实现，M 是对应的领域模型指针(*model.Book 等)。
// 所有方法都使用领域模型和自定义参数，与具体的 ORM (Ent) 解耦。
type ArticleRepository[M model.Article] interface {
	// Create 创建一条作品记录，标题冲突返回 constant.ErrTitleConflict。
	Create(ctx context.Context, params *model.CreateArticleParams) (M, error)

	// GetByIdentifierSlug 根据公共标识符与 slug 获取单个作品，
	// 含统计聚合；requester 非空时附带该用户自己的追踪信息。
	GetByIdentifierSlug(ctx context.Context, identifier, slug, requester string) (M, error)

	// FindDBID 根据公共标识符解析内部ID并校验作品存在（未删除）。
	FindDBID(ctx context.Context, identifier string) (uint, error)

	// Update 根据公共标识符与 slug 部分更新作品。
	Update(ctx context.Context, identifier, slug string, params *model.UpdateArticleParams) (M, error)

	// Delete 软删除一条作品，不存在返回 constant.ErrNotFound。
	Delete(ctx context.Context, identifier, slug string) error

	// List 按过滤条件分页查询作品列表，返回当前页数据和满足
	// 过滤谓词的总行数（总数不含分页窗口、不依赖统计连接）。
	List(ctx context.Context, options *model.ListArticlesOptions) ([]M, int, error)

	// ListDrafts 列出草稿。contributor 非空时只返回该用户贡献的草稿。
	ListDrafts(ctx context.Context, contributor string) ([]M, error)
}
