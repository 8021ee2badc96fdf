/*
 * @Description: 评测服务，泛型实现
 * @Author: 安知鱼
 * @Date: 2025-09-09 14:42:10
 * @LastEditTime: 2025-10-24 18:08:47
 * @LastEditors: 安知鱼
 */
package review

import (
	"context"
	"fmt"

	"github.com/anzhiyu-c/mediawall-app/internal/pkg/parser"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/repository"
)

// ArticleResolver 把作品公共标识符解析为内部ID并校验作品存在。
type ArticleResolver interface {
	FindDBID(ctx context.Context, identifier string) (uint, error)
}

// StatusFinder 查询某用户对某作品的追踪状态，由追踪墙仓储实现。
type StatusFinder interface {
	FindStatus(ctx context.Context, username string, articleDBID uint) (string, error)
}

// qualifyingStatuses 列出允许发表评测的追踪状态。
// 只计划中(IN_PLANS)的用户还没有接触过作品，不能评测。
var qualifyingStatuses = map[string]bool{
	constant.WallStatusInProgress: true,
	constant.WallStatusCompleted:  true,
	constant.WallStatusDropped:    true,
}

// Service 是单一媒体类型的评测服务。
// 评测正文是 Markdown，写入时同步渲染为净化后的 HTML 存储。
type Service[R model.Review] struct {
	typeKey  constant.ArticleType
	reviews  repository.ReviewRepository[R]
	articles ArticleResolver
	walls    StatusFinder
}

// NewService 是 Service 的构造函数。
func NewService[R model.Review](
	typeKey constant.ArticleType,
	reviews repository.ReviewRepository[R],
	articles ArticleResolver,
	walls StatusFinder,
) *Service[R] {
	return &Service[R]{typeKey: typeKey, reviews: reviews, articles: articles, walls: walls}
}

// TypeKey 返回该服务对应的媒体类型键。
func (s *Service[R]) TypeKey() constant.ArticleType {
	return s.typeKey
}

// Create 发表评测。
// 前置条件：请求者必须已在追踪该作品，且状态为进行中/已完成/已放弃；
// 不满足时返回 constant.ErrReviewNotQualified。
func (s *Service[R]) Create(ctx context.Context, requester *model.Requester, articleIdentifier string, params *model.CreateReviewParams) (R, error) {
	var zero R
	if requester == nil {
		return zero, constant.ErrUnauthorized
	}
	dbID, err := s.articles.FindDBID(ctx, articleIdentifier)
	if err != nil {
		return zero, err
	}
	status, err := s.walls.FindStatus(ctx, requester.Username, dbID)
	if err != nil {
		return zero, err
	}
	if !qualifyingStatuses[status] {
		return zero, constant.ErrReviewNotQualified
	}
	html, err := parser.MarkdownToHTML(params.Review)
	if err != nil {
		return zero, fmt.Errorf("渲染评测正文失败: %w", err)
	}
	params.Username = requester.Username
	params.ArticleDBID = dbID
	params.ReviewHTML = html
	return s.reviews.Create(ctx, params)
}

// Get 获取单条评测，任何人可读。
func (s *Service[R]) Get(ctx context.Context, publicID string) (R, error) {
	return s.reviews.GetByID(ctx, publicID)
}

// ListByArticle 列出某作品的全部评测。
func (s *Service[R]) ListByArticle(ctx context.Context, articleIdentifier string) ([]R, error) {
	dbID, err := s.articles.FindDBID(ctx, articleIdentifier)
	if err != nil {
		return nil, err
	}
	return s.reviews.ListByArticle(ctx, dbID)
}

// ListByUser 列出某用户发表的全部评测。
func (s *Service[R]) ListByUser(ctx context.Context, username string) ([]R, error) {
	return s.reviews.ListByUser(ctx, username)
}

// Update 部分更新一条评测，只有作者本人可以修改。
// 正文变更时重新渲染 HTML。
func (s *Service[R]) Update(ctx context.Context, requester *model.Requester, publicID string, params *model.UpdateReviewParams) (R, error) {
	var zero R
	record, err := s.reviews.GetByID(ctx, publicID)
	if err != nil {
		return zero, err
	}
	if requester == nil || record.Core().Username != requester.Username {
		return zero, constant.ErrForbidden
	}
	if params.Review != nil {
		html, err := parser.MarkdownToHTML(*params.Review)
		if err != nil {
			return zero, fmt.Errorf("渲染评测正文失败: %w", err)
		}
		params.ReviewHTML = &html
	}
	return s.reviews.Update(ctx, publicID, params)
}

// Delete 删除一条评测，作者本人或管理员可以执行。
func (s *Service[R]) Delete(ctx context.Context, requester *model.Requester, publicID string) error {
	record, err := s.reviews.GetByID(ctx, publicID)
	if err != nil {
		return err
	}
	if requester == nil || (record.Core().Username != requester.Username && !requester.IsAdmin()) {
		return constant.ErrForbidden
	}
	return s.reviews.Delete(ctx, publicID)
}
