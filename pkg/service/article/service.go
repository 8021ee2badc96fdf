/*
 * @Description: 作品服务，泛型实现，四种媒体类型各实例化一份
 * @Author: 安知鱼
 * @Date: 2025-09-08 10:14:27
 * @LastEditTime: 2025-10-24 15:33:41
 * @LastEditors: 安知鱼
 */
package article

import (
	"context"
	"log"
	"net/url"

	"github.com/anzhiyu-c/mediawall-app/internal/pkg/utils"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/repository"
)

// ContributionAwarder 在条目通过审核时为贡献者累加点数。
type ContributionAwarder interface {
	AddContributionPoints(ctx context.Context, username string, delta int) error
}

// ContributionAward 是一个条目首次通过审核时贡献者获得的点数。
const ContributionAward = 10

// Service 是单一媒体类型的作品服务。
// 审核策略、slug 派生、分页链接等类型无关的业务规则集中在这里，
// 类型差异全部由仓储和泛型参数吸收。
type Service[M model.Article] struct {
	typeKey constant.ArticleType
	repo    repository.ArticleRepository[M]
	awarder ContributionAwarder
}

// NewService 是 Service 的构造函数，awarder 可以为 nil。
func NewService[M model.Article](
	typeKey constant.ArticleType,
	repo repository.ArticleRepository[M],
	awarder ContributionAwarder,
) *Service[M] {
	return &Service[M]{typeKey: typeKey, repo: repo, awarder: awarder}
}

// TypeKey 返回该服务对应的媒体类型键。
func (s *Service[M]) TypeKey() constant.ArticleType {
	return s.typeKey
}

// Create 创建作品。
// 普通用户的提交无论入参如何都强制进入草稿队列等待审核；
// 版主/管理员的提交按 draft 入参决定，accepted 始终与 draft 互斥。
func (s *Service[M]) Create(ctx context.Context, requester *model.Requester, params *model.CreateArticleParams) (M, error) {
	var zero M
	if requester == nil {
		return zero, constant.ErrUnauthorized
	}
	if !requester.IsStaff() {
		params.Draft = true
	}
	params.Accepted = !params.Draft
	params.Contributor = requester.Username
	params.Slug = utils.Slugify(params.Title)
	return s.repo.Create(ctx, params)
}

// Get 获取作品详情。未过审的草稿只有 staff 和贡献者本人可见。
func (s *Service[M]) Get(ctx context.Context, identifier, slug string, requester *model.Requester) (M, error) {
	var zero M
	username := ""
	if requester != nil {
		username = requester.Username
	}
	found, err := s.repo.GetByIdentifierSlug(ctx, identifier, slug, username)
	if err != nil {
		return zero, err
	}
	core := found.Core()
	if core.Draft && !requester.IsStaff() && core.Contributor != username {
		return zero, constant.ErrNotFound
	}
	return found, nil
}

// List 分页查询作品列表并生成上一页/下一页链接。
// baseURL 与 query 来自当前请求，链接回显除 page 外的全部查询参数。
func (s *Service[M]) List(ctx context.Context, opts *model.ListArticlesOptions, baseURL string, query url.Values) (*model.PaginatedResponse[M], error) {
	items, total, err := s.repo.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	next, prev := PageLinks(baseURL, query, opts.Page, opts.Limit, total)
	return &model.PaginatedResponse[M]{
		TotalCount: total,
		Page:       opts.Page,
		Limit:      opts.Limit,
		Data:       items,
		NextPage:   next,
		PrevPage:   prev,
	}, nil
}

// Update 部分更新作品。
// draft 显式置 true 视为草稿重新提交，发布时间重置为当前；
// accepted 不单独接受入参，始终跟随 draft 取反。
// 条目首次通过审核时为贡献者累加贡献点。
func (s *Service[M]) Update(ctx context.Context, identifier, slug string, params *model.UpdateArticleParams) (M, error) {
	var zero M
	before, err := s.repo.GetByIdentifierSlug(ctx, identifier, slug, "")
	if err != nil {
		return zero, err
	}
	if params.Draft != nil {
		accepted := !*params.Draft
		params.Accepted = &accepted
		if *params.Draft {
			params.ResetCreatedAt = true
		}
	}
	updated, err := s.repo.Update(ctx, identifier, slug, params)
	if err != nil {
		return zero, err
	}
	core := updated.Core()
	if s.awarder != nil && !before.Core().Accepted && core.Accepted && core.Contributor != "" {
		if err := s.awarder.AddContributionPoints(ctx, core.Contributor, ContributionAward); err != nil {
			// 贡献点累加失败不阻断审核流程
			log.Printf("[作品服务] 累加贡献点失败: contributor=%s, error=%v", core.Contributor, err)
		}
	}
	return updated, nil
}

// Delete 软删除作品。
func (s *Service[M]) Delete(ctx context.Context, identifier, slug string) error {
	return s.repo.Delete(ctx, identifier, slug)
}

// Drafts 列出待审核草稿。staff 看到全部，普通用户只看到自己的贡献。
func (s *Service[M]) Drafts(ctx context.Context, requester *model.Requester) (any, error) {
	contributor := ""
	if requester != nil && !requester.IsStaff() {
		contributor = requester.Username
	}
	return s.repo.ListDrafts(ctx, contributor)
}
