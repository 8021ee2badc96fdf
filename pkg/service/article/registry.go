/*
 * @Description: 作品服务注册表，聚合接口按媒体类型扇出
 * @Author: 安知鱼
 * @Date: 2025-09-08 11:30:15
 * @LastEditTime: 2025-10-24 16:02:58
 * @LastEditors: 安知鱼
 */
package article

import (
	"context"

	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
)

// DraftLister 是类型无关的草稿查询入口，由各媒体类型的 Service 实现。
// 返回值刻意使用 any：四种类型的草稿列表元素类型不同，
// 聚合结果里按类型键分组后原样序列化。
type DraftLister interface {
	TypeKey() constant.ArticleType
	Drafts(ctx context.Context, requester *model.Requester) (any, error)
}

// Registry 按媒体类型登记四个作品服务。
type Registry struct {
	listers map[constant.ArticleType]DraftLister
}

// NewRegistry 构造注册表，重复的类型键后登记的覆盖先登记的。
func NewRegistry(listers ...DraftLister) *Registry {
	r := &Registry{listers: make(map[constant.ArticleType]DraftLister, len(listers))}
	for _, l := range listers {
		r.listers[l.TypeKey()] = l
	}
	return r
}

// Drafts 聚合草稿列表。
// articleType 为具体类型时只查询该类型，为 all 时按固定顺序逐类型扇出；
// 未登记的类型返回参数错误。
func (r *Registry) Drafts(ctx context.Context, requester *model.Requester, articleType constant.ArticleType) (map[string]any, error) {
	result := make(map[string]any)
	if articleType == constant.ArticleTypeAll {
		for _, key := range constant.AllArticleTypes {
			lister, ok := r.listers[key]
			if !ok {
				continue
			}
			drafts, err := lister.Drafts(ctx, requester)
			if err != nil {
				return nil, err
			}
			result[string(key)] = drafts
		}
		return result, nil
	}
	lister, ok := r.listers[articleType]
	if !ok {
		return nil, constant.ErrBadRequest
	}
	drafts, err := lister.Drafts(ctx, requester)
	if err != nil {
		return nil, err
	}
	result[string(articleType)] = drafts
	return result, nil
}
