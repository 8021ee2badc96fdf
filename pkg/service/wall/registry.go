/*
 * @Description: 追踪墙统计注册表
 * @Author: 安知鱼
 * @Date: 2025-09-09 10:05:48
 * @LastEditTime: 2025-10-24 17:20:31
 * @LastEditors: 安知鱼
 */
package wall

import (
	"context"

	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
)

// StatsProvider 是类型无关的追踪墙统计入口，由各媒体类型的 Service 实现。
type StatsProvider interface {
	TypeKey() constant.ArticleType
	StatsFor(ctx context.Context, username string) (*model.WallStatusStats, error)
}

// Registry 按媒体类型登记四个追踪墙服务，供用户统计接口扇出。
type Registry struct {
	providers map[constant.ArticleType]StatsProvider
}

// NewRegistry 构造注册表。
func NewRegistry(providers ...StatsProvider) *Registry {
	r := &Registry{providers: make(map[constant.ArticleType]StatsProvider, len(providers))}
	for _, p := range providers {
		r.providers[p.TypeKey()] = p
	}
	return r
}

// UserStats 聚合某用户的追踪墙统计。
// articleType 为具体类型时只统计该类型，为 all 时按固定顺序逐类型扇出。
func (r *Registry) UserStats(ctx context.Context, username string, articleType constant.ArticleType) (map[string]*model.WallStatusStats, error) {
	result := make(map[string]*model.WallStatusStats)
	if articleType == constant.ArticleTypeAll {
		for _, key := range constant.AllArticleTypes {
			provider, ok := r.providers[key]
			if !ok {
				continue
			}
			stats, err := provider.StatsFor(ctx, username)
			if err != nil {
				return nil, err
			}
			result[string(key)] = stats
		}
		return result, nil
	}
	provider, ok := r.providers[articleType]
	if !ok {
		return nil, constant.ErrBadRequest
	}
	stats, err := provider.StatsFor(ctx, username)
	if err != nil {
		return nil, err
	}
	result[string(articleType)] = stats
	return result, nil
}
