/*
 * @Description: 四种媒体类型共享的基础字段
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:22:51
 * @LastEditTime: 2025-09-24 10:08:36
 * @LastEditors: 安知鱼
 */
package mixin

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/mixin"
)

// ArticleMixin 定义了所有作品类型(Book/Comic/Game/Manga)共有的字段。
// 标题在每种类型内全局唯一，由数据库唯一约束保证，冲突在仓储层转译为业务错误。
// authors/publishers/genres 以逗号拼接的字符串存储，过滤时做子串匹配。
type ArticleMixin struct {
	mixin.Schema
}

// Fields of the ArticleMixin.
func (ArticleMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.String("title").
			NotEmpty().
			Unique().
			Comment("作品标题，类型内唯一"),
		field.String("slug").
			NotEmpty().
			Immutable().
			Comment("由标题派生的 URL slug，创建后不可变"),
		field.Text("description").
			Optional().
			Comment("作品简介"),
		field.String("cover_url").
			Optional().
			Comment("封面图URL"),
		field.String("authors").
			Optional().
			Comment("作者列表，逗号拼接"),
		field.String("publishers").
			Optional().
			Comment("出版方列表，逗号拼接"),
		field.String("genres").
			Optional().
			Comment("题材标签列表，逗号拼接"),
		field.Time("premiered").
			Optional().
			Nillable().
			Comment("首发日期"),
		field.Bool("draft").
			Default(true).
			Comment("是否为待审核草稿"),
		field.Bool("accepted").
			Default(false).
			Comment("是否已通过审核公开展示"),
		field.String("contributor").
			Optional().
			Comment("贡献者用户名"),
	}
}
