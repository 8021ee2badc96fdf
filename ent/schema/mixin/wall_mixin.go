/*
 * @Description: 追踪墙记录共享的基础字段
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:40:17
 * @LastEditTime: 2025-09-24 10:11:02
 * @LastEditors: 安知鱼
 */
package mixin

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"entgo.io/ent/schema/mixin"
)

// WallMixin 定义了四种追踪墙记录共有的字段。
// (username, article_id) 的组合唯一约束由数据库保证，重复创建在仓储层
// 转译为冲突错误，从根上消除 "先查再插" 的竞态窗口。
type WallMixin struct {
	mixin.Schema
}

// Fields of the WallMixin.
func (WallMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.String("username").
			NotEmpty().
			Comment("记录所有者的用户名"),
		field.Uint("article_id").
			Comment("被追踪作品的内部ID"),
		field.Enum("status").
			Values("IN_PLANS", "IN_PROGRESS", "COMPLETED", "DROPPED").
			Comment("追踪状态"),
		field.Float("score").
			Optional().
			Nillable().
			Comment("评分，可空"),
		field.Time("started_at").
			Optional().
			Nillable().
			Comment("开始时间"),
		field.Time("finished_at").
			Optional().
			Nillable().
			Comment("完成时间"),
	}
}

// Indexes of the WallMixin.
func (WallMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username", "article_id").Unique(),
	}
}
