/*
 * @Description: 评测共享的基础字段
 * @Author: 安知鱼
 * @Date: 2025-09-02 11:47:55
 * @LastEditTime: 2025-09-24 10:12:48
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

// ReviewMixin 定义了四种评测共有的字段。
// 每个用户对每个作品至多一条评测，由 (username, article_id) 唯一约束保证。
type ReviewMixin struct {
	mixin.Schema
}

// Fields of the ReviewMixin.
func (ReviewMixin) Fields() []ent.Field {
	return []ent.Field{
		field.Time("created_at").Default(time.Now),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
		field.String("username").
			NotEmpty().
			Comment("评测作者的用户名"),
		field.Uint("article_id").
			Comment("被评测作品的内部ID"),
		field.Text("review").
			NotEmpty().
			Comment("评测正文的 Markdown 原文"),
		field.Text("review_html").
			Optional().
			Comment("由 review 解析和净化后的 HTML"),
		field.Int("overall").
			Comment("总评分"),
		field.Int("art").
			Optional().
			Nillable().
			Comment("画面/美术分项评分"),
		field.Int("characters").
			Optional().
			Nillable().
			Comment("角色分项评分"),
		field.Int("story").
			Optional().
			Nillable().
			Comment("剧情分项评分"),
		field.Int("enjoyment").
			Optional().
			Nillable().
			Comment("乐趣分项评分"),
	}
}

// Indexes of the ReviewMixin.
func (ReviewMixin) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("username", "article_id").Unique(),
	}
}
