/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 12:05:26
 * @LastEditTime: 2025-09-24 10:16:40
 * @LastEditors: 安知鱼
 */
package schema

import (
	"github.com/anzhiyu-c/mediawall-app/ent/schema/mixin"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
)

// Comic holds the schema definition for the Comic entity.
type Comic struct {
	ent.Schema
}

// Annotations of the Comic.
func (Comic) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("漫画表"),
	}
}

// Mixin of the Comic.
func (Comic) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
		mixin.ArticleMixin{},
	}
}

// Fields of the Comic.
func (Comic) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Int("issues").
			Default(0).
			NonNegative().
			Comment("期数"),
		field.Time("finished_at").
			Optional().
			Nillable().
			Comment("完结日期，finished=true 过滤非空行"),
	}
}
