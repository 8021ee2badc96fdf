/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 12:01:10
 * @LastEditTime: 2025-09-24 10:15:33
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

// Book holds the schema definition for the Book entity.
type Book struct {
	ent.Schema
}

// Annotations of the Book.
func (Book) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("图书表"),
	}
}

// Mixin of the Book.
func (Book) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
		mixin.ArticleMixin{},
	}
}

// Fields of the Book.
func (Book) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Int("pages").
			Default(0).
			NonNegative().
			Comment("页数"),
		field.String("series").
			Optional().
			Comment("所属系列名，name 过滤同时匹配此字段"),
	}
}
