/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 12:20:37
 * @LastEditTime: 2025-09-24 10:19:11
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

// WallsBook holds the schema definition for the WallsBook entity.
type WallsBook struct {
	ent.Schema
}

// Annotations of the WallsBook.
func (WallsBook) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("图书追踪墙记录表"),
	}
}

// Mixin of the WallsBook.
func (WallsBook) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.WallMixin{},
	}
}

// Fields of the WallsBook.
func (WallsBook) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Int("pages").
			Default(0).
			NonNegative().
			Comment("已读页数"),
	}
}
