/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 12:22:19
 * @LastEditTime: 2025-09-24 10:19:40
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

// WallsComic holds the schema definition for the WallsComic entity.
type WallsComic struct {
	ent.Schema
}

// Annotations of the WallsComic.
func (WallsComic) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("漫画追踪墙记录表"),
	}
}

// Mixin of the WallsComic.
func (WallsComic) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.WallMixin{},
	}
}

// Fields of the WallsComic.
func (WallsComic) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Int("issues").
			Default(0).
			NonNegative().
			Comment("已读期数"),
	}
}
