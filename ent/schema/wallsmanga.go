/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 12:25:03
 * @LastEditTime: 2025-09-24 10:20:31
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

// WallsManga holds the schema definition for the WallsManga entity.
type WallsManga struct {
	ent.Schema
}

// Annotations of the WallsManga.
func (WallsManga) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("日漫追踪墙记录表"),
	}
}

// Mixin of the WallsManga.
func (WallsManga) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.WallMixin{},
	}
}

// Fields of the WallsManga.
func (WallsManga) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Int("volumes").
			Default(0).
			NonNegative().
			Comment("已读卷数"),
		field.Int("chapters").
			Default(0).
			NonNegative().
			Comment("已读话数"),
	}
}
