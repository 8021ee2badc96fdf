/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 12:23:41
 * @LastEditTime: 2025-09-24 10:20:02
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

// WallsGame holds the schema definition for the WallsGame entity.
type WallsGame struct {
	ent.Schema
}

// Annotations of the WallsGame.
func (WallsGame) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("游戏追踪墙记录表"),
	}
}

// Mixin of the WallsGame.
func (WallsGame) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.WallMixin{},
	}
}

// Fields of the WallsGame.
func (WallsGame) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Int("hours_played").
			Default(0).
			NonNegative().
			Comment("已游玩小时数"),
	}
}
