/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 12:09:44
 * @LastEditTime: 2025-09-24 10:17:21
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

// Game holds the schema definition for the Game entity.
type Game struct {
	ent.Schema
}

// Annotations of the Game.
func (Game) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("游戏表"),
	}
}

// Mixin of the Game.
func (Game) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
		mixin.ArticleMixin{},
	}
}

// Fields of the Game.
func (Game) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.String("game_mode").
			Optional().
			Comment("游戏模式，逗号拼接，如 singlePlayer,multiPlayer"),
		field.String("gears").
			Optional().
			Comment("可运行平台，逗号拼接"),
		field.Int("complete_time").
			Default(0).
			NonNegative().
			Comment("通关时长(小时)"),
	}
}
