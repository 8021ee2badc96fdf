/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 12:34:28
 * @LastEditTime: 2025-09-24 10:22:40
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

// GamesReview holds the schema definition for the GamesReview entity.
type GamesReview struct {
	ent.Schema
}

// Annotations of the GamesReview.
func (GamesReview) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("游戏评测表"),
	}
}

// Mixin of the GamesReview.
func (GamesReview) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.ReviewMixin{},
	}
}

// Fields of the GamesReview.
// 游戏评测在通用分项之外额外有三个分项评分。
func (GamesReview) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Int("graphics").
			Optional().
			Nillable().
			Comment("画质分项评分"),
		field.Int("music").
			Optional().
			Nillable().
			Comment("音乐分项评分"),
		field.Int("voicing").
			Optional().
			Nillable().
			Comment("配音分项评分"),
	}
}
