/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 12:13:02
 * @LastEditTime: 2025-09-24 10:18:05
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

// Manga holds the schema definition for the Manga entity.
type Manga struct {
	ent.Schema
}

// Annotations of the Manga.
func (Manga) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("日漫表"),
	}
}

// Mixin of the Manga.
func (Manga) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.SoftDeleteMixin{},
		mixin.ArticleMixin{},
	}
}

// Fields of the Manga.
func (Manga) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
		field.Int("volumes").
			Default(0).
			NonNegative().
			Comment("卷数"),
		field.Int("chapters").
			Default(0).
			NonNegative().
			Comment("话数"),
		field.Enum("type").
			Values("MANGA", "MANHWA", "MANHUA", "NOVEL", "ONE_SHOT", "DOUJINSHI").
			Default("MANGA").
			Comment("作品分类"),
		field.Time("finished_at").
			Optional().
			Nillable().
			Comment("完结日期，finished=true 过滤非空行"),
	}
}
