/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 12:32:06
 * @LastEditTime: 2025-09-24 10:21:15
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

// ComicsReview holds the schema definition for the ComicsReview entity.
type ComicsReview struct {
	ent.Schema
}

// Annotations of the ComicsReview.
func (ComicsReview) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("漫画评测表"),
	}
}

// Mixin of the ComicsReview.
func (ComicsReview) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.ReviewMixin{},
	}
}

// Fields of the ComicsReview.
func (ComicsReview) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
	}
}
