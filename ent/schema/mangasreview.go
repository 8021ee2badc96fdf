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

// MangasReview holds the schema definition for the MangasReview entity.
type MangasReview struct {
	ent.Schema
}

// Annotations of the MangasReview.
func (MangasReview) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("日漫评测表"),
	}
}

// Mixin of the MangasReview.
func (MangasReview) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.ReviewMixin{},
	}
}

// Fields of the MangasReview.
func (MangasReview) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
	}
}
