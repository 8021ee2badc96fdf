/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 12:30:44
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

// BooksReview holds the schema definition for the BooksReview entity.
type BooksReview struct {
	ent.Schema
}

// Annotations of the BooksReview.
func (BooksReview) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.WithComments(true),
		schema.Comment("图书评测表"),
	}
}

// Mixin of the BooksReview.
func (BooksReview) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixin.ReviewMixin{},
	}
}

// Fields of the BooksReview.
func (BooksReview) Fields() []ent.Field {
	return []ent.Field{
		field.Uint("id"),
	}
}
