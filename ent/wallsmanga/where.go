// Code generated by ent, DO NOT EDIT.

package wallsmanga

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldUpdatedAt, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldUsername, v))
}

// ArticleID applies equality check predicate on the "article_id" field. It's identical to ArticleIDEQ.
func ArticleID(v uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldArticleID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldScore, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldStartedAt, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldFinishedAt, v))
}

// Volumes applies equality check predicate on the "volumes" field. It's identical to VolumesEQ.
func Volumes(v int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldVolumes, v))
}

// Chapters applies equality check predicate on the "chapters" field. It's identical to ChaptersEQ.
func Chapters(v int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldChapters, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLTE(FieldUpdatedAt, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldContainsFold(FieldUsername, v))
}

// ArticleIDEQ applies the EQ predicate on the "article_id" field.
func ArticleIDEQ(v uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldArticleID, v))
}

// ArticleIDNEQ applies the NEQ predicate on the "article_id" field.
func ArticleIDNEQ(v uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNEQ(FieldArticleID, v))
}

// ArticleIDIn applies the In predicate on the "article_id" field.
func ArticleIDIn(vs ...uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldIn(FieldArticleID, vs...))
}

// ArticleIDNotIn applies the NotIn predicate on the "article_id" field.
func ArticleIDNotIn(vs ...uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNotIn(FieldArticleID, vs...))
}

// ArticleIDGT applies the GT predicate on the "article_id" field.
func ArticleIDGT(v uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGT(FieldArticleID, v))
}

// ArticleIDGTE applies the GTE predicate on the "article_id" field.
func ArticleIDGTE(v uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGTE(FieldArticleID, v))
}

// ArticleIDLT applies the LT predicate on the "article_id" field.
func ArticleIDLT(v uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLT(FieldArticleID, v))
}

// ArticleIDLTE applies the LTE predicate on the "article_id" field.
func ArticleIDLTE(v uint) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLTE(FieldArticleID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNotIn(FieldStatus, vs...))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.WallsManga {
	return predicate.WallsManga(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNotNull(FieldScore))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLTE(FieldStartedAt, v))
}

// StartedAtIsNil applies the IsNil predicate on the "started_at" field.
func StartedAtIsNil() predicate.WallsManga {
	return predicate.WallsManga(sql.FieldIsNull(FieldStartedAt))
}

// StartedAtNotNil applies the NotNil predicate on the "started_at" field.
func StartedAtNotNil() predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNotNull(FieldStartedAt))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.WallsManga {
	return predicate.WallsManga(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNotNull(FieldFinishedAt))
}

// VolumesEQ applies the EQ predicate on the "volumes" field.
func VolumesEQ(v int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldVolumes, v))
}

// VolumesNEQ applies the NEQ predicate on the "volumes" field.
func VolumesNEQ(v int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNEQ(FieldVolumes, v))
}

// VolumesIn applies the In predicate on the "volumes" field.
func VolumesIn(vs ...int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldIn(FieldVolumes, vs...))
}

// VolumesNotIn applies the NotIn predicate on the "volumes" field.
func VolumesNotIn(vs ...int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNotIn(FieldVolumes, vs...))
}

// VolumesGT applies the GT predicate on the "volumes" field.
func VolumesGT(v int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGT(FieldVolumes, v))
}

// VolumesGTE applies the GTE predicate on the "volumes" field.
func VolumesGTE(v int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGTE(FieldVolumes, v))
}

// VolumesLT applies the LT predicate on the "volumes" field.
func VolumesLT(v int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLT(FieldVolumes, v))
}

// VolumesLTE applies the LTE predicate on the "volumes" field.
func VolumesLTE(v int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLTE(FieldVolumes, v))
}

// ChaptersEQ applies the EQ predicate on the "chapters" field.
func ChaptersEQ(v int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldEQ(FieldChapters, v))
}

// ChaptersNEQ applies the NEQ predicate on the "chapters" field.
func ChaptersNEQ(v int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNEQ(FieldChapters, v))
}

// ChaptersIn applies the In predicate on the "chapters" field.
func ChaptersIn(vs ...int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldIn(FieldChapters, vs...))
}

// ChaptersNotIn applies the NotIn predicate on the "chapters" field.
func ChaptersNotIn(vs ...int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldNotIn(FieldChapters, vs...))
}

// ChaptersGT applies the GT predicate on the "chapters" field.
func ChaptersGT(v int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGT(FieldChapters, v))
}

// ChaptersGTE applies the GTE predicate on the "chapters" field.
func ChaptersGTE(v int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldGTE(FieldChapters, v))
}

// ChaptersLT applies the LT predicate on the "chapters" field.
func ChaptersLT(v int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLT(FieldChapters, v))
}

// ChaptersLTE applies the LTE predicate on the "chapters" field.
func ChaptersLTE(v int) predicate.WallsManga {
	return predicate.WallsManga(sql.FieldLTE(FieldChapters, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.WallsManga) predicate.WallsManga {
	return predicate.WallsManga(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.WallsManga) predicate.WallsManga {
	return predicate.WallsManga(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.WallsManga) predicate.WallsManga {
	return predicate.WallsManga(sql.NotPredicates(p))
}
