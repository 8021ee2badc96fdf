// Code generated by ent, DO NOT EDIT.

package comic

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.Comic {
	return predicate.Comic(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.Comic {
	return predicate.Comic(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.Comic {
	return predicate.Comic(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.Comic {
	return predicate.Comic(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.Comic {
	return predicate.Comic(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.Comic {
	return predicate.Comic(sql.FieldLTE(FieldID, id))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldUpdatedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldTitle, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldSlug, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldDescription, v))
}

// CoverURL applies equality check predicate on the "cover_url" field. It's identical to CoverURLEQ.
func CoverURL(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldCoverURL, v))
}

// Authors applies equality check predicate on the "authors" field. It's identical to AuthorsEQ.
func Authors(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldAuthors, v))
}

// Publishers applies equality check predicate on the "publishers" field. It's identical to PublishersEQ.
func Publishers(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldPublishers, v))
}

// Genres applies equality check predicate on the "genres" field. It's identical to GenresEQ.
func Genres(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldGenres, v))
}

// Premiered applies equality check predicate on the "premiered" field. It's identical to PremieredEQ.
func Premiered(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldPremiered, v))
}

// Draft applies equality check predicate on the "draft" field. It's identical to DraftEQ.
func Draft(v bool) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldDraft, v))
}

// Accepted applies equality check predicate on the "accepted" field. It's identical to AcceptedEQ.
func Accepted(v bool) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldAccepted, v))
}

// Contributor applies equality check predicate on the "contributor" field. It's identical to ContributorEQ.
func Contributor(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldContributor, v))
}

// Issues applies equality check predicate on the "issues" field. It's identical to IssuesEQ.
func Issues(v int) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldIssues, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldFinishedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Comic {
	return predicate.Comic(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Comic {
	return predicate.Comic(sql.FieldNotNull(FieldDeletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldLTE(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContainsFold(FieldTitle, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContainsFold(FieldSlug, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Comic {
	return predicate.Comic(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Comic {
	return predicate.Comic(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContainsFold(FieldDescription, v))
}

// CoverURLEQ applies the EQ predicate on the "cover_url" field.
func CoverURLEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldCoverURL, v))
}

// CoverURLNEQ applies the NEQ predicate on the "cover_url" field.
func CoverURLNEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldCoverURL, v))
}

// CoverURLIn applies the In predicate on the "cover_url" field.
func CoverURLIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldIn(FieldCoverURL, vs...))
}

// CoverURLNotIn applies the NotIn predicate on the "cover_url" field.
func CoverURLNotIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldNotIn(FieldCoverURL, vs...))
}

// CoverURLGT applies the GT predicate on the "cover_url" field.
func CoverURLGT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGT(FieldCoverURL, v))
}

// CoverURLGTE applies the GTE predicate on the "cover_url" field.
func CoverURLGTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGTE(FieldCoverURL, v))
}

// CoverURLLT applies the LT predicate on the "cover_url" field.
func CoverURLLT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLT(FieldCoverURL, v))
}

// CoverURLLTE applies the LTE predicate on the "cover_url" field.
func CoverURLLTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLTE(FieldCoverURL, v))
}

// CoverURLContains applies the Contains predicate on the "cover_url" field.
func CoverURLContains(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContains(FieldCoverURL, v))
}

// CoverURLHasPrefix applies the HasPrefix predicate on the "cover_url" field.
func CoverURLHasPrefix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasPrefix(FieldCoverURL, v))
}

// CoverURLHasSuffix applies the HasSuffix predicate on the "cover_url" field.
func CoverURLHasSuffix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasSuffix(FieldCoverURL, v))
}

// CoverURLIsNil applies the IsNil predicate on the "cover_url" field.
func CoverURLIsNil() predicate.Comic {
	return predicate.Comic(sql.FieldIsNull(FieldCoverURL))
}

// CoverURLNotNil applies the NotNil predicate on the "cover_url" field.
func CoverURLNotNil() predicate.Comic {
	return predicate.Comic(sql.FieldNotNull(FieldCoverURL))
}

// CoverURLEqualFold applies the EqualFold predicate on the "cover_url" field.
func CoverURLEqualFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEqualFold(FieldCoverURL, v))
}

// CoverURLContainsFold applies the ContainsFold predicate on the "cover_url" field.
func CoverURLContainsFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContainsFold(FieldCoverURL, v))
}

// AuthorsEQ applies the EQ predicate on the "authors" field.
func AuthorsEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldAuthors, v))
}

// AuthorsNEQ applies the NEQ predicate on the "authors" field.
func AuthorsNEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldAuthors, v))
}

// AuthorsIn applies the In predicate on the "authors" field.
func AuthorsIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldIn(FieldAuthors, vs...))
}

// AuthorsNotIn applies the NotIn predicate on the "authors" field.
func AuthorsNotIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldNotIn(FieldAuthors, vs...))
}

// AuthorsGT applies the GT predicate on the "authors" field.
func AuthorsGT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGT(FieldAuthors, v))
}

// AuthorsGTE applies the GTE predicate on the "authors" field.
func AuthorsGTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGTE(FieldAuthors, v))
}

// AuthorsLT applies the LT predicate on the "authors" field.
func AuthorsLT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLT(FieldAuthors, v))
}

// AuthorsLTE applies the LTE predicate on the "authors" field.
func AuthorsLTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLTE(FieldAuthors, v))
}

// AuthorsContains applies the Contains predicate on the "authors" field.
func AuthorsContains(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContains(FieldAuthors, v))
}

// AuthorsHasPrefix applies the HasPrefix predicate on the "authors" field.
func AuthorsHasPrefix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasPrefix(FieldAuthors, v))
}

// AuthorsHasSuffix applies the HasSuffix predicate on the "authors" field.
func AuthorsHasSuffix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasSuffix(FieldAuthors, v))
}

// AuthorsIsNil applies the IsNil predicate on the "authors" field.
func AuthorsIsNil() predicate.Comic {
	return predicate.Comic(sql.FieldIsNull(FieldAuthors))
}

// AuthorsNotNil applies the NotNil predicate on the "authors" field.
func AuthorsNotNil() predicate.Comic {
	return predicate.Comic(sql.FieldNotNull(FieldAuthors))
}

// AuthorsEqualFold applies the EqualFold predicate on the "authors" field.
func AuthorsEqualFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEqualFold(FieldAuthors, v))
}

// AuthorsContainsFold applies the ContainsFold predicate on the "authors" field.
func AuthorsContainsFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContainsFold(FieldAuthors, v))
}

// PublishersEQ applies the EQ predicate on the "publishers" field.
func PublishersEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldPublishers, v))
}

// PublishersNEQ applies the NEQ predicate on the "publishers" field.
func PublishersNEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldPublishers, v))
}

// PublishersIn applies the In predicate on the "publishers" field.
func PublishersIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldIn(FieldPublishers, vs...))
}

// PublishersNotIn applies the NotIn predicate on the "publishers" field.
func PublishersNotIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldNotIn(FieldPublishers, vs...))
}

// PublishersGT applies the GT predicate on the "publishers" field.
func PublishersGT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGT(FieldPublishers, v))
}

// PublishersGTE applies the GTE predicate on the "publishers" field.
func PublishersGTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGTE(FieldPublishers, v))
}

// PublishersLT applies the LT predicate on the "publishers" field.
func PublishersLT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLT(FieldPublishers, v))
}

// PublishersLTE applies the LTE predicate on the "publishers" field.
func PublishersLTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLTE(FieldPublishers, v))
}

// PublishersContains applies the Contains predicate on the "publishers" field.
func PublishersContains(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContains(FieldPublishers, v))
}

// PublishersHasPrefix applies the HasPrefix predicate on the "publishers" field.
func PublishersHasPrefix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasPrefix(FieldPublishers, v))
}

// PublishersHasSuffix applies the HasSuffix predicate on the "publishers" field.
func PublishersHasSuffix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasSuffix(FieldPublishers, v))
}

// PublishersIsNil applies the IsNil predicate on the "publishers" field.
func PublishersIsNil() predicate.Comic {
	return predicate.Comic(sql.FieldIsNull(FieldPublishers))
}

// PublishersNotNil applies the NotNil predicate on the "publishers" field.
func PublishersNotNil() predicate.Comic {
	return predicate.Comic(sql.FieldNotNull(FieldPublishers))
}

// PublishersEqualFold applies the EqualFold predicate on the "publishers" field.
func PublishersEqualFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEqualFold(FieldPublishers, v))
}

// PublishersContainsFold applies the ContainsFold predicate on the "publishers" field.
func PublishersContainsFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContainsFold(FieldPublishers, v))
}

// GenresEQ applies the EQ predicate on the "genres" field.
func GenresEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldGenres, v))
}

// GenresNEQ applies the NEQ predicate on the "genres" field.
func GenresNEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldGenres, v))
}

// GenresIn applies the In predicate on the "genres" field.
func GenresIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldIn(FieldGenres, vs...))
}

// GenresNotIn applies the NotIn predicate on the "genres" field.
func GenresNotIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldNotIn(FieldGenres, vs...))
}

// GenresGT applies the GT predicate on the "genres" field.
func GenresGT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGT(FieldGenres, v))
}

// GenresGTE applies the GTE predicate on the "genres" field.
func GenresGTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGTE(FieldGenres, v))
}

// GenresLT applies the LT predicate on the "genres" field.
func GenresLT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLT(FieldGenres, v))
}

// GenresLTE applies the LTE predicate on the "genres" field.
func GenresLTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLTE(FieldGenres, v))
}

// GenresContains applies the Contains predicate on the "genres" field.
func GenresContains(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContains(FieldGenres, v))
}

// GenresHasPrefix applies the HasPrefix predicate on the "genres" field.
func GenresHasPrefix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasPrefix(FieldGenres, v))
}

// GenresHasSuffix applies the HasSuffix predicate on the "genres" field.
func GenresHasSuffix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasSuffix(FieldGenres, v))
}

// GenresIsNil applies the IsNil predicate on the "genres" field.
func GenresIsNil() predicate.Comic {
	return predicate.Comic(sql.FieldIsNull(FieldGenres))
}

// GenresNotNil applies the NotNil predicate on the "genres" field.
func GenresNotNil() predicate.Comic {
	return predicate.Comic(sql.FieldNotNull(FieldGenres))
}

// GenresEqualFold applies the EqualFold predicate on the "genres" field.
func GenresEqualFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEqualFold(FieldGenres, v))
}

// GenresContainsFold applies the ContainsFold predicate on the "genres" field.
func GenresContainsFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContainsFold(FieldGenres, v))
}

// PremieredEQ applies the EQ predicate on the "premiered" field.
func PremieredEQ(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldPremiered, v))
}

// PremieredNEQ applies the NEQ predicate on the "premiered" field.
func PremieredNEQ(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldPremiered, v))
}

// PremieredIn applies the In predicate on the "premiered" field.
func PremieredIn(vs ...time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldIn(FieldPremiered, vs...))
}

// PremieredNotIn applies the NotIn predicate on the "premiered" field.
func PremieredNotIn(vs ...time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldNotIn(FieldPremiered, vs...))
}

// PremieredGT applies the GT predicate on the "premiered" field.
func PremieredGT(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldGT(FieldPremiered, v))
}

// PremieredGTE applies the GTE predicate on the "premiered" field.
func PremieredGTE(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldGTE(FieldPremiered, v))
}

// PremieredLT applies the LT predicate on the "premiered" field.
func PremieredLT(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldLT(FieldPremiered, v))
}

// PremieredLTE applies the LTE predicate on the "premiered" field.
func PremieredLTE(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldLTE(FieldPremiered, v))
}

// PremieredIsNil applies the IsNil predicate on the "premiered" field.
func PremieredIsNil() predicate.Comic {
	return predicate.Comic(sql.FieldIsNull(FieldPremiered))
}

// PremieredNotNil applies the NotNil predicate on the "premiered" field.
func PremieredNotNil() predicate.Comic {
	return predicate.Comic(sql.FieldNotNull(FieldPremiered))
}

// DraftEQ applies the EQ predicate on the "draft" field.
func DraftEQ(v bool) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldDraft, v))
}

// DraftNEQ applies the NEQ predicate on the "draft" field.
func DraftNEQ(v bool) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldDraft, v))
}

// AcceptedEQ applies the EQ predicate on the "accepted" field.
func AcceptedEQ(v bool) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldAccepted, v))
}

// AcceptedNEQ applies the NEQ predicate on the "accepted" field.
func AcceptedNEQ(v bool) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldAccepted, v))
}

// ContributorEQ applies the EQ predicate on the "contributor" field.
func ContributorEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldContributor, v))
}

// ContributorNEQ applies the NEQ predicate on the "contributor" field.
func ContributorNEQ(v string) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldContributor, v))
}

// ContributorIn applies the In predicate on the "contributor" field.
func ContributorIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldIn(FieldContributor, vs...))
}

// ContributorNotIn applies the NotIn predicate on the "contributor" field.
func ContributorNotIn(vs ...string) predicate.Comic {
	return predicate.Comic(sql.FieldNotIn(FieldContributor, vs...))
}

// ContributorGT applies the GT predicate on the "contributor" field.
func ContributorGT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGT(FieldContributor, v))
}

// ContributorGTE applies the GTE predicate on the "contributor" field.
func ContributorGTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldGTE(FieldContributor, v))
}

// ContributorLT applies the LT predicate on the "contributor" field.
func ContributorLT(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLT(FieldContributor, v))
}

// ContributorLTE applies the LTE predicate on the "contributor" field.
func ContributorLTE(v string) predicate.Comic {
	return predicate.Comic(sql.FieldLTE(FieldContributor, v))
}

// ContributorContains applies the Contains predicate on the "contributor" field.
func ContributorContains(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContains(FieldContributor, v))
}

// ContributorHasPrefix applies the HasPrefix predicate on the "contributor" field.
func ContributorHasPrefix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasPrefix(FieldContributor, v))
}

// ContributorHasSuffix applies the HasSuffix predicate on the "contributor" field.
func ContributorHasSuffix(v string) predicate.Comic {
	return predicate.Comic(sql.FieldHasSuffix(FieldContributor, v))
}

// ContributorIsNil applies the IsNil predicate on the "contributor" field.
func ContributorIsNil() predicate.Comic {
	return predicate.Comic(sql.FieldIsNull(FieldContributor))
}

// ContributorNotNil applies the NotNil predicate on the "contributor" field.
func ContributorNotNil() predicate.Comic {
	return predicate.Comic(sql.FieldNotNull(FieldContributor))
}

// ContributorEqualFold applies the EqualFold predicate on the "contributor" field.
func ContributorEqualFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldEqualFold(FieldContributor, v))
}

// ContributorContainsFold applies the ContainsFold predicate on the "contributor" field.
func ContributorContainsFold(v string) predicate.Comic {
	return predicate.Comic(sql.FieldContainsFold(FieldContributor, v))
}

// IssuesEQ applies the EQ predicate on the "issues" field.
func IssuesEQ(v int) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldIssues, v))
}

// IssuesNEQ applies the NEQ predicate on the "issues" field.
func IssuesNEQ(v int) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldIssues, v))
}

// IssuesIn applies the In predicate on the "issues" field.
func IssuesIn(vs ...int) predicate.Comic {
	return predicate.Comic(sql.FieldIn(FieldIssues, vs...))
}

// IssuesNotIn applies the NotIn predicate on the "issues" field.
func IssuesNotIn(vs ...int) predicate.Comic {
	return predicate.Comic(sql.FieldNotIn(FieldIssues, vs...))
}

// IssuesGT applies the GT predicate on the "issues" field.
func IssuesGT(v int) predicate.Comic {
	return predicate.Comic(sql.FieldGT(FieldIssues, v))
}

// IssuesGTE applies the GTE predicate on the "issues" field.
func IssuesGTE(v int) predicate.Comic {
	return predicate.Comic(sql.FieldGTE(FieldIssues, v))
}

// IssuesLT applies the LT predicate on the "issues" field.
func IssuesLT(v int) predicate.Comic {
	return predicate.Comic(sql.FieldLT(FieldIssues, v))
}

// IssuesLTE applies the LTE predicate on the "issues" field.
func IssuesLTE(v int) predicate.Comic {
	return predicate.Comic(sql.FieldLTE(FieldIssues, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.Comic {
	return predicate.Comic(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.Comic {
	return predicate.Comic(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.Comic {
	return predicate.Comic(sql.FieldNotNull(FieldFinishedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Comic) predicate.Comic {
	return predicate.Comic(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Comic) predicate.Comic {
	return predicate.Comic(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Comic) predicate.Comic {
	return predicate.Comic(sql.NotPredicates(p))
}
