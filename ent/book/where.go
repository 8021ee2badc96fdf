// Code generated by ent, DO NOT EDIT.

package book

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.Book {
	return predicate.Book(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.Book {
	return predicate.Book(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.Book {
	return predicate.Book(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.Book {
	return predicate.Book(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.Book {
	return predicate.Book(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.Book {
	return predicate.Book(sql.FieldLTE(FieldID, id))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldUpdatedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldTitle, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldSlug, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldDescription, v))
}

// CoverURL applies equality check predicate on the "cover_url" field. It's identical to CoverURLEQ.
func CoverURL(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldCoverURL, v))
}

// Authors applies equality check predicate on the "authors" field. It's identical to AuthorsEQ.
func Authors(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldAuthors, v))
}

// Publishers applies equality check predicate on the "publishers" field. It's identical to PublishersEQ.
func Publishers(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldPublishers, v))
}

// Genres applies equality check predicate on the "genres" field. It's identical to GenresEQ.
func Genres(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldGenres, v))
}

// Premiered applies equality check predicate on the "premiered" field. It's identical to PremieredEQ.
func Premiered(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldPremiered, v))
}

// Draft applies equality check predicate on the "draft" field. It's identical to DraftEQ.
func Draft(v bool) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldDraft, v))
}

// Accepted applies equality check predicate on the "accepted" field. It's identical to AcceptedEQ.
func Accepted(v bool) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldAccepted, v))
}

// Contributor applies equality check predicate on the "contributor" field. It's identical to ContributorEQ.
func Contributor(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldContributor, v))
}

// Pages applies equality check predicate on the "pages" field. It's identical to PagesEQ.
func Pages(v int) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldPages, v))
}

// Series applies equality check predicate on the "series" field. It's identical to SeriesEQ.
func Series(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldSeries, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Book {
	return predicate.Book(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Book {
	return predicate.Book(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Book {
	return predicate.Book(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Book {
	return predicate.Book(sql.FieldNotNull(FieldDeletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Book {
	return predicate.Book(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Book {
	return predicate.Book(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Book {
	return predicate.Book(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Book {
	return predicate.Book(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldLTE(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Book {
	return predicate.Book(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Book {
	return predicate.Book(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Book {
	return predicate.Book(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Book {
	return predicate.Book(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Book {
	return predicate.Book(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Book {
	return predicate.Book(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Book {
	return predicate.Book(sql.FieldContainsFold(FieldTitle, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Book {
	return predicate.Book(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Book {
	return predicate.Book(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Book {
	return predicate.Book(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Book {
	return predicate.Book(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Book {
	return predicate.Book(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Book {
	return predicate.Book(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Book {
	return predicate.Book(sql.FieldContainsFold(FieldSlug, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Book {
	return predicate.Book(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Book {
	return predicate.Book(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Book {
	return predicate.Book(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Book {
	return predicate.Book(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Book {
	return predicate.Book(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Book {
	return predicate.Book(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Book {
	return predicate.Book(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Book {
	return predicate.Book(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Book {
	return predicate.Book(sql.FieldContainsFold(FieldDescription, v))
}

// CoverURLEQ applies the EQ predicate on the "cover_url" field.
func CoverURLEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldCoverURL, v))
}

// CoverURLNEQ applies the NEQ predicate on the "cover_url" field.
func CoverURLNEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldCoverURL, v))
}

// CoverURLIn applies the In predicate on the "cover_url" field.
func CoverURLIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldIn(FieldCoverURL, vs...))
}

// CoverURLNotIn applies the NotIn predicate on the "cover_url" field.
func CoverURLNotIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldNotIn(FieldCoverURL, vs...))
}

// CoverURLGT applies the GT predicate on the "cover_url" field.
func CoverURLGT(v string) predicate.Book {
	return predicate.Book(sql.FieldGT(FieldCoverURL, v))
}

// CoverURLGTE applies the GTE predicate on the "cover_url" field.
func CoverURLGTE(v string) predicate.Book {
	return predicate.Book(sql.FieldGTE(FieldCoverURL, v))
}

// CoverURLLT applies the LT predicate on the "cover_url" field.
func CoverURLLT(v string) predicate.Book {
	return predicate.Book(sql.FieldLT(FieldCoverURL, v))
}

// CoverURLLTE applies the LTE predicate on the "cover_url" field.
func CoverURLLTE(v string) predicate.Book {
	return predicate.Book(sql.FieldLTE(FieldCoverURL, v))
}

// CoverURLContains applies the Contains predicate on the "cover_url" field.
func CoverURLContains(v string) predicate.Book {
	return predicate.Book(sql.FieldContains(FieldCoverURL, v))
}

// CoverURLHasPrefix applies the HasPrefix predicate on the "cover_url" field.
func CoverURLHasPrefix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasPrefix(FieldCoverURL, v))
}

// CoverURLHasSuffix applies the HasSuffix predicate on the "cover_url" field.
func CoverURLHasSuffix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasSuffix(FieldCoverURL, v))
}

// CoverURLIsNil applies the IsNil predicate on the "cover_url" field.
func CoverURLIsNil() predicate.Book {
	return predicate.Book(sql.FieldIsNull(FieldCoverURL))
}

// CoverURLNotNil applies the NotNil predicate on the "cover_url" field.
func CoverURLNotNil() predicate.Book {
	return predicate.Book(sql.FieldNotNull(FieldCoverURL))
}

// CoverURLEqualFold applies the EqualFold predicate on the "cover_url" field.
func CoverURLEqualFold(v string) predicate.Book {
	return predicate.Book(sql.FieldEqualFold(FieldCoverURL, v))
}

// CoverURLContainsFold applies the ContainsFold predicate on the "cover_url" field.
func CoverURLContainsFold(v string) predicate.Book {
	return predicate.Book(sql.FieldContainsFold(FieldCoverURL, v))
}

// AuthorsEQ applies the EQ predicate on the "authors" field.
func AuthorsEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldAuthors, v))
}

// AuthorsNEQ applies the NEQ predicate on the "authors" field.
func AuthorsNEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldAuthors, v))
}

// AuthorsIn applies the In predicate on the "authors" field.
func AuthorsIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldIn(FieldAuthors, vs...))
}

// AuthorsNotIn applies the NotIn predicate on the "authors" field.
func AuthorsNotIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldNotIn(FieldAuthors, vs...))
}

// AuthorsGT applies the GT predicate on the "authors" field.
func AuthorsGT(v string) predicate.Book {
	return predicate.Book(sql.FieldGT(FieldAuthors, v))
}

// AuthorsGTE applies the GTE predicate on the "authors" field.
func AuthorsGTE(v string) predicate.Book {
	return predicate.Book(sql.FieldGTE(FieldAuthors, v))
}

// AuthorsLT applies the LT predicate on the "authors" field.
func AuthorsLT(v string) predicate.Book {
	return predicate.Book(sql.FieldLT(FieldAuthors, v))
}

// AuthorsLTE applies the LTE predicate on the "authors" field.
func AuthorsLTE(v string) predicate.Book {
	return predicate.Book(sql.FieldLTE(FieldAuthors, v))
}

// AuthorsContains applies the Contains predicate on the "authors" field.
func AuthorsContains(v string) predicate.Book {
	return predicate.Book(sql.FieldContains(FieldAuthors, v))
}

// AuthorsHasPrefix applies the HasPrefix predicate on the "authors" field.
func AuthorsHasPrefix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasPrefix(FieldAuthors, v))
}

// AuthorsHasSuffix applies the HasSuffix predicate on the "authors" field.
func AuthorsHasSuffix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasSuffix(FieldAuthors, v))
}

// AuthorsIsNil applies the IsNil predicate on the "authors" field.
func AuthorsIsNil() predicate.Book {
	return predicate.Book(sql.FieldIsNull(FieldAuthors))
}

// AuthorsNotNil applies the NotNil predicate on the "authors" field.
func AuthorsNotNil() predicate.Book {
	return predicate.Book(sql.FieldNotNull(FieldAuthors))
}

// AuthorsEqualFold applies the EqualFold predicate on the "authors" field.
func AuthorsEqualFold(v string) predicate.Book {
	return predicate.Book(sql.FieldEqualFold(FieldAuthors, v))
}

// AuthorsContainsFold applies the ContainsFold predicate on the "authors" field.
func AuthorsContainsFold(v string) predicate.Book {
	return predicate.Book(sql.FieldContainsFold(FieldAuthors, v))
}

// PublishersEQ applies the EQ predicate on the "publishers" field.
func PublishersEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldPublishers, v))
}

// PublishersNEQ applies the NEQ predicate on the "publishers" field.
func PublishersNEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldPublishers, v))
}

// PublishersIn applies the In predicate on the "publishers" field.
func PublishersIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldIn(FieldPublishers, vs...))
}

// PublishersNotIn applies the NotIn predicate on the "publishers" field.
func PublishersNotIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldNotIn(FieldPublishers, vs...))
}

// PublishersGT applies the GT predicate on the "publishers" field.
func PublishersGT(v string) predicate.Book {
	return predicate.Book(sql.FieldGT(FieldPublishers, v))
}

// PublishersGTE applies the GTE predicate on the "publishers" field.
func PublishersGTE(v string) predicate.Book {
	return predicate.Book(sql.FieldGTE(FieldPublishers, v))
}

// PublishersLT applies the LT predicate on the "publishers" field.
func PublishersLT(v string) predicate.Book {
	return predicate.Book(sql.FieldLT(FieldPublishers, v))
}

// PublishersLTE applies the LTE predicate on the "publishers" field.
func PublishersLTE(v string) predicate.Book {
	return predicate.Book(sql.FieldLTE(FieldPublishers, v))
}

// PublishersContains applies the Contains predicate on the "publishers" field.
func PublishersContains(v string) predicate.Book {
	return predicate.Book(sql.FieldContains(FieldPublishers, v))
}

// PublishersHasPrefix applies the HasPrefix predicate on the "publishers" field.
func PublishersHasPrefix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasPrefix(FieldPublishers, v))
}

// PublishersHasSuffix applies the HasSuffix predicate on the "publishers" field.
func PublishersHasSuffix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasSuffix(FieldPublishers, v))
}

// PublishersIsNil applies the IsNil predicate on the "publishers" field.
func PublishersIsNil() predicate.Book {
	return predicate.Book(sql.FieldIsNull(FieldPublishers))
}

// PublishersNotNil applies the NotNil predicate on the "publishers" field.
func PublishersNotNil() predicate.Book {
	return predicate.Book(sql.FieldNotNull(FieldPublishers))
}

// PublishersEqualFold applies the EqualFold predicate on the "publishers" field.
func PublishersEqualFold(v string) predicate.Book {
	return predicate.Book(sql.FieldEqualFold(FieldPublishers, v))
}

// PublishersContainsFold applies the ContainsFold predicate on the "publishers" field.
func PublishersContainsFold(v string) predicate.Book {
	return predicate.Book(sql.FieldContainsFold(FieldPublishers, v))
}

// GenresEQ applies the EQ predicate on the "genres" field.
func GenresEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldGenres, v))
}

// GenresNEQ applies the NEQ predicate on the "genres" field.
func GenresNEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldGenres, v))
}

// GenresIn applies the In predicate on the "genres" field.
func GenresIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldIn(FieldGenres, vs...))
}

// GenresNotIn applies the NotIn predicate on the "genres" field.
func GenresNotIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldNotIn(FieldGenres, vs...))
}

// GenresGT applies the GT predicate on the "genres" field.
func GenresGT(v string) predicate.Book {
	return predicate.Book(sql.FieldGT(FieldGenres, v))
}

// GenresGTE applies the GTE predicate on the "genres" field.
func GenresGTE(v string) predicate.Book {
	return predicate.Book(sql.FieldGTE(FieldGenres, v))
}

// GenresLT applies the LT predicate on the "genres" field.
func GenresLT(v string) predicate.Book {
	return predicate.Book(sql.FieldLT(FieldGenres, v))
}

// GenresLTE applies the LTE predicate on the "genres" field.
func GenresLTE(v string) predicate.Book {
	return predicate.Book(sql.FieldLTE(FieldGenres, v))
}

// GenresContains applies the Contains predicate on the "genres" field.
func GenresContains(v string) predicate.Book {
	return predicate.Book(sql.FieldContains(FieldGenres, v))
}

// GenresHasPrefix applies the HasPrefix predicate on the "genres" field.
func GenresHasPrefix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasPrefix(FieldGenres, v))
}

// GenresHasSuffix applies the HasSuffix predicate on the "genres" field.
func GenresHasSuffix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasSuffix(FieldGenres, v))
}

// GenresIsNil applies the IsNil predicate on the "genres" field.
func GenresIsNil() predicate.Book {
	return predicate.Book(sql.FieldIsNull(FieldGenres))
}

// GenresNotNil applies the NotNil predicate on the "genres" field.
func GenresNotNil() predicate.Book {
	return predicate.Book(sql.FieldNotNull(FieldGenres))
}

// GenresEqualFold applies the EqualFold predicate on the "genres" field.
func GenresEqualFold(v string) predicate.Book {
	return predicate.Book(sql.FieldEqualFold(FieldGenres, v))
}

// GenresContainsFold applies the ContainsFold predicate on the "genres" field.
func GenresContainsFold(v string) predicate.Book {
	return predicate.Book(sql.FieldContainsFold(FieldGenres, v))
}

// PremieredEQ applies the EQ predicate on the "premiered" field.
func PremieredEQ(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldPremiered, v))
}

// PremieredNEQ applies the NEQ predicate on the "premiered" field.
func PremieredNEQ(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldPremiered, v))
}

// PremieredIn applies the In predicate on the "premiered" field.
func PremieredIn(vs ...time.Time) predicate.Book {
	return predicate.Book(sql.FieldIn(FieldPremiered, vs...))
}

// PremieredNotIn applies the NotIn predicate on the "premiered" field.
func PremieredNotIn(vs ...time.Time) predicate.Book {
	return predicate.Book(sql.FieldNotIn(FieldPremiered, vs...))
}

// PremieredGT applies the GT predicate on the "premiered" field.
func PremieredGT(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldGT(FieldPremiered, v))
}

// PremieredGTE applies the GTE predicate on the "premiered" field.
func PremieredGTE(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldGTE(FieldPremiered, v))
}

// PremieredLT applies the LT predicate on the "premiered" field.
func PremieredLT(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldLT(FieldPremiered, v))
}

// PremieredLTE applies the LTE predicate on the "premiered" field.
func PremieredLTE(v time.Time) predicate.Book {
	return predicate.Book(sql.FieldLTE(FieldPremiered, v))
}

// PremieredIsNil applies the IsNil predicate on the "premiered" field.
func PremieredIsNil() predicate.Book {
	return predicate.Book(sql.FieldIsNull(FieldPremiered))
}

// PremieredNotNil applies the NotNil predicate on the "premiered" field.
func PremieredNotNil() predicate.Book {
	return predicate.Book(sql.FieldNotNull(FieldPremiered))
}

// DraftEQ applies the EQ predicate on the "draft" field.
func DraftEQ(v bool) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldDraft, v))
}

// DraftNEQ applies the NEQ predicate on the "draft" field.
func DraftNEQ(v bool) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldDraft, v))
}

// AcceptedEQ applies the EQ predicate on the "accepted" field.
func AcceptedEQ(v bool) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldAccepted, v))
}

// AcceptedNEQ applies the NEQ predicate on the "accepted" field.
func AcceptedNEQ(v bool) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldAccepted, v))
}

// ContributorEQ applies the EQ predicate on the "contributor" field.
func ContributorEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldContributor, v))
}

// ContributorNEQ applies the NEQ predicate on the "contributor" field.
func ContributorNEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldContributor, v))
}

// ContributorIn applies the In predicate on the "contributor" field.
func ContributorIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldIn(FieldContributor, vs...))
}

// ContributorNotIn applies the NotIn predicate on the "contributor" field.
func ContributorNotIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldNotIn(FieldContributor, vs...))
}

// ContributorGT applies the GT predicate on the "contributor" field.
func ContributorGT(v string) predicate.Book {
	return predicate.Book(sql.FieldGT(FieldContributor, v))
}

// ContributorGTE applies the GTE predicate on the "contributor" field.
func ContributorGTE(v string) predicate.Book {
	return predicate.Book(sql.FieldGTE(FieldContributor, v))
}

// ContributorLT applies the LT predicate on the "contributor" field.
func ContributorLT(v string) predicate.Book {
	return predicate.Book(sql.FieldLT(FieldContributor, v))
}

// ContributorLTE applies the LTE predicate on the "contributor" field.
func ContributorLTE(v string) predicate.Book {
	return predicate.Book(sql.FieldLTE(FieldContributor, v))
}

// ContributorContains applies the Contains predicate on the "contributor" field.
func ContributorContains(v string) predicate.Book {
	return predicate.Book(sql.FieldContains(FieldContributor, v))
}

// ContributorHasPrefix applies the HasPrefix predicate on the "contributor" field.
func ContributorHasPrefix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasPrefix(FieldContributor, v))
}

// ContributorHasSuffix applies the HasSuffix predicate on the "contributor" field.
func ContributorHasSuffix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasSuffix(FieldContributor, v))
}

// ContributorIsNil applies the IsNil predicate on the "contributor" field.
func ContributorIsNil() predicate.Book {
	return predicate.Book(sql.FieldIsNull(FieldContributor))
}

// ContributorNotNil applies the NotNil predicate on the "contributor" field.
func ContributorNotNil() predicate.Book {
	return predicate.Book(sql.FieldNotNull(FieldContributor))
}

// ContributorEqualFold applies the EqualFold predicate on the "contributor" field.
func ContributorEqualFold(v string) predicate.Book {
	return predicate.Book(sql.FieldEqualFold(FieldContributor, v))
}

// ContributorContainsFold applies the ContainsFold predicate on the "contributor" field.
func ContributorContainsFold(v string) predicate.Book {
	return predicate.Book(sql.FieldContainsFold(FieldContributor, v))
}

// PagesEQ applies the EQ predicate on the "pages" field.
func PagesEQ(v int) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldPages, v))
}

// PagesNEQ applies the NEQ predicate on the "pages" field.
func PagesNEQ(v int) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldPages, v))
}

// PagesIn applies the In predicate on the "pages" field.
func PagesIn(vs ...int) predicate.Book {
	return predicate.Book(sql.FieldIn(FieldPages, vs...))
}

// PagesNotIn applies the NotIn predicate on the "pages" field.
func PagesNotIn(vs ...int) predicate.Book {
	return predicate.Book(sql.FieldNotIn(FieldPages, vs...))
}

// PagesGT applies the GT predicate on the "pages" field.
func PagesGT(v int) predicate.Book {
	return predicate.Book(sql.FieldGT(FieldPages, v))
}

// PagesGTE applies the GTE predicate on the "pages" field.
func PagesGTE(v int) predicate.Book {
	return predicate.Book(sql.FieldGTE(FieldPages, v))
}

// PagesLT applies the LT predicate on the "pages" field.
func PagesLT(v int) predicate.Book {
	return predicate.Book(sql.FieldLT(FieldPages, v))
}

// PagesLTE applies the LTE predicate on the "pages" field.
func PagesLTE(v int) predicate.Book {
	return predicate.Book(sql.FieldLTE(FieldPages, v))
}

// SeriesEQ applies the EQ predicate on the "series" field.
func SeriesEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldEQ(FieldSeries, v))
}

// SeriesNEQ applies the NEQ predicate on the "series" field.
func SeriesNEQ(v string) predicate.Book {
	return predicate.Book(sql.FieldNEQ(FieldSeries, v))
}

// SeriesIn applies the In predicate on the "series" field.
func SeriesIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldIn(FieldSeries, vs...))
}

// SeriesNotIn applies the NotIn predicate on the "series" field.
func SeriesNotIn(vs ...string) predicate.Book {
	return predicate.Book(sql.FieldNotIn(FieldSeries, vs...))
}

// SeriesGT applies the GT predicate on the "series" field.
func SeriesGT(v string) predicate.Book {
	return predicate.Book(sql.FieldGT(FieldSeries, v))
}

// SeriesGTE applies the GTE predicate on the "series" field.
func SeriesGTE(v string) predicate.Book {
	return predicate.Book(sql.FieldGTE(FieldSeries, v))
}

// SeriesLT applies the LT predicate on the "series" field.
func SeriesLT(v string) predicate.Book {
	return predicate.Book(sql.FieldLT(FieldSeries, v))
}

// SeriesLTE applies the LTE predicate on the "series" field.
func SeriesLTE(v string) predicate.Book {
	return predicate.Book(sql.FieldLTE(FieldSeries, v))
}

// SeriesContains applies the Contains predicate on the "series" field.
func SeriesContains(v string) predicate.Book {
	return predicate.Book(sql.FieldContains(FieldSeries, v))
}

// SeriesHasPrefix applies the HasPrefix predicate on the "series" field.
func SeriesHasPrefix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasPrefix(FieldSeries, v))
}

// SeriesHasSuffix applies the HasSuffix predicate on the "series" field.
func SeriesHasSuffix(v string) predicate.Book {
	return predicate.Book(sql.FieldHasSuffix(FieldSeries, v))
}

// SeriesIsNil applies the IsNil predicate on the "series" field.
func SeriesIsNil() predicate.Book {
	return predicate.Book(sql.FieldIsNull(FieldSeries))
}

// SeriesNotNil applies the NotNil predicate on the "series" field.
func SeriesNotNil() predicate.Book {
	return predicate.Book(sql.FieldNotNull(FieldSeries))
}

// SeriesEqualFold applies the EqualFold predicate on the "series" field.
func SeriesEqualFold(v string) predicate.Book {
	return predicate.Book(sql.FieldEqualFold(FieldSeries, v))
}

// SeriesContainsFold applies the ContainsFold predicate on the "series" field.
func SeriesContainsFold(v string) predicate.Book {
	return predicate.Book(sql.FieldContainsFold(FieldSeries, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Book) predicate.Book {
	return predicate.Book(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Book) predicate.Book {
	return predicate.Book(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Book) predicate.Book {
	return predicate.Book(sql.NotPredicates(p))
}
