// Code generated by ent, DO NOT EDIT.

package manga

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldID, id))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldUpdatedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldTitle, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldSlug, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldDescription, v))
}

// CoverURL applies equality check predicate on the "cover_url" field. It's identical to CoverURLEQ.
func CoverURL(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldCoverURL, v))
}

// Authors applies equality check predicate on the "authors" field. It's identical to AuthorsEQ.
func Authors(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldAuthors, v))
}

// Publishers applies equality check predicate on the "publishers" field. It's identical to PublishersEQ.
func Publishers(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldPublishers, v))
}

// Genres applies equality check predicate on the "genres" field. It's identical to GenresEQ.
func Genres(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldGenres, v))
}

// Premiered applies equality check predicate on the "premiered" field. It's identical to PremieredEQ.
func Premiered(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldPremiered, v))
}

// Draft applies equality check predicate on the "draft" field. It's identical to DraftEQ.
func Draft(v bool) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldDraft, v))
}

// Accepted applies equality check predicate on the "accepted" field. It's identical to AcceptedEQ.
func Accepted(v bool) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldAccepted, v))
}

// Contributor applies equality check predicate on the "contributor" field. It's identical to ContributorEQ.
func Contributor(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldContributor, v))
}

// Volumes applies equality check predicate on the "volumes" field. It's identical to VolumesEQ.
func Volumes(v int) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldVolumes, v))
}

// Chapters applies equality check predicate on the "chapters" field. It's identical to ChaptersEQ.
func Chapters(v int) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldChapters, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldFinishedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Manga {
	return predicate.Manga(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Manga {
	return predicate.Manga(sql.FieldNotNull(FieldDeletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContainsFold(FieldTitle, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContainsFold(FieldSlug, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Manga {
	return predicate.Manga(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Manga {
	return predicate.Manga(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContainsFold(FieldDescription, v))
}

// CoverURLEQ applies the EQ predicate on the "cover_url" field.
func CoverURLEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldCoverURL, v))
}

// CoverURLNEQ applies the NEQ predicate on the "cover_url" field.
func CoverURLNEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldCoverURL, v))
}

// CoverURLIn applies the In predicate on the "cover_url" field.
func CoverURLIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldCoverURL, vs...))
}

// CoverURLNotIn applies the NotIn predicate on the "cover_url" field.
func CoverURLNotIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldCoverURL, vs...))
}

// CoverURLGT applies the GT predicate on the "cover_url" field.
func CoverURLGT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldCoverURL, v))
}

// CoverURLGTE applies the GTE predicate on the "cover_url" field.
func CoverURLGTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldCoverURL, v))
}

// CoverURLLT applies the LT predicate on the "cover_url" field.
func CoverURLLT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldCoverURL, v))
}

// CoverURLLTE applies the LTE predicate on the "cover_url" field.
func CoverURLLTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldCoverURL, v))
}

// CoverURLContains applies the Contains predicate on the "cover_url" field.
func CoverURLContains(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContains(FieldCoverURL, v))
}

// CoverURLHasPrefix applies the HasPrefix predicate on the "cover_url" field.
func CoverURLHasPrefix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasPrefix(FieldCoverURL, v))
}

// CoverURLHasSuffix applies the HasSuffix predicate on the "cover_url" field.
func CoverURLHasSuffix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasSuffix(FieldCoverURL, v))
}

// CoverURLIsNil applies the IsNil predicate on the "cover_url" field.
func CoverURLIsNil() predicate.Manga {
	return predicate.Manga(sql.FieldIsNull(FieldCoverURL))
}

// CoverURLNotNil applies the NotNil predicate on the "cover_url" field.
func CoverURLNotNil() predicate.Manga {
	return predicate.Manga(sql.FieldNotNull(FieldCoverURL))
}

// CoverURLEqualFold applies the EqualFold predicate on the "cover_url" field.
func CoverURLEqualFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEqualFold(FieldCoverURL, v))
}

// CoverURLContainsFold applies the ContainsFold predicate on the "cover_url" field.
func CoverURLContainsFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContainsFold(FieldCoverURL, v))
}

// AuthorsEQ applies the EQ predicate on the "authors" field.
func AuthorsEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldAuthors, v))
}

// AuthorsNEQ applies the NEQ predicate on the "authors" field.
func AuthorsNEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldAuthors, v))
}

// AuthorsIn applies the In predicate on the "authors" field.
func AuthorsIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldAuthors, vs...))
}

// AuthorsNotIn applies the NotIn predicate on the "authors" field.
func AuthorsNotIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldAuthors, vs...))
}

// AuthorsGT applies the GT predicate on the "authors" field.
func AuthorsGT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldAuthors, v))
}

// AuthorsGTE applies the GTE predicate on the "authors" field.
func AuthorsGTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldAuthors, v))
}

// AuthorsLT applies the LT predicate on the "authors" field.
func AuthorsLT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldAuthors, v))
}

// AuthorsLTE applies the LTE predicate on the "authors" field.
func AuthorsLTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldAuthors, v))
}

// AuthorsContains applies the Contains predicate on the "authors" field.
func AuthorsContains(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContains(FieldAuthors, v))
}

// AuthorsHasPrefix applies the HasPrefix predicate on the "authors" field.
func AuthorsHasPrefix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasPrefix(FieldAuthors, v))
}

// AuthorsHasSuffix applies the HasSuffix predicate on the "authors" field.
func AuthorsHasSuffix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasSuffix(FieldAuthors, v))
}

// AuthorsIsNil applies the IsNil predicate on the "authors" field.
func AuthorsIsNil() predicate.Manga {
	return predicate.Manga(sql.FieldIsNull(FieldAuthors))
}

// AuthorsNotNil applies the NotNil predicate on the "authors" field.
func AuthorsNotNil() predicate.Manga {
	return predicate.Manga(sql.FieldNotNull(FieldAuthors))
}

// AuthorsEqualFold applies the EqualFold predicate on the "authors" field.
func AuthorsEqualFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEqualFold(FieldAuthors, v))
}

// AuthorsContainsFold applies the ContainsFold predicate on the "authors" field.
func AuthorsContainsFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContainsFold(FieldAuthors, v))
}

// PublishersEQ applies the EQ predicate on the "publishers" field.
func PublishersEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldPublishers, v))
}

// PublishersNEQ applies the NEQ predicate on the "publishers" field.
func PublishersNEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldPublishers, v))
}

// PublishersIn applies the In predicate on the "publishers" field.
func PublishersIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldPublishers, vs...))
}

// PublishersNotIn applies the NotIn predicate on the "publishers" field.
func PublishersNotIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldPublishers, vs...))
}

// PublishersGT applies the GT predicate on the "publishers" field.
func PublishersGT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldPublishers, v))
}

// PublishersGTE applies the GTE predicate on the "publishers" field.
func PublishersGTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldPublishers, v))
}

// PublishersLT applies the LT predicate on the "publishers" field.
func PublishersLT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldPublishers, v))
}

// PublishersLTE applies the LTE predicate on the "publishers" field.
func PublishersLTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldPublishers, v))
}

// PublishersContains applies the Contains predicate on the "publishers" field.
func PublishersContains(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContains(FieldPublishers, v))
}

// PublishersHasPrefix applies the HasPrefix predicate on the "publishers" field.
func PublishersHasPrefix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasPrefix(FieldPublishers, v))
}

// PublishersHasSuffix applies the HasSuffix predicate on the "publishers" field.
func PublishersHasSuffix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasSuffix(FieldPublishers, v))
}

// PublishersIsNil applies the IsNil predicate on the "publishers" field.
func PublishersIsNil() predicate.Manga {
	return predicate.Manga(sql.FieldIsNull(FieldPublishers))
}

// PublishersNotNil applies the NotNil predicate on the "publishers" field.
func PublishersNotNil() predicate.Manga {
	return predicate.Manga(sql.FieldNotNull(FieldPublishers))
}

// PublishersEqualFold applies the EqualFold predicate on the "publishers" field.
func PublishersEqualFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEqualFold(FieldPublishers, v))
}

// PublishersContainsFold applies the ContainsFold predicate on the "publishers" field.
func PublishersContainsFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContainsFold(FieldPublishers, v))
}

// GenresEQ applies the EQ predicate on the "genres" field.
func GenresEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldGenres, v))
}

// GenresNEQ applies the NEQ predicate on the "genres" field.
func GenresNEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldGenres, v))
}

// GenresIn applies the In predicate on the "genres" field.
func GenresIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldGenres, vs...))
}

// GenresNotIn applies the NotIn predicate on the "genres" field.
func GenresNotIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldGenres, vs...))
}

// GenresGT applies the GT predicate on the "genres" field.
func GenresGT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldGenres, v))
}

// GenresGTE applies the GTE predicate on the "genres" field.
func GenresGTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldGenres, v))
}

// GenresLT applies the LT predicate on the "genres" field.
func GenresLT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldGenres, v))
}

// GenresLTE applies the LTE predicate on the "genres" field.
func GenresLTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldGenres, v))
}

// GenresContains applies the Contains predicate on the "genres" field.
func GenresContains(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContains(FieldGenres, v))
}

// GenresHasPrefix applies the HasPrefix predicate on the "genres" field.
func GenresHasPrefix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasPrefix(FieldGenres, v))
}

// GenresHasSuffix applies the HasSuffix predicate on the "genres" field.
func GenresHasSuffix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasSuffix(FieldGenres, v))
}

// GenresIsNil applies the IsNil predicate on the "genres" field.
func GenresIsNil() predicate.Manga {
	return predicate.Manga(sql.FieldIsNull(FieldGenres))
}

// GenresNotNil applies the NotNil predicate on the "genres" field.
func GenresNotNil() predicate.Manga {
	return predicate.Manga(sql.FieldNotNull(FieldGenres))
}

// GenresEqualFold applies the EqualFold predicate on the "genres" field.
func GenresEqualFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEqualFold(FieldGenres, v))
}

// GenresContainsFold applies the ContainsFold predicate on the "genres" field.
func GenresContainsFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContainsFold(FieldGenres, v))
}

// PremieredEQ applies the EQ predicate on the "premiered" field.
func PremieredEQ(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldPremiered, v))
}

// PremieredNEQ applies the NEQ predicate on the "premiered" field.
func PremieredNEQ(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldPremiered, v))
}

// PremieredIn applies the In predicate on the "premiered" field.
func PremieredIn(vs ...time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldPremiered, vs...))
}

// PremieredNotIn applies the NotIn predicate on the "premiered" field.
func PremieredNotIn(vs ...time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldPremiered, vs...))
}

// PremieredGT applies the GT predicate on the "premiered" field.
func PremieredGT(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldPremiered, v))
}

// PremieredGTE applies the GTE predicate on the "premiered" field.
func PremieredGTE(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldPremiered, v))
}

// PremieredLT applies the LT predicate on the "premiered" field.
func PremieredLT(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldPremiered, v))
}

// PremieredLTE applies the LTE predicate on the "premiered" field.
func PremieredLTE(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldPremiered, v))
}

// PremieredIsNil applies the IsNil predicate on the "premiered" field.
func PremieredIsNil() predicate.Manga {
	return predicate.Manga(sql.FieldIsNull(FieldPremiered))
}

// PremieredNotNil applies the NotNil predicate on the "premiered" field.
func PremieredNotNil() predicate.Manga {
	return predicate.Manga(sql.FieldNotNull(FieldPremiered))
}

// DraftEQ applies the EQ predicate on the "draft" field.
func DraftEQ(v bool) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldDraft, v))
}

// DraftNEQ applies the NEQ predicate on the "draft" field.
func DraftNEQ(v bool) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldDraft, v))
}

// AcceptedEQ applies the EQ predicate on the "accepted" field.
func AcceptedEQ(v bool) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldAccepted, v))
}

// AcceptedNEQ applies the NEQ predicate on the "accepted" field.
func AcceptedNEQ(v bool) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldAccepted, v))
}

// ContributorEQ applies the EQ predicate on the "contributor" field.
func ContributorEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldContributor, v))
}

// ContributorNEQ applies the NEQ predicate on the "contributor" field.
func ContributorNEQ(v string) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldContributor, v))
}

// ContributorIn applies the In predicate on the "contributor" field.
func ContributorIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldContributor, vs...))
}

// ContributorNotIn applies the NotIn predicate on the "contributor" field.
func ContributorNotIn(vs ...string) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldContributor, vs...))
}

// ContributorGT applies the GT predicate on the "contributor" field.
func ContributorGT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldContributor, v))
}

// ContributorGTE applies the GTE predicate on the "contributor" field.
func ContributorGTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldContributor, v))
}

// ContributorLT applies the LT predicate on the "contributor" field.
func ContributorLT(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldContributor, v))
}

// ContributorLTE applies the LTE predicate on the "contributor" field.
func ContributorLTE(v string) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldContributor, v))
}

// ContributorContains applies the Contains predicate on the "contributor" field.
func ContributorContains(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContains(FieldContributor, v))
}

// ContributorHasPrefix applies the HasPrefix predicate on the "contributor" field.
func ContributorHasPrefix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasPrefix(FieldContributor, v))
}

// ContributorHasSuffix applies the HasSuffix predicate on the "contributor" field.
func ContributorHasSuffix(v string) predicate.Manga {
	return predicate.Manga(sql.FieldHasSuffix(FieldContributor, v))
}

// ContributorIsNil applies the IsNil predicate on the "contributor" field.
func ContributorIsNil() predicate.Manga {
	return predicate.Manga(sql.FieldIsNull(FieldContributor))
}

// ContributorNotNil applies the NotNil predicate on the "contributor" field.
func ContributorNotNil() predicate.Manga {
	return predicate.Manga(sql.FieldNotNull(FieldContributor))
}

// ContributorEqualFold applies the EqualFold predicate on the "contributor" field.
func ContributorEqualFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldEqualFold(FieldContributor, v))
}

// ContributorContainsFold applies the ContainsFold predicate on the "contributor" field.
func ContributorContainsFold(v string) predicate.Manga {
	return predicate.Manga(sql.FieldContainsFold(FieldContributor, v))
}

// VolumesEQ applies the EQ predicate on the "volumes" field.
func VolumesEQ(v int) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldVolumes, v))
}

// VolumesNEQ applies the NEQ predicate on the "volumes" field.
func VolumesNEQ(v int) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldVolumes, v))
}

// VolumesIn applies the In predicate on the "volumes" field.
func VolumesIn(vs ...int) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldVolumes, vs...))
}

// VolumesNotIn applies the NotIn predicate on the "volumes" field.
func VolumesNotIn(vs ...int) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldVolumes, vs...))
}

// VolumesGT applies the GT predicate on the "volumes" field.
func VolumesGT(v int) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldVolumes, v))
}

// VolumesGTE applies the GTE predicate on the "volumes" field.
func VolumesGTE(v int) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldVolumes, v))
}

// VolumesLT applies the LT predicate on the "volumes" field.
func VolumesLT(v int) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldVolumes, v))
}

// VolumesLTE applies the LTE predicate on the "volumes" field.
func VolumesLTE(v int) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldVolumes, v))
}

// ChaptersEQ applies the EQ predicate on the "chapters" field.
func ChaptersEQ(v int) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldChapters, v))
}

// ChaptersNEQ applies the NEQ predicate on the "chapters" field.
func ChaptersNEQ(v int) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldChapters, v))
}

// ChaptersIn applies the In predicate on the "chapters" field.
func ChaptersIn(vs ...int) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldChapters, vs...))
}

// ChaptersNotIn applies the NotIn predicate on the "chapters" field.
func ChaptersNotIn(vs ...int) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldChapters, vs...))
}

// ChaptersGT applies the GT predicate on the "chapters" field.
func ChaptersGT(v int) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldChapters, v))
}

// ChaptersGTE applies the GTE predicate on the "chapters" field.
func ChaptersGTE(v int) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldChapters, v))
}

// ChaptersLT applies the LT predicate on the "chapters" field.
func ChaptersLT(v int) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldChapters, v))
}

// ChaptersLTE applies the LTE predicate on the "chapters" field.
func ChaptersLTE(v int) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldChapters, v))
}

// TypeEQ applies the EQ predicate on the "type" field.
func TypeEQ(v Type) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldType, v))
}

// TypeNEQ applies the NEQ predicate on the "type" field.
func TypeNEQ(v Type) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldType, v))
}

// TypeIn applies the In predicate on the "type" field.
func TypeIn(vs ...Type) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldType, vs...))
}

// TypeNotIn applies the NotIn predicate on the "type" field.
func TypeNotIn(vs ...Type) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldType, vs...))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.Manga {
	return predicate.Manga(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.Manga {
	return predicate.Manga(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.Manga {
	return predicate.Manga(sql.FieldNotNull(FieldFinishedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Manga) predicate.Manga {
	return predicate.Manga(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Manga) predicate.Manga {
	return predicate.Manga(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Manga) predicate.Manga {
	return predicate.Manga(sql.NotPredicates(p))
}
