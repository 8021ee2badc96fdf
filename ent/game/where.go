// Code generated by ent, DO NOT EDIT.

package game

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldID, id))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldDeletedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldUpdatedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldTitle, v))
}

// Slug applies equality check predicate on the "slug" field. It's identical to SlugEQ.
func Slug(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldSlug, v))
}

// Description applies equality check predicate on the "description" field. It's identical to DescriptionEQ.
func Description(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldDescription, v))
}

// CoverURL applies equality check predicate on the "cover_url" field. It's identical to CoverURLEQ.
func CoverURL(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldCoverURL, v))
}

// Authors applies equality check predicate on the "authors" field. It's identical to AuthorsEQ.
func Authors(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldAuthors, v))
}

// Publishers applies equality check predicate on the "publishers" field. It's identical to PublishersEQ.
func Publishers(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldPublishers, v))
}

// Genres applies equality check predicate on the "genres" field. It's identical to GenresEQ.
func Genres(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldGenres, v))
}

// Premiered applies equality check predicate on the "premiered" field. It's identical to PremieredEQ.
func Premiered(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldPremiered, v))
}

// Draft applies equality check predicate on the "draft" field. It's identical to DraftEQ.
func Draft(v bool) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldDraft, v))
}

// Accepted applies equality check predicate on the "accepted" field. It's identical to AcceptedEQ.
func Accepted(v bool) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldAccepted, v))
}

// Contributor applies equality check predicate on the "contributor" field. It's identical to ContributorEQ.
func Contributor(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldContributor, v))
}

// GameMode applies equality check predicate on the "game_mode" field. It's identical to GameModeEQ.
func GameMode(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldGameMode, v))
}

// Gears applies equality check predicate on the "gears" field. It's identical to GearsEQ.
func Gears(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldGears, v))
}

// CompleteTime applies equality check predicate on the "complete_time" field. It's identical to CompleteTimeEQ.
func CompleteTime(v int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldCompleteTime, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldDeletedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldTitle, v))
}

// SlugEQ applies the EQ predicate on the "slug" field.
func SlugEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldSlug, v))
}

// SlugNEQ applies the NEQ predicate on the "slug" field.
func SlugNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldSlug, v))
}

// SlugIn applies the In predicate on the "slug" field.
func SlugIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldSlug, vs...))
}

// SlugNotIn applies the NotIn predicate on the "slug" field.
func SlugNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldSlug, vs...))
}

// SlugGT applies the GT predicate on the "slug" field.
func SlugGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldSlug, v))
}

// SlugGTE applies the GTE predicate on the "slug" field.
func SlugGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldSlug, v))
}

// SlugLT applies the LT predicate on the "slug" field.
func SlugLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldSlug, v))
}

// SlugLTE applies the LTE predicate on the "slug" field.
func SlugLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldSlug, v))
}

// SlugContains applies the Contains predicate on the "slug" field.
func SlugContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldSlug, v))
}

// SlugHasPrefix applies the HasPrefix predicate on the "slug" field.
func SlugHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldSlug, v))
}

// SlugHasSuffix applies the HasSuffix predicate on the "slug" field.
func SlugHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldSlug, v))
}

// SlugEqualFold applies the EqualFold predicate on the "slug" field.
func SlugEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldSlug, v))
}

// SlugContainsFold applies the ContainsFold predicate on the "slug" field.
func SlugContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldSlug, v))
}

// DescriptionEQ applies the EQ predicate on the "description" field.
func DescriptionEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldDescription, v))
}

// DescriptionNEQ applies the NEQ predicate on the "description" field.
func DescriptionNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldDescription, v))
}

// DescriptionIn applies the In predicate on the "description" field.
func DescriptionIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldDescription, vs...))
}

// DescriptionNotIn applies the NotIn predicate on the "description" field.
func DescriptionNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldDescription, vs...))
}

// DescriptionGT applies the GT predicate on the "description" field.
func DescriptionGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldDescription, v))
}

// DescriptionGTE applies the GTE predicate on the "description" field.
func DescriptionGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldDescription, v))
}

// DescriptionLT applies the LT predicate on the "description" field.
func DescriptionLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldDescription, v))
}

// DescriptionLTE applies the LTE predicate on the "description" field.
func DescriptionLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldDescription, v))
}

// DescriptionContains applies the Contains predicate on the "description" field.
func DescriptionContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldDescription, v))
}

// DescriptionHasPrefix applies the HasPrefix predicate on the "description" field.
func DescriptionHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldDescription, v))
}

// DescriptionHasSuffix applies the HasSuffix predicate on the "description" field.
func DescriptionHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldDescription, v))
}

// DescriptionIsNil applies the IsNil predicate on the "description" field.
func DescriptionIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldDescription))
}

// DescriptionNotNil applies the NotNil predicate on the "description" field.
func DescriptionNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldDescription))
}

// DescriptionEqualFold applies the EqualFold predicate on the "description" field.
func DescriptionEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldDescription, v))
}

// DescriptionContainsFold applies the ContainsFold predicate on the "description" field.
func DescriptionContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldDescription, v))
}

// CoverURLEQ applies the EQ predicate on the "cover_url" field.
func CoverURLEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldCoverURL, v))
}

// CoverURLNEQ applies the NEQ predicate on the "cover_url" field.
func CoverURLNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldCoverURL, v))
}

// CoverURLIn applies the In predicate on the "cover_url" field.
func CoverURLIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldCoverURL, vs...))
}

// CoverURLNotIn applies the NotIn predicate on the "cover_url" field.
func CoverURLNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldCoverURL, vs...))
}

// CoverURLGT applies the GT predicate on the "cover_url" field.
func CoverURLGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldCoverURL, v))
}

// CoverURLGTE applies the GTE predicate on the "cover_url" field.
func CoverURLGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldCoverURL, v))
}

// CoverURLLT applies the LT predicate on the "cover_url" field.
func CoverURLLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldCoverURL, v))
}

// CoverURLLTE applies the LTE predicate on the "cover_url" field.
func CoverURLLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldCoverURL, v))
}

// CoverURLContains applies the Contains predicate on the "cover_url" field.
func CoverURLContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldCoverURL, v))
}

// CoverURLHasPrefix applies the HasPrefix predicate on the "cover_url" field.
func CoverURLHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldCoverURL, v))
}

// CoverURLHasSuffix applies the HasSuffix predicate on the "cover_url" field.
func CoverURLHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldCoverURL, v))
}

// CoverURLIsNil applies the IsNil predicate on the "cover_url" field.
func CoverURLIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldCoverURL))
}

// CoverURLNotNil applies the NotNil predicate on the "cover_url" field.
func CoverURLNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldCoverURL))
}

// CoverURLEqualFold applies the EqualFold predicate on the "cover_url" field.
func CoverURLEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldCoverURL, v))
}

// CoverURLContainsFold applies the ContainsFold predicate on the "cover_url" field.
func CoverURLContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldCoverURL, v))
}

// AuthorsEQ applies the EQ predicate on the "authors" field.
func AuthorsEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldAuthors, v))
}

// AuthorsNEQ applies the NEQ predicate on the "authors" field.
func AuthorsNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldAuthors, v))
}

// AuthorsIn applies the In predicate on the "authors" field.
func AuthorsIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldAuthors, vs...))
}

// AuthorsNotIn applies the NotIn predicate on the "authors" field.
func AuthorsNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldAuthors, vs...))
}

// AuthorsGT applies the GT predicate on the "authors" field.
func AuthorsGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldAuthors, v))
}

// AuthorsGTE applies the GTE predicate on the "authors" field.
func AuthorsGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldAuthors, v))
}

// AuthorsLT applies the LT predicate on the "authors" field.
func AuthorsLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldAuthors, v))
}

// AuthorsLTE applies the LTE predicate on the "authors" field.
func AuthorsLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldAuthors, v))
}

// AuthorsContains applies the Contains predicate on the "authors" field.
func AuthorsContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldAuthors, v))
}

// AuthorsHasPrefix applies the HasPrefix predicate on the "authors" field.
func AuthorsHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldAuthors, v))
}

// AuthorsHasSuffix applies the HasSuffix predicate on the "authors" field.
func AuthorsHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldAuthors, v))
}

// AuthorsIsNil applies the IsNil predicate on the "authors" field.
func AuthorsIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldAuthors))
}

// AuthorsNotNil applies the NotNil predicate on the "authors" field.
func AuthorsNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldAuthors))
}

// AuthorsEqualFold applies the EqualFold predicate on the "authors" field.
func AuthorsEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldAuthors, v))
}

// AuthorsContainsFold applies the ContainsFold predicate on the "authors" field.
func AuthorsContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldAuthors, v))
}

// PublishersEQ applies the EQ predicate on the "publishers" field.
func PublishersEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldPublishers, v))
}

// PublishersNEQ applies the NEQ predicate on the "publishers" field.
func PublishersNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldPublishers, v))
}

// PublishersIn applies the In predicate on the "publishers" field.
func PublishersIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldPublishers, vs...))
}

// PublishersNotIn applies the NotIn predicate on the "publishers" field.
func PublishersNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldPublishers, vs...))
}

// PublishersGT applies the GT predicate on the "publishers" field.
func PublishersGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldPublishers, v))
}

// PublishersGTE applies the GTE predicate on the "publishers" field.
func PublishersGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldPublishers, v))
}

// PublishersLT applies the LT predicate on the "publishers" field.
func PublishersLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldPublishers, v))
}

// PublishersLTE applies the LTE predicate on the "publishers" field.
func PublishersLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldPublishers, v))
}

// PublishersContains applies the Contains predicate on the "publishers" field.
func PublishersContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldPublishers, v))
}

// PublishersHasPrefix applies the HasPrefix predicate on the "publishers" field.
func PublishersHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldPublishers, v))
}

// PublishersHasSuffix applies the HasSuffix predicate on the "publishers" field.
func PublishersHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldPublishers, v))
}

// PublishersIsNil applies the IsNil predicate on the "publishers" field.
func PublishersIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldPublishers))
}

// PublishersNotNil applies the NotNil predicate on the "publishers" field.
func PublishersNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldPublishers))
}

// PublishersEqualFold applies the EqualFold predicate on the "publishers" field.
func PublishersEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldPublishers, v))
}

// PublishersContainsFold applies the ContainsFold predicate on the "publishers" field.
func PublishersContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldPublishers, v))
}

// GenresEQ applies the EQ predicate on the "genres" field.
func GenresEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldGenres, v))
}

// GenresNEQ applies the NEQ predicate on the "genres" field.
func GenresNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldGenres, v))
}

// GenresIn applies the In predicate on the "genres" field.
func GenresIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldGenres, vs...))
}

// GenresNotIn applies the NotIn predicate on the "genres" field.
func GenresNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldGenres, vs...))
}

// GenresGT applies the GT predicate on the "genres" field.
func GenresGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldGenres, v))
}

// GenresGTE applies the GTE predicate on the "genres" field.
func GenresGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldGenres, v))
}

// GenresLT applies the LT predicate on the "genres" field.
func GenresLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldGenres, v))
}

// GenresLTE applies the LTE predicate on the "genres" field.
func GenresLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldGenres, v))
}

// GenresContains applies the Contains predicate on the "genres" field.
func GenresContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldGenres, v))
}

// GenresHasPrefix applies the HasPrefix predicate on the "genres" field.
func GenresHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldGenres, v))
}

// GenresHasSuffix applies the HasSuffix predicate on the "genres" field.
func GenresHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldGenres, v))
}

// GenresIsNil applies the IsNil predicate on the "genres" field.
func GenresIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldGenres))
}

// GenresNotNil applies the NotNil predicate on the "genres" field.
func GenresNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldGenres))
}

// GenresEqualFold applies the EqualFold predicate on the "genres" field.
func GenresEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldGenres, v))
}

// GenresContainsFold applies the ContainsFold predicate on the "genres" field.
func GenresContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldGenres, v))
}

// PremieredEQ applies the EQ predicate on the "premiered" field.
func PremieredEQ(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldPremiered, v))
}

// PremieredNEQ applies the NEQ predicate on the "premiered" field.
func PremieredNEQ(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldPremiered, v))
}

// PremieredIn applies the In predicate on the "premiered" field.
func PremieredIn(vs ...time.Time) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldPremiered, vs...))
}

// PremieredNotIn applies the NotIn predicate on the "premiered" field.
func PremieredNotIn(vs ...time.Time) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldPremiered, vs...))
}

// PremieredGT applies the GT predicate on the "premiered" field.
func PremieredGT(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldPremiered, v))
}

// PremieredGTE applies the GTE predicate on the "premiered" field.
func PremieredGTE(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldPremiered, v))
}

// PremieredLT applies the LT predicate on the "premiered" field.
func PremieredLT(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldPremiered, v))
}

// PremieredLTE applies the LTE predicate on the "premiered" field.
func PremieredLTE(v time.Time) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldPremiered, v))
}

// PremieredIsNil applies the IsNil predicate on the "premiered" field.
func PremieredIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldPremiered))
}

// PremieredNotNil applies the NotNil predicate on the "premiered" field.
func PremieredNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldPremiered))
}

// DraftEQ applies the EQ predicate on the "draft" field.
func DraftEQ(v bool) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldDraft, v))
}

// DraftNEQ applies the NEQ predicate on the "draft" field.
func DraftNEQ(v bool) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldDraft, v))
}

// AcceptedEQ applies the EQ predicate on the "accepted" field.
func AcceptedEQ(v bool) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldAccepted, v))
}

// AcceptedNEQ applies the NEQ predicate on the "accepted" field.
func AcceptedNEQ(v bool) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldAccepted, v))
}

// ContributorEQ applies the EQ predicate on the "contributor" field.
func ContributorEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldContributor, v))
}

// ContributorNEQ applies the NEQ predicate on the "contributor" field.
func ContributorNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldContributor, v))
}

// ContributorIn applies the In predicate on the "contributor" field.
func ContributorIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldContributor, vs...))
}

// ContributorNotIn applies the NotIn predicate on the "contributor" field.
func ContributorNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldContributor, vs...))
}

// ContributorGT applies the GT predicate on the "contributor" field.
func ContributorGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldContributor, v))
}

// ContributorGTE applies the GTE predicate on the "contributor" field.
func ContributorGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldContributor, v))
}

// ContributorLT applies the LT predicate on the "contributor" field.
func ContributorLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldContributor, v))
}

// ContributorLTE applies the LTE predicate on the "contributor" field.
func ContributorLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldContributor, v))
}

// ContributorContains applies the Contains predicate on the "contributor" field.
func ContributorContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldContributor, v))
}

// ContributorHasPrefix applies the HasPrefix predicate on the "contributor" field.
func ContributorHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldContributor, v))
}

// ContributorHasSuffix applies the HasSuffix predicate on the "contributor" field.
func ContributorHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldContributor, v))
}

// ContributorIsNil applies the IsNil predicate on the "contributor" field.
func ContributorIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldContributor))
}

// ContributorNotNil applies the NotNil predicate on the "contributor" field.
func ContributorNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldContributor))
}

// ContributorEqualFold applies the EqualFold predicate on the "contributor" field.
func ContributorEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldContributor, v))
}

// ContributorContainsFold applies the ContainsFold predicate on the "contributor" field.
func ContributorContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldContributor, v))
}

// GameModeEQ applies the EQ predicate on the "game_mode" field.
func GameModeEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldGameMode, v))
}

// GameModeNEQ applies the NEQ predicate on the "game_mode" field.
func GameModeNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldGameMode, v))
}

// GameModeIn applies the In predicate on the "game_mode" field.
func GameModeIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldGameMode, vs...))
}

// GameModeNotIn applies the NotIn predicate on the "game_mode" field.
func GameModeNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldGameMode, vs...))
}

// GameModeGT applies the GT predicate on the "game_mode" field.
func GameModeGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldGameMode, v))
}

// GameModeGTE applies the GTE predicate on the "game_mode" field.
func GameModeGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldGameMode, v))
}

// GameModeLT applies the LT predicate on the "game_mode" field.
func GameModeLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldGameMode, v))
}

// GameModeLTE applies the LTE predicate on the "game_mode" field.
func GameModeLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldGameMode, v))
}

// GameModeContains applies the Contains predicate on the "game_mode" field.
func GameModeContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldGameMode, v))
}

// GameModeHasPrefix applies the HasPrefix predicate on the "game_mode" field.
func GameModeHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldGameMode, v))
}

// GameModeHasSuffix applies the HasSuffix predicate on the "game_mode" field.
func GameModeHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldGameMode, v))
}

// GameModeIsNil applies the IsNil predicate on the "game_mode" field.
func GameModeIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldGameMode))
}

// GameModeNotNil applies the NotNil predicate on the "game_mode" field.
func GameModeNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldGameMode))
}

// GameModeEqualFold applies the EqualFold predicate on the "game_mode" field.
func GameModeEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldGameMode, v))
}

// GameModeContainsFold applies the ContainsFold predicate on the "game_mode" field.
func GameModeContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldGameMode, v))
}

// GearsEQ applies the EQ predicate on the "gears" field.
func GearsEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldGears, v))
}

// GearsNEQ applies the NEQ predicate on the "gears" field.
func GearsNEQ(v string) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldGears, v))
}

// GearsIn applies the In predicate on the "gears" field.
func GearsIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldGears, vs...))
}

// GearsNotIn applies the NotIn predicate on the "gears" field.
func GearsNotIn(vs ...string) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldGears, vs...))
}

// GearsGT applies the GT predicate on the "gears" field.
func GearsGT(v string) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldGears, v))
}

// GearsGTE applies the GTE predicate on the "gears" field.
func GearsGTE(v string) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldGears, v))
}

// GearsLT applies the LT predicate on the "gears" field.
func GearsLT(v string) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldGears, v))
}

// GearsLTE applies the LTE predicate on the "gears" field.
func GearsLTE(v string) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldGears, v))
}

// GearsContains applies the Contains predicate on the "gears" field.
func GearsContains(v string) predicate.Game {
	return predicate.Game(sql.FieldContains(FieldGears, v))
}

// GearsHasPrefix applies the HasPrefix predicate on the "gears" field.
func GearsHasPrefix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasPrefix(FieldGears, v))
}

// GearsHasSuffix applies the HasSuffix predicate on the "gears" field.
func GearsHasSuffix(v string) predicate.Game {
	return predicate.Game(sql.FieldHasSuffix(FieldGears, v))
}

// GearsIsNil applies the IsNil predicate on the "gears" field.
func GearsIsNil() predicate.Game {
	return predicate.Game(sql.FieldIsNull(FieldGears))
}

// GearsNotNil applies the NotNil predicate on the "gears" field.
func GearsNotNil() predicate.Game {
	return predicate.Game(sql.FieldNotNull(FieldGears))
}

// GearsEqualFold applies the EqualFold predicate on the "gears" field.
func GearsEqualFold(v string) predicate.Game {
	return predicate.Game(sql.FieldEqualFold(FieldGears, v))
}

// GearsContainsFold applies the ContainsFold predicate on the "gears" field.
func GearsContainsFold(v string) predicate.Game {
	return predicate.Game(sql.FieldContainsFold(FieldGears, v))
}

// CompleteTimeEQ applies the EQ predicate on the "complete_time" field.
func CompleteTimeEQ(v int) predicate.Game {
	return predicate.Game(sql.FieldEQ(FieldCompleteTime, v))
}

// CompleteTimeNEQ applies the NEQ predicate on the "complete_time" field.
func CompleteTimeNEQ(v int) predicate.Game {
	return predicate.Game(sql.FieldNEQ(FieldCompleteTime, v))
}

// CompleteTimeIn applies the In predicate on the "complete_time" field.
func CompleteTimeIn(vs ...int) predicate.Game {
	return predicate.Game(sql.FieldIn(FieldCompleteTime, vs...))
}

// CompleteTimeNotIn applies the NotIn predicate on the "complete_time" field.
func CompleteTimeNotIn(vs ...int) predicate.Game {
	return predicate.Game(sql.FieldNotIn(FieldCompleteTime, vs...))
}

// CompleteTimeGT applies the GT predicate on the "complete_time" field.
func CompleteTimeGT(v int) predicate.Game {
	return predicate.Game(sql.FieldGT(FieldCompleteTime, v))
}

// CompleteTimeGTE applies the GTE predicate on the "complete_time" field.
func CompleteTimeGTE(v int) predicate.Game {
	return predicate.Game(sql.FieldGTE(FieldCompleteTime, v))
}

// CompleteTimeLT applies the LT predicate on the "complete_time" field.
func CompleteTimeLT(v int) predicate.Game {
	return predicate.Game(sql.FieldLT(FieldCompleteTime, v))
}

// CompleteTimeLTE applies the LTE predicate on the "complete_time" field.
func CompleteTimeLTE(v int) predicate.Game {
	return predicate.Game(sql.FieldLTE(FieldCompleteTime, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Game) predicate.Game {
	return predicate.Game(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Game) predicate.Game {
	return predicate.Game(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Game) predicate.Game {
	return predicate.Game(sql.NotPredicates(p))
}
