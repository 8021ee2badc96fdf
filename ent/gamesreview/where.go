// Code generated by ent, DO NOT EDIT.

package gamesreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldUpdatedAt, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldUsername, v))
}

// ArticleID applies equality check predicate on the "article_id" field. It's identical to ArticleIDEQ.
func ArticleID(v uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldArticleID, v))
}

// Review applies equality check predicate on the "review" field. It's identical to ReviewEQ.
func Review(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldReview, v))
}

// ReviewHTML applies equality check predicate on the "review_html" field. It's identical to ReviewHTMLEQ.
func ReviewHTML(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldReviewHTML, v))
}

// Overall applies equality check predicate on the "overall" field. It's identical to OverallEQ.
func Overall(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldOverall, v))
}

// Art applies equality check predicate on the "art" field. It's identical to ArtEQ.
func Art(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldArt, v))
}

// Characters applies equality check predicate on the "characters" field. It's identical to CharactersEQ.
func Characters(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldCharacters, v))
}

// Story applies equality check predicate on the "story" field. It's identical to StoryEQ.
func Story(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldStory, v))
}

// Enjoyment applies equality check predicate on the "enjoyment" field. It's identical to EnjoymentEQ.
func Enjoyment(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldEnjoyment, v))
}

// Graphics applies equality check predicate on the "graphics" field. It's identical to GraphicsEQ.
func Graphics(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldGraphics, v))
}

// Music applies equality check predicate on the "music" field. It's identical to MusicEQ.
func Music(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldMusic, v))
}

// Voicing applies equality check predicate on the "voicing" field. It's identical to VoicingEQ.
func Voicing(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldVoicing, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLTE(FieldUpdatedAt, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldContainsFold(FieldUsername, v))
}

// ArticleIDEQ applies the EQ predicate on the "article_id" field.
func ArticleIDEQ(v uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldArticleID, v))
}

// ArticleIDNEQ applies the NEQ predicate on the "article_id" field.
func ArticleIDNEQ(v uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNEQ(FieldArticleID, v))
}

// ArticleIDIn applies the In predicate on the "article_id" field.
func ArticleIDIn(vs ...uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIn(FieldArticleID, vs...))
}

// ArticleIDNotIn applies the NotIn predicate on the "article_id" field.
func ArticleIDNotIn(vs ...uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotIn(FieldArticleID, vs...))
}

// ArticleIDGT applies the GT predicate on the "article_id" field.
func ArticleIDGT(v uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGT(FieldArticleID, v))
}

// ArticleIDGTE applies the GTE predicate on the "article_id" field.
func ArticleIDGTE(v uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGTE(FieldArticleID, v))
}

// ArticleIDLT applies the LT predicate on the "article_id" field.
func ArticleIDLT(v uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLT(FieldArticleID, v))
}

// ArticleIDLTE applies the LTE predicate on the "article_id" field.
func ArticleIDLTE(v uint) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLTE(FieldArticleID, v))
}

// ReviewEQ applies the EQ predicate on the "review" field.
func ReviewEQ(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldReview, v))
}

// ReviewNEQ applies the NEQ predicate on the "review" field.
func ReviewNEQ(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNEQ(FieldReview, v))
}

// ReviewIn applies the In predicate on the "review" field.
func ReviewIn(vs ...string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIn(FieldReview, vs...))
}

// ReviewNotIn applies the NotIn predicate on the "review" field.
func ReviewNotIn(vs ...string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotIn(FieldReview, vs...))
}

// ReviewGT applies the GT predicate on the "review" field.
func ReviewGT(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGT(FieldReview, v))
}

// ReviewGTE applies the GTE predicate on the "review" field.
func ReviewGTE(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGTE(FieldReview, v))
}

// ReviewLT applies the LT predicate on the "review" field.
func ReviewLT(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLT(FieldReview, v))
}

// ReviewLTE applies the LTE predicate on the "review" field.
func ReviewLTE(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLTE(FieldReview, v))
}

// ReviewContains applies the Contains predicate on the "review" field.
func ReviewContains(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldContains(FieldReview, v))
}

// ReviewHasPrefix applies the HasPrefix predicate on the "review" field.
func ReviewHasPrefix(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldHasPrefix(FieldReview, v))
}

// ReviewHasSuffix applies the HasSuffix predicate on the "review" field.
func ReviewHasSuffix(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldHasSuffix(FieldReview, v))
}

// ReviewEqualFold applies the EqualFold predicate on the "review" field.
func ReviewEqualFold(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEqualFold(FieldReview, v))
}

// ReviewContainsFold applies the ContainsFold predicate on the "review" field.
func ReviewContainsFold(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldContainsFold(FieldReview, v))
}

// ReviewHTMLEQ applies the EQ predicate on the "review_html" field.
func ReviewHTMLEQ(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldReviewHTML, v))
}

// ReviewHTMLNEQ applies the NEQ predicate on the "review_html" field.
func ReviewHTMLNEQ(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNEQ(FieldReviewHTML, v))
}

// ReviewHTMLIn applies the In predicate on the "review_html" field.
func ReviewHTMLIn(vs ...string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIn(FieldReviewHTML, vs...))
}

// ReviewHTMLNotIn applies the NotIn predicate on the "review_html" field.
func ReviewHTMLNotIn(vs ...string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotIn(FieldReviewHTML, vs...))
}

// ReviewHTMLGT applies the GT predicate on the "review_html" field.
func ReviewHTMLGT(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGT(FieldReviewHTML, v))
}

// ReviewHTMLGTE applies the GTE predicate on the "review_html" field.
func ReviewHTMLGTE(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGTE(FieldReviewHTML, v))
}

// ReviewHTMLLT applies the LT predicate on the "review_html" field.
func ReviewHTMLLT(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLT(FieldReviewHTML, v))
}

// ReviewHTMLLTE applies the LTE predicate on the "review_html" field.
func ReviewHTMLLTE(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLTE(FieldReviewHTML, v))
}

// ReviewHTMLContains applies the Contains predicate on the "review_html" field.
func ReviewHTMLContains(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldContains(FieldReviewHTML, v))
}

// ReviewHTMLHasPrefix applies the HasPrefix predicate on the "review_html" field.
func ReviewHTMLHasPrefix(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldHasPrefix(FieldReviewHTML, v))
}

// ReviewHTMLHasSuffix applies the HasSuffix predicate on the "review_html" field.
func ReviewHTMLHasSuffix(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldHasSuffix(FieldReviewHTML, v))
}

// ReviewHTMLIsNil applies the IsNil predicate on the "review_html" field.
func ReviewHTMLIsNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIsNull(FieldReviewHTML))
}

// ReviewHTMLNotNil applies the NotNil predicate on the "review_html" field.
func ReviewHTMLNotNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotNull(FieldReviewHTML))
}

// ReviewHTMLEqualFold applies the EqualFold predicate on the "review_html" field.
func ReviewHTMLEqualFold(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEqualFold(FieldReviewHTML, v))
}

// ReviewHTMLContainsFold applies the ContainsFold predicate on the "review_html" field.
func ReviewHTMLContainsFold(v string) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldContainsFold(FieldReviewHTML, v))
}

// OverallEQ applies the EQ predicate on the "overall" field.
func OverallEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldOverall, v))
}

// OverallNEQ applies the NEQ predicate on the "overall" field.
func OverallNEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNEQ(FieldOverall, v))
}

// OverallIn applies the In predicate on the "overall" field.
func OverallIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIn(FieldOverall, vs...))
}

// OverallNotIn applies the NotIn predicate on the "overall" field.
func OverallNotIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotIn(FieldOverall, vs...))
}

// OverallGT applies the GT predicate on the "overall" field.
func OverallGT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGT(FieldOverall, v))
}

// OverallGTE applies the GTE predicate on the "overall" field.
func OverallGTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGTE(FieldOverall, v))
}

// OverallLT applies the LT predicate on the "overall" field.
func OverallLT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLT(FieldOverall, v))
}

// OverallLTE applies the LTE predicate on the "overall" field.
func OverallLTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLTE(FieldOverall, v))
}

// ArtEQ applies the EQ predicate on the "art" field.
func ArtEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldArt, v))
}

// ArtNEQ applies the NEQ predicate on the "art" field.
func ArtNEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNEQ(FieldArt, v))
}

// ArtIn applies the In predicate on the "art" field.
func ArtIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIn(FieldArt, vs...))
}

// ArtNotIn applies the NotIn predicate on the "art" field.
func ArtNotIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotIn(FieldArt, vs...))
}

// ArtGT applies the GT predicate on the "art" field.
func ArtGT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGT(FieldArt, v))
}

// ArtGTE applies the GTE predicate on the "art" field.
func ArtGTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGTE(FieldArt, v))
}

// ArtLT applies the LT predicate on the "art" field.
func ArtLT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLT(FieldArt, v))
}

// ArtLTE applies the LTE predicate on the "art" field.
func ArtLTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLTE(FieldArt, v))
}

// ArtIsNil applies the IsNil predicate on the "art" field.
func ArtIsNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIsNull(FieldArt))
}

// ArtNotNil applies the NotNil predicate on the "art" field.
func ArtNotNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotNull(FieldArt))
}

// CharactersEQ applies the EQ predicate on the "characters" field.
func CharactersEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldCharacters, v))
}

// CharactersNEQ applies the NEQ predicate on the "characters" field.
func CharactersNEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNEQ(FieldCharacters, v))
}

// CharactersIn applies the In predicate on the "characters" field.
func CharactersIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIn(FieldCharacters, vs...))
}

// CharactersNotIn applies the NotIn predicate on the "characters" field.
func CharactersNotIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotIn(FieldCharacters, vs...))
}

// CharactersGT applies the GT predicate on the "characters" field.
func CharactersGT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGT(FieldCharacters, v))
}

// CharactersGTE applies the GTE predicate on the "characters" field.
func CharactersGTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGTE(FieldCharacters, v))
}

// CharactersLT applies the LT predicate on the "characters" field.
func CharactersLT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLT(FieldCharacters, v))
}

// CharactersLTE applies the LTE predicate on the "characters" field.
func CharactersLTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLTE(FieldCharacters, v))
}

// CharactersIsNil applies the IsNil predicate on the "characters" field.
func CharactersIsNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIsNull(FieldCharacters))
}

// CharactersNotNil applies the NotNil predicate on the "characters" field.
func CharactersNotNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotNull(FieldCharacters))
}

// StoryEQ applies the EQ predicate on the "story" field.
func StoryEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldStory, v))
}

// StoryNEQ applies the NEQ predicate on the "story" field.
func StoryNEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNEQ(FieldStory, v))
}

// StoryIn applies the In predicate on the "story" field.
func StoryIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIn(FieldStory, vs...))
}

// StoryNotIn applies the NotIn predicate on the "story" field.
func StoryNotIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotIn(FieldStory, vs...))
}

// StoryGT applies the GT predicate on the "story" field.
func StoryGT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGT(FieldStory, v))
}

// StoryGTE applies the GTE predicate on the "story" field.
func StoryGTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGTE(FieldStory, v))
}

// StoryLT applies the LT predicate on the "story" field.
func StoryLT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLT(FieldStory, v))
}

// StoryLTE applies the LTE predicate on the "story" field.
func StoryLTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLTE(FieldStory, v))
}

// StoryIsNil applies the IsNil predicate on the "story" field.
func StoryIsNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIsNull(FieldStory))
}

// StoryNotNil applies the NotNil predicate on the "story" field.
func StoryNotNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotNull(FieldStory))
}

// EnjoymentEQ applies the EQ predicate on the "enjoyment" field.
func EnjoymentEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldEnjoyment, v))
}

// EnjoymentNEQ applies the NEQ predicate on the "enjoyment" field.
func EnjoymentNEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNEQ(FieldEnjoyment, v))
}

// EnjoymentIn applies the In predicate on the "enjoyment" field.
func EnjoymentIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIn(FieldEnjoyment, vs...))
}

// EnjoymentNotIn applies the NotIn predicate on the "enjoyment" field.
func EnjoymentNotIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotIn(FieldEnjoyment, vs...))
}

// EnjoymentGT applies the GT predicate on the "enjoyment" field.
func EnjoymentGT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGT(FieldEnjoyment, v))
}

// EnjoymentGTE applies the GTE predicate on the "enjoyment" field.
func EnjoymentGTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGTE(FieldEnjoyment, v))
}

// EnjoymentLT applies the LT predicate on the "enjoyment" field.
func EnjoymentLT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLT(FieldEnjoyment, v))
}

// EnjoymentLTE applies the LTE predicate on the "enjoyment" field.
func EnjoymentLTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLTE(FieldEnjoyment, v))
}

// EnjoymentIsNil applies the IsNil predicate on the "enjoyment" field.
func EnjoymentIsNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIsNull(FieldEnjoyment))
}

// EnjoymentNotNil applies the NotNil predicate on the "enjoyment" field.
func EnjoymentNotNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotNull(FieldEnjoyment))
}

// GraphicsEQ applies the EQ predicate on the "graphics" field.
func GraphicsEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldGraphics, v))
}

// GraphicsNEQ applies the NEQ predicate on the "graphics" field.
func GraphicsNEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNEQ(FieldGraphics, v))
}

// GraphicsIn applies the In predicate on the "graphics" field.
func GraphicsIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIn(FieldGraphics, vs...))
}

// GraphicsNotIn applies the NotIn predicate on the "graphics" field.
func GraphicsNotIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotIn(FieldGraphics, vs...))
}

// GraphicsGT applies the GT predicate on the "graphics" field.
func GraphicsGT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGT(FieldGraphics, v))
}

// GraphicsGTE applies the GTE predicate on the "graphics" field.
func GraphicsGTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGTE(FieldGraphics, v))
}

// GraphicsLT applies the LT predicate on the "graphics" field.
func GraphicsLT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLT(FieldGraphics, v))
}

// GraphicsLTE applies the LTE predicate on the "graphics" field.
func GraphicsLTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLTE(FieldGraphics, v))
}

// GraphicsIsNil applies the IsNil predicate on the "graphics" field.
func GraphicsIsNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIsNull(FieldGraphics))
}

// GraphicsNotNil applies the NotNil predicate on the "graphics" field.
func GraphicsNotNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotNull(FieldGraphics))
}

// MusicEQ applies the EQ predicate on the "music" field.
func MusicEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldMusic, v))
}

// MusicNEQ applies the NEQ predicate on the "music" field.
func MusicNEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNEQ(FieldMusic, v))
}

// MusicIn applies the In predicate on the "music" field.
func MusicIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIn(FieldMusic, vs...))
}

// MusicNotIn applies the NotIn predicate on the "music" field.
func MusicNotIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotIn(FieldMusic, vs...))
}

// MusicGT applies the GT predicate on the "music" field.
func MusicGT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGT(FieldMusic, v))
}

// MusicGTE applies the GTE predicate on the "music" field.
func MusicGTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGTE(FieldMusic, v))
}

// MusicLT applies the LT predicate on the "music" field.
func MusicLT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLT(FieldMusic, v))
}

// MusicLTE applies the LTE predicate on the "music" field.
func MusicLTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLTE(FieldMusic, v))
}

// MusicIsNil applies the IsNil predicate on the "music" field.
func MusicIsNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIsNull(FieldMusic))
}

// MusicNotNil applies the NotNil predicate on the "music" field.
func MusicNotNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotNull(FieldMusic))
}

// VoicingEQ applies the EQ predicate on the "voicing" field.
func VoicingEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldEQ(FieldVoicing, v))
}

// VoicingNEQ applies the NEQ predicate on the "voicing" field.
func VoicingNEQ(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNEQ(FieldVoicing, v))
}

// VoicingIn applies the In predicate on the "voicing" field.
func VoicingIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIn(FieldVoicing, vs...))
}

// VoicingNotIn applies the NotIn predicate on the "voicing" field.
func VoicingNotIn(vs ...int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotIn(FieldVoicing, vs...))
}

// VoicingGT applies the GT predicate on the "voicing" field.
func VoicingGT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGT(FieldVoicing, v))
}

// VoicingGTE applies the GTE predicate on the "voicing" field.
func VoicingGTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldGTE(FieldVoicing, v))
}

// VoicingLT applies the LT predicate on the "voicing" field.
func VoicingLT(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLT(FieldVoicing, v))
}

// VoicingLTE applies the LTE predicate on the "voicing" field.
func VoicingLTE(v int) predicate.GamesReview {
	return predicate.GamesReview(sql.FieldLTE(FieldVoicing, v))
}

// VoicingIsNil applies the IsNil predicate on the "voicing" field.
func VoicingIsNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldIsNull(FieldVoicing))
}

// VoicingNotNil applies the NotNil predicate on the "voicing" field.
func VoicingNotNil() predicate.GamesReview {
	return predicate.GamesReview(sql.FieldNotNull(FieldVoicing))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GamesReview) predicate.GamesReview {
	return predicate.GamesReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GamesReview) predicate.GamesReview {
	return predicate.GamesReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GamesReview) predicate.GamesReview {
	return predicate.GamesReview(sql.NotPredicates(p))
}
