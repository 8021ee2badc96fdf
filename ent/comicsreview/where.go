// Code generated by ent, DO NOT EDIT.

package comicsreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldUpdatedAt, v))
}

// Username applies equality check predicate on the "username" field. It's identical to UsernameEQ.
func Username(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldUsername, v))
}

// ArticleID applies equality check predicate on the "article_id" field. It's identical to ArticleIDEQ.
func ArticleID(v uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldArticleID, v))
}

// Review applies equality check predicate on the "review" field. It's identical to ReviewEQ.
func Review(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldReview, v))
}

// ReviewHTML applies equality check predicate on the "review_html" field. It's identical to ReviewHTMLEQ.
func ReviewHTML(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldReviewHTML, v))
}

// Overall applies equality check predicate on the "overall" field. It's identical to OverallEQ.
func Overall(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldOverall, v))
}

// Art applies equality check predicate on the "art" field. It's identical to ArtEQ.
func Art(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldArt, v))
}

// Characters applies equality check predicate on the "characters" field. It's identical to CharactersEQ.
func Characters(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldCharacters, v))
}

// Story applies equality check predicate on the "story" field. It's identical to StoryEQ.
func Story(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldStory, v))
}

// Enjoyment applies equality check predicate on the "enjoyment" field. It's identical to EnjoymentEQ.
func Enjoyment(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldEnjoyment, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLTE(FieldUpdatedAt, v))
}

// UsernameEQ applies the EQ predicate on the "username" field.
func UsernameEQ(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldUsername, v))
}

// UsernameNEQ applies the NEQ predicate on the "username" field.
func UsernameNEQ(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNEQ(FieldUsername, v))
}

// UsernameIn applies the In predicate on the "username" field.
func UsernameIn(vs ...string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIn(FieldUsername, vs...))
}

// UsernameNotIn applies the NotIn predicate on the "username" field.
func UsernameNotIn(vs ...string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotIn(FieldUsername, vs...))
}

// UsernameGT applies the GT predicate on the "username" field.
func UsernameGT(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGT(FieldUsername, v))
}

// UsernameGTE applies the GTE predicate on the "username" field.
func UsernameGTE(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGTE(FieldUsername, v))
}

// UsernameLT applies the LT predicate on the "username" field.
func UsernameLT(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLT(FieldUsername, v))
}

// UsernameLTE applies the LTE predicate on the "username" field.
func UsernameLTE(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLTE(FieldUsername, v))
}

// UsernameContains applies the Contains predicate on the "username" field.
func UsernameContains(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldContains(FieldUsername, v))
}

// UsernameHasPrefix applies the HasPrefix predicate on the "username" field.
func UsernameHasPrefix(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldHasPrefix(FieldUsername, v))
}

// UsernameHasSuffix applies the HasSuffix predicate on the "username" field.
func UsernameHasSuffix(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldHasSuffix(FieldUsername, v))
}

// UsernameEqualFold applies the EqualFold predicate on the "username" field.
func UsernameEqualFold(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEqualFold(FieldUsername, v))
}

// UsernameContainsFold applies the ContainsFold predicate on the "username" field.
func UsernameContainsFold(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldContainsFold(FieldUsername, v))
}

// ArticleIDEQ applies the EQ predicate on the "article_id" field.
func ArticleIDEQ(v uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldArticleID, v))
}

// ArticleIDNEQ applies the NEQ predicate on the "article_id" field.
func ArticleIDNEQ(v uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNEQ(FieldArticleID, v))
}

// ArticleIDIn applies the In predicate on the "article_id" field.
func ArticleIDIn(vs ...uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIn(FieldArticleID, vs...))
}

// ArticleIDNotIn applies the NotIn predicate on the "article_id" field.
func ArticleIDNotIn(vs ...uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotIn(FieldArticleID, vs...))
}

// ArticleIDGT applies the GT predicate on the "article_id" field.
func ArticleIDGT(v uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGT(FieldArticleID, v))
}

// ArticleIDGTE applies the GTE predicate on the "article_id" field.
func ArticleIDGTE(v uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGTE(FieldArticleID, v))
}

// ArticleIDLT applies the LT predicate on the "article_id" field.
func ArticleIDLT(v uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLT(FieldArticleID, v))
}

// ArticleIDLTE applies the LTE predicate on the "article_id" field.
func ArticleIDLTE(v uint) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLTE(FieldArticleID, v))
}

// ReviewEQ applies the EQ predicate on the "review" field.
func ReviewEQ(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldReview, v))
}

// ReviewNEQ applies the NEQ predicate on the "review" field.
func ReviewNEQ(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNEQ(FieldReview, v))
}

// ReviewIn applies the In predicate on the "review" field.
func ReviewIn(vs ...string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIn(FieldReview, vs...))
}

// ReviewNotIn applies the NotIn predicate on the "review" field.
func ReviewNotIn(vs ...string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotIn(FieldReview, vs...))
}

// ReviewGT applies the GT predicate on the "review" field.
func ReviewGT(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGT(FieldReview, v))
}

// ReviewGTE applies the GTE predicate on the "review" field.
func ReviewGTE(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGTE(FieldReview, v))
}

// ReviewLT applies the LT predicate on the "review" field.
func ReviewLT(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLT(FieldReview, v))
}

// ReviewLTE applies the LTE predicate on the "review" field.
func ReviewLTE(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLTE(FieldReview, v))
}

// ReviewContains applies the Contains predicate on the "review" field.
func ReviewContains(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldContains(FieldReview, v))
}

// ReviewHasPrefix applies the HasPrefix predicate on the "review" field.
func ReviewHasPrefix(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldHasPrefix(FieldReview, v))
}

// ReviewHasSuffix applies the HasSuffix predicate on the "review" field.
func ReviewHasSuffix(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldHasSuffix(FieldReview, v))
}

// ReviewEqualFold applies the EqualFold predicate on the "review" field.
func ReviewEqualFold(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEqualFold(FieldReview, v))
}

// ReviewContainsFold applies the ContainsFold predicate on the "review" field.
func ReviewContainsFold(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldContainsFold(FieldReview, v))
}

// ReviewHTMLEQ applies the EQ predicate on the "review_html" field.
func ReviewHTMLEQ(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldReviewHTML, v))
}

// ReviewHTMLNEQ applies the NEQ predicate on the "review_html" field.
func ReviewHTMLNEQ(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNEQ(FieldReviewHTML, v))
}

// ReviewHTMLIn applies the In predicate on the "review_html" field.
func ReviewHTMLIn(vs ...string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIn(FieldReviewHTML, vs...))
}

// ReviewHTMLNotIn applies the NotIn predicate on the "review_html" field.
func ReviewHTMLNotIn(vs ...string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotIn(FieldReviewHTML, vs...))
}

// ReviewHTMLGT applies the GT predicate on the "review_html" field.
func ReviewHTMLGT(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGT(FieldReviewHTML, v))
}

// ReviewHTMLGTE applies the GTE predicate on the "review_html" field.
func ReviewHTMLGTE(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGTE(FieldReviewHTML, v))
}

// ReviewHTMLLT applies the LT predicate on the "review_html" field.
func ReviewHTMLLT(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLT(FieldReviewHTML, v))
}

// ReviewHTMLLTE applies the LTE predicate on the "review_html" field.
func ReviewHTMLLTE(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLTE(FieldReviewHTML, v))
}

// ReviewHTMLContains applies the Contains predicate on the "review_html" field.
func ReviewHTMLContains(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldContains(FieldReviewHTML, v))
}

// ReviewHTMLHasPrefix applies the HasPrefix predicate on the "review_html" field.
func ReviewHTMLHasPrefix(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldHasPrefix(FieldReviewHTML, v))
}

// ReviewHTMLHasSuffix applies the HasSuffix predicate on the "review_html" field.
func ReviewHTMLHasSuffix(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldHasSuffix(FieldReviewHTML, v))
}

// ReviewHTMLIsNil applies the IsNil predicate on the "review_html" field.
func ReviewHTMLIsNil() predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIsNull(FieldReviewHTML))
}

// ReviewHTMLNotNil applies the NotNil predicate on the "review_html" field.
func ReviewHTMLNotNil() predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotNull(FieldReviewHTML))
}

// ReviewHTMLEqualFold applies the EqualFold predicate on the "review_html" field.
func ReviewHTMLEqualFold(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEqualFold(FieldReviewHTML, v))
}

// ReviewHTMLContainsFold applies the ContainsFold predicate on the "review_html" field.
func ReviewHTMLContainsFold(v string) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldContainsFold(FieldReviewHTML, v))
}

// OverallEQ applies the EQ predicate on the "overall" field.
func OverallEQ(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldOverall, v))
}

// OverallNEQ applies the NEQ predicate on the "overall" field.
func OverallNEQ(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNEQ(FieldOverall, v))
}

// OverallIn applies the In predicate on the "overall" field.
func OverallIn(vs ...int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIn(FieldOverall, vs...))
}

// OverallNotIn applies the NotIn predicate on the "overall" field.
func OverallNotIn(vs ...int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotIn(FieldOverall, vs...))
}

// OverallGT applies the GT predicate on the "overall" field.
func OverallGT(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGT(FieldOverall, v))
}

// OverallGTE applies the GTE predicate on the "overall" field.
func OverallGTE(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGTE(FieldOverall, v))
}

// OverallLT applies the LT predicate on the "overall" field.
func OverallLT(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLT(FieldOverall, v))
}

// OverallLTE applies the LTE predicate on the "overall" field.
func OverallLTE(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLTE(FieldOverall, v))
}

// ArtEQ applies the EQ predicate on the "art" field.
func ArtEQ(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldArt, v))
}

// ArtNEQ applies the NEQ predicate on the "art" field.
func ArtNEQ(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNEQ(FieldArt, v))
}

// ArtIn applies the In predicate on the "art" field.
func ArtIn(vs ...int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIn(FieldArt, vs...))
}

// ArtNotIn applies the NotIn predicate on the "art" field.
func ArtNotIn(vs ...int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotIn(FieldArt, vs...))
}

// ArtGT applies the GT predicate on the "art" field.
func ArtGT(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGT(FieldArt, v))
}

// ArtGTE applies the GTE predicate on the "art" field.
func ArtGTE(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGTE(FieldArt, v))
}

// ArtLT applies the LT predicate on the "art" field.
func ArtLT(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLT(FieldArt, v))
}

// ArtLTE applies the LTE predicate on the "art" field.
func ArtLTE(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLTE(FieldArt, v))
}

// ArtIsNil applies the IsNil predicate on the "art" field.
func ArtIsNil() predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIsNull(FieldArt))
}

// ArtNotNil applies the NotNil predicate on the "art" field.
func ArtNotNil() predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotNull(FieldArt))
}

// CharactersEQ applies the EQ predicate on the "characters" field.
func CharactersEQ(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldCharacters, v))
}

// CharactersNEQ applies the NEQ predicate on the "characters" field.
func CharactersNEQ(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNEQ(FieldCharacters, v))
}

// CharactersIn applies the In predicate on the "characters" field.
func CharactersIn(vs ...int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIn(FieldCharacters, vs...))
}

// CharactersNotIn applies the NotIn predicate on the "characters" field.
func CharactersNotIn(vs ...int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotIn(FieldCharacters, vs...))
}

// CharactersGT applies the GT predicate on the "characters" field.
func CharactersGT(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGT(FieldCharacters, v))
}

// CharactersGTE applies the GTE predicate on the "characters" field.
func CharactersGTE(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGTE(FieldCharacters, v))
}

// CharactersLT applies the LT predicate on the "characters" field.
func CharactersLT(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLT(FieldCharacters, v))
}

// CharactersLTE applies the LTE predicate on the "characters" field.
func CharactersLTE(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLTE(FieldCharacters, v))
}

// CharactersIsNil applies the IsNil predicate on the "characters" field.
func CharactersIsNil() predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIsNull(FieldCharacters))
}

// CharactersNotNil applies the NotNil predicate on the "characters" field.
func CharactersNotNil() predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotNull(FieldCharacters))
}

// StoryEQ applies the EQ predicate on the "story" field.
func StoryEQ(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldStory, v))
}

// StoryNEQ applies the NEQ predicate on the "story" field.
func StoryNEQ(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNEQ(FieldStory, v))
}

// StoryIn applies the In predicate on the "story" field.
func StoryIn(vs ...int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIn(FieldStory, vs...))
}

// StoryNotIn applies the NotIn predicate on the "story" field.
func StoryNotIn(vs ...int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotIn(FieldStory, vs...))
}

// StoryGT applies the GT predicate on the "story" field.
func StoryGT(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGT(FieldStory, v))
}

// StoryGTE applies the GTE predicate on the "story" field.
func StoryGTE(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGTE(FieldStory, v))
}

// StoryLT applies the LT predicate on the "story" field.
func StoryLT(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLT(FieldStory, v))
}

// StoryLTE applies the LTE predicate on the "story" field.
func StoryLTE(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLTE(FieldStory, v))
}

// StoryIsNil applies the IsNil predicate on the "story" field.
func StoryIsNil() predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIsNull(FieldStory))
}

// StoryNotNil applies the NotNil predicate on the "story" field.
func StoryNotNil() predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotNull(FieldStory))
}

// EnjoymentEQ applies the EQ predicate on the "enjoyment" field.
func EnjoymentEQ(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldEQ(FieldEnjoyment, v))
}

// EnjoymentNEQ applies the NEQ predicate on the "enjoyment" field.
func EnjoymentNEQ(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNEQ(FieldEnjoyment, v))
}

// EnjoymentIn applies the In predicate on the "enjoyment" field.
func EnjoymentIn(vs ...int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIn(FieldEnjoyment, vs...))
}

// EnjoymentNotIn applies the NotIn predicate on the "enjoyment" field.
func EnjoymentNotIn(vs ...int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotIn(FieldEnjoyment, vs...))
}

// EnjoymentGT applies the GT predicate on the "enjoyment" field.
func EnjoymentGT(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGT(FieldEnjoyment, v))
}

// EnjoymentGTE applies the GTE predicate on the "enjoyment" field.
func EnjoymentGTE(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldGTE(FieldEnjoyment, v))
}

// EnjoymentLT applies the LT predicate on the "enjoyment" field.
func EnjoymentLT(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLT(FieldEnjoyment, v))
}

// EnjoymentLTE applies the LTE predicate on the "enjoyment" field.
func EnjoymentLTE(v int) predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldLTE(FieldEnjoyment, v))
}

// EnjoymentIsNil applies the IsNil predicate on the "enjoyment" field.
func EnjoymentIsNil() predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldIsNull(FieldEnjoyment))
}

// EnjoymentNotNil applies the NotNil predicate on the "enjoyment" field.
func EnjoymentNotNil() predicate.ComicsReview {
	return predicate.ComicsReview(sql.FieldNotNull(FieldEnjoyment))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ComicsReview) predicate.ComicsReview {
	return predicate.ComicsReview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ComicsReview) predicate.ComicsReview {
	return predicate.ComicsReview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ComicsReview) predicate.ComicsReview {
	return predicate.ComicsReview(sql.NotPredicates(p))
}
