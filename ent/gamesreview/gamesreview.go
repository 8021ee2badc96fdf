// Code generated by ent, DO NOT EDIT.

package gamesreview

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gamesreview type in the database.
	Label = "games_review"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUsername holds the string denoting the username field in the database.
	FieldUsername = "username"
	// FieldArticleID holds the string denoting the article_id field in the database.
	FieldArticleID = "article_id"
	// FieldReview holds the string denoting the review field in the database.
	FieldReview = "review"
	// FieldReviewHTML holds the string denoting the review_html field in the database.
	FieldReviewHTML = "review_html"
	// FieldOverall holds the string denoting the overall field in the database.
	FieldOverall = "overall"
	// FieldArt holds the string denoting the art field in the database.
	FieldArt = "art"
	// FieldCharacters holds the string denoting the characters field in the database.
	FieldCharacters = "characters"
	// FieldStory holds the string denoting the story field in the database.
	FieldStory = "story"
	// FieldEnjoyment holds the string denoting the enjoyment field in the database.
	FieldEnjoyment = "enjoyment"
	// FieldGraphics holds the string denoting the graphics field in the database.
	FieldGraphics = "graphics"
	// FieldMusic holds the string denoting the music field in the database.
	FieldMusic = "music"
	// FieldVoicing holds the string denoting the voicing field in the database.
	FieldVoicing = "voicing"
	// Table holds the table name of the gamesreview in the database.
	Table = "games_reviews"
)

// Columns holds all SQL columns for gamesreview fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUsername,
	FieldArticleID,
	FieldReview,
	FieldReviewHTML,
	FieldOverall,
	FieldArt,
	FieldCharacters,
	FieldStory,
	FieldEnjoyment,
	FieldGraphics,
	FieldMusic,
	FieldVoicing,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	UsernameValidator func(string) error
	// ReviewValidator is a validator for the "review" field. It is called by the builders before save.
	ReviewValidator func(string) error
)

// OrderOption defines the ordering options for the GamesReview queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUsername orders the results by the username field.
func ByUsername(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsername, opts...).ToFunc()
}

// ByArticleID orders the results by the article_id field.
func ByArticleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArticleID, opts...).ToFunc()
}

// ByReview orders the results by the review field.
func ByReview(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReview, opts...).ToFunc()
}

// ByReviewHTML orders the results by the review_html field.
func ByReviewHTML(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewHTML, opts...).ToFunc()
}

// ByOverall orders the results by the overall field.
func ByOverall(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverall, opts...).ToFunc()
}

// ByArt orders the results by the art field.
func ByArt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArt, opts...).ToFunc()
}

// ByCharacters orders the results by the characters field.
func ByCharacters(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCharacters, opts...).ToFunc()
}

// ByStory orders the results by the story field.
func ByStory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStory, opts...).ToFunc()
}

// ByEnjoyment orders the results by the enjoyment field.
func ByEnjoyment(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEnjoyment, opts...).ToFunc()
}

// ByGraphics orders the results by the graphics field.
func ByGraphics(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGraphics, opts...).ToFunc()
}

// ByMusic orders the results by the music field.
func ByMusic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMusic, opts...).ToFunc()
}

// ByVoicing orders the results by the voicing field.
func ByVoicing(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldVoicing, opts...).ToFunc()
}
