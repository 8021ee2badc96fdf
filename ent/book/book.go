// Code generated by ent, DO NOT EDIT.

package book

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the book type in the database.
	Label = "book"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldSlug holds the string denoting the slug field in the database.
	FieldSlug = "slug"
	// FieldDescription holds the string denoting the description field in the database.
	FieldDescription = "description"
	// FieldCoverURL holds the string denoting the cover_url field in the database.
	FieldCoverURL = "cover_url"
	// FieldAuthors holds the string denoting the authors field in the database.
	FieldAuthors = "authors"
	// FieldPublishers holds the string denoting the publishers field in the database.
	FieldPublishers = "publishers"
	// FieldGenres holds the string denoting the genres field in the database.
	FieldGenres = "genres"
	// FieldPremiered holds the string denoting the premiered field in the database.
	FieldPremiered = "premiered"
	// FieldDraft holds the string denoting the draft field in the database.
	FieldDraft = "draft"
	// FieldAccepted holds the string denoting the accepted field in the database.
	FieldAccepted = "accepted"
	// FieldContributor holds the string denoting the contributor field in the database.
	FieldContributor = "contributor"
	// FieldPages holds the string denoting the pages field in the database.
	FieldPages = "pages"
	// FieldSeries holds the string denoting the series field in the database.
	FieldSeries = "series"
	// Table holds the table name of the book in the database.
	Table = "books"
)

// Columns holds all SQL columns for book fields.
var Columns = []string{
	FieldID,
	FieldDeletedAt,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTitle,
	FieldSlug,
	FieldDescription,
	FieldCoverURL,
	FieldAuthors,
	FieldPublishers,
	FieldGenres,
	FieldPremiered,
	FieldDraft,
	FieldAccepted,
	FieldContributor,
	FieldPages,
	FieldSeries,
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

// Note that the variables below are initialized by the runtime
// package on the initialization of the application. Therefore,
// it should be imported in the main as follows:
//
//	import _ "github.com/anzhiyu-c/mediawall-app/ent/runtime"
var (
	Hooks [1]ent.Hook
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// TitleValidator is a validator for the "title" field. It is called by the builders before save.
	TitleValidator func(string) error
	// SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	SlugValidator func(string) error
	// DefaultDraft holds the default value on creation for the "draft" field.
	DefaultDraft bool
	// DefaultAccepted holds the default value on creation for the "accepted" field.
	DefaultAccepted bool
	// DefaultPages holds the default value on creation for the "pages" field.
	DefaultPages int
	// PagesValidator is a validator for the "pages" field. It is called by the builders before save.
	PagesValidator func(int) error
)

// OrderOption defines the ordering options for the Book queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// BySlug orders the results by the slug field.
func BySlug(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlug, opts...).ToFunc()
}

// ByDescription orders the results by the description field.
func ByDescription(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDescription, opts...).ToFunc()
}

// ByCoverURL orders the results by the cover_url field.
func ByCoverURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCoverURL, opts...).ToFunc()
}

// ByAuthors orders the results by the authors field.
func ByAuthors(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAuthors, opts...).ToFunc()
}

// ByPublishers orders the results by the publishers field.
func ByPublishers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishers, opts...).ToFunc()
}

// ByGenres orders the results by the genres field.
func ByGenres(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGenres, opts...).ToFunc()
}

// ByPremiered orders the results by the premiered field.
func ByPremiered(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPremiered, opts...).ToFunc()
}

// ByDraft orders the results by the draft field.
func ByDraft(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDraft, opts...).ToFunc()
}

// ByAccepted orders the results by the accepted field.
func ByAccepted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAccepted, opts...).ToFunc()
}

// ByContributor orders the results by the contributor field.
func ByContributor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContributor, opts...).ToFunc()
}

// ByPages orders the results by the pages field.
func ByPages(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPages, opts...).ToFunc()
}

// BySeries orders the results by the series field.
func BySeries(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeries, opts...).ToFunc()
}
