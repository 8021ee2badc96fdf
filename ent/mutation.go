// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/book"
	"github.com/anzhiyu-c/mediawall-app/ent/booksreview"
	"github.com/anzhiyu-c/mediawall-app/ent/comic"
	"github.com/anzhiyu-c/mediawall-app/ent/comicsreview"
	"github.com/anzhiyu-c/mediawall-app/ent/game"
	"github.com/anzhiyu-c/mediawall-app/ent/gamesreview"
	"github.com/anzhiyu-c/mediawall-app/ent/manga"
	"github.com/anzhiyu-c/mediawall-app/ent/mangasreview"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
	"github.com/anzhiyu-c/mediawall-app/ent/user"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsbook"
	"github.com/anzhiyu-c/mediawall-app/ent/wallscomic"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsgame"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsmanga"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBook         = "Book"
	TypeBooksReview  = "BooksReview"
	TypeComic        = "Comic"
	TypeComicsReview = "ComicsReview"
	TypeGame         = "Game"
	TypeGamesReview  = "GamesReview"
	TypeManga        = "Manga"
	TypeMangasReview = "MangasReview"
	TypeUser         = "User"
	TypeWallsBook    = "WallsBook"
	TypeWallsComic   = "WallsComic"
	TypeWallsGame    = "WallsGame"
	TypeWallsManga   = "WallsManga"
)

// BookMutation represents an operation that mutates the Book nodes in the graph.
type BookMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	deleted_at    *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	title         *string
	slug          *string
	description   *string
	cover_url     *string
	authors       *string
	publishers    *string
	genres        *string
	premiered     *time.Time
	draft         *bool
	accepted      *bool
	contributor   *string
	pages         *int
	addpages      *int
	series        *string
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Book, error)
	predicates    []predicate.Book
}

var _ ent.Mutation = (*BookMutation)(nil)

// bookOption allows management of the mutation configuration using functional options.
type bookOption func(*BookMutation)

// newBookMutation creates new mutation for the Book entity.
func newBookMutation(c config, op Op, opts ...bookOption) *BookMutation {
	m := &BookMutation{
		config:        c,
		op:            op,
		typ:           TypeBook,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBookID sets the ID field of the mutation.
func withBookID(id uint) bookOption {
	return func(m *BookMutation) {
		var (
			err   error
			once  sync.Once
			value *Book
		)
		m.oldValue = func(ctx context.Context) (*Book, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Book.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBook sets the old Book of the mutation.
func withBook(node *Book) bookOption {
	return func(m *BookMutation) {
		m.oldValue = func(context.Context) (*Book, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BookMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BookMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Book entities.
func (m *BookMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BookMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BookMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Book.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeletedAt sets the "deleted_at" field.
func (m *BookMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *BookMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *BookMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[book.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *BookMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[book.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *BookMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, book.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *BookMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BookMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BookMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BookMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BookMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BookMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *BookMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *BookMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *BookMutation) ResetTitle() {
	m.title = nil
}

// SetSlug sets the "slug" field.
func (m *BookMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *BookMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *BookMutation) ResetSlug() {
	m.slug = nil
}

// SetDescription sets the "description" field.
func (m *BookMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *BookMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *BookMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[book.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *BookMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[book.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *BookMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, book.FieldDescription)
}

// SetCoverURL sets the "cover_url" field.
func (m *BookMutation) SetCoverURL(s string) {
	m.cover_url = &s
}

// CoverURL returns the value of the "cover_url" field in the mutation.
func (m *BookMutation) CoverURL() (r string, exists bool) {
	v := m.cover_url
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverURL returns the old "cover_url" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldCoverURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverURL: %w", err)
	}
	return oldValue.CoverURL, nil
}

// ClearCoverURL clears the value of the "cover_url" field.
func (m *BookMutation) ClearCoverURL() {
	m.cover_url = nil
	m.clearedFields[book.FieldCoverURL] = struct{}{}
}

// CoverURLCleared returns if the "cover_url" field was cleared in this mutation.
func (m *BookMutation) CoverURLCleared() bool {
	_, ok := m.clearedFields[book.FieldCoverURL]
	return ok
}

// ResetCoverURL resets all changes to the "cover_url" field.
func (m *BookMutation) ResetCoverURL() {
	m.cover_url = nil
	delete(m.clearedFields, book.FieldCoverURL)
}

// SetAuthors sets the "authors" field.
func (m *BookMutation) SetAuthors(s string) {
	m.authors = &s
}

// Authors returns the value of the "authors" field in the mutation.
func (m *BookMutation) Authors() (r string, exists bool) {
	v := m.authors
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthors returns the old "authors" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldAuthors(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthors: %w", err)
	}
	return oldValue.Authors, nil
}

// ClearAuthors clears the value of the "authors" field.
func (m *BookMutation) ClearAuthors() {
	m.authors = nil
	m.clearedFields[book.FieldAuthors] = struct{}{}
}

// AuthorsCleared returns if the "authors" field was cleared in this mutation.
func (m *BookMutation) AuthorsCleared() bool {
	_, ok := m.clearedFields[book.FieldAuthors]
	return ok
}

// ResetAuthors resets all changes to the "authors" field.
func (m *BookMutation) ResetAuthors() {
	m.authors = nil
	delete(m.clearedFields, book.FieldAuthors)
}

// SetPublishers sets the "publishers" field.
func (m *BookMutation) SetPublishers(s string) {
	m.publishers = &s
}

// Publishers returns the value of the "publishers" field in the mutation.
func (m *BookMutation) Publishers() (r string, exists bool) {
	v := m.publishers
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishers returns the old "publishers" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldPublishers(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishers: %w", err)
	}
	return oldValue.Publishers, nil
}

// ClearPublishers clears the value of the "publishers" field.
func (m *BookMutation) ClearPublishers() {
	m.publishers = nil
	m.clearedFields[book.FieldPublishers] = struct{}{}
}

// PublishersCleared returns if the "publishers" field was cleared in this mutation.
func (m *BookMutation) PublishersCleared() bool {
	_, ok := m.clearedFields[book.FieldPublishers]
	return ok
}

// ResetPublishers resets all changes to the "publishers" field.
func (m *BookMutation) ResetPublishers() {
	m.publishers = nil
	delete(m.clearedFields, book.FieldPublishers)
}

// SetGenres sets the "genres" field.
func (m *BookMutation) SetGenres(s string) {
	m.genres = &s
}

// Genres returns the value of the "genres" field in the mutation.
func (m *BookMutation) Genres() (r string, exists bool) {
	v := m.genres
	if v == nil {
		return
	}
	return *v, true
}

// OldGenres returns the old "genres" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldGenres(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenres is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenres requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenres: %w", err)
	}
	return oldValue.Genres, nil
}

// ClearGenres clears the value of the "genres" field.
func (m *BookMutation) ClearGenres() {
	m.genres = nil
	m.clearedFields[book.FieldGenres] = struct{}{}
}

// GenresCleared returns if the "genres" field was cleared in this mutation.
func (m *BookMutation) GenresCleared() bool {
	_, ok := m.clearedFields[book.FieldGenres]
	return ok
}

// ResetGenres resets all changes to the "genres" field.
func (m *BookMutation) ResetGenres() {
	m.genres = nil
	delete(m.clearedFields, book.FieldGenres)
}

// SetPremiered sets the "premiered" field.
func (m *BookMutation) SetPremiered(t time.Time) {
	m.premiered = &t
}

// Premiered returns the value of the "premiered" field in the mutation.
func (m *BookMutation) Premiered() (r time.Time, exists bool) {
	v := m.premiered
	if v == nil {
		return
	}
	return *v, true
}

// OldPremiered returns the old "premiered" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldPremiered(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPremiered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPremiered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPremiered: %w", err)
	}
	return oldValue.Premiered, nil
}

// ClearPremiered clears the value of the "premiered" field.
func (m *BookMutation) ClearPremiered() {
	m.premiered = nil
	m.clearedFields[book.FieldPremiered] = struct{}{}
}

// PremieredCleared returns if the "premiered" field was cleared in this mutation.
func (m *BookMutation) PremieredCleared() bool {
	_, ok := m.clearedFields[book.FieldPremiered]
	return ok
}

// ResetPremiered resets all changes to the "premiered" field.
func (m *BookMutation) ResetPremiered() {
	m.premiered = nil
	delete(m.clearedFields, book.FieldPremiered)
}

// SetDraft sets the "draft" field.
func (m *BookMutation) SetDraft(b bool) {
	m.draft = &b
}

// Draft returns the value of the "draft" field in the mutation.
func (m *BookMutation) Draft() (r bool, exists bool) {
	v := m.draft
	if v == nil {
		return
	}
	return *v, true
}

// OldDraft returns the old "draft" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldDraft(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDraft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDraft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDraft: %w", err)
	}
	return oldValue.Draft, nil
}

// ResetDraft resets all changes to the "draft" field.
func (m *BookMutation) ResetDraft() {
	m.draft = nil
}

// SetAccepted sets the "accepted" field.
func (m *BookMutation) SetAccepted(b bool) {
	m.accepted = &b
}

// Accepted returns the value of the "accepted" field in the mutation.
func (m *BookMutation) Accepted() (r bool, exists bool) {
	v := m.accepted
	if v == nil {
		return
	}
	return *v, true
}

// OldAccepted returns the old "accepted" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldAccepted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccepted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccepted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccepted: %w", err)
	}
	return oldValue.Accepted, nil
}

// ResetAccepted resets all changes to the "accepted" field.
func (m *BookMutation) ResetAccepted() {
	m.accepted = nil
}

// SetContributor sets the "contributor" field.
func (m *BookMutation) SetContributor(s string) {
	m.contributor = &s
}

// Contributor returns the value of the "contributor" field in the mutation.
func (m *BookMutation) Contributor() (r string, exists bool) {
	v := m.contributor
	if v == nil {
		return
	}
	return *v, true
}

// OldContributor returns the old "contributor" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldContributor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributor: %w", err)
	}
	return oldValue.Contributor, nil
}

// ClearContributor clears the value of the "contributor" field.
func (m *BookMutation) ClearContributor() {
	m.contributor = nil
	m.clearedFields[book.FieldContributor] = struct{}{}
}

// ContributorCleared returns if the "contributor" field was cleared in this mutation.
func (m *BookMutation) ContributorCleared() bool {
	_, ok := m.clearedFields[book.FieldContributor]
	return ok
}

// ResetContributor resets all changes to the "contributor" field.
func (m *BookMutation) ResetContributor() {
	m.contributor = nil
	delete(m.clearedFields, book.FieldContributor)
}

// SetPages sets the "pages" field.
func (m *BookMutation) SetPages(i int) {
	m.pages = &i
	m.addpages = nil
}

// Pages returns the value of the "pages" field in the mutation.
func (m *BookMutation) Pages() (r int, exists bool) {
	v := m.pages
	if v == nil {
		return
	}
	return *v, true
}

// OldPages returns the old "pages" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPages: %w", err)
	}
	return oldValue.Pages, nil
}

// AddPages adds i to the "pages" field.
func (m *BookMutation) AddPages(i int) {
	if m.addpages != nil {
		*m.addpages += i
	} else {
		m.addpages = &i
	}
}

// AddedPages returns the value that was added to the "pages" field in this mutation.
func (m *BookMutation) AddedPages() (r int, exists bool) {
	v := m.addpages
	if v == nil {
		return
	}
	return *v, true
}

// ResetPages resets all changes to the "pages" field.
func (m *BookMutation) ResetPages() {
	m.pages = nil
	m.addpages = nil
}

// SetSeries sets the "series" field.
func (m *BookMutation) SetSeries(s string) {
	m.series = &s
}

// Series returns the value of the "series" field in the mutation.
func (m *BookMutation) Series() (r string, exists bool) {
	v := m.series
	if v == nil {
		return
	}
	return *v, true
}

// OldSeries returns the old "series" field's value of the Book entity.
// If the Book object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BookMutation) OldSeries(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSeries is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSeries requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSeries: %w", err)
	}
	return oldValue.Series, nil
}

// ClearSeries clears the value of the "series" field.
func (m *BookMutation) ClearSeries() {
	m.series = nil
	m.clearedFields[book.FieldSeries] = struct{}{}
}

// SeriesCleared returns if the "series" field was cleared in this mutation.
func (m *BookMutation) SeriesCleared() bool {
	_, ok := m.clearedFields[book.FieldSeries]
	return ok
}

// ResetSeries resets all changes to the "series" field.
func (m *BookMutation) ResetSeries() {
	m.series = nil
	delete(m.clearedFields, book.FieldSeries)
}

// Where appends a list predicates to the BookMutation builder.
func (m *BookMutation) Where(ps ...predicate.Book) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BookMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BookMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Book, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BookMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BookMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Book).
func (m *BookMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BookMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.deleted_at != nil {
		fields = append(fields, book.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, book.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, book.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, book.FieldTitle)
	}
	if m.slug != nil {
		fields = append(fields, book.FieldSlug)
	}
	if m.description != nil {
		fields = append(fields, book.FieldDescription)
	}
	if m.cover_url != nil {
		fields = append(fields, book.FieldCoverURL)
	}
	if m.authors != nil {
		fields = append(fields, book.FieldAuthors)
	}
	if m.publishers != nil {
		fields = append(fields, book.FieldPublishers)
	}
	if m.genres != nil {
		fields = append(fields, book.FieldGenres)
	}
	if m.premiered != nil {
		fields = append(fields, book.FieldPremiered)
	}
	if m.draft != nil {
		fields = append(fields, book.FieldDraft)
	}
	if m.accepted != nil {
		fields = append(fields, book.FieldAccepted)
	}
	if m.contributor != nil {
		fields = append(fields, book.FieldContributor)
	}
	if m.pages != nil {
		fields = append(fields, book.FieldPages)
	}
	if m.series != nil {
		fields = append(fields, book.FieldSeries)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BookMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case book.FieldDeletedAt:
		return m.DeletedAt()
	case book.FieldCreatedAt:
		return m.CreatedAt()
	case book.FieldUpdatedAt:
		return m.UpdatedAt()
	case book.FieldTitle:
		return m.Title()
	case book.FieldSlug:
		return m.Slug()
	case book.FieldDescription:
		return m.Description()
	case book.FieldCoverURL:
		return m.CoverURL()
	case book.FieldAuthors:
		return m.Authors()
	case book.FieldPublishers:
		return m.Publishers()
	case book.FieldGenres:
		return m.Genres()
	case book.FieldPremiered:
		return m.Premiered()
	case book.FieldDraft:
		return m.Draft()
	case book.FieldAccepted:
		return m.Accepted()
	case book.FieldContributor:
		return m.Contributor()
	case book.FieldPages:
		return m.Pages()
	case book.FieldSeries:
		return m.Series()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BookMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case book.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case book.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case book.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case book.FieldTitle:
		return m.OldTitle(ctx)
	case book.FieldSlug:
		return m.OldSlug(ctx)
	case book.FieldDescription:
		return m.OldDescription(ctx)
	case book.FieldCoverURL:
		return m.OldCoverURL(ctx)
	case book.FieldAuthors:
		return m.OldAuthors(ctx)
	case book.FieldPublishers:
		return m.OldPublishers(ctx)
	case book.FieldGenres:
		return m.OldGenres(ctx)
	case book.FieldPremiered:
		return m.OldPremiered(ctx)
	case book.FieldDraft:
		return m.OldDraft(ctx)
	case book.FieldAccepted:
		return m.OldAccepted(ctx)
	case book.FieldContributor:
		return m.OldContributor(ctx)
	case book.FieldPages:
		return m.OldPages(ctx)
	case book.FieldSeries:
		return m.OldSeries(ctx)
	}
	return nil, fmt.Errorf("unknown Book field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookMutation) SetField(name string, value ent.Value) error {
	switch name {
	case book.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case book.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case book.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case book.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case book.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case book.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case book.FieldCoverURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverURL(v)
		return nil
	case book.FieldAuthors:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthors(v)
		return nil
	case book.FieldPublishers:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishers(v)
		return nil
	case book.FieldGenres:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenres(v)
		return nil
	case book.FieldPremiered:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPremiered(v)
		return nil
	case book.FieldDraft:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDraft(v)
		return nil
	case book.FieldAccepted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccepted(v)
		return nil
	case book.FieldContributor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributor(v)
		return nil
	case book.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPages(v)
		return nil
	case book.FieldSeries:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSeries(v)
		return nil
	}
	return fmt.Errorf("unknown Book field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BookMutation) AddedFields() []string {
	var fields []string
	if m.addpages != nil {
		fields = append(fields, book.FieldPages)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BookMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case book.FieldPages:
		return m.AddedPages()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BookMutation) AddField(name string, value ent.Value) error {
	switch name {
	case book.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPages(v)
		return nil
	}
	return fmt.Errorf("unknown Book numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BookMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(book.FieldDeletedAt) {
		fields = append(fields, book.FieldDeletedAt)
	}
	if m.FieldCleared(book.FieldDescription) {
		fields = append(fields, book.FieldDescription)
	}
	if m.FieldCleared(book.FieldCoverURL) {
		fields = append(fields, book.FieldCoverURL)
	}
	if m.FieldCleared(book.FieldAuthors) {
		fields = append(fields, book.FieldAuthors)
	}
	if m.FieldCleared(book.FieldPublishers) {
		fields = append(fields, book.FieldPublishers)
	}
	if m.FieldCleared(book.FieldGenres) {
		fields = append(fields, book.FieldGenres)
	}
	if m.FieldCleared(book.FieldPremiered) {
		fields = append(fields, book.FieldPremiered)
	}
	if m.FieldCleared(book.FieldContributor) {
		fields = append(fields, book.FieldContributor)
	}
	if m.FieldCleared(book.FieldSeries) {
		fields = append(fields, book.FieldSeries)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BookMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BookMutation) ClearField(name string) error {
	switch name {
	case book.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case book.FieldDescription:
		m.ClearDescription()
		return nil
	case book.FieldCoverURL:
		m.ClearCoverURL()
		return nil
	case book.FieldAuthors:
		m.ClearAuthors()
		return nil
	case book.FieldPublishers:
		m.ClearPublishers()
		return nil
	case book.FieldGenres:
		m.ClearGenres()
		return nil
	case book.FieldPremiered:
		m.ClearPremiered()
		return nil
	case book.FieldContributor:
		m.ClearContributor()
		return nil
	case book.FieldSeries:
		m.ClearSeries()
		return nil
	}
	return fmt.Errorf("unknown Book nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BookMutation) ResetField(name string) error {
	switch name {
	case book.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case book.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case book.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case book.FieldTitle:
		m.ResetTitle()
		return nil
	case book.FieldSlug:
		m.ResetSlug()
		return nil
	case book.FieldDescription:
		m.ResetDescription()
		return nil
	case book.FieldCoverURL:
		m.ResetCoverURL()
		return nil
	case book.FieldAuthors:
		m.ResetAuthors()
		return nil
	case book.FieldPublishers:
		m.ResetPublishers()
		return nil
	case book.FieldGenres:
		m.ResetGenres()
		return nil
	case book.FieldPremiered:
		m.ResetPremiered()
		return nil
	case book.FieldDraft:
		m.ResetDraft()
		return nil
	case book.FieldAccepted:
		m.ResetAccepted()
		return nil
	case book.FieldContributor:
		m.ResetContributor()
		return nil
	case book.FieldPages:
		m.ResetPages()
		return nil
	case book.FieldSeries:
		m.ResetSeries()
		return nil
	}
	return fmt.Errorf("unknown Book field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BookMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BookMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BookMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BookMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BookMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BookMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BookMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Book unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BookMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Book edge %s", name)
}

// BooksReviewMutation represents an operation that mutates the BooksReview nodes in the graph.
type BooksReviewMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	created_at    *time.Time
	updated_at    *time.Time
	username      *string
	article_id    *uint
	addarticle_id *int
	review        *string
	review_html   *string
	overall       *int
	addoverall    *int
	art           *int
	addart        *int
	characters    *int
	addcharacters *int
	story         *int
	addstory      *int
	enjoyment     *int
	addenjoyment  *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*BooksReview, error)
	predicates    []predicate.BooksReview
}

var _ ent.Mutation = (*BooksReviewMutation)(nil)

// booksreviewOption allows management of the mutation configuration using functional options.
type booksreviewOption func(*BooksReviewMutation)

// newBooksReviewMutation creates new mutation for the BooksReview entity.
func newBooksReviewMutation(c config, op Op, opts ...booksreviewOption) *BooksReviewMutation {
	m := &BooksReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeBooksReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBooksReviewID sets the ID field of the mutation.
func withBooksReviewID(id uint) booksreviewOption {
	return func(m *BooksReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *BooksReview
		)
		m.oldValue = func(ctx context.Context) (*BooksReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BooksReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBooksReview sets the old BooksReview of the mutation.
func withBooksReview(node *BooksReview) booksreviewOption {
	return func(m *BooksReviewMutation) {
		m.oldValue = func(context.Context) (*BooksReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BooksReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BooksReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BooksReview entities.
func (m *BooksReviewMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BooksReviewMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BooksReviewMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BooksReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *BooksReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BooksReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BooksReview entity.
// If the BooksReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BooksReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BooksReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BooksReviewMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BooksReviewMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BooksReview entity.
// If the BooksReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BooksReviewMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BooksReviewMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *BooksReviewMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *BooksReviewMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the BooksReview entity.
// If the BooksReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BooksReviewMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *BooksReviewMutation) ResetUsername() {
	m.username = nil
}

// SetArticleID sets the "article_id" field.
func (m *BooksReviewMutation) SetArticleID(u uint) {
	m.article_id = &u
	m.addarticle_id = nil
}

// ArticleID returns the value of the "article_id" field in the mutation.
func (m *BooksReviewMutation) ArticleID() (r uint, exists bool) {
	v := m.article_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleID returns the old "article_id" field's value of the BooksReview entity.
// If the BooksReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BooksReviewMutation) OldArticleID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleID: %w", err)
	}
	return oldValue.ArticleID, nil
}

// AddArticleID adds u to the "article_id" field.
func (m *BooksReviewMutation) AddArticleID(u int) {
	if m.addarticle_id != nil {
		*m.addarticle_id += u
	} else {
		m.addarticle_id = &u
	}
}

// AddedArticleID returns the value that was added to the "article_id" field in this mutation.
func (m *BooksReviewMutation) AddedArticleID() (r int, exists bool) {
	v := m.addarticle_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetArticleID resets all changes to the "article_id" field.
func (m *BooksReviewMutation) ResetArticleID() {
	m.article_id = nil
	m.addarticle_id = nil
}

// SetReview sets the "review" field.
func (m *BooksReviewMutation) SetReview(s string) {
	m.review = &s
}

// Review returns the value of the "review" field in the mutation.
func (m *BooksReviewMutation) Review() (r string, exists bool) {
	v := m.review
	if v == nil {
		return
	}
	return *v, true
}

// OldReview returns the old "review" field's value of the BooksReview entity.
// If the BooksReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BooksReviewMutation) OldReview(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReview: %w", err)
	}
	return oldValue.Review, nil
}

// ResetReview resets all changes to the "review" field.
func (m *BooksReviewMutation) ResetReview() {
	m.review = nil
}

// SetReviewHTML sets the "review_html" field.
func (m *BooksReviewMutation) SetReviewHTML(s string) {
	m.review_html = &s
}

// ReviewHTML returns the value of the "review_html" field in the mutation.
func (m *BooksReviewMutation) ReviewHTML() (r string, exists bool) {
	v := m.review_html
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewHTML returns the old "review_html" field's value of the BooksReview entity.
// If the BooksReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BooksReviewMutation) OldReviewHTML(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewHTML: %w", err)
	}
	return oldValue.ReviewHTML, nil
}

// ClearReviewHTML clears the value of the "review_html" field.
func (m *BooksReviewMutation) ClearReviewHTML() {
	m.review_html = nil
	m.clearedFields[booksreview.FieldReviewHTML] = struct{}{}
}

// ReviewHTMLCleared returns if the "review_html" field was cleared in this mutation.
func (m *BooksReviewMutation) ReviewHTMLCleared() bool {
	_, ok := m.clearedFields[booksreview.FieldReviewHTML]
	return ok
}

// ResetReviewHTML resets all changes to the "review_html" field.
func (m *BooksReviewMutation) ResetReviewHTML() {
	m.review_html = nil
	delete(m.clearedFields, booksreview.FieldReviewHTML)
}

// SetOverall sets the "overall" field.
func (m *BooksReviewMutation) SetOverall(i int) {
	m.overall = &i
	m.addoverall = nil
}

// Overall returns the value of the "overall" field in the mutation.
func (m *BooksReviewMutation) Overall() (r int, exists bool) {
	v := m.overall
	if v == nil {
		return
	}
	return *v, true
}

// OldOverall returns the old "overall" field's value of the BooksReview entity.
// If the BooksReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BooksReviewMutation) OldOverall(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverall is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverall requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverall: %w", err)
	}
	return oldValue.Overall, nil
}

// AddOverall adds i to the "overall" field.
func (m *BooksReviewMutation) AddOverall(i int) {
	if m.addoverall != nil {
		*m.addoverall += i
	} else {
		m.addoverall = &i
	}
}

// AddedOverall returns the value that was added to the "overall" field in this mutation.
func (m *BooksReviewMutation) AddedOverall() (r int, exists bool) {
	v := m.addoverall
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverall resets all changes to the "overall" field.
func (m *BooksReviewMutation) ResetOverall() {
	m.overall = nil
	m.addoverall = nil
}

// SetArt sets the "art" field.
func (m *BooksReviewMutation) SetArt(i int) {
	m.art = &i
	m.addart = nil
}

// Art returns the value of the "art" field in the mutation.
func (m *BooksReviewMutation) Art() (r int, exists bool) {
	v := m.art
	if v == nil {
		return
	}
	return *v, true
}

// OldArt returns the old "art" field's value of the BooksReview entity.
// If the BooksReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BooksReviewMutation) OldArt(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArt: %w", err)
	}
	return oldValue.Art, nil
}

// AddArt adds i to the "art" field.
func (m *BooksReviewMutation) AddArt(i int) {
	if m.addart != nil {
		*m.addart += i
	} else {
		m.addart = &i
	}
}

// AddedArt returns the value that was added to the "art" field in this mutation.
func (m *BooksReviewMutation) AddedArt() (r int, exists bool) {
	v := m.addart
	if v == nil {
		return
	}
	return *v, true
}

// ClearArt clears the value of the "art" field.
func (m *BooksReviewMutation) ClearArt() {
	m.art = nil
	m.addart = nil
	m.clearedFields[booksreview.FieldArt] = struct{}{}
}

// ArtCleared returns if the "art" field was cleared in this mutation.
func (m *BooksReviewMutation) ArtCleared() bool {
	_, ok := m.clearedFields[booksreview.FieldArt]
	return ok
}

// ResetArt resets all changes to the "art" field.
func (m *BooksReviewMutation) ResetArt() {
	m.art = nil
	m.addart = nil
	delete(m.clearedFields, booksreview.FieldArt)
}

// SetCharacters sets the "characters" field.
func (m *BooksReviewMutation) SetCharacters(i int) {
	m.characters = &i
	m.addcharacters = nil
}

// Characters returns the value of the "characters" field in the mutation.
func (m *BooksReviewMutation) Characters() (r int, exists bool) {
	v := m.characters
	if v == nil {
		return
	}
	return *v, true
}

// OldCharacters returns the old "characters" field's value of the BooksReview entity.
// If the BooksReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BooksReviewMutation) OldCharacters(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharacters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharacters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharacters: %w", err)
	}
	return oldValue.Characters, nil
}

// AddCharacters adds i to the "characters" field.
func (m *BooksReviewMutation) AddCharacters(i int) {
	if m.addcharacters != nil {
		*m.addcharacters += i
	} else {
		m.addcharacters = &i
	}
}

// AddedCharacters returns the value that was added to the "characters" field in this mutation.
func (m *BooksReviewMutation) AddedCharacters() (r int, exists bool) {
	v := m.addcharacters
	if v == nil {
		return
	}
	return *v, true
}

// ClearCharacters clears the value of the "characters" field.
func (m *BooksReviewMutation) ClearCharacters() {
	m.characters = nil
	m.addcharacters = nil
	m.clearedFields[booksreview.FieldCharacters] = struct{}{}
}

// CharactersCleared returns if the "characters" field was cleared in this mutation.
func (m *BooksReviewMutation) CharactersCleared() bool {
	_, ok := m.clearedFields[booksreview.FieldCharacters]
	return ok
}

// ResetCharacters resets all changes to the "characters" field.
func (m *BooksReviewMutation) ResetCharacters() {
	m.characters = nil
	m.addcharacters = nil
	delete(m.clearedFields, booksreview.FieldCharacters)
}

// SetStory sets the "story" field.
func (m *BooksReviewMutation) SetStory(i int) {
	m.story = &i
	m.addstory = nil
}

// Story returns the value of the "story" field in the mutation.
func (m *BooksReviewMutation) Story() (r int, exists bool) {
	v := m.story
	if v == nil {
		return
	}
	return *v, true
}

// OldStory returns the old "story" field's value of the BooksReview entity.
// If the BooksReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BooksReviewMutation) OldStory(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStory: %w", err)
	}
	return oldValue.Story, nil
}

// AddStory adds i to the "story" field.
func (m *BooksReviewMutation) AddStory(i int) {
	if m.addstory != nil {
		*m.addstory += i
	} else {
		m.addstory = &i
	}
}

// AddedStory returns the value that was added to the "story" field in this mutation.
func (m *BooksReviewMutation) AddedStory() (r int, exists bool) {
	v := m.addstory
	if v == nil {
		return
	}
	return *v, true
}

// ClearStory clears the value of the "story" field.
func (m *BooksReviewMutation) ClearStory() {
	m.story = nil
	m.addstory = nil
	m.clearedFields[booksreview.FieldStory] = struct{}{}
}

// StoryCleared returns if the "story" field was cleared in this mutation.
func (m *BooksReviewMutation) StoryCleared() bool {
	_, ok := m.clearedFields[booksreview.FieldStory]
	return ok
}

// ResetStory resets all changes to the "story" field.
func (m *BooksReviewMutation) ResetStory() {
	m.story = nil
	m.addstory = nil
	delete(m.clearedFields, booksreview.FieldStory)
}

// SetEnjoyment sets the "enjoyment" field.
func (m *BooksReviewMutation) SetEnjoyment(i int) {
	m.enjoyment = &i
	m.addenjoyment = nil
}

// Enjoyment returns the value of the "enjoyment" field in the mutation.
func (m *BooksReviewMutation) Enjoyment() (r int, exists bool) {
	v := m.enjoyment
	if v == nil {
		return
	}
	return *v, true
}

// OldEnjoyment returns the old "enjoyment" field's value of the BooksReview entity.
// If the BooksReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BooksReviewMutation) OldEnjoyment(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnjoyment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnjoyment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnjoyment: %w", err)
	}
	return oldValue.Enjoyment, nil
}

// AddEnjoyment adds i to the "enjoyment" field.
func (m *BooksReviewMutation) AddEnjoyment(i int) {
	if m.addenjoyment != nil {
		*m.addenjoyment += i
	} else {
		m.addenjoyment = &i
	}
}

// AddedEnjoyment returns the value that was added to the "enjoyment" field in this mutation.
func (m *BooksReviewMutation) AddedEnjoyment() (r int, exists bool) {
	v := m.addenjoyment
	if v == nil {
		return
	}
	return *v, true
}

// ClearEnjoyment clears the value of the "enjoyment" field.
func (m *BooksReviewMutation) ClearEnjoyment() {
	m.enjoyment = nil
	m.addenjoyment = nil
	m.clearedFields[booksreview.FieldEnjoyment] = struct{}{}
}

// EnjoymentCleared returns if the "enjoyment" field was cleared in this mutation.
func (m *BooksReviewMutation) EnjoymentCleared() bool {
	_, ok := m.clearedFields[booksreview.FieldEnjoyment]
	return ok
}

// ResetEnjoyment resets all changes to the "enjoyment" field.
func (m *BooksReviewMutation) ResetEnjoyment() {
	m.enjoyment = nil
	m.addenjoyment = nil
	delete(m.clearedFields, booksreview.FieldEnjoyment)
}

// Where appends a list predicates to the BooksReviewMutation builder.
func (m *BooksReviewMutation) Where(ps ...predicate.BooksReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BooksReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BooksReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BooksReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BooksReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BooksReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BooksReview).
func (m *BooksReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BooksReviewMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, booksreview.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, booksreview.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, booksreview.FieldUsername)
	}
	if m.article_id != nil {
		fields = append(fields, booksreview.FieldArticleID)
	}
	if m.review != nil {
		fields = append(fields, booksreview.FieldReview)
	}
	if m.review_html != nil {
		fields = append(fields, booksreview.FieldReviewHTML)
	}
	if m.overall != nil {
		fields = append(fields, booksreview.FieldOverall)
	}
	if m.art != nil {
		fields = append(fields, booksreview.FieldArt)
	}
	if m.characters != nil {
		fields = append(fields, booksreview.FieldCharacters)
	}
	if m.story != nil {
		fields = append(fields, booksreview.FieldStory)
	}
	if m.enjoyment != nil {
		fields = append(fields, booksreview.FieldEnjoyment)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BooksReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case booksreview.FieldCreatedAt:
		return m.CreatedAt()
	case booksreview.FieldUpdatedAt:
		return m.UpdatedAt()
	case booksreview.FieldUsername:
		return m.Username()
	case booksreview.FieldArticleID:
		return m.ArticleID()
	case booksreview.FieldReview:
		return m.Review()
	case booksreview.FieldReviewHTML:
		return m.ReviewHTML()
	case booksreview.FieldOverall:
		return m.Overall()
	case booksreview.FieldArt:
		return m.Art()
	case booksreview.FieldCharacters:
		return m.Characters()
	case booksreview.FieldStory:
		return m.Story()
	case booksreview.FieldEnjoyment:
		return m.Enjoyment()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BooksReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case booksreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case booksreview.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case booksreview.FieldUsername:
		return m.OldUsername(ctx)
	case booksreview.FieldArticleID:
		return m.OldArticleID(ctx)
	case booksreview.FieldReview:
		return m.OldReview(ctx)
	case booksreview.FieldReviewHTML:
		return m.OldReviewHTML(ctx)
	case booksreview.FieldOverall:
		return m.OldOverall(ctx)
	case booksreview.FieldArt:
		return m.OldArt(ctx)
	case booksreview.FieldCharacters:
		return m.OldCharacters(ctx)
	case booksreview.FieldStory:
		return m.OldStory(ctx)
	case booksreview.FieldEnjoyment:
		return m.OldEnjoyment(ctx)
	}
	return nil, fmt.Errorf("unknown BooksReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BooksReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case booksreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case booksreview.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case booksreview.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case booksreview.FieldArticleID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleID(v)
		return nil
	case booksreview.FieldReview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReview(v)
		return nil
	case booksreview.FieldReviewHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewHTML(v)
		return nil
	case booksreview.FieldOverall:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverall(v)
		return nil
	case booksreview.FieldArt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArt(v)
		return nil
	case booksreview.FieldCharacters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharacters(v)
		return nil
	case booksreview.FieldStory:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStory(v)
		return nil
	case booksreview.FieldEnjoyment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnjoyment(v)
		return nil
	}
	return fmt.Errorf("unknown BooksReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BooksReviewMutation) AddedFields() []string {
	var fields []string
	if m.addarticle_id != nil {
		fields = append(fields, booksreview.FieldArticleID)
	}
	if m.addoverall != nil {
		fields = append(fields, booksreview.FieldOverall)
	}
	if m.addart != nil {
		fields = append(fields, booksreview.FieldArt)
	}
	if m.addcharacters != nil {
		fields = append(fields, booksreview.FieldCharacters)
	}
	if m.addstory != nil {
		fields = append(fields, booksreview.FieldStory)
	}
	if m.addenjoyment != nil {
		fields = append(fields, booksreview.FieldEnjoyment)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BooksReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case booksreview.FieldArticleID:
		return m.AddedArticleID()
	case booksreview.FieldOverall:
		return m.AddedOverall()
	case booksreview.FieldArt:
		return m.AddedArt()
	case booksreview.FieldCharacters:
		return m.AddedCharacters()
	case booksreview.FieldStory:
		return m.AddedStory()
	case booksreview.FieldEnjoyment:
		return m.AddedEnjoyment()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BooksReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case booksreview.FieldArticleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleID(v)
		return nil
	case booksreview.FieldOverall:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverall(v)
		return nil
	case booksreview.FieldArt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArt(v)
		return nil
	case booksreview.FieldCharacters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCharacters(v)
		return nil
	case booksreview.FieldStory:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStory(v)
		return nil
	case booksreview.FieldEnjoyment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnjoyment(v)
		return nil
	}
	return fmt.Errorf("unknown BooksReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BooksReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(booksreview.FieldReviewHTML) {
		fields = append(fields, booksreview.FieldReviewHTML)
	}
	if m.FieldCleared(booksreview.FieldArt) {
		fields = append(fields, booksreview.FieldArt)
	}
	if m.FieldCleared(booksreview.FieldCharacters) {
		fields = append(fields, booksreview.FieldCharacters)
	}
	if m.FieldCleared(booksreview.FieldStory) {
		fields = append(fields, booksreview.FieldStory)
	}
	if m.FieldCleared(booksreview.FieldEnjoyment) {
		fields = append(fields, booksreview.FieldEnjoyment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BooksReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BooksReviewMutation) ClearField(name string) error {
	switch name {
	case booksreview.FieldReviewHTML:
		m.ClearReviewHTML()
		return nil
	case booksreview.FieldArt:
		m.ClearArt()
		return nil
	case booksreview.FieldCharacters:
		m.ClearCharacters()
		return nil
	case booksreview.FieldStory:
		m.ClearStory()
		return nil
	case booksreview.FieldEnjoyment:
		m.ClearEnjoyment()
		return nil
	}
	return fmt.Errorf("unknown BooksReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BooksReviewMutation) ResetField(name string) error {
	switch name {
	case booksreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case booksreview.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case booksreview.FieldUsername:
		m.ResetUsername()
		return nil
	case booksreview.FieldArticleID:
		m.ResetArticleID()
		return nil
	case booksreview.FieldReview:
		m.ResetReview()
		return nil
	case booksreview.FieldReviewHTML:
		m.ResetReviewHTML()
		return nil
	case booksreview.FieldOverall:
		m.ResetOverall()
		return nil
	case booksreview.FieldArt:
		m.ResetArt()
		return nil
	case booksreview.FieldCharacters:
		m.ResetCharacters()
		return nil
	case booksreview.FieldStory:
		m.ResetStory()
		return nil
	case booksreview.FieldEnjoyment:
		m.ResetEnjoyment()
		return nil
	}
	return fmt.Errorf("unknown BooksReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BooksReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BooksReviewMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BooksReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BooksReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BooksReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BooksReviewMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BooksReviewMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BooksReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BooksReviewMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BooksReview edge %s", name)
}

// ComicMutation represents an operation that mutates the Comic nodes in the graph.
type ComicMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	deleted_at    *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	title         *string
	slug          *string
	description   *string
	cover_url     *string
	authors       *string
	publishers    *string
	genres        *string
	premiered     *time.Time
	draft         *bool
	accepted      *bool
	contributor   *string
	issues        *int
	addissues     *int
	finished_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Comic, error)
	predicates    []predicate.Comic
}

var _ ent.Mutation = (*ComicMutation)(nil)

// comicOption allows management of the mutation configuration using functional options.
type comicOption func(*ComicMutation)

// newComicMutation creates new mutation for the Comic entity.
func newComicMutation(c config, op Op, opts ...comicOption) *ComicMutation {
	m := &ComicMutation{
		config:        c,
		op:            op,
		typ:           TypeComic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withComicID sets the ID field of the mutation.
func withComicID(id uint) comicOption {
	return func(m *ComicMutation) {
		var (
			err   error
			once  sync.Once
			value *Comic
		)
		m.oldValue = func(ctx context.Context) (*Comic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Comic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComic sets the old Comic of the mutation.
func withComic(node *Comic) comicOption {
	return func(m *ComicMutation) {
		m.oldValue = func(context.Context) (*Comic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ComicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ComicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Comic entities.
func (m *ComicMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ComicMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ComicMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Comic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeletedAt sets the "deleted_at" field.
func (m *ComicMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *ComicMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *ComicMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[comic.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *ComicMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[comic.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *ComicMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, comic.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *ComicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ComicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ComicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ComicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ComicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ComicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *ComicMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ComicMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ComicMutation) ResetTitle() {
	m.title = nil
}

// SetSlug sets the "slug" field.
func (m *ComicMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *ComicMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *ComicMutation) ResetSlug() {
	m.slug = nil
}

// SetDescription sets the "description" field.
func (m *ComicMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *ComicMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *ComicMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[comic.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *ComicMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[comic.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *ComicMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, comic.FieldDescription)
}

// SetCoverURL sets the "cover_url" field.
func (m *ComicMutation) SetCoverURL(s string) {
	m.cover_url = &s
}

// CoverURL returns the value of the "cover_url" field in the mutation.
func (m *ComicMutation) CoverURL() (r string, exists bool) {
	v := m.cover_url
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverURL returns the old "cover_url" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldCoverURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverURL: %w", err)
	}
	return oldValue.CoverURL, nil
}

// ClearCoverURL clears the value of the "cover_url" field.
func (m *ComicMutation) ClearCoverURL() {
	m.cover_url = nil
	m.clearedFields[comic.FieldCoverURL] = struct{}{}
}

// CoverURLCleared returns if the "cover_url" field was cleared in this mutation.
func (m *ComicMutation) CoverURLCleared() bool {
	_, ok := m.clearedFields[comic.FieldCoverURL]
	return ok
}

// ResetCoverURL resets all changes to the "cover_url" field.
func (m *ComicMutation) ResetCoverURL() {
	m.cover_url = nil
	delete(m.clearedFields, comic.FieldCoverURL)
}

// SetAuthors sets the "authors" field.
func (m *ComicMutation) SetAuthors(s string) {
	m.authors = &s
}

// Authors returns the value of the "authors" field in the mutation.
func (m *ComicMutation) Authors() (r string, exists bool) {
	v := m.authors
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthors returns the old "authors" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldAuthors(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthors: %w", err)
	}
	return oldValue.Authors, nil
}

// ClearAuthors clears the value of the "authors" field.
func (m *ComicMutation) ClearAuthors() {
	m.authors = nil
	m.clearedFields[comic.FieldAuthors] = struct{}{}
}

// AuthorsCleared returns if the "authors" field was cleared in this mutation.
func (m *ComicMutation) AuthorsCleared() bool {
	_, ok := m.clearedFields[comic.FieldAuthors]
	return ok
}

// ResetAuthors resets all changes to the "authors" field.
func (m *ComicMutation) ResetAuthors() {
	m.authors = nil
	delete(m.clearedFields, comic.FieldAuthors)
}

// SetPublishers sets the "publishers" field.
func (m *ComicMutation) SetPublishers(s string) {
	m.publishers = &s
}

// Publishers returns the value of the "publishers" field in the mutation.
func (m *ComicMutation) Publishers() (r string, exists bool) {
	v := m.publishers
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishers returns the old "publishers" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldPublishers(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishers: %w", err)
	}
	return oldValue.Publishers, nil
}

// ClearPublishers clears the value of the "publishers" field.
func (m *ComicMutation) ClearPublishers() {
	m.publishers = nil
	m.clearedFields[comic.FieldPublishers] = struct{}{}
}

// PublishersCleared returns if the "publishers" field was cleared in this mutation.
func (m *ComicMutation) PublishersCleared() bool {
	_, ok := m.clearedFields[comic.FieldPublishers]
	return ok
}

// ResetPublishers resets all changes to the "publishers" field.
func (m *ComicMutation) ResetPublishers() {
	m.publishers = nil
	delete(m.clearedFields, comic.FieldPublishers)
}

// SetGenres sets the "genres" field.
func (m *ComicMutation) SetGenres(s string) {
	m.genres = &s
}

// Genres returns the value of the "genres" field in the mutation.
func (m *ComicMutation) Genres() (r string, exists bool) {
	v := m.genres
	if v == nil {
		return
	}
	return *v, true
}

// OldGenres returns the old "genres" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldGenres(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenres is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenres requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenres: %w", err)
	}
	return oldValue.Genres, nil
}

// ClearGenres clears the value of the "genres" field.
func (m *ComicMutation) ClearGenres() {
	m.genres = nil
	m.clearedFields[comic.FieldGenres] = struct{}{}
}

// GenresCleared returns if the "genres" field was cleared in this mutation.
func (m *ComicMutation) GenresCleared() bool {
	_, ok := m.clearedFields[comic.FieldGenres]
	return ok
}

// ResetGenres resets all changes to the "genres" field.
func (m *ComicMutation) ResetGenres() {
	m.genres = nil
	delete(m.clearedFields, comic.FieldGenres)
}

// SetPremiered sets the "premiered" field.
func (m *ComicMutation) SetPremiered(t time.Time) {
	m.premiered = &t
}

// Premiered returns the value of the "premiered" field in the mutation.
func (m *ComicMutation) Premiered() (r time.Time, exists bool) {
	v := m.premiered
	if v == nil {
		return
	}
	return *v, true
}

// OldPremiered returns the old "premiered" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldPremiered(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPremiered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPremiered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPremiered: %w", err)
	}
	return oldValue.Premiered, nil
}

// ClearPremiered clears the value of the "premiered" field.
func (m *ComicMutation) ClearPremiered() {
	m.premiered = nil
	m.clearedFields[comic.FieldPremiered] = struct{}{}
}

// PremieredCleared returns if the "premiered" field was cleared in this mutation.
func (m *ComicMutation) PremieredCleared() bool {
	_, ok := m.clearedFields[comic.FieldPremiered]
	return ok
}

// ResetPremiered resets all changes to the "premiered" field.
func (m *ComicMutation) ResetPremiered() {
	m.premiered = nil
	delete(m.clearedFields, comic.FieldPremiered)
}

// SetDraft sets the "draft" field.
func (m *ComicMutation) SetDraft(b bool) {
	m.draft = &b
}

// Draft returns the value of the "draft" field in the mutation.
func (m *ComicMutation) Draft() (r bool, exists bool) {
	v := m.draft
	if v == nil {
		return
	}
	return *v, true
}

// OldDraft returns the old "draft" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldDraft(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDraft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDraft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDraft: %w", err)
	}
	return oldValue.Draft, nil
}

// ResetDraft resets all changes to the "draft" field.
func (m *ComicMutation) ResetDraft() {
	m.draft = nil
}

// SetAccepted sets the "accepted" field.
func (m *ComicMutation) SetAccepted(b bool) {
	m.accepted = &b
}

// Accepted returns the value of the "accepted" field in the mutation.
func (m *ComicMutation) Accepted() (r bool, exists bool) {
	v := m.accepted
	if v == nil {
		return
	}
	return *v, true
}

// OldAccepted returns the old "accepted" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldAccepted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccepted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccepted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccepted: %w", err)
	}
	return oldValue.Accepted, nil
}

// ResetAccepted resets all changes to the "accepted" field.
func (m *ComicMutation) ResetAccepted() {
	m.accepted = nil
}

// SetContributor sets the "contributor" field.
func (m *ComicMutation) SetContributor(s string) {
	m.contributor = &s
}

// Contributor returns the value of the "contributor" field in the mutation.
func (m *ComicMutation) Contributor() (r string, exists bool) {
	v := m.contributor
	if v == nil {
		return
	}
	return *v, true
}

// OldContributor returns the old "contributor" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldContributor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributor: %w", err)
	}
	return oldValue.Contributor, nil
}

// ClearContributor clears the value of the "contributor" field.
func (m *ComicMutation) ClearContributor() {
	m.contributor = nil
	m.clearedFields[comic.FieldContributor] = struct{}{}
}

// ContributorCleared returns if the "contributor" field was cleared in this mutation.
func (m *ComicMutation) ContributorCleared() bool {
	_, ok := m.clearedFields[comic.FieldContributor]
	return ok
}

// ResetContributor resets all changes to the "contributor" field.
func (m *ComicMutation) ResetContributor() {
	m.contributor = nil
	delete(m.clearedFields, comic.FieldContributor)
}

// SetIssues sets the "issues" field.
func (m *ComicMutation) SetIssues(i int) {
	m.issues = &i
	m.addissues = nil
}

// Issues returns the value of the "issues" field in the mutation.
func (m *ComicMutation) Issues() (r int, exists bool) {
	v := m.issues
	if v == nil {
		return
	}
	return *v, true
}

// OldIssues returns the old "issues" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldIssues(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssues: %w", err)
	}
	return oldValue.Issues, nil
}

// AddIssues adds i to the "issues" field.
func (m *ComicMutation) AddIssues(i int) {
	if m.addissues != nil {
		*m.addissues += i
	} else {
		m.addissues = &i
	}
}

// AddedIssues returns the value that was added to the "issues" field in this mutation.
func (m *ComicMutation) AddedIssues() (r int, exists bool) {
	v := m.addissues
	if v == nil {
		return
	}
	return *v, true
}

// ResetIssues resets all changes to the "issues" field.
func (m *ComicMutation) ResetIssues() {
	m.issues = nil
	m.addissues = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ComicMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ComicMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Comic entity.
// If the Comic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ComicMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[comic.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ComicMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[comic.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ComicMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, comic.FieldFinishedAt)
}

// Where appends a list predicates to the ComicMutation builder.
func (m *ComicMutation) Where(ps ...predicate.Comic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ComicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ComicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Comic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ComicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ComicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Comic).
func (m *ComicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ComicMutation) Fields() []string {
	fields := make([]string, 0, 16)
	if m.deleted_at != nil {
		fields = append(fields, comic.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, comic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, comic.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, comic.FieldTitle)
	}
	if m.slug != nil {
		fields = append(fields, comic.FieldSlug)
	}
	if m.description != nil {
		fields = append(fields, comic.FieldDescription)
	}
	if m.cover_url != nil {
		fields = append(fields, comic.FieldCoverURL)
	}
	if m.authors != nil {
		fields = append(fields, comic.FieldAuthors)
	}
	if m.publishers != nil {
		fields = append(fields, comic.FieldPublishers)
	}
	if m.genres != nil {
		fields = append(fields, comic.FieldGenres)
	}
	if m.premiered != nil {
		fields = append(fields, comic.FieldPremiered)
	}
	if m.draft != nil {
		fields = append(fields, comic.FieldDraft)
	}
	if m.accepted != nil {
		fields = append(fields, comic.FieldAccepted)
	}
	if m.contributor != nil {
		fields = append(fields, comic.FieldContributor)
	}
	if m.issues != nil {
		fields = append(fields, comic.FieldIssues)
	}
	if m.finished_at != nil {
		fields = append(fields, comic.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ComicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case comic.FieldDeletedAt:
		return m.DeletedAt()
	case comic.FieldCreatedAt:
		return m.CreatedAt()
	case comic.FieldUpdatedAt:
		return m.UpdatedAt()
	case comic.FieldTitle:
		return m.Title()
	case comic.FieldSlug:
		return m.Slug()
	case comic.FieldDescription:
		return m.Description()
	case comic.FieldCoverURL:
		return m.CoverURL()
	case comic.FieldAuthors:
		return m.Authors()
	case comic.FieldPublishers:
		return m.Publishers()
	case comic.FieldGenres:
		return m.Genres()
	case comic.FieldPremiered:
		return m.Premiered()
	case comic.FieldDraft:
		return m.Draft()
	case comic.FieldAccepted:
		return m.Accepted()
	case comic.FieldContributor:
		return m.Contributor()
	case comic.FieldIssues:
		return m.Issues()
	case comic.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ComicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case comic.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case comic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case comic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case comic.FieldTitle:
		return m.OldTitle(ctx)
	case comic.FieldSlug:
		return m.OldSlug(ctx)
	case comic.FieldDescription:
		return m.OldDescription(ctx)
	case comic.FieldCoverURL:
		return m.OldCoverURL(ctx)
	case comic.FieldAuthors:
		return m.OldAuthors(ctx)
	case comic.FieldPublishers:
		return m.OldPublishers(ctx)
	case comic.FieldGenres:
		return m.OldGenres(ctx)
	case comic.FieldPremiered:
		return m.OldPremiered(ctx)
	case comic.FieldDraft:
		return m.OldDraft(ctx)
	case comic.FieldAccepted:
		return m.OldAccepted(ctx)
	case comic.FieldContributor:
		return m.OldContributor(ctx)
	case comic.FieldIssues:
		return m.OldIssues(ctx)
	case comic.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Comic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case comic.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case comic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case comic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case comic.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case comic.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case comic.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case comic.FieldCoverURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverURL(v)
		return nil
	case comic.FieldAuthors:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthors(v)
		return nil
	case comic.FieldPublishers:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishers(v)
		return nil
	case comic.FieldGenres:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenres(v)
		return nil
	case comic.FieldPremiered:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPremiered(v)
		return nil
	case comic.FieldDraft:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDraft(v)
		return nil
	case comic.FieldAccepted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccepted(v)
		return nil
	case comic.FieldContributor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributor(v)
		return nil
	case comic.FieldIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssues(v)
		return nil
	case comic.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Comic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ComicMutation) AddedFields() []string {
	var fields []string
	if m.addissues != nil {
		fields = append(fields, comic.FieldIssues)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ComicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case comic.FieldIssues:
		return m.AddedIssues()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case comic.FieldIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIssues(v)
		return nil
	}
	return fmt.Errorf("unknown Comic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ComicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(comic.FieldDeletedAt) {
		fields = append(fields, comic.FieldDeletedAt)
	}
	if m.FieldCleared(comic.FieldDescription) {
		fields = append(fields, comic.FieldDescription)
	}
	if m.FieldCleared(comic.FieldCoverURL) {
		fields = append(fields, comic.FieldCoverURL)
	}
	if m.FieldCleared(comic.FieldAuthors) {
		fields = append(fields, comic.FieldAuthors)
	}
	if m.FieldCleared(comic.FieldPublishers) {
		fields = append(fields, comic.FieldPublishers)
	}
	if m.FieldCleared(comic.FieldGenres) {
		fields = append(fields, comic.FieldGenres)
	}
	if m.FieldCleared(comic.FieldPremiered) {
		fields = append(fields, comic.FieldPremiered)
	}
	if m.FieldCleared(comic.FieldContributor) {
		fields = append(fields, comic.FieldContributor)
	}
	if m.FieldCleared(comic.FieldFinishedAt) {
		fields = append(fields, comic.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ComicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ComicMutation) ClearField(name string) error {
	switch name {
	case comic.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case comic.FieldDescription:
		m.ClearDescription()
		return nil
	case comic.FieldCoverURL:
		m.ClearCoverURL()
		return nil
	case comic.FieldAuthors:
		m.ClearAuthors()
		return nil
	case comic.FieldPublishers:
		m.ClearPublishers()
		return nil
	case comic.FieldGenres:
		m.ClearGenres()
		return nil
	case comic.FieldPremiered:
		m.ClearPremiered()
		return nil
	case comic.FieldContributor:
		m.ClearContributor()
		return nil
	case comic.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Comic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ComicMutation) ResetField(name string) error {
	switch name {
	case comic.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case comic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case comic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case comic.FieldTitle:
		m.ResetTitle()
		return nil
	case comic.FieldSlug:
		m.ResetSlug()
		return nil
	case comic.FieldDescription:
		m.ResetDescription()
		return nil
	case comic.FieldCoverURL:
		m.ResetCoverURL()
		return nil
	case comic.FieldAuthors:
		m.ResetAuthors()
		return nil
	case comic.FieldPublishers:
		m.ResetPublishers()
		return nil
	case comic.FieldGenres:
		m.ResetGenres()
		return nil
	case comic.FieldPremiered:
		m.ResetPremiered()
		return nil
	case comic.FieldDraft:
		m.ResetDraft()
		return nil
	case comic.FieldAccepted:
		m.ResetAccepted()
		return nil
	case comic.FieldContributor:
		m.ResetContributor()
		return nil
	case comic.FieldIssues:
		m.ResetIssues()
		return nil
	case comic.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Comic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ComicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ComicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ComicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ComicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ComicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ComicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ComicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Comic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ComicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Comic edge %s", name)
}

// ComicsReviewMutation represents an operation that mutates the ComicsReview nodes in the graph.
type ComicsReviewMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	created_at    *time.Time
	updated_at    *time.Time
	username      *string
	article_id    *uint
	addarticle_id *int
	review        *string
	review_html   *string
	overall       *int
	addoverall    *int
	art           *int
	addart        *int
	characters    *int
	addcharacters *int
	story         *int
	addstory      *int
	enjoyment     *int
	addenjoyment  *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*ComicsReview, error)
	predicates    []predicate.ComicsReview
}

var _ ent.Mutation = (*ComicsReviewMutation)(nil)

// comicsreviewOption allows management of the mutation configuration using functional options.
type comicsreviewOption func(*ComicsReviewMutation)

// newComicsReviewMutation creates new mutation for the ComicsReview entity.
func newComicsReviewMutation(c config, op Op, opts ...comicsreviewOption) *ComicsReviewMutation {
	m := &ComicsReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeComicsReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withComicsReviewID sets the ID field of the mutation.
func withComicsReviewID(id uint) comicsreviewOption {
	return func(m *ComicsReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *ComicsReview
		)
		m.oldValue = func(ctx context.Context) (*ComicsReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ComicsReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withComicsReview sets the old ComicsReview of the mutation.
func withComicsReview(node *ComicsReview) comicsreviewOption {
	return func(m *ComicsReviewMutation) {
		m.oldValue = func(context.Context) (*ComicsReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ComicsReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ComicsReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ComicsReview entities.
func (m *ComicsReviewMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ComicsReviewMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ComicsReviewMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ComicsReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *ComicsReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ComicsReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ComicsReview entity.
// If the ComicsReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicsReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ComicsReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ComicsReviewMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ComicsReviewMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ComicsReview entity.
// If the ComicsReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicsReviewMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ComicsReviewMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *ComicsReviewMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *ComicsReviewMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the ComicsReview entity.
// If the ComicsReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicsReviewMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *ComicsReviewMutation) ResetUsername() {
	m.username = nil
}

// SetArticleID sets the "article_id" field.
func (m *ComicsReviewMutation) SetArticleID(u uint) {
	m.article_id = &u
	m.addarticle_id = nil
}

// ArticleID returns the value of the "article_id" field in the mutation.
func (m *ComicsReviewMutation) ArticleID() (r uint, exists bool) {
	v := m.article_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleID returns the old "article_id" field's value of the ComicsReview entity.
// If the ComicsReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicsReviewMutation) OldArticleID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleID: %w", err)
	}
	return oldValue.ArticleID, nil
}

// AddArticleID adds u to the "article_id" field.
func (m *ComicsReviewMutation) AddArticleID(u int) {
	if m.addarticle_id != nil {
		*m.addarticle_id += u
	} else {
		m.addarticle_id = &u
	}
}

// AddedArticleID returns the value that was added to the "article_id" field in this mutation.
func (m *ComicsReviewMutation) AddedArticleID() (r int, exists bool) {
	v := m.addarticle_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetArticleID resets all changes to the "article_id" field.
func (m *ComicsReviewMutation) ResetArticleID() {
	m.article_id = nil
	m.addarticle_id = nil
}

// SetReview sets the "review" field.
func (m *ComicsReviewMutation) SetReview(s string) {
	m.review = &s
}

// Review returns the value of the "review" field in the mutation.
func (m *ComicsReviewMutation) Review() (r string, exists bool) {
	v := m.review
	if v == nil {
		return
	}
	return *v, true
}

// OldReview returns the old "review" field's value of the ComicsReview entity.
// If the ComicsReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicsReviewMutation) OldReview(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReview: %w", err)
	}
	return oldValue.Review, nil
}

// ResetReview resets all changes to the "review" field.
func (m *ComicsReviewMutation) ResetReview() {
	m.review = nil
}

// SetReviewHTML sets the "review_html" field.
func (m *ComicsReviewMutation) SetReviewHTML(s string) {
	m.review_html = &s
}

// ReviewHTML returns the value of the "review_html" field in the mutation.
func (m *ComicsReviewMutation) ReviewHTML() (r string, exists bool) {
	v := m.review_html
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewHTML returns the old "review_html" field's value of the ComicsReview entity.
// If the ComicsReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicsReviewMutation) OldReviewHTML(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewHTML: %w", err)
	}
	return oldValue.ReviewHTML, nil
}

// ClearReviewHTML clears the value of the "review_html" field.
func (m *ComicsReviewMutation) ClearReviewHTML() {
	m.review_html = nil
	m.clearedFields[comicsreview.FieldReviewHTML] = struct{}{}
}

// ReviewHTMLCleared returns if the "review_html" field was cleared in this mutation.
func (m *ComicsReviewMutation) ReviewHTMLCleared() bool {
	_, ok := m.clearedFields[comicsreview.FieldReviewHTML]
	return ok
}

// ResetReviewHTML resets all changes to the "review_html" field.
func (m *ComicsReviewMutation) ResetReviewHTML() {
	m.review_html = nil
	delete(m.clearedFields, comicsreview.FieldReviewHTML)
}

// SetOverall sets the "overall" field.
func (m *ComicsReviewMutation) SetOverall(i int) {
	m.overall = &i
	m.addoverall = nil
}

// Overall returns the value of the "overall" field in the mutation.
func (m *ComicsReviewMutation) Overall() (r int, exists bool) {
	v := m.overall
	if v == nil {
		return
	}
	return *v, true
}

// OldOverall returns the old "overall" field's value of the ComicsReview entity.
// If the ComicsReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicsReviewMutation) OldOverall(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverall is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverall requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverall: %w", err)
	}
	return oldValue.Overall, nil
}

// AddOverall adds i to the "overall" field.
func (m *ComicsReviewMutation) AddOverall(i int) {
	if m.addoverall != nil {
		*m.addoverall += i
	} else {
		m.addoverall = &i
	}
}

// AddedOverall returns the value that was added to the "overall" field in this mutation.
func (m *ComicsReviewMutation) AddedOverall() (r int, exists bool) {
	v := m.addoverall
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverall resets all changes to the "overall" field.
func (m *ComicsReviewMutation) ResetOverall() {
	m.overall = nil
	m.addoverall = nil
}

// SetArt sets the "art" field.
func (m *ComicsReviewMutation) SetArt(i int) {
	m.art = &i
	m.addart = nil
}

// Art returns the value of the "art" field in the mutation.
func (m *ComicsReviewMutation) Art() (r int, exists bool) {
	v := m.art
	if v == nil {
		return
	}
	return *v, true
}

// OldArt returns the old "art" field's value of the ComicsReview entity.
// If the ComicsReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicsReviewMutation) OldArt(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArt: %w", err)
	}
	return oldValue.Art, nil
}

// AddArt adds i to the "art" field.
func (m *ComicsReviewMutation) AddArt(i int) {
	if m.addart != nil {
		*m.addart += i
	} else {
		m.addart = &i
	}
}

// AddedArt returns the value that was added to the "art" field in this mutation.
func (m *ComicsReviewMutation) AddedArt() (r int, exists bool) {
	v := m.addart
	if v == nil {
		return
	}
	return *v, true
}

// ClearArt clears the value of the "art" field.
func (m *ComicsReviewMutation) ClearArt() {
	m.art = nil
	m.addart = nil
	m.clearedFields[comicsreview.FieldArt] = struct{}{}
}

// ArtCleared returns if the "art" field was cleared in this mutation.
func (m *ComicsReviewMutation) ArtCleared() bool {
	_, ok := m.clearedFields[comicsreview.FieldArt]
	return ok
}

// ResetArt resets all changes to the "art" field.
func (m *ComicsReviewMutation) ResetArt() {
	m.art = nil
	m.addart = nil
	delete(m.clearedFields, comicsreview.FieldArt)
}

// SetCharacters sets the "characters" field.
func (m *ComicsReviewMutation) SetCharacters(i int) {
	m.characters = &i
	m.addcharacters = nil
}

// Characters returns the value of the "characters" field in the mutation.
func (m *ComicsReviewMutation) Characters() (r int, exists bool) {
	v := m.characters
	if v == nil {
		return
	}
	return *v, true
}

// OldCharacters returns the old "characters" field's value of the ComicsReview entity.
// If the ComicsReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicsReviewMutation) OldCharacters(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharacters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharacters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharacters: %w", err)
	}
	return oldValue.Characters, nil
}

// AddCharacters adds i to the "characters" field.
func (m *ComicsReviewMutation) AddCharacters(i int) {
	if m.addcharacters != nil {
		*m.addcharacters += i
	} else {
		m.addcharacters = &i
	}
}

// AddedCharacters returns the value that was added to the "characters" field in this mutation.
func (m *ComicsReviewMutation) AddedCharacters() (r int, exists bool) {
	v := m.addcharacters
	if v == nil {
		return
	}
	return *v, true
}

// ClearCharacters clears the value of the "characters" field.
func (m *ComicsReviewMutation) ClearCharacters() {
	m.characters = nil
	m.addcharacters = nil
	m.clearedFields[comicsreview.FieldCharacters] = struct{}{}
}

// CharactersCleared returns if the "characters" field was cleared in this mutation.
func (m *ComicsReviewMutation) CharactersCleared() bool {
	_, ok := m.clearedFields[comicsreview.FieldCharacters]
	return ok
}

// ResetCharacters resets all changes to the "characters" field.
func (m *ComicsReviewMutation) ResetCharacters() {
	m.characters = nil
	m.addcharacters = nil
	delete(m.clearedFields, comicsreview.FieldCharacters)
}

// SetStory sets the "story" field.
func (m *ComicsReviewMutation) SetStory(i int) {
	m.story = &i
	m.addstory = nil
}

// Story returns the value of the "story" field in the mutation.
func (m *ComicsReviewMutation) Story() (r int, exists bool) {
	v := m.story
	if v == nil {
		return
	}
	return *v, true
}

// OldStory returns the old "story" field's value of the ComicsReview entity.
// If the ComicsReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicsReviewMutation) OldStory(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStory: %w", err)
	}
	return oldValue.Story, nil
}

// AddStory adds i to the "story" field.
func (m *ComicsReviewMutation) AddStory(i int) {
	if m.addstory != nil {
		*m.addstory += i
	} else {
		m.addstory = &i
	}
}

// AddedStory returns the value that was added to the "story" field in this mutation.
func (m *ComicsReviewMutation) AddedStory() (r int, exists bool) {
	v := m.addstory
	if v == nil {
		return
	}
	return *v, true
}

// ClearStory clears the value of the "story" field.
func (m *ComicsReviewMutation) ClearStory() {
	m.story = nil
	m.addstory = nil
	m.clearedFields[comicsreview.FieldStory] = struct{}{}
}

// StoryCleared returns if the "story" field was cleared in this mutation.
func (m *ComicsReviewMutation) StoryCleared() bool {
	_, ok := m.clearedFields[comicsreview.FieldStory]
	return ok
}

// ResetStory resets all changes to the "story" field.
func (m *ComicsReviewMutation) ResetStory() {
	m.story = nil
	m.addstory = nil
	delete(m.clearedFields, comicsreview.FieldStory)
}

// SetEnjoyment sets the "enjoyment" field.
func (m *ComicsReviewMutation) SetEnjoyment(i int) {
	m.enjoyment = &i
	m.addenjoyment = nil
}

// Enjoyment returns the value of the "enjoyment" field in the mutation.
func (m *ComicsReviewMutation) Enjoyment() (r int, exists bool) {
	v := m.enjoyment
	if v == nil {
		return
	}
	return *v, true
}

// OldEnjoyment returns the old "enjoyment" field's value of the ComicsReview entity.
// If the ComicsReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ComicsReviewMutation) OldEnjoyment(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnjoyment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnjoyment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnjoyment: %w", err)
	}
	return oldValue.Enjoyment, nil
}

// AddEnjoyment adds i to the "enjoyment" field.
func (m *ComicsReviewMutation) AddEnjoyment(i int) {
	if m.addenjoyment != nil {
		*m.addenjoyment += i
	} else {
		m.addenjoyment = &i
	}
}

// AddedEnjoyment returns the value that was added to the "enjoyment" field in this mutation.
func (m *ComicsReviewMutation) AddedEnjoyment() (r int, exists bool) {
	v := m.addenjoyment
	if v == nil {
		return
	}
	return *v, true
}

// ClearEnjoyment clears the value of the "enjoyment" field.
func (m *ComicsReviewMutation) ClearEnjoyment() {
	m.enjoyment = nil
	m.addenjoyment = nil
	m.clearedFields[comicsreview.FieldEnjoyment] = struct{}{}
}

// EnjoymentCleared returns if the "enjoyment" field was cleared in this mutation.
func (m *ComicsReviewMutation) EnjoymentCleared() bool {
	_, ok := m.clearedFields[comicsreview.FieldEnjoyment]
	return ok
}

// ResetEnjoyment resets all changes to the "enjoyment" field.
func (m *ComicsReviewMutation) ResetEnjoyment() {
	m.enjoyment = nil
	m.addenjoyment = nil
	delete(m.clearedFields, comicsreview.FieldEnjoyment)
}

// Where appends a list predicates to the ComicsReviewMutation builder.
func (m *ComicsReviewMutation) Where(ps ...predicate.ComicsReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ComicsReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ComicsReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ComicsReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ComicsReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ComicsReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ComicsReview).
func (m *ComicsReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ComicsReviewMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, comicsreview.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, comicsreview.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, comicsreview.FieldUsername)
	}
	if m.article_id != nil {
		fields = append(fields, comicsreview.FieldArticleID)
	}
	if m.review != nil {
		fields = append(fields, comicsreview.FieldReview)
	}
	if m.review_html != nil {
		fields = append(fields, comicsreview.FieldReviewHTML)
	}
	if m.overall != nil {
		fields = append(fields, comicsreview.FieldOverall)
	}
	if m.art != nil {
		fields = append(fields, comicsreview.FieldArt)
	}
	if m.characters != nil {
		fields = append(fields, comicsreview.FieldCharacters)
	}
	if m.story != nil {
		fields = append(fields, comicsreview.FieldStory)
	}
	if m.enjoyment != nil {
		fields = append(fields, comicsreview.FieldEnjoyment)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ComicsReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case comicsreview.FieldCreatedAt:
		return m.CreatedAt()
	case comicsreview.FieldUpdatedAt:
		return m.UpdatedAt()
	case comicsreview.FieldUsername:
		return m.Username()
	case comicsreview.FieldArticleID:
		return m.ArticleID()
	case comicsreview.FieldReview:
		return m.Review()
	case comicsreview.FieldReviewHTML:
		return m.ReviewHTML()
	case comicsreview.FieldOverall:
		return m.Overall()
	case comicsreview.FieldArt:
		return m.Art()
	case comicsreview.FieldCharacters:
		return m.Characters()
	case comicsreview.FieldStory:
		return m.Story()
	case comicsreview.FieldEnjoyment:
		return m.Enjoyment()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ComicsReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case comicsreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case comicsreview.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case comicsreview.FieldUsername:
		return m.OldUsername(ctx)
	case comicsreview.FieldArticleID:
		return m.OldArticleID(ctx)
	case comicsreview.FieldReview:
		return m.OldReview(ctx)
	case comicsreview.FieldReviewHTML:
		return m.OldReviewHTML(ctx)
	case comicsreview.FieldOverall:
		return m.OldOverall(ctx)
	case comicsreview.FieldArt:
		return m.OldArt(ctx)
	case comicsreview.FieldCharacters:
		return m.OldCharacters(ctx)
	case comicsreview.FieldStory:
		return m.OldStory(ctx)
	case comicsreview.FieldEnjoyment:
		return m.OldEnjoyment(ctx)
	}
	return nil, fmt.Errorf("unknown ComicsReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComicsReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case comicsreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case comicsreview.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case comicsreview.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case comicsreview.FieldArticleID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleID(v)
		return nil
	case comicsreview.FieldReview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReview(v)
		return nil
	case comicsreview.FieldReviewHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewHTML(v)
		return nil
	case comicsreview.FieldOverall:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverall(v)
		return nil
	case comicsreview.FieldArt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArt(v)
		return nil
	case comicsreview.FieldCharacters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharacters(v)
		return nil
	case comicsreview.FieldStory:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStory(v)
		return nil
	case comicsreview.FieldEnjoyment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnjoyment(v)
		return nil
	}
	return fmt.Errorf("unknown ComicsReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ComicsReviewMutation) AddedFields() []string {
	var fields []string
	if m.addarticle_id != nil {
		fields = append(fields, comicsreview.FieldArticleID)
	}
	if m.addoverall != nil {
		fields = append(fields, comicsreview.FieldOverall)
	}
	if m.addart != nil {
		fields = append(fields, comicsreview.FieldArt)
	}
	if m.addcharacters != nil {
		fields = append(fields, comicsreview.FieldCharacters)
	}
	if m.addstory != nil {
		fields = append(fields, comicsreview.FieldStory)
	}
	if m.addenjoyment != nil {
		fields = append(fields, comicsreview.FieldEnjoyment)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ComicsReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case comicsreview.FieldArticleID:
		return m.AddedArticleID()
	case comicsreview.FieldOverall:
		return m.AddedOverall()
	case comicsreview.FieldArt:
		return m.AddedArt()
	case comicsreview.FieldCharacters:
		return m.AddedCharacters()
	case comicsreview.FieldStory:
		return m.AddedStory()
	case comicsreview.FieldEnjoyment:
		return m.AddedEnjoyment()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ComicsReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case comicsreview.FieldArticleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleID(v)
		return nil
	case comicsreview.FieldOverall:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverall(v)
		return nil
	case comicsreview.FieldArt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArt(v)
		return nil
	case comicsreview.FieldCharacters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCharacters(v)
		return nil
	case comicsreview.FieldStory:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStory(v)
		return nil
	case comicsreview.FieldEnjoyment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnjoyment(v)
		return nil
	}
	return fmt.Errorf("unknown ComicsReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ComicsReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(comicsreview.FieldReviewHTML) {
		fields = append(fields, comicsreview.FieldReviewHTML)
	}
	if m.FieldCleared(comicsreview.FieldArt) {
		fields = append(fields, comicsreview.FieldArt)
	}
	if m.FieldCleared(comicsreview.FieldCharacters) {
		fields = append(fields, comicsreview.FieldCharacters)
	}
	if m.FieldCleared(comicsreview.FieldStory) {
		fields = append(fields, comicsreview.FieldStory)
	}
	if m.FieldCleared(comicsreview.FieldEnjoyment) {
		fields = append(fields, comicsreview.FieldEnjoyment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ComicsReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ComicsReviewMutation) ClearField(name string) error {
	switch name {
	case comicsreview.FieldReviewHTML:
		m.ClearReviewHTML()
		return nil
	case comicsreview.FieldArt:
		m.ClearArt()
		return nil
	case comicsreview.FieldCharacters:
		m.ClearCharacters()
		return nil
	case comicsreview.FieldStory:
		m.ClearStory()
		return nil
	case comicsreview.FieldEnjoyment:
		m.ClearEnjoyment()
		return nil
	}
	return fmt.Errorf("unknown ComicsReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ComicsReviewMutation) ResetField(name string) error {
	switch name {
	case comicsreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case comicsreview.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case comicsreview.FieldUsername:
		m.ResetUsername()
		return nil
	case comicsreview.FieldArticleID:
		m.ResetArticleID()
		return nil
	case comicsreview.FieldReview:
		m.ResetReview()
		return nil
	case comicsreview.FieldReviewHTML:
		m.ResetReviewHTML()
		return nil
	case comicsreview.FieldOverall:
		m.ResetOverall()
		return nil
	case comicsreview.FieldArt:
		m.ResetArt()
		return nil
	case comicsreview.FieldCharacters:
		m.ResetCharacters()
		return nil
	case comicsreview.FieldStory:
		m.ResetStory()
		return nil
	case comicsreview.FieldEnjoyment:
		m.ResetEnjoyment()
		return nil
	}
	return fmt.Errorf("unknown ComicsReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ComicsReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ComicsReviewMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ComicsReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ComicsReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ComicsReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ComicsReviewMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ComicsReviewMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ComicsReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ComicsReviewMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ComicsReview edge %s", name)
}

// GameMutation represents an operation that mutates the Game nodes in the graph.
type GameMutation struct {
	config
	op               Op
	typ              string
	id               *uint
	deleted_at       *time.Time
	created_at       *time.Time
	updated_at       *time.Time
	title            *string
	slug             *string
	description      *string
	cover_url        *string
	authors          *string
	publishers       *string
	genres           *string
	premiered        *time.Time
	draft            *bool
	accepted         *bool
	contributor      *string
	game_mode        *string
	gears            *string
	complete_time    *int
	addcomplete_time *int
	clearedFields    map[string]struct{}
	done             bool
	oldValue         func(context.Context) (*Game, error)
	predicates       []predicate.Game
}

var _ ent.Mutation = (*GameMutation)(nil)

// gameOption allows management of the mutation configuration using functional options.
type gameOption func(*GameMutation)

// newGameMutation creates new mutation for the Game entity.
func newGameMutation(c config, op Op, opts ...gameOption) *GameMutation {
	m := &GameMutation{
		config:        c,
		op:            op,
		typ:           TypeGame,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGameID sets the ID field of the mutation.
func withGameID(id uint) gameOption {
	return func(m *GameMutation) {
		var (
			err   error
			once  sync.Once
			value *Game
		)
		m.oldValue = func(ctx context.Context) (*Game, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Game.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGame sets the old Game of the mutation.
func withGame(node *Game) gameOption {
	return func(m *GameMutation) {
		m.oldValue = func(context.Context) (*Game, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GameMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GameMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Game entities.
func (m *GameMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GameMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GameMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Game.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeletedAt sets the "deleted_at" field.
func (m *GameMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *GameMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *GameMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[game.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *GameMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[game.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *GameMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, game.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *GameMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GameMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GameMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GameMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GameMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GameMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *GameMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *GameMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *GameMutation) ResetTitle() {
	m.title = nil
}

// SetSlug sets the "slug" field.
func (m *GameMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *GameMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *GameMutation) ResetSlug() {
	m.slug = nil
}

// SetDescription sets the "description" field.
func (m *GameMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *GameMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *GameMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[game.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *GameMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[game.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *GameMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, game.FieldDescription)
}

// SetCoverURL sets the "cover_url" field.
func (m *GameMutation) SetCoverURL(s string) {
	m.cover_url = &s
}

// CoverURL returns the value of the "cover_url" field in the mutation.
func (m *GameMutation) CoverURL() (r string, exists bool) {
	v := m.cover_url
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverURL returns the old "cover_url" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldCoverURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverURL: %w", err)
	}
	return oldValue.CoverURL, nil
}

// ClearCoverURL clears the value of the "cover_url" field.
func (m *GameMutation) ClearCoverURL() {
	m.cover_url = nil
	m.clearedFields[game.FieldCoverURL] = struct{}{}
}

// CoverURLCleared returns if the "cover_url" field was cleared in this mutation.
func (m *GameMutation) CoverURLCleared() bool {
	_, ok := m.clearedFields[game.FieldCoverURL]
	return ok
}

// ResetCoverURL resets all changes to the "cover_url" field.
func (m *GameMutation) ResetCoverURL() {
	m.cover_url = nil
	delete(m.clearedFields, game.FieldCoverURL)
}

// SetAuthors sets the "authors" field.
func (m *GameMutation) SetAuthors(s string) {
	m.authors = &s
}

// Authors returns the value of the "authors" field in the mutation.
func (m *GameMutation) Authors() (r string, exists bool) {
	v := m.authors
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthors returns the old "authors" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldAuthors(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthors: %w", err)
	}
	return oldValue.Authors, nil
}

// ClearAuthors clears the value of the "authors" field.
func (m *GameMutation) ClearAuthors() {
	m.authors = nil
	m.clearedFields[game.FieldAuthors] = struct{}{}
}

// AuthorsCleared returns if the "authors" field was cleared in this mutation.
func (m *GameMutation) AuthorsCleared() bool {
	_, ok := m.clearedFields[game.FieldAuthors]
	return ok
}

// ResetAuthors resets all changes to the "authors" field.
func (m *GameMutation) ResetAuthors() {
	m.authors = nil
	delete(m.clearedFields, game.FieldAuthors)
}

// SetPublishers sets the "publishers" field.
func (m *GameMutation) SetPublishers(s string) {
	m.publishers = &s
}

// Publishers returns the value of the "publishers" field in the mutation.
func (m *GameMutation) Publishers() (r string, exists bool) {
	v := m.publishers
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishers returns the old "publishers" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldPublishers(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishers: %w", err)
	}
	return oldValue.Publishers, nil
}

// ClearPublishers clears the value of the "publishers" field.
func (m *GameMutation) ClearPublishers() {
	m.publishers = nil
	m.clearedFields[game.FieldPublishers] = struct{}{}
}

// PublishersCleared returns if the "publishers" field was cleared in this mutation.
func (m *GameMutation) PublishersCleared() bool {
	_, ok := m.clearedFields[game.FieldPublishers]
	return ok
}

// ResetPublishers resets all changes to the "publishers" field.
func (m *GameMutation) ResetPublishers() {
	m.publishers = nil
	delete(m.clearedFields, game.FieldPublishers)
}

// SetGenres sets the "genres" field.
func (m *GameMutation) SetGenres(s string) {
	m.genres = &s
}

// Genres returns the value of the "genres" field in the mutation.
func (m *GameMutation) Genres() (r string, exists bool) {
	v := m.genres
	if v == nil {
		return
	}
	return *v, true
}

// OldGenres returns the old "genres" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldGenres(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenres is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenres requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenres: %w", err)
	}
	return oldValue.Genres, nil
}

// ClearGenres clears the value of the "genres" field.
func (m *GameMutation) ClearGenres() {
	m.genres = nil
	m.clearedFields[game.FieldGenres] = struct{}{}
}

// GenresCleared returns if the "genres" field was cleared in this mutation.
func (m *GameMutation) GenresCleared() bool {
	_, ok := m.clearedFields[game.FieldGenres]
	return ok
}

// ResetGenres resets all changes to the "genres" field.
func (m *GameMutation) ResetGenres() {
	m.genres = nil
	delete(m.clearedFields, game.FieldGenres)
}

// SetPremiered sets the "premiered" field.
func (m *GameMutation) SetPremiered(t time.Time) {
	m.premiered = &t
}

// Premiered returns the value of the "premiered" field in the mutation.
func (m *GameMutation) Premiered() (r time.Time, exists bool) {
	v := m.premiered
	if v == nil {
		return
	}
	return *v, true
}

// OldPremiered returns the old "premiered" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldPremiered(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPremiered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPremiered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPremiered: %w", err)
	}
	return oldValue.Premiered, nil
}

// ClearPremiered clears the value of the "premiered" field.
func (m *GameMutation) ClearPremiered() {
	m.premiered = nil
	m.clearedFields[game.FieldPremiered] = struct{}{}
}

// PremieredCleared returns if the "premiered" field was cleared in this mutation.
func (m *GameMutation) PremieredCleared() bool {
	_, ok := m.clearedFields[game.FieldPremiered]
	return ok
}

// ResetPremiered resets all changes to the "premiered" field.
func (m *GameMutation) ResetPremiered() {
	m.premiered = nil
	delete(m.clearedFields, game.FieldPremiered)
}

// SetDraft sets the "draft" field.
func (m *GameMutation) SetDraft(b bool) {
	m.draft = &b
}

// Draft returns the value of the "draft" field in the mutation.
func (m *GameMutation) Draft() (r bool, exists bool) {
	v := m.draft
	if v == nil {
		return
	}
	return *v, true
}

// OldDraft returns the old "draft" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldDraft(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDraft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDraft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDraft: %w", err)
	}
	return oldValue.Draft, nil
}

// ResetDraft resets all changes to the "draft" field.
func (m *GameMutation) ResetDraft() {
	m.draft = nil
}

// SetAccepted sets the "accepted" field.
func (m *GameMutation) SetAccepted(b bool) {
	m.accepted = &b
}

// Accepted returns the value of the "accepted" field in the mutation.
func (m *GameMutation) Accepted() (r bool, exists bool) {
	v := m.accepted
	if v == nil {
		return
	}
	return *v, true
}

// OldAccepted returns the old "accepted" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldAccepted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccepted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccepted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccepted: %w", err)
	}
	return oldValue.Accepted, nil
}

// ResetAccepted resets all changes to the "accepted" field.
func (m *GameMutation) ResetAccepted() {
	m.accepted = nil
}

// SetContributor sets the "contributor" field.
func (m *GameMutation) SetContributor(s string) {
	m.contributor = &s
}

// Contributor returns the value of the "contributor" field in the mutation.
func (m *GameMutation) Contributor() (r string, exists bool) {
	v := m.contributor
	if v == nil {
		return
	}
	return *v, true
}

// OldContributor returns the old "contributor" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldContributor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributor: %w", err)
	}
	return oldValue.Contributor, nil
}

// ClearContributor clears the value of the "contributor" field.
func (m *GameMutation) ClearContributor() {
	m.contributor = nil
	m.clearedFields[game.FieldContributor] = struct{}{}
}

// ContributorCleared returns if the "contributor" field was cleared in this mutation.
func (m *GameMutation) ContributorCleared() bool {
	_, ok := m.clearedFields[game.FieldContributor]
	return ok
}

// ResetContributor resets all changes to the "contributor" field.
func (m *GameMutation) ResetContributor() {
	m.contributor = nil
	delete(m.clearedFields, game.FieldContributor)
}

// SetGameMode sets the "game_mode" field.
func (m *GameMutation) SetGameMode(s string) {
	m.game_mode = &s
}

// GameMode returns the value of the "game_mode" field in the mutation.
func (m *GameMutation) GameMode() (r string, exists bool) {
	v := m.game_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldGameMode returns the old "game_mode" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldGameMode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGameMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGameMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGameMode: %w", err)
	}
	return oldValue.GameMode, nil
}

// ClearGameMode clears the value of the "game_mode" field.
func (m *GameMutation) ClearGameMode() {
	m.game_mode = nil
	m.clearedFields[game.FieldGameMode] = struct{}{}
}

// GameModeCleared returns if the "game_mode" field was cleared in this mutation.
func (m *GameMutation) GameModeCleared() bool {
	_, ok := m.clearedFields[game.FieldGameMode]
	return ok
}

// ResetGameMode resets all changes to the "game_mode" field.
func (m *GameMutation) ResetGameMode() {
	m.game_mode = nil
	delete(m.clearedFields, game.FieldGameMode)
}

// SetGears sets the "gears" field.
func (m *GameMutation) SetGears(s string) {
	m.gears = &s
}

// Gears returns the value of the "gears" field in the mutation.
func (m *GameMutation) Gears() (r string, exists bool) {
	v := m.gears
	if v == nil {
		return
	}
	return *v, true
}

// OldGears returns the old "gears" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldGears(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGears is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGears requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGears: %w", err)
	}
	return oldValue.Gears, nil
}

// ClearGears clears the value of the "gears" field.
func (m *GameMutation) ClearGears() {
	m.gears = nil
	m.clearedFields[game.FieldGears] = struct{}{}
}

// GearsCleared returns if the "gears" field was cleared in this mutation.
func (m *GameMutation) GearsCleared() bool {
	_, ok := m.clearedFields[game.FieldGears]
	return ok
}

// ResetGears resets all changes to the "gears" field.
func (m *GameMutation) ResetGears() {
	m.gears = nil
	delete(m.clearedFields, game.FieldGears)
}

// SetCompleteTime sets the "complete_time" field.
func (m *GameMutation) SetCompleteTime(i int) {
	m.complete_time = &i
	m.addcomplete_time = nil
}

// CompleteTime returns the value of the "complete_time" field in the mutation.
func (m *GameMutation) CompleteTime() (r int, exists bool) {
	v := m.complete_time
	if v == nil {
		return
	}
	return *v, true
}

// OldCompleteTime returns the old "complete_time" field's value of the Game entity.
// If the Game object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GameMutation) OldCompleteTime(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompleteTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompleteTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompleteTime: %w", err)
	}
	return oldValue.CompleteTime, nil
}

// AddCompleteTime adds i to the "complete_time" field.
func (m *GameMutation) AddCompleteTime(i int) {
	if m.addcomplete_time != nil {
		*m.addcomplete_time += i
	} else {
		m.addcomplete_time = &i
	}
}

// AddedCompleteTime returns the value that was added to the "complete_time" field in this mutation.
func (m *GameMutation) AddedCompleteTime() (r int, exists bool) {
	v := m.addcomplete_time
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompleteTime resets all changes to the "complete_time" field.
func (m *GameMutation) ResetCompleteTime() {
	m.complete_time = nil
	m.addcomplete_time = nil
}

// Where appends a list predicates to the GameMutation builder.
func (m *GameMutation) Where(ps ...predicate.Game) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GameMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GameMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Game, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GameMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GameMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Game).
func (m *GameMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GameMutation) Fields() []string {
	fields := make([]string, 0, 17)
	if m.deleted_at != nil {
		fields = append(fields, game.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, game.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, game.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, game.FieldTitle)
	}
	if m.slug != nil {
		fields = append(fields, game.FieldSlug)
	}
	if m.description != nil {
		fields = append(fields, game.FieldDescription)
	}
	if m.cover_url != nil {
		fields = append(fields, game.FieldCoverURL)
	}
	if m.authors != nil {
		fields = append(fields, game.FieldAuthors)
	}
	if m.publishers != nil {
		fields = append(fields, game.FieldPublishers)
	}
	if m.genres != nil {
		fields = append(fields, game.FieldGenres)
	}
	if m.premiered != nil {
		fields = append(fields, game.FieldPremiered)
	}
	if m.draft != nil {
		fields = append(fields, game.FieldDraft)
	}
	if m.accepted != nil {
		fields = append(fields, game.FieldAccepted)
	}
	if m.contributor != nil {
		fields = append(fields, game.FieldContributor)
	}
	if m.game_mode != nil {
		fields = append(fields, game.FieldGameMode)
	}
	if m.gears != nil {
		fields = append(fields, game.FieldGears)
	}
	if m.complete_time != nil {
		fields = append(fields, game.FieldCompleteTime)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GameMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case game.FieldDeletedAt:
		return m.DeletedAt()
	case game.FieldCreatedAt:
		return m.CreatedAt()
	case game.FieldUpdatedAt:
		return m.UpdatedAt()
	case game.FieldTitle:
		return m.Title()
	case game.FieldSlug:
		return m.Slug()
	case game.FieldDescription:
		return m.Description()
	case game.FieldCoverURL:
		return m.CoverURL()
	case game.FieldAuthors:
		return m.Authors()
	case game.FieldPublishers:
		return m.Publishers()
	case game.FieldGenres:
		return m.Genres()
	case game.FieldPremiered:
		return m.Premiered()
	case game.FieldDraft:
		return m.Draft()
	case game.FieldAccepted:
		return m.Accepted()
	case game.FieldContributor:
		return m.Contributor()
	case game.FieldGameMode:
		return m.GameMode()
	case game.FieldGears:
		return m.Gears()
	case game.FieldCompleteTime:
		return m.CompleteTime()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GameMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case game.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case game.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case game.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case game.FieldTitle:
		return m.OldTitle(ctx)
	case game.FieldSlug:
		return m.OldSlug(ctx)
	case game.FieldDescription:
		return m.OldDescription(ctx)
	case game.FieldCoverURL:
		return m.OldCoverURL(ctx)
	case game.FieldAuthors:
		return m.OldAuthors(ctx)
	case game.FieldPublishers:
		return m.OldPublishers(ctx)
	case game.FieldGenres:
		return m.OldGenres(ctx)
	case game.FieldPremiered:
		return m.OldPremiered(ctx)
	case game.FieldDraft:
		return m.OldDraft(ctx)
	case game.FieldAccepted:
		return m.OldAccepted(ctx)
	case game.FieldContributor:
		return m.OldContributor(ctx)
	case game.FieldGameMode:
		return m.OldGameMode(ctx)
	case game.FieldGears:
		return m.OldGears(ctx)
	case game.FieldCompleteTime:
		return m.OldCompleteTime(ctx)
	}
	return nil, fmt.Errorf("unknown Game field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameMutation) SetField(name string, value ent.Value) error {
	switch name {
	case game.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case game.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case game.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case game.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case game.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case game.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case game.FieldCoverURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverURL(v)
		return nil
	case game.FieldAuthors:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthors(v)
		return nil
	case game.FieldPublishers:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishers(v)
		return nil
	case game.FieldGenres:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenres(v)
		return nil
	case game.FieldPremiered:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPremiered(v)
		return nil
	case game.FieldDraft:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDraft(v)
		return nil
	case game.FieldAccepted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccepted(v)
		return nil
	case game.FieldContributor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributor(v)
		return nil
	case game.FieldGameMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGameMode(v)
		return nil
	case game.FieldGears:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGears(v)
		return nil
	case game.FieldCompleteTime:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompleteTime(v)
		return nil
	}
	return fmt.Errorf("unknown Game field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GameMutation) AddedFields() []string {
	var fields []string
	if m.addcomplete_time != nil {
		fields = append(fields, game.FieldCompleteTime)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GameMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case game.FieldCompleteTime:
		return m.AddedCompleteTime()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GameMutation) AddField(name string, value ent.Value) error {
	switch name {
	case game.FieldCompleteTime:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompleteTime(v)
		return nil
	}
	return fmt.Errorf("unknown Game numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GameMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(game.FieldDeletedAt) {
		fields = append(fields, game.FieldDeletedAt)
	}
	if m.FieldCleared(game.FieldDescription) {
		fields = append(fields, game.FieldDescription)
	}
	if m.FieldCleared(game.FieldCoverURL) {
		fields = append(fields, game.FieldCoverURL)
	}
	if m.FieldCleared(game.FieldAuthors) {
		fields = append(fields, game.FieldAuthors)
	}
	if m.FieldCleared(game.FieldPublishers) {
		fields = append(fields, game.FieldPublishers)
	}
	if m.FieldCleared(game.FieldGenres) {
		fields = append(fields, game.FieldGenres)
	}
	if m.FieldCleared(game.FieldPremiered) {
		fields = append(fields, game.FieldPremiered)
	}
	if m.FieldCleared(game.FieldContributor) {
		fields = append(fields, game.FieldContributor)
	}
	if m.FieldCleared(game.FieldGameMode) {
		fields = append(fields, game.FieldGameMode)
	}
	if m.FieldCleared(game.FieldGears) {
		fields = append(fields, game.FieldGears)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GameMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GameMutation) ClearField(name string) error {
	switch name {
	case game.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case game.FieldDescription:
		m.ClearDescription()
		return nil
	case game.FieldCoverURL:
		m.ClearCoverURL()
		return nil
	case game.FieldAuthors:
		m.ClearAuthors()
		return nil
	case game.FieldPublishers:
		m.ClearPublishers()
		return nil
	case game.FieldGenres:
		m.ClearGenres()
		return nil
	case game.FieldPremiered:
		m.ClearPremiered()
		return nil
	case game.FieldContributor:
		m.ClearContributor()
		return nil
	case game.FieldGameMode:
		m.ClearGameMode()
		return nil
	case game.FieldGears:
		m.ClearGears()
		return nil
	}
	return fmt.Errorf("unknown Game nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GameMutation) ResetField(name string) error {
	switch name {
	case game.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case game.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case game.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case game.FieldTitle:
		m.ResetTitle()
		return nil
	case game.FieldSlug:
		m.ResetSlug()
		return nil
	case game.FieldDescription:
		m.ResetDescription()
		return nil
	case game.FieldCoverURL:
		m.ResetCoverURL()
		return nil
	case game.FieldAuthors:
		m.ResetAuthors()
		return nil
	case game.FieldPublishers:
		m.ResetPublishers()
		return nil
	case game.FieldGenres:
		m.ResetGenres()
		return nil
	case game.FieldPremiered:
		m.ResetPremiered()
		return nil
	case game.FieldDraft:
		m.ResetDraft()
		return nil
	case game.FieldAccepted:
		m.ResetAccepted()
		return nil
	case game.FieldContributor:
		m.ResetContributor()
		return nil
	case game.FieldGameMode:
		m.ResetGameMode()
		return nil
	case game.FieldGears:
		m.ResetGears()
		return nil
	case game.FieldCompleteTime:
		m.ResetCompleteTime()
		return nil
	}
	return fmt.Errorf("unknown Game field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GameMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GameMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GameMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GameMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GameMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GameMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GameMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Game unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GameMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Game edge %s", name)
}

// GamesReviewMutation represents an operation that mutates the GamesReview nodes in the graph.
type GamesReviewMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	created_at    *time.Time
	updated_at    *time.Time
	username      *string
	article_id    *uint
	addarticle_id *int
	review        *string
	review_html   *string
	overall       *int
	addoverall    *int
	art           *int
	addart        *int
	characters    *int
	addcharacters *int
	story         *int
	addstory      *int
	enjoyment     *int
	addenjoyment  *int
	graphics      *int
	addgraphics   *int
	music         *int
	addmusic      *int
	voicing       *int
	addvoicing    *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*GamesReview, error)
	predicates    []predicate.GamesReview
}

var _ ent.Mutation = (*GamesReviewMutation)(nil)

// gamesreviewOption allows management of the mutation configuration using functional options.
type gamesreviewOption func(*GamesReviewMutation)

// newGamesReviewMutation creates new mutation for the GamesReview entity.
func newGamesReviewMutation(c config, op Op, opts ...gamesreviewOption) *GamesReviewMutation {
	m := &GamesReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeGamesReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withGamesReviewID sets the ID field of the mutation.
func withGamesReviewID(id uint) gamesreviewOption {
	return func(m *GamesReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *GamesReview
		)
		m.oldValue = func(ctx context.Context) (*GamesReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().GamesReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withGamesReview sets the old GamesReview of the mutation.
func withGamesReview(node *GamesReview) gamesreviewOption {
	return func(m *GamesReviewMutation) {
		m.oldValue = func(context.Context) (*GamesReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m GamesReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m GamesReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of GamesReview entities.
func (m *GamesReviewMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *GamesReviewMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *GamesReviewMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().GamesReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *GamesReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *GamesReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the GamesReview entity.
// If the GamesReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamesReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *GamesReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *GamesReviewMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *GamesReviewMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the GamesReview entity.
// If the GamesReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamesReviewMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *GamesReviewMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *GamesReviewMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *GamesReviewMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the GamesReview entity.
// If the GamesReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamesReviewMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *GamesReviewMutation) ResetUsername() {
	m.username = nil
}

// SetArticleID sets the "article_id" field.
func (m *GamesReviewMutation) SetArticleID(u uint) {
	m.article_id = &u
	m.addarticle_id = nil
}

// ArticleID returns the value of the "article_id" field in the mutation.
func (m *GamesReviewMutation) ArticleID() (r uint, exists bool) {
	v := m.article_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleID returns the old "article_id" field's value of the GamesReview entity.
// If the GamesReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamesReviewMutation) OldArticleID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleID: %w", err)
	}
	return oldValue.ArticleID, nil
}

// AddArticleID adds u to the "article_id" field.
func (m *GamesReviewMutation) AddArticleID(u int) {
	if m.addarticle_id != nil {
		*m.addarticle_id += u
	} else {
		m.addarticle_id = &u
	}
}

// AddedArticleID returns the value that was added to the "article_id" field in this mutation.
func (m *GamesReviewMutation) AddedArticleID() (r int, exists bool) {
	v := m.addarticle_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetArticleID resets all changes to the "article_id" field.
func (m *GamesReviewMutation) ResetArticleID() {
	m.article_id = nil
	m.addarticle_id = nil
}

// SetReview sets the "review" field.
func (m *GamesReviewMutation) SetReview(s string) {
	m.review = &s
}

// Review returns the value of the "review" field in the mutation.
func (m *GamesReviewMutation) Review() (r string, exists bool) {
	v := m.review
	if v == nil {
		return
	}
	return *v, true
}

// OldReview returns the old "review" field's value of the GamesReview entity.
// If the GamesReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamesReviewMutation) OldReview(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReview: %w", err)
	}
	return oldValue.Review, nil
}

// ResetReview resets all changes to the "review" field.
func (m *GamesReviewMutation) ResetReview() {
	m.review = nil
}

// SetReviewHTML sets the "review_html" field.
func (m *GamesReviewMutation) SetReviewHTML(s string) {
	m.review_html = &s
}

// ReviewHTML returns the value of the "review_html" field in the mutation.
func (m *GamesReviewMutation) ReviewHTML() (r string, exists bool) {
	v := m.review_html
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewHTML returns the old "review_html" field's value of the GamesReview entity.
// If the GamesReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamesReviewMutation) OldReviewHTML(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewHTML: %w", err)
	}
	return oldValue.ReviewHTML, nil
}

// ClearReviewHTML clears the value of the "review_html" field.
func (m *GamesReviewMutation) ClearReviewHTML() {
	m.review_html = nil
	m.clearedFields[gamesreview.FieldReviewHTML] = struct{}{}
}

// ReviewHTMLCleared returns if the "review_html" field was cleared in this mutation.
func (m *GamesReviewMutation) ReviewHTMLCleared() bool {
	_, ok := m.clearedFields[gamesreview.FieldReviewHTML]
	return ok
}

// ResetReviewHTML resets all changes to the "review_html" field.
func (m *GamesReviewMutation) ResetReviewHTML() {
	m.review_html = nil
	delete(m.clearedFields, gamesreview.FieldReviewHTML)
}

// SetOverall sets the "overall" field.
func (m *GamesReviewMutation) SetOverall(i int) {
	m.overall = &i
	m.addoverall = nil
}

// Overall returns the value of the "overall" field in the mutation.
func (m *GamesReviewMutation) Overall() (r int, exists bool) {
	v := m.overall
	if v == nil {
		return
	}
	return *v, true
}

// OldOverall returns the old "overall" field's value of the GamesReview entity.
// If the GamesReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamesReviewMutation) OldOverall(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverall is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverall requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverall: %w", err)
	}
	return oldValue.Overall, nil
}

// AddOverall adds i to the "overall" field.
func (m *GamesReviewMutation) AddOverall(i int) {
	if m.addoverall != nil {
		*m.addoverall += i
	} else {
		m.addoverall = &i
	}
}

// AddedOverall returns the value that was added to the "overall" field in this mutation.
func (m *GamesReviewMutation) AddedOverall() (r int, exists bool) {
	v := m.addoverall
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverall resets all changes to the "overall" field.
func (m *GamesReviewMutation) ResetOverall() {
	m.overall = nil
	m.addoverall = nil
}

// SetArt sets the "art" field.
func (m *GamesReviewMutation) SetArt(i int) {
	m.art = &i
	m.addart = nil
}

// Art returns the value of the "art" field in the mutation.
func (m *GamesReviewMutation) Art() (r int, exists bool) {
	v := m.art
	if v == nil {
		return
	}
	return *v, true
}

// OldArt returns the old "art" field's value of the GamesReview entity.
// If the GamesReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamesReviewMutation) OldArt(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArt: %w", err)
	}
	return oldValue.Art, nil
}

// AddArt adds i to the "art" field.
func (m *GamesReviewMutation) AddArt(i int) {
	if m.addart != nil {
		*m.addart += i
	} else {
		m.addart = &i
	}
}

// AddedArt returns the value that was added to the "art" field in this mutation.
func (m *GamesReviewMutation) AddedArt() (r int, exists bool) {
	v := m.addart
	if v == nil {
		return
	}
	return *v, true
}

// ClearArt clears the value of the "art" field.
func (m *GamesReviewMutation) ClearArt() {
	m.art = nil
	m.addart = nil
	m.clearedFields[gamesreview.FieldArt] = struct{}{}
}

// ArtCleared returns if the "art" field was cleared in this mutation.
func (m *GamesReviewMutation) ArtCleared() bool {
	_, ok := m.clearedFields[gamesreview.FieldArt]
	return ok
}

// ResetArt resets all changes to the "art" field.
func (m *GamesReviewMutation) ResetArt() {
	m.art = nil
	m.addart = nil
	delete(m.clearedFields, gamesreview.FieldArt)
}

// SetCharacters sets the "characters" field.
func (m *GamesReviewMutation) SetCharacters(i int) {
	m.characters = &i
	m.addcharacters = nil
}

// Characters returns the value of the "characters" field in the mutation.
func (m *GamesReviewMutation) Characters() (r int, exists bool) {
	v := m.characters
	if v == nil {
		return
	}
	return *v, true
}

// OldCharacters returns the old "characters" field's value of the GamesReview entity.
// If the GamesReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamesReviewMutation) OldCharacters(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharacters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharacters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharacters: %w", err)
	}
	return oldValue.Characters, nil
}

// AddCharacters adds i to the "characters" field.
func (m *GamesReviewMutation) AddCharacters(i int) {
	if m.addcharacters != nil {
		*m.addcharacters += i
	} else {
		m.addcharacters = &i
	}
}

// AddedCharacters returns the value that was added to the "characters" field in this mutation.
func (m *GamesReviewMutation) AddedCharacters() (r int, exists bool) {
	v := m.addcharacters
	if v == nil {
		return
	}
	return *v, true
}

// ClearCharacters clears the value of the "characters" field.
func (m *GamesReviewMutation) ClearCharacters() {
	m.characters = nil
	m.addcharacters = nil
	m.clearedFields[gamesreview.FieldCharacters] = struct{}{}
}

// CharactersCleared returns if the "characters" field was cleared in this mutation.
func (m *GamesReviewMutation) CharactersCleared() bool {
	_, ok := m.clearedFields[gamesreview.FieldCharacters]
	return ok
}

// ResetCharacters resets all changes to the "characters" field.
func (m *GamesReviewMutation) ResetCharacters() {
	m.characters = nil
	m.addcharacters = nil
	delete(m.clearedFields, gamesreview.FieldCharacters)
}

// SetStory sets the "story" field.
func (m *GamesReviewMutation) SetStory(i int) {
	m.story = &i
	m.addstory = nil
}

// Story returns the value of the "story" field in the mutation.
func (m *GamesReviewMutation) Story() (r int, exists bool) {
	v := m.story
	if v == nil {
		return
	}
	return *v, true
}

// OldStory returns the old "story" field's value of the GamesReview entity.
// If the GamesReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamesReviewMutation) OldStory(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStory: %w", err)
	}
	return oldValue.Story, nil
}

// AddStory adds i to the "story" field.
func (m *GamesReviewMutation) AddStory(i int) {
	if m.addstory != nil {
		*m.addstory += i
	} else {
		m.addstory = &i
	}
}

// AddedStory returns the value that was added to the "story" field in this mutation.
func (m *GamesReviewMutation) AddedStory() (r int, exists bool) {
	v := m.addstory
	if v == nil {
		return
	}
	return *v, true
}

// ClearStory clears the value of the "story" field.
func (m *GamesReviewMutation) ClearStory() {
	m.story = nil
	m.addstory = nil
	m.clearedFields[gamesreview.FieldStory] = struct{}{}
}

// StoryCleared returns if the "story" field was cleared in this mutation.
func (m *GamesReviewMutation) StoryCleared() bool {
	_, ok := m.clearedFields[gamesreview.FieldStory]
	return ok
}

// ResetStory resets all changes to the "story" field.
func (m *GamesReviewMutation) ResetStory() {
	m.story = nil
	m.addstory = nil
	delete(m.clearedFields, gamesreview.FieldStory)
}

// SetEnjoyment sets the "enjoyment" field.
func (m *GamesReviewMutation) SetEnjoyment(i int) {
	m.enjoyment = &i
	m.addenjoyment = nil
}

// Enjoyment returns the value of the "enjoyment" field in the mutation.
func (m *GamesReviewMutation) Enjoyment() (r int, exists bool) {
	v := m.enjoyment
	if v == nil {
		return
	}
	return *v, true
}

// OldEnjoyment returns the old "enjoyment" field's value of the GamesReview entity.
// If the GamesReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamesReviewMutation) OldEnjoyment(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnjoyment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnjoyment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnjoyment: %w", err)
	}
	return oldValue.Enjoyment, nil
}

// AddEnjoyment adds i to the "enjoyment" field.
func (m *GamesReviewMutation) AddEnjoyment(i int) {
	if m.addenjoyment != nil {
		*m.addenjoyment += i
	} else {
		m.addenjoyment = &i
	}
}

// AddedEnjoyment returns the value that was added to the "enjoyment" field in this mutation.
func (m *GamesReviewMutation) AddedEnjoyment() (r int, exists bool) {
	v := m.addenjoyment
	if v == nil {
		return
	}
	return *v, true
}

// ClearEnjoyment clears the value of the "enjoyment" field.
func (m *GamesReviewMutation) ClearEnjoyment() {
	m.enjoyment = nil
	m.addenjoyment = nil
	m.clearedFields[gamesreview.FieldEnjoyment] = struct{}{}
}

// EnjoymentCleared returns if the "enjoyment" field was cleared in this mutation.
func (m *GamesReviewMutation) EnjoymentCleared() bool {
	_, ok := m.clearedFields[gamesreview.FieldEnjoyment]
	return ok
}

// ResetEnjoyment resets all changes to the "enjoyment" field.
func (m *GamesReviewMutation) ResetEnjoyment() {
	m.enjoyment = nil
	m.addenjoyment = nil
	delete(m.clearedFields, gamesreview.FieldEnjoyment)
}

// SetGraphics sets the "graphics" field.
func (m *GamesReviewMutation) SetGraphics(i int) {
	m.graphics = &i
	m.addgraphics = nil
}

// Graphics returns the value of the "graphics" field in the mutation.
func (m *GamesReviewMutation) Graphics() (r int, exists bool) {
	v := m.graphics
	if v == nil {
		return
	}
	return *v, true
}

// OldGraphics returns the old "graphics" field's value of the GamesReview entity.
// If the GamesReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamesReviewMutation) OldGraphics(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGraphics is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGraphics requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGraphics: %w", err)
	}
	return oldValue.Graphics, nil
}

// AddGraphics adds i to the "graphics" field.
func (m *GamesReviewMutation) AddGraphics(i int) {
	if m.addgraphics != nil {
		*m.addgraphics += i
	} else {
		m.addgraphics = &i
	}
}

// AddedGraphics returns the value that was added to the "graphics" field in this mutation.
func (m *GamesReviewMutation) AddedGraphics() (r int, exists bool) {
	v := m.addgraphics
	if v == nil {
		return
	}
	return *v, true
}

// ClearGraphics clears the value of the "graphics" field.
func (m *GamesReviewMutation) ClearGraphics() {
	m.graphics = nil
	m.addgraphics = nil
	m.clearedFields[gamesreview.FieldGraphics] = struct{}{}
}

// GraphicsCleared returns if the "graphics" field was cleared in this mutation.
func (m *GamesReviewMutation) GraphicsCleared() bool {
	_, ok := m.clearedFields[gamesreview.FieldGraphics]
	return ok
}

// ResetGraphics resets all changes to the "graphics" field.
func (m *GamesReviewMutation) ResetGraphics() {
	m.graphics = nil
	m.addgraphics = nil
	delete(m.clearedFields, gamesreview.FieldGraphics)
}

// SetMusic sets the "music" field.
func (m *GamesReviewMutation) SetMusic(i int) {
	m.music = &i
	m.addmusic = nil
}

// Music returns the value of the "music" field in the mutation.
func (m *GamesReviewMutation) Music() (r int, exists bool) {
	v := m.music
	if v == nil {
		return
	}
	return *v, true
}

// OldMusic returns the old "music" field's value of the GamesReview entity.
// If the GamesReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamesReviewMutation) OldMusic(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMusic is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMusic requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMusic: %w", err)
	}
	return oldValue.Music, nil
}

// AddMusic adds i to the "music" field.
func (m *GamesReviewMutation) AddMusic(i int) {
	if m.addmusic != nil {
		*m.addmusic += i
	} else {
		m.addmusic = &i
	}
}

// AddedMusic returns the value that was added to the "music" field in this mutation.
func (m *GamesReviewMutation) AddedMusic() (r int, exists bool) {
	v := m.addmusic
	if v == nil {
		return
	}
	return *v, true
}

// ClearMusic clears the value of the "music" field.
func (m *GamesReviewMutation) ClearMusic() {
	m.music = nil
	m.addmusic = nil
	m.clearedFields[gamesreview.FieldMusic] = struct{}{}
}

// MusicCleared returns if the "music" field was cleared in this mutation.
func (m *GamesReviewMutation) MusicCleared() bool {
	_, ok := m.clearedFields[gamesreview.FieldMusic]
	return ok
}

// ResetMusic resets all changes to the "music" field.
func (m *GamesReviewMutation) ResetMusic() {
	m.music = nil
	m.addmusic = nil
	delete(m.clearedFields, gamesreview.FieldMusic)
}

// SetVoicing sets the "voicing" field.
func (m *GamesReviewMutation) SetVoicing(i int) {
	m.voicing = &i
	m.addvoicing = nil
}

// Voicing returns the value of the "voicing" field in the mutation.
func (m *GamesReviewMutation) Voicing() (r int, exists bool) {
	v := m.voicing
	if v == nil {
		return
	}
	return *v, true
}

// OldVoicing returns the old "voicing" field's value of the GamesReview entity.
// If the GamesReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *GamesReviewMutation) OldVoicing(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVoicing is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVoicing requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVoicing: %w", err)
	}
	return oldValue.Voicing, nil
}

// AddVoicing adds i to the "voicing" field.
func (m *GamesReviewMutation) AddVoicing(i int) {
	if m.addvoicing != nil {
		*m.addvoicing += i
	} else {
		m.addvoicing = &i
	}
}

// AddedVoicing returns the value that was added to the "voicing" field in this mutation.
func (m *GamesReviewMutation) AddedVoicing() (r int, exists bool) {
	v := m.addvoicing
	if v == nil {
		return
	}
	return *v, true
}

// ClearVoicing clears the value of the "voicing" field.
func (m *GamesReviewMutation) ClearVoicing() {
	m.voicing = nil
	m.addvoicing = nil
	m.clearedFields[gamesreview.FieldVoicing] = struct{}{}
}

// VoicingCleared returns if the "voicing" field was cleared in this mutation.
func (m *GamesReviewMutation) VoicingCleared() bool {
	_, ok := m.clearedFields[gamesreview.FieldVoicing]
	return ok
}

// ResetVoicing resets all changes to the "voicing" field.
func (m *GamesReviewMutation) ResetVoicing() {
	m.voicing = nil
	m.addvoicing = nil
	delete(m.clearedFields, gamesreview.FieldVoicing)
}

// Where appends a list predicates to the GamesReviewMutation builder.
func (m *GamesReviewMutation) Where(ps ...predicate.GamesReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the GamesReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *GamesReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.GamesReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *GamesReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *GamesReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (GamesReview).
func (m *GamesReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *GamesReviewMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.created_at != nil {
		fields = append(fields, gamesreview.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, gamesreview.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, gamesreview.FieldUsername)
	}
	if m.article_id != nil {
		fields = append(fields, gamesreview.FieldArticleID)
	}
	if m.review != nil {
		fields = append(fields, gamesreview.FieldReview)
	}
	if m.review_html != nil {
		fields = append(fields, gamesreview.FieldReviewHTML)
	}
	if m.overall != nil {
		fields = append(fields, gamesreview.FieldOverall)
	}
	if m.art != nil {
		fields = append(fields, gamesreview.FieldArt)
	}
	if m.characters != nil {
		fields = append(fields, gamesreview.FieldCharacters)
	}
	if m.story != nil {
		fields = append(fields, gamesreview.FieldStory)
	}
	if m.enjoyment != nil {
		fields = append(fields, gamesreview.FieldEnjoyment)
	}
	if m.graphics != nil {
		fields = append(fields, gamesreview.FieldGraphics)
	}
	if m.music != nil {
		fields = append(fields, gamesreview.FieldMusic)
	}
	if m.voicing != nil {
		fields = append(fields, gamesreview.FieldVoicing)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *GamesReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case gamesreview.FieldCreatedAt:
		return m.CreatedAt()
	case gamesreview.FieldUpdatedAt:
		return m.UpdatedAt()
	case gamesreview.FieldUsername:
		return m.Username()
	case gamesreview.FieldArticleID:
		return m.ArticleID()
	case gamesreview.FieldReview:
		return m.Review()
	case gamesreview.FieldReviewHTML:
		return m.ReviewHTML()
	case gamesreview.FieldOverall:
		return m.Overall()
	case gamesreview.FieldArt:
		return m.Art()
	case gamesreview.FieldCharacters:
		return m.Characters()
	case gamesreview.FieldStory:
		return m.Story()
	case gamesreview.FieldEnjoyment:
		return m.Enjoyment()
	case gamesreview.FieldGraphics:
		return m.Graphics()
	case gamesreview.FieldMusic:
		return m.Music()
	case gamesreview.FieldVoicing:
		return m.Voicing()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *GamesReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case gamesreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case gamesreview.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case gamesreview.FieldUsername:
		return m.OldUsername(ctx)
	case gamesreview.FieldArticleID:
		return m.OldArticleID(ctx)
	case gamesreview.FieldReview:
		return m.OldReview(ctx)
	case gamesreview.FieldReviewHTML:
		return m.OldReviewHTML(ctx)
	case gamesreview.FieldOverall:
		return m.OldOverall(ctx)
	case gamesreview.FieldArt:
		return m.OldArt(ctx)
	case gamesreview.FieldCharacters:
		return m.OldCharacters(ctx)
	case gamesreview.FieldStory:
		return m.OldStory(ctx)
	case gamesreview.FieldEnjoyment:
		return m.OldEnjoyment(ctx)
	case gamesreview.FieldGraphics:
		return m.OldGraphics(ctx)
	case gamesreview.FieldMusic:
		return m.OldMusic(ctx)
	case gamesreview.FieldVoicing:
		return m.OldVoicing(ctx)
	}
	return nil, fmt.Errorf("unknown GamesReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GamesReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case gamesreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case gamesreview.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case gamesreview.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case gamesreview.FieldArticleID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleID(v)
		return nil
	case gamesreview.FieldReview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReview(v)
		return nil
	case gamesreview.FieldReviewHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewHTML(v)
		return nil
	case gamesreview.FieldOverall:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverall(v)
		return nil
	case gamesreview.FieldArt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArt(v)
		return nil
	case gamesreview.FieldCharacters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharacters(v)
		return nil
	case gamesreview.FieldStory:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStory(v)
		return nil
	case gamesreview.FieldEnjoyment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnjoyment(v)
		return nil
	case gamesreview.FieldGraphics:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGraphics(v)
		return nil
	case gamesreview.FieldMusic:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMusic(v)
		return nil
	case gamesreview.FieldVoicing:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVoicing(v)
		return nil
	}
	return fmt.Errorf("unknown GamesReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *GamesReviewMutation) AddedFields() []string {
	var fields []string
	if m.addarticle_id != nil {
		fields = append(fields, gamesreview.FieldArticleID)
	}
	if m.addoverall != nil {
		fields = append(fields, gamesreview.FieldOverall)
	}
	if m.addart != nil {
		fields = append(fields, gamesreview.FieldArt)
	}
	if m.addcharacters != nil {
		fields = append(fields, gamesreview.FieldCharacters)
	}
	if m.addstory != nil {
		fields = append(fields, gamesreview.FieldStory)
	}
	if m.addenjoyment != nil {
		fields = append(fields, gamesreview.FieldEnjoyment)
	}
	if m.addgraphics != nil {
		fields = append(fields, gamesreview.FieldGraphics)
	}
	if m.addmusic != nil {
		fields = append(fields, gamesreview.FieldMusic)
	}
	if m.addvoicing != nil {
		fields = append(fields, gamesreview.FieldVoicing)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *GamesReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case gamesreview.FieldArticleID:
		return m.AddedArticleID()
	case gamesreview.FieldOverall:
		return m.AddedOverall()
	case gamesreview.FieldArt:
		return m.AddedArt()
	case gamesreview.FieldCharacters:
		return m.AddedCharacters()
	case gamesreview.FieldStory:
		return m.AddedStory()
	case gamesreview.FieldEnjoyment:
		return m.AddedEnjoyment()
	case gamesreview.FieldGraphics:
		return m.AddedGraphics()
	case gamesreview.FieldMusic:
		return m.AddedMusic()
	case gamesreview.FieldVoicing:
		return m.AddedVoicing()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *GamesReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case gamesreview.FieldArticleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleID(v)
		return nil
	case gamesreview.FieldOverall:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverall(v)
		return nil
	case gamesreview.FieldArt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArt(v)
		return nil
	case gamesreview.FieldCharacters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCharacters(v)
		return nil
	case gamesreview.FieldStory:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStory(v)
		return nil
	case gamesreview.FieldEnjoyment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnjoyment(v)
		return nil
	case gamesreview.FieldGraphics:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddGraphics(v)
		return nil
	case gamesreview.FieldMusic:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMusic(v)
		return nil
	case gamesreview.FieldVoicing:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVoicing(v)
		return nil
	}
	return fmt.Errorf("unknown GamesReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *GamesReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(gamesreview.FieldReviewHTML) {
		fields = append(fields, gamesreview.FieldReviewHTML)
	}
	if m.FieldCleared(gamesreview.FieldArt) {
		fields = append(fields, gamesreview.FieldArt)
	}
	if m.FieldCleared(gamesreview.FieldCharacters) {
		fields = append(fields, gamesreview.FieldCharacters)
	}
	if m.FieldCleared(gamesreview.FieldStory) {
		fields = append(fields, gamesreview.FieldStory)
	}
	if m.FieldCleared(gamesreview.FieldEnjoyment) {
		fields = append(fields, gamesreview.FieldEnjoyment)
	}
	if m.FieldCleared(gamesreview.FieldGraphics) {
		fields = append(fields, gamesreview.FieldGraphics)
	}
	if m.FieldCleared(gamesreview.FieldMusic) {
		fields = append(fields, gamesreview.FieldMusic)
	}
	if m.FieldCleared(gamesreview.FieldVoicing) {
		fields = append(fields, gamesreview.FieldVoicing)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *GamesReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *GamesReviewMutation) ClearField(name string) error {
	switch name {
	case gamesreview.FieldReviewHTML:
		m.ClearReviewHTML()
		return nil
	case gamesreview.FieldArt:
		m.ClearArt()
		return nil
	case gamesreview.FieldCharacters:
		m.ClearCharacters()
		return nil
	case gamesreview.FieldStory:
		m.ClearStory()
		return nil
	case gamesreview.FieldEnjoyment:
		m.ClearEnjoyment()
		return nil
	case gamesreview.FieldGraphics:
		m.ClearGraphics()
		return nil
	case gamesreview.FieldMusic:
		m.ClearMusic()
		return nil
	case gamesreview.FieldVoicing:
		m.ClearVoicing()
		return nil
	}
	return fmt.Errorf("unknown GamesReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *GamesReviewMutation) ResetField(name string) error {
	switch name {
	case gamesreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case gamesreview.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case gamesreview.FieldUsername:
		m.ResetUsername()
		return nil
	case gamesreview.FieldArticleID:
		m.ResetArticleID()
		return nil
	case gamesreview.FieldReview:
		m.ResetReview()
		return nil
	case gamesreview.FieldReviewHTML:
		m.ResetReviewHTML()
		return nil
	case gamesreview.FieldOverall:
		m.ResetOverall()
		return nil
	case gamesreview.FieldArt:
		m.ResetArt()
		return nil
	case gamesreview.FieldCharacters:
		m.ResetCharacters()
		return nil
	case gamesreview.FieldStory:
		m.ResetStory()
		return nil
	case gamesreview.FieldEnjoyment:
		m.ResetEnjoyment()
		return nil
	case gamesreview.FieldGraphics:
		m.ResetGraphics()
		return nil
	case gamesreview.FieldMusic:
		m.ResetMusic()
		return nil
	case gamesreview.FieldVoicing:
		m.ResetVoicing()
		return nil
	}
	return fmt.Errorf("unknown GamesReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *GamesReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *GamesReviewMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *GamesReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *GamesReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *GamesReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *GamesReviewMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *GamesReviewMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown GamesReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *GamesReviewMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown GamesReview edge %s", name)
}

// MangaMutation represents an operation that mutates the Manga nodes in the graph.
type MangaMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	deleted_at    *time.Time
	created_at    *time.Time
	updated_at    *time.Time
	title         *string
	slug          *string
	description   *string
	cover_url     *string
	authors       *string
	publishers    *string
	genres        *string
	premiered     *time.Time
	draft         *bool
	accepted      *bool
	contributor   *string
	volumes       *int
	addvolumes    *int
	chapters      *int
	addchapters   *int
	_type         *manga.Type
	finished_at   *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Manga, error)
	predicates    []predicate.Manga
}

var _ ent.Mutation = (*MangaMutation)(nil)

// mangaOption allows management of the mutation configuration using functional options.
type mangaOption func(*MangaMutation)

// newMangaMutation creates new mutation for the Manga entity.
func newMangaMutation(c config, op Op, opts ...mangaOption) *MangaMutation {
	m := &MangaMutation{
		config:        c,
		op:            op,
		typ:           TypeManga,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMangaID sets the ID field of the mutation.
func withMangaID(id uint) mangaOption {
	return func(m *MangaMutation) {
		var (
			err   error
			once  sync.Once
			value *Manga
		)
		m.oldValue = func(ctx context.Context) (*Manga, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Manga.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withManga sets the old Manga of the mutation.
func withManga(node *Manga) mangaOption {
	return func(m *MangaMutation) {
		m.oldValue = func(context.Context) (*Manga, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MangaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MangaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Manga entities.
func (m *MangaMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MangaMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MangaMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Manga.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDeletedAt sets the "deleted_at" field.
func (m *MangaMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *MangaMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *MangaMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[manga.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *MangaMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[manga.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *MangaMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, manga.FieldDeletedAt)
}

// SetCreatedAt sets the "created_at" field.
func (m *MangaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MangaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MangaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MangaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MangaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MangaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetTitle sets the "title" field.
func (m *MangaMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *MangaMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *MangaMutation) ResetTitle() {
	m.title = nil
}

// SetSlug sets the "slug" field.
func (m *MangaMutation) SetSlug(s string) {
	m.slug = &s
}

// Slug returns the value of the "slug" field in the mutation.
func (m *MangaMutation) Slug() (r string, exists bool) {
	v := m.slug
	if v == nil {
		return
	}
	return *v, true
}

// OldSlug returns the old "slug" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldSlug(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSlug is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSlug requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSlug: %w", err)
	}
	return oldValue.Slug, nil
}

// ResetSlug resets all changes to the "slug" field.
func (m *MangaMutation) ResetSlug() {
	m.slug = nil
}

// SetDescription sets the "description" field.
func (m *MangaMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *MangaMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldDescription(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *MangaMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[manga.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *MangaMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[manga.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *MangaMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, manga.FieldDescription)
}

// SetCoverURL sets the "cover_url" field.
func (m *MangaMutation) SetCoverURL(s string) {
	m.cover_url = &s
}

// CoverURL returns the value of the "cover_url" field in the mutation.
func (m *MangaMutation) CoverURL() (r string, exists bool) {
	v := m.cover_url
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverURL returns the old "cover_url" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldCoverURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverURL: %w", err)
	}
	return oldValue.CoverURL, nil
}

// ClearCoverURL clears the value of the "cover_url" field.
func (m *MangaMutation) ClearCoverURL() {
	m.cover_url = nil
	m.clearedFields[manga.FieldCoverURL] = struct{}{}
}

// CoverURLCleared returns if the "cover_url" field was cleared in this mutation.
func (m *MangaMutation) CoverURLCleared() bool {
	_, ok := m.clearedFields[manga.FieldCoverURL]
	return ok
}

// ResetCoverURL resets all changes to the "cover_url" field.
func (m *MangaMutation) ResetCoverURL() {
	m.cover_url = nil
	delete(m.clearedFields, manga.FieldCoverURL)
}

// SetAuthors sets the "authors" field.
func (m *MangaMutation) SetAuthors(s string) {
	m.authors = &s
}

// Authors returns the value of the "authors" field in the mutation.
func (m *MangaMutation) Authors() (r string, exists bool) {
	v := m.authors
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthors returns the old "authors" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldAuthors(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthors is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthors requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthors: %w", err)
	}
	return oldValue.Authors, nil
}

// ClearAuthors clears the value of the "authors" field.
func (m *MangaMutation) ClearAuthors() {
	m.authors = nil
	m.clearedFields[manga.FieldAuthors] = struct{}{}
}

// AuthorsCleared returns if the "authors" field was cleared in this mutation.
func (m *MangaMutation) AuthorsCleared() bool {
	_, ok := m.clearedFields[manga.FieldAuthors]
	return ok
}

// ResetAuthors resets all changes to the "authors" field.
func (m *MangaMutation) ResetAuthors() {
	m.authors = nil
	delete(m.clearedFields, manga.FieldAuthors)
}

// SetPublishers sets the "publishers" field.
func (m *MangaMutation) SetPublishers(s string) {
	m.publishers = &s
}

// Publishers returns the value of the "publishers" field in the mutation.
func (m *MangaMutation) Publishers() (r string, exists bool) {
	v := m.publishers
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishers returns the old "publishers" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldPublishers(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishers: %w", err)
	}
	return oldValue.Publishers, nil
}

// ClearPublishers clears the value of the "publishers" field.
func (m *MangaMutation) ClearPublishers() {
	m.publishers = nil
	m.clearedFields[manga.FieldPublishers] = struct{}{}
}

// PublishersCleared returns if the "publishers" field was cleared in this mutation.
func (m *MangaMutation) PublishersCleared() bool {
	_, ok := m.clearedFields[manga.FieldPublishers]
	return ok
}

// ResetPublishers resets all changes to the "publishers" field.
func (m *MangaMutation) ResetPublishers() {
	m.publishers = nil
	delete(m.clearedFields, manga.FieldPublishers)
}

// SetGenres sets the "genres" field.
func (m *MangaMutation) SetGenres(s string) {
	m.genres = &s
}

// Genres returns the value of the "genres" field in the mutation.
func (m *MangaMutation) Genres() (r string, exists bool) {
	v := m.genres
	if v == nil {
		return
	}
	return *v, true
}

// OldGenres returns the old "genres" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldGenres(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGenres is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGenres requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGenres: %w", err)
	}
	return oldValue.Genres, nil
}

// ClearGenres clears the value of the "genres" field.
func (m *MangaMutation) ClearGenres() {
	m.genres = nil
	m.clearedFields[manga.FieldGenres] = struct{}{}
}

// GenresCleared returns if the "genres" field was cleared in this mutation.
func (m *MangaMutation) GenresCleared() bool {
	_, ok := m.clearedFields[manga.FieldGenres]
	return ok
}

// ResetGenres resets all changes to the "genres" field.
func (m *MangaMutation) ResetGenres() {
	m.genres = nil
	delete(m.clearedFields, manga.FieldGenres)
}

// SetPremiered sets the "premiered" field.
func (m *MangaMutation) SetPremiered(t time.Time) {
	m.premiered = &t
}

// Premiered returns the value of the "premiered" field in the mutation.
func (m *MangaMutation) Premiered() (r time.Time, exists bool) {
	v := m.premiered
	if v == nil {
		return
	}
	return *v, true
}

// OldPremiered returns the old "premiered" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldPremiered(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPremiered is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPremiered requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPremiered: %w", err)
	}
	return oldValue.Premiered, nil
}

// ClearPremiered clears the value of the "premiered" field.
func (m *MangaMutation) ClearPremiered() {
	m.premiered = nil
	m.clearedFields[manga.FieldPremiered] = struct{}{}
}

// PremieredCleared returns if the "premiered" field was cleared in this mutation.
func (m *MangaMutation) PremieredCleared() bool {
	_, ok := m.clearedFields[manga.FieldPremiered]
	return ok
}

// ResetPremiered resets all changes to the "premiered" field.
func (m *MangaMutation) ResetPremiered() {
	m.premiered = nil
	delete(m.clearedFields, manga.FieldPremiered)
}

// SetDraft sets the "draft" field.
func (m *MangaMutation) SetDraft(b bool) {
	m.draft = &b
}

// Draft returns the value of the "draft" field in the mutation.
func (m *MangaMutation) Draft() (r bool, exists bool) {
	v := m.draft
	if v == nil {
		return
	}
	return *v, true
}

// OldDraft returns the old "draft" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldDraft(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDraft is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDraft requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDraft: %w", err)
	}
	return oldValue.Draft, nil
}

// ResetDraft resets all changes to the "draft" field.
func (m *MangaMutation) ResetDraft() {
	m.draft = nil
}

// SetAccepted sets the "accepted" field.
func (m *MangaMutation) SetAccepted(b bool) {
	m.accepted = &b
}

// Accepted returns the value of the "accepted" field in the mutation.
func (m *MangaMutation) Accepted() (r bool, exists bool) {
	v := m.accepted
	if v == nil {
		return
	}
	return *v, true
}

// OldAccepted returns the old "accepted" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldAccepted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAccepted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAccepted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAccepted: %w", err)
	}
	return oldValue.Accepted, nil
}

// ResetAccepted resets all changes to the "accepted" field.
func (m *MangaMutation) ResetAccepted() {
	m.accepted = nil
}

// SetContributor sets the "contributor" field.
func (m *MangaMutation) SetContributor(s string) {
	m.contributor = &s
}

// Contributor returns the value of the "contributor" field in the mutation.
func (m *MangaMutation) Contributor() (r string, exists bool) {
	v := m.contributor
	if v == nil {
		return
	}
	return *v, true
}

// OldContributor returns the old "contributor" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldContributor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributor: %w", err)
	}
	return oldValue.Contributor, nil
}

// ClearContributor clears the value of the "contributor" field.
func (m *MangaMutation) ClearContributor() {
	m.contributor = nil
	m.clearedFields[manga.FieldContributor] = struct{}{}
}

// ContributorCleared returns if the "contributor" field was cleared in this mutation.
func (m *MangaMutation) ContributorCleared() bool {
	_, ok := m.clearedFields[manga.FieldContributor]
	return ok
}

// ResetContributor resets all changes to the "contributor" field.
func (m *MangaMutation) ResetContributor() {
	m.contributor = nil
	delete(m.clearedFields, manga.FieldContributor)
}

// SetVolumes sets the "volumes" field.
func (m *MangaMutation) SetVolumes(i int) {
	m.volumes = &i
	m.addvolumes = nil
}

// Volumes returns the value of the "volumes" field in the mutation.
func (m *MangaMutation) Volumes() (r int, exists bool) {
	v := m.volumes
	if v == nil {
		return
	}
	return *v, true
}

// OldVolumes returns the old "volumes" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldVolumes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVolumes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVolumes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVolumes: %w", err)
	}
	return oldValue.Volumes, nil
}

// AddVolumes adds i to the "volumes" field.
func (m *MangaMutation) AddVolumes(i int) {
	if m.addvolumes != nil {
		*m.addvolumes += i
	} else {
		m.addvolumes = &i
	}
}

// AddedVolumes returns the value that was added to the "volumes" field in this mutation.
func (m *MangaMutation) AddedVolumes() (r int, exists bool) {
	v := m.addvolumes
	if v == nil {
		return
	}
	return *v, true
}

// ResetVolumes resets all changes to the "volumes" field.
func (m *MangaMutation) ResetVolumes() {
	m.volumes = nil
	m.addvolumes = nil
}

// SetChapters sets the "chapters" field.
func (m *MangaMutation) SetChapters(i int) {
	m.chapters = &i
	m.addchapters = nil
}

// Chapters returns the value of the "chapters" field in the mutation.
func (m *MangaMutation) Chapters() (r int, exists bool) {
	v := m.chapters
	if v == nil {
		return
	}
	return *v, true
}

// OldChapters returns the old "chapters" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldChapters(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapters: %w", err)
	}
	return oldValue.Chapters, nil
}

// AddChapters adds i to the "chapters" field.
func (m *MangaMutation) AddChapters(i int) {
	if m.addchapters != nil {
		*m.addchapters += i
	} else {
		m.addchapters = &i
	}
}

// AddedChapters returns the value that was added to the "chapters" field in this mutation.
func (m *MangaMutation) AddedChapters() (r int, exists bool) {
	v := m.addchapters
	if v == nil {
		return
	}
	return *v, true
}

// ResetChapters resets all changes to the "chapters" field.
func (m *MangaMutation) ResetChapters() {
	m.chapters = nil
	m.addchapters = nil
}

// SetType sets the "type" field.
func (m *MangaMutation) SetType(value manga.Type) {
	m._type = &value
}

// GetType returns the value of the "type" field in the mutation.
func (m *MangaMutation) GetType() (r manga.Type, exists bool) {
	v := m._type
	if v == nil {
		return
	}
	return *v, true
}

// OldType returns the old "type" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldType(ctx context.Context) (v manga.Type, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldType: %w", err)
	}
	return oldValue.Type, nil
}

// ResetType resets all changes to the "type" field.
func (m *MangaMutation) ResetType() {
	m._type = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *MangaMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *MangaMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the Manga entity.
// If the Manga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangaMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *MangaMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[manga.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *MangaMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[manga.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *MangaMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, manga.FieldFinishedAt)
}

// Where appends a list predicates to the MangaMutation builder.
func (m *MangaMutation) Where(ps ...predicate.Manga) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MangaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MangaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Manga, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MangaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MangaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Manga).
func (m *MangaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MangaMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.deleted_at != nil {
		fields = append(fields, manga.FieldDeletedAt)
	}
	if m.created_at != nil {
		fields = append(fields, manga.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, manga.FieldUpdatedAt)
	}
	if m.title != nil {
		fields = append(fields, manga.FieldTitle)
	}
	if m.slug != nil {
		fields = append(fields, manga.FieldSlug)
	}
	if m.description != nil {
		fields = append(fields, manga.FieldDescription)
	}
	if m.cover_url != nil {
		fields = append(fields, manga.FieldCoverURL)
	}
	if m.authors != nil {
		fields = append(fields, manga.FieldAuthors)
	}
	if m.publishers != nil {
		fields = append(fields, manga.FieldPublishers)
	}
	if m.genres != nil {
		fields = append(fields, manga.FieldGenres)
	}
	if m.premiered != nil {
		fields = append(fields, manga.FieldPremiered)
	}
	if m.draft != nil {
		fields = append(fields, manga.FieldDraft)
	}
	if m.accepted != nil {
		fields = append(fields, manga.FieldAccepted)
	}
	if m.contributor != nil {
		fields = append(fields, manga.FieldContributor)
	}
	if m.volumes != nil {
		fields = append(fields, manga.FieldVolumes)
	}
	if m.chapters != nil {
		fields = append(fields, manga.FieldChapters)
	}
	if m._type != nil {
		fields = append(fields, manga.FieldType)
	}
	if m.finished_at != nil {
		fields = append(fields, manga.FieldFinishedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MangaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case manga.FieldDeletedAt:
		return m.DeletedAt()
	case manga.FieldCreatedAt:
		return m.CreatedAt()
	case manga.FieldUpdatedAt:
		return m.UpdatedAt()
	case manga.FieldTitle:
		return m.Title()
	case manga.FieldSlug:
		return m.Slug()
	case manga.FieldDescription:
		return m.Description()
	case manga.FieldCoverURL:
		return m.CoverURL()
	case manga.FieldAuthors:
		return m.Authors()
	case manga.FieldPublishers:
		return m.Publishers()
	case manga.FieldGenres:
		return m.Genres()
	case manga.FieldPremiered:
		return m.Premiered()
	case manga.FieldDraft:
		return m.Draft()
	case manga.FieldAccepted:
		return m.Accepted()
	case manga.FieldContributor:
		return m.Contributor()
	case manga.FieldVolumes:
		return m.Volumes()
	case manga.FieldChapters:
		return m.Chapters()
	case manga.FieldType:
		return m.GetType()
	case manga.FieldFinishedAt:
		return m.FinishedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MangaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case manga.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	case manga.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case manga.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case manga.FieldTitle:
		return m.OldTitle(ctx)
	case manga.FieldSlug:
		return m.OldSlug(ctx)
	case manga.FieldDescription:
		return m.OldDescription(ctx)
	case manga.FieldCoverURL:
		return m.OldCoverURL(ctx)
	case manga.FieldAuthors:
		return m.OldAuthors(ctx)
	case manga.FieldPublishers:
		return m.OldPublishers(ctx)
	case manga.FieldGenres:
		return m.OldGenres(ctx)
	case manga.FieldPremiered:
		return m.OldPremiered(ctx)
	case manga.FieldDraft:
		return m.OldDraft(ctx)
	case manga.FieldAccepted:
		return m.OldAccepted(ctx)
	case manga.FieldContributor:
		return m.OldContributor(ctx)
	case manga.FieldVolumes:
		return m.OldVolumes(ctx)
	case manga.FieldChapters:
		return m.OldChapters(ctx)
	case manga.FieldType:
		return m.OldType(ctx)
	case manga.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Manga field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MangaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case manga.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	case manga.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case manga.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case manga.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case manga.FieldSlug:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSlug(v)
		return nil
	case manga.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case manga.FieldCoverURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverURL(v)
		return nil
	case manga.FieldAuthors:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthors(v)
		return nil
	case manga.FieldPublishers:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishers(v)
		return nil
	case manga.FieldGenres:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGenres(v)
		return nil
	case manga.FieldPremiered:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPremiered(v)
		return nil
	case manga.FieldDraft:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDraft(v)
		return nil
	case manga.FieldAccepted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAccepted(v)
		return nil
	case manga.FieldContributor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributor(v)
		return nil
	case manga.FieldVolumes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVolumes(v)
		return nil
	case manga.FieldChapters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapters(v)
		return nil
	case manga.FieldType:
		v, ok := value.(manga.Type)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetType(v)
		return nil
	case manga.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Manga field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MangaMutation) AddedFields() []string {
	var fields []string
	if m.addvolumes != nil {
		fields = append(fields, manga.FieldVolumes)
	}
	if m.addchapters != nil {
		fields = append(fields, manga.FieldChapters)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MangaMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case manga.FieldVolumes:
		return m.AddedVolumes()
	case manga.FieldChapters:
		return m.AddedChapters()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MangaMutation) AddField(name string, value ent.Value) error {
	switch name {
	case manga.FieldVolumes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVolumes(v)
		return nil
	case manga.FieldChapters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChapters(v)
		return nil
	}
	return fmt.Errorf("unknown Manga numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MangaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(manga.FieldDeletedAt) {
		fields = append(fields, manga.FieldDeletedAt)
	}
	if m.FieldCleared(manga.FieldDescription) {
		fields = append(fields, manga.FieldDescription)
	}
	if m.FieldCleared(manga.FieldCoverURL) {
		fields = append(fields, manga.FieldCoverURL)
	}
	if m.FieldCleared(manga.FieldAuthors) {
		fields = append(fields, manga.FieldAuthors)
	}
	if m.FieldCleared(manga.FieldPublishers) {
		fields = append(fields, manga.FieldPublishers)
	}
	if m.FieldCleared(manga.FieldGenres) {
		fields = append(fields, manga.FieldGenres)
	}
	if m.FieldCleared(manga.FieldPremiered) {
		fields = append(fields, manga.FieldPremiered)
	}
	if m.FieldCleared(manga.FieldContributor) {
		fields = append(fields, manga.FieldContributor)
	}
	if m.FieldCleared(manga.FieldFinishedAt) {
		fields = append(fields, manga.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MangaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MangaMutation) ClearField(name string) error {
	switch name {
	case manga.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	case manga.FieldDescription:
		m.ClearDescription()
		return nil
	case manga.FieldCoverURL:
		m.ClearCoverURL()
		return nil
	case manga.FieldAuthors:
		m.ClearAuthors()
		return nil
	case manga.FieldPublishers:
		m.ClearPublishers()
		return nil
	case manga.FieldGenres:
		m.ClearGenres()
		return nil
	case manga.FieldPremiered:
		m.ClearPremiered()
		return nil
	case manga.FieldContributor:
		m.ClearContributor()
		return nil
	case manga.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Manga nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MangaMutation) ResetField(name string) error {
	switch name {
	case manga.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	case manga.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case manga.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case manga.FieldTitle:
		m.ResetTitle()
		return nil
	case manga.FieldSlug:
		m.ResetSlug()
		return nil
	case manga.FieldDescription:
		m.ResetDescription()
		return nil
	case manga.FieldCoverURL:
		m.ResetCoverURL()
		return nil
	case manga.FieldAuthors:
		m.ResetAuthors()
		return nil
	case manga.FieldPublishers:
		m.ResetPublishers()
		return nil
	case manga.FieldGenres:
		m.ResetGenres()
		return nil
	case manga.FieldPremiered:
		m.ResetPremiered()
		return nil
	case manga.FieldDraft:
		m.ResetDraft()
		return nil
	case manga.FieldAccepted:
		m.ResetAccepted()
		return nil
	case manga.FieldContributor:
		m.ResetContributor()
		return nil
	case manga.FieldVolumes:
		m.ResetVolumes()
		return nil
	case manga.FieldChapters:
		m.ResetChapters()
		return nil
	case manga.FieldType:
		m.ResetType()
		return nil
	case manga.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown Manga field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MangaMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MangaMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MangaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MangaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MangaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MangaMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MangaMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Manga unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MangaMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Manga edge %s", name)
}

// MangasReviewMutation represents an operation that mutates the MangasReview nodes in the graph.
type MangasReviewMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	created_at    *time.Time
	updated_at    *time.Time
	username      *string
	article_id    *uint
	addarticle_id *int
	review        *string
	review_html   *string
	overall       *int
	addoverall    *int
	art           *int
	addart        *int
	characters    *int
	addcharacters *int
	story         *int
	addstory      *int
	enjoyment     *int
	addenjoyment  *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*MangasReview, error)
	predicates    []predicate.MangasReview
}

var _ ent.Mutation = (*MangasReviewMutation)(nil)

// mangasreviewOption allows management of the mutation configuration using functional options.
type mangasreviewOption func(*MangasReviewMutation)

// newMangasReviewMutation creates new mutation for the MangasReview entity.
func newMangasReviewMutation(c config, op Op, opts ...mangasreviewOption) *MangasReviewMutation {
	m := &MangasReviewMutation{
		config:        c,
		op:            op,
		typ:           TypeMangasReview,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withMangasReviewID sets the ID field of the mutation.
func withMangasReviewID(id uint) mangasreviewOption {
	return func(m *MangasReviewMutation) {
		var (
			err   error
			once  sync.Once
			value *MangasReview
		)
		m.oldValue = func(ctx context.Context) (*MangasReview, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().MangasReview.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withMangasReview sets the old MangasReview of the mutation.
func withMangasReview(node *MangasReview) mangasreviewOption {
	return func(m *MangasReviewMutation) {
		m.oldValue = func(context.Context) (*MangasReview, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m MangasReviewMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m MangasReviewMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of MangasReview entities.
func (m *MangasReviewMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *MangasReviewMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *MangasReviewMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().MangasReview.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *MangasReviewMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *MangasReviewMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the MangasReview entity.
// If the MangasReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangasReviewMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *MangasReviewMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *MangasReviewMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *MangasReviewMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the MangasReview entity.
// If the MangasReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangasReviewMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *MangasReviewMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *MangasReviewMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *MangasReviewMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the MangasReview entity.
// If the MangasReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangasReviewMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *MangasReviewMutation) ResetUsername() {
	m.username = nil
}

// SetArticleID sets the "article_id" field.
func (m *MangasReviewMutation) SetArticleID(u uint) {
	m.article_id = &u
	m.addarticle_id = nil
}

// ArticleID returns the value of the "article_id" field in the mutation.
func (m *MangasReviewMutation) ArticleID() (r uint, exists bool) {
	v := m.article_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleID returns the old "article_id" field's value of the MangasReview entity.
// If the MangasReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangasReviewMutation) OldArticleID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleID: %w", err)
	}
	return oldValue.ArticleID, nil
}

// AddArticleID adds u to the "article_id" field.
func (m *MangasReviewMutation) AddArticleID(u int) {
	if m.addarticle_id != nil {
		*m.addarticle_id += u
	} else {
		m.addarticle_id = &u
	}
}

// AddedArticleID returns the value that was added to the "article_id" field in this mutation.
func (m *MangasReviewMutation) AddedArticleID() (r int, exists bool) {
	v := m.addarticle_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetArticleID resets all changes to the "article_id" field.
func (m *MangasReviewMutation) ResetArticleID() {
	m.article_id = nil
	m.addarticle_id = nil
}

// SetReview sets the "review" field.
func (m *MangasReviewMutation) SetReview(s string) {
	m.review = &s
}

// Review returns the value of the "review" field in the mutation.
func (m *MangasReviewMutation) Review() (r string, exists bool) {
	v := m.review
	if v == nil {
		return
	}
	return *v, true
}

// OldReview returns the old "review" field's value of the MangasReview entity.
// If the MangasReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangasReviewMutation) OldReview(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReview: %w", err)
	}
	return oldValue.Review, nil
}

// ResetReview resets all changes to the "review" field.
func (m *MangasReviewMutation) ResetReview() {
	m.review = nil
}

// SetReviewHTML sets the "review_html" field.
func (m *MangasReviewMutation) SetReviewHTML(s string) {
	m.review_html = &s
}

// ReviewHTML returns the value of the "review_html" field in the mutation.
func (m *MangasReviewMutation) ReviewHTML() (r string, exists bool) {
	v := m.review_html
	if v == nil {
		return
	}
	return *v, true
}

// OldReviewHTML returns the old "review_html" field's value of the MangasReview entity.
// If the MangasReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangasReviewMutation) OldReviewHTML(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldReviewHTML is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldReviewHTML requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldReviewHTML: %w", err)
	}
	return oldValue.ReviewHTML, nil
}

// ClearReviewHTML clears the value of the "review_html" field.
func (m *MangasReviewMutation) ClearReviewHTML() {
	m.review_html = nil
	m.clearedFields[mangasreview.FieldReviewHTML] = struct{}{}
}

// ReviewHTMLCleared returns if the "review_html" field was cleared in this mutation.
func (m *MangasReviewMutation) ReviewHTMLCleared() bool {
	_, ok := m.clearedFields[mangasreview.FieldReviewHTML]
	return ok
}

// ResetReviewHTML resets all changes to the "review_html" field.
func (m *MangasReviewMutation) ResetReviewHTML() {
	m.review_html = nil
	delete(m.clearedFields, mangasreview.FieldReviewHTML)
}

// SetOverall sets the "overall" field.
func (m *MangasReviewMutation) SetOverall(i int) {
	m.overall = &i
	m.addoverall = nil
}

// Overall returns the value of the "overall" field in the mutation.
func (m *MangasReviewMutation) Overall() (r int, exists bool) {
	v := m.overall
	if v == nil {
		return
	}
	return *v, true
}

// OldOverall returns the old "overall" field's value of the MangasReview entity.
// If the MangasReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangasReviewMutation) OldOverall(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverall is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverall requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverall: %w", err)
	}
	return oldValue.Overall, nil
}

// AddOverall adds i to the "overall" field.
func (m *MangasReviewMutation) AddOverall(i int) {
	if m.addoverall != nil {
		*m.addoverall += i
	} else {
		m.addoverall = &i
	}
}

// AddedOverall returns the value that was added to the "overall" field in this mutation.
func (m *MangasReviewMutation) AddedOverall() (r int, exists bool) {
	v := m.addoverall
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverall resets all changes to the "overall" field.
func (m *MangasReviewMutation) ResetOverall() {
	m.overall = nil
	m.addoverall = nil
}

// SetArt sets the "art" field.
func (m *MangasReviewMutation) SetArt(i int) {
	m.art = &i
	m.addart = nil
}

// Art returns the value of the "art" field in the mutation.
func (m *MangasReviewMutation) Art() (r int, exists bool) {
	v := m.art
	if v == nil {
		return
	}
	return *v, true
}

// OldArt returns the old "art" field's value of the MangasReview entity.
// If the MangasReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangasReviewMutation) OldArt(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArt: %w", err)
	}
	return oldValue.Art, nil
}

// AddArt adds i to the "art" field.
func (m *MangasReviewMutation) AddArt(i int) {
	if m.addart != nil {
		*m.addart += i
	} else {
		m.addart = &i
	}
}

// AddedArt returns the value that was added to the "art" field in this mutation.
func (m *MangasReviewMutation) AddedArt() (r int, exists bool) {
	v := m.addart
	if v == nil {
		return
	}
	return *v, true
}

// ClearArt clears the value of the "art" field.
func (m *MangasReviewMutation) ClearArt() {
	m.art = nil
	m.addart = nil
	m.clearedFields[mangasreview.FieldArt] = struct{}{}
}

// ArtCleared returns if the "art" field was cleared in this mutation.
func (m *MangasReviewMutation) ArtCleared() bool {
	_, ok := m.clearedFields[mangasreview.FieldArt]
	return ok
}

// ResetArt resets all changes to the "art" field.
func (m *MangasReviewMutation) ResetArt() {
	m.art = nil
	m.addart = nil
	delete(m.clearedFields, mangasreview.FieldArt)
}

// SetCharacters sets the "characters" field.
func (m *MangasReviewMutation) SetCharacters(i int) {
	m.characters = &i
	m.addcharacters = nil
}

// Characters returns the value of the "characters" field in the mutation.
func (m *MangasReviewMutation) Characters() (r int, exists bool) {
	v := m.characters
	if v == nil {
		return
	}
	return *v, true
}

// OldCharacters returns the old "characters" field's value of the MangasReview entity.
// If the MangasReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangasReviewMutation) OldCharacters(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCharacters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCharacters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCharacters: %w", err)
	}
	return oldValue.Characters, nil
}

// AddCharacters adds i to the "characters" field.
func (m *MangasReviewMutation) AddCharacters(i int) {
	if m.addcharacters != nil {
		*m.addcharacters += i
	} else {
		m.addcharacters = &i
	}
}

// AddedCharacters returns the value that was added to the "characters" field in this mutation.
func (m *MangasReviewMutation) AddedCharacters() (r int, exists bool) {
	v := m.addcharacters
	if v == nil {
		return
	}
	return *v, true
}

// ClearCharacters clears the value of the "characters" field.
func (m *MangasReviewMutation) ClearCharacters() {
	m.characters = nil
	m.addcharacters = nil
	m.clearedFields[mangasreview.FieldCharacters] = struct{}{}
}

// CharactersCleared returns if the "characters" field was cleared in this mutation.
func (m *MangasReviewMutation) CharactersCleared() bool {
	_, ok := m.clearedFields[mangasreview.FieldCharacters]
	return ok
}

// ResetCharacters resets all changes to the "characters" field.
func (m *MangasReviewMutation) ResetCharacters() {
	m.characters = nil
	m.addcharacters = nil
	delete(m.clearedFields, mangasreview.FieldCharacters)
}

// SetStory sets the "story" field.
func (m *MangasReviewMutation) SetStory(i int) {
	m.story = &i
	m.addstory = nil
}

// Story returns the value of the "story" field in the mutation.
func (m *MangasReviewMutation) Story() (r int, exists bool) {
	v := m.story
	if v == nil {
		return
	}
	return *v, true
}

// OldStory returns the old "story" field's value of the MangasReview entity.
// If the MangasReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangasReviewMutation) OldStory(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStory: %w", err)
	}
	return oldValue.Story, nil
}

// AddStory adds i to the "story" field.
func (m *MangasReviewMutation) AddStory(i int) {
	if m.addstory != nil {
		*m.addstory += i
	} else {
		m.addstory = &i
	}
}

// AddedStory returns the value that was added to the "story" field in this mutation.
func (m *MangasReviewMutation) AddedStory() (r int, exists bool) {
	v := m.addstory
	if v == nil {
		return
	}
	return *v, true
}

// ClearStory clears the value of the "story" field.
func (m *MangasReviewMutation) ClearStory() {
	m.story = nil
	m.addstory = nil
	m.clearedFields[mangasreview.FieldStory] = struct{}{}
}

// StoryCleared returns if the "story" field was cleared in this mutation.
func (m *MangasReviewMutation) StoryCleared() bool {
	_, ok := m.clearedFields[mangasreview.FieldStory]
	return ok
}

// ResetStory resets all changes to the "story" field.
func (m *MangasReviewMutation) ResetStory() {
	m.story = nil
	m.addstory = nil
	delete(m.clearedFields, mangasreview.FieldStory)
}

// SetEnjoyment sets the "enjoyment" field.
func (m *MangasReviewMutation) SetEnjoyment(i int) {
	m.enjoyment = &i
	m.addenjoyment = nil
}

// Enjoyment returns the value of the "enjoyment" field in the mutation.
func (m *MangasReviewMutation) Enjoyment() (r int, exists bool) {
	v := m.enjoyment
	if v == nil {
		return
	}
	return *v, true
}

// OldEnjoyment returns the old "enjoyment" field's value of the MangasReview entity.
// If the MangasReview object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *MangasReviewMutation) OldEnjoyment(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnjoyment is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnjoyment requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnjoyment: %w", err)
	}
	return oldValue.Enjoyment, nil
}

// AddEnjoyment adds i to the "enjoyment" field.
func (m *MangasReviewMutation) AddEnjoyment(i int) {
	if m.addenjoyment != nil {
		*m.addenjoyment += i
	} else {
		m.addenjoyment = &i
	}
}

// AddedEnjoyment returns the value that was added to the "enjoyment" field in this mutation.
func (m *MangasReviewMutation) AddedEnjoyment() (r int, exists bool) {
	v := m.addenjoyment
	if v == nil {
		return
	}
	return *v, true
}

// ClearEnjoyment clears the value of the "enjoyment" field.
func (m *MangasReviewMutation) ClearEnjoyment() {
	m.enjoyment = nil
	m.addenjoyment = nil
	m.clearedFields[mangasreview.FieldEnjoyment] = struct{}{}
}

// EnjoymentCleared returns if the "enjoyment" field was cleared in this mutation.
func (m *MangasReviewMutation) EnjoymentCleared() bool {
	_, ok := m.clearedFields[mangasreview.FieldEnjoyment]
	return ok
}

// ResetEnjoyment resets all changes to the "enjoyment" field.
func (m *MangasReviewMutation) ResetEnjoyment() {
	m.enjoyment = nil
	m.addenjoyment = nil
	delete(m.clearedFields, mangasreview.FieldEnjoyment)
}

// Where appends a list predicates to the MangasReviewMutation builder.
func (m *MangasReviewMutation) Where(ps ...predicate.MangasReview) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the MangasReviewMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *MangasReviewMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.MangasReview, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *MangasReviewMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *MangasReviewMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (MangasReview).
func (m *MangasReviewMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *MangasReviewMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.created_at != nil {
		fields = append(fields, mangasreview.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, mangasreview.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, mangasreview.FieldUsername)
	}
	if m.article_id != nil {
		fields = append(fields, mangasreview.FieldArticleID)
	}
	if m.review != nil {
		fields = append(fields, mangasreview.FieldReview)
	}
	if m.review_html != nil {
		fields = append(fields, mangasreview.FieldReviewHTML)
	}
	if m.overall != nil {
		fields = append(fields, mangasreview.FieldOverall)
	}
	if m.art != nil {
		fields = append(fields, mangasreview.FieldArt)
	}
	if m.characters != nil {
		fields = append(fields, mangasreview.FieldCharacters)
	}
	if m.story != nil {
		fields = append(fields, mangasreview.FieldStory)
	}
	if m.enjoyment != nil {
		fields = append(fields, mangasreview.FieldEnjoyment)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *MangasReviewMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case mangasreview.FieldCreatedAt:
		return m.CreatedAt()
	case mangasreview.FieldUpdatedAt:
		return m.UpdatedAt()
	case mangasreview.FieldUsername:
		return m.Username()
	case mangasreview.FieldArticleID:
		return m.ArticleID()
	case mangasreview.FieldReview:
		return m.Review()
	case mangasreview.FieldReviewHTML:
		return m.ReviewHTML()
	case mangasreview.FieldOverall:
		return m.Overall()
	case mangasreview.FieldArt:
		return m.Art()
	case mangasreview.FieldCharacters:
		return m.Characters()
	case mangasreview.FieldStory:
		return m.Story()
	case mangasreview.FieldEnjoyment:
		return m.Enjoyment()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *MangasReviewMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case mangasreview.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case mangasreview.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case mangasreview.FieldUsername:
		return m.OldUsername(ctx)
	case mangasreview.FieldArticleID:
		return m.OldArticleID(ctx)
	case mangasreview.FieldReview:
		return m.OldReview(ctx)
	case mangasreview.FieldReviewHTML:
		return m.OldReviewHTML(ctx)
	case mangasreview.FieldOverall:
		return m.OldOverall(ctx)
	case mangasreview.FieldArt:
		return m.OldArt(ctx)
	case mangasreview.FieldCharacters:
		return m.OldCharacters(ctx)
	case mangasreview.FieldStory:
		return m.OldStory(ctx)
	case mangasreview.FieldEnjoyment:
		return m.OldEnjoyment(ctx)
	}
	return nil, fmt.Errorf("unknown MangasReview field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MangasReviewMutation) SetField(name string, value ent.Value) error {
	switch name {
	case mangasreview.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case mangasreview.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case mangasreview.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case mangasreview.FieldArticleID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleID(v)
		return nil
	case mangasreview.FieldReview:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReview(v)
		return nil
	case mangasreview.FieldReviewHTML:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetReviewHTML(v)
		return nil
	case mangasreview.FieldOverall:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverall(v)
		return nil
	case mangasreview.FieldArt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArt(v)
		return nil
	case mangasreview.FieldCharacters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCharacters(v)
		return nil
	case mangasreview.FieldStory:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStory(v)
		return nil
	case mangasreview.FieldEnjoyment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnjoyment(v)
		return nil
	}
	return fmt.Errorf("unknown MangasReview field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *MangasReviewMutation) AddedFields() []string {
	var fields []string
	if m.addarticle_id != nil {
		fields = append(fields, mangasreview.FieldArticleID)
	}
	if m.addoverall != nil {
		fields = append(fields, mangasreview.FieldOverall)
	}
	if m.addart != nil {
		fields = append(fields, mangasreview.FieldArt)
	}
	if m.addcharacters != nil {
		fields = append(fields, mangasreview.FieldCharacters)
	}
	if m.addstory != nil {
		fields = append(fields, mangasreview.FieldStory)
	}
	if m.addenjoyment != nil {
		fields = append(fields, mangasreview.FieldEnjoyment)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *MangasReviewMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case mangasreview.FieldArticleID:
		return m.AddedArticleID()
	case mangasreview.FieldOverall:
		return m.AddedOverall()
	case mangasreview.FieldArt:
		return m.AddedArt()
	case mangasreview.FieldCharacters:
		return m.AddedCharacters()
	case mangasreview.FieldStory:
		return m.AddedStory()
	case mangasreview.FieldEnjoyment:
		return m.AddedEnjoyment()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *MangasReviewMutation) AddField(name string, value ent.Value) error {
	switch name {
	case mangasreview.FieldArticleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleID(v)
		return nil
	case mangasreview.FieldOverall:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverall(v)
		return nil
	case mangasreview.FieldArt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArt(v)
		return nil
	case mangasreview.FieldCharacters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCharacters(v)
		return nil
	case mangasreview.FieldStory:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddStory(v)
		return nil
	case mangasreview.FieldEnjoyment:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEnjoyment(v)
		return nil
	}
	return fmt.Errorf("unknown MangasReview numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *MangasReviewMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(mangasreview.FieldReviewHTML) {
		fields = append(fields, mangasreview.FieldReviewHTML)
	}
	if m.FieldCleared(mangasreview.FieldArt) {
		fields = append(fields, mangasreview.FieldArt)
	}
	if m.FieldCleared(mangasreview.FieldCharacters) {
		fields = append(fields, mangasreview.FieldCharacters)
	}
	if m.FieldCleared(mangasreview.FieldStory) {
		fields = append(fields, mangasreview.FieldStory)
	}
	if m.FieldCleared(mangasreview.FieldEnjoyment) {
		fields = append(fields, mangasreview.FieldEnjoyment)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *MangasReviewMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *MangasReviewMutation) ClearField(name string) error {
	switch name {
	case mangasreview.FieldReviewHTML:
		m.ClearReviewHTML()
		return nil
	case mangasreview.FieldArt:
		m.ClearArt()
		return nil
	case mangasreview.FieldCharacters:
		m.ClearCharacters()
		return nil
	case mangasreview.FieldStory:
		m.ClearStory()
		return nil
	case mangasreview.FieldEnjoyment:
		m.ClearEnjoyment()
		return nil
	}
	return fmt.Errorf("unknown MangasReview nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *MangasReviewMutation) ResetField(name string) error {
	switch name {
	case mangasreview.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case mangasreview.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case mangasreview.FieldUsername:
		m.ResetUsername()
		return nil
	case mangasreview.FieldArticleID:
		m.ResetArticleID()
		return nil
	case mangasreview.FieldReview:
		m.ResetReview()
		return nil
	case mangasreview.FieldReviewHTML:
		m.ResetReviewHTML()
		return nil
	case mangasreview.FieldOverall:
		m.ResetOverall()
		return nil
	case mangasreview.FieldArt:
		m.ResetArt()
		return nil
	case mangasreview.FieldCharacters:
		m.ResetCharacters()
		return nil
	case mangasreview.FieldStory:
		m.ResetStory()
		return nil
	case mangasreview.FieldEnjoyment:
		m.ResetEnjoyment()
		return nil
	}
	return fmt.Errorf("unknown MangasReview field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *MangasReviewMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *MangasReviewMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *MangasReviewMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *MangasReviewMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *MangasReviewMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *MangasReviewMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *MangasReviewMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown MangasReview unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *MangasReviewMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown MangasReview edge %s", name)
}

// UserMutation represents an operation that mutates the User nodes in the graph.
type UserMutation struct {
	config
	op                     Op
	typ                    string
	id                     *uint
	created_at             *time.Time
	updated_at             *time.Time
	username               *string
	email                  *string
	password_hash          *string
	role                   *user.Role
	blocked                *bool
	enabled                *bool
	confirmation_token     *string
	contribution_points    *int
	addcontribution_points *int
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*User, error)
	predicates             []predicate.User
}

var _ ent.Mutation = (*UserMutation)(nil)

// userOption allows management of the mutation configuration using functional options.
type userOption func(*UserMutation)

// newUserMutation creates new mutation for the User entity.
func newUserMutation(c config, op Op, opts ...userOption) *UserMutation {
	m := &UserMutation{
		config:        c,
		op:            op,
		typ:           TypeUser,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withUserID sets the ID field of the mutation.
func withUserID(id uint) userOption {
	return func(m *UserMutation) {
		var (
			err   error
			once  sync.Once
			value *User
		)
		m.oldValue = func(ctx context.Context) (*User, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().User.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withUser sets the old User of the mutation.
func withUser(node *User) userOption {
	return func(m *UserMutation) {
		m.oldValue = func(context.Context) (*User, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m UserMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m UserMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of User entities.
func (m *UserMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *UserMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *UserMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().User.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *UserMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *UserMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *UserMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *UserMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *UserMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *UserMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *UserMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *UserMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *UserMutation) ResetUsername() {
	m.username = nil
}

// SetEmail sets the "email" field.
func (m *UserMutation) SetEmail(s string) {
	m.email = &s
}

// Email returns the value of the "email" field in the mutation.
func (m *UserMutation) Email() (r string, exists bool) {
	v := m.email
	if v == nil {
		return
	}
	return *v, true
}

// OldEmail returns the old "email" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEmail(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmail is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmail requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmail: %w", err)
	}
	return oldValue.Email, nil
}

// ResetEmail resets all changes to the "email" field.
func (m *UserMutation) ResetEmail() {
	m.email = nil
}

// SetPasswordHash sets the "password_hash" field.
func (m *UserMutation) SetPasswordHash(s string) {
	m.password_hash = &s
}

// PasswordHash returns the value of the "password_hash" field in the mutation.
func (m *UserMutation) PasswordHash() (r string, exists bool) {
	v := m.password_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldPasswordHash returns the old "password_hash" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldPasswordHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPasswordHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPasswordHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPasswordHash: %w", err)
	}
	return oldValue.PasswordHash, nil
}

// ResetPasswordHash resets all changes to the "password_hash" field.
func (m *UserMutation) ResetPasswordHash() {
	m.password_hash = nil
}

// SetRole sets the "role" field.
func (m *UserMutation) SetRole(u user.Role) {
	m.role = &u
}

// Role returns the value of the "role" field in the mutation.
func (m *UserMutation) Role() (r user.Role, exists bool) {
	v := m.role
	if v == nil {
		return
	}
	return *v, true
}

// OldRole returns the old "role" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldRole(ctx context.Context) (v user.Role, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRole is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRole requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRole: %w", err)
	}
	return oldValue.Role, nil
}

// ResetRole resets all changes to the "role" field.
func (m *UserMutation) ResetRole() {
	m.role = nil
}

// SetBlocked sets the "blocked" field.
func (m *UserMutation) SetBlocked(b bool) {
	m.blocked = &b
}

// Blocked returns the value of the "blocked" field in the mutation.
func (m *UserMutation) Blocked() (r bool, exists bool) {
	v := m.blocked
	if v == nil {
		return
	}
	return *v, true
}

// OldBlocked returns the old "blocked" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldBlocked(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBlocked is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBlocked requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBlocked: %w", err)
	}
	return oldValue.Blocked, nil
}

// ResetBlocked resets all changes to the "blocked" field.
func (m *UserMutation) ResetBlocked() {
	m.blocked = nil
}

// SetEnabled sets the "enabled" field.
func (m *UserMutation) SetEnabled(b bool) {
	m.enabled = &b
}

// Enabled returns the value of the "enabled" field in the mutation.
func (m *UserMutation) Enabled() (r bool, exists bool) {
	v := m.enabled
	if v == nil {
		return
	}
	return *v, true
}

// OldEnabled returns the old "enabled" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldEnabled(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEnabled is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEnabled requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEnabled: %w", err)
	}
	return oldValue.Enabled, nil
}

// ResetEnabled resets all changes to the "enabled" field.
func (m *UserMutation) ResetEnabled() {
	m.enabled = nil
}

// SetConfirmationToken sets the "confirmation_token" field.
func (m *UserMutation) SetConfirmationToken(s string) {
	m.confirmation_token = &s
}

// ConfirmationToken returns the value of the "confirmation_token" field in the mutation.
func (m *UserMutation) ConfirmationToken() (r string, exists bool) {
	v := m.confirmation_token
	if v == nil {
		return
	}
	return *v, true
}

// OldConfirmationToken returns the old "confirmation_token" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldConfirmationToken(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfirmationToken is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfirmationToken requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfirmationToken: %w", err)
	}
	return oldValue.ConfirmationToken, nil
}

// ClearConfirmationToken clears the value of the "confirmation_token" field.
func (m *UserMutation) ClearConfirmationToken() {
	m.confirmation_token = nil
	m.clearedFields[user.FieldConfirmationToken] = struct{}{}
}

// ConfirmationTokenCleared returns if the "confirmation_token" field was cleared in this mutation.
func (m *UserMutation) ConfirmationTokenCleared() bool {
	_, ok := m.clearedFields[user.FieldConfirmationToken]
	return ok
}

// ResetConfirmationToken resets all changes to the "confirmation_token" field.
func (m *UserMutation) ResetConfirmationToken() {
	m.confirmation_token = nil
	delete(m.clearedFields, user.FieldConfirmationToken)
}

// SetContributionPoints sets the "contribution_points" field.
func (m *UserMutation) SetContributionPoints(i int) {
	m.contribution_points = &i
	m.addcontribution_points = nil
}

// ContributionPoints returns the value of the "contribution_points" field in the mutation.
func (m *UserMutation) ContributionPoints() (r int, exists bool) {
	v := m.contribution_points
	if v == nil {
		return
	}
	return *v, true
}

// OldContributionPoints returns the old "contribution_points" field's value of the User entity.
// If the User object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *UserMutation) OldContributionPoints(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContributionPoints is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContributionPoints requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContributionPoints: %w", err)
	}
	return oldValue.ContributionPoints, nil
}

// AddContributionPoints adds i to the "contribution_points" field.
func (m *UserMutation) AddContributionPoints(i int) {
	if m.addcontribution_points != nil {
		*m.addcontribution_points += i
	} else {
		m.addcontribution_points = &i
	}
}

// AddedContributionPoints returns the value that was added to the "contribution_points" field in this mutation.
func (m *UserMutation) AddedContributionPoints() (r int, exists bool) {
	v := m.addcontribution_points
	if v == nil {
		return
	}
	return *v, true
}

// ResetContributionPoints resets all changes to the "contribution_points" field.
func (m *UserMutation) ResetContributionPoints() {
	m.contribution_points = nil
	m.addcontribution_points = nil
}

// Where appends a list predicates to the UserMutation builder.
func (m *UserMutation) Where(ps ...predicate.User) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the UserMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *UserMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.User, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *UserMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *UserMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (User).
func (m *UserMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *UserMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, user.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, user.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, user.FieldUsername)
	}
	if m.email != nil {
		fields = append(fields, user.FieldEmail)
	}
	if m.password_hash != nil {
		fields = append(fields, user.FieldPasswordHash)
	}
	if m.role != nil {
		fields = append(fields, user.FieldRole)
	}
	if m.blocked != nil {
		fields = append(fields, user.FieldBlocked)
	}
	if m.enabled != nil {
		fields = append(fields, user.FieldEnabled)
	}
	if m.confirmation_token != nil {
		fields = append(fields, user.FieldConfirmationToken)
	}
	if m.contribution_points != nil {
		fields = append(fields, user.FieldContributionPoints)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *UserMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case user.FieldCreatedAt:
		return m.CreatedAt()
	case user.FieldUpdatedAt:
		return m.UpdatedAt()
	case user.FieldUsername:
		return m.Username()
	case user.FieldEmail:
		return m.Email()
	case user.FieldPasswordHash:
		return m.PasswordHash()
	case user.FieldRole:
		return m.Role()
	case user.FieldBlocked:
		return m.Blocked()
	case user.FieldEnabled:
		return m.Enabled()
	case user.FieldConfirmationToken:
		return m.ConfirmationToken()
	case user.FieldContributionPoints:
		return m.ContributionPoints()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *UserMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case user.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case user.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case user.FieldUsername:
		return m.OldUsername(ctx)
	case user.FieldEmail:
		return m.OldEmail(ctx)
	case user.FieldPasswordHash:
		return m.OldPasswordHash(ctx)
	case user.FieldRole:
		return m.OldRole(ctx)
	case user.FieldBlocked:
		return m.OldBlocked(ctx)
	case user.FieldEnabled:
		return m.OldEnabled(ctx)
	case user.FieldConfirmationToken:
		return m.OldConfirmationToken(ctx)
	case user.FieldContributionPoints:
		return m.OldContributionPoints(ctx)
	}
	return nil, fmt.Errorf("unknown User field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) SetField(name string, value ent.Value) error {
	switch name {
	case user.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case user.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case user.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case user.FieldEmail:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmail(v)
		return nil
	case user.FieldPasswordHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPasswordHash(v)
		return nil
	case user.FieldRole:
		v, ok := value.(user.Role)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRole(v)
		return nil
	case user.FieldBlocked:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBlocked(v)
		return nil
	case user.FieldEnabled:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEnabled(v)
		return nil
	case user.FieldConfirmationToken:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfirmationToken(v)
		return nil
	case user.FieldContributionPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContributionPoints(v)
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *UserMutation) AddedFields() []string {
	var fields []string
	if m.addcontribution_points != nil {
		fields = append(fields, user.FieldContributionPoints)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *UserMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case user.FieldContributionPoints:
		return m.AddedContributionPoints()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *UserMutation) AddField(name string, value ent.Value) error {
	switch name {
	case user.FieldContributionPoints:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddContributionPoints(v)
		return nil
	}
	return fmt.Errorf("unknown User numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *UserMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(user.FieldConfirmationToken) {
		fields = append(fields, user.FieldConfirmationToken)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *UserMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *UserMutation) ClearField(name string) error {
	switch name {
	case user.FieldConfirmationToken:
		m.ClearConfirmationToken()
		return nil
	}
	return fmt.Errorf("unknown User nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *UserMutation) ResetField(name string) error {
	switch name {
	case user.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case user.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case user.FieldUsername:
		m.ResetUsername()
		return nil
	case user.FieldEmail:
		m.ResetEmail()
		return nil
	case user.FieldPasswordHash:
		m.ResetPasswordHash()
		return nil
	case user.FieldRole:
		m.ResetRole()
		return nil
	case user.FieldBlocked:
		m.ResetBlocked()
		return nil
	case user.FieldEnabled:
		m.ResetEnabled()
		return nil
	case user.FieldConfirmationToken:
		m.ResetConfirmationToken()
		return nil
	case user.FieldContributionPoints:
		m.ResetContributionPoints()
		return nil
	}
	return fmt.Errorf("unknown User field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *UserMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *UserMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *UserMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *UserMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *UserMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *UserMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *UserMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown User unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *UserMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown User edge %s", name)
}

// WallsBookMutation represents an operation that mutates the WallsBook nodes in the graph.
type WallsBookMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	created_at    *time.Time
	updated_at    *time.Time
	username      *string
	article_id    *uint
	addarticle_id *int
	status        *wallsbook.Status
	score         *float64
	addscore      *float64
	started_at    *time.Time
	finished_at   *time.Time
	pages         *int
	addpages      *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WallsBook, error)
	predicates    []predicate.WallsBook
}

var _ ent.Mutation = (*WallsBookMutation)(nil)

// wallsbookOption allows management of the mutation configuration using functional options.
type wallsbookOption func(*WallsBookMutation)

// newWallsBookMutation creates new mutation for the WallsBook entity.
func newWallsBookMutation(c config, op Op, opts ...wallsbookOption) *WallsBookMutation {
	m := &WallsBookMutation{
		config:        c,
		op:            op,
		typ:           TypeWallsBook,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWallsBookID sets the ID field of the mutation.
func withWallsBookID(id uint) wallsbookOption {
	return func(m *WallsBookMutation) {
		var (
			err   error
			once  sync.Once
			value *WallsBook
		)
		m.oldValue = func(ctx context.Context) (*WallsBook, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WallsBook.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWallsBook sets the old WallsBook of the mutation.
func withWallsBook(node *WallsBook) wallsbookOption {
	return func(m *WallsBookMutation) {
		m.oldValue = func(context.Context) (*WallsBook, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WallsBookMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WallsBookMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WallsBook entities.
func (m *WallsBookMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WallsBookMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WallsBookMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WallsBook.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WallsBookMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WallsBookMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WallsBook entity.
// If the WallsBook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsBookMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WallsBookMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WallsBookMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WallsBookMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WallsBook entity.
// If the WallsBook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsBookMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WallsBookMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *WallsBookMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *WallsBookMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the WallsBook entity.
// If the WallsBook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsBookMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *WallsBookMutation) ResetUsername() {
	m.username = nil
}

// SetArticleID sets the "article_id" field.
func (m *WallsBookMutation) SetArticleID(u uint) {
	m.article_id = &u
	m.addarticle_id = nil
}

// ArticleID returns the value of the "article_id" field in the mutation.
func (m *WallsBookMutation) ArticleID() (r uint, exists bool) {
	v := m.article_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleID returns the old "article_id" field's value of the WallsBook entity.
// If the WallsBook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsBookMutation) OldArticleID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleID: %w", err)
	}
	return oldValue.ArticleID, nil
}

// AddArticleID adds u to the "article_id" field.
func (m *WallsBookMutation) AddArticleID(u int) {
	if m.addarticle_id != nil {
		*m.addarticle_id += u
	} else {
		m.addarticle_id = &u
	}
}

// AddedArticleID returns the value that was added to the "article_id" field in this mutation.
func (m *WallsBookMutation) AddedArticleID() (r int, exists bool) {
	v := m.addarticle_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetArticleID resets all changes to the "article_id" field.
func (m *WallsBookMutation) ResetArticleID() {
	m.article_id = nil
	m.addarticle_id = nil
}

// SetStatus sets the "status" field.
func (m *WallsBookMutation) SetStatus(w wallsbook.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WallsBookMutation) Status() (r wallsbook.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WallsBook entity.
// If the WallsBook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsBookMutation) OldStatus(ctx context.Context) (v wallsbook.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WallsBookMutation) ResetStatus() {
	m.status = nil
}

// SetScore sets the "score" field.
func (m *WallsBookMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *WallsBookMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the WallsBook entity.
// If the WallsBook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsBookMutation) OldScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *WallsBookMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *WallsBookMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *WallsBookMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[wallsbook.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *WallsBookMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[wallsbook.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *WallsBookMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, wallsbook.FieldScore)
}

// SetStartedAt sets the "started_at" field.
func (m *WallsBookMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WallsBookMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WallsBook entity.
// If the WallsBook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsBookMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WallsBookMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[wallsbook.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WallsBookMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[wallsbook.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WallsBookMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, wallsbook.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *WallsBookMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *WallsBookMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the WallsBook entity.
// If the WallsBook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsBookMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *WallsBookMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[wallsbook.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *WallsBookMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[wallsbook.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *WallsBookMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, wallsbook.FieldFinishedAt)
}

// SetPages sets the "pages" field.
func (m *WallsBookMutation) SetPages(i int) {
	m.pages = &i
	m.addpages = nil
}

// Pages returns the value of the "pages" field in the mutation.
func (m *WallsBookMutation) Pages() (r int, exists bool) {
	v := m.pages
	if v == nil {
		return
	}
	return *v, true
}

// OldPages returns the old "pages" field's value of the WallsBook entity.
// If the WallsBook object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsBookMutation) OldPages(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPages is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPages requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPages: %w", err)
	}
	return oldValue.Pages, nil
}

// AddPages adds i to the "pages" field.
func (m *WallsBookMutation) AddPages(i int) {
	if m.addpages != nil {
		*m.addpages += i
	} else {
		m.addpages = &i
	}
}

// AddedPages returns the value that was added to the "pages" field in this mutation.
func (m *WallsBookMutation) AddedPages() (r int, exists bool) {
	v := m.addpages
	if v == nil {
		return
	}
	return *v, true
}

// ResetPages resets all changes to the "pages" field.
func (m *WallsBookMutation) ResetPages() {
	m.pages = nil
	m.addpages = nil
}

// Where appends a list predicates to the WallsBookMutation builder.
func (m *WallsBookMutation) Where(ps ...predicate.WallsBook) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WallsBookMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WallsBookMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WallsBook, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WallsBookMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WallsBookMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WallsBook).
func (m *WallsBookMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WallsBookMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, wallsbook.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, wallsbook.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, wallsbook.FieldUsername)
	}
	if m.article_id != nil {
		fields = append(fields, wallsbook.FieldArticleID)
	}
	if m.status != nil {
		fields = append(fields, wallsbook.FieldStatus)
	}
	if m.score != nil {
		fields = append(fields, wallsbook.FieldScore)
	}
	if m.started_at != nil {
		fields = append(fields, wallsbook.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, wallsbook.FieldFinishedAt)
	}
	if m.pages != nil {
		fields = append(fields, wallsbook.FieldPages)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WallsBookMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case wallsbook.FieldCreatedAt:
		return m.CreatedAt()
	case wallsbook.FieldUpdatedAt:
		return m.UpdatedAt()
	case wallsbook.FieldUsername:
		return m.Username()
	case wallsbook.FieldArticleID:
		return m.ArticleID()
	case wallsbook.FieldStatus:
		return m.Status()
	case wallsbook.FieldScore:
		return m.Score()
	case wallsbook.FieldStartedAt:
		return m.StartedAt()
	case wallsbook.FieldFinishedAt:
		return m.FinishedAt()
	case wallsbook.FieldPages:
		return m.Pages()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WallsBookMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case wallsbook.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case wallsbook.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case wallsbook.FieldUsername:
		return m.OldUsername(ctx)
	case wallsbook.FieldArticleID:
		return m.OldArticleID(ctx)
	case wallsbook.FieldStatus:
		return m.OldStatus(ctx)
	case wallsbook.FieldScore:
		return m.OldScore(ctx)
	case wallsbook.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case wallsbook.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case wallsbook.FieldPages:
		return m.OldPages(ctx)
	}
	return nil, fmt.Errorf("unknown WallsBook field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WallsBookMutation) SetField(name string, value ent.Value) error {
	switch name {
	case wallsbook.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case wallsbook.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case wallsbook.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case wallsbook.FieldArticleID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleID(v)
		return nil
	case wallsbook.FieldStatus:
		v, ok := value.(wallsbook.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case wallsbook.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case wallsbook.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case wallsbook.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case wallsbook.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPages(v)
		return nil
	}
	return fmt.Errorf("unknown WallsBook field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WallsBookMutation) AddedFields() []string {
	var fields []string
	if m.addarticle_id != nil {
		fields = append(fields, wallsbook.FieldArticleID)
	}
	if m.addscore != nil {
		fields = append(fields, wallsbook.FieldScore)
	}
	if m.addpages != nil {
		fields = append(fields, wallsbook.FieldPages)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WallsBookMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case wallsbook.FieldArticleID:
		return m.AddedArticleID()
	case wallsbook.FieldScore:
		return m.AddedScore()
	case wallsbook.FieldPages:
		return m.AddedPages()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WallsBookMutation) AddField(name string, value ent.Value) error {
	switch name {
	case wallsbook.FieldArticleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleID(v)
		return nil
	case wallsbook.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case wallsbook.FieldPages:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPages(v)
		return nil
	}
	return fmt.Errorf("unknown WallsBook numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WallsBookMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(wallsbook.FieldScore) {
		fields = append(fields, wallsbook.FieldScore)
	}
	if m.FieldCleared(wallsbook.FieldStartedAt) {
		fields = append(fields, wallsbook.FieldStartedAt)
	}
	if m.FieldCleared(wallsbook.FieldFinishedAt) {
		fields = append(fields, wallsbook.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WallsBookMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WallsBookMutation) ClearField(name string) error {
	switch name {
	case wallsbook.FieldScore:
		m.ClearScore()
		return nil
	case wallsbook.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case wallsbook.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown WallsBook nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WallsBookMutation) ResetField(name string) error {
	switch name {
	case wallsbook.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case wallsbook.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case wallsbook.FieldUsername:
		m.ResetUsername()
		return nil
	case wallsbook.FieldArticleID:
		m.ResetArticleID()
		return nil
	case wallsbook.FieldStatus:
		m.ResetStatus()
		return nil
	case wallsbook.FieldScore:
		m.ResetScore()
		return nil
	case wallsbook.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case wallsbook.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case wallsbook.FieldPages:
		m.ResetPages()
		return nil
	}
	return fmt.Errorf("unknown WallsBook field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WallsBookMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WallsBookMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WallsBookMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WallsBookMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WallsBookMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WallsBookMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WallsBookMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WallsBook unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WallsBookMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WallsBook edge %s", name)
}

// WallsComicMutation represents an operation that mutates the WallsComic nodes in the graph.
type WallsComicMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	created_at    *time.Time
	updated_at    *time.Time
	username      *string
	article_id    *uint
	addarticle_id *int
	status        *wallscomic.Status
	score         *float64
	addscore      *float64
	started_at    *time.Time
	finished_at   *time.Time
	issues        *int
	addissues     *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WallsComic, error)
	predicates    []predicate.WallsComic
}

var _ ent.Mutation = (*WallsComicMutation)(nil)

// wallscomicOption allows management of the mutation configuration using functional options.
type wallscomicOption func(*WallsComicMutation)

// newWallsComicMutation creates new mutation for the WallsComic entity.
func newWallsComicMutation(c config, op Op, opts ...wallscomicOption) *WallsComicMutation {
	m := &WallsComicMutation{
		config:        c,
		op:            op,
		typ:           TypeWallsComic,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWallsComicID sets the ID field of the mutation.
func withWallsComicID(id uint) wallscomicOption {
	return func(m *WallsComicMutation) {
		var (
			err   error
			once  sync.Once
			value *WallsComic
		)
		m.oldValue = func(ctx context.Context) (*WallsComic, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WallsComic.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWallsComic sets the old WallsComic of the mutation.
func withWallsComic(node *WallsComic) wallscomicOption {
	return func(m *WallsComicMutation) {
		m.oldValue = func(context.Context) (*WallsComic, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WallsComicMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WallsComicMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WallsComic entities.
func (m *WallsComicMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WallsComicMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WallsComicMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WallsComic.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WallsComicMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WallsComicMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WallsComic entity.
// If the WallsComic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsComicMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WallsComicMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WallsComicMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WallsComicMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WallsComic entity.
// If the WallsComic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsComicMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WallsComicMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *WallsComicMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *WallsComicMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the WallsComic entity.
// If the WallsComic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsComicMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *WallsComicMutation) ResetUsername() {
	m.username = nil
}

// SetArticleID sets the "article_id" field.
func (m *WallsComicMutation) SetArticleID(u uint) {
	m.article_id = &u
	m.addarticle_id = nil
}

// ArticleID returns the value of the "article_id" field in the mutation.
func (m *WallsComicMutation) ArticleID() (r uint, exists bool) {
	v := m.article_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleID returns the old "article_id" field's value of the WallsComic entity.
// If the WallsComic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsComicMutation) OldArticleID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleID: %w", err)
	}
	return oldValue.ArticleID, nil
}

// AddArticleID adds u to the "article_id" field.
func (m *WallsComicMutation) AddArticleID(u int) {
	if m.addarticle_id != nil {
		*m.addarticle_id += u
	} else {
		m.addarticle_id = &u
	}
}

// AddedArticleID returns the value that was added to the "article_id" field in this mutation.
func (m *WallsComicMutation) AddedArticleID() (r int, exists bool) {
	v := m.addarticle_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetArticleID resets all changes to the "article_id" field.
func (m *WallsComicMutation) ResetArticleID() {
	m.article_id = nil
	m.addarticle_id = nil
}

// SetStatus sets the "status" field.
func (m *WallsComicMutation) SetStatus(w wallscomic.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WallsComicMutation) Status() (r wallscomic.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WallsComic entity.
// If the WallsComic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsComicMutation) OldStatus(ctx context.Context) (v wallscomic.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WallsComicMutation) ResetStatus() {
	m.status = nil
}

// SetScore sets the "score" field.
func (m *WallsComicMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *WallsComicMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the WallsComic entity.
// If the WallsComic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsComicMutation) OldScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *WallsComicMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *WallsComicMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *WallsComicMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[wallscomic.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *WallsComicMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[wallscomic.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *WallsComicMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, wallscomic.FieldScore)
}

// SetStartedAt sets the "started_at" field.
func (m *WallsComicMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WallsComicMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WallsComic entity.
// If the WallsComic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsComicMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WallsComicMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[wallscomic.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WallsComicMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[wallscomic.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WallsComicMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, wallscomic.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *WallsComicMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *WallsComicMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the WallsComic entity.
// If the WallsComic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsComicMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *WallsComicMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[wallscomic.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *WallsComicMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[wallscomic.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *WallsComicMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, wallscomic.FieldFinishedAt)
}

// SetIssues sets the "issues" field.
func (m *WallsComicMutation) SetIssues(i int) {
	m.issues = &i
	m.addissues = nil
}

// Issues returns the value of the "issues" field in the mutation.
func (m *WallsComicMutation) Issues() (r int, exists bool) {
	v := m.issues
	if v == nil {
		return
	}
	return *v, true
}

// OldIssues returns the old "issues" field's value of the WallsComic entity.
// If the WallsComic object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsComicMutation) OldIssues(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIssues is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIssues requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIssues: %w", err)
	}
	return oldValue.Issues, nil
}

// AddIssues adds i to the "issues" field.
func (m *WallsComicMutation) AddIssues(i int) {
	if m.addissues != nil {
		*m.addissues += i
	} else {
		m.addissues = &i
	}
}

// AddedIssues returns the value that was added to the "issues" field in this mutation.
func (m *WallsComicMutation) AddedIssues() (r int, exists bool) {
	v := m.addissues
	if v == nil {
		return
	}
	return *v, true
}

// ResetIssues resets all changes to the "issues" field.
func (m *WallsComicMutation) ResetIssues() {
	m.issues = nil
	m.addissues = nil
}

// Where appends a list predicates to the WallsComicMutation builder.
func (m *WallsComicMutation) Where(ps ...predicate.WallsComic) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WallsComicMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WallsComicMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WallsComic, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WallsComicMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WallsComicMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WallsComic).
func (m *WallsComicMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WallsComicMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, wallscomic.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, wallscomic.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, wallscomic.FieldUsername)
	}
	if m.article_id != nil {
		fields = append(fields, wallscomic.FieldArticleID)
	}
	if m.status != nil {
		fields = append(fields, wallscomic.FieldStatus)
	}
	if m.score != nil {
		fields = append(fields, wallscomic.FieldScore)
	}
	if m.started_at != nil {
		fields = append(fields, wallscomic.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, wallscomic.FieldFinishedAt)
	}
	if m.issues != nil {
		fields = append(fields, wallscomic.FieldIssues)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WallsComicMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case wallscomic.FieldCreatedAt:
		return m.CreatedAt()
	case wallscomic.FieldUpdatedAt:
		return m.UpdatedAt()
	case wallscomic.FieldUsername:
		return m.Username()
	case wallscomic.FieldArticleID:
		return m.ArticleID()
	case wallscomic.FieldStatus:
		return m.Status()
	case wallscomic.FieldScore:
		return m.Score()
	case wallscomic.FieldStartedAt:
		return m.StartedAt()
	case wallscomic.FieldFinishedAt:
		return m.FinishedAt()
	case wallscomic.FieldIssues:
		return m.Issues()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WallsComicMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case wallscomic.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case wallscomic.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case wallscomic.FieldUsername:
		return m.OldUsername(ctx)
	case wallscomic.FieldArticleID:
		return m.OldArticleID(ctx)
	case wallscomic.FieldStatus:
		return m.OldStatus(ctx)
	case wallscomic.FieldScore:
		return m.OldScore(ctx)
	case wallscomic.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case wallscomic.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case wallscomic.FieldIssues:
		return m.OldIssues(ctx)
	}
	return nil, fmt.Errorf("unknown WallsComic field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WallsComicMutation) SetField(name string, value ent.Value) error {
	switch name {
	case wallscomic.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case wallscomic.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case wallscomic.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case wallscomic.FieldArticleID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleID(v)
		return nil
	case wallscomic.FieldStatus:
		v, ok := value.(wallscomic.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case wallscomic.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case wallscomic.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case wallscomic.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case wallscomic.FieldIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIssues(v)
		return nil
	}
	return fmt.Errorf("unknown WallsComic field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WallsComicMutation) AddedFields() []string {
	var fields []string
	if m.addarticle_id != nil {
		fields = append(fields, wallscomic.FieldArticleID)
	}
	if m.addscore != nil {
		fields = append(fields, wallscomic.FieldScore)
	}
	if m.addissues != nil {
		fields = append(fields, wallscomic.FieldIssues)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WallsComicMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case wallscomic.FieldArticleID:
		return m.AddedArticleID()
	case wallscomic.FieldScore:
		return m.AddedScore()
	case wallscomic.FieldIssues:
		return m.AddedIssues()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WallsComicMutation) AddField(name string, value ent.Value) error {
	switch name {
	case wallscomic.FieldArticleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleID(v)
		return nil
	case wallscomic.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case wallscomic.FieldIssues:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddIssues(v)
		return nil
	}
	return fmt.Errorf("unknown WallsComic numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WallsComicMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(wallscomic.FieldScore) {
		fields = append(fields, wallscomic.FieldScore)
	}
	if m.FieldCleared(wallscomic.FieldStartedAt) {
		fields = append(fields, wallscomic.FieldStartedAt)
	}
	if m.FieldCleared(wallscomic.FieldFinishedAt) {
		fields = append(fields, wallscomic.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WallsComicMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WallsComicMutation) ClearField(name string) error {
	switch name {
	case wallscomic.FieldScore:
		m.ClearScore()
		return nil
	case wallscomic.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case wallscomic.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown WallsComic nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WallsComicMutation) ResetField(name string) error {
	switch name {
	case wallscomic.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case wallscomic.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case wallscomic.FieldUsername:
		m.ResetUsername()
		return nil
	case wallscomic.FieldArticleID:
		m.ResetArticleID()
		return nil
	case wallscomic.FieldStatus:
		m.ResetStatus()
		return nil
	case wallscomic.FieldScore:
		m.ResetScore()
		return nil
	case wallscomic.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case wallscomic.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case wallscomic.FieldIssues:
		m.ResetIssues()
		return nil
	}
	return fmt.Errorf("unknown WallsComic field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WallsComicMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WallsComicMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WallsComicMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WallsComicMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WallsComicMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WallsComicMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WallsComicMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WallsComic unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WallsComicMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WallsComic edge %s", name)
}

// WallsGameMutation represents an operation that mutates the WallsGame nodes in the graph.
type WallsGameMutation struct {
	config
	op              Op
	typ             string
	id              *uint
	created_at      *time.Time
	updated_at      *time.Time
	username        *string
	article_id      *uint
	addarticle_id   *int
	status          *wallsgame.Status
	score           *float64
	addscore        *float64
	started_at      *time.Time
	finished_at     *time.Time
	hours_played    *int
	addhours_played *int
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*WallsGame, error)
	predicates      []predicate.WallsGame
}

var _ ent.Mutation = (*WallsGameMutation)(nil)

// wallsgameOption allows management of the mutation configuration using functional options.
type wallsgameOption func(*WallsGameMutation)

// newWallsGameMutation creates new mutation for the WallsGame entity.
func newWallsGameMutation(c config, op Op, opts ...wallsgameOption) *WallsGameMutation {
	m := &WallsGameMutation{
		config:        c,
		op:            op,
		typ:           TypeWallsGame,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWallsGameID sets the ID field of the mutation.
func withWallsGameID(id uint) wallsgameOption {
	return func(m *WallsGameMutation) {
		var (
			err   error
			once  sync.Once
			value *WallsGame
		)
		m.oldValue = func(ctx context.Context) (*WallsGame, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WallsGame.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWallsGame sets the old WallsGame of the mutation.
func withWallsGame(node *WallsGame) wallsgameOption {
	return func(m *WallsGameMutation) {
		m.oldValue = func(context.Context) (*WallsGame, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WallsGameMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WallsGameMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WallsGame entities.
func (m *WallsGameMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WallsGameMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WallsGameMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WallsGame.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WallsGameMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WallsGameMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WallsGame entity.
// If the WallsGame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsGameMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WallsGameMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WallsGameMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WallsGameMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WallsGame entity.
// If the WallsGame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsGameMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WallsGameMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *WallsGameMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *WallsGameMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the WallsGame entity.
// If the WallsGame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsGameMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *WallsGameMutation) ResetUsername() {
	m.username = nil
}

// SetArticleID sets the "article_id" field.
func (m *WallsGameMutation) SetArticleID(u uint) {
	m.article_id = &u
	m.addarticle_id = nil
}

// ArticleID returns the value of the "article_id" field in the mutation.
func (m *WallsGameMutation) ArticleID() (r uint, exists bool) {
	v := m.article_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleID returns the old "article_id" field's value of the WallsGame entity.
// If the WallsGame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsGameMutation) OldArticleID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleID: %w", err)
	}
	return oldValue.ArticleID, nil
}

// AddArticleID adds u to the "article_id" field.
func (m *WallsGameMutation) AddArticleID(u int) {
	if m.addarticle_id != nil {
		*m.addarticle_id += u
	} else {
		m.addarticle_id = &u
	}
}

// AddedArticleID returns the value that was added to the "article_id" field in this mutation.
func (m *WallsGameMutation) AddedArticleID() (r int, exists bool) {
	v := m.addarticle_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetArticleID resets all changes to the "article_id" field.
func (m *WallsGameMutation) ResetArticleID() {
	m.article_id = nil
	m.addarticle_id = nil
}

// SetStatus sets the "status" field.
func (m *WallsGameMutation) SetStatus(w wallsgame.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WallsGameMutation) Status() (r wallsgame.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WallsGame entity.
// If the WallsGame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsGameMutation) OldStatus(ctx context.Context) (v wallsgame.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WallsGameMutation) ResetStatus() {
	m.status = nil
}

// SetScore sets the "score" field.
func (m *WallsGameMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *WallsGameMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the WallsGame entity.
// If the WallsGame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsGameMutation) OldScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *WallsGameMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *WallsGameMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *WallsGameMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[wallsgame.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *WallsGameMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[wallsgame.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *WallsGameMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, wallsgame.FieldScore)
}

// SetStartedAt sets the "started_at" field.
func (m *WallsGameMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WallsGameMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WallsGame entity.
// If the WallsGame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsGameMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WallsGameMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[wallsgame.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WallsGameMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[wallsgame.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WallsGameMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, wallsgame.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *WallsGameMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *WallsGameMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the WallsGame entity.
// If the WallsGame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsGameMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *WallsGameMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[wallsgame.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *WallsGameMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[wallsgame.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *WallsGameMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, wallsgame.FieldFinishedAt)
}

// SetHoursPlayed sets the "hours_played" field.
func (m *WallsGameMutation) SetHoursPlayed(i int) {
	m.hours_played = &i
	m.addhours_played = nil
}

// HoursPlayed returns the value of the "hours_played" field in the mutation.
func (m *WallsGameMutation) HoursPlayed() (r int, exists bool) {
	v := m.hours_played
	if v == nil {
		return
	}
	return *v, true
}

// OldHoursPlayed returns the old "hours_played" field's value of the WallsGame entity.
// If the WallsGame object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsGameMutation) OldHoursPlayed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHoursPlayed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHoursPlayed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHoursPlayed: %w", err)
	}
	return oldValue.HoursPlayed, nil
}

// AddHoursPlayed adds i to the "hours_played" field.
func (m *WallsGameMutation) AddHoursPlayed(i int) {
	if m.addhours_played != nil {
		*m.addhours_played += i
	} else {
		m.addhours_played = &i
	}
}

// AddedHoursPlayed returns the value that was added to the "hours_played" field in this mutation.
func (m *WallsGameMutation) AddedHoursPlayed() (r int, exists bool) {
	v := m.addhours_played
	if v == nil {
		return
	}
	return *v, true
}

// ResetHoursPlayed resets all changes to the "hours_played" field.
func (m *WallsGameMutation) ResetHoursPlayed() {
	m.hours_played = nil
	m.addhours_played = nil
}

// Where appends a list predicates to the WallsGameMutation builder.
func (m *WallsGameMutation) Where(ps ...predicate.WallsGame) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WallsGameMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WallsGameMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WallsGame, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WallsGameMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WallsGameMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WallsGame).
func (m *WallsGameMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WallsGameMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.created_at != nil {
		fields = append(fields, wallsgame.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, wallsgame.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, wallsgame.FieldUsername)
	}
	if m.article_id != nil {
		fields = append(fields, wallsgame.FieldArticleID)
	}
	if m.status != nil {
		fields = append(fields, wallsgame.FieldStatus)
	}
	if m.score != nil {
		fields = append(fields, wallsgame.FieldScore)
	}
	if m.started_at != nil {
		fields = append(fields, wallsgame.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, wallsgame.FieldFinishedAt)
	}
	if m.hours_played != nil {
		fields = append(fields, wallsgame.FieldHoursPlayed)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WallsGameMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case wallsgame.FieldCreatedAt:
		return m.CreatedAt()
	case wallsgame.FieldUpdatedAt:
		return m.UpdatedAt()
	case wallsgame.FieldUsername:
		return m.Username()
	case wallsgame.FieldArticleID:
		return m.ArticleID()
	case wallsgame.FieldStatus:
		return m.Status()
	case wallsgame.FieldScore:
		return m.Score()
	case wallsgame.FieldStartedAt:
		return m.StartedAt()
	case wallsgame.FieldFinishedAt:
		return m.FinishedAt()
	case wallsgame.FieldHoursPlayed:
		return m.HoursPlayed()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WallsGameMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case wallsgame.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case wallsgame.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case wallsgame.FieldUsername:
		return m.OldUsername(ctx)
	case wallsgame.FieldArticleID:
		return m.OldArticleID(ctx)
	case wallsgame.FieldStatus:
		return m.OldStatus(ctx)
	case wallsgame.FieldScore:
		return m.OldScore(ctx)
	case wallsgame.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case wallsgame.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case wallsgame.FieldHoursPlayed:
		return m.OldHoursPlayed(ctx)
	}
	return nil, fmt.Errorf("unknown WallsGame field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WallsGameMutation) SetField(name string, value ent.Value) error {
	switch name {
	case wallsgame.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case wallsgame.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case wallsgame.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case wallsgame.FieldArticleID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleID(v)
		return nil
	case wallsgame.FieldStatus:
		v, ok := value.(wallsgame.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case wallsgame.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case wallsgame.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case wallsgame.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case wallsgame.FieldHoursPlayed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHoursPlayed(v)
		return nil
	}
	return fmt.Errorf("unknown WallsGame field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WallsGameMutation) AddedFields() []string {
	var fields []string
	if m.addarticle_id != nil {
		fields = append(fields, wallsgame.FieldArticleID)
	}
	if m.addscore != nil {
		fields = append(fields, wallsgame.FieldScore)
	}
	if m.addhours_played != nil {
		fields = append(fields, wallsgame.FieldHoursPlayed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WallsGameMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case wallsgame.FieldArticleID:
		return m.AddedArticleID()
	case wallsgame.FieldScore:
		return m.AddedScore()
	case wallsgame.FieldHoursPlayed:
		return m.AddedHoursPlayed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WallsGameMutation) AddField(name string, value ent.Value) error {
	switch name {
	case wallsgame.FieldArticleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleID(v)
		return nil
	case wallsgame.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case wallsgame.FieldHoursPlayed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHoursPlayed(v)
		return nil
	}
	return fmt.Errorf("unknown WallsGame numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WallsGameMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(wallsgame.FieldScore) {
		fields = append(fields, wallsgame.FieldScore)
	}
	if m.FieldCleared(wallsgame.FieldStartedAt) {
		fields = append(fields, wallsgame.FieldStartedAt)
	}
	if m.FieldCleared(wallsgame.FieldFinishedAt) {
		fields = append(fields, wallsgame.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WallsGameMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WallsGameMutation) ClearField(name string) error {
	switch name {
	case wallsgame.FieldScore:
		m.ClearScore()
		return nil
	case wallsgame.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case wallsgame.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown WallsGame nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WallsGameMutation) ResetField(name string) error {
	switch name {
	case wallsgame.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case wallsgame.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case wallsgame.FieldUsername:
		m.ResetUsername()
		return nil
	case wallsgame.FieldArticleID:
		m.ResetArticleID()
		return nil
	case wallsgame.FieldStatus:
		m.ResetStatus()
		return nil
	case wallsgame.FieldScore:
		m.ResetScore()
		return nil
	case wallsgame.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case wallsgame.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case wallsgame.FieldHoursPlayed:
		m.ResetHoursPlayed()
		return nil
	}
	return fmt.Errorf("unknown WallsGame field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WallsGameMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WallsGameMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WallsGameMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WallsGameMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WallsGameMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WallsGameMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WallsGameMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WallsGame unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WallsGameMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WallsGame edge %s", name)
}

// WallsMangaMutation represents an operation that mutates the WallsManga nodes in the graph.
type WallsMangaMutation struct {
	config
	op            Op
	typ           string
	id            *uint
	created_at    *time.Time
	updated_at    *time.Time
	username      *string
	article_id    *uint
	addarticle_id *int
	status        *wallsmanga.Status
	score         *float64
	addscore      *float64
	started_at    *time.Time
	finished_at   *time.Time
	volumes       *int
	addvolumes    *int
	chapters      *int
	addchapters   *int
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*WallsManga, error)
	predicates    []predicate.WallsManga
}

var _ ent.Mutation = (*WallsMangaMutation)(nil)

// wallsmangaOption allows management of the mutation configuration using functional options.
type wallsmangaOption func(*WallsMangaMutation)

// newWallsMangaMutation creates new mutation for the WallsManga entity.
func newWallsMangaMutation(c config, op Op, opts ...wallsmangaOption) *WallsMangaMutation {
	m := &WallsMangaMutation{
		config:        c,
		op:            op,
		typ:           TypeWallsManga,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWallsMangaID sets the ID field of the mutation.
func withWallsMangaID(id uint) wallsmangaOption {
	return func(m *WallsMangaMutation) {
		var (
			err   error
			once  sync.Once
			value *WallsManga
		)
		m.oldValue = func(ctx context.Context) (*WallsManga, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WallsManga.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWallsManga sets the old WallsManga of the mutation.
func withWallsManga(node *WallsManga) wallsmangaOption {
	return func(m *WallsMangaMutation) {
		m.oldValue = func(context.Context) (*WallsManga, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WallsMangaMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WallsMangaMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WallsManga entities.
func (m *WallsMangaMutation) SetID(id uint) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WallsMangaMutation) ID() (id uint, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WallsMangaMutation) IDs(ctx context.Context) ([]uint, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uint{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WallsManga.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetCreatedAt sets the "created_at" field.
func (m *WallsMangaMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WallsMangaMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WallsManga entity.
// If the WallsManga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsMangaMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WallsMangaMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WallsMangaMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WallsMangaMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WallsManga entity.
// If the WallsManga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsMangaMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WallsMangaMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetUsername sets the "username" field.
func (m *WallsMangaMutation) SetUsername(s string) {
	m.username = &s
}

// Username returns the value of the "username" field in the mutation.
func (m *WallsMangaMutation) Username() (r string, exists bool) {
	v := m.username
	if v == nil {
		return
	}
	return *v, true
}

// OldUsername returns the old "username" field's value of the WallsManga entity.
// If the WallsManga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsMangaMutation) OldUsername(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUsername is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUsername requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUsername: %w", err)
	}
	return oldValue.Username, nil
}

// ResetUsername resets all changes to the "username" field.
func (m *WallsMangaMutation) ResetUsername() {
	m.username = nil
}

// SetArticleID sets the "article_id" field.
func (m *WallsMangaMutation) SetArticleID(u uint) {
	m.article_id = &u
	m.addarticle_id = nil
}

// ArticleID returns the value of the "article_id" field in the mutation.
func (m *WallsMangaMutation) ArticleID() (r uint, exists bool) {
	v := m.article_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleID returns the old "article_id" field's value of the WallsManga entity.
// If the WallsManga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsMangaMutation) OldArticleID(ctx context.Context) (v uint, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleID: %w", err)
	}
	return oldValue.ArticleID, nil
}

// AddArticleID adds u to the "article_id" field.
func (m *WallsMangaMutation) AddArticleID(u int) {
	if m.addarticle_id != nil {
		*m.addarticle_id += u
	} else {
		m.addarticle_id = &u
	}
}

// AddedArticleID returns the value that was added to the "article_id" field in this mutation.
func (m *WallsMangaMutation) AddedArticleID() (r int, exists bool) {
	v := m.addarticle_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetArticleID resets all changes to the "article_id" field.
func (m *WallsMangaMutation) ResetArticleID() {
	m.article_id = nil
	m.addarticle_id = nil
}

// SetStatus sets the "status" field.
func (m *WallsMangaMutation) SetStatus(w wallsmanga.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WallsMangaMutation) Status() (r wallsmanga.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WallsManga entity.
// If the WallsManga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsMangaMutation) OldStatus(ctx context.Context) (v wallsmanga.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WallsMangaMutation) ResetStatus() {
	m.status = nil
}

// SetScore sets the "score" field.
func (m *WallsMangaMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *WallsMangaMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the WallsManga entity.
// If the WallsManga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsMangaMutation) OldScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *WallsMangaMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *WallsMangaMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *WallsMangaMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[wallsmanga.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *WallsMangaMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[wallsmanga.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *WallsMangaMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, wallsmanga.FieldScore)
}

// SetStartedAt sets the "started_at" field.
func (m *WallsMangaMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *WallsMangaMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the WallsManga entity.
// If the WallsManga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsMangaMutation) OldStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ClearStartedAt clears the value of the "started_at" field.
func (m *WallsMangaMutation) ClearStartedAt() {
	m.started_at = nil
	m.clearedFields[wallsmanga.FieldStartedAt] = struct{}{}
}

// StartedAtCleared returns if the "started_at" field was cleared in this mutation.
func (m *WallsMangaMutation) StartedAtCleared() bool {
	_, ok := m.clearedFields[wallsmanga.FieldStartedAt]
	return ok
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *WallsMangaMutation) ResetStartedAt() {
	m.started_at = nil
	delete(m.clearedFields, wallsmanga.FieldStartedAt)
}

// SetFinishedAt sets the "finished_at" field.
func (m *WallsMangaMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *WallsMangaMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the WallsManga entity.
// If the WallsManga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsMangaMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *WallsMangaMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[wallsmanga.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *WallsMangaMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[wallsmanga.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *WallsMangaMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, wallsmanga.FieldFinishedAt)
}

// SetVolumes sets the "volumes" field.
func (m *WallsMangaMutation) SetVolumes(i int) {
	m.volumes = &i
	m.addvolumes = nil
}

// Volumes returns the value of the "volumes" field in the mutation.
func (m *WallsMangaMutation) Volumes() (r int, exists bool) {
	v := m.volumes
	if v == nil {
		return
	}
	return *v, true
}

// OldVolumes returns the old "volumes" field's value of the WallsManga entity.
// If the WallsManga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsMangaMutation) OldVolumes(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVolumes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVolumes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVolumes: %w", err)
	}
	return oldValue.Volumes, nil
}

// AddVolumes adds i to the "volumes" field.
func (m *WallsMangaMutation) AddVolumes(i int) {
	if m.addvolumes != nil {
		*m.addvolumes += i
	} else {
		m.addvolumes = &i
	}
}

// AddedVolumes returns the value that was added to the "volumes" field in this mutation.
func (m *WallsMangaMutation) AddedVolumes() (r int, exists bool) {
	v := m.addvolumes
	if v == nil {
		return
	}
	return *v, true
}

// ResetVolumes resets all changes to the "volumes" field.
func (m *WallsMangaMutation) ResetVolumes() {
	m.volumes = nil
	m.addvolumes = nil
}

// SetChapters sets the "chapters" field.
func (m *WallsMangaMutation) SetChapters(i int) {
	m.chapters = &i
	m.addchapters = nil
}

// Chapters returns the value of the "chapters" field in the mutation.
func (m *WallsMangaMutation) Chapters() (r int, exists bool) {
	v := m.chapters
	if v == nil {
		return
	}
	return *v, true
}

// OldChapters returns the old "chapters" field's value of the WallsManga entity.
// If the WallsManga object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WallsMangaMutation) OldChapters(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChapters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChapters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChapters: %w", err)
	}
	return oldValue.Chapters, nil
}

// AddChapters adds i to the "chapters" field.
func (m *WallsMangaMutation) AddChapters(i int) {
	if m.addchapters != nil {
		*m.addchapters += i
	} else {
		m.addchapters = &i
	}
}

// AddedChapters returns the value that was added to the "chapters" field in this mutation.
func (m *WallsMangaMutation) AddedChapters() (r int, exists bool) {
	v := m.addchapters
	if v == nil {
		return
	}
	return *v, true
}

// ResetChapters resets all changes to the "chapters" field.
func (m *WallsMangaMutation) ResetChapters() {
	m.chapters = nil
	m.addchapters = nil
}

// Where appends a list predicates to the WallsMangaMutation builder.
func (m *WallsMangaMutation) Where(ps ...predicate.WallsManga) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WallsMangaMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WallsMangaMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WallsManga, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WallsMangaMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WallsMangaMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WallsManga).
func (m *WallsMangaMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WallsMangaMutation) Fields() []string {
	fields := make([]string, 0, 10)
	if m.created_at != nil {
		fields = append(fields, wallsmanga.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, wallsmanga.FieldUpdatedAt)
	}
	if m.username != nil {
		fields = append(fields, wallsmanga.FieldUsername)
	}
	if m.article_id != nil {
		fields = append(fields, wallsmanga.FieldArticleID)
	}
	if m.status != nil {
		fields = append(fields, wallsmanga.FieldStatus)
	}
	if m.score != nil {
		fields = append(fields, wallsmanga.FieldScore)
	}
	if m.started_at != nil {
		fields = append(fields, wallsmanga.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, wallsmanga.FieldFinishedAt)
	}
	if m.volumes != nil {
		fields = append(fields, wallsmanga.FieldVolumes)
	}
	if m.chapters != nil {
		fields = append(fields, wallsmanga.FieldChapters)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WallsMangaMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case wallsmanga.FieldCreatedAt:
		return m.CreatedAt()
	case wallsmanga.FieldUpdatedAt:
		return m.UpdatedAt()
	case wallsmanga.FieldUsername:
		return m.Username()
	case wallsmanga.FieldArticleID:
		return m.ArticleID()
	case wallsmanga.FieldStatus:
		return m.Status()
	case wallsmanga.FieldScore:
		return m.Score()
	case wallsmanga.FieldStartedAt:
		return m.StartedAt()
	case wallsmanga.FieldFinishedAt:
		return m.FinishedAt()
	case wallsmanga.FieldVolumes:
		return m.Volumes()
	case wallsmanga.FieldChapters:
		return m.Chapters()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WallsMangaMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case wallsmanga.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case wallsmanga.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case wallsmanga.FieldUsername:
		return m.OldUsername(ctx)
	case wallsmanga.FieldArticleID:
		return m.OldArticleID(ctx)
	case wallsmanga.FieldStatus:
		return m.OldStatus(ctx)
	case wallsmanga.FieldScore:
		return m.OldScore(ctx)
	case wallsmanga.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case wallsmanga.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case wallsmanga.FieldVolumes:
		return m.OldVolumes(ctx)
	case wallsmanga.FieldChapters:
		return m.OldChapters(ctx)
	}
	return nil, fmt.Errorf("unknown WallsManga field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WallsMangaMutation) SetField(name string, value ent.Value) error {
	switch name {
	case wallsmanga.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case wallsmanga.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case wallsmanga.FieldUsername:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUsername(v)
		return nil
	case wallsmanga.FieldArticleID:
		v, ok := value.(uint)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleID(v)
		return nil
	case wallsmanga.FieldStatus:
		v, ok := value.(wallsmanga.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case wallsmanga.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case wallsmanga.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case wallsmanga.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case wallsmanga.FieldVolumes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVolumes(v)
		return nil
	case wallsmanga.FieldChapters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChapters(v)
		return nil
	}
	return fmt.Errorf("unknown WallsManga field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WallsMangaMutation) AddedFields() []string {
	var fields []string
	if m.addarticle_id != nil {
		fields = append(fields, wallsmanga.FieldArticleID)
	}
	if m.addscore != nil {
		fields = append(fields, wallsmanga.FieldScore)
	}
	if m.addvolumes != nil {
		fields = append(fields, wallsmanga.FieldVolumes)
	}
	if m.addchapters != nil {
		fields = append(fields, wallsmanga.FieldChapters)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WallsMangaMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case wallsmanga.FieldArticleID:
		return m.AddedArticleID()
	case wallsmanga.FieldScore:
		return m.AddedScore()
	case wallsmanga.FieldVolumes:
		return m.AddedVolumes()
	case wallsmanga.FieldChapters:
		return m.AddedChapters()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WallsMangaMutation) AddField(name string, value ent.Value) error {
	switch name {
	case wallsmanga.FieldArticleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleID(v)
		return nil
	case wallsmanga.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case wallsmanga.FieldVolumes:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVolumes(v)
		return nil
	case wallsmanga.FieldChapters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddChapters(v)
		return nil
	}
	return fmt.Errorf("unknown WallsManga numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WallsMangaMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(wallsmanga.FieldScore) {
		fields = append(fields, wallsmanga.FieldScore)
	}
	if m.FieldCleared(wallsmanga.FieldStartedAt) {
		fields = append(fields, wallsmanga.FieldStartedAt)
	}
	if m.FieldCleared(wallsmanga.FieldFinishedAt) {
		fields = append(fields, wallsmanga.FieldFinishedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WallsMangaMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WallsMangaMutation) ClearField(name string) error {
	switch name {
	case wallsmanga.FieldScore:
		m.ClearScore()
		return nil
	case wallsmanga.FieldStartedAt:
		m.ClearStartedAt()
		return nil
	case wallsmanga.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	}
	return fmt.Errorf("unknown WallsManga nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WallsMangaMutation) ResetField(name string) error {
	switch name {
	case wallsmanga.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case wallsmanga.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case wallsmanga.FieldUsername:
		m.ResetUsername()
		return nil
	case wallsmanga.FieldArticleID:
		m.ResetArticleID()
		return nil
	case wallsmanga.FieldStatus:
		m.ResetStatus()
		return nil
	case wallsmanga.FieldScore:
		m.ResetScore()
		return nil
	case wallsmanga.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case wallsmanga.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case wallsmanga.FieldVolumes:
		m.ResetVolumes()
		return nil
	case wallsmanga.FieldChapters:
		m.ResetChapters()
		return nil
	}
	return fmt.Errorf("unknown WallsManga field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WallsMangaMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WallsMangaMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WallsMangaMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WallsMangaMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WallsMangaMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WallsMangaMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WallsMangaMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown WallsManga unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WallsMangaMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown WallsManga edge %s", name)
}
