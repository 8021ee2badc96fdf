// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/anzhiyu-c/mediawall-app/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/anzhiyu-c/mediawall-app/ent/book"
	"github.com/anzhiyu-c/mediawall-app/ent/booksreview"
	"github.com/anzhiyu-c/mediawall-app/ent/comic"
	"github.com/anzhiyu-c/mediawall-app/ent/comicsreview"
	"github.com/anzhiyu-c/mediawall-app/ent/game"
	"github.com/anzhiyu-c/mediawall-app/ent/gamesreview"
	"github.com/anzhiyu-c/mediawall-app/ent/manga"
	"github.com/anzhiyu-c/mediawall-app/ent/mangasreview"
	"github.com/anzhiyu-c/mediawall-app/ent/user"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsbook"
	"github.com/anzhiyu-c/mediawall-app/ent/wallscomic"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsgame"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsmanga"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Book is the client for interacting with the Book builders.
	Book *BookClient
	// BooksReview is the client for interacting with the BooksReview builders.
	BooksReview *BooksReviewClient
	// Comic is the client for interacting with the Comic builders.
	Comic *ComicClient
	// ComicsReview is the client for interacting with the ComicsReview builders.
	ComicsReview *ComicsReviewClient
	// Game is the client for interacting with the Game builders.
	Game *GameClient
	// GamesReview is the client for interacting with the GamesReview builders.
	GamesReview *GamesReviewClient
	// Manga is the client for interacting with the Manga builders.
	Manga *MangaClient
	// MangasReview is the client for interacting with the MangasReview builders.
	MangasReview *MangasReviewClient
	// User is the client for interacting with the User builders.
	User *UserClient
	// WallsBook is the client for interacting with the WallsBook builders.
	WallsBook *WallsBookClient
	// WallsComic is the client for interacting with the WallsComic builders.
	WallsComic *WallsComicClient
	// WallsGame is the client for interacting with the WallsGame builders.
	WallsGame *WallsGameClient
	// WallsManga is the client for interacting with the WallsManga builders.
	WallsManga *WallsMangaClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Book = NewBookClient(c.config)
	c.BooksReview = NewBooksReviewClient(c.config)
	c.Comic = NewComicClient(c.config)
	c.ComicsReview = NewComicsReviewClient(c.config)
	c.Game = NewGameClient(c.config)
	c.GamesReview = NewGamesReviewClient(c.config)
	c.Manga = NewMangaClient(c.config)
	c.MangasReview = NewMangasReviewClient(c.config)
	c.User = NewUserClient(c.config)
	c.WallsBook = NewWallsBookClient(c.config)
	c.WallsComic = NewWallsComicClient(c.config)
	c.WallsGame = NewWallsGameClient(c.config)
	c.WallsManga = NewWallsMangaClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Book:         NewBookClient(cfg),
		BooksReview:  NewBooksReviewClient(cfg),
		Comic:        NewComicClient(cfg),
		ComicsReview: NewComicsReviewClient(cfg),
		Game:         NewGameClient(cfg),
		GamesReview:  NewGamesReviewClient(cfg),
		Manga:        NewMangaClient(cfg),
		MangasReview: NewMangasReviewClient(cfg),
		User:         NewUserClient(cfg),
		WallsBook:    NewWallsBookClient(cfg),
		WallsComic:   NewWallsComicClient(cfg),
		WallsGame:    NewWallsGameClient(cfg),
		WallsManga:   NewWallsMangaClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:          ctx,
		config:       cfg,
		Book:         NewBookClient(cfg),
		BooksReview:  NewBooksReviewClient(cfg),
		Comic:        NewComicClient(cfg),
		ComicsReview: NewComicsReviewClient(cfg),
		Game:         NewGameClient(cfg),
		GamesReview:  NewGamesReviewClient(cfg),
		Manga:        NewMangaClient(cfg),
		MangasReview: NewMangasReviewClient(cfg),
		User:         NewUserClient(cfg),
		WallsBook:    NewWallsBookClient(cfg),
		WallsComic:   NewWallsComicClient(cfg),
		WallsGame:    NewWallsGameClient(cfg),
		WallsManga:   NewWallsMangaClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Book.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.Book, c.BooksReview, c.Comic, c.ComicsReview, c.Game, c.GamesReview, c.Manga,
		c.MangasReview, c.User, c.WallsBook, c.WallsComic, c.WallsGame, c.WallsManga,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Book, c.BooksReview, c.Comic, c.ComicsReview, c.Game, c.GamesReview, c.Manga,
		c.MangasReview, c.User, c.WallsBook, c.WallsComic, c.WallsGame, c.WallsManga,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BookMutation:
		return c.Book.mutate(ctx, m)
	case *BooksReviewMutation:
		return c.BooksReview.mutate(ctx, m)
	case *ComicMutation:
		return c.Comic.mutate(ctx, m)
	case *ComicsReviewMutation:
		return c.ComicsReview.mutate(ctx, m)
	case *GameMutation:
		return c.Game.mutate(ctx, m)
	case *GamesReviewMutation:
		return c.GamesReview.mutate(ctx, m)
	case *MangaMutation:
		return c.Manga.mutate(ctx, m)
	case *MangasReviewMutation:
		return c.MangasReview.mutate(ctx, m)
	case *UserMutation:
		return c.User.mutate(ctx, m)
	case *WallsBookMutation:
		return c.WallsBook.mutate(ctx, m)
	case *WallsComicMutation:
		return c.WallsComic.mutate(ctx, m)
	case *WallsGameMutation:
		return c.WallsGame.mutate(ctx, m)
	case *WallsMangaMutation:
		return c.WallsManga.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BookClient is a client for the Book schema.
type BookClient struct {
	config
}

// NewBookClient returns a client for the Book from the given config.
func NewBookClient(c config) *BookClient {
	return &BookClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `book.Hooks(f(g(h())))`.
func (c *BookClient) Use(hooks ...Hook) {
	c.hooks.Book = append(c.hooks.Book, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `book.Intercept(f(g(h())))`.
func (c *BookClient) Intercept(interceptors ...Interceptor) {
	c.inters.Book = append(c.inters.Book, interceptors...)
}

// Create returns a builder for creating a Book entity.
func (c *BookClient) Create() *BookCreate {
	mutation := newBookMutation(c.config, OpCreate)
	return &BookCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Book entities.
func (c *BookClient) CreateBulk(builders ...*BookCreate) *BookCreateBulk {
	return &BookCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BookClient) MapCreateBulk(slice any, setFunc func(*BookCreate, int)) *BookCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BookCreateBulk{err: fmt.Errorf("calling to BookClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BookCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BookCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Book.
func (c *BookClient) Update() *BookUpdate {
	mutation := newBookMutation(c.config, OpUpdate)
	return &BookUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BookClient) UpdateOne(b *Book) *BookUpdateOne {
	mutation := newBookMutation(c.config, OpUpdateOne, withBook(b))
	return &BookUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BookClient) UpdateOneID(id uint) *BookUpdateOne {
	mutation := newBookMutation(c.config, OpUpdateOne, withBookID(id))
	return &BookUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Book.
func (c *BookClient) Delete() *BookDelete {
	mutation := newBookMutation(c.config, OpDelete)
	return &BookDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BookClient) DeleteOne(b *Book) *BookDeleteOne {
	return c.DeleteOneID(b.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BookClient) DeleteOneID(id uint) *BookDeleteOne {
	builder := c.Delete().Where(book.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BookDeleteOne{builder}
}

// Query returns a query builder for Book.
func (c *BookClient) Query() *BookQuery {
	return &BookQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBook},
		inters: c.Interceptors(),
	}
}

// Get returns a Book entity by its id.
func (c *BookClient) Get(ctx context.Context, id uint) (*Book, error) {
	return c.Query().Where(book.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BookClient) GetX(ctx context.Context, id uint) *Book {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BookClient) Hooks() []Hook {
	hooks := c.hooks.Book
	return append(hooks[:len(hooks):len(hooks)], book.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *BookClient) Interceptors() []Interceptor {
	return c.inters.Book
}

func (c *BookClient) mutate(ctx context.Context, m *BookMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BookCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BookUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BookUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BookDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Book mutation op: %q", m.Op())
	}
}

// BooksReviewClient is a client for the BooksReview schema.
type BooksReviewClient struct {
	config
}

// NewBooksReviewClient returns a client for the BooksReview from the given config.
func NewBooksReviewClient(c config) *BooksReviewClient {
	return &BooksReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `booksreview.Hooks(f(g(h())))`.
func (c *BooksReviewClient) Use(hooks ...Hook) {
	c.hooks.BooksReview = append(c.hooks.BooksReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `booksreview.Intercept(f(g(h())))`.
func (c *BooksReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.BooksReview = append(c.inters.BooksReview, interceptors...)
}

// Create returns a builder for creating a BooksReview entity.
func (c *BooksReviewClient) Create() *BooksReviewCreate {
	mutation := newBooksReviewMutation(c.config, OpCreate)
	return &BooksReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BooksReview entities.
func (c *BooksReviewClient) CreateBulk(builders ...*BooksReviewCreate) *BooksReviewCreateBulk {
	return &BooksReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BooksReviewClient) MapCreateBulk(slice any, setFunc func(*BooksReviewCreate, int)) *BooksReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BooksReviewCreateBulk{err: fmt.Errorf("calling to BooksReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BooksReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BooksReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BooksReview.
func (c *BooksReviewClient) Update() *BooksReviewUpdate {
	mutation := newBooksReviewMutation(c.config, OpUpdate)
	return &BooksReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BooksReviewClient) UpdateOne(br *BooksReview) *BooksReviewUpdateOne {
	mutation := newBooksReviewMutation(c.config, OpUpdateOne, withBooksReview(br))
	return &BooksReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BooksReviewClient) UpdateOneID(id uint) *BooksReviewUpdateOne {
	mutation := newBooksReviewMutation(c.config, OpUpdateOne, withBooksReviewID(id))
	return &BooksReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BooksReview.
func (c *BooksReviewClient) Delete() *BooksReviewDelete {
	mutation := newBooksReviewMutation(c.config, OpDelete)
	return &BooksReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BooksReviewClient) DeleteOne(br *BooksReview) *BooksReviewDeleteOne {
	return c.DeleteOneID(br.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BooksReviewClient) DeleteOneID(id uint) *BooksReviewDeleteOne {
	builder := c.Delete().Where(booksreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BooksReviewDeleteOne{builder}
}

// Query returns a query builder for BooksReview.
func (c *BooksReviewClient) Query() *BooksReviewQuery {
	return &BooksReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBooksReview},
		inters: c.Interceptors(),
	}
}

// Get returns a BooksReview entity by its id.
func (c *BooksReviewClient) Get(ctx context.Context, id uint) (*BooksReview, error) {
	return c.Query().Where(booksreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BooksReviewClient) GetX(ctx context.Context, id uint) *BooksReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BooksReviewClient) Hooks() []Hook {
	return c.hooks.BooksReview
}

// Interceptors returns the client interceptors.
func (c *BooksReviewClient) Interceptors() []Interceptor {
	return c.inters.BooksReview
}

func (c *BooksReviewClient) mutate(ctx context.Context, m *BooksReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BooksReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BooksReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BooksReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BooksReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BooksReview mutation op: %q", m.Op())
	}
}

// ComicClient is a client for the Comic schema.
type ComicClient struct {
	config
}

// NewComicClient returns a client for the Comic from the given config.
func NewComicClient(c config) *ComicClient {
	return &ComicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `comic.Hooks(f(g(h())))`.
func (c *ComicClient) Use(hooks ...Hook) {
	c.hooks.Comic = append(c.hooks.Comic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `comic.Intercept(f(g(h())))`.
func (c *ComicClient) Intercept(interceptors ...Interceptor) {
	c.inters.Comic = append(c.inters.Comic, interceptors...)
}

// Create returns a builder for creating a Comic entity.
func (c *ComicClient) Create() *ComicCreate {
	mutation := newComicMutation(c.config, OpCreate)
	return &ComicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Comic entities.
func (c *ComicClient) CreateBulk(builders ...*ComicCreate) *ComicCreateBulk {
	return &ComicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ComicClient) MapCreateBulk(slice any, setFunc func(*ComicCreate, int)) *ComicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ComicCreateBulk{err: fmt.Errorf("calling to ComicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ComicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ComicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Comic.
func (c *ComicClient) Update() *ComicUpdate {
	mutation := newComicMutation(c.config, OpUpdate)
	return &ComicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ComicClient) UpdateOne(co *Comic) *ComicUpdateOne {
	mutation := newComicMutation(c.config, OpUpdateOne, withComic(co))
	return &ComicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ComicClient) UpdateOneID(id uint) *ComicUpdateOne {
	mutation := newComicMutation(c.config, OpUpdateOne, withComicID(id))
	return &ComicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Comic.
func (c *ComicClient) Delete() *ComicDelete {
	mutation := newComicMutation(c.config, OpDelete)
	return &ComicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ComicClient) DeleteOne(co *Comic) *ComicDeleteOne {
	return c.DeleteOneID(co.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ComicClient) DeleteOneID(id uint) *ComicDeleteOne {
	builder := c.Delete().Where(comic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ComicDeleteOne{builder}
}

// Query returns a query builder for Comic.
func (c *ComicClient) Query() *ComicQuery {
	return &ComicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeComic},
		inters: c.Interceptors(),
	}
}

// Get returns a Comic entity by its id.
func (c *ComicClient) Get(ctx context.Context, id uint) (*Comic, error) {
	return c.Query().Where(comic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ComicClient) GetX(ctx context.Context, id uint) *Comic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ComicClient) Hooks() []Hook {
	hooks := c.hooks.Comic
	return append(hooks[:len(hooks):len(hooks)], comic.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *ComicClient) Interceptors() []Interceptor {
	return c.inters.Comic
}

func (c *ComicClient) mutate(ctx context.Context, m *ComicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ComicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ComicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ComicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ComicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Comic mutation op: %q", m.Op())
	}
}

// ComicsReviewClient is a client for the ComicsReview schema.
type ComicsReviewClient struct {
	config
}

// NewComicsReviewClient returns a client for the ComicsReview from the given config.
func NewComicsReviewClient(c config) *ComicsReviewClient {
	return &ComicsReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `comicsreview.Hooks(f(g(h())))`.
func (c *ComicsReviewClient) Use(hooks ...Hook) {
	c.hooks.ComicsReview = append(c.hooks.ComicsReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `comicsreview.Intercept(f(g(h())))`.
func (c *ComicsReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.ComicsReview = append(c.inters.ComicsReview, interceptors...)
}

// Create returns a builder for creating a ComicsReview entity.
func (c *ComicsReviewClient) Create() *ComicsReviewCreate {
	mutation := newComicsReviewMutation(c.config, OpCreate)
	return &ComicsReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ComicsReview entities.
func (c *ComicsReviewClient) CreateBulk(builders ...*ComicsReviewCreate) *ComicsReviewCreateBulk {
	return &ComicsReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ComicsReviewClient) MapCreateBulk(slice any, setFunc func(*ComicsReviewCreate, int)) *ComicsReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ComicsReviewCreateBulk{err: fmt.Errorf("calling to ComicsReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ComicsReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ComicsReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ComicsReview.
func (c *ComicsReviewClient) Update() *ComicsReviewUpdate {
	mutation := newComicsReviewMutation(c.config, OpUpdate)
	return &ComicsReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ComicsReviewClient) UpdateOne(cr *ComicsReview) *ComicsReviewUpdateOne {
	mutation := newComicsReviewMutation(c.config, OpUpdateOne, withComicsReview(cr))
	return &ComicsReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ComicsReviewClient) UpdateOneID(id uint) *ComicsReviewUpdateOne {
	mutation := newComicsReviewMutation(c.config, OpUpdateOne, withComicsReviewID(id))
	return &ComicsReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ComicsReview.
func (c *ComicsReviewClient) Delete() *ComicsReviewDelete {
	mutation := newComicsReviewMutation(c.config, OpDelete)
	return &ComicsReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ComicsReviewClient) DeleteOne(cr *ComicsReview) *ComicsReviewDeleteOne {
	return c.DeleteOneID(cr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ComicsReviewClient) DeleteOneID(id uint) *ComicsReviewDeleteOne {
	builder := c.Delete().Where(comicsreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ComicsReviewDeleteOne{builder}
}

// Query returns a query builder for ComicsReview.
func (c *ComicsReviewClient) Query() *ComicsReviewQuery {
	return &ComicsReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeComicsReview},
		inters: c.Interceptors(),
	}
}

// Get returns a ComicsReview entity by its id.
func (c *ComicsReviewClient) Get(ctx context.Context, id uint) (*ComicsReview, error) {
	return c.Query().Where(comicsreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ComicsReviewClient) GetX(ctx context.Context, id uint) *ComicsReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ComicsReviewClient) Hooks() []Hook {
	return c.hooks.ComicsReview
}

// Interceptors returns the client interceptors.
func (c *ComicsReviewClient) Interceptors() []Interceptor {
	return c.inters.ComicsReview
}

func (c *ComicsReviewClient) mutate(ctx context.Context, m *ComicsReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ComicsReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ComicsReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ComicsReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ComicsReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ComicsReview mutation op: %q", m.Op())
	}
}

// GameClient is a client for the Game schema.
type GameClient struct {
	config
}

// NewGameClient returns a client for the Game from the given config.
func NewGameClient(c config) *GameClient {
	return &GameClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `game.Hooks(f(g(h())))`.
func (c *GameClient) Use(hooks ...Hook) {
	c.hooks.Game = append(c.hooks.Game, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `game.Intercept(f(g(h())))`.
func (c *GameClient) Intercept(interceptors ...Interceptor) {
	c.inters.Game = append(c.inters.Game, interceptors...)
}

// Create returns a builder for creating a Game entity.
func (c *GameClient) Create() *GameCreate {
	mutation := newGameMutation(c.config, OpCreate)
	return &GameCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Game entities.
func (c *GameClient) CreateBulk(builders ...*GameCreate) *GameCreateBulk {
	return &GameCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GameClient) MapCreateBulk(slice any, setFunc func(*GameCreate, int)) *GameCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GameCreateBulk{err: fmt.Errorf("calling to GameClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GameCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GameCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Game.
func (c *GameClient) Update() *GameUpdate {
	mutation := newGameMutation(c.config, OpUpdate)
	return &GameUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GameClient) UpdateOne(ga *Game) *GameUpdateOne {
	mutation := newGameMutation(c.config, OpUpdateOne, withGame(ga))
	return &GameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GameClient) UpdateOneID(id uint) *GameUpdateOne {
	mutation := newGameMutation(c.config, OpUpdateOne, withGameID(id))
	return &GameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Game.
func (c *GameClient) Delete() *GameDelete {
	mutation := newGameMutation(c.config, OpDelete)
	return &GameDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GameClient) DeleteOne(ga *Game) *GameDeleteOne {
	return c.DeleteOneID(ga.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GameClient) DeleteOneID(id uint) *GameDeleteOne {
	builder := c.Delete().Where(game.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GameDeleteOne{builder}
}

// Query returns a query builder for Game.
func (c *GameClient) Query() *GameQuery {
	return &GameQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGame},
		inters: c.Interceptors(),
	}
}

// Get returns a Game entity by its id.
func (c *GameClient) Get(ctx context.Context, id uint) (*Game, error) {
	return c.Query().Where(game.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GameClient) GetX(ctx context.Context, id uint) *Game {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GameClient) Hooks() []Hook {
	hooks := c.hooks.Game
	return append(hooks[:len(hooks):len(hooks)], game.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *GameClient) Interceptors() []Interceptor {
	return c.inters.Game
}

func (c *GameClient) mutate(ctx context.Context, m *GameMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GameCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GameUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GameDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Game mutation op: %q", m.Op())
	}
}

// GamesReviewClient is a client for the GamesReview schema.
type GamesReviewClient struct {
	config
}

// NewGamesReviewClient returns a client for the GamesReview from the given config.
func NewGamesReviewClient(c config) *GamesReviewClient {
	return &GamesReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `gamesreview.Hooks(f(g(h())))`.
func (c *GamesReviewClient) Use(hooks ...Hook) {
	c.hooks.GamesReview = append(c.hooks.GamesReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `gamesreview.Intercept(f(g(h())))`.
func (c *GamesReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.GamesReview = append(c.inters.GamesReview, interceptors...)
}

// Create returns a builder for creating a GamesReview entity.
func (c *GamesReviewClient) Create() *GamesReviewCreate {
	mutation := newGamesReviewMutation(c.config, OpCreate)
	return &GamesReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GamesReview entities.
func (c *GamesReviewClient) CreateBulk(builders ...*GamesReviewCreate) *GamesReviewCreateBulk {
	return &GamesReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GamesReviewClient) MapCreateBulk(slice any, setFunc func(*GamesReviewCreate, int)) *GamesReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GamesReviewCreateBulk{err: fmt.Errorf("calling to GamesReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GamesReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GamesReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GamesReview.
func (c *GamesReviewClient) Update() *GamesReviewUpdate {
	mutation := newGamesReviewMutation(c.config, OpUpdate)
	return &GamesReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GamesReviewClient) UpdateOne(gr *GamesReview) *GamesReviewUpdateOne {
	mutation := newGamesReviewMutation(c.config, OpUpdateOne, withGamesReview(gr))
	return &GamesReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GamesReviewClient) UpdateOneID(id uint) *GamesReviewUpdateOne {
	mutation := newGamesReviewMutation(c.config, OpUpdateOne, withGamesReviewID(id))
	return &GamesReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GamesReview.
func (c *GamesReviewClient) Delete() *GamesReviewDelete {
	mutation := newGamesReviewMutation(c.config, OpDelete)
	return &GamesReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GamesReviewClient) DeleteOne(gr *GamesReview) *GamesReviewDeleteOne {
	return c.DeleteOneID(gr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GamesReviewClient) DeleteOneID(id uint) *GamesReviewDeleteOne {
	builder := c.Delete().Where(gamesreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GamesReviewDeleteOne{builder}
}

// Query returns a query builder for GamesReview.
func (c *GamesReviewClient) Query() *GamesReviewQuery {
	return &GamesReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGamesReview},
		inters: c.Interceptors(),
	}
}

// Get returns a GamesReview entity by its id.
func (c *GamesReviewClient) Get(ctx context.Context, id uint) (*GamesReview, error) {
	return c.Query().Where(gamesreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GamesReviewClient) GetX(ctx context.Context, id uint) *GamesReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GamesReviewClient) Hooks() []Hook {
	return c.hooks.GamesReview
}

// Interceptors returns the client interceptors.
func (c *GamesReviewClient) Interceptors() []Interceptor {
	return c.inters.GamesReview
}

func (c *GamesReviewClient) mutate(ctx context.Context, m *GamesReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GamesReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GamesReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GamesReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GamesReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GamesReview mutation op: %q", m.Op())
	}
}

// MangaClient is a client for the Manga schema.
type MangaClient struct {
	config
}

// NewMangaClient returns a client for the Manga from the given config.
func NewMangaClient(c config) *MangaClient {
	return &MangaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `manga.Hooks(f(g(h())))`.
func (c *MangaClient) Use(hooks ...Hook) {
	c.hooks.Manga = append(c.hooks.Manga, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `manga.Intercept(f(g(h())))`.
func (c *MangaClient) Intercept(interceptors ...Interceptor) {
	c.inters.Manga = append(c.inters.Manga, interceptors...)
}

// Create returns a builder for creating a Manga entity.
func (c *MangaClient) Create() *MangaCreate {
	mutation := newMangaMutation(c.config, OpCreate)
	return &MangaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Manga entities.
func (c *MangaClient) CreateBulk(builders ...*MangaCreate) *MangaCreateBulk {
	return &MangaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MangaClient) MapCreateBulk(slice any, setFunc func(*MangaCreate, int)) *MangaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MangaCreateBulk{err: fmt.Errorf("calling to MangaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MangaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MangaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Manga.
func (c *MangaClient) Update() *MangaUpdate {
	mutation := newMangaMutation(c.config, OpUpdate)
	return &MangaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MangaClient) UpdateOne(m *Manga) *MangaUpdateOne {
	mutation := newMangaMutation(c.config, OpUpdateOne, withManga(m))
	return &MangaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MangaClient) UpdateOneID(id uint) *MangaUpdateOne {
	mutation := newMangaMutation(c.config, OpUpdateOne, withMangaID(id))
	return &MangaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Manga.
func (c *MangaClient) Delete() *MangaDelete {
	mutation := newMangaMutation(c.config, OpDelete)
	return &MangaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MangaClient) DeleteOne(m *Manga) *MangaDeleteOne {
	return c.DeleteOneID(m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MangaClient) DeleteOneID(id uint) *MangaDeleteOne {
	builder := c.Delete().Where(manga.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MangaDeleteOne{builder}
}

// Query returns a query builder for Manga.
func (c *MangaClient) Query() *MangaQuery {
	return &MangaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeManga},
		inters: c.Interceptors(),
	}
}

// Get returns a Manga entity by its id.
func (c *MangaClient) Get(ctx context.Context, id uint) (*Manga, error) {
	return c.Query().Where(manga.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MangaClient) GetX(ctx context.Context, id uint) *Manga {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MangaClient) Hooks() []Hook {
	hooks := c.hooks.Manga
	return append(hooks[:len(hooks):len(hooks)], manga.Hooks[:]...)
}

// Interceptors returns the client interceptors.
func (c *MangaClient) Interceptors() []Interceptor {
	return c.inters.Manga
}

func (c *MangaClient) mutate(ctx context.Context, m *MangaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MangaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MangaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MangaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MangaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Manga mutation op: %q", m.Op())
	}
}

// MangasReviewClient is a client for the MangasReview schema.
type MangasReviewClient struct {
	config
}

// NewMangasReviewClient returns a client for the MangasReview from the given config.
func NewMangasReviewClient(c config) *MangasReviewClient {
	return &MangasReviewClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `mangasreview.Hooks(f(g(h())))`.
func (c *MangasReviewClient) Use(hooks ...Hook) {
	c.hooks.MangasReview = append(c.hooks.MangasReview, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `mangasreview.Intercept(f(g(h())))`.
func (c *MangasReviewClient) Intercept(interceptors ...Interceptor) {
	c.inters.MangasReview = append(c.inters.MangasReview, interceptors...)
}

// Create returns a builder for creating a MangasReview entity.
func (c *MangasReviewClient) Create() *MangasReviewCreate {
	mutation := newMangasReviewMutation(c.config, OpCreate)
	return &MangasReviewCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of MangasReview entities.
func (c *MangasReviewClient) CreateBulk(builders ...*MangasReviewCreate) *MangasReviewCreateBulk {
	return &MangasReviewCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *MangasReviewClient) MapCreateBulk(slice any, setFunc func(*MangasReviewCreate, int)) *MangasReviewCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &MangasReviewCreateBulk{err: fmt.Errorf("calling to MangasReviewClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*MangasReviewCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &MangasReviewCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for MangasReview.
func (c *MangasReviewClient) Update() *MangasReviewUpdate {
	mutation := newMangasReviewMutation(c.config, OpUpdate)
	return &MangasReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *MangasReviewClient) UpdateOne(mr *MangasReview) *MangasReviewUpdateOne {
	mutation := newMangasReviewMutation(c.config, OpUpdateOne, withMangasReview(mr))
	return &MangasReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *MangasReviewClient) UpdateOneID(id uint) *MangasReviewUpdateOne {
	mutation := newMangasReviewMutation(c.config, OpUpdateOne, withMangasReviewID(id))
	return &MangasReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for MangasReview.
func (c *MangasReviewClient) Delete() *MangasReviewDelete {
	mutation := newMangasReviewMutation(c.config, OpDelete)
	return &MangasReviewDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *MangasReviewClient) DeleteOne(mr *MangasReview) *MangasReviewDeleteOne {
	return c.DeleteOneID(mr.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *MangasReviewClient) DeleteOneID(id uint) *MangasReviewDeleteOne {
	builder := c.Delete().Where(mangasreview.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &MangasReviewDeleteOne{builder}
}

// Query returns a query builder for MangasReview.
func (c *MangasReviewClient) Query() *MangasReviewQuery {
	return &MangasReviewQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeMangasReview},
		inters: c.Interceptors(),
	}
}

// Get returns a MangasReview entity by its id.
func (c *MangasReviewClient) Get(ctx context.Context, id uint) (*MangasReview, error) {
	return c.Query().Where(mangasreview.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *MangasReviewClient) GetX(ctx context.Context, id uint) *MangasReview {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *MangasReviewClient) Hooks() []Hook {
	return c.hooks.MangasReview
}

// Interceptors returns the client interceptors.
func (c *MangasReviewClient) Interceptors() []Interceptor {
	return c.inters.MangasReview
}

func (c *MangasReviewClient) mutate(ctx context.Context, m *MangasReviewMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&MangasReviewCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&MangasReviewUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&MangasReviewUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&MangasReviewDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown MangasReview mutation op: %q", m.Op())
	}
}

// UserClient is a client for the User schema.
type UserClient struct {
	config
}

// NewUserClient returns a client for the User from the given config.
func NewUserClient(c config) *UserClient {
	return &UserClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `user.Hooks(f(g(h())))`.
func (c *UserClient) Use(hooks ...Hook) {
	c.hooks.User = append(c.hooks.User, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `user.Intercept(f(g(h())))`.
func (c *UserClient) Intercept(interceptors ...Interceptor) {
	c.inters.User = append(c.inters.User, interceptors...)
}

// Create returns a builder for creating a User entity.
func (c *UserClient) Create() *UserCreate {
	mutation := newUserMutation(c.config, OpCreate)
	return &UserCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of User entities.
func (c *UserClient) CreateBulk(builders ...*UserCreate) *UserCreateBulk {
	return &UserCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *UserClient) MapCreateBulk(slice any, setFunc func(*UserCreate, int)) *UserCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &UserCreateBulk{err: fmt.Errorf("calling to UserClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*UserCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &UserCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for User.
func (c *UserClient) Update() *UserUpdate {
	mutation := newUserMutation(c.config, OpUpdate)
	return &UserUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *UserClient) UpdateOne(u *User) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUser(u))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *UserClient) UpdateOneID(id uint) *UserUpdateOne {
	mutation := newUserMutation(c.config, OpUpdateOne, withUserID(id))
	return &UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for User.
func (c *UserClient) Delete() *UserDelete {
	mutation := newUserMutation(c.config, OpDelete)
	return &UserDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *UserClient) DeleteOne(u *User) *UserDeleteOne {
	return c.DeleteOneID(u.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *UserClient) DeleteOneID(id uint) *UserDeleteOne {
	builder := c.Delete().Where(user.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &UserDeleteOne{builder}
}

// Query returns a query builder for User.
func (c *UserClient) Query() *UserQuery {
	return &UserQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeUser},
		inters: c.Interceptors(),
	}
}

// Get returns a User entity by its id.
func (c *UserClient) Get(ctx context.Context, id uint) (*User, error) {
	return c.Query().Where(user.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *UserClient) GetX(ctx context.Context, id uint) *User {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *UserClient) Hooks() []Hook {
	return c.hooks.User
}

// Interceptors returns the client interceptors.
func (c *UserClient) Interceptors() []Interceptor {
	return c.inters.User
}

func (c *UserClient) mutate(ctx context.Context, m *UserMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&UserCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&UserUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&UserUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&UserDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown User mutation op: %q", m.Op())
	}
}

// WallsBookClient is a client for the WallsBook schema.
type WallsBookClient struct {
	config
}

// NewWallsBookClient returns a client for the WallsBook from the given config.
func NewWallsBookClient(c config) *WallsBookClient {
	return &WallsBookClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `wallsbook.Hooks(f(g(h())))`.
func (c *WallsBookClient) Use(hooks ...Hook) {
	c.hooks.WallsBook = append(c.hooks.WallsBook, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `wallsbook.Intercept(f(g(h())))`.
func (c *WallsBookClient) Intercept(interceptors ...Interceptor) {
	c.inters.WallsBook = append(c.inters.WallsBook, interceptors...)
}

// Create returns a builder for creating a WallsBook entity.
func (c *WallsBookClient) Create() *WallsBookCreate {
	mutation := newWallsBookMutation(c.config, OpCreate)
	return &WallsBookCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WallsBook entities.
func (c *WallsBookClient) CreateBulk(builders ...*WallsBookCreate) *WallsBookCreateBulk {
	return &WallsBookCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WallsBookClient) MapCreateBulk(slice any, setFunc func(*WallsBookCreate, int)) *WallsBookCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WallsBookCreateBulk{err: fmt.Errorf("calling to WallsBookClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WallsBookCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WallsBookCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WallsBook.
func (c *WallsBookClient) Update() *WallsBookUpdate {
	mutation := newWallsBookMutation(c.config, OpUpdate)
	return &WallsBookUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WallsBookClient) UpdateOne(wb *WallsBook) *WallsBookUpdateOne {
	mutation := newWallsBookMutation(c.config, OpUpdateOne, withWallsBook(wb))
	return &WallsBookUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WallsBookClient) UpdateOneID(id uint) *WallsBookUpdateOne {
	mutation := newWallsBookMutation(c.config, OpUpdateOne, withWallsBookID(id))
	return &WallsBookUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WallsBook.
func (c *WallsBookClient) Delete() *WallsBookDelete {
	mutation := newWallsBookMutation(c.config, OpDelete)
	return &WallsBookDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WallsBookClient) DeleteOne(wb *WallsBook) *WallsBookDeleteOne {
	return c.DeleteOneID(wb.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WallsBookClient) DeleteOneID(id uint) *WallsBookDeleteOne {
	builder := c.Delete().Where(wallsbook.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WallsBookDeleteOne{builder}
}

// Query returns a query builder for WallsBook.
func (c *WallsBookClient) Query() *WallsBookQuery {
	return &WallsBookQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWallsBook},
		inters: c.Interceptors(),
	}
}

// Get returns a WallsBook entity by its id.
func (c *WallsBookClient) Get(ctx context.Context, id uint) (*WallsBook, error) {
	return c.Query().Where(wallsbook.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WallsBookClient) GetX(ctx context.Context, id uint) *WallsBook {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WallsBookClient) Hooks() []Hook {
	return c.hooks.WallsBook
}

// Interceptors returns the client interceptors.
func (c *WallsBookClient) Interceptors() []Interceptor {
	return c.inters.WallsBook
}

func (c *WallsBookClient) mutate(ctx context.Context, m *WallsBookMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WallsBookCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WallsBookUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WallsBookUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WallsBookDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WallsBook mutation op: %q", m.Op())
	}
}

// WallsComicClient is a client for the WallsComic schema.
type WallsComicClient struct {
	config
}

// NewWallsComicClient returns a client for the WallsComic from the given config.
func NewWallsComicClient(c config) *WallsComicClient {
	return &WallsComicClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `wallscomic.Hooks(f(g(h())))`.
func (c *WallsComicClient) Use(hooks ...Hook) {
	c.hooks.WallsComic = append(c.hooks.WallsComic, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `wallscomic.Intercept(f(g(h())))`.
func (c *WallsComicClient) Intercept(interceptors ...Interceptor) {
	c.inters.WallsComic = append(c.inters.WallsComic, interceptors...)
}

// Create returns a builder for creating a WallsComic entity.
func (c *WallsComicClient) Create() *WallsComicCreate {
	mutation := newWallsComicMutation(c.config, OpCreate)
	return &WallsComicCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WallsComic entities.
func (c *WallsComicClient) CreateBulk(builders ...*WallsComicCreate) *WallsComicCreateBulk {
	return &WallsComicCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WallsComicClient) MapCreateBulk(slice any, setFunc func(*WallsComicCreate, int)) *WallsComicCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WallsComicCreateBulk{err: fmt.Errorf("calling to WallsComicClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WallsComicCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WallsComicCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WallsComic.
func (c *WallsComicClient) Update() *WallsComicUpdate {
	mutation := newWallsComicMutation(c.config, OpUpdate)
	return &WallsComicUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WallsComicClient) UpdateOne(wc *WallsComic) *WallsComicUpdateOne {
	mutation := newWallsComicMutation(c.config, OpUpdateOne, withWallsComic(wc))
	return &WallsComicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WallsComicClient) UpdateOneID(id uint) *WallsComicUpdateOne {
	mutation := newWallsComicMutation(c.config, OpUpdateOne, withWallsComicID(id))
	return &WallsComicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WallsComic.
func (c *WallsComicClient) Delete() *WallsComicDelete {
	mutation := newWallsComicMutation(c.config, OpDelete)
	return &WallsComicDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WallsComicClient) DeleteOne(wc *WallsComic) *WallsComicDeleteOne {
	return c.DeleteOneID(wc.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WallsComicClient) DeleteOneID(id uint) *WallsComicDeleteOne {
	builder := c.Delete().Where(wallscomic.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WallsComicDeleteOne{builder}
}

// Query returns a query builder for WallsComic.
func (c *WallsComicClient) Query() *WallsComicQuery {
	return &WallsComicQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWallsComic},
		inters: c.Interceptors(),
	}
}

// Get returns a WallsComic entity by its id.
func (c *WallsComicClient) Get(ctx context.Context, id uint) (*WallsComic, error) {
	return c.Query().Where(wallscomic.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WallsComicClient) GetX(ctx context.Context, id uint) *WallsComic {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WallsComicClient) Hooks() []Hook {
	return c.hooks.WallsComic
}

// Interceptors returns the client interceptors.
func (c *WallsComicClient) Interceptors() []Interceptor {
	return c.inters.WallsComic
}

func (c *WallsComicClient) mutate(ctx context.Context, m *WallsComicMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WallsComicCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WallsComicUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WallsComicUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WallsComicDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WallsComic mutation op: %q", m.Op())
	}
}

// WallsGameClient is a client for the WallsGame schema.
type WallsGameClient struct {
	config
}

// NewWallsGameClient returns a client for the WallsGame from the given config.
func NewWallsGameClient(c config) *WallsGameClient {
	return &WallsGameClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `wallsgame.Hooks(f(g(h())))`.
func (c *WallsGameClient) Use(hooks ...Hook) {
	c.hooks.WallsGame = append(c.hooks.WallsGame, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `wallsgame.Intercept(f(g(h())))`.
func (c *WallsGameClient) Intercept(interceptors ...Interceptor) {
	c.inters.WallsGame = append(c.inters.WallsGame, interceptors...)
}

// Create returns a builder for creating a WallsGame entity.
func (c *WallsGameClient) Create() *WallsGameCreate {
	mutation := newWallsGameMutation(c.config, OpCreate)
	return &WallsGameCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WallsGame entities.
func (c *WallsGameClient) CreateBulk(builders ...*WallsGameCreate) *WallsGameCreateBulk {
	return &WallsGameCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WallsGameClient) MapCreateBulk(slice any, setFunc func(*WallsGameCreate, int)) *WallsGameCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WallsGameCreateBulk{err: fmt.Errorf("calling to WallsGameClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WallsGameCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WallsGameCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WallsGame.
func (c *WallsGameClient) Update() *WallsGameUpdate {
	mutation := newWallsGameMutation(c.config, OpUpdate)
	return &WallsGameUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WallsGameClient) UpdateOne(wg *WallsGame) *WallsGameUpdateOne {
	mutation := newWallsGameMutation(c.config, OpUpdateOne, withWallsGame(wg))
	return &WallsGameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WallsGameClient) UpdateOneID(id uint) *WallsGameUpdateOne {
	mutation := newWallsGameMutation(c.config, OpUpdateOne, withWallsGameID(id))
	return &WallsGameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WallsGame.
func (c *WallsGameClient) Delete() *WallsGameDelete {
	mutation := newWallsGameMutation(c.config, OpDelete)
	return &WallsGameDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WallsGameClient) DeleteOne(wg *WallsGame) *WallsGameDeleteOne {
	return c.DeleteOneID(wg.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WallsGameClient) DeleteOneID(id uint) *WallsGameDeleteOne {
	builder := c.Delete().Where(wallsgame.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WallsGameDeleteOne{builder}
}

// Query returns a query builder for WallsGame.
func (c *WallsGameClient) Query() *WallsGameQuery {
	return &WallsGameQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWallsGame},
		inters: c.Interceptors(),
	}
}

// Get returns a WallsGame entity by its id.
func (c *WallsGameClient) Get(ctx context.Context, id uint) (*WallsGame, error) {
	return c.Query().Where(wallsgame.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WallsGameClient) GetX(ctx context.Context, id uint) *WallsGame {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WallsGameClient) Hooks() []Hook {
	return c.hooks.WallsGame
}

// Interceptors returns the client interceptors.
func (c *WallsGameClient) Interceptors() []Interceptor {
	return c.inters.WallsGame
}

func (c *WallsGameClient) mutate(ctx context.Context, m *WallsGameMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WallsGameCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WallsGameUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WallsGameUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WallsGameDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WallsGame mutation op: %q", m.Op())
	}
}

// WallsMangaClient is a client for the WallsManga schema.
type WallsMangaClient struct {
	config
}

// NewWallsMangaClient returns a client for the WallsManga from the given config.
func NewWallsMangaClient(c config) *WallsMangaClient {
	return &WallsMangaClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `wallsmanga.Hooks(f(g(h())))`.
func (c *WallsMangaClient) Use(hooks ...Hook) {
	c.hooks.WallsManga = append(c.hooks.WallsManga, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `wallsmanga.Intercept(f(g(h())))`.
func (c *WallsMangaClient) Intercept(interceptors ...Interceptor) {
	c.inters.WallsManga = append(c.inters.WallsManga, interceptors...)
}

// Create returns a builder for creating a WallsManga entity.
func (c *WallsMangaClient) Create() *WallsMangaCreate {
	mutation := newWallsMangaMutation(c.config, OpCreate)
	return &WallsMangaCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of WallsManga entities.
func (c *WallsMangaClient) CreateBulk(builders ...*WallsMangaCreate) *WallsMangaCreateBulk {
	return &WallsMangaCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WallsMangaClient) MapCreateBulk(slice any, setFunc func(*WallsMangaCreate, int)) *WallsMangaCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WallsMangaCreateBulk{err: fmt.Errorf("calling to WallsMangaClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WallsMangaCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WallsMangaCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for WallsManga.
func (c *WallsMangaClient) Update() *WallsMangaUpdate {
	mutation := newWallsMangaMutation(c.config, OpUpdate)
	return &WallsMangaUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WallsMangaClient) UpdateOne(wm *WallsManga) *WallsMangaUpdateOne {
	mutation := newWallsMangaMutation(c.config, OpUpdateOne, withWallsManga(wm))
	return &WallsMangaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WallsMangaClient) UpdateOneID(id uint) *WallsMangaUpdateOne {
	mutation := newWallsMangaMutation(c.config, OpUpdateOne, withWallsMangaID(id))
	return &WallsMangaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for WallsManga.
func (c *WallsMangaClient) Delete() *WallsMangaDelete {
	mutation := newWallsMangaMutation(c.config, OpDelete)
	return &WallsMangaDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WallsMangaClient) DeleteOne(wm *WallsManga) *WallsMangaDeleteOne {
	return c.DeleteOneID(wm.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WallsMangaClient) DeleteOneID(id uint) *WallsMangaDeleteOne {
	builder := c.Delete().Where(wallsmanga.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WallsMangaDeleteOne{builder}
}

// Query returns a query builder for WallsManga.
func (c *WallsMangaClient) Query() *WallsMangaQuery {
	return &WallsMangaQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWallsManga},
		inters: c.Interceptors(),
	}
}

// Get returns a WallsManga entity by its id.
func (c *WallsMangaClient) Get(ctx context.Context, id uint) (*WallsManga, error) {
	return c.Query().Where(wallsmanga.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WallsMangaClient) GetX(ctx context.Context, id uint) *WallsManga {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WallsMangaClient) Hooks() []Hook {
	return c.hooks.WallsManga
}

// Interceptors returns the client interceptors.
func (c *WallsMangaClient) Interceptors() []Interceptor {
	return c.inters.WallsManga
}

func (c *WallsMangaClient) mutate(ctx context.Context, m *WallsMangaMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WallsMangaCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WallsMangaUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WallsMangaUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WallsMangaDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown WallsManga mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Book, BooksReview, Comic, ComicsReview, Game, GamesReview, Manga, MangasReview,
		User, WallsBook, WallsComic, WallsGame, WallsManga []ent.Hook
	}
	inters struct {
		Book, BooksReview, Comic, ComicsReview, Game, GamesReview, Manga, MangasReview,
		User, WallsBook, WallsComic, WallsGame, WallsManga []ent.Interceptor
	}
)
