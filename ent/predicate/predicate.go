// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Book is the predicate function for book builders.
type Book func(*sql.Selector)

// BooksReview is the predicate function for booksreview builders.
type BooksReview func(*sql.Selector)

// Comic is the predicate function for comic builders.
type Comic func(*sql.Selector)

// ComicsReview is the predicate function for comicsreview builders.
type ComicsReview func(*sql.Selector)

// Game is the predicate function for game builders.
type Game func(*sql.Selector)

// GamesReview is the predicate function for gamesreview builders.
type GamesReview func(*sql.Selector)

// Manga is the predicate function for manga builders.
type Manga func(*sql.Selector)

// MangasReview is the predicate function for mangasreview builders.
type MangasReview func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

// WallsBook is the predicate function for wallsbook builders.
type WallsBook func(*sql.Selector)

// WallsComic is the predicate function for wallscomic builders.
type WallsComic func(*sql.Selector)

// WallsGame is the predicate function for wallsgame builders.
type WallsGame func(*sql.Selector)

// WallsManga is the predicate function for wallsmanga builders.
type WallsManga func(*sql.Selector)
