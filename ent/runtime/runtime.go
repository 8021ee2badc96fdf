// Code generated by ent, DO NOT EDIT.

package runtime

import (
	"time"

	"github.com/anzhiyu-c/mediawall-app/ent/book"
	"github.com/anzhiyu-c/mediawall-app/ent/booksreview"
	"github.com/anzhiyu-c/mediawall-app/ent/comic"
	"github.com/anzhiyu-c/mediawall-app/ent/comicsreview"
	"github.com/anzhiyu-c/mediawall-app/ent/game"
	"github.com/anzhiyu-c/mediawall-app/ent/gamesreview"
	"github.com/anzhiyu-c/mediawall-app/ent/manga"
	"github.com/anzhiyu-c/mediawall-app/ent/mangasreview"
	"github.com/anzhiyu-c/mediawall-app/ent/schema"
	"github.com/anzhiyu-c/mediawall-app/ent/user"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsbook"
	"github.com/anzhiyu-c/mediawall-app/ent/wallscomic"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsgame"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsmanga"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bookMixin := schema.Book{}.Mixin()
	bookMixinHooks0 := bookMixin[0].Hooks()
	book.Hooks[0] = bookMixinHooks0[0]
	bookMixinFields1 := bookMixin[1].Fields()
	_ = bookMixinFields1
	bookFields := schema.Book{}.Fields()
	_ = bookFields
	// bookDescCreatedAt is the schema descriptor for created_at field.
	bookDescCreatedAt := bookMixinFields1[0].Descriptor()
	// book.DefaultCreatedAt holds the default value on creation for the created_at field.
	book.DefaultCreatedAt = bookDescCreatedAt.Default.(func() time.Time)
	// bookDescUpdatedAt is the schema descriptor for updated_at field.
	bookDescUpdatedAt := bookMixinFields1[1].Descriptor()
	// book.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	book.DefaultUpdatedAt = bookDescUpdatedAt.Default.(func() time.Time)
	// book.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	book.UpdateDefaultUpdatedAt = bookDescUpdatedAt.UpdateDefault.(func() time.Time)
	// bookDescTitle is the schema descriptor for title field.
	bookDescTitle := bookMixinFields1[2].Descriptor()
	// book.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	book.TitleValidator = bookDescTitle.Validators[0].(func(string) error)
	// bookDescSlug is the schema descriptor for slug field.
	bookDescSlug := bookMixinFields1[3].Descriptor()
	// book.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	book.SlugValidator = bookDescSlug.Validators[0].(func(string) error)
	// bookDescDraft is the schema descriptor for draft field.
	bookDescDraft := bookMixinFields1[10].Descriptor()
	// book.DefaultDraft holds the default value on creation for the draft field.
	book.DefaultDraft = bookDescDraft.Default.(bool)
	// bookDescAccepted is the schema descriptor for accepted field.
	bookDescAccepted := bookMixinFields1[11].Descriptor()
	// book.DefaultAccepted holds the default value on creation for the accepted field.
	book.DefaultAccepted = bookDescAccepted.Default.(bool)
	// bookDescPages is the schema descriptor for pages field.
	bookDescPages := bookFields[1].Descriptor()
	// book.DefaultPages holds the default value on creation for the pages field.
	book.DefaultPages = bookDescPages.Default.(int)
	// book.PagesValidator is a validator for the "pages" field. It is called by the builders before save.
	book.PagesValidator = bookDescPages.Validators[0].(func(int) error)
	booksreviewMixin := schema.BooksReview{}.Mixin()
	booksreviewMixinFields0 := booksreviewMixin[0].Fields()
	_ = booksreviewMixinFields0
	booksreviewFields := schema.BooksReview{}.Fields()
	_ = booksreviewFields
	// booksreviewDescCreatedAt is the schema descriptor for created_at field.
	booksreviewDescCreatedAt := booksreviewMixinFields0[0].Descriptor()
	// booksreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	booksreview.DefaultCreatedAt = booksreviewDescCreatedAt.Default.(func() time.Time)
	// booksreviewDescUpdatedAt is the schema descriptor for updated_at field.
	booksreviewDescUpdatedAt := booksreviewMixinFields0[1].Descriptor()
	// booksreview.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	booksreview.DefaultUpdatedAt = booksreviewDescUpdatedAt.Default.(func() time.Time)
	// booksreview.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	booksreview.UpdateDefaultUpdatedAt = booksreviewDescUpdatedAt.UpdateDefault.(func() time.Time)
	// booksreviewDescUsername is the schema descriptor for username field.
	booksreviewDescUsername := booksreviewMixinFields0[2].Descriptor()
	// booksreview.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	booksreview.UsernameValidator = booksreviewDescUsername.Validators[0].(func(string) error)
	// booksreviewDescReview is the schema descriptor for review field.
	booksreviewDescReview := booksreviewMixinFields0[4].Descriptor()
	// booksreview.ReviewValidator is a validator for the "review" field. It is called by the builders before save.
	booksreview.ReviewValidator = booksreviewDescReview.Validators[0].(func(string) error)
	comicMixin := schema.Comic{}.Mixin()
	comicMixinHooks0 := comicMixin[0].Hooks()
	comic.Hooks[0] = comicMixinHooks0[0]
	comicMixinFields1 := comicMixin[1].Fields()
	_ = comicMixinFields1
	comicFields := schema.Comic{}.Fields()
	_ = comicFields
	// comicDescCreatedAt is the schema descriptor for created_at field.
	comicDescCreatedAt := comicMixinFields1[0].Descriptor()
	// comic.DefaultCreatedAt holds the default value on creation for the created_at field.
	comic.DefaultCreatedAt = comicDescCreatedAt.Default.(func() time.Time)
	// comicDescUpdatedAt is the schema descriptor for updated_at field.
	comicDescUpdatedAt := comicMixinFields1[1].Descriptor()
	// comic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	comic.DefaultUpdatedAt = comicDescUpdatedAt.Default.(func() time.Time)
	// comic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	comic.UpdateDefaultUpdatedAt = comicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// comicDescTitle is the schema descriptor for title field.
	comicDescTitle := comicMixinFields1[2].Descriptor()
	// comic.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	comic.TitleValidator = comicDescTitle.Validators[0].(func(string) error)
	// comicDescSlug is the schema descriptor for slug field.
	comicDescSlug := comicMixinFields1[3].Descriptor()
	// comic.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	comic.SlugValidator = comicDescSlug.Validators[0].(func(string) error)
	// comicDescDraft is the schema descriptor for draft field.
	comicDescDraft := comicMixinFields1[10].Descriptor()
	// comic.DefaultDraft holds the default value on creation for the draft field.
	comic.DefaultDraft = comicDescDraft.Default.(bool)
	// comicDescAccepted is the schema descriptor for accepted field.
	comicDescAccepted := comicMixinFields1[11].Descriptor()
	// comic.DefaultAccepted holds the default value on creation for the accepted field.
	comic.DefaultAccepted = comicDescAccepted.Default.(bool)
	// comicDescIssues is the schema descriptor for issues field.
	comicDescIssues := comicFields[1].Descriptor()
	// comic.DefaultIssues holds the default value on creation for the issues field.
	comic.DefaultIssues = comicDescIssues.Default.(int)
	// comic.IssuesValidator is a validator for the "issues" field. It is called by the builders before save.
	comic.IssuesValidator = comicDescIssues.Validators[0].(func(int) error)
	comicsreviewMixin := schema.ComicsReview{}.Mixin()
	comicsreviewMixinFields0 := comicsreviewMixin[0].Fields()
	_ = comicsreviewMixinFields0
	comicsreviewFields := schema.ComicsReview{}.Fields()
	_ = comicsreviewFields
	// comicsreviewDescCreatedAt is the schema descriptor for created_at field.
	comicsreviewDescCreatedAt := comicsreviewMixinFields0[0].Descriptor()
	// comicsreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	comicsreview.DefaultCreatedAt = comicsreviewDescCreatedAt.Default.(func() time.Time)
	// comicsreviewDescUpdatedAt is the schema descriptor for updated_at field.
	comicsreviewDescUpdatedAt := comicsreviewMixinFields0[1].Descriptor()
	// comicsreview.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	comicsreview.DefaultUpdatedAt = comicsreviewDescUpdatedAt.Default.(func() time.Time)
	// comicsreview.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	comicsreview.UpdateDefaultUpdatedAt = comicsreviewDescUpdatedAt.UpdateDefault.(func() time.Time)
	// comicsreviewDescUsername is the schema descriptor for username field.
	comicsreviewDescUsername := comicsreviewMixinFields0[2].Descriptor()
	// comicsreview.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	comicsreview.UsernameValidator = comicsreviewDescUsername.Validators[0].(func(string) error)
	// comicsreviewDescReview is the schema descriptor for review field.
	comicsreviewDescReview := comicsreviewMixinFields0[4].Descriptor()
	// comicsreview.ReviewValidator is a validator for the "review" field. It is called by the builders before save.
	comicsreview.ReviewValidator = comicsreviewDescReview.Validators[0].(func(string) error)
	gameMixin := schema.Game{}.Mixin()
	gameMixinHooks0 := gameMixin[0].Hooks()
	game.Hooks[0] = gameMixinHooks0[0]
	gameMixinFields1 := gameMixin[1].Fields()
	_ = gameMixinFields1
	gameFields := schema.Game{}.Fields()
	_ = gameFields
	// gameDescCreatedAt is the schema descriptor for created_at field.
	gameDescCreatedAt := gameMixinFields1[0].Descriptor()
	// game.DefaultCreatedAt holds the default value on creation for the created_at field.
	game.DefaultCreatedAt = gameDescCreatedAt.Default.(func() time.Time)
	// gameDescUpdatedAt is the schema descriptor for updated_at field.
	gameDescUpdatedAt := gameMixinFields1[1].Descriptor()
	// game.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	game.DefaultUpdatedAt = gameDescUpdatedAt.Default.(func() time.Time)
	// game.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	game.UpdateDefaultUpdatedAt = gameDescUpdatedAt.UpdateDefault.(func() time.Time)
	// gameDescTitle is the schema descriptor for title field.
	gameDescTitle := gameMixinFields1[2].Descriptor()
	// game.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	game.TitleValidator = gameDescTitle.Validators[0].(func(string) error)
	// gameDescSlug is the schema descriptor for slug field.
	gameDescSlug := gameMixinFields1[3].Descriptor()
	// game.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	game.SlugValidator = gameDescSlug.Validators[0].(func(string) error)
	// gameDescDraft is the schema descriptor for draft field.
	gameDescDraft := gameMixinFields1[10].Descriptor()
	// game.DefaultDraft holds the default value on creation for the draft field.
	game.DefaultDraft = gameDescDraft.Default.(bool)
	// gameDescAccepted is the schema descriptor for accepted field.
	gameDescAccepted := gameMixinFields1[11].Descriptor()
	// game.DefaultAccepted holds the default value on creation for the accepted field.
	game.DefaultAccepted = gameDescAccepted.Default.(bool)
	// gameDescCompleteTime is the schema descriptor for complete_time field.
	gameDescCompleteTime := gameFields[3].Descriptor()
	// game.DefaultCompleteTime holds the default value on creation for the complete_time field.
	game.DefaultCompleteTime = gameDescCompleteTime.Default.(int)
	// game.CompleteTimeValidator is a validator for the "complete_time" field. It is called by the builders before save.
	game.CompleteTimeValidator = gameDescCompleteTime.Validators[0].(func(int) error)
	gamesreviewMixin := schema.GamesReview{}.Mixin()
	gamesreviewMixinFields0 := gamesreviewMixin[0].Fields()
	_ = gamesreviewMixinFields0
	gamesreviewFields := schema.GamesReview{}.Fields()
	_ = gamesreviewFields
	// gamesreviewDescCreatedAt is the schema descriptor for created_at field.
	gamesreviewDescCreatedAt := gamesreviewMixinFields0[0].Descriptor()
	// gamesreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	gamesreview.DefaultCreatedAt = gamesreviewDescCreatedAt.Default.(func() time.Time)
	// gamesreviewDescUpdatedAt is the schema descriptor for updated_at field.
	gamesreviewDescUpdatedAt := gamesreviewMixinFields0[1].Descriptor()
	// gamesreview.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	gamesreview.DefaultUpdatedAt = gamesreviewDescUpdatedAt.Default.(func() time.Time)
	// gamesreview.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	gamesreview.UpdateDefaultUpdatedAt = gamesreviewDescUpdatedAt.UpdateDefault.(func() time.Time)
	// gamesreviewDescUsername is the schema descriptor for username field.
	gamesreviewDescUsername := gamesreviewMixinFields0[2].Descriptor()
	// gamesreview.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	gamesreview.UsernameValidator = gamesreviewDescUsername.Validators[0].(func(string) error)
	// gamesreviewDescReview is the schema descriptor for review field.
	gamesreviewDescReview := gamesreviewMixinFields0[4].Descriptor()
	// gamesreview.ReviewValidator is a validator for the "review" field. It is called by the builders before save.
	gamesreview.ReviewValidator = gamesreviewDescReview.Validators[0].(func(string) error)
	mangaMixin := schema.Manga{}.Mixin()
	mangaMixinHooks0 := mangaMixin[0].Hooks()
	manga.Hooks[0] = mangaMixinHooks0[0]
	mangaMixinFields1 := mangaMixin[1].Fields()
	_ = mangaMixinFields1
	mangaFields := schema.Manga{}.Fields()
	_ = mangaFields
	// mangaDescCreatedAt is the schema descriptor for created_at field.
	mangaDescCreatedAt := mangaMixinFields1[0].Descriptor()
	// manga.DefaultCreatedAt holds the default value on creation for the created_at field.
	manga.DefaultCreatedAt = mangaDescCreatedAt.Default.(func() time.Time)
	// mangaDescUpdatedAt is the schema descriptor for updated_at field.
	mangaDescUpdatedAt := mangaMixinFields1[1].Descriptor()
	// manga.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	manga.DefaultUpdatedAt = mangaDescUpdatedAt.Default.(func() time.Time)
	// manga.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	manga.UpdateDefaultUpdatedAt = mangaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mangaDescTitle is the schema descriptor for title field.
	mangaDescTitle := mangaMixinFields1[2].Descriptor()
	// manga.TitleValidator is a validator for the "title" field. It is called by the builders before save.
	manga.TitleValidator = mangaDescTitle.Validators[0].(func(string) error)
	// mangaDescSlug is the schema descriptor for slug field.
	mangaDescSlug := mangaMixinFields1[3].Descriptor()
	// manga.SlugValidator is a validator for the "slug" field. It is called by the builders before save.
	manga.SlugValidator = mangaDescSlug.Validators[0].(func(string) error)
	// mangaDescDraft is the schema descriptor for draft field.
	mangaDescDraft := mangaMixinFields1[10].Descriptor()
	// manga.DefaultDraft holds the default value on creation for the draft field.
	manga.DefaultDraft = mangaDescDraft.Default.(bool)
	// mangaDescAccepted is the schema descriptor for accepted field.
	mangaDescAccepted := mangaMixinFields1[11].Descriptor()
	// manga.DefaultAccepted holds the default value on creation for the accepted field.
	manga.DefaultAccepted = mangaDescAccepted.Default.(bool)
	// mangaDescVolumes is the schema descriptor for volumes field.
	mangaDescVolumes := mangaFields[1].Descriptor()
	// manga.DefaultVolumes holds the default value on creation for the volumes field.
	manga.DefaultVolumes = mangaDescVolumes.Default.(int)
	// manga.VolumesValidator is a validator for the "volumes" field. It is called by the builders before save.
	manga.VolumesValidator = mangaDescVolumes.Validators[0].(func(int) error)
	// mangaDescChapters is the schema descriptor for chapters field.
	mangaDescChapters := mangaFields[2].Descriptor()
	// manga.DefaultChapters holds the default value on creation for the chapters field.
	manga.DefaultChapters = mangaDescChapters.Default.(int)
	// manga.ChaptersValidator is a validator for the "chapters" field. It is called by the builders before save.
	manga.ChaptersValidator = mangaDescChapters.Validators[0].(func(int) error)
	mangasreviewMixin := schema.MangasReview{}.Mixin()
	mangasreviewMixinFields0 := mangasreviewMixin[0].Fields()
	_ = mangasreviewMixinFields0
	mangasreviewFields := schema.MangasReview{}.Fields()
	_ = mangasreviewFields
	// mangasreviewDescCreatedAt is the schema descriptor for created_at field.
	mangasreviewDescCreatedAt := mangasreviewMixinFields0[0].Descriptor()
	// mangasreview.DefaultCreatedAt holds the default value on creation for the created_at field.
	mangasreview.DefaultCreatedAt = mangasreviewDescCreatedAt.Default.(func() time.Time)
	// mangasreviewDescUpdatedAt is the schema descriptor for updated_at field.
	mangasreviewDescUpdatedAt := mangasreviewMixinFields0[1].Descriptor()
	// mangasreview.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	mangasreview.DefaultUpdatedAt = mangasreviewDescUpdatedAt.Default.(func() time.Time)
	// mangasreview.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	mangasreview.UpdateDefaultUpdatedAt = mangasreviewDescUpdatedAt.UpdateDefault.(func() time.Time)
	// mangasreviewDescUsername is the schema descriptor for username field.
	mangasreviewDescUsername := mangasreviewMixinFields0[2].Descriptor()
	// mangasreview.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	mangasreview.UsernameValidator = mangasreviewDescUsername.Validators[0].(func(string) error)
	// mangasreviewDescReview is the schema descriptor for review field.
	mangasreviewDescReview := mangasreviewMixinFields0[4].Descriptor()
	// mangasreview.ReviewValidator is a validator for the "review" field. It is called by the builders before save.
	mangasreview.ReviewValidator = mangasreviewDescReview.Validators[0].(func(string) error)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[1].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[2].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
	// userDescUsername is the schema descriptor for username field.
	userDescUsername := userFields[3].Descriptor()
	// user.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	user.UsernameValidator = func() func(string) error {
		validators := userDescUsername.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(username string) error {
			for _, fn := range fns {
				if err := fn(username); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescEmail is the schema descriptor for email field.
	userDescEmail := userFields[4].Descriptor()
	// user.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	user.EmailValidator = func() func(string) error {
		validators := userDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescPasswordHash is the schema descriptor for password_hash field.
	userDescPasswordHash := userFields[5].Descriptor()
	// user.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	user.PasswordHashValidator = func() func(string) error {
		validators := userDescPasswordHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(password_hash string) error {
			for _, fn := range fns {
				if err := fn(password_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// userDescBlocked is the schema descriptor for blocked field.
	userDescBlocked := userFields[7].Descriptor()
	// user.DefaultBlocked holds the default value on creation for the blocked field.
	user.DefaultBlocked = userDescBlocked.Default.(bool)
	// userDescEnabled is the schema descriptor for enabled field.
	userDescEnabled := userFields[8].Descriptor()
	// user.DefaultEnabled holds the default value on creation for the enabled field.
	user.DefaultEnabled = userDescEnabled.Default.(bool)
	// userDescContributionPoints is the schema descriptor for contribution_points field.
	userDescContributionPoints := userFields[10].Descriptor()
	// user.DefaultContributionPoints holds the default value on creation for the contribution_points field.
	user.DefaultContributionPoints = userDescContributionPoints.Default.(int)
	// user.ContributionPointsValidator is a validator for the "contribution_points" field. It is called by the builders before save.
	user.ContributionPointsValidator = userDescContributionPoints.Validators[0].(func(int) error)
	wallsbookMixin := schema.WallsBook{}.Mixin()
	wallsbookMixinFields0 := wallsbookMixin[0].Fields()
	_ = wallsbookMixinFields0
	wallsbookFields := schema.WallsBook{}.Fields()
	_ = wallsbookFields
	// wallsbookDescCreatedAt is the schema descriptor for created_at field.
	wallsbookDescCreatedAt := wallsbookMixinFields0[0].Descriptor()
	// wallsbook.DefaultCreatedAt holds the default value on creation for the created_at field.
	wallsbook.DefaultCreatedAt = wallsbookDescCreatedAt.Default.(func() time.Time)
	// wallsbookDescUpdatedAt is the schema descriptor for updated_at field.
	wallsbookDescUpdatedAt := wallsbookMixinFields0[1].Descriptor()
	// wallsbook.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	wallsbook.DefaultUpdatedAt = wallsbookDescUpdatedAt.Default.(func() time.Time)
	// wallsbook.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	wallsbook.UpdateDefaultUpdatedAt = wallsbookDescUpdatedAt.UpdateDefault.(func() time.Time)
	// wallsbookDescUsername is the schema descriptor for username field.
	wallsbookDescUsername := wallsbookMixinFields0[2].Descriptor()
	// wallsbook.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	wallsbook.UsernameValidator = wallsbookDescUsername.Validators[0].(func(string) error)
	// wallsbookDescPages is the schema descriptor for pages field.
	wallsbookDescPages := wallsbookFields[1].Descriptor()
	// wallsbook.DefaultPages holds the default value on creation for the pages field.
	wallsbook.DefaultPages = wallsbookDescPages.Default.(int)
	// wallsbook.PagesValidator is a validator for the "pages" field. It is called by the builders before save.
	wallsbook.PagesValidator = wallsbookDescPages.Validators[0].(func(int) error)
	wallscomicMixin := schema.WallsComic{}.Mixin()
	wallscomicMixinFields0 := wallscomicMixin[0].Fields()
	_ = wallscomicMixinFields0
	wallscomicFields := schema.WallsComic{}.Fields()
	_ = wallscomicFields
	// wallscomicDescCreatedAt is the schema descriptor for created_at field.
	wallscomicDescCreatedAt := wallscomicMixinFields0[0].Descriptor()
	// wallscomic.DefaultCreatedAt holds the default value on creation for the created_at field.
	wallscomic.DefaultCreatedAt = wallscomicDescCreatedAt.Default.(func() time.Time)
	// wallscomicDescUpdatedAt is the schema descriptor for updated_at field.
	wallscomicDescUpdatedAt := wallscomicMixinFields0[1].Descriptor()
	// wallscomic.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	wallscomic.DefaultUpdatedAt = wallscomicDescUpdatedAt.Default.(func() time.Time)
	// wallscomic.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	wallscomic.UpdateDefaultUpdatedAt = wallscomicDescUpdatedAt.UpdateDefault.(func() time.Time)
	// wallscomicDescUsername is the schema descriptor for username field.
	wallscomicDescUsername := wallscomicMixinFields0[2].Descriptor()
	// wallscomic.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	wallscomic.UsernameValidator = wallscomicDescUsername.Validators[0].(func(string) error)
	// wallscomicDescIssues is the schema descriptor for issues field.
	wallscomicDescIssues := wallscomicFields[1].Descriptor()
	// wallscomic.DefaultIssues holds the default value on creation for the issues field.
	wallscomic.DefaultIssues = wallscomicDescIssues.Default.(int)
	// wallscomic.IssuesValidator is a validator for the "issues" field. It is called by the builders before save.
	wallscomic.IssuesValidator = wallscomicDescIssues.Validators[0].(func(int) error)
	wallsgameMixin := schema.WallsGame{}.Mixin()
	wallsgameMixinFields0 := wallsgameMixin[0].Fields()
	_ = wallsgameMixinFields0
	wallsgameFields := schema.WallsGame{}.Fields()
	_ = wallsgameFields
	// wallsgameDescCreatedAt is the schema descriptor for created_at field.
	wallsgameDescCreatedAt := wallsgameMixinFields0[0].Descriptor()
	// wallsgame.DefaultCreatedAt holds the default value on creation for the created_at field.
	wallsgame.DefaultCreatedAt = wallsgameDescCreatedAt.Default.(func() time.Time)
	// wallsgameDescUpdatedAt is the schema descriptor for updated_at field.
	wallsgameDescUpdatedAt := wallsgameMixinFields0[1].Descriptor()
	// wallsgame.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	wallsgame.DefaultUpdatedAt = wallsgameDescUpdatedAt.Default.(func() time.Time)
	// wallsgame.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	wallsgame.UpdateDefaultUpdatedAt = wallsgameDescUpdatedAt.UpdateDefault.(func() time.Time)
	// wallsgameDescUsername is the schema descriptor for username field.
	wallsgameDescUsername := wallsgameMixinFields0[2].Descriptor()
	// wallsgame.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	wallsgame.UsernameValidator = wallsgameDescUsername.Validators[0].(func(string) error)
	// wallsgameDescHoursPlayed is the schema descriptor for hours_played field.
	wallsgameDescHoursPlayed := wallsgameFields[1].Descriptor()
	// wallsgame.DefaultHoursPlayed holds the default value on creation for the hours_played field.
	wallsgame.DefaultHoursPlayed = wallsgameDescHoursPlayed.Default.(int)
	// wallsgame.HoursPlayedValidator is a validator for the "hours_played" field. It is called by the builders before save.
	wallsgame.HoursPlayedValidator = wallsgameDescHoursPlayed.Validators[0].(func(int) error)
	wallsmangaMixin := schema.WallsManga{}.Mixin()
	wallsmangaMixinFields0 := wallsmangaMixin[0].Fields()
	_ = wallsmangaMixinFields0
	wallsmangaFields := schema.WallsManga{}.Fields()
	_ = wallsmangaFields
	// wallsmangaDescCreatedAt is the schema descriptor for created_at field.
	wallsmangaDescCreatedAt := wallsmangaMixinFields0[0].Descriptor()
	// wallsmanga.DefaultCreatedAt holds the default value on creation for the created_at field.
	wallsmanga.DefaultCreatedAt = wallsmangaDescCreatedAt.Default.(func() time.Time)
	// wallsmangaDescUpdatedAt is the schema descriptor for updated_at field.
	wallsmangaDescUpdatedAt := wallsmangaMixinFields0[1].Descriptor()
	// wallsmanga.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	wallsmanga.DefaultUpdatedAt = wallsmangaDescUpdatedAt.Default.(func() time.Time)
	// wallsmanga.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	wallsmanga.UpdateDefaultUpdatedAt = wallsmangaDescUpdatedAt.UpdateDefault.(func() time.Time)
	// wallsmangaDescUsername is the schema descriptor for username field.
	wallsmangaDescUsername := wallsmangaMixinFields0[2].Descriptor()
	// wallsmanga.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	wallsmanga.UsernameValidator = wallsmangaDescUsername.Validators[0].(func(string) error)
	// wallsmangaDescVolumes is the schema descriptor for volumes field.
	wallsmangaDescVolumes := wallsmangaFields[1].Descriptor()
	// wallsmanga.DefaultVolumes holds the default value on creation for the volumes field.
	wallsmanga.DefaultVolumes = wallsmangaDescVolumes.Default.(int)
	// wallsmanga.VolumesValidator is a validator for the "volumes" field. It is called by the builders before save.
	wallsmanga.VolumesValidator = wallsmangaDescVolumes.Validators[0].(func(int) error)
	// wallsmangaDescChapters is the schema descriptor for chapters field.
	wallsmangaDescChapters := wallsmangaFields[2].Descriptor()
	// wallsmanga.DefaultChapters holds the default value on creation for the chapters field.
	wallsmanga.DefaultChapters = wallsmangaDescChapters.Default.(int)
	// wallsmanga.ChaptersValidator is a validator for the "chapters" field. It is called by the builders before save.
	wallsmanga.ChaptersValidator = wallsmangaDescChapters.Validators[0].(func(int) error)
}

const (
	Version = "v0.14.4"                                         // Version of ent codegen.
	Sum     = "h1:/DhDraSLXIkBhyiVoJeSshr4ZYi7femzhj6/TckzZuI=" // Sum of ent codegen.
)
