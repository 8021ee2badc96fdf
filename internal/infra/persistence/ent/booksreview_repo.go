/*
 * @Description: 图书评测仓储实现
 * @Author: 安知鱼
 * @Date: 2025-09-05 09:12:44
 * @LastEditTime: 2025-10-22 14:21:08
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"
	"log"

	"github.com/anzhiyu-c/mediawall-app/ent"
	"github.com/anzhiyu-c/mediawall-app/ent/book"
	"github.com/anzhiyu-c/mediawall-app/ent/booksreview"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/repository"
	"github.com/anzhiyu-c/mediawall-app/pkg/idgen"
)

type booksReviewRepo struct {
	db *ent.Client
}

// NewBooksReviewRepo 是 booksReviewRepo 的构造函数。
func NewBooksReviewRepo(db *ent.Client) repository.ReviewRepository[*model.BooksReview] {
	return &booksReviewRepo{db: db}
}

// toModel 将 ent.BooksReview 转换为领域模型。
func (r *booksReviewRepo) toModel(e *ent.BooksReview, titles map[uint]string) *model.BooksReview {
	if e == nil {
		return nil
	}
	publicID, err := idgen.GeneratePublicID(e.ID, idgen.EntityTypeBooksReview)
	if err != nil {
		log.Printf("[严重错误] 生成图书评测公共ID失败: dbID=%d, error=%v", e.ID, err)
		panic(fmt.Sprintf("生成图书评测公共ID失败: dbID=%d, error=%v", e.ID, err))
	}
	articlePublicID, _ := idgen.GeneratePublicID(e.ArticleID, idgen.EntityTypeBook)
	return &model.BooksReview{
		ReviewCore: model.ReviewCore{
			ID:           publicID,
			Username:     e.Username,
			ArticleID:    articlePublicID,
			ArticleTitle: titles[e.ArticleID],
			Review:       e.Review,
			ReviewHTML:   e.ReviewHTML,
			Overall:      e.Overall,
			Art:          e.Art,
			Characters:   e.Characters,
			Story:        e.Story,
			Enjoyment:    e.Enjoyment,
			CreatedAt:    e.CreatedAt,
			UpdatedAt:    e.UpdatedAt,
		},
	}
}

// articleTitles 批量查询被评测图书的标题。
func (r *booksReviewRepo) articleTitles(ctx context.Context, dbIDs []uint) (map[uint]string, error) {
	if len(dbIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.Book.Query().
		Where(book.IDIn(dbIDs...)).
		Select(book.FieldID, book.FieldTitle).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询图书标题失败: %w", err)
	}
	titles := make(map[uint]string, len(rows))
	for _, row := range rows {
		titles[row.ID] = row.Title
	}
	return titles, nil
}

// resolveID 解码评测公共ID并校验实体类型。
func (r *booksReviewRepo) resolveID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeBooksReview {
		return 0, constant.ErrNotFound
	}
	return dbID, nil
}

// toModelSlice 批量转换实体并补全标题。
func (r *booksReviewRepo) toModelSlice(ctx context.Context, entities []*ent.BooksReview) ([]*model.BooksReview, error) {
	dbIDs := make([]uint, len(entities))
	for i, entity := range entities {
		dbIDs[i] = entity.ArticleID
	}
	titles, err := r.articleTitles(ctx, dbIDs)
	if err != nil {
		return nil, err
	}
	models := make([]*model.BooksReview, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity, titles)
	}
	return models, nil
}

// Create 创建一条图书评测。
// 同一用户对同一作品只能有一篇评测，由 (username, article_id) 唯一约束保证。
func (r *booksReviewRepo) Create(ctx context.Context, params *model.CreateReviewParams) (*model.BooksReview, error) {
	created, err := r.db.BooksReview.Create().
		SetUsername(params.Username).
		SetArticleID(params.ArticleDBID).
		SetReview(params.Review).
		SetReviewHTML(params.ReviewHTML).
		SetOverall(params.Overall).
		SetNillableArt(params.Art).
		SetNillableCharacters(params.Characters).
		SetNillableStory(params.Story).
		SetNillableEnjoyment(params.Enjoyment).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, constant.ErrReviewConflict
		}
		return nil, fmt.Errorf("创建图书评测失败: %w", err)
	}
	titles, err := r.articleTitles(ctx, []uint{created.ArticleID})
	if err != nil {
		return nil, err
	}
	return r.toModel(created, titles), nil
}

// GetByID 根据公共ID获取单条图书评测。
func (r *booksReviewRepo) GetByID(ctx context.Context, publicID string) (*model.BooksReview, error) {
	dbID, err := r.resolveID(publicID)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.BooksReview.Query().Where(booksreview.IDEQ(dbID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询图书评测失败: %w", err)
	}
	titles, err := r.articleTitles(ctx, []uint{entity.ArticleID})
	if err != nil {
		return nil, err
	}
	return r.toModel(entity, titles), nil
}

// ListByArticle 列出某图书的全部评测，新发表的在前。
func (r *booksReviewRepo) ListByArticle(ctx context.Context, articleDBID uint) ([]*model.BooksReview, error) {
	entities, err := r.db.BooksReview.Query().
		Where(booksreview.ArticleIDEQ(articleDBID)).
		Order(ent.Desc(booksreview.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询图书评测列表失败: %w", err)
	}
	return r.toModelSlice(ctx, entities)
}

// ListByUser 列出某用户发表的全部图书评测，新发表的在前。
func (r *booksReviewRepo) ListByUser(ctx context.Context, username string) ([]*model.BooksReview, error) {
	entities, err := r.db.BooksReview.Query().
		Where(booksreview.UsernameEQ(username)).
		Order(ent.Desc(booksreview.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询用户图书评测列表失败: %w", err)
	}
	return r.toModelSlice(ctx, entities)
}

// Update 部分更新一条图书评测，nil 字段不修改。
func (r *booksReviewRepo) Update(ctx context.Context, publicID string, params *model.UpdateReviewParams) (*model.BooksReview, error) {
	dbID, err := r.resolveID(publicID)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.BooksReview.Query().Where(booksreview.IDEQ(dbID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询图书评测失败: %w", err)
	}

	updater := entity.Update()
	if params.Review != nil {
		updater.SetReview(*params.Review)
	}
	if params.ReviewHTML != nil {
		updater.SetReviewHTML(*params.ReviewHTML)
	}
	if params.Overall != nil {
		updater.SetOverall(*params.Overall)
	}
	if params.Art != nil {
		updater.SetArt(*params.Art)
	}
	if params.Characters != nil {
		updater.SetCharacters(*params.Characters)
	}
	if params.Story != nil {
		updater.SetStory(*params.Story)
	}
	if params.Enjoyment != nil {
		updater.SetEnjoyment(*params.Enjoyment)
	}

	updated, err := updater.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("更新图书评测失败: %w", err)
	}
	titles, err := r.articleTitles(ctx, []uint{updated.ArticleID})
	if err != nil {
		return nil, err
	}
	return r.toModel(updated, titles), nil
}

// Delete 删除一条图书评测。
func (r *booksReviewRepo) Delete(ctx context.Context, publicID string) error {
	dbID, err := r.resolveID(publicID)
	if err != nil {
		return err
	}
	num, err := r.db.BooksReview.Delete().Where(booksreview.IDEQ(dbID)).Exec(ctx)
	if err != nil {
		return fmt.Errorf("删除图书评测失败: %w", err)
	}
	if num == 0 {
		return constant.ErrNotFound
	}
	return nil
}
