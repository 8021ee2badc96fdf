/*
 * @Description: 漫画评测仓储实现
 * @Author: 安知鱼
 * @Date: 2025-09-05 09:50:31
 * @LastEditTime: 2025-10-22 14:22:37
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"
	"log"

	"github.com/anzhiyu-c/mediawall-app/ent"
	"github.com/anzhiyu-c/mediawall-app/ent/comic"
	"github.com/anzhiyu-c/mediawall-app/ent/comicsreview"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/repository"
	"github.com/anzhiyu-c/mediawall-app/pkg/idgen"
)

type comicsReviewRepo struct {
	db *ent.Client
}

// NewComicsReviewRepo 是 comicsReviewRepo 的构造函数。
func NewComicsReviewRepo(db *ent.Client) repository.ReviewRepository[*model.ComicsReview] {
	return &comicsReviewRepo{db: db}
}

// toModel 将 ent.ComicsReview 转换为领域模型。
func (r *comicsReviewRepo) toModel(e *ent.ComicsReview, titles map[uint]string) *model.ComicsReview {
	if e == nil {
		return nil
	}
	publicID, err := idgen.GeneratePublicID(e.ID, idgen.EntityTypeComicsReview)
	if err != nil {
		log.Printf("[严重错误] 生成漫画评测公共ID失败: dbID=%d, error=%v", e.ID, err)
		panic(fmt.Sprintf("生成漫画评测公共ID失败: dbID=%d, error=%v", e.ID, err))
	}
	articlePublicID, _ := idgen.GeneratePublicID(e.ArticleID, idgen.EntityTypeComic)
	return &model.ComicsReview{
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

// articleTitles 批量查询被评测漫画的标题。
func (r *comicsReviewRepo) articleTitles(ctx context.Context, dbIDs []uint) (map[uint]string, error) {
	if len(dbIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.Comic.Query().
		Where(comic.IDIn(dbIDs...)).
		Select(comic.FieldID, comic.FieldTitle).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询漫画标题失败: %w", err)
	}
	titles := make(map[uint]string, len(rows))
	for _, row := range rows {
		titles[row.ID] = row.Title
	}
	return titles, nil
}

// resolveID 解码评测公共ID并校验实体类型。
func (r *comicsReviewRepo) resolveID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeComicsReview {
		return 0, constant.ErrNotFound
	}
	return dbID, nil
}

// toModelSlice 批量转换实体并补全标题。
func (r *comicsReviewRepo) toModelSlice(ctx context.Context, entities []*ent.ComicsReview) ([]*model.ComicsReview, error) {
	dbIDs := make([]uint, len(entities))
	for i, entity := range entities {
		dbIDs[i] = entity.ArticleID
	}
	titles, err := r.articleTitles(ctx, dbIDs)
	if err != nil {
		return nil, err
	}
	models := make([]*model.ComicsReview, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity, titles)
	}
	return models, nil
}

// Create 创建一条漫画评测。
// 同一用户对同一作品只能有一篇评测，由 (username, article_id) 唯一约束保证。
func (r *comicsReviewRepo) Create(ctx context.Context, params *model.CreateReviewParams) (*model.ComicsReview, error) {
	created, err := r.db.ComicsReview.Create().
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
		return nil, fmt.Errorf("创建漫画评测失败: %w", err)
	}
	titles, err := r.articleTitles(ctx, []uint{created.ArticleID})
	if err != nil {
		return nil, err
	}
	return r.toModel(created, titles), nil
}

// GetByID 根据公共ID获取单条漫画评测。
func (r *comicsReviewRepo) GetByID(ctx context.Context, publicID string) (*model.ComicsReview, error) {
	dbID, err := r.resolveID(publicID)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.ComicsReview.Query().Where(comicsreview.IDEQ(dbID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询漫画评测失败: %w", err)
	}
	titles, err := r.articleTitles(ctx, []uint{entity.ArticleID})
	if err != nil {
		return nil, err
	}
	return r.toModel(entity, titles), nil
}

// ListByArticle 列出某漫画的全部评测，新发表的在前。
func (r *comicsReviewRepo) ListByArticle(ctx context.Context, articleDBID uint) ([]*model.ComicsReview, error) {
	entities, err := r.db.ComicsReview.Query().
		Where(comicsreview.ArticleIDEQ(articleDBID)).
		Order(ent.Desc(comicsreview.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询漫画评测列表失败: %w", err)
	}
	return r.toModelSlice(ctx, entities)
}

// ListByUser 列出某用户发表的全部漫画评测，新发表的在前。
func (r *comicsReviewRepo) ListByUser(ctx context.Context, username string) ([]*model.ComicsReview, error) {
	entities, err := r.db.ComicsReview.Query().
		Where(comicsreview.UsernameEQ(username)).
		Order(ent.Desc(comicsreview.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询用户漫画评测列表失败: %w", err)
	}
	return r.toModelSlice(ctx, entities)
}

// Update 部分更新一条漫画评测，nil 字段不修改。
func (r *comicsReviewRepo) Update(ctx context.Context, publicID string, params *model.UpdateReviewParams) (*model.ComicsReview, error) {
	dbID, err := r.resolveID(publicID)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.ComicsReview.Query().Where(comicsreview.IDEQ(dbID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询漫画评测失败: %w", err)
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
		return nil, fmt.Errorf("更新漫画评测失败: %w", err)
	}
	titles, err := r.articleTitles(ctx, []uint{updated.ArticleID})
	if err != nil {
		return nil, err
	}
	return r.toModel(updated, titles), nil
}

// Delete 删除一条漫画评测。
func (r *comicsReviewRepo) Delete(ctx context.Context, publicID string) error {
	dbID, err := r.resolveID(publicID)
	if err != nil {
		return err
	}
	num, err := r.db.ComicsReview.Delete().Where(comicsreview.IDEQ(dbID)).Exec(ctx)
	if err != nil {
		return fmt.Errorf("删除漫画评测失败: %w", err)
	}
	if num == 0 {
		return constant.ErrNotFound
	}
	return nil
}
