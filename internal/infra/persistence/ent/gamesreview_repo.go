/*
 * @Description: 游戏评测仓储实现
 * @Author: 安知鱼
 * @Date: 2025-09-05 10:22:09
 * @LastEditTime: 2025-10-22 14:24:50
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"
	"log"

	"github.com/anzhiyu-c/mediawall-app/ent"
	"github.com/anzhiyu-c/mediawall-app/ent/game"
	"github.com/anzhiyu-c/mediawall-app/ent/gamesreview"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/repository"
	"github.com/anzhiyu-c/mediawall-app/pkg/idgen"
)

type gamesReviewRepo struct {
	db *ent.Client
}

// NewGamesReviewRepo 是 gamesReviewRepo 的构造函数。
func NewGamesReviewRepo(db *ent.Client) repository.ReviewRepository[*model.GamesReview] {
	return &gamesReviewRepo{db: db}
}

// toModel 将 ent.GamesReview 转换为领域模型。
func (r *gamesReviewRepo) toModel(e *ent.GamesReview, titles map[uint]string) *model.GamesReview {
	if e == nil {
		return nil
	}
	publicID, err := idgen.GeneratePublicID(e.ID, idgen.EntityTypeGamesReview)
	if err != nil {
		log.Printf("[严重错误] 生成游戏评测公共ID失败: dbID=%d, error=%v", e.ID, err)
		panic(fmt.Sprintf("生成游戏评测公共ID失败: dbID=%d, error=%v", e.ID, err))
	}
	articlePublicID, _ := idgen.GeneratePublicID(e.ArticleID, idgen.EntityTypeGame)
	return &model.GamesReview{
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
		Graphics: e.Graphics,
		Music:    e.Music,
		Voicing:  e.Voicing,
	}
}

// articleTitles 批量查询被评测游戏的标题。
func (r *gamesReviewRepo) articleTitles(ctx context.Context, dbIDs []uint) (map[uint]string, error) {
	if len(dbIDs) == 0 {
		return nil, nil
	}
	rows, err := r.db.Game.Query().
		Where(game.IDIn(dbIDs...)).
		Select(game.FieldID, game.FieldTitle).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询游戏标题失败: %w", err)
	}
	titles := make(map[uint]string, len(rows))
	for _, row := range rows {
		titles[row.ID] = row.Title
	}
	return titles, nil
}

// resolveID 解码评测公共ID并校验实体类型。
func (r *gamesReviewRepo) resolveID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeGamesReview {
		return 0, constant.ErrNotFound
	}
	return dbID, nil
}

// toModelSlice 批量转换实体并补全标题。
func (r *gamesReviewRepo) toModelSlice(ctx context.Context, entities []*ent.GamesReview) ([]*model.GamesReview, error) {
	dbIDs := make([]uint, len(entities))
	for i, entity := range entities {
		dbIDs[i] = entity.ArticleID
	}
	titles, err := r.articleTitles(ctx, dbIDs)
	if err != nil {
		return nil, err
	}
	models := make([]*model.GamesReview, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity, titles)
	}
	return models, nil
}

// Create 创建一条游戏评测。
// 同一用户对同一作品只能有一篇评测，由 (username, article_id) 唯一约束保证。
func (r *gamesReviewRepo) Create(ctx context.Context, params *model.CreateReviewParams) (*model.GamesReview, error) {
	created, err := r.db.GamesReview.Create().
		SetUsername(params.Username).
		SetArticleID(params.ArticleDBID).
		SetReview(params.Review).
		SetReviewHTML(params.ReviewHTML).
		SetOverall(params.Overall).
		SetNillableArt(params.Art).
		SetNillableCharacters(params.Characters).
		SetNillableStory(params.Story).
		SetNillableEnjoyment(params.Enjoyment).
		SetNillableGraphics(params.Graphics).
		SetNillableMusic(params.Music).
		SetNillableVoicing(params.Voicing).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, constant.ErrReviewConflict
		}
		return nil, fmt.Errorf("创建游戏评测失败: %w", err)
	}
	titles, err := r.articleTitles(ctx, []uint{created.ArticleID})
	if err != nil {
		return nil, err
	}
	return r.toModel(created, titles), nil
}

// GetByID 根据公共ID获取单条游戏评测。
func (r *gamesReviewRepo) GetByID(ctx context.Context, publicID string) (*model.GamesReview, error) {
	dbID, err := r.resolveID(publicID)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.GamesReview.Query().Where(gamesreview.IDEQ(dbID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询游戏评测失败: %w", err)
	}
	titles, err := r.articleTitles(ctx, []uint{entity.ArticleID})
	if err != nil {
		return nil, err
	}
	return r.toModel(entity, titles), nil
}

// ListByArticle 列出某游戏的全部评测，新发表的在前。
func (r *gamesReviewRepo) ListByArticle(ctx context.Context, articleDBID uint) ([]*model.GamesReview, error) {
	entities, err := r.db.GamesReview.Query().
		Where(gamesreview.ArticleIDEQ(articleDBID)).
		Order(ent.Desc(gamesreview.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询游戏评测列表失败: %w", err)
	}
	return r.toModelSlice(ctx, entities)
}

// ListByUser 列出某用户发表的全部游戏评测，新发表的在前。
func (r *gamesReviewRepo) ListByUser(ctx context.Context, username string) ([]*model.GamesReview, error) {
	entities, err := r.db.GamesReview.Query().
		Where(gamesreview.UsernameEQ(username)).
		Order(ent.Desc(gamesreview.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询用户游戏评测列表失败: %w", err)
	}
	return r.toModelSlice(ctx, entities)
}

// Update 部分更新一条游戏评测，nil 字段不修改。
func (r *gamesReviewRepo) Update(ctx context.Context, publicID string, params *model.UpdateReviewParams) (*model.GamesReview, error) {
	dbID, err := r.resolveID(publicID)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.GamesReview.Query().Where(gamesreview.IDEQ(dbID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询游戏评测失败: %w", err)
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
	if params.Graphics != nil {
		updater.SetGraphics(*params.Graphics)
	}
	if params.Music != nil {
		updater.SetMusic(*params.Music)
	}
	if params.Voicing != nil {
		updater.SetVoicing(*params.Voicing)
	}

	updated, err := updater.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("更新游戏评测失败: %w", err)
	}
	titles, err := r.articleTitles(ctx, []uint{updated.ArticleID})
	if err != nil {
		return nil, err
	}
	return r.toModel(updated, titles), nil
}

// Delete 删除一条游戏评测。
func (r *gamesReviewRepo) Delete(ctx context.Context, publicID string) error {
	dbID, err := r.resolveID(publicID)
	if err != nil {
		return err
	}
	num, err := r.db.GamesReview.Delete().Where(gamesreview.IDEQ(dbID)).Exec(ctx)
	if err != nil {
		return fmt.Errorf("删除游戏评测失败: %w", err)
	}
	if num == 0 {
		return constant.ErrNotFound
	}
	return nil
}
