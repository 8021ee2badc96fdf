/*
 * @Description: 游戏追踪墙仓储实现
 * @Author: 安知鱼
 * @Date: 2025-09-04 10:41:30
 * @LastEditTime: 2025-10-22 11:05:48
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"
	"log"

	"github.com/anzhiyu-c/mediawall-app/ent"
	"github.com/anzhiyu-c/mediawall-app/ent/game"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsgame"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/repository"
	"github.com/anzhiyu-c/mediawall-app/pkg/idgen"
)

type wallsGameRepo struct {
	db *ent.Client
}

// NewWallsGameRepo 是 wallsGameRepo 的构造函数。
func NewWallsGameRepo(db *ent.Client) repository.WallRepository[*model.WallsGame] {
	return &wallsGameRepo{db: db}
}

// toModel 将 ent.WallsGame 转换为领域模型。
// ArticleID 字段对外以游戏的公共标识符呈现，标题从 titles 冗余补全。
func (r *wallsGameRepo) toModel(w *ent.WallsGame, titles map[uint]string) *model.WallsGame {
	if w == nil {
		return nil
	}
	publicID, err := idgen.GeneratePublicID(w.ID, idgen.EntityTypeWallsGame)
	if err != nil {
		log.Printf("[严重错误] 生成游戏追踪记录公共ID失败: dbID=%d, error=%v", w.ID, err)
		panic(fmt.Sprintf("生成游戏追踪记录公共ID失败: dbID=%d, error=%v", w.ID, err))
	}
	articlePublicID, _ := idgen.GeneratePublicID(w.ArticleID, idgen.EntityTypeGame)
	return &model.WallsGame{
		WallCore: model.WallCore{
			ID:           publicID,
			Username:     w.Username,
			ArticleID:    articlePublicID,
			ArticleTitle: titles[w.ArticleID],
			Status:       string(w.Status),
			Score:        w.Score,
			StartedAt:    w.StartedAt,
			FinishedAt:   w.FinishedAt,
			UpdatedAt:    w.UpdatedAt,
		},
		HoursPlayed: w.HoursPlayed,
	}
}

// articleTitles 批量查询被追踪游戏的标题，已软删除的作品标题留空。
func (r *wallsGameRepo) articleTitles(ctx context.Context, dbIDs []uint) (map[uint]string, error) {
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

// resolveID 解码记录公共ID并校验实体类型。
func (r *wallsGameRepo) resolveID(publicID string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(publicID)
	if err != nil || entityType != idgen.EntityTypeWallsGame {
		return 0, constant.ErrNotFound
	}
	return dbID, nil
}

// Create 创建一条游戏追踪记录。
// 同一用户对同一作品的重复追踪由 (username, article_id) 唯一约束拦截。
func (r *wallsGameRepo) Create(ctx context.Context, params *model.CreateWallParams) (*model.WallsGame, error) {
	created, err := r.db.WallsGame.Create().
		SetUsername(params.Username).
		SetArticleID(params.ArticleDBID).
		SetStatus(wallsgame.Status(params.Status)).
		SetNillableScore(params.Score).
		SetNillableStartedAt(params.StartedAt).
		SetNillableFinishedAt(params.FinishedAt).
		SetHoursPlayed(params.HoursPlayed).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, constant.ErrWallConflict
		}
		return nil, fmt.Errorf("创建游戏追踪记录失败: %w", err)
	}
	titles, err := r.articleTitles(ctx, []uint{created.ArticleID})
	if err != nil {
		return nil, err
	}
	return r.toModel(created, titles), nil
}

// GetByID 根据公共ID获取单条游戏追踪记录。
func (r *wallsGameRepo) GetByID(ctx context.Context, publicID string) (*model.WallsGame, error) {
	dbID, err := r.resolveID(publicID)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.WallsGame.Query().Where(wallsgame.IDEQ(dbID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询游戏追踪记录失败: %w", err)
	}
	titles, err := r.articleTitles(ctx, []uint{entity.ArticleID})
	if err != nil {
		return nil, err
	}
	return r.toModel(entity, titles), nil
}

// ListByUser 列出某用户的全部游戏追踪记录，最近更新的在前。
func (r *wallsGameRepo) ListByUser(ctx context.Context, username string) ([]*model.WallsGame, error) {
	entities, err := r.db.WallsGame.Query().
		Where(wallsgame.UsernameEQ(username)).
		Order(ent.Desc(wallsgame.FieldUpdatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询用户游戏追踪列表失败: %w", err)
	}
	dbIDs := make([]uint, len(entities))
	for i, entity := range entities {
		dbIDs[i] = entity.ArticleID
	}
	titles, err := r.articleTitles(ctx, dbIDs)
	if err != nil {
		return nil, err
	}
	models := make([]*model.WallsGame, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity, titles)
	}
	return models, nil
}

// FindStatus 返回某用户对某游戏的追踪状态，无记录时返回空字符串。
func (r *wallsGameRepo) FindStatus(ctx context.Context, username string, articleDBID uint) (string, error) {
	entity, err := r.db.WallsGame.Query().
		Where(wallsgame.UsernameEQ(username), wallsgame.ArticleIDEQ(articleDBID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("查询游戏追踪状态失败: %w", err)
	}
	return string(entity.Status), nil
}

// Update 部分更新一条游戏追踪记录，nil 字段不修改。
func (r *wallsGameRepo) Update(ctx context.Context, publicID string, params *model.UpdateWallParams) (*model.WallsGame, error) {
	dbID, err := r.resolveID(publicID)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.WallsGame.Query().Where(wallsgame.IDEQ(dbID)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询游戏追踪记录失败: %w", err)
	}

	updater := entity.Update()
	if params.Status != nil {
		updater.SetStatus(wallsgame.Status(*params.Status))
	}
	if params.Score != nil {
		updater.SetScore(*params.Score)
	}
	if params.StartedAt != nil {
		updater.SetStartedAt(*params.StartedAt)
	}
	if params.FinishedAt != nil {
		updater.SetFinishedAt(*params.FinishedAt)
	}
	if params.HoursPlayed != nil {
		updater.SetHoursPlayed(*params.HoursPlayed)
	}

	updated, err := updater.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("更新游戏追踪记录失败: %w", err)
	}
	titles, err := r.articleTitles(ctx, []uint{updated.ArticleID})
	if err != nil {
		return nil, err
	}
	return r.toModel(updated, titles), nil
}

// Delete 删除一条游戏追踪记录。追踪记录是硬删除，没有回收站语义。
func (r *wallsGameRepo) Delete(ctx context.Context, publicID string) error {
	dbID, err := r.resolveID(publicID)
	if err != nil {
		return err
	}
	num, err := r.db.WallsGame.Delete().Where(wallsgame.IDEQ(dbID)).Exec(ctx)
	if err != nil {
		return fmt.Errorf("删除游戏追踪记录失败: %w", err)
	}
	if num == 0 {
		return constant.ErrNotFound
	}
	return nil
}

// StatsByUser 统计某用户的游戏追踪：按状态分组的数量与有分记录的平均分。
// 单个用户的记录量很小，直接在内存中归并。
func (r *wallsGameRepo) StatsByUser(ctx context.Context, username string) (*model.WallStatusStats, error) {
	entities, err := r.db.WallsGame.Query().
		Where(wallsgame.UsernameEQ(username)).
		Select(wallsgame.FieldStatus, wallsgame.FieldScore).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("统计用户游戏追踪失败: %w", err)
	}
	stats := &model.WallStatusStats{StatusCounts: make(map[string]int, len(constant.WallStatuses))}
	for _, status := range constant.WallStatuses {
		stats.StatusCounts[status] = 0
	}
	var sum float64
	var scored int
	for _, entity := range entities {
		stats.Total++
		stats.StatusCounts[string(entity.Status)]++
		if entity.Score != nil {
			sum += *entity.Score
			scored++
		}
	}
	if scored > 0 {
		mean := sum / float64(scored)
		stats.MeanScore = &mean
	}
	return stats, nil
}
