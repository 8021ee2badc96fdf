/*
 * @Description: 漫画仓储实现
 * @Author: 安知鱼
 * @Date: 2025-09-03 15:02:27
 * @LastEditTime: 2025-10-22 10:07:15
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"
	"log"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/anzhiyu-c/mediawall-app/ent"
	"github.com/anzhiyu-c/mediawall-app/ent/comic"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
	"github.com/anzhiyu-c/mediawall-app/ent/wallscomic"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/repository"
	"github.com/anzhiyu-c/mediawall-app/pkg/idgen"
)

type comicRepo struct {
	db     *ent.Client
	dbType string
}

// NewComicRepo 是 comicRepo 的构造函数。
func NewComicRepo(db *ent.Client, dbType string) repository.ArticleRepository[*model.Comic] {
	return &comicRepo{db: db, dbType: dbType}
}

var comicFilterSpec = ArticleFilterSpec{
	TitleColumn:      comic.FieldTitle,
	GenresColumn:     comic.FieldGenres,
	AuthorsColumn:    comic.FieldAuthors,
	PublishersColumn: comic.FieldPublishers,
	ThresholdColumn:  comic.FieldIssues,
	PremieredColumn:  comic.FieldPremiered,
	FinishedColumn:   comic.FieldFinishedAt,
}

var comicStatsSpec = WallStatsSpec{
	Table:         wallscomic.Table,
	ArticleColumn: wallscomic.FieldArticleID,
	ScoreColumn:   wallscomic.FieldScore,
}

// === 私有辅助函数 (Private Helpers) ===

// toModel 负责将 ent.Comic 实体转换为领域模型，公共ID在此处编码。
func (r *comicRepo) toModel(e *ent.Comic) *model.Comic {
	if e == nil {
		return nil
	}
	publicID, err := idgen.GeneratePublicID(e.ID, idgen.EntityTypeComic)
	if err != nil {
		log.Printf("[严重错误] 生成漫画公共ID失败: dbID=%d, error=%v", e.ID, err)
		panic(fmt.Sprintf("生成漫画公共ID失败: dbID=%d, error=%v", e.ID, err))
	}
	return &model.Comic{
		ArticleCore: model.ArticleCore{
			ID:          publicID,
			Slug:        e.Slug,
			Title:       e.Title,
			Description: e.Description,
			CoverURL:    e.CoverURL,
			Authors:     e.Authors,
			Publishers:  e.Publishers,
			Genres:      e.Genres,
			Premiered:   e.Premiered,
			Draft:       e.Draft,
			Accepted:    e.Accepted,
			Contributor: e.Contributor,
			CreatedAt:   e.CreatedAt,
			UpdatedAt:   e.UpdatedAt,
		},
		Issues:     e.Issues,
		FinishedAt: e.FinishedAt,
	}
}

// toModelSlice 批量转换实体，同时收集内部ID供统计连接使用。
func (r *comicRepo) toModelSlice(entities []*ent.Comic) ([]*model.Comic, []uint) {
	models := make([]*model.Comic, len(entities))
	dbIDs := make([]uint, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
		dbIDs[i] = entity.ID
	}
	return models, dbIDs
}

// resolveID 解码公共标识符并校验实体类型。
func (r *comicRepo) resolveID(identifier string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(identifier)
	if err != nil || entityType != idgen.EntityTypeComic {
		return 0, constant.ErrNotFound
	}
	return dbID, nil
}

// attachStats 为一批漫画补全读侧统计，按作品分组一次性聚合。
// 没有任何追踪记录的作品三个统计字段均保持为 null。
func (r *comicRepo) attachStats(ctx context.Context, models []*model.Comic, dbIDs []uint) error {
	if len(dbIDs) == 0 {
		return nil
	}
	var rows []statsRow
	err := r.db.WallsComic.Query().
		Where(wallscomic.ArticleIDIn(dbIDs...)).
		GroupBy(wallscomic.FieldArticleID).
		Aggregate(
			ent.As(ent.Mean(wallscomic.FieldScore), "avg_score"),
			func(s *sql.Selector) string {
				return sql.As(sql.Count(s.C(wallscomic.FieldScore)), "count_score")
			},
			ent.As(ent.Count(), "members"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return fmt.Errorf("查询漫画统计聚合失败: %w", err)
	}
	byID := make(map[uint]*statsRow, len(rows))
	for i := range rows {
		byID[rows[i].ArticleID] = &rows[i]
	}
	for i, m := range models {
		if row, ok := byID[dbIDs[i]]; ok {
			m.Stats = &model.ArticleStats{
				AvgScore:   row.AvgScore,
				CountScore: row.CountScore,
				Members:    row.Members,
			}
		} else {
			m.Stats = &model.ArticleStats{}
		}
	}
	return nil
}

// attachUserWalls 附带请求者自己的追踪状态与评分，未追踪时保持为 nil。
func (r *comicRepo) attachUserWalls(ctx context.Context, username string, models []*model.Comic, dbIDs []uint) error {
	if len(dbIDs) == 0 {
		return nil
	}
	walls, err := r.db.WallsComic.Query().
		Where(wallscomic.UsernameEQ(username), wallscomic.ArticleIDIn(dbIDs...)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("查询用户漫画追踪记录失败: %w", err)
	}
	byArticle := make(map[uint]*ent.WallsComic, len(walls))
	for _, w := range walls {
		byArticle[w.ArticleID] = w
	}
	for i, m := range models {
		if w, ok := byArticle[dbIDs[i]]; ok {
			m.UserWall = &model.UserWallBrief{Status: string(w.Status), Score: w.Score}
		}
	}
	return nil
}

// === 公开方法实现 (Public Methods Implementation) ===

// Create 创建一条漫画记录，标题唯一约束冲突转译为业务错误。
func (r *comicRepo) Create(ctx context.Context, params *model.CreateArticleParams) (*model.Comic, error) {
	created, err := r.db.Comic.Create().
		SetTitle(params.Title).
		SetSlug(params.Slug).
		SetDescription(params.Description).
		SetCoverURL(params.CoverURL).
		SetAuthors(params.Authors).
		SetPublishers(params.Publishers).
		SetGenres(params.Genres).
		SetNillablePremiered(params.Premiered).
		SetDraft(params.Draft).
		SetAccepted(params.Accepted).
		SetContributor(params.Contributor).
		SetIssues(params.Issues).
		SetNillableFinishedAt(params.FinishedAt).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, constant.ErrTitleConflict
		}
		return nil, fmt.Errorf("创建漫画失败: %w", err)
	}
	m := r.toModel(created)
	m.Stats = &model.ArticleStats{}
	return m, nil
}

// GetByIdentifierSlug 获取单个漫画详情，标识符与 slug 必须同时匹配。
func (r *comicRepo) GetByIdentifierSlug(ctx context.Context, identifier, slug, requester string) (*model.Comic, error) {
	dbID, err := r.resolveID(identifier)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.Comic.Query().
		Where(comic.IDEQ(dbID), comic.SlugEQ(slug), comic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询漫画失败: %w", err)
	}
	m := r.toModel(entity)
	if err := r.attachStats(ctx, []*model.Comic{m}, []uint{entity.ID}); err != nil {
		return nil, err
	}
	if requester != "" {
		if err := r.attachUserWalls(ctx, requester, []*model.Comic{m}, []uint{entity.ID}); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// FindDBID 解析公共标识符为内部ID，并校验漫画存在且未删除。
func (r *comicRepo) FindDBID(ctx context.Context, identifier string) (uint, error) {
	dbID, err := r.resolveID(identifier)
	if err != nil {
		return 0, err
	}
	exists, err := r.db.Comic.Query().
		Where(comic.IDEQ(dbID), comic.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return 0, fmt.Errorf("校验漫画存在性失败: %w", err)
	}
	if !exists {
		return 0, constant.ErrNotFound
	}
	return dbID, nil
}

// Update 部分更新一条漫画，nil 字段不修改。
func (r *comicRepo) Update(ctx context.Context, identifier, slug string, params *model.UpdateArticleParams) (*model.Comic, error) {
	dbID, err := r.resolveID(identifier)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.Comic.Query().
		Where(comic.IDEQ(dbID), comic.SlugEQ(slug), comic.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询漫画失败: %w", err)
	}

	updater := entity.Update()
	if params.Title != nil {
		updater.SetTitle(*params.Title)
	}
	if params.Description != nil {
		updater.SetDescription(*params.Description)
	}
	if params.CoverURL != nil {
		updater.SetCoverURL(*params.CoverURL)
	}
	if params.Authors != nil {
		updater.SetAuthors(*params.Authors)
	}
	if params.Publishers != nil {
		updater.SetPublishers(*params.Publishers)
	}
	if params.Genres != nil {
		updater.SetGenres(*params.Genres)
	}
	if params.Premiered != nil {
		updater.SetPremiered(*params.Premiered)
	}
	if params.Draft != nil {
		updater.SetDraft(*params.Draft)
	}
	if params.Accepted != nil {
		updater.SetAccepted(*params.Accepted)
	}
	if params.ResetCreatedAt {
		// 草稿被重新提交，发布时间重置为当前
		updater.SetCreatedAt(time.Now())
	}
	if params.Issues != nil {
		updater.SetIssues(*params.Issues)
	}
	if params.FinishedAt != nil {
		updater.SetFinishedAt(*params.FinishedAt)
	}

	updated, err := updater.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, constant.ErrTitleConflict
		}
		return nil, fmt.Errorf("更新漫画失败: %w", err)
	}
	m := r.toModel(updated)
	if err := r.attachStats(ctx, []*model.Comic{m}, []uint{updated.ID}); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete 软删除一条漫画，deleted_at 由 mixin 钩子写入。
func (r *comicRepo) Delete(ctx context.Context, identifier, slug string) error {
	dbID, err := r.resolveID(identifier)
	if err != nil {
		return err
	}
	num, err := r.db.Comic.Delete().
		Where(comic.IDEQ(dbID), comic.SlugEQ(slug), comic.DeletedAtIsNil()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("删除漫画失败: %w", err)
	}
	if num == 0 {
		return constant.ErrNotFound
	}
	return nil
}

// List 按过滤条件分页查询漫画列表。
// 总数在分页窗口之前统计，不受统计连接影响。
func (r *comicRepo) List(ctx context.Context, options *model.ListArticlesOptions) ([]*model.Comic, int, error) {
	f := &options.Filter
	baseQuery := r.db.Comic.Query().Where(
		comic.DeletedAtIsNil(),
		// 公开列表只展示已过审的条目，草稿走 drafts 接口
		comic.AcceptedEQ(true),
		predicate.Comic(BuildArticlePredicate(comicFilterSpec, f, r.dbType)),
	)

	total, err := baseQuery.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("统计漫画总数失败: %w", err)
	}

	offset := (options.Page - 1) * options.Limit
	var entities []*ent.Comic
	if _, ok := statsOrderColumns[f.OrderBy]; ok {
		entities, err = baseQuery.Clone().
			Modify(ApplyStatsOrder(comicStatsSpec, comic.FieldID, f.OrderBy, f.Ordering)).
			Offset(offset).
			Limit(options.Limit).
			All(ctx)
	} else {
		entities, err = baseQuery.Clone().
			Order(ent.Desc(comic.FieldCreatedAt)).
			Offset(offset).
			Limit(options.Limit).
			All(ctx)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("查询漫画列表失败: %w", err)
	}

	models, dbIDs := r.toModelSlice(entities)
	if err := r.attachStats(ctx, models, dbIDs); err != nil {
		return nil, 0, err
	}
	if options.RequesterUsername != "" {
		if err := r.attachUserWalls(ctx, options.RequesterUsername, models, dbIDs); err != nil {
			return nil, 0, err
		}
	}
	return models, total, nil
}

// ListDrafts 列出待审核草稿，contributor 非空时只看该用户自己的贡献。
func (r *comicRepo) ListDrafts(ctx context.Context, contributor string) ([]*model.Comic, error) {
	q := r.db.Comic.Query().Where(comic.DeletedAtIsNil(), comic.DraftEQ(true))
	if contributor != "" {
		q = q.Where(comic.ContributorEQ(contributor))
	}
	entities, err := q.Order(ent.Desc(comic.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询漫画草稿失败: %w", err)
	}
	models, _ := r.toModelSlice(entities)
	return models, nil
}
