/*
 * @Description: 图书仓储实现
 * @Author: 安知鱼
 * @Date: 2025-09-03 14:20:11
 * @LastEditTime: 2025-10-22 10:05:42
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
	"github.com/anzhiyu-c/mediawall-app/ent/book"
	"github.com/anzhiyu-c/mediawall-app/ent/predicate"
	"github.com/anzhiyu-c/mediawall-app/ent/wallsbook"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/repository"
	"github.com/anzhiyu-c/mediawall-app/pkg/idgen"
)

type bookRepo struct {
	db     *ent.Client
	dbType string
}

// NewBookRepo 是 bookRepo 的构造函数。
func NewBookRepo(db *ent.Client, dbType string) repository.ArticleRepository[*model.Book] {
	return &bookRepo{db: db, dbType: dbType}
}

var bookFilterSpec = ArticleFilterSpec{
	TitleColumn:      book.FieldTitle,
	SeriesColumn:     book.FieldSeries,
	GenresColumn:     book.FieldGenres,
	AuthorsColumn:    book.FieldAuthors,
	PublishersColumn: book.FieldPublishers,
	ThresholdColumn:  book.FieldPages,
	PremieredColumn:  book.FieldPremiered,
}

var bookStatsSpec = WallStatsSpec{
	Table:         wallsbook.Table,
	ArticleColumn: wallsbook.FieldArticleID,
	ScoreColumn:   wallsbook.FieldScore,
}

// === 私有辅助函数 (Private Helpers) ===

// toModel 负责将 ent.Book 实体转换为领域模型，公共ID在此处编码。
func (r *bookRepo) toModel(e *ent.Book) *model.Book {
	if e == nil {
		return nil
	}
	publicID, err := idgen.GeneratePublicID(e.ID, idgen.EntityTypeBook)
	if err != nil {
		log.Printf("[严重错误] 生成图书公共ID失败: dbID=%d, error=%v", e.ID, err)
		panic(fmt.Sprintf("生成图书公共ID失败: dbID=%d, error=%v", e.ID, err))
	}
	return &model.Book{
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
		Pages:  e.Pages,
		Series: e.Series,
	}
}

// toModelSlice 批量转换实体，同时收集内部ID供统计连接使用。
func (r *bookRepo) toModelSlice(entities []*ent.Book) ([]*model.Book, []uint) {
	models := make([]*model.Book, len(entities))
	dbIDs := make([]uint, len(entities))
	for i, entity := range entities {
		models[i] = r.toModel(entity)
		dbIDs[i] = entity.ID
	}
	return models, dbIDs
}

// resolveID 解码公共标识符并校验实体类型。
func (r *bookRepo) resolveID(identifier string) (uint, error) {
	dbID, entityType, err := idgen.DecodePublicID(identifier)
	if err != nil || entityType != idgen.EntityTypeBook {
		return 0, constant.ErrNotFound
	}
	return dbID, nil
}

// attachStats 为一批图书补全读侧统计，按作品分组一次性聚合。
// 没有任何追踪记录的作品三个统计字段均保持为 null。
func (r *bookRepo) attachStats(ctx context.Context, models []*model.Book, dbIDs []uint) error {
	if len(dbIDs) == 0 {
		return nil
	}
	var rows []statsRow
	err := r.db.WallsBook.Query().
		Where(wallsbook.ArticleIDIn(dbIDs...)).
		GroupBy(wallsbook.FieldArticleID).
		Aggregate(
			ent.As(ent.Mean(wallsbook.FieldScore), "avg_score"),
			func(s *sql.Selector) string {
				return sql.As(sql.Count(s.C(wallsbook.FieldScore)), "count_score")
			},
			ent.As(ent.Count(), "members"),
		).
		Scan(ctx, &rows)
	if err != nil {
		return fmt.Errorf("查询图书统计聚合失败: %w", err)
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
func (r *bookRepo) attachUserWalls(ctx context.Context, username string, models []*model.Book, dbIDs []uint) error {
	if len(dbIDs) == 0 {
		return nil
	}
	walls, err := r.db.WallsBook.Query().
		Where(wallsbook.UsernameEQ(username), wallsbook.ArticleIDIn(dbIDs...)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("查询用户图书追踪记录失败: %w", err)
	}
	byArticle := make(map[uint]*ent.WallsBook, len(walls))
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

// Create 创建一条图书记录，标题唯一约束冲突转译为业务错误。
func (r *bookRepo) Create(ctx context.Context, params *model.CreateArticleParams) (*model.Book, error) {
	created, err := r.db.Book.Create().
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
		SetPages(params.Pages).
		SetSeries(params.Series).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, constant.ErrTitleConflict
		}
		return nil, fmt.Errorf("创建图书失败: %w", err)
	}
	m := r.toModel(created)
	m.Stats = &model.ArticleStats{}
	return m, nil
}

// GetByIdentifierSlug 获取单个图书详情，标识符与 slug 必须同时匹配。
func (r *bookRepo) GetByIdentifierSlug(ctx context.Context, identifier, slug, requester string) (*model.Book, error) {
	dbID, err := r.resolveID(identifier)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.Book.Query().
		Where(book.IDEQ(dbID), book.SlugEQ(slug), book.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询图书失败: %w", err)
	}
	m := r.toModel(entity)
	if err := r.attachStats(ctx, []*model.Book{m}, []uint{entity.ID}); err != nil {
		return nil, err
	}
	if requester != "" {
		if err := r.attachUserWalls(ctx, requester, []*model.Book{m}, []uint{entity.ID}); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// FindDBID 解析公共标识符为内部ID，并校验图书存在且未删除。
func (r *bookRepo) FindDBID(ctx context.Context, identifier string) (uint, error) {
	dbID, err := r.resolveID(identifier)
	if err != nil {
		return 0, err
	}
	exists, err := r.db.Book.Query().
		Where(book.IDEQ(dbID), book.DeletedAtIsNil()).
		Exist(ctx)
	if err != nil {
		return 0, fmt.Errorf("校验图书存在性失败: %w", err)
	}
	if !exists {
		return 0, constant.ErrNotFound
	}
	return dbID, nil
}

// Update 部分更新一条图书，nil 字段不修改。
func (r *bookRepo) Update(ctx context.Context, identifier, slug string, params *model.UpdateArticleParams) (*model.Book, error) {
	dbID, err := r.resolveID(identifier)
	if err != nil {
		return nil, err
	}
	entity, err := r.db.Book.Query().
		Where(book.IDEQ(dbID), book.SlugEQ(slug), book.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, constant.ErrNotFound
		}
		return nil, fmt.Errorf("查询图书失败: %w", err)
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
	if params.Pages != nil {
		updater.SetPages(*params.Pages)
	}
	if params.Series != nil {
		updater.SetSeries(*params.Series)
	}

	updated, err := updater.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, constant.ErrTitleConflict
		}
		return nil, fmt.Errorf("更新图书失败: %w", err)
	}
	m := r.toModel(updated)
	if err := r.attachStats(ctx, []*model.Book{m}, []uint{updated.ID}); err != nil {
		return nil, err
	}
	return m, nil
}

// Delete 软删除一条图书，deleted_at 由 mixin 钩子写入。
func (r *bookRepo) Delete(ctx context.Context, identifier, slug string) error {
	dbID, err := r.resolveID(identifier)
	if err != nil {
		return err
	}
	num, err := r.db.Book.Delete().
		Where(book.IDEQ(dbID), book.SlugEQ(slug), book.DeletedAtIsNil()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("删除图书失败: %w", err)
	}
	if num == 0 {
		return constant.ErrNotFound
	}
	return nil
}

// List 按过滤条件分页查询图书列表。
// 总数在分页窗口之前统计，不受统计连接影响。
func (r *bookRepo) List(ctx context.Context, options *model.ListArticlesOptions) ([]*model.Book, int, error) {
	f := &options.Filter
	baseQuery := r.db.Book.Query().Where(
		book.DeletedAtIsNil(),
		// 公开列表只展示已过审的条目，草稿走 drafts 接口
		book.AcceptedEQ(true),
		predicate.Book(BuildArticlePredicate(bookFilterSpec, f, r.dbType)),
	)

	total, err := baseQuery.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("统计图书总数失败: %w", err)
	}

	offset := (options.Page - 1) * options.Limit
	var entities []*ent.Book
	if _, ok := statsOrderColumns[f.OrderBy]; ok {
		entities, err = baseQuery.Clone().
			Modify(ApplyStatsOrder(bookStatsSpec, book.FieldID, f.OrderBy, f.Ordering)).
			Offset(offset).
			Limit(options.Limit).
			All(ctx)
	} else {
		entities, err = baseQuery.Clone().
			Order(ent.Desc(book.FieldCreatedAt)).
			Offset(offset).
			Limit(options.Limit).
			All(ctx)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("查询图书列表失败: %w", err)
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
func (r *bookRepo) ListDrafts(ctx context.Context, contributor string) ([]*model.Book, error) {
	q := r.db.Book.Query().Where(book.DeletedAtIsNil(), book.DraftEQ(true))
	if contributor != "" {
		q = q.Where(book.ContributorEQ(contributor))
	}
	entities, err := q.Order(ent.Desc(book.FieldCreatedAt)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("查询图书草稿失败: %w", err)
	}
	models, _ := r.toModelSlice(entities)
	return models, nil
}
