/*
 * @Description: 用户仓储实现
 * @Author: 安知鱼
 * @Date: 2025-09-05 14:40:19
 * @LastEditTime: 2025-10-23 09:16:52
 * @LastEditors: 安知鱼
 */
package ent

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/anzhiyu-c/mediawall-app/ent"
	"github.com/anzhiyu-c/mediawall-app/ent/book"
	"github.com/anzhiyu-c/mediawall-app/ent/comic"
	"github.com/anzhiyu-c/mediawall-app/ent/game"
	"github.com/anzhiyu-c/mediawall-app/ent/manga"
	"github.com/anzhiyu-c/mediawall-app/ent/user"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/repository"
	"github.com/anzhiyu-c/mediawall-app/pkg/idgen"
)

type userRepo struct {
	db *ent.Client
}

// NewUserRepo 是 userRepo 的构造函数。
func NewUserRepo(db *ent.Client) repository.UserRepository {
	return &userRepo{db: db}
}

// toModel 将 ent.User 转换为领域模型。
func (r *userRepo) toModel(u *ent.User) *model.User {
	if u == nil {
		return nil
	}
	publicID, err := idgen.GeneratePublicID(u.ID, idgen.EntityTypeUser)
	if err != nil {
		log.Printf("[严重错误] 生成用户公共ID失败: dbID=%d, error=%v", u.ID, err)
		panic(fmt.Sprintf("生成用户公共ID失败: dbID=%d, error=%v", u.ID, err))
	}
	var token string
	if u.ConfirmationToken != nil {
		token = *u.ConfirmationToken
	}
	return &model.User{
		ID:                 u.ID,
		PublicID:           publicID,
		Email:              u.Email,
		Username:           u.Username,
		PasswordHash:       u.PasswordHash,
		Role:               string(u.Role),
		Blocked:            u.Blocked,
		Enabled:            u.Enabled,
		ConfirmationToken:  token,
		ContributionPoints: u.ContributionPoints,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

// translateConstraintError 根据约束冲突的错误详情区分是邮箱还是用户名重复。
// 两个字段各自有独立的唯一索引，数据库报错信息里会带出违反的列名。
func translateConstraintError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "email"):
		return constant.ErrEmailConflict
	case strings.Contains(msg, "username"):
		return constant.ErrUsernameConflict
	default:
		return constant.ErrConflict
	}
}

// Create 创建用户，唯一约束冲突转译为对应的业务错误。
func (r *userRepo) Create(ctx context.Context, u *model.User) (*model.User, error) {
	creator := r.db.User.Create().
		SetUsername(u.Username).
		SetEmail(u.Email).
		SetPasswordHash(u.PasswordHash).
		SetRole(user.Role(u.Role)).
		SetBlocked(u.Blocked).
		SetEnabled(u.Enabled)
	if u.ConfirmationToken != "" {
		creator.SetConfirmationToken(u.ConfirmationToken)
	}
	created, err := creator.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, translateConstraintError(err)
		}
		return nil, fmt.Errorf("创建用户失败: %w", err)
	}
	return r.toModel(created), nil
}

// FindByUsername 根据用户名查找用户，未找到返回 nil, nil。
func (r *userRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	entity, err := r.db.User.Query().Where(user.UsernameEQ(username)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return r.toModel(entity), nil
}

// FindByEmail 根据邮箱查找用户，未找到返回 nil, nil。
func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	entity, err := r.db.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return r.toModel(entity), nil
}

// FindByConfirmationToken 根据激活令牌查找用户，未找到返回 nil, nil。
func (r *userRepo) FindByConfirmationToken(ctx context.Context, token string) (*model.User, error) {
	entity, err := r.db.User.Query().Where(user.ConfirmationTokenEQ(token)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("查询用户失败: %w", err)
	}
	return r.toModel(entity), nil
}

// Activate 激活一个账户：解除封禁、置为可用并清空激活令牌。
func (r *userRepo) Activate(ctx context.Context, id uint) error {
	err := r.db.User.UpdateOneID(id).
		SetEnabled(true).
		SetBlocked(false).
		ClearConfirmationToken().
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return constant.ErrNotFound
		}
		return fmt.Errorf("激活用户失败: %w", err)
	}
	return nil
}

// SetBlocked 设置封禁状态。
func (r *userRepo) SetBlocked(ctx context.Context, username string, blocked bool) error {
	num, err := r.db.User.Update().
		Where(user.UsernameEQ(username)).
		SetBlocked(blocked).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("更新用户封禁状态失败: %w", err)
	}
	if num == 0 {
		return constant.ErrNotFound
	}
	return nil
}

// SetRole 修改用户角色。
func (r *userRepo) SetRole(ctx context.Context, username string, role string) error {
	num, err := r.db.User.Update().
		Where(user.UsernameEQ(username)).
		SetRole(user.Role(role)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("更新用户角色失败: %w", err)
	}
	if num == 0 {
		return constant.ErrNotFound
	}
	return nil
}

// AddContributionPoints 累加贡献点数。
func (r *userRepo) AddContributionPoints(ctx context.Context, username string, delta int) error {
	num, err := r.db.User.Update().
		Where(user.UsernameEQ(username)).
		AddContributionPoints(delta).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("累加贡献点数失败: %w", err)
	}
	if num == 0 {
		return constant.ErrNotFound
	}
	return nil
}

// Delete 物理删除一个用户，只用于注册补偿。
func (r *userRepo) Delete(ctx context.Context, id uint) error {
	err := r.db.User.DeleteOneID(id).Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("删除用户失败: %w", err)
	}
	return nil
}

// DeleteUnconfirmedBefore 清理在 cutoff 之前注册且从未激活的账户。
func (r *userRepo) DeleteUnconfirmedBefore(ctx context.Context, cutoff time.Time) (int, error) {
	num, err := r.db.User.Delete().
		Where(
			user.EnabledEQ(false),
			user.ConfirmationTokenNotNil(),
			user.CreatedAtLT(cutoff),
		).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("清理未激活账户失败: %w", err)
	}
	return num, nil
}

// ResyncContributionPoints 按已过审条目重算全部用户的贡献点。
// perArticle 是单个条目的点数，重算结果覆盖现值，返回被修正的用户数。
// 审核接口的即时累加在并发或人工改库后可能漂移，定时任务以此兜底。
func (r *userRepo) ResyncContributionPoints(ctx context.Context, perArticle int) (int, error) {
	type row struct {
		Contributor string `json:"contributor"`
		Count       int    `json:"count"`
	}
	counts := make(map[string]int)

	var bookRows []row
	if err := r.db.Book.Query().
		Where(book.DeletedAtIsNil(), book.AcceptedEQ(true), book.ContributorNEQ("")).
		GroupBy(book.FieldContributor).
		Aggregate(ent.Count()).
		Scan(ctx, &bookRows); err != nil {
		return 0, fmt.Errorf("统计图书贡献失败: %w", err)
	}
	var comicRows []row
	if err := r.db.Comic.Query().
		Where(comic.DeletedAtIsNil(), comic.AcceptedEQ(true), comic.ContributorNEQ("")).
		GroupBy(comic.FieldContributor).
		Aggregate(ent.Count()).
		Scan(ctx, &comicRows); err != nil {
		return 0, fmt.Errorf("统计漫画贡献失败: %w", err)
	}
	var gameRows []row
	if err := r.db.Game.Query().
		Where(game.DeletedAtIsNil(), game.AcceptedEQ(true), game.ContributorNEQ("")).
		GroupBy(game.FieldContributor).
		Aggregate(ent.Count()).
		Scan(ctx, &gameRows); err != nil {
		return 0, fmt.Errorf("统计游戏贡献失败: %w", err)
	}
	var mangaRows []row
	if err := r.db.Manga.Query().
		Where(manga.DeletedAtIsNil(), manga.AcceptedEQ(true), manga.ContributorNEQ("")).
		GroupBy(manga.FieldContributor).
		Aggregate(ent.Count()).
		Scan(ctx, &mangaRows); err != nil {
		return 0, fmt.Errorf("统计日漫贡献失败: %w", err)
	}
	for _, rows := range [][]row{bookRows, comicRows, gameRows, mangaRows} {
		for _, it := range rows {
			counts[it.Contributor] += it.Count
		}
	}

	users, err := r.db.User.Query().All(ctx)
	if err != nil {
		return 0, fmt.Errorf("查询用户列表失败: %w", err)
	}
	corrected := 0
	for _, u := range users {
		want := counts[u.Username] * perArticle
		if u.ContributionPoints == want {
			continue
		}
		if err := r.db.User.UpdateOneID(u.ID).SetContributionPoints(want).Exec(ctx); err != nil {
			return corrected, fmt.Errorf("修正用户 %s 贡献点失败: %w", u.Username, err)
		}
		corrected++
	}
	return corrected, nil
}
