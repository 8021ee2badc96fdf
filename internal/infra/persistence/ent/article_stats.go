/*
 * @Description: 追踪墙统计连接与排序
 * @Author: 安知鱼
 * @Date: 2025-09-03 11:05:40
 * @LastEditTime: 2025-10-21 17:12:33
 * @LastEditors: 安知鱼
 */
package ent

import (
	"fmt"

	"entgo.io/ent/dialect/sql"

	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
)

// WallStatsSpec 描述一种媒体类型对应的追踪墙表，统计连接按它拼装。
type WallStatsSpec struct {
	Table         string
	ArticleColumn string
	ScoreColumn   string
}

// statsOrderColumns 把对外的 orderBy 键映射到统计子查询里的聚合列名。
var statsOrderColumns = map[string]string{
	constant.OrderByAvgScore:   "avg_score",
	constant.OrderByMembers:    "members",
	constant.OrderByScoreCount: "score_count",
}

// statsRow 承载按作品分组的统计聚合扫描结果。
type statsRow struct {
	ArticleID  uint     `json:"article_id"`
	AvgScore   *float64 `json:"avg_score"`
	CountScore *int     `json:"count_score"`
	Members    *int     `json:"members"`
}

// ApplyStatsOrder 左连接按作品分组的追踪墙聚合子查询，并按指定
// 统计属性排序。orderBy 限定为 constant.StatsOrderKeys 白名单；
// 没有任何追踪记录的作品统计值为 NULL，无论升降序都排在末尾。
// 同值行不做二级排序，行间顺序由数据库决定。
func ApplyStatsOrder(spec WallStatsSpec, articleIDColumn, orderBy, ordering string) func(*sql.Selector) {
	column, ok := statsOrderColumns[orderBy]
	if !ok {
		return func(*sql.Selector) {}
	}
	return func(s *sql.Selector) {
		t := sql.Table(spec.Table)
		stats := sql.Select(
			t.C(spec.ArticleColumn),
			sql.As(sql.Avg(t.C(spec.ScoreColumn)), "avg_score"),
			sql.As(sql.Count(t.C(spec.ScoreColumn)), "score_count"),
			sql.As(sql.Count("*"), "members"),
		).From(t).GroupBy(t.C(spec.ArticleColumn)).As("wall_stats")

		s.LeftJoin(stats).On(s.C(articleIDColumn), stats.C(spec.ArticleColumn))

		direction := "DESC"
		if ordering == "ASC" {
			direction = "ASC"
		}
		s.OrderExpr(
			sql.Expr(fmt.Sprintf("%s IS NULL", stats.C(column))),
			sql.Expr(fmt.Sprintf("%s %s", stats.C(column), direction)),
		)
	}
}
