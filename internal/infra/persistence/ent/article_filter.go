/*
 * @Description: 作品列表的通用过滤谓词构建器
 * @Author: 安知鱼
 * @Date: 2025-09-03 10:22:18
 * @LastEditTime: 2025-10-21 16:40:09
 * @LastEditors: 安知鱼
 */
package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent/dialect/sql"

	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
)

// ArticleFilterSpec 用列名参数化通用过滤谓词构建器。
// 四种媒体类型共用同一套构建逻辑，类型间的差异全部收敛到这组字段上。
type ArticleFilterSpec struct {
	TitleColumn string
	// SeriesColumn 非空时，名称匹配同时作用于系列名（图书）
	SeriesColumn     string
	GenresColumn     string
	AuthorsColumn    string
	PublishersColumn string
	// ThresholdColumn 是类型专有的数值上限列（页数/期数/通关时长/卷数）
	ThresholdColumn string
	PremieredColumn string
	// PremieredExact 为 true 时年份按 == 匹配（日漫），否则 >=
	PremieredExact bool
	// FinishedColumn 非空时支持完结过滤，完结日期非空视为已完结
	FinishedColumn string
	// TypeColumn 非空时支持分类枚举的子串匹配（日漫）
	TypeColumn string
}

// BuildArticlePredicate 把一组可选过滤参数编译为选择器修改函数，
// 所有条件之间为 AND 关系；f 为零值时谓词恒真（匹配所有行）。
func BuildArticlePredicate(spec ArticleFilterSpec, f *model.ArticleFilter, dbType string) func(*sql.Selector) {
	return func(s *sql.Selector) {
		if f == nil {
			return
		}
		if f.Name != "" {
			if spec.SeriesColumn != "" {
				s.Where(sql.Or(
					sql.ContainsFold(s.C(spec.TitleColumn), f.Name),
					sql.ContainsFold(s.C(spec.SeriesColumn), f.Name),
				))
			} else {
				s.Where(sql.ContainsFold(s.C(spec.TitleColumn), f.Name))
			}
		}
		applyTagFilter(s, s.C(spec.GenresColumn), f.Genres)
		applyTagFilter(s, s.C(spec.AuthorsColumn), f.Authors)
		applyTagFilter(s, s.C(spec.PublishersColumn), f.Publishers)
		if f.Premiered > 0 && spec.PremieredColumn != "" {
			op := ">="
			if spec.PremieredExact {
				op = "="
			}
			s.Where(sql.ExprP(fmt.Sprintf("%s %s %d",
				yearExpr(dbType, s.C(spec.PremieredColumn)), op, f.Premiered)))
		}
		if f.Threshold != nil && spec.ThresholdColumn != "" {
			s.Where(sql.LTE(s.C(spec.ThresholdColumn), *f.Threshold))
		}
		if f.Finished && spec.FinishedColumn != "" {
			s.Where(sql.NotNull(s.C(spec.FinishedColumn)))
		}
		if f.MangaType != "" && spec.TypeColumn != "" {
			s.Where(sql.ContainsFold(s.C(spec.TypeColumn), f.MangaType))
		}
	}
}

// applyTagFilter 实现逗号分隔标签列表的 AND 匹配：
// 每个候选标签独立做大小写不敏感的子串匹配，全部命中才保留该行。
// 子串语义意味着 "war" 也会命中 "prewar"，该行为是列表接口的既定契约。
func applyTagFilter(s *sql.Selector, column, tags string) {
	if tags == "" {
		return
	}
	for _, tag := range strings.Split(tags, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		s.Where(sql.ContainsFold(column, tag))
	}
}

// yearExpr 生成从日期列提取年份的方言表达式。
func yearExpr(dbType, column string) string {
	switch dbType {
	case "sqlite", "sqlite3":
		// SQLite 使用 strftime 函数
		return fmt.Sprintf("CAST(strftime('%%Y', %s) AS INTEGER)", column)
	case "mysql":
		// MySQL 使用 YEAR 函数
		return fmt.Sprintf("YEAR(%s)", column)
	default:
		// PostgreSQL 使用 EXTRACT 函数
		return fmt.Sprintf("EXTRACT(YEAR FROM %s)", column)
	}
}
