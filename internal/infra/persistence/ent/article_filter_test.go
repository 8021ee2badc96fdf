package ent

import (
	"strings"
	"testing"

	"entgo.io/ent/dialect/sql"

	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
)

var bookSpec = ArticleFilterSpec{
	TitleColumn:      "title",
	SeriesColumn:     "series",
	GenresColumn:     "genres",
	AuthorsColumn:    "authors",
	PublishersColumn: "publishers",
	ThresholdColumn:  "pages",
	PremieredColumn:  "premiered",
}

var mangaSpec = ArticleFilterSpec{
	TitleColumn:      "title",
	GenresColumn:     "genres",
	AuthorsColumn:    "authors",
	PublishersColumn: "publishers",
	ThresholdColumn:  "volumes",
	PremieredColumn:  "premiered",
	PremieredExact:   true,
	FinishedColumn:   "finished_at",
	TypeColumn:       "type",
}

// render 把谓词应用到一个选择器上并返回生成的 SQL 与参数。
func render(t *testing.T, spec ArticleFilterSpec, f *model.ArticleFilter, dbType string) (string, []interface{}) {
	t.Helper()
	s := sql.Select("*").From(sql.Table("articles"))
	BuildArticlePredicate(spec, f, dbType)(s)
	return s.Query()
}

func TestBuildArticlePredicate_空过滤器恒真(t *testing.T) {
	query, args := render(t, bookSpec, nil, "sqlite")
	if strings.Contains(query, "WHERE") {
		t.Errorf("nil 过滤器不应生成 WHERE 子句: %s", query)
	}
	query, args = render(t, bookSpec, &model.ArticleFilter{}, "sqlite")
	if strings.Contains(query, "WHERE") {
		t.Errorf("零值过滤器不应生成 WHERE 子句: %s", query)
	}
	if len(args) != 0 {
		t.Errorf("期望无参数, 实际 %v", args)
	}
}

func TestBuildArticlePredicate_名称同时匹配系列(t *testing.T) {
	query, args := render(t, bookSpec, &model.ArticleFilter{Name: "Dune"}, "sqlite")
	if !strings.Contains(query, "OR") {
		t.Errorf("配置了系列列时名称匹配应为 OR 关系: %s", query)
	}
	if len(args) != 2 {
		t.Fatalf("期望标题与系列各一个参数, 实际 %v", args)
	}
	for _, arg := range args {
		if arg != "%dune%" {
			t.Errorf("名称匹配应为大小写不敏感的子串匹配, 实际参数 %v", arg)
		}
	}

	query, args = render(t, mangaSpec, &model.ArticleFilter{Name: "Berserk"}, "sqlite")
	if strings.Contains(query, "OR") {
		t.Errorf("未配置系列列时不应出现 OR: %s", query)
	}
	if len(args) != 1 || args[0] != "%berserk%" {
		t.Errorf("期望单个标题参数, 实际 %v", args)
	}
}

func TestBuildArticlePredicate_标签列表为AND语义(t *testing.T) {
	query, args := render(t, bookSpec, &model.ArticleFilter{Genres: "sci-fi, War,"}, "sqlite")
	if !strings.Contains(query, "WHERE") {
		t.Fatalf("标签过滤应生成 WHERE 子句: %s", query)
	}
	// 空白与空项被忽略，剩余两个标签各自独立匹配
	if len(args) != 2 {
		t.Fatalf("期望两个标签参数, 实际 %v", args)
	}
	if args[0] != "%sci-fi%" || args[1] != "%war%" {
		t.Errorf("标签应去除空白并折叠大小写, 实际 %v", args)
	}
	if strings.Contains(query, "OR") {
		t.Errorf("多个标签之间应为 AND 关系: %s", query)
	}
}

func TestBuildArticlePredicate_年份表达式按方言生成(t *testing.T) {
	tests := []struct {
		name     string
		dbType   string
		expected string
	}{
		{name: "sqlite 使用 strftime", dbType: "sqlite", expected: "strftime"},
		{name: "mysql 使用 YEAR", dbType: "mysql", expected: "YEAR("},
		{name: "postgres 使用 EXTRACT", dbType: "postgres", expected: "EXTRACT(YEAR FROM"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, _ := render(t, bookSpec, &model.ArticleFilter{Premiered: 1999}, tt.dbType)
			if !strings.Contains(query, tt.expected) {
				t.Errorf("期望包含 %q, 实际 %s", tt.expected, query)
			}
			if !strings.Contains(query, ">= 1999") {
				t.Errorf("图书的年份过滤应为下界匹配: %s", query)
			}
		})
	}
}

func TestBuildArticlePredicate_日漫年份精确匹配(t *testing.T) {
	query, _ := render(t, mangaSpec, &model.ArticleFilter{Premiered: 1999}, "sqlite")
	if !strings.Contains(query, "= 1999") || strings.Contains(query, ">= 1999") {
		t.Errorf("日漫的年份过滤应为相等匹配: %s", query)
	}
}

func TestBuildArticlePredicate_数值上限与完结过滤(t *testing.T) {
	threshold := 300
	query, args := render(t, mangaSpec, &model.ArticleFilter{
		Threshold: &threshold,
		Finished:  true,
		MangaType: "Seinen",
	}, "sqlite")
	if !strings.Contains(query, "<=") {
		t.Errorf("数值上限应为 <= 匹配: %s", query)
	}
	if !strings.Contains(query, "IS NOT NULL") {
		t.Errorf("完结过滤应为完结日期非空: %s", query)
	}
	found := false
	for _, arg := range args {
		if arg == 300 {
			found = true
		}
	}
	if !found {
		t.Errorf("期望上限参数 300, 实际 %v", args)
	}
	typeMatched := false
	for _, arg := range args {
		if arg == "%seinen%" {
			typeMatched = true
		}
	}
	if !typeMatched {
		t.Errorf("分类过滤应折叠大小写, 实际参数 %v", args)
	}
}
