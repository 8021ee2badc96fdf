/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:05:12
 * @LastEditTime: 2025-10-08 21:33:40
 * @LastEditors: 安知鱼
 */
package model

import "time"

// --- 核心领域对象 (Domain Objects) ---

// ArticleStats 是作品的读侧统计聚合，由追踪墙记录分组计算得出。
// 每次查询实时重算，从不落库。没有任何追踪记录的作品，三个字段均为 null。
type ArticleStats struct {
	AvgScore   *float64 `json:"avgScore"`
	CountScore *int     `json:"countScore"`
	Members    *int     `json:"members"`
}

// UserWallBrief 是列表/详情里随作品返回的请求者个人追踪信息。
// 请求者未登录或未追踪该作品时为 nil。
type UserWallBrief struct {
	Status string   `json:"status"`
	Score  *float64 `json:"score"`
}

// ArticleCore 是四种作品类型共有的领域模型字段。
// ID 是由内部数据库 ID 编码得到的公共标识符，与 slug 共同构成详情页路径。
type ArticleCore struct {
	ID          string         `json:"identifier"`
	Slug        string         `json:"slug"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	CoverURL    string         `json:"coverUrl,omitempty"`
	Authors     string         `json:"authors,omitempty"`
	Publishers  string         `json:"publishers,omitempty"`
	Genres      string         `json:"genres,omitempty"`
	Premiered   *time.Time     `json:"premiered,omitempty"`
	Draft       bool           `json:"draft"`
	Accepted    bool           `json:"accepted"`
	Contributor string         `json:"contributor,omitempty"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
	Stats       *ArticleStats  `json:"stats,omitempty"`
	UserWall    *UserWallBrief `json:"userWall,omitempty"`
}

// Book 图书
type Book struct {
	ArticleCore
	Pages  int    `json:"pages"`
	Series string `json:"series,omitempty"`
}

// Comic 漫画
type Comic struct {
	ArticleCore
	Issues     int        `json:"issues"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// Game 游戏
type Game struct {
	ArticleCore
	GameMode     string `json:"gameMode,omitempty"`
	Gears        string `json:"gears,omitempty"`
	CompleteTime int    `json:"completeTime"`
}

// Manga 日漫
type Manga struct {
	ArticleCore
	Volumes    int        `json:"volumes"`
	Chapters   int        `json:"chapters"`
	Type       string     `json:"type"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
}

// Article 约束了四种作品领域模型的指针类型，
// 泛型服务通过 Core 访问类型无关的公共字段。
type Article interface {
	Core() *ArticleCore
}

func (b *Book) Core() *ArticleCore  { return &b.ArticleCore }
func (c *Comic) Core() *ArticleCore { return &c.ArticleCore }
func (g *Game) Core() *ArticleCore  { return &g.ArticleCore }
func (m *Manga) Core() *ArticleCore { return &m.ArticleCore }

// --- 查询选项 ---

// ArticleFilter 承载列表接口的全部可选过滤参数。
// 各字段相互独立，全部为空时谓词恒真（匹配所有未删除行）。
type ArticleFilter struct {
	// Name 对标题做大小写不敏感的子串匹配（图书类型同时匹配系列名）
	Name string
	// Genres/Authors/Publishers 均为逗号分隔的候选标签列表；
	// 记录需满足"每个候选标签各自子串匹配"才算命中（AND 语义）
	Genres     string
	Authors    string
	Publishers string
	// Premiered 是 4 位年份；图书/漫画/游戏匹配 >=，日漫匹配 ==，0 表示未设置
	Premiered int
	// Threshold 是类型专有的数值上限(页数/期数/通关时长/卷数)，语义为 <=
	Threshold *int
	// Finished 仅对漫画/日漫有效，true 过滤出已完结（完结日期非空）的作品
	Finished bool
	// MangaType 仅对日漫有效，对分类枚举值做大小写不敏感的子串匹配
	MangaType string
	// OrderBy 限定为统计属性白名单 avgScore/members/scoreCount
	OrderBy string
	// Ordering 为 ASC 时升序，其余值一律降序
	Ordering string
}

// ListArticlesOptions 是分页列表查询的完整选项。
type ListArticlesOptions struct {
	Page   int
	Limit  int
	Filter ArticleFilter
	// RequesterUsername 非空时，结果额外左连接该用户自己的追踪记录
	RequesterUsername string
}

// --- 写入参数 (仓储层入参) ---

// CreateArticleParams 携带创建作品需要的全部字段。
// 类型专有字段集中定义，各仓储只读取与自身类型相关的部分。
type CreateArticleParams struct {
	Title       string
	Slug        string
	Description string
	CoverURL    string
	Authors     string
	Publishers  string
	Genres      string
	Premiered   *time.Time
	Draft       bool
	Accepted    bool
	Contributor string

	// 类型专有字段
	Pages        int        // 图书
	Series       string     // 图书
	Issues       int        // 漫画
	GameMode     string     // 游戏
	Gears        string     // 游戏
	CompleteTime int        // 游戏
	Volumes      int        // 日漫
	Chapters     int        // 日漫
	MangaType    string     // 日漫
	FinishedAt   *time.Time // 漫画/日漫
}

// UpdateArticleParams 是部分更新的参数集，nil 字段表示不修改。
type UpdateArticleParams struct {
	Title       *string
	Description *string
	CoverURL    *string
	Authors     *string
	Publishers  *string
	Genres      *string
	Premiered   *time.Time
	Draft       *bool
	Accepted    *bool

	// ResetCreatedAt 为 true 时把 created_at 重置为当前时间。
	// 草稿被重新提交(draft 显式置 true)时由 Service 层设置。
	ResetCreatedAt bool

	// 类型专有字段
	Pages        *int
	Series       *string
	Issues       *int
	GameMode     *string
	Gears        *string
	CompleteTime *int
	Volumes      *int
	Chapters     *int
	MangaType    *string
	FinishedAt   *time.Time
}
