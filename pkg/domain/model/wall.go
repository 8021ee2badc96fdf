/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:30:55
 * @LastEditTime: 2025-10-08 21:40:12
 * @LastEditors: 安知鱼
 */
package model

import "time"

// WallCore 是四种追踪墙记录共有的领域模型字段。
// ArticleID 是被追踪作品的公共标识符；ArticleTitle 冗余返回方便列表展示。
type WallCore struct {
	ID           string     `json:"id"`
	Username     string     `json:"username"`
	ArticleID    string     `json:"articleId"`
	ArticleTitle string     `json:"articleTitle,omitempty"`
	Status       string     `json:"status"`
	Score        *float64   `json:"score,omitempty"`
	StartedAt    *time.Time `json:"startedAt,omitempty"`
	FinishedAt   *time.Time `json:"finishedAt,omitempty"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// WallsBook 图书追踪记录
type WallsBook struct {
	WallCore
	Pages int `json:"pages"`
}

// WallsComic 漫画追踪记录
type WallsComic struct {
	WallCore
	Issues int `json:"issues"`
}

// WallsGame 游戏追踪记录
type WallsGame struct {
	WallCore
	HoursPlayed int `json:"hoursPlayed"`
}

// WallsManga 日漫追踪记录
type WallsManga struct {
	WallCore
	Volumes  int `json:"volumes"`
	Chapters int `json:"chapters"`
}

// Wall 约束了四种追踪记录领域模型的指针类型。
type Wall interface {
	Core() *WallCore
}

func (w *WallsBook) Core() *WallCore  { return &w.WallCore }
func (w *WallsComic) Core() *WallCore { return &w.WallCore }
func (w *WallsGame) Core() *WallCore  { return &w.WallCore }
func (w *WallsManga) Core() *WallCore { return &w.WallCore }

// CreateWallParams 是创建追踪记录的仓储层入参。
// ArticleDBID 已由 Service 层从公共标识符解码并验证存在。
type CreateWallParams struct {
	Username    string
	ArticleDBID uint
	Status      string
	Score       *float64
	StartedAt   *time.Time
	FinishedAt  *time.Time

	// 类型专有进度字段
	Pages       int // 图书
	Issues      int // 漫画
	HoursPlayed int // 游戏
	Volumes     int // 日漫
	Chapters    int // 日漫
}

// UpdateWallParams 是部分更新追踪记录的参数集，nil 字段表示不修改。
type UpdateWallParams struct {
	Status     *string
	Score      *float64
	StartedAt  *time.Time
	FinishedAt *time.Time

	Pages       *int
	Issues      *int
	HoursPlayed *int
	Volumes     *int
	Chapters    *int
}

// WallStatusStats 是单一媒体类型下某用户的追踪墙统计。
type WallStatusStats struct {
	Total        int            `json:"total"`
	StatusCounts map[string]int `json:"statusCounts"`
	MeanScore    *float64       `json:"meanScore"`
}
