/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:38:26
 * @LastEditTime: 2025-10-08 21:44:30
 * @LastEditors: 安知鱼
 */
package model

import "time"

// ReviewCore 是四种评测共有的领域模型字段。
// ReviewHTML 为正文 Markdown 渲染净化后的结果，只在详情/列表展示用。
type ReviewCore struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	ArticleID    string    `json:"articleId"`
	ArticleTitle string    `json:"articleTitle,omitempty"`
	Review       string    `json:"review"`
	ReviewHTML   string    `json:"reviewHtml,omitempty"`
	Overall      int       `json:"overall"`
	Art          *int      `json:"art,omitempty"`
	Characters   *int      `json:"characters,omitempty"`
	Story        *int      `json:"story,omitempty"`
	Enjoyment    *int      `json:"enjoyment,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// BooksReview 图书评测
type BooksReview struct {
	ReviewCore
}

// ComicsReview 漫画评测
type ComicsReview struct {
	ReviewCore
}

// GamesReview 游戏评测，额外有三个分项评分
type GamesReview struct {
	ReviewCore
	Graphics *int `json:"graphics,omitempty"`
	Music    *int `json:"music,omitempty"`
	Voicing  *int `json:"voicing,omitempty"`
}

// MangasReview 日漫评测
type MangasReview struct {
	ReviewCore
}

// Review 约束了四种评测领域模型的指针类型。
type Review interface {
	Core() *ReviewCore
}

func (r *BooksReview) Core() *ReviewCore  { return &r.ReviewCore }
func (r *ComicsReview) Core() *ReviewCore { return &r.ReviewCore }
func (r *GamesReview) Core() *ReviewCore  { return &r.ReviewCore }
func (r *MangasReview) Core() *ReviewCore { return &r.ReviewCore }

// CreateReviewParams 是创建评测的仓储层入参。
type CreateReviewParams struct {
	Username    string
	ArticleDBID uint
	Review      string
	ReviewHTML  string
	Overall     int
	Art         *int
	Characters  *int
	Story       *int
	Enjoyment   *int

	// 游戏专有分项
	Graphics *int
	Music    *int
	Voicing  *int
}

// UpdateReviewParams 是部分更新评测的参数集，nil 字段表示不修改。
type UpdateReviewParams struct {
	Review     *string
	ReviewHTML *string
	Overall    *int
	Art        *int
	Characters *int
	Story      *int
	Enjoyment  *int

	Graphics *int
	Music    *int
	Voicing  *int
}
