/*
 * @Description: 评测请求体定义与各媒体类型的绑定函数
 * @Author: 安知鱼
 * @Date: 2025-09-10 09:30:44
 * @LastEditTime: 2025-10-26 17:50:12
 * @LastEditors: 安知鱼
 */
package review

import (
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"

	review_service "github.com/anzhiyu-c/mediawall-app/pkg/service/review"

	"github.com/gin-gonic/gin"
)

// reviewRequest 是图书/漫画/日漫评测的请求体，四项分项评分可选。
type reviewRequest struct {
	Review     string `json:"review" binding:"required"`
	Overall    int    `json:"overall" binding:"required,min=1,max=10"`
	Art        *int   `json:"art" binding:"omitempty,min=1,max=10"`
	Characters *int   `json:"characters" binding:"omitempty,min=1,max=10"`
	Story      *int   `json:"story" binding:"omitempty,min=1,max=10"`
	Enjoyment  *int   `json:"enjoyment" binding:"omitempty,min=1,max=10"`
}

func (r *reviewRequest) toParams() *model.CreateReviewParams {
	return &model.CreateReviewParams{
		Review:     r.Review,
		Overall:    r.Overall,
		Art:        r.Art,
		Characters: r.Characters,
		Story:      r.Story,
		Enjoyment:  r.Enjoyment,
	}
}

// reviewUpdateRequest 是评测部分更新的请求体，nil 字段不修改。
type reviewUpdateRequest struct {
	Review     *string `json:"review"`
	Overall    *int    `json:"overall" binding:"omitempty,min=1,max=10"`
	Art        *int    `json:"art" binding:"omitempty,min=1,max=10"`
	Characters *int    `json:"characters" binding:"omitempty,min=1,max=10"`
	Story      *int    `json:"story" binding:"omitempty,min=1,max=10"`
	Enjoyment  *int    `json:"enjoyment" binding:"omitempty,min=1,max=10"`
}

func (r *reviewUpdateRequest) toParams() *model.UpdateReviewParams {
	return &model.UpdateReviewParams{
		Review:     r.Review,
		Overall:    r.Overall,
		Art:        r.Art,
		Characters: r.Characters,
		Story:      r.Story,
		Enjoyment:  r.Enjoyment,
	}
}

func bindCreate(c *gin.Context) (*model.CreateReviewParams, error) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return req.toParams(), nil
}

func bindUpdate(c *gin.Context) (*model.UpdateReviewParams, error) {
	var req reviewUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return nil, err
	}
	return req.toParams(), nil
}

// NewBooksHandler 构造图书评测处理器。
func NewBooksHandler(svc *review_service.Service[*model.BooksReview]) *Handler[*model.BooksReview] {
	return NewHandler(svc, BindingSpec{BindCreate: bindCreate, BindUpdate: bindUpdate})
}

// NewComicsHandler 构造漫画评测处理器。
func NewComicsHandler(svc *review_service.Service[*model.ComicsReview]) *Handler[*model.ComicsReview] {
	return NewHandler(svc, BindingSpec{BindCreate: bindCreate, BindUpdate: bindUpdate})
}

// NewMangasHandler 构造日漫评测处理器。
func NewMangasHandler(svc *review_service.Service[*model.MangasReview]) *Handler[*model.MangasReview] {
	return NewHandler(svc, BindingSpec{BindCreate: bindCreate, BindUpdate: bindUpdate})
}

// --- 游戏 ---

// gameReviewRequest 在公共分项之外增加游戏专有的三项评分。
type gameReviewRequest struct {
	reviewRequest
	Graphics *int `json:"graphics" binding:"omitempty,min=1,max=10"`
	Music    *int `json:"music" binding:"omitempty,min=1,max=10"`
	Voicing  *int `json:"voicing" binding:"omitempty,min=1,max=10"`
}

type gameReviewUpdateRequest struct {
	reviewUpdateRequest
	Graphics *int `json:"graphics" binding:"omitempty,min=1,max=10"`
	Music    *int `json:"music" binding:"omitempty,min=1,max=10"`
	Voicing  *int `json:"voicing" binding:"omitempty,min=1,max=10"`
}

// NewGamesHandler 构造游戏评测处理器。
func NewGamesHandler(svc *review_service.Service[*model.GamesReview]) *Handler[*model.GamesReview] {
	return NewHandler(svc, BindingSpec{
		BindCreate: func(c *gin.Context) (*model.CreateReviewParams, error) {
			var req gameReviewRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params := req.toParams()
			params.Graphics = req.Graphics
			params.Music = req.Music
			params.Voicing = req.Voicing
			return params, nil
		},
		BindUpdate: func(c *gin.Context) (*model.UpdateReviewParams, error) {
			var req gameReviewUpdateRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params := req.toParams()
			params.Graphics = req.Graphics
			params.Music = req.Music
			params.Voicing = req.Voicing
			return params, nil
		},
	})
}
