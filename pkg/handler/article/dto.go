/*
 * @Description: 作品请求体定义与各媒体类型的绑定函数
 * @Author: 安知鱼
 * @Date: 2025-09-09 10:02:33
 * @LastEditTime: 2025-10-26 17:05:40
 * @LastEditors: 安知鱼
 */
package article

import (
	"fmt"
	"time"

	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"

	article_service "github.com/anzhiyu-c/mediawall-app/pkg/service/article"

	"github.com/gin-gonic/gin"
)

// dateLayout 是请求体中日期字段的格式。
const dateLayout = "2006-01-02"

func parseDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *raw)
	if err != nil {
		return nil, fmt.Errorf("日期格式必须是 %s: %w", dateLayout, err)
	}
	return &t, nil
}

// articleRequestBase 是四种媒体类型创建请求的公共部分。
type articleRequestBase struct {
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	CoverURL    string  `json:"coverUrl"`
	Authors     string  `json:"authors"`
	Publishers  string  `json:"publishers"`
	Genres      string  `json:"genres"`
	Premiered   *string `json:"premiered"`
	Draft       bool    `json:"draft"`
}

func (r *articleRequestBase) toParams() (*model.CreateArticleParams, error) {
	premiered, err := parseDate(r.Premiered)
	if err != nil {
		return nil, err
	}
	return &model.CreateArticleParams{
		Title:       r.Title,
		Description: r.Description,
		CoverURL:    r.CoverURL,
		Authors:     r.Authors,
		Publishers:  r.Publishers,
		Genres:      r.Genres,
		Premiered:   premiered,
		Draft:       r.Draft,
	}, nil
}

// articleUpdateBase 是四种媒体类型更新请求的公共部分，nil 字段不修改。
type articleUpdateBase struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	CoverURL    *string `json:"coverUrl"`
	Authors     *string `json:"authors"`
	Publishers  *string `json:"publishers"`
	Genres      *string `json:"genres"`
	Premiered   *string `json:"premiered"`
	Draft       *bool   `json:"draft"`
}

func (r *articleUpdateBase) toParams() (*model.UpdateArticleParams, error) {
	premiered, err := parseDate(r.Premiered)
	if err != nil {
		return nil, err
	}
	return &model.UpdateArticleParams{
		Title:       r.Title,
		Description: r.Description,
		CoverURL:    r.CoverURL,
		Authors:     r.Authors,
		Publishers:  r.Publishers,
		Genres:      r.Genres,
		Premiered:   premiered,
		Draft:       r.Draft,
	}, nil
}

// --- 图书 ---

type createBookRequest struct {
	articleRequestBase
	Pages  int    `json:"pages"`
	Series string `json:"series"`
}

type updateBookRequest struct {
	articleUpdateBase
	Pages  *int    `json:"pages"`
	Series *string `json:"series"`
}

// NewBooksHandler 构造图书作品处理器。
func NewBooksHandler(svc *article_service.Service[*model.Book]) *Handler[*model.Book] {
	return NewHandler(svc, BindingSpec{
		ThresholdParam: "pages",
		BindCreate: func(c *gin.Context) (*model.CreateArticleParams, error) {
			var req createBookRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			params.Pages = req.Pages
			params.Series = req.Series
			return params, nil
		},
		BindUpdate: func(c *gin.Context) (*model.UpdateArticleParams, error) {
			var req updateBookRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			params.Pages = req.Pages
			params.Series = req.Series
			return params, nil
		},
	})
}

// --- 漫画 ---

type createComicRequest struct {
	articleRequestBase
	Issues     int     `json:"issues"`
	FinishedAt *string `json:"finishedAt"`
}

type updateComicRequest struct {
	articleUpdateBase
	Issues     *int    `json:"issues"`
	FinishedAt *string `json:"finishedAt"`
}

// NewComicsHandler 构造漫画作品处理器。
func NewComicsHandler(svc *article_service.Service[*model.Comic]) *Handler[*model.Comic] {
	return NewHandler(svc, BindingSpec{
		ThresholdParam: "issues",
		HasFinished:    true,
		BindCreate: func(c *gin.Context) (*model.CreateArticleParams, error) {
			var req createComicRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			finishedAt, err := parseDate(req.FinishedAt)
			if err != nil {
				return nil, err
			}
			params.Issues = req.Issues
			params.FinishedAt = finishedAt
			return params, nil
		},
		BindUpdate: func(c *gin.Context) (*model.UpdateArticleParams, error) {
			var req updateComicRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			finishedAt, err := parseDate(req.FinishedAt)
			if err != nil {
				return nil, err
			}
			params.Issues = req.Issues
			params.FinishedAt = finishedAt
			return params, nil
		},
	})
}

// --- 游戏 ---

type createGameRequest struct {
	articleRequestBase
	GameMode     string `json:"gameMode"`
	Gears        string `json:"gears"`
	CompleteTime int    `json:"completeTime"`
}

type updateGameRequest struct {
	articleUpdateBase
	GameMode     *string `json:"gameMode"`
	Gears        *string `json:"gears"`
	CompleteTime *int    `json:"completeTime"`
}

// NewGamesHandler 构造游戏作品处理器。
func NewGamesHandler(svc *article_service.Service[*model.Game]) *Handler[*model.Game] {
	return NewHandler(svc, BindingSpec{
		ThresholdParam: "completeTime",
		BindCreate: func(c *gin.Context) (*model.CreateArticleParams, error) {
			var req createGameRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			params.GameMode = req.GameMode
			params.Gears = req.Gears
			params.CompleteTime = req.CompleteTime
			return params, nil
		},
		BindUpdate: func(c *gin.Context) (*model.UpdateArticleParams, error) {
			var req updateGameRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			params.GameMode = req.GameMode
			params.Gears = req.Gears
			params.CompleteTime = req.CompleteTime
			return params, nil
		},
	})
}

// --- 日漫 ---

type createMangaRequest struct {
	articleRequestBase
	Volumes    int     `json:"volumes"`
	Chapters   int     `json:"chapters"`
	Type       string  `json:"type"`
	FinishedAt *string `json:"finishedAt"`
}

type updateMangaRequest struct {
	articleUpdateBase
	Volumes    *int    `json:"volumes"`
	Chapters   *int    `json:"chapters"`
	Type       *string `json:"type"`
	FinishedAt *string `json:"finishedAt"`
}

// NewMangasHandler 构造日漫作品处理器。
func NewMangasHandler(svc *article_service.Service[*model.Manga]) *Handler[*model.Manga] {
	return NewHandler(svc, BindingSpec{
		ThresholdParam: "volumes",
		HasFinished:    true,
		HasMangaType:   true,
		BindCreate: func(c *gin.Context) (*model.CreateArticleParams, error) {
			var req createMangaRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			finishedAt, err := parseDate(req.FinishedAt)
			if err != nil {
				return nil, err
			}
			params.Volumes = req.Volumes
			params.Chapters = req.Chapters
			params.MangaType = req.Type
			params.FinishedAt = finishedAt
			return params, nil
		},
		BindUpdate: func(c *gin.Context) (*model.UpdateArticleParams, error) {
			var req updateMangaRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			finishedAt, err := parseDate(req.FinishedAt)
			if err != nil {
				return nil, err
			}
			params.Volumes = req.Volumes
			params.Chapters = req.Chapters
			params.MangaType = req.Type
			params.FinishedAt = finishedAt
			return params, nil
		},
	})
}
