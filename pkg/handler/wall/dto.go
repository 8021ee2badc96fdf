/*
 * @Description: 追踪墙请求体定义与各媒体类型的绑定函数
 * @Author: 安知鱼
 * @Date: 2025-09-09 15:40:22
 * @LastEditTime: 2025-10-26 17:31:04
 * @LastEditors: 安知鱼
 */
package wall

import (
	"fmt"
	"time"

	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"

	wall_service "github.com/anzhiyu-c/mediawall-app/pkg/service/wall"

	"github.com/gin-gonic/gin"
)

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

func validStatus(status string) bool {
	for _, s := range constant.WallStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// wallRequestBase 是四种媒体类型追踪记录创建请求的公共部分。
type wallRequestBase struct {
	Status     string   `json:"status" binding:"required"`
	Score      *float64 `json:"score"`
	StartedAt  *string  `json:"startedAt"`
	FinishedAt *string  `json:"finishedAt"`
}

func (r *wallRequestBase) toParams() (*model.CreateWallParams, error) {
	if !validStatus(r.Status) {
		return nil, fmt.Errorf("status 必须是 %v 之一", constant.WallStatuses)
	}
	startedAt, err := parseDate(r.StartedAt)
	if err != nil {
		return nil, err
	}
	finishedAt, err := parseDate(r.FinishedAt)
	if err != nil {
		return nil, err
	}
	return &model.CreateWallParams{
		Status:     r.Status,
		Score:      r.Score,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
	}, nil
}

// wallUpdateBase 是追踪记录部分更新请求的公共部分，nil 字段不修改。
type wallUpdateBase struct {
	Status     *string  `json:"status"`
	Score      *float64 `json:"score"`
	StartedAt  *string  `json:"startedAt"`
	FinishedAt *string  `json:"finishedAt"`
}

func (r *wallUpdateBase) toParams() (*model.UpdateWallParams, error) {
	if r.Status != nil && !validStatus(*r.Status) {
		return nil, fmt.Errorf("status 必须是 %v 之一", constant.WallStatuses)
	}
	startedAt, err := parseDate(r.StartedAt)
	if err != nil {
		return nil, err
	}
	finishedAt, err := parseDate(r.FinishedAt)
	if err != nil {
		return nil, err
	}
	return &model.UpdateWallParams{
		Status:     r.Status,
		Score:      r.Score,
		StartedAt:  startedAt,
		FinishedAt: finishedAt,
	}, nil
}

// --- 图书 ---

type createBookWallRequest struct {
	wallRequestBase
	Pages int `json:"pages"`
}

type updateBookWallRequest struct {
	wallUpdateBase
	Pages *int `json:"pages"`
}

// NewBooksHandler 构造图书追踪墙处理器。
func NewBooksHandler(svc *wall_service.Service[*model.WallsBook]) *Handler[*model.WallsBook] {
	return NewHandler(svc, BindingSpec{
		BindCreate: func(c *gin.Context) (*model.CreateWallParams, error) {
			var req createBookWallRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			params.Pages = req.Pages
			return params, nil
		},
		BindUpdate: func(c *gin.Context) (*model.UpdateWallParams, error) {
			var req updateBookWallRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			params.Pages = req.Pages
			return params, nil
		},
	})
}

// --- 漫画 ---

type createComicWallRequest struct {
	wallRequestBase
	Issues int `json:"issues"`
}

type updateComicWallRequest struct {
	wallUpdateBase
	Issues *int `json:"issues"`
}

// NewComicsHandler 构造漫画追踪墙处理器。
func NewComicsHandler(svc *wall_service.Service[*model.WallsComic]) *Handler[*model.WallsComic] {
	return NewHandler(svc, BindingSpec{
		BindCreate: func(c *gin.Context) (*model.CreateWallParams, error) {
			var req createComicWallRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			params.Issues = req.Issues
			return params, nil
		},
		BindUpdate: func(c *gin.Context) (*model.UpdateWallParams, error) {
			var req updateComicWallRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			params.Issues = req.Issues
			return params, nil
		},
	})
}

// --- 游戏 ---

type createGameWallRequest struct {
	wallRequestBase
	HoursPlayed int `json:"hoursPlayed"`
}

type updateGameWallRequest struct {
	wallUpdateBase
	HoursPlayed *int `json:"hoursPlayed"`
}

// NewGamesHandler 构造游戏追踪墙处理器。
func NewGamesHandler(svc *wall_service.Service[*model.WallsGame]) *Handler[*model.WallsGame] {
	return NewHandler(svc, BindingSpec{
		BindCreate: func(c *gin.Context) (*model.CreateWallParams, error) {
			var req createGameWallRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			params.HoursPlayed = req.HoursPlayed
			return params, nil
		},
		BindUpdate: func(c *gin.Context) (*model.UpdateWallParams, error) {
			var req updateGameWallRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			params.HoursPlayed = req.HoursPlayed
			return params, nil
		},
	})
}

// --- 日漫 ---

type createMangaWallRequest struct {
	wallRequestBase
	Volumes  int `json:"volumes"`
	Chapters int `json:"chapters"`
}

type updateMangaWallRequest struct {
	wallUpdateBase
	Volumes  *int `json:"volumes"`
	Chapters *int `json:"chapters"`
}

// NewMangasHandler 构造日漫追踪墙处理器。
func NewMangasHandler(svc *wall_service.Service[*model.WallsManga]) *Handler[*model.WallsManga] {
	return NewHandler(svc, BindingSpec{
		BindCreate: func(c *gin.Context) (*model.CreateWallParams, error) {
			var req createMangaWallRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			params.Volumes = req.Volumes
			params.Chapters = req.Chapters
			return params, nil
		},
		BindUpdate: func(c *gin.Context) (*model.UpdateWallParams, error) {
			var req updateMangaWallRequest
			if err := c.ShouldBindJSON(&req); err != nil {
				return nil, err
			}
			params, err := req.toParams()
			if err != nil {
				return nil, err
			}
			params.Volumes = req.Volumes
			params.Chapters = req.Chapters
			return params, nil
		},
	})
}
