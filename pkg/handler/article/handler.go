/*
 * @Description: 作品 HTTP 处理器，泛型实现，四种媒体类型共用
 * @Author: 安知鱼
 * @Date: 2025-09-09 09:31:45
 * @LastEditTime: 2025-10-26 17:02:18
 * @LastEditors: 安知鱼
 */
package article

import (
	"net/http"
	"regexp"
	"strconv"

	"github.com/anzhiyu-c/mediawall-app/internal/app/middleware"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/response"

	article_service "github.com/anzhiyu-c/mediawall-app/pkg/service/article"

	"github.com/gin-gonic/gin"
)

// BindingSpec 描述单一媒体类型在 HTTP 入口处的差异：
// 请求体绑定函数与类型专有的查询参数。
type BindingSpec struct {
	// ThresholdParam 是类型专有数值上限的查询参数名(pages/issues/completeTime/volumes)
	ThresholdParam string
	// HasFinished 为 true 时接受 finished 查询参数(漫画/日漫)
	HasFinished bool
	// HasMangaType 为 true 时接受 type 查询参数(日漫)
	HasMangaType bool

	BindCreate func(c *gin.Context) (*model.CreateArticleParams, error)
	BindUpdate func(c *gin.Context) (*model.UpdateArticleParams, error)
}

// Handler 封装了单一媒体类型的全部作品接口。
type Handler[M model.Article] struct {
	svc  *article_service.Service[M]
	spec BindingSpec
}

// NewHandler 是 Handler 的构造函数。
func NewHandler[M model.Article](svc *article_service.Service[M], spec BindingSpec) *Handler[M] {
	return &Handler[M]{svc: svc, spec: spec}
}

var yearPattern = regexp.MustCompile(`^\d{4}$`)

// parseListOptions 解析并校验列表查询参数。
// page/limit 是必填正整数，premiered 必须是 4 位年份，
// orderBy 限定在统计属性白名单内，违反任意一条都返回错误。
func (h *Handler[M]) parseListOptions(c *gin.Context) (*model.ListArticlesOptions, string) {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page <= 0 {
		return nil, "page 必须是正整数"
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil || limit <= 0 {
		return nil, "limit 必须是正整数"
	}

	filter := model.ArticleFilter{
		Name:       c.Query("name"),
		Genres:     c.Query("genres"),
		Authors:    c.Query("authors"),
		Publishers: c.Query("publishers"),
		Ordering:   c.Query("ordering"),
	}

	if premiered := c.Query("premiered"); premiered != "" {
		if !yearPattern.MatchString(premiered) {
			return nil, "premiered 必须是 4 位年份"
		}
		filter.Premiered, _ = strconv.Atoi(premiered)
	}

	if orderBy := c.Query("orderBy"); orderBy != "" {
		if !constant.StatsOrderKeys[orderBy] {
			return nil, "orderBy 仅支持 avgScore/members/scoreCount"
		}
		filter.OrderBy = orderBy
	}

	if h.spec.ThresholdParam != "" {
		if raw := c.Query(h.spec.ThresholdParam); raw != "" {
			threshold, err := strconv.Atoi(raw)
			if err != nil {
				return nil, h.spec.ThresholdParam + " 必须是整数"
			}
			filter.Threshold = &threshold
		}
	}
	if h.spec.HasFinished {
		filter.Finished = c.Query("finished") == "true"
	}
	if h.spec.HasMangaType {
		filter.MangaType = c.Query("type")
	}

	opts := &model.ListArticlesOptions{Page: page, Limit: limit, Filter: filter}
	if requester := middleware.RequesterFrom(c); requester != nil {
		opts.RequesterUsername = requester.Username
	}
	return opts, ""
}

// baseURL 还原当前请求的完整路径，供分页链接回显。
func baseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host + c.Request.URL.Path
}

// List 分页查询作品列表。
func (h *Handler[M]) List(c *gin.Context) {
	opts, msg := h.parseListOptions(c)
	if msg != "" {
		response.Fail(c, http.StatusBadRequest, msg)
		return
	}

	result, err := h.svc.List(c.Request.Context(), opts, baseURL(c), c.Request.URL.Query())
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, result, "获取成功")
}

// Get 获取作品详情。
func (h *Handler[M]) Get(c *gin.Context) {
	found, err := h.svc.Get(c.Request.Context(), c.Param("identifier"), c.Param("slug"), middleware.RequesterFrom(c))
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, found, "获取成功")
}

// Create 创建作品。普通用户的提交会进入草稿队列等待审核。
func (h *Handler[M]) Create(c *gin.Context) {
	params, err := h.spec.BindCreate(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	created, err := h.svc.Create(c.Request.Context(), middleware.RequesterFrom(c), params)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, created, "创建成功")
}

// Update 部分更新作品，仅版主/管理员可用。
func (h *Handler[M]) Update(c *gin.Context) {
	params, err := h.spec.BindUpdate(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), c.Param("identifier"), c.Param("slug"), params)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, updated, "更新成功")
}

// Delete 删除作品，仅版主/管理员可用。
func (h *Handler[M]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("identifier"), c.Param("slug")); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusNoContent, nil, "删除成功")
}
