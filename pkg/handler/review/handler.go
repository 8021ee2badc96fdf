/*
 * @Description: 评测 HTTP 处理器，泛型实现
 * @Author: 安知鱼
 * @Date: 2025-09-10 09:12:51
 * @LastEditTime: 2025-10-26 17:44:19
 * @LastEditors: 安知鱼
 */
package review

import (
	"net/http"

	"github.com/anzhiyu-c/mediawall-app/internal/app/middleware"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/response"

	review_service "github.com/anzhiyu-c/mediawall-app/pkg/service/review"

	"github.com/gin-gonic/gin"
)

// BindingSpec 描述单一媒体类型评测的请求体绑定。
type BindingSpec struct {
	BindCreate func(c *gin.Context) (*model.CreateReviewParams, error)
	BindUpdate func(c *gin.Context) (*model.UpdateReviewParams, error)
}

// Handler 封装了单一媒体类型的全部评测接口。
type Handler[R model.Review] struct {
	svc  *review_service.Service[R]
	spec BindingSpec
}

// NewHandler 是 Handler 的构造函数。
func NewHandler[R model.Review](svc *review_service.Service[R], spec BindingSpec) *Handler[R] {
	return &Handler[R]{svc: svc, spec: spec}
}

// Create 为当前登录用户发表一篇评测。
// 路径参数 identifier 指向被评测的作品；作品不存在返回 404，
// 没有合格的追踪状态或重复评测返回 409。
func (h *Handler[R]) Create(c *gin.Context) {
	params, err := h.spec.BindCreate(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	created, err := h.svc.Create(c.Request.Context(), middleware.RequesterFrom(c), c.Param("identifier"), params)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, created, "创建成功")
}

// Get 获取单篇评测。
func (h *Handler[R]) Get(c *gin.Context) {
	found, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, found, "获取成功")
}

// ListByArticle 列出某作品收到的全部评测。
func (h *Handler[R]) ListByArticle(c *gin.Context) {
	reviews, err := h.svc.ListByArticle(c.Request.Context(), c.Param("identifier"))
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, reviews, "获取成功")
}

// ListByUser 列出某用户发表的全部评测。
func (h *Handler[R]) ListByUser(c *gin.Context) {
	reviews, err := h.svc.ListByUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, reviews, "获取成功")
}

// Update 部分更新一篇评测，仅作者本人可用。
func (h *Handler[R]) Update(c *gin.Context) {
	params, err := h.spec.BindUpdate(c)
	if err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), middleware.RequesterFrom(c), c.Param("id"), params)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, updated, "更新成功")
}

// Delete 删除一篇评测，作者本人或管理员可用。
func (h *Handler[R]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.RequesterFrom(c), c.Param("id")); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusNoContent, nil, "删除成功")
}
