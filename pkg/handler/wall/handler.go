/*
 * @Description: 追踪墙 HTTP 处理器，泛型实现
 * @Author: 安知鱼
 * @Date: 2025-09-09 15:21:09
 * @LastEditTime: 2025-10-26 17:26:30
 * @LastEditors: 安知鱼
 */
package wall

import (
	"net/http"

	"github.com/anzhiyu-c/mediawall-app/internal/app/middleware"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/response"

	wall_service "github.com/anzhiyu-c/mediawall-app/pkg/service/wall"

	"github.com/gin-gonic/gin"
)

// BindingSpec 描述单一媒体类型追踪记录的请求体绑定。
type BindingSpec struct {
	BindCreate func(c *gin.Context) (*model.CreateWallParams, error)
	BindUpdate func(c *gin.Context) (*model.UpdateWallParams, error)
}

// Handler 封装了单一媒体类型的全部追踪墙接口。
type Handler[W model.Wall] struct {
	svc  *wall_service.Service[W]
	spec BindingSpec
}

// NewHandler 是 Handler 的构造函数。
func NewHandler[W model.Wall](svc *wall_service.Service[W], spec BindingSpec) *Handler[W] {
	return &Handler[W]{svc: svc, spec: spec}
}

// Create 为当前登录用户创建一条追踪记录。
// 路径参数 identifier 指向被追踪的作品，作品不存在返回 404，
// 重复追踪同一作品返回 409。
func (h *Handler[W]) Create(c *gin.Context) {
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

// Get 获取单条追踪记录。
func (h *Handler[W]) Get(c *gin.Context) {
	record, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, record, "获取成功")
}

// ListByUser 列出某用户在该媒体类型下的全部追踪记录。
func (h *Handler[W]) ListByUser(c *gin.Context) {
	records, err := h.svc.ListByUser(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, records, "获取成功")
}

// Update 部分更新一条追踪记录，仅记录所有者本人可用。
func (h *Handler[W]) Update(c *gin.Context) {
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

// Delete 删除一条追踪记录，所有者本人或管理员可用。
func (h *Handler[W]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), middleware.RequesterFrom(c), c.Param("id")); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusNoContent, nil, "删除成功")
}
