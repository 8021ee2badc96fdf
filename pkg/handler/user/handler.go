/*
 * @Description: 用户 HTTP 处理器：资料、追踪墙统计、管理员操作
 * @Author: 安知鱼
 * @Date: 2025-09-10 15:22:48
 * @LastEditTime: 2025-10-26 18:10:33
 * @LastEditors: 安知鱼
 */
package user

import (
	"net/http"

	"github.com/anzhiyu-c/mediawall-app/internal/app/middleware"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/response"

	user_service "github.com/anzhiyu-c/mediawall-app/pkg/service/user"

	"github.com/gin-gonic/gin"
)

// Handler 封装了用户相关的 HTTP 处理器。
type Handler struct {
	svc *user_service.Service
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *user_service.Service) *Handler {
	return &Handler{svc: svc}
}

// Me 返回当前登录用户的资料。
func (h *Handler) Me(c *gin.Context) {
	requester := middleware.RequesterFrom(c)
	if requester == nil {
		response.Fail(c, http.StatusUnauthorized, constant.ErrUnauthorized.Error())
		return
	}

	found, err := h.svc.GetByUsername(c.Request.Context(), requester.Username)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, found, "获取成功")
}

// Get 返回指定用户的公开资料。
func (h *Handler) Get(c *gin.Context) {
	found, err := h.svc.GetByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, found, "获取成功")
}

// Stats 返回指定用户的追踪墙统计。
// article 查询参数限定媒体类型，缺省聚合全部类型。
func (h *Handler) Stats(c *gin.Context) {
	articleType := constant.ArticleType(c.DefaultQuery("article", string(constant.ArticleTypeAll)))

	stats, err := h.svc.Stats(c.Request.Context(), c.Param("username"), articleType)
	if err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, stats, "获取成功")
}

type setBlockedRequest struct {
	Blocked *bool `json:"blocked" binding:"required"`
}

// SetBlocked 封禁/解封用户，仅管理员可用。
func (h *Handler) SetBlocked(c *gin.Context) {
	var req setBlockedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	if err := h.svc.SetBlocked(c.Request.Context(), middleware.RequesterFrom(c), c.Param("username"), *req.Blocked); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "更新成功")
}

type setRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// SetRole 修改用户角色，仅管理员可用。
func (h *Handler) SetRole(c *gin.Context) {
	var req setRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	if err := h.svc.SetRole(c.Request.Context(), middleware.RequesterFrom(c), c.Param("username"), req.Role); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "更新成功")
}
