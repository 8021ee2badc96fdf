/*
 * @Description: 认证 HTTP 处理器：注册、邮件确认、登录、登出
 * @Author: 安知鱼
 * @Date: 2025-09-10 14:05:37
 * @LastEditTime: 2025-10-26 18:03:25
 * @LastEditors: 安知鱼
 */
package auth

import (
	"net/http"

	"github.com/anzhiyu-c/mediawall-app/internal/app/middleware"
	"github.com/anzhiyu-c/mediawall-app/internal/pkg/auth"
	"github.com/anzhiyu-c/mediawall-app/pkg/response"

	auth_service "github.com/anzhiyu-c/mediawall-app/pkg/service/auth"

	"github.com/gin-gonic/gin"
)

// Handler 封装了认证相关的 HTTP 处理器。
type Handler struct {
	svc *auth_service.Service
	mw  *middleware.Middleware
}

// NewHandler 是 Handler 的构造函数。
func NewHandler(svc *auth_service.Service, mw *middleware.Middleware) *Handler {
	return &Handler{svc: svc, mw: mw}
}

type signupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required,min=3,max=32"`
	Password string `json:"password" binding:"required,min=8"`
}

// Signup 注册新账户。
// 新账户初始为 blocked+disabled，激活邮件同步发送，
// 发送失败时整个注册回退并返回 500。
func (h *Handler) Signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	if err := h.svc.Signup(c.Request.Context(), req.Email, req.Username, req.Password); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.SuccessWithStatus(c, http.StatusCreated, nil, "注册成功，请查收激活邮件")
}

// Confirm 用邮件中的确认令牌激活账户。
func (h *Handler) Confirm(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		response.Fail(c, http.StatusBadRequest, "缺少确认令牌")
		return
	}

	if err := h.svc.Confirm(c.Request.Context(), token); err != nil {
		response.FailWithError(c, err)
		return
	}
	response.Success(c, nil, "账户已激活")
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login 用户登录，成功后把会话令牌写入 Cookie。
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "请求参数无效: "+err.Error())
		return
	}

	token, user, err := h.svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		response.FailWithError(c, err)
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.mw.CookieName(), token, int(auth.SessionDuration.Seconds()), "/", "", false, true)
	response.Success(c, user, "登录成功")
}

// Logout 登出当前会话：令牌进入黑名单并清除 Cookie。
func (h *Handler) Logout(c *gin.Context) {
	if token, err := c.Cookie(h.mw.CookieName()); err == nil && token != "" {
		if err := h.svc.Logout(c.Request.Context(), token); err != nil {
			response.FailWithError(c, err)
			return
		}
	}

	c.SetCookie(h.mw.CookieName(), "", -1, "/", "", false, true)
	response.Success(c, nil, "已登出")
}
