/*
 * @Description: 认证与角色鉴权中间件
 * @Author: 安知鱼
 * @Date: 2025-09-12 10:18:40
 * @LastEditTime: 2025-10-26 09:35:14
 * @LastEditors: 安知鱼
 */
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/anzhiyu-c/mediawall-app/internal/pkg/auth"
	"github.com/anzhiyu-c/mediawall-app/pkg/config"
	"github.com/anzhiyu-c/mediawall-app/pkg/constant"
	"github.com/anzhiyu-c/mediawall-app/pkg/domain/model"
	"github.com/anzhiyu-c/mediawall-app/pkg/response"
	service_auth "github.com/anzhiyu-c/mediawall-app/pkg/service/auth"
)

const defaultTokenCookie = "mediawall_token"

type Middleware struct {
	tokenSvc   service_auth.TokenService
	cookieName string
}

func NewMiddleware(tokenSvc service_auth.TokenService, cfg *config.Config) *Middleware {
	return &Middleware{
		tokenSvc:   tokenSvc,
		cookieName: cfg.GetStringOrDefault(config.KeyTokenCookieName, defaultTokenCookie),
	}
}

// CookieName 返回会话 Cookie 的名称，登录/登出 Handler 用它写入和清除。
func (m *Middleware) CookieName() string {
	return m.cookieName
}

// extractToken 依次尝试从会话 Cookie 和 Authorization 头中取出令牌。
func (m *Middleware) extractToken(c *gin.Context) string {
	if token, err := c.Cookie(m.cookieName); err == nil && token != "" {
		return token
	}
	authHeader := c.Request.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}
	return ""
}

// JWTAuth 是强制性的认证中间件，未携带或无效令牌一律 401。
func (m *Middleware) JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			response.Fail(c, http.StatusUnauthorized, "请求未携带Token，无权限访问")
			c.Abort()
			return
		}
		claims, err := m.tokenSvc.Parse(c.Request.Context(), tokenString)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "无效或过期的Token")
			c.Abort()
			return
		}
		c.Set(auth.ClaimsKey, claims)
		c.Next()
	}
}

// JWTAuthOptional 是可选的认证中间件。
// 没有令牌时按游客放行；携带了无效令牌同样按游客处理，不阻断读接口。
func (m *Middleware) JWTAuthOptional() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := m.extractToken(c)
		if tokenString == "" {
			c.Next()
			return
		}
		claims, err := m.tokenSvc.Parse(c.Request.Context(), tokenString)
		if err == nil {
			c.Set(auth.ClaimsKey, claims)
		}
		c.Next()
	}
}

// RequireRoles 是角色门禁，必须在 JWTAuth 之后挂载。
// 请求者角色不在给定集合内时返回 403。
func (m *Middleware) RequireRoles(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(c *gin.Context) {
		requester := RequesterFrom(c)
		if requester == nil || !allowed[requester.Role] {
			response.Fail(c, http.StatusForbidden, "权限不足")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireStaff 要求版主或管理员权限。
func (m *Middleware) RequireStaff() gin.HandlerFunc {
	return m.RequireRoles(constant.RoleModerator, constant.RoleAdmin)
}

// RequireAdmin 要求管理员权限。
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRoles(constant.RoleAdmin)
}

// RequesterFrom 从请求上下文取出已认证的请求者身份，游客返回 nil。
func RequesterFrom(c *gin.Context) *model.Requester {
	value, exists := c.Get(auth.ClaimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*auth.CustomClaims)
	if !ok {
		return nil
	}
	return &model.Requester{Username: claims.Username, Role: claims.Role}
}
