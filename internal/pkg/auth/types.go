/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 09:15:40
 * @LastEditTime: 2025-09-02 09:15:46
 * @LastEditors: 安知鱼
 */
package auth

import "github.com/golang-jwt/jwt/v5"

// ClaimsKey 是用于在 gin.Context 中存储和检索用户信息结构体的键。
const ClaimsKey = "user_claims"

// CustomClaims 定义了 JWT 的自定义 Claims 结构体。
// Username 和 Role 共同构成请求者(Requester)身份，写操作的鉴权都基于它们。
type CustomClaims struct {
	Username string `json:"username"` // 用户名
	Role     string `json:"role"`     // 用户角色 ADMIN/MODERATOR/USER
	jwt.RegisteredClaims
}
