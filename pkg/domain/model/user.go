/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:44:19
 * @LastEditTime: 2025-09-26 12:18:03
 * @LastEditors: 安知鱼
 */
package model

import "time"

// User 是用户的核心领域模型。
// PasswordHash 与 ConfirmationToken 永远不参与 JSON 序列化。
type User struct {
	ID                 uint      `json:"-"`
	PublicID           string    `json:"id"`
	Email              string    `json:"email"`
	Username           string    `json:"username"`
	PasswordHash       string    `json:"-"`
	Role               string    `json:"role"`
	Blocked            bool      `json:"blocked"`
	Enabled            bool      `json:"enabled"`
	ConfirmationToken  string    `json:"-"`
	ContributionPoints int       `json:"contributionPoints"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

// Requester 是已解析的请求者身份。未登录的请求没有 Requester。
type Requester struct {
	Username string
	Role     string
}

// IsStaff 返回请求者是否拥有版主或管理员权限。
func (r *Requester) IsStaff() bool {
	return r != nil && (r.Role == "MODERATOR" || r.Role == "ADMIN")
}

// IsAdmin 返回请求者是否为管理员。
func (r *Requester) IsAdmin() bool {
	return r != nil && r.Role == "ADMIN"
}
