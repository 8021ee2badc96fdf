/*
 * @Description: 分页列表协议的返回结构
 * @Author: 安知鱼
 * @Date: 2025-09-02 14:21:37
 * @LastEditTime: 2025-09-25 17:02:14
 * @LastEditors: 安知鱼
 */
package model

// PaginatedResponse 是所有列表接口统一的返回结构。
// NextPage/PrevPage 是回显了全部有效过滤参数的完整 URL：
// page*limit < totalCount 时才有 NextPage，page >= 2 时才有 PrevPage，
// 否则为空字符串。该契约被前端直接消费，边界条件不可更改。
type PaginatedResponse[T any] struct {
	TotalCount int    `json:"totalCount"`
	Page       int    `json:"page"`
	Limit      int    `json:"limit"`
	Data       []T    `json:"data"`
	NextPage   string `json:"nextPage"`
	PrevPage   string `json:"prevPage"`
}
