/*
 * @Description: 分页列表协议的链接生成
 * @Author: 安知鱼
 * @Date: 2025-09-08 11:02:50
 * @LastEditTime: 2025-09-28 09:47:22
 * @LastEditors: 安知鱼
 */
package article

import (
	"net/url"
	"strconv"
)

// buildPageURL 替换 page 参数并回显其余全部查询参数。
func buildPageURL(baseURL string, query url.Values, page int) string {
	q := url.Values{}
	for key, values := range query {
		if key == "page" {
			continue
		}
		for _, v := range values {
			q.Add(key, v)
		}
	}
	q.Set("page", strconv.Itoa(page))
	return baseURL + "?" + q.Encode()
}

// PageLinks 计算分页响应的上一页/下一页链接。
// page*limit < total 时才有下一页；page >= 2 时才有上一页；
// 无对应页时返回空字符串。该边界契约被前端直接消费，不可更改。
func PageLinks(baseURL string, query url.Values, page, limit, total int) (next, prev string) {
	if page*limit < total {
		next = buildPageURL(baseURL, query, page+1)
	}
	if page >= 2 {
		prev = buildPageURL(baseURL, query, page-1)
	}
	return next, prev
}
