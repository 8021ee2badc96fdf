/*
 * @Description: 由作品标题派生 URL slug
 * @Author: 安知鱼
 * @Date: 2025-09-03 11:42:08
 * @LastEditTime: 2025-09-27 16:30:52
 * @LastEditors: 安知鱼
 */
package utils

import (
	"strings"
	"unicode"
)

// Slugify 将标题转换为 URL 安全的 slug。
// 规则：小写化、字母数字保留、其余字符折叠为单个连字符、去除首尾连字符。
// slug 在作品创建时生成一次，之后不可变，与公共标识符共同构成详情页路径。
func Slugify(title string) string {
	var b strings.Builder
	b.Grow(len(title))

	lastHyphen := true // 抑制开头的连字符
	for _, r := range strings.ToLower(title) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			// 非 ASCII 字母（例如带变音符的字符）原样保留，由 URL 编码处理
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}

	slug := strings.TrimRight(b.String(), "-")
	if slug == "" {
		// 纯符号标题的兜底值，避免生成空路径段
		return "untitled"
	}
	return slug
}
