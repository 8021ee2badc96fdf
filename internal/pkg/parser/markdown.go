/*
 * @Description:
 * @Author: 安知鱼
 * @Date: 2025-09-10 15:12:44
 * @LastEditTime: 2025-09-10 15:31:02
 * @LastEditors: 安知鱼
 */
package parser

import (
	"bytes"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

var mdParser goldmark.Markdown
var policy *bluemonday.Policy

func init() {
	// 初始化 Goldmark 解析器，评测正文支持常用的 GFM 语法
	mdParser = goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,           // 支持 GitHub Flavored Markdown
			extension.Linkify,       // 自动识别链接
			extension.Strikethrough, // 删除线
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(), // 硬换行
			html.WithUnsafe(),    // 信任所有原始 HTML，后续由 bluemonday 清理
		),
	)

	// UGCPolicy 适用于用户生成的内容
	policy = bluemonday.UGCPolicy()
}

// MarkdownToHTML 将评测的 Markdown 正文转换为安全的 HTML 字符串
func MarkdownToHTML(mdContent string) (string, error) {
	var buf bytes.Buffer
	if err := mdParser.Convert([]byte(mdContent), &buf); err != nil {
		return "", err
	}
	return policy.Sanitize(buf.String()), nil
}
