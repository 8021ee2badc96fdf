package parser

import (
	"strings"
	"testing"
)

func TestMarkdownToHTML(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		contains    []string
		notContains []string
	}{
		{
			name:     "基础语法渲染",
			input:    "这是**加粗**和*斜体*",
			contains: []string{"<strong>加粗</strong>", "<em>斜体</em>"},
		},
		{
			name:     "GFM 删除线",
			input:    "~~划掉~~",
			contains: []string{"<del>划掉</del>"},
		},
		{
			name:        "script 标签被净化",
			input:       "正常内容<script>alert('xss')</script>",
			contains:    []string{"正常内容"},
			notContains: []string{"<script>", "alert"},
		},
		{
			name:        "内联事件属性被净化",
			input:       `<img src="x" onerror="alert(1)">`,
			notContains: []string{"onerror"},
		},
		{
			name:     "链接自动识别",
			input:    "见 https://example.com 的说明",
			contains: []string{`<a href="https://example.com"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := MarkdownToHTML(tt.input)
			if err != nil {
				t.Fatalf("渲染失败: %v", err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(got, want) {
					t.Errorf("输出缺少 %q:\n%s", want, got)
				}
			}
			for _, bad := range tt.notContains {
				if strings.Contains(got, bad) {
					t.Errorf("输出不应包含 %q:\n%s", bad, got)
				}
			}
		})
	}
}
