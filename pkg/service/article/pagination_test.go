package article

import (
	"net/url"
	"strings"
	"testing"
)

func TestPageLinks(t *testing.T) {
	base := "http://localhost:8091/api/articles/books"

	tests := []struct {
		name     string
		page     int
		limit    int
		total    int
		wantNext bool
		wantPrev bool
	}{
		{
			name:     "第一页且还有后续页",
			page:     1,
			limit:    10,
			total:    25,
			wantNext: true,
			wantPrev: false,
		},
		{
			name:     "中间页两个方向都有",
			page:     2,
			limit:    10,
			total:    25,
			wantNext: true,
			wantPrev: true,
		},
		{
			name:     "最后一页只有上一页",
			page:     3,
			limit:    10,
			total:    25,
			wantNext: false,
			wantPrev: true,
		},
		{
			name:     "恰好整除时最后一页没有下一页",
			page:     2,
			limit:    10,
			total:    20,
			wantNext: false,
			wantPrev: true,
		},
		{
			name:     "总数为零",
			page:     1,
			limit:    10,
			total:    0,
			wantNext: false,
			wantPrev: false,
		},
		{
			name:     "单页装下全部数据",
			page:     1,
			limit:    50,
			total:    25,
			wantNext: false,
			wantPrev: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, prev := PageLinks(base, url.Values{}, tt.page, tt.limit, tt.total)
			if (next != "") != tt.wantNext {
				t.Errorf("next = %q, 期望存在 = %v", next, tt.wantNext)
			}
			if (prev != "") != tt.wantPrev {
				t.Errorf("prev = %q, 期望存在 = %v", prev, tt.wantPrev)
			}
		})
	}
}

func TestPageLinks_回显过滤参数(t *testing.T) {
	base := "http://localhost:8091/api/articles/books"
	query := url.Values{
		"page":   {"2"},
		"limit":  {"10"},
		"name":   {"dune"},
		"genres": {"sci-fi,classic"},
	}

	next, prev := PageLinks(base, query, 2, 10, 100)

	for _, link := range []string{next, prev} {
		if link == "" {
			t.Fatal("中间页应同时生成两个链接")
		}
		u, err := url.Parse(link)
		if err != nil {
			t.Fatalf("链接无法解析: %v", err)
		}
		q := u.Query()
		if q.Get("name") != "dune" {
			t.Errorf("链接丢失了 name 参数: %s", link)
		}
		if q.Get("genres") != "sci-fi,classic" {
			t.Errorf("链接丢失了 genres 参数: %s", link)
		}
		if q.Get("limit") != "10" {
			t.Errorf("链接丢失了 limit 参数: %s", link)
		}
	}

	if !strings.Contains(next, "page=3") {
		t.Errorf("下一页链接的 page 应为 3: %s", next)
	}
	if !strings.Contains(prev, "page=1") {
		t.Errorf("上一页链接的 page 应为 1: %s", prev)
	}
}
