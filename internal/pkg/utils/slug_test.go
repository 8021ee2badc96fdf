package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "普通英文标题", input: "Dune Messiah", expected: "dune-messiah"},
		{name: "大小写折叠", input: "The LEGEND of Zelda", expected: "the-legend-of-zelda"},
		{name: "连续分隔符折叠为单个连字符", input: "Spider-Man:  Into the Spider-Verse", expected: "spider-man-into-the-spider-verse"},
		{name: "首尾符号被去除", input: "...Hello World!!!", expected: "hello-world"},
		{name: "数字保留", input: "1984", expected: "1984"},
		{name: "带变音符的字母保留", input: "Pokémon", expected: "pokémon"},
		{name: "中日文字符保留", input: "進撃の巨人", expected: "進撃の巨人"},
		{name: "纯符号标题回退", input: "!!!", expected: "untitled"},
		{name: "空标题回退", input: "", expected: "untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Slugify(tt.input); got != tt.expected {
				t.Errorf("Slugify(%q) = %q, 期望 %q", tt.input, got, tt.expected)
			}
		})
	}
}
