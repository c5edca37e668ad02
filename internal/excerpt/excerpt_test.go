// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package excerpt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"simple paragraph", "<p>hello world</p>", 80, "hello world"},
		{"nested tags", `<div class="x"><p>a <strong>bold</strong> move</p></div>`, 80, "a bold move"},
		{"newlines and tabs", "<p>line one</p>\n\n<p>\tline   two</p>", 80, "line one line two"},
		{"adjacent block tags join", "<p>one</p><p>two</p>", 80, "onetwo"},
		{"ideographic space", "<p>お知らせ　です</p>", 80, "お知らせ です"},
		{"leading and trailing space", "   <br>  padded  <br/>  ", 80, "padded"},
		{"unterminated tag swallows rest", "before <img src='x'", 80, "before"},
		{"empty", "", 80, ""},
		{"only tags", "<p></p><br>", 80, ""},
		{"exactly max", strings.Repeat("a", 80), 80, strings.Repeat("a", 80)},
		{"one over max", strings.Repeat("a", 81), 80, strings.Repeat("a", 80) + "…"},
		{"custom max", "<p>abcdefghij</p>", 4, "abcd…"},
		{"zero max uses default", strings.Repeat("b", 90), 0, strings.Repeat("b", 80) + "…"},
		{"entities kept verbatim", "<p>Tom &amp; Jerry</p>", 80, "Tom &amp; Jerry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.in, tt.max))
		})
	}
}

func TestExtract_MultiByteCutAtBoundary(t *testing.T) {
	// 100 three-byte characters: the cut must land after the 80th character.
	in := "<p>" + strings.Repeat("日", 100) + "</p>"

	got := Extract(in, DefaultMaxLength)

	assert.True(t, utf8.ValidString(got), "excerpt must be valid UTF-8")
	assert.Equal(t, strings.Repeat("日", 80)+Ellipsis, got)
	assert.Equal(t, 81, utf8.RuneCountInString(got))
}

func TestExtract_MixedWidthBoundary(t *testing.T) {
	// 79 ASCII characters followed by multi-byte characters: the 80th
	// character is "é" and must be kept whole.
	in := strings.Repeat("x", 79) + "éàü"
	got := Extract(in, 80)
	assert.Equal(t, strings.Repeat("x", 79)+"é"+Ellipsis, got)
}

func TestExtract_NeverLongerThanMaxPlusEllipsis(t *testing.T) {
	inputs := []string{
		strings.Repeat("word ", 200),
		strings.Repeat("<span>長い本文</span>\n", 50),
		"<p>" + strings.Repeat("🙂", 300) + "</p>",
		"short",
	}
	for _, in := range inputs {
		got := Extract(in, 80)
		assert.LessOrEqual(t, utf8.RuneCountInString(got), 81)
	}
}

func TestExtract_NoTagsOrWhitespaceRunsRemain(t *testing.T) {
	in := "<h2>Title</h2>\n<ul>\n  <li>one</li>\n  <li>two</li>\n</ul>"
	got := Extract(in, 200)

	assert.NotContains(t, got, "<")
	assert.NotContains(t, got, ">")
	assert.NotContains(t, got, "  ")
	assert.NotContains(t, got, "\n")
	assert.Equal(t, "Title one two", got)
}

func TestExtract_Idempotent(t *testing.T) {
	inputs := []string{
		"<p>hello   world</p>",
		strings.Repeat("<b>abc</b> ", 40),
		"<p>" + strings.Repeat("語", 120) + "</p>",
		"",
	}
	for _, in := range inputs {
		once := Extract(in, 80)
		twice := Extract(once, 80)
		assert.Equal(t, once, twice, "input %q", in)
	}
}
