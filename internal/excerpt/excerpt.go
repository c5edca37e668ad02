// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package excerpt derives short plain-text summaries from rich HTML content.
package excerpt

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength is the excerpt length used by list pages.
const DefaultMaxLength = 80

// Ellipsis is appended to truncated excerpts.
const Ellipsis = "…"

// tagPattern matches markup tags. The closing '>' is optional so an
// unterminated '<' swallows the rest of the input.
var tagPattern = regexp.MustCompile(`<[^>]*>?`)

// Extract strips tags from richText, collapses whitespace runs into single
// spaces and trims the result. If the cleaned text is longer than maxLength
// characters it is cut at exactly maxLength characters and Ellipsis is
// appended. Length is counted in runes, so multi-byte characters are never
// split. A maxLength <= 0 uses DefaultMaxLength.
func Extract(richText string, maxLength int) string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}

	plain := tagPattern.ReplaceAllString(richText, "")
	// strings.Fields splits on Unicode whitespace, including newlines
	// and U+3000.
	plain = strings.Join(strings.Fields(plain), " ")

	if utf8.RuneCountInString(plain) <= maxLength {
		return plain
	}
	return truncate(plain, maxLength) + Ellipsis
}

// truncate returns the first n runes of s.
func truncate(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
