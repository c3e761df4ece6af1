package cqcode

import "strings"

// Escape rewrites s so it can be embedded in CQ wire text. The rules
// run in a fixed order: ampersands first, so the entities introduced by
// the bracket rules are not themselves re-escaped. insideValue
// additionally escapes commas, which are only structural inside a tag's
// attribute list.
func Escape(s string, insideValue bool) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "[", "&#91;")
	s = strings.ReplaceAll(s, "]", "&#93;")
	if insideValue {
		s = strings.ReplaceAll(s, ",", "&#44;")
	}
	return s
}

// EscapeValue is Escape with insideValue set, for text going into a tag
// attribute value.
func EscapeValue(s string) string { return Escape(s, true) }

// Unescape resolves the four wire entities, in the reverse order of
// Escape: &amp; resolves last, so the bare & it produces cannot be
// re-read as the start of another entity.
func Unescape(s string) string {
	s = strings.ReplaceAll(s, "&#44;", ",")
	s = strings.ReplaceAll(s, "&#91;", "[")
	s = strings.ReplaceAll(s, "&#93;", "]")
	s = strings.ReplaceAll(s, "&amp;", "&")
	return s
}
