package cqcode

import (
	"regexp"
	"strings"
)

// tagRe is the full tag grammar: lowercase kind, optional attribute
// list with no unescaped closing bracket. Anything else is text.
var tagRe = regexp.MustCompile(`^\[CQ:([a-z]+)(?:,([^\]]+))?\]$`)

// ParseToken converts one token into a tag. A token that does not match
// the tag grammar becomes a "text" tag carrying the token verbatim;
// that literal fallback is the only recovery path, so parsing never
// fails. Attribute values are kept exactly as they appeared on the
// wire, still escaped: unescaping is the caller's decision.
func ParseToken(token string) *Tag {
	m := tagRe.FindStringSubmatch(token)
	if m == nil {
		return Text(token)
	}
	if m[2] == "" {
		return New(m[1])
	}
	pieces := strings.Split(m[2], ",")
	base := make([]Attr, 0, len(pieces))
	for _, p := range pieces {
		// Only the first '=' splits; the value may contain more.
		k, v, _ := strings.Cut(p, "=")
		base = append(base, Attr{Key: k, Val: Str(v)})
	}
	return New(m[1], base...)
}
