package cqcode

import "strings"

// KindText is the reserved kind carrying a literal text run. Its wire
// form is the raw content of the "text" attribute, not a [CQ:...] token.
const KindText = "text"

// Attr is one key/value entry in a tag's attribute mapping. Order is
// significant: serialization walks entries in insertion order.
type Attr struct {
	Key string
	Val Value
}

// Tag is one CQ code: a kind name plus an ordered attribute mapping.
// The base mapping is fixed at construction. Only the override mapping
// may change afterwards, and only by wholesale replacement through
// WithOverride.
type Tag struct {
	kind     string
	base     []Attr
	override []Attr
}

// New builds a tag of the given kind from base attributes. The kind is
// free-form; custom kinds round-trip the same as catalogued ones.
func New(kind string, base ...Attr) *Tag {
	return &Tag{kind: kind, base: append([]Attr(nil), base...)}
}

// Kind returns the tag's kind name.
func (t *Tag) Kind() string { return t.kind }

// Get returns the effective value for key: the override mapping is
// consulted first, then the base mapping.
func (t *Tag) Get(key string) (Value, bool) {
	for _, a := range t.override {
		if a.Key == key {
			return a.Val, true
		}
	}
	for _, a := range t.base {
		if a.Key == key {
			return a.Val, true
		}
	}
	return Value{}, false
}

// WithOverride replaces the entire override mapping and returns t.
// Overrides shadow base attributes of the same key at serialization
// time without touching the base mapping; a second call discards the
// first call's overrides entirely.
func (t *Tag) WithOverride(attrs ...Attr) *Tag {
	t.override = append([]Attr(nil), attrs...)
	return t
}

// effective overlays base with override: base entries in insertion
// order (shadowed where a key collides), then override-only keys in
// their own insertion order.
func (t *Tag) effective() []Attr {
	if len(t.override) == 0 {
		return t.base
	}
	out := make([]Attr, 0, len(t.base)+len(t.override))
	for _, a := range t.base {
		if v, ok := findAttr(t.override, a.Key); ok {
			a.Val = v
		}
		out = append(out, a)
	}
	for _, a := range t.override {
		if _, ok := findAttr(t.base, a.Key); !ok {
			out = append(out, a)
		}
	}
	return out
}

func findAttr(attrs []Attr, key string) (Value, bool) {
	for _, a := range attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return Value{}, false
}

// String renders the wire form [CQ:<kind>,<k>=<v>,...]. Absent entries
// are skipped; null entries are emitted as "null". Values are written
// exactly as stored: escaping is the producer's job before a value
// enters the mapping, never the serializer's.
func (t *Tag) String() string {
	if t.kind == KindText {
		v, _ := t.Get("text")
		return v.Text()
	}
	var b strings.Builder
	b.WriteString("[CQ:")
	b.WriteString(t.kind)
	for _, a := range t.effective() {
		if a.Val.IsAbsent() {
			continue
		}
		b.WriteByte(',')
		b.WriteString(a.Key)
		b.WriteByte('=')
		b.WriteString(a.Val.Text())
	}
	b.WriteByte(']')
	return b.String()
}

// Segment renders the structured {type, data} form. Both absent and
// null entries are dropped here, unlike the wire form which keeps
// nulls.
func (t *Tag) Segment() Segment {
	data := make(map[string]any, len(t.base)+len(t.override))
	for _, a := range t.effective() {
		if a.Val.IsAbsent() || a.Val.IsNull() {
			continue
		}
		data[a.Key] = a.Val.Native()
	}
	return Segment{Type: t.kind, Data: data}
}

// text returns the wire stringification of an attribute, or "" when the
// attribute is missing or absent. Accessor views are built on this.
func (t *Tag) text(key string) string {
	v, _ := t.Get(key)
	return v.Text()
}
