package cqcode

// Option fills in one optional attribute at construction time.
// Factories pre-declare every optional key with the absent sentinel, so
// an unset option leaves a slot that serialization drops while the
// kind's attribute order stays fixed.
type Option func(*Tag)

func set(key string, v Value) Option {
	return func(t *Tag) {
		for i := range t.base {
			if t.base[i].Key == key {
				t.base[i].Val = v
				return
			}
		}
		t.base = append(t.base, Attr{Key: key, Val: v})
	}
}

func newKind(kind string, base []Attr, opts ...Option) *Tag {
	t := &Tag{kind: kind, base: base}
	for _, o := range opts {
		o(t)
	}
	return t
}

// Text builds a literal text run. The content is carried raw; callers
// embedding it among other wire text escape it themselves.
func Text(text string) *Tag {
	return New(KindText, Attr{Key: "text", Val: Str(text)})
}

// Face builds a built-in emoji face by id.
func Face(id int64) *Tag {
	return New("face", Attr{Key: "id", Val: Int(id)})
}

// Record builds a voice clip reference.
func Record(file string, opts ...Option) *Tag {
	return newKind("record", []Attr{
		{Key: "file", Val: Str(file)},
		{Key: "magic", Val: Absent()},
		{Key: "cache", Val: Absent()},
		{Key: "proxy", Val: Absent()},
		{Key: "timeout", Val: Absent()},
	}, opts...)
}

// At builds a mention of one user.
func At(qq int64) *Tag {
	return New("at", Attr{Key: "qq", Val: Int(qq)})
}

// AtAll builds a mention of everyone in the group.
func AtAll() *Tag {
	return New("at", Attr{Key: "qq", Val: Str("all")})
}

// Share builds a link share card.
func Share(url, title string, opts ...Option) *Tag {
	return newKind("share", []Attr{
		{Key: "url", Val: Str(url)},
		{Key: "title", Val: Str(title)},
		{Key: "content", Val: Absent()},
		{Key: "image", Val: Absent()},
	}, opts...)
}

// Music builds a music share referencing a platform track, where typ is
// the platform name (qq, 163, xm).
func Music(typ string, id int64) *Tag {
	return New("music",
		Attr{Key: "type", Val: Str(typ)},
		Attr{Key: "id", Val: Int(id)},
	)
}

// CustomMusic builds a music share pointing at arbitrary URLs instead
// of a platform track.
func CustomMusic(url, audio, title string, opts ...Option) *Tag {
	return newKind("music", []Attr{
		{Key: "type", Val: Str("custom")},
		{Key: "url", Val: Str(url)},
		{Key: "audio", Val: Str(audio)},
		{Key: "title", Val: Str(title)},
		{Key: "content", Val: Absent()},
		{Key: "image", Val: Absent()},
	}, opts...)
}

// Image builds an image reference.
func Image(file string, opts ...Option) *Tag {
	return newKind("image", []Attr{
		{Key: "file", Val: Str(file)},
		{Key: "type", Val: Absent()},
		{Key: "url", Val: Absent()},
		{Key: "cache", Val: Absent()},
		{Key: "id", Val: Absent()},
		{Key: "c", Val: Absent()},
	}, opts...)
}

// Reply builds a reply referencing an earlier message by id.
func Reply(id int64) *Tag {
	return New("reply", Attr{Key: "id", Val: Int(id)})
}

// Poke builds a poke aimed at one user.
func Poke(qq int64) *Tag {
	return New("poke", Attr{Key: "qq", Val: Int(qq)})
}

// Gift builds a group gift for one user.
func Gift(qq int64, id int64) *Tag {
	return New("gift",
		Attr{Key: "qq", Val: Int(qq)},
		Attr{Key: "id", Val: Int(id)},
	)
}

// Node builds one forward-message node with inline content.
func Node(name string, uin int64, content ...*Tag) *Tag {
	return New("node",
		Attr{Key: "name", Val: Str(name)},
		Attr{Key: "uin", Val: Int(uin)},
		Attr{Key: "content", Val: Nested(content...)},
	)
}

// NodeID builds a forward-message node referencing an existing message.
func NodeID(id int64) *Tag {
	return New("node", Attr{Key: "id", Val: Int(id)})
}

// XML builds an XML rich card.
func XML(data string, opts ...Option) *Tag {
	return newKind("xml", []Attr{
		{Key: "data", Val: Str(data)},
		{Key: "resid", Val: Absent()},
	}, opts...)
}

// JSON builds a JSON rich card. The wire kind is "xml": the upstream
// protocol registered json cards under the xml type and consumers
// expect that, so it is kept as-is.
func JSON(data string, opts ...Option) *Tag {
	return newKind("xml", []Attr{
		{Key: "data", Val: Str(data)},
		{Key: "resid", Val: Absent()},
	}, opts...)
}

// CardImage builds a large-image card.
func CardImage(file string, opts ...Option) *Tag {
	return newKind("cardimage", []Attr{
		{Key: "file", Val: Str(file)},
		{Key: "minwidth", Val: Absent()},
		{Key: "minheight", Val: Absent()},
		{Key: "maxwidth", Val: Absent()},
		{Key: "maxheight", Val: Absent()},
		{Key: "source", Val: Absent()},
		{Key: "icon", Val: Absent()},
	}, opts...)
}

// TTS builds a text-to-speech clip.
func TTS(text string) *Tag {
	return New("tts", Attr{Key: "text", Val: Str(text)})
}

// Custom builds a tag of an uncatalogued kind. The codec is generic
// over attribute mappings, so custom kinds round-trip like any other.
func Custom(kind string, attrs ...Attr) *Tag {
	return New(kind, attrs...)
}

// Options shared across kinds. Each sets a catalogued optional slot.

// WithMagic marks a record as a magic (voice-changed) clip.
func WithMagic(on bool) Option { return set("magic", Bool(on)) }

// WithCache controls whether the receiving side may use its media cache.
func WithCache(on bool) Option { return set("cache", Bool(on)) }

// WithProxy controls whether the receiving side downloads via proxy.
func WithProxy(on bool) Option { return set("proxy", Bool(on)) }

// WithTimeout caps the media download time, in seconds.
func WithTimeout(seconds int64) Option { return set("timeout", Int(seconds)) }

// WithContent sets the description line of a share or music card.
func WithContent(content string) Option { return set("content", Str(content)) }

// WithImage sets the cover image URL of a share or music card.
func WithImage(url string) Option { return set("image", Str(url)) }

// WithImageType sets an image's display type (flash, show).
func WithImageType(typ string) Option { return set("type", Str(typ)) }

// WithURL sets an image's source URL.
func WithURL(url string) Option { return set("url", Str(url)) }

// WithImageID sets the effect id of a show-type image.
func WithImageID(id int64) Option { return set("id", Int(id)) }

// WithChannel sets the download channel of an image.
func WithChannel(c int64) Option { return set("c", Int(c)) }

// WithResID points a rich card at a server-side resource instead of
// inline data.
func WithResID(id int64) Option { return set("resid", Int(id)) }

// WithMinWidth sets a cardimage's minimum width.
func WithMinWidth(px int64) Option { return set("minwidth", Int(px)) }

// WithMinHeight sets a cardimage's minimum height.
func WithMinHeight(px int64) Option { return set("minheight", Int(px)) }

// WithMaxWidth sets a cardimage's maximum width.
func WithMaxWidth(px int64) Option { return set("maxwidth", Int(px)) }

// WithMaxHeight sets a cardimage's maximum height.
func WithMaxHeight(px int64) Option { return set("maxheight", Int(px)) }

// WithSource sets a cardimage's source label.
func WithSource(name string) Option { return set("source", Str(name)) }

// WithIcon sets a cardimage's source icon URL.
func WithIcon(url string) Option { return set("icon", Str(url)) }
