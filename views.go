package cqcode

// Typed views over the generic attribute mapping. A view is obtained
// with the matching As* conversion, which checks the tag's kind; the
// getters return the attribute's wire stringification, which for parsed
// tags is the raw (still escaped) wire value. No reflection is
// involved: every accessor reads the mapping through Tag.Get.

// TextView reads a "text" tag.
type TextView struct{ *Tag }

// AsText converts t if it is a text run.
func AsText(t *Tag) (TextView, bool) {
	if t == nil || t.kind != KindText {
		return TextView{}, false
	}
	return TextView{t}, true
}

// Content returns the raw text run.
func (v TextView) Content() string { return v.text("text") }

// FaceView reads a "face" tag.
type FaceView struct{ *Tag }

// AsFace converts t if it is a face.
func AsFace(t *Tag) (FaceView, bool) {
	if t == nil || t.kind != "face" {
		return FaceView{}, false
	}
	return FaceView{t}, true
}

// ID returns the face id.
func (v FaceView) ID() string { return v.text("id") }

// AtView reads an "at" tag.
type AtView struct{ *Tag }

// AsAt converts t if it is a mention.
func AsAt(t *Tag) (AtView, bool) {
	if t == nil || t.kind != "at" {
		return AtView{}, false
	}
	return AtView{t}, true
}

// QQ returns the mentioned user id, or "all".
func (v AtView) QQ() string { return v.text("qq") }

// IsAll reports whether the mention targets the whole group.
func (v AtView) IsAll() bool { return v.text("qq") == "all" }

// ImageView reads an "image" tag.
type ImageView struct{ *Tag }

// AsImage converts t if it is an image.
func AsImage(t *Tag) (ImageView, bool) {
	if t == nil || t.kind != "image" {
		return ImageView{}, false
	}
	return ImageView{t}, true
}

// File returns the image file reference.
func (v ImageView) File() string { return v.text("file") }

// URL returns the image source URL, if the sender filled one in.
func (v ImageView) URL() string { return v.text("url") }

// DisplayType returns the display type (flash, show), if any.
func (v ImageView) DisplayType() string { return v.text("type") }

// RecordView reads a "record" tag.
type RecordView struct{ *Tag }

// AsRecord converts t if it is a voice clip.
func AsRecord(t *Tag) (RecordView, bool) {
	if t == nil || t.kind != "record" {
		return RecordView{}, false
	}
	return RecordView{t}, true
}

// File returns the clip file reference.
func (v RecordView) File() string { return v.text("file") }

// ReplyView reads a "reply" tag.
type ReplyView struct{ *Tag }

// AsReply converts t if it is a reply reference.
func AsReply(t *Tag) (ReplyView, bool) {
	if t == nil || t.kind != "reply" {
		return ReplyView{}, false
	}
	return ReplyView{t}, true
}

// ID returns the replied-to message id.
func (v ReplyView) ID() string { return v.text("id") }

// ShareView reads a "share" tag.
type ShareView struct{ *Tag }

// AsShare converts t if it is a link share.
func AsShare(t *Tag) (ShareView, bool) {
	if t == nil || t.kind != "share" {
		return ShareView{}, false
	}
	return ShareView{t}, true
}

// URL returns the shared link.
func (v ShareView) URL() string { return v.text("url") }

// Title returns the card title.
func (v ShareView) Title() string { return v.text("title") }

// Content returns the card description, if any.
func (v ShareView) Content() string { return v.text("content") }

// Image returns the card cover URL, if any.
func (v ShareView) Image() string { return v.text("image") }
