package cqcode

import "strings"

// Message is an ordered sequence of tags decoded from, or destined for,
// one chat message. Literal text travels as "text" tags between the
// structured ones.
type Message []*Tag

// Parse decodes wire text into a message: the tokenizer establishes the
// boundaries, ParseToken classifies each token. Malformed tag
// candidates degrade to text tags rather than erroring. Empty input
// yields a nil message.
func Parse(message string) Message {
	if message == "" {
		return nil
	}
	tokens := Tokenize(message)
	msg := make(Message, 0, len(tokens))
	for _, tok := range tokens {
		msg = append(msg, ParseToken(tok))
	}
	return msg
}

// String re-encodes the message to wire text by concatenating each
// tag's wire form.
func (m Message) String() string {
	var b strings.Builder
	for _, t := range m {
		b.WriteString(t.String())
	}
	return b.String()
}

// Text returns the concatenated content of the message's text runs,
// ignoring every other kind.
func (m Message) Text() string {
	var b strings.Builder
	for _, t := range m {
		if t.kind == KindText {
			b.WriteString(t.text("text"))
		}
	}
	return b.String()
}

// Filter returns the tags of the given kind, in message order.
func (m Message) Filter(kind string) Message {
	var out Message
	for _, t := range m {
		if t.kind == kind {
			out = append(out, t)
		}
	}
	return out
}

// First returns the first tag of the given kind, or nil.
func (m Message) First(kind string) *Tag {
	for _, t := range m {
		if t.kind == kind {
			return t
		}
	}
	return nil
}
