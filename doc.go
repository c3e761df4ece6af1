// Package cqcode encodes and decodes CQ codes: the inline [CQ:...]
// markup that OneBot-style chat protocols embed in otherwise plain
// message text to carry structured segments such as mentions, images
// and voice clips.
//
// Decoding: Parse splits wire text into a Message, an ordered sequence
// of tags in which literal runs travel as "text" tags. Parsing is
// total: malformed tag candidates degrade to text instead of erroring,
// and attribute values come back raw (still escaped) — call Unescape
// when the literal characters are wanted.
//
// Encoding: build tags with the kind factories (Text, At, Image, ...),
// optionally shadow attributes for one transmission with WithOverride,
// and serialize with Message.String for wire text or Message.Segments
// for the structured {type, data} form. The serializer never escapes;
// producers run Escape over untrusted text before it enters a tag.
package cqcode
