package cqcode

import (
	"encoding/json"

	"github.com/tidwall/gjson"
)

// Segment is the transport-facing structured form of one tag: the
// {type, data} shape OneBot-style transports exchange instead of wire
// text. Data carries native Go values; entries that were absent or null
// on the tag are already gone by the time a Segment exists.
type Segment struct {
	Type string         `json:"type"`
	Data map[string]any `json:"data"`
}

// Segments renders every tag's structured form, in message order.
func (m Message) Segments() []Segment {
	segs := make([]Segment, 0, len(m))
	for _, t := range m {
		segs = append(segs, t.Segment())
	}
	return segs
}

// MarshalJSON encodes the message as a segment array.
func (m Message) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.Segments())
}

// FromSegments decodes a transport payload into a message. Transports
// deliver three shapes: a segment array, a single segment object, or a
// JSON string holding CQ wire text; all three are accepted. This is the
// one boundary of the codec that can fail, and it fails with a
// *DecodeError.
func FromSegments(payload []byte) (Message, error) {
	if !gjson.ValidBytes(payload) {
		return nil, NewDecodeError("", "payload is not valid JSON", string(payload))
	}
	root := gjson.ParseBytes(payload)
	switch {
	case root.IsArray():
		var msg Message
		for _, el := range root.Array() {
			tag, err := tagFromSegment(el)
			if err != nil {
				return nil, err
			}
			msg = append(msg, tag)
		}
		return msg, nil
	case root.IsObject():
		tag, err := tagFromSegment(root)
		if err != nil {
			return nil, err
		}
		return Message{tag}, nil
	case root.Type == gjson.String:
		return Parse(root.String()), nil
	}
	return nil, NewDecodeError("", "payload must be a segment array, a segment object, or a string", root.Raw)
}

func tagFromSegment(seg gjson.Result) (*Tag, error) {
	kind := seg.Get("type").String()
	if kind == "" {
		return nil, NewDecodeError("", "segment has no type", seg.Raw)
	}
	var (
		base    []Attr
		convErr error
	)
	seg.Get("data").ForEach(func(key, val gjson.Result) bool {
		v, err := valueFromJSON(kind, val)
		if err != nil {
			convErr = err
			return false
		}
		base = append(base, Attr{Key: key.String(), Val: v})
		return true
	})
	if convErr != nil {
		return nil, convErr
	}
	return New(kind, base...), nil
}

// valueFromJSON maps a JSON attribute value onto the closed Value
// variant set. Integral numbers become ints so that round-tripping a
// produced tag through JSON preserves its wire stringification; an
// array is a nested segment sequence (forward nodes carry their content
// inline).
func valueFromJSON(kind string, val gjson.Result) (Value, error) {
	switch val.Type {
	case gjson.String:
		return Str(val.String()), nil
	case gjson.Number:
		f := val.Float()
		if f == float64(int64(f)) {
			return Int(int64(f)), nil
		}
		return Float(f), nil
	case gjson.True:
		return Bool(true), nil
	case gjson.False:
		return Bool(false), nil
	case gjson.Null:
		return Null(), nil
	}
	if val.IsArray() {
		var tags []*Tag
		for _, el := range val.Array() {
			t, err := tagFromSegment(el)
			if err != nil {
				return Value{}, err
			}
			tags = append(tags, t)
		}
		return Nested(tags...), nil
	}
	return Value{}, NewDecodeError(kind, "attribute value is neither scalar nor segment array", val.Raw)
}
