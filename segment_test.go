package cqcode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Message_MarshalJSON(t *testing.T) {
	t.Run("should encode a segment array", func(t *testing.T) {
		msg := Message{Text("hi"), At(10001)}
		out, err := json.Marshal(msg)
		require.NoError(t, err)
		assert.JSONEq(t,
			`[{"type":"text","data":{"text":"hi"}},{"type":"at","data":{"qq":10001}}]`,
			string(out))
	})

	t.Run("should drop absent and null attributes", func(t *testing.T) {
		msg := Message{New("image",
			Attr{Key: "file", Val: Str("a.jpg")},
			Attr{Key: "url", Val: Absent()},
			Attr{Key: "cache", Val: Null()},
		)}
		out, err := json.Marshal(msg)
		require.NoError(t, err)
		assert.JSONEq(t, `[{"type":"image","data":{"file":"a.jpg"}}]`, string(out))
	})

	t.Run("should encode node content as nested segments", func(t *testing.T) {
		msg := Message{Node("alice", 10001, Text("hi"))}
		out, err := json.Marshal(msg)
		require.NoError(t, err)
		assert.JSONEq(t,
			`[{"type":"node","data":{"name":"alice","uin":10001,"content":[{"type":"text","data":{"text":"hi"}}]}}]`,
			string(out))
	})
}

func Test_FromSegments(t *testing.T) {
	t.Run("should decode a segment array", func(t *testing.T) {
		msg, err := FromSegments([]byte(
			`[{"type":"text","data":{"text":"hi "}},{"type":"face","data":{"id":1}}]`))
		require.NoError(t, err)
		require.Len(t, msg, 2)
		assert.Equal(t, "hi ", msg[0].text("text"))
		assert.Equal(t, "face", msg[1].Kind())
		assert.Equal(t, "1", msg[1].text("id"))
	})

	t.Run("should decode a single segment object", func(t *testing.T) {
		msg, err := FromSegments([]byte(`{"type":"at","data":{"qq":"all"}}`))
		require.NoError(t, err)
		require.Len(t, msg, 1)
		assert.Equal(t, "all", msg[0].text("qq"))
	})

	t.Run("should decode a JSON string as wire text", func(t *testing.T) {
		msg, err := FromSegments([]byte(`"hello [CQ:face,id=1]"`))
		require.NoError(t, err)
		require.Len(t, msg, 2)
		assert.Equal(t, "face", msg[1].Kind())
	})

	t.Run("should map scalar JSON types onto the value variants", func(t *testing.T) {
		msg, err := FromSegments([]byte(
			`{"type":"custom","data":{"s":"x","i":3,"f":1.5,"b":true,"n":null}}`))
		require.NoError(t, err)
		tag := msg[0]

		v, _ := tag.Get("s")
		assert.Equal(t, TypeString, v.Type())
		v, _ = tag.Get("i")
		assert.Equal(t, TypeInt, v.Type())
		assert.Equal(t, "3", v.Text())
		v, _ = tag.Get("f")
		assert.Equal(t, TypeFloat, v.Type())
		v, _ = tag.Get("b")
		assert.Equal(t, TypeBool, v.Type())
		v, _ = tag.Get("n")
		assert.True(t, v.IsNull())
	})

	t.Run("should decode nested node content", func(t *testing.T) {
		msg, err := FromSegments([]byte(
			`[{"type":"node","data":{"name":"alice","uin":10001,"content":[{"type":"text","data":{"text":"hi"}}]}}]`))
		require.NoError(t, err)
		v, ok := msg[0].Get("content")
		require.True(t, ok)
		assert.Equal(t, TypeNested, v.Type())
		assert.Equal(t, "hi", v.Text())
	})

	t.Run("should reject invalid JSON", func(t *testing.T) {
		_, err := FromSegments([]byte(`{"type":`))
		var decErr *DecodeError
		require.ErrorAs(t, err, &decErr)
	})

	t.Run("should reject a segment with no type", func(t *testing.T) {
		_, err := FromSegments([]byte(`[{"data":{"text":"hi"}}]`))
		var decErr *DecodeError
		require.ErrorAs(t, err, &decErr)
		assert.Contains(t, err.Error(), "no type")
	})

	t.Run("should reject an object-valued attribute", func(t *testing.T) {
		_, err := FromSegments([]byte(`{"type":"custom","data":{"bad":{"x":1}}}`))
		var decErr *DecodeError
		require.ErrorAs(t, err, &decErr)
		assert.Equal(t, "custom", decErr.SegmentType)
	})

	t.Run("should reject a payload of the wrong shape", func(t *testing.T) {
		_, err := FromSegments([]byte(`42`))
		var decErr *DecodeError
		require.ErrorAs(t, err, &decErr)
	})
}

func Test_Structured_Round_Trip(t *testing.T) {
	// Producer tags survive the trip through the structured form.
	msg := Message{Text("hi "), At(10001), Image("a.jpg", WithImageType("flash"))}
	out, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	back, err := FromSegments(out)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got, want := back.String(), msg.String(); got != want {
		t.Fatalf("round trip changed wire text: want %q, got %q", want, got)
	}
}
