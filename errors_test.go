package cqcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_DecodeError(t *testing.T) {
	t.Run("should include the segment type when known", func(t *testing.T) {
		err := NewDecodeError("image", "attribute value is neither scalar nor segment array", `{"x":1}`)
		assert.Contains(t, err.Error(), `"image" segment`)
		assert.Contains(t, err.Error(), `{"x":1}`)
	})

	t.Run("should format without a segment type", func(t *testing.T) {
		err := NewDecodeError("", "payload is not valid JSON", "{oops")
		assert.Contains(t, err.Error(), "cannot decode segment payload")
		assert.Contains(t, err.Error(), "{oops")
	})

	t.Run("should collapse and truncate long payloads", func(t *testing.T) {
		long := strings.Repeat(`{"k": "v"} `, 50)
		msg := NewDecodeError("", "boom", long).Error()
		assert.Contains(t, msg, "...")
		assert.NotContains(t, msg, "\n{")
	})

	t.Run("should mark an empty payload", func(t *testing.T) {
		assert.Contains(t, NewDecodeError("", "boom", "  ").Error(), "(empty)")
	})
}
