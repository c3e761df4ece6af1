package cqcode

import (
	"fmt"
	"strings"
)

// DecodeError reports a transport payload that could not be converted
// into a message. The core codec itself is total (tokenizing, parsing
// and escaping accept any string); only the structured-form boundary
// can fail.
type DecodeError struct {
	SegmentType string // segment type being decoded, if known
	Message     string // what went wrong
	Payload     string // offending JSON fragment
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	if e.SegmentType != "" {
		return fmt.Sprintf("cannot decode %q segment: %s\nPayload: %s",
			e.SegmentType, e.Message, payloadContext(e.Payload))
	}
	return fmt.Sprintf("cannot decode segment payload: %s\nPayload: %s",
		e.Message, payloadContext(e.Payload))
}

// NewDecodeError creates a new DecodeError.
func NewDecodeError(segmentType, message, payload string) *DecodeError {
	return &DecodeError{
		SegmentType: segmentType,
		Message:     message,
		Payload:     payload,
	}
}

// payloadContext extracts a displayable snippet of the offending
// payload: whitespace collapsed to one line, truncated when long.
func payloadContext(payload string) string {
	const maxLen = 120
	payload = strings.Join(strings.Fields(payload), " ")
	if payload == "" {
		return "(empty)"
	}
	if len(payload) > maxLen {
		return payload[:maxLen] + "..."
	}
	return payload
}
