package cqcode

import (
	"regexp"
	"strings"
)

const tagOpen = "[CQ:"

// tagTokenRe matches a well-formed tag token at the start of its input:
// a lowercase kind name, optionally followed by an attribute list that
// contains no unescaped closing bracket.
var tagTokenRe = regexp.MustCompile(`^\[CQ:[a-z]+(?:,[^\]]+)?\]`)

// Tokenize splits a message into literal runs and tag tokens.
// Concatenating the result reproduces the input exactly. A new token
// starts at every occurrence of "[CQ:" and ends after the "]" that
// closes a well-formed tag; a candidate that never closes runs on until
// the next "[CQ:" and is left for ParseToken's literal fallback, so
// tokenizing never fails.
func Tokenize(message string) []string {
	var tokens []string
	for len(message) > 0 {
		i := strings.Index(message, tagOpen)
		if i < 0 {
			tokens = append(tokens, message)
			break
		}
		if i > 0 {
			tokens = append(tokens, message[:i])
			message = message[i:]
		}
		if loc := tagTokenRe.FindStringIndex(message); loc != nil {
			tokens = append(tokens, message[:loc[1]])
			message = message[loc[1]:]
			continue
		}
		// Malformed candidate: it stays a literal run up to the next
		// "[CQ:" or the end of the message.
		end := len(message)
		if j := strings.Index(message[len(tagOpen):], tagOpen); j >= 0 {
			end = len(tagOpen) + j
		}
		tokens = append(tokens, message[:end])
		message = message[end:]
	}
	return tokens
}
