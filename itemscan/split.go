//go:build !ecjp_noitemlist

package itemscan

import (
	"github.com/aledsdavies/ecjp/ecjperr"
	"github.com/aledsdavies/ecjp/lex"
)

// SplitKeyValue splits a key_value_pair Item's raw text ("key":value) at
// the ':' that follows its quoted key (a ':' inside the key does not
// split it), copying the key into keyOut and the value into
// valueOut. When leaveQuotes is false (the common case) the key's
// surrounding quotes are stripped; when true they are kept, matching the
// original's two calling conventions for key comparison versus
// re-serialization.
//
// Either output may be too small for its content; SplitKeyValue still
// reports both byte counts, with ecjperr.NoSpaceInBufferValue identifying
// whichever side truncated (key takes priority in the returned error
// when both did).
func SplitKeyValue(item Item, keyOut, valueOut []byte, leaveQuotes bool) (keyN, valueN int, err error) {
	if item.Type != lex.KeyValuePair {
		return 0, 0, ecjperr.New(ecjperr.GenericError, "item is not a key_value_pair")
	}
	src := item.Bytes
	if len(src) == 0 || src[0] != '"' {
		return 0, 0, ecjperr.New(ecjperr.SyntaxError, "key_value_pair does not start with a quoted key")
	}

	pos := 1
	for pos < len(src) {
		if src[pos] == '\\' && pos+1 < len(src) {
			pos += 2
			continue
		}
		if src[pos] == '"' {
			break
		}
		pos++
	}
	if pos >= len(src) {
		return 0, 0, ecjperr.New(ecjperr.SyntaxError, "unterminated key in key_value_pair")
	}
	keyEnd := pos // index of the closing quote
	pos++         // past closing quote

	for pos < len(src) && lex.IsWhitespace(src[pos]) {
		pos++
	}
	if pos >= len(src) || src[pos] != ':' {
		return 0, 0, ecjperr.New(ecjperr.SyntaxError, "expected ':' in key_value_pair")
	}
	pos++
	for pos < len(src) && lex.IsWhitespace(src[pos]) {
		pos++
	}

	keyBytes := src[1:keyEnd]
	if leaveQuotes {
		keyBytes = src[0 : keyEnd+1]
	}
	valueBytes := src[pos:]

	keyN = copy(keyOut, keyBytes)
	valueN = copy(valueOut, valueBytes)

	if keyN < len(keyBytes) {
		return keyN, valueN, ecjperr.New(ecjperr.NoSpaceInBufferValue, "output buffer too small for key")
	}
	if valueN < len(valueBytes) {
		return keyN, valueN, ecjperr.New(ecjperr.NoSpaceInBufferValue, "output buffer too small for value")
	}
	return keyN, valueN, nil
}
