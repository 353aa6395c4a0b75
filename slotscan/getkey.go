package slotscan

import (
	"bytes"

	"github.com/aledsdavies/ecjp/ecjperr"
)

// GetKey performs a linear search over list for the first token whose
// Start is greater than from. If needle is non-nil, only a token whose
// key text equals needle matches; otherwise the next token after from is
// returned unconditionally. When out is non-nil, the matched token's key
// bytes are copied into it (truncated and reported via
// ecjperr.NoSpaceInBufferValue if out is too small); n is the number of
// bytes written.
//
// GetKey returns ecjperr.NoMoreKey once the search is exhausted.
func GetKey(src []byte, list KeyList, needle []byte, from int, out []byte) (Token, int, error) {
	for _, tok := range list {
		if tok.Start <= from {
			continue
		}
		if !tok.HasKey() {
			// Array-context slot: no key text exists to anchor on.
			if needle != nil {
				continue
			}
			return tok, 0, nil
		}
		keyBytes := src[tok.Start : tok.Start+tok.Length]
		if needle != nil && !bytes.Equal(keyBytes, needle) {
			continue
		}
		if out == nil {
			return tok, 0, nil
		}
		n := copy(out, keyBytes)
		if n < len(keyBytes) {
			return tok, n, ecjperr.New(ecjperr.NoSpaceInBufferValue, "output buffer too small for key")
		}
		return tok, n, nil
	}
	return Token{}, 0, ecjperr.New(ecjperr.NoMoreKey, "no more matching key")
}
