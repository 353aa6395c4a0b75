package ecjp

import (
	"github.com/aledsdavies/ecjp/slotscan"
	"github.com/aledsdavies/ecjp/walk"
)

// ReadKey finds the next token past startPos whose key matches key (or
// the next token at all, if key is nil) and copies its value into out,
// composing slotscan.GetKey with walk.Value in a single call.
func ReadKey(src []byte, list slotscan.KeyList, key []byte, startPos int, out []byte) (slotscan.Token, int, error) {
	tok, _, err := slotscan.GetKey(src, list, key, startPos, nil)
	if err != nil {
		return tok, 0, err
	}
	n, err := walk.Value(src, tok, out)
	return tok, n, err
}
