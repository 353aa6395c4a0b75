// Package slotscan implements pipeline A from spec.md §4.2: a
// single-pass scanner that indexes value slots as positional key tokens
// rather than copying their bytes. Callers recover value bytes on demand
// with the walk package.
package slotscan

import "github.com/aledsdavies/ecjp/lex"

// Token is a view into a Source string: the position and length of a
// key's content (excluding quotes), plus the type of the value the key
// introduces. Per the Open Question decision in SPEC_FULL.md §11, a
// token's Start/Length always describe the *key*, never the value; value
// bytes are recovered via walk.Value.
//
// An array-context slot has no key to anchor on: such a Token carries
// Start == -1 (NoKey), distinguishing it from a legitimate object key
// that happens to be the empty string "" (Start >= 0, Length == 0).
//
// A Token is only valid for as long as the Source it was produced from is
// unmodified and in scope.
type Token struct {
	Start  int
	Length int
	Type   lex.ValueType
}

// NoKey is the sentinel Start value for a Token with no key anchor (an
// array-context value slot). Use HasKey, not Length == 0, to test for
// this: a key can legitimately be the empty string.
const NoKey = -1

// HasKey reports whether tok is anchored to an actual object key, as
// opposed to an array-context slot with no key at all.
func (tok Token) HasKey() bool {
	return tok.Start != NoKey
}

// KeyList is an ordered, owned sequence of Tokens in emission order. It
// replaces the original's manual singly-linked ecjp_key_elem_t chain with
// a plain slice: appending is O(1) amortized, traversal is index-based,
// and there is nothing to explicitly free (see DESIGN.md "Linked lists →
// slices").
type KeyList []Token
