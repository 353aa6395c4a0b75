// Package walk implements spec.md §4.4 (the value-extraction walker) and
// §4.5 (the independent array walker). Both reconstruct value byte ranges
// from position/type metadata by walking forward over the source string;
// neither copies eagerly during the initial scan.
package walk

import (
	"github.com/aledsdavies/ecjp/ecjperr"
	"github.com/aledsdavies/ecjp/lex"
	"github.com/aledsdavies/ecjp/slotscan"
)

// Value walks forward from tok's key anchor to locate and copy tok's
// value bytes into out, per spec.md §4.4. It is O(value length),
// re-entrant, and never mutates src.
//
// tok must have a key anchor (tok.HasKey(), i.e. Start != slotscan.NoKey):
// slots slotscan records inside an array have no preceding key and
// cannot be walked this way (spec.md has no notion of "the array slot
// before this one"). A key that is the empty string "" is a valid
// anchor and is walked normally. Use the walk package's array walker
// for array elements instead.
//
// The number of bytes written to out is returned even on
// ecjperr.NoSpaceInBufferValue, where it is the truncated, best-effort
// prefix of the value.
func Value(src []byte, tok slotscan.Token, out []byte) (int, error) {
	if !tok.HasKey() {
		return 0, ecjperr.New(ecjperr.GenericError, "token has no key anchor to walk from")
	}
	pos := tok.Start + tok.Length + 1 // past the key's closing quote
	pos = skipWhitespace(src, pos)
	if pos >= len(src) || src[pos] != ':' {
		return 0, ecjperr.New(ecjperr.SyntaxError, "expected ':' after key")
	}
	pos++
	pos = skipWhitespace(src, pos)

	switch tok.Type {
	case lex.String:
		return walkString(src, pos, out)
	case lex.Number:
		return walkNumber(src, pos, out)
	case lex.Bool:
		return walkLiteral(src, pos, out)
	case lex.Null:
		return walkLiteral(src, pos, out)
	case lex.Object:
		return walkBracketed(src, pos, '{', '}', out)
	case lex.Array:
		return walkBracketed(src, pos, '[', ']', out)
	default:
		return 0, ecjperr.Newf(ecjperr.GenericError, "unwalkable token type %s", tok.Type)
	}
}

func skipWhitespace(src []byte, pos int) int {
	for pos < len(src) && lex.IsWhitespace(src[pos]) {
		pos++
	}
	return pos
}

func writeOut(out []byte, data []byte) (int, error) {
	n := copy(out, data)
	if n < len(data) {
		return n, ecjperr.New(ecjperr.NoSpaceInBufferValue, "output buffer too small for value")
	}
	return n, nil
}

func walkString(src []byte, pos int, out []byte) (int, error) {
	if pos >= len(src) || src[pos] != '"' {
		return 0, ecjperr.New(ecjperr.SyntaxError, "expected '\"' to start string value")
	}
	pos++
	start := pos
	for pos < len(src) && src[pos] != 0 {
		if src[pos] == '\\' && pos+1 < len(src) {
			pos += 2
			continue
		}
		if src[pos] == '"' {
			return writeOut(out, src[start:pos])
		}
		pos++
	}
	return 0, ecjperr.New(ecjperr.SyntaxError, "unterminated string value")
}

func walkNumber(src []byte, pos int, out []byte) (int, error) {
	start := pos
	for pos < len(src) && isNumberByte(src[pos]) {
		pos++
	}
	return writeOut(out, src[start:pos])
}

func isNumberByte(b byte) bool {
	switch {
	case b >= '0' && b <= '9':
		return true
	case b == '-' || b == '+' || b == '.' || b == 'e' || b == 'E':
		return true
	default:
		return false
	}
}

func walkLiteral(src []byte, pos int, out []byte) (int, error) {
	start := pos
	switch {
	case matchAt(src, pos, "true"):
		pos += 4
	case matchAt(src, pos, "false"):
		pos += 5
	case matchAt(src, pos, "null"):
		pos += 4
	default:
		return 0, ecjperr.New(ecjperr.SyntaxError, "expected a literal value")
	}
	return writeOut(out, src[start:pos])
}

func matchAt(src []byte, pos int, word string) bool {
	if pos+len(word) > len(src) {
		return false
	}
	return string(src[pos:pos+len(word)]) == word
}

func walkBracketed(src []byte, pos int, open, close byte, out []byte) (int, error) {
	if pos >= len(src) || src[pos] != open {
		return 0, ecjperr.Newf(ecjperr.SyntaxError, "expected %q to start value", open)
	}
	start := pos
	depth := 0
	inString := false
	for pos < len(src) && src[pos] != 0 {
		c := src[pos]
		switch {
		case inString:
			if c == '\\' && pos+1 < len(src) {
				pos++
			} else if c == '"' {
				inString = false
			}
		case c == '"':
			inString = true
		case c == open:
			depth++
		case c == close:
			depth--
			if depth == 0 {
				return writeOut(out, src[start:pos+1])
			}
		}
		pos++
	}
	return 0, ecjperr.New(ecjperr.BracketsMissing, "unterminated nested value")
}
