package walk

import (
	"github.com/aledsdavies/ecjp/ecjperr"
	"github.com/aledsdavies/ecjp/lex"
)

// NoIndex is the reserved sentinel meaning "no element chosen", mirroring
// ECJP_ARRAY_NO_INDEX.
const NoIndex = -1

type arrayPhase int

const (
	arrStart arrayPhase = iota
	arrInArray
	arrInString
	arrInNumber
	arrInLiteral
	arrNested
	arrWaitComma
)

// ArrayElement scans the text of a single array (either the full literal
// text of an array value as returned by walk.Value for an Array-typed
// token, or a Source whose root is an array) and copies the index-th
// element's text into out, per spec.md §4.5. A string element is copied
// without its surrounding quotes; every other element is copied verbatim.
//
// Per spec.md, this is a self-contained, re-entrant state machine scoped
// to one array: it does not build a token list and does not share state
// with Value or with slotscan/itemscan. The Open Question in
// SPEC_FULL.md §11.3 is resolved here: nested object/array elements share
// one bracket-matching stack instead of two separate sub-phases, so mixed
// nesting (an array of objects that themselves contain arrays) is
// tracked correctly.
func ArrayElement(src []byte, index int, out []byte) (int, lex.ValueType, error) {
	if index == NoIndex {
		return 0, lex.Undefined, ecjperr.New(ecjperr.EmptyString, "no element chosen")
	}
	src = lex.EnsureTerminated(src)

	var (
		pos          int
		phase        = arrStart
		elemStart    int
		elemType     lex.ValueType
		elementsSeen int
		nestStack    []byte
		nestInString bool
	)

	at := func() byte {
		if pos >= len(src) {
			return 0
		}
		return src[pos]
	}

	finalize := func(end int) (int, lex.ValueType, error, bool) {
		trimmed := end
		for trimmed > elemStart && lex.IsWhitespace(src[trimmed-1]) {
			trimmed--
		}
		match := elementsSeen == index
		elementsSeen++
		if !match {
			return 0, 0, nil, false
		}
		start := elemStart
		if elemType == lex.String {
			// Copy a string's content without its surrounding quotes, as
			// Value does for String tokens.
			start, trimmed = start+1, trimmed-1
		}
		n, err := writeOut(out, src[start:trimmed])
		return n, elemType, err, true
	}

	for {
		c := at()
		if c == 0 {
			return 0, lex.Undefined, ecjperr.New(ecjperr.IndexOutOfBounds, "array has fewer elements than requested")
		}
		switch phase {
		case arrStart:
			switch {
			case lex.IsWhitespace(c):
				pos++
			case c == '[':
				pos++
				phase = arrInArray
			default:
				return 0, lex.Undefined, ecjperr.New(ecjperr.SyntaxError, "expected '[' to start array")
			}

		case arrInArray:
			switch {
			case lex.IsWhitespace(c):
				pos++
			case c == ']':
				return 0, lex.Undefined, ecjperr.New(ecjperr.IndexOutOfBounds, "array has fewer elements than requested")
			default:
				elemStart = pos
				switch {
				case c == '"':
					elemType = lex.String
					phase = arrInString
					pos++
				case c == '-' || (c >= '0' && c <= '9'):
					elemType = lex.Number
					phase = arrInNumber
				case c == 't' || c == 'f':
					elemType = lex.Bool
					phase = arrInLiteral
				case c == 'n':
					elemType = lex.Null
					phase = arrInLiteral
				case c == '{' || c == '[':
					elemType = lex.Object
					if c == '[' {
						elemType = lex.Array
					}
					nestStack = append(nestStack[:0], c)
					nestInString = false
					phase = arrNested
					pos++
				default:
					return 0, lex.Undefined, ecjperr.New(ecjperr.SyntaxError, "unrecognized array element")
				}
			}

		case arrInString:
			switch {
			case c == '\\' && pos+1 < len(src):
				pos += 2
			case c == '"':
				pos++
				phase = arrWaitComma
			default:
				pos++
			}

		case arrInNumber:
			if isNumberByte(c) {
				pos++
			} else {
				phase = arrWaitComma
			}

		case arrInLiteral:
			word := "true"
			if elemType == lex.Null {
				word = "null"
			} else if src[elemStart] == 'f' {
				word = "false"
			}
			if !matchAt(src, elemStart, word) {
				return 0, lex.Undefined, ecjperr.New(ecjperr.SyntaxError, "invalid literal in array")
			}
			pos = elemStart + len(word)
			phase = arrWaitComma

		case arrNested:
			switch {
			case nestInString:
				if c == '\\' && pos+1 < len(src) {
					pos++
				} else if c == '"' {
					nestInString = false
				}
			case c == '"':
				nestInString = true
			case c == '{' || c == '[':
				nestStack = append(nestStack, c)
			case c == '}' || c == ']':
				top := nestStack[len(nestStack)-1]
				if (c == '}' && top != '{') || (c == ']' && top != '[') {
					return 0, lex.Undefined, ecjperr.New(ecjperr.SyntaxError, "mismatched brackets in array element")
				}
				nestStack = nestStack[:len(nestStack)-1]
				if len(nestStack) == 0 {
					pos++
					phase = arrWaitComma
					continue
				}
			}
			pos++

		case arrWaitComma:
			switch {
			case lex.IsWhitespace(c):
				pos++
			case c == ',':
				if n, t, err, ok := finalize(pos); ok {
					return n, t, err
				}
				pos++
				phase = arrInArray
			case c == ']':
				if n, t, err, ok := finalize(pos); ok {
					return n, t, err
				}
				return 0, lex.Undefined, ecjperr.New(ecjperr.IndexOutOfBounds, "array has fewer elements than requested")
			default:
				return 0, lex.Undefined, ecjperr.New(ecjperr.SyntaxError, "expected ',' or ']'")
			}
		}
	}
}
