//go:build !ecjp_noitemlist

package itemscan

import "github.com/aledsdavies/ecjp/lex"

// itemSink is the itemscan.Sink wired into lex.Scanner. It slices item
// text directly out of src using the position information the shared FSM
// already tracks, rather than transcribing bytes as it goes.
//
// Emission occurs exactly when the bracket stack returns to depth 1
// (spec.md §4.3): a top-level array element starts at its Value event and
// a top-level object entry starts at its key's opening quote, but both
// end the same way, at the next depth-1 Comma or the depth-0 Close that
// ends the document. That symmetry is why one sink handles both root
// kinds instead of two.
type itemSink struct {
	src      []byte
	rootKind lex.StructKind

	list ItemList

	open      bool
	itemStart int
	itemType  lex.ValueType
}

func newItemSink(src []byte) *itemSink {
	return &itemSink{src: src}
}

func (s *itemSink) Open(ch byte, pos, depth int) {
	if depth == 1 && s.rootKind == lex.StructNone {
		if ch == '{' {
			s.rootKind = lex.StructObject
		} else {
			s.rootKind = lex.StructArray
		}
	}
}

func (s *itemSink) KeyToken(start, length, depth int) {
	if depth == 1 && s.rootKind == lex.StructObject {
		s.itemStart = start - 1 // back up onto the opening quote
		s.itemType = lex.KeyValuePair
		s.open = true
	}
}

func (s *itemSink) Value(pos int, vtype lex.ValueType, depthObjects, depthArrays int) {
	if s.rootKind == lex.StructArray && depthObjects+depthArrays == 1 {
		s.itemStart = pos
		s.itemType = vtype
		s.open = true
	}
}

func (s *itemSink) Comma(pos, depth int) {
	if depth == 1 {
		s.finalize(pos)
	}
}

func (s *itemSink) Close(ch byte, pos, depth int) {
	if depth == 0 {
		s.finalize(pos)
	}
}

func (s *itemSink) finalize(end int) {
	if !s.open {
		return
	}
	s.open = false
	trimmed := end
	for trimmed > s.itemStart && lex.IsWhitespace(s.src[trimmed-1]) {
		trimmed--
	}
	raw := s.src[s.itemStart:trimmed]
	cp := make([]byte, len(raw))
	copy(cp, raw)
	s.list = append(s.list, Item{Type: s.itemType, Bytes: cp})
}

func (s *itemSink) Emitted() int { return len(s.list) }

var _ lex.Sink = (*itemSink)(nil)
