package lex

// Sink receives the structural events the shared FSM emits while scanning.
// It is the "emission callback" the Design Notes call for: slotscan wires
// a Sink that records key-token positions, itemscan wires one that slices
// out top-level element/pair text, and a NopSink degrades any scan to
// pure syntax checking with no emission at all.
//
// Every position passed to a Sink method is an index into the Source the
// scan was given. Implementations must not retain Source beyond the
// scan's lifetime unless the caller has guaranteed it outlives them.
type Sink interface {
	// KeyToken is called once a quoted object key has been fully
	// consumed (closing quote included). start/length describe the
	// key's content, excluding the surrounding quotes. depth is the
	// open_objects+open_arrays count of the object the key belongs to.
	KeyToken(start, length, depth int)

	// Value is called exactly once per value slot, at the byte that
	// first makes its type unambiguous (spec.md invariant 2). pos is
	// that byte's offset. depthObjects/depthArrays are the open-object
	// and open-array counts at emission time, matching the asymmetric
	// level gate spec.md §4.2 describes (only depthObjects gates
	// pipeline A's emission).
	Value(pos int, vtype ValueType, depthObjects, depthArrays int)

	// Open is called immediately after a '{' or '[' is pushed onto the
	// parse stack. depth is the open_objects+open_arrays count *after*
	// the push (so a document root's Open always reports depth 1).
	Open(ch byte, pos int, depth int)

	// Close is called immediately after a '}' or ']' is popped off the
	// parse stack. depth is the open_objects+open_arrays count *after*
	// the pop.
	Close(ch byte, pos int, depth int)

	// Comma is called immediately after a top-level-or-nested ',' is
	// consumed, with depth the open_objects+open_arrays count at that
	// point.
	Comma(pos int, depth int)

	// Emitted returns the number of tokens/items actually emitted so
	// far. Scanner reports this as Result.NumElements: the count is
	// policy-specific (slotscan gates by level, itemscan counts only
	// top-level items), so each Sink tracks its own.
	Emitted() int
}

// NopSink is a Sink whose methods do nothing. Embedding it lets a partial
// Sink implementation override only the events it cares about, and
// scanning with a bare NopSink degrades to pure syntax checking exactly as
// spec.md §4.2 describes for a NULL sink.
type NopSink struct{}

func (NopSink) KeyToken(start, length, depth int)          {}
func (NopSink) Value(pos int, vtype ValueType, dO, dA int) {}
func (NopSink) Open(ch byte, pos int, depth int)           {}
func (NopSink) Close(ch byte, pos int, depth int)          {}
func (NopSink) Comma(pos int, depth int)                   {}
func (NopSink) Emitted() int                               { return 0 }
