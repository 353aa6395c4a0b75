package slotscan

import "github.com/aledsdavies/ecjp/lex"

// gatedSink is the slotscan.Sink wired into lex.Scanner: it turns Value
// events into Tokens, anchored at the most recently seen key (or NoKey
// inside an array, where there is no key), suppressing emission for slots
// deeper than the caller's level ceiling.
type gatedSink struct {
	level int
	list  KeyList

	pendingValid bool
	pendingStart int
	pendingLen   int
}

func newGatedSink(level int) *gatedSink {
	return &gatedSink{level: level}
}

func (g *gatedSink) KeyToken(start, length, depth int) {
	g.pendingValid = true
	g.pendingStart = start
	g.pendingLen = length
}

func (g *gatedSink) Value(pos int, vtype lex.ValueType, depthObjects, depthArrays int) {
	start, length := NoKey, 0
	if g.pendingValid {
		start, length = g.pendingStart, g.pendingLen
		g.pendingValid = false
	}
	// depthObjects already counts the object that owns this slot's key (it
	// is incremented on '{' before any of its keys/values are parsed), so
	// a root object's own direct entries sit at depthObjects==1. level==0
	// must still admit them (spec.md §8 scenario 3), so the gate compares
	// against depthObjects-1, not depthObjects.
	if depthObjects-1 > g.level {
		return
	}
	g.list = append(g.list, Token{Start: start, Length: length, Type: vtype})
}

func (g *gatedSink) Open(ch byte, pos int, depth int)  {}
func (g *gatedSink) Close(ch byte, pos int, depth int) {}
func (g *gatedSink) Comma(pos int, depth int)          { g.pendingValid = false }
func (g *gatedSink) Emitted() int                      { return len(g.list) }
