package lex

import "github.com/aledsdavies/ecjp/ecjperr"

// Scanner drives the shared lexical FSM described in spec.md §4.1 over a
// single source string, feeding structural events to a Sink. slotscan and
// itemscan each wire their own Sink over the same Scanner instead of
// duplicating the character-level automaton, per the Design Notes'
// "factor the FSM into a single table-driven core" guidance.
//
// A Scanner is single-use: construct one per Scan call. It is not safe
// for concurrent use, matching how the teacher documents runtime/lexer/v2
// Lexer as a single-owner, non-synchronized type.
type Scanner struct {
	src    []byte
	limits Limits
	sink   Sink

	pos   int
	phase Phase
	flags Flags

	stack []byte // bracket stack, capacity == limits.MaxParseStackDepth

	openObjects int
	openArrays  int

	root Phase // PhaseInObject or PhaseInArray once the root opener is seen
}

// NewScanner constructs a Scanner over src using limits, emitting
// structural events to sink. Pass a NopSink{} for pure syntax checking.
// src must be NUL-terminated; EnsureTerminated does this for callers that
// are not already holding a NUL-terminated buffer.
func NewScanner(src []byte, limits Limits, sink Sink) *Scanner {
	if sink == nil {
		sink = NopSink{}
	}
	return &Scanner{
		src:    src,
		limits: limits,
		sink:   sink,
		stack:  make([]byte, 0, limits.MaxParseStackDepth),
	}
}

// EnsureTerminated returns b if it already ends in a NUL byte, otherwise a
// copy of b with one appended. The source model (spec.md §3) requires a
// NUL-terminated byte string.
func EnsureTerminated(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == 0 {
		return b
	}
	out := make([]byte, len(b)+1)
	copy(out, b)
	return out
}

// Scan runs the FSM to completion and returns the check result. err is
// non-nil (and always an *ecjperr.Error) on anything but a clean parse.
func (s *Scanner) Scan() (Result, error) {
	if len(s.src) == 0 || (len(s.src) == 1 && s.src[0] == 0) {
		return Result{ErrPos: -1, Struct: StructNone}, ecjperr.New(ecjperr.EmptyString, "empty source")
	}
	if len(s.src) > s.limits.MaxInputSize {
		return Result{ErrPos: -1}, ecjperr.Newf(ecjperr.GenericError, "source length %d exceeds MaxInputSize %d", len(s.src), s.limits.MaxInputSize)
	}

	s.phase = PhaseStart
	for {
		c := s.cur()
		if c == 0 {
			return s.finish()
		}
		var err error
		switch s.phase {
		case PhaseStart:
			err = s.stepStart(c)
		case PhaseInObject:
			err = s.stepInObject(c)
		case PhaseInArray:
			err = s.stepInArray(c)
		case PhaseWaitColon:
			err = s.stepWaitColon(c)
		case PhaseWaitValue:
			err = s.stepWaitValue(c)
		case PhaseWaitComma:
			err = s.stepWaitComma(c)
		case PhaseEnd:
			err = s.stepEnd(c)
		}
		if err != nil {
			return Result{ErrPos: s.pos, NumElements: s.sink.Emitted(), Struct: s.structKind()}, err
		}
	}
}

func (s *Scanner) cur() byte {
	if s.pos >= len(s.src) {
		return 0
	}
	return s.src[s.pos]
}

func (s *Scanner) structKind() StructKind {
	switch s.root {
	case PhaseInObject:
		return StructObject
	case PhaseInArray:
		return StructArray
	default:
		return StructNone
	}
}

func (s *Scanner) finish() (Result, error) {
	if s.phase != PhaseEnd || s.openObjects != 0 || s.openArrays != 0 {
		return Result{ErrPos: s.pos, NumElements: s.sink.Emitted(), Struct: s.structKind()},
			ecjperr.New(ecjperr.BracketsMissing, "unexpected end of input with open containers")
	}
	n := s.sink.Emitted()
	return Result{
		ErrPos:      -1,
		NumElements: n,
		Struct:      s.structKind(),
		MemoryUsed:  n * (len(s.stack) + 1),
	}, nil
}

func (s *Scanner) errSyntax(msg string) error {
	return ecjperr.New(ecjperr.SyntaxError, msg)
}

// --- stack discipline -------------------------------------------------

func (s *Scanner) push(ch byte) error {
	if len(s.stack) >= s.limits.MaxParseStackDepth {
		return ecjperr.Newf(ecjperr.GenericError, "parse stack overflow beyond depth %d", s.limits.MaxParseStackDepth)
	}
	s.stack = append(s.stack, ch)
	return nil
}

func (s *Scanner) pop(expectOpener byte) error {
	if len(s.stack) == 0 {
		return s.errSyntax("unbalanced closing bracket")
	}
	top := s.stack[len(s.stack)-1]
	if top != expectOpener {
		return s.errSyntax("mismatched brackets")
	}
	s.stack = s.stack[:len(s.stack)-1]
	return nil
}

func (s *Scanner) peek() (byte, bool) {
	if len(s.stack) == 0 {
		return 0, false
	}
	return s.stack[len(s.stack)-1], true
}

// phaseAfterClose returns the phase to resume in once a container has
// just closed, based on what (if anything) remains on the bracket stack.
func (s *Scanner) phaseAfterClose() Phase {
	if _, ok := s.peek(); !ok {
		return PhaseEnd
	}
	return PhaseWaitComma
}

// --- phase handlers -----------------------------------------------------

func (s *Scanner) stepStart(c byte) error {
	if IsWhitespace(c) {
		s.pos++
		return nil
	}
	switch c {
	case '{':
		if err := s.push('{'); err != nil {
			return err
		}
		s.openObjects++
		s.root = PhaseInObject
		s.sink.Open('{', s.pos, s.openObjects+s.openArrays)
		s.pos++
		s.phase = PhaseInObject
		return nil
	case '[':
		if err := s.push('['); err != nil {
			return err
		}
		s.openArrays++
		s.root = PhaseInArray
		s.sink.Open('[', s.pos, s.openObjects+s.openArrays)
		s.pos++
		s.phase = PhaseInArray
		return nil
	default:
		return s.errSyntax("document root must be an object or array")
	}
}

func (s *Scanner) stepInObject(c byte) error {
	if IsWhitespace(c) {
		s.pos++
		return nil
	}
	switch {
	case c == '"':
		start, length, err := s.consumeKeyString()
		if err != nil {
			return err
		}
		s.flags.TrailingComma = false
		s.sink.KeyToken(start, length, s.openObjects+s.openArrays)
		s.phase = PhaseWaitColon
		return nil
	case c == '}':
		if s.flags.TrailingComma {
			return s.errSyntax("trailing comma before '}'")
		}
		return s.closeContainer('{', '}')
	default:
		return s.errSyntax("expected string key or '}'")
	}
}

func (s *Scanner) stepInArray(c byte) error {
	if IsWhitespace(c) {
		s.pos++
		return nil
	}
	if c == ']' {
		if s.flags.TrailingComma {
			return s.errSyntax("trailing comma before ']'")
		}
		return s.closeContainer('[', ']')
	}
	s.flags.TrailingComma = false
	return s.dispatchValue(c)
}

func (s *Scanner) stepWaitColon(c byte) error {
	if IsWhitespace(c) {
		s.pos++
		return nil
	}
	if c != ':' {
		return s.errSyntax("expected ':' after key")
	}
	s.pos++
	s.phase = PhaseWaitValue
	return nil
}

func (s *Scanner) stepWaitValue(c byte) error {
	if IsWhitespace(c) {
		s.pos++
		return nil
	}
	s.flags.TrailingComma = false
	return s.dispatchValue(c)
}

func (s *Scanner) stepWaitComma(c byte) error {
	if IsWhitespace(c) {
		s.pos++
		return nil
	}
	top, ok := s.peek()
	switch c {
	case ',':
		if !ok {
			return s.errSyntax("unexpected ',' outside any container")
		}
		s.flags.TrailingComma = true
		s.sink.Comma(s.pos, s.openObjects+s.openArrays)
		s.pos++
		if top == '{' {
			s.phase = PhaseInObject
		} else {
			s.phase = PhaseInArray
		}
		return nil
	case '}':
		if !ok || top != '{' {
			return s.errSyntax("mismatched '}'")
		}
		return s.closeContainer('{', '}')
	case ']':
		if !ok || top != '[' {
			return s.errSyntax("mismatched ']'")
		}
		return s.closeContainer('[', ']')
	default:
		return s.errSyntax("expected ',' or closing bracket")
	}
}

func (s *Scanner) stepEnd(c byte) error {
	if IsWhitespace(c) {
		s.pos++
		return nil
	}
	return s.errSyntax("unexpected trailing data after document")
}

func (s *Scanner) closeContainer(opener, closer byte) error {
	if err := s.pop(opener); err != nil {
		return err
	}
	if opener == '{' {
		s.openObjects--
	} else {
		s.openArrays--
	}
	depth := s.openObjects + s.openArrays
	s.sink.Close(closer, s.pos, depth)
	s.pos++
	s.phase = s.phaseAfterClose()
	return nil
}

// dispatchValue identifies a value's type from its first byte (spec.md
// §4.1/§4.2) and either recurses into a nested container or consumes a
// scalar value in full.
func (s *Scanner) dispatchValue(c byte) error {
	start := s.pos
	var vtype ValueType
	switch {
	case c == '"':
		vtype = String
	case c == '-' || isDigit(c):
		vtype = Number
	case c == '{':
		vtype = Object
	case c == '[':
		vtype = Array
	case c == 't' || c == 'f':
		vtype = Bool
	case c == 'n':
		vtype = Null
	default:
		return s.errSyntax("unrecognized value")
	}

	s.sink.Value(start, vtype, s.openObjects, s.openArrays)

	switch vtype {
	case String:
		if _, _, err := s.consumeQuotedSpan(); err != nil {
			return err
		}
		s.phase = PhaseWaitComma
	case Number:
		if err := s.consumeNumber(); err != nil {
			return err
		}
		s.phase = PhaseWaitComma
	case Bool:
		if err := s.consumeLiteral(c); err != nil {
			return err
		}
		s.phase = PhaseWaitComma
	case Null:
		if err := s.consumeLiteral(c); err != nil {
			return err
		}
		s.phase = PhaseWaitComma
	case Object:
		if err := s.push('{'); err != nil {
			return err
		}
		s.openObjects++
		s.sink.Open('{', start, s.openObjects+s.openArrays)
		s.pos++
		s.phase = PhaseInObject
	case Array:
		if err := s.push('['); err != nil {
			return err
		}
		s.openArrays++
		s.sink.Open('[', start, s.openObjects+s.openArrays)
		s.pos++
		s.phase = PhaseInArray
	}
	return nil
}

// consumeKeyString consumes a quoted key (the opening quote has already
// been seen but not yet consumed) and returns the content's start
// position and byte length, excluding the surrounding quotes.
func (s *Scanner) consumeKeyString() (start, length int, err error) {
	start, _, err = s.consumeQuotedSpan()
	if err != nil {
		return 0, 0, err
	}
	length = (s.pos - 1) - start // s.pos now sits just past the closing quote
	if length > s.limits.MaxKeyLen {
		return 0, 0, ecjperr.Newf(ecjperr.GenericError, "key length %d exceeds MaxKeyLen %d", length, s.limits.MaxKeyLen)
	}
	return start, length, nil
}

// consumeQuotedSpan consumes a full "..." span starting at the opening
// quote (s.cur() == '"'), validating escapes and rejecting raw control
// bytes. On return s.pos is one past the closing quote; start/end
// describe the content (excluding quotes).
func (s *Scanner) consumeQuotedSpan() (start, end int, err error) {
	s.pos++ // consume opening quote
	start = s.pos
	for {
		c := s.cur()
		switch {
		case c == 0:
			return 0, 0, s.errSyntax("unterminated string")
		case c == '"':
			end = s.pos
			s.pos++
			return start, end, nil
		case c == '\\':
			s.pos++
			esc := s.cur()
			if esc == 'u' {
				s.pos++
				for i := 0; i < 4; i++ {
					if !isHexDigit(s.cur()) {
						return 0, 0, s.errSyntax("invalid \\u escape")
					}
					s.pos++
				}
				continue
			}
			if !isEscapeChar(esc) {
				return 0, 0, s.errSyntax("invalid escape sequence")
			}
			s.pos++
		case isRejectedControlByte(c):
			return 0, 0, s.errSyntax("control byte in string")
		default:
			s.pos++
		}
	}
}

// consumeNumber consumes a number literal per the accepted dialect in
// spec.md §4.1 (invariant 5's start_zero rule included).
func (s *Scanner) consumeNumber() error {
	s.flags.StartZero = false
	if s.cur() == '-' {
		s.pos++
	}
	if !isDigit(s.cur()) {
		return s.errSyntax("expected digit")
	}
	if s.cur() == '0' {
		s.flags.StartZero = true
		s.pos++
	} else {
		for isDigit(s.cur()) {
			s.pos++
		}
	}
	if s.flags.StartZero && isDigit(s.cur()) {
		return s.errSyntax("leading zero must not be followed by another digit")
	}
	if s.cur() == '.' {
		s.flags.StartZero = false
		s.pos++
		if !isDigit(s.cur()) {
			return s.errSyntax("expected digit after decimal point")
		}
		for isDigit(s.cur()) {
			s.pos++
		}
	}
	if s.cur() == 'e' || s.cur() == 'E' {
		if s.flags.StartZero {
			return s.errSyntax("leading zero must not be followed by an exponent")
		}
		s.pos++
		if s.cur() == '+' || s.cur() == '-' {
			s.pos++
		}
		if !isDigit(s.cur()) {
			return s.errSyntax("expected digit in exponent")
		}
		for isDigit(s.cur()) {
			s.pos++
		}
	}
	return nil
}

// consumeLiteral consumes "true", "false" or "null" given its dispatching
// first byte.
func (s *Scanner) consumeLiteral(first byte) error {
	var word string
	switch first {
	case 't':
		word = "true"
	case 'f':
		word = "false"
	case 'n':
		word = "null"
	}
	for i := 0; i < len(word); i++ {
		if s.pos+i >= len(s.src) || s.src[s.pos+i] != word[i] {
			return s.errSyntax("invalid literal")
		}
	}
	s.pos += len(word)
	return nil
}
