package lex

// IsWhitespace reports whether b is one of the four whitespace bytes
// accepted between tokens: space, tab, newline, carriage return.
func IsWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isHexDigit(b byte) bool {
	return (b >= '0' && b <= '9') || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// isRejectedControlByte reports whether b is a control byte that must not
// appear literally inside a quoted string. Tab, newline and carriage
// return are deliberately excluded from rejection, matching the accepted
// dialect in spec.md §4.1.
func isRejectedControlByte(b byte) bool {
	if b == '\t' || b == '\n' || b == '\r' {
		return false
	}
	return b <= 0x1F || b == 0x7F
}

func isEscapeChar(b byte) bool {
	switch b {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		return true
	default:
		return false
	}
}
