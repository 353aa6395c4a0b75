package slotscan

import (
	"fmt"
	"io"

	"github.com/aledsdavies/ecjp/ecjperr"
	"github.com/aledsdavies/ecjp/lex"
)

var _ lex.Sink = (*gatedSink)(nil)

// CheckSyntax validates src against the accepted JSON-ish grammar without
// emitting any tokens, degrading the scan to pure syntax checking exactly
// as spec.md §4.2 describes for a NULL sink.
func CheckSyntax(src []byte, limits lex.Limits) (lex.Result, error) {
	scanner := lex.NewScanner(lex.EnsureTerminated(src), limits, lex.NopSink{})
	return scanner.Scan()
}

// Load scans src once, emitting one Token per value slot whose enclosing
// object nesting is at or below level. level is purely a gate: syntax is
// fully validated regardless of how many tokens it suppresses.
func Load(src []byte, limits lex.Limits, level int) (KeyList, lex.Result, error) {
	sink := newGatedSink(level)
	scanner := lex.NewScanner(lex.EnsureTerminated(src), limits, sink)
	res, err := scanner.Scan()
	return sink.list, res, err
}

// CheckAndLoad folds CheckSyntax and Load into a single call, mirroring
// ecjp_check_and_load. Load already performs full syntax validation as a
// side effect of scanning (see SPEC_FULL.md §8), so this is a thin
// wrapper rather than a second scan.
func CheckAndLoad(src []byte, limits lex.Limits, level int) (KeyList, lex.Result, error) {
	return Load(src, limits, level)
}

// PrintKeys writes an order-preserving diagnostic dump of list to w, one
// line per token: its type name, position, and length, plus the key text
// itself when available. It never reads past len(src).
func PrintKeys(w io.Writer, src []byte, list KeyList) error {
	for i, tok := range list {
		key := ""
		if tok.HasKey() && tok.Start+tok.Length <= len(src) {
			key = string(src[tok.Start : tok.Start+tok.Length])
		}
		if _, err := fmt.Fprintf(w, "[%d] type=%s pos=%d len=%d key=%q\n", i, tok.Type, tok.Start, tok.Length, key); err != nil {
			return ecjperr.Wrap(ecjperr.GenericError, "write failed", err)
		}
	}
	return nil
}
