//go:build !ecjp_notrace

// Package diag implements spec.md §4.6: rendering a failed scan's source
// around its error position for human inspection. Render never mutates
// its input and streams directly to a caller-chosen io.Writer rather than
// building the rendering in memory.
//
// Build with -tags ecjp_notrace to compile this package out entirely on
// constrained targets, mirroring spec.md §6's tracing feature flag.
package diag

import (
	"io"

	"github.com/aledsdavies/ecjp/ecjperr"
	"github.com/aledsdavies/ecjp/lex"
)

// Render writes src to w as fixed-width lines (limits.MaxPrintColumns
// columns, newlines replaced by spaces to keep column numbers meaningful)
// followed by a "----^" marker under the line containing errPos.
//
// errPos must be a valid offset into src, i.e. in [0, len(src)] — the
// closed upper bound covers brackets_missing, whose err_pos is one past
// the last consumed byte.
func Render(w io.Writer, src []byte, errPos int, limits lex.Limits) error {
	if len(src) > 0 && src[len(src)-1] == 0 {
		src = src[:len(src)-1]
	}
	if errPos < 0 || errPos > len(src) {
		return ecjperr.Newf(ecjperr.GenericError, "err_pos %d out of range [0,%d]", errPos, len(src))
	}
	cols := limits.MaxPrintColumns
	if cols <= 0 {
		cols = lex.DefaultLimits().MaxPrintColumns
	}

	flat := make([]byte, len(src))
	for i, b := range src {
		if b == '\n' {
			flat[i] = ' '
		} else {
			flat[i] = b
		}
	}

	lineStart := 0
	printed := false
	for lineStart == 0 || lineStart < len(flat) {
		lineEnd := lineStart + cols
		if lineEnd > len(flat) {
			lineEnd = len(flat)
		}
		if err := writeLine(w, flat[lineStart:lineEnd]); err != nil {
			return err
		}
		onThisLine := errPos >= lineStart && (errPos < lineEnd || lineEnd == len(flat))
		if onThisLine && !printed {
			if err := writeUnderline(w, errPos-lineStart); err != nil {
				return err
			}
			printed = true
		}
		if lineEnd == len(flat) {
			break
		}
		lineStart = lineEnd
	}
	return nil
}

func writeLine(w io.Writer, line []byte) error {
	if _, err := w.Write(line); err != nil {
		return ecjperr.Wrap(ecjperr.GenericError, "diagnostic write failed", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return ecjperr.Wrap(ecjperr.GenericError, "diagnostic write failed", err)
	}
	return nil
}

func writeUnderline(w io.Writer, col int) error {
	marker := make([]byte, col+1)
	for i := 0; i < col; i++ {
		marker[i] = '-'
	}
	marker[col] = '^'
	return writeLine(w, marker)
}
