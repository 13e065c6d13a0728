/*
File    : lox/loxerr/reporter.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package loxerr centralizes the error-reporting state shared by the
// scanner, parser, resolver and interpreter. The original pipeline this
// language is descended from drives itself with two process-wide booleans
// (hadError, hadRuntimeError); here that state is owned by a Reporter value
// that a caller constructs once per run and resets between REPL lines.
package loxerr

import (
	"fmt"
	"io"
)

// RuntimeError is the distinguished error type the interpreter unwinds with.
// It is never confused with the control-flow signal used for `return` —
// the two are different Go types entirely (see interp.returnSignal).
type RuntimeError struct {
	Line    int
	Message string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Line)
}

// NewRuntimeError builds a RuntimeError attributed to the given line.
func NewRuntimeError(line int, format string, a ...interface{}) *RuntimeError {
	return &RuntimeError{Line: line, Message: fmt.Sprintf(format, a...)}
}

// Reporter accumulates whether a static or runtime error occurred during one
// run of the pipeline (one script, or one REPL line) and formats diagnostics
// to a writer (normally os.Stderr).
type Reporter struct {
	Out           io.Writer
	hadError      bool
	hadRuntime    bool
}

// New creates a Reporter that writes diagnostics to w.
func New(w io.Writer) *Reporter {
	return &Reporter{Out: w}
}

// Reset clears both error flags so a REPL can reuse one Reporter across
// lines without static errors from one line poisoning the next.
func (r *Reporter) Reset() {
	r.hadError = false
	r.hadRuntime = false
}

// HadError reports whether any lexical, syntax or static-semantic error was
// reported since the last Reset.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a runtime error was reported since the
// last Reset.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntime }

// Error reports a lexical error: no token context, just a line.
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
}

// ErrorAtToken reports a syntax or static-semantic error attributed to a
// token. atEnd formats " at end" (EOF) and ignores lexeme; otherwise lexeme
// is the literal token text, formatted as " at '<lexeme>'".
func (r *Reporter) ErrorAtToken(line int, atEnd bool, lexeme, message string) {
	where := " at '" + lexeme + "'"
	if atEnd {
		where = " at end"
	}
	r.report(line, where, message)
}

func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.Out, "[line %d] Error%s: %s\n", line, where, message)
	r.hadError = true
}

// RuntimeError reports a runtime error surfaced by the interpreter.
func (r *Reporter) RuntimeError(err *RuntimeError) {
	fmt.Fprintln(r.Out, err.Error())
	r.hadRuntime = true
}
