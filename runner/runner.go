/*
File    : lox/runner/runner.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package runner implements file-mode execution: read a script, run the
// whole scanner/parser/resolver/interpreter pipeline once, and report an
// exit code. It separates file I/O from the pipeline run and returns the
// exit code to its caller instead of calling os.Exit directly, so cmd/lox
// stays a thin dispatcher and the pipeline itself stays testable without
// spawning a process.
package runner

import (
	"io"
	"os"

	"github.com/akashmaji946/lox/interp"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/resolver"
)

// Exit codes, per the CLI surface: 0 success, 64 usage error, 65 a static
// (lex/parse/resolve) error, 70 a runtime error.
const (
	ExitOK         = 0
	ExitUsageError = 64
	ExitDataError  = 65
	ExitSoftware   = 70
)

// RunFile reads path and executes it as a single program, writing `print`
// output to stdout and diagnostics to stderr.
func RunFile(path string, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(path)
	if err != nil {
		return ExitDataError
	}
	return Run(string(source), stdout, stderr)
}

// Run executes one program's worth of source through the full pipeline and
// returns the process exit code that should result.
func Run(source string, stdout, stderr io.Writer) int {
	rep := loxerr.New(stderr)

	tokens := lexer.New(source, rep).ScanTokens()
	statements := parser.New(tokens, rep).Parse()
	if rep.HadError() {
		return ExitDataError
	}

	res := resolver.New(rep)
	res.Resolve(statements)
	if rep.HadError() {
		return ExitDataError
	}

	it := interp.New(res.Locals(), rep, stdout)
	it.Interpret(statements)
	if rep.HadRuntimeError() {
		return ExitSoftware
	}
	return ExitOK
}
