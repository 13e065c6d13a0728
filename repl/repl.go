/*
File    : lox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the interactive Read-Eval-Print Loop: readline
for line editing and history, fatih/color for the REPL start-up failure
message (red) and the TCP server banner (cyan); Lox diagnostics from the
Reporter are written uncolored. Each
line runs through lexer -> parser -> resolver -> interp, and the
Interpreter/Reporter persist across lines so variables and functions
declared on one line are visible on the next, while static error state
resets every line so a mistake never poisons the rest of the session.
*/
package repl

import (
	"io"
	"net"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/lox/interp"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/resolver"
)

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

// Prompt is the REPL's prompt string.
const Prompt = "> "

// Repl is one interactive session: a persistent interpreter and reporter
// shared across lines, so top-level declarations accumulate the way a
// script's single pass would.
type Repl struct{}

// New creates a Repl.
func New() *Repl {
	return &Repl{}
}

// Start runs the interactive loop against the process's own stdin/stdout.
// It returns when the user enters an empty line, the literal `exit`, or
// sends EOF (Ctrl+D).
func (r *Repl) Start(out io.Writer) {
	r.StartWith(os.Stdin, out)
}

// StartWith runs the interactive loop against an arbitrary connection
// (a TCP socket for ServeTCP, or os.Stdin for the ordinary CLI REPL).
func (r *Repl) StartWith(in io.ReadCloser, out io.Writer) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt: Prompt,
		Stdin:  in,
		Stdout: out,
	})
	if err != nil {
		redColor.Fprintf(out, "could not start REPL: %v\n", err)
		return
	}
	defer rl.Close()

	rep := loxerr.New(out)
	it := interp.New(nil, rep, out)

	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}
		line = strings.TrimRight(line, " \t\r\n")
		if line == "" || line == "exit" {
			return
		}
		rl.SaveHistory(line)
		r.evalLine(line, rep, it, out)
	}
}

// evalLine runs one line of input through the full pipeline against the
// shared interpreter, resetting the reporter's error flags first so a
// mistake on one line never poisons the next.
func (r *Repl) evalLine(line string, rep *loxerr.Reporter, it *interp.Interpreter, out io.Writer) {
	rep.Reset()

	tokens := lexer.New(line, rep).ScanTokens()
	statements := parser.New(tokens, rep).Parse()
	if rep.HadError() {
		return
	}

	res := resolver.New(rep)
	res.Resolve(statements)
	if rep.HadError() {
		return
	}

	it.SetLocals(res.Locals())
	it.Interpret(statements)
}

// ServeTCP runs the REPL protocol over a TCP listener, one session per
// connection. Each connection gets its own Interpreter and Reporter, so
// sessions never share state.
func ServeTCP(addr string) error {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	defer listener.Close()
	for {
		conn, err := listener.Accept()
		if err != nil {
			continue
		}
		go handleConn(conn)
	}
}

func handleConn(conn net.Conn) {
	defer conn.Close()
	cyanColor.Fprintf(conn, "lox REPL server\n")
	(&Repl{}).StartWith(conn, conn)
}
