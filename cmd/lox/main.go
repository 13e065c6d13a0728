/*
File    : lox/cmd/lox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command lox is the process entry point: argument dispatch only, across
// three modes — no args starts the REPL, one arg runs a script file, and
// `server <port>` serves the REPL protocol over TCP so the `net` package
// gets a concrete home alongside the rest of the interpreter.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/lox/repl"
	"github.com/akashmaji946/lox/runner"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	switch len(args) {
	case 0:
		repl.New().Start(os.Stdout)
		return runner.ExitOK
	case 1:
		if args[0] == "server" {
			fmt.Fprintln(os.Stderr, "usage: lox server <port>")
			return runner.ExitUsageError
		}
		return runner.RunFile(args[0], os.Stdout, os.Stderr)
	case 2:
		if args[0] == "server" {
			fmt.Printf("lox REPL server listening on :%s\n", args[1])
			if err := repl.ServeTCP(":" + args[1]); err != nil {
				fmt.Fprintf(os.Stderr, "server error: %v\n", err)
				return runner.ExitSoftware
			}
			return runner.ExitOK
		}
		fmt.Fprintln(os.Stderr, "usage: lox [script]")
		return runner.ExitUsageError
	default:
		fmt.Fprintln(os.Stderr, "usage: lox [script]")
		return runner.ExitUsageError
	}
}
