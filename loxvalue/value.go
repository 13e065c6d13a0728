/*
File    : lox/loxvalue/value.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package loxvalue holds the free functions that define how Lox's runtime
// values behave: truthiness, equality, and print-formatting. Lox only ever
// has five kinds of value — nil, bool, number, string, callable — so they
// are represented here as plain Go interface{} rather than wrapper structs,
// since nothing in this language needs a runtime type tag beyond a Go type
// switch.
package loxvalue

import (
	"strconv"
	"strings"
)

// stringer is satisfied by runtime values that render themselves (native
// and user callables). Declared locally instead of importing interp's
// Callable type, since interp depends on loxvalue for its value domain and
// importing it back here would form a package cycle.
type stringer interface {
	String() string
}

// Number formats a float64 the way Lox prints numbers: an integral value
// never shows a trailing ".0" or fractional digits, matching
// original_source/Value.cpp's numberToString.
func Number(n float64) string {
	s := strconv.FormatFloat(n, 'g', -1, 64)
	if strings.ContainsAny(s, "eE") {
		// FormatFloat may choose scientific notation for very large or very
		// small magnitudes; 'f' keeps Lox's plain decimal style instead.
		s = strconv.FormatFloat(n, 'f', -1, 64)
	}
	return s
}

// Stringify renders any runtime value the way Lox's `print` and REPL
// result-echo do.
func Stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return "nil"
	case bool:
		if v {
			return "true"
		}
		return "false"
	case float64:
		return Number(v)
	case string:
		return v
	case stringer:
		return v.String()
	default:
		return ""
	}
}

// IsTruthy applies Lox's truthiness rule: nil and false are falsey,
// everything else (including 0 and "") is truthy.
func IsTruthy(value interface{}) bool {
	if value == nil {
		return false
	}
	if b, ok := value.(bool); ok {
		return b
	}
	return true
}

// IsEqual applies Lox's `==` semantics: nil equals only nil, numbers and
// strings and bools compare by value, callables compare by identity, and
// values of different kinds are never equal.
func IsEqual(a, b interface{}) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}
