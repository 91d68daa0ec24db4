/*
Package ngroup parses group expressions used to describe families of search terms
and expands them into the full list of literal terms.

A group expression is plain text with two kinds of bracketed groups:
  - omissible groups, e.g. "食べ（る）", whose content may be included or dropped;
  - alternative groups, e.g. "｛見／観｝る", exactly one of whose delimiter-separated
    choices is used.

Groups nest arbitrarily, and delimiters outside of groups separate independent terms.

Consists of subpackages:
  - alphabet: bracket and delimiter characters, their kinds, and canonical forms;
  - source: named input text with line and column lookup;
  - lexer: splits input text into literal, delimiter, and bracket tokens;
  - tree: arena-backed part tree built by parser;
  - parser: single-pass parser producing part trees;
  - normalize: renders part trees using canonical brackets and delimiters;
  - expand: enumerates all terms described by a part tree;
  - cmd/ngroup: console utility expanding and normalizing group expressions.

Typical usage is:

	t, e := parser.Parse("A(B)〈C／D〉")
	if e != nil {
		// malformed expression or no groups at all
	}
	fmt.Println(normalize.String(t))  // A（B）｛C／D｝
	fmt.Println(expand.Terms(t))      // [AC AD ABC ABD]
*/
package ngroup

import (
	"fmt"
)

// Error classes used by subpackages, each class contains up to 99 error codes:
const (
	AlphabetErrors = 1   // used by alphabet
	ParserErrors   = 201 // used by parser
)

// Error is the error type used by ngroup subpackages.
type Error struct {
	// Code contains non-zero error code.
	Code int

	// Message contains non-empty error message including source name and position information if provided.
	Message string

	// SourceName contains source name that caused this error or empty string.
	SourceName string

	// Line contains line number in source text or 0.
	Line int

	// Col contains column number (in runes) in source text or 0.
	Col int
}

// SourcePos is used to retrieve source name and position information when constructing an error;
// source.Pos and lexer.Token implement this interface.
type SourcePos interface {
	// SourceName returns source name or empty string.
	SourceName() string
	// Line returns line number or 0.
	Line() int
	// Col returns column number or 0.
	Col() int
}

// NewError creates new Error structure.
// line and col will be added to error message if provided (non-zero), name is added if not empty.
func NewError(code int, msg, name string, line, col int) *Error {
	if line != 0 && col != 0 {
		if name == "" {
			msg += fmt.Sprintf(" at line %d col %d", line, col)
		} else {
			msg += fmt.Sprintf(" in %s at line %d col %d", name, line, col)
		}
	}
	return &Error{code, msg, name, line, col}
}

// Error simply returns Error.Message.
func (e *Error) Error() string {
	return e.Message
}

// FormatError creates Error structure with no source and position information.
// params will be added to error message using fmt.Sprintf function.
func FormatError(code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, "", 0, 0)
}

// FormatErrorPos creates Error structure with source and position information.
// pos must not be nil.
// params will be added to error message using fmt.Sprintf function.
func FormatErrorPos(pos SourcePos, code int, msg string, params ...any) *Error {
	if len(params) > 0 {
		msg = fmt.Sprintf(msg, params...)
	}
	return NewError(code, msg, pos.SourceName(), pos.Line(), pos.Col())
}

// HasCode reports whether e is an *Error with given code.
func HasCode(e error, code int) bool {
	ee, f := e.(*Error)
	return f && ee.Code == code
}
