package parser

import (
	"github.com/ava12/ngroup"
	"github.com/ava12/ngroup/lexer"
	"github.com/ava12/ngroup/source"
)

// Error codes used by parser:
const (
	// NoGroupsError indicates that source contains no bracket characters, so there is nothing to parse.
	NoGroupsError = ngroup.ParserErrors + iota

	// UnexpectedCloseError indicates a closing bracket with no open group.
	UnexpectedCloseError

	// MismatchedCloseError indicates a closing bracket of a kind other than the innermost open group.
	MismatchedCloseError

	// UnclosedGroupError indicates that source ends inside a group.
	UnclosedGroupError
)

func noGroupsError(src *source.Source) *ngroup.Error {
	return ngroup.NewError(NoGroupsError, "no grouping found", src.Name(), 0, 0)
}

func unexpectedCloseError(t *lexer.Token) *ngroup.Error {
	return ngroup.FormatErrorPos(t, UnexpectedCloseError, "unexpected %q with no open group", t.Text())
}

func mismatchedCloseError(t, open *lexer.Token) *ngroup.Error {
	return ngroup.FormatErrorPos(t, MismatchedCloseError, "%q does not close %s group %q opened at line %d col %d",
		t.Text(), open.Kind(), open.Text(), open.Line(), open.Col())
}

func unclosedGroupError(open *lexer.Token) *ngroup.Error {
	return ngroup.FormatErrorPos(open, UnclosedGroupError, "unclosed %s group %q", open.Kind(), open.Text())
}
