// Package parser builds part trees from group expressions.
package parser

import (
	"github.com/ava12/ngroup/alphabet"
	"github.com/ava12/ngroup/lexer"
	"github.com/ava12/ngroup/source"
	"github.com/ava12/ngroup/tree"
)

// Parser converts group expressions to part trees using an alphabet.
// Parser is immutable and safe for concurrent use.
type Parser struct {
	alphabet *alphabet.Alphabet
}

// New creates new Parser. Default alphabet is used if a is nil.
func New(a *alphabet.Alphabet) *Parser {
	if a == nil {
		a = alphabet.Default()
	}
	return &Parser{alphabet: a}
}

// Alphabet returns parser alphabet.
func (p *Parser) Alphabet() *alphabet.Alphabet {
	return p.alphabet
}

var defaultParser = New(nil)

// Parse parses text using default alphabet.
func Parse(text string) (*tree.Tree, error) {
	return defaultParser.Parse("", text)
}

type openGroup struct {
	id    tree.ID
	token *lexer.Token
}

// Parse converts text to a part tree in a single pass.
// name is used in error messages and may be empty.
//
// Returns nil tree and ngroup.Error with NoGroupsError code if text contains no brackets
// (this includes empty text). Any bracket mismatch invalidates the whole text,
// in this case nil tree and corresponding ngroup.Error are returned.
func (p *Parser) Parse(name, text string) (*tree.Tree, error) {
	src := source.New(name, text)
	if !p.alphabet.HasBrackets(text) {
		return nil, noGroupsError(src)
	}

	l := lexer.New(p.alphabet, src)
	t := tree.New()
	var stack []openGroup
	current := tree.Root

	for {
		tok := l.Next()
		switch tok.Type() {
		case lexer.LiteralToken:
			t.AppendLiteral(current, tok.Text(), tok.Pos())

		case lexer.DelimiterToken:
			t.AppendDelimiter(current, tok.Text(), tok.Pos())

		case lexer.OpenToken:
			current = t.AppendGroup(current, tok.Kind(), tok.Pos())
			stack = append(stack, openGroup{current, tok})

		case lexer.CloseToken:
			if len(stack) == 0 {
				return nil, unexpectedCloseError(tok)
			}

			top := stack[len(stack)-1]
			if top.token.Kind() != tok.Kind() {
				return nil, mismatchedCloseError(tok, top.token)
			}

			stack = stack[:len(stack)-1]
			current = tree.Root
			if len(stack) > 0 {
				current = stack[len(stack)-1].id
			}

		case lexer.EofToken:
			if len(stack) > 0 {
				return nil, unclosedGroupError(stack[len(stack)-1].token)
			}
			return t, nil
		}
	}
}
