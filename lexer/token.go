package lexer

import (
	"github.com/ava12/ngroup/alphabet"
	"github.com/ava12/ngroup/source"
)

// Type is a token type.
type Type int

const (
	// LiteralToken is a run of non-delimiter, non-bracket characters.
	LiteralToken Type = iota
	// DelimiterToken is a single delimiter character.
	DelimiterToken
	// OpenToken is a single opening bracket.
	OpenToken
	// CloseToken is a single closing bracket.
	CloseToken
	// EofToken marks the end of source, it has empty text.
	EofToken
)

var typeNames = [...]string{"literal", "delimiter", "open", "close", "-end-of-file-"}

func (t Type) String() string {
	if t < 0 || int(t) >= len(typeNames) {
		return "-unknown-"
	}
	return typeNames[t]
}

// Token is a lexeme fetched by Lexer.
type Token struct {
	tokenType Type
	kind      alphabet.Kind
	text      string
	pos       source.Pos
}

// NewToken creates new token. kind is meaningful only for bracket tokens.
func NewToken(tokenType Type, kind alphabet.Kind, text string, pos source.Pos) *Token {
	return &Token{tokenType, kind, text, pos}
}

// Type returns token type.
func (t *Token) Type() Type {
	return t.tokenType
}

// TypeName returns token type name.
func (t *Token) TypeName() string {
	return t.tokenType.String()
}

// Kind returns group kind of a bracket token or alphabet.NoKind.
func (t *Token) Kind() alphabet.Kind {
	return t.kind
}

// Text returns token text.
func (t *Token) Text() string {
	return t.text
}

// Pos returns token start position.
func (t *Token) Pos() source.Pos {
	return t.pos
}

// SourceName returns source name or empty string.
func (t *Token) SourceName() string {
	return t.pos.SourceName()
}

// Line returns line number of token start.
func (t *Token) Line() int {
	return t.pos.Line()
}

// Col returns column number of token start.
func (t *Token) Col() int {
	return t.pos.Col()
}
