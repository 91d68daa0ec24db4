// Package lexer splits group expressions into tokens.
package lexer

import (
	"unicode/utf8"

	"github.com/ava12/ngroup/alphabet"
	"github.com/ava12/ngroup/source"
)

// Lexer performs lexical analysis of a single source using an alphabet.
// Every delimiter and bracket character is a separate token, all other characters
// between them are captured as a single literal token.
// Bytes that are not valid UTF-8 are literal characters and are kept verbatim.
// Lexer keeps current position, so it must not be shared between goroutines.
type Lexer struct {
	alphabet *alphabet.Alphabet
	src      *source.Source
	pos      int
}

// New creates new Lexer. Default alphabet is used if a is nil.
func New(a *alphabet.Alphabet, src *source.Source) *Lexer {
	if a == nil {
		a = alphabet.Default()
	}
	return &Lexer{alphabet: a, src: src}
}

var classTypes = map[alphabet.Class]Type{
	alphabet.Delimiter: DelimiterToken,
	alphabet.Open:      OpenToken,
	alphabet.Close:     CloseToken,
}

func (l *Lexer) classify(pos int) (alphabet.Class, alphabet.Kind, int) {
	r, size := utf8.DecodeRuneInString(l.src.Content()[pos:])
	if r == utf8.RuneError && size <= 1 {
		return alphabet.Literal, alphabet.NoKind, size
	}
	class, kind := l.alphabet.Classify(r)
	return class, kind, size
}

// Next fetches token starting at current position and advances current position.
// Returns EoF token if current position is at the end of source.
func (l *Lexer) Next() *Token {
	content := l.src.Content()
	start := l.pos
	if start >= len(content) {
		return NewToken(EofToken, alphabet.NoKind, "", source.NewPos(l.src, start))
	}

	class, kind, size := l.classify(start)
	if class != alphabet.Literal {
		l.pos += size
		return NewToken(classTypes[class], kind, content[start:l.pos], source.NewPos(l.src, start))
	}

	pos := start + size
	for pos < len(content) {
		class, _, size = l.classify(pos)
		if class != alphabet.Literal {
			break
		}
		pos += size
	}
	l.pos = pos
	return NewToken(LiteralToken, alphabet.NoKind, content[start:pos], source.NewPos(l.src, start))
}
