// Package alphabet defines bracket and delimiter characters of group expressions.
package alphabet

import (
	"strings"
	"unicode/utf8"

	"github.com/ava12/ngroup"
)

// Error codes used by alphabet:
const (
	// EmptySetError indicates that a bracket or delimiter set is empty.
	EmptySetError = ngroup.AlphabetErrors + iota

	// DuplicateCharError indicates that the same character is used twice.
	DuplicateCharError

	// BadPairError indicates that a bracket pair definition is not exactly two distinct characters.
	BadPairError
)

// Kind is a group kind, determined by the opening bracket.
type Kind int

const (
	// NoKind is the kind of the root container.
	NoKind Kind = iota

	// Omissible group content may be included or dropped entirely.
	Omissible

	// Alternative group content is a set of delimiter-separated choices, exactly one of them is used.
	Alternative
)

func (k Kind) String() string {
	switch k {
	case Omissible:
		return "omissible"
	case Alternative:
		return "alternative"
	default:
		return "root"
	}
}

// Class is a character class.
type Class int

const (
	Literal Class = iota
	Delimiter
	Open
	Close
)

func (c Class) String() string {
	switch c {
	case Delimiter:
		return "delimiter"
	case Open:
		return "open"
	case Close:
		return "close"
	default:
		return "literal"
	}
}

// Pair is a pair of opening and closing brackets.
type Pair struct {
	Open, Close rune
}

func (p Pair) String() string {
	return string([]rune{p.Open, p.Close})
}

// ParsePair converts two-character string to Pair.
func ParsePair(s string) (Pair, error) {
	rs := []rune(s)
	if len(rs) != 2 || rs[0] == rs[1] || rs[0] == utf8.RuneError || rs[1] == utf8.RuneError {
		return Pair{}, ngroup.FormatError(BadPairError, "bad bracket pair %q", s)
	}
	return Pair{rs[0], rs[1]}, nil
}

// ParsePairs converts a list of two-character strings to a list of Pairs.
func ParsePairs(ss []string) ([]Pair, error) {
	res := make([]Pair, 0, len(ss))
	for _, s := range ss {
		p, e := ParsePair(s)
		if e != nil {
			return nil, e
		}
		res = append(res, p)
	}
	return res, nil
}

// Def describes an Alphabet.
// The first pair of each kind and the first delimiter are canonical, i.e. used by normalizer.
type Def struct {
	Omissible   []Pair
	Alternative []Pair
	Delimiters  string
}

// DefaultDef is the definition of Default alphabet.
var DefaultDef = Def{
	Omissible:   []Pair{{'（', '）'}, {'(', ')'}, {'［', '］'}, {'[', ']'}},
	Alternative: []Pair{{'｛', '｝'}, {'{', '}'}, {'〈', '〉'}},
	Delimiters:  "／/，,、。；; ",
}

type charInfo struct {
	class Class
	kind  Kind
}

// Alphabet maps characters to their classes and bracket kinds.
// Alphabet is immutable and safe for concurrent use.
type Alphabet struct {
	chars      map[rune]charInfo
	canonical  [3]Pair
	canonDelim rune
	brackets   string
}

// New validates definition and creates new Alphabet.
// Every character may be used only once in the whole definition.
func New(d Def) (*Alphabet, error) {
	if len(d.Omissible) == 0 || len(d.Alternative) == 0 {
		return nil, ngroup.FormatError(EmptySetError, "both omissible and alternative bracket sets must be non-empty")
	}
	if d.Delimiters == "" {
		return nil, ngroup.FormatError(EmptySetError, "delimiter set must be non-empty")
	}

	a := &Alphabet{chars: make(map[rune]charInfo)}
	add := func(r rune, ci charInfo) error {
		if _, f := a.chars[r]; f {
			return ngroup.FormatError(DuplicateCharError, "character %q is used more than once", r)
		}
		a.chars[r] = ci
		return nil
	}

	var brackets strings.Builder
	sets := []struct {
		kind  Kind
		pairs []Pair
	}{{Omissible, d.Omissible}, {Alternative, d.Alternative}}
	for _, set := range sets {
		a.canonical[set.kind] = set.pairs[0]
		for _, p := range set.pairs {
			if p.Open == p.Close {
				return nil, ngroup.FormatError(BadPairError, "bad bracket pair %q", p.String())
			}
			e := add(p.Open, charInfo{Open, set.kind})
			if e == nil {
				e = add(p.Close, charInfo{Close, set.kind})
			}
			if e != nil {
				return nil, e
			}
			brackets.WriteRune(p.Open)
			brackets.WriteRune(p.Close)
		}
	}

	a.canonDelim, _ = utf8.DecodeRuneInString(d.Delimiters)
	for _, r := range d.Delimiters {
		e := add(r, charInfo{Delimiter, NoKind})
		if e != nil {
			return nil, e
		}
	}

	a.brackets = brackets.String()
	return a, nil
}

// MustNew is like New but panics on invalid definition.
func MustNew(d Def) *Alphabet {
	a, e := New(d)
	if e != nil {
		panic(e)
	}
	return a
}

var defaultAlphabet = MustNew(DefaultDef)

// Default returns the alphabet used when no other is specified.
func Default() *Alphabet {
	return defaultAlphabet
}

// Classify returns character class and, for brackets, group kind.
func (a *Alphabet) Classify(r rune) (Class, Kind) {
	ci, f := a.chars[r]
	if !f {
		return Literal, NoKind
	}
	return ci.class, ci.kind
}

// Canonical returns canonical bracket pair for given kind.
// Returns zero Pair for NoKind.
func (a *Alphabet) Canonical(k Kind) Pair {
	if k != Omissible && k != Alternative {
		return Pair{}
	}
	return a.canonical[k]
}

// CanonicalDelimiter returns canonical delimiter.
func (a *Alphabet) CanonicalDelimiter() rune {
	return a.canonDelim
}

// Brackets returns all bracket characters.
func (a *Alphabet) Brackets() string {
	return a.brackets
}

// HasBrackets reports whether text contains at least one bracket character.
func (a *Alphabet) HasBrackets(text string) bool {
	return strings.ContainsAny(text, a.brackets)
}
