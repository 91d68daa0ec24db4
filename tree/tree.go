// Package tree defines the part tree built by parser.
//
// All parts are kept in an arena owned by Tree and addressed by ID.
// The root container always has ID Root, its kind is alphabet.NoKind.
// Literal parts never contain empty text: adjacent literal text appended
// to the same container is concatenated, and any other part terminates the run.
package tree

import (
	"slices"
	"strconv"
	"strings"

	"github.com/ava12/ngroup/alphabet"
	"github.com/ava12/ngroup/source"
)

// ID addresses a part inside its Tree.
type ID int

// Root is the ID of the root container.
const Root ID = 0

// Type is a part type.
type Type int

const (
	// GroupPart is a container: the root or a bracketed group.
	GroupPart Type = iota
	// LiteralPart is a run of literal text.
	LiteralPart
	// DelimiterPart is a zero-width term boundary.
	DelimiterPart
)

func (t Type) String() string {
	switch t {
	case LiteralPart:
		return "literal"
	case DelimiterPart:
		return "delimiter"
	default:
		return "group"
	}
}

type part struct {
	partType Type
	kind     alphabet.Kind
	text     string
	children []ID
	pos      source.Pos
}

// Tree is a part tree.
// Tree is not safe for concurrent modification; once built it may be read concurrently.
type Tree struct {
	parts []part
}

// New creates a tree containing only empty root container.
func New() *Tree {
	return &Tree{parts: []part{{partType: GroupPart, kind: alphabet.NoKind}}}
}

// Len returns the number of parts including the root.
func (t *Tree) Len() int {
	return len(t.parts)
}

// Type returns part type.
func (t *Tree) Type(id ID) Type {
	return t.parts[id].partType
}

// Kind returns group kind, alphabet.NoKind for the root and non-group parts.
func (t *Tree) Kind(id ID) alphabet.Kind {
	return t.parts[id].kind
}

// Text returns literal text or the delimiter character as it appeared in source.
// Returns empty string for containers.
func (t *Tree) Text(id ID) string {
	return t.parts[id].text
}

// Pos returns the source position of the first character of a part.
func (t *Tree) Pos(id ID) source.Pos {
	return t.parts[id].pos
}

// IsContainer reports whether the part may contain children.
func (t *Tree) IsContainer(id ID) bool {
	return t.parts[id].partType == GroupPart
}

// Children returns a copy of container child list, nil for other parts.
func (t *Tree) Children(id ID) []ID {
	return slices.Clone(t.parts[id].children)
}

// NumChildren returns the number of container children.
func (t *Tree) NumChildren(id ID) int {
	return len(t.parts[id].children)
}

// Child returns i-th child of a container. Negative index counts from the end (-1 is the last child).
// Returns -1 if there is no such child.
func (t *Tree) Child(id ID, i int) ID {
	cs := t.parts[id].children
	if i < 0 {
		i += len(cs)
	}
	if i < 0 || i >= len(cs) {
		return -1
	}
	return cs[i]
}

func (t *Tree) appendPart(parent ID, p part) ID {
	id := ID(len(t.parts))
	t.parts = append(t.parts, p)
	t.parts[parent].children = append(t.parts[parent].children, id)
	return id
}

// AppendLiteral appends text to the last child of the parent container if it is a literal,
// otherwise appends new literal part. Empty text is ignored.
// Returns the ID of the literal part or -1 if nothing was appended.
func (t *Tree) AppendLiteral(parent ID, text string, pos source.Pos) ID {
	if text == "" {
		return -1
	}

	last := t.Child(parent, -1)
	if last >= 0 && t.parts[last].partType == LiteralPart {
		t.parts[last].text += text
		return last
	}

	return t.appendPart(parent, part{partType: LiteralPart, text: text, pos: pos})
}

// AppendDelimiter appends delimiter part to the parent container.
// text is the delimiter character as it appears in source.
func (t *Tree) AppendDelimiter(parent ID, text string, pos source.Pos) ID {
	return t.appendPart(parent, part{partType: DelimiterPart, text: text, pos: pos})
}

// AppendGroup appends empty group of given kind to the parent container.
func (t *Tree) AppendGroup(parent ID, kind alphabet.Kind, pos source.Pos) ID {
	return t.appendPart(parent, part{partType: GroupPart, kind: kind, pos: pos})
}

// String returns a debug representation of the tree, e.g.
//
//	"A" (omissible "B") (alternative "C" / "D")
func (t *Tree) String() string {
	b := &strings.Builder{}
	t.serialize(Root, b)
	return b.String()
}

func (t *Tree) serialize(id ID, b *strings.Builder) {
	for i, c := range t.parts[id].children {
		if i > 0 {
			b.WriteByte(' ')
		}
		p := &t.parts[c]
		switch p.partType {
		case LiteralPart:
			b.WriteString(strconv.Quote(p.text))
		case DelimiterPart:
			b.WriteByte('/')
		default:
			b.WriteString("(" + p.kind.String())
			if len(p.children) > 0 {
				b.WriteByte(' ')
				t.serialize(c, b)
			}
			b.WriteByte(')')
		}
	}
}
