// Package normalize renders part trees using canonical brackets and delimiters.
package normalize

import (
	"io"
	"strings"

	"github.com/ava12/ngroup/alphabet"
	"github.com/ava12/ngroup/tree"
)

// Normalizer renders part trees using canonical characters of an alphabet:
// every delimiter is replaced with canonical delimiter and every group is wrapped
// in canonical bracket pair of its kind. Literal text is kept verbatim.
type Normalizer struct {
	alphabet *alphabet.Alphabet
}

// New creates new Normalizer. Default alphabet is used if a is nil.
func New(a *alphabet.Alphabet) *Normalizer {
	if a == nil {
		a = alphabet.Default()
	}
	return &Normalizer{alphabet: a}
}

var defaultNormalizer = New(nil)

// String renders t using default alphabet.
func String(t *tree.Tree) string {
	return defaultNormalizer.String(t)
}

// String renders t.
func (n *Normalizer) String(t *tree.Tree) string {
	b := &strings.Builder{}
	n.render(t, tree.Root, b)
	return b.String()
}

// Write renders t to w.
func (n *Normalizer) Write(w io.Writer, t *tree.Tree) (int, error) {
	return io.WriteString(w, n.String(t))
}

func (n *Normalizer) render(t *tree.Tree, id tree.ID, b *strings.Builder) {
	for _, c := range t.Children(id) {
		switch t.Type(c) {
		case tree.LiteralPart:
			b.WriteString(t.Text(c))
		case tree.DelimiterPart:
			b.WriteRune(n.alphabet.CanonicalDelimiter())
		default:
			p := n.alphabet.Canonical(t.Kind(c))
			b.WriteRune(p.Open)
			n.render(t, c, b)
			b.WriteRune(p.Close)
		}
	}
}
