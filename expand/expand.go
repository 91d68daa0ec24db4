// Package expand enumerates terms described by part trees.
//
// Children of a container are processed left to right, keeping a list of terms in progress
// (initially a single empty term):
//   - literal text is appended to every term in progress;
//   - a delimiter finalizes terms in progress and restarts with a single empty term;
//   - an alternative group replaces terms in progress with every combination
//     of a term in progress followed by a term of the group;
//   - an omissible group keeps terms in progress and adds the same combinations after them.
//
// A delimiter or the end of a container never finalizes a lone empty term
// unless it would be the only term of the container.
package expand

import (
	"math"

	"github.com/ava12/ngroup/alphabet"
	"github.com/ava12/ngroup/tree"
)

// Terms returns all terms described by t in deterministic order.
// The result is never empty; a tree with no content yields a single empty term.
func Terms(t *tree.Tree) []string {
	return terms(t, tree.Root)
}

func isBlank(ts []string) bool {
	return len(ts) == 1 && ts[0] == ""
}

func combine(heads, tails []string) []string {
	res := make([]string, 0, len(heads)*len(tails))
	for _, h := range heads {
		for _, t := range tails {
			res = append(res, h+t)
		}
	}
	return res
}

func terms(t *tree.Tree, id tree.ID) []string {
	var res []string
	current := []string{""}

	for i, n := 0, t.NumChildren(id); i < n; i++ {
		c := t.Child(id, i)
		switch t.Type(c) {
		case tree.LiteralPart:
			text := t.Text(c)
			for j := range current {
				current[j] += text
			}

		case tree.DelimiterPart:
			if !isBlank(current) {
				res = append(res, current...)
			}
			current = []string{""}

		default:
			combined := combine(current, terms(t, c))
			if t.Kind(c) == alphabet.Omissible {
				current = append(current, combined...)
			} else {
				current = combined
			}
		}
	}

	if !isBlank(current) || len(res) == 0 {
		res = append(res, current...)
	}
	return res
}

type counter struct {
	n     int
	blank bool
}

func add(a, b int) int {
	if a > math.MaxInt-b {
		return math.MaxInt
	}
	return a + b
}

func mul(a, b int) int {
	if a != 0 && b > math.MaxInt/a {
		return math.MaxInt
	}
	return a * b
}

// Count returns the number of terms Terms would return without building them.
// The result saturates at math.MaxInt.
func Count(t *tree.Tree) int {
	return count(t, tree.Root).n
}

func count(t *tree.Tree, id tree.ID) counter {
	res := 0
	current := counter{1, true}

	for i, n := 0, t.NumChildren(id); i < n; i++ {
		c := t.Child(id, i)
		switch t.Type(c) {
		case tree.LiteralPart:
			current.blank = false

		case tree.DelimiterPart:
			if !current.blank {
				res = add(res, current.n)
			}
			current = counter{1, true}

		default:
			sub := count(t, c)
			combined := mul(current.n, sub.n)
			if t.Kind(c) == alphabet.Omissible {
				current = counter{add(current.n, combined), false}
			} else {
				current = counter{combined, current.blank && sub.blank}
			}
		}
	}

	if !current.blank || res == 0 {
		return counter{add(res, current.n), res == 0 && current.blank}
	}
	return counter{res, false}
}

// Unique returns terms with duplicates removed, keeping the first occurrence of each term.
func Unique(terms []string) []string {
	seen := make(map[string]bool, len(terms))
	res := make([]string, 0, len(terms))
	for _, t := range terms {
		if !seen[t] {
			seen[t] = true
			res = append(res, t)
		}
	}
	return res
}

// NonEmpty returns terms with empty strings removed.
func NonEmpty(terms []string) []string {
	res := make([]string, 0, len(terms))
	for _, t := range terms {
		if t != "" {
			res = append(res, t)
		}
	}
	return res
}
