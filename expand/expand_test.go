package expand

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/ava12/ngroup/alphabet"
	"github.com/ava12/ngroup/internal/test"
	"github.com/ava12/ngroup/parser"
	"github.com/ava12/ngroup/source"
	"github.com/ava12/ngroup/tree"
)

type srcTermsSample struct {
	src   string
	terms string
}

func TestTermsSamples(t *testing.T) {
	samples := []srcTermsSample{
		{"A(B)〈C／D〉", "AC AD ABC ABD"},
		{"A(B)C", "AC ABC"},
		{"｛A／B／C｝", "A B C"},
		{"{A}", "A"},
		{"x{A／B}；y(z)", "xA xB y yz"},
		{"{a(b／c)}", "a ab ac"},
		{"A／／B(C)；", "A B BC"},
		{"；(A)", " A"},
		{"{A{B／C}／D}", "AB AC D"},
		{"食べ（させ）｛る／ない｝", "食べる 食べない 食べさせる 食べさせない"},
		{"(A)(B)", " A B AB"},
		{"{}", ""},
		{"{／}", ""},
		{"a{}b", "ab"},
	}

	for i, s := range samples {
		tr, e := parser.Parse(s.src)
		if e != nil {
			t.Fatalf("sample #%d (%q): unexpected error: %s", i, s.src, e)
		}
		got := strings.Join(Terms(tr), " ")
		if got != s.terms {
			t.Errorf("sample #%d (%q): expecting %q, got %q", i, s.src, s.terms, got)
		}
	}
}

func TestAlternativeCount(t *testing.T) {
	for n := 1; n <= 6; n++ {
		alts := make([]string, n)
		for i := range alts {
			alts[i] = string(rune('a' + i))
		}
		tr, e := parser.Parse("{" + strings.Join(alts, "／") + "}")
		test.Assert(t, e == nil, "unexpected error: %v", e)
		test.ExpectStrings(t, alts, Terms(tr))
	}
}

func TestTopLevelDelimiter(t *testing.T) {
	var nopos source.Pos
	tr := tree.New()
	tr.AppendLiteral(tree.Root, "A", nopos)
	tr.AppendDelimiter(tree.Root, "；", nopos)
	tr.AppendLiteral(tree.Root, "B", nopos)
	test.ExpectStrings(t, []string{"A", "B"}, Terms(tr))

	test.ExpectStrings(t, []string{""}, Terms(tree.New()))

	tr = tree.New()
	tr.AppendDelimiter(tree.Root, "；", nopos)
	tr.AppendDelimiter(tree.Root, "；", nopos)
	test.ExpectStrings(t, []string{""}, Terms(tr))
}

func TestNestedOmissible(t *testing.T) {
	tr, e := parser.Parse("a(b(c))")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	test.ExpectStrings(t, []string{"a", "ab", "abc"}, Terms(tr))

	tr, e = parser.Parse("(A)(A)")
	test.Assert(t, e == nil, "unexpected error: %v", e)
	terms := Terms(tr)
	test.ExpectStrings(t, []string{"", "A", "A", "AA"}, terms)
	test.ExpectStrings(t, []string{"", "A", "AA"}, Unique(terms))
	test.ExpectStrings(t, []string{"A", "A", "AA"}, NonEmpty(terms))
}

func TestCountMatchesTerms(t *testing.T) {
	chars := []rune("ab／ (（)）{｛}｝〈〉")
	rnd := rand.New(rand.NewSource(3))
	checked := 0

	for i := 0; i < 5000; i++ {
		rs := make([]rune, rnd.Intn(16))
		for j := range rs {
			rs[j] = chars[rnd.Intn(len(chars))]
		}
		src := string(rs)

		tr, e := parser.Parse(src)
		if e != nil {
			continue
		}
		terms := Terms(tr)
		if len(terms) == 0 {
			t.Fatalf("input %q: empty term list", src)
		}
		if c := Count(tr); c != len(terms) {
			t.Fatalf("input %q: expecting count %d, got %d (%q)", src, len(terms), c, terms)
		}
		checked++
	}

	test.Assert(t, checked > 0, "no successful samples generated")
}

func TestCountSaturates(t *testing.T) {
	var nopos source.Pos
	tr := tree.New()
	for i := 0; i < 70; i++ {
		g := tr.AppendGroup(tree.Root, alphabet.Alternative, nopos)
		tr.AppendLiteral(g, "a", nopos)
		tr.AppendDelimiter(g, "／", nopos)
		tr.AppendLiteral(g, "b", nopos)
	}
	test.ExpectInt(t, math.MaxInt, Count(tr))
}
