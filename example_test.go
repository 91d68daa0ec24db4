package ngroup_test

import (
	"fmt"
	"strings"

	"github.com/ava12/ngroup/expand"
	"github.com/ava12/ngroup/normalize"
	"github.com/ava12/ngroup/parser"
)

func Example() {
	inputs := []string{
		"A(B)〈C／D〉",
		"見（る）、{観,視}る",
		"no groups here",
		"(A〈B)",
	}

	for _, input := range inputs {
		t, e := parser.Parse(input)
		if e != nil {
			fmt.Println("error:", e)
			continue
		}
		fmt.Println(normalize.String(t), "->", strings.Join(expand.Terms(t), "；"))
	}
	// Output:
	// A（B）｛C／D｝ -> AC；AD；ABC；ABD
	// 見（る）／｛観／視｝る -> 見；見る；観る；視る
	// error: no grouping found
	// error: ")" does not close alternative group "〈" opened at line 1 col 3 at line 1 col 5
}
