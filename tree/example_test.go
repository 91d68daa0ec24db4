package tree_test

import (
	"fmt"

	"github.com/ava12/ngroup/parser"
	"github.com/ava12/ngroup/tree"
)

func ExampleWalk() {
	t, e := parser.Parse("食べ（させ）｛る／ない｝")
	if e != nil {
		fmt.Println(e)
		return
	}

	indent := "----------"
	visitor := func(stat tree.WalkStat) tree.WalkerFlags {
		id := stat.ID
		switch stat.Tree.Type(id) {
		case tree.GroupPart:
			fmt.Printf("%s%s:\n", indent[:stat.Level*2], stat.Tree.Kind(id))
		case tree.DelimiterPart:
			fmt.Printf("%s/\n", indent[:stat.Level*2])
		default:
			fmt.Printf("%s%q\n", indent[:stat.Level*2], stat.Tree.Text(id))
		}
		return 0
	}
	tree.Walk(t, tree.Root, tree.WalkLtr, visitor)
	// Output:
	// root:
	// --"食べ"
	// --omissible:
	// ----"させ"
	// --alternative:
	// ----"る"
	// ----/
	// ----"ない"
}
