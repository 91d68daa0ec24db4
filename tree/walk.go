package tree

// WalkMode defines the order children are visited in.
type WalkMode int

const (
	WalkLtr WalkMode = 0
	WalkRtl WalkMode = 1
)

// WalkerFlags returned by visitor control further walking.
type WalkerFlags int

const (
	// WalkerSkipChildren prevents visiting children of current part.
	WalkerSkipChildren WalkerFlags = 1 << iota
	// WalkerSkipSiblings prevents visiting remaining siblings of current part.
	WalkerSkipSiblings
	// WalkerStop stops walking.
	WalkerStop
)

// WalkStat is passed to visitor.
type WalkStat struct {
	Tree  *Tree
	ID    ID
	Level int // 0 for the starting part
}

// Visitor is called for each visited part.
type Visitor func(stat WalkStat) WalkerFlags

// Walk visits the part with given ID and all its descendants in depth-first pre-order.
func Walk(t *Tree, id ID, mode WalkMode, visitor Visitor) {
	if t != nil && id >= 0 && int(id) < t.Len() {
		visit(t, id, 0, mode == WalkRtl, visitor)
	}
}

func visit(t *Tree, id ID, level int, rtl bool, v Visitor) WalkerFlags {
	flags := v(WalkStat{t, id, level})
	if flags&(WalkerStop|WalkerSkipChildren) != 0 {
		return flags
	}

	cs := t.parts[id].children
	for i := range cs {
		c := cs[i]
		if rtl {
			c = cs[len(cs)-1-i]
		}
		cf := visit(t, c, level+1, rtl, v)
		if cf&WalkerStop != 0 {
			return WalkerStop
		}
		if cf&WalkerSkipSiblings != 0 {
			break
		}
	}
	return flags
}

// Stats contains part counts of a tree.
type Stats struct {
	Literals, Delimiters, Groups int
	// Depth is the maximum group nesting level, 0 if there are no groups.
	Depth int
}

// Stat counts tree parts.
func Stat(t *Tree) Stats {
	var s Stats
	Walk(t, Root, WalkLtr, func(ws WalkStat) WalkerFlags {
		switch ws.Tree.Type(ws.ID) {
		case LiteralPart:
			s.Literals++
		case DelimiterPart:
			s.Delimiters++
		default:
			if ws.ID != Root {
				s.Groups++
				if ws.Level > s.Depth {
					s.Depth = ws.Level
				}
			}
		}
		return 0
	})
	return s
}
