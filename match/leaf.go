package match

import "github.com/sciencestack-ai/sciencestack-tokens/ast"

// leafKinds are the node kinds that cannot usefully be subdivided further
// for matching purposes.
var leafKinds = map[ast.Kind]bool{
	ast.KindText:          true,
	ast.KindEquation:      true,
	ast.KindEquationArray: true,
	ast.KindCode:          true,
	ast.KindReference:     true,
	ast.KindCitation:      true,
}

// FilterToLeafRange reduces a raw multi-node match to at most two rows: the
// node the match starts in and the node it ends in. Contains-type rows
// (pure containers) are discarded; when any leaf-kind rows remain the
// filter restricts to those, otherwise it falls back to the smallest
// non-contains row. Offsets are preserved.
func FilterToLeafRange(results []Result) []Result {
	var nonContains []Result
	for _, r := range results {
		if r.Type != MatchContains {
			nonContains = append(nonContains, r)
		}
	}
	if len(nonContains) == 0 {
		return nil
	}

	var pool []Result
	for _, r := range nonContains {
		if leafKinds[r.NodeKind] {
			pool = append(pool, r)
		}
	}
	if len(pool) == 0 {
		// Rows arrive innermost first, so the first non-contains row is
		// the next-smallest candidate.
		pool = nonContains[:1]
	}

	var start, end *Result
	for i := range pool {
		switch pool[i].Type {
		case MatchStart, MatchSingle:
			if start == nil {
				start = &pool[i]
			}
		case MatchEnd:
			if end == nil {
				end = &pool[i]
			}
		}
	}

	var out []Result
	if start != nil {
		out = append(out, *start)
	}
	if end != nil && (start == nil || end.NodeID != start.NodeID) {
		out = append(out, *end)
	}
	return out
}
