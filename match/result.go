package match

import "github.com/sciencestack-ai/sciencestack-tokens/ast"

// MatchType describes how a node span relates to a matched text range.
type MatchType string

const (
	// MatchSingle means the range lies fully inside the node.
	MatchSingle MatchType = "single"

	// MatchStart means the range begins inside the node and crosses its
	// right boundary.
	MatchStart MatchType = "start"

	// MatchEnd means the range ends inside the node and crosses its left
	// boundary.
	MatchEnd MatchType = "end"

	// MatchContains means the node lies strictly inside the range.
	MatchContains MatchType = "contains"
)

// Result describes how one node relates to a matched text range. Offset is
// the boundary position relative to the node's span start; it is -1 for
// contains-type results, which record no offset.
type Result struct {
	NodeID   string
	NodeKind ast.Kind
	Type     MatchType
	Offset   int
}
