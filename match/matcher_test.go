package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sciencestack-ai/sciencestack-tokens/ast"
	"github.com/sciencestack-ai/sciencestack-tokens/normalize"
)

func helloWorldMatcher() *Matcher {
	spans := map[string]ast.SpanInfo{
		"n0": {Start: 0, End: 6, Kind: ast.KindText},
		"n1": {Start: 6, End: 11, Kind: ast.KindText},
	}
	return New(spans, "Hello World", nil)
}

func TestNodeAtPositionSpecificity(t *testing.T) {
	spans := map[string]ast.SpanInfo{
		"parent": {Start: 0, End: 20, Kind: ast.KindSection},
		"child":  {Start: 5, End: 10, Kind: ast.KindText},
	}
	m := New(spans, "aaaaabbbbbcccccddddd", nil)

	inner := m.NodeAtPosition(7)
	require.NotNil(t, inner)
	assert.Equal(t, "child", inner.NodeID)

	outer := m.NodeAtPosition(2)
	require.NotNil(t, outer)
	assert.Equal(t, "parent", outer.NodeID)

	assert.Nil(t, m.NodeAtPosition(25))
}

func TestNodeAtPositionTieBreak(t *testing.T) {
	// Equal widths resolve to the earliest start, then the smaller id, so
	// repeated queries give the same answer.
	spans := map[string]ast.SpanInfo{
		"b": {Start: 0, End: 10, Kind: ast.KindText},
		"a": {Start: 0, End: 10, Kind: ast.KindText},
	}
	m := New(spans, "0123456789", nil)
	for i := 0; i < 10; i++ {
		got := m.NodeAtPosition(5)
		require.NotNil(t, got)
		assert.Equal(t, "a", got.NodeID)
	}
}

func TestNodesAtPositionInnermostFirst(t *testing.T) {
	spans := map[string]ast.SpanInfo{
		"outer": {Start: 0, End: 20, Kind: ast.KindSection},
		"mid":   {Start: 2, End: 15, Kind: ast.KindParagraph},
		"leaf":  {Start: 5, End: 10, Kind: ast.KindText},
	}
	m := New(spans, "aaaaabbbbbcccccddddd", nil)

	got := m.NodesAtPosition(7)
	require.Len(t, got, 3)
	assert.Equal(t, []string{got[0].NodeID, got[1].NodeID, got[2].NodeID},
		[]string{"leaf", "mid", "outer"})
}

func TestMatchExcerptAcrossBoundary(t *testing.T) {
	m := helloWorldMatcher()

	results := m.MatchExcerpt("lo Wo", ExcerptOptions{})
	require.Len(t, results, 2)

	assert.Equal(t, "n0", results[0].NodeID)
	assert.Equal(t, MatchStart, results[0].Type)
	assert.Equal(t, 3, results[0].Offset)

	assert.Equal(t, "n1", results[1].NodeID)
	assert.Equal(t, MatchEnd, results[1].Type)
	assert.Equal(t, 2, results[1].Offset)
}

func TestMatchExcerptSingle(t *testing.T) {
	m := helloWorldMatcher()

	results := m.MatchExcerpt("ell", ExcerptOptions{})
	require.Len(t, results, 1)
	assert.Equal(t, "n0", results[0].NodeID)
	assert.Equal(t, MatchSingle, results[0].Type)
	assert.Equal(t, 1, results[0].Offset)
}

func TestMatchExcerptMiss(t *testing.T) {
	m := helloWorldMatcher()
	assert.Empty(t, m.MatchExcerpt("absent", ExcerptOptions{}))
	assert.Empty(t, m.MatchExcerpt("", ExcerptOptions{}))
}

func TestMatchExcerptFindAll(t *testing.T) {
	spans := map[string]ast.SpanInfo{
		"n0": {Start: 0, End: 4, Kind: ast.KindText},
		"n1": {Start: 4, End: 8, Kind: ast.KindText},
	}
	m := New(spans, "abcdabcd", nil)

	results := m.MatchExcerpt("abcd", ExcerptOptions{FindAll: true})
	require.Len(t, results, 2)
	assert.Equal(t, "n0", results[0].NodeID)
	assert.Equal(t, "n1", results[1].NodeID)
	for _, r := range results {
		assert.Equal(t, MatchSingle, r.Type)
		assert.Equal(t, 0, r.Offset)
	}
}

func TestMatchRangeContains(t *testing.T) {
	spans := map[string]ast.SpanInfo{
		"outer": {Start: 0, End: 11, Kind: ast.KindParagraph},
		"inner": {Start: 3, End: 6, Kind: ast.KindText},
	}
	m := New(spans, "Hello World", nil)

	results := m.MatchRange(1, 9)
	require.Len(t, results, 2)
	assert.Equal(t, "inner", results[0].NodeID)
	assert.Equal(t, MatchContains, results[0].Type)
	assert.Equal(t, -1, results[0].Offset)
	assert.Equal(t, "outer", results[1].NodeID)
	assert.Equal(t, MatchSingle, results[1].Type)
	assert.Equal(t, 1, results[1].Offset)
}

func TestMatchExcerptNormalized(t *testing.T) {
	// The label splits the rendered text; the excerpt knows nothing of it.
	content := `alpha\label{eq:1} beta`
	spans := map[string]ast.SpanInfo{
		"n0": {Start: 0, End: len(content), Kind: ast.KindText},
	}
	m := New(spans, content, normalize.NewLaTeX())

	results := m.MatchExcerpt("alpha beta", ExcerptOptions{UseNormalization: true})
	require.Len(t, results, 1)
	assert.Equal(t, "n0", results[0].NodeID)
	assert.Equal(t, MatchSingle, results[0].Type)
}

func TestNodeTextAndSpanLookups(t *testing.T) {
	m := helloWorldMatcher()

	text, ok := m.NodeText("n1")
	require.True(t, ok)
	assert.Equal(t, "World", text)

	_, ok = m.NodeText("ghost")
	assert.False(t, ok)

	span, ok := m.Span("n0")
	require.True(t, ok)
	assert.Equal(t, 0, span.Start)
	assert.Equal(t, 6, span.End)
}
