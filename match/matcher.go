// Package match answers reverse-mapping queries over a span-tracked render:
// which node produced the text at a character position, and which node(s)
// an arbitrary excerpt landed in. Matching proceeds through exact,
// normalized, ellipsis-split and fuzzy stages.
package match

import (
	"sort"
	"strings"

	"github.com/sciencestack-ai/sciencestack-tokens/ast"
	"github.com/sciencestack-ai/sciencestack-tokens/normalize"
)

// NodeSpan is a span paired with the id of the node that produced it.
type NodeSpan struct {
	NodeID string
	ast.SpanInfo
}

// Matcher resolves positions and excerpts against one specific rendered
// string and the span map computed from it. When a normalizer is supplied
// the full text is normalized once at construction and cached.
type Matcher struct {
	spans      map[string]ast.SpanInfo
	content    string
	normalizer normalize.Normalizer
	normalized *normalize.Result
}

// New creates a matcher over a span map and the exact rendered content the
// map was computed from. The normalizer is optional.
func New(spans map[string]ast.SpanInfo, content string, normalizer normalize.Normalizer) *Matcher {
	m := &Matcher{spans: spans, content: content, normalizer: normalizer}
	if normalizer != nil {
		r := normalizer.Normalize(content)
		m.normalized = &r
	}
	return m
}

// NewFromRender creates a matcher from a span-tracked render result.
func NewFromRender(res *ast.RenderResult, normalizer normalize.Normalizer) *Matcher {
	return New(res.Spans, res.Content, normalizer)
}

// Content returns the rendered string the matcher was built against.
func (m *Matcher) Content() string { return m.content }

// Span returns the recorded span for a node id.
func (m *Matcher) Span(id string) (ast.SpanInfo, bool) {
	s, ok := m.spans[id]
	return s, ok
}

// NodeText returns the slice of rendered content covered by a node's span.
func (m *Matcher) NodeText(id string) (string, bool) {
	s, ok := m.spans[id]
	if !ok || s.Start < 0 || s.End > len(m.content) {
		return "", false
	}
	return m.content[s.Start:s.End], true
}

// NodeAtPosition returns the most specific (smallest-width) node span
// containing the position, or nil if the position falls outside all spans.
// Equal widths tie-break on earliest start, then node id, so the answer is
// deterministic.
func (m *Matcher) NodeAtPosition(pos int) *NodeSpan {
	all := m.NodesAtPosition(pos)
	if len(all) == 0 {
		return nil
	}
	return &all[0]
}

// NodesAtPosition returns every node span containing the position, sorted
// innermost first.
func (m *Matcher) NodesAtPosition(pos int) []NodeSpan {
	var out []NodeSpan
	for id, s := range m.spans {
		if s.Contains(pos) {
			out = append(out, NodeSpan{NodeID: id, SpanInfo: s})
		}
	}
	sortSpans(out)
	return out
}

func sortSpans(spans []NodeSpan) {
	sort.Slice(spans, func(i, j int) bool {
		if w1, w2 := spans[i].Width(), spans[j].Width(); w1 != w2 {
			return w1 < w2
		}
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].NodeID < spans[j].NodeID
	})
}

// ExcerptOptions controls MatchExcerpt.
type ExcerptOptions struct {
	// UseNormalization searches in normalized space when the matcher has a
	// normalizer, reconciling hits back to original offsets through the
	// position map.
	UseNormalization bool

	// FindAll reports every occurrence instead of only the first.
	FindAll bool
}

// MatchExcerpt locates the excerpt as a substring of the rendered content
// and classifies every node span overlapping the matched range. A miss
// returns an empty slice, never an error.
func (m *Matcher) MatchExcerpt(excerpt string, opts ExcerptOptions) []Result {
	if excerpt == "" {
		return nil
	}
	if opts.UseNormalization && m.normalized != nil {
		return m.matchNormalized(excerpt, opts.FindAll)
	}
	var results []Result
	for from := 0; from < len(m.content); {
		idx := strings.Index(m.content[from:], excerpt)
		if idx < 0 {
			break
		}
		start := from + idx
		results = append(results, m.MatchRange(start, start+len(excerpt))...)
		if !opts.FindAll {
			break
		}
		from = start + len(excerpt)
	}
	return results
}

func (m *Matcher) matchNormalized(excerpt string, findAll bool) []Result {
	normExcerpt := m.normalizer.Normalize(excerpt).Normalized
	if normExcerpt == "" {
		return nil
	}
	haystack := m.normalized.Normalized
	var results []Result
	for from := 0; from < len(haystack); {
		idx := strings.Index(haystack[from:], normExcerpt)
		if idx < 0 {
			break
		}
		start := from + idx
		origStart, origEnd := m.normalized.OriginalRange(start, start+len(normExcerpt))
		results = append(results, m.MatchRange(origStart, origEnd)...)
		if !findAll {
			break
		}
		from = start + len(normExcerpt)
	}
	return results
}

// MatchRange classifies every node span overlapping the half-open range
// [start, end), innermost first: a span containing both boundaries is a
// single match, a span containing only the left boundary starts the match,
// only the right boundary ends it, and a span strictly inside the range is
// contained by it.
func (m *Matcher) MatchRange(start, end int) []Result {
	if start >= end {
		return nil
	}
	var overlapping []NodeSpan
	for id, s := range m.spans {
		if s.Start < end && s.End > start {
			overlapping = append(overlapping, NodeSpan{NodeID: id, SpanInfo: s})
		}
	}
	sortSpans(overlapping)

	results := make([]Result, 0, len(overlapping))
	for _, ns := range overlapping {
		r := Result{NodeID: ns.NodeID, NodeKind: ns.Kind, Offset: -1}
		startInside := start >= ns.Start && start < ns.End
		endInside := end > ns.Start && end <= ns.End
		switch {
		case startInside && endInside:
			r.Type = MatchSingle
			r.Offset = start - ns.Start
		case startInside:
			r.Type = MatchStart
			r.Offset = start - ns.Start
		case endInside:
			r.Type = MatchEnd
			r.Offset = end - ns.Start
		default:
			r.Type = MatchContains
		}
		results = append(results, r)
	}
	return results
}
