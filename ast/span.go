package ast

import "strings"

// SpanInfo is a half-open character range [Start, End) into one specific
// rendered string, tagged with the producing node's kind. A span is only
// meaningful paired with the exact content string it was computed against.
type SpanInfo struct {
	Start int  `json:"start"`
	End   int  `json:"end"`
	Kind  Kind `json:"kind"`
}

// Width returns the number of characters the span covers.
func (s SpanInfo) Width() int { return s.End - s.Start }

// Contains reports whether the position falls inside the span.
func (s SpanInfo) Contains(pos int) bool { return pos >= s.Start && pos < s.End }

// SpanTracker accumulates per-node spans during a tracked render: a cursor
// holding the current output position and an id-to-span map. A tracker is
// scoped to a single render call and must not be reused across renders.
type SpanTracker struct {
	cursor int
	spans  map[string]SpanInfo
}

// NewSpanTracker returns an empty tracker positioned at the start of output.
func NewSpanTracker() *SpanTracker {
	return &SpanTracker{spans: make(map[string]SpanInfo)}
}

// Cursor returns the current output position.
func (t *SpanTracker) Cursor() int { return t.cursor }

// Advance moves the cursor forward by n characters.
func (t *SpanTracker) Advance(n int) { t.cursor += n }

// Record stores the span for a node id, overwriting any previous entry.
func (t *SpanTracker) Record(id string, kind Kind, start, end int) {
	t.spans[id] = SpanInfo{Start: start, End: end, Kind: kind}
}

// Span returns the recorded span for a node id.
func (t *SpanTracker) Span(id string) (SpanInfo, bool) {
	s, ok := t.spans[id]
	return s, ok
}

// Spans returns the id-to-span map accumulated so far.
func (t *SpanTracker) Spans() map[string]SpanInfo { return t.spans }

// FindMissingChildSpans reconciles spans for nodes the tracked render loop
// never visited directly. For every node with a recorded span it searches
// each unmapped child's independently rendered output as a substring inside
// the parent's span, trying the primary-format rendering first and the
// plain copy-text rendering second, and advancing a search cursor so a
// repeated substring cannot match an earlier position twice. Children whose
// output is empty or not found are silently left unmapped; absence from the
// span map means "position unknown", not an error.
func (t *SpanTracker) FindMissingChildSpans(nodes []Node, content string, format Format, o *Options) {
	for _, n := range nodes {
		if n == nil {
			continue
		}
		if span, ok := t.spans[n.ID()]; ok {
			t.reconcileChildren(n, span, content, format, o)
		} else {
			// The node itself is unmapped but a descendant may have been
			// tracked through another path; keep walking.
			t.FindMissingChildSpans(n.Children(), content, format, o)
		}
	}
}

func (t *SpanTracker) reconcileChildren(parent Node, span SpanInfo, content string, format Format, o *Options) {
	if span.End > len(content) {
		return
	}
	searchFrom := span.Start
	for _, child := range parent.Children() {
		if cs, ok := t.spans[child.ID()]; ok {
			if cs.End > searchFrom {
				searchFrom = cs.End
			}
			t.reconcileChildren(child, cs, content, format, o)
			continue
		}
		cs, ok := findChildSpan(child, content, searchFrom, span.End, format, o)
		if !ok {
			continue
		}
		t.spans[child.ID()] = cs
		searchFrom = cs.End
		t.reconcileChildren(child, cs, content, format, o)
	}
}

func findChildSpan(child Node, content string, from, to int, format Format, o *Options) (SpanInfo, bool) {
	if from >= to {
		return SpanInfo{}, false
	}
	region := content[from:to]
	for _, text := range childSearchTexts(child, format, o) {
		if text == "" {
			continue
		}
		idx := strings.Index(region, text)
		if idx < 0 {
			continue
		}
		start := from + idx
		return SpanInfo{Start: start, End: start + len(text), Kind: child.Kind()}, true
	}
	return SpanInfo{}, false
}

func childSearchTexts(child Node, format Format, o *Options) []string {
	primary := renderNode(child, format, o)
	if format == FormatCopyText {
		return []string{primary}
	}
	return []string{primary, child.CopyText(o)}
}
