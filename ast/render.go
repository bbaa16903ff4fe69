package ast

import (
	"fmt"
	"strings"
)

// Format is a rendering target format.
type Format int

const (
	FormatLaTeX Format = iota
	FormatMarkdown
	FormatCopyText
	FormatJSON
)

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatLaTeX:
		return "latex"
	case FormatMarkdown:
		return "markdown"
	case FormatCopyText:
		return "copytext"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name as accepted by Export.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "latex", "tex":
		return FormatLaTeX, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "copytext", "text", "txt":
		return FormatCopyText, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatLaTeX, fmt.Errorf("unknown export format: %q", name)
	}
}

// Separator returns the block separator inserted before block-level nodes.
func (f Format) Separator() string {
	if f == FormatMarkdown {
		return "\n\n"
	}
	return "\n"
}

// RenderResult is the output of a span-tracked render: the rendered content
// and the node-id to span map computed against it. Spans are only meaningful
// paired with this exact content string.
type RenderResult struct {
	Content string
	Spans   map[string]SpanInfo
}

// Render concatenates the rendering of the given sibling nodes in order,
// inserting the format's block separator before each block-level node once
// output is non-empty. Node kinds render themselves and call back into
// Render for their own children; separator insertion and traversal order
// are owned here, not by individual kinds.
func Render(nodes []Node, format Format, o *Options) string {
	return renderNodes(nodes, format, o, nil)
}

// RenderTracked is Render with span tracking. For every node at this
// traversal level it records the node's span into tracker and advances the
// tracker cursor by separator length plus node output length. The tracker is
// deliberately not propagated into a node's self-render call: nested nodes
// are reconciled afterwards by FindMissingChildSpans.
func RenderTracked(nodes []Node, format Format, o *Options, tracker *SpanTracker) string {
	return renderNodes(nodes, format, o, tracker)
}

func renderNodes(nodes []Node, format Format, o *Options, tracker *SpanTracker) string {
	var sb strings.Builder
	for _, n := range nodes {
		if n == nil {
			continue
		}
		sep := ""
		if !n.Inline() && sb.Len() > 0 {
			sep = format.Separator()
		}
		out := renderNode(n, format, o)
		if tracker != nil {
			tracker.Advance(len(sep))
			start := tracker.Cursor()
			tracker.Record(n.ID(), n.Kind(), start, start+len(out))
			tracker.Advance(len(out))
		}
		sb.WriteString(sep)
		sb.WriteString(out)
	}
	return sb.String()
}

func renderNode(n Node, format Format, o *Options) string {
	switch format {
	case FormatMarkdown:
		return n.Markdown(o)
	case FormatCopyText:
		return n.CopyText(o)
	default:
		return n.LaTeX(o)
	}
}

// Export is the unified entry point over all output formats. An unknown
// format fails immediately; it never silently falls back.
func Export(nodes []Node, format Format, o *Options) (string, error) {
	switch format {
	case FormatLaTeX, FormatMarkdown, FormatCopyText:
		return Render(nodes, format, o), nil
	case FormatJSON:
		return ToJSON(nodes)
	default:
		return "", fmt.Errorf("unknown export format: %d", format)
	}
}

// ToLaTeX renders the nodes to LaTeX.
func ToLaTeX(nodes []Node, o *Options) string { return Render(nodes, FormatLaTeX, o) }

// ToMarkdown renders the nodes to Markdown.
func ToMarkdown(nodes []Node, o *Options) string { return Render(nodes, FormatMarkdown, o) }

// ToCopyText renders the nodes to plain copy text.
func ToCopyText(nodes []Node, o *Options) string { return Render(nodes, FormatCopyText, o) }

// ToLaTeXWithSpans renders the nodes to LaTeX and returns the rendered
// content together with the per-node span map, including the reconciled
// spans of nested content.
func ToLaTeXWithSpans(nodes []Node, o *Options) *RenderResult {
	return renderWithSpans(nodes, FormatLaTeX, o)
}

// ToMarkdownWithSpans renders the nodes to Markdown with span tracking.
func ToMarkdownWithSpans(nodes []Node, o *Options) *RenderResult {
	return renderWithSpans(nodes, FormatMarkdown, o)
}

func renderWithSpans(nodes []Node, format Format, o *Options) *RenderResult {
	tracker := NewSpanTracker()
	content := RenderTracked(nodes, format, o, tracker)
	tracker.FindMissingChildSpans(nodes, content, format, o)
	return &RenderResult{Content: content, Spans: tracker.Spans()}
}
