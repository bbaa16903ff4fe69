package normalize

import "regexp"

var (
	htmlCommentPattern = regexp.MustCompile(`(?s)<!--.*?-->`)
	refLinkDefPattern  = regexp.MustCompile(`(?m)^\[[^\]]+\]:[^\n]*$`)
)

// MarkdownNormalizer strips Markdown-specific noise: HTML comments and
// reference-style link definition lines. StripAllWhitespace switches the
// final whitespace pass from collapsing runs to deleting them entirely.
type MarkdownNormalizer struct {
	StripAllWhitespace bool
}

// NewMarkdown returns a Markdown normalizer with run-collapsing whitespace.
func NewMarkdown() *MarkdownNormalizer { return &MarkdownNormalizer{} }

// Normalize runs the removal and whitespace passes in order, threading the
// position map through each.
func (n *MarkdownNormalizer) Normalize(text string) Result {
	posMap := identityMap(len(text))

	text, posMap = removeSpans(text, posMap, htmlCommentPattern.FindAllStringIndex(text, -1))
	text, posMap = removeSpans(text, posMap, refLinkDefPattern.FindAllStringIndex(text, -1))
	text, posMap = collapseWhitespace(text, posMap, n.StripAllWhitespace)

	return Result{Normalized: text, PosMap: posMap}
}
