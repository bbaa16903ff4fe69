package normalize

import (
	"regexp"
	"strings"
)

var (
	latexLabelPattern = regexp.MustCompile(`\\label\{[^}]*\}`)
	displayMathOpen   = regexp.MustCompile(`(?s)\$\$\s*(.*?)\s*\$\$`)
)

// LaTeXNormalizer strips LaTeX-specific noise: \label commands, unescaped
// %-comments to end of line, and rewrites $$...$$ display math into the
// canonical \[...\] delimiter form. StripAllWhitespace switches the final
// whitespace pass from collapsing runs to deleting them entirely.
type LaTeXNormalizer struct {
	StripAllWhitespace bool
}

// NewLaTeX returns a LaTeX normalizer with run-collapsing whitespace.
func NewLaTeX() *LaTeXNormalizer { return &LaTeXNormalizer{} }

// Normalize runs the removal, replacement and whitespace passes in order,
// threading the position map through each.
func (n *LaTeXNormalizer) Normalize(text string) Result {
	posMap := identityMap(len(text))

	text, posMap = removeSpans(text, posMap, latexLabelPattern.FindAllStringIndex(text, -1))
	text, posMap = removeSpans(text, posMap, latexCommentSpans(text))
	text, posMap = rewriteDisplayMath(text, posMap)
	text, posMap = collapseWhitespace(text, posMap, n.StripAllWhitespace)

	return Result{Normalized: text, PosMap: posMap}
}

// latexCommentSpans finds %-to-end-of-line comments whose % is not escaped,
// i.e. preceded by an even number of backslashes. The trailing newline is
// retained so line structure survives for the whitespace pass.
func latexCommentSpans(text string) [][]int {
	var spans [][]int
	backslashes := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '\\':
			backslashes++
		case '%':
			if backslashes%2 == 0 {
				end := strings.IndexByte(text[i:], '\n')
				if end < 0 {
					end = len(text)
				} else {
					end += i
				}
				spans = append(spans, []int{i, end})
				i = end
			}
			backslashes = 0
		default:
			backslashes = 0
		}
	}
	return spans
}

// rewriteDisplayMath replaces $$...$$ pairs with \[...\]. The rewrite can
// change length, so the position map is rebuilt by a character diff against
// the pre-replacement text.
func rewriteDisplayMath(text string, posMap []int) (string, []int) {
	if !strings.Contains(text, "$$") {
		return text, posMap
	}
	replaced := displayMathOpen.ReplaceAllString(text, `\[$1\]`)
	if replaced == text {
		return text, posMap
	}
	return replaced, rebuildPosMap(text, posMap, replaced)
}
