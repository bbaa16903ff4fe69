package match

import (
	"regexp"
	"strings"

	"github.com/sciencestack-ai/sciencestack-tokens/fuzzy"
)

// ellipsisPattern splits excerpts on the markers callers use to elide
// middle content.
var ellipsisPattern = regexp.MustCompile(`\.{3}|…`)

// minFragmentLength discards ellipsis fragments too short to match
// unambiguously.
const minFragmentLength = 20

// MatchExcerptWithFallback runs the full matching pipeline: exact
// (normalized) matching, then per-ellipsis-fragment matching, then fuzzy
// matching over the whole excerpt and per fragment. Every successful path
// funnels through leaf filtering, so at most a start-node/end-node pair is
// returned. An empty slice means the excerpt was not located. A
// non-positive threshold means the fuzzy default.
func (m *Matcher) MatchExcerptWithFallback(excerpt string, threshold float64) []Result {
	opts := ExcerptOptions{UseNormalization: true}

	if results := m.MatchExcerpt(excerpt, opts); len(results) > 0 {
		return FilterToLeafRange(results)
	}

	fragments := splitEllipsis(excerpt)
	if len(fragments) > 0 {
		var results []Result
		for _, f := range fragments {
			results = append(results, m.MatchExcerpt(f, opts)...)
		}
		if len(results) > 0 {
			return FilterToLeafRange(results)
		}
	}

	if m.content == "" {
		return nil
	}
	if fm := fuzzy.Find(m.content, excerpt, threshold); fm != nil {
		if results := m.MatchRange(fm.Start, fm.End); len(results) > 0 {
			return FilterToLeafRange(results)
		}
	}
	var results []Result
	for _, f := range fragments {
		if fm := fuzzy.Find(m.content, f, threshold); fm != nil {
			results = append(results, m.MatchRange(fm.Start, fm.End)...)
		}
	}
	return FilterToLeafRange(results)
}

// splitEllipsis returns the usable fragments of an elided excerpt, or nil
// when the excerpt carries no ellipsis markers.
func splitEllipsis(excerpt string) []string {
	parts := ellipsisPattern.Split(excerpt, -1)
	if len(parts) < 2 {
		return nil
	}
	var fragments []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if len(p) >= minFragmentLength {
			fragments = append(fragments, p)
		}
	}
	return fragments
}
