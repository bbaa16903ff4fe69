// Package normalize rewrites rendered text to strip format-specific noise
// (LaTeX labels and comments, HTML comments, reference-link definitions)
// before excerpt matching, while maintaining a reverse position map back to
// the un-normalized text so matches can be reconciled to original offsets.
package normalize

import "strings"

// Result pairs a normalized string with its position map: PosMap[i] is the
// index into the original string that produced Normalized[i]. PosMap is
// always the same length as Normalized and non-decreasing.
type Result struct {
	Normalized string
	PosMap     []int
}

// OriginalRange maps the half-open normalized range [start, end) back to a
// half-open range in the original string.
func (r Result) OriginalRange(start, end int) (int, int) {
	if len(r.PosMap) == 0 || start >= end || start >= len(r.PosMap) {
		return 0, 0
	}
	if end > len(r.PosMap) {
		end = len(r.PosMap)
	}
	return r.PosMap[start], r.PosMap[end-1] + 1
}

// Normalizer is the interface the span matcher consumes.
type Normalizer interface {
	Normalize(text string) Result
}

func identityMap(n int) []int {
	m := make([]int, n)
	for i := range m {
		m[i] = i
	}
	return m
}

// removeSpans deletes the given half-open index ranges from text, keeping
// the position map exact: retained characters keep their original indexes.
// Ranges must be sorted and non-overlapping, as produced by
// Regexp.FindAllStringIndex.
func removeSpans(text string, posMap []int, spans [][]int) (string, []int) {
	if len(spans) == 0 {
		return text, posMap
	}
	var sb strings.Builder
	var m []int
	prev := 0
	for _, sp := range spans {
		for i := prev; i < sp[0]; i++ {
			sb.WriteByte(text[i])
			m = append(m, posMap[i])
		}
		prev = sp[1]
	}
	for i := prev; i < len(text); i++ {
		sb.WriteByte(text[i])
		m = append(m, posMap[i])
	}
	return sb.String(), m
}

// collapseWhitespace reduces every whitespace run to a single space mapped
// at the first original index of the run, or deletes runs entirely in
// stripAll mode.
func collapseWhitespace(text string, posMap []int, stripAll bool) (string, []int) {
	var sb strings.Builder
	var m []int
	runStart := -1
	flush := func() {
		if runStart < 0 {
			return
		}
		if !stripAll {
			sb.WriteByte(' ')
			m = append(m, posMap[runStart])
		}
		runStart = -1
	}
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ', '\t', '\n', '\r':
			if runStart < 0 {
				runStart = i
			}
		default:
			flush()
			sb.WriteByte(text[i])
			m = append(m, posMap[i])
		}
	}
	flush()
	return sb.String(), m
}

// rebuildPosMap recomputes a position map after a length-changing text
// replacement by walking the pre- and post-replacement strings in parallel.
// Characters the replacement introduced are mapped to the nearest retained
// original index. This is an approximation, acceptable because replacements
// only rewrite delimiter characters, never excerpt content.
func rebuildPosMap(oldText string, oldMap []int, newText string) []int {
	newMap := make([]int, len(newText))
	oi := 0
	for ni := 0; ni < len(newText); ni++ {
		if oi < len(oldText) && newText[ni] == oldText[oi] {
			newMap[ni] = oldMap[oi]
			oi++
			continue
		}
		// Resync within a short window before falling back to the nearest
		// retained index.
		resynced := false
		for k := oi; k < len(oldText) && k < oi+4; k++ {
			if oldText[k] == newText[ni] {
				newMap[ni] = oldMap[k]
				oi = k + 1
				resynced = true
				break
			}
		}
		if resynced {
			continue
		}
		idx := oi
		if idx >= len(oldMap) {
			idx = len(oldMap) - 1
		}
		if idx < 0 {
			newMap[ni] = 0
		} else {
			newMap[ni] = oldMap[idx]
			oi++
		}
	}
	return newMap
}
